package service

import (
	"context"
	"errors"
	"io"

	"lucky_wheel/internal/model"
)

var (
	ErrSessionNotFound   = errors.New("wheel session not found")
	ErrSpinInProgress    = errors.New("wheel is already spinning")
	ErrEmployeeNotFound  = errors.New("employee code not found")
	ErrInvalidPrize      = errors.New("invalid prize")
	ErrEmptyImport       = errors.New("import file has no rows")
	ErrInvalidImportFile = errors.New("import file is not a valid xlsx workbook")
)

type AuthService interface {
	Login(ctx context.Context, creds model.Credentials) (*model.AuthData, error)
	Register(ctx context.Context, reg model.Registration) (model.Admin, error)
	Profile(ctx context.Context) (model.Admin, error)
}

type PrizeService interface {
	Public(ctx context.Context) ([]model.Prize, error)
	List(ctx context.Context) ([]model.Prize, error)
	Get(ctx context.Context, id string) (model.Prize, error)
	Create(ctx context.Context, prize model.Prize) (model.Prize, error)
	Update(ctx context.Context, prize model.Prize) (model.Prize, error)
	Delete(ctx context.Context, id string) error
}

type UserService interface {
	Check(ctx context.Context, form model.UserForm) (model.UserCheck, error)
	Enter(ctx context.Context, form model.UserForm) (*model.Entry, error)
	List(ctx context.Context) ([]model.User, int, error)
	Get(ctx context.Context, id string) (model.User, error)
	Spins(ctx context.Context, userID string) (model.UserSpins, error)
}

type EmployeeService interface {
	Verify(ctx context.Context, code string) (model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	Get(ctx context.Context, id string) (model.Employee, error)
	Create(ctx context.Context, employee model.Employee) (model.Employee, error)
	Update(ctx context.Context, employee model.Employee) (model.Employee, error)
	Delete(ctx context.Context, id string) error
	Import(ctx context.Context, filename string, data []byte) (model.ImportResult, error)
	Template() ([]byte, error)
}

type PlayService interface {
	NewSession(ctx context.Context) (model.WheelSnapshot, error)
	Snapshot(sessionID string) (model.WheelSnapshot, error)
	Image(sessionID string, w io.Writer) error
	SpinForUser(ctx context.Context, sessionID, userID string) (*model.Play, error)
	SpinForEmployee(ctx context.Context, sessionID, code string) (*model.Play, error)
	Subscribe(sessionID string) (<-chan model.WheelEvent, func(), error)
}

type ReportService interface {
	Spins(ctx context.Context, filter model.SpinFilter) (model.SpinPage, error)
	Stats(ctx context.Context, filter model.SpinFilter) (model.SpinStats, error)
	Dashboard(ctx context.Context) (model.Dashboard, error)
	ExportUsers(ctx context.Context) ([]byte, error)
	ExportSpins(ctx context.Context, filter model.SpinFilter) ([]byte, error)
	ExportEmployees(ctx context.Context) ([]byte, error)
}
