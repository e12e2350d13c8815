package repository

import (
	"context"
	"io"

	"lucky_wheel/internal/model"
)

type AuthRepository interface {
	Login(ctx context.Context, creds model.Credentials) (token string, admin model.Admin, err error)
	Register(ctx context.Context, reg model.Registration) (model.Admin, error)
	Profile(ctx context.Context) (model.Admin, error)
}

type PrizeRepository interface {
	ListPublic(ctx context.Context) ([]model.Prize, error)
	ListAll(ctx context.Context) ([]model.Prize, error)
	Get(ctx context.Context, id string) (model.Prize, error)
	Create(ctx context.Context, prize model.Prize) (model.Prize, error)
	Update(ctx context.Context, prize model.Prize) (model.Prize, error)
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	Check(ctx context.Context, form model.UserForm) (model.UserCheck, error)
	CreateOrUpdate(ctx context.Context, form model.UserForm) (model.User, error)
	List(ctx context.Context) ([]model.User, int, error)
	Get(ctx context.Context, id string) (model.User, error)
	Export(ctx context.Context) ([]model.User, error)
}

type EmployeeRepository interface {
	List(ctx context.Context) ([]model.Employee, error)
	Get(ctx context.Context, id string) (model.Employee, error)
	Create(ctx context.Context, employee model.Employee) (model.Employee, error)
	Update(ctx context.Context, employee model.Employee) (model.Employee, error)
	Delete(ctx context.Context, id string) error
	Verify(ctx context.Context, code string) (*model.Employee, error)
	Import(ctx context.Context, filename string, file io.Reader) (model.ImportResult, error)
}

type SpinRepository interface {
	SpinForUser(ctx context.Context, userID string) (model.SpinOutcome, error)
	SpinForEmployee(ctx context.Context, code string) (model.SpinOutcome, error)
	UserSpins(ctx context.Context, userID string) (model.UserSpins, error)
	List(ctx context.Context, filter model.SpinFilter) (model.SpinPage, error)
	Stats(ctx context.Context, filter model.SpinFilter) (model.SpinStats, error)
}
