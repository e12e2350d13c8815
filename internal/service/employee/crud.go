package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/service"
)

// Verify - сотрудник по коду. Коды хранятся в верхнем регистре.
func (s *serv) Verify(ctx context.Context, code string) (model.Employee, error) {
	code = normalizeCode(code)
	if code == "" {
		return model.Employee{}, service.ErrEmployeeNotFound
	}

	employee, err := s.repo.Verify(ctx, code)
	if err != nil {
		return model.Employee{}, err
	}
	if employee == nil {
		return model.Employee{}, service.ErrEmployeeNotFound
	}

	return *employee, nil
}

func (s *serv) List(ctx context.Context) ([]model.Employee, error) {
	return s.repo.List(ctx)
}

func (s *serv) Get(ctx context.Context, id string) (model.Employee, error) {
	return s.repo.Get(ctx, id)
}

func (s *serv) Create(ctx context.Context, employee model.Employee) (model.Employee, error) {
	if err := validate(&employee); err != nil {
		return model.Employee{}, err
	}
	// Новому сотруднику доступны все выданные вращения
	employee.RemainingSpins = employee.TotalSpins

	return s.repo.Create(ctx, employee)
}

func (s *serv) Update(ctx context.Context, employee model.Employee) (model.Employee, error) {
	if employee.ID == "" {
		return model.Employee{}, errors.New("employee id is required")
	}
	if err := validate(&employee); err != nil {
		return model.Employee{}, err
	}

	return s.repo.Update(ctx, employee)
}

func (s *serv) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validate(e *model.Employee) error {
	e.EmployeeCode = normalizeCode(e.EmployeeCode)
	e.Name = strings.TrimSpace(e.Name)
	e.Email = strings.ToLower(strings.TrimSpace(e.Email))

	switch {
	case e.EmployeeCode == "":
		return errors.New("employee code is required")
	case e.Name == "":
		return errors.New("employee name is required")
	case e.MachinesSold < 0 || e.TotalSpins < 0:
		return fmt.Errorf("employee %s: counters must not be negative", e.EmployeeCode)
	}

	return nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
