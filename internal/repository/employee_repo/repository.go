package employee_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/repository"
	"lucky_wheel/internal/repository/backend"
)

type repo struct {
	client *backend.Client
}

func NewEmployeeRepository(client *backend.Client) repository.EmployeeRepository {
	return &repo{
		client: client,
	}
}

func (r *repo) List(ctx context.Context) ([]model.Employee, error) {
	const op = "employee_repo.List"

	var employees []backend.Employee
	if _, err := r.client.Do(r.client.R(ctx), http.MethodGet, "/employees", &employees); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return backend.Employees(employees), nil
}

func (r *repo) Get(ctx context.Context, id string) (model.Employee, error) {
	const op = "employee_repo.Get"

	var employee backend.Employee
	req := r.client.R(ctx).SetPathParam("id", id)
	if _, err := r.client.Do(req, http.MethodGet, "/employees/{id}", &employee); err != nil {
		return model.Employee{}, fmt.Errorf("%s: %w", op, err)
	}

	return employee.Model(), nil
}

func (r *repo) Create(ctx context.Context, employee model.Employee) (model.Employee, error) {
	const op = "employee_repo.Create"

	body := backend.EmployeeFromModel(employee)
	body.ID = ""

	var created backend.Employee
	if _, err := r.client.Do(r.client.R(ctx).SetBody(body), http.MethodPost, "/employees", &created); err != nil {
		return model.Employee{}, fmt.Errorf("%s: %w", op, err)
	}

	return created.Model(), nil
}

func (r *repo) Update(ctx context.Context, employee model.Employee) (model.Employee, error) {
	const op = "employee_repo.Update"

	body := backend.EmployeeFromModel(employee)
	body.ID = ""

	var updated backend.Employee
	req := r.client.R(ctx).SetPathParam("id", employee.ID).SetBody(body)
	if _, err := r.client.Do(req, http.MethodPut, "/employees/{id}", &updated); err != nil {
		return model.Employee{}, fmt.Errorf("%s: %w", op, err)
	}

	return updated.Model(), nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	const op = "employee_repo.Delete"

	req := r.client.R(ctx).SetPathParam("id", id)
	if _, err := r.client.Do(req, http.MethodDelete, "/employees/{id}", nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Verify - ищет сотрудника по коду. nil без ошибки, если код не найден.
func (r *repo) Verify(ctx context.Context, code string) (*model.Employee, error) {
	const op = "employee_repo.Verify"

	body := map[string]string{"employeeCode": code}

	env, err := r.client.Do(r.client.R(ctx).SetBody(body), http.MethodPost, "/employees/verify", nil)
	if errors.Is(err, backend.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if env.Exists != nil && !*env.Exists {
		return nil, nil
	}

	raw := env.Employee
	if len(raw) == 0 {
		raw = env.Data
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var employee backend.Employee
	if err = json.Unmarshal(raw, &employee); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res := employee.Model()
	return &res, nil
}

// Import - отправляет Excel-файл бэкенду одной multipart-формой
func (r *repo) Import(ctx context.Context, filename string, file io.Reader) (model.ImportResult, error) {
	const op = "employee_repo.Import"

	var res backend.ImportResult
	req := r.client.R(ctx).SetFileReader("file", filename, file)
	env, err := r.client.Do(req, http.MethodPost, "/employees/import", nil)
	if err != nil {
		return model.ImportResult{}, fmt.Errorf("%s: %w", op, err)
	}

	// Итоги импорта бэкенд кладёт либо в data, либо в results
	raw := env.Data
	if len(raw) == 0 {
		raw = env.Results
	}
	if len(raw) > 0 {
		if err = json.Unmarshal(raw, &res); err != nil {
			return model.ImportResult{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	return model.ImportResult{
		Total:   res.Total,
		Created: res.Created,
		Updated: res.Updated,
		Failed:  res.Failed,
	}, nil
}
