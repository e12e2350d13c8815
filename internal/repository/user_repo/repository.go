package user_repo

import (
	"context"
	"fmt"
	"net/http"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/repository"
	"lucky_wheel/internal/repository/backend"
)

type repo struct {
	client *backend.Client
}

func NewUserRepository(client *backend.Client) repository.UserRepository {
	return &repo{
		client: client,
	}
}

func formBody(form model.UserForm) backend.User {
	return backend.User{
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Address:  form.Address,
		CodeShop: form.CodeShop,
	}
}

// Check - есть ли пользователь с такими контактами
func (r *repo) Check(ctx context.Context, form model.UserForm) (model.UserCheck, error) {
	const op = "user_repo.Check"

	body := map[string]string{
		"email":    form.Email,
		"phone":    form.Phone,
		"address":  form.Address,
		"codeShop": form.CodeShop,
	}

	var check backend.UserCheck
	if _, err := r.client.Do(r.client.R(ctx).SetBody(body), http.MethodPost, "/users/check", &check); err != nil {
		return model.UserCheck{}, fmt.Errorf("%s: %w", op, err)
	}

	res := model.UserCheck{Exists: check.Exists}
	if check.User != nil {
		u := check.User.Model()
		res.User = &u
	}

	return res, nil
}

// CreateOrUpdate - создаёт пользователя или обновляет существующего по email
func (r *repo) CreateOrUpdate(ctx context.Context, form model.UserForm) (model.User, error) {
	const op = "user_repo.CreateOrUpdate"

	var user backend.User
	if _, err := r.client.Do(r.client.R(ctx).SetBody(formBody(form)), http.MethodPost, "/users", &user); err != nil {
		return model.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user.Model(), nil
}

// List - все пользователи и их общее число
func (r *repo) List(ctx context.Context) ([]model.User, int, error) {
	const op = "user_repo.List"

	var users []backend.User
	env, err := r.client.Do(r.client.R(ctx), http.MethodGet, "/users", &users)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	count := env.Count
	if count == 0 {
		count = len(users)
	}

	return backend.Users(users), count, nil
}

func (r *repo) Get(ctx context.Context, id string) (model.User, error) {
	const op = "user_repo.Get"

	var user backend.User
	req := r.client.R(ctx).SetPathParam("id", id)
	if _, err := r.client.Do(req, http.MethodGet, "/users/{id}", &user); err != nil {
		return model.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user.Model(), nil
}

// Export - пользователи в виде, подготовленном бэкендом для выгрузки
func (r *repo) Export(ctx context.Context) ([]model.User, error) {
	const op = "user_repo.Export"

	var users []backend.User
	if _, err := r.client.Do(r.client.R(ctx), http.MethodGet, "/users/export", &users); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return backend.Users(users), nil
}
