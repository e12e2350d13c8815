package auth_repo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/repository"
	"lucky_wheel/internal/repository/backend"
)

type repo struct {
	client *backend.Client
}

func NewAuthRepository(client *backend.Client) repository.AuthRepository {
	return &repo{
		client: client,
	}
}

// Login - проверяет email и пароль администратора на бэкенде
// Возвращает токен бэкенда и данные администратора
func (r *repo) Login(ctx context.Context, creds model.Credentials) (string, model.Admin, error) {
	const op = "auth_repo.Login"

	body := map[string]string{
		"email":    creds.Email,
		"password": creds.Password,
	}

	env, err := r.client.Do(r.client.R(ctx).SetBody(body), http.MethodPost, "/auth/login", nil)
	if err != nil {
		return "", model.Admin{}, fmt.Errorf("%s: %w", op, err)
	}

	admin, err := decodeAdmin(env)
	if err != nil {
		return "", model.Admin{}, fmt.Errorf("%s: %w", op, err)
	}

	return env.Token, admin, nil
}

// Register - создаёт администратора на бэкенде
func (r *repo) Register(ctx context.Context, reg model.Registration) (model.Admin, error) {
	const op = "auth_repo.Register"

	body := map[string]string{
		"name":     reg.Name,
		"email":    reg.Email,
		"password": reg.Password,
	}

	env, err := r.client.Do(r.client.R(ctx).SetBody(body), http.MethodPost, "/auth/register", nil)
	if err != nil {
		return model.Admin{}, fmt.Errorf("%s: %w", op, err)
	}

	admin, err := decodeAdmin(env)
	if err != nil {
		return model.Admin{}, fmt.Errorf("%s: %w", op, err)
	}

	return admin, nil
}

// Profile - администратор, которому принадлежит токен из контекста
func (r *repo) Profile(ctx context.Context) (model.Admin, error) {
	const op = "auth_repo.Profile"

	env, err := r.client.Do(r.client.R(ctx), http.MethodGet, "/auth/me", nil)
	if err != nil {
		return model.Admin{}, fmt.Errorf("%s: %w", op, err)
	}

	admin, err := decodeAdmin(env)
	if err != nil {
		return model.Admin{}, fmt.Errorf("%s: %w", op, err)
	}

	return admin, nil
}

// Бэкенд отдаёт администратора либо в admin, либо в data
func decodeAdmin(env *backend.Envelope) (model.Admin, error) {
	raw := env.Admin
	if len(raw) == 0 {
		raw = env.Data
	}
	if len(raw) == 0 {
		return model.Admin{}, nil
	}

	var admin backend.Admin
	if err := json.Unmarshal(raw, &admin); err != nil {
		return model.Admin{}, err
	}

	return model.Admin{ID: admin.ID, Name: admin.Name, Email: admin.Email}, nil
}
