package auth

import (
	"context"

	"lucky_wheel/internal/model"
)

// Register - новый администратор создаётся на бэкенде, входить нужно отдельно
func (s *serv) Register(ctx context.Context, reg model.Registration) (model.Admin, error) {
	return s.authRepo.Register(ctx, reg)
}

func (s *serv) Profile(ctx context.Context) (model.Admin, error) {
	return s.authRepo.Profile(ctx)
}
