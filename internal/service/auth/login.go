package auth

import (
	"context"
	"errors"

	"lucky_wheel/internal/model"
	"lucky_wheel/pkg/token"
)

func (s *serv) Login(ctx context.Context, creds model.Credentials) (*model.AuthData, error) {
	// Пароль проверяет бэкенд, нам достаётся его токен
	backendToken, admin, err := s.authRepo.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	if backendToken == "" {
		return nil, errors.New("backend returned empty token")
	}

	// Токен бэкенда заворачиваем в собственный access токен
	accessToken, err := token.GenerateAccessToken(
		admin,
		backendToken,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken: accessToken,
		Admin:       admin,
	}, nil
}
