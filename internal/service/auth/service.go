package auth

import (
	"lucky_wheel/internal/config"
	"lucky_wheel/internal/repository"
	"lucky_wheel/internal/service"
)

type serv struct {
	authRepo  repository.AuthRepository
	jwtConfig config.JWTConfig
}

func NewAuthService(authRepo repository.AuthRepository, jwtConfig config.JWTConfig) service.AuthService {
	return &serv{
		authRepo:  authRepo,
		jwtConfig: jwtConfig,
	}
}
