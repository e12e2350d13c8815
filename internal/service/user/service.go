package user

import (
	"log/slog"

	"lucky_wheel/internal/repository"
	"lucky_wheel/internal/service"
)

type serv struct {
	userRepo   repository.UserRepository
	spinRepo   repository.SpinRepository
	dailySpins int
	log        *slog.Logger
}

func NewUserService(
	userRepo repository.UserRepository,
	spinRepo repository.SpinRepository,
	dailySpins int,
	log *slog.Logger,
) service.UserService {
	return &serv{
		userRepo:   userRepo,
		spinRepo:   spinRepo,
		dailySpins: dailySpins,
		log:        log,
	}
}
