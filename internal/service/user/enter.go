package user

import (
	"context"
	"log/slog"
	"strings"

	"lucky_wheel/internal/lib/logger/sl"
	"lucky_wheel/internal/model"
)

// Enter допускает посетителя к колесу: находит его по контактам или создаёт нового
func (s *serv) Enter(ctx context.Context, form model.UserForm) (*model.Entry, error) {
	form = normalize(form)

	check, err := s.userRepo.Check(ctx, form)
	if err != nil {
		return nil, err
	}

	if check.Exists && check.User != nil {
		user := *check.User

		// Остаток по счётчику за сегодня, уточняется историей вращений
		remaining := s.dailySpins - user.SpinsToday
		history, err := s.spinRepo.UserSpins(ctx, user.ID)
		if err != nil {
			s.log.Warn("failed to load spin history", slog.String("user_id", user.ID), sl.Err(err))
		} else {
			remaining = history.RemainingSpins
		}

		return &model.Entry{
			User:           user,
			RemainingSpins: max(remaining, 0),
		}, nil
	}

	user, err := s.userRepo.CreateOrUpdate(ctx, form)
	if err != nil {
		return nil, err
	}

	return &model.Entry{
		User:           user,
		RemainingSpins: s.dailySpins,
		Created:        true,
	}, nil
}

func (s *serv) Check(ctx context.Context, form model.UserForm) (model.UserCheck, error) {
	return s.userRepo.Check(ctx, normalize(form))
}

func (s *serv) List(ctx context.Context) ([]model.User, int, error) {
	return s.userRepo.List(ctx)
}

func (s *serv) Get(ctx context.Context, id string) (model.User, error) {
	return s.userRepo.Get(ctx, id)
}

func (s *serv) Spins(ctx context.Context, userID string) (model.UserSpins, error) {
	return s.spinRepo.UserSpins(ctx, userID)
}

func normalize(form model.UserForm) model.UserForm {
	return model.UserForm{
		Name:     strings.TrimSpace(form.Name),
		Email:    strings.ToLower(strings.TrimSpace(form.Email)),
		Phone:    strings.TrimSpace(form.Phone),
		Address:  strings.TrimSpace(form.Address),
		CodeShop: strings.TrimSpace(form.CodeShop),
	}
}
