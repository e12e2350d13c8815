package report

import (
	"context"

	"golang.org/x/sync/errgroup"

	"lucky_wheel/internal/model"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

func (s *serv) Spins(ctx context.Context, filter model.SpinFilter) (model.SpinPage, error) {
	return s.spinRepo.List(ctx, pageFilter(filter))
}

func (s *serv) Stats(ctx context.Context, filter model.SpinFilter) (model.SpinStats, error) {
	return s.spinRepo.Stats(ctx, filter)
}

// Dashboard собирает статистику, число пользователей и призов параллельно
func (s *serv) Dashboard(ctx context.Context) (model.Dashboard, error) {
	var res model.Dashboard

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.spinRepo.Stats(ctx, model.SpinFilter{})
		if err != nil {
			return err
		}
		res.Stats = stats
		return nil
	})

	g.Go(func() error {
		_, count, err := s.userRepo.List(ctx)
		if err != nil {
			return err
		}
		res.UsersCount = count
		return nil
	})

	g.Go(func() error {
		prizes, err := s.prizeRepo.ListAll(ctx)
		if err != nil {
			return err
		}
		res.PrizesCount = len(prizes)
		return nil
	})

	if err := g.Wait(); err != nil {
		return model.Dashboard{}, err
	}

	return res, nil
}

func pageFilter(f model.SpinFilter) model.SpinFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	return f
}
