package prize

import (
	"context"

	"lucky_wheel/internal/model"
)

// Public - призы колеса: порядок списка задаёт порядок секторов
func (s *serv) Public(ctx context.Context) ([]model.Prize, error) {
	return s.repo.ListPublic(ctx)
}

func (s *serv) List(ctx context.Context) ([]model.Prize, error) {
	return s.repo.ListAll(ctx)
}

func (s *serv) Get(ctx context.Context, id string) (model.Prize, error) {
	return s.repo.Get(ctx, id)
}

func (s *serv) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
