package prize_repo

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/repository"
	"lucky_wheel/internal/repository/backend"
)

const publicKey = "prizes:public"

type repo struct {
	client *backend.Client
	cache  *cache.Cache
}

// NewPrizeRepository - публичный список призов кэшируется на ttl и сбрасывается при любом изменении
func NewPrizeRepository(client *backend.Client, ttl time.Duration) repository.PrizeRepository {
	return &repo{
		client: client,
		cache:  cache.New(ttl, 2*ttl),
	}
}

// ListPublic - активные призы в порядке бэкенда, этот порядок задаёт сектора колеса
func (r *repo) ListPublic(ctx context.Context) ([]model.Prize, error) {
	const op = "prize_repo.ListPublic"

	if cached, ok := r.cache.Get(publicKey); ok {
		return clone(cached.([]model.Prize)), nil
	}

	var prizes []backend.Prize
	if _, err := r.client.Do(r.client.R(ctx), http.MethodGet, "/prizes", &prizes); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res := backend.Prizes(prizes)
	r.cache.SetDefault(publicKey, res)

	return clone(res), nil
}

// ListAll - все призы, включая неактивные
func (r *repo) ListAll(ctx context.Context) ([]model.Prize, error) {
	const op = "prize_repo.ListAll"

	var prizes []backend.Prize
	if _, err := r.client.Do(r.client.R(ctx), http.MethodGet, "/prizes/admin/all", &prizes); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return backend.Prizes(prizes), nil
}

func (r *repo) Get(ctx context.Context, id string) (model.Prize, error) {
	const op = "prize_repo.Get"

	var prize backend.Prize
	req := r.client.R(ctx).SetPathParam("id", id)
	if _, err := r.client.Do(req, http.MethodGet, "/prizes/{id}", &prize); err != nil {
		return model.Prize{}, fmt.Errorf("%s: %w", op, err)
	}

	return prize.Model(), nil
}

func (r *repo) Create(ctx context.Context, prize model.Prize) (model.Prize, error) {
	const op = "prize_repo.Create"

	body := backend.PrizeFromModel(prize)
	body.ID = ""

	var created backend.Prize
	if _, err := r.client.Do(r.client.R(ctx).SetBody(body), http.MethodPost, "/prizes", &created); err != nil {
		return model.Prize{}, fmt.Errorf("%s: %w", op, err)
	}
	r.cache.Delete(publicKey)

	return created.Model(), nil
}

func (r *repo) Update(ctx context.Context, prize model.Prize) (model.Prize, error) {
	const op = "prize_repo.Update"

	body := backend.PrizeFromModel(prize)
	body.ID = ""

	var updated backend.Prize
	req := r.client.R(ctx).SetPathParam("id", prize.ID).SetBody(body)
	if _, err := r.client.Do(req, http.MethodPut, "/prizes/{id}", &updated); err != nil {
		return model.Prize{}, fmt.Errorf("%s: %w", op, err)
	}
	r.cache.Delete(publicKey)

	return updated.Model(), nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	const op = "prize_repo.Delete"

	req := r.client.R(ctx).SetPathParam("id", id)
	if _, err := r.client.Do(req, http.MethodDelete, "/prizes/{id}", nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	r.cache.Delete(publicKey)

	return nil
}

func clone(prizes []model.Prize) []model.Prize {
	return append([]model.Prize(nil), prizes...)
}
