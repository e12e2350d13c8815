package spin_repo

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/repository"
	"lucky_wheel/internal/repository/backend"
)

type repo struct {
	client *backend.Client
}

func NewSpinRepository(client *backend.Client) repository.SpinRepository {
	return &repo{
		client: client,
	}
}

// SpinForUser - бэкенд выбирает приз по вероятностям и списывает вращение пользователя
func (r *repo) SpinForUser(ctx context.Context, userID string) (model.SpinOutcome, error) {
	const op = "spin_repo.SpinForUser"

	body := map[string]string{"userId": userID}

	return r.spin(ctx, op, "/spins", body)
}

// SpinForEmployee - то же для сотрудника по его коду
func (r *repo) SpinForEmployee(ctx context.Context, code string) (model.SpinOutcome, error) {
	const op = "spin_repo.SpinForEmployee"

	body := map[string]string{"employeeCode": code}

	return r.spin(ctx, op, "/spins/employee", body)
}

func (r *repo) spin(ctx context.Context, op, path string, body any) (model.SpinOutcome, error) {
	var res backend.SpinResult
	if _, err := r.client.Do(r.client.R(ctx).SetBody(body), http.MethodPost, path, &res); err != nil {
		return model.SpinOutcome{}, fmt.Errorf("%s: %w", op, err)
	}

	return model.SpinOutcome{
		Spin:           res.Spin.Model(),
		RemainingSpins: res.RemainingSpins,
	}, nil
}

// UserSpins - история вращений пользователя и остаток на сегодня
func (r *repo) UserSpins(ctx context.Context, userID string) (model.UserSpins, error) {
	const op = "spin_repo.UserSpins"

	var res backend.UserSpins
	req := r.client.R(ctx).SetPathParam("userID", userID)
	if _, err := r.client.Do(req, http.MethodGet, "/spins/user/{userID}", &res); err != nil {
		return model.UserSpins{}, fmt.Errorf("%s: %w", op, err)
	}

	return model.UserSpins{
		RemainingSpins: res.RemainingSpins,
		Spins:          backend.Spins(res.Spins),
	}, nil
}

// List - страница истории вращений
func (r *repo) List(ctx context.Context, filter model.SpinFilter) (model.SpinPage, error) {
	const op = "spin_repo.List"

	var spins []backend.Spin
	env, err := r.client.Do(withFilter(r.client.R(ctx), filter), http.MethodGet, "/spins", &spins)
	if err != nil {
		return model.SpinPage{}, fmt.Errorf("%s: %w", op, err)
	}

	page := model.SpinPage{Spins: backend.Spins(spins)}
	if p := env.Pagination; p != nil {
		page.Pagination = model.Pagination{
			Page:       p.Page,
			Limit:      p.Limit,
			TotalPages: p.TotalPages,
			TotalItems: p.TotalItems,
		}
	}

	return page, nil
}

func (r *repo) Stats(ctx context.Context, filter model.SpinFilter) (model.SpinStats, error) {
	const op = "spin_repo.Stats"

	var stats backend.SpinStats
	if _, err := r.client.Do(withFilter(r.client.R(ctx), filter), http.MethodGet, "/spins/stats", &stats); err != nil {
		return model.SpinStats{}, fmt.Errorf("%s: %w", op, err)
	}

	return stats.Model(), nil
}

func withFilter(req *resty.Request, f model.SpinFilter) *resty.Request {
	if f.StartDate != "" {
		req.SetQueryParam("startDate", f.StartDate)
	}
	if f.EndDate != "" {
		req.SetQueryParam("endDate", f.EndDate)
	}
	if f.Page > 0 {
		req.SetQueryParam("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(f.Limit))
	}
	return req
}
