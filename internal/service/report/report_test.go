package report

import (
	"context"
	"errors"
	"testing"

	"lucky_wheel/internal/lib/sheet"
	"lucky_wheel/internal/model"
)

type fakeSpins struct {
	pages   []model.SpinPage
	stats   model.SpinStats
	err     error
	filters []model.SpinFilter
}

func (f *fakeSpins) SpinForUser(context.Context, string) (model.SpinOutcome, error) {
	return model.SpinOutcome{}, nil
}

func (f *fakeSpins) SpinForEmployee(context.Context, string) (model.SpinOutcome, error) {
	return model.SpinOutcome{}, nil
}

func (f *fakeSpins) UserSpins(context.Context, string) (model.UserSpins, error) {
	return model.UserSpins{}, nil
}

func (f *fakeSpins) List(_ context.Context, filter model.SpinFilter) (model.SpinPage, error) {
	f.filters = append(f.filters, filter)
	if filter.Page-1 < len(f.pages) {
		return f.pages[filter.Page-1], nil
	}
	return model.SpinPage{}, nil
}

func (f *fakeSpins) Stats(context.Context, model.SpinFilter) (model.SpinStats, error) {
	return f.stats, f.err
}

type fakeUsers struct{ count int }

func (f fakeUsers) Check(context.Context, model.UserForm) (model.UserCheck, error) {
	return model.UserCheck{}, nil
}

func (f fakeUsers) CreateOrUpdate(context.Context, model.UserForm) (model.User, error) {
	return model.User{}, nil
}

func (f fakeUsers) List(context.Context) ([]model.User, int, error) { return nil, f.count, nil }
func (f fakeUsers) Get(context.Context, string) (model.User, error) { return model.User{}, nil }

func (f fakeUsers) Export(context.Context) ([]model.User, error) {
	return []model.User{{ID: "u1", Name: "Minh", Email: "m@example.com"}}, nil
}

type fakePrizes struct{ n int }

func (f fakePrizes) ListPublic(context.Context) ([]model.Prize, error) { return nil, nil }
func (f fakePrizes) ListAll(context.Context) ([]model.Prize, error) {
	return make([]model.Prize, f.n), nil
}
func (f fakePrizes) Get(context.Context, string) (model.Prize, error) { return model.Prize{}, nil }
func (f fakePrizes) Create(context.Context, model.Prize) (model.Prize, error) {
	return model.Prize{}, nil
}
func (f fakePrizes) Update(context.Context, model.Prize) (model.Prize, error) {
	return model.Prize{}, nil
}
func (f fakePrizes) Delete(context.Context, string) error { return nil }

func TestDashboard(t *testing.T) {
	spins := &fakeSpins{stats: model.SpinStats{TotalSpins: 10, TotalWins: 4}}
	s := NewReportService(spins, fakeUsers{count: 7}, fakePrizes{n: 3}, nil)

	d, err := s.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.UsersCount != 7 || d.PrizesCount != 3 || d.Stats.TotalWins != 4 {
		t.Errorf("unexpected dashboard: %+v", d)
	}

	spins.err = errors.New("backend down")
	if _, err = s.Dashboard(context.Background()); err == nil {
		t.Error("expected error when stats fail")
	}
}

func TestSpinsPageDefaults(t *testing.T) {
	spins := &fakeSpins{}
	s := NewReportService(spins, fakeUsers{}, fakePrizes{}, nil)

	if _, err := s.Spins(context.Background(), model.SpinFilter{Limit: 1000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := spins.filters[0]; got.Page != 1 || got.Limit != maxLimit {
		t.Errorf("unexpected filter: %+v", got)
	}
}

func TestExportSpinsWalksPages(t *testing.T) {
	user := &model.User{Name: "Minh"}
	employee := &model.User{Name: "Lan"}
	spins := &fakeSpins{pages: []model.SpinPage{
		{Spins: []model.Spin{{ID: "s1", User: user, IsWin: true, Prize: &model.Prize{Name: "Pen"}}}, Pagination: model.Pagination{TotalPages: 2}},
		{Spins: []model.Spin{{ID: "s2", Employee: employee}}, Pagination: model.Pagination{TotalPages: 2}},
	}}
	s := NewReportService(spins, fakeUsers{}, fakePrizes{}, nil)

	data, err := s.ExportSpins(context.Background(), model.SpinFilter{StartDate: "2026-01-01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(spins.filters) != 2 || spins.filters[1].StartDate != "2026-01-01" {
		t.Errorf("unexpected page requests: %+v", spins.filters)
	}

	rows, err := sheet.Read(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["Phần thưởng"] != "Pen" || rows[0]["Loại"] != "Khách hàng" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1]["Người quay"] != "Lan" || rows[1]["Loại"] != "Nhân viên" || rows[1]["Kết quả"] != "Không trúng" {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
}

func TestExportUsers(t *testing.T) {
	s := NewReportService(&fakeSpins{}, fakeUsers{}, fakePrizes{}, nil)

	data, err := s.ExportUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := sheet.Read(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0]["Họ tên"] != "Minh" || rows[0]["Mã cửa hàng"] != "Không có" {
		t.Errorf("unexpected rows: %+v", rows)
	}
}
