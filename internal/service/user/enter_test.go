package user

import (
	"context"
	"errors"
	"testing"

	"lucky_wheel/internal/lib/logger/sl"
	"lucky_wheel/internal/model"
)

type fakeUsers struct {
	check   model.UserCheck
	created *model.UserForm
}

func (f *fakeUsers) Check(context.Context, model.UserForm) (model.UserCheck, error) {
	return f.check, nil
}

func (f *fakeUsers) CreateOrUpdate(_ context.Context, form model.UserForm) (model.User, error) {
	f.created = &form
	return model.User{ID: "new", Name: form.Name, Email: form.Email}, nil
}

func (f *fakeUsers) List(context.Context) ([]model.User, int, error) { return nil, 0, nil }
func (f *fakeUsers) Get(context.Context, string) (model.User, error)  { return model.User{}, nil }
func (f *fakeUsers) Export(context.Context) ([]model.User, error)     { return nil, nil }

type fakeSpins struct {
	remaining int
	err       error
}

func (f fakeSpins) UserSpins(context.Context, string) (model.UserSpins, error) {
	return model.UserSpins{RemainingSpins: f.remaining}, f.err
}

func (f fakeSpins) SpinForUser(context.Context, string) (model.SpinOutcome, error) {
	return model.SpinOutcome{}, nil
}

func (f fakeSpins) SpinForEmployee(context.Context, string) (model.SpinOutcome, error) {
	return model.SpinOutcome{}, nil
}

func (f fakeSpins) List(context.Context, model.SpinFilter) (model.SpinPage, error) {
	return model.SpinPage{}, nil
}

func (f fakeSpins) Stats(context.Context, model.SpinFilter) (model.SpinStats, error) {
	return model.SpinStats{}, nil
}

func TestEnter(t *testing.T) {
	existing := &model.User{ID: "u1", Name: "Minh", SpinsToday: 2}

	cases := []struct {
		name          string
		check         model.UserCheck
		spins         fakeSpins
		wantRemaining int
		wantCreated   bool
	}{
		{
			name:          "NewUser",
			check:         model.UserCheck{Exists: false},
			wantRemaining: 5,
			wantCreated:   true,
		},
		{
			name:          "ExistingFromHistory",
			check:         model.UserCheck{Exists: true, User: existing},
			spins:         fakeSpins{remaining: 1},
			wantRemaining: 1,
		},
		{
			name:          "ExistingHistoryUnavailable",
			check:         model.UserCheck{Exists: true, User: existing},
			spins:         fakeSpins{err: errors.New("timeout")},
			wantRemaining: 3,
		},
		{
			name:          "ExistingNeverNegative",
			check:         model.UserCheck{Exists: true, User: &model.User{ID: "u2", SpinsToday: 9}},
			spins:         fakeSpins{err: errors.New("timeout")},
			wantRemaining: 0,
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			users := &fakeUsers{check: tc.check}
			s := NewUserService(users, tc.spins, 5, sl.Discard())

			entry, err := s.Enter(context.Background(), model.UserForm{Name: " Minh ", Email: " M@Example.com "})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if entry.RemainingSpins != tc.wantRemaining || entry.Created != tc.wantCreated {
				t.Errorf("unexpected entry: %+v", entry)
			}
			if tc.wantCreated && (users.created == nil || users.created.Email != "m@example.com") {
				t.Errorf("form not normalized: %+v", users.created)
			}
		})
	}
}
