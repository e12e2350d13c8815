package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/repository/backend"
	"lucky_wheel/pkg/token"
)

func TestAuth(t *testing.T) {
	secret := []byte("secret")
	valid, err := token.GenerateAccessToken(model.Admin{ID: "a1", Email: "a@example.com"}, "bt-1", secret, time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := AdminFromContext(r.Context())
		if !ok || claims.ID != "a1" || backend.TokenFromContext(r.Context()) != "bt-1" {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	h := Auth(secret)(next)

	cases := []struct {
		name   string
		setup  func(r *http.Request)
		status int
	}{
		{
			name:   "BearerHeader",
			setup:  func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+valid) },
			status: http.StatusOK,
		},
		{
			name:   "Cookie",
			setup:  func(r *http.Request) { r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: valid}) },
			status: http.StatusOK,
		},
		{
			name:   "Missing",
			setup:  func(r *http.Request) {},
			status: http.StatusUnauthorized,
		},
		{
			name:   "WrongScheme",
			setup:  func(r *http.Request) { r.Header.Set("Authorization", "Basic "+valid) },
			status: http.StatusUnauthorized,
		},
		{
			name:   "Garbage",
			setup:  func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") },
			status: http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/admin/prizes", nil)
			tc.setup(r)
			w := httptest.NewRecorder()

			h.ServeHTTP(w, r)

			if w.Code != tc.status {
				t.Errorf("status = %d, want %d", w.Code, tc.status)
			}
		})
	}
}
