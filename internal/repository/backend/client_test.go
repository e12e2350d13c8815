package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientDo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			if r.Header.Get("Authorization") != "Bearer secret" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = w.Write([]byte(`{"success":true,"count":1,"data":{"name":"A"}}`))
		case "/fail":
			_, _ = w.Write([]byte(`{"success":false,"message":"no spins"}`))
		case "/bad":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"success":false,"message":"invalid"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	ctx := WithToken(context.Background(), "secret")

	t.Run("decodes data", func(t *testing.T) {
		var out struct {
			Name string `json:"name"`
		}
		env, err := c.Do(c.R(ctx), http.MethodGet, "/ok", &out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Name != "A" || env.Count != 1 {
			t.Errorf("unexpected result: %+v %+v", out, env)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := c.Do(c.R(context.Background()), http.MethodGet, "/ok", nil)
		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("want ErrUnauthorized, got %v", err)
		}
	})

	t.Run("success false", func(t *testing.T) {
		_, err := c.Do(c.R(ctx), http.MethodGet, "/fail", nil)
		var apiErr *APIError
		if !errors.As(err, &apiErr) || apiErr.Message != "no spins" {
			t.Errorf("want APIError with message, got %v", err)
		}
	})

	t.Run("bad request", func(t *testing.T) {
		_, err := c.Do(c.R(ctx), http.MethodGet, "/bad", nil)
		var apiErr *APIError
		if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadRequest {
			t.Errorf("want 400 APIError, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := c.Do(c.R(ctx), http.MethodGet, "/missing", nil)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("want ErrNotFound, got %v", err)
		}
	})
}
