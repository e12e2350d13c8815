package employee_repo

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lucky_wheel/internal/repository/backend"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/employees/verify":
			body, _ := io.ReadAll(r.Body)
			if strings.Contains(string(body), "NV001") {
				_, _ = w.Write([]byte(`{"exists":true,"employee":{"_id":"e1","employeeCode":"NV001","name":"Lan","remainingSpins":3}}`))
				return
			}
			_, _ = w.Write([]byte(`{"exists":false}`))
		case "/employees/import":
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			f, header, err := r.FormFile("file")
			if err != nil || header.Filename != "staff.xlsx" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			_ = f.Close()
			_, _ = w.Write([]byte(`{"success":true,"results":{"total":3,"created":2,"updated":1,"failed":0}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestVerify(t *testing.T) {
	srv := newServer(t)
	defer srv.Close()

	repo := NewEmployeeRepository(backend.NewClient(srv.URL, time.Second))

	t.Run("known code", func(t *testing.T) {
		e, err := repo.Verify(context.Background(), "NV001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e == nil || e.Name != "Lan" || e.RemainingSpins != 3 {
			t.Errorf("unexpected employee: %+v", e)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		e, err := repo.Verify(context.Background(), "NV999")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e != nil {
			t.Errorf("expected nil employee, got %+v", e)
		}
	})
}

func TestImport(t *testing.T) {
	srv := newServer(t)
	defer srv.Close()

	repo := NewEmployeeRepository(backend.NewClient(srv.URL, time.Second))

	res, err := repo.Import(context.Background(), "staff.xlsx", strings.NewReader("xlsx-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Total != 3 || res.Created != 2 || res.Updated != 1 {
		t.Errorf("unexpected result: %+v", res)
	}
}
