package wheel

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	dto "lucky_wheel/internal/api/dto/wheel"
	"lucky_wheel/internal/lib/logger/sl"
	"lucky_wheel/internal/model"
	"lucky_wheel/internal/service"
)

type fakePlay struct {
	events chan model.WheelEvent
	busy   bool
}

func (f *fakePlay) NewSession(context.Context) (model.WheelSnapshot, error) {
	return model.WheelSnapshot{SessionID: "s1", Prizes: []model.Prize{{ID: "p1", Name: "Pen", Probability: 50}}}, nil
}

func (f *fakePlay) Snapshot(id string) (model.WheelSnapshot, error) {
	if id != "s1" {
		return model.WheelSnapshot{}, service.ErrSessionNotFound
	}
	return model.WheelSnapshot{SessionID: "s1"}, nil
}

func (f *fakePlay) Image(string, io.Writer) error { return nil }

func (f *fakePlay) SpinForUser(_ context.Context, sessionID, userID string) (*model.Play, error) {
	if f.busy {
		return nil, service.ErrSpinInProgress
	}
	prize := &model.Prize{ID: "p1", Name: "Pen"}
	return &model.Play{
		SessionID:      sessionID,
		AnimationID:    "a1",
		Prize:          prize,
		IsWin:          true,
		RemainingSpins: 4,
		Plan:           model.WheelPlan{TotalRotation: 10, Duration: 5 * time.Second, TargetIndex: 0},
	}, nil
}

func (f *fakePlay) SpinForEmployee(ctx context.Context, sessionID, code string) (*model.Play, error) {
	return f.SpinForUser(ctx, sessionID, code)
}

func (f *fakePlay) Subscribe(id string) (<-chan model.WheelEvent, func(), error) {
	if id != "s1" {
		return nil, nil, service.ErrSessionNotFound
	}
	return f.events, func() {}, nil
}

func newRouter(serv service.PlayService) http.Handler {
	h := NewHandler(HandlerDeps{Serv: serv, Log: sl.Discard()})

	r := chi.NewRouter()
	r.Post("/wheel/session", h.NewSession)
	r.Get("/wheel/{session}/state", h.State)
	r.Get("/wheel/{session}/ws", h.Stream)
	r.Post("/wheel/{session}/spin/user", h.SpinUser)
	return r
}

func TestSpinUser(t *testing.T) {
	cases := []struct {
		name   string
		busy   bool
		body   string
		status int
	}{
		{name: "Started", body: `{"user_id":"u1"}`, status: http.StatusOK},
		{name: "AlreadySpinning", busy: true, body: `{"user_id":"u1"}`, status: http.StatusConflict},
		{name: "MissingUser", body: `{}`, status: http.StatusBadRequest},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router := newRouter(&fakePlay{busy: tc.busy})
			r := httptest.NewRequest(http.MethodPost, "/wheel/s1/spin/user", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, r)

			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d, body: %s", w.Code, tc.status, w.Body.String())
			}
			if tc.status != http.StatusOK {
				return
			}

			var res dto.PlayResponse
			if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if res.Prize == nil || res.Prize.ID != "p1" || res.Plan.DurationMS != 5000 || res.RemainingSpins != 4 {
				t.Errorf("unexpected response: %+v", res)
			}
		})
	}
}

func TestStateUnknownSession(t *testing.T) {
	router := newRouter(&fakePlay{})
	r := httptest.NewRequest(http.MethodGet, "/wheel/nope/state", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestNewSessionHidesProbability(t *testing.T) {
	router := newRouter(&fakePlay{})
	r := httptest.NewRequest(http.MethodPost, "/wheel/session", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	if strings.Contains(w.Body.String(), "probability") {
		t.Errorf("public snapshot leaks probability: %s", w.Body.String())
	}
}

func TestStream(t *testing.T) {
	play := &fakePlay{events: make(chan model.WheelEvent, 4)}
	srv := httptest.NewServer(newRouter(play))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/wheel/s1/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	play.events <- model.WheelEvent{Type: model.EventFrame, AnimationID: "a1", Angle: 1.5, Progress: 0.25}
	play.events <- model.WheelEvent{Type: model.EventFinished, AnimationID: "a1", Prize: &model.Prize{ID: "p1"}}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var frame, finished dto.EventMessage
	if err = conn.ReadJSON(&frame); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if err = conn.ReadJSON(&finished); err != nil {
		t.Fatalf("read finished: %v", err)
	}

	if frame.Type != "frame" || frame.Angle != 1.5 {
		t.Errorf("unexpected frame: %+v", frame)
	}
	if finished.Type != "finished" || finished.Prize == nil || finished.Prize.ID != "p1" {
		t.Errorf("unexpected finished: %+v", finished)
	}
}
