package play

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/service"
)

// NewSession заводит колесо для нового зрителя с текущим списком призов
func (s *serv) NewSession(ctx context.Context) (model.WheelSnapshot, error) {
	prizes, err := s.prizes.ListPublic(ctx)
	if err != nil {
		return model.WheelSnapshot{}, err
	}

	sess := newSession(uuid.NewString(), prizes)
	s.sessions.Set(sess.id, sess, cache.DefaultExpiration)

	s.log.Debug("wheel session created", slog.String("session_id", sess.id), slog.Int("prizes", len(prizes)))

	return snapshot(sess), nil
}

func (s *serv) Snapshot(sessionID string) (model.WheelSnapshot, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return model.WheelSnapshot{}, err
	}
	return snapshot(sess), nil
}

// Image рисует колесо сессии в текущем положении
func (s *serv) Image(sessionID string, w io.Writer) error {
	sess, err := s.session(sessionID)
	if err != nil {
		return err
	}

	spinning := sess.state.Spinning.Load() || sess.state.Animating()
	if err = s.renderer.PNG(w, sess.Prizes(), sess.state.Angle(), spinning); err != nil {
		return fmt.Errorf("render wheel: %w", err)
	}
	return nil
}

func (s *serv) Subscribe(sessionID string) (<-chan model.WheelEvent, func(), error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, nil, err
	}

	events, cancel := sess.subscribe()
	return events, cancel, nil
}

// session находит сессию и продлевает ей жизнь
func (s *serv) session(id string) (*session, error) {
	v, ok := s.sessions.Get(id)
	if !ok {
		return nil, service.ErrSessionNotFound
	}
	sess := v.(*session)
	s.sessions.Set(id, sess, cache.DefaultExpiration)
	return sess, nil
}

func snapshot(sess *session) model.WheelSnapshot {
	return model.WheelSnapshot{
		SessionID: sess.id,
		Angle:     sess.state.Angle(),
		Spinning:  sess.state.Spinning.Load(),
		Animating: sess.state.Animating(),
		Prizes:    sess.Prizes(),
	}
}
