package play

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"lucky_wheel/internal/lib/logger/sl"
	"lucky_wheel/internal/model"
	"lucky_wheel/internal/service"
	"lucky_wheel/internal/wheel"
)

// SpinForUser тратит вращение пользователя на бэкенде и запускает анимацию до выигранного приза
func (s *serv) SpinForUser(ctx context.Context, sessionID, userID string) (*model.Play, error) {
	return s.play(ctx, sessionID, func(ctx context.Context) (model.SpinOutcome, error) {
		return s.spins.SpinForUser(ctx, userID)
	})
}

// SpinForEmployee - то же для сотрудника по коду
func (s *serv) SpinForEmployee(ctx context.Context, sessionID, code string) (*model.Play, error) {
	return s.play(ctx, sessionID, func(ctx context.Context) (model.SpinOutcome, error) {
		return s.spins.SpinForEmployee(ctx, code)
	})
}

func (s *serv) play(ctx context.Context, sessionID string, spin func(context.Context) (model.SpinOutcome, error)) (*model.Play, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	// Флаг держится от запроса к бэкенду до конца анимации
	if !sess.state.Spinning.CompareAndSwap(false, true) {
		return nil, service.ErrSpinInProgress
	}
	if sess.state.Animating() {
		sess.state.Spinning.Store(false)
		return nil, service.ErrSpinInProgress
	}

	outcome, err := spin(ctx)
	if err != nil {
		sess.state.Spinning.Store(false)
		return nil, err
	}

	res, err := s.animate(ctx, sess, outcome)
	if err != nil {
		sess.state.Spinning.Store(false)
		return nil, err
	}

	return res, nil
}

func (s *serv) animate(ctx context.Context, sess *session, outcome model.SpinOutcome) (*model.Play, error) {
	won := outcome.Spin.Prize
	prizes := sess.Prizes()

	if won != nil && wheel.IndexOf(prizes, won.ID) < 0 {
		prizes = s.refreshPrizes(ctx, sess, won.ID)
	}

	// Приз, которого нет на колесе, всё равно остаётся результатом, но колесо крутится без цели
	var target *model.Prize
	if won != nil && wheel.IndexOf(prizes, won.ID) >= 0 {
		target = won
	} else if won != nil {
		s.log.Warn("won prize is not on the wheel", slog.String("session_id", sess.id), slog.String("prize_id", won.ID))
	}

	animationID := uuid.NewString()
	sess.setAnimation(animationID)

	w := wheel.New(s.cfg, prizes, wheel.Deps{
		State:   sess.state,
		Frames:  wheel.NewTicker(s.fps),
		Effects: sess.sink,
		Log:     s.log.With(slog.String("session_id", sess.id)),
	})

	onFrame := func(f wheel.Frame) {
		sess.broadcast(model.WheelEvent{
			Type:        model.EventFrame,
			AnimationID: animationID,
			Angle:       f.Angle,
			Progress:    f.Progress,
		})
	}

	onFinished := func(out wheel.Outcome) {
		sess.state.Spinning.Store(false)
		// Итог - приз бэкенда, даже если колесо крутилось без цели
		sess.broadcast(model.WheelEvent{
			Type:        model.EventFinished,
			AnimationID: animationID,
			Angle:       out.FinalAngle,
			Progress:    1,
			Prize:       won,
		})
	}

	res := &model.Play{
		SessionID:      sess.id,
		AnimationID:    animationID,
		Prize:          won,
		IsWin:          outcome.Spin.IsWin,
		RemainingSpins: outcome.RemainingSpins,
	}

	plan, err := w.Spin(target, onFrame, onFinished)
	switch {
	case errors.Is(err, wheel.ErrNoSegments):
		// Вращение уже списано бэкендом, поэтому результат отдаём и без анимации
		s.log.Warn("wheel has no prizes, skipping animation", slog.String("session_id", sess.id))
		sess.state.Spinning.Store(false)
		res.Plan = model.WheelPlan{StartAngle: sess.state.Angle(), EndAngle: sess.state.Angle(), TargetIndex: -1}
		return res, nil
	case errors.Is(err, wheel.ErrAlreadySpinning):
		return nil, service.ErrSpinInProgress
	case err != nil:
		return nil, err
	}
	res.Plan = plan.Model()

	s.log.Info("wheel spin started",
		slog.String("session_id", sess.id),
		slog.String("animation_id", animationID),
		slog.String("spin_id", outcome.Spin.ID),
		slog.Bool("targeted", target != nil),
		slog.Int("remaining_spins", outcome.RemainingSpins),
	)

	return res, nil
}

// refreshPrizes перечитывает список один раз, если бэкенд вернул неизвестный приз
func (s *serv) refreshPrizes(ctx context.Context, sess *session, prizeID string) []model.Prize {
	prizes, err := s.prizes.ListPublic(ctx)
	if err != nil {
		s.log.Warn("failed to refresh prizes", slog.String("prize_id", prizeID), sl.Err(err))
		return sess.Prizes()
	}
	if len(prizes) > 0 {
		sess.setPrizes(prizes)
	}
	return sess.Prizes()
}
