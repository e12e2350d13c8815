package wheel

import (
	"errors"
	"fmt"
	"log/slog"

	"lucky_wheel/internal/lib/logger/sl"
	"lucky_wheel/internal/model"
)

var ErrCueDropped = errors.New("cue buffer is full")

// Effects - звуковые и визуальные эффекты колеса. Ошибки эффектов никогда не влияют на анимацию.
type Effects interface {
	Tick(volume float64) error
	Win(volume float64) error
	Confetti(prize model.Prize) error
}

type CueKind string

const (
	CueTick     CueKind = "tick"
	CueWin      CueKind = "win"
	CueConfetti CueKind = "confetti"
)

// Cue - команда эффекта для браузера
type Cue struct {
	Kind   CueKind
	Volume float64
	Prize  *model.Prize
}

// CueSink складывает эффекты в ограниченный канал для отправки по websocket.
// Если читатель не успевает, эффект отбрасывается.
type CueSink struct {
	cues chan Cue
}

func NewCueSink(size int) *CueSink {
	return &CueSink{cues: make(chan Cue, size)}
}

func (s *CueSink) Cues() <-chan Cue {
	return s.cues
}

func (s *CueSink) push(c Cue) error {
	select {
	case s.cues <- c:
		return nil
	default:
		return ErrCueDropped
	}
}

func (s *CueSink) Tick(volume float64) error {
	return s.push(Cue{Kind: CueTick, Volume: volume})
}

func (s *CueSink) Win(volume float64) error {
	return s.push(Cue{Kind: CueWin, Volume: volume})
}

func (s *CueSink) Confetti(prize model.Prize) error {
	return s.push(Cue{Kind: CueConfetti, Prize: &prize})
}

type NopEffects struct{}

func (NopEffects) Tick(float64) error         { return nil }
func (NopEffects) Win(float64) error          { return nil }
func (NopEffects) Confetti(model.Prize) error { return nil }

// fire запускает эффект в отдельной горутине. Ошибки и паники только логируются.
func fire(log *slog.Logger, name string, fn func() error) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Debug("effect panicked", slog.String("effect", name), sl.Err(fmt.Errorf("%v", r)))
			}
		}()
		if err := fn(); err != nil {
			log.Debug("effect failed", slog.String("effect", name), sl.Err(err))
		}
	}()
}
