package play

import (
	"sync"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/wheel"
)

const (
	cueBuffer = 32
	subBuffer = 64
)

// session - колесо одного зрителя: состояние, список призов и подписчики потока
type session struct {
	id    string
	state *wheel.State
	sink  *wheel.CueSink
	done  chan struct{}

	mtx       sync.Mutex
	prizes    []model.Prize
	animation string
	subs      map[int]chan model.WheelEvent
	nextSub   int
	closed    bool
}

func newSession(id string, prizes []model.Prize) *session {
	s := &session{
		id:     id,
		state:  &wheel.State{},
		sink:   wheel.NewCueSink(cueBuffer),
		done:   make(chan struct{}),
		prizes: prizes,
		subs:   make(map[int]chan model.WheelEvent),
	}
	go s.pumpCues()
	return s
}

func (s *session) Prizes() []model.Prize {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.prizes
}

func (s *session) setPrizes(prizes []model.Prize) {
	s.mtx.Lock()
	s.prizes = prizes
	s.mtx.Unlock()
}

func (s *session) setAnimation(id string) {
	s.mtx.Lock()
	s.animation = id
	s.mtx.Unlock()
}

func (s *session) currentAnimation() string {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.animation
}

func (s *session) subscribe() (<-chan model.WheelEvent, func()) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	ch := make(chan model.WheelEvent, subBuffer)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mtx.Lock()
			defer s.mtx.Unlock()
			if c, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(c)
			}
		})
	}
}

// broadcast не блокируется: медленный подписчик теряет события
func (s *session) broadcast(ev model.WheelEvent) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (s *session) pumpCues() {
	for {
		select {
		case <-s.done:
			return
		case cue := <-s.sink.Cues():
			s.broadcast(model.WheelEvent{
				Type:        model.EventCue,
				AnimationID: s.currentAnimation(),
				Cue:         string(cue.Kind),
				Volume:      cue.Volume,
				Prize:       cue.Prize,
			})
		}
	}
}

func (s *session) close() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}
