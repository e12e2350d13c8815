package wheel

import (
	"sync"
	"sync/atomic"
)

// State - состояние колеса одного зрителя.
// Spinning принадлежит вызывающей стороне: она выставляет флаг перед запросом к бэкенду
// и снимает его по завершении. Колесо флаг только читает.
// Угол и признак анимации принадлежат колесу.
type State struct {
	Spinning atomic.Bool

	mtx       sync.RWMutex
	angle     float64
	animating bool
}

func (s *State) Angle() float64 {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.angle
}

func (s *State) Animating() bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.animating
}

// begin атомарно захватывает анимацию; false, если она уже идёт
func (s *State) begin() (float64, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.animating {
		return 0, false
	}
	s.animating = true
	return s.angle, true
}

func (s *State) setAngle(angle float64) {
	s.mtx.Lock()
	s.angle = angle
	s.mtx.Unlock()
}

func (s *State) end(angle float64) {
	s.mtx.Lock()
	s.angle = angle
	s.animating = false
	s.mtx.Unlock()
}
