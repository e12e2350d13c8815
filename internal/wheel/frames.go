package wheel

import "time"

// FrameSource выдаёт отметки времени кадров. Frame блокируется до следующего кадра,
// поэтому каждый шаг анимации запрашивается только после отрисовки предыдущего.
type FrameSource interface {
	Frame() time.Time
}

// Ticker - источник кадров с фиксированной частотой обновления экрана.
// Время берётся из time.Now, то есть из монотонных часов.
type Ticker struct {
	interval time.Duration
}

func NewTicker(fps int) *Ticker {
	if fps <= 0 {
		fps = 60
	}
	return &Ticker{interval: time.Second / time.Duration(fps)}
}

func (t *Ticker) Frame() time.Time {
	time.Sleep(t.interval)
	return time.Now()
}
