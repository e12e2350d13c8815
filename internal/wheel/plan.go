package wheel

import (
	"math"
	"time"

	"lucky_wheel/internal/model"
)

// Plan - параметры одной анимации вращения
type Plan struct {
	StartAngle    float64
	TotalRotation float64
	Duration      time.Duration
	TargetIndex   int // -1 для случайной остановки
}

// NewPlan рассчитывает вращение от current к stop.
// Колесо всегда крутится вперёд: fullRotations полных оборотов плюс положительная дельта до цели.
func NewPlan(current, stop float64, fullRotations int, duration time.Duration, targetIndex int) Plan {
	start := Normalize(current)
	delta := Normalize(stop - start)
	if delta <= 0 {
		delta = FullTurn
	}
	return Plan{
		StartAngle:    start,
		TotalRotation: float64(fullRotations)*FullTurn + delta,
		Duration:      duration,
		TargetIndex:   targetIndex,
	}
}

// Progress - доля прошедшего времени, ограниченная [0, 1]
func (p Plan) Progress(elapsed time.Duration) float64 {
	if p.Duration <= 0 {
		return 1
	}
	return math.Min(math.Max(float64(elapsed)/float64(p.Duration), 0), 1)
}

// AngleAt - угол колеса в момент elapsed от начала анимации
func (p Plan) AngleAt(elapsed time.Duration) float64 {
	return p.StartAngle + p.TotalRotation*EaseOutExpo(p.Progress(elapsed))
}

func (p Plan) EndAngle() float64 {
	return p.StartAngle + p.TotalRotation
}

func (p Plan) Model() model.WheelPlan {
	return model.WheelPlan{
		StartAngle:    p.StartAngle,
		TotalRotation: p.TotalRotation,
		EndAngle:      p.EndAngle(),
		Duration:      p.Duration,
		TargetIndex:   p.TargetIndex,
	}
}
