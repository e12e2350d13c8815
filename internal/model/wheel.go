package model

import "time"

// WheelPlan - параметры анимации, которые клиент может воспроизвести сам
type WheelPlan struct {
	StartAngle    float64
	TotalRotation float64
	EndAngle      float64
	Duration      time.Duration
	TargetIndex   int // -1, если точка остановки случайная
}

// Play - результат вращения для посетителя: приз от бэкенда и план анимации колеса
type Play struct {
	SessionID      string
	AnimationID    string
	Prize          *Prize
	IsWin          bool
	RemainingSpins int
	Plan           WheelPlan
}

// WheelSnapshot - текущее состояние колеса посетителя
type WheelSnapshot struct {
	SessionID string
	Angle     float64
	Spinning  bool
	Animating bool
	Prizes    []Prize
}

type WheelEventType string

const (
	EventFrame    WheelEventType = "frame"
	EventCue      WheelEventType = "cue"
	EventFinished WheelEventType = "finished"
)

// WheelEvent - сообщение потока колеса: кадр, звуковой/визуальный эффект или итог вращения
type WheelEvent struct {
	Type        WheelEventType
	AnimationID string
	Angle       float64
	Progress    float64
	Cue         string
	Volume      float64
	Prize       *Prize
}
