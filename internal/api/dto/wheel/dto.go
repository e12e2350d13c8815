package wheel

import (
	"lucky_wheel/internal/api/dto/prize"
)

type SpinUserRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type SpinEmployeeRequest struct {
	EmployeeCode string `json:"employee_code" validate:"required"`
}

type PlanResponse struct {
	StartAngle    float64 `json:"start_angle"`
	TotalRotation float64 `json:"total_rotation"`
	EndAngle      float64 `json:"end_angle"`
	DurationMS    int64   `json:"duration_ms"`
	TargetIndex   int     `json:"target_index"`
}

type PlayResponse struct {
	SessionID      string                     `json:"session_id"`
	AnimationID    string                     `json:"animation_id"`
	Prize          *prize.PublicPrizeResponse `json:"prize,omitempty"`
	IsWin          bool                       `json:"is_win"`
	RemainingSpins int                        `json:"remaining_spins"`
	Plan           PlanResponse               `json:"plan"`
}

type SnapshotResponse struct {
	SessionID string                      `json:"session_id"`
	Angle     float64                     `json:"angle"`
	Spinning  bool                        `json:"spinning"`
	Animating bool                        `json:"animating"`
	Prizes    []prize.PublicPrizeResponse `json:"prizes"`
}

// EventMessage - сообщение websocket-потока колеса
type EventMessage struct {
	Type        string                     `json:"type"`
	AnimationID string                     `json:"animation_id,omitempty"`
	Angle       float64                    `json:"angle"`
	Progress    float64                    `json:"progress"`
	Cue         string                     `json:"cue,omitempty"`
	Volume      float64                    `json:"volume,omitempty"`
	Prize       *prize.PublicPrizeResponse `json:"prize,omitempty"`
}
