package converter

import (
	dto "lucky_wheel/internal/api/dto/wheel"
	"lucky_wheel/internal/model"
)

func ToPlayResponse(p model.Play) dto.PlayResponse {
	return dto.PlayResponse{
		SessionID:      p.SessionID,
		AnimationID:    p.AnimationID,
		Prize:          toPublicPrizePtr(p.Prize),
		IsWin:          p.IsWin,
		RemainingSpins: p.RemainingSpins,
		Plan: dto.PlanResponse{
			StartAngle:    p.Plan.StartAngle,
			TotalRotation: p.Plan.TotalRotation,
			EndAngle:      p.Plan.EndAngle,
			DurationMS:    p.Plan.Duration.Milliseconds(),
			TargetIndex:   p.Plan.TargetIndex,
		},
	}
}

func ToSnapshotResponse(s model.WheelSnapshot) dto.SnapshotResponse {
	return dto.SnapshotResponse{
		SessionID: s.SessionID,
		Angle:     s.Angle,
		Spinning:  s.Spinning,
		Animating: s.Animating,
		Prizes:    ToPublicPrizes(s.Prizes),
	}
}

func ToEventMessage(ev model.WheelEvent) dto.EventMessage {
	return dto.EventMessage{
		Type:        string(ev.Type),
		AnimationID: ev.AnimationID,
		Angle:       ev.Angle,
		Progress:    ev.Progress,
		Cue:         ev.Cue,
		Volume:      ev.Volume,
		Prize:       toPublicPrizePtr(ev.Prize),
	}
}
