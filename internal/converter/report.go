package converter

import (
	prizeDTO "lucky_wheel/internal/api/dto/prize"
	dto "lucky_wheel/internal/api/dto/report"
	"lucky_wheel/internal/model"
)

func ToSpinFilter(q dto.SpinQuery) model.SpinFilter {
	return model.SpinFilter{
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		Page:      q.Page,
		Limit:     q.Limit,
	}
}

func ToSpinResponse(s model.Spin) dto.SpinResponse {
	var prize *prizeDTO.PrizeResponse
	if s.Prize != nil {
		p := ToPrizeResponse(*s.Prize)
		prize = &p
	}
	return dto.SpinResponse{
		ID:        s.ID,
		User:      toUserPtr(s.User),
		Employee:  toUserPtr(s.Employee),
		Prize:     prize,
		IsWin:     s.IsWin,
		CreatedAt: s.CreatedAt,
	}
}

func ToSpinResponses(spins []model.Spin) []dto.SpinResponse {
	out := make([]dto.SpinResponse, 0, len(spins))
	for _, s := range spins {
		out = append(out, ToSpinResponse(s))
	}
	return out
}

func ToSpinPageResponse(p model.SpinPage) dto.SpinPageResponse {
	return dto.SpinPageResponse{
		Items: ToSpinResponses(p.Spins),
		Pagination: dto.PaginationResponse{
			Page:       p.Pagination.Page,
			Limit:      p.Pagination.Limit,
			TotalPages: p.Pagination.TotalPages,
			TotalItems: p.Pagination.TotalItems,
		},
	}
}

func ToUserSpinsResponse(s model.UserSpins) dto.UserSpinsResponse {
	return dto.UserSpinsResponse{
		RemainingSpins: s.RemainingSpins,
		Spins:          ToSpinResponses(s.Spins),
	}
}

// ToStatsResponse считает долю каждого приза от общего числа выигрышей
func ToStatsResponse(s model.SpinStats) dto.StatsResponse {
	wins := s.TotalWins
	if wins == 0 {
		wins = 1
	}

	stats := make([]dto.PrizeStatResponse, 0, len(s.PrizeStats))
	for _, p := range s.PrizeStats {
		stats = append(stats, dto.PrizeStatResponse{
			PrizeID:           p.PrizeID,
			Name:              p.Name,
			Count:             p.Count,
			OriginalQuantity:  p.OriginalQuantity,
			RemainingQuantity: p.RemainingQuantity,
			Share:             float64(p.Count) / float64(wins) * 100,
		})
	}

	return dto.StatsResponse{
		TotalSpins: s.TotalSpins,
		TotalWins:  s.TotalWins,
		PrizeStats: stats,
	}
}

func ToDashboardResponse(d model.Dashboard) dto.DashboardResponse {
	return dto.DashboardResponse{
		Stats:       ToStatsResponse(d.Stats),
		UsersCount:  d.UsersCount,
		PrizesCount: d.PrizesCount,
	}
}
