package report

import (
	"time"

	"lucky_wheel/internal/api/dto/prize"
	"lucky_wheel/internal/api/dto/user"
)

// SpinQuery - параметры запроса истории (query string)
type SpinQuery struct {
	StartDate string `validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `validate:"omitempty,datetime=2006-01-02"`
	Page      int    `validate:"gte=0"`
	Limit     int    `validate:"gte=0,lte=100"`
}

type SpinResponse struct {
	ID        string               `json:"id"`
	User      *user.UserResponse   `json:"user,omitempty"`
	Employee  *user.UserResponse   `json:"employee,omitempty"`
	Prize     *prize.PrizeResponse `json:"prize,omitempty"`
	IsWin     bool                 `json:"is_win"`
	CreatedAt time.Time            `json:"created_at"`
}

type PaginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

type SpinPageResponse struct {
	Items      []SpinResponse     `json:"items"`
	Pagination PaginationResponse `json:"pagination"`
}

type UserSpinsResponse struct {
	RemainingSpins int            `json:"remaining_spins"`
	Spins          []SpinResponse `json:"spins"`
}

type PrizeStatResponse struct {
	PrizeID           string  `json:"prize_id"`
	Name              string  `json:"name"`
	Count             int     `json:"count"`
	OriginalQuantity  int     `json:"original_quantity"`
	RemainingQuantity int     `json:"remaining_quantity"`
	Share             float64 `json:"share"` // доля от всех выигрышей, %
}

type StatsResponse struct {
	TotalSpins int                 `json:"total_spins"`
	TotalWins  int                 `json:"total_wins"`
	PrizeStats []PrizeStatResponse `json:"prize_stats"`
}

type DashboardResponse struct {
	Stats       StatsResponse `json:"stats"`
	UsersCount  int           `json:"users_count"`
	PrizesCount int           `json:"prizes_count"`
}
