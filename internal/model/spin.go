package model

import "time"

type Spin struct {
	ID        string
	User      *User
	Employee  *User
	Prize     *Prize
	IsWin     bool
	CreatedAt time.Time
}

// SpinOutcome - ответ бэкенда на запрос вращения
type SpinOutcome struct {
	Spin           Spin
	RemainingSpins int
}

type UserSpins struct {
	RemainingSpins int
	Spins          []Spin
}

type SpinFilter struct {
	StartDate string
	EndDate   string
	Page      int
	Limit     int
}

type Pagination struct {
	Page       int
	Limit      int
	TotalPages int
	TotalItems int
}

type SpinPage struct {
	Spins      []Spin
	Pagination Pagination
}

type PrizeStat struct {
	PrizeID           string
	Name              string
	Count             int
	OriginalQuantity  int
	RemainingQuantity int
}

type SpinStats struct {
	TotalSpins int
	TotalWins  int
	PrizeStats []PrizeStat
}

type Dashboard struct {
	Stats       SpinStats
	UsersCount  int
	PrizesCount int
}
