package backend

import (
	"time"

	"lucky_wheel/internal/model"
)

// Типы ниже повторяют JSON бэкенда

type Prize struct {
	ID                string  `json:"_id,omitempty"`
	Name              string  `json:"name"`
	ImageURL          string  `json:"imageUrl,omitempty"`
	Description       string  `json:"description,omitempty"`
	Probability       float64 `json:"probability"`
	OriginalQuantity  int     `json:"originalQuantity"`
	RemainingQuantity int     `json:"remainingQuantity"`
	Active            bool    `json:"active"`
	IsRealPrize       bool    `json:"isRealPrize"`
	Tier              int     `json:"tier,omitempty"`
}

type User struct {
	ID           string    `json:"_id,omitempty"`
	ExportID     string    `json:"id,omitempty"` // выгрузка отдаёт id без подчёркивания
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address,omitempty"`
	CodeShop     string    `json:"codeShop,omitempty"`
	SpinsToday   int       `json:"spinsToday,omitempty"`
	LastSpinDate time.Time `json:"lastSpinDate,omitzero"`
	CreatedAt    time.Time `json:"createdAt,omitzero"`
}

type Employee struct {
	ID             string    `json:"_id,omitempty"`
	EmployeeCode   string    `json:"employeeCode"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	CodeShop       string    `json:"codeShop,omitempty"`
	Address        string    `json:"address,omitempty"`
	MachinesSold   int       `json:"machinesSold"`
	RemainingSpins int       `json:"remainingSpins"`
	TotalSpins     int       `json:"totalSpins"`
	CreatedAt      time.Time `json:"createdAt,omitzero"`
}

type Admin struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Spin struct {
	ID        string    `json:"_id"`
	User      *User     `json:"user,omitempty"`
	Employee  *User     `json:"employee,omitempty"`
	Prize     *Prize    `json:"prize,omitempty"`
	IsWin     bool      `json:"isWin"`
	CreatedAt time.Time `json:"createdAt"`
}

type SpinResult struct {
	Spin           Spin `json:"spin"`
	RemainingSpins int  `json:"remainingSpins"`
}

type UserSpins struct {
	RemainingSpins int    `json:"remainingSpins"`
	Spins          []Spin `json:"spins"`
}

type UserCheck struct {
	Exists bool  `json:"exists"`
	User   *User `json:"user,omitempty"`
}

type PrizeStat struct {
	ID                string `json:"_id"`
	Name              string `json:"name"`
	Count             int    `json:"count"`
	OriginalQuantity  int    `json:"originalQuantity"`
	RemainingQuantity int    `json:"remainingQuantity"`
}

type SpinStats struct {
	TotalSpins int         `json:"totalSpins"`
	TotalWins  int         `json:"totalWins"`
	PrizeStats []PrizeStat `json:"prizeStats"`
}

type ImportResult struct {
	Total   int `json:"total"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

func (p Prize) Model() model.Prize {
	return model.Prize{
		ID:                p.ID,
		Name:              p.Name,
		ImageURL:          p.ImageURL,
		Description:       p.Description,
		Probability:       p.Probability,
		OriginalQuantity:  p.OriginalQuantity,
		RemainingQuantity: p.RemainingQuantity,
		Active:            p.Active,
		IsRealPrize:       p.IsRealPrize,
		Tier:              p.Tier,
	}
}

func PrizeFromModel(p model.Prize) Prize {
	return Prize{
		ID:                p.ID,
		Name:              p.Name,
		ImageURL:          p.ImageURL,
		Description:       p.Description,
		Probability:       p.Probability,
		OriginalQuantity:  p.OriginalQuantity,
		RemainingQuantity: p.RemainingQuantity,
		Active:            p.Active,
		IsRealPrize:       p.IsRealPrize,
		Tier:              p.Tier,
	}
}

func Prizes(in []Prize) []model.Prize {
	out := make([]model.Prize, 0, len(in))
	for _, p := range in {
		out = append(out, p.Model())
	}
	return out
}

func (u User) Model() model.User {
	id := u.ID
	if id == "" {
		id = u.ExportID
	}
	return model.User{
		ID:           id,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		Address:      u.Address,
		CodeShop:     u.CodeShop,
		SpinsToday:   u.SpinsToday,
		LastSpinDate: u.LastSpinDate,
		CreatedAt:    u.CreatedAt,
	}
}

func Users(in []User) []model.User {
	out := make([]model.User, 0, len(in))
	for _, u := range in {
		out = append(out, u.Model())
	}
	return out
}

func (e Employee) Model() model.Employee {
	return model.Employee{
		ID:             e.ID,
		EmployeeCode:   e.EmployeeCode,
		Name:           e.Name,
		Email:          e.Email,
		Phone:          e.Phone,
		CodeShop:       e.CodeShop,
		Address:        e.Address,
		MachinesSold:   e.MachinesSold,
		RemainingSpins: e.RemainingSpins,
		TotalSpins:     e.TotalSpins,
		CreatedAt:      e.CreatedAt,
	}
}

func EmployeeFromModel(e model.Employee) Employee {
	return Employee{
		ID:             e.ID,
		EmployeeCode:   e.EmployeeCode,
		Name:           e.Name,
		Email:          e.Email,
		Phone:          e.Phone,
		CodeShop:       e.CodeShop,
		Address:        e.Address,
		MachinesSold:   e.MachinesSold,
		RemainingSpins: e.RemainingSpins,
		TotalSpins:     e.TotalSpins,
	}
}

func Employees(in []Employee) []model.Employee {
	out := make([]model.Employee, 0, len(in))
	for _, e := range in {
		out = append(out, e.Model())
	}
	return out
}

func (s Spin) Model() model.Spin {
	out := model.Spin{ID: s.ID, IsWin: s.IsWin, CreatedAt: s.CreatedAt}
	if s.User != nil {
		u := s.User.Model()
		out.User = &u
	}
	if s.Employee != nil {
		e := s.Employee.Model()
		out.Employee = &e
	}
	if s.Prize != nil {
		p := s.Prize.Model()
		out.Prize = &p
	}
	return out
}

func Spins(in []Spin) []model.Spin {
	out := make([]model.Spin, 0, len(in))
	for _, s := range in {
		out = append(out, s.Model())
	}
	return out
}

func (s SpinStats) Model() model.SpinStats {
	out := model.SpinStats{
		TotalSpins: s.TotalSpins,
		TotalWins:  s.TotalWins,
		PrizeStats: make([]model.PrizeStat, 0, len(s.PrizeStats)),
	}
	for _, p := range s.PrizeStats {
		out.PrizeStats = append(out.PrizeStats, model.PrizeStat{
			PrizeID:           p.ID,
			Name:              p.Name,
			Count:             p.Count,
			OriginalQuantity:  p.OriginalQuantity,
			RemainingQuantity: p.RemainingQuantity,
		})
	}
	return out
}
