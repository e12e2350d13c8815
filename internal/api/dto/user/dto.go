package user

import "time"

type UserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=8,max=15"`
	Address  string `json:"address"`
	CodeShop string `json:"code_shop"`
}

type UserResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Address      string     `json:"address,omitempty"`
	CodeShop     string     `json:"code_shop,omitempty"`
	SpinsToday   int        `json:"spins_today"`
	LastSpinDate *time.Time `json:"last_spin_date,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

type CheckResponse struct {
	Exists bool          `json:"exists"`
	User   *UserResponse `json:"user,omitempty"`
}

type EntryResponse struct {
	User           UserResponse `json:"user"`
	RemainingSpins int          `json:"remaining_spins"`
	Created        bool         `json:"created"`
}

type ListResponse struct {
	Count int            `json:"count"`
	Items []UserResponse `json:"items"`
}
