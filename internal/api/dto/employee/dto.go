package employee

import "time"

type EmployeeRequest struct {
	EmployeeCode string `json:"employee_code" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	CodeShop     string `json:"code_shop"`
	Address      string `json:"address"`
	MachinesSold int    `json:"machines_sold" validate:"gte=0"`
	TotalSpins   int    `json:"total_spins" validate:"gte=0"`
}

type VerifyRequest struct {
	EmployeeCode string `json:"employee_code" validate:"required"`
}

type EmployeeResponse struct {
	ID             string     `json:"id"`
	EmployeeCode   string     `json:"employee_code"`
	Name           string     `json:"name"`
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	CodeShop       string     `json:"code_shop,omitempty"`
	Address        string     `json:"address,omitempty"`
	MachinesSold   int        `json:"machines_sold"`
	RemainingSpins int        `json:"remaining_spins"`
	TotalSpins     int        `json:"total_spins"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

type ImportResponse struct {
	Total   int `json:"total"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

type ListResponse struct {
	Count int                `json:"count"`
	Items []EmployeeResponse `json:"items"`
}
