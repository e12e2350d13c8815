package model

import "time"

type Employee struct {
	ID             string
	EmployeeCode   string
	Name           string
	Email          string
	Phone          string
	CodeShop       string
	Address        string
	MachinesSold   int
	RemainingSpins int
	TotalSpins     int
	CreatedAt      time.Time
}

// ImportResult - итог массового импорта сотрудников из Excel
type ImportResult struct {
	Total   int
	Created int
	Updated int
	Failed  int
}
