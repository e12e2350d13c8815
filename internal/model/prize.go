package model

type Prize struct {
	ID                string
	Name              string
	ImageURL          string
	Description       string
	Probability       float64 // Вес для выбора на бэкенде, колесо его не использует
	OriginalQuantity  int
	RemainingQuantity int
	Active            bool
	IsRealPrize       bool
	Tier              int
}
