package prize

type PrizeRequest struct {
	Name              string  `json:"name" validate:"required"`
	ImageURL          string  `json:"image_url" validate:"omitempty,url"`
	Description       string  `json:"description"`
	Probability       float64 `json:"probability" validate:"gte=0,lte=100"`
	OriginalQuantity  int     `json:"original_quantity" validate:"gte=1"`
	RemainingQuantity *int    `json:"remaining_quantity,omitempty" validate:"omitempty,gte=0"`
	Active            *bool   `json:"active,omitempty"`
	IsRealPrize       bool    `json:"is_real_prize"`
	Tier              int     `json:"tier" validate:"gte=0"`
}

type PrizeResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	ImageURL          string  `json:"image_url,omitempty"`
	Description       string  `json:"description,omitempty"`
	Probability       float64 `json:"probability"`
	OriginalQuantity  int     `json:"original_quantity"`
	RemainingQuantity int     `json:"remaining_quantity"`
	Active            bool    `json:"active"`
	IsRealPrize       bool    `json:"is_real_prize"`
	Tier              int     `json:"tier,omitempty"`
}

// PublicPrizeResponse - то, что видит посетитель: без вероятностей и остатков
type PublicPrizeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ImageURL    string `json:"image_url,omitempty"`
	Description string `json:"description,omitempty"`
}

type ListResponse[T any] struct {
	Count int `json:"count"`
	Items []T `json:"items"`
}
