package prize

import (
	"lucky_wheel/internal/repository"
	"lucky_wheel/internal/service"
)

type serv struct {
	repo repository.PrizeRepository
}

func NewPrizeService(repo repository.PrizeRepository) service.PrizeService {
	return &serv{
		repo: repo,
	}
}
