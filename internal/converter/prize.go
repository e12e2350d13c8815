package converter

import (
	dto "lucky_wheel/internal/api/dto/prize"
	"lucky_wheel/internal/model"
)

// ToPrize - приз из запроса администратора. Неуказанные active и остаток получают значения по умолчанию.
func ToPrize(id string, req dto.PrizeRequest) model.Prize {
	p := model.Prize{
		ID:                id,
		Name:              req.Name,
		ImageURL:          req.ImageURL,
		Description:       req.Description,
		Probability:       req.Probability,
		OriginalQuantity:  req.OriginalQuantity,
		RemainingQuantity: req.OriginalQuantity,
		Active:            true,
		IsRealPrize:       req.IsRealPrize,
		Tier:              req.Tier,
	}
	if req.RemainingQuantity != nil {
		p.RemainingQuantity = *req.RemainingQuantity
	}
	if req.Active != nil {
		p.Active = *req.Active
	}
	return p
}

func ToPrizeResponse(p model.Prize) dto.PrizeResponse {
	return dto.PrizeResponse{
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

func ToPrizeResponses(prizes []model.Prize) []dto.PrizeResponse {
	out := make([]dto.PrizeResponse, 0, len(prizes))
	for _, p := range prizes {
		out = append(out, ToPrizeResponse(p))
	}
	return out
}

func ToPublicPrize(p model.Prize) dto.PublicPrizeResponse {
	return dto.PublicPrizeResponse{
		ID:          p.ID,
		Name:        p.Name,
		ImageURL:    p.ImageURL,
		Description: p.Description,
	}
}

func ToPublicPrizes(prizes []model.Prize) []dto.PublicPrizeResponse {
	out := make([]dto.PublicPrizeResponse, 0, len(prizes))
	for _, p := range prizes {
		out = append(out, ToPublicPrize(p))
	}
	return out
}

func toPublicPrizePtr(p *model.Prize) *dto.PublicPrizeResponse {
	if p == nil {
		return nil
	}
	res := ToPublicPrize(*p)
	return &res
}
