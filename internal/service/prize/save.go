package prize

import (
	"context"
	"fmt"
	"strings"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/service"
)

func (s *serv) Create(ctx context.Context, prize model.Prize) (model.Prize, error) {
	if err := validate(&prize); err != nil {
		return model.Prize{}, err
	}
	// Новый приз начинается с полного остатка
	prize.RemainingQuantity = prize.OriginalQuantity

	return s.repo.Create(ctx, prize)
}

func (s *serv) Update(ctx context.Context, prize model.Prize) (model.Prize, error) {
	if prize.ID == "" {
		return model.Prize{}, fmt.Errorf("%w: id is required", service.ErrInvalidPrize)
	}
	if err := validate(&prize); err != nil {
		return model.Prize{}, err
	}
	if prize.RemainingQuantity > prize.OriginalQuantity {
		prize.RemainingQuantity = prize.OriginalQuantity
	}

	return s.repo.Update(ctx, prize)
}

func validate(prize *model.Prize) error {
	prize.Name = strings.TrimSpace(prize.Name)

	switch {
	case prize.Name == "":
		return fmt.Errorf("%w: name is required", service.ErrInvalidPrize)
	case prize.Probability < 0 || prize.Probability > 100:
		return fmt.Errorf("%w: probability must be between 0 and 100", service.ErrInvalidPrize)
	case prize.OriginalQuantity < 1:
		return fmt.Errorf("%w: quantity must be at least 1", service.ErrInvalidPrize)
	case prize.RemainingQuantity < 0:
		return fmt.Errorf("%w: remaining quantity must not be negative", service.ErrInvalidPrize)
	}

	return nil
}
