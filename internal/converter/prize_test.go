package converter

import (
	"testing"

	dto "lucky_wheel/internal/api/dto/prize"
)

func TestToPrize(t *testing.T) {
	remaining := 2
	inactive := false

	cases := []struct {
		name          string
		req           dto.PrizeRequest
		wantActive    bool
		wantRemaining int
	}{
		{
			name:          "Defaults",
			req:           dto.PrizeRequest{Name: "Voucher", OriginalQuantity: 5},
			wantActive:    true,
			wantRemaining: 5,
		},
		{
			name:          "Explicit",
			req:           dto.PrizeRequest{Name: "Voucher", OriginalQuantity: 5, RemainingQuantity: &remaining, Active: &inactive},
			wantActive:    false,
			wantRemaining: 2,
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := ToPrize("p1", tc.req)
			if p.ID != "p1" || p.Active != tc.wantActive || p.RemainingQuantity != tc.wantRemaining {
				t.Errorf("unexpected prize: %+v", p)
			}
		})
	}
}
