package wheel

import "math"

// EaseOutExpo - замедляющееся движение: быстро в начале, плавно к концу.
// Монотонна на [0, 1], в t=1 ровно 1 и никогда не превышает 1.
func EaseOutExpo(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}
