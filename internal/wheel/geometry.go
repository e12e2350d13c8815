package wheel

import (
	"math"

	"lucky_wheel/internal/model"
)

// FullTurn - полный оборот колеса в радианах
const FullTurn = 2 * math.Pi

// Segment - угловой сектор приза, отсчитанный от указателя (угол 0, справа)
type Segment struct {
	Index int
	Start float64
	End   float64
}

// SegmentWidth возвращает ширину сектора 2π/n. Для n <= 0 колесо пустое и ширина равна 0
func SegmentWidth(n int) float64 {
	if n <= 0 {
		return 0
	}
	return FullTurn / float64(n)
}

// Segments делит окружность на n равных секторов без зазоров и перекрытий
func Segments(n int) []Segment {
	if n <= 0 {
		return nil
	}
	width := SegmentWidth(n)
	segments := make([]Segment, n)
	for i := range segments {
		segments[i] = Segment{
			Index: i,
			Start: float64(i) * width,
			End:   float64(i+1) * width,
		}
	}
	// Последний сектор закрывает круг ровно, без накопленной погрешности
	segments[n-1].End = FullTurn
	return segments
}

// SegmentCenter - угол середины сектора i
func SegmentCenter(i, n int) float64 {
	width := SegmentWidth(n)
	return float64(i)*width + width/2
}

// Normalize приводит угол к диапазону [0, 2π)
func Normalize(angle float64) float64 {
	a := math.Mod(angle, FullTurn)
	if a < 0 {
		a += FullTurn
	}
	if a >= FullTurn {
		a = 0
	}
	return a
}

// StopAngle - абсолютный угол колеса, при котором указатель смотрит в середину сектора i.
// Колесо вращается навстречу указателю, поэтому угол середины инвертируется.
func StopAngle(i, n int) float64 {
	return Normalize(FullTurn - SegmentCenter(i, n))
}

// pointerPosition - положение указателя в координатах колеса для угла поворота angle
func pointerPosition(angle float64) float64 {
	return Normalize(FullTurn - Normalize(angle))
}

// LandedIndex - индекс сектора под указателем при угле поворота angle.
// Для пустого колеса возвращает -1.
func LandedIndex(angle float64, n int) int {
	if n <= 0 {
		return -1
	}
	idx := int(math.Floor(pointerPosition(angle) / SegmentWidth(n)))
	return ((idx % n) + n) % n
}

// IndexOf ищет приз по ID; -1, если приза на колесе нет
func IndexOf(prizes []model.Prize, id string) int {
	for i := range prizes {
		if prizes[i].ID == id {
			return i
		}
	}
	return -1
}
