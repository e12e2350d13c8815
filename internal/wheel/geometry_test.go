package wheel

import (
	"math"
	"testing"
	"time"

	"lucky_wheel/internal/model"
)

const eps = 1e-9

func TestSegmentsPartitionCircle(t *testing.T) {
	for n := 1; n <= 40; n++ {
		width := SegmentWidth(n)
		if math.Abs(width-FullTurn/float64(n)) > eps {
			t.Fatalf("n=%d: unexpected width %f", n, width)
		}

		segments := Segments(n)
		if len(segments) != n {
			t.Fatalf("n=%d: want %d segments, got %d", n, n, len(segments))
		}
		if segments[0].Start != 0 {
			t.Fatalf("n=%d: first segment starts at %f", n, segments[0].Start)
		}
		for i := 1; i < n; i++ {
			if segments[i].Start != segments[i-1].End {
				t.Fatalf("n=%d: gap between %d and %d", n, i-1, i)
			}
		}
		if segments[n-1].End != FullTurn {
			t.Fatalf("n=%d: last segment ends at %f", n, segments[n-1].End)
		}
	}

	if SegmentWidth(0) != 0 || Segments(0) != nil {
		t.Fatal("empty wheel must have no segments")
	}
}

func TestStopAngleRoundTrip(t *testing.T) {
	for n := 1; n <= 40; n++ {
		for i := 0; i < n; i++ {
			stop := StopAngle(i, n)
			if stop < 0 || stop >= FullTurn {
				t.Fatalf("n=%d i=%d: stop angle %f out of range", n, i, stop)
			}
			if got := LandedIndex(stop, n); got != i {
				t.Fatalf("n=%d i=%d: landed on %d", n, i, got)
			}
			// Любое число полных оборотов не меняет результат
			if got := LandedIndex(stop+7*FullTurn, n); got != i {
				t.Fatalf("n=%d i=%d: landed on %d after extra turns", n, i, got)
			}
		}
	}
}

func TestFivePrizeScenario(t *testing.T) {
	const n = 5
	center := SegmentCenter(2, n)
	if math.Abs(center-math.Pi) > eps {
		t.Errorf("center: want π, got %f", center)
	}
	stop := StopAngle(2, n)
	if math.Abs(stop-math.Pi) > eps {
		t.Errorf("stop: want π, got %f", stop)
	}
	if got := LandedIndex(stop, n); got != 2 {
		t.Errorf("landed: want 2, got %d", got)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		angle float64
		want  float64
	}{
		{name: "Zero", angle: 0, want: 0},
		{name: "FullTurn", angle: FullTurn, want: 0},
		{name: "Negative", angle: -math.Pi / 2, want: 3 * math.Pi / 2},
		{name: "ManyTurns", angle: 10*FullTurn + 1, want: 1},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Normalize(tc.angle)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("unexpected result, want: %f, got: %f", tc.want, got)
			}
		})
	}
}

func TestLandedIndexEmpty(t *testing.T) {
	if LandedIndex(1, 0) != -1 {
		t.Fatal("empty wheel must not land anywhere")
	}
}

func TestIndexOf(t *testing.T) {
	prizes := []model.Prize{{ID: "a"}, {ID: "b"}}
	if IndexOf(prizes, "b") != 1 || IndexOf(prizes, "z") != -1 {
		t.Fatal("unexpected IndexOf result")
	}
}

func TestEaseOutExpo(t *testing.T) {
	prev := EaseOutExpo(0)
	if prev != 0 {
		t.Fatalf("ease(0) = %f", prev)
	}
	for i := 1; i <= 1000; i++ {
		v := EaseOutExpo(float64(i) / 1000)
		if v < prev {
			t.Fatalf("easing is not monotonic at %d", i)
		}
		if v > 1 {
			t.Fatalf("easing overshoots at %d: %f", i, v)
		}
		prev = v
	}
	if EaseOutExpo(1) != 1 || EaseOutExpo(2) != 1 {
		t.Fatal("easing must end at exactly 1")
	}
}

func TestPlanRotatesForward(t *testing.T) {
	const turns = 8
	currents := []float64{0, 1, math.Pi, 5.5, 100.25, -3}
	for n := 1; n <= 12; n++ {
		for i := 0; i < n; i++ {
			for _, current := range currents {
				plan := NewPlan(current, StopAngle(i, n), turns, time.Second, i)

				if plan.TotalRotation <= turns*FullTurn {
					t.Fatalf("n=%d i=%d current=%f: rotation %f is not beyond %d turns", n, i, current, plan.TotalRotation, turns)
				}
				if plan.EndAngle() <= plan.StartAngle+turns*FullTurn {
					t.Fatalf("n=%d i=%d current=%f: end angle does not move forward", n, i, current)
				}
				if got := LandedIndex(plan.EndAngle(), n); got != i {
					t.Fatalf("n=%d i=%d current=%f: plan lands on %d", n, i, current, got)
				}
			}
		}
	}
}

func TestPlanAngleAt(t *testing.T) {
	plan := NewPlan(0, math.Pi, 2, 4*time.Second, -1)

	if plan.AngleAt(0) != plan.StartAngle {
		t.Errorf("angle at 0 must be the start angle")
	}
	if plan.AngleAt(4*time.Second) != plan.EndAngle() {
		t.Errorf("angle at the end must be the end angle")
	}
	if plan.AngleAt(10*time.Second) != plan.EndAngle() {
		t.Errorf("angle after the end must stay at the end angle")
	}
	prev := plan.AngleAt(0)
	for ms := 0; ms <= 4000; ms += 16 {
		a := plan.AngleAt(time.Duration(ms) * time.Millisecond)
		if a < prev {
			t.Fatalf("rotation goes backwards at %dms", ms)
		}
		prev = a
	}
}
