package wheel

import (
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"lucky_wheel/internal/lib/logger/sl"
	"lucky_wheel/internal/model"
)

// fakeFrames продвигает время на step за кадр без ожидания
type fakeFrames struct {
	mtx  sync.Mutex
	now  time.Time
	step time.Duration
	gate chan struct{}
}

func newFakeFrames(step time.Duration) *fakeFrames {
	return &fakeFrames{now: time.Unix(0, 0), step: step}
}

func (f *fakeFrames) Frame() time.Time {
	if f.gate != nil {
		<-f.gate
	}
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.now = f.now.Add(f.step)
	return f.now
}

type recordingEffects struct {
	ticks    atomic.Int32
	wins     atomic.Int32
	confetti atomic.Int32
	fail     bool
}

func (e *recordingEffects) Tick(float64) error {
	e.ticks.Add(1)
	if e.fail {
		return errors.New("no audio device")
	}
	return nil
}

func (e *recordingEffects) Win(float64) error {
	e.wins.Add(1)
	if e.fail {
		panic("audio crashed")
	}
	return nil
}

func (e *recordingEffects) Confetti(model.Prize) error {
	e.confetti.Add(1)
	return nil
}

func prizes(names ...string) []model.Prize {
	out := make([]model.Prize, len(names))
	for i, name := range names {
		out[i] = model.Prize{ID: "id-" + name, Name: name}
	}
	return out
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.SpinDuration = time.Second
	cfg.ResultDelay = 0
	return cfg
}

func newTestWheel(p []model.Prize, frames FrameSource, effects Effects, rnd float64) *Wheel {
	return New(testConfig(), p, Deps{
		Frames:  frames,
		Effects: effects,
		Log:     sl.Discard(),
		Rand:    func() float64 { return rnd },
	})
}

func waitOutcome(t *testing.T, ch <-chan Outcome) Outcome {
	t.Helper()
	select {
	case out := <-ch:
		return out
	case <-time.After(5 * time.Second):
		t.Fatal("spin did not finish")
	}
	return Outcome{}
}

func TestSpinLandsOnTarget(t *testing.T) {
	p := prizes("A", "B", "C", "D", "E")
	w := newTestWheel(p, newFakeFrames(16*time.Millisecond), NopEffects{}, 0.5)

	done := make(chan Outcome, 1)
	var frames []Frame
	plan, err := w.Spin(&p[2], func(f Frame) { frames = append(frames, f) }, func(o Outcome) { done <- o })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.TargetIndex != 2 {
		t.Errorf("target index: want 2, got %d", plan.TargetIndex)
	}

	out := waitOutcome(t, done)
	if out.Prize.ID != "id-C" || !out.Targeted {
		t.Errorf("unexpected prize %+v", out.Prize)
	}
	if out.LandedIndex != 2 {
		t.Errorf("landed index: want 2, got %d", out.LandedIndex)
	}
	if math.Abs(Normalize(out.FinalAngle)-math.Pi) > 1e-6 {
		t.Errorf("final angle: want π, got %f", Normalize(out.FinalAngle))
	}
	if w.State().Animating() {
		t.Error("wheel must not be animating after finish")
	}
	if len(frames) == 0 || frames[len(frames)-1].Progress != 1 {
		t.Error("last frame must have progress 1")
	}
	for i := 1; i < len(frames); i++ {
		if frames[i].Angle < frames[i-1].Angle {
			t.Fatalf("frame %d goes backwards", i)
		}
	}
}

func TestSpinWithoutTargetUsesGeometry(t *testing.T) {
	p := prizes("A", "B", "C", "D")
	// Случайный угол 0.6 * 2π = 1.2π, указатель в 0.8π => сектор 1
	w := newTestWheel(p, newFakeFrames(50*time.Millisecond), NopEffects{}, 0.6)

	done := make(chan Outcome, 1)
	if _, err := w.Spin(nil, nil, func(o Outcome) { done <- o }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := waitOutcome(t, done)
	if out.Targeted {
		t.Error("untargeted spin must not be marked as targeted")
	}
	if out.LandedIndex != 1 || out.Prize.ID != "id-B" {
		t.Errorf("want B at index 1, got %+v at %d", out.Prize, out.LandedIndex)
	}
}

func TestSpinEmptyWheelIsNoop(t *testing.T) {
	w := newTestWheel(nil, newFakeFrames(time.Millisecond), NopEffects{}, 0.1)

	called := false
	_, err := w.Spin(nil, nil, func(Outcome) { called = true })
	if !errors.Is(err, ErrNoSegments) {
		t.Fatalf("want ErrNoSegments, got %v", err)
	}
	if w.State().Animating() {
		t.Error("empty wheel must not animate")
	}
	time.Sleep(10 * time.Millisecond)
	if called {
		t.Error("completion callback must not fire for an empty wheel")
	}
}

func TestSpinWhileAnimatingIsIgnored(t *testing.T) {
	p := prizes("A", "B", "C")
	frames := newFakeFrames(100 * time.Millisecond)
	frames.gate = make(chan struct{})
	w := newTestWheel(p, frames, NopEffects{}, 0.3)

	var finished atomic.Int32
	done := make(chan Outcome, 2)
	onFinished := func(o Outcome) {
		finished.Add(1)
		done <- o
	}

	if _, err := w.Spin(&p[0], nil, onFinished); err != nil {
		t.Fatalf("first spin failed: %v", err)
	}
	if _, err := w.Spin(&p[1], nil, onFinished); !errors.Is(err, ErrAlreadySpinning) {
		t.Fatalf("want ErrAlreadySpinning, got %v", err)
	}

	close(frames.gate)
	out := waitOutcome(t, done)
	if out.Prize.ID != "id-A" {
		t.Errorf("the first spin must win, got %s", out.Prize.ID)
	}

	time.Sleep(20 * time.Millisecond)
	if finished.Load() != 1 {
		t.Errorf("want exactly one completion, got %d", finished.Load())
	}
}

func TestRequestRespectsCallerFlag(t *testing.T) {
	p := prizes("A", "B")
	w := newTestWheel(p, newFakeFrames(time.Second), NopEffects{}, 0.2)

	w.State().Spinning.Store(true)
	if _, err := w.Request(nil, nil); !errors.Is(err, ErrAlreadySpinning) {
		t.Fatalf("want ErrAlreadySpinning, got %v", err)
	}

	w.State().Spinning.Store(false)
	done := make(chan Outcome, 1)
	if _, err := w.Request(nil, func(o Outcome) { done <- o }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	waitOutcome(t, done)
}

func TestFailingEffectsDoNotBreakSpin(t *testing.T) {
	p := prizes("10000 points", "nothing")
	effects := &recordingEffects{fail: true}
	// rand = 0 => каждый кадр до 90% играет тик
	w := newTestWheel(p, newFakeFrames(100*time.Millisecond), effects, 0)

	done := make(chan Outcome, 1)
	if _, err := w.Spin(&p[0], nil, func(o Outcome) { done <- o }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := waitOutcome(t, done)
	if out.Prize.Name != "10000 points" {
		t.Errorf("unexpected prize %q", out.Prize.Name)
	}

	deadline := time.Now().Add(time.Second)
	for (effects.confetti.Load() == 0 || effects.ticks.Load() < 2) && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if effects.confetti.Load() != 1 {
		t.Error("high value prize must trigger confetti")
	}
	if effects.ticks.Load() < 2 {
		t.Errorf("expected start and running ticks, got %d", effects.ticks.Load())
	}
}

func TestSnapNeverChangesTargetedPrize(t *testing.T) {
	p := prizes("A", "B", "C", "D", "E", "F")
	w := newTestWheel(p, newFakeFrames(time.Millisecond), NopEffects{}, 0)
	n := len(p)
	width := SegmentWidth(n)

	for target := 0; target < n; target++ {
		for _, offset := range []float64{0.001, 0.02, width - 0.02, width - 0.001} {
			// Угол, при котором указатель стоит на offset от начала сектора 1
			angle := Normalize(FullTurn - (width + offset))
			plan := Plan{TargetIndex: target}
			out := w.finish(angle, plan, &p[target])
			if out.Prize.ID != p[target].ID {
				t.Fatalf("target %d offset %f: prize changed to %s", target, offset, out.Prize.ID)
			}
		}
	}
}

func TestSnapMovesTowardCentre(t *testing.T) {
	const n = 4
	width := SegmentWidth(n)
	tolerance := 5 * math.Pi / 180

	cases := []struct {
		name   string
		offset float64
		snap   bool
	}{
		{name: "JustAfterBoundary", offset: 0.01, snap: true},
		{name: "JustBeforeBoundary", offset: width - 0.01, snap: true},
		{name: "Middle", offset: width / 2, snap: false},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			angle := Normalize(FullTurn - (width + tc.offset))
			got, snapped := snapAngle(angle, n, tolerance, -1)
			if snapped != tc.snap {
				t.Fatalf("snapped: want %v, got %v", tc.snap, snapped)
			}
			if LandedIndex(got, n) != 1 {
				t.Fatalf("snap moved the pointer out of segment 1")
			}
			before := math.Abs(pointerPosition(angle) - SegmentCenter(1, n))
			after := math.Abs(pointerPosition(got) - SegmentCenter(1, n))
			if tc.snap && after >= before {
				t.Fatalf("snap must move toward the centre: before %f, after %f", before, after)
			}
		})
	}
}
