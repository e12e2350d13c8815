package wheel

import (
	"errors"
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"lucky_wheel/internal/model"
)

var (
	ErrNoSegments      = errors.New("wheel has no prizes")
	ErrAlreadySpinning = errors.New("wheel is already spinning")
)

const (
	startTickVolume = 0.5
	winVolume       = 0.7
	// Случайные тики звучат только до 90% анимации с шансом 5% на кадр
	tickProgressLimit = 0.9
	tickChance        = 0.05
	// Доля коррекции угла у границы сектора
	snapFactor = 0.5
)

type Config struct {
	SpinDuration   time.Duration
	FullRotations  int
	SnapTolerance  float64
	ResultDelay    time.Duration
	ConfettiMarker string
}

func DefaultConfig() Config {
	return Config{
		SpinDuration:   5 * time.Second,
		FullRotations:  8,
		SnapTolerance:  5 * math.Pi / 180,
		ResultDelay:    200 * time.Millisecond,
		ConfettiMarker: "000",
	}
}

// Frame - один кадр анимации
type Frame struct {
	Angle    float64
	Progress float64
}

// Outcome - итог анимации
type Outcome struct {
	Prize       model.Prize
	LandedIndex int     // сектор под указателем после коррекции
	FinalAngle  float64 // отображаемый угол
	Snapped     bool
	Targeted    bool
}

type (
	FrameFunc  func(Frame)
	FinishFunc func(Outcome)
)

type Deps struct {
	State   *State
	Frames  FrameSource
	Effects Effects
	Log     *slog.Logger
	Rand    func() float64
}

// Wheel рисует призы равными секторами, анимирует вращение и сообщает приз под указателем.
// Исход вращения определяет бэкенд: колесо лишь доворачивает до переданного приза.
type Wheel struct {
	cfg     Config
	prizes  []model.Prize
	state   *State
	frames  FrameSource
	effects Effects
	log     *slog.Logger
	rand    func() float64
}

func New(cfg Config, prizes []model.Prize, deps Deps) *Wheel {
	w := &Wheel{
		cfg:     cfg,
		prizes:  append([]model.Prize(nil), prizes...),
		state:   deps.State,
		frames:  deps.Frames,
		effects: deps.Effects,
		log:     deps.Log,
		rand:    deps.Rand,
	}
	if w.state == nil {
		w.state = &State{}
	}
	if w.frames == nil {
		w.frames = NewTicker(60)
	}
	if w.effects == nil {
		w.effects = NopEffects{}
	}
	if w.log == nil {
		w.log = slog.Default()
	}
	if w.rand == nil {
		w.rand = rand.Float64
	}
	return w
}

func (w *Wheel) Prizes() []model.Prize {
	return w.prizes
}

func (w *Wheel) State() *State {
	return w.state
}

// Request - нажатие кнопки вращения зрителем: случайная точка остановки.
// Не стартует, пока вызывающая сторона держит флаг Spinning.
func (w *Wheel) Request(onFrame FrameFunc, onFinished FinishFunc) (Plan, error) {
	if w.state.Spinning.Load() {
		return Plan{}, ErrAlreadySpinning
	}
	return w.Spin(nil, onFrame, onFinished)
}

// Spin запускает анимацию до сектора target (или до случайного угла, если target == nil).
// Пустое колесо и повторный запуск во время анимации ничего не делают.
// Анимация идёт до конца, отмены нет; onFinished вызывается ровно один раз.
func (w *Wheel) Spin(target *model.Prize, onFrame FrameFunc, onFinished FinishFunc) (Plan, error) {
	n := len(w.prizes)
	if n == 0 {
		return Plan{}, ErrNoSegments
	}

	current, ok := w.state.begin()
	if !ok {
		return Plan{}, ErrAlreadySpinning
	}

	targetIndex := -1
	stop := w.rand() * FullTurn
	if target != nil {
		if idx := IndexOf(w.prizes, target.ID); idx >= 0 {
			targetIndex = idx
			stop = StopAngle(idx, n)
		}
	}

	plan := NewPlan(current, stop, w.cfg.FullRotations, w.cfg.SpinDuration, targetIndex)

	fire(w.log, "tick", func() error { return w.effects.Tick(startTickVolume) })

	go w.animate(plan, target, onFrame, onFinished)

	return plan, nil
}

func (w *Wheel) animate(plan Plan, target *model.Prize, onFrame FrameFunc, onFinished FinishFunc) {
	start := w.frames.Frame()
	angle := plan.StartAngle

	for {
		now := w.frames.Frame()
		progress := plan.Progress(now.Sub(start))
		angle = plan.AngleAt(now.Sub(start))
		w.state.setAngle(angle)

		if onFrame != nil {
			onFrame(Frame{Angle: angle, Progress: progress})
		}

		if progress < tickProgressLimit && w.rand() < tickChance {
			volume := math.Min(0.3, (1-progress)*0.5)
			fire(w.log, "tick", func() error { return w.effects.Tick(volume) })
		}

		if progress >= 1 {
			break
		}
	}

	out := w.finish(angle, plan, target)
	w.state.end(out.FinalAngle)

	if out.Snapped && onFrame != nil {
		onFrame(Frame{Angle: out.FinalAngle, Progress: 1})
	}

	if w.cfg.ResultDelay > 0 {
		time.Sleep(w.cfg.ResultDelay)
	}

	fire(w.log, "win", func() error { return w.effects.Win(winVolume) })

	if w.cfg.ConfettiMarker != "" && strings.Contains(out.Prize.Name, w.cfg.ConfettiMarker) {
		prize := out.Prize
		fire(w.log, "confetti", func() error { return w.effects.Confetti(prize) })
	}

	w.log.Debug("wheel stopped",
		slog.Int("landed_index", out.LandedIndex),
		slog.String("prize_id", out.Prize.ID),
		slog.Bool("snapped", out.Snapped),
	)

	if onFinished != nil {
		onFinished(out)
	}
}

// finish определяет сектор под указателем и при необходимости доворачивает отображаемый угол.
// Переданный бэкендом приз остаётся результатом независимо от геометрии.
func (w *Wheel) finish(angle float64, plan Plan, target *model.Prize) Outcome {
	n := len(w.prizes)
	displayed, snapped := snapAngle(angle, n, w.cfg.SnapTolerance, plan.TargetIndex)
	landed := LandedIndex(displayed, n)

	out := Outcome{
		LandedIndex: landed,
		FinalAngle:  displayed,
		Snapped:     snapped,
		Targeted:    target != nil,
	}

	switch {
	case target != nil:
		out.Prize = *target
	case landed >= 0 && landed < n:
		out.Prize = w.prizes[landed]
	default:
		out.Prize = w.prizes[0]
	}
	return out
}

// snapAngle сдвигает угол наполовину к середине сектора, если указатель ближе tolerance к границе.
// Сектор - это preferred, если он задан, иначе сектор под указателем.
func snapAngle(angle float64, n int, tolerance float64, preferred int) (float64, bool) {
	width := SegmentWidth(n)
	if width == 0 || tolerance <= 0 {
		return angle, false
	}

	pos := pointerPosition(angle)
	within := math.Mod(pos, width)
	if math.Min(within, width-within) >= tolerance {
		return angle, false
	}

	idx := preferred
	if idx < 0 || idx >= n {
		idx = LandedIndex(angle, n)
	}

	adjust := shortestArc(pos, SegmentCenter(idx, n))
	// Позиция указателя растёт при уменьшении угла колеса
	return angle - adjust*snapFactor, true
}

// shortestArc - знаковое кратчайшее расстояние от from до to в (-π, π]
func shortestArc(from, to float64) float64 {
	d := Normalize(to - from)
	if d > math.Pi {
		d -= FullTurn
	}
	return d
}
