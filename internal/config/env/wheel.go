package env

import (
	"errors"
	"fmt"
	"lucky_wheel/internal/config"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// wheelYAML - секция wheel из config.yaml
type wheelYAML struct {
	Wheel struct {
		SpinDuration    time.Duration `yaml:"spin_duration"`
		FullRotations   int           `yaml:"full_rotations"`
		SnapToleranceDg float64       `yaml:"snap_tolerance_deg"`
		ResultDelay     time.Duration `yaml:"result_delay"`
		FPS             int           `yaml:"fps"`
		ConfettiMarker  string        `yaml:"confetti_marker"`
		Canvas          struct {
			Width    int     `yaml:"width"`
			Height   int     `yaml:"height"`
			FontSize float64 `yaml:"font_size"`
			FontPath string  `yaml:"font_path"`
		} `yaml:"canvas"`
	} `yaml:"wheel"`
	Play struct {
		DailySpins    int           `yaml:"daily_spins"`
		PrizeCacheTTL time.Duration `yaml:"prize_cache_ttl"`
		SessionTTL    time.Duration `yaml:"session_ttl"`
	} `yaml:"play"`
}

type wheelConfig struct {
	raw wheelYAML
}

// NewWheelConfigFromYAML читает настройки колеса; пропущенные поля получают значения по умолчанию
func NewWheelConfigFromYAML(path string) (config.WheelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wheel config: %w", err)
	}
	return ParseWheelConfig(data)
}

func ParseWheelConfig(data []byte) (config.WheelConfig, error) {
	var raw wheelYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse wheel config: %w", err)
	}

	applyWheelDefaults(&raw)

	if raw.Wheel.FullRotations < 1 {
		return nil, errors.New("full_rotations must be positive")
	}
	if raw.Wheel.FPS < 1 {
		return nil, errors.New("fps must be positive")
	}
	if raw.Wheel.Canvas.Width < 100 || raw.Wheel.Canvas.Height < 100 {
		return nil, errors.New("canvas must be at least 100x100")
	}

	return &wheelConfig{raw: raw}, nil
}

func applyWheelDefaults(raw *wheelYAML) {
	w := &raw.Wheel
	if w.SpinDuration <= 0 {
		w.SpinDuration = 5 * time.Second
	}
	if w.FullRotations == 0 {
		w.FullRotations = 8
	}
	if w.SnapToleranceDg == 0 {
		w.SnapToleranceDg = 5
	}
	if w.ResultDelay == 0 {
		w.ResultDelay = 200 * time.Millisecond
	}
	if w.FPS == 0 {
		w.FPS = 60
	}
	if w.ConfettiMarker == "" {
		w.ConfettiMarker = "000"
	}
	if w.Canvas.Width == 0 {
		w.Canvas.Width = 500
	}
	if w.Canvas.Height == 0 {
		w.Canvas.Height = 500
	}
	if w.Canvas.FontSize == 0 {
		w.Canvas.FontSize = 15
	}

	p := &raw.Play
	if p.DailySpins == 0 {
		p.DailySpins = 5
	}
	if p.PrizeCacheTTL == 0 {
		p.PrizeCacheTTL = time.Minute
	}
	if p.SessionTTL == 0 {
		p.SessionTTL = time.Hour
	}
}

func (c *wheelConfig) SpinDuration() time.Duration  { return c.raw.Wheel.SpinDuration }
func (c *wheelConfig) FullRotations() int           { return c.raw.Wheel.FullRotations }
func (c *wheelConfig) ResultDelay() time.Duration   { return c.raw.Wheel.ResultDelay }
func (c *wheelConfig) FPS() int                     { return c.raw.Wheel.FPS }
func (c *wheelConfig) CanvasWidth() int             { return c.raw.Wheel.Canvas.Width }
func (c *wheelConfig) CanvasHeight() int            { return c.raw.Wheel.Canvas.Height }
func (c *wheelConfig) FontSize() float64            { return c.raw.Wheel.Canvas.FontSize }
func (c *wheelConfig) FontPath() string             { return c.raw.Wheel.Canvas.FontPath }
func (c *wheelConfig) ConfettiMarker() string       { return c.raw.Wheel.ConfettiMarker }
func (c *wheelConfig) DailySpins() int              { return c.raw.Play.DailySpins }
func (c *wheelConfig) PrizeCacheTTL() time.Duration { return c.raw.Play.PrizeCacheTTL }
func (c *wheelConfig) SessionTTL() time.Duration    { return c.raw.Play.SessionTTL }

func (c *wheelConfig) SnapTolerance() float64 {
	return c.raw.Wheel.SnapToleranceDg * math.Pi / 180
}
