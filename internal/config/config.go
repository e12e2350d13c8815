package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

// BackendConfig - настройки внешнего REST API, которому принадлежат данные
type BackendConfig interface {
	BaseURL() string
	Timeout() time.Duration
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type AppConfig interface {
	Env() string
	WheelConfigPath() string
}

type WheelConfig interface {
	SpinDuration() time.Duration
	FullRotations() int
	SnapTolerance() float64 // в радианах
	ResultDelay() time.Duration
	FPS() int
	CanvasWidth() int
	CanvasHeight() int
	FontSize() float64
	FontPath() string
	ConfettiMarker() string
	DailySpins() int
	PrizeCacheTTL() time.Duration
	SessionTTL() time.Duration
}
