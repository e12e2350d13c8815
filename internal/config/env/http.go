package env

import (
	"errors"
	"lucky_wheel/internal/config"
	"net"
	"os"
)

const (
	httpHostEnvName = "HTTP_HOST"
	httpPortEnvName = "HTTP_PORT"
	appEnvName      = "APP_ENV"

	wheelConfigPathName = "WHEEL_CONFIG"

	defaultAppEnv          = "local"
	defaultWheelConfigPath = "config.yaml"
)

type httpConfig struct {
	host string
	port string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	port := os.Getenv(httpPortEnvName)
	if len(port) == 0 {
		return nil, errors.New("http port not found")
	}

	return &httpConfig{
		host: os.Getenv(httpHostEnvName),
		port: port,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.host, cfg.port)
}

type appConfig struct {
	env             string
	wheelConfigPath string
}

// NewAppConfig читает APP_ENV (local, dev или prod) и путь к YAML колеса из WHEEL_CONFIG
func NewAppConfig() config.AppConfig {
	env := os.Getenv(appEnvName)
	if len(env) == 0 {
		env = defaultAppEnv
	}
	path := os.Getenv(wheelConfigPathName)
	if len(path) == 0 {
		path = defaultWheelConfigPath
	}
	return &appConfig{env: env, wheelConfigPath: path}
}

func (cfg *appConfig) Env() string {
	return cfg.env
}

func (cfg *appConfig) WheelConfigPath() string {
	return cfg.wheelConfigPath
}
