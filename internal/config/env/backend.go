package env

import (
	"fmt"
	"lucky_wheel/internal/config"
	"os"
	"strings"
	"time"
)

const (
	backendURLEnvName     = "BACKEND_API_URL"
	backendTimeoutEnvName = "BACKEND_TIMEOUT"

	defaultBackendURL     = "https://lucky-wheel-cicl.onrender.com/api"
	defaultBackendTimeout = 10 * time.Second
)

type backendConfig struct {
	baseURL string
	timeout time.Duration
}

func NewBackendConfig() (config.BackendConfig, error) {
	baseURL := os.Getenv(backendURLEnvName)
	if len(baseURL) == 0 {
		baseURL = defaultBackendURL
	}

	timeout := defaultBackendTimeout
	if raw := os.Getenv(backendTimeoutEnvName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid backend timeout: %w", err)
		}
		timeout = parsed
	}

	return &backendConfig{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}, nil
}

func (cfg *backendConfig) BaseURL() string {
	return cfg.baseURL
}

func (cfg *backendConfig) Timeout() time.Duration {
	return cfg.timeout
}
