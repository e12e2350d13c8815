package env

import "testing"

func TestNewHTTPConfig(t *testing.T) {
	t.Setenv(httpHostEnvName, "127.0.0.1")
	t.Setenv(httpPortEnvName, "8080")

	cfg, err := NewHTTPConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Address() != "127.0.0.1:8080" {
		t.Errorf("address = %q", cfg.Address())
	}
}

func TestNewHTTPConfigRequiresPort(t *testing.T) {
	t.Setenv(httpPortEnvName, "")

	if _, err := NewHTTPConfig(); err == nil {
		t.Fatal("expected error without port")
	}
}

func TestNewAppConfigDefaults(t *testing.T) {
	t.Setenv(appEnvName, "")
	t.Setenv(wheelConfigPathName, "")

	cfg := NewAppConfig()
	if cfg.Env() != defaultAppEnv || cfg.WheelConfigPath() != defaultWheelConfigPath {
		t.Errorf("unexpected defaults: %q %q", cfg.Env(), cfg.WheelConfigPath())
	}
}
