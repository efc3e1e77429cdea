package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.JWT.Expiry != 7*24*time.Hour {
		t.Errorf("expected 7 day expiry, got %s", cfg.JWT.Expiry)
	}
	if cfg.RateLimit.MaxAttempts != 5 || cfg.RateLimit.Window != time.Minute {
		t.Errorf("unexpected rate limit %+v", cfg.RateLimit)
	}
	if cfg.Auth.CookieName != "auth-token" {
		t.Errorf("expected auth-token cookie, got %s", cfg.Auth.CookieName)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9090
  read_timeout: 5s
database:
  driver: sqlite
  url: file:lifetracker.db
rate_limit:
  max_attempts: 3
exchange_rates:
  overrides:
    USD: 36
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("EXCHANGE_RATE_OVERRIDES", "eur=40, bad, GBP=x")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("expected env to win with 7070, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("expected 5s read timeout, got %s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 15*time.Second {
		t.Errorf("expected default write timeout, got %s", cfg.Server.WriteTimeout)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("expected sqlite driver, got %s", cfg.Database.Driver)
	}
	if cfg.RateLimit.MaxAttempts != 3 {
		t.Errorf("expected 3 attempts, got %d", cfg.RateLimit.MaxAttempts)
	}
	if cfg.ExchangeRates.Overrides["USD"] != 36 || cfg.ExchangeRates.Overrides["EUR"] != 40 {
		t.Errorf("unexpected overrides %v", cfg.ExchangeRates.Overrides)
	}
	if _, ok := cfg.ExchangeRates.Overrides["GBP"]; ok {
		t.Error("expected malformed override to be ignored")
	}
}

func TestLoad_SecureCookieInProduction(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Auth.SecureCookie {
		t.Error("expected secure cookie in production")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }},
		{name: "empty url", mutate: func(c *Config) { c.Database.URL = "" }},
		{name: "empty secret", mutate: func(c *Config) { c.JWT.Secret = "" }},
		{name: "no attempts", mutate: func(c *Config) { c.RateLimit.MaxAttempts = 0 }},
		{name: "no window", mutate: func(c *Config) { c.RateLimit.Window = 0 }},
		{name: "negative override", mutate: func(c *Config) { c.ExchangeRates.Overrides = map[string]float64{"USD": -1} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	}

	if err := defaults().Validate(); err != nil {
		t.Errorf("expected defaults to be valid, got %v", err)
	}
}
