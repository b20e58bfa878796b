package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if cfg.EndpointAddr != ":8080" {
		t.Fatalf("unexpected endpoint: %q", cfg.EndpointAddr)
	}
	if cfg.AccessTokenValidityDuration != 30*time.Minute {
		t.Fatalf("unexpected token validity: %v", cfg.AccessTokenValidityDuration)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("unexpected bcrypt cost: %d", cfg.BcryptCost)
	}
	if cfg.SecretKey == "" || cfg.DatabaseDSN == "" {
		t.Fatal("defaults must not leave secret key or DSN empty")
	}
}

func TestLoadConfig_NoArgs(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"server"}

	cfg := LoadConfig()
	if cfg.EndpointAddr != ":8080" {
		t.Fatalf("expected defaults, got endpoint %q", cfg.EndpointAddr)
	}
}
