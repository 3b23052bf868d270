package config

import (
	"os"
	"testing"

	"github.com/caarlos0/env/v6"
)

func parse(t *testing.T) (*Config, error) {
	t.Helper()
	cfg := &Config{}
	return cfg, env.Parse(cfg)
}

func TestParse_Defaults(t *testing.T) {
	t.Setenv("TIMEZONE", "America/New_York")
	t.Setenv("WEBHOOK_URL", "https://hooks.example.com/x")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.LLMProvider != "openai" || cfg.OpenAIModel != "gpt-3.5-turbo" {
		t.Fatalf("unexpected llm defaults: %+v", cfg)
	}
	if cfg.GenerationHour != 0 {
		t.Fatalf("unexpected generation hour: %d", cfg.GenerationHour)
	}
	if len(cfg.NotifyHours) != 3 || cfg.NotifyHours[0] != 8 || cfg.NotifyHours[2] != 19 {
		t.Fatalf("unexpected notify hours: %v", cfg.NotifyHours)
	}
	if cfg.ListenAddr != ":8080" || cfg.SQLiteDir != "data" {
		t.Fatalf("unexpected server defaults: %+v", cfg)
	}
}

func TestParse_MissingRequiredFails(t *testing.T) {
	// t.Setenv registers the restore; unset to simulate a missing variable.
	t.Setenv("TIMEZONE", "x")
	t.Setenv("WEBHOOK_URL", "x")
	os.Unsetenv("TIMEZONE")
	os.Unsetenv("WEBHOOK_URL")
	if _, err := parse(t); err == nil {
		t.Fatalf("expected error when required vars are missing")
	}
}

func TestParse_NotifyHoursSeparator(t *testing.T) {
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("WEBHOOK_URL", "https://hooks.example.com/x")
	t.Setenv("NOTIFY_HOURS", "7:12")

	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(cfg.NotifyHours) != 2 || cfg.NotifyHours[0] != 7 || cfg.NotifyHours[1] != 12 {
		t.Fatalf("unexpected notify hours: %v", cfg.NotifyHours)
	}
}
