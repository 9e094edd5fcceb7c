package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleYAML = `
environment: test
logging:
  level: debug
  format: console
server:
  port: 9090
  read_timeout: 10s
  write_timeout: 10s
  shutdown_timeout: 1m
provider:
  base_url: https://api.example.test
  timeout: 5s
  leagues:
    - premier-league
    - la-liga
  cache_ttl:
    standings: 15m
    h2h: 6h
    fixtures: 1h
picks:
  limit: 5
  response_ttl: 10m
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadParsesDurations(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cfg.Server.ReadTimeout.Std(); got != 10*time.Second {
		t.Fatalf("read_timeout = %v, want 10s", got)
	}
	if got := cfg.Server.ShutdownTimeout.Std(); got != time.Minute {
		t.Fatalf("shutdown_timeout = %v, want 1m", got)
	}
	if got := cfg.Provider.CacheTTL.H2H.Std(); got != 6*time.Hour {
		t.Fatalf("cache_ttl.h2h = %v, want 6h", got)
	}
	if got := cfg.Picks.ResponseTTL.Std(); got != 10*time.Minute {
		t.Fatalf("picks.response_ttl = %v, want 10m", got)
	}
	if len(cfg.Provider.Leagues) != 2 {
		t.Fatalf("leagues = %v, want 2 entries", cfg.Provider.Leagues)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	bad := `
environment: test
server:
  port: 8080
  read_timeout: soon
provider:
  leagues: [premier-league]
`
	if _, err := Load(writeConfig(t, bad)); err == nil {
		t.Fatalf("expected error for unparseable duration")
	}
}

func TestLoadValidates(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"missing environment", "server:\n  port: 8080\nprovider:\n  leagues: [premier-league]\n"},
		{"missing port", "environment: test\nprovider:\n  leagues: [premier-league]\n"},
		{"no leagues", "environment: test\nserver:\n  port: 8080\n"},
		{"kafka without brokers", "environment: test\nserver:\n  port: 8080\nprovider:\n  leagues: [premier-league]\nkafka:\n  enabled: true\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.yaml)); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("PROVIDER_API_KEY", "secret-key")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")

	cfg, err := LoadWithEnv(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}
	if cfg.Provider.APIKey != "secret-key" {
		t.Fatalf("api key override not applied")
	}
	if len(cfg.Kafka.Brokers) != 2 {
		t.Fatalf("brokers = %v, want 2 entries", cfg.Kafka.Brokers)
	}
}
