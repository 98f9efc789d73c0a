package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/heartmarshall/tupa/internal/domain"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

log:
  level: "debug"
  format: "text"

rate_limit:
  requests_per_minute: 120

decoder:
  marginal_kinds: "正則,framework"
  batch_limit: 200
  workers: 4
  verify_print_limit: 10
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}

	// Database
	if cfg.Database.DSN != "postgres://u:p@localhost:5432/testdb" {
		t.Errorf("database.dsn = %q", cfg.Database.DSN)
	}
	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}

	// Log
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}

	// Rate limit
	if cfg.RateLimit.RequestsPerMinute != 120 {
		t.Errorf("rate_limit.requests_per_minute = %d, want 120", cfg.RateLimit.RequestsPerMinute)
	}
	if cfg.RateLimit.CleanupInterval != 5*time.Minute {
		t.Errorf("rate_limit.cleanup_interval = %v, want 5m (default)", cfg.RateLimit.CleanupInterval)
	}

	// Decoder
	if cfg.Decoder.BatchLimit != 200 {
		t.Errorf("decoder.batch_limit = %d, want 200", cfg.Decoder.BatchLimit)
	}
	if cfg.Decoder.Workers != 4 {
		t.Errorf("decoder.workers = %d, want 4", cfg.Decoder.Workers)
	}
	if cfg.Decoder.VerifyPrintLimit != 10 {
		t.Errorf("decoder.verify_print_limit = %d, want 10", cfg.Decoder.VerifyPrintLimit)
	}
	if want := domain.MarginalRegular | domain.MarginalFramework; cfg.Decoder.MarginalKinds != want {
		t.Errorf("decoder.marginal_kinds = %v, want %v", cfg.Decoder.MarginalKinds, want)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("DECODER_MARGINAL_KINDS", "原貌")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
	if cfg.Decoder.MarginalKinds != domain.MarginalOriginal {
		t.Errorf("decoder.marginal_kinds = %v, want 原貌 (ENV override)", cfg.Decoder.MarginalKinds)
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	validEnv(t)

	// Unset CONFIG_PATH so the ./config.yaml fallback kicks in and the
	// file is just absent.
	t.Setenv("CONFIG_PATH", "")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Decoder.BatchLimit != 1000 {
		t.Errorf("decoder.batch_limit = %d, want 1000 (default)", cfg.Decoder.BatchLimit)
	}
	if cfg.Decoder.MarginalKinds != 0 {
		t.Errorf("decoder.marginal_kinds = %v, want none (default)", cfg.Decoder.MarginalKinds)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Decoder.MarginalKinds != domain.AllMarginalKinds {
		t.Errorf("MarginalKinds = %v, want all", cfg.Decoder.MarginalKinds)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"rate limit zero", func(c *Config) { c.RateLimit.RequestsPerMinute = 0 }},
		{"batch limit zero", func(c *Config) { c.Decoder.BatchLimit = 0 }},
		{"workers negative", func(c *Config) { c.Decoder.Workers = -1 }},
		{"print limit negative", func(c *Config) { c.Decoder.VerifyPrintLimit = -1 }},
		{"unknown marginal kind", func(c *Config) { c.Decoder.MarginalKindsRaw = "正則,bogus" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

// validConfig returns a Config that passes all validation checks.
func validConfig() Config {
	return Config{
		Server:    ServerConfig{Port: 8080},
		RateLimit: RateLimitConfig{RequestsPerMinute: 600, CleanupInterval: 5 * time.Minute},
		Decoder: DecoderConfig{
			MarginalKindsRaw: "regular,original,framework",
			BatchLimit:       1000,
			Workers:          8,
			VerifyPrintLimit: 30,
		},
	}
}
