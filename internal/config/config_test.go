package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Database.Driver != StoreMemory {
		t.Fatalf("expected memory store by default, got %s", cfg.Database.Driver)
	}
	if cfg.Database.ConnectAttempts != defaultConnectAttempts || cfg.Database.ConnectBackoff != defaultConnectBackoff {
		t.Fatalf("unexpected connect retry defaults %+v", cfg.Database)
	}
	if cfg.Auth.LoginEnabled() {
		t.Fatalf("expected login disabled without credentials")
	}
	if cfg.Auth.Role != defaultAuthRole || cfg.Auth.JWTTTL != defaultJWTTTL {
		t.Fatalf("unexpected auth defaults %+v", cfg.Auth)
	}
	if cfg.Auth.RequireToken {
		t.Fatalf("expected token guard disabled by default")
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envStoreDriver, "PostgreSQL")
	t.Setenv(envDatabaseURL, "postgres://catalog@localhost/catalog")
	t.Setenv(envDBConnectAttempts, "3")
	t.Setenv(envDBConnectBackoff, "250ms")
	t.Setenv(envAuthUsername, "admin")
	t.Setenv(envAuthPasswordHash, "$2a$10$hash")
	t.Setenv(envJWTSecret, "secret")
	t.Setenv(envJWTTTL, "15m")
	t.Setenv(envAuthRequireToken, "true")
	t.Setenv(envLogFormat, "json")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Database.Driver != StorePostgres || !cfg.Database.IsRelational() {
		t.Fatalf("expected postgres driver, got %s", cfg.Database.Driver)
	}
	if cfg.Database.URL != "postgres://catalog@localhost/catalog" {
		t.Fatalf("unexpected database url %s", cfg.Database.URL)
	}
	if cfg.Database.ConnectAttempts != 3 || cfg.Database.ConnectBackoff != 250*time.Millisecond {
		t.Fatalf("unexpected retry overrides %+v", cfg.Database)
	}
	if !cfg.Auth.LoginEnabled() || !cfg.Auth.RequireToken || cfg.Auth.JWTTTL != 15*time.Minute {
		t.Fatalf("unexpected auth overrides %+v", cfg.Auth)
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("expected json log format, got %s", cfg.LogFormat)
	}
}

func TestNormalizeDriver(t *testing.T) {
	cases := map[string]string{
		"postgres": StorePostgres,
		"pg":       StorePostgres,
		"sqlite3":  StoreSQLite,
		" SQLite ": StoreSQLite,
		"memory":   StoreMemory,
		"mongo":    StoreMemory,
	}
	for raw, want := range cases {
		if got := normalizeDriver(raw); got != want {
			t.Fatalf("normalizeDriver(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envJWTTTL, "not-a-duration")
	cfg := Load()
	if cfg.Auth.JWTTTL != defaultJWTTTL {
		t.Fatalf("expected default ttl on invalid value, got %s", cfg.Auth.JWTTTL)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envDBConnectBackoff, "0s")
	cfg := Load()
	if cfg.Database.ConnectBackoff != defaultConnectBackoff {
		t.Fatalf("expected default backoff on non-positive value, got %s", cfg.Database.ConnectBackoff)
	}
}

func TestLoadDotEnvMissingFileIsIgnored(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing .env to be ignored, got %v", err)
	}
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PORT=7000\nJWT_ISSUER=from-file\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv(envPort, "6000")
	t.Setenv(envJWTIssuer, "")
	os.Unsetenv(envJWTIssuer)

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load .env: %v", err)
	}

	cfg := Load()
	if cfg.Port != "6000" {
		t.Fatalf("expected existing env to win, got %s", cfg.Port)
	}
	if cfg.Auth.JWTIssuer != "from-file" {
		t.Fatalf("expected .env value to be applied, got %s", cfg.Auth.JWTIssuer)
	}
}
