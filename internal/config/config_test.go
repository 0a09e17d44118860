package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DATABASE", "propman")
	t.Setenv("DB_USER", "propman")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "3000" {
		t.Errorf("Expected default port 3000, got %s", cfg.Port)
	}
	if cfg.DBType != "mysql" {
		t.Errorf("Expected default db type mysql, got %s", cfg.DBType)
	}
	if cfg.DBHost != "localhost" {
		t.Errorf("Expected default db host localhost, got %s", cfg.DBHost)
	}
	if cfg.DBConnectionLimit != 10 {
		t.Errorf("Expected default connection limit 10, got %d", cfg.DBConnectionLimit)
	}
	if cfg.CORSOrigins != "*" {
		t.Errorf("Expected default CORS origins *, got %s", cfg.CORSOrigins)
	}
	if !cfg.SeedOnBoot {
		t.Error("Expected seeding to default on")
	}
	if cfg.DBSqlitePure {
		t.Error("Expected the cgo sqlite driver by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_DATABASE", "propman")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_CONNECTION_LIMIT", "25")
	t.Setenv("SEED_ON_BOOT", "false")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected port 8080, got %s", cfg.Port)
	}
	if cfg.DBType != "postgres" {
		t.Errorf("Expected db type postgres, got %s", cfg.DBType)
	}
	if cfg.DBConnectionLimit != 25 {
		t.Errorf("Expected connection limit 25, got %d", cfg.DBConnectionLimit)
	}
	if cfg.SeedOnBoot {
		t.Error("Expected seeding off")
	}
	if cfg.StripeSecretKey != "sk_test_123" {
		t.Errorf("Expected stripe key to pass through, got %s", cfg.StripeSecretKey)
	}
}

func TestLoadRequiresDatabase(t *testing.T) {
	t.Setenv("DB_DATABASE", "")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "secret")

	if _, err := Load(); err == nil {
		t.Error("Expected an error when DB_DATABASE is missing")
	}
}

func TestLoadRequiresCredentials(t *testing.T) {
	t.Setenv("DB_DATABASE", "propman")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASSWORD", "")

	if _, err := Load(); err == nil {
		t.Error("Expected an error when credentials are missing")
	}
}

func TestLoadSqliteSkipsCredentials(t *testing.T) {
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DB_DATABASE", ":memory:")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASSWORD", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected sqlite to load without credentials: %v", err)
	}
	if cfg.DBType != "sqlite" {
		t.Errorf("Expected db type sqlite, got %s", cfg.DBType)
	}
}

func TestLoadBadConnectionLimitFallsBack(t *testing.T) {
	t.Setenv("DB_DATABASE", "propman")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_CONNECTION_LIMIT", "lots")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBConnectionLimit != 10 {
		t.Errorf("Expected fallback connection limit 10, got %d", cfg.DBConnectionLimit)
	}
}
