package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV", "HTTP_ADDR", "TAPSILAT_API_KEY", "TAPSILAT_BASE_URL", "TAPSILAT_TIMEOUT_SEC",
		"TAPSILAT_WEBHOOK_SECRET", "PAYMENT_GATEWAY_MOCK", "CHECKOUT_SUCCESS_URL", "CHECKOUT_FAILURE_URL",
		"TAPSILAT_CONFIG_FILE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.HTTPAddr != ":8080" || cfg.Env != "dev" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Tapsilat.BaseURL != "https://panel.tapsilat.dev/api/v1" || cfg.Tapsilat.Timeout != 10*time.Second {
		t.Fatalf("unexpected tapsilat defaults: %+v", cfg.Tapsilat)
	}
	if cfg.Tapsilat.Mock {
		t.Fatalf("expected mock mode off by default")
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "tapsilat.yaml")
	content := `
env: staging
http_addr: ":9090"
tapsilat:
  api_key: file-key
  base_url: https://sandbox.example.test/api/v1
  timeout: 5s
  webhook_secret: file-secret
checkout:
  success_url: https://shop.example.test/ok
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TAPSILAT_CONFIG_FILE", path)
	t.Setenv("TAPSILAT_API_KEY", "env-key")
	t.Setenv("TAPSILAT_TIMEOUT_SEC", "2.5")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "yes")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Env != "staging" || cfg.HTTPAddr != ":9090" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Tapsilat.APIKey != "env-key" {
		t.Fatalf("expected env override for api key, got %q", cfg.Tapsilat.APIKey)
	}
	if cfg.Tapsilat.BaseURL != "https://sandbox.example.test/api/v1" || cfg.Tapsilat.WebhookSecret != "file-secret" {
		t.Fatalf("unexpected tapsilat config: %+v", cfg.Tapsilat)
	}
	if cfg.Tapsilat.Timeout != 2500*time.Millisecond {
		t.Fatalf("expected 2.5s timeout, got %v", cfg.Tapsilat.Timeout)
	}
	if !cfg.Tapsilat.Mock {
		t.Fatalf("expected mock mode on")
	}
	if cfg.Checkout.SuccessURL != "https://shop.example.test/ok" || cfg.Checkout.FailureURL != "" {
		t.Fatalf("unexpected checkout config: %+v", cfg.Checkout)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("TAPSILAT_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestEnvFlag(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", " on ", "mock"} {
		t.Setenv("FLAG_UNDER_TEST", v)
		if !envFlag("FLAG_UNDER_TEST", false) {
			t.Fatalf("expected %q to be truthy", v)
		}
	}
	t.Setenv("FLAG_UNDER_TEST", "off")
	if envFlag("FLAG_UNDER_TEST", true) {
		t.Fatalf("expected off to be false")
	}
	t.Setenv("FLAG_UNDER_TEST", "")
	if !envFlag("FLAG_UNDER_TEST", true) {
		t.Fatalf("expected default when unset")
	}
}
