package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Env      string `yaml:"env"`
	HTTPAddr string `yaml:"http_addr"`

	Tapsilat TapsilatConfig `yaml:"tapsilat"`
	Checkout CheckoutConfig `yaml:"checkout"`
}

type TapsilatConfig struct {
	APIKey        string        `yaml:"api_key"`
	BaseURL       string        `yaml:"base_url"`
	Timeout       time.Duration `yaml:"timeout"`
	WebhookSecret string        `yaml:"webhook_secret"`
	Mock          bool          `yaml:"mock"`
}

// CheckoutConfig holds the redirect targets attached to every order the
// service creates.
type CheckoutConfig struct {
	SuccessURL string `yaml:"success_url"`
	FailureURL string `yaml:"failure_url"`
}

func Default() Config {
	return Config{
		Env:      "dev",
		HTTPAddr: ":8080",
		Tapsilat: TapsilatConfig{
			BaseURL: "https://panel.tapsilat.dev/api/v1",
			Timeout: 10 * time.Second,
		},
	}
}

// Load reads .env (if present), then the YAML file named by
// TAPSILAT_CONFIG_FILE (if set), then applies environment overrides.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv("TAPSILAT_CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.Env = env("APP_ENV", cfg.Env)
	cfg.HTTPAddr = env("HTTP_ADDR", cfg.HTTPAddr)
	cfg.Tapsilat.APIKey = env("TAPSILAT_API_KEY", cfg.Tapsilat.APIKey)
	cfg.Tapsilat.BaseURL = env("TAPSILAT_BASE_URL", cfg.Tapsilat.BaseURL)
	cfg.Tapsilat.Timeout = envSeconds("TAPSILAT_TIMEOUT_SEC", cfg.Tapsilat.Timeout)
	cfg.Tapsilat.WebhookSecret = env("TAPSILAT_WEBHOOK_SECRET", cfg.Tapsilat.WebhookSecret)
	cfg.Tapsilat.Mock = envFlag("PAYMENT_GATEWAY_MOCK", cfg.Tapsilat.Mock)
	cfg.Checkout.SuccessURL = env("CHECKOUT_SUCCESS_URL", cfg.Checkout.SuccessURL)
	cfg.Checkout.FailureURL = env("CHECKOUT_FAILURE_URL", cfg.Checkout.FailureURL)

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func env(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envSeconds(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	secs, err := strconv.ParseFloat(v, 64)
	if err != nil || secs <= 0 {
		return def
	}
	return time.Duration(secs * float64(time.Second))
}

// envFlag accepts the same truthy spellings the payment gateway always did.
func envFlag(k string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(k)))
	switch v {
	case "":
		return def
	case "1", "true", "yes", "on", "mock":
		return true
	default:
		return false
	}
}
