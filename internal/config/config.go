package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/ecombase/cartpricer/internal/delivery"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv    string
	LogFormat string
	LogLevel  string

	DeliveryCostPerDelivery float64
	DeliveryCostPerProduct  float64
	DeliveryFixedCost       float64
}

// Load reads configuration from environment variables and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:                  valueOrDefault(k.String("APP_ENV"), "development"),
		LogFormat:               valueOrDefault(k.String("LOG_FORMAT"), "console"),
		LogLevel:                valueOrDefault(k.String("LOG_LEVEL"), "info"),
		DeliveryCostPerDelivery: parseFloat(k.String("DELIVERY_COST_PER_DELIVERY"), 2.0),
		DeliveryCostPerProduct:  parseFloat(k.String("DELIVERY_COST_PER_PRODUCT"), 5.0),
		DeliveryFixedCost:       parseFloat(k.String("DELIVERY_FIXED_COST"), delivery.DefaultFixedCost),
	}

	if cfg.DeliveryCostPerDelivery < 0 {
		return nil, fmt.Errorf("DELIVERY_COST_PER_DELIVERY must not be negative")
	}
	if cfg.DeliveryCostPerProduct < 0 {
		return nil, fmt.Errorf("DELIVERY_COST_PER_PRODUCT must not be negative")
	}
	if cfg.DeliveryFixedCost < 0 {
		return nil, fmt.Errorf("DELIVERY_FIXED_COST must not be negative")
	}

	return cfg, nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func parseFloat(value string, fallback float64) float64 {
	base := strings.TrimSpace(value)
	if base == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(base, 64)
	if err != nil {
		return fallback
	}
	return f
}

// MustLoad behaves like Load but panics on error. Useful for tests and command entrypoints.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadForTests allows tests to override environment variables without touching the real environment.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]string, len(env))
	for key := range env {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, env[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
