package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultDepositPercentage = "30"
	defaultMinimumBooking    = "0"
	defaultJWTAccessTTL      = "24h"
	defaultJWTSecret         = "change-me-jwt-secret"
)

// PricingRuntimeConfig carries the environment-provided defaults the
// booking service falls back to when the settings table has no row.
type PricingRuntimeConfig struct {
	AppEnv               string
	JWTSecret            string
	JWTAccessTTL         time.Duration
	DepositPercentage    float64
	MinimumBookingAmount float64
}

func LoadPricingRuntimeConfig() (*PricingRuntimeConfig, error) {
	cfg := &PricingRuntimeConfig{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	cfg.DepositPercentage, err = parseFloatEnv("DEPOSIT_PERCENTAGE", defaultDepositPercentage)
	if err != nil {
		return nil, err
	}

	cfg.MinimumBookingAmount, err = parseFloatEnv("MINIMUM_BOOKING_AMOUNT", defaultMinimumBooking)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateConfig(cfg *PricingRuntimeConfig) error {
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.DepositPercentage < 0 || cfg.DepositPercentage > 100 {
		return fmt.Errorf("DEPOSIT_PERCENTAGE must be within 0..100")
	}
	if cfg.MinimumBookingAmount < 0 {
		return fmt.Errorf("MINIMUM_BOOKING_AMOUNT must be >= 0")
	}
	if isProdLike(cfg.AppEnv) && strings.TrimSpace(cfg.JWTSecret) == defaultJWTSecret {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseFloatEnv(name, fallback string) (float64, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return f, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
