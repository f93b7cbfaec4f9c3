package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	MigrationsURL string

	JWTSecret string
	JWTIssuer string

	RateLimit          string   // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string

	AccountQueryTimeout  time.Duration
	LargeAmountThreshold decimal.Decimal
	FutureDateWindow     time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_URL", "file://migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "accounting-api")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("ACCOUNT_QUERY_TIMEOUT", "5s")
	v.SetDefault("LARGE_AMOUNT_THRESHOLD", "100000")
	v.SetDefault("FUTURE_DATE_WINDOW", "720h")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:   v.GetString("PGSQL_URL"),
		Port:          v.GetString("PORT"),
		IsProduction:  v.GetBool("IS_PRODUCTION"),
		EnableDBCheck: v.GetBool("ENABLE_DB_CHECK"),
		MigrationsURL: v.GetString("MIGRATIONS_URL"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		JWTIssuer:     v.GetString("JWT_ISSUER"),
		RateLimit:     v.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	var err error
	if cfg.AccountQueryTimeout, err = parseDuration(v, "ACCOUNT_QUERY_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.FutureDateWindow, err = parseDuration(v, "FUTURE_DATE_WINDOW"); err != nil {
		return nil, err
	}

	thresholdStr := v.GetString("LARGE_AMOUNT_THRESHOLD")
	cfg.LargeAmountThreshold, err = decimal.NewFromString(thresholdStr)
	if err != nil || !cfg.LargeAmountThreshold.IsPositive() {
		return nil, fmt.Errorf("invalid value for LARGE_AMOUNT_THRESHOLD (%q): must be a positive number", thresholdStr)
	}

	return cfg, nil
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid value for %s (%q): must be a positive duration", key, raw)
	}
	return d, nil
}
