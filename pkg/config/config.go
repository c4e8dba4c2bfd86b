package config

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	AuthKey           string        `validate:"required"`
	AuthSecret        string        `validate:"required"`
	GatewaySandbox    bool
	GatewayURL        string `validate:"omitempty,url"` // overrides the built-in gateway hosts
	HTTPTimeout       time.Duration `validate:"gt=0"`
	Port              string        `validate:"required,numeric"`
	IsProduction      bool
	DatabaseURL       string
	EnableDBCheck     bool
	CallbackRateLimit string `validate:"required"`
	APIToken          string `validate:"required,min=16"` // shared secret for /api/v1 callers
	APIRateLimit      string `validate:"required"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("AUTH_KEY", "")
	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("GATEWAY_SANDBOX", true)
	viper.SetDefault("GATEWAY_URL", "")
	viper.SetDefault("HTTP_TIMEOUT", "30s")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("CALLBACK_RATE_LIMIT", "120-M")
	viper.SetDefault("API_TOKEN", "")
	viper.SetDefault("API_RATE_LIMIT", "600-M")

	viper.AutomaticEnv()

	cfg := &Config{
		AuthKey:           viper.GetString("AUTH_KEY"),
		AuthSecret:        viper.GetString("AUTH_SECRET"),
		GatewaySandbox:    viper.GetBool("GATEWAY_SANDBOX"),
		GatewayURL:        viper.GetString("GATEWAY_URL"),
		Port:              viper.GetString("PORT"),
		IsProduction:      viper.GetBool("IS_PRODUCTION"),
		DatabaseURL:       viper.GetString("PGSQL_URL"),
		EnableDBCheck:     viper.GetBool("ENABLE_DB_CHECK"),
		CallbackRateLimit: viper.GetString("CALLBACK_RATE_LIMIT"),
		APIToken:          viper.GetString("API_TOKEN"),
		APIRateLimit:      viper.GetString("API_RATE_LIMIT"),
	}

	// Load HTTP timeout (e.g., "30s", "1m")
	timeoutStr := viper.GetString("HTTP_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 30 * time.Second
		log.Printf("Warning: Invalid value for HTTP_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.HTTPTimeout = timeout

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Callbacks are kept in memory.")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
