package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// External rate provider
	RateAPIBaseURL      string
	RateAPIKey          string
	RateRefreshInterval time.Duration

	// Request rate limiting, in ulule/limiter notation (e.g. "100-M")
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "4000")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_API_BASE_URL", "https://v6.exchangerate-api.com")
	viper.SetDefault("RATE_API_KEY", "")
	viper.SetDefault("RATE_REFRESH_INTERVAL", "1h")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RateAPIBaseURL = viper.GetString("RATE_API_BASE_URL")

	cfg.RateAPIKey = viper.GetString("RATE_API_KEY")
	if cfg.RateAPIKey == "" {
		log.Println("Warning: RATE_API_KEY not set. Exchange rate fetches will fail.")
	}

	refreshStr := viper.GetString("RATE_REFRESH_INTERVAL")
	refreshInterval, err := time.ParseDuration(refreshStr)
	if err != nil {
		refreshInterval = time.Hour
		log.Printf("Warning: Invalid value for RATE_REFRESH_INTERVAL (%q). Defaulting to %s.\n", refreshStr, refreshInterval)
	}
	cfg.RateRefreshInterval = refreshInterval

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
