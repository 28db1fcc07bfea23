package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/yourusername/grocery-order-bot/internal/domain/constants"
)

// Config holds settings for both binaries. The bot and the data service
// each validate only the fields they use.
type Config struct {
	// bot
	TelegramToken  string
	SupabaseURL    string
	SupabaseAPIKey string
	HTTPTimeout    time.Duration
	RedisAddr      string
	RedisPassword  string
	CartTTL        time.Duration
	SnapshotTTL    time.Duration

	// data service
	BackendAddr string
	DatabaseURL string
	APIKey      string
}

// Load reads configuration from the environment, with .env as a fallback.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		SupabaseURL:    os.Getenv("SUPABASE_URL"),
		SupabaseAPIKey: os.Getenv("SUPABASE_API_KEY"),
		HTTPTimeout:    getEnvDuration("HTTP_TIMEOUT", constants.DefaultHTTPTimeout),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		CartTTL:        getEnvMinutes("CART_TTL_MINUTES", constants.DefaultCartTTL),
		SnapshotTTL:    getEnvDuration("SNAPSHOT_TTL", constants.DefaultSnapshotTTL),
		BackendAddr:    getEnv("BACKEND_ADDR", ":8090"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		APIKey:         os.Getenv("SUPABASE_API_KEY"),
	}
	return cfg, nil
}

// ValidateBot checks the fields the Telegram bot needs.
func (c *Config) ValidateBot() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	return nil
}

// ValidateBackend checks the fields the data service needs.
func (c *Config) ValidateBackend() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvMinutes(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return fallback
	}
	return time.Duration(minutes) * time.Minute
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
