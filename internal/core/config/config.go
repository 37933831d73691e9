package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	Env        string
	WebhookURL string

	// Banking defaults applied to every new checking account.
	BranchCode           string
	OverdraftLimit       int64 // centavos, max single withdrawal
	DailyWithdrawalLimit int
}

// LoadConfig reads the .env file and returns a Config struct.
func LoadConfig() *Config {
	// The .env file might not exist in production, which is fine.
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, relying on system env variables")
	}

	return &Config{
		Port:                 getEnv("PORT", "3000"),
		Env:                  getEnv("ENV", "development"),
		WebhookURL:           getEnv("WEBHOOK_URL", ""),
		BranchCode:           getEnv("BRANCH_CODE", "0001"),
		OverdraftLimit:       getEnvInt64("OVERDRAFT_LIMIT", 500),
		DailyWithdrawalLimit: int(getEnvInt64("DAILY_WITHDRAWAL_LIMIT", 3)),
	}
}

// Helper to get env with a default fallback.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		slog.Warn("Invalid integer in env, using fallback", "key", key, "value", value)
		return fallback
	}
	return n
}
