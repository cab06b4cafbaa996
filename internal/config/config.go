// Package config loads process configuration from a .env file and the
// environment. The admin credential pair is static external configuration by
// design: it is never stored inside the state document.
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the full process configuration.
type Config struct {
	// Port the HTTP surface listens on.
	Port int

	// DBPath is the SQLite file holding the document slot.
	DBPath string

	// AdminID is the administrative login identifier, compared
	// case-insensitively.
	AdminID string

	// AdminPassword is the administrative password, compared case-sensitively.
	// Ignored when AdminPasswordBcrypt is set.
	AdminPassword string

	// AdminPasswordBcrypt optionally replaces AdminPassword with a bcrypt
	// hash for deployments that refuse plaintext credentials in env vars.
	AdminPasswordBcrypt string

	// JWTSecret signs session tokens.
	JWTSecret string
}

// Load reads .env (if present) and the environment, falling back to
// development defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	return Config{
		Port:                getEnvInt("PORT", 8080),
		DBPath:              getEnv("DB_PATH", "./data/gurukul.db"),
		AdminID:             getEnv("ADMIN_ID", "ADMIN"),
		AdminPassword:       getEnv("ADMIN_PASSWORD", "admin123"),
		AdminPasswordBcrypt: getEnv("ADMIN_PASSWORD_BCRYPT", ""),
		JWTSecret:           getEnv("JWT_SECRET", "dev-only-secret-change-me"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("invalid integer env var, using fallback", "key", key, "value", value)
		return fallback
	}
	return n
}
