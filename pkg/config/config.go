package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func init() {
	// Optional .env for local development; real deployments set env vars directly.
	_ = godotenv.Load()
}

// GetEnv returns the value of the environment variable or a fallback.
func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// GetEnvInt returns the integer value of the environment variable or a fallback.
func GetEnvInt(key string, fallback int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
