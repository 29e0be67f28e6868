package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	HTTPPort      string
	DatabaseDSN   string
	SessionSecret string
	SessionTTL    time.Duration // sliding window, refreshed on every authenticated request
	CORSOrigins   string
	Env           string
}

func Load() *Config {
	// Optional .env for local development; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=menu-db port=5432 sslmode=disable"),
		SessionSecret: getEnv("SESSION_SECRET", ""),
		SessionTTL:    time.Duration(getEnvInt("SESSION_TTL_MINUTES", 5)) * time.Minute,
		CORSOrigins:   getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		Env:           getEnv("APP_ENV", EnvDevelopment),
	}

	if cfg.SessionSecret == "" {
		log.Fatal("[FATAL] SESSION_SECRET is not set; it is required to sign session tokens.")
	}
	if len(cfg.SessionSecret) < 32 {
		log.Fatal("[FATAL] SESSION_SECRET must be at least 32 characters.")
	}
	if cfg.Env == EnvProduction && cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=menu-db port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN is still the development default; set a real Postgres DSN for production.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[WARN] %s=%q is not a positive integer, using default %d", key, v, def)
		return def
	}
	return n
}
