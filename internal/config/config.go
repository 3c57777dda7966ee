package config

import (
	"os"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// External auth provider (opaque session-id exchange)
	AuthProviderURL string
	AuthTimeout     time.Duration

	// Session lifetime; the cookie max-age matches it
	SessionTTL time.Duration

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "universe_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		AuthProviderURL: getEnv("AUTH_PROVIDER_URL", "https://demobackend.emergentagent.com/auth/v1/env/oauth/session-data"),
		AuthTimeout:     parseDuration(getEnv("AUTH_TIMEOUT", "10s"), 10*time.Second),

		SessionTTL: parseDuration(getEnv("SESSION_TTL", "168h"), 168*time.Hour),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
