package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	DBUser string
	DBPass string
	DBHost string
	DBPort string
	DBName string

	JWTSecret      string
	JWTIssuer      string
	JWTAudience    string
	JWTExpiryHours int

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

func Load() *Config {
	return &Config{
		Port:        GetEnv("PORT", "3000"),
		Environment: GetEnv("APP_ENV", "development"),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),

		DBUser: GetEnv("DB_USER", "root"),
		DBPass: GetEnv("DB_PASS", ""),
		DBHost: GetEnv("DB_HOST", "127.0.0.1"),
		DBPort: GetEnv("DB_PORT", "3306"),
		DBName: GetEnv("DB_NAME", "peregrine_db"),

		JWTSecret:      GetEnv("JWT_SECRET", "peregrine-dev-secret"),
		JWTIssuer:      GetEnv("JWT_ISSUER", "PeregrineBackend"),
		JWTAudience:    GetEnv("JWT_AUDIENCE", "PeregrineApp"),
		JWTExpiryHours: GetEnvAsInt("JWT_EXPIRY_HOURS", 24),

		SMTPHost: GetEnv("SMTP_HOST", ""),
		SMTPPort: GetEnvAsInt("SMTP_PORT", 587),
		SMTPUser: GetEnv("SMTP_USER", ""),
		SMTPPass: GetEnv("SMTP_PASS", ""),
		SMTPFrom: GetEnv("SMTP_FROM", "noreply@peregrine.com"),
	}
}

// GetEnv returns the environment variable value or a fallback default.
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// GetEnvAsInt returns the environment variable as integer with fallback.
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
