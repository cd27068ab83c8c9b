package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppName    string
	Env        string
	Port       string
	GinMode    string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	AuthSecret string
}

// Load reads configuration from the environment, after loading .env when one
// is present. Defaults target local development.
func Load() *Config {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		AppName:    getEnv("APP_NAME", "member-care-api"),
		Env:        getEnv("APP_ENV", "development"),
		Port:       getEnv("PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "membercare"),
		DBPassword: getEnv("DB_PASSWORD", "membercare"),
		DBName:     getEnv("DB_NAME", "member_care"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		AuthSecret: getEnv("AUTH_SECRET", "default-secret-key-change-me"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
