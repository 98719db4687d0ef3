package config

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	DBURL       string
	Port        string
	Environment string
	BcryptCost  int
	CorsConfig  cors.Options
}

// Load reads the .env file (if present) and assembles the configuration.
func Load() Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No", envFile, "file found")
	}

	return Config{
		DBURL:       getEnv("DB_URL", ""),
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		BcryptCost:  getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
		CorsConfig:  CorsConfig(),
	}
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Println("Invalid value for", key, "- using default")
		return fallback
	}
	return n
}

func CorsConfig() cors.Options {
	return cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "X-API-Key"},
		AllowCredentials: false,
	}
}
