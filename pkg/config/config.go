package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CompletionAPIKey      string
	CompletionBaseURL     string
	CompletionModel       string
	CompletionMaxTokens   int
	CompletionTemperature float64
	CompletionTimeout     time.Duration

	CatalogTimeout time.Duration
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       int(getEnvAsInt64("REDIS_DB", 0)),

		CompletionAPIKey:      getEnv("COMPLETION_API_KEY", ""),
		CompletionBaseURL:     getEnv("COMPLETION_BASE_URL", "https://openrouter.ai/api/v1"),
		CompletionModel:       getEnv("COMPLETION_MODEL", "openai/gpt-3.5-turbo"),
		CompletionMaxTokens:   int(getEnvAsInt64("COMPLETION_MAX_TOKENS", 500)),
		CompletionTemperature: getEnvAsFloat("COMPLETION_TEMPERATURE", 0.7),
		CompletionTimeout:     time.Duration(getEnvAsInt64("COMPLETION_TIMEOUT_SECONDS", 15)) * time.Second,

		CatalogTimeout: time.Duration(getEnvAsInt64("CATALOG_TIMEOUT_SECONDS", 10)) * time.Second,
	}

	return config, nil
}

// Validate is called once at startup; a missing completion credential
// prevents the process from starting instead of failing per turn.
func (c *Config) Validate() error {
	if c.CompletionAPIKey == "" {
		return fmt.Errorf("COMPLETION_API_KEY is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		floatValue, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return floatValue
		}
	}
	return defaultValue
}
