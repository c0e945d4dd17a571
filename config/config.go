package config

import (
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	Port          string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	TriviaAPIURL  string
	LogLevel      string
	LogFormat     string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		TriviaAPIURL:  getEnv("TRIVIA_API_URL", "https://opentdb.com"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func InitRedis(cfg *Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       0, // use default DB
	})

	return client
}
