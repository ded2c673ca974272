package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	GatewayAddr string
	RedisAddr   string
	HTTPAddr    string
	LogLevel    logrus.Level
}

// Load reads the environment, filling it from a .env file first when one exists.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("loading .env file: %w", err)
	}

	level, err := logrus.ParseLevel(getEnvOrDefault("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("parsing log level: %w", err)
	}

	cfg := Config{
		GatewayAddr: os.Getenv("GATEWAY_ADDR"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		HTTPAddr:    getEnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:    level,
	}

	if cfg.RedisAddr == "" {
		return Config{}, errors.New("REDIS_ADDR is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key string, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
