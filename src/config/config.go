package config

import (
	"fmt"
	"os"
)

type GlobalConfig struct {
	LogLevel  string
	Host      string
	Port      string
	RabbitURL string
}

func NewConfig() (GlobalConfig, error) {
	// Set log level from environment
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		return GlobalConfig{}, fmt.Errorf("LOG_LEVEL environment variable is required")
	}

	host := os.Getenv("HOST")
	if host == "" {
		return GlobalConfig{}, fmt.Errorf("HOST environment variable is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		return GlobalConfig{}, fmt.Errorf("PORT environment variable is required")
	}

	// RabbitMQ is optional; event publishing is disabled when unset
	rabbitURL := os.Getenv("RABBITMQ_URL")

	return GlobalConfig{
		LogLevel:  logLevel,
		Host:      host,
		Port:      port,
		RabbitURL: rabbitURL,
	}, nil
}
