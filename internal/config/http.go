package config

import (
	"os"
	"strconv"
	"time"
)

type HTTPConfig struct {
	Port            int
	ServiceName     string
	ShutdownTimeout time.Duration
}

func NewHTTPConfig() *HTTPConfig {
	port, err := strconv.Atoi(os.Getenv("HTTP_PORT"))
	if err != nil || port <= 0 {
		port = 8082
	}
	shutdownSec, err := strconv.Atoi(os.Getenv("HTTP_SHUTDOWN_TIMEOUT_SEC"))
	if err != nil || shutdownSec <= 0 {
		shutdownSec = 5
	}
	return &HTTPConfig{
		Port:            port,
		ServiceName:     getEnv("SERVICE_NAME", "bhajanRoster"),
		ShutdownTimeout: time.Duration(shutdownSec) * time.Second,
	}
}
