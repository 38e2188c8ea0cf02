package config

import (
	"os"
	"strconv"
	"time"
)

type ShareConfig struct {
	Secret   string
	TokenTTL time.Duration
}

func NewShareConfig() *ShareConfig {
	ttlHours, err := strconv.Atoi(os.Getenv("SHARE_TOKEN_TTL_HOURS"))
	if err != nil || ttlHours <= 0 {
		ttlHours = 168
	}
	return &ShareConfig{
		Secret:   os.Getenv("JWT_SECRET"),
		TokenTTL: time.Duration(ttlHours) * time.Hour,
	}
}
