package config

import (
	"os"
	"strings"
)

type Config struct {
	Port         string
	GinMode      string
	AllowOrigins []string
}

func Load() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		AllowOrigins: strings.Split(getEnv("ALLOW_ORIGINS", "http://localhost:3000"), ","),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
