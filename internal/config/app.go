package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
)

type AppConfig struct {
	Name             string
	Env              string
	Port             string
	BaseURL          string
	CORSOrigins      string
	RateLimitMax     int
	AuthRateLimitMax int
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
		}
		name := os.Getenv("APP_NAME")
		if name == "" {
			name = "career-coach"
		}
		port := os.Getenv("APP_PORT")
		if port == "" {
			port = ":5000"
		} else if !strings.Contains(port, ":") {
			port = ":" + port
		}
		origins := os.Getenv("CORS_ORIGINS")
		if origins == "" {
			origins = "http://localhost:5000,http://localhost:5173"
		}
		appConfig = &AppConfig{
			Name:             name,
			Env:              env,
			Port:             port,
			BaseURL:          os.Getenv("APP_URL"),
			CORSOrigins:      origins,
			RateLimitMax:     envInt("RATE_LIMIT_MAX", 100),
			AuthRateLimitMax: envInt("AUTH_RATE_LIMIT_MAX", 10),
		}
	})
	return appConfig
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, raw, def)
		return def
	}
	return v
}

func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}
