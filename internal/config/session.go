package config

import (
	"os"
	"sync"
	"time"
)

type SessionConfig struct {
	CookieName    string
	TTL           time.Duration
	CookieDomain  string
	CookieSecure  bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

var (
	sessionConfig *SessionConfig
	sessionOnce   sync.Once
)

func LoadSessionConfig() *SessionConfig {
	sessionOnce.Do(func() {
		sessionConfig = &SessionConfig{
			CookieName:    envString("SESSION_COOKIE_NAME", "career_coach_sid"),
			TTL:           envDuration("SESSION_TTL", 7*24*time.Hour),
			CookieDomain:  os.Getenv("COOKIE_DOMAIN"),
			CookieSecure:  envBool("COOKIE_SECURE", LoadAppConfig().IsProduction()),
			RedisAddr:     os.Getenv("REDIS_ADDR"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDB:       envInt("REDIS_DB", 0),
			RedisPrefix:   envString("REDIS_PREFIX", "career_coach:session:"),
		}
	})
	return sessionConfig
}
