package config

import (
	"os"
	"sync"
	"time"
)

type GeminiConfig struct {
	APIKey         string
	FastModel      string
	ProModel       string
	RequestTimeout time.Duration
	MaxRetries     int

	// CircuitCooldown is how long the breaker stays open before a trial call.
	CircuitCooldown time.Duration
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			apiKey = os.Getenv("GOOGLE_AI_API_KEY")
		}
		geminiConfig = &GeminiConfig{
			APIKey:          apiKey,
			FastModel:       envString("GEMINI_FAST_MODEL", "gemini-2.5-flash"),
			ProModel:        envString("GEMINI_PRO_MODEL", "gemini-2.5-pro"),
			RequestTimeout:  envDuration("AI_REQUEST_TIMEOUT", 90*time.Second),
			MaxRetries:      envInt("AI_MAX_RETRIES", 2),
			CircuitCooldown: envDuration("AI_CIRCUIT_COOLDOWN", 30*time.Second),
		}
	})
	return geminiConfig
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
