package config

import (
	"os"
	"strings"
	"sync"
)

const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

type AdvisorConfig struct {
	Provider string
}

var (
	advisorConfig *AdvisorConfig
	advisorOnce   sync.Once
)

func LoadAdvisorConfig() *AdvisorConfig {
	advisorOnce.Do(func() {
		provider := strings.ToLower(strings.TrimSpace(os.Getenv("AI_PROVIDER")))
		if provider == "" {
			provider = ProviderGemini
		}
		advisorConfig = &AdvisorConfig{Provider: provider}
	})
	return advisorConfig
}
