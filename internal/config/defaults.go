package config

import "time"

// defaultModels maps each provider to the model used when none is set.
var defaultModels = map[ProviderType]string{
	ProviderGoogle:    "gemini-2.5-flash",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-haiku-4-5-20251001",
	ProviderOllama:    "llama3",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:       ProviderGoogle,
		Model:          defaultModels[ProviderGoogle],
		Port:           8080,
		ExplainTimeout: 60 * time.Second,
		MaxSessions:    1000,
		LogLevel:       "info",
		LogFormat:      "text",
		Export: ExportConfig{
			OutputDir: "site",
			Sections:  []string{"**"},
		},
	}
}

// DefaultModel returns the default model for provider, falling back to the
// Gemini model.
func DefaultModel(provider ProviderType) string {
	if m, ok := defaultModels[provider]; ok {
		return m
	}
	return defaultModels[ProviderGoogle]
}
