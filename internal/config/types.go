package config

import "time"

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderGoogle    ProviderType = "google"
	ProviderOpenAI    ProviderType = "openai"
	ProviderAnthropic ProviderType = "anthropic"
	ProviderOllama    ProviderType = "ollama"
)

// Config is the top-level lyra configuration, corresponding to .lyra.yml.
type Config struct {
	Provider        ProviderType  `yaml:"provider" koanf:"provider"`
	Model           string        `yaml:"model" koanf:"model"`
	Port            int           `yaml:"port" koanf:"port"`
	ExplainTimeout  time.Duration `yaml:"explain_timeout" koanf:"explain_timeout"`
	MaxSessions     int           `yaml:"max_sessions" koanf:"max_sessions"`
	RateLimitRPM    int           `yaml:"rate_limit_rpm" koanf:"rate_limit_rpm"`
	HistoryDB       string        `yaml:"history_db" koanf:"history_db"`
	LogLevel        string        `yaml:"log_level" koanf:"log_level"`
	LogFormat       string        `yaml:"log_format" koanf:"log_format"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Export          ExportConfig  `yaml:"export" koanf:"export"`
}

// ExportConfig holds static site export settings.
type ExportConfig struct {
	OutputDir string   `yaml:"output_dir" koanf:"output_dir"`
	Sections  []string `yaml:"sections" koanf:"sections"`
}
