package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != ProviderGoogle {
		t.Errorf("expected default provider %q, got %q", ProviderGoogle, cfg.Provider)
	}
	if cfg.Model != "gemini-2.5-flash" {
		t.Errorf("expected default model gemini-2.5-flash, got %q", cfg.Model)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.ExplainTimeout != 60*time.Second {
		t.Errorf("expected default explain_timeout 60s, got %s", cfg.ExplainTimeout)
	}
	if cfg.MaxSessions != 1000 {
		t.Errorf("expected default max_sessions 1000, got %d", cfg.MaxSessions)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.lyra.yml")

	original := DefaultConfig()
	original.Provider = ProviderOpenAI
	original.Model = "gpt-4o"
	original.Port = 9000
	original.ExplainTimeout = 15 * time.Second
	original.HistoryDB = "history.db"
	original.Export.Sections = []string{"api-*", "spa-*"}

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Provider != original.Provider {
		t.Errorf("provider: got %q, want %q", loaded.Provider, original.Provider)
	}
	if loaded.Model != original.Model {
		t.Errorf("model: got %q, want %q", loaded.Model, original.Model)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.ExplainTimeout != original.ExplainTimeout {
		t.Errorf("explain_timeout: got %s, want %s", loaded.ExplainTimeout, original.ExplainTimeout)
	}
	if loaded.HistoryDB != original.HistoryDB {
		t.Errorf("history_db: got %q, want %q", loaded.HistoryDB, original.HistoryDB)
	}
	if len(loaded.Export.Sections) != 2 || loaded.Export.Sections[1] != "spa-*" {
		t.Errorf("export.sections: got %v, want %v", loaded.Export.Sections, original.Export.Sections)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Provider != ProviderGoogle {
		t.Errorf("expected default provider, got %q", cfg.Provider)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yml")
	if err := os.WriteFile(path, []byte("port: 9001\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("LYRA_PROVIDER", "anthropic")
	t.Setenv("LYRA_EXPLAIN_TIMEOUT", "30s")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Provider != ProviderAnthropic {
		t.Errorf("env override failed: got %q, want %q", loaded.Provider, ProviderAnthropic)
	}
	if loaded.Model != DefaultModel(ProviderAnthropic) {
		t.Errorf("model should follow provider: got %q", loaded.Model)
	}
	if loaded.ExplainTimeout != 30*time.Second {
		t.Errorf("explain_timeout: got %s, want 30s", loaded.ExplainTimeout)
	}
	if loaded.Port != 9001 {
		t.Errorf("port: got %d, want 9001", loaded.Port)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"invalid provider", func(c *Config) { c.Provider = "invalid" }, true},
		{"empty provider", func(c *Config) { c.Provider = "" }, true},
		{"empty model", func(c *Config) { c.Model = "" }, true},
		{"port out of range", func(c *Config) { c.Port = 70000 }, true},
		{"negative timeout", func(c *Config) { c.ExplainTimeout = -time.Second }, true},
		{"zero sessions", func(c *Config) { c.MaxSessions = 0 }, true},
		{"negative rpm", func(c *Config) { c.RateLimitRPM = -1 }, true},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"json logs", func(c *Config) { c.LogFormat = "json" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultModel(t *testing.T) {
	if got := DefaultModel(ProviderOllama); got != "llama3" {
		t.Errorf("DefaultModel(ollama) = %q", got)
	}
	if got := DefaultModel("unknown"); got != "gemini-2.5-flash" {
		t.Errorf("DefaultModel(unknown) = %q, want gemini fallback", got)
	}
}

func TestAPIKeyEnvVar(t *testing.T) {
	tests := []struct {
		provider ProviderType
		want     string
	}{
		{ProviderAnthropic, "ANTHROPIC_API_KEY"},
		{ProviderOpenAI, "OPENAI_API_KEY"},
		{ProviderGoogle, "GOOGLE_API_KEY"},
		{ProviderOllama, ""},
	}
	for _, tt := range tests {
		if got := APIKeyEnvVar(tt.provider); got != tt.want {
			t.Errorf("APIKeyEnvVar(%q) = %q, want %q", tt.provider, got, tt.want)
		}
	}
}

func TestValidatePort(t *testing.T) {
	for _, ok := range []string{"1", "8080", "65535"} {
		if err := validatePort(ok); err != nil {
			t.Errorf("validatePort(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "0", "abc", "65536"} {
		if err := validatePort(bad); err == nil {
			t.Errorf("validatePort(%q) should fail", bad)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"api-*", []string{"api-*"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
