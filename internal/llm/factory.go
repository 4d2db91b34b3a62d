package llm

import (
	"context"
	"fmt"
	"os"
)

const defaultOllamaHost = "http://localhost:11434"

// googleKeyVars are checked in order for the Gemini credential.
var googleKeyVars = []string{"GOOGLE_API_KEY", "GEMINI_API_KEY", "API_KEY"}

// NewProvider creates a provider by name. Credentials come from the
// environment and are only checked for presence.
// Supported provider types: "google", "openai", "anthropic", "ollama".
func NewProvider(ctx context.Context, providerType string, model string) (Provider, error) {
	switch providerType {
	case "google":
		apiKey := firstEnv(googleKeyVars...)
		if apiKey == "" {
			return nil, fmt.Errorf("GOOGLE_API_KEY environment variable is not set")
		}
		return NewGoogleProvider(ctx, apiKey, model)

	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
		}
		return NewOpenAIProvider(apiKey, model), nil

	case "anthropic":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is not set")
		}
		return NewAnthropicProvider(apiKey, model), nil

	case "ollama":
		host := os.Getenv("OLLAMA_HOST")
		if host == "" {
			host = defaultOllamaHost
		}
		return NewOllamaProvider(host, model), nil

	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
