package factory

import (
	"fmt"

	"proposal-eval-be/pkg/llm"
	"proposal-eval-be/pkg/llm/anthropic"
	"proposal-eval-be/pkg/llm/ollama"
	"proposal-eval-be/pkg/llm/openai"
)

type Config struct {
	Provider      string // "openai", "anthropic" or "ollama"
	Model         string
	OpenAIKey     string
	OpenAIOrg     string
	AnthropicKey  string
	OllamaBaseURL string
}

func NewLLMProvider(cfg Config) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("openai provider requires an API key")
		}
		return openai.NewOpenAIProvider(cfg.OpenAIKey, cfg.OpenAIOrg, cfg.Model), nil
	case "anthropic":
		if cfg.AnthropicKey == "" {
			return nil, fmt.Errorf("anthropic provider requires an API key")
		}
		return anthropic.NewAnthropicProvider(cfg.AnthropicKey, "", cfg.Model), nil
	case "ollama":
		baseURL := cfg.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
