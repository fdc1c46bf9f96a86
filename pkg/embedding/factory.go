package embedding

import "fmt"

type Config struct {
	Provider      string // "openai", "jina" or "ollama"
	Model         string
	OpenAIKey     string
	JinaKey       string
	OllamaBaseURL string
}

func NewProvider(cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("openai embedding provider requires an API key")
		}
		return NewOpenAIProvider(cfg.OpenAIKey, cfg.Model), nil
	case "jina":
		if cfg.JinaKey == "" {
			return nil, fmt.Errorf("jina embedding provider requires an API key")
		}
		return NewJinaProvider(cfg.JinaKey), nil
	case "ollama":
		return NewOllamaProvider(cfg.OllamaBaseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", cfg.Provider)
	}
}
