package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"proposal-eval-be/internal/pkg/apperrors"
	"proposal-eval-be/pkg/llm"
)

const apiVersion = "2023-06-01"

type AnthropicProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

var _ llm.LLMProvider = &AnthropicProvider{}

func NewAnthropicProvider(apiKey, baseURL, model string) *AnthropicProvider {
	if baseURL == "" {
		baseURL = "https://api.anthropic.com"
	}
	if model == "" {
		model = "claude-3-5-sonnet-latest"
	}
	return &AnthropicProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client: &http.Client{
			Timeout: 180 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type messagesRequest struct {
	Model       string             `json:"model"`
	Messages    []anthropicMessage `json:"messages"`
	System      string             `json:"system,omitempty"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature,omitempty"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// --- Interface Implementation ---

func (p *AnthropicProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{
		Temperature: 0.7,
		MaxTokens:   2000, // The Messages API requires max_tokens
	}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]anthropicMessage, 0, len(history))
	for _, msg := range history {
		role := msg.Role
		if role == "model" {
			role = "assistant"
		}
		messages = append(messages, anthropicMessage{Role: role, Content: msg.Content})
	}

	model := p.model
	if options.Model != "" {
		model = options.Model
	}

	reqPayload := messagesRequest{
		Model:       model,
		Messages:    messages,
		System:      options.SystemPrompt,
		MaxTokens:   options.MaxTokens,
		Temperature: options.Temperature,
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindCompletion, "marshal anthropic request", err)
	}

	url := p.baseURL + "/v1/messages"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindCompletion, "create anthropic request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindCompletion, "anthropic request failed", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindCompletion, "read anthropic response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", apperrors.Newf(apperrors.KindCompletion, "anthropic error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var msgResp messagesResponse
	if err := json.Unmarshal(bodyBytes, &msgResp); err != nil {
		return "", apperrors.Wrap(apperrors.KindCompletion, "unmarshal anthropic response", err)
	}
	if msgResp.Error != nil {
		return "", apperrors.Newf(apperrors.KindCompletion, "anthropic api returned error: %s", msgResp.Error.Message)
	}
	if len(msgResp.Content) == 0 {
		return "", apperrors.New(apperrors.KindCompletion, fmt.Sprintf("empty content from anthropic for model %s", model))
	}

	return msgResp.Content[0].Text, nil
}

func (p *AnthropicProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}
