package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"proposal-eval-be/internal/pkg/apperrors"
)

type JinaProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

var _ Provider = &JinaProvider{}

func NewJinaProvider(apiKey string) *JinaProvider {
	return &JinaProvider{
		apiKey:  apiKey,
		baseURL: "https://api.jina.ai/v1/embeddings",
		model:   "jina-embeddings-v2-base-en",
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type jinaEmbeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type jinaEmbeddingResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (p *JinaProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	// Jina expects an array of inputs; we wrap the single text.
	reqBody := jinaEmbeddingRequest{
		Model: p.model,
		Input: []string{text},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindRetrieval, "marshal jina embedding request", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindRetrieval, "create jina embedding request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.apiKey))

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindRetrieval, "jina embedding request failed", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindRetrieval, "read jina embedding response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.Newf(apperrors.KindRetrieval, "jina embedding error: %s", string(bodyBytes))
	}

	var jinaResp jinaEmbeddingResponse
	if err := json.Unmarshal(bodyBytes, &jinaResp); err != nil {
		return nil, apperrors.Wrap(apperrors.KindRetrieval, "unmarshal jina embedding response", err)
	}
	if jinaResp.Error != nil {
		return nil, apperrors.Newf(apperrors.KindRetrieval, "jina api returned error: %s", jinaResp.Error.Message)
	}
	if len(jinaResp.Data) == 0 {
		return nil, apperrors.New(apperrors.KindRetrieval, "jina returned no embedding data")
	}

	return Normalize(jinaResp.Data[0].Embedding), nil
}
