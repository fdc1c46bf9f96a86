package embedding

import (
	"context"

	"proposal-eval-be/internal/pkg/apperrors"

	goopenai "github.com/sashabaranov/go-openai"
)

// Vectors from every provider are stored in the same 768-wide pgvector
// column, so the v3 models are asked for reduced dimensions.
const embeddingDimensions = 768

// OpenAIProvider wraps the OpenAI embeddings endpoint.
type OpenAIProvider struct {
	client *goopenai.Client
	model  goopenai.EmbeddingModel
}

var _ Provider = &OpenAIProvider{}

func NewOpenAIProvider(apiKey string, model string) *OpenAIProvider {
	m := goopenai.SmallEmbedding3
	if model != "" {
		m = goopenai.EmbeddingModel(model)
	}
	return &OpenAIProvider{
		client: goopenai.NewClient(apiKey),
		model:  m,
	}
}

func (p *OpenAIProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := p.client.CreateEmbeddings(ctx, goopenai.EmbeddingRequest{
		Model:      p.model,
		Input:      []string{text},
		Dimensions: embeddingDimensions,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindRetrieval, "openai embedding failed", err)
	}
	if len(resp.Data) == 0 {
		return nil, apperrors.New(apperrors.KindRetrieval, "openai returned no embedding data")
	}

	return Normalize(resp.Data[0].Embedding), nil
}
