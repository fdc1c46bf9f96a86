// Package refine classifies whether a question needs knowledge-base
// retrieval and rewrites it into a standalone search query.
package refine

import (
	"context"
	"fmt"
	"strings"

	"proposal-eval-be/internal/pkg/logger"
	"proposal-eval-be/pkg/llm"
)

const refinementPrompt = `You are a query classification and refinement assistant.

Given a conversation history and the user's current question, determine:
1. Whether the question requires retrieval from a knowledge base (True/False)
2. A refined/expanded version of the question for better search results

Consider these guidelines:
- General greetings, thank you messages, or simple acknowledgments do NOT need retrieval
- Questions about specific topics, asking for information, or requesting explanations DO need retrieval
- If the question references "this", "that", or "it", use conversation context to make the refined query standalone
- Make the refined query clear and specific

Conversation History:
%s

Current Question: %s

Respond in exactly this format:
REQUIRES_RETRIEVAL: [True/False]
REFINED_QUERY: [the refined query]
`

const (
	refineTemperature = 0.3
	refineMaxTokens   = 200
)

type Refiner struct {
	provider llm.LLMProvider
	log      logger.ILogger
}

func NewRefiner(provider llm.LLMProvider, log logger.ILogger) *Refiner {
	return &Refiner{provider: provider, log: log}
}

// Refine returns whether retrieval is needed and the refined query. The
// refiner fails open: any model or parse failure means retrieval with the
// original query, never a dropped question.
func (r *Refiner) Refine(ctx context.Context, conversation, query string) (bool, string) {
	history := conversation
	if history == "" {
		history = "No previous conversation"
	}
	prompt := fmt.Sprintf(refinementPrompt, history, query)

	response, err := r.provider.Generate(ctx, prompt,
		llm.WithTemperature(refineTemperature),
		llm.WithMaxTokens(refineMaxTokens),
	)
	if err != nil {
		r.log.Warn("rag.refine", "query refinement failed, defaulting to retrieval", map[string]interface{}{
			"error": err.Error(),
		})
		return true, query
	}

	requiresRetrieval := true
	refinedQuery := query
	labelSeen := false

	for _, line := range strings.Split(strings.TrimSpace(response), "\n") {
		if strings.HasPrefix(line, "REQUIRES_RETRIEVAL:") {
			value := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "REQUIRES_RETRIEVAL:")))
			requiresRetrieval = value == "true"
			labelSeen = true
		} else if strings.HasPrefix(line, "REFINED_QUERY:") {
			if q := strings.TrimSpace(strings.TrimPrefix(line, "REFINED_QUERY:")); q != "" {
				refinedQuery = q
			}
		}
	}

	if !labelSeen {
		r.log.Warn("rag.refine", "refinement response missing REQUIRES_RETRIEVAL label, defaulting to retrieval", map[string]interface{}{
			"response_length": len(response),
		})
	}

	r.log.Info("rag.refine", "query refined", map[string]interface{}{
		"requires_retrieval": requiresRetrieval,
	})

	return requiresRetrieval, refinedQuery
}
