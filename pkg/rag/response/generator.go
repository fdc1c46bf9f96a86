// Package response generates the final chat answer from retrieved context.
package response

import (
	"context"
	"fmt"
	"strings"

	"proposal-eval-be/internal/pkg/apperrors"
	"proposal-eval-be/internal/pkg/logger"
	"proposal-eval-be/pkg/llm"
	"proposal-eval-be/pkg/textutil"
)

const generationPrompt = `You are a helpful AI assistant specializing in impact evaluation, development, and social programs.

Your task is to answer the user's question based on the provided context from the knowledge base.

IMPORTANT RULES:
1. If the context contains relevant information, use it to answer the question
2. If the context is not relevant or insufficient, politely say you don't have that information in your knowledge base
3. Always cite your sources when using information from the context
4. Be concise but thorough
5. Use clear, professional language

Context from Knowledge Base:
%s

Conversation History:
%s

User Question: %s

Please provide a helpful answer. If you use information from the context, mention which sources you're referencing.
`

const (
	generationTemperature = 0.7
	generationMaxTokens   = 1000

	// WhatsApp caps message length, so answers get reflowed.
	SourceWhatsApp    = "WA"
	whatsappMaxLength = 1000
)

// Phrases signalling the model could not answer from the knowledge base.
var knowledgeBaseMissMarkers = []string{
	"don't have that information",
	"not in my knowledge base",
	"cannot find",
	"no relevant information",
}

type Generator struct {
	provider llm.LLMProvider
	log      logger.ILogger
}

func NewGenerator(provider llm.LLMProvider, log logger.ILogger) *Generator {
	return &Generator{provider: provider, log: log}
}

// Generate answers the question and reports whether the answer came from
// the knowledge base. A provider failure is fatal for the turn.
func (g *Generator) Generate(ctx context.Context, question, conversation, contextText, model, source string) (string, bool, error) {
	promptContext := contextText
	if promptContext == "" {
		promptContext = "No relevant context found"
	}
	history := conversation
	if history == "" {
		history = "No previous conversation"
	}

	prompt := fmt.Sprintf(generationPrompt, promptContext, history, question)

	opts := []llm.Option{
		llm.WithTemperature(generationTemperature),
		llm.WithMaxTokens(generationMaxTokens),
	}
	if model != "" {
		opts = append(opts, llm.WithModel(model))
	}

	answer, err := g.provider.Generate(ctx, prompt, opts...)
	if err != nil {
		g.log.Error("rag.response", "response generation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return "", false, apperrors.Wrap(apperrors.KindCompletion, "response generation failed", err)
	}

	withinKnowledgeBase := contextText != ""
	lower := strings.ToLower(answer)
	for _, marker := range knowledgeBaseMissMarkers {
		if strings.Contains(lower, marker) {
			withinKnowledgeBase = false
			break
		}
	}

	if source == SourceWhatsApp {
		answer = textutil.BreakIntoParagraphs(answer, whatsappMaxLength)
	}

	g.log.Info("rag.response", "response generated", map[string]interface{}{
		"within_kb":       withinKnowledgeBase,
		"response_length": len(answer),
	})

	return answer, withinKnowledgeBase, nil
}
