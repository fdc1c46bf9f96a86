// Package context assembles the retrieval context for answer generation:
// deduplicated chunks plus their source descriptors.
package context

import (
	"context"
	"strings"

	"proposal-eval-be/internal/pkg/logger"
	"proposal-eval-be/pkg/store"
)

const (
	DefaultTopK = 4
	// Retrieval over-fetches so deduplication by document still yields
	// TopK distinct results.
	DefaultMultiplier = 2
)

// Retriever returns scored chunks for a query.
type Retriever interface {
	Search(ctx context.Context, query string, limit int) ([]store.Chunk, error)
}

// SourceResolver maps a document name to its catalog descriptor.
type SourceResolver interface {
	Resolve(ctx context.Context, documentName string) store.SourceDescriptor
}

// Extracted is the retrieval context handed to the response generator.
type Extracted struct {
	ContextInfo []store.Chunk
	Sources     []store.SourceDescriptor
	AllContext  string
}

type Extractor struct {
	retriever Retriever
	sources   SourceResolver
	log       logger.ILogger
}

func NewExtractor(retriever Retriever, sources SourceResolver, log logger.ILogger) *Extractor {
	return &Extractor{
		retriever: retriever,
		sources:   sources,
		log:       log,
	}
}

// Extract retrieves topK unique-document chunks for the query. Retrieval
// failures degrade to an empty context so the chat can still answer.
func (e *Extractor) Extract(ctx context.Context, query string, topK, multiplier int) Extracted {
	if topK <= 0 {
		topK = DefaultTopK
	}
	if multiplier <= 0 {
		multiplier = DefaultMultiplier
	}

	results, err := e.retriever.Search(ctx, query, topK*multiplier)
	if err != nil {
		e.log.Error("rag.context", "context extraction failed", map[string]interface{}{
			"error": err.Error(),
		})
		return Extracted{
			ContextInfo: []store.Chunk{},
			Sources:     []store.SourceDescriptor{},
		}
	}

	seenDocs := make(map[string]bool)
	unique := []store.Chunk{}
	parts := []string{}

	for _, chunk := range results {
		name := chunk.DocumentName
		if name == "" {
			name = "Unknown"
		}
		if seenDocs[name] || len(unique) >= topK {
			continue
		}
		seenDocs[name] = true
		chunk.DocumentName = name
		unique = append(unique, chunk)
		parts = append(parts, chunk.Text)
	}

	sources := []store.SourceDescriptor{}
	seenTitles := make(map[string]bool)
	for _, chunk := range unique {
		descriptor := e.sources.Resolve(ctx, chunk.DocumentName)
		if seenTitles[descriptor.Title] {
			continue
		}
		seenTitles[descriptor.Title] = true
		sources = append(sources, descriptor)
	}

	e.log.Info("rag.context", "context extracted", map[string]interface{}{
		"num_contexts": len(unique),
		"num_sources":  len(sources),
	})

	return Extracted{
		ContextInfo: unique,
		Sources:     sources,
		AllContext:  strings.Join(parts, "\n\n---\n\n"),
	}
}
