package context

import (
	stdcontext "context"
	"errors"
	"testing"

	"proposal-eval-be/internal/pkg/logger"
	"proposal-eval-be/pkg/store"
)

type stubRetriever struct {
	chunks    []store.Chunk
	err       error
	gotLimit  int
	gotQuery  string
	wasCalled bool
}

func (s *stubRetriever) Search(ctx stdcontext.Context, query string, limit int) ([]store.Chunk, error) {
	s.wasCalled = true
	s.gotQuery = query
	s.gotLimit = limit
	return s.chunks, s.err
}

type stubResolver struct{}

func (stubResolver) Resolve(ctx stdcontext.Context, documentName string) store.SourceDescriptor {
	return store.SourceDescriptor{
		Title:        "Title of " + documentName,
		DocumentName: documentName,
	}
}

func newTestExtractor(retriever Retriever) *Extractor {
	return NewExtractor(retriever, stubResolver{}, logger.NewNoopLogger())
}

func TestExtractDeduplicatesByDocument(t *testing.T) {
	retriever := &stubRetriever{chunks: []store.Chunk{
		{DocumentName: "a.pdf", Text: "chunk a1", Score: 0.9},
		{DocumentName: "a.pdf", Text: "chunk a2", Score: 0.85},
		{DocumentName: "b.pdf", Text: "chunk b1", Score: 0.8},
		{DocumentName: "c.pdf", Text: "chunk c1", Score: 0.7},
	}}
	e := newTestExtractor(retriever)

	got := e.Extract(stdcontext.Background(), "query", 4, 2)

	if retriever.gotLimit != 8 {
		t.Errorf("retrieval limit = %d, want topK*multiplier = 8", retriever.gotLimit)
	}
	if len(got.ContextInfo) != 3 {
		t.Fatalf("context count = %d, want 3 unique documents", len(got.ContextInfo))
	}
	if got.ContextInfo[0].Text != "chunk a1" {
		t.Errorf("highest scoring chunk per document should win, got %q", got.ContextInfo[0].Text)
	}
	if got.AllContext != "chunk a1\n\n---\n\nchunk b1\n\n---\n\nchunk c1" {
		t.Errorf("all context = %q", got.AllContext)
	}
	if len(got.Sources) != 3 {
		t.Errorf("sources = %d, want 3", len(got.Sources))
	}
}

func TestExtractCapsAtTopK(t *testing.T) {
	retriever := &stubRetriever{chunks: []store.Chunk{
		{DocumentName: "a.pdf", Text: "a"},
		{DocumentName: "b.pdf", Text: "b"},
		{DocumentName: "c.pdf", Text: "c"},
	}}
	e := newTestExtractor(retriever)

	got := e.Extract(stdcontext.Background(), "query", 2, 2)
	if len(got.ContextInfo) != 2 {
		t.Errorf("context count = %d, want capped at topK = 2", len(got.ContextInfo))
	}
}

func TestExtractAbsorbsRetrievalFailure(t *testing.T) {
	retriever := &stubRetriever{err: errors.New("pgvector down")}
	e := newTestExtractor(retriever)

	got := e.Extract(stdcontext.Background(), "query", 4, 2)
	if len(got.ContextInfo) != 0 || len(got.Sources) != 0 || got.AllContext != "" {
		t.Errorf("retrieval failure should yield empty context, got %+v", got)
	}
}

func TestExtractUnknownDocumentName(t *testing.T) {
	retriever := &stubRetriever{chunks: []store.Chunk{
		{DocumentName: "", Text: "orphan chunk"},
	}}
	e := newTestExtractor(retriever)

	got := e.Extract(stdcontext.Background(), "query", 4, 2)
	if len(got.ContextInfo) != 1 || got.ContextInfo[0].DocumentName != "Unknown" {
		t.Errorf("empty document names should map to Unknown, got %+v", got.ContextInfo)
	}
}

func TestExtractDefaults(t *testing.T) {
	retriever := &stubRetriever{}
	e := newTestExtractor(retriever)

	e.Extract(stdcontext.Background(), "query", 0, 0)
	if retriever.gotLimit != DefaultTopK*DefaultMultiplier {
		t.Errorf("limit = %d, want defaults %d", retriever.gotLimit, DefaultTopK*DefaultMultiplier)
	}
}
