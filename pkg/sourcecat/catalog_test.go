package sourcecat

import (
	"context"
	"errors"
	"testing"

	"proposal-eval-be/internal/pkg/logger"
	"proposal-eval-be/pkg/store"
)

type stubRepo struct {
	descriptor *store.SourceDescriptor
	err        error
	calls      int
}

func (s *stubRepo) FindByDocumentName(ctx context.Context, documentName string) (*store.SourceDescriptor, error) {
	s.calls++
	return s.descriptor, s.err
}

func TestResolveKnownDocument(t *testing.T) {
	repo := &stubRepo{descriptor: &store.SourceDescriptor{
		Title:        "Impact Evaluation Handbook",
		DocumentName: "handbook.pdf",
	}}
	c := NewCatalog(repo, nil, logger.NewNoopLogger())

	got := c.Resolve(context.Background(), "handbook.pdf")
	if got.Title != "Impact Evaluation Handbook" {
		t.Errorf("title = %q", got.Title)
	}
}

func TestResolveUnknownDocument(t *testing.T) {
	c := NewCatalog(&stubRepo{}, nil, logger.NewNoopLogger())

	got := c.Resolve(context.Background(), "missing.pdf")
	if got.DocumentName != "missing.pdf" {
		t.Errorf("document name = %q", got.DocumentName)
	}
	if got.Title != "" {
		t.Errorf("unknown documents get a bare descriptor, got title %q", got.Title)
	}
}

func TestResolveSurvivesRepositoryFailure(t *testing.T) {
	c := NewCatalog(&stubRepo{err: errors.New("db down")}, nil, logger.NewNoopLogger())

	got := c.Resolve(context.Background(), "doc.pdf")
	if got.DocumentName != "doc.pdf" {
		t.Errorf("lookup failure should degrade to a bare descriptor, got %+v", got)
	}
}

func TestResolveEmptyName(t *testing.T) {
	repo := &stubRepo{}
	c := NewCatalog(repo, nil, logger.NewNoopLogger())

	c.Resolve(context.Background(), "")
	if repo.calls != 0 {
		t.Error("empty names should not hit the repository")
	}
}
