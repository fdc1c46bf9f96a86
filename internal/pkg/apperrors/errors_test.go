package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"direct", New(KindValidation, "missing input"), KindValidation},
		{"wrapped cause", Wrap(KindCompletion, "llm call failed", errors.New("timeout")), KindCompletion},
		{"fmt wrapped", fmt.Errorf("evaluate: %w", New(KindNotFound, "session not found")), KindNotFound},
		{"plain error", errors.New("boom"), KindInternal},
		{"double wrap keeps outer kind", Wrap(KindDatabase, "save failed", New(KindCompletion, "inner")), KindDatabase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRetryable(t *testing.T) {
	if !Retryable(New(KindCompletion, "x")) {
		t.Error("completion errors should be retryable")
	}
	if !Retryable(New(KindRetrieval, "x")) {
		t.Error("retrieval errors should be retryable")
	}
	if Retryable(New(KindValidation, "x")) {
		t.Error("validation errors should not be retryable")
	}
	if Retryable(New(KindNotFound, "x")) {
		t.Error("not-found errors should not be retryable")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("socket closed")
	err := Wrap(KindCompletion, "openai completion failed", cause)
	if !errors.Is(err, cause) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}
}
