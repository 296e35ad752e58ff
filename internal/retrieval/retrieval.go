// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package retrieval wraps the external knowledge-retrieval service. A Backend
// issues one prompt and returns prose or an error; the Client turns backend
// errors into typed per-section failures that never propagate past this
// boundary, so one section's failure cannot abort a run.
package retrieval

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/JamilLatif/daily-brief/pkg/types"
)

// Backend abstracts the retrieval service so tests can supply a mock.
// Implementations make exactly one attempt per call; retry policy belongs to
// the caller, and the pipeline's policy is no retry.
type Backend interface {
	Fetch(ctx context.Context, prompt string) (string, error)
}

// New constructs the backend selected by cfg.
func New(cfg types.RetrievalConfig) (Backend, error) {
	switch cfg.Provider {
	case types.ProviderClaude, "":
		return NewClaudeBackend(cfg), nil
	case types.ProviderOpenAI:
		return NewOpenAIBackend(cfg), nil
	default:
		return nil, fmt.Errorf("unknown retrieval provider %q", cfg.Provider)
	}
}

// Client is the isolation boundary between the pipeline and the retrieval
// service. Fetch never returns an error; failures come back inside the
// RetrievalResult.
type Client struct {
	backend Backend
	timeout types.RetrievalConfig
}

// NewClient wraps a backend with the per-call deadline from cfg.
func NewClient(backend Backend, cfg types.RetrievalConfig) *Client {
	return &Client{backend: backend, timeout: cfg}
}

// Fetch issues one prompt for one section. The call carries a deadline when
// the config sets one; expiry is classified as a section-local failure like
// any other backend error.
func (c *Client) Fetch(ctx context.Context, sectionID, prompt string) types.RetrievalResult {
	if c.timeout.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout.Timeout)
		defer cancel()
	}

	text, err := c.backend.Fetch(ctx, prompt)
	if err != nil {
		return types.RetrievalResult{SectionID: sectionID, Err: classify(err)}
	}
	if text == "" {
		return types.RetrievalResult{SectionID: sectionID, Err: &types.RetrievalError{
			Kind:    types.FailMalformed,
			Message: "retrieval service returned empty text",
		}}
	}
	return types.RetrievalResult{SectionID: sectionID, Text: text}
}

// classify maps a backend error to a typed retrieval failure.
func classify(err error) *types.RetrievalError {
	var re *types.RetrievalError
	if errors.As(err, &re) {
		return re
	}

	var se *StatusError
	if errors.As(err, &se) {
		return &types.RetrievalError{Kind: kindForStatus(se.Code), Message: se.Error()}
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &types.RetrievalError{Kind: types.FailNetwork, Message: "retrieval call deadline exceeded"}
	case errors.Is(err, context.Canceled):
		return &types.RetrievalError{Kind: types.FailCanceled, Message: "retrieval call canceled"}
	default:
		return &types.RetrievalError{Kind: types.FailNetwork, Message: err.Error()}
	}
}

// kindForStatus maps an HTTP status from the retrieval service to a failure kind.
func kindForStatus(code int) types.FailureKind {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return types.FailAuth
	case code == http.StatusTooManyRequests:
		return types.FailQuota
	case code >= 500:
		return types.FailNetwork
	default:
		return types.FailMalformed
	}
}
