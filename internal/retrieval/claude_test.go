// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package retrieval

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JamilLatif/daily-brief/pkg/types"
)

// claudeHandler serves a canned Messages API response and records the request.
func claudeHandler(t *testing.T, status int, body string, got *claudeRequest) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t.Helper()
		if r.Header.Get("x-api-key") == "" {
			t.Error("request missing x-api-key header")
		}
		if r.Header.Get("anthropic-version") != "2023-06-01" {
			t.Errorf("anthropic-version = %q", r.Header.Get("anthropic-version"))
		}
		if got != nil {
			if err := json.NewDecoder(r.Body).Decode(got); err != nil {
				t.Errorf("decoding request: %v", err)
			}
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

func withClaudeServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	orig := claudeAPIURL
	claudeAPIURL = srv.URL
	t.Cleanup(func() { claudeAPIURL = orig })
}

func TestClaudeBackendFetch(t *testing.T) {
	response := `{"content": [
		{"type": "server_tool_use", "text": ""},
		{"type": "text", "text": "**Story one**: First."},
		{"type": "web_search_tool_result", "text": "ignored"},
		{"type": "text", "text": "\n\n**Story two**: Second."}
	]}`
	var got claudeRequest
	withClaudeServer(t, claudeHandler(t, http.StatusOK, response, &got))

	backend := NewClaudeBackend(types.RetrievalConfig{APIKey: "ak", Model: "test-model", MaxTokens: 1234})
	text, err := backend.Fetch(context.Background(), "find the news")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	want := "**Story one**: First.\n\n**Story two**: Second."
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}

	if got.Model != "test-model" {
		t.Errorf("model = %q", got.Model)
	}
	if got.MaxTokens != 1234 {
		t.Errorf("max_tokens = %d, want the configured response budget", got.MaxTokens)
	}
	if len(got.Messages) != 1 || got.Messages[0].Content != "find the news" {
		t.Errorf("messages = %+v", got.Messages)
	}
	if len(got.Tools) != 1 || got.Tools[0].Type != "web_search_20250305" || got.Tools[0].Name != "web_search" {
		t.Errorf("tools = %+v, want the web_search tool", got.Tools)
	}
}

func TestClaudeBackendDefaultsMaxTokens(t *testing.T) {
	backend := NewClaudeBackend(types.RetrievalConfig{APIKey: "ak", Model: "m"})
	if backend.MaxTokens != defaultMaxTokens {
		t.Errorf("MaxTokens = %d, want %d", backend.MaxTokens, defaultMaxTokens)
	}
}

func TestClaudeBackendStatusError(t *testing.T) {
	withClaudeServer(t, claudeHandler(t, http.StatusTooManyRequests, `{"error": "rate limited"}`, nil))

	backend := NewClaudeBackend(types.RetrievalConfig{APIKey: "ak", Model: "m"})
	_, err := backend.Fetch(context.Background(), "prompt")

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if se.Code != http.StatusTooManyRequests {
		t.Errorf("code = %d, want 429", se.Code)
	}
}

func TestClaudeBackendEmptyContent(t *testing.T) {
	withClaudeServer(t, claudeHandler(t, http.StatusOK, `{"content": []}`, nil))

	backend := NewClaudeBackend(types.RetrievalConfig{APIKey: "ak", Model: "m"})
	if _, err := backend.Fetch(context.Background(), "prompt"); err == nil {
		t.Error("empty content should be an error")
	}
}

func TestClaudeBackendMalformedJSON(t *testing.T) {
	withClaudeServer(t, claudeHandler(t, http.StatusOK, `not json`, nil))

	backend := NewClaudeBackend(types.RetrievalConfig{APIKey: "ak", Model: "m"})
	if _, err := backend.Fetch(context.Background(), "prompt"); err == nil {
		t.Error("malformed response should be an error")
	}
}
