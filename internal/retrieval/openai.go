// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package retrieval

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/JamilLatif/daily-brief/pkg/types"
)

// OpenAIBackend implements Backend using the official openai-go SDK (chat
// completions). It is the alternate provider for deployments without a
// Claude credential; prompts are identical, there is just no search tool.
type OpenAIBackend struct {
	Model     string
	MaxTokens int
	Opts      []option.RequestOption
}

// NewOpenAIBackend builds an OpenAIBackend from the retrieval config.
func NewOpenAIBackend(cfg types.RetrievalConfig) *OpenAIBackend {
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &OpenAIBackend{
		Model:     cfg.Model,
		MaxTokens: maxTokens,
		Opts:      []option.RequestOption{option.WithAPIKey(cfg.APIKey)},
	}
}

// Fetch sends one prompt as a single user message.
func (o *OpenAIBackend) Fetch(ctx context.Context, prompt string) (string, error) {
	client := openai.NewClient(o.Opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(o.Model),
		MaxTokens: openai.Int(int64(o.MaxTokens)),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		// Surface the HTTP status so the client can classify auth/quota.
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &StatusError{Code: apiErr.StatusCode, Body: apiErr.Message}
		}
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
