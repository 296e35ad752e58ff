// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// RetrievalProvider identifies the knowledge-retrieval backend.
type RetrievalProvider string

const (
	ProviderClaude RetrievalProvider = "claude"
	ProviderOpenAI RetrievalProvider = "openai"
)

// RetrievalConfig holds settings for the retrieval stage.
type RetrievalConfig struct {
	// Provider selects the retrieval backend: claude or openai.
	Provider RetrievalProvider `json:"provider" yaml:"provider"`

	// Model is the model identifier passed to the provider.
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the retrieval service.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxTokens is the response-size budget per section call (default 4000).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// Timeout is the per-call deadline. A call that exceeds it is treated
	// as a section-local network failure, never as a run failure.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// RenderConfig holds settings for the render stage.
type RenderConfig struct {
	// OutputDir is the directory rendered briefs are written to
	// (e.g. "output/briefs/").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Timeout bounds the headless-browser PDF print. Expiry is fatal to
	// the run.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// DeliveryConfig holds settings for the delivery stage. Host, port, and the
// STARTTLS requirement are transport session parameters; the credentials and
// recipient are required configuration validated before any retrieval call.
type DeliveryConfig struct {
	// Host is the SMTP server hostname.
	Host string `json:"host" yaml:"host"`

	// Port is the SMTP server port (default 587, STARTTLS).
	Port int `json:"port" yaml:"port"`

	// Username is the SMTP account, also used as the sender identity.
	Username string `json:"username,omitempty" yaml:"username,omitempty"`

	// Password is the SMTP account password.
	Password string `json:"password,omitempty" yaml:"password,omitempty"`

	// Recipient is the address the brief is sent to.
	Recipient string `json:"recipient" yaml:"recipient"`
}

// PipelineConfig groups all stage configurations for one run.
type PipelineConfig struct {
	Retrieval RetrievalConfig `json:"retrieval" yaml:"retrieval"`
	Render    RenderConfig    `json:"render" yaml:"render"`
	Delivery  DeliveryConfig  `json:"delivery" yaml:"delivery"`
}

// MissingConfigError names a required configuration value that is absent.
// The pipeline refuses to start while any remain.
type MissingConfigError struct {
	Name string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("required configuration value %s is not set", e.Name)
}

// Validate checks the values the pipeline cannot run without: the retrieval
// credential, the transport credential pair, and the recipient. It returns
// the first missing value so the diagnostic names exactly what to fix.
func (c PipelineConfig) Validate() error {
	if c.Retrieval.APIKey == "" {
		return &MissingConfigError{Name: "retrieval.api_key"}
	}
	if c.Delivery.Username == "" {
		return &MissingConfigError{Name: "delivery.username"}
	}
	if c.Delivery.Password == "" {
		return &MissingConfigError{Name: "delivery.password"}
	}
	if c.Delivery.Recipient == "" {
		return &MissingConfigError{Name: "delivery.recipient"}
	}
	return nil
}
