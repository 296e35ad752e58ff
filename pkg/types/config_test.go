// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"testing"
)

func validConfig() PipelineConfig {
	return PipelineConfig{
		Retrieval: RetrievalConfig{Provider: ProviderClaude, Model: "m", APIKey: "ak"},
		Delivery: DeliveryConfig{
			Host: "smtp.example.com", Port: 587,
			Username: "briefs@example.com", Password: "pw", Recipient: "reader@example.com",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PipelineConfig)
		missing string
	}{
		{"complete config", func(c *PipelineConfig) {}, ""},
		{"missing api key", func(c *PipelineConfig) { c.Retrieval.APIKey = "" }, "retrieval.api_key"},
		{"missing username", func(c *PipelineConfig) { c.Delivery.Username = "" }, "delivery.username"},
		{"missing password", func(c *PipelineConfig) { c.Delivery.Password = "" }, "delivery.password"},
		{"missing recipient", func(c *PipelineConfig) { c.Delivery.Recipient = "" }, "delivery.recipient"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.missing == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var mce *MissingConfigError
			if !errors.As(err, &mce) {
				t.Fatalf("Validate() = %v, want *MissingConfigError", err)
			}
			if mce.Name != tt.missing {
				t.Errorf("missing value = %q, want %q", mce.Name, tt.missing)
			}
		})
	}
}

func TestRetrievalResultOK(t *testing.T) {
	ok := RetrievalResult{SectionID: "ai-tech", Text: "stories"}
	if !ok.OK() {
		t.Error("result with text should be OK")
	}
	failed := RetrievalResult{SectionID: "ai-tech", Err: &RetrievalError{Kind: FailQuota, Message: "over budget"}}
	if failed.OK() {
		t.Error("result with error should not be OK")
	}
	if got, want := failed.Err.Error(), "quota: over budget"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
