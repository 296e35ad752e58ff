// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"strings"
	"testing"

	"github.com/JamilLatif/daily-brief/pkg/types"
)

func spec() types.SectionSpec {
	return types.SectionSpec{
		ID:          "ai-tech",
		DisplayName: "ARTIFICIAL INTELLIGENCE & TECHNOLOGY",
		StyleTag:    types.StyleContent,
	}
}

func TestBlockSuccess(t *testing.T) {
	result := types.RetrievalResult{
		SectionID: "ai-tech",
		Text:      "\n\n**Model launch**: A new model shipped.\n\n\n\n**Chips**: Supply tightened.\n\n",
	}

	block := Block(spec(), result)

	if !block.OK {
		t.Error("successful retrieval should produce an OK block")
	}
	if block.SectionID != "ai-tech" || block.Heading != "ARTIFICIAL INTELLIGENCE & TECHNOLOGY" {
		t.Errorf("block identity = %q/%q", block.SectionID, block.Heading)
	}
	if block.StyleTag != types.StyleContent {
		t.Errorf("style tag = %q, want content", block.StyleTag)
	}
	want := "**Model launch**: A new model shipped.\n\n**Chips**: Supply tightened."
	if block.Body != want {
		t.Errorf("body = %q, want %q", block.Body, want)
	}
}

func TestBlockError(t *testing.T) {
	result := types.RetrievalResult{
		SectionID: "ai-tech",
		Err:       &types.RetrievalError{Kind: types.FailQuota, Message: "monthly budget exhausted"},
	}

	block := Block(spec(), result)

	if block.OK {
		t.Error("failed retrieval should produce a non-OK block")
	}
	if !strings.Contains(block.Body, "Error retrieving news for this section") {
		t.Errorf("body should carry the error notice, got %q", block.Body)
	}
	if !strings.Contains(block.Body, "monthly budget exhausted") {
		t.Errorf("body should carry the failure message, got %q", block.Body)
	}
	if block.Heading != spec().DisplayName {
		t.Error("error blocks keep the section heading")
	}
}

// Story count is the retrieval service's choice; the formatter must not care.
func TestBlockIsTotalOverBodyShapes(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"single story", "**Only one**: Slow news day."},
		{"many stories", strings.Repeat("**Story**: Something happened.\n\n", 12)},
		{"whitespace only body", "   \n\t\n  "},
		{"no markdown at all", "plain prose with no formatting"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := Block(spec(), types.RetrievalResult{SectionID: "ai-tech", Text: tt.text})
			if !block.OK {
				t.Error("any text result formats as an OK block")
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims edges", "  text  \n", "text"},
		{"collapses triple blank", "a\n\n\n\nb", "a\n\nb"},
		{"keeps single blank", "a\n\nb", "a\n\nb"},
		{"collapses blank lines with spaces", "a\n  \n\t\nb", "a\n\nb"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
