// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble builds the ordered brief document from formatted blocks
// and prepares the deep-dive section's input from everything gathered before
// it. Assembly is deterministic: blocks go in as they come, in catalog order,
// with nothing reordered, filtered, or dropped.
package assemble

import (
	"strings"
	"time"

	"github.com/JamilLatif/daily-brief/pkg/types"
)

// deepDiveContextCap bounds the runes one section contributes to the
// deep-dive prompt so a verbose section cannot starve the rest of the
// response budget.
const deepDiveContextCap = 2000

// Document assembles the brief from its title, generation timestamp, and the
// blocks accumulated during retrieval. The block slice is copied; calling
// Document twice with the same inputs yields structurally identical output.
func Document(title string, generatedAt time.Time, blocks []types.FormattedBlock) types.BriefDocument {
	copied := make([]types.FormattedBlock, len(blocks))
	copy(copied, blocks)
	return types.BriefDocument{
		Title:       title,
		GeneratedAt: generatedAt,
		Blocks:      copied,
	}
}

// DeepDiveContext concatenates the preceding sections' headings and bodies
// into the context fed to the deep-dive retrieval call. Error blocks
// contribute their notice line, so the deep-dive prompt tolerates partial
// input. Callers must not invoke this before every preceding section has a
// block.
func DeepDiveContext(blocks []types.FormattedBlock) string {
	var b strings.Builder
	for i, block := range blocks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("## ")
		b.WriteString(block.Heading)
		b.WriteString("\n\n")
		b.WriteString(truncate(block.Body, deepDiveContextCap))
	}
	return b.String()
}

// truncate cuts s to at most n runes, appending an ellipsis when it cuts.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
