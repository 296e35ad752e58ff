// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format normalizes raw retrieval output into brief blocks. Block is
// a total function: whatever shape the retrieval result takes, every section
// spec produces exactly one block, so the assembler never sees a gap.
package format

import (
	"regexp"
	"strings"

	"github.com/JamilLatif/daily-brief/pkg/types"
)

// blankRuns matches two or more consecutive blank lines (allowing trailing
// spaces) so story stanzas end up separated by exactly one blank line.
var blankRuns = regexp.MustCompile(`\n[ \t]*\n([ \t]*\n)+`)

// errNoticePrefix opens the body of a block whose retrieval failed. The
// failure message follows so the reader can tell auth from quota at a glance.
const errNoticePrefix = "Error retrieving news for this section: "

// Block turns one section's retrieval result into its formatted block. On
// success the body is the trimmed prose with blank-line runs collapsed; on
// failure the body is a visible error notice and OK is false. The body stays
// prose either way: stories are delimited by the retrieval service's own
// markdown convention and are not re-parsed into fields.
func Block(spec types.SectionSpec, result types.RetrievalResult) types.FormattedBlock {
	block := types.FormattedBlock{
		SectionID: spec.ID,
		Heading:   spec.DisplayName,
		StyleTag:  spec.StyleTag,
	}

	if !result.OK() {
		block.Body = errNoticePrefix + result.Err.Error()
		return block
	}

	block.Body = Normalize(result.Text)
	block.OK = true
	return block
}

// Normalize trims surrounding whitespace and collapses runs of blank lines to
// a single separating line.
func Normalize(text string) string {
	trimmed := strings.TrimSpace(text)
	return blankRuns.ReplaceAllString(trimmed, "\n\n")
}
