// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the daily-brief pipeline:
// section definitions, per-section retrieval outcomes, formatted blocks, the
// assembled document, and the rendered artifact.
package types

import "time"

// StyleTag selects the presentation style a rendered block receives.
type StyleTag string

const (
	StyleTitle   StyleTag = "title"
	StyleDate    StyleTag = "date"
	StyleSection StyleTag = "section"
	StyleContent StyleTag = "content"
)

// SectionSpec defines one topical subdivision of the brief. Specs are
// immutable and live in a fixed ordered catalog: primary sections first, then
// regional sections, then the synthesized deep-dive section.
type SectionSpec struct {
	// ID is a stable slug for the section (e.g. "ai-tech", "europe").
	ID string `json:"id" yaml:"id"`

	// DisplayName is the heading printed in the brief (e.g. "FINANCE & MARKETS").
	DisplayName string `json:"display_name" yaml:"display_name"`

	// PromptTemplate is the retrieval prompt before parameter substitution.
	PromptTemplate string `json:"prompt_template" yaml:"prompt_template"`

	// TargetStoryCount is the number of stories the prompt asks for. The
	// retrieval service self-selects the actual count; nothing downstream
	// depends on it.
	TargetStoryCount int `json:"target_story_count" yaml:"target_story_count"`

	// StyleTag selects the rendering style for the section body.
	StyleTag StyleTag `json:"style_tag" yaml:"style_tag"`

	// DeepDive marks the synthesized final section whose prompt is built
	// from all preceding sections' output.
	DeepDive bool `json:"deep_dive,omitempty" yaml:"deep_dive,omitempty"`
}

// FailureKind classifies a retrieval failure.
type FailureKind string

const (
	FailAuth      FailureKind = "auth"
	FailQuota     FailureKind = "quota"
	FailNetwork   FailureKind = "network"
	FailMalformed FailureKind = "malformed"
	FailCanceled  FailureKind = "canceled"
)

// RetrievalError is the typed failure a retrieval attempt can produce.
type RetrievalError struct {
	Kind    FailureKind
	Message string
}

func (e *RetrievalError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// RetrievalResult is the outcome of one section-query attempt. Exactly one of
// Text and Err is populated.
type RetrievalResult struct {
	SectionID string
	Text      string
	Err       *RetrievalError
}

// OK reports whether the attempt produced text.
func (r RetrievalResult) OK() bool { return r.Err == nil }

// FormattedBlock is one normalized section of the brief. Blocks derived from
// failed retrievals carry OK=false and an error notice body; they render like
// any other block so the document always contains every catalog section.
type FormattedBlock struct {
	SectionID string
	Heading   string
	Body      string
	StyleTag  StyleTag
	OK        bool
}

// BriefDocument is the assembled brief: title, generation timestamp, and one
// block per catalog section in catalog order.
type BriefDocument struct {
	Title       string
	GeneratedAt time.Time
	Blocks      []FormattedBlock
}

// Artifact is the rendered brief on disk. It is produced once per run and
// consumed exactly once by delivery; it is never deleted, so a failed send
// can be recovered by hand.
type Artifact struct {
	// Path is the filesystem location of the rendered PDF.
	Path string

	// Size is the artifact size in bytes.
	Size int64
}
