// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline sequences one brief run: retrieve every catalog section,
// assemble the document, render the artifact, deliver it. Section retrieval
// failures are absorbed into error blocks and never abort the run; render and
// delivery failures are terminal.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/JamilLatif/daily-brief/internal/assemble"
	"github.com/JamilLatif/daily-brief/internal/catalog"
	"github.com/JamilLatif/daily-brief/internal/format"
	"github.com/JamilLatif/daily-brief/pkg/types"
)

// DefaultTitle heads every brief document.
const DefaultTitle = "DAILY INTELLIGENCE BRIEF"

// State names a stage of the run. The machine moves
// INIT → RETRIEVING → ASSEMBLING → RENDERING → DELIVERING → DONE; FAILED is
// reachable from RENDERING and DELIVERING only.
type State string

const (
	StateInit       State = "INIT"
	StateRetrieving State = "RETRIEVING"
	StateAssembling State = "ASSEMBLING"
	StateRendering  State = "RENDERING"
	StateDelivering State = "DELIVERING"
	StateDone       State = "DONE"
	StateFailed     State = "FAILED"
)

// Fetcher is the retrieval boundary the driver depends on. Implementations
// never return an error; per-section failures ride inside the result.
type Fetcher interface {
	Fetch(ctx context.Context, sectionID, prompt string) types.RetrievalResult
}

// Renderer is the rendering boundary: document in, artifact on disk out.
type Renderer interface {
	Render(ctx context.Context, doc types.BriefDocument) (types.Artifact, error)
}

// Sender is the delivery boundary: one artifact, one recipient, one session.
type Sender interface {
	Send(doc types.BriefDocument, artifact types.Artifact) error
}

// Summary reports what one run produced.
type Summary struct {
	// State is the terminal state, StateDone or StateFailed.
	State State

	// Sections is the number of blocks in the document (catalog length).
	Sections int

	// Errored is how many sections produced error blocks.
	Errored int

	// Artifact is the rendered brief, set once rendering succeeds — also on
	// a delivery failure, since the file stays on disk for manual resend.
	Artifact types.Artifact
}

// Driver runs the pipeline over its collaborator boundaries. The block list
// it accumulates is owned exclusively by the driver; nothing mutates it
// concurrently.
type Driver struct {
	// Config is checked at INIT: missing required values stop the run
	// before any retrieval call is made.
	Config types.PipelineConfig

	Catalog  []types.SectionSpec
	Fetcher  Fetcher
	Renderer Renderer
	Sender   Sender

	// Title heads the document; DefaultTitle when empty.
	Title string

	// Now is the clock, a test seam. time.Now when nil.
	Now func() time.Time
}

// Run executes one brief run, writing progress to w. The returned error is a
// *StageError naming the failing stage; per-section retrieval failures are
// not errors.
func (d *Driver) Run(ctx context.Context, w io.Writer) (Summary, error) {
	// INIT: refuse to start without the retrieval and delivery credentials.
	if err := d.Config.Validate(); err != nil {
		return Summary{State: StateInit}, &StageError{Stage: StateInit, Err: err}
	}
	if err := catalog.Validate(d.Catalog); err != nil {
		return Summary{State: StateInit}, &StageError{Stage: StateInit, Err: err}
	}

	title := d.Title
	if title == "" {
		title = DefaultTitle
	}
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}

	// RETRIEVING: catalog order, one synchronous attempt per section. The
	// deep-dive section sits last in the catalog, so by the time its prompt
	// is built every other section already has a block.
	var summary Summary
	blocks := make([]types.FormattedBlock, 0, len(d.Catalog))
	for _, spec := range d.Catalog {
		var prompt string
		if spec.DeepDive {
			prompt = catalog.BuildDeepDivePrompt(spec, assemble.DeepDiveContext(blocks))
		} else {
			prompt = catalog.BuildPrompt(spec)
		}

		fmt.Fprintf(w, "retrieving %s\n", spec.ID)
		result := d.Fetcher.Fetch(ctx, spec.ID, prompt)

		block := format.Block(spec, result)
		if !block.OK {
			fmt.Fprintf(w, "section %s failed: %s\n", spec.ID, result.Err.Error())
			summary.Errored++
		}
		blocks = append(blocks, block)
	}
	summary.Sections = len(blocks)

	// ASSEMBLING: unconditional — error blocks are part of the document.
	doc := assemble.Document(title, now(), blocks)

	// RENDERING: any failure is terminal; nothing is delivered.
	fmt.Fprintf(w, "rendering %d sections\n", len(doc.Blocks))
	artifact, err := d.Renderer.Render(ctx, doc)
	if err != nil {
		summary.State = StateFailed
		return summary, &StageError{Stage: StateRendering, Err: err}
	}
	summary.Artifact = artifact
	fmt.Fprintf(w, "rendered %s (%d bytes)\n", artifact.Path, artifact.Size)

	// DELIVERING: terminal on failure; the artifact stays on disk.
	fmt.Fprintf(w, "delivering %s\n", artifact.Path)
	if err := d.Sender.Send(doc, artifact); err != nil {
		summary.State = StateFailed
		return summary, &StageError{Stage: StateDelivering, Err: err}
	}

	summary.State = StateDone
	fmt.Fprintf(w, "done: %d sections, %d errored\n", summary.Sections, summary.Errored)
	return summary, nil
}
