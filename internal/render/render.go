// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render converts an assembled brief document into the PDF artifact.
// Markdown bodies become HTML, a headless browser prints the HTML to US
// Letter with 0.75-inch margins, and the bytes land in the output directory
// under a date-stamped filename. Any failure here is fatal to the run: a
// partial or malformed artifact is never produced, so nothing broken can be
// mailed out.
package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/JamilLatif/daily-brief/pkg/types"
)

// Renderer drives the print engine and owns the artifact's on-disk location.
type Renderer struct {
	Engine    Engine
	OutputDir string
}

// NewRenderer wires an engine to the configured output directory.
func NewRenderer(engine Engine, cfg types.RenderConfig) *Renderer {
	return &Renderer{Engine: engine, OutputDir: cfg.OutputDir}
}

// Filename derives the artifact filename from the generation date. The
// YYYYMMDD stamp keeps daily runs collision-free and lexicographically
// sortable.
func Filename(generatedAt time.Time) string {
	return "daily_brief_" + generatedAt.Format("20060102") + ".pdf"
}

// ParseFilename recovers the generation date from an artifact path produced
// by Filename.
func ParseFilename(path string) (time.Time, error) {
	name := filepath.Base(path)
	if !strings.HasPrefix(name, "daily_brief_") || !strings.HasSuffix(name, ".pdf") {
		return time.Time{}, fmt.Errorf("artifact name %s does not match daily_brief_YYYYMMDD.pdf", name)
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, "daily_brief_"), ".pdf")
	t, err := time.Parse("20060102", stamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("artifact name %s carries an invalid date: %w", name, err)
	}
	return t, nil
}

// Render produces the artifact for one document. The artifact is written
// exactly once; an existing same-day artifact is overwritten, not appended.
func (r *Renderer) Render(ctx context.Context, doc types.BriefDocument) (types.Artifact, error) {
	html, err := documentHTML(doc)
	if err != nil {
		return types.Artifact{}, err
	}

	pdf, err := r.Engine.PrintPDF(ctx, html)
	if err != nil {
		return types.Artifact{}, err
	}

	if err := os.MkdirAll(r.OutputDir, 0o755); err != nil {
		return types.Artifact{}, fmt.Errorf("creating output directory %s: %w", r.OutputDir, err)
	}

	path := filepath.Join(r.OutputDir, Filename(doc.GeneratedAt))
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return types.Artifact{}, fmt.Errorf("writing artifact %s: %w", path, err)
	}

	return types.Artifact{Path: path, Size: int64(len(pdf))}, nil
}
