// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Page geometry: US Letter with 0.75-inch margins on all sides.
const (
	paperWidthIn  = 8.5
	paperHeightIn = 11.0
	marginIn      = 0.75
)

// Engine produces a fixed-layout PDF from an HTML page. The pipeline and
// tests substitute a fake; production uses ChromeEngine.
type Engine interface {
	PrintPDF(ctx context.Context, html string) ([]byte, error)
}

// ChromeEngine prints through headless Chromium. Requires Chrome/Chromium to
// be installed on the system.
type ChromeEngine struct {
	// Timeout bounds the whole navigate-and-print sequence.
	Timeout time.Duration
}

// PrintPDF writes the HTML to a temporary file, loads it in a headless
// browser, and prints it to PDF with the brief's page geometry.
func (e *ChromeEngine) PrintPDF(ctx context.Context, html string) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "daily-brief-render-")
	if err != nil {
		return nil, fmt.Errorf("creating render scratch dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "brief.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("writing render scratch file: %w", err)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	if e.Timeout > 0 {
		browserCtx, cancel = context.WithTimeout(browserCtx, e.Timeout)
		defer cancel()
	}

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdf, _, printErr = page.PrintToPDF().
				WithPrintBackground(false).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(marginIn).
				WithMarginBottom(marginIn).
				WithMarginLeft(marginIn).
				WithMarginRight(marginIn).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("printing PDF: %w", err)
	}
	return pdf, nil
}
