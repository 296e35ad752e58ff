// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JamilLatif/daily-brief/internal/assemble"
	"github.com/JamilLatif/daily-brief/internal/catalog"
	"github.com/JamilLatif/daily-brief/internal/deliver"
	"github.com/JamilLatif/daily-brief/internal/format"
	"github.com/JamilLatif/daily-brief/internal/pipeline"
	"github.com/JamilLatif/daily-brief/internal/render"
	"github.com/JamilLatif/daily-brief/pkg/types"
)

var sendCmd = &cobra.Command{
	Use:   "send <artifact.pdf>",
	Short: "Resend a previously rendered brief",
	Long: `Send delivers an existing artifact without re-running retrieval or
rendering. This is the recovery path for a run that rendered the brief but
failed at delivery: the artifact is still in the output directory, and send
mails it as-is. The brief's date is read from the artifact filename.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if cfg.Delivery.Username == "" {
			return &types.MissingConfigError{Name: "delivery.username"}
		}
		if cfg.Delivery.Password == "" {
			return &types.MissingConfigError{Name: "delivery.password"}
		}
		if cfg.Delivery.Recipient == "" {
			return &types.MissingConfigError{Name: "delivery.recipient"}
		}

		path := args[0]
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("artifact %s: %w", path, err)
		}
		generatedAt, err := render.ParseFilename(path)
		if err != nil {
			return err
		}

		// Rebuild the covered-sections listing from the catalog so the
		// message body matches what generate would have sent.
		specs := catalog.Default()
		blocks := make([]types.FormattedBlock, 0, len(specs))
		for _, spec := range specs {
			blocks = append(blocks, format.Block(spec, types.RetrievalResult{SectionID: spec.ID, Text: "resend"}))
		}
		doc := assemble.Document(pipeline.DefaultTitle, generatedAt, blocks)

		artifact := types.Artifact{Path: path, Size: info.Size()}
		if err := deliver.NewMailer(cfg.Delivery).Send(doc, artifact); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Resent %s to %s\n", path, cfg.Delivery.Recipient)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
}
