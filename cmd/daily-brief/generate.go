// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/JamilLatif/daily-brief/internal/catalog"
	"github.com/JamilLatif/daily-brief/internal/deliver"
	"github.com/JamilLatif/daily-brief/internal/pipeline"
	"github.com/JamilLatif/daily-brief/internal/render"
	"github.com/JamilLatif/daily-brief/internal/retrieval"
	"github.com/JamilLatif/daily-brief/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate today's brief and email it",
	Long: `Generate runs the full pipeline: one retrieval call per catalog section in
fixed order (the deep-dive section last, fed by everything before it), then
assembly, PDF rendering, and email delivery.

Required configuration: the retrieval API key, the SMTP username and
password, and the recipient address. Missing values fail the run before any
retrieval call is made. A failed delivery leaves the rendered PDF in the
output directory for manual resend (see "daily-brief send").`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if err := cfg.Validate(); err != nil {
			return err
		}

		specs, err := effectiveCatalog(cmd)
		if err != nil {
			return err
		}

		backend, err := retrieval.New(cfg.Retrieval)
		if err != nil {
			return err
		}

		driver := &pipeline.Driver{
			Config:   cfg,
			Catalog:  specs,
			Fetcher:  retrieval.NewClient(backend, cfg.Retrieval),
			Renderer: render.NewRenderer(&render.ChromeEngine{Timeout: cfg.Render.Timeout}, cfg.Render),
			Sender:   deliver.NewMailer(cfg.Delivery),
		}

		fmt.Fprintf(os.Stderr, "Starting brief generation at %s\n", time.Now().Format(time.RFC1123))
		summary, err := driver.Run(cmd.Context(), os.Stderr)
		if err != nil {
			if summary.Artifact.Path != "" {
				fmt.Fprintf(os.Stderr, "artifact kept at %s\n", summary.Artifact.Path)
			}
			return err
		}

		fmt.Fprintf(os.Stderr, "Brief delivered to %s (%d sections, %d errored)\n",
			cfg.Delivery.Recipient, summary.Sections, summary.Errored)
		return nil
	},
}

// effectiveCatalog returns the catalog from --catalog when given, the
// built-in catalog otherwise.
func effectiveCatalog(cmd *cobra.Command) ([]types.SectionSpec, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.ReadFile(path)
}

func init() {
	generateCmd.Flags().String("catalog", "", "path to a YAML catalog file overriding the built-in sections")
	generateCmd.Flags().String("provider", "", "retrieval provider: claude or openai")
	generateCmd.Flags().String("model", "", "retrieval model identifier")
	generateCmd.Flags().String("output-dir", "", "directory for rendered briefs")
	generateCmd.Flags().String("recipient", "", "recipient email address")

	viper.BindPFlag("retrieval.provider", generateCmd.Flags().Lookup("provider"))
	viper.BindPFlag("retrieval.model", generateCmd.Flags().Lookup("model"))
	viper.BindPFlag("render.output_dir", generateCmd.Flags().Lookup("output-dir"))
	viper.BindPFlag("delivery.recipient", generateCmd.Flags().Lookup("recipient"))

	rootCmd.AddCommand(generateCmd)
}
