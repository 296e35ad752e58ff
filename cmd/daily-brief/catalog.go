// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JamilLatif/daily-brief/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the effective section catalog",
	Long: `Catalog prints the sections a run would retrieve, in order. With --export
it writes the built-in catalog to a YAML file that can be edited and passed
back via generate --catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		specs, err := effectiveCatalog(cmd)
		if err != nil {
			return err
		}

		exportPath, _ := cmd.Flags().GetString("export")
		if exportPath != "" {
			if err := catalog.WriteFile(exportPath, specs); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Wrote catalog to %s\n", exportPath)
			return nil
		}

		for i, spec := range specs {
			kind := "section"
			if spec.DeepDive {
				kind = "deep-dive"
			}
			fmt.Printf("%2d. %-20s %-10s %s\n", i+1, spec.ID, kind, spec.DisplayName)
		}
		return nil
	},
}

func init() {
	catalogCmd.Flags().String("catalog", "", "path to a YAML catalog file overriding the built-in sections")
	catalogCmd.Flags().String("export", "", "write the effective catalog to this YAML file")

	rootCmd.AddCommand(catalogCmd)
}
