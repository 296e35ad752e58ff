// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the daily-brief CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/JamilLatif/daily-brief/internal/secrets"
	"github.com/JamilLatif/daily-brief/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// defaultRecipient is the address used when neither configuration nor the
// .secrets/ directory supplies one.
const defaultRecipient = "jamil.latif@hotmail.co.uk"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns value if set, otherwise the named secret, otherwise "".
func secretDefault(value, key string) string {
	if value != "" {
		return value
	}
	return loadedSecrets[key]
}

// rootCmd is the base command for the daily-brief CLI.
var rootCmd = &cobra.Command{
	Use:   "daily-brief",
	Short: "Generate and email a multi-section daily intelligence brief",
	Long: `daily-brief queries a knowledge-retrieval service once per catalog section,
assembles the answers into one ordered document, renders it to a paginated
PDF, and emails the PDF to the configured recipient.

A section whose query fails still appears in the brief as a visible error
notice; the run only fails on missing configuration, rendering errors, or
delivery errors.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./daily-brief.yaml or ~/.config/daily-brief/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("daily-brief")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "daily-brief"))
		}
	}

	viper.SetEnvPrefix("DAILY_BRIEF")
	viper.AutomaticEnv()

	viper.SetDefault("retrieval.provider", string(types.ProviderClaude))
	viper.SetDefault("retrieval.model", "claude-sonnet-4-20250514")
	viper.SetDefault("retrieval.max_tokens", 4000)
	viper.SetDefault("retrieval.timeout", "120s")
	viper.SetDefault("render.output_dir", "output/briefs")
	viper.SetDefault("render.timeout", "60s")
	viper.SetDefault("delivery.host", "smtp-mail.outlook.com")
	viper.SetDefault("delivery.port", 587)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the pipeline configuration from viper and the loaded
// secrets. Credentials come from config or environment first, the .secrets/
// directory second.
func loadConfig() types.PipelineConfig {
	provider := types.RetrievalProvider(viper.GetString("retrieval.provider"))

	apiKeySecret := secrets.KeyAnthropicAPIKey
	if provider == types.ProviderOpenAI {
		apiKeySecret = secrets.KeyOpenAIAPIKey
	}

	recipient := secretDefault(viper.GetString("delivery.recipient"), secrets.KeyRecipientEmail)
	if recipient == "" {
		recipient = defaultRecipient
	}

	return types.PipelineConfig{
		Retrieval: types.RetrievalConfig{
			Provider:  provider,
			Model:     viper.GetString("retrieval.model"),
			APIKey:    secretDefault(viper.GetString("retrieval.api_key"), apiKeySecret),
			MaxTokens: viper.GetInt("retrieval.max_tokens"),
			Timeout:   viper.GetDuration("retrieval.timeout"),
		},
		Render: types.RenderConfig{
			OutputDir: viper.GetString("render.output_dir"),
			Timeout:   viper.GetDuration("render.timeout"),
		},
		Delivery: types.DeliveryConfig{
			Host:      viper.GetString("delivery.host"),
			Port:      viper.GetInt("delivery.port"),
			Username:  secretDefault(viper.GetString("delivery.username"), secrets.KeySMTPUsername),
			Password:  secretDefault(viper.GetString("delivery.password"), secrets.KeySMTPPassword),
			Recipient: recipient,
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "daily-brief: %v\n", err)
		os.Exit(1)
	}
}
