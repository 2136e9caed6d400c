// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the citation-audit CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/citation-audit/internal/secrets"
	"github.com/pdiddy/citation-audit/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when non-empty, else the secret value for key.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the citation-audit CLI.
var rootCmd = &cobra.Command{
	Use:   "citation-audit",
	Short: "Reconcile an author's citation counts from OpenAlex work records",
	Long: `citation-audit computes a per-year citation series for an author by
aggregating the counts_by_year of individual works, instead of trusting the
Author entity's own aggregate. Works are accepted only on an exact author-ID
or ORCID match; same-name misattributions are rejected and reported.

Subcommands: citations (reconcile a series), works (list works with filter
decisions), history (past runs).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./citation-audit.yaml or ~/.config/citation-audit/config.yaml)")
	rootCmd.PersistentFlags().String("email", "", "email for the OpenAlex polite pool (overrides config and .secrets/openalex-email)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("citation-audit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "citation-audit"))
		}
	}

	viper.SetEnvPrefix("CITATION_AUDIT")
	viper.AutomaticEnv()

	viper.SetDefault("openalex.timeout", 30*time.Second)
	viper.SetDefault("openalex.per_page", 50)
	viper.SetDefault("openalex.max_pages", 40)
	viper.SetDefault("history.dir", "history")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// openAlexConfig assembles the client config from viper, flags, and secrets.
func openAlexConfig(cmd *cobra.Command) types.OpenAlexConfig {
	email, _ := cmd.Flags().GetString("email")
	if email == "" {
		email = viper.GetString("openalex.email")
	}
	email = secretDefault(secrets.KeyOpenAlexEmail, email)

	return types.OpenAlexConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("openalex.timeout"),
			UserAgent: "citation-audit/" + version,
		},
		BaseURL:    viper.GetString("openalex.base_url"),
		Email:      email,
		PerPage:    viper.GetInt("openalex.per_page"),
		MaxPages:   viper.GetInt("openalex.max_pages"),
		MaxRetries: viper.GetInt("openalex.max_retries"),
	}
}

// historyConfig assembles the run-history config from viper.
func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		Dir:        viper.GetString("history.dir"),
		MaxResults: viper.GetInt("history.max_results"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
