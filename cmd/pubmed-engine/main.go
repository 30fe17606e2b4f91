// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubmed-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/pubmed-engine/internal/medline"
	"github.com/pdiddy/pubmed-engine/internal/secrets"
	"github.com/pdiddy/pubmed-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API credentials loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

// rootCmd is the base command for the pubmed-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "pubmed-engine",
	Short: "Search, fetch, decode, and store PubMed citation records",
	Long: `pubmed-engine works with PubMed/MEDLINE bibliographic data. It searches
the NCBI E-utilities API, fetches citation XML, decodes it into a typed record
graph, and persists records in a local SQLite store with full-text retrieval.

Each stage is a subcommand: search, fetch, decode, and store. Stages compose
through files: search --save writes a query file that fetch consumes, and
fetch --store hands decoded records to the citation store.`,
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

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pubmed-engine.yaml or ~/.config/pubmed-engine/config.yaml)")
	rootCmd.PersistentFlags().Bool("strict", false, "fail on unrecognized XML elements instead of skipping them")
	rootCmd.PersistentFlags().Bool("verbose", false, "log skipped elements and request progress to stderr")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubmed-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubmed-engine"))
		}
	}

	viper.SetEnvPrefix("PUBMED_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the diagnostic logger. Verbose mode gets the zap
// development console; otherwise diagnostics are discarded.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewNop(), nil
}

// decodeMode maps the --strict flag (or the decode.strict config key)
// to a decoder mode.
func decodeMode(cmd *cobra.Command) medline.Mode {
	strict, _ := cmd.Flags().GetBool("strict")
	if strict || viper.GetBool("decode.strict") {
		return medline.ModeStrict
	}
	return medline.ModeLenient
}

// eutilsConfig assembles the E-utilities client configuration. Config
// file keys win; the .secrets/ directory fills whatever they leave
// empty.
func eutilsConfig() types.EutilsConfig {
	apiKey := viper.GetString("eutils.api_key")
	if apiKey == "" {
		apiKey = loadedSecrets.NCBIAPIKey()
	}
	email := viper.GetString("eutils.email")
	if email == "" {
		email = loadedSecrets.ToolEmail()
	}

	return types.EutilsConfig{
		APIKey:            apiKey,
		Email:             email,
		RetMax:            viper.GetInt("eutils.retmax"),
		BatchSize:         viper.GetInt("eutils.batch_size"),
		RequestsPerSecond: viper.GetInt("eutils.requests_per_second"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
