// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the litsum CLI, a batch literature
// review aid: it discovers PDF papers under a directory, extracts their
// text, summarizes each into a fixed-schema record, and writes the records
// as JSON and CSV for downstream review.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/litsum/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the litsum CLI.
var rootCmd = &cobra.Command{
	Use:   "litsum",
	Short: "Batch-summarize PDF papers into a structured inventory",
	Long: `litsum walks a directory of PDF papers, extracts the text of each, and
produces one structured summary record per paper. Records are written as a
nested JSON array and a flat CSV table with a fixed column order, ready for
spreadsheet review or downstream analysis.

The summarizer is pluggable: the default placeholder fills the record schema
with sentinel values, and the claude backend asks a language model instead.`,
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

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./litsum.yaml or ~/.config/litsum/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("litsum")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "litsum"))
		}
	}

	viper.SetEnvPrefix("LITSUM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
