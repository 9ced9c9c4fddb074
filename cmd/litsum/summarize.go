// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/litsum/internal/batch"
	"github.com/pdiddy/litsum/internal/locate"
	"github.com/pdiddy/litsum/internal/pdftext"
	"github.com/pdiddy/litsum/internal/report"
	"github.com/pdiddy/litsum/internal/secrets"
	"github.com/pdiddy/litsum/internal/summarize"
	"github.com/pdiddy/litsum/pkg/types"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [root-dir]",
	Short: "Extract text from PDFs and summarize them into JSON/CSV records",
	Long: `Summarize recursively discovers PDF files under root-dir (default:
literature/), extracts the text of each, and produces one summary record
per paper. Records are written in discovery order to a nested JSON file
and a flat CSV file once the whole batch has been processed.

The run aborts on the first failing document unless --keep-going is set,
in which case failures are reported and the remaining papers still produce
records.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummarize,
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg := summarizeConfig(cmd, args)

	// Both backends are resolved before any document is opened, so a
	// missing tool or API key fails the run up front.
	extractor, err := pdftext.New(cfg.Extractor)
	if err != nil {
		return err
	}
	summarizer, err := newSummarizer(cfg)
	if err != nil {
		return err
	}

	docs, err := locate.Find(cfg.RootDir)
	if err != nil {
		return err
	}

	result, err := batch.Run(context.Background(), extractor, summarizer, docs,
		batch.Options{KeepGoing: cfg.KeepGoing}, os.Stdout)
	if err != nil {
		return err
	}

	// Outputs are written only after the processing loop completes, so a
	// failed batch never leaves partial files behind.
	if err := report.WriteJSON(result.Records, cfg.JSONOutput); err != nil {
		return err
	}
	if err := report.WriteCSV(result.Records, cfg.CSVOutput); err != nil {
		return err
	}
	if cfg.YAMLOutput != "" {
		if err := report.WriteYAML(result.Records, cfg.YAMLOutput); err != nil {
			return err
		}
	}

	if result.HasFailures() {
		return fmt.Errorf("%d document(s) failed", len(result.Failures))
	}
	return nil
}

// newSummarizer builds the summarization backend selected by the config.
func newSummarizer(cfg types.SummarizeConfig) (summarize.Summarizer, error) {
	switch cfg.Summarizer {
	case types.SummarizerPlaceholder, "":
		return summarize.NewPlaceholder(), nil
	case types.SummarizerClaude:
		key := cfg.APIKey
		if key == "" {
			key = loadedSecrets[secrets.AnthropicAPIKey]
		}
		if key == "" {
			return nil, fmt.Errorf("claude summarizer requires an API key: set --api-key, LITSUM_API_KEY, or .secrets/%s", secrets.AnthropicAPIKey)
		}
		if cfg.Model == "" {
			return nil, fmt.Errorf("claude summarizer requires --model")
		}
		return &summarize.ClaudeSummarizer{
			APIKey:     key,
			Model:      cfg.Model,
			MaxRetries: cfg.MaxRetries,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported summarizer %q: use placeholder or claude", cfg.Summarizer)
	}
}

// summarizeConfig assembles the run configuration from the positional
// argument, flags, and config-file values. A flag set on the command line
// wins over the config file.
func summarizeConfig(cmd *cobra.Command, args []string) types.SummarizeConfig {
	cfg := types.SummarizeConfig{
		RootDir:    stringSetting(cmd, "root-dir", "root_dir"),
		JSONOutput: stringSetting(cmd, "json-output", "json_output"),
		CSVOutput:  stringSetting(cmd, "csv-output", "csv_output"),
		YAMLOutput: stringSetting(cmd, "yaml-output", "yaml_output"),
		Extractor:  types.ExtractorBackend(stringSetting(cmd, "extractor", "extractor")),
		Summarizer: types.SummarizerBackend(stringSetting(cmd, "summarizer", "summarizer")),
	}
	cfg.Model = stringSetting(cmd, "model", "model")
	cfg.APIKey = stringSetting(cmd, "api-key", "api_key")
	cfg.MaxRetries = intSetting(cmd, "max-retries", "max_retries")
	cfg.KeepGoing = boolSetting(cmd, "keep-going", "keep_going")

	if len(args) > 0 {
		cfg.RootDir = args[0]
	}
	return cfg
}

// stringSetting reads a flag, falling back to the config file when the flag
// was left at its default. intSetting and boolSetting do the same for the
// other flag types.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	v, _ := cmd.Flags().GetString(flag)
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	return v
}

func intSetting(cmd *cobra.Command, flag, key string) int {
	v, _ := cmd.Flags().GetInt(flag)
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return v
}

func boolSetting(cmd *cobra.Command, flag, key string) bool {
	v, _ := cmd.Flags().GetBool(flag)
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetBool(key)
	}
	return v
}

// addSummarizeFlags registers the summarize command's flags on fs.
func addSummarizeFlags(fs *pflag.FlagSet) {
	fs.String("root-dir", "literature", "directory containing PDF files")
	fs.String("json-output", "literature_summary.json", "path of the JSON output file")
	fs.String("csv-output", "literature_summary.csv", "path of the CSV output file")
	fs.String("yaml-output", "", "path of an optional YAML output file")
	fs.String("extractor", "native", "text extraction backend: native or pdftotext")
	fs.String("summarizer", "placeholder", "summarization backend: placeholder or claude")
	fs.String("model", "", "AI model identifier for the claude summarizer")
	fs.String("api-key", "", "API key for the claude summarizer")
	fs.Int("max-retries", 3, "retry attempts for failed summarizer calls")
	fs.Bool("keep-going", false, "continue past per-document failures")
}

func init() {
	addSummarizeFlags(summarizeCmd.Flags())

	rootCmd.AddCommand(summarizeCmd)
}
