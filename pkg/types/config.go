// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractorBackend identifies the PDF text extraction tool.
type ExtractorBackend string

const (
	// BackendNative extracts text in-process with the pdf library.
	BackendNative ExtractorBackend = "native"

	// BackendPdftotext shells out to the poppler pdftotext binary.
	BackendPdftotext ExtractorBackend = "pdftotext"
)

// SummarizerBackend identifies the summarization implementation.
type SummarizerBackend string

const (
	// SummarizerPlaceholder produces fixed sentinel records without I/O.
	SummarizerPlaceholder SummarizerBackend = "placeholder"

	// SummarizerClaude calls the Claude Messages API per paper.
	SummarizerClaude SummarizerBackend = "claude"
)

// AIConfig holds shared settings for backends that call a Generative AI API.
type AIConfig struct {
	// Model is the AI model identifier (e.g. "claude-sonnet-4-5-20250929").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for failed API calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// SummarizeConfig holds settings for one summarization run.
type SummarizeConfig struct {
	AIConfig `yaml:",inline"`

	// RootDir is the directory scanned for PDF files (default "literature").
	RootDir string `json:"root_dir" yaml:"root_dir"`

	// JSONOutput is the path of the nested JSON output file.
	JSONOutput string `json:"json_output" yaml:"json_output"`

	// CSVOutput is the path of the tabular CSV output file.
	CSVOutput string `json:"csv_output" yaml:"csv_output"`

	// YAMLOutput is the path of an optional YAML output file. Empty
	// disables YAML output.
	YAMLOutput string `json:"yaml_output,omitempty" yaml:"yaml_output,omitempty"`

	// Extractor selects the text extraction backend: native or pdftotext.
	Extractor ExtractorBackend `json:"extractor" yaml:"extractor"`

	// Summarizer selects the summarization backend: placeholder or claude.
	Summarizer SummarizerBackend `json:"summarizer" yaml:"summarizer"`

	// KeepGoing continues past per-document failures instead of aborting
	// the batch on the first error.
	KeepGoing bool `json:"keep_going" yaml:"keep_going"`
}
