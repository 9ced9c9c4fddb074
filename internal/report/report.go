// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report serializes summary records to the run's output files.
// Writers are independent and idempotent: the same records produce
// byte-identical output on every run.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/litsum/pkg/types"
)

// WriteJSON writes the records as an indented UTF-8 JSON array to path,
// overwriting any existing file. An empty batch produces a valid empty
// array document.
func WriteJSON(records []types.SummaryRecord, path string) error {
	if records == nil {
		records = []types.SummaryRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteCSV writes the records as a comma-delimited table to path: one header
// row of field names in record order, then one row per record. Embedded
// delimiters and newlines get standard CSV quoting. An empty batch is an
// explicit no-op: no file is created and no header is written.
func WriteCSV(records []types.SummaryRecord, path string) error {
	if len(records) == 0 {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(types.RecordFields()); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(rec.Values()); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", rec.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}

// WriteYAML writes the records as a YAML sequence to path, overwriting any
// existing file. Field order within each entry follows the record schema.
func WriteYAML(records []types.SummaryRecord, path string) error {
	if records == nil {
		records = []types.SummaryRecord{}
	}
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
