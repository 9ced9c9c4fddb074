// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch drives extraction and summarization across a set of
// discovered documents, in locator order, and defines the failure policy
// for the run.
package batch

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/litsum/internal/pdftext"
	"github.com/pdiddy/litsum/internal/summarize"
	"github.com/pdiddy/litsum/pkg/types"
)

// Options configures a batch run.
type Options struct {
	// KeepGoing continues past per-document failures, collecting them in
	// Result.Failures. The default (false) aborts the batch on the first
	// error, matching the fail-fast contract.
	KeepGoing bool
}

// Failure pairs a document with the error that stopped its processing.
type Failure struct {
	Doc types.Document
	Err error
}

// Result holds the outcome of a batch run: one record per successfully
// processed document, in discovery order, plus any collected failures.
type Result struct {
	Records  []types.SummaryRecord
	Failures []Failure
}

// Total returns the number of documents processed.
func (r Result) Total() int {
	return len(r.Records) + len(r.Failures)
}

// HasFailures reports whether any documents failed.
func (r Result) HasFailures() bool {
	return len(r.Failures) > 0
}

// Run processes docs sequentially: extract text, then summarize, appending
// one record per document. Per-document status lines go to w. Under the
// default fail-fast policy the first error aborts the run and is returned
// wrapped with the document name; with KeepGoing the error is recorded and
// processing continues.
func Run(ctx context.Context, ex pdftext.Extractor, s summarize.Summarizer, docs []types.Document, opts Options, w io.Writer) (Result, error) {
	var result Result

	for _, doc := range docs {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		rec, err := processDoc(ctx, ex, s, doc)
		if err != nil {
			if !opts.KeepGoing {
				return result, err
			}
			fmt.Fprintf(w, "failed:     %s (%v)\n", doc.Name, err)
			result.Failures = append(result.Failures, Failure{Doc: doc, Err: err})
			continue
		}

		fmt.Fprintf(w, "summarized: %s\n", doc.Name)
		result.Records = append(result.Records, rec)
	}

	fmt.Fprintf(w, "\nBatch summary: %d summarized, %d failed (total: %d)\n",
		len(result.Records), len(result.Failures), result.Total())
	return result, nil
}

// processDoc runs the per-document pipeline: extraction then summarization.
func processDoc(ctx context.Context, ex pdftext.Extractor, s summarize.Summarizer, doc types.Document) (types.SummaryRecord, error) {
	text, err := ex.Extract(doc.Path)
	if err != nil {
		return types.SummaryRecord{}, err
	}

	rec, err := s.Summarize(ctx, text, doc.Name)
	if err != nil {
		return types.SummaryRecord{}, fmt.Errorf("summarizing %s: %w", doc.Name, err)
	}
	return rec, nil
}
