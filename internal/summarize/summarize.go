// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize turns extracted paper text into structured summary
// records. The Summarizer interface is the replacement seam: the placeholder
// fills the schema with sentinel values, the Claude backend asks a model.
package summarize

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/pdiddy/litsum/pkg/types"
)

// Summarizer produces one SummaryRecord from a paper's extracted text.
// Implementations must set the record's ID field to docID so records stay
// traceable to their source file, and must return the full field schema
// even when the text carries little signal.
type Summarizer interface {
	Summarize(ctx context.Context, text, docID string) (types.SummaryRecord, error)
}

// Placeholder is the default summarizer. It performs no I/O and never fails;
// it marks the free-text fields with explicit placeholder content so the
// outputs are recognizable as unreviewed.
type Placeholder struct{}

// NewPlaceholder creates the placeholder summarizer.
func NewPlaceholder() *Placeholder {
	return &Placeholder{}
}

// Summarize returns a sentinel record for the document.
func (Placeholder) Summarize(_ context.Context, _ string, docID string) (types.SummaryRecord, error) {
	return types.SummaryRecord{
		ID:                  docID,
		Title:               "TBD",
		MainFindings:        "- Placeholder finding\n- Add LLM output here",
		RelevanceToMyThesis: "Placeholder relevance for future LLM integration.",
	}, nil
}

// backoffBase controls the base duration for exponential backoff between
// summarizer retries. Tests override this to avoid real sleeps.
var backoffBase = 2 * time.Second

// callWithRetry invokes fn with exponential backoff: the delay before
// attempt n is backoffBase * 2^(n-1). The context cancels backoff waits.
func callWithRetry(ctx context.Context, fn func(context.Context) (types.SummaryRecord, error), maxRetries int) (types.SummaryRecord, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			select {
			case <-ctx.Done():
				return types.SummaryRecord{}, ctx.Err()
			case <-time.After(backoff):
			}
		}

		rec, err := fn(ctx)
		if err == nil {
			return rec, nil
		}
		lastErr = err
	}
	return types.SummaryRecord{}, fmt.Errorf("after %d retries: %w", maxRetries, lastErr)
}
