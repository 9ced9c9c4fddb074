// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts plain text from PDF files with pluggable backends.
package pdftext

import (
	"errors"
	"fmt"

	"github.com/pdiddy/litsum/pkg/types"
)

// Extractor converts one PDF file into its plain text content. Different
// backends (native, pdftotext) implement this interface.
type Extractor interface {
	// Extract reads the PDF at path and returns the concatenated text of
	// all pages, in page order, separated by newlines. A page without
	// extractable text contributes an empty string. Extraction is
	// all-or-nothing per document: any page-level failure fails the file.
	Extract(path string) (string, error)
}

// ErrToolMissing reports that the selected extraction backend's external
// tool is not available. It is returned at construction time, before any
// document is opened, since every subsequent call would fail the same way.
var ErrToolMissing = errors.New("extraction tool missing")

// ExtractError reports that a specific document could not be parsed. It
// names the offending file and wraps the underlying cause.
type ExtractError struct {
	Path string
	Err  error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extracting text from %s: %v", e.Path, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

// New constructs the extractor for the given backend.
func New(backend types.ExtractorBackend) (Extractor, error) {
	switch backend {
	case types.BackendNative, "":
		return NewNativeExtractor(), nil
	case types.BackendPdftotext:
		return NewPdftotextExtractor()
	default:
		return nil, fmt.Errorf("unsupported extractor backend %q: use native or pdftotext", backend)
	}
}
