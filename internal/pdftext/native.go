// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// NativeExtractor extracts text in-process using the pdf library. It needs
// no external tools, so construction cannot fail.
type NativeExtractor struct{}

// NewNativeExtractor creates the in-process extraction backend.
func NewNativeExtractor() *NativeExtractor {
	return &NativeExtractor{}
}

// Extract opens the PDF at path and returns the text of all pages joined
// with newlines. Corrupt or encrypted files fail with an *ExtractError.
func (e *NativeExtractor) Extract(path string) (text string, err error) {
	// The parser panics on some malformed files; surface those as
	// extraction failures instead of crashing the batch.
	defer func() {
		if r := recover(); r != nil {
			err = &ExtractError{Path: path, Err: fmt.Errorf("parser panic: %v", r)}
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractError{Path: path, Err: err}
	}
	defer f.Close()

	total := r.NumPage()
	pages := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		pageText, err := p.GetPlainText(nil)
		if err != nil {
			return "", &ExtractError{Path: path, Err: fmt.Errorf("page %d: %w", i, err)}
		}
		pages = append(pages, pageText)
	}

	return strings.Join(pages, "\n"), nil
}
