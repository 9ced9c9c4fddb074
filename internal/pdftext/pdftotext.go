// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// lookPath locates the external binary. Package-level var for test substitution.
var lookPath = exec.LookPath

// PdftotextExtractor extracts text by running the poppler pdftotext binary
// once per document, reading its stdout.
type PdftotextExtractor struct {
	tool string
}

// NewPdftotextExtractor verifies that pdftotext is on PATH and returns the
// backend. A missing binary yields ErrToolMissing before any file is read.
func NewPdftotextExtractor() (*PdftotextExtractor, error) {
	tool, err := lookPath("pdftotext")
	if err != nil {
		return nil, fmt.Errorf("%w: pdftotext not found on PATH (install poppler-utils)", ErrToolMissing)
	}
	return &PdftotextExtractor{tool: tool}, nil
}

// Extract runs pdftotext on the file and normalizes its page separators.
func (e *PdftotextExtractor) Extract(path string) (string, error) {
	cmd := exec.Command(e.tool, "-enc", "UTF-8", path, "-")

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(errBuf.String())
		if msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return "", &ExtractError{Path: path, Err: err}
	}

	return normalizePages(out.String()), nil
}

// normalizePages rewrites the form feeds pdftotext emits between pages
// (including a trailing one) into the newline separator used by the
// native backend, so both backends agree on the page-join convention.
func normalizePages(s string) string {
	s = strings.TrimSuffix(s, "\f")
	return strings.ReplaceAll(s, "\f", "\n")
}
