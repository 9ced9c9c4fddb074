// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package locate discovers PDF documents under a directory tree.
package locate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/litsum/pkg/types"
)

// pdfSuffix is matched exactly. Matching is case-sensitive, so "paper.PDF"
// is not discovered on case-sensitive filesystems.
const pdfSuffix = ".pdf"

// ErrNoDirectory reports that the scan root does not exist.
var ErrNoDirectory = errors.New("directory not found")

// Find recursively walks root and returns every regular file whose name ends
// in ".pdf", sorted lexicographically by full path so consecutive runs over
// the same tree produce the same order. A root with no matching files yields
// an empty slice; a missing root yields ErrNoDirectory.
func Find(root string) ([]types.Document, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoDirectory, root)
		}
		return nil, fmt.Errorf("checking root directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNoDirectory, root)
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), pdfSuffix) {
			return nil
		}
		// A symlinked PDF counts when it resolves to a regular file;
		// broken links are skipped. Symlinked directories are not
		// followed.
		if d.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Strings(paths)

	docs := make([]types.Document, len(paths))
	for i, p := range paths {
		docs[i] = types.Document{Path: p, Name: filepath.Base(p)}
	}
	return docs, nil
}
