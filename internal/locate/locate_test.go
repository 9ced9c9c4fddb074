// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package locate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTree creates files (relative paths) under a temp dir and returns it.
func setupTree(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		path := filepath.Join(dir, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
	return dir
}

func TestFind(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  []string // expected relative paths, in order
	}{
		{
			name:  "sorted lexicographically by full path",
			files: []string{"b.pdf", "a.pdf", "c.pdf"},
			want:  []string{"a.pdf", "b.pdf", "c.pdf"},
		},
		{
			name:  "recurses into subdirectories",
			files: []string{"z.pdf", "sub/a.pdf", "sub/nested/b.pdf"},
			want:  []string{"sub/a.pdf", "sub/nested/b.pdf", "z.pdf"},
		},
		{
			name:  "ignores non-pdf files",
			files: []string{"a.pdf", "notes.txt", "data.csv", "b.pdf"},
			want:  []string{"a.pdf", "b.pdf"},
		},
		{
			name:  "suffix match is case-sensitive",
			files: []string{"lower.pdf", "UPPER.PDF", "Mixed.Pdf"},
			want:  []string{"lower.pdf"},
		},
		{
			name:  "empty directory yields empty slice",
			files: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupTree(t, tt.files...)

			docs, err := Find(dir)
			require.NoError(t, err)

			var got []string
			for _, d := range docs {
				rel, err := filepath.Rel(dir, d.Path)
				require.NoError(t, err)
				got = append(got, filepath.ToSlash(rel))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindSetsName(t *testing.T) {
	dir := setupTree(t, "sub/paper.pdf")

	docs, err := Find(dir)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "paper.pdf", docs[0].Name)
	assert.Equal(t, filepath.Join(dir, "sub", "paper.pdf"), docs[0].Path)
}

func TestFindDeterministic(t *testing.T) {
	dir := setupTree(t, "b.pdf", "sub/c.pdf", "a.pdf")

	first, err := Find(dir)
	require.NoError(t, err)
	second, err := Find(dir)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFindFollowsFileSymlinks(t *testing.T) {
	dir := setupTree(t, "real/target.pdf", "plain.pdf")
	link := filepath.Join(dir, "alias.pdf")
	if err := os.Symlink(filepath.Join(dir, "real", "target.pdf"), link); err != nil {
		t.Skipf("symlinks not supported here: %v", err)
	}
	// A dangling link must not surface as a document.
	broken := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone.pdf"), broken))

	docs, err := Find(dir)
	require.NoError(t, err)

	var names []string
	for _, d := range docs {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"alias.pdf", "plain.pdf", "target.pdf"}, names)
}

func TestFindMissingRoot(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.ErrorIs(t, err, ErrNoDirectory)
}

func TestFindRootIsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.pdf")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := Find(path)
	assert.ErrorIs(t, err, ErrNoDirectory)
}
