package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/breeze/internal/adapters/fs"
	"go.trai.ch/breeze/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func TestWalker_WalkFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".git", "config"), "git config")
	writeFile(t, filepath.Join(dir, "node_modules", "pkg", "index.js"), "x")
	writeFile(t, filepath.Join(dir, "src", "index.html"), "<div class=\"flex\">")
	writeFile(t, filepath.Join(dir, "src", "app.min.js"), "x")
	writeFile(t, filepath.Join(dir, "README.md"), "# Readme")

	var got []string
	for path := range fs.NewWalker().WalkFiles(dir, append(slices.Clone(fs.DefaultIgnores), "*.min.js")) {
		rel, err := filepath.Rel(dir, path)
		require.NoError(t, err)
		got = append(got, filepath.ToSlash(rel))
	}

	assert.ElementsMatch(t, []string{"README.md", "src/index.html"}, got)
}

func TestWalker_StopsEarly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.html"), "")
	writeFile(t, filepath.Join(dir, "b.html"), "")

	count := 0
	for range fs.NewWalker().WalkFiles(dir, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestHasher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.css")
	writeFile(t, path, ".flex { display: flex; }")

	h := fs.NewHasher()
	fromFile, err := h.HashFile(path)
	require.NoError(t, err)

	assert.Len(t, fromFile, 16)
	assert.Equal(t, h.HashString(".flex { display: flex; }"), fromFile)
	assert.NotEqual(t, h.HashString(".block { display: block; }"), fromFile)

	_, err = h.HashFile(filepath.Join(dir, "missing.css"))
	require.Error(t, err)
}

func TestStater_ModTime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.css")
	writeFile(t, path, "@tailwind utilities;")

	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, stamp, stamp))

	s := fs.NewStater()
	mtime, err := s.ModTime(path)
	require.NoError(t, err)
	assert.Equal(t, stamp.UnixNano(), mtime)

	_, err = s.ModTime(filepath.Join(dir, "missing.css"))
	require.ErrorIs(t, err, domain.ErrFileNotFound)
}
