package archive

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DRSN-tech/lca-catalog/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func TestExtractZip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	archivePath := filepath.Join(dir, "upload.ZIP")
	dest := filepath.Join(dir, "extracted")
	require.NoError(t, os.MkdirAll(dest, 0o750))

	writeZip(t, archivePath, map[string]string{
		"ABC123/":         "",
		"ABC123/img1.jpg": "jpeg",
		"XYZ/photo.png":   "png",
		`WIN\legacy.gif`:  "gif",
	})

	require.NoError(t, NewExtractor().Extract(context.Background(), archivePath, dest))

	data, err := os.ReadFile(filepath.Join(dest, "ABC123", "img1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(data))

	assert.FileExists(t, filepath.Join(dest, "XYZ", "photo.png"))
	assert.FileExists(t, filepath.Join(dest, "WIN", "legacy.gif"))
}

func TestExtractRar(t *testing.T) {
	t.Parallel()

	dest := filepath.Join(t.TempDir(), "extracted")
	require.NoError(t, os.MkdirAll(dest, 0o750))

	require.NoError(t, NewExtractor().Extract(context.Background(), filepath.Join("testdata", "images.rar"), dest))

	for path, content := range map[string]string{
		filepath.Join("ABC123", "img1.jpg"): "jpeg-bytes",
		filepath.Join("ABC123", "img2.png"): "png-bytes",
		filepath.Join("XYZ", "photo.gif"):   "gif-bytes",
	} {
		data, err := os.ReadFile(filepath.Join(dest, path))
		require.NoError(t, err, path)
		assert.Equal(t, content, string(data), path)
	}

	top, err := os.ReadDir(dest)
	require.NoError(t, err)
	names := make([]string, 0, len(top))
	for _, d := range top {
		assert.True(t, d.IsDir(), d.Name())
		names = append(names, d.Name())
	}
	assert.ElementsMatch(t, []string{"ABC123", "XYZ"}, names)
}

func TestExtractRarRejectsEscapingEntries(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dest := filepath.Join(dir, "a", "extracted")
	require.NoError(t, os.MkdirAll(dest, 0o750))

	err := NewExtractor().Extract(context.Background(), filepath.Join("testdata", "escape.rar"), dest)
	require.ErrorIs(t, err, e.ErrUnsafeArchivePath)
	assert.Equal(t, map[string]any{"entry": "../../evil.jpg"}, e.DetailsOf(err))
	assert.NoFileExists(t, filepath.Join(dir, "evil.jpg"))
}

func TestExtractRejectsEscapingEntries(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	archivePath := filepath.Join(dir, "upload.zip")
	dest := filepath.Join(dir, "extracted")
	require.NoError(t, os.MkdirAll(dest, 0o750))

	writeZip(t, archivePath, map[string]string{"../../evil.jpg": "x"})

	err := NewExtractor().Extract(context.Background(), archivePath, dest)
	require.ErrorIs(t, err, e.ErrUnsafeArchivePath)
	assert.NoFileExists(t, filepath.Join(dir, "..", "evil.jpg"))
}

func TestExtractErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	for _, name := range []string{"broken.zip", "broken.rar"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("definitely not an archive"), 0o600))

		err := NewExtractor().Extract(context.Background(), path, filepath.Join(dir, "out"))
		assert.ErrorIs(t, err, e.ErrArchiveExtract, name)
	}

	err := NewExtractor().Extract(context.Background(), filepath.Join(dir, "a.7z"), dir)
	assert.ErrorIs(t, err, e.ErrUnsupportedArchive)
}

func TestSafeJoin(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	got, err := safeJoin(root, "A/b.jpg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "A", "b.jpg"), got)

	got, err = safeJoin(root, "/abs/c.jpg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "abs", "c.jpg"), got)

	_, err = safeJoin(root, "a/../../d.jpg")
	assert.ErrorIs(t, err, e.ErrUnsafeArchivePath)
}
