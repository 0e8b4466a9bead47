package download_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturo/facturo/internal/adapters/outbound/download"
)

func TestWriter_Save(t *testing.T) {
	dir := t.TempDir()
	w := download.NewWriter(dir)

	path, err := w.Save("invoice_INV-20250601120000.pdf", []byte("%PDF-1.4 data"))
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, "invoice_INV-20250601120000.pdf", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 data", string(data))
}

func TestWriter_Save_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports", "nested")
	w := download.NewWriter(dir)

	path, err := w.Save("invoice_X.pdf", []byte("x"))
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestWriter_Save_Overwrites(t *testing.T) {
	dir := t.TempDir()
	w := download.NewWriter(dir)

	_, err := w.Save("invoice_X.pdf", []byte("old"))
	require.NoError(t, err)
	path, err := w.Save("invoice_X.pdf", []byte("new"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriter_Save_SanitizesName(t *testing.T) {
	dir := t.TempDir()
	w := download.NewWriter(dir)

	path, err := w.Save("invoice_Q1/2025 001.pdf", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "invoice_Q1-2025-001.pdf", filepath.Base(path))
	assert.Equal(t, dir, filepath.Dir(path))
}
