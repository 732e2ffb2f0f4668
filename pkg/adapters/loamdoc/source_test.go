package loamdoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupModelDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	content := []byte(`{"model_name": "demo", "sample_rate": 22050}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), content, 0o644))
	return dir
}

func TestGetDocumentByID(t *testing.T) {
	src, err := New(setupModelDir(t))
	require.NoError(t, err)

	doc, err := src.GetDocument("config")
	require.NoError(t, err)
	assert.Equal(t, "demo", doc["model_name"])
}

func TestGetDocumentNormalizesPaths(t *testing.T) {
	dir := setupModelDir(t)
	src, err := New(dir)
	require.NoError(t, err)

	// Filename and full path resolve to the same document ID.
	for _, ref := range []string{"config.json", filepath.Join(dir, "config.json")} {
		doc, err := src.GetDocument(ref)
		require.NoError(t, err, ref)
		assert.Equal(t, "demo", doc["model_name"], ref)
	}
}

func TestGetDocumentMissing(t *testing.T) {
	src, err := New(setupModelDir(t))
	require.NoError(t, err)

	_, err = src.GetDocument("nope")
	assert.Error(t, err)
}
