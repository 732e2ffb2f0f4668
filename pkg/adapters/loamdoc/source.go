// Package loamdoc implements ports.DocumentSource over a Loam repository.
//
// Model directories are Loam-friendly: a directory holding config.json next
// to checkpoint files maps to a repository where "config" is a document ID.
package loamdoc

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/loam"
)

// Source reads config documents from a Loam repository.
type Source struct {
	repo *loam.TypedRepository[map[string]any]
}

// New opens a Loam repository rooted at dir.
// Strict mode keeps numeric types consistent (json.Number) across the JSON
// and Markdown/YAML adapters; ReadOnly avoids Loam's sandbox behavior in dev
// mode, since the shim only ever reads documents.
func New(dir string) (*Source, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	return &Source{repo: loam.NewTypedRepository[map[string]any](repo)}, nil
}

// GetDocument retrieves a document by ID or filename.
// Loam normalizes retrieval, so "config", "config.json" and a full path into
// the repository all resolve to the same document.
func (s *Source) GetDocument(path string) (map[string]any, error) {
	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	doc, err := s.repo.Get(context.Background(), id)
	if err != nil {
		return nil, fmt.Errorf("loam get failed for %s: %w", id, err)
	}
	return doc.Data, nil
}
