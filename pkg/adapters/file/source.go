// Package file implements ports.DocumentSource over the local filesystem.
package file

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source reads JSON and YAML config documents from disk.
type Source struct{}

// New creates a filesystem document source.
func New() *Source {
	return &Source{}
}

// GetDocument reads the document at path into a generic mapping.
// JSON numbers are preserved as json.Number so large integers and float
// fields survive the round trip without precision ambiguity.
func (s *Source) GetDocument(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc map[string]any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml document %s: %w", path, err)
		}
		return doc, nil
	default:
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var doc map[string]any
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parse json document %s: %w", path, err)
		}
		return doc, nil
	}
}
