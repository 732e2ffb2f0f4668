package memlib

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/aretw0/splint/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticDocs map[string]map[string]any

func (d staticDocs) GetDocument(path string) (map[string]any, error) {
	doc, ok := d[path]
	if !ok {
		return nil, fmt.Errorf("no document %s", path)
	}
	return doc, nil
}

// acceptAll is the permissive deserializer the patched binding effectively
// becomes for values the pinned version cannot handle.
type acceptAll struct{}

func (acceptAll) Deserialize(value, declared any) (any, error) { return value, nil }

func TestBaseConfigPopulate(t *testing.T) {
	cfg := NewBaseConfig()
	err := cfg.Populate(map[string]any{
		"model_name":  "demo",
		"sample_rate": json.Number("22050"),
		"use_cuda":    true,
		"new_knob":    "kept raw", // undeclared
	}, NewDeserializer())
	require.NoError(t, err)

	fields := cfg.Fields()
	assert.Equal(t, "demo", fields["model_name"])
	assert.Equal(t, int64(22050), fields["sample_rate"])
	assert.Equal(t, "kept raw", fields["new_knob"])

	view := cfg.Settings()
	assert.Equal(t, "demo", view.ModelName)
	assert.Equal(t, 22050, view.SampleRate)
	assert.True(t, view.UseCuda)
}

func TestBaseConfigPopulateFailsOnDeclaredMismatch(t *testing.T) {
	cfg := NewBaseConfig()
	err := cfg.Populate(map[string]any{
		"temperature": json.Number("0.5"), // declared as a union this version rejects
	}, NewDeserializer())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `field "temperature"`)
}

func TestBaseConfigSettingsKeepEitherUnionShape(t *testing.T) {
	cfg := NewBaseConfig()
	err := cfg.Populate(map[string]any{
		"temperature":  json.Number("0.65"),
		"length_scale": []any{json.Number("0.5"), json.Number("1.0")},
	}, acceptAll{})
	require.NoError(t, err)

	view := cfg.Settings()
	assert.Equal(t, json.Number("0.65"), view.Temperature)
	assert.Len(t, view.LengthScale, 2)
}

func TestConfigLoader(t *testing.T) {
	docs := staticDocs{
		"ok.json": {
			"model_name": "demo",
		},
		"drifted.json": {
			"model_name":  "demo",
			"temperature": json.Number("0.5"),
		},
	}
	loader := NewConfigLoader(docs, NewDeserializer())

	t.Run("clean document loads", func(t *testing.T) {
		cfg, err := loader.Load("ok.json")
		require.NoError(t, err)
		assert.Equal(t, "demo", cfg.Fields()["model_name"])
	})

	t.Run("union field fails at this version", func(t *testing.T) {
		_, err := loader.Load("drifted.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not match")
		assert.Contains(t, err.Error(), "field type")
	})

	t.Run("missing document", func(t *testing.T) {
		_, err := loader.Load("nope.json")
		assert.Error(t, err)
	})
}

func TestFactoryProducesEmptyConfigs(t *testing.T) {
	var f ports.ConfigFactory = Factory{}
	cfg := f.NewConfig()
	assert.Empty(t, cfg.Fields())
}
