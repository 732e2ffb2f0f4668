package memlib

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/splint/pkg/ports"
	"github.com/aretw0/splint/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeserializerContract(t *testing.T) {
	ports.RunDeserializerContract(t, NewDeserializer())
}

func TestDeserializerCoercion(t *testing.T) {
	d := NewDeserializer()

	t.Run("number collapses to int64", func(t *testing.T) {
		out, err := d.Deserialize(json.Number("22050"), schema.Int())
		require.NoError(t, err)
		assert.Equal(t, int64(22050), out)
	})

	t.Run("number collapses to float64", func(t *testing.T) {
		out, err := d.Deserialize(json.Number("0.5"), schema.Float())
		require.NoError(t, err)
		assert.Equal(t, 0.5, out)
	})

	t.Run("slice elements coerce", func(t *testing.T) {
		out, err := d.Deserialize([]any{json.Number("0.5"), json.Number("1")}, schema.Slice(schema.Float()))
		require.NoError(t, err)
		assert.Equal(t, []any{0.5, 1.0}, out)
	})

	t.Run("strings pass through", func(t *testing.T) {
		out, err := d.Deserialize("demo", schema.String())
		require.NoError(t, err)
		assert.Equal(t, "demo", out)
	})
}

func TestDeserializerRejectsUnions(t *testing.T) {
	// This library version predates union declarations: even a value that
	// would fit a member is rejected with a field-type mismatch.
	union := schema.Union(schema.Float(), schema.Slice(schema.Float()))

	_, err := NewDeserializer().Deserialize(json.Number("0.5"), union)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match field type float | [float]")
}
