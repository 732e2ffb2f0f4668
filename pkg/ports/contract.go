package ports

import (
	"testing"

	"github.com/aretw0/splint/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The shim classifies external failures by message text. These suites pin
// the required message shapes so an adapter whose wording drifts breaks a
// test immediately instead of silently mis-classifying.

// RunRelationPredicateContract verifies that a RelationPredicate
// implementation adheres to the contract the shim depends on.
func RunRelationPredicateContract(t *testing.T, p RelationPredicate) {
	t.Run("valid types answer without error", func(t *testing.T) {
		ok, err := p.Related(schema.Float(), schema.Float())
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("non-type first argument errors", func(t *testing.T) {
		_, err := p.Related(42, schema.Float())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "first argument must be a type")
	})
}

// RunDeserializerContract verifies that a FieldDeserializer implementation
// adheres to the contract the shim depends on.
func RunDeserializerContract(t *testing.T, d FieldDeserializer) {
	t.Run("conforming value passes", func(t *testing.T) {
		out, err := d.Deserialize(0.5, schema.Float())
		require.NoError(t, err)
		assert.Equal(t, 0.5, out)
	})

	t.Run("mismatch error mentions the field type", func(t *testing.T) {
		_, err := d.Deserialize("not a number", schema.Float())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not match")
		assert.Contains(t, err.Error(), "field type")
	})

	t.Run("non-type declaration errors", func(t *testing.T) {
		_, err := d.Deserialize(0.5, "float | [float]")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "first argument must be a type")
	})
}

// RunCheckpointLoaderContract verifies a CheckpointLoader against a source
// known to contain a checkpoint whose root type is trustedType.
func RunCheckpointLoaderContract(t *testing.T, l CheckpointLoader, source, trustedType string) {
	t.Run("legacy mode loads", func(t *testing.T) {
		ckpt, err := l.Load(source, CheckpointOptions{OptTrust: false})
		require.NoError(t, err)
		assert.Equal(t, trustedType, ckpt.TypeName)
	})

	t.Run("restricted mode honors the allow-list", func(t *testing.T) {
		reg, ok := l.(AllowlistRegistrar)
		if !ok {
			t.Skip("loader version has no allow-list registrar")
		}
		require.NoError(t, reg.RegisterTrustedType(trustedType))
		_, err := l.Load(source, CheckpointOptions{OptTrust: true})
		assert.NoError(t, err)
	})

	t.Run("unknown source errors", func(t *testing.T) {
		_, err := l.Load("no-such-checkpoint", CheckpointOptions{OptTrust: false})
		assert.Error(t, err)
	})
}
