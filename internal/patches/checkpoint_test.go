package patches

import (
	"errors"
	"testing"

	"github.com/aretw0/splint/internal/logging"
	"github.com/aretw0/splint/pkg/domain"
	"github.com/aretw0/splint/pkg/modules"
	"github.com/aretw0/splint/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLoader struct {
	opts ports.CheckpointOptions
}

func (l *recordingLoader) Load(source string, opts ports.CheckpointOptions) (*domain.Checkpoint, error) {
	l.opts = opts
	return &domain.Checkpoint{Source: source}, nil
}

func TestTrustAdapterInjectsDefault(t *testing.T) {
	next := &recordingLoader{}

	var events []*domain.FallbackEvent
	a := NewTrustAdapter(next, logging.NewNop(), collectFallbacks(&events))

	orig := ports.CheckpointOptions{ports.OptMapLocation: "cpu"}
	_, err := a.Load("weights.ckpt", orig)
	require.NoError(t, err)

	assert.Equal(t, false, next.opts[ports.OptTrust])
	assert.Equal(t, "cpu", next.opts[ports.OptMapLocation])

	// Caller options are never mutated.
	_, present := orig[ports.OptTrust]
	assert.False(t, present)

	require.Len(t, events, 1)
	assert.Equal(t, "default_trust_flag", events[0].Reason)
}

func TestTrustAdapterHonorsExplicitFlag(t *testing.T) {
	next := &recordingLoader{}

	var events []*domain.FallbackEvent
	a := NewTrustAdapter(next, logging.NewNop(), collectFallbacks(&events))

	_, err := a.Load("weights.ckpt", ports.CheckpointOptions{ports.OptTrust: true})
	require.NoError(t, err)

	assert.Equal(t, true, next.opts[ports.OptTrust])
	assert.Empty(t, events)
}

func TestTrustAdapterHandlesNilOptions(t *testing.T) {
	next := &recordingLoader{}
	a := NewTrustAdapter(next, logging.NewNop(), domain.Hooks{})

	_, err := a.Load("weights.ckpt", nil)
	require.NoError(t, err)
	assert.Equal(t, false, next.opts[ports.OptTrust])
}

type allowlistStub struct {
	types []string
	err   error
}

func (s *allowlistStub) RegisterTrustedType(typeName string) error {
	if s.err != nil {
		return s.err
	}
	s.types = append(s.types, typeName)
	return nil
}

func TestRegisterTrustedType(t *testing.T) {
	t.Run("allowlist export preferred", func(t *testing.T) {
		reg := &allowlistStub{}
		m := &modules.Module{Name: "checkpoint", Exports: map[string]any{"allowlist": reg}}

		RegisterTrustedType(m, "model_config", logging.NewNop())
		assert.Equal(t, []string{"model_config"}, reg.types)
	})

	t.Run("loader export as fallback", func(t *testing.T) {
		reg := &allowlistStub{}
		m := &modules.Module{Name: "checkpoint", Exports: map[string]any{"load": reg}}

		RegisterTrustedType(m, "model_config", logging.NewNop())
		assert.Equal(t, []string{"model_config"}, reg.types)
	})

	t.Run("no registrar is tolerated", func(t *testing.T) {
		m := &modules.Module{Name: "checkpoint", Exports: map[string]any{"load": "not a registrar"}}
		RegisterTrustedType(m, "model_config", logging.NewNop())
	})

	t.Run("registrar errors are tolerated", func(t *testing.T) {
		reg := &allowlistStub{err: errors.New("allow-list frozen")}
		m := &modules.Module{Name: "checkpoint", Exports: map[string]any{"allowlist": reg}}
		RegisterTrustedType(m, "model_config", logging.NewNop())
	})
}
