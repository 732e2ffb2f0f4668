package memlib

import (
	"fmt"
	"sync"

	"github.com/aretw0/splint/pkg/domain"
	"github.com/aretw0/splint/pkg/ports"
)

// RecordedLoad captures one call into the checkpoint loader; tests assert
// on the exact options the delegate received.
type RecordedLoad struct {
	Source  string
	Options ports.CheckpointOptions
}

// CheckpointStore is an in-memory checkpoint source. It implements both
// ports.CheckpointLoader and ports.AllowlistRegistrar, and records every
// Load call.
//
// This library version requires an explicit trust flag: callers that omit
// it get an error, not a default. Supplying the default is the shim's job.
type CheckpointStore struct {
	mu          sync.Mutex
	checkpoints map[string]*domain.Checkpoint
	allowlist   map[string]bool
	calls       []RecordedLoad
}

// NewCheckpointStore creates an empty checkpoint store.
func NewCheckpointStore() *CheckpointStore {
	return &CheckpointStore{
		checkpoints: make(map[string]*domain.Checkpoint),
		allowlist:   make(map[string]bool),
	}
}

// Put stores a checkpoint under its source.
func (s *CheckpointStore) Put(ckpt *domain.Checkpoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkpoints[ckpt.Source] = ckpt
}

// Load implements ports.CheckpointLoader.
func (s *CheckpointStore) Load(source string, opts ports.CheckpointOptions) (*domain.Checkpoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, RecordedLoad{Source: source, Options: opts.Clone()})

	ckpt, ok := s.checkpoints[source]
	if !ok {
		return nil, fmt.Errorf("checkpoint not found: %s", source)
	}

	trust, ok := opts[ports.OptTrust].(bool)
	if !ok {
		return nil, fmt.Errorf("checkpoint %s: trust flag is required", source)
	}
	if trust && !s.allowlist[ckpt.TypeName] {
		return nil, fmt.Errorf("checkpoint %s: type %s is not allow-listed for restricted deserialization",
			source, ckpt.TypeName)
	}
	return ckpt, nil
}

// RegisterTrustedType implements ports.AllowlistRegistrar.
func (s *CheckpointStore) RegisterTrustedType(typeName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allowlist[typeName] = true
	return nil
}

// Trusted reports whether typeName is allow-listed.
func (s *CheckpointStore) Trusted(typeName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allowlist[typeName]
}

// Calls returns a copy of the recorded Load calls.
func (s *CheckpointStore) Calls() []RecordedLoad {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedLoad, len(s.calls))
	copy(out, s.calls)
	return out
}
