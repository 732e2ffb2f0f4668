// Package registry holds the process-wide capability bindings the shim
// negotiates over. A binding maps a "module.attr" name to the currently
// bound implementation; patches replace a binding with a wrapper while
// recording a patch marker so re-initialization never double-wraps.
package registry

import (
	"fmt"
	"sync"

	"github.com/aretw0/splint/pkg/domain"
)

// WrapFunc builds a wrapper around the currently bound implementation.
// It may return an error when the bound value has an unexpected shape.
type WrapFunc func(orig any) (any, error)

// Bindings manages the named capability bindings.
type Bindings struct {
	mu      sync.RWMutex
	values  map[string]any
	applied map[string]map[string]bool // binding name -> set of patch IDs
}

// New creates an empty binding registry.
func New() *Bindings {
	return &Bindings{
		values:  make(map[string]any),
		applied: make(map[string]map[string]bool),
	}
}

// Bind publishes a value under the given name.
// Rebinding replaces the value and clears patch markers: a freshly bound
// implementation is unpatched by definition.
func (b *Bindings) Bind(name string, v any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values[name] = v
	delete(b.applied, name)
}

// Resolve returns the currently bound value for name.
func (b *Bindings) Resolve(name string) (any, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.values[name]
	return v, ok
}

// Wrap replaces the binding for name with wrap(current), at most once per
// (name, patchID) pair. It returns true when the wrapper was installed and
// false when the patch was already present (a no-op, not an error).
// Returns domain.ErrTargetNotBound when name has no binding.
func (b *Bindings) Wrap(name, patchID string, wrap WrapFunc) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	orig, ok := b.values[name]
	if !ok {
		return false, fmt.Errorf("%w: %s", domain.ErrTargetNotBound, name)
	}

	if b.applied[name][patchID] {
		return false, nil
	}

	wrapped, err := wrap(orig)
	if err != nil {
		return false, fmt.Errorf("wrap %s: %w", name, err)
	}

	b.values[name] = wrapped
	if b.applied[name] == nil {
		b.applied[name] = make(map[string]bool)
	}
	b.applied[name][patchID] = true
	return true, nil
}

// Patched reports whether patchID has been applied to the binding.
func (b *Bindings) Patched(name, patchID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.applied[name][patchID]
}

// Names returns all bound names. Used for introspection and diagnostics.
func (b *Bindings) Names() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	names := make([]string, 0, len(b.values))
	for n := range b.values {
		names = append(names, n)
	}
	return names
}
