package modules

import "sync"

// PatchFunc applies a patch to a freshly loaded module.
type PatchFunc func(m *Module) error

// deferredPatch intercepts the first load of one target module and applies
// its patch. For any other module name it has no opinion. After firing it
// stays registered but permanently inert, so reloads and repeated Load calls
// never re-apply the patch.
//
// State machine: watching -> (matching load) -> applied (terminal).
type deferredPatch struct {
	mu      sync.Mutex
	target  string
	patch   PatchFunc
	applied bool
}

// ModuleLoaded implements LoadHook.
func (d *deferredPatch) ModuleLoaded(m *Module) error {
	d.mu.Lock()
	if d.applied || m.Name != d.target {
		d.mu.Unlock()
		return nil
	}
	d.applied = true
	patch := d.patch
	d.patch = nil // registration is discarded once fired
	d.mu.Unlock()

	return patch(m)
}

// Defer registers patch to run when the named module first loads.
// At most one deferred patch exists per module name: repeated calls for the
// same name (re-initialization) are no-ops. If the module is already loaded
// the patch runs immediately.
func (r *Resolver) Defer(name string, patch PatchFunc) error {
	r.mu.Lock()
	if r.deferred[name] {
		r.mu.Unlock()
		return nil
	}
	r.deferred[name] = true
	if m, ok := r.loaded[name]; ok {
		r.mu.Unlock()
		return patch(m)
	}
	hook := &deferredPatch{target: name, patch: patch}
	r.hooks = append(r.hooks, hook)
	r.mu.Unlock()
	return nil
}
