// Package modules provides the explicit module-loading orchestration layer.
//
// Go has no import-time interception, so deferred patching is modeled as a
// registry of (module name, pending action) pairs consulted when the host
// loads a module through the Resolver. Loading a module publishes its exports
// into the binding registry and then notifies every registered observer.
package modules

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/splint/pkg/domain"
	"github.com/aretw0/splint/pkg/registry"
)

// Module is a loaded library module: a name plus its exported capabilities.
type Module struct {
	Name    string
	Exports map[string]any
}

// Export returns the named export, or nil when absent.
func (m *Module) Export(attr string) any {
	return m.Exports[attr]
}

// LoadFunc constructs a module. It runs at most once per module name.
type LoadFunc func() (*Module, error)

// LoadHook observes module loads. Implementations must ignore modules they
// have no opinion about by returning nil.
type LoadHook interface {
	ModuleLoaded(m *Module) error
}

// Resolver orchestrates module loading for the host application.
// Modules load lazily: registering a name is cheap, the LoadFunc runs on the
// first Load call, and subsequent Load calls return the cached module without
// re-running loaders or hooks.
type Resolver struct {
	mu       sync.Mutex
	bindings *registry.Bindings
	loaders  map[string]LoadFunc
	loaded   map[string]*Module
	hooks    []LoadHook
	deferred map[string]bool // module names with a pending or fired deferred patch
	logger   *slog.Logger
}

// NewResolver creates a resolver publishing into the given binding registry.
func NewResolver(bindings *registry.Bindings, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		bindings: bindings,
		loaders:  make(map[string]LoadFunc),
		loaded:   make(map[string]*Module),
		deferred: make(map[string]bool),
		logger:   logger,
	}
}

// Bindings returns the registry this resolver publishes into.
func (r *Resolver) Bindings() *registry.Bindings {
	return r.bindings
}

// Register associates a module name with its loader.
// Registering an already-loaded name is rejected; the process-wide bindings
// would silently lose their patches otherwise.
func (r *Resolver) Register(name string, load LoadFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.loaded[name]; ok {
		return fmt.Errorf("module %s already loaded", name)
	}
	r.loaders[name] = load
	return nil
}

// Observe adds a load hook consulted after every first-time module load.
func (r *Resolver) Observe(h LoadHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks = append(r.hooks, h)
}

// Loaded reports whether the module has been loaded.
func (r *Resolver) Loaded(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.loaded[name]
	return ok
}

// Module returns the loaded module, or nil.
func (r *Resolver) Module(name string) *Module {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loaded[name]
}

// Load resolves a module by name. The first call runs the registered loader,
// publishes the module's exports as "name.attr" bindings, and consults the
// load hooks. Later calls return the cached module untouched, so bindings
// patched after the first load stay patched.
func (r *Resolver) Load(name string) (*Module, error) {
	r.mu.Lock()
	if m, ok := r.loaded[name]; ok {
		r.mu.Unlock()
		return m, nil
	}
	load, ok := r.loaders[name]
	if !ok {
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", domain.ErrModuleNotRegistered, name)
	}
	r.mu.Unlock()

	m, err := load()
	if err != nil {
		return nil, fmt.Errorf("load module %s: %w", name, err)
	}
	if m.Name == "" {
		m.Name = name
	}

	r.mu.Lock()
	// A concurrent Load may have won; keep the first result.
	if cached, ok := r.loaded[name]; ok {
		r.mu.Unlock()
		return cached, nil
	}
	for attr, v := range m.Exports {
		r.bindings.Bind(name+"."+attr, v)
	}
	r.loaded[name] = m
	hooks := make([]LoadHook, len(r.hooks))
	copy(hooks, r.hooks)
	r.mu.Unlock()

	r.logger.Info("module loaded", "module", name, "exports", len(m.Exports))

	for _, h := range hooks {
		if err := h.ModuleLoaded(m); err != nil {
			return nil, fmt.Errorf("load hook for %s: %w", name, err)
		}
	}
	return m, nil
}
