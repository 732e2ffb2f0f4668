package splint

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/splint/internal/patches"
	"github.com/aretw0/splint/pkg/adapters/file"
	"github.com/aretw0/splint/pkg/domain"
	"github.com/aretw0/splint/pkg/modules"
	"github.com/aretw0/splint/pkg/ports"
	"github.com/aretw0/splint/pkg/registry"
)

// Version is the library version reported by the CLI.
const Version = "0.3.1"

// DefaultTrustedType is the config type name registered with the
// secure-deserialization allow-list. Checkpoints serialize their config
// object under this name.
const DefaultTrustedType = "model_config"

// Shim is the high-level entry point for the Splint library.
// It owns no business state; it only installs wrappers over the capability
// bindings published through the module resolver.
type Shim struct {
	resolver    *modules.Resolver
	bindings    *registry.Bindings
	docs        ports.DocumentSource
	hooks       domain.Hooks
	logger      *slog.Logger
	trustedType string
}

// Option defines a functional option for configuring the Shim.
type Option func(*Shim)

// WithLogger sets a custom structured logger for the shim.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shim) {
		s.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(s *Shim) {
		s.hooks = hooks
	}
}

// WithDocumentSource injects the document reader used by the manual config
// reload path, bypassing the default filesystem source.
func WithDocumentSource(docs ports.DocumentSource) Option {
	return func(s *Shim) {
		s.docs = docs
	}
}

// WithTrustedType overrides the config type name registered with the
// allow-list (default: DefaultTrustedType).
func WithTrustedType(name string) Option {
	return func(s *Shim) {
		s.trustedType = name
	}
}

// New creates a Shim over the given resolver's bindings.
func New(resolver *modules.Resolver, opts ...Option) *Shim {
	s := &Shim{
		resolver:    resolver,
		bindings:    resolver.Bindings(),
		trustedType: DefaultTrustedType,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Ensure logger is initialized (so we don't pass nil down to the patches)
	if s.logger == nil {
		s.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if s.docs == nil {
		s.docs = file.New()
	}

	return s
}

// Apply installs all compatibility patches. It is the single initialization
// pass: the predicate guard and the deserialization fallback are applied
// eagerly (their modules must already be loaded), while the config and
// checkpoint patches apply eagerly when possible and otherwise defer until
// the host loads those modules. Apply is idempotent.
func (s *Shim) Apply() error {
	if err := s.applyGuard(); err != nil {
		return err
	}
	if err := s.applyFallback(); err != nil {
		return err
	}
	if err := s.applyOrDefer(domain.TargetLoadConfig, s.patchConfigModule); err != nil {
		return err
	}
	if err := s.applyOrDefer(domain.TargetLoadCheckpoint, s.patchCheckpointModule); err != nil {
		return err
	}
	return nil
}

// Bindings exposes the underlying binding registry for callers that resolve
// capabilities through the shim.
func (s *Shim) Bindings() *registry.Bindings {
	return s.bindings
}

func (s *Shim) applyGuard() error {
	target := domain.TargetRelated
	applied, err := s.bindings.Wrap(target.String(), patches.IDGuard, func(orig any) (any, error) {
		p, ok := orig.(ports.RelationPredicate)
		if !ok {
			return nil, fmt.Errorf("binding %s is not a relation predicate (got %T)", target, orig)
		}
		return patches.NewGuard(p, s.logger, s.hooks), nil
	})
	s.report(target, patches.IDGuard, applied, err)
	return err
}

func (s *Shim) applyFallback() error {
	target := domain.TargetDeserialize
	applied, err := s.bindings.Wrap(target.String(), patches.IDFallback, func(orig any) (any, error) {
		d, ok := orig.(ports.FieldDeserializer)
		if !ok {
			return nil, fmt.Errorf("binding %s is not a field deserializer (got %T)", target, orig)
		}
		return patches.NewFallbackDeserializer(d, s.logger, s.hooks), nil
	})
	s.report(target, patches.IDFallback, applied, err)
	return err
}

// applyOrDefer patches the target's module now when it is already loaded,
// and otherwise registers a deferred patch with the resolver.
func (s *Shim) applyOrDefer(target domain.PatchTarget, patch modules.PatchFunc) error {
	if s.resolver.Loaded(target.Module) {
		return patch(s.resolver.Module(target.Module))
	}
	s.logger.Info("target module not loaded yet, deferring patch", "module", target.Module)
	s.hooks.EmitPatch(domain.NewPatchEvent(domain.EventDeferred, target, ""))
	return s.resolver.Defer(target.Module, patch)
}

func (s *Shim) patchConfigModule(m *modules.Module) error {
	target := domain.TargetLoadConfig
	factory, _ := m.Export("new").(ports.ConfigFactory)
	if factory == nil {
		s.logger.Warn("config module exports no factory, manual reload disabled", "module", m.Name)
	}

	applied, err := s.bindings.Wrap(target.String(), patches.IDRetry, func(orig any) (any, error) {
		l, ok := orig.(ports.ConfigLoader)
		if !ok {
			return nil, fmt.Errorf("binding %s is not a config loader (got %T)", target, orig)
		}
		return patches.NewRetryLoader(l, s.docs, factory, s.bindings, s.logger, s.hooks), nil
	})
	s.report(target, patches.IDRetry, applied, err)
	return err
}

func (s *Shim) patchCheckpointModule(m *modules.Module) error {
	target := domain.TargetLoadCheckpoint
	applied, err := s.bindings.Wrap(target.String(), patches.IDTrust, func(orig any) (any, error) {
		l, ok := orig.(ports.CheckpointLoader)
		if !ok {
			return nil, fmt.Errorf("binding %s is not a checkpoint loader (got %T)", target, orig)
		}
		return patches.NewTrustAdapter(l, s.logger, s.hooks), nil
	})
	s.report(target, patches.IDTrust, applied, err)
	if err != nil {
		return err
	}
	if applied {
		patches.RegisterTrustedType(m, s.trustedType, s.logger)
	}
	return nil
}

func (s *Shim) report(target domain.PatchTarget, patchID string, applied bool, err error) {
	if err != nil {
		s.logger.Error("patch failed", "target", target.String(), "patch", patchID, "err", err)
		return
	}
	if applied {
		s.logger.Info("patch applied", "target", target.String(), "patch", patchID)
		s.hooks.EmitPatch(domain.NewPatchEvent(domain.EventPatchApplied, target, patchID))
		return
	}
	s.logger.Debug("patch already present, skipping", "target", target.String(), "patch", patchID)
	s.hooks.EmitPatch(domain.NewPatchEvent(domain.EventPatchSkipped, target, patchID))
}
