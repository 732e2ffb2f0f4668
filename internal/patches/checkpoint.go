package patches

import (
	"log/slog"

	"github.com/aretw0/splint/pkg/domain"
	"github.com/aretw0/splint/pkg/modules"
	"github.com/aretw0/splint/pkg/ports"
)

// trustAdapter supplies a default trust flag when the caller omits one.
// Checkpoints produced by older tooling predate restricted deserialization,
// so the compatible default is the permissive legacy mode (trust=false).
// Everything else the caller supplied is forwarded untouched.
type trustAdapter struct {
	next   ports.CheckpointLoader
	logger *slog.Logger
	hooks  domain.Hooks
}

// NewTrustAdapter wraps the checkpoint loader with trust-flag injection.
func NewTrustAdapter(next ports.CheckpointLoader, logger *slog.Logger, hooks domain.Hooks) ports.CheckpointLoader {
	return &trustAdapter{next: next, logger: logger, hooks: hooks}
}

func (a *trustAdapter) Load(source string, opts ports.CheckpointOptions) (*domain.Checkpoint, error) {
	if _, ok := opts[ports.OptTrust]; !ok {
		opts = opts.Clone()
		opts[ports.OptTrust] = false
		a.logger.Debug("injected legacy trust flag", "source", source)
		a.hooks.EmitFallback(domain.NewFallbackEvent(
			domain.TargetLoadCheckpoint, domain.DecisionPassThrough, "default_trust_flag", nil))
	}
	return a.next.Load(source, opts)
}

// RegisterTrustedType registers typeName with the module's allow-list
// registrar, if the installed library version has one. The registrar is
// feature-detected on the "allowlist" export first, then on the loader
// itself; absence is logged and ignored, never fatal.
func RegisterTrustedType(m *modules.Module, typeName string, logger *slog.Logger) {
	reg, ok := m.Export("allowlist").(ports.AllowlistRegistrar)
	if !ok {
		reg, ok = m.Export("load").(ports.AllowlistRegistrar)
	}
	if !ok {
		logger.Warn("checkpoint module has no allow-list registrar, skipping",
			"module", m.Name, "type", typeName)
		return
	}
	if err := reg.RegisterTrustedType(typeName); err != nil {
		logger.Warn("could not register trusted type", "type", typeName, "err", err)
		return
	}
	logger.Info("registered trusted type for restricted deserialization", "type", typeName)
}
