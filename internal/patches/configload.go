package patches

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/splint/internal/classify"
	"github.com/aretw0/splint/pkg/domain"
	"github.com/aretw0/splint/pkg/ports"
	"github.com/aretw0/splint/pkg/registry"
)

// retryLoader wraps the top-level config loader. When a load fails with a
// field-type mismatch, it re-reads the raw document and populates an empty
// canonical config object field by field, so every assignment routes through
// the patched deserializer instead of the library's internal one.
type retryLoader struct {
	next     ports.ConfigLoader
	docs     ports.DocumentSource
	factory  ports.ConfigFactory
	bindings *registry.Bindings
	logger   *slog.Logger
	hooks    domain.Hooks
}

// NewRetryLoader wraps the config loader with the manual reload fallback.
func NewRetryLoader(
	next ports.ConfigLoader,
	docs ports.DocumentSource,
	factory ports.ConfigFactory,
	bindings *registry.Bindings,
	logger *slog.Logger,
	hooks domain.Hooks,
) ports.ConfigLoader {
	return &retryLoader{
		next:     next,
		docs:     docs,
		factory:  factory,
		bindings: bindings,
		logger:   logger,
		hooks:    hooks,
	}
}

func (l *retryLoader) Load(path string) (ports.Config, error) {
	cfg, err := l.next.Load(path)
	if err == nil {
		return cfg, nil
	}

	// The library populates through its own internal deserializer, so both
	// failure classes the field patch recovers have to be caught again here.
	var reason string
	switch {
	case classify.FieldMismatch(err):
		reason = "field_type_mismatch"
	case classify.NotAType(err):
		reason = "non_type_declaration"
	default:
		return cfg, err
	}

	deser := l.patchedDeserializer()
	if deser == nil || l.factory == nil || l.docs == nil {
		// The deserialization fallback and the config object model are
		// preconditions for the manual path; without them the reload
		// would fail identically.
		return nil, err
	}

	l.logger.Warn("config load failed on a recoverable field failure, reloading manually",
		"path", path, "reason", reason, "err", err)
	l.hooks.EmitFallback(domain.NewFallbackEvent(
		domain.TargetLoadConfig, domain.DecisionRetry, reason, err))

	// There is no further fallback tier: failures here propagate.
	doc, derr := l.docs.GetDocument(path)
	if derr != nil {
		return nil, fmt.Errorf("manual config reload %s: %w", path, derr)
	}

	fresh := l.factory.NewConfig()
	if perr := fresh.Populate(doc, deser); perr != nil {
		return nil, fmt.Errorf("manual config reload %s: %w", path, perr)
	}
	return fresh, nil
}

// patchedDeserializer resolves the deserializer binding at call time, so the
// manual path always sees the current (patched) implementation. Returns nil
// when the fallback patch is not installed.
func (l *retryLoader) patchedDeserializer() ports.FieldDeserializer {
	name := domain.TargetDeserialize.String()
	if !l.bindings.Patched(name, IDFallback) {
		return nil
	}
	v, ok := l.bindings.Resolve(name)
	if !ok {
		return nil
	}
	d, ok := v.(ports.FieldDeserializer)
	if !ok {
		return nil
	}
	return d
}
