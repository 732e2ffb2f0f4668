package patches

import (
	"log/slog"

	"github.com/aretw0/splint/internal/classify"
	"github.com/aretw0/splint/pkg/domain"
	"github.com/aretw0/splint/pkg/ports"
	"github.com/aretw0/splint/pkg/schema"
)

// guard hardens the type-relationship predicate against non-type first
// arguments. Some library versions query relationships with field values
// where types belong; the relationship trivially does not hold.
type guard struct {
	next   ports.RelationPredicate
	logger *slog.Logger
	hooks  domain.Hooks
}

// NewGuard wraps the relation predicate with the non-type-argument guard.
func NewGuard(next ports.RelationPredicate, logger *slog.Logger, hooks domain.Hooks) ports.RelationPredicate {
	return &guard{next: next, logger: logger, hooks: hooks}
}

func (g *guard) Related(a, b any) (bool, error) {
	ok, err := g.next.Related(a, b)
	if err == nil || !classify.NotAType(err) {
		return ok, err
	}
	if schema.IsType(a) {
		// The first argument really is a type, so this is a genuine
		// library defect, not the known false-argument case.
		return ok, err
	}

	g.logger.Debug("relation query on non-type value", "value_type", typeName(a), "err", err)
	g.hooks.EmitFallback(domain.NewFallbackEvent(
		domain.TargetRelated, domain.DecisionPassThrough, "non_type_argument", err))
	return false, nil
}
