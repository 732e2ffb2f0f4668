package patches

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/splint/internal/classify"
	"github.com/aretw0/splint/pkg/domain"
	"github.com/aretw0/splint/pkg/ports"
	"github.com/aretw0/splint/pkg/schema"
)

// fallbackDeserializer degrades recognized "incompatible declared type"
// failures to "accept the raw value unchanged". Across version skew, field
// declarations legitimately include shapes the installed deserializer does
// not understand yet; permissive deserialization beats aborting the whole
// config load.
type fallbackDeserializer struct {
	next   ports.FieldDeserializer
	logger *slog.Logger
	hooks  domain.Hooks
}

// NewFallbackDeserializer wraps the field deserializer with the pass-through
// fallback policy.
func NewFallbackDeserializer(next ports.FieldDeserializer, logger *slog.Logger, hooks domain.Hooks) ports.FieldDeserializer {
	return &fallbackDeserializer{next: next, logger: logger, hooks: hooks}
}

func (f *fallbackDeserializer) Deserialize(value, declared any) (any, error) {
	out, err := f.next.Deserialize(value, declared)
	if err == nil {
		return out, nil
	}

	switch {
	case classify.NotAType(err):
		if schema.IsType(declared) {
			return nil, err
		}
		// The declaration is not a type value; nothing to coerce against.
		return f.passThrough(value, "non_type_declaration", err), nil

	case classify.FieldMismatch(err):
		if isScalarForUnion(value, declared, err) {
			// A config declaring "float | [float]" holding a bare scalar.
			return f.passThrough(value, "scalar_for_union", err), nil
		}
		// Last-resort permissive fallback for any other field-type mismatch.
		return f.passThrough(value, "field_type_mismatch", err), nil

	default:
		return nil, err
	}
}

func (f *fallbackDeserializer) passThrough(value any, reason string, cause error) any {
	f.logger.Warn("deserialization fallback: accepting raw value",
		"reason", reason,
		"value_type", typeName(value),
		"err", cause,
	)
	f.hooks.EmitFallback(domain.NewFallbackEvent(
		domain.TargetDeserialize, domain.DecisionPassThrough, reason, cause))
	return value
}

// isScalarForUnion reports whether this mismatch is the scalar-or-list union
// case. The declared type is inspected structurally when it is a real type
// value; otherwise the failure message is the only signal left.
func isScalarForUnion(value, declared any, err error) bool {
	if !schema.IsNumericScalar(value) {
		return false
	}
	if t, ok := declared.(schema.Type); ok {
		return schema.IsScalarOrListUnion(t)
	}
	return classify.MentionsScalarOrListUnion(err)
}

func typeName(v any) string {
	if t, ok := v.(schema.Type); ok {
		return t.Name()
	}
	return fmt.Sprintf("%T", v)
}
