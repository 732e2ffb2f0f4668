package domain

// PatchTarget identifies a capability binding to intercept: the owning
// module name plus the exported attribute name.
type PatchTarget struct {
	Module string `json:"module"`
	Attr   string `json:"attr"`
}

// String returns the binding key in "module.attr" form.
func (t PatchTarget) String() string {
	return t.Module + "." + t.Attr
}

// The fixed set of compatibility-sensitive call sites Splint knows how to
// intercept. These are binding keys, not Go symbols: the host publishes the
// real implementations under these names via the module resolver.
var (
	// TargetRelated is the type-relationship predicate ("is A a subtype of B").
	TargetRelated = PatchTarget{Module: "typesys", Attr: "related"}

	// TargetDeserialize is the single-value schema field deserializer.
	TargetDeserialize = PatchTarget{Module: "fields", Attr: "deserialize"}

	// TargetLoadConfig is the top-level configuration loading entry point.
	TargetLoadConfig = PatchTarget{Module: "config", Attr: "load"}

	// TargetLoadCheckpoint is the tensor-checkpoint loading entry point.
	TargetLoadCheckpoint = PatchTarget{Module: "checkpoint", Attr: "load"}
)

// FallbackDecision is the outcome of inspecting a failure from an
// intercepted call. It is computed purely from the failure's classification
// and the call's original arguments.
type FallbackDecision int

const (
	// DecisionPropagate re-raises the original failure unchanged.
	DecisionPropagate FallbackDecision = iota
	// DecisionPassThrough returns the original value unchanged.
	DecisionPassThrough
	// DecisionRetry retries the call through an alternate path
	// (the manual config reload).
	DecisionRetry
)

func (d FallbackDecision) String() string {
	switch d {
	case DecisionPassThrough:
		return "pass_through"
	case DecisionRetry:
		return "retry"
	default:
		return "propagate"
	}
}
