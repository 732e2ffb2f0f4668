package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventPatchApplied EventType = "patch_applied"
	EventPatchSkipped EventType = "patch_skipped"
	EventDeferred     EventType = "patch_deferred"
	EventFallback     EventType = "fallback"
)

// PatchEvent describes a patch being applied, skipped or deferred.
type PatchEvent struct {
	Timestamp time.Time   `json:"timestamp"`
	Type      EventType   `json:"type"`
	Target    PatchTarget `json:"target"`
	PatchID   string      `json:"patch_id"`
}

// FallbackEvent describes a recovered failure on an intercepted call.
type FallbackEvent struct {
	Timestamp time.Time        `json:"timestamp"`
	Target    PatchTarget      `json:"target"`
	Decision  FallbackDecision `json:"decision"`
	// Reason is the classification that produced the decision
	// (e.g. "non_type_declaration", "scalar_for_union").
	Reason string `json:"reason"`
	// Cause is the original failure. Never nil for Decision != DecisionPropagate.
	Cause error `json:"-"`
}

// Hooks defines callbacks for shim observability.
// All fields are optional; nil hooks are skipped.
type Hooks struct {
	OnPatchApplied func(*PatchEvent)
	OnPatchSkipped func(*PatchEvent)
	OnDeferred     func(*PatchEvent)
	OnFallback     func(*FallbackEvent)
}

// EmitPatch fires the hook matching the event type, if set.
func (h Hooks) EmitPatch(e *PatchEvent) {
	switch e.Type {
	case EventPatchApplied:
		if h.OnPatchApplied != nil {
			h.OnPatchApplied(e)
		}
	case EventPatchSkipped:
		if h.OnPatchSkipped != nil {
			h.OnPatchSkipped(e)
		}
	case EventDeferred:
		if h.OnDeferred != nil {
			h.OnDeferred(e)
		}
	}
}

// EmitFallback fires OnFallback, if set.
func (h Hooks) EmitFallback(e *FallbackEvent) {
	if h.OnFallback != nil {
		h.OnFallback(e)
	}
}

// NewPatchEvent builds a timestamped patch event.
func NewPatchEvent(typ EventType, target PatchTarget, patchID string) *PatchEvent {
	return &PatchEvent{
		Timestamp: time.Now(),
		Type:      typ,
		Target:    target,
		PatchID:   patchID,
	}
}

// NewFallbackEvent builds a timestamped fallback event.
func NewFallbackEvent(target PatchTarget, decision FallbackDecision, reason string, cause error) *FallbackEvent {
	return &FallbackEvent{
		Timestamp: time.Now(),
		Target:    target,
		Decision:  decision,
		Reason:    reason,
		Cause:     cause,
	}
}
