// Package patches implements the interception wrappers Splint installs over
// the capability bindings: the predicate guard, the deserialization fallback,
// the config load retry, and the checkpoint trust adapter.
//
// Every wrapper recovers only the specific, narrowly-classified failure it
// was designed for; anything else is returned unchanged so the external
// library's original failure semantics survive the shim.
package patches

// Patch IDs recorded in the binding registry. One wrapper per ID per target,
// ever; re-initialization sees the marker and skips.
const (
	IDGuard    = "splint.predicate_guard"
	IDFallback = "splint.deserialize_fallback"
	IDRetry    = "splint.config_load_retry"
	IDTrust    = "splint.checkpoint_trust"
)
