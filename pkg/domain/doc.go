/*
Package domain contains the core domain models for the Splint shim.

It defines the entities the patching subsystem reasons about: patch targets,
fallback decisions, and the lifecycle events emitted while patches are applied.
This package is kept pure and free of external dependencies like I/O or
library adapters, following Hexagonal Architecture principles.

# Key Entities

  - PatchTarget: Identifies a capability binding to intercept (module + attribute).
  - FallbackDecision: The outcome of classifying a failure from an intercepted call.
  - Hooks: Callbacks for observing patch application and fallback coercion.
  - Checkpoint: The blob returned by the checkpoint-loading capability.
*/
package domain
