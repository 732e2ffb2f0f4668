package ports

import "github.com/aretw0/splint/pkg/domain"

// Well-known checkpoint option keys.
const (
	// OptMapLocation remaps tensor placement ("cpu", "cuda:0", ...).
	OptMapLocation = "map_location"

	// OptTrust selects the deserialization mode: true restricts reconstruction
	// to allow-listed types, false is the permissive legacy mode.
	OptTrust = "trust"
)

// CheckpointOptions carries the caller-supplied loading options.
// Absence of a key is meaningful: the shim only injects defaults for keys
// the caller did not set.
type CheckpointOptions map[string]any

// Clone returns a shallow copy, never nil.
func (o CheckpointOptions) Clone() CheckpointOptions {
	out := make(CheckpointOptions, len(o)+1)
	for k, v := range o {
		out[k] = v
	}
	return out
}

// CheckpointLoader is the tensor-checkpoint loading entry point.
type CheckpointLoader interface {
	Load(source string, opts CheckpointOptions) (*domain.Checkpoint, error)
}

// AllowlistRegistrar is the optional secure-deserialization allow-list
// capability. Older library versions do not provide it; feature-detect with
// a type assertion and treat absence as a warning, not an error.
type AllowlistRegistrar interface {
	RegisterTrustedType(typeName string) error
}
