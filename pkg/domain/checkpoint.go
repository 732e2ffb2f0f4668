package domain

// Checkpoint is the blob returned by the checkpoint-loading capability.
// Payload layout is owned by the external library; Splint forwards it opaquely.
type Checkpoint struct {
	// Source is the path or URI the checkpoint was loaded from.
	Source string `json:"source"`

	// TypeName is the declared type of the serialized root object.
	// Restricted deserialization modes refuse type names outside the allow-list.
	TypeName string `json:"type_name"`

	// Tensors holds the named weight arrays.
	Tensors map[string][]float64 `json:"tensors,omitempty"`

	// Metadata allows for extensible key-value pairs.
	Metadata map[string]string `json:"metadata,omitempty"`
}
