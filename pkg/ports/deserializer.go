package ports

// FieldDeserializer coerces a single raw value against a declared field type.
type FieldDeserializer interface {
	// Deserialize returns the coerced value, or an error when the value
	// does not match the declaration or the declaration is not a type.
	// The upstream libraries expose no structured error kinds; callers
	// classify failures by message text.
	Deserialize(value, declared any) (any, error)
}

// DeserializeFunc adapts a plain function to the FieldDeserializer interface.
type DeserializeFunc func(value, declared any) (any, error)

func (f DeserializeFunc) Deserialize(value, declared any) (any, error) {
	return f(value, declared)
}
