package memlib

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aretw0/splint/pkg/schema"
)

// Deserializer implements ports.FieldDeserializer at the pinned library
// version: scalar and slice declarations work, union declarations postdate
// it and are rejected wholesale.
type Deserializer struct{}

// NewDeserializer creates the field deserializer.
func NewDeserializer() *Deserializer {
	return &Deserializer{}
}

// Deserialize coerces value against the declared field type.
func (d *Deserializer) Deserialize(value, declared any) (any, error) {
	t, ok := declared.(schema.Type)
	if !ok {
		// Internally the declaration is the first argument of a subtype
		// query; the message wording is part of the observable contract.
		return nil, fmt.Errorf("deserialize: first argument must be a type, got %T", declared)
	}

	if _, ok := t.(*schema.UnionType); ok {
		// Union declarations are newer than this deserializer.
		return nil, mismatchErr(value, t)
	}

	if err := t.Validate(value); err != nil {
		return nil, mismatchErr(value, t)
	}
	return coerce(value, t), nil
}

func mismatchErr(value any, t schema.Type) error {
	return fmt.Errorf("deserialize: value %v (%T) does not match field type %s", value, value, t.Name())
}

// coerce normalizes validated values: json.Number collapses to the declared
// numeric kind, everything else passes through.
func coerce(value any, t schema.Type) any {
	switch t.(type) {
	case *schema.IntType:
		if n, ok := value.(json.Number); ok {
			if i, err := n.Int64(); err == nil {
				return i
			}
		}
	case *schema.FloatType:
		if n, ok := value.(json.Number); ok {
			if f, err := strconv.ParseFloat(n.String(), 64); err == nil {
				return f
			}
		}
	case *schema.SliceType:
		if items, ok := value.([]any); ok {
			out := make([]any, len(items))
			for i, item := range items {
				out[i] = coerce(item, t.(*schema.SliceType).Elem())
			}
			return out
		}
	}
	return value
}
