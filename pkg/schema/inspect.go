package schema

import (
	"encoding/json"
	"strconv"
)

// IsType reports whether v is an actual type declaration.
// Drifting libraries ship field declarations that are not types at all
// (e.g. the raw declaration string); this is how callers tell them apart.
func IsType(v any) bool {
	_, ok := v.(Type)
	return ok
}

// IsNumericScalar reports whether v is a bare numeric scalar.
// json.Number is included: strict document decoding preserves numbers
// as json.Number rather than float64.
func IsNumericScalar(v any) bool {
	_, ok := numericValue(v)
	return ok
}

// IsScalarOrListUnion reports whether t is a union combining a numeric
// scalar with a sequence of numeric scalars (the "float | [float]" shape).
func IsScalarOrListUnion(t Type) bool {
	u, ok := t.(*UnionType)
	if !ok {
		return false
	}
	var hasScalar, hasList bool
	for _, m := range u.Members() {
		switch mt := m.(type) {
		case *FloatType, *IntType:
			hasScalar = true
		case *SliceType:
			switch mt.Elem().(type) {
			case *FloatType, *IntType:
				hasList = true
			}
		}
	}
	return hasScalar && hasList
}

// numericValue extracts a float64 from any numeric representation.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
