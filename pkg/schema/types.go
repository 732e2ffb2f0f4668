package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// Type defines the contract for field type declarations.
// Implementations determine how values are validated against a declaration.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "float", "[float]").
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// --- Built-in Type Implementations ---

// StringType validates string values.
type StringType struct{}

func (t *StringType) Name() string { return "string" }

func (t *StringType) Validate(value any) error {
	if _, ok := value.(string); !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	return nil
}

// IntType validates integer values.
type IntType struct{}

func (t *IntType) Name() string { return "int" }

func (t *IntType) Validate(value any) error {
	switch v := value.(type) {
	case int, int8, int16, int32, int64:
		return nil
	case float64:
		// Accept floats that are whole numbers (from JSON unmarshaling)
		if v == float64(int64(v)) {
			return nil
		}
		return fmt.Errorf("expected int, got float (not a whole number)")
	default:
		if n, ok := numericValue(value); ok {
			if n == float64(int64(n)) {
				return nil
			}
			return fmt.Errorf("expected int, got float (not a whole number)")
		}
		return fmt.Errorf("expected int, got %T", value)
	}
}

// FloatType validates floating-point values. Integers widen to float.
type FloatType struct{}

func (t *FloatType) Name() string { return "float" }

func (t *FloatType) Validate(value any) error {
	if _, ok := numericValue(value); !ok {
		return fmt.Errorf("expected float, got %T", value)
	}
	return nil
}

// BoolType validates boolean values.
type BoolType struct{}

func (t *BoolType) Name() string { return "bool" }

func (t *BoolType) Validate(value any) error {
	if _, ok := value.(bool); !ok {
		return fmt.Errorf("expected bool, got %T", value)
	}
	return nil
}

// SliceType validates slices of a specific element type.
type SliceType struct {
	elemType Type
}

func (t *SliceType) Name() string {
	return fmt.Sprintf("[%s]", t.elemType.Name())
}

// Elem returns the element type of the slice declaration.
func (t *SliceType) Elem() Type { return t.elemType }

func (t *SliceType) Validate(value any) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Errorf("expected slice, got %T", value)
	}

	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		if err := t.elemType.Validate(elem); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// UnionType accepts a value conforming to any of its member types.
// Field declarations like "float | [float]" produce unions.
type UnionType struct {
	members []Type
}

func (t *UnionType) Name() string {
	names := make([]string, len(t.members))
	for i, m := range t.members {
		names[i] = m.Name()
	}
	return strings.Join(names, " | ")
}

// Members returns the member types in declaration order.
func (t *UnionType) Members() []Type { return t.members }

func (t *UnionType) Validate(value any) error {
	for _, m := range t.members {
		if m.Validate(value) == nil {
			return nil
		}
	}
	return fmt.Errorf("value of type %T matches no member of %s", value, t.Name())
}

// CustomType applies a user-defined validation function.
type CustomType struct {
	name     string
	validate func(any) error
}

func (t *CustomType) Name() string { return t.name }

func (t *CustomType) Validate(value any) error {
	return t.validate(value)
}

// --- Factory Functions ---

// String creates a string type declaration.
func String() Type { return &StringType{} }

// Int creates an integer type declaration.
func Int() Type { return &IntType{} }

// Float creates a float type declaration.
func Float() Type { return &FloatType{} }

// Bool creates a boolean type declaration.
func Bool() Type { return &BoolType{} }

// Slice creates a slice declaration for elements of the given type.
func Slice(elemType Type) Type {
	return &SliceType{elemType: elemType}
}

// Union creates a union declaration over the given member types.
func Union(members ...Type) Type {
	return &UnionType{members: members}
}

// Custom creates a custom declaration with a user-defined validator.
func Custom(name string, validate func(any) error) Type {
	return &CustomType{name: name, validate: validate}
}

// ParseType converts a declaration string to a Type.
// Supports scalars ("string", "int", "float", "bool"), slices ("[float]"),
// and unions ("float | [float]").
func ParseType(typeStr string) (Type, error) {
	typeStr = strings.TrimSpace(typeStr)

	// Unions bind loosest: split on top-level "|".
	if strings.Contains(typeStr, "|") {
		parts := strings.Split(typeStr, "|")
		members := make([]Type, 0, len(parts))
		for _, p := range parts {
			m, err := ParseType(p)
			if err != nil {
				return nil, err
			}
			members = append(members, m)
		}
		return Union(members...), nil
	}

	// Slice types: [string], [float], etc.
	if len(typeStr) > 2 && typeStr[0] == '[' && typeStr[len(typeStr)-1] == ']' {
		elemType, err := ParseType(typeStr[1 : len(typeStr)-1])
		if err != nil {
			return nil, err
		}
		return Slice(elemType), nil
	}

	switch typeStr {
	case "string":
		return String(), nil
	case "int":
		return Int(), nil
	case "float":
		return Float(), nil
	case "bool":
		return Bool(), nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", typeStr)
	}
}

// ParseTypeMap converts a map of field names to declaration strings into a Schema.
// Example: {"sample_rate": "int", "temperature": "float | [float]"}
func ParseTypeMap(typeMap map[string]string) (Schema, error) {
	result := make(Schema)
	for key, typeStr := range typeMap {
		t, err := ParseType(typeStr)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		result[key] = t
	}
	return result, nil
}
