// Package schema models the declared-type system of configuration fields.
//
// It defines a simple type algebra with built-in scalars (string, int, float,
// bool), slices, and unions. Declarations map field names to types, enabling
// runtime validation of configuration documents:
//
//	decls := schema.Schema{
//	    "sample_rate": schema.Int(),
//	    "temperature": schema.Union(schema.Float(), schema.Slice(schema.Float())),
//	    "speakers":    schema.Slice(schema.String()),
//	}
//
// Types can also be parsed from declaration strings, including union syntax:
//
//	t, err := schema.ParseType("float | [float]")
//
// Newer library versions declare field types this package's older consumers
// do not understand; the inspection helpers (IsType, IsNumericScalar,
// IsScalarOrListUnion) exist so the shim can reason about such declarations
// without trusting the consumer to.
//
// This package is designed to be library-agnostic, with zero external
// dependencies beyond the Go standard library.
package schema
