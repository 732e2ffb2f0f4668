package memlib

import (
	"fmt"

	"github.com/aretw0/splint/pkg/schema"
)

// Predicate implements ports.RelationPredicate over schema type declarations.
type Predicate struct{}

// NewPredicate creates the type-relationship predicate.
func NewPredicate() *Predicate {
	return &Predicate{}
}

// Related reports whether a is a subtype of b.
// Both arguments must be type values; a non-type first argument is an error,
// not a false answer — that quirk is exactly what the predicate guard wraps.
func (p *Predicate) Related(a, b any) (bool, error) {
	at, ok := a.(schema.Type)
	if !ok {
		return false, fmt.Errorf("related: first argument must be a type, got %T", a)
	}
	bt, ok := b.(schema.Type)
	if !ok {
		return false, fmt.Errorf("related: second argument must be a type, got %T", b)
	}
	return subsumes(bt, at), nil
}

// subsumes reports whether every value of inner is a value of outer.
func subsumes(outer, inner schema.Type) bool {
	if outer.Name() == inner.Name() {
		return true
	}

	// Every member of an inner union must fit.
	if u, ok := inner.(*schema.UnionType); ok {
		for _, m := range u.Members() {
			if !subsumes(outer, m) {
				return false
			}
		}
		return true
	}

	switch o := outer.(type) {
	case *schema.FloatType:
		// Numeric widening: int values are acceptable floats.
		_, isInt := inner.(*schema.IntType)
		return isInt
	case *schema.SliceType:
		i, ok := inner.(*schema.SliceType)
		return ok && subsumes(o.Elem(), i.Elem())
	case *schema.UnionType:
		for _, m := range o.Members() {
			if subsumes(m, inner) {
				return true
			}
		}
	}
	return false
}
