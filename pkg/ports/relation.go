package ports

// RelationPredicate answers binary type-relationship queries.
type RelationPredicate interface {
	// Related reports whether type a is a subtype of type b.
	// Implementations return an error when the first argument is not a
	// type value; the error text is the only classification signal.
	Related(a, b any) (bool, error)
}

// RelationFunc adapts a plain function to the RelationPredicate interface.
type RelationFunc func(a, b any) (bool, error)

func (f RelationFunc) Related(a, b any) (bool, error) {
	return f(a, b)
}
