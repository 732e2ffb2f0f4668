package schema

import "sort"

// Schema maps field names to their declared types, e.g.
// {"sample_rate": Int(), "temperature": Union(Float(), Slice(Float()))}.
type Schema map[string]Type

// Validate checks data against the schema and reports every failure at once.
// Fields present in data but absent from the schema are ignored; drifted
// configs routinely carry fields older declarations know nothing about.
// Failures are ordered by field name so output is stable across runs.
func Validate(schema Schema, data map[string]any) error {
	if len(schema) == 0 {
		return nil
	}

	names := make([]string, 0, len(schema))
	for name := range schema {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		value, ok := data[name]
		if !ok {
			continue
		}
		if err := schema[name].Validate(value); err != nil {
			errs = append(errs, &ValidationError{
				Key:    name,
				Reason: err.Error(),
				Value:  value,
			})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
