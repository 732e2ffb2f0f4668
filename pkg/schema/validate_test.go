package schema

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	s := Schema{
		"model_name":  String(),
		"sample_rate": Int(),
		"temperature": Union(Float(), Slice(Float())),
	}

	t.Run("conforming data passes", func(t *testing.T) {
		err := Validate(s, map[string]any{
			"model_name":  "demo",
			"sample_rate": 22050,
			"temperature": 0.65,
		})
		if err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("undeclared fields are ignored", func(t *testing.T) {
		err := Validate(s, map[string]any{
			"model_name": "demo",
			"new_knob":   []any{1, 2, 3},
		})
		if err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("missing fields are not errors", func(t *testing.T) {
		if err := Validate(s, map[string]any{}); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("all failures are aggregated", func(t *testing.T) {
		err := Validate(s, map[string]any{
			"model_name":  42,
			"sample_rate": "fast",
		})
		if err == nil {
			t.Fatal("Validate() = nil, want error")
		}
		var agg *AggregateError
		if !errors.As(err, &agg) {
			t.Fatalf("Validate() error type = %T, want *AggregateError", err)
		}
		if len(agg.Errors) != 2 {
			t.Errorf("len(Errors) = %d, want 2", len(agg.Errors))
		}
	})

	t.Run("empty schema validates anything", func(t *testing.T) {
		if err := Validate(nil, map[string]any{"x": struct{}{}}); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})
}
