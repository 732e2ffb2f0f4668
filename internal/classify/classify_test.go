package classify

import (
	"errors"
	"fmt"
	"testing"
)

// The example messages below are real renderings from the library adapters.
// If a test here starts failing after an adapter change, the adapter's
// wording drifted and classification would silently stop matching.

func TestNotAType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "predicate rendering",
			err:  errors.New("related: first argument must be a type, got float64"),
			want: true,
		},
		{
			name: "deserializer rendering",
			err:  errors.New("deserialize: first argument must be a type, got string"),
			want: true,
		},
		{
			name: "wrapped",
			err:  fmt.Errorf("field %q: %w", "length_scale", errors.New("deserialize: first argument must be a type, got string")),
			want: true,
		},
		{
			name: "second argument variant does not match",
			err:  errors.New("related: second argument must be a type, got int"),
			want: false,
		},
		{name: "unrelated", err: errors.New("connection refused"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		if got := NotAType(tt.err); got != tt.want {
			t.Errorf("%s: NotAType() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFieldMismatch(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "deserializer rendering",
			err:  errors.New("deserialize: value 0.5 (float64) does not match field type float | [float]"),
			want: true,
		},
		{
			name: "wrapped by the config loader",
			err:  fmt.Errorf("load config %s: %w", "config.json", errors.New(`field "temperature": deserialize: value 0.5 (json.Number) does not match field type float | [float]`)),
			want: true,
		},
		{
			name: "does-not-match without field type context",
			err:  errors.New("checksum does not match"),
			want: false,
		},
		{name: "unrelated", err: errors.New("no such file"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		if got := FieldMismatch(tt.err); got != tt.want {
			t.Errorf("%s: FieldMismatch() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMentionsScalarOrListUnion(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "union shape named",
			err:  errors.New("deserialize: value 0.5 (float64) does not match field type float | [float]"),
			want: true,
		},
		{
			name: "other declared type",
			err:  errors.New("deserialize: value x (string) does not match field type int"),
			want: false,
		},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		if got := MentionsScalarOrListUnion(tt.err); got != tt.want {
			t.Errorf("%s: MentionsScalarOrListUnion() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
