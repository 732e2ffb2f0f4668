package memlib

import (
	"testing"

	"github.com/aretw0/splint/pkg/ports"
	"github.com/aretw0/splint/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredicateContract(t *testing.T) {
	ports.RunRelationPredicateContract(t, NewPredicate())
}

func TestPredicateSubsumption(t *testing.T) {
	p := NewPredicate()

	float := schema.Float()
	intT := schema.Int()
	floats := schema.Slice(schema.Float())
	union := schema.Union(schema.Float(), schema.Slice(schema.Float()))

	tests := []struct {
		name string
		a, b schema.Type
		want bool
	}{
		{"same type", float, float, true},
		{"int widens to float", intT, float, true},
		{"float does not narrow to int", float, intT, false},
		{"slice covariance", schema.Slice(intT), floats, true},
		{"scalar is not a slice", float, floats, false},
		{"member of union", float, union, true},
		{"list member of union", floats, union, true},
		{"string outside union", schema.String(), union, false},
		{"union into covering union", schema.Union(schema.Int(), schema.Float()), float, true},
		{"union with stray member", schema.Union(schema.Float(), schema.String()), float, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Related(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPredicateRejectsNonTypeSecondArgument(t *testing.T) {
	_, err := NewPredicate().Related(schema.Float(), "not a type")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "second argument must be a type")
}
