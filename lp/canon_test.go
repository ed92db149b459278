package lp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeSlackAndExcess(t *testing.T) {
	vars := []Variable{{Name: "x1"}, {Name: "x2"}}
	constraints := []Constraint{
		{Name: "c1", Terms: []Term{{Variable: "x1", Coefficient: 2}, {Variable: "x2", Coefficient: 1}}, Constant: 4, Relation: LE},
		{Name: "c2", Terms: []Term{{Variable: "x1", Coefficient: 1}, {Variable: "x2", Coefficient: 3}}, Constant: 6, Relation: GE},
	}
	obj := &Objective{Name: "z", Terms: []Term{{Variable: "x1", Coefficient: -1}, {Variable: "x2", Coefficient: -1}}, Sense: Maximize}

	out, err := Canonicalize(vars, constraints, obj)
	require.NoError(t, err)

	assert.Equal(t, []string{"x1", "x2", "slack_0", "excess_0"}, out.VariableNames)
	assert.Equal(t, 1, out.NumSlack)
	assert.Equal(t, 1, out.NumExcess)
	assert.Equal(t, 2, out.NumAuxiliary())

	assert.Equal(t, []float64{2, 1, 1, 0}, out.A[0])
	assert.Equal(t, []float64{1, 3, 0, -1}, out.A[1])
	assert.Equal(t, []float64{4, 6}, out.B)
	assert.Equal(t, []float64{-1, -1, 0, 0}, out.C)
}

func TestCanonicalizeAuxiliaryOrderingTwoPass(t *testing.T) {
	vars := []Variable{{Name: "x"}}
	constraints := []Constraint{
		{Name: "c1", Terms: []Term{{Variable: "x", Coefficient: 1}}, Constant: 1, Relation: GE},
		{Name: "c2", Terms: []Term{{Variable: "x", Coefficient: 1}}, Constant: 2, Relation: LE},
	}
	obj := &Objective{Name: "z", Terms: []Term{{Variable: "x", Coefficient: 1}}, Sense: Minimize}

	out, err := Canonicalize(vars, constraints, obj)
	require.NoError(t, err)

	// Slacks are appended before excesses regardless of constraint order.
	assert.Equal(t, []string{"x", "slack_0", "excess_0"}, out.VariableNames)
}

func TestCanonicalizeDuplicateVariableFirstWins(t *testing.T) {
	vars := []Variable{{Name: "x"}, {Name: "x"}, {Name: "y"}}
	obj := &Objective{Name: "z", Terms: []Term{{Variable: "x", Coefficient: 1}}, Sense: Minimize}

	out, err := Canonicalize(vars, nil, obj)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, out.VariableNames)
}

func TestCanonicalizeUnknownVariable(t *testing.T) {
	vars := []Variable{{Name: "x"}}
	constraints := []Constraint{
		{Name: "c1", Terms: []Term{{Variable: "ghost", Coefficient: 1}}, Constant: 1, Relation: LE},
	}
	obj := &Objective{Name: "z", Terms: []Term{{Variable: "x", Coefficient: 1}}, Sense: Minimize}

	_, err := Canonicalize(vars, constraints, obj)
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrUnknownVariable))
}

func TestCanonicalizeMissingObjective(t *testing.T) {
	_, err := Canonicalize([]Variable{{Name: "x"}}, nil, nil)
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrMissingObjective))
}
