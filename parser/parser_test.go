package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linprog/lp"
)

func TestParseBasicProgram(t *testing.T) {
	input := `
		# a tiny two-variable program;
		var x1;
		var x2;
		maximize z: -1 * x1 + -1 * x2;
		subject to c1: 2 * x1 + x2 <= 4;
		subject to c2: x1 + 2 * x2 <= 3;
	`
	l, err := Parse(input)
	require.NoError(t, err)

	assert.Equal(t, []string{"x1", "x2", "slack_0", "slack_1"}, l.VariableNames)
	assert.Equal(t, lp.Maximize, l.Sense)
	assert.Equal(t, []float64{-1, -1, 0, 0}, l.C)
	assert.Equal(t, []float64{4, 3}, l.B)
}

func TestParseDefaultCoefficientAndSign(t *testing.T) {
	input := `var x; minimize z: x; subject to c1: x >= 2;`
	l, err := Parse(input)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, l.C)
	assert.Equal(t, []float64{2}, l.B)
}

func TestParseUnknownOperatorFails(t *testing.T) {
	input := `var x; minimize z: x; subject to c1: x = 2;`
	_, err := Parse(input)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParseDuplicateObjectiveFails(t *testing.T) {
	input := `var x; minimize z1: x; maximize z2: x; subject to c1: x <= 1;`
	_, err := Parse(input)
	require.Error(t, err)
}

func TestParseUndeclaredVariableFails(t *testing.T) {
	input := `var x; minimize z: x + y; subject to c1: x <= 1;`
	_, err := Parse(input)
	require.Error(t, err)
	assert.True(t, lp.IsKind(err, lp.ErrUnknownVariable))
}
