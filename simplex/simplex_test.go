package simplex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linprog/lp"
)

const delta = 1e-6

func TestS1BasicMaxSlacksOnly(t *testing.T) {
	l := lp.LP{
		A:             [][]float64{{2, 1, 1, 0}, {1, 2, 0, 1}},
		B:             []float64{4, 3},
		C:             []float64{-1, -1, 0, 0},
		Sense:         lp.Maximize,
		VariableNames: []string{"x1", "x2", "slack_0", "slack_1"},
		NumSlack:      2,
	}

	sol := Solve(l)
	require.Equal(t, lp.Optimal, sol.Status)
	assert.InDelta(t, 0, sol.Values["x1"], delta)
	assert.InDelta(t, 0, sol.Values["x2"], delta)
	assert.InDelta(t, 0, sol.Objective, delta)
}

func TestS2AdvertisingCaseStudy(t *testing.T) {
	// max 100000t + 40000n + 18000r
	// s.t. 20t + 6n + 3r <= 182
	//      n <= 10
	//      -t - n + r <= 0
	//      -9t + n + r <= 0
	l := lp.LP{
		A: [][]float64{
			{20, 6, 3, 1, 0, 0, 0},
			{0, 1, 0, 0, 1, 0, 0},
			{-1, -1, 1, 0, 0, 1, 0},
			{-9, 1, 1, 0, 0, 0, 1},
		},
		B:             []float64{182, 10, 0, 0},
		C:             []float64{100000, 40000, 18000, 0, 0, 0, 0},
		Sense:         lp.Maximize,
		VariableNames: []string{"t", "n", "r", "slack_0", "slack_1", "slack_2", "slack_3"},
		NumSlack:      4,
	}

	sol := Solve(l)
	require.Equal(t, lp.Optimal, sol.Status)
	assert.InDelta(t, 4, sol.Values["t"], delta)
	assert.InDelta(t, 10, sol.Values["n"], delta)
	assert.InDelta(t, 14, sol.Values["r"], delta)
	assert.InDelta(t, 1052000, sol.Objective, delta)
}

func TestS3RadiationRequiresPhaseOne(t *testing.T) {
	// min 0.4x1 + 0.5x2
	// s.t. 0.3x1 + 0.1x2 <= 2.7
	//      0.5x1 + 0.5x2 == 6
	//      0.6x1 + 0.4x2 >= 6
	l := lp.LP{
		A: [][]float64{
			{0.3, 0.1, 1, 0},
			{0.5, 0.5, 0, 0},
			{0.6, 0.4, 0, -1},
		},
		B:             []float64{2.7, 6, 6},
		C:             []float64{0.4, 0.5, 0, 0},
		Sense:         lp.Minimize,
		VariableNames: []string{"x1", "x2", "slack_0", "excess_0"},
		NumSlack:      1,
		NumExcess:     1,
	}

	sol := Solve(l)
	require.Equal(t, lp.Optimal, sol.Status)
	assert.InDelta(t, 7.5, sol.Values["x1"], delta)
	assert.InDelta(t, 4.5, sol.Values["x2"], delta)
	assert.InDelta(t, 5.25, sol.Objective, delta)
}

func TestS4Unbounded(t *testing.T) {
	// max x1 s.t. -x1 + x2 <= 1
	l := lp.LP{
		A:             [][]float64{{-1, 1, 1}},
		B:             []float64{1},
		C:             []float64{1, 0, 0},
		Sense:         lp.Maximize,
		VariableNames: []string{"x1", "x2", "slack_0"},
		NumSlack:      1,
	}

	sol := Solve(l)
	assert.Equal(t, lp.Unbounded, sol.Status)
	assert.Nil(t, sol.Values)
}

func TestS5Infeasible(t *testing.T) {
	// min x1 s.t. x1 <= 1, x1 >= 2
	l := lp.LP{
		A:             [][]float64{{1, 1, 0}, {1, 0, -1}},
		B:             []float64{1, 2},
		C:             []float64{1, 0, 0},
		Sense:         lp.Minimize,
		VariableNames: []string{"x1", "slack_0", "excess_0"},
		NumSlack:      1,
		NumExcess:     1,
	}

	sol := Solve(l)
	assert.Equal(t, lp.Infeasible, sol.Status)
	assert.Nil(t, sol.Values)
}

func TestDeterminism(t *testing.T) {
	l := lp.LP{
		A:             [][]float64{{2, 1, 1, 0}, {1, 2, 0, 1}},
		B:             []float64{4, 3},
		C:             []float64{-1, -1, 0, 0},
		Sense:         lp.Maximize,
		VariableNames: []string{"x1", "x2", "slack_0", "slack_1"},
		NumSlack:      2,
	}
	first := Solve(l)
	second := Solve(l)
	assert.Equal(t, first, second)
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	l := lp.LP{
		A:             [][]float64{{1, 1}},
		B:             []float64{4},
		C:             []float64{1, 0},
		Sense:         lp.Maximize,
		VariableNames: []string{"x1", "slack_0"},
		NumSlack:      1,
	}
	snapshot := l.Clone()
	Solve(l)
	assert.Equal(t, snapshot, l)
}
