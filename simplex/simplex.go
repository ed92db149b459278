// Package simplex implements the two-phase simplex driver: build a
// tableau from a canonical LP, construct and optimize a Phase I tableau
// when no basic feasible solution is obvious, rewrite the objective
// across the phase transition, optimize Phase II, and classify the
// result as Optimal, Infeasible, or Unbounded.
package simplex

import (
	"math"

	"go.uber.org/zap"

	"linprog/lp"
	"linprog/tableau"
)

// feasibilityTolerance is the only tolerance anywhere in the engine: it
// gates the Phase I / Phase II boundary test (is the minimized sum of
// artificials close enough to zero to call the LP feasible). Basis
// detection elsewhere uses exact equality by design.
const feasibilityTolerance = 1e-7

type config struct {
	logger *zap.Logger
}

// Option configures a Solve call.
type Option func(*config)

// WithLogger attaches a zap logger that traces phase transitions and
// pivot choices. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts []Option) *config {
	c := &config{logger: zap.NewNop()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Solve runs the two-phase simplex method on a canonical LP. It clones
// the input before mutating any tableau, so the caller's LP is never
// modified and independent concurrent solves are safe.
func Solve(input lp.LP, opts ...Option) lp.Solution {
	cfg := newConfig(opts)
	l := input.Clone()
	t := tableau.FromLP(l)

	if unspanned := t.UnspannedRows(); len(unspanned) > 0 {
		cfg.logger.Debug("phase I required", zap.Int("unspanned_rows", len(unspanned)))
		if sol, infeasible := runPhaseOne(t, unspanned, cfg); infeasible {
			return sol
		}
	}

	if unbounded := optimize(t, cfg); unbounded {
		cfg.logger.Info("phase II unbounded")
		return lp.Solution{Status: lp.Unbounded}
	}

	return finalize(t, l, cfg)
}

// runPhaseOne builds and optimizes the Phase I tableau, and on success
// copies its basis back into t and rewrites t's objective row in terms
// of the current nonbasic variables. The second return value is true
// only when Phase I proves the LP infeasible, in which case the returned
// Solution is the final answer.
func runPhaseOne(t *tableau.Tableau, unspanned []int, cfg *config) (lp.Solution, bool) {
	savedC := make([]float64, t.N())
	for j := 1; j <= t.N(); j++ {
		savedC[j-1] = t.At(0, j)
	}

	p1 := t.BuildPhaseOne(unspanned)
	optimize(p1, cfg) // Phase I never reports unbounded: the artificial sum is bounded below by 0.

	obj := p1.ObjectiveValue()
	cfg.logger.Debug("phase I complete", zap.Float64("objective", obj))
	if math.Abs(obj) > feasibilityTolerance {
		return lp.Solution{Status: lp.Infeasible}, true
	}

	t.CopyBackFrom(p1)
	t.RewriteObjective(savedC)
	return lp.Solution{}, false
}

// optimize runs Bland's-rule pivoting to optimality and reports whether
// the LP turned out to be unbounded.
func optimize(t *tableau.Tableau, cfg *config) (unbounded bool) {
	for {
		j, ok := t.ChooseEnteringColumn()
		if !ok {
			return false
		}
		i, ok := t.ChooseLeavingRow(j)
		if !ok {
			return true
		}
		cfg.logger.Debug("pivot", zap.Int("row", i), zap.Int("col", j))
		t.Pivot(i, j)
	}
}

// finalize reads off the optimal assignment, trims the trailing
// auxiliary variables, and reads the tableau's objective cell. FromLP
// writes row 0 as -c on minimize and +c on maximize (so
// ChooseEnteringColumn can always look for a positive entry); with that
// orientation row 0's right-hand side is the true objective for a
// minimize but its negation for a maximize, so it is negated back here
// for a maximize.
func finalize(t *tableau.Tableau, l lp.LP, cfg *config) lp.Solution {
	assignment := t.CurrentAssignment()
	k := l.NumAuxiliary()
	values := make(map[string]float64, len(assignment)-k)
	for idx := 0; idx < len(assignment)-k; idx++ {
		values[l.VariableNames[idx]] = assignment[idx]
	}

	obj := t.ObjectiveValue()
	if l.Sense == lp.Maximize {
		obj = -obj
	}

	cfg.logger.Info("optimal", zap.Float64("objective", obj))
	return lp.Solution{Status: lp.Optimal, Values: values, Objective: obj}
}
