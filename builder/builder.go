// Package builder provides a fluent accumulator for variables,
// constraints and a single objective, producing a canonical lp.LP via
// lp.Canonicalize. It is the only supported way to construct an LP
// outside of the parser, which itself drives a Builder.
package builder

import (
	"go.uber.org/zap"

	"linprog/lp"
)

// Option configures a Builder at construction time, in the style of
// github.com/costela/golpa's functional options.
type Option func(*Builder)

// WithLogger attaches a zap logger used to trace accumulation calls.
// The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) { b.logger = logger }
}

// WithNonnegativeRHS enables the safe strengthening noted as an
// implementer's option: any constraint whose constant is negative is
// flipped (terms and constant negated, relation reversed) before
// canonicalization, so every row reaches the canonicalizer with b >= 0.
func WithNonnegativeRHS() Option {
	return func(b *Builder) { b.enforceNonnegRHS = true }
}

// Builder accumulates a user-form LP. The zero value is not usable;
// construct one with New.
type Builder struct {
	sense            lp.Sense
	vars             []lp.Variable
	constraints      []lp.Constraint
	objective        *lp.Objective
	err              error
	logger           *zap.Logger
	enforceNonnegRHS bool
}

// New starts a Builder with the given default objective sense. The
// parser overrides it via SetSense once it has parsed the objective
// keyword; programmatic callers typically pass the final sense directly.
func New(sense lp.Sense, opts ...Option) *Builder {
	b := &Builder{sense: sense, logger: zap.NewNop()}
	for _, o := range opts {
		o(b)
	}
	return b
}

// SetSense overrides the optimization direction.
func (b *Builder) SetSense(sense lp.Sense) *Builder {
	b.sense = sense
	return b
}

// Var declares a decision variable. Repeated declarations of the same
// name are accepted and ignored by the canonicalizer (first wins).
func (b *Builder) Var(name string) *Builder {
	b.vars = append(b.vars, lp.Variable{Name: name})
	b.logger.Debug("declared variable", zap.String("name", name))
	return b
}

// Constraint adds a named linear constraint. It validates at
// accumulation time that every referenced variable was already
// declared with Var, recording the first such failure; Build then
// returns it.
func (b *Builder) Constraint(name string, terms []lp.Term, rel lp.Relation, constant float64) *Builder {
	if b.err != nil {
		return b
	}
	for _, t := range terms {
		if !b.knows(t.Variable) {
			b.err = &lp.ConstructionError{Kind: lp.ErrUnknownVariable, Subject: t.Variable}
			return b
		}
	}
	if b.enforceNonnegRHS && constant < 0 {
		terms = negateTerms(terms)
		constant = -constant
		rel = rel.Flip()
	}
	b.constraints = append(b.constraints, lp.Constraint{
		Name: name, Terms: terms, Constant: constant, Relation: rel,
	})
	b.logger.Debug("added constraint", zap.String("name", name), zap.Int("terms", len(terms)))
	return b
}

// Objective sets the single objective. A second call records
// DuplicateObjective, surfaced by Build.
func (b *Builder) Objective(name string, terms ...lp.Term) *Builder {
	if b.err != nil {
		return b
	}
	if b.objective != nil {
		b.err = &lp.ConstructionError{Kind: lp.ErrDuplicateObjective, Subject: name}
		return b
	}
	for _, t := range terms {
		if !b.knows(t.Variable) {
			b.err = &lp.ConstructionError{Kind: lp.ErrUnknownVariable, Subject: t.Variable}
			return b
		}
	}
	b.objective = &lp.Objective{Name: name, Terms: terms, Sense: b.sense}
	b.logger.Debug("set objective", zap.String("name", name), zap.Stringer("sense", b.sense))
	return b
}

// Build canonicalizes the accumulated LP. Any error recorded during
// accumulation short-circuits canonicalization and is returned as-is.
func (b *Builder) Build() (lp.LP, error) {
	if b.err != nil {
		return lp.LP{}, b.err
	}
	if b.objective != nil {
		b.objective.Sense = b.sense
	}
	return lp.Canonicalize(b.vars, b.constraints, b.objective)
}

func (b *Builder) knows(name string) bool {
	for _, v := range b.vars {
		if v.Name == name {
			return true
		}
	}
	return false
}

func negateTerms(terms []lp.Term) []lp.Term {
	out := make([]lp.Term, len(terms))
	for i, t := range terms {
		out[i] = lp.Term{Variable: t.Variable, Coefficient: -t.Coefficient}
	}
	return out
}
