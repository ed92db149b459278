// Package parser reads the textual linear-program description format:
// statements separated by ';', with '#' comments, variable declarations,
// a single objective, and any number of constraints, each built from
// linear expressions of "coefficient * name" terms joined by '+'.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"linprog/builder"
	"linprog/lp"
)

// ParseError reports the statement number and source text a parse
// failure occurred on, wrapping the underlying cause.
type ParseError struct {
	Statement int
	Text      string
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parser: statement %d (%q): %v", e.Statement, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func fail(stmt int, text string, err error) error {
	return &ParseError{Statement: stmt, Text: text, Err: err}
}

var (
	varRe        = regexp.MustCompile(`^var\s+(\S+)$`)
	objectiveRe  = regexp.MustCompile(`^(minimize|maximize)\s+(\S+)\s*:\s*(.*)$`)
	constraintRe = regexp.MustCompile(`^subject to\s+(\S+)\s*:\s*(.*?)\s*(==|<=|>=)\s*(-?[0-9.]+)$`)
	// A term is joined to the previous one by a literal '+'; the leading
	// '-' inside a term negates it. Matches either at the start of the
	// expression or right after a '+'.
	termRe = regexp.MustCompile(`(?:^|\+)\s*(-)?\s*(?:([0-9]*\.?[0-9]+)\s*\*\s*)?([A-Za-z_][A-Za-z0-9_]*)`)
)

// Parse reads a ';'-separated statement sequence and builds an lp.LP by
// driving a builder.Builder. Statements are processed in order; a
// variable referenced before its "var" declaration reaches the builder
// as an unknown-variable construction error, not a parse error.
func Parse(input string, opts ...builder.Option) (lp.LP, error) {
	b := builder.New(lp.Minimize, opts...)
	haveObjective := false

	for i, raw := range strings.Split(input, ";") {
		text := strings.TrimSpace(raw)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(text, "var "):
			m := varRe.FindStringSubmatch(text)
			if m == nil {
				return lp.LP{}, fail(i, text, fmt.Errorf("malformed variable declaration"))
			}
			b.Var(m[1])

		case strings.HasPrefix(text, "minimize ") || strings.HasPrefix(text, "maximize "):
			m := objectiveRe.FindStringSubmatch(text)
			if m == nil {
				return lp.LP{}, fail(i, text, fmt.Errorf("malformed objective statement"))
			}
			if haveObjective {
				return lp.LP{}, fail(i, text, fmt.Errorf("duplicate objective"))
			}
			haveObjective = true
			sense := lp.Minimize
			if m[1] == "maximize" {
				sense = lp.Maximize
			}
			terms, err := parseExpression(m[3])
			if err != nil {
				return lp.LP{}, fail(i, text, err)
			}
			b.SetSense(sense)
			b.Objective(m[2], terms...)

		case strings.HasPrefix(text, "subject to "):
			m := constraintRe.FindStringSubmatch(text)
			if m == nil {
				return lp.LP{}, fail(i, text, fmt.Errorf("malformed constraint statement"))
			}
			terms, err := parseExpression(m[2])
			if err != nil {
				return lp.LP{}, fail(i, text, err)
			}
			rel, err := relationFromOp(m[3])
			if err != nil {
				return lp.LP{}, fail(i, text, err)
			}
			constant, err := strconv.ParseFloat(m[4], 64)
			if err != nil {
				return lp.LP{}, fail(i, text, fmt.Errorf("invalid constant %q: %w", m[4], err))
			}
			b.Constraint(m[1], terms, rel, constant)

		default:
			return lp.LP{}, fail(i, text, fmt.Errorf("unrecognized statement kind"))
		}
	}

	return b.Build()
}

func relationFromOp(op string) (lp.Relation, error) {
	switch op {
	case "==":
		return lp.EQ, nil
	case "<=":
		return lp.LE, nil
	case ">=":
		return lp.GE, nil
	default:
		return 0, fmt.Errorf("unknown relation operator %q", op)
	}
}

// parseExpression scans a linear expression term by term. Each match
// must butt up directly against the previous one (only whitespace may
// separate them) so that stray characters outside the grammar are
// rejected rather than silently skipped.
func parseExpression(expr string) ([]lp.Term, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty linear expression")
	}

	matches := termRe.FindAllStringSubmatchIndex(expr, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no terms found in expression %q", expr)
	}

	terms := make([]lp.Term, 0, len(matches))
	want := 0
	for _, idx := range matches {
		start, end := idx[0], idx[1]
		if strings.TrimSpace(expr[want:start]) != "" {
			return nil, fmt.Errorf("unexpected text %q in expression %q", expr[want:start], expr)
		}
		terms = append(terms, termFromMatch(expr, idx))
		want = end
	}
	if strings.TrimSpace(expr[want:]) != "" {
		return nil, fmt.Errorf("unexpected trailing text %q in expression %q", expr[want:], expr)
	}
	return terms, nil
}

// termFromMatch builds a Term from one FindAllStringSubmatchIndex result:
// group 1 is the optional leading '-', group 2 the optional coefficient,
// group 3 the variable name.
func termFromMatch(expr string, idx []int) lp.Term {
	group := func(n int) string {
		if idx[2*n] < 0 {
			return ""
		}
		return expr[idx[2*n]:idx[2*n+1]]
	}

	coeff := 1.0
	if c := group(2); c != "" {
		coeff, _ = strconv.ParseFloat(c, 64) // matched by [0-9.]+, always valid
	}
	if group(1) == "-" {
		coeff = -coeff
	}
	return lp.Term{Variable: group(3), Coefficient: coeff}
}
