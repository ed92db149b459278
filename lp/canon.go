package lp

import "fmt"

// Canonicalize converts a user-form LP (declared variables, constraints
// in any mix of <=, >=, == relations, and a single objective) into
// canonical form: every row becomes an equality over nonnegative
// variables by introducing one slack variable per <= row (coefficient
// +1) and one excess variable per >= row (coefficient -1).
//
// Auxiliary variables are appended to the variable order in two passes:
// all slacks first (in constraint order), then all excesses (in
// constraint order), matching the two relation-specific scans below
// rather than a single interleaved pass.
//
// Canonicalize does not flip the sign of rows with a negative constant
// to enforce b >= 0; per the source's design notes, that is the caller's
// responsibility (see builder.WithNonnegativeRHS for the optional safe
// strengthening).
func Canonicalize(vars []Variable, constraints []Constraint, obj *Objective) (LP, error) {
	if obj == nil {
		return LP{}, newMissingObjective()
	}

	index := make(map[string]int, len(vars))
	names := make([]string, 0, len(vars))
	for _, v := range vars {
		if _, ok := index[v.Name]; ok {
			continue // first declaration wins
		}
		index[v.Name] = len(names)
		names = append(names, v.Name)
	}

	// Pass 1: slacks for every <= row.
	slackRow := make(map[int]int) // constraint index -> column index
	numSlack := 0
	for i, c := range constraints {
		if c.Relation == LE {
			slackRow[i] = len(names)
			names = append(names, fmt.Sprintf("slack_%d", numSlack))
			numSlack++
		}
	}

	// Pass 2: excesses for every >= row.
	excessRow := make(map[int]int)
	numExcess := 0
	for i, c := range constraints {
		if c.Relation == GE {
			excessRow[i] = len(names)
			names = append(names, fmt.Sprintf("excess_%d", numExcess))
			numExcess++
		}
	}

	n := len(names)
	m := len(constraints)

	A := make([][]float64, m)
	b := make([]float64, m)
	for i, c := range constraints {
		row := make([]float64, n)
		for _, t := range c.Terms {
			j, ok := index[t.Variable]
			if !ok {
				return LP{}, newUnknownVariable(t.Variable)
			}
			row[j] += t.Coefficient
		}
		if j, ok := slackRow[i]; ok {
			row[j] = 1
		}
		if j, ok := excessRow[i]; ok {
			row[j] = -1
		}
		A[i] = row
		b[i] = c.Constant
	}

	c := make([]float64, n)
	for _, t := range obj.Terms {
		j, ok := index[t.Variable]
		if !ok {
			return LP{}, newUnknownVariable(t.Variable)
		}
		c[j] += t.Coefficient
	}

	return LP{
		A:             A,
		B:             b,
		C:             c,
		Sense:         obj.Sense,
		VariableNames: names,
		NumSlack:      numSlack,
		NumExcess:     numExcess,
	}, nil
}
