// Package printer renders a Tableau or a Solution to an io.Writer in
// fixed-width columns, and echoes a canonical LP with Problem.
package printer

import (
	"fmt"
	"io"
	"sort"

	"linprog/lp"
	"linprog/tableau"
)

// Problem echoes a canonicalized LP: its sense, objective coefficients,
// and constraint rows, in variable order. Used by the CLI's --display
// flag to show what was parsed before solving.
func Problem(w io.Writer, l lp.LP) {
	fmt.Fprintf(w, "sense: %s\n", l.Sense)
	fmt.Fprintf(w, "variables: %v\n", l.VariableNames)
	fmt.Fprintf(w, "objective: %v\n", l.C)
	for i, row := range l.A {
		fmt.Fprintf(w, "c%-3d %v = %.4f\n", i+1, row, l.B[i])
	}
}

// Tableau writes a fixed-width dump of t's entries: row 0 first, then
// rows 1..M(), each row printed across columns 0..N()+1.
func Tableau(w io.Writer, t *tableau.Tableau) {
	fmt.Fprintln(w, "Current Tableau:")
	for row := 0; row <= t.M(); row++ {
		for col := 0; col <= t.N()+1; col++ {
			fmt.Fprintf(w, "%10.4f", t.At(row, col))
		}
		fmt.Fprintln(w)
	}
}

// Solution writes the solve status, and for Optimal also the decision
// variable assignment (sorted by name for stable output) and the
// objective value.
func Solution(w io.Writer, sol lp.Solution) {
	fmt.Fprintf(w, "status: %s\n", sol.Status)
	if sol.Status != lp.Optimal {
		return
	}
	names := make([]string, 0, len(sol.Values))
	for name := range sol.Values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%-10s = %10.4f\n", name, sol.Values[name])
	}
	fmt.Fprintf(w, "objective  = %10.4f\n", sol.Objective)
}
