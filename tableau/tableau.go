// Package tableau implements the dense simplex tableau: an (m+1)x(n+2)
// real matrix with a fixed objective-row marker in column 0, reduced
// costs and constraint rows in columns 1..n, and the current right-hand
// side in the last column. The backing storage is
// gonum.org/v1/gonum/mat.Dense, the way urchincolley-simplexsolve builds
// its simplex tableau.
package tableau

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"linprog/lp"
)

// Tableau is a dense (m+1)x(n+2) simplex tableau. m is the number of
// constraint rows, n the number of variable columns (decision variables
// plus any auxiliary columns already present in this tableau).
type Tableau struct {
	raw *mat.Dense
	m   int
	n   int
}

// New allocates a zero-initialized tableau of m constraint rows and n
// variable columns.
func New(m, n int) *Tableau {
	return &Tableau{raw: mat.NewDense(m+1, n+2, nil), m: m, n: n}
}

// FromLP builds the initial tableau for a canonical LP: the objective
// marker in column 0, signed reduced costs in row 0 (negated when
// minimizing), the constraint matrix in columns 1..n, and the
// right-hand side in the last column.
func FromLP(l lp.LP) *Tableau {
	m := l.NumConstraints()
	n := l.NumVariables()
	t := New(m, n)

	t.raw.Set(0, 0, 1)
	sign := 1.0
	if l.Sense == lp.Minimize {
		sign = -1
	}
	for j := 1; j <= n; j++ {
		t.raw.Set(0, j, sign*l.C[j-1])
	}
	t.raw.Set(0, n+1, 0)

	for i := 1; i <= m; i++ {
		t.raw.Set(i, 0, 0)
		for j := 1; j <= n; j++ {
			t.raw.Set(i, j, l.A[i-1][j-1])
		}
		t.raw.Set(i, n+1, l.B[i-1])
	}
	return t
}

// M is the number of constraint rows.
func (t *Tableau) M() int { return t.m }

// N is the number of variable columns.
func (t *Tableau) N() int { return t.n }

// RHSCol is the index of the right-hand-side column (the last column).
func (t *Tableau) RHSCol() int { return t.n + 1 }

// At returns the entry at (row, col) using the full 0-indexed tableau
// coordinates (column 0 is the objective marker, column N()+1 is RHS).
func (t *Tableau) At(row, col int) float64 { return t.raw.At(row, col) }

// ObjectiveValue is the current value in row 0's RHS cell.
func (t *Tableau) ObjectiveValue() float64 { return t.raw.At(0, t.RHSCol()) }

func (t *Tableau) assertVarCol(j int) {
	if j < 1 || j > t.n {
		panic(fmt.Sprintf("tableau: column %d out of range [1,%d]", j, t.n))
	}
}

func (t *Tableau) assertRow(i int) {
	if i < 1 || i > t.m {
		panic(fmt.Sprintf("tableau: row %d out of range [1,%d]", i, t.m))
	}
}

// IsBasic reports whether column j (1<=j<=n) is basic: rows 1..m contain
// exactly one entry equal to 1.0, all others equal to 0.0, under exact
// comparison.
func (t *Tableau) IsBasic(j int) bool {
	t.assertVarCol(j)
	ones := 0
	for i := 1; i <= t.m; i++ {
		v := t.raw.At(i, j)
		if v == 1 {
			ones++
		} else if v != 0 {
			return false
		}
	}
	return ones == 1
}

// BasicRow returns the row i>=1 where T[i][j]=1, for a basic column j,
// and panics when j is not basic. A column with more than one entry
// equal to 1 is not basic under IsBasic, so it panics here rather than
// having a row chosen for it.
func (t *Tableau) BasicRow(j int) int {
	if !t.IsBasic(j) {
		panic(fmt.Sprintf("tableau: BasicRow called on non-basic column %d", j))
	}
	row := -1
	for i := 1; i <= t.m; i++ {
		if t.raw.At(i, j) == 1 {
			row = i
		}
	}
	return row
}

// CurrentAssignment returns, for j in 1..n, the basic row's RHS value if
// j is basic, else 0 — the nonbasic-variables-are-zero reading of the
// current tableau.
func (t *Tableau) CurrentAssignment() []float64 {
	x := make([]float64, t.n)
	for j := 1; j <= t.n; j++ {
		if t.IsBasic(j) {
			x[j-1] = t.raw.At(t.BasicRow(j), t.RHSCol())
		}
	}
	return x
}

// PivotRatio computes b_i / T[i][j] for a row i in 1..m. ok is false when
// T[i][j] <= 0, meaning row i cannot bound the entering variable.
func (t *Tableau) PivotRatio(i, j int) (ratio float64, ok bool) {
	t.assertRow(i)
	t.assertVarCol(j)
	v := t.raw.At(i, j)
	if v > 0 {
		return t.raw.At(i, t.RHSCol()) / v, true
	}
	return 0, false
}

// ChooseEnteringColumn implements Bland's rule: the first column
// j in 1..n with a positive reduced cost (row 0 is oriented, via
// FromLP's sign flip on minimize, so that a positive entry always
// means the entering variable can improve the objective). ok is false
// when the current basis is optimal.
func (t *Tableau) ChooseEnteringColumn() (j int, ok bool) {
	for j := 1; j <= t.n; j++ {
		if t.raw.At(0, j) > 0 {
			return j, true
		}
	}
	return 0, false
}

// ChooseLeavingRow picks the row minimizing PivotRatio(i, j), ties broken
// by lowest row index. ok is false when no row bounds column j, signaling
// unboundedness.
func (t *Tableau) ChooseLeavingRow(j int) (row int, ok bool) {
	best := -1
	var bestRatio float64
	for i := 1; i <= t.m; i++ {
		ratio, valid := t.PivotRatio(i, j)
		if !valid {
			continue
		}
		if best == -1 || ratio < bestRatio {
			best, bestRatio = i, ratio
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// Normalize divides row i's columns 1..RHSCol() by T[i][j] and snaps
// T[i][j] to exactly 1.
func (t *Tableau) Normalize(i, j int) {
	t.assertRow(i)
	t.assertVarCol(j)
	piv := t.raw.At(i, j)
	for c := 1; c <= t.RHSCol(); c++ {
		t.raw.Set(i, c, t.raw.At(i, c)/piv)
	}
	t.raw.Set(i, j, 1)
}

// Eliminate clears column j out of row r (r != i) given an already
// normalized pivot row i, snapping T[r][j] to exactly 0.
func (t *Tableau) Eliminate(i, j, r int) {
	if r == i {
		return
	}
	mu := -t.raw.At(r, j)
	for c := 1; c <= t.RHSCol(); c++ {
		t.raw.Set(r, c, t.raw.At(r, c)+mu*t.raw.At(i, c))
	}
	t.raw.Set(r, j, 0)
}

// Pivot normalizes row i on column j, then eliminates column j from
// every other row (including row 0).
func (t *Tableau) Pivot(i, j int) {
	t.Normalize(i, j)
	for r := 0; r <= t.m; r++ {
		t.Eliminate(i, j, r)
	}
}

// UnspannedRows returns the rows i>=1 that contain no basic variable's
// unit entry — rows Phase I must cover with an artificial variable.
func (t *Tableau) UnspannedRows() []int {
	spanned := make([]bool, t.m+1)
	for j := 1; j <= t.n; j++ {
		if t.IsBasic(j) {
			spanned[t.BasicRow(j)] = true
		}
	}
	var out []int
	for i := 1; i <= t.m; i++ {
		if !spanned[i] {
			out = append(out, i)
		}
	}
	return out
}

// BuildPhaseOne constructs the Phase I tableau: the constraint body of
// t plus one artificial-variable column per unspanned row, each with
// objective coefficient -1 and a unit entry in its owning row. Row 0 is
// the minimize-sum-of-artificials objective, rewritten by adding each
// artificial-owning row into row 0 so that every artificial's own
// reduced cost is eliminated and row 0 is expressed purely in the
// nonbasic variables.
func (t *Tableau) BuildPhaseOne(unspanned []int) *Tableau {
	k := len(unspanned)
	p1 := New(t.m, t.n+k)

	p1.raw.Set(0, 0, 1)
	for j := 1; j <= t.n; j++ {
		p1.raw.Set(0, j, 0)
	}
	for i := 1; i <= t.m; i++ {
		p1.raw.Set(i, 0, 0)
		for j := 1; j <= t.n; j++ {
			p1.raw.Set(i, j, t.raw.At(i, j))
		}
		p1.raw.Set(i, p1.RHSCol(), t.raw.At(i, t.RHSCol()))
	}

	artCols := make([]int, k)
	for idx, r := range unspanned {
		p := t.n + 1 + idx
		artCols[idx] = p
		p1.raw.Set(0, p, -1)
		p1.raw.Set(r, p, 1)
	}

	// Row 0 starts at -1 on each artificial's own column; adding that
	// artificial's row cancels it (the row carries a 1 there) and folds
	// the row's other coefficients and right-hand side into row 0,
	// leaving row 0 expressed purely in the nonbasic variables.
	for idx, r := range unspanned {
		p := artCols[idx]
		for c := 1; c <= p1.RHSCol(); c++ {
			if c == p {
				continue
			}
			p1.raw.Set(0, c, p1.raw.At(0, c)+p1.raw.At(r, c))
		}
		p1.raw.Set(0, p, 0)
	}

	return p1
}

// CopyBackFrom overwrites t's variable columns 1..N() and its
// right-hand side with the corresponding entries of a Phase I tableau,
// discarding that tableau's artificial columns. It does not touch row 0.
func (t *Tableau) CopyBackFrom(phaseOne *Tableau) {
	for j := 1; j <= t.n; j++ {
		for i := 1; i <= t.m; i++ {
			t.raw.Set(i, j, phaseOne.raw.At(i, j))
		}
	}
	for i := 1; i <= t.m; i++ {
		t.raw.Set(i, t.RHSCol(), phaseOne.raw.At(i, phaseOne.RHSCol()))
	}
}

// RewriteObjective rebuilds row 0 from the original objective
// coefficients savedC (captured before Phase I replaced row 0). Each
// column starts at its saved coefficient; a basic column is then
// eliminated out of row 0 using its own basic row, the same way a
// regular pivot clears a column out of row 0, which folds its cost into
// the nonbasic columns and the right-hand side and cancels the basic
// column's own entry to exactly 0. savedC has length N(), indexed by
// j-1 for variable column j.
func (t *Tableau) RewriteObjective(savedC []float64) {
	for j := 1; j <= t.n; j++ {
		t.raw.Set(0, j, savedC[j-1])
	}
	t.raw.Set(0, t.RHSCol(), 0)
	for j := 1; j <= t.n; j++ {
		if t.IsBasic(j) {
			t.Eliminate(t.BasicRow(j), j, 0)
		}
	}
}
