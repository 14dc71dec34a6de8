package fsa

import "strings"

const (
	// Epsilon is the empty-string alternative added to diagonal cells of
	// the base matrix.
	Epsilon = "eps"
	// EmptySet denotes a cell, or a whole result, with no path at all.
	EmptySet = "{}"
)

// Regex converts the automaton to an equivalent regular expression using the
// matrix form of Kleene's state-elimination construction. The automaton must
// have passed Validate.
//
// The base matrix holds expressions for direct transitions only, with an
// epsilon alternative on the diagonal. Step k then admits paths routing
// through states[k] any number of times:
//
//	Rk[i][j] = (R[i][k])(R[k][k])*(R[k][j])|(R[i][j])
//
// Each step writes into a fresh matrix, so the recurrence reads only the
// previous step's completed values. After all n steps the cell at
// (initial, j) describes every path from the initial state to state j, and
// the result is the alternation of those cells over the accepting states.
//
// Expression sizes can grow exponentially in the number of states; that is a
// known property of the construction and is accepted here.
func (a *Automaton) Regex() string {
	n := len(a.States)
	prev := a.baseMatrix()

	for k := 0; k < n; k++ {
		next := make([][]string, n)
		for i := 0; i < n; i++ {
			next[i] = make([]string, n)
			for j := 0; j < n; j++ {
				next[i][j] = "(" + prev[i][k] + ")(" + prev[k][k] + ")*(" + prev[k][j] + ")|(" + prev[i][j] + ")"
			}
		}
		prev = next
	}

	// Read the row of the initial state's own sorted index. Reading row 0
	// is only correct when the initial state happens to sort first.
	row := a.StateIndex(a.Initial)
	if row < 0 {
		return EmptySet
	}

	var alts []string
	for j, s := range a.States {
		if a.IsAccepting(s) {
			alts = append(alts, "("+prev[row][j]+")")
		}
	}
	if len(alts) == 0 {
		return EmptySet
	}
	return strings.Join(alts, "|")
}

// baseMatrix builds R^-1: cell (i,j) is the alternation of every symbol with
// a direct transition from states[i] to states[j], plus epsilon when i == j.
// A cell with no alternatives is the empty-set marker.
func (a *Automaton) baseMatrix() [][]string {
	n := len(a.States)
	m := make([][]string, n)
	for i, from := range a.States {
		m[i] = make([]string, n)
		for j, to := range a.States {
			var alts []string
			for _, t := range a.Transitions {
				if t.From == from && t.To == to {
					alts = append(alts, t.Symbol)
				}
			}
			if i == j {
				alts = append(alts, Epsilon)
			}
			if len(alts) == 0 {
				m[i][j] = EmptySet
			} else {
				m[i][j] = strings.Join(alts, "|")
			}
		}
	}
	return m
}
