package fsa

import (
	"fmt"
	"sort"
	"strings"
)

// Runner executes an automaton one symbol at a time.
// For non-deterministic automata it tracks every possible current state.
type Runner struct {
	fsa     *Automaton
	current map[string]bool
	history []Step
}

// Step records one step of execution.
type Step struct {
	From   []string
	Symbol string
	To     []string
}

// NewRunner creates a runner for the given automaton.
func NewRunner(a *Automaton) (*Runner, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("invalid FSA: %w", err)
	}

	r := &Runner{
		fsa:     a,
		current: map[string]bool{a.Initial: true},
		history: make([]Step, 0),
	}
	return r, nil
}

// CurrentStates returns the current states as a sorted slice.
func (r *Runner) CurrentStates() []string {
	states := make([]string, 0, len(r.current))
	for s := range r.current {
		states = append(states, s)
	}
	sort.Strings(states)
	return states
}

// CurrentState returns the current state(s) as a string.
// Multiple simultaneous states are shown as a set.
func (r *Runner) CurrentState() string {
	return formatStateSet(r.CurrentStates())
}

// IsAccepting returns true if any current state is accepting.
func (r *Runner) IsAccepting() bool {
	for s := range r.current {
		if r.fsa.IsAccepting(s) {
			return true
		}
	}
	return false
}

// AvailableSymbols returns the symbols usable from any current state.
func (r *Runner) AvailableSymbols() []string {
	seen := make(map[string]bool)
	var symbols []string

	for s := range r.current {
		for _, t := range r.fsa.Transitions {
			if t.From == s && !seen[t.Symbol] {
				seen[t.Symbol] = true
				symbols = append(symbols, t.Symbol)
			}
		}
	}

	sort.Strings(symbols)
	return symbols
}

// Step consumes one input symbol. For non-deterministic automata every
// possible transition is followed simultaneously. Returns an error when no
// current state has a transition on the symbol.
func (r *Runner) Step(symbol string) error {
	from := r.CurrentStates()

	next := make(map[string]bool)
	for s := range r.current {
		for _, t := range r.fsa.TransitionsFrom(s, symbol) {
			next[t.To] = true
		}
	}

	if len(next) == 0 {
		return fmt.Errorf("no transition from state %s on symbol %q", r.CurrentState(), symbol)
	}

	r.current = next
	to := r.CurrentStates()
	r.history = append(r.history, Step{From: from, Symbol: symbol, To: to})
	return nil
}

// Run consumes a sequence of symbols, stopping at the first dead end.
func (r *Runner) Run(symbols []string) error {
	for _, s := range symbols {
		if err := r.Step(s); err != nil {
			return err
		}
	}
	return nil
}

// Reset returns the runner to the initial state and clears the history.
func (r *Runner) Reset() {
	r.current = map[string]bool{r.fsa.Initial: true}
	r.history = make([]Step, 0)
}

// History returns the execution history.
func (r *Runner) History() []Step {
	return r.history
}

// Status returns a one-line status string for the current state.
func (r *Runner) Status() string {
	status := fmt.Sprintf("State: %s", r.CurrentState())
	if r.IsAccepting() {
		status += " [accepting]"
	}
	return status
}

// Accepts reports whether the automaton accepts the given symbol sequence.
// The automaton must be valid.
func (a *Automaton) Accepts(symbols []string) bool {
	current := map[string]bool{a.Initial: true}
	for _, symbol := range symbols {
		next := make(map[string]bool)
		for s := range current {
			for _, t := range a.TransitionsFrom(s, symbol) {
				next[t.To] = true
			}
		}
		if len(next) == 0 {
			return false
		}
		current = next
	}
	for s := range current {
		if a.IsAccepting(s) {
			return true
		}
	}
	return false
}

func formatStateSet(states []string) string {
	if len(states) == 1 {
		return states[0]
	}
	return "{" + strings.Join(states, ", ") + "}"
}
