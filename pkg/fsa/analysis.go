package fsa

// Warning flags a structural issue that does not make the automaton invalid
// but is usually a mistake in the description.
type Warning struct {
	Type    string // "unreachable", "dead", "nondeterministic", "unused_symbol"
	Subject string // the state or symbol concerned
}

// UnreachableStates returns declared states not reachable from the initial
// state through the transition graph.
func (a *Automaton) UnreachableStates() []string {
	reached := newGraph(a.Transitions).reachableFrom(a.Initial)
	var result []string
	for _, s := range a.States {
		if !reached[s] {
			result = append(result, s)
		}
	}
	return result
}

// DeadStates returns non-accepting states with no outgoing transitions.
// Entering one means the input can never be accepted.
func (a *Automaton) DeadStates() []string {
	outgoing := make(map[string]bool)
	for _, t := range a.Transitions {
		outgoing[t.From] = true
	}

	var result []string
	for _, s := range a.States {
		if !outgoing[s] && !a.IsAccepting(s) {
			result = append(result, s)
		}
	}
	return result
}

// NonDeterministicStates returns states with more than one outgoing
// transition on the same symbol.
func (a *Automaton) NonDeterministicStates() []string {
	type outgoing struct{ from, symbol string }
	count := make(map[outgoing]int)
	for _, t := range a.Transitions {
		count[outgoing{t.From, t.Symbol}]++
	}

	flagged := make(map[string]bool)
	for k, n := range count {
		if n > 1 {
			flagged[k.from] = true
		}
	}

	var result []string
	for _, s := range a.States {
		if flagged[s] {
			result = append(result, s)
		}
	}
	return result
}

// UnusedSymbols returns alphabet symbols no transition uses.
func (a *Automaton) UnusedSymbols() []string {
	used := make(map[string]bool)
	for _, t := range a.Transitions {
		used[t.Symbol] = true
	}

	var result []string
	for _, s := range a.Alphabet {
		if !used[s] {
			result = append(result, s)
		}
	}
	return result
}

// Analyse runs all structural checks and returns the collected warnings.
func (a *Automaton) Analyse() []Warning {
	var warnings []Warning
	for _, s := range a.UnreachableStates() {
		warnings = append(warnings, Warning{Type: "unreachable", Subject: s})
	}
	for _, s := range a.DeadStates() {
		warnings = append(warnings, Warning{Type: "dead", Subject: s})
	}
	for _, s := range a.NonDeterministicStates() {
		warnings = append(warnings, Warning{Type: "nondeterministic", Subject: s})
	}
	for _, s := range a.UnusedSymbols() {
		warnings = append(warnings, Warning{Type: "unused_symbol", Subject: s})
	}
	return warnings
}
