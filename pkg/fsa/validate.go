package fsa

// Validate checks the automaton against the seven terminal error conditions.
// Checks run in a fixed order and stop at the first failure; a nil result
// means the automaton is safe to hand to the regular-expression construction.
func (a *Automaton) Validate() error {
	// E1: exact duplicate transition triples.
	seen := make(map[Transition]bool, len(a.Transitions))
	for _, t := range a.Transitions {
		if seen[t] {
			return NewError(CodeMalformed, "")
		}
		seen[t] = true
	}

	// E2: initial state declared and known.
	if a.Initial == "" {
		return NewError(CodeInitUndefined, "")
	}
	if !a.HasState(a.Initial) {
		return NewError(CodeInvalidState, a.Initial)
	}

	// E3, E4: accepting states present and known.
	if len(a.Accepting) == 0 {
		return NewError(CodeNoAccepting, "")
	}
	for _, s := range a.Accepting {
		if !a.HasState(s) {
			return NewError(CodeInvalidState, s)
		}
	}

	// E4, E5: transition endpoints and symbols. An empty source state is a
	// malformed description, not merely an unknown state.
	for _, t := range a.Transitions {
		if t.From == "" {
			return NewError(CodeMalformed, "")
		}
		if !a.HasState(t.From) {
			return NewError(CodeInvalidState, t.From)
		}
		if !a.HasState(t.To) {
			return NewError(CodeInvalidState, t.To)
		}
		if !a.HasSymbol(t.Symbol) {
			return NewError(CodeInvalidSymbol, t.Symbol)
		}
	}

	// E6: every declared state reachable from the initial state. A declared
	// state that no transition mentions never becomes a graph node and so
	// fails the count; every state must take part in some transition.
	g := newGraph(a.Transitions)
	if len(g.reachableFrom(a.Initial)) != len(a.States) {
		return NewError(CodeDisjoint, "")
	}

	// E7: declared deterministic but some state has two outgoing
	// transitions on one symbol. Skipped for non-deterministic automata.
	if a.Type == TypeDeterministic {
		type outgoing struct{ from, symbol string }
		used := make(map[outgoing]bool, len(a.Transitions))
		for _, t := range a.Transitions {
			k := outgoing{t.From, t.Symbol}
			if used[k] {
				return NewError(CodeNondeterministic, "")
			}
			used[k] = true
		}
	}

	return nil
}
