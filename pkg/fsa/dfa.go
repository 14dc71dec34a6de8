package fsa

import (
	"sort"
	"strings"
)

// ToDeterministic converts the automaton to an equivalent deterministic one
// using the powerset construction. The text format has no epsilon
// transitions, so no closure step is needed. New state names join the source
// states with "+", which survives a round trip through the text format
// (unlike ","). An already-deterministic automaton is returned as a copy.
func (a *Automaton) ToDeterministic() *Automaton {
	if a.Type == TypeDeterministic {
		return a.Copy()
	}

	dfa := New(TypeDeterministic)
	dfa.Alphabet = make([]string, len(a.Alphabet))
	copy(dfa.Alphabet, a.Alphabet)

	initial := map[string]bool{a.Initial: true}
	dfa.Initial = stateSetName(initial)

	processed := make(map[string]bool)
	queue := []map[string]bool{initial}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		currentName := stateSetName(current)

		if processed[currentName] {
			continue
		}
		processed[currentName] = true

		dfa.AddState(currentName)
		if containsAccepting(a, current) {
			dfa.Accepting = append(dfa.Accepting, currentName)
		}

		for _, symbol := range a.Alphabet {
			target := make(map[string]bool)
			for s := range current {
				for _, t := range a.TransitionsFrom(s, symbol) {
					target[t.To] = true
				}
			}
			if len(target) == 0 {
				continue
			}

			targetName := stateSetName(target)
			dfa.AddTransition(currentName, symbol, targetName)
			if !processed[targetName] {
				queue = append(queue, target)
			}
		}
	}

	sort.Strings(dfa.Accepting)
	return dfa
}

// stateSetName converts a state set to its canonical name.
func stateSetName(states map[string]bool) string {
	list := make([]string, 0, len(states))
	for s := range states {
		list = append(list, s)
	}
	sort.Strings(list)
	return strings.Join(list, "+")
}

func containsAccepting(a *Automaton, states map[string]bool) bool {
	for s := range states {
		if a.IsAccepting(s) {
			return true
		}
	}
	return false
}
