// Package fsa provides core finite state automaton types and operations,
// including validation and conversion to a regular expression.
package fsa

import (
	"fmt"
	"sort"
	"strings"
)

// Type represents the declared kind of automaton.
type Type string

const (
	TypeDeterministic    Type = "deterministic"
	TypeNonDeterministic Type = "non-deterministic"
)

// Transition represents a single state transition triple.
type Transition struct {
	From   string `json:"from" yaml:"from"`
	Symbol string `json:"symbol" yaml:"symbol"`
	To     string `json:"to" yaml:"to"`
}

// Automaton represents a finite state automaton.
// States is kept sorted and free of duplicates; the sorted order fixes the
// state indexing used by the regular-expression construction.
type Automaton struct {
	Type        Type
	States      []string
	Alphabet    []string
	Initial     string
	Accepting   []string
	Transitions []Transition
}

// New creates an empty automaton with the given declared type.
func New(t Type) *Automaton {
	return &Automaton{
		Type:        t,
		States:      make([]string, 0),
		Alphabet:    make([]string, 0),
		Accepting:   make([]string, 0),
		Transitions: make([]Transition, 0),
	}
}

// AddState adds a state, keeping States sorted and duplicate-free.
func (a *Automaton) AddState(name string) {
	i := sort.SearchStrings(a.States, name)
	if i < len(a.States) && a.States[i] == name {
		return
	}
	a.States = append(a.States, "")
	copy(a.States[i+1:], a.States[i:])
	a.States[i] = name
}

// AddSymbol adds an input symbol to the alphabet.
func (a *Automaton) AddSymbol(symbol string) {
	for _, s := range a.Alphabet {
		if s == symbol {
			return
		}
	}
	a.Alphabet = append(a.Alphabet, symbol)
}

// AddTransition adds a transition triple.
func (a *Automaton) AddTransition(from, symbol, to string) {
	a.Transitions = append(a.Transitions, Transition{From: from, Symbol: symbol, To: to})
}

// SetInitial sets the initial state.
func (a *Automaton) SetInitial(state string) {
	a.Initial = state
}

// SetAccepting sets the accepting states.
func (a *Automaton) SetAccepting(states []string) {
	a.Accepting = states
}

// HasState returns true if the state is declared.
func (a *Automaton) HasState(name string) bool {
	return a.StateIndex(name) >= 0
}

// StateIndex returns the index of a state in sorted order, or -1 if not found.
func (a *Automaton) StateIndex(name string) int {
	i := sort.SearchStrings(a.States, name)
	if i < len(a.States) && a.States[i] == name {
		return i
	}
	return -1
}

// HasSymbol returns true if the symbol belongs to the alphabet.
func (a *Automaton) HasSymbol(symbol string) bool {
	for _, s := range a.Alphabet {
		if s == symbol {
			return true
		}
	}
	return false
}

// IsAccepting returns true if the state is an accepting state.
func (a *Automaton) IsAccepting(state string) bool {
	for _, acc := range a.Accepting {
		if acc == state {
			return true
		}
	}
	return false
}

// TransitionsFrom returns all transitions leaving a state on a given symbol.
// For a deterministic automaton this is at most one transition.
func (a *Automaton) TransitionsFrom(from, symbol string) []Transition {
	var result []Transition
	for _, t := range a.Transitions {
		if t.From == from && t.Symbol == symbol {
			result = append(result, t)
		}
	}
	return result
}

// Copy creates a deep copy of the automaton.
func (a *Automaton) Copy() *Automaton {
	c := &Automaton{
		Type:        a.Type,
		States:      make([]string, len(a.States)),
		Alphabet:    make([]string, len(a.Alphabet)),
		Initial:     a.Initial,
		Accepting:   make([]string, len(a.Accepting)),
		Transitions: make([]Transition, len(a.Transitions)),
	}
	copy(c.States, a.States)
	copy(c.Alphabet, a.Alphabet)
	copy(c.Accepting, a.Accepting)
	copy(c.Transitions, a.Transitions)
	return c
}

// String returns a string representation of the automaton.
func (a *Automaton) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("FSA[%s]\n", a.Type))
	sb.WriteString(fmt.Sprintf("  States: %v\n", a.States))
	sb.WriteString(fmt.Sprintf("  Alphabet: %v\n", a.Alphabet))
	sb.WriteString(fmt.Sprintf("  Initial: %s\n", a.Initial))
	sb.WriteString(fmt.Sprintf("  Accepting: %v\n", a.Accepting))
	sb.WriteString(fmt.Sprintf("  Transitions: %d\n", len(a.Transitions)))
	return sb.String()
}
