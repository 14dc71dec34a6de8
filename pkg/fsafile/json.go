package fsafile

import (
	"encoding/json"

	"github.com/ha1tch/fsa2re/pkg/fsa"
)

// jsonAutomaton is the JSON representation of an automaton.
type jsonAutomaton struct {
	Type        string           `json:"type"`
	States      []string         `json:"states"`
	Alphabet    []string         `json:"alphabet"`
	Initial     string           `json:"initial"`
	Accepting   []string         `json:"accepting"`
	Transitions []fsa.Transition `json:"transitions"`
}

// ParseJSON parses an automaton from JSON.
func ParseJSON(data []byte) (*fsa.Automaton, error) {
	var j jsonAutomaton
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, err
	}
	return fromRepresentation(j.Type, j.States, j.Alphabet, j.Initial, j.Accepting, j.Transitions), nil
}

// ToJSON converts an automaton to JSON.
func ToJSON(a *fsa.Automaton, pretty bool) ([]byte, error) {
	j := jsonAutomaton{
		Type:        string(a.Type),
		States:      a.States,
		Alphabet:    a.Alphabet,
		Initial:     a.Initial,
		Accepting:   a.Accepting,
		Transitions: a.Transitions,
	}
	if pretty {
		return json.MarshalIndent(j, "", "  ")
	}
	return json.Marshal(j)
}

// fromRepresentation rebuilds an automaton from decoded fields, restoring
// the sorted de-duplicated state order.
func fromRepresentation(typ string, states, alphabet []string, initial string, accepting []string, transitions []fsa.Transition) *fsa.Automaton {
	a := fsa.New(fsa.Type(typ))
	for _, s := range states {
		a.AddState(s)
	}
	a.Alphabet = alphabet
	a.SetInitial(initial)
	a.SetAccepting(accepting)
	a.Transitions = transitions
	if a.Alphabet == nil {
		a.Alphabet = make([]string, 0)
	}
	if a.Accepting == nil {
		a.Accepting = make([]string, 0)
	}
	if a.Transitions == nil {
		a.Transitions = make([]fsa.Transition, 0)
	}
	return a
}
