package fsafile

import (
	"gopkg.in/yaml.v3"

	"github.com/ha1tch/fsa2re/pkg/fsa"
)

// yamlAutomaton is the YAML representation of an automaton.
type yamlAutomaton struct {
	Type        string           `yaml:"type"`
	States      []string         `yaml:"states"`
	Alphabet    []string         `yaml:"alphabet"`
	Initial     string           `yaml:"initial"`
	Accepting   []string         `yaml:"accepting"`
	Transitions []fsa.Transition `yaml:"transitions"`
}

// ParseYAML parses an automaton from YAML.
func ParseYAML(data []byte) (*fsa.Automaton, error) {
	var y yamlAutomaton
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, err
	}
	return fromRepresentation(y.Type, y.States, y.Alphabet, y.Initial, y.Accepting, y.Transitions), nil
}

// ToYAML converts an automaton to YAML.
func ToYAML(a *fsa.Automaton) ([]byte, error) {
	y := yamlAutomaton{
		Type:        string(a.Type),
		States:      a.States,
		Alphabet:    a.Alphabet,
		Initial:     a.Initial,
		Accepting:   a.Accepting,
		Transitions: a.Transitions,
	}
	return yaml.Marshal(y)
}
