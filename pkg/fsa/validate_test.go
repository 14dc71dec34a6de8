package fsa

import "testing"

// buildFSA assembles a small automaton the way the parser would.
func buildFSA(t Type, states, alphabet []string, initial string, accepting []string, transitions ...Transition) *Automaton {
	a := New(t)
	for _, s := range states {
		a.AddState(s)
	}
	a.Alphabet = alphabet
	a.SetInitial(initial)
	a.SetAccepting(accepting)
	a.Transitions = transitions
	return a
}

func TestValidateOK(t *testing.T) {
	a := buildFSA(TypeDeterministic,
		[]string{"q0", "q1"}, []string{"a", "b"}, "q0", []string{"q1"},
		Transition{"q0", "a", "q1"},
		Transition{"q1", "b", "q0"},
	)
	if err := a.Validate(); err != nil {
		t.Errorf("Expected valid automaton, got %v", err)
	}
}

func TestValidateSingleStateNoTransitions(t *testing.T) {
	// A lone initial state with no transitions is trivially reachable.
	a := buildFSA(TypeDeterministic,
		[]string{"q0"}, []string{"a"}, "q0", []string{"q0"})
	if err := a.Validate(); err != nil {
		t.Errorf("Expected valid single-state automaton, got %v", err)
	}
}

func TestValidateDuplicateTransitions(t *testing.T) {
	a := buildFSA(TypeNonDeterministic,
		[]string{"q0"}, []string{"a"}, "q0", []string{"q0"},
		Transition{"q0", "a", "q0"},
		Transition{"q0", "a", "q0"},
	)
	if got := CodeOf(a.Validate()); got != CodeMalformed {
		t.Errorf("Expected CodeMalformed, got %v", got)
	}
}

func TestValidateInitialUndefined(t *testing.T) {
	a := buildFSA(TypeDeterministic,
		[]string{"q0"}, []string{"a"}, "", []string{"q0"})
	if got := CodeOf(a.Validate()); got != CodeInitUndefined {
		t.Errorf("Expected CodeInitUndefined, got %v", got)
	}
}

func TestValidateInitialUnknown(t *testing.T) {
	a := buildFSA(TypeDeterministic,
		[]string{"q0"}, []string{"a"}, "q9", []string{"q0"})
	err := a.Validate()
	if got := CodeOf(err); got != CodeInvalidState {
		t.Fatalf("Expected CodeInvalidState, got %v", got)
	}
	if e := err.(*Error); e.Detail != "q9" {
		t.Errorf("Expected detail 'q9', got %q", e.Detail)
	}
}

func TestValidateNoAcceptingStates(t *testing.T) {
	a := buildFSA(TypeDeterministic,
		[]string{"q0"}, []string{"a"}, "q0", nil)
	if got := CodeOf(a.Validate()); got != CodeNoAccepting {
		t.Errorf("Expected CodeNoAccepting, got %v", got)
	}
}

func TestValidateAcceptingUnknown(t *testing.T) {
	a := buildFSA(TypeDeterministic,
		[]string{"q0"}, []string{"a"}, "q0", []string{"q7"})
	err := a.Validate()
	if got := CodeOf(err); got != CodeInvalidState {
		t.Fatalf("Expected CodeInvalidState, got %v", got)
	}
	if e := err.(*Error); e.Detail != "q7" {
		t.Errorf("Expected detail 'q7', got %q", e.Detail)
	}
}

func TestValidateTransitionEndpoints(t *testing.T) {
	base := func() *Automaton {
		return buildFSA(TypeNonDeterministic,
			[]string{"q0", "q1"}, []string{"a"}, "q0", []string{"q1"})
	}

	a := base()
	a.Transitions = []Transition{{"qX", "a", "q1"}, {"q0", "a", "q1"}}
	if got := CodeOf(a.Validate()); got != CodeInvalidState {
		t.Errorf("Unknown source: expected CodeInvalidState, got %v", got)
	}

	a = base()
	a.Transitions = []Transition{{"q0", "a", "qY"}, {"q0", "a", "q1"}}
	if got := CodeOf(a.Validate()); got != CodeInvalidState {
		t.Errorf("Unknown dest: expected CodeInvalidState, got %v", got)
	}

	a = base()
	a.Transitions = []Transition{{"q0", "z", "q1"}, {"q0", "a", "q1"}}
	err := a.Validate()
	if got := CodeOf(err); got != CodeInvalidSymbol {
		t.Fatalf("Unknown symbol: expected CodeInvalidSymbol, got %v", got)
	}
	if e := err.(*Error); e.Detail != "z" {
		t.Errorf("Expected detail 'z', got %q", e.Detail)
	}

	a = base()
	a.Transitions = []Transition{{"", "a", "q1"}, {"q0", "a", "q1"}}
	if got := CodeOf(a.Validate()); got != CodeMalformed {
		t.Errorf("Empty source: expected CodeMalformed, got %v", got)
	}
}

func TestValidateDisjointStates(t *testing.T) {
	// q2 is declared but no transition mentions it.
	a := buildFSA(TypeDeterministic,
		[]string{"q0", "q1", "q2"}, []string{"a", "b"}, "q0", []string{"q1"},
		Transition{"q0", "a", "q1"},
		Transition{"q1", "b", "q0"},
	)
	if got := CodeOf(a.Validate()); got != CodeDisjoint {
		t.Errorf("Expected CodeDisjoint, got %v", got)
	}
}

func TestValidateUnreachableComponent(t *testing.T) {
	// q2 and q3 reference each other but neither is reachable from q0.
	a := buildFSA(TypeNonDeterministic,
		[]string{"q0", "q1", "q2", "q3"}, []string{"a"}, "q0", []string{"q1"},
		Transition{"q0", "a", "q1"},
		Transition{"q2", "a", "q3"},
		Transition{"q3", "a", "q2"},
	)
	if got := CodeOf(a.Validate()); got != CodeDisjoint {
		t.Errorf("Expected CodeDisjoint, got %v", got)
	}
}

func TestValidateNondeterministic(t *testing.T) {
	transitions := []Transition{
		{"q0", "a", "q0"},
		{"q0", "a", "q1"},
		{"q1", "a", "q0"},
	}

	a := buildFSA(TypeDeterministic,
		[]string{"q0", "q1"}, []string{"a"}, "q0", []string{"q1"}, transitions...)
	if got := CodeOf(a.Validate()); got != CodeNondeterministic {
		t.Errorf("Expected CodeNondeterministic, got %v", got)
	}

	// The same automaton declared non-deterministic passes.
	a = buildFSA(TypeNonDeterministic,
		[]string{"q0", "q1"}, []string{"a"}, "q0", []string{"q1"}, transitions...)
	if err := a.Validate(); err != nil {
		t.Errorf("Expected non-deterministic declaration to pass, got %v", err)
	}
}

func TestValidateCheckOrder(t *testing.T) {
	// Duplicate triples and an unknown initial state at once: the duplicate
	// check runs first.
	a := buildFSA(TypeDeterministic,
		[]string{"q0"}, []string{"a"}, "q9", []string{"q0"},
		Transition{"q0", "a", "q0"},
		Transition{"q0", "a", "q0"},
	)
	if got := CodeOf(a.Validate()); got != CodeMalformed {
		t.Errorf("Expected CodeMalformed to win, got %v", got)
	}
}

func TestStateDeduplication(t *testing.T) {
	a := New(TypeDeterministic)
	for _, s := range []string{"q1", "q0", "q1", "q0", "q1"} {
		a.AddState(s)
	}

	b := New(TypeDeterministic)
	for _, s := range []string{"q0", "q1"} {
		b.AddState(s)
	}

	if len(a.States) != len(b.States) {
		t.Fatalf("Expected %d states after dedup, got %d", len(b.States), len(a.States))
	}
	for i := range a.States {
		if a.States[i] != b.States[i] {
			t.Errorf("State %d: expected %q, got %q", i, b.States[i], a.States[i])
		}
	}
}

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err  *Error
		want string
	}{
		{NewError(CodeMalformed, ""), "E1: Input file is malformed"},
		{NewError(CodeInitUndefined, ""), "E2: Initial state is not defined"},
		{NewError(CodeNoAccepting, ""), "E3: Set of accepting states is empty"},
		{NewError(CodeInvalidState, "q3"), "E4: A state 'q3' is not in the set of states"},
		{NewError(CodeInvalidSymbol, "c"), "E5: A transition 'c' is not represented in the alphabet"},
		{NewError(CodeDisjoint, ""), "E6: Some states are disjoint"},
		{NewError(CodeNondeterministic, ""), "E7: FSA is non-deterministic"},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("Expected %q, got %q", c.want, got)
		}
	}
}
