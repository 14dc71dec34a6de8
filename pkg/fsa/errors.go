package fsa

import "fmt"

// Code identifies one of the terminal error conditions detected while
// parsing or validating an automaton description.
type Code int

const (
	// CodeMalformed covers bad input syntax, duplicate transition triples
	// and empty transition source states.
	CodeMalformed Code = iota + 1
	// CodeInitUndefined fires when no initial state is declared.
	CodeInitUndefined
	// CodeNoAccepting fires when the accepting-state set is empty.
	CodeNoAccepting
	// CodeInvalidState fires when a referenced state is not declared.
	CodeInvalidState
	// CodeInvalidSymbol fires when a transition symbol is not in the alphabet.
	CodeInvalidSymbol
	// CodeDisjoint fires when some declared state is unreachable from the
	// initial state.
	CodeDisjoint
	// CodeNondeterministic fires when an automaton declared deterministic
	// has two outgoing transitions on the same symbol from one state.
	CodeNondeterministic
)

// Error is the single error type produced by the parse/validate pipeline.
// Detail carries the offending state or symbol where the condition has one.
type Error struct {
	Code   Code
	Detail string
}

// NewError creates an Error with the given code and detail payload.
func NewError(code Code, detail string) *Error {
	return &Error{Code: code, Detail: detail}
}

func (e *Error) Error() string {
	switch e.Code {
	case CodeMalformed:
		return "E1: Input file is malformed"
	case CodeInitUndefined:
		return "E2: Initial state is not defined"
	case CodeNoAccepting:
		return "E3: Set of accepting states is empty"
	case CodeInvalidState:
		return fmt.Sprintf("E4: A state '%s' is not in the set of states", e.Detail)
	case CodeInvalidSymbol:
		return fmt.Sprintf("E5: A transition '%s' is not represented in the alphabet", e.Detail)
	case CodeDisjoint:
		return "E6: Some states are disjoint"
	case CodeNondeterministic:
		return "E7: FSA is non-deterministic"
	}
	return fmt.Sprintf("unknown error code %d", int(e.Code))
}

// CodeOf returns the error code carried by err, or 0 if err is not an *Error.
func CodeOf(err error) Code {
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return 0
}
