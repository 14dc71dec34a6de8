// Package fsafile reads and writes finite state automaton descriptions in
// the line-oriented text format, JSON and YAML, and renders automata as
// Graphviz DOT, SVG and PNG diagrams.
package fsafile

import (
	"os"
	"strings"

	"github.com/ha1tch/fsa2re/pkg/fsa"
)

// keywords are the six required line keywords, in order.
var keywords = [6]string{"type", "states", "alphabet", "initial", "accepting", "transitions"}

// Parse reads a six-line automaton description:
//
//	type=[deterministic|non-deterministic]
//	states=[s1,s2,...]
//	alphabet=[a1,a2,...]
//	initial=[s1]
//	accepting=[s2,s3,...]
//	transitions=[s1>a1>s2,...]
//
// Each line must contain its keyword and a bracketed payload. A missing
// keyword, missing brackets, a surplus line or a transition token without
// exactly three ">"-separated fields is malformed input (E1). Empty bracket
// payloads parse fine; emptiness of the initial or accepting field is a
// validation concern (E2/E3), not a syntax one.
func Parse(data []byte) (*fsa.Automaton, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != len(keywords) {
		return nil, fsa.NewError(fsa.CodeMalformed, "")
	}

	payloads := make([]string, len(keywords))
	for i, line := range lines {
		if !strings.Contains(line, keywords[i]) {
			return nil, fsa.NewError(fsa.CodeMalformed, "")
		}
		payload, err := bracketPayload(line)
		if err != nil {
			return nil, err
		}
		payloads[i] = payload
	}

	typ := fsa.Type(payloads[0])
	if typ != fsa.TypeDeterministic && typ != fsa.TypeNonDeterministic {
		return nil, fsa.NewError(fsa.CodeMalformed, "")
	}

	a := fsa.New(typ)
	for _, s := range splitList(payloads[1]) {
		a.AddState(s)
	}
	a.Alphabet = splitList(payloads[2])
	a.SetInitial(payloads[3])
	a.SetAccepting(splitList(payloads[4]))

	for _, token := range splitList(payloads[5]) {
		fields := strings.Split(token, ">")
		if len(fields) != 3 {
			return nil, fsa.NewError(fsa.CodeMalformed, "")
		}
		a.AddTransition(fields[0], fields[1], fields[2])
	}

	return a, nil
}

// ReadFile reads an automaton description from a file.
func ReadFile(path string) (*fsa.Automaton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Format writes an automaton back out in the six-line text format.
// Formatting a parsed automaton yields an equivalent description; the state
// list comes out sorted and de-duplicated.
func Format(a *fsa.Automaton) []byte {
	var sb strings.Builder
	sb.WriteString("type=[" + string(a.Type) + "]\n")
	sb.WriteString("states=[" + strings.Join(a.States, ",") + "]\n")
	sb.WriteString("alphabet=[" + strings.Join(a.Alphabet, ",") + "]\n")
	sb.WriteString("initial=[" + a.Initial + "]\n")
	sb.WriteString("accepting=[" + strings.Join(a.Accepting, ",") + "]\n")

	tokens := make([]string, len(a.Transitions))
	for i, t := range a.Transitions {
		tokens[i] = t.From + ">" + t.Symbol + ">" + t.To
	}
	sb.WriteString("transitions=[" + strings.Join(tokens, ",") + "]\n")
	return []byte(sb.String())
}

// WriteFile writes an automaton description to a file.
func WriteFile(path string, a *fsa.Automaton) error {
	return os.WriteFile(path, Format(a), 0644)
}

// bracketPayload extracts the text between the first "[" and the "]" after
// it. Either bracket missing is malformed input.
func bracketPayload(line string) (string, error) {
	open := strings.IndexByte(line, '[')
	if open < 0 {
		return "", fsa.NewError(fsa.CodeMalformed, "")
	}
	end := strings.IndexByte(line[open+1:], ']')
	if end < 0 {
		return "", fsa.NewError(fsa.CodeMalformed, "")
	}
	return line[open+1 : open+1+end], nil
}

// splitList splits a comma-separated payload; an empty payload is an empty
// list, not a list of one empty token.
func splitList(payload string) []string {
	if payload == "" {
		return nil
	}
	return strings.Split(payload, ",")
}
