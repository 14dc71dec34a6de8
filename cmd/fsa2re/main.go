// Command fsa2re converts finite state automata to regular expressions and
// works with automaton description files.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ha1tch/fsa2re/pkg/fsa"
	"github.com/ha1tch/fsa2re/pkg/fsafile"
)

const usage = `fsa2re - FSA to regular expression toolkit

Usage:
  fsa2re <command> [options]

Commands:
  convert    Convert an automaton to a regular expression
  validate   Validate an automaton description
  info       Show automaton information and warnings
  dot        Generate Graphviz DOT output
  render     Render an SVG or PNG diagram
  export     Convert between description formats (txt, json, yaml)
  run        Run the automaton interactively

Examples:
  fsa2re convert input.txt
  fsa2re validate input.txt
  fsa2re dot input.txt | dot -Tpng -o diagram.png
  fsa2re render input.txt -f png -o diagram.png
  fsa2re export input.txt -o input.json --pretty
  fsa2re export input.json -o input.txt --dfa
  fsa2re run input.txt

Use "fsa2re <command> -h" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "convert":
		cmdConvert(args)
	case "validate":
		cmdValidate(args)
	case "info":
		cmdInfo(args)
	case "dot":
		cmdDot(args)
	case "render":
		cmdRender(args)
	case "export":
		cmdExport(args)
	case "run":
		cmdRun(args)
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}

// cmdConvert is the main pipeline: parse, validate, construct, emit. Any
// parse or validation failure prints its diagnostic and exits without
// producing a regular expression.
func cmdConvert(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: fsa2re convert <input> [-o output]")
		os.Exit(1)
	}

	input := args[0]
	var output string

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			}
		}
	}

	a, err := loadFSA(input)
	if err != nil {
		fail(err)
	}
	if err := a.Validate(); err != nil {
		fail(err)
	}

	regex := a.Regex()
	if output != "" {
		if err := os.WriteFile(output, []byte(regex+"\n"), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
			os.Exit(1)
		}
		return
	}
	fmt.Println(regex)
}

func cmdValidate(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: fsa2re validate <input>")
		os.Exit(1)
	}

	a, err := loadFSA(args[0])
	if err != nil {
		fail(err)
	}
	if err := a.Validate(); err != nil {
		fail(err)
	}

	fmt.Printf("%s: valid %s FSA with %d states, %d transitions\n",
		args[0], a.Type, len(a.States), len(a.Transitions))
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: fsa2re info <input>")
		os.Exit(1)
	}

	a, err := loadFSA(args[0])
	if err != nil {
		fail(err)
	}

	fmt.Printf("Type:        %s\n", a.Type)
	fmt.Printf("States:      %d %v\n", len(a.States), a.States)
	fmt.Printf("Alphabet:    %d %v\n", len(a.Alphabet), a.Alphabet)
	fmt.Printf("Initial:     %s\n", a.Initial)
	fmt.Printf("Accepting:   %v\n", a.Accepting)
	fmt.Printf("Transitions: %d\n", len(a.Transitions))

	warnings := a.Analyse()
	if len(warnings) > 0 {
		fmt.Println()
		fmt.Println("Warnings:")
		for _, w := range warnings {
			fmt.Printf("  %s: %s\n", w.Type, w.Subject)
		}
	}
}

func cmdDot(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: fsa2re dot <input> [-o output] [-t title]")
		os.Exit(1)
	}

	input := args[0]
	var output, title string

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			}
		case "-t", "--title":
			if i+1 < len(args) {
				title = args[i+1]
				i++
			}
		}
	}

	a, err := loadFSA(input)
	if err != nil {
		fail(err)
	}

	if title == "" {
		title = fmt.Sprintf("%s: %d states", strings.ToUpper(string(a.Type)), len(a.States))
	}

	dot := fsafile.GenerateDOT(a, title)
	if output != "" {
		if err := os.WriteFile(output, []byte(dot), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
			os.Exit(1)
		}
		return
	}
	fmt.Print(dot)
}

func cmdRender(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: fsa2re render <input> [-f svg|png] [-o output] [-t title]")
		os.Exit(1)
	}

	input := args[0]
	format := "svg"
	var output, title string

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-f", "--format":
			if i+1 < len(args) {
				format = args[i+1]
				i++
			}
		case "-o", "--output":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			}
		case "-t", "--title":
			if i+1 < len(args) {
				title = args[i+1]
				i++
			}
		}
	}

	a, err := loadFSA(input)
	if err != nil {
		fail(err)
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
	}

	switch format {
	case "svg":
		opts := fsafile.DefaultSVGOptions()
		opts.Title = title
		err = os.WriteFile(output, []byte(fsafile.RenderSVG(a, opts)), 0644)
	case "png":
		opts := fsafile.DefaultPNGOptions()
		opts.Title = title
		var f *os.File
		f, err = os.Create(output)
		if err == nil {
			err = fsafile.RenderPNG(a, opts, f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown render format: %s\n", format)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
		os.Exit(1)
	}
	fmt.Printf("Written: %s\n", output)
}

func cmdExport(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: fsa2re export <input> [-o output] [--pretty] [--dfa]")
		os.Exit(1)
	}

	input := args[0]
	var output string
	pretty := false
	toDFA := false

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			}
		case "--pretty":
			pretty = true
		case "--dfa":
			toDFA = true
		}
	}

	a, err := loadFSA(input)
	if err != nil {
		fail(err)
	}

	if toDFA {
		if err := a.Validate(); err != nil {
			fail(err)
		}
		a = a.ToDeterministic()
	}

	if output == "" {
		ext := filepath.Ext(input)
		base := strings.TrimSuffix(input, ext)
		if ext == ".json" {
			output = base + ".txt"
		} else {
			output = base + ".json"
		}
	}

	var data []byte
	switch filepath.Ext(output) {
	case ".txt", ".fsa":
		data = fsafile.Format(a)
	case ".json":
		data, err = fsafile.ToJSON(a, pretty)
	case ".yaml", ".yml":
		data, err = fsafile.ToYAML(a)
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format: %s\n", filepath.Ext(output))
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding %s: %v\n", output, err)
		os.Exit(1)
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
		os.Exit(1)
	}
	fmt.Printf("Written: %s\n", output)
}

func cmdRun(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: fsa2re run <input>")
		os.Exit(1)
	}

	a, err := loadFSA(args[0])
	if err != nil {
		fail(err)
	}

	runner, err := fsa.NewRunner(a)
	if err != nil {
		fail(err)
	}

	fmt.Printf("FSA: %s, %d states\n", a.Type, len(a.States))
	fmt.Printf("Commands: <symbol>, reset, status, history, symbols, quit\n")
	fmt.Println()
	fmt.Println(runner.Status())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		cmd := strings.TrimSpace(scanner.Text())
		if cmd == "" {
			continue
		}

		switch cmd {
		case "quit", "exit", "q":
			return
		case "reset":
			runner.Reset()
			fmt.Println("Reset to initial state")
			fmt.Println(runner.Status())
		case "status":
			fmt.Println(runner.Status())
		case "history":
			printHistory(runner)
		case "symbols":
			symbols := runner.AvailableSymbols()
			if len(symbols) == 0 {
				fmt.Println("No symbols available from current state")
			} else {
				fmt.Printf("Available symbols: %v\n", symbols)
			}
		case "help", "?":
			fmt.Println("Commands:")
			fmt.Println("  <symbol> - Feed a symbol to the FSA")
			fmt.Println("  reset    - Reset to initial state")
			fmt.Println("  status   - Show current status")
			fmt.Println("  history  - Show execution history")
			fmt.Println("  symbols  - Show available symbols")
			fmt.Println("  quit     - Exit")
		default:
			if err := runner.Step(cmd); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			fmt.Println(runner.Status())
		}
	}
}

func printHistory(r *fsa.Runner) {
	history := r.History()
	if len(history) == 0 {
		fmt.Println("No history yet")
		return
	}

	fmt.Println("History:")
	for i, step := range history {
		fmt.Printf("  %d: %s --%s--> %s\n",
			i+1, strings.Join(step.From, ","), step.Symbol, strings.Join(step.To, ","))
	}
}

func loadFSA(path string) (*fsa.Automaton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch filepath.Ext(path) {
	case ".json":
		return fsafile.ParseJSON(data)
	case ".yaml", ".yml":
		return fsafile.ParseYAML(data)
	default:
		return fsafile.Parse(data)
	}
}

// fail prints a diagnostic and exits without producing any further output.
// Conversion errors already carry their stable code in the message.
func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
