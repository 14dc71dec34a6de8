// Command fsaview is a TUI for stepping an automaton through its inputs.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/ha1tch/fsa2re/pkg/fsa"
	"github.com/ha1tch/fsa2re/pkg/fsafile"
)

// Viewer holds the TUI state.
type Viewer struct {
	screen   tcell.Screen
	fsa      *fsa.Automaton
	runner   *fsa.Runner
	filename string
	selected int // index into the alphabet
	message  string
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: fsaview <input>")
		os.Exit(1)
	}

	filename := os.Args[1]
	a, err := loadFSA(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", filename, err)
		os.Exit(1)
	}

	runner, err := fsa.NewRunner(a)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	screen.Clear()

	v := &Viewer{
		screen:   screen,
		fsa:      a,
		runner:   runner,
		filename: filepath.Base(filename),
	}
	v.run()

	screen.Fini()
}

func (v *Viewer) run() {
	for {
		v.draw()
		v.screen.Show()

		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey processes one key event; returning true quits the viewer.
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp, tcell.KeyLeft:
		v.moveSelection(-1)
		return false
	case tcell.KeyDown, tcell.KeyRight:
		v.moveSelection(1)
		return false
	case tcell.KeyEnter:
		v.step()
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case 'k':
		v.moveSelection(-1)
	case 'j':
		v.moveSelection(1)
	case 'r':
		v.runner.Reset()
		v.message = "Reset to initial state"
	case ' ':
		v.step()
	}
	return false
}

func (v *Viewer) moveSelection(delta int) {
	n := len(v.fsa.Alphabet)
	if n == 0 {
		return
	}
	v.selected = (v.selected + delta + n) % n
}

func (v *Viewer) step() {
	if v.selected >= len(v.fsa.Alphabet) {
		return
	}
	symbol := v.fsa.Alphabet[v.selected]
	if err := v.runner.Step(symbol); err != nil {
		v.message = err.Error()
		return
	}
	v.message = fmt.Sprintf("Consumed %q", symbol)
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
