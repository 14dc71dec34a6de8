package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Styles
var (
	styleTitle     = tcell.StyleDefault.Bold(true).Foreground(tcell.ColorWhite)
	styleHeading   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleState     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleStateCur  = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)
	styleStateAcc  = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleSymbol    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleSymbolSel = tcell.StyleDefault.Background(tcell.ColorBlue).Foreground(tcell.ColorWhite)
	styleHistory   = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleHelp      = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

func (v *Viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()

	v.drawText(0, 0, styleTitle, fmt.Sprintf("fsaview - %s (%s)", v.filename, v.fsa.Type))

	// States: the current set is highlighted, accepting states carry a
	// double-circle marker like the diagram renderers.
	v.drawText(0, 2, styleHeading, "States")
	current := make(map[string]bool)
	for _, s := range v.runner.CurrentStates() {
		current[s] = true
	}
	x := 2
	for _, state := range v.fsa.States {
		label := state
		if v.fsa.IsAccepting(state) {
			label = "((" + state + "))"
		}
		if state == v.fsa.Initial {
			label = ">" + label
		}

		style := styleState
		if current[state] {
			style = styleStateCur
		} else if v.fsa.IsAccepting(state) {
			style = styleStateAcc
		}

		if x+len(label) >= w {
			break
		}
		v.drawText(x, 3, style, label)
		x += len(label) + 2
	}

	// Alphabet with the current selection.
	v.drawText(0, 5, styleHeading, "Symbols  (arrows select, Enter steps)")
	available := make(map[string]bool)
	for _, s := range v.runner.AvailableSymbols() {
		available[s] = true
	}
	for i, symbol := range v.fsa.Alphabet {
		y := 6 + i
		if y >= h-3 {
			break
		}
		style := styleSymbol
		if i == v.selected {
			style = styleSymbolSel
		}
		marker := " "
		if available[symbol] {
			marker = "*"
		}
		v.drawText(2, y, style, fmt.Sprintf("%s %s", marker, symbol))
	}

	// History tail on the right half.
	hx := w / 2
	v.drawText(hx, 2, styleHeading, "History")
	history := v.runner.History()
	rows := h - 6
	start := 0
	if len(history) > rows {
		start = len(history) - rows
	}
	for i, step := range history[start:] {
		line := fmt.Sprintf("%d: %s --%s--> %s",
			start+i+1, strings.Join(step.From, ","), step.Symbol, strings.Join(step.To, ","))
		if len(line) > w-hx-1 {
			line = line[:w-hx-1]
		}
		v.drawText(hx, 3+i, styleHistory, line)
	}

	// Status bar and help line.
	status := v.runner.Status()
	if v.message != "" {
		status += "  |  " + v.message
	}
	v.drawBar(h-2, styleStatus, status)
	v.drawText(0, h-1, styleHelp, "arrows/jk: select  Enter/space: step  r: reset  q: quit")
}

func (v *Viewer) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range text {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (v *Viewer) drawBar(y int, style tcell.Style, text string) {
	w, _ := v.screen.Size()
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, y, ' ', nil, style)
	}
	v.drawText(0, y, style, text)
}
