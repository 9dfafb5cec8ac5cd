package automaton

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/Tirppy/lfa-course-repo/slices"
)

// WriteDOT prints a Graphviz representation of the automaton to w. Final
// states are drawn as double circles and the start state is highlighted; a
// synthetic point node marks the entry arrow.
func (a *Automaton) WriteDOT(w io.Writer) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")

	for _, s := range a.States.Sorted() {
		shape := "circle"
		if a.Finals.Has(s) {
			shape = "doublecircle"
		}
		if s == a.Start {
			fmt.Fprintf(w, "    %q [shape=%s, style=filled, fillcolor=lightblue];\n", s, shape)
		} else {
			fmt.Fprintf(w, "    %q [shape=%s];\n", s, shape)
		}
	}

	for _, m := range a.sortedMoves() {
		for _, to := range slices.Sort(slices.Clone(a.Transitions[m])) {
			fmt.Fprintf(w, "    %q -> %q [label=%q];\n", m.From, to, m.On)
		}
	}

	fmt.Fprintf(w, "    _start [shape=point]; _start -> %q;\n", a.Start)
	fmt.Fprintln(w, "}")
}

// TransitionTable renders the relation as a state-by-symbol table, with
// start and final states marked in the first column.
func (a *Automaton) TransitionTable() string {
	alphabet := a.Alphabet.Sorted()

	buf := bytes.NewBuffer(nil)
	w := tablewriter.NewWriter(buf)
	w.SetHeader(append([]string{"state"}, alphabet...))

	for _, s := range a.States.Sorted() {
		label := s
		if s == a.Start {
			label = "-> " + label
		}
		if a.Finals.Has(s) {
			label = "* " + label
		}

		row := append([]string{label}, slices.Remap(alphabet, func(_ int, sym string) string {
			return strings.Join(slices.Sort(slices.Clone(a.Next(s, sym))), ",")
		})...)
		w.Append(row)
	}

	w.Render()
	return buf.String()
}

func (a *Automaton) sortedMoves() []Move {
	moves := make([]Move, 0, len(a.Transitions))
	for m := range a.Transitions {
		moves = append(moves, m)
	}
	return slices.SortFunc(moves, func(x, y Move) bool {
		if x.From != y.From {
			return x.From < y.From
		}
		return x.On < y.On
	})
}
