package automaton

import (
	"strconv"
	"strings"

	"github.com/Tirppy/lfa-course-repo/slices"
)

// ToDFA builds an equivalent deterministic automaton with the powerset
// construction. The source automaton is left untouched; it does not need to
// be non-deterministic for the conversion to work.
//
// Discovered state sets are named q0, q1, ... in discovery order. The
// worklist is FIFO and symbols are visited in sorted order, so the naming is
// reproducible run to run. States unreachable from the start state never make
// it into the result.
func (a *Automaton) ToDFA() *Automaton {
	alphabet := a.Alphabet.Sorted()

	start := []string{a.Start}
	names := map[string]string{subsetKey(start): "q0"}
	counter := 1

	dfa := New([]string{"q0"}, alphabet, "q0")
	queue := [][]string{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		currentName := names[subsetKey(current)]

		if slices.ContainsFunc(current, a.Finals.Has) {
			dfa.Finals = dfa.Finals.Append(currentName)
		}

		for _, sym := range alphabet {
			var union []string
			for _, st := range current {
				union = slices.GentlyAppend(union, a.Next(st, sym)...)
			}
			if len(union) == 0 {
				continue
			}
			union = slices.Sort(union)

			name, ok := names[subsetKey(union)]
			if !ok {
				name = "q" + strconv.Itoa(counter)
				counter++
				names[subsetKey(union)] = name
				dfa.States = dfa.States.Append(name)
				queue = append(queue, union)
			}

			dfa.Transitions[Move{From: currentName, On: sym}] = []string{name}
		}
	}

	return dfa
}

// subsetKey canonicalizes a set of NFA states. Members must be sorted by the
// caller (the start singleton trivially is).
func subsetKey(members []string) string { return strings.Join(members, "\x1f") }
