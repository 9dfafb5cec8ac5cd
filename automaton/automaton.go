// Package automaton models finite automata over string-named states and
// symbols: possibly non-deterministic transition relations, acceptance by set
// simulation, and conversion to an equivalent DFA by subset construction.
package automaton

import (
	"fmt"
	"strings"

	"github.com/Tirppy/lfa-course-repo/sets"
	"github.com/Tirppy/lfa-course-repo/slices"
)

// Move is a transition-relation key: a source state and an input symbol.
type Move struct {
	From string
	On   string
}

func (m Move) String() string { return fmt.Sprintf("(%v, %v)", m.From, m.On) }

type Automaton struct {
	States   sets.Set[string]
	Alphabet sets.Set[string]

	// Absent keys mean no transition; more than one destination for a key
	// means the automaton is non-deterministic.
	Transitions map[Move][]string

	Start  string
	Finals sets.Set[string]
}

func New(states, alphabet []string, start string, finals ...string) *Automaton {
	return &Automaton{
		States:      sets.New(states...),
		Alphabet:    sets.New(alphabet...),
		Transitions: make(map[Move][]string),
		Start:       start,
		Finals:      sets.New(finals...),
	}
}

// AddTransition records from --on--> to, ignoring destinations already known
// for that pair.
func (a *Automaton) AddTransition(from, on string, to ...string) {
	m := Move{From: from, On: on}
	a.Transitions[m] = slices.GentlyAppend(a.Transitions[m], to...)
}

// Next returns the destinations for the pair, or nothing when the transition
// is absent. Unknown states and symbols are not an error.
func (a *Automaton) Next(from, on string) []string {
	return a.Transitions[Move{From: from, On: on}]
}

// IsDeterministic reports whether every recorded (state, symbol) pair has
// exactly one destination. Missing transitions are fine: partial DFAs count
// as deterministic.
func (a *Automaton) IsDeterministic() bool {
	for _, dst := range a.Transitions {
		if len(dst) > 1 {
			return false
		}
	}
	return true
}

// Accepts simulates the automaton on the given symbol sequence, tracking the
// whole set of states reachable so far. A word is accepted if any run ends in
// a final state, so the same walk serves NFAs and DFAs.
func (a *Automaton) Accepts(word ...string) bool {
	current := []string{a.Start}
	for _, sym := range word {
		var next []string
		for _, st := range current {
			next = slices.GentlyAppend(next, a.Next(st, sym)...)
		}
		if len(next) == 0 {
			return false
		}
		current = next
	}

	return slices.ContainsFunc(current, a.Finals.Has)
}

// Word splits s into one symbol per rune, for alphabets of single-character
// symbols.
func Word(s string) []string {
	return slices.Remap([]rune(s), func(_ int, r rune) string { return string(r) })
}

// String renders the transition relation as "(state, symbol) -> [next]"
// lines in deterministic order.
func (a *Automaton) String() string {
	lines := slices.Remap(a.sortedMoves(), func(_ int, m Move) string {
		dst := slices.Sort(slices.Clone(a.Transitions[m]))
		return fmt.Sprintf("%v -> [%v]", m, strings.Join(dst, ", "))
	})

	return strings.Join(lines, "\n")
}
