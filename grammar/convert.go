package grammar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Tirppy/lfa-course-repo/automaton"
)

const acceptState = "q_accept"

// ToAutomaton converts a right-linear grammar into a finite automaton: one
// state per non-terminal plus a synthetic accepting state. A -> a becomes a
// transition into the accepting state, A -> a B a transition into B, and an
// ε-alternative marks A itself as accepting. Any other production shape is a
// contract violation and is reported, not guessed around.
//
// Alternatives sharing a (non-terminal, terminal) pair accumulate into one
// destination set, so an ambiguous grammar yields a non-deterministic
// automaton. That is expected, not an error.
func (g *Grammar) ToAutomaton() (*automaton.Automaton, error) {
	accept := acceptState
	for g.NonTerminals.Has(accept) || g.Terminals.Has(accept) {
		accept += "_"
	}

	a := automaton.New(append(g.NonTerminals.Sorted(), accept), g.Terminals.Sorted(), g.Start)

	usedAccept := false
	for _, name := range g.sortedNames() {
		for _, p := range g.sortedRules(name) {
			switch {
			case p.IsEpsilon():
				a.Finals = a.Finals.Append(name)
			case len(p) == 1 && g.Terminals.Has(p[0]):
				a.AddTransition(name, p[0], accept)
				usedAccept = true
			case len(p) == 2 && g.Terminals.Has(p[0]) && g.NonTerminals.Has(p[1]):
				a.AddTransition(name, p[0], p[1])
			default:
				return nil, fmt.Errorf("production %v -> %v is not right-linear", name, p)
			}
		}
	}

	if usedAccept {
		a.Finals = a.Finals.Append(accept)
	} else {
		a.States.Delete(accept)
	}

	return a, nil
}

// FromAutomaton builds the regular grammar induced by an automaton: one
// non-terminal per state (uppercased), a production STATE -> symbol NEXTSTATE
// per transition, and an ε-production per final state. It is the structural
// inverse of ToAutomaton up to state renaming.
func FromAutomaton(a *automaton.Automaton) (*Grammar, error) {
	if len(a.Alphabet) == 0 {
		return nil, errors.New("automaton has an empty alphabet")
	}
	if !a.States.Has(a.Start) {
		return nil, fmt.Errorf("start state %q is not a state", a.Start)
	}

	g := New(nil, a.Alphabet.Sorted(), nil, strings.ToUpper(a.Start))
	for _, st := range a.States.Sorted() {
		g.NonTerminals = g.NonTerminals.Append(strings.ToUpper(st))
	}

	for _, st := range a.States.Sorted() {
		for _, sym := range a.Alphabet.Sorted() {
			for _, next := range a.Next(st, sym) {
				g.AddProductions(strings.ToUpper(st), Production{sym, strings.ToUpper(next)})
			}
		}
		if a.Finals.Has(st) {
			g.AddProductions(strings.ToUpper(st), Production{Epsilon})
		}
	}

	return g, nil
}
