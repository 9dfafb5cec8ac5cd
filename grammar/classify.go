package grammar

import (
	"github.com/Tirppy/lfa-course-repo/slices"
)

// Type is a level of the Chomsky hierarchy.
type Type int

const (
	Type0 Type = iota // recursively enumerable
	Type1             // context-sensitive
	Type2             // context-free
	Type3             // regular
)

func (t Type) String() string {
	switch t {
	case Type3:
		return "Type 3 (Regular)"
	case Type2:
		return "Type 2 (Context-free)"
	case Type1:
		return "Type 1 (Context-sensitive)"
	default:
		return "Type 0 (Recursively enumerable)"
	}
}

// Classify returns the tightest hierarchy level the grammar satisfies. The
// checks run in descending strictness, so a regular grammar never falls
// through to a looser class.
func (g *Grammar) Classify() Type {
	switch {
	case g.IsRegular():
		return Type3
	case g.IsContextFree():
		return Type2
	case g.IsContextSensitive():
		return Type1
	default:
		return Type0
	}
}

// IsRegular accepts length-2 right-hand sides in either terminal/non-terminal
// or non-terminal/terminal order. A length-1 RHS must be a terminal, with the
// empty string permitted as a special case.
func (g *Grammar) IsRegular() bool {
	for _, rules := range g.Productions {
		for _, p := range rules {
			switch {
			case p.IsEpsilon():
			case len(p) > 2:
				return false
			case len(p) == 2:
				firstTerm := g.Terminals.Has(p[0]) && g.NonTerminals.Has(p[1])
				lastTerm := g.NonTerminals.Has(p[0]) && g.Terminals.Has(p[1])
				if !firstTerm && !lastTerm {
					return false
				}
			default:
				if !g.Terminals.Has(p[0]) {
					return false
				}
			}
		}
	}
	return true
}

// IsContextFree requires every RHS to be built solely from known terminals
// and non-terminals; the left-hand side is a single non-terminal by
// construction of the model. The Epsilon marker is permitted as a standalone
// RHS so that classification stays monotone for regular grammars with an
// ε-alternative.
func (g *Grammar) IsContextFree() bool {
	for _, rules := range g.Productions {
		for _, p := range rules {
			if p.IsEpsilon() {
				continue
			}
			for _, sym := range p {
				if !g.NonTerminals.Has(sym) && !g.Terminals.Has(sym) {
					return false
				}
			}
		}
	}
	return true
}

// IsContextSensitive checks len(LHS) <= len(RHS) for every production. A
// standalone ε right-hand side is permitted in either spelling, matching the
// other predicates; an Epsilon marker buried in a longer RHS contracts and
// disqualifies.
func (g *Grammar) IsContextSensitive() bool {
	for _, rules := range g.Productions {
		for _, p := range rules {
			if p.IsEpsilon() {
				continue
			}
			if slices.Contains(p, Epsilon) {
				return false
			}
		}
	}
	return true
}
