// Package grammar models formal grammars as (non-terminals, terminals,
// productions, start symbol) and implements the operations the lab suite
// needs: Chomsky-hierarchy classification, conversion to and from finite
// automata for the regular case, random derivation, and Chomsky Normal Form
// normalization.
package grammar

import (
	"fmt"
	"strings"

	"github.com/zeebo/xxh3"
	"golang.org/x/exp/maps"

	"github.com/Tirppy/lfa-course-repo/sets"
	"github.com/Tirppy/lfa-course-repo/slices"
)

// Epsilon marks the empty string on a production right-hand side.
const Epsilon = "ε"

// Production is one right-hand side: a sequence of terminal and non-terminal
// symbols. The empty string is written either as an empty sequence or as the
// single Epsilon marker.
type Production []string

func (p Production) String() string {
	if p.IsEpsilon() {
		return Epsilon
	}
	return strings.Join(p, " ")
}

func (p Production) IsEpsilon() bool {
	return len(p) == 0 || (len(p) == 1 && p[0] == Epsilon)
}

func (p Production) Eq(o Production) bool { return slices.Equal(p, o) }

func (p Production) Clone() Production { return slices.Clone(p) }

const emptyHash uint64 = 0x2d06800538d394c2

// Hash is stable across runs and collision-free enough to dedup alternatives
// within one non-terminal.
func (p Production) Hash() uint64 {
	if p.IsEpsilon() {
		return emptyHash
	}
	return xxh3.HashString(strings.Join(p, "\x1f"))
}

type Grammar struct {
	NonTerminals sets.Set[string]
	Terminals    sets.Set[string]
	Productions  map[string][]Production
	Start        string
}

func New(nonTerminals, terminals []string, productions map[string][]Production, start string) *Grammar {
	g := &Grammar{
		NonTerminals: sets.New(nonTerminals...),
		Terminals:    sets.New(terminals...),
		Productions:  make(map[string][]Production, len(productions)),
		Start:        start,
	}
	for name, rules := range productions {
		g.AddProductions(name, rules...)
	}
	return g
}

// AddProductions appends alternatives for the non-terminal, silently dropping
// duplicates.
func (g *Grammar) AddProductions(name string, rules ...Production) {
	existing := slices.ToMap(slices.Remap(g.Productions[name], func(_ int, p Production) uint64 { return p.Hash() }))
	for _, p := range rules {
		h := p.Hash()
		if _, ok := existing[h]; ok {
			continue
		}
		existing[h] = struct{}{}
		g.Productions[name] = append(g.Productions[name], p.Clone())
	}
}

// Validate checks the structural invariant: the start symbol is a known
// non-terminal, terminals and non-terminals are disjoint, every production
// key is a non-terminal and every RHS symbol is a terminal, a non-terminal,
// or the Epsilon marker.
func (g *Grammar) Validate() error {
	if !g.NonTerminals.Has(g.Start) {
		return fmt.Errorf("start symbol %q is not a non-terminal", g.Start)
	}
	if !g.NonTerminals.Disjoint(g.Terminals) {
		return fmt.Errorf("terminals and non-terminals overlap")
	}
	for _, name := range g.sortedNames() {
		if !g.NonTerminals.Has(name) {
			return fmt.Errorf("production key %q is not a non-terminal", name)
		}
		for _, p := range g.Productions[name] {
			for _, sym := range p {
				if sym != Epsilon && !g.NonTerminals.Has(sym) && !g.Terminals.Has(sym) {
					return fmt.Errorf("production %v -> %v references unknown symbol %q", name, p, sym)
				}
			}
		}
	}
	return nil
}

func (g *Grammar) Clone() *Grammar {
	res := &Grammar{
		NonTerminals: g.NonTerminals.Clone(),
		Terminals:    g.Terminals.Clone(),
		Productions:  make(map[string][]Production, len(g.Productions)),
		Start:        g.Start,
	}
	for name, rules := range g.Productions {
		res.Productions[name] = slices.Remap(rules, func(_ int, p Production) Production { return p.Clone() })
	}
	return res
}

// String renders the grammar as "NonTerminal -> alt1 | alt2" lines, start
// symbol first, the rest sorted.
func (g *Grammar) String() string {
	names := slices.Filter(g.sortedNames(), func(n string) bool { return n != g.Start })
	if _, ok := g.Productions[g.Start]; ok {
		names = append([]string{g.Start}, names...)
	}

	lines := slices.Remap(names, func(_ int, name string) string {
		alts := slices.Remap(g.sortedRules(name), func(_ int, p Production) string { return p.String() })
		return name + " -> " + strings.Join(alts, " | ")
	})

	return strings.Join(lines, "\n")
}

func (g *Grammar) sortedNames() []string { return slices.Sort(maps.Keys(g.Productions)) }

func (g *Grammar) sortedRules(name string) []Production {
	return slices.SortFunc(slices.Clone(g.Productions[name]), func(a, b Production) bool {
		return a.String() < b.String()
	})
}

// shrinkTerminals drops terminals no longer mentioned by any production.
func (g *Grammar) shrinkTerminals() {
	used := sets.New[string]()
	for _, rules := range g.Productions {
		for _, p := range rules {
			for _, sym := range p {
				if g.Terminals.Has(sym) {
					used = used.Append(sym)
				}
			}
		}
	}
	g.Terminals = used
}
