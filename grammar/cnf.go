package grammar

import (
	"fmt"

	"github.com/Tirppy/lfa-course-repo/sets"
)

// Namer hands out fresh non-terminal names. It is owned by the caller and
// threaded through the pipeline explicitly, so independent normalization runs
// never share state.
type Namer struct {
	prefix  string
	counter int
	used    sets.Set[string]
}

func NewNamer(prefix string, used sets.Set[string]) *Namer {
	return &Namer{prefix: prefix, used: used.Clone()}
}

// Next returns the next counter-based name, skipping anything already in use.
func (n *Namer) Next() string {
	for {
		n.counter++
		name := fmt.Sprintf("%s%d", n.prefix, n.counter)
		if !n.used.Has(name) {
			n.used = n.used.Append(name)
			return name
		}
	}
}

// ToCNF converts the grammar to Chomsky Normal Form. The result recognizes
// the same language modulo the empty string, which survives only as an
// explicit Start -> ε production.
//
// The five passes run in a strict order: ε-elimination, unit-production
// elimination, inaccessible-symbol pruning, non-productive-symbol pruning,
// then terminal isolation and binarization. Each pass assumes the invariants
// established by the previous ones, so none may be skipped or reordered.
//
// The receiver is not modified; the passes mutate a private clone.
func (g *Grammar) ToCNF() (*Grammar, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("grammar is not well-formed: %w", err)
	}

	res := g.Clone()
	res.RemoveEpsilonRules()
	res.RemoveUnitRules()
	res.RemoveInaccessible()
	res.RemoveNonProductive()

	// synthetic names must stay disjoint from terminals too
	used := res.NonTerminals.Clone().Append(res.Terminals.Sorted()...)
	res.Binarize(NewNamer("X", used))

	return res, nil
}

// IsCNF reports whether every production is a single terminal, a pair of
// non-terminals, or the sanctioned Start -> ε.
func (g *Grammar) IsCNF() bool {
	for name, rules := range g.Productions {
		for _, p := range rules {
			switch {
			case p.IsEpsilon():
				if name != g.Start {
					return false
				}
			case len(p) == 1:
				if !g.Terminals.Has(p[0]) {
					return false
				}
			case len(p) == 2:
				if !g.NonTerminals.Has(p[0]) || !g.NonTerminals.Has(p[1]) {
					return false
				}
			default:
				return false
			}
		}
	}
	return true
}
