package grammar

import (
	"github.com/Tirppy/lfa-course-repo/sets"
	"github.com/Tirppy/lfa-course-repo/slices"
)

// RemoveInaccessible drops every non-terminal not reachable from the start
// symbol through production right-hand sides, then shrinks the terminal set
// to what the surviving productions still mention.
func (g *Grammar) RemoveInaccessible() {
	reachable := sets.New(g.Start)
	queue := []string{g.Start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, p := range g.Productions[current] {
			for _, sym := range p {
				if g.NonTerminals.Has(sym) && !reachable.Has(sym) {
					reachable = reachable.Append(sym)
					queue = append(queue, sym)
				}
			}
		}
	}

	for _, name := range g.sortedNames() {
		if !reachable.Has(name) {
			delete(g.Productions, name)
		}
	}
	g.NonTerminals = sets.New(slices.Filter(g.NonTerminals.Sorted(), reachable.Has)...)
	g.shrinkTerminals()
}

// RemoveNonProductive drops the non-terminals that cannot derive any terminal
// string, along with every production mentioning one. Productivity is a fixed
// point: a non-terminal is productive once some alternative consists only of
// terminals, already-productive non-terminals, or ε.
func (g *Grammar) RemoveNonProductive() {
	productive := sets.New[string]()

	usable := func(p Production, productive sets.Set[string]) bool {
		return !slices.ContainsFunc(p, func(sym string) bool {
			return sym != Epsilon && !g.Terminals.Has(sym) && !productive.Has(sym)
		})
	}

	for changed := true; changed; {
		changed = false
		for _, name := range g.sortedNames() {
			if productive.Has(name) {
				continue
			}
			for _, p := range g.Productions[name] {
				if usable(p, productive) {
					productive = productive.Append(name)
					changed = true
					break
				}
			}
		}
	}

	next := make(map[string][]Production, len(g.Productions))
	for _, name := range g.sortedNames() {
		if !productive.Has(name) {
			continue
		}
		rules := slices.Filter(slices.Clone(g.Productions[name]), func(p Production) bool {
			return usable(p, productive)
		})
		if len(rules) > 0 {
			next[name] = rules
		}
	}

	g.Productions = next
	g.NonTerminals = sets.New(slices.Filter(g.NonTerminals.Sorted(), productive.Has)...)
	g.shrinkTerminals()
}
