package grammar

import (
	"github.com/Tirppy/lfa-course-repo/slices"
)

func (g *Grammar) isUnit(p Production) bool {
	return len(p) == 1 && g.NonTerminals.Has(p[0])
}

// UnitClosure returns the non-terminals reachable from name through chains of
// unit productions, name itself included. Cycles are harmless: a member is
// never added twice, so the worklist drains.
func (g *Grammar) UnitClosure(name string) []string {
	closure := []string{name}
	for i := 0; i < len(closure); i++ {
		for _, p := range g.Productions[closure[i]] {
			if g.isUnit(p) {
				closure = slices.GentlyAppend(closure, p[0])
			}
		}
	}
	return closure
}

// RemoveUnitRules replaces each non-terminal's alternatives with the non-unit
// productions of everything in its unit closure. ε-alternatives do not travel
// through closures; the sanctioned Start -> ε kept by the previous pass stays
// where it is.
func (g *Grammar) RemoveUnitRules() {
	next := make(map[string][]Production, len(g.Productions))

	appendUnique := func(name string, seen map[uint64]struct{}, p Production) {
		if _, ok := seen[p.Hash()]; ok {
			return
		}
		seen[p.Hash()] = struct{}{}
		next[name] = append(next[name], p)
	}

	for _, name := range g.sortedNames() {
		seen := make(map[uint64]struct{})

		for _, member := range g.UnitClosure(name) {
			for _, p := range g.sortedRules(member) {
				if p.IsEpsilon() {
					if name == g.Start && member == g.Start {
						appendUnique(name, seen, p)
					}
					continue
				}
				if g.isUnit(p) {
					continue
				}
				appendUnique(name, seen, p)
			}
		}
	}

	g.Productions = next
}
