package grammar

import (
	"github.com/Tirppy/lfa-course-repo/sets"
	"github.com/Tirppy/lfa-course-repo/slices"
)

// Nullable computes the non-terminals that can derive the empty string: the
// ones with a direct ε-production, then transitively the ones owning a
// production built entirely from already-nullable symbols. The loop iterates
// to a fixed point over an owned set, never mutating while scanning a rule.
func (g *Grammar) Nullable() sets.Set[string] {
	nullable := sets.New[string]()

	for changed := true; changed; {
		changed = false
		for _, name := range g.sortedNames() {
			if nullable.Has(name) {
				continue
			}
			for _, p := range g.Productions[name] {
				allNullable := !p.IsEpsilon() && !slices.ContainsFunc(p, func(sym string) bool { return !nullable.Has(sym) })
				if p.IsEpsilon() || allNullable {
					nullable = nullable.Append(name)
					changed = true
					break
				}
			}
		}
	}

	return nullable
}

// RemoveEpsilonRules rewrites every production into the full set of variants
// obtained by omitting any subset of its nullable symbols, then drops the
// ε-productions themselves. The fully-empty variant survives only for the
// start symbol, as an explicit Start -> ε.
func (g *Grammar) RemoveEpsilonRules() {
	nullable := g.Nullable()

	next := make(map[string][]Production, len(g.Productions))
	for _, name := range g.sortedNames() {
		seen := make(map[uint64]struct{})
		var rules []Production

		for _, p := range g.sortedRules(name) {
			if p.IsEpsilon() {
				continue
			}

			variants := slices.Remap(p, func(_ int, sym string) []string {
				if nullable.Has(sym) {
					return []string{Epsilon, sym}
				}
				return []string{sym}
			})

			for _, variant := range slices.Possibles(variants) {
				variant = slices.Filter(variant, func(sym string) bool { return sym != Epsilon })

				alt := Production(variant)
				if len(variant) == 0 {
					if name != g.Start {
						continue
					}
					alt = Production{Epsilon}
				}

				if _, ok := seen[alt.Hash()]; ok {
					continue
				}
				seen[alt.Hash()] = struct{}{}
				rules = append(rules, alt)
			}
		}

		if name == g.Start && nullable.Has(name) {
			alt := Production{Epsilon}
			if _, ok := seen[alt.Hash()]; !ok {
				rules = append(rules, alt)
			}
		}

		if len(rules) > 0 {
			next[name] = rules
		}
	}

	g.Productions = next
}
