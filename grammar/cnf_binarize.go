package grammar

import (
	"golang.org/x/exp/maps"

	"github.com/Tirppy/lfa-course-repo/slices"
)

// Binarize is the final pipeline pass: it isolates terminals out of long
// right-hand sides and then breaks everything longer than two symbols into a
// chain of binary rules.
//
// Terminals inside a RHS of length >= 2 are replaced by T_<symbol> proxies
// (underscores appended until the name is free), each owning the single rule
// T_<symbol> -> symbol. Chains use fresh names from the namer; structurally
// identical remaining suffixes are memoized so they share one synthetic
// non-terminal instead of spawning a new chain each time.
func (g *Grammar) Binarize(namer *Namer) {
	termProxy := make(map[string]string)
	next := make(map[string][]Production, len(g.Productions))

	proxyFor := func(sym string) string {
		if name, ok := termProxy[sym]; ok {
			return name
		}
		name := "T_" + sym
		for g.NonTerminals.Has(name) {
			name += "_"
		}
		termProxy[sym] = name
		g.NonTerminals = g.NonTerminals.Append(name)
		next[name] = append(next[name], Production{sym})
		return name
	}

	isolated := make(map[string][]Production, len(g.Productions))
	for _, name := range g.sortedNames() {
		for _, p := range g.sortedRules(name) {
			if len(p) >= 2 {
				p = Production(slices.Remap(p, func(_ int, sym string) string {
					if g.Terminals.Has(sym) {
						return proxyFor(sym)
					}
					return sym
				}))
			}
			isolated[name] = append(isolated[name], p)
		}
	}

	memo := make(map[uint64]string)
	for _, name := range slices.Sort(maps.Keys(isolated)) {
		for _, p := range isolated[name] {
			g.binarizeRule(next, name, p, memo, namer)
		}
	}

	g.Productions = next
}

// binarizeRule emits A -> X1 Y1, Y1 -> X2 Y2, ... for a long rule, reusing an
// existing synthetic non-terminal whenever the exact remaining suffix has
// been chained before.
func (g *Grammar) binarizeRule(out map[string][]Production, name string, p Production, memo map[uint64]string, namer *Namer) {
	for len(p) > 2 {
		rest := p[1:]

		if cont, ok := memo[rest.Hash()]; ok {
			// the continuation's own rules were emitted on first discovery
			out[name] = append(out[name], Production{p[0], cont})
			return
		}

		cont := namer.Next()
		memo[rest.Hash()] = cont
		g.NonTerminals = g.NonTerminals.Append(cont)
		out[name] = append(out[name], Production{p[0], cont})

		name, p = cont, rest
	}

	out[name] = append(out[name], p)
}
