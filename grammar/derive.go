package grammar

import (
	"math/rand"
	"strings"
)

// Derive produces one random word of the language by leftmost derivation.
// Pending symbols live on an explicit worklist instead of being searched for
// in a partially rewritten string, so the walk never re-scans its own output.
// The caller owns the random source.
func (g *Grammar) Derive(rng *rand.Rand) string {
	var out strings.Builder

	pending := []string{g.Start}
	for len(pending) > 0 {
		sym := pending[0]
		pending = pending[1:]

		switch {
		case sym == Epsilon:
		case g.NonTerminals.Has(sym):
			rules := g.sortedRules(sym)
			replacement := rules[rng.Intn(len(rules))]
			pending = append(replacement.Clone(), pending...)
		default:
			out.WriteString(sym)
		}
	}

	return out.String()
}

// DeriveN produces n random words.
func (g *Grammar) DeriveN(rng *rand.Rand, n int) []string {
	res := make([]string, n)
	for i := range res {
		res[i] = g.Derive(rng)
	}
	return res
}
