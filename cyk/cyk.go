// Package cyk implements CYK membership checking for grammars in Chomsky
// Normal Form, with a renderable recognition chart.
package cyk

import (
	"fmt"

	"github.com/Tirppy/lfa-course-repo/grammar"
	"github.com/Tirppy/lfa-course-repo/slices"
)

type pair [2]string

type index struct {
	// heads that produce a given non-terminal pair / a given terminal
	pairs map[pair][]string
	units map[string][]string

	startEpsilon bool
}

func buildIndex(g *grammar.Grammar) (*index, error) {
	idx := &index{
		pairs: make(map[pair][]string),
		units: make(map[string][]string),
	}

	for name, rules := range g.Productions {
		for _, p := range rules {
			switch {
			case p.IsEpsilon() && name == g.Start:
				idx.startEpsilon = true
			case len(p) == 1 && g.Terminals.Has(p[0]):
				idx.units[p[0]] = slices.GentlyAppend(idx.units[p[0]], name)
			case len(p) == 2 && g.NonTerminals.Has(p[0]) && g.NonTerminals.Has(p[1]):
				k := pair{p[0], p[1]}
				idx.pairs[k] = slices.GentlyAppend(idx.pairs[k], name)
			default:
				return nil, fmt.Errorf("production %v -> %v is not in Chomsky Normal Form", name, p)
			}
		}
	}

	return idx, nil
}

// Recognize reports whether the word belongs to the language of the
// CNF-shaped grammar g. Each word element is one terminal symbol.
func Recognize(g *grammar.Grammar, word []string) (bool, error) {
	chart, err := BuildChart(g, word)
	if err != nil {
		return false, err
	}
	return chart.Accepts(g.Start), nil
}

// BuildChart fills the full CYK recognition chart for the word.
func BuildChart(g *grammar.Grammar, word []string) (*Chart, error) {
	idx, err := buildIndex(g)
	if err != nil {
		return nil, err
	}

	c := &Chart{
		word:         word,
		cells:        make(map[XY][]string),
		startEpsilon: idx.startEpsilon,
	}

	// diagonal: which heads yield each single terminal
	for i, sym := range word {
		c.cells[XY{X: i, Y: i}] = slices.Clone(idx.units[sym])
	}

	// cell (j..i) combines every split point k: heads deriving word[j..k]
	// paired with heads deriving word[k+1..i]
	for span := 2; span <= len(word); span++ {
		for j := 0; j+span <= len(word); j++ {
			i := j + span - 1

			var heads []string
			for k := j; k < i; k++ {
				for _, left := range c.cells[XY{X: k, Y: j}] {
					for _, right := range c.cells[XY{X: i, Y: k + 1}] {
						heads = slices.GentlyAppend(heads, idx.pairs[pair{left, right}]...)
					}
				}
			}
			c.cells[XY{X: i, Y: j}] = heads
		}
	}

	return c, nil
}
