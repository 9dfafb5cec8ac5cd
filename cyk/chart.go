package cyk

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/Tirppy/lfa-course-repo/slices"
)

// XY addresses a chart cell: Y is the start index of the covered substring,
// X the end index (inclusive), so the filled half is Y <= X.
type XY struct{ X, Y int }

func (n XY) String() string { return fmt.Sprintf("cell[%d:%d]", n.Y, n.X) }

type Chart struct {
	word  []string
	cells map[XY][]string

	startEpsilon bool
}

// Heads returns the non-terminals deriving word[from..to] (inclusive).
func (c *Chart) Heads(from, to int) []string { return c.cells[XY{X: to, Y: from}] }

// Accepts reports whether the start symbol covers the whole word. The empty
// word is accepted only through an explicit Start -> ε.
func (c *Chart) Accepts(start string) bool {
	if len(c.word) == 0 {
		return c.startEpsilon
	}
	return slices.Contains(c.cells[XY{X: len(c.word) - 1, Y: 0}], start)
}

func (c *Chart) String() string {
	buf := bytes.NewBuffer(nil)
	w := tablewriter.NewWriter(buf)
	w.SetHeader(c.word)

	for y := range c.word {
		row := make([]string, len(c.word))
		for x := range c.word {
			row[x] = strings.Join(slices.Sort(slices.Clone(c.cells[XY{X: x, Y: y}])), ",")
		}
		w.Append(row)
	}

	w.Render()
	return buf.String()
}
