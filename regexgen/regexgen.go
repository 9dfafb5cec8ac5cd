// Package regexgen expands the lab's regex dialect into every string it
// denotes. The dialect supports literals, ( a | b ) alternative groups and a
// postfix ^(...) repetition: ^(3) repeats exactly three times, ^(*) zero to
// five, ^(+) and ^() one to five.
package regexgen

import (
	"fmt"
	"strings"

	"github.com/Tirppy/lfa-course-repo/slices"
)

const (
	defaultMin = 1
	defaultMax = 5
)

// piece is one parsed unit: either a literal or a group of alternatives,
// with a repetition range attached.
type piece struct {
	literal string
	alts    [][]piece // non-nil for groups
	min     int
	max     int
}

// Generate parses the pattern and returns every denoted string along with
// the parser's processing trace. Malformed patterns (unbalanced grouping,
// unknown repetition specifier) fail fast.
func Generate(pattern string) ([]string, []string, error) {
	p := &parser{pattern: pattern}
	p.log("Start parsing the regex.")
	pieces, err := p.parseSequence(false)
	if err != nil {
		return nil, p.steps, err
	}
	p.log("Finished parsing the regex.")

	return expand(pieces), p.steps, nil
}

// Trace returns only the processing trace for the pattern.
func Trace(pattern string) ([]string, error) {
	_, steps, err := Generate(pattern)
	return steps, err
}

type parser struct {
	pattern string
	pos     int
	steps   []string
}

func (p *parser) log(format string, args ...any) {
	p.steps = append(p.steps, fmt.Sprintf(format, args...))
}

func (p *parser) parseSequence(inGroup bool) ([]piece, error) {
	var res []piece
	for p.pos < len(p.pattern) {
		if c := p.pattern[p.pos]; c == ')' || (inGroup && c == '|') {
			break
		}
		item, err := p.parsePiece()
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	return res, nil
}

func (p *parser) parsePiece() (piece, error) {
	p.log("Parsing token at index %d: %v", p.pos, p.pattern[p.pos:])

	var res piece
	var err error
	if p.pattern[p.pos] == '(' {
		res, err = p.parseGroup()
	} else {
		res, err = p.parseLiteral()
	}
	if err != nil {
		return piece{}, err
	}

	res.min, res.max = 1, 1
	if p.pos < len(p.pattern) && p.pattern[p.pos] == '^' {
		p.pos++
		if res.min, res.max, err = p.parseRepetition(); err != nil {
			return piece{}, err
		}
		p.log("Applied repetition (%d, %d)", res.min, res.max)
	}
	return res, nil
}

func (p *parser) parseLiteral() (piece, error) {
	start := p.pos
	for p.pos < len(p.pattern) && !strings.ContainsRune("^( )|", rune(p.pattern[p.pos])) {
		p.pos++
	}
	if p.pos == start {
		return piece{}, fmt.Errorf("unexpected character %q at index %d", p.pattern[p.pos], p.pos)
	}

	literal := p.pattern[start:p.pos]
	p.log("Parsed literal: %v", literal)
	return piece{literal: literal}, nil
}

func (p *parser) parseGroup() (piece, error) {
	p.pos++ // consume '('
	p.log("Parsing group starting at index %d", p.pos)

	var alts [][]piece
	for {
		seq, err := p.parseSequence(true)
		if err != nil {
			return piece{}, err
		}
		alts = append(alts, seq)

		if p.pos >= len(p.pattern) {
			return piece{}, fmt.Errorf("unclosed group starting before index %d", p.pos)
		}
		if p.pattern[p.pos] == ')' {
			p.pos++
			break
		}
		p.pos++ // consume '|'
	}

	p.log("Parsed group with %d alternatives", len(alts))
	return piece{alts: alts}, nil
}

func (p *parser) parseRepetition() (min, max int, err error) {
	if p.pos >= len(p.pattern) || p.pattern[p.pos] != '(' {
		return 0, 0, fmt.Errorf("expected '(' after '^' at index %d", p.pos)
	}
	p.pos++

	end := strings.IndexByte(p.pattern[p.pos:], ')')
	if end < 0 {
		return 0, 0, fmt.Errorf("unclosed repetition parenthesis at index %d", p.pos)
	}
	spec := strings.TrimSpace(p.pattern[p.pos : p.pos+end])
	p.pos += end + 1
	p.log("Parsed repetition specifier: %q", spec)

	switch {
	case spec == "*":
		return 0, defaultMax, nil
	case spec == "+", spec == "":
		return defaultMin, defaultMax, nil
	default:
		n := 0
		for _, r := range spec {
			if r < '0' || r > '9' {
				return 0, 0, fmt.Errorf("unknown repetition specifier %q", spec)
			}
			n = n*10 + int(r-'0')
		}
		return n, n, nil
	}
}

// expand walks the pieces and produces the cartesian product of every
// per-piece possibility set.
func expand(pieces []piece) []string {
	if len(pieces) == 0 {
		// an empty alternative denotes the empty string
		return []string{""}
	}

	possibilities := slices.Remap(pieces, func(_ int, item piece) []string {
		return expandPiece(item)
	})

	return slices.Remap(slices.Possibles(possibilities), func(_ int, parts []string) string {
		return strings.Join(parts, "")
	})
}

func expandPiece(item piece) []string {
	base := []string{item.literal}
	if item.alts != nil {
		base = slices.AppendMany(slices.Remap(item.alts, func(_ int, alt []piece) []string {
			return expand(alt)
		})...)
	}

	var res []string
	for count := item.min; count <= item.max; count++ {
		if count == 0 {
			res = slices.GentlyAppend(res, "")
			continue
		}
		for _, s := range base {
			res = append(res, strings.Repeat(s, count))
		}
	}
	return res
}
