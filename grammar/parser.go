package grammar

import (
	"io"

	"github.com/alecthomas/participle/v2"

	"github.com/Tirppy/lfa-course-repo/slices"
)

// Text notation for grammars:
//
//	S : a S | b S | c D | e ;
//	D : e D | d ;
//
// Terminals are named by the caller; everything else on a right-hand side is
// a non-terminal. ε is an ordinary identifier to the lexer and marks the
// empty alternative. The first rule's name is the start symbol.

type fileAST struct {
	Rules []ruleAST `parser:"@@*"`
}

type ruleAST struct {
	Name string   `parser:"@Ident ':'"`
	Alts []altAST `parser:"@@ ( '|' @@ )* ';'"`
}

type altAST struct {
	Symbols []string `parser:"@Ident+"`
}

var parser = participle.MustBuild[fileAST]()

// Parse reads the notation above from r. Symbols listed in terminals become
// the terminal set; the rest are non-terminals.
func Parse(filename string, r io.Reader, terminals ...string) (*Grammar, error) {
	ast, err := parser.Parse(filename, r)
	if err != nil {
		return nil, err
	}

	terms := slices.ToMap(terminals)

	g := New(nil, terminals, nil, "")
	for i, rule := range ast.Rules {
		if i == 0 {
			g.Start = rule.Name
		}
		g.NonTerminals = g.NonTerminals.Append(rule.Name)
	}

	for _, rule := range ast.Rules {
		for _, alt := range rule.Alts {
			for _, sym := range alt.Symbols {
				if _, ok := terms[sym]; !ok && sym != Epsilon {
					g.NonTerminals = g.NonTerminals.Append(sym)
				}
			}
			g.AddProductions(rule.Name, Production(alt.Symbols))
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}
