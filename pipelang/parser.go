package pipelang

import (
	"fmt"

	"github.com/Tirppy/lfa-course-repo/slices"
)

// Parser is a recursive-descent parser over the token stream. Comments are
// dropped up front; newlines separate pipelines.
type Parser struct {
	tokens []Token
	pos    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens: slices.Filter(slices.Clone(tokens), func(t Token) bool { return t.Type != COMMENT }),
	}
}

// Parse reads the whole program: one pipeline per statement, commands chained
// with |>.
func Parse(input []byte) (Program, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return Program{}, err
	}
	return NewParser(tokens).Parse()
}

func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() { p.pos++ }

func (p *Parser) skipNewlines() {
	for p.current().Type == NEWLINE {
		p.advance()
	}
}

func (p *Parser) Parse() (Program, error) {
	var prog Program
	for p.skipNewlines(); p.current().Type != EOF; p.skipNewlines() {
		pl, err := p.parsePipeline()
		if err != nil {
			return Program{}, err
		}
		prog.Pipelines = append(prog.Pipelines, pl)
	}
	return prog, nil
}

func (p *Parser) parsePipeline() (Pipeline, error) {
	cmd, err := p.parseCommand()
	if err != nil {
		return Pipeline{}, err
	}

	pl := Pipeline{Commands: []Command{cmd}}
	for p.current().Type == PIPE {
		p.advance()
		cmd, err := p.parseCommand()
		if err != nil {
			return Pipeline{}, err
		}
		pl.Commands = append(pl.Commands, cmd)
	}
	return pl, nil
}

func (p *Parser) parseCommand() (Command, error) {
	name := p.current()
	if name.Type != IDENT && name.Type != KEYWORD {
		return Command{}, fmt.Errorf("line %d: unexpected %v token %q at command start", name.Line, name.Type, name.Literal)
	}
	p.advance()

	cmd := Command{Name: name.Literal}
	for isArg(p.current().Type) {
		cmd.Args = append(cmd.Args, Arg{Type: p.current().Type, Value: p.current().Literal})
		p.advance()
	}
	return cmd, nil
}

func isArg(t TokenType) bool {
	return t == STRING || t == TIME || t == NUMBER || t == IDENT
}
