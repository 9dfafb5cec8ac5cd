package pipelang

import (
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// The machine is compiled once; scanners over it are cheap.
var machine = newMachine()

func newMachine() *lexmachine.Lexer {
	l := lexmachine.NewLexer()

	// newlines separate statements, so they survive as tokens
	l.Add([]byte(`[ \t\r]+`), skip)
	l.Add([]byte(`\n`), tokAction(NEWLINE))
	l.Add([]byte(`#[^\n]*`), tokAction(COMMENT))
	l.Add([]byte(`\|>`), tokAction(PIPE))
	l.Add([]byte(`"[^"\n]*"`), tokAction(STRING))
	l.Add([]byte(`[0-9][0-9]:[0-9][0-9]`), tokAction(TIME))
	l.Add([]byte(`[0-9]+(\.[0-9]+)?[sx]?`), tokAction(NUMBER))

	// keywords before the identifier rule so they win equal-length ties
	for _, kw := range keywords {
		l.Add([]byte(kw), tokAction(KEYWORD))
	}
	l.Add([]byte(`[a-zA-Z_][a-zA-Z0-9_]*`), tokAction(IDENT))

	if err := l.Compile(); err != nil {
		panic(err)
	}
	return l
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func tokAction(t TokenType) lexmachine.Action {
	return func(_ *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{
			Type:    t,
			Literal: string(m.Bytes),
			Line:    m.StartLine,
			Column:  m.StartColumn,
		}, nil
	}
}

type Lexer struct {
	scanner *lexmachine.Scanner
}

func NewLexer(input []byte) (*Lexer, error) {
	scanner, err := machine.Scanner(input)
	if err != nil {
		return nil, err
	}
	return &Lexer{scanner: scanner}, nil
}

// Next returns the next token. Unrecognized input yields an ILLEGAL token
// carrying the scanner's error text; the scanner itself keeps going.
func (l *Lexer) Next() Token {
	tok, err, eof := l.scanner.Next()
	if eof {
		return Token{Type: EOF}
	}
	if err != nil {
		// skip the offending byte so the scanner makes progress
		l.scanner.TC++
		tok := Token{Type: ILLEGAL, Literal: err.Error()}
		if ui, ok := err.(*machines.UnconsumedInput); ok {
			tok.Line = ui.StartLine
			tok.Column = ui.StartColumn
		}
		return tok
	}
	return tok.(Token)
}

// Tokenize collects every token of the input, EOF excluded.
func Tokenize(input []byte) ([]Token, error) {
	l, err := NewLexer(input)
	if err != nil {
		return nil, err
	}

	var res []Token
	for tok := l.Next(); tok.Type != EOF; tok = l.Next() {
		res = append(res, tok)
	}
	return res, nil
}
