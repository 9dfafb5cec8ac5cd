// Package pipelang lexes and parses the pipeline-style media editing DSL:
//
//	open vid1 "file.mp4" |> trim 5s |> save "out.mp4"
//
// Programs are sequences of pipelines; a pipeline chains commands with |>,
// and each command is a name followed by string, time, number or identifier
// arguments.
package pipelang

type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF
	COMMENT
	NEWLINE
	PIPE    // |>
	STRING  // "..."
	TIME    // 00:05
	NUMBER  // 12, 3.5, 5s, 2x
	IDENT
	KEYWORD
)

var tokenNames = map[TokenType]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	COMMENT: "COMMENT",
	NEWLINE: "NEWLINE",
	PIPE:    "PIPE",
	STRING:  "STRING",
	TIME:    "TIME",
	NUMBER:  "NUMBER",
	IDENT:   "IDENT",
	KEYWORD: "KEYWORD",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// Keywords of the DSL, kept verbatim from the language definition (including
// the historical "operlap" spelling).
var keywords = []string{
	"open", "fade", "trim", "save", "show", "as", "delay", "volume", "mix",
	"split", "loop", "join", "overlay", "overlayAudio", "export", "format",
	"resolution", "bitrate", "extract", "cut", "insert", "rotate", "blank",
	"overwrite", "operlap",
}
