package pipelang

import (
	"fmt"
	"strings"
)

type Arg struct {
	Type  TokenType
	Value string
}

func (a Arg) String() string { return fmt.Sprintf("Arg(type=%v, value=%q)", a.Type, a.Value) }

type Command struct {
	Name string
	Args []Arg
}

type Pipeline struct {
	Commands []Command
}

type Program struct {
	Pipelines []Pipeline
}

// Pretty renders the program as an indented tree, one node per line.
func (p Program) Pretty() string {
	var b strings.Builder
	b.WriteString("Program(pipelines=[\n")
	for _, pl := range p.Pipelines {
		pl.pretty(&b, 2)
	}
	b.WriteString("])")
	return b.String()
}

func (p Pipeline) pretty(b *strings.Builder, indent int) {
	pad := strings.Repeat(" ", indent)
	b.WriteString(pad + "Pipeline(commands=[\n")
	for _, c := range p.Commands {
		c.pretty(b, indent+2)
	}
	b.WriteString(pad + "])\n")
}

func (c Command) pretty(b *strings.Builder, indent int) {
	pad := strings.Repeat(" ", indent)
	fmt.Fprintf(b, "%sCommand(name=%q, args=[\n", pad, c.Name)
	for _, a := range c.Args {
		fmt.Fprintf(b, "%s%s%v,\n", pad, pad, a)
	}
	b.WriteString(pad + "])\n")
}
