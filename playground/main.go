package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/k0kubun/pp"

	"github.com/Tirppy/lfa-course-repo/automaton"
	"github.com/Tirppy/lfa-course-repo/cyk"
	"github.com/Tirppy/lfa-course-repo/grammar"
	"github.com/Tirppy/lfa-course-repo/pipelang"
	"github.com/Tirppy/lfa-course-repo/regexgen"
)

func main() {
	regularGrammarDemo()
	subsetConstructionDemo()
	cnfDemo()
	regexDemo()
	pipelineDemo()
}

func regularGrammarDemo() {
	fmt.Println("=== Regular grammar ===")

	g := grammar.New(
		[]string{"S", "L", "D"},
		[]string{"a", "b", "c", "d", "e", "f", "j"},
		map[string][]grammar.Production{
			"S": {{"a", "S"}, {"b", "S"}, {"c", "D"}, {"d", "L"}, {"e"}},
			"L": {{"e", "L"}, {"f", "L"}, {"j", "D"}, {"e"}},
			"D": {{"e", "D"}, {"d"}},
		},
		"S",
	)

	fmt.Println(g)
	fmt.Println("Classification:", g.Classify())

	rng := rand.New(rand.NewSource(42))
	fmt.Println("Generated strings:")
	for _, s := range g.DeriveN(rng, 5) {
		fmt.Println(" -", s)
	}

	fa, err := g.ToAutomaton()
	if err != nil {
		panic(err)
	}

	fmt.Println("Check strings:")
	for _, s := range []string{"abcde", "dde", "aae", "ce", "bdf"} {
		verdict := "Rejected"
		if fa.Accepts(automaton.Word(s)...) {
			verdict = "Accepted"
		}
		fmt.Printf(" - %q -> %v\n", s, verdict)
	}
	fmt.Println()
}

func subsetConstructionDemo() {
	fmt.Println("=== NFA to DFA ===")

	nfa := automaton.New(
		[]string{"q0", "q1", "q2", "q3"},
		[]string{"a", "b"},
		"q0",
		"q3",
	)
	nfa.AddTransition("q0", "a", "q1", "q2")
	nfa.AddTransition("q1", "b", "q1")
	nfa.AddTransition("q1", "a", "q2")
	nfa.AddTransition("q2", "a", "q1")
	nfa.AddTransition("q2", "b", "q3")

	reg, err := grammar.FromAutomaton(nfa)
	if err != nil {
		panic(err)
	}
	fmt.Println("Regular grammar:")
	fmt.Println(reg)

	fmt.Println("Is deterministic:", nfa.IsDeterministic())

	dfa := nfa.ToDFA()
	fmt.Println("DFA transition table:")
	fmt.Println(dfa.TransitionTable())

	fmt.Println("DFA graph:")
	dfa.WriteDOT(os.Stdout)
	fmt.Println()
}

func cnfDemo() {
	fmt.Println("=== Chomsky Normal Form ===")

	g := grammar.New(
		[]string{"S", "A", "B", "C", "D"},
		[]string{"a", "b"},
		map[string][]grammar.Production{
			"S": {{"a", "B"}, {"b", "A"}, {"A"}},
			"A": {{"B"}, {"A", "S"}, {"a", "B", "A", "B"}, {"b"}},
			"B": {{"b"}, {"b", "S"}, {"a", "D"}, {grammar.Epsilon}},
			"D": {{"A", "A"}},
			"C": {{"B", "a"}},
		},
		"S",
	)

	cnf, err := g.ToCNF()
	if err != nil {
		panic(err)
	}
	fmt.Println("Grammar in Chomsky Normal Form:")
	fmt.Println(cnf)

	word := automaton.Word("ab")
	ok, err := cyk.Recognize(cnf, word)
	if err != nil {
		panic(err)
	}
	fmt.Printf("CYK: %v in language: %v\n\n", word, ok)
}

func regexDemo() {
	fmt.Println("=== Regex generation ===")

	for _, pattern := range []string{
		"(S|T)(U|V)W^()Y^(+)24",
		"L(M|N)O^(3)P^()Q(2|3)",
		"R^(*)S(T|U|V)W(X|Y|Z)^(2)",
	} {
		words, steps, err := regexgen.Generate(pattern)
		if err != nil {
			panic(err)
		}
		fmt.Printf("--- %v ---\n", pattern)
		fmt.Println("Total combinations generated:", len(words))
		if len(words) > 10 {
			words = words[:10]
		}
		fmt.Println("Examples:", words)
		fmt.Println("Processing trace:")
		for _, step := range steps {
			fmt.Println("  ", step)
		}
	}
	fmt.Println()
}

func pipelineDemo() {
	fmt.Println("=== Pipeline DSL ===")

	code := []byte(`
# creates vid1, edit and save
open vid1 "C:\Downloads\Video.mp4" |> blank |> save ".../../audio.mp3" |> show |> as audio1

vid1 |> trim 5s |> as vid1 |> overwrite audio1 00:05 10s |> operlap vid2 01:00 |> show
`)

	tokens, err := pipelang.Tokenize(code)
	if err != nil {
		panic(err)
	}
	for _, tok := range tokens {
		fmt.Printf("Token(%v, %q, %d, %d)\n", tok.Type, tok.Literal, tok.Line, tok.Column)
	}

	prog, err := pipelang.Parse(code)
	if err != nil {
		panic(err)
	}
	pp.Println(prog)
	fmt.Println(prog.Pretty())
}
