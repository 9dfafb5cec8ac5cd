package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/Tirppy/lfa-course-repo/grammar"
)

func TestProduction(t *testing.T) {
	require.Equal(t, "a S b", Production{"a", "S", "b"}.String())
	require.Equal(t, Epsilon, Production{}.String())
	require.Equal(t, Epsilon, Production{Epsilon}.String())

	require.True(t, Production{}.IsEpsilon())
	require.True(t, Production{Epsilon}.IsEpsilon())
	require.False(t, Production{"a"}.IsEpsilon())

	require.Equal(t, Production{}.Hash(), Production{Epsilon}.Hash())
	require.NotEqual(t, Production{"a", "b"}.Hash(), Production{"ab"}.Hash())
	require.True(t, Production{"a", "S"}.Eq(Production{"a", "S"}))
	require.False(t, Production{"a", "S"}.Eq(Production{"a"}))
}

func TestAddProductionsDedup(t *testing.T) {
	g := New([]string{"S"}, []string{"a"}, nil, "S")
	g.AddProductions("S", Production{"a"}, Production{"a"})
	g.AddProductions("S", Production{"a"}, Production{"a", "S"})

	require.Len(t, g.Productions["S"], 2)
}

func TestValidate(t *testing.T) {
	require.NoError(t, labOneGrammar().Validate())

	for _, tt := range []struct {
		name    string
		grammar *Grammar
		message string
	}{{
		name:    "unknown start",
		grammar: New([]string{"S"}, []string{"a"}, nil, "Z"),
		message: "not a non-terminal",
	}, {
		name:    "overlapping alphabets",
		grammar: New([]string{"S", "a"}, []string{"a"}, nil, "S"),
		message: "overlap",
	}, {
		name: "unknown symbol",
		grammar: New([]string{"S"}, []string{"a"}, map[string][]Production{
			"S": {{"a", "Q"}},
		}, "S"),
		message: `unknown symbol "Q"`,
	}} {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorContains(t, tt.grammar.Validate(), tt.message)
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := labOneGrammar()
	dup := orig.Clone()

	dup.AddProductions("S", Production{"f"})
	dup.NonTerminals.Delete("L")
	dup.Productions["D"][0][0] = "x"

	require.Len(t, orig.Productions["S"], 5)
	require.True(t, orig.NonTerminals.Has("L"))
	require.NotEqual(t, "x", orig.Productions["D"][0][0])
}

func TestGrammarString(t *testing.T) {
	g := New(
		[]string{"S", "B"},
		[]string{"a", "b"},
		map[string][]Production{
			"S": {{"a", "S"}, {"b", "B"}},
			"B": {{"b"}, {Epsilon}},
		},
		"S",
	)

	require.Equal(t, "S -> a S | b B\nB -> b | ε", g.String())
}
