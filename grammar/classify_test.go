package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/Tirppy/lfa-course-repo/grammar"
)

func labOneGrammar() *Grammar {
	return New(
		[]string{"S", "L", "D"},
		[]string{"a", "b", "c", "d", "e", "f", "j"},
		map[string][]Production{
			"S": {{"a", "S"}, {"b", "S"}, {"c", "D"}, {"d", "L"}, {"e"}},
			"L": {{"e", "L"}, {"f", "L"}, {"j", "D"}, {"e"}},
			"D": {{"e", "D"}, {"d"}},
		},
		"S",
	)
}

func TestClassify(t *testing.T) {
	for _, tt := range []struct {
		name     string
		grammar  *Grammar
		expected Type
	}{{
		name:     "right linear",
		grammar:  labOneGrammar(),
		expected: Type3,
	}, {
		name: "left linear",
		grammar: New(
			[]string{"S", "A"},
			[]string{"a", "b"},
			map[string][]Production{
				"S": {{"A", "a"}, {"b"}},
				"A": {{"S", "b"}, {"a"}},
			},
			"S",
		),
		expected: Type3,
	}, {
		name: "regular with epsilon alternative",
		grammar: New(
			[]string{"S"},
			[]string{"a"},
			map[string][]Production{
				"S": {{"a", "S"}, {Epsilon}},
			},
			"S",
		),
		expected: Type3,
	}, {
		name: "context free",
		grammar: New(
			[]string{"S", "A", "B", "C"},
			[]string{"a", "b"},
			map[string][]Production{
				"S": {{"a", "A", "B"}},
				"A": {{"a", "B"}, {"b"}},
				"B": {{"b", "C"}, {"a"}},
				"C": {{"b"}},
			},
			"S",
		),
		expected: Type2,
	}, {
		name: "mixed pair of non-terminals",
		grammar: New(
			[]string{"S", "A"},
			[]string{"a"},
			map[string][]Production{
				"S": {{"A", "A"}},
				"A": {{"a"}},
			},
			"S",
		),
		expected: Type2,
	}, {
		name: "empty sequence spelling of epsilon",
		grammar: New(
			[]string{"S"},
			[]string{"a"},
			map[string][]Production{
				"S": {{"a", "S"}, {}},
			},
			"S",
		),
		expected: Type3,
	}, {
		name: "epsilon marker inside a longer rhs",
		grammar: New(
			[]string{"S"},
			[]string{"a"},
			map[string][]Production{
				"S": {{"a", Epsilon, "a"}},
			},
			"S",
		),
		expected: Type0,
	}, {
		name: "unknown symbol falls to context sensitive",
		grammar: New(
			[]string{"S"},
			[]string{"a"},
			map[string][]Production{
				"S": {{"a", "@", "a"}},
			},
			"S",
		),
		expected: Type1,
	}} {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.grammar.Classify())
		})
	}
}

func TestClassifyMonotone(t *testing.T) {
	for _, g := range []*Grammar{
		labOneGrammar(),
		New([]string{"S"}, []string{"a"}, map[string][]Production{
			"S": {{"a", "S"}, {Epsilon}},
		}, "S"),
		New([]string{"S"}, []string{"a"}, map[string][]Production{
			"S": {{"a", "S"}, {}},
		}, "S"),
	} {
		require.True(t, g.IsRegular())
		require.True(t, g.IsContextFree())
		require.True(t, g.IsContextSensitive())
	}
}

func TestTypeString(t *testing.T) {
	require.Equal(t, "Type 3 (Regular)", Type3.String())
	require.Equal(t, "Type 0 (Recursively enumerable)", Type0.String())
}
