package cyk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tirppy/lfa-course-repo/automaton"
	. "github.com/Tirppy/lfa-course-repo/cyk"
	"github.com/Tirppy/lfa-course-repo/grammar"
)

// L = { a^n b^n | n >= 1 }, already in Chomsky Normal Form.
func anbnGrammar() *grammar.Grammar {
	return grammar.New(
		[]string{"S", "X", "A", "B"},
		[]string{"a", "b"},
		map[string][]grammar.Production{
			"S": {{"A", "B"}, {"A", "X"}},
			"X": {{"S", "B"}},
			"A": {{"a"}},
			"B": {{"b"}},
		},
		"S",
	)
}

func TestRecognize(t *testing.T) {
	g := anbnGrammar()

	for _, tt := range []struct {
		word     string
		expected bool
	}{
		{"ab", true},
		{"aabb", true},
		{"aaabbb", true},
		{"", false},
		{"a", false},
		{"b", false},
		{"ba", false},
		{"aab", false},
		{"abab", false},
	} {
		ok, err := Recognize(g, automaton.Word(tt.word))
		require.NoError(t, err)
		require.Equal(t, tt.expected, ok, tt.word)
	}
}

func TestRecognizeEmptyWord(t *testing.T) {
	g := grammar.New(
		[]string{"S", "A"},
		[]string{"a"},
		map[string][]grammar.Production{
			"S": {{"A", "A"}, {grammar.Epsilon}},
			"A": {{"a"}},
		},
		"S",
	)

	ok, err := Recognize(g, nil)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = Recognize(anbnGrammar(), nil)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRecognizeRejectsNonCNF(t *testing.T) {
	g := grammar.New(
		[]string{"S"},
		[]string{"a", "b"},
		map[string][]grammar.Production{
			"S": {{"a", "S", "b"}},
		},
		"S",
	)

	_, err := Recognize(g, automaton.Word("ab"))
	require.ErrorContains(t, err, "is not in Chomsky Normal Form")
}

func TestBuildChart(t *testing.T) {
	chart, err := BuildChart(anbnGrammar(), automaton.Word("aabb"))
	require.NoError(t, err)

	require.ElementsMatch(t, []string{"A"}, chart.Heads(0, 0))
	require.ElementsMatch(t, []string{"A"}, chart.Heads(1, 1))
	require.ElementsMatch(t, []string{"B"}, chart.Heads(2, 2))
	require.ElementsMatch(t, []string{"S"}, chart.Heads(1, 2))
	require.ElementsMatch(t, []string{"X"}, chart.Heads(1, 3))
	require.ElementsMatch(t, []string{"S"}, chart.Heads(0, 3))
	require.Empty(t, chart.Heads(0, 1))

	require.True(t, chart.Accepts("S"))
	require.False(t, chart.Accepts("A"))

	rendered := chart.String()
	require.Contains(t, rendered, "S")
}
