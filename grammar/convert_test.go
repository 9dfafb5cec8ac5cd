package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tirppy/lfa-course-repo/automaton"
	. "github.com/Tirppy/lfa-course-repo/grammar"
)

func sampleNFA() *automaton.Automaton {
	a := automaton.New(
		[]string{"q0", "q1", "q2", "q3"},
		[]string{"a", "b"},
		"q0",
		"q3",
	)
	a.AddTransition("q0", "a", "q1", "q2")
	a.AddTransition("q1", "b", "q1")
	a.AddTransition("q1", "a", "q2")
	a.AddTransition("q2", "a", "q1")
	a.AddTransition("q2", "b", "q3")
	return a
}

func TestToAutomaton(t *testing.T) {
	fa, err := labOneGrammar().ToAutomaton()
	require.NoError(t, err)

	require.Equal(t, "S", fa.Start)
	require.True(t, fa.States.Has("q_accept"))
	require.True(t, fa.Finals.Has("q_accept"))
	require.Equal(t, []string{"S"}, fa.Next("S", "a"))
	require.Equal(t, []string{"D"}, fa.Next("S", "c"))
	require.Equal(t, []string{"q_accept"}, fa.Next("D", "d"))

	for _, tt := range []struct {
		word     string
		accepted bool
	}{
		{"aae", true},
		{"e", true},
		{"de", true},
		{"abcde", false},
		{"dde", false},
		{"ce", false},
		{"bdf", false},
	} {
		require.Equal(t, tt.accepted, fa.Accepts(automaton.Word(tt.word)...), tt.word)
	}
}

func TestToAutomatonAmbiguousPair(t *testing.T) {
	g := New(
		[]string{"S", "A", "B"},
		[]string{"a"},
		map[string][]Production{
			"S": {{"a", "A"}, {"a", "B"}},
			"A": {{"a"}},
			"B": {{"a"}},
		},
		"S",
	)

	fa, err := g.ToAutomaton()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"A", "B"}, fa.Next("S", "a"))
	require.False(t, fa.IsDeterministic())
}

func TestToAutomatonRejectsNonRightLinear(t *testing.T) {
	g := New(
		[]string{"S", "A", "B"},
		[]string{"a", "b"},
		map[string][]Production{
			"S": {{"a", "A", "B"}},
			"A": {{"a"}},
			"B": {{"b"}},
		},
		"S",
	)

	_, err := g.ToAutomaton()
	require.ErrorContains(t, err, "not right-linear")
	require.ErrorContains(t, err, "a A B")
}

func TestToAutomatonAcceptStateCollision(t *testing.T) {
	g := New(
		[]string{"S", "q_accept"},
		[]string{"a"},
		map[string][]Production{
			"S":        {{"a", "q_accept"}},
			"q_accept": {{"a"}},
		},
		"S",
	)

	fa, err := g.ToAutomaton()
	require.NoError(t, err)
	require.True(t, fa.States.Has("q_accept_"))
	require.Equal(t, []string{"q_accept_"}, fa.Next("q_accept", "a"))
}

func TestFromAutomaton(t *testing.T) {
	g, err := FromAutomaton(sampleNFA())
	require.NoError(t, err)

	require.Equal(t, "Q0", g.Start)
	require.ElementsMatch(t, []string{"Q0", "Q1", "Q2", "Q3"}, g.NonTerminals.Sorted())
	require.ElementsMatch(t, []Production{{"a", "Q1"}, {"a", "Q2"}}, g.Productions["Q0"])
	require.ElementsMatch(t, []Production{{"a", "Q2"}, {"b", "Q1"}}, g.Productions["Q1"])
	require.ElementsMatch(t, []Production{{"a", "Q1"}, {"b", "Q3"}}, g.Productions["Q2"])
	require.ElementsMatch(t, []Production{{Epsilon}}, g.Productions["Q3"])

	require.Equal(t, Type3, g.Classify())
}

func TestFromAutomatonEmptyAlphabet(t *testing.T) {
	a := automaton.New([]string{"q0"}, nil, "q0", "q0")
	_, err := FromAutomaton(a)
	require.ErrorContains(t, err, "empty alphabet")
}

// Converting an automaton to a grammar and back must preserve the transition
// structure up to the uppercase state renaming.
func TestRoundTrip(t *testing.T) {
	original := sampleNFA()

	g, err := FromAutomaton(original)
	require.NoError(t, err)

	induced, err := g.ToAutomaton()
	require.NoError(t, err)

	require.Equal(t, "Q0", induced.Start)
	require.ElementsMatch(t, []string{"Q3"}, induced.Finals.Sorted())

	count := 0
	for m, dst := range original.Transitions {
		mapped := induced.Next(upper(m.From), m.On)
		require.ElementsMatch(t, remapUpper(dst), mapped, m)
		count++
	}
	require.Len(t, induced.Transitions, count)
}

func upper(s string) string {
	res := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			r += 'A' - 'a'
		}
		res = append(res, r)
	}
	return string(res)
}

func remapUpper(in []string) []string {
	res := make([]string, len(in))
	for i, s := range in {
		res[i] = upper(s)
	}
	return res
}
