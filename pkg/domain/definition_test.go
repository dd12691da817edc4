package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoStateDef() *Definition {
	return &Definition{
		Name:     "toggle",
		States:   []string{"even", "odd"},
		Alphabet: []string{"a"},
		Start:    "even",
		Accept:   []string{"even"},
		Rules: []Rule{
			{From: "even", On: "a", To: "odd"},
			{From: "odd", On: "a", To: "even"},
		},
	}
}

func TestCompile_Success(t *testing.T) {
	def := twoStateDef()
	require.NoError(t, def.Compile())

	assert.True(t, def.Compiled())
	assert.Empty(t, def.Warnings())
	assert.True(t, def.InAlphabet('a'))
	assert.False(t, def.InAlphabet('b'))
	assert.True(t, def.IsAccept("even"))
	assert.False(t, def.IsAccept("odd"))

	next, ok := def.Next("even", 'a')
	require.True(t, ok)
	assert.Equal(t, "odd", next)

	_, ok = def.Next("even", 'b')
	assert.False(t, ok)
}

func TestCompile_StartNotDeclared(t *testing.T) {
	def := twoStateDef()
	def.Start = "missing"

	err := def.Compile()
	require.Error(t, err)
	assert.False(t, def.Compiled())

	findings := DefinitionErrors(err)
	require.Len(t, findings, 1)
	defErr, ok := findings[0].(*DefinitionError)
	require.True(t, ok)
	assert.Equal(t, "start", defErr.Field)
}

func TestCompile_UndeclaredRuleTarget(t *testing.T) {
	def := twoStateDef()
	def.Rules = append(def.Rules, Rule{From: "even", On: "a", To: "ghost"})

	err := def.Compile()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestCompile_SymbolOutsideAlphabet(t *testing.T) {
	def := twoStateDef()
	def.Rules = append(def.Rules, Rule{From: "even", On: "x", To: "odd"})

	err := def.Compile()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in the alphabet")
}

func TestCompile_MultiRuneSymbol(t *testing.T) {
	def := twoStateDef()
	def.Alphabet = append(def.Alphabet, "ab")

	err := def.Compile()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single character")
}

func TestCompile_AcceptNotDeclared(t *testing.T) {
	def := twoStateDef()
	def.Accept = []string{"even", "ghost"}

	err := def.Compile()
	require.Error(t, err)
	findings := DefinitionErrors(err)
	require.Len(t, findings, 1)
}

func TestCompile_DuplicateRuleLastWriteWins(t *testing.T) {
	def := &Definition{
		Name:     "dup",
		States:   []string{"0", "1", "2"},
		Alphabet: []string{"b"},
		Start:    "0",
		Accept:   []string{"2"},
		Rules: []Rule{
			{From: "0", On: "b", To: "1"},
			{From: "0", On: "b", To: "2"},
		},
	}
	require.NoError(t, def.Compile())

	// Later definition silently overwrites the earlier one, but the
	// conflict is surfaced.
	next, ok := def.Next("0", 'b')
	require.True(t, ok)
	assert.Equal(t, "2", next)

	warnings := def.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "0", warnings[0].From)
	assert.Equal(t, "1", warnings[0].Old)
	assert.Equal(t, "2", warnings[0].New)
}

func TestCompile_IdenticalDuplicateIsSilent(t *testing.T) {
	def := twoStateDef()
	def.Rules = append(def.Rules, Rule{From: "even", On: "a", To: "odd"})

	require.NoError(t, def.Compile())
	assert.Empty(t, def.Warnings())
}

func TestTrace_Accessors(t *testing.T) {
	tr := Trace{{State: "0"}, {State: "1", Symbol: "b"}, {State: "3", Symbol: "a"}}
	assert.Equal(t, "3", tr.Final())
	assert.Equal(t, 2, tr.Consumed())

	var empty Trace
	assert.Equal(t, "", empty.Final())
	assert.Equal(t, 0, empty.Consumed())
}

func TestSimulationError_Messages(t *testing.T) {
	invalid := &SimulationError{Kind: KindInvalidSymbol, Symbol: "c", Position: 3, State: "5"}
	assert.Equal(t, `invalid symbol "c" at position 3`, invalid.Error())

	gap := &SimulationError{Kind: KindNoTransition, Symbol: "a", Position: 1, State: "7"}
	assert.Equal(t, `no transition from 7 on "a" at position 1`, gap.Error())
}
