package parser_test

import (
	"testing"

	"github.com/lookbusy1344/word24asm/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCommand_CaseInsensitive(t *testing.T) {
	cmd, ok := parser.LookupCommand("MOV")
	require.True(t, ok)
	assert.Equal(t, "mov", cmd.Mnemonic)
	assert.Equal(t, 0, cmd.Opcode)
}

func TestLookupCommand_Unknown(t *testing.T) {
	_, ok := parser.LookupCommand("frobnicate")
	assert.False(t, ok)
}

func TestCommand_HasSourceHasDest(t *testing.T) {
	mov, _ := parser.LookupCommand("mov")
	assert.True(t, mov.HasSource())
	assert.True(t, mov.HasDest())

	stop, _ := parser.LookupCommand("stop")
	assert.False(t, stop.HasSource())
	assert.False(t, stop.HasDest())

	clr, _ := parser.LookupCommand("clr")
	assert.False(t, clr.HasSource())
	assert.True(t, clr.HasDest())
}

func TestRegisterNumber(t *testing.T) {
	assert.Equal(t, 1, parser.RegisterNumber("r1"))
	assert.Equal(t, 7, parser.RegisterNumber("r7"))
	assert.Equal(t, -1, parser.RegisterNumber("r8"))
	assert.Equal(t, -1, parser.RegisterNumber("r0"))
	assert.Equal(t, -1, parser.RegisterNumber("rx"))
	assert.Equal(t, -1, parser.RegisterNumber("X"))
}

func TestIsReservedWord(t *testing.T) {
	assert.True(t, parser.IsReservedWord("mov"))
	assert.True(t, parser.IsReservedWord("r3"))
	assert.True(t, parser.IsReservedWord("data"))
	assert.True(t, parser.IsReservedWord("string"))
	assert.True(t, parser.IsReservedWord("entry"))
	assert.True(t, parser.IsReservedWord("extern"))
	assert.False(t, parser.IsReservedWord("loop"))
	assert.False(t, parser.IsReservedWord("MOV"), "reserved words are the lower-case spellings only, so an upper-case label never collides")
	assert.False(t, parser.IsReservedWord("DATA"), "spec.md's own scenario 1 uses the upper-case label DATA alongside the .data directive")
}

func TestValidIdentifier(t *testing.T) {
	assert.True(t, parser.ValidIdentifier("LOOP", 31))
	assert.True(t, parser.ValidIdentifier("a1", 31))
	assert.False(t, parser.ValidIdentifier("1abc", 31))
	assert.False(t, parser.ValidIdentifier("mov", 31))
	assert.False(t, parser.ValidIdentifier("", 31))
	assert.False(t, parser.ValidIdentifier("has_underscore", 31))
}

func TestValidIdentifier_MaxLenIsConfigurable(t *testing.T) {
	assert.True(t, parser.ValidIdentifier("abcd", 4))
	assert.False(t, parser.ValidIdentifier("abcde", 4), "identifier longer than maxLen is rejected")
}
