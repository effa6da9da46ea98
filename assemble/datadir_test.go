package assemble_test

import (
	"testing"

	"github.com/lookbusy1344/word24asm/assemble"
	"github.com/lookbusy1344/word24asm/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataDirective_ValueList(t *testing.T) {
	ctx := newCtx()
	assemble.RunPass1(".data 5, -3, 1000\n", "t.am", ctx)

	require.False(t, ctx.Errors.HasErrors())
	assert.Equal(t, []int{5, -3, 1000}, ctx.DataCode)
	assert.Equal(t, 3, ctx.DC)
}

func TestDataDirective_OutOfRangeIsError(t *testing.T) {
	ctx := newCtx()
	assemble.RunPass1(".data 99999999\n", "t.am", ctx)

	assert.True(t, ctx.Errors.HasErrors())
}

func TestDataDirective_MalformedListIsError(t *testing.T) {
	ctx := newCtx()
	assemble.RunPass1(".data 1,,2\n", "t.am", ctx)

	assert.True(t, ctx.Errors.HasErrors())
}

func TestStringDirective_AppendsBytesAndTerminator(t *testing.T) {
	ctx := newCtx()
	assemble.RunPass1(`.string "hi"` + "\n", "t.am", ctx)

	require.False(t, ctx.Errors.HasErrors())
	assert.Equal(t, []int{int('h'), int('i'), 0}, ctx.DataCode)
}

func TestStringDirective_MissingQuoteIsError(t *testing.T) {
	ctx := newCtx()
	assemble.RunPass1(".string hi\n", "t.am", ctx)

	assert.True(t, ctx.Errors.HasErrors())
}

func TestStringDirective_TrailingTextIsError(t *testing.T) {
	ctx := newCtx()
	assemble.RunPass1(".string \"hi\" junk\n", "t.am", ctx)

	assert.True(t, ctx.Errors.HasErrors())
}

func TestEntryOrExtern_InvalidIdentifierIsError(t *testing.T) {
	ctx := newCtx()
	assemble.RunPass1(".extern 1bad\n", "t.am", ctx)

	assert.True(t, ctx.Errors.HasErrors())
}

func TestEntryOrExtern_ExternInsertsUndefinedAddress(t *testing.T) {
	ctx := newCtx()
	assemble.RunPass1(".extern X\n", "t.am", ctx)

	require.False(t, ctx.Errors.HasErrors())
	sym := ctx.Symbols.Find("X")
	require.NotNil(t, sym)
	assert.True(t, sym.Kinds.Has(parser.KindExternal))
	assert.Equal(t, parser.UndefinedAddress, sym.Address)
}
