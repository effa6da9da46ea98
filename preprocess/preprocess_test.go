package preprocess_test

import (
	"testing"

	"github.com/lookbusy1344/word24asm/config"
	"github.com/lookbusy1344/word24asm/parser"
	"github.com/lookbusy1344/word24asm/preprocess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MacroRoundTrip(t *testing.T) {
	source := "mcro m1\nmov r1, r2\nmcroend\nm1\nstop\n"

	macros := parser.NewMacroTable()
	result := preprocess.Run(source, "t.as", macros, config.DefaultConfig())

	require.True(t, result.Valid)
	assert.Equal(t, "mov r1, r2\nstop\n", result.Output)
}

func TestRun_NoMacrosPassesThrough(t *testing.T) {
	source := "; a comment\nLOOP: mov r1, r2\nstop\n"

	macros := parser.NewMacroTable()
	result := preprocess.Run(source, "t.as", macros, config.DefaultConfig())

	require.True(t, result.Valid)
	assert.Equal(t, "LOOP: mov r1, r2\nstop\n", result.Output)
}

func TestRun_UnterminatedMacroIsError(t *testing.T) {
	source := "mcro m1\nmov r1, r2\n"

	macros := parser.NewMacroTable()
	result := preprocess.Run(source, "t.as", macros, config.DefaultConfig())

	assert.False(t, result.Valid)
	assert.True(t, result.Errors.HasErrors())
}

func TestRun_DuplicateMacroNameIsError(t *testing.T) {
	source := "mcro m1\nstop\nmcroend\nmcro m1\nstop\nmcroend\n"

	macros := parser.NewMacroTable()
	result := preprocess.Run(source, "t.as", macros, config.DefaultConfig())

	assert.False(t, result.Valid)
}

func TestRun_MacroInvokedTwice(t *testing.T) {
	source := "mcro m1\nmov r1, r2\nmcroend\nm1\nm1\n"

	macros := parser.NewMacroTable()
	result := preprocess.Run(source, "t.as", macros, config.DefaultConfig())

	require.True(t, result.Valid)
	assert.Equal(t, "mov r1, r2\nmov r1, r2\n", result.Output)
}

func TestRun_OverlongLineTruncatedAndReported(t *testing.T) {
	long := ""
	for i := 0; i < 100; i++ {
		long += "a"
	}
	source := long + "\n"

	macros := parser.NewMacroTable()
	result := preprocess.Run(source, "t.as", macros, config.DefaultConfig())

	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors.Errors)
}

func TestRun_MaxSourceLineIsConfigurable(t *testing.T) {
	source := "stop\n"

	macros := parser.NewMacroTable()
	cfg := &config.Config{LoadBase: 100, MaxSourceLine: 3, MaxIdentifier: 31}
	result := preprocess.Run(source, "t.as", macros, cfg)

	assert.False(t, result.Valid, "a 4-character line exceeds a MaxSourceLine of 3")
	require.NotEmpty(t, result.Errors.Errors)
}

func TestRun_MaxIdentifierIsConfigurable(t *testing.T) {
	source := "mcro abcde\nstop\nmcroend\n"

	macros := parser.NewMacroTable()
	cfg := &config.Config{LoadBase: 100, MaxSourceLine: 80, MaxIdentifier: 4}
	result := preprocess.Run(source, "t.as", macros, cfg)

	assert.False(t, result.Valid, "a 5-character macro name exceeds a MaxIdentifier of 4")
}
