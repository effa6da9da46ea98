// Package assemble runs the first pass and second pass of the
// assembler over one already-preprocessed ".am" file: line
// classification, data/instruction image construction, symbol
// relocation, and back-patching of symbol-dependent operand words.
package assemble

import (
	"github.com/lookbusy1344/word24asm/config"
	"github.com/lookbusy1344/word24asm/parser"
)

// Fixup records one extra word whose final value depends on a symbol
// address not yet known when the first pass emitted it (design note:
// "recording, during pass one, a list of fix-up records ... to consume
// in pass two" -- the preferred approach). CmdIndex is the position in
// CmdCode to patch; OwnerIC is the *instruction's* IC (not the extra
// word's), as required by the relative-addressing formula.
type Fixup struct {
	Pos        parser.Position
	CmdIndex   int
	OwnerIC    int
	SymbolName string
	Relative   bool
}

// Context is the per-file pass state threaded through the first and
// second pass: the IC/DC counters, the growable code/data images, the
// symbol and macro tables, and the fixup list. Design note: "Global
// counters IC/DC in the source should become per-pass locals threaded
// through call sites (or a small pass context structure)" -- this is
// that structure. Every file gets a fresh Context, per spec.md §5.
type Context struct {
	Cfg *config.Config

	IC int
	DC int

	CmdCode  []int
	DataCode []int

	Symbols *parser.SymbolTable
	Macros  *parser.MacroTable

	Fixups []Fixup
	Errors *parser.ErrorList

	ICF int
	DCF int
}

// NewContext returns a fresh, empty pass context.
func NewContext(cfg *config.Config) *Context {
	return &Context{
		Cfg:     cfg,
		Symbols: parser.NewSymbolTable(cfg.MaxIdentifier),
		Macros:  parser.NewMacroTable(),
		Errors:  &parser.ErrorList{},
	}
}

// AbsoluteAddress converts an instruction-image index i into its
// final load address, LoadBase+i. It does not add ICF, so it does not
// give the address of a data-image index.
func (c *Context) AbsoluteAddress(imageIndex int) int {
	return c.Cfg.LoadBase + imageIndex
}
