// Package objfile writes the three emitted artifacts of a successful
// assembly -- ".ob", ".ext", ".ent" -- per spec.md §6's output formats.
// Writing is pure formatting over an already-finished assemble.Context;
// none of it touches the filesystem directly, so callers (main.go, and
// tests) can redirect it to any io.Writer.
package objfile

import (
	"fmt"
	"io"

	"github.com/lookbusy1344/word24asm/assemble"
	"github.com/lookbusy1344/word24asm/encoder"
)

// WriteObject writes the ".ob" image: a five-space-indented "ICF DCF"
// header, then ICF lines of instruction image followed by DCF lines of
// data image, each "%07d %06X" -- address then the word's low 24 bits
// in uppercase hex. Addresses begin at LoadBase for the first
// instruction and run contiguously into the data segment.
func WriteObject(w io.Writer, ctx *assemble.Context) error {
	if _, err := fmt.Fprintf(w, "     %d %d\n", ctx.ICF, ctx.DCF); err != nil {
		return err
	}
	addr := ctx.Cfg.LoadBase
	for _, word := range ctx.CmdCode {
		if _, err := fmt.Fprintf(w, "%07d %06X\n", addr, word&encoder.WordMask); err != nil {
			return err
		}
		addr++
	}
	for _, word := range ctx.DataCode {
		if _, err := fmt.Fprintf(w, "%07d %06X\n", addr, word&encoder.WordMask); err != nil {
			return err
		}
		addr++
	}
	return nil
}

// WriteExternals writes the ".ext" file: one "NAME %07d" line per
// external reference site, in symbol-table insertion order and, within
// a symbol, in recording order. Returns wrote=false (and writes
// nothing) if the file has no external references, per spec.md §6.
func WriteExternals(w io.Writer, ctx *assemble.Context) (wrote bool, err error) {
	syms := ctx.Symbols.ExternalReferenceSymbols()
	if len(syms) == 0 {
		return false, nil
	}
	for _, sym := range syms {
		for _, addr := range sym.ExternRefs {
			if _, err := fmt.Fprintf(w, "%s %07d\n", sym.Name, addr); err != nil {
				return true, err
			}
		}
	}
	return true, nil
}

// WriteEntries writes the ".ent" file: one "NAME %07d" line per entry
// symbol, in insertion order. Returns wrote=false (and writes nothing)
// if the file defines no entry symbols.
func WriteEntries(w io.Writer, ctx *assemble.Context) (wrote bool, err error) {
	syms := ctx.Symbols.EntrySymbols()
	if len(syms) == 0 {
		return false, nil
	}
	for _, sym := range syms {
		if _, err := fmt.Fprintf(w, "%s %07d\n", sym.Name, sym.Address); err != nil {
			return true, err
		}
	}
	return true, nil
}
