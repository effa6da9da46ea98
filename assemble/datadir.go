package assemble

import (
	"github.com/lookbusy1344/word24asm/parser"
)

const (
	dataValueMin = -(1 << 23)
	dataValueMax = (1 << 23) - 1
)

// writeData implements the .data directive writer of spec.md §4.4: a
// comma-separated list of signed integers, each range-checked and
// appended to the data image at DC, incrementing DC.
func writeData(field string, pos parser.Position, ctx *Context) {
	toks, ok := parser.SplitList(field)
	if !ok {
		ctx.Errors.Add(pos, parser.ErrComma, "malformed .data operand list")
		return
	}
	for _, tok := range toks {
		val, ok := parser.ParseSignedInt(tok, dataValueMin, dataValueMax)
		if !ok {
			ctx.Errors.Add(pos, parser.ErrRange, ".data value %q out of range", tok)
			continue
		}
		ctx.DataCode = append(ctx.DataCode, val)
		ctx.DC++
	}
}

// writeString implements the .string directive writer: a
// double-quoted ASCII string, each character's byte value appended in
// order, followed by a terminating zero.
func writeString(field string, pos parser.Position, ctx *Context) {
	payload, trailing, ok := parser.ScanQuotedString(field)
	if !ok {
		ctx.Errors.Add(pos, parser.ErrLexical, "missing opening or closing quote in .string")
		return
	}
	if trailing {
		ctx.Errors.Add(pos, parser.ErrLexical, "extra text after closing quote in .string")
		return
	}
	for i := 0; i < len(payload); i++ {
		ctx.DataCode = append(ctx.DataCode, int(payload[i]))
		ctx.DC++
	}
	ctx.DataCode = append(ctx.DataCode, 0)
	ctx.DC++
}
