package assemble

import (
	"strings"

	"github.com/lookbusy1344/word24asm/encoder"
	"github.com/lookbusy1344/word24asm/parser"
)

// RunPass1 executes the first pass of spec.md §4.2 over the
// already-expanded ".am" text: it classifies every line, lays out code
// and data into ctx's IC/DC-indexed images, and inserts symbol
// definitions with provisional addresses. At end of file it relocates
// every symbol (ctx.Symbols.Relocate) and freezes ICF/DCF.
func RunPass1(amText, filename string, ctx *Context) {
	lines := splitLines(amText)
	for i, line := range lines {
		pos := parser.Position{Filename: filename, Line: i + 1}
		classifyLine(line, pos, ctx)
	}

	ctx.ICF = ctx.IC
	ctx.DCF = ctx.DC
	ctx.Symbols.Relocate(ctx.ICF, ctx.Cfg.LoadBase, ctx.Errors)
}

func splitLines(source string) []string {
	lines := strings.Split(strings.ReplaceAll(source, "\r\n", "\n"), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// classifyLine implements the per-line decision tree of spec.md §4.2.
func classifyLine(line string, pos parser.Position, ctx *Context) {
	if parser.IsBlankOrComment(line) {
		return
	}

	tok, rest := parser.FirstToken(line)
	if tok == "" {
		return
	}

	if name, isLabel := parser.IsLabelDef(tok); isLabel {
		classifyLabeled(name, rest, pos, ctx)
		return
	}

	switch tok {
	case ".entry":
		registerEntryOrExtern(".entry", rest, pos, ctx)
	case ".extern":
		registerEntryOrExtern(".extern", rest, pos, ctx)
	case ".data":
		writeData(rest, pos, ctx)
	case ".string":
		writeString(rest, pos, ctx)
	default:
		if cmd, ok := parser.LookupCommand(tok); ok {
			encodeInstruction(cmd, rest, "", false, pos, ctx)
			return
		}
		ctx.Errors.Add(pos, parser.ErrLexical, "unrecognized first token %q", tok)
	}
}

// classifyLabeled handles a line whose first token is "NAME:" (spec.md
// §4.2 step 7).
func classifyLabeled(name, rest string, pos parser.Position, ctx *Context) {
	if !validName(name, ctx) {
		ctx.Errors.Add(pos, parser.ErrIdentifier, "invalid label identifier %q", name)
		return
	}

	tok2, rest2 := parser.FirstToken(rest)
	switch tok2 {
	case ".data":
		ctx.Symbols.AddName(name, parser.KindData, ctx.DC, pos, ctx.Errors)
		writeData(rest2, pos, ctx)
	case ".string":
		ctx.Symbols.AddName(name, parser.KindData, ctx.DC, pos, ctx.Errors)
		writeString(rest2, pos, ctx)
	case ".entry":
		ctx.Errors.Warn(pos, "label %q ignored before .entry", name)
		registerEntryOrExtern(".entry", rest2, pos, ctx)
	case ".extern":
		ctx.Errors.Warn(pos, "label %q ignored before .extern", name)
		registerEntryOrExtern(".extern", rest2, pos, ctx)
	default:
		if cmd, ok := parser.LookupCommand(tok2); ok {
			encodeInstruction(cmd, rest2, name, true, pos, ctx)
			return
		}
		ctx.Errors.Add(pos, parser.ErrLexical, "unrecognized token %q after label %q", tok2, name)
	}
}

// registerEntryOrExtern handles ".entry NAME" / ".extern NAME",
// validating that nothing follows the identifier.
func registerEntryOrExtern(directive, rest string, pos parser.Position, ctx *Context) {
	name, trailer := parser.FirstToken(rest)
	if name == "" {
		ctx.Errors.Add(pos, parser.ErrIdentifier, "%s requires an identifier", directive)
		return
	}
	if parser.SkipSpace(trailer) != "" {
		ctx.Errors.Add(pos, parser.ErrLexical, "extra text after %s %s", directive, name)
		return
	}
	if !validName(name, ctx) {
		ctx.Errors.Add(pos, parser.ErrIdentifier, "invalid identifier %q", name)
		return
	}
	if directive == ".entry" {
		ctx.Symbols.AddKind(name, parser.KindEntry, pos, ctx.Errors)
	} else {
		ctx.Symbols.AddKind(name, parser.KindExternal, pos, ctx.Errors)
	}
}

// validName reports whether name is legal both syntactically and
// against the live macro table (spec.md §3: an identifier must not
// equal any defined macro name).
func validName(name string, ctx *Context) bool {
	return parser.ValidIdentifier(name, ctx.Cfg.MaxIdentifier) && !ctx.Macros.Has(name)
}

// encodeInstruction decodes and lays out one instruction line,
// optionally binding a preceding label as a code symbol at the
// instruction's starting IC.
func encodeInstruction(cmd *parser.Command, operandField, label string, hasLabel bool, pos parser.Position, ctx *Context) {
	if hasLabel {
		ctx.Symbols.AddName(label, parser.KindCode, ctx.IC, pos, ctx.Errors)
	}

	result, ok := encoder.Encode(cmd, operandField, pos, ctx.Errors)
	if !ok {
		return
	}

	startIC := ctx.IC
	ctx.CmdCode = append(ctx.CmdCode, result.Word1)
	ctx.IC++

	for _, ex := range result.Extras {
		if ex.Resolved {
			ctx.CmdCode = append(ctx.CmdCode, ex.Value)
		} else {
			ctx.CmdCode = append(ctx.CmdCode, 0)
			ctx.Fixups = append(ctx.Fixups, Fixup{
				Pos:        pos,
				CmdIndex:   len(ctx.CmdCode) - 1,
				OwnerIC:    startIC,
				SymbolName: ex.SymbolName,
				Relative:   ex.Relative,
			})
		}
		ctx.IC++
	}
}
