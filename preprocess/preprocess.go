// Package preprocess implements the macro pre-processor (spec.md §4.1):
// it recognizes mcro/mcroend blocks, records each macro body verbatim,
// and replaces invocation lines with the recorded body, producing the
// expanded ".am" text.
package preprocess

import (
	"strings"

	"github.com/lookbusy1344/word24asm/config"
	"github.com/lookbusy1344/word24asm/parser"
)

const (
	mcroKeyword    = "mcro"
	mcroEndKeyword = "mcroend"
)

// state is the pre-processor's two states: OUTSIDE any macro
// definition, or INSIDE one (accumulating its body).
type state int

const (
	outside state = iota
	inside
)

// Result is the outcome of preprocessing one file.
type Result struct {
	Output string // the expanded ".am" text
	Errors *parser.ErrorList
	Valid  bool
}

// Run executes the pre-processor state machine over source, named
// filename for diagnostics, using macros as the macro table to populate
// (and to consult for invocation lookups). macros is typically fresh
// per file, per the per-file-independence requirement of spec.md §5.
// cfg supplies the source-line and identifier length limits (spec.md
// §6), so a -config override actually changes what this pass accepts.
func Run(source, filename string, macros *parser.MacroTable, cfg *config.Config) Result {
	errs := &parser.ErrorList{}
	var out []string

	st := outside
	var curName string
	var curBody []string

	lines := strings.Split(strings.ReplaceAll(source, "\r\n", "\n"), "\n")
	// A trailing empty element from a final newline is not a real line.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, raw := range lines {
		lineNo := i + 1
		pos := parser.Position{Filename: filename, Line: lineNo}

		line := strings.TrimRight(raw, "\r")
		if len(line) > cfg.MaxSourceLine {
			errs.Add(pos, parser.ErrLexical, "source line exceeds %d characters, truncated", cfg.MaxSourceLine)
			line = line[:cfg.MaxSourceLine]
		}

		switch st {
		case outside:
			st, curName, curBody = processOutsideLine(line, pos, macros, errs, &out, cfg.MaxIdentifier)
		case inside:
			if isMcroEnd(line) {
				if trailingAfterKeyword(line, mcroEndKeyword) {
					errs.Add(pos, parser.ErrLexical, "mcroend has trailing text")
				}
				macros.Define(&parser.Macro{Name: curName, Body: curBody})
				st = outside
				curName = ""
				curBody = nil
			} else {
				curBody = append(curBody, line)
			}
		}
	}

	if st == inside {
		errs.Add(parser.Position{Filename: filename, Line: len(lines)}, parser.ErrLexical,
			"macro %q is never closed with mcroend", curName)
	}

	return Result{
		Output: strings.Join(out, "\n") + terminator(out),
		Errors: errs,
		Valid:  !errs.HasErrors(),
	}
}

func terminator(out []string) string {
	if len(out) == 0 {
		return ""
	}
	return "\n"
}

// processOutsideLine handles one line while OUTSIDE a macro
// definition, returning the next state and (if a definition just
// opened) the new macro's name and fresh body slice.
func processOutsideLine(line string, pos parser.Position, macros *parser.MacroTable, errs *parser.ErrorList, out *[]string, maxIdentifier int) (state, string, []string) {
	trimmed := parser.SkipSpace(line)

	if name, ok := mcroDefLine(trimmed); ok {
		if trailingAfterMcroName(trimmed) {
			errs.Add(pos, parser.ErrLexical, "mcro directive has trailing text")
			return outside, "", nil
		}
		if len(name) > maxIdentifier {
			errs.Add(pos, parser.ErrIdentifier, "macro name %q exceeds %d characters", name, maxIdentifier)
			return outside, "", nil
		}
		if parser.IsReservedWord(name) {
			errs.Add(pos, parser.ErrIdentifier, "macro name %q is a reserved word", name)
			return outside, "", nil
		}
		if macros.Has(name) {
			errs.Add(pos, parser.ErrDuplicate, "macro %q already defined", name)
			return outside, "", nil
		}
		return inside, name, make([]string, 0)
	}

	if trimmed != "" {
		if m, ok := macros.Lookup(trimmed); ok {
			*out = append(*out, m.Body...)
			return outside, "", nil
		}
	}

	if parser.IsBlankOrComment(line) {
		return outside, "", nil
	}

	*out = append(*out, line)
	return outside, "", nil
}

// mcroDefLine reports whether trimmed opens a macro definition ("mcro
// NAME"), returning the identifier.
func mcroDefLine(trimmed string) (name string, ok bool) {
	if !strings.HasPrefix(trimmed, mcroKeyword+" ") && !strings.HasPrefix(trimmed, mcroKeyword+"\t") {
		return "", false
	}
	rest := parser.SkipSpace(trimmed[len(mcroKeyword):])
	name, _ = parser.FirstToken(rest)
	if name == "" {
		return "", false
	}
	return name, true
}

// trailingAfterMcroName reports whether anything but the macro name
// follows "mcro " on the line.
func trailingAfterMcroName(trimmed string) bool {
	rest := parser.SkipSpace(trimmed[len(mcroKeyword):])
	_, remainder := parser.FirstToken(rest)
	return parser.SkipSpace(remainder) != ""
}

// isMcroEnd reports whether line begins with "mcroend" at column 0
// (no leading whitespace).
func isMcroEnd(line string) bool {
	return strings.HasPrefix(line, mcroEndKeyword)
}

// trailingAfterKeyword reports whether non-whitespace text follows
// keyword at the start of line.
func trailingAfterKeyword(line, keyword string) bool {
	return parser.SkipSpace(line[len(keyword):]) != ""
}
