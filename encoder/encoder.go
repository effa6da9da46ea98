package encoder

import (
	"strings"

	"github.com/lookbusy1344/word24asm/parser"
)

// Extra describes one pending extra word produced while decoding an
// instruction operand. If Resolved, Value is the final word, ready to
// emit as-is (this is always true for immediates, per the design note
// that immediates are finalized in the first pass and never touched
// again). Otherwise the word depends on a symbol address and must be
// patched in the second pass.
type Extra struct {
	Resolved   bool
	Value      int
	SymbolName string
	Relative   bool // true for '&' (relative) addressing, false for direct
}

// Result is everything the first pass needs to lay an instruction into
// the code image: the always-final first word, and 0-2 extra words in
// source-then-destination order (only non-register operands occupy a
// slot here; register operands are folded entirely into Word1).
type Result struct {
	Word1  int
	Extras []Extra
}

const (
	immediateMin = -(1 << 20)
	immediateMax = (1 << 20) - 1
)

// Encode decodes one instruction's operand field against cmd's
// addressing-mode rules and produces its machine words; symbol
// resolution is deferred entirely to the second pass. Reports
// diagnostics to errs and returns ok=false on
// any failure (comma discipline, disallowed addressing mode, bad
// register, or immediate out of range).
func Encode(cmd *parser.Command, operandField string, pos parser.Position, errs *parser.ErrorList) (Result, bool) {
	expected := 0
	if cmd.HasSource() {
		expected++
	}
	if cmd.HasDest() {
		expected++
	}

	parts, ok := parser.SplitOperands(operandField, expected)
	if !ok {
		errs.Add(pos, parser.ErrComma, "malformed operand list for %q", cmd.Mnemonic)
		return Result{}, false
	}
	for _, p := range parts {
		if strings.IndexFunc(p, isSpace) >= 0 {
			errs.Add(pos, parser.ErrLexical, "extra data after instruction %q", cmd.Mnemonic)
			return Result{}, false
		}
	}

	var srcExtra, dstExtra *Extra
	var srcMode, srcReg, dstMode, dstReg int
	valid := true

	idx := 0
	if cmd.HasSource() {
		e, mode, reg, ok := decodeOperand(parts[idx], cmd.SourceModes, cmd.Mnemonic, pos, errs)
		valid = valid && ok
		srcExtra, srcMode, srcReg = e, mode, reg
		idx++
	}
	if cmd.HasDest() {
		e, mode, reg, ok := decodeOperand(parts[idx], cmd.DestModes, cmd.Mnemonic, pos, errs)
		valid = valid && ok
		dstExtra, dstMode, dstReg = e, mode, reg
	}
	if !valid {
		return Result{}, false
	}

	word1 := FirstWord(cmd.Opcode, cmd.Funct, dstMode, dstReg, srcMode, srcReg, AREAbsolute)

	var extras []Extra
	if srcExtra != nil {
		extras = append(extras, *srcExtra)
	}
	if dstExtra != nil {
		extras = append(extras, *dstExtra)
	}

	return Result{Word1: word1, Extras: extras}, true
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' }

// decodeOperand determines an operand's addressing mode from its
// leading character ('#' immediate, '&' relative, "rN" register,
// otherwise direct), validates it against allowed, and -- for
// non-register modes -- produces the Extra word (already resolved for
// immediates, pending for direct/relative). Returns mode/register
// values for folding into word1; reg is 0 for non-register modes.
func decodeOperand(tok string, allowed parser.ModeSet, mnemonic string, pos parser.Position, errs *parser.ErrorList) (extra *Extra, mode, reg int, ok bool) {
	switch {
	case strings.HasPrefix(tok, "#"):
		mode = parser.ModeImmediate
		if !allowed.Has(mode) {
			errs.Add(pos, parser.ErrAddressing, "immediate addressing not permitted for %q", mnemonic)
			return nil, 0, 0, false
		}
		val, valOK := parser.ParseSignedInt(tok[1:], immediateMin, immediateMax)
		if !valOK {
			errs.Add(pos, parser.ErrRange, "immediate value %q out of range for %q", tok[1:], mnemonic)
			return nil, 0, 0, false
		}
		return &Extra{Resolved: true, Value: ImmediateWord(val)}, mode, 0, true

	case strings.HasPrefix(tok, "&"):
		mode = parser.ModeRelative
		if !allowed.Has(mode) {
			errs.Add(pos, parser.ErrAddressing, "relative addressing not permitted for %q", mnemonic)
			return nil, 0, 0, false
		}
		name := tok[1:]
		return &Extra{Resolved: false, SymbolName: name, Relative: true}, mode, 0, true

	default:
		if r := parser.RegisterNumber(tok); r >= 1 {
			mode = parser.ModeRegister
			if !allowed.Has(mode) {
				errs.Add(pos, parser.ErrAddressing, "register addressing not permitted for %q", mnemonic)
				return nil, 0, 0, false
			}
			return nil, mode, r, true
		}
		if len(tok) == 2 && tok[0] == 'r' && tok[1] >= '0' && tok[1] <= '9' {
			errs.Add(pos, parser.ErrAddressing, "bad register number %q for %q", tok, mnemonic)
			return nil, 0, 0, false
		}
		mode = parser.ModeDirect
		if !allowed.Has(mode) {
			errs.Add(pos, parser.ErrAddressing, "direct addressing not permitted for %q", mnemonic)
			return nil, 0, 0, false
		}
		return &Extra{Resolved: false, SymbolName: tok, Relative: false}, mode, 0, true
	}
}
