package parser

import "strings"

// Addressing-mode codes, as carried in the 2-bit mode fields of the
// first machine word.
const (
	ModeImmediate = 0
	ModeDirect    = 1
	ModeRelative  = 2
	ModeRegister  = 3
)

// ModeSet is a proper set-of-modes representation (design notes:
// "the source expresses allowed-mode sets as a string of mode-code
// digits. Prefer a proper set-of-modes representation"), rather than a
// string of digits.
type ModeSet uint8

// NewModeSet builds a ModeSet from a list of mode codes.
func NewModeSet(modes ...int) ModeSet {
	var s ModeSet
	for _, m := range modes {
		s |= 1 << uint(m)
	}
	return s
}

// Has reports whether mode is a member of the set.
func (s ModeSet) Has(mode int) bool {
	return s&(1<<uint(mode)) != 0
}

// noOperand is the zero ModeSet: the instruction has no operand in that
// position.
const noOperand ModeSet = 0

// Command is the static descriptor for one mnemonic: its opcode, its
// funct sub-code, and the addressing modes legal for its source and
// destination operand positions (noOperand meaning the instruction
// takes no operand there).
type Command struct {
	Mnemonic    string
	Opcode      int
	Funct       int
	SourceModes ModeSet
	DestModes   ModeSet
}

// HasSource reports whether this command takes a source operand.
func (c *Command) HasSource() bool { return c.SourceModes != noOperand }

// HasDest reports whether this command takes a destination operand.
func (c *Command) HasDest() bool { return c.DestModes != noOperand }

var allModes = NewModeSet(ModeImmediate, ModeDirect, ModeRelative, ModeRegister)
var addressModes = NewModeSet(ModeDirect, ModeRelative, ModeRegister) // no immediate
var jumpModes = NewModeSet(ModeDirect, ModeRelative)
var writableModes = NewModeSet(ModeDirect, ModeRelative, ModeRegister)

// Commands is the static, 16-entry command table, indexed by mnemonic.
// It names the word machine's fixed instruction set: two-operand
// register/memory ops, one-operand ops, jumps, and zero-operand control
// instructions. funct is 0 for every entry; this machine does not use
// funct to distinguish sub-operations within a shared opcode.
var Commands = map[string]*Command{
	"mov":  {"mov", 0, 0, allModes, writableModes},
	"cmp":  {"cmp", 1, 0, allModes, allModes},
	"add":  {"add", 2, 0, allModes, writableModes},
	"sub":  {"sub", 3, 0, allModes, writableModes},
	"lea":  {"lea", 4, 0, jumpModes, writableModes},
	"clr":  {"clr", 5, 0, noOperand, writableModes},
	"not":  {"not", 6, 0, noOperand, writableModes},
	"inc":  {"inc", 7, 0, noOperand, writableModes},
	"dec":  {"dec", 8, 0, noOperand, writableModes},
	"jmp":  {"jmp", 9, 0, noOperand, jumpModes},
	"bne":  {"bne", 10, 0, noOperand, jumpModes},
	"red":  {"red", 11, 0, noOperand, writableModes},
	"prn":  {"prn", 12, 0, noOperand, allModes},
	"jsr":  {"jsr", 13, 0, noOperand, jumpModes},
	"rts":  {"rts", 14, 0, noOperand, noOperand},
	"stop": {"stop", 15, 0, noOperand, noOperand},
}

// reservedWords is the set of names a symbol or macro may never be
// named, per spec.md §3: every mnemonic, the register names, and the
// directive keywords data/string/entry/extern (named without their
// leading dot, since that is how spec.md §3 itself spells them).
var reservedWords = func() map[string]bool {
	m := map[string]bool{
		"data": true, "string": true, "entry": true, "extern": true,
	}
	for mnemonic := range Commands {
		m[mnemonic] = true
	}
	for i := 1; i <= 7; i++ {
		m["r"+string(rune('0'+i))] = true
	}
	return m
}()

// IsReservedWord reports whether name is exactly (case-sensitively) a
// reserved word. Mnemonics, register names, and directive keywords are
// always written lower-case in this assembly dialect -- every example
// in spec.md writes labels upper-case ("LOOP", "DATA", "LBL") and
// keywords lower-case ("mov", ".data", ".entry") -- so an upper-case
// label never collides with a reserved word of the same letters.
func IsReservedWord(name string) bool {
	return reservedWords[name]
}

// LookupCommand finds a command by mnemonic. Source mnemonics are
// written lower-case by convention, but the lookup is
// case-insensitive.
func LookupCommand(mnemonic string) (*Command, bool) {
	c, ok := Commands[strings.ToLower(mnemonic)]
	return c, ok
}

// RegisterNumber parses "r1".."r7" and returns 1..7, or -1 if not a
// legal register name.
func RegisterNumber(tok string) int {
	if len(tok) != 2 || tok[0] != 'r' {
		return -1
	}
	d := tok[1]
	if d < '1' || d > '7' {
		return -1
	}
	return int(d - '0')
}
