package parser

import (
	"strconv"
	"strings"
	"unicode"
)

// ValidIdentifier reports whether name is a syntactically legal
// identifier: starts with a letter, the remainder is alphanumeric,
// length <= maxLen (spec.md §6's configurable identifier-length
// limit), and it is not a reserved word. It does not check against the
// macro table; callers that also track macro names must check those
// separately (spec.md ties identifier legality to the current macro
// table, which only the caller holds).
func ValidIdentifier(name string, maxLen int) bool {
	if name == "" || len(name) > maxLen {
		return false
	}
	if !unicode.IsLetter(rune(name[0])) {
		return false
	}
	for i := 1; i < len(name); i++ {
		c := rune(name[i])
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			return false
		}
	}
	return !IsReservedWord(name)
}

// SkipSpace returns the suffix of s starting at its first non-space
// rune, or "" if s is all space.
func SkipSpace(s string) string {
	for i, r := range s {
		if !unicode.IsSpace(r) {
			return s[i:]
		}
	}
	return ""
}

// TrimTrailing drops trailing whitespace.
func TrimTrailing(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// IsBlankOrComment reports whether a line (after its leading whitespace
// is implicitly skipped by the scan primitives) should be skipped: it
// is empty, or its first non-whitespace character is ';'.
func IsBlankOrComment(line string) bool {
	trimmed := SkipSpace(line)
	return trimmed == "" || trimmed[0] == ';'
}

// FirstToken scans the first whitespace-delimited token off line and
// returns it along with the remainder (with its own leading whitespace
// still attached, for the next scan step).
func FirstToken(line string) (tok, rest string) {
	line = SkipSpace(line)
	for i, r := range line {
		if unicode.IsSpace(r) {
			return line[:i], line[i:]
		}
	}
	return line, ""
}

// IsLabelDef reports whether tok, the first token of a line, is a
// label definition: a non-empty name with ':' as its last character,
// returning the name without the colon. "tok :" is not a label
// definition (the colon must directly follow the name, per common
// assembler convention: label defs are written "NAME:").
func IsLabelDef(tok string) (name string, isLabel bool) {
	if len(tok) < 2 || tok[len(tok)-1] != ':' {
		return "", false
	}
	return tok[:len(tok)-1], true
}

// SplitOperands splits an operand field into comma-delimited pieces
// and validates comma discipline: exactly one comma between two
// operands, none before the first or after the last, no consecutive
// commas. Each returned piece has its surrounding whitespace trimmed.
func SplitOperands(field string, expected int) ([]string, bool) {
	field = strings.TrimSpace(field)
	if expected == 0 {
		return nil, field == ""
	}
	if field == "" {
		return nil, false
	}
	if strings.HasPrefix(field, ",") || strings.HasSuffix(field, ",") {
		return nil, false
	}
	if strings.Contains(field, ",,") {
		return nil, false
	}
	parts := strings.Split(field, ",")
	if len(parts) != expected {
		return nil, false
	}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, false
		}
		parts[i] = p
	}
	return parts, true
}

// SplitList splits a comma-separated list of arbitrary length (used by
// .data), enforcing the same comma discipline as SplitOperands: no
// leading, trailing, or doubled commas, and no empty elements.
func SplitList(field string) ([]string, bool) {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil, false
	}
	if strings.HasPrefix(field, ",") || strings.HasSuffix(field, ",") || strings.Contains(field, ",,") {
		return nil, false
	}
	parts := strings.Split(field, ",")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, false
		}
		parts[i] = p
	}
	return parts, true
}

// ParseSignedInt parses a decimal integer, optionally signed, with the
// range [lo, hi] (inclusive). Returns ok=false if the literal is
// malformed or out of range.
func ParseSignedInt(tok string, lo, hi int) (value int, ok bool) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	if n < lo || n > hi {
		return 0, false
	}
	return n, true
}

// ScanQuotedString extracts the payload of a double-quoted string
// directive operand. Returns ok=false if the opening or closing quote
// is missing, or trailing set if non-whitespace text follows the
// closing quote.
func ScanQuotedString(field string) (payload string, trailing bool, ok bool) {
	field = strings.TrimSpace(field)
	if len(field) < 2 || field[0] != '"' {
		return "", false, false
	}
	end := strings.IndexByte(field[1:], '"')
	if end < 0 {
		return "", false, false
	}
	end++ // index into field
	payload = field[1:end]
	rest := SkipSpace(field[end+1:])
	return payload, rest != "", true
}
