// Package parser holds the data structures shared by the pre-processor,
// the first pass, and the second pass: source positions, diagnostics,
// the scanning primitives, the macro table, the symbol table, and the
// static command (mnemonic) table.
package parser

import "fmt"

// Position identifies a line in a source file, for diagnostics.
type Position struct {
	Filename string
	Line     int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d", p.Filename, p.Line)
}

// ErrorKind categorizes a diagnostic per the taxonomy in the error
// handling design: lexical, comma discipline, identifier, duplicate
// definition, addressing mode, range, unresolved, resource.
type ErrorKind int

const (
	ErrLexical ErrorKind = iota
	ErrComma
	ErrIdentifier
	ErrDuplicate
	ErrAddressing
	ErrRange
	ErrUnresolved
	ErrResource
)

// Error is a single diagnostic, always prefixed by its source line.
type Error struct {
	Pos     Position
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// NewError builds a diagnostic.
func NewError(pos Position, kind ErrorKind, format string, args ...any) *Error {
	return &Error{Pos: pos, Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ErrorList accumulates diagnostics for one file. Every diagnostic in the
// list invalidates the file, but accumulation continues so as many
// diagnostics as possible are surfaced in a single run.
type ErrorList struct {
	Errors   []*Error
	Warnings []string
}

// Add appends a diagnostic.
func (el *ErrorList) Add(pos Position, kind ErrorKind, format string, args ...any) {
	el.Errors = append(el.Errors, NewError(pos, kind, format, args...))
}

// Warn appends a non-fatal warning; warnings do not invalidate the file.
func (el *ErrorList) Warn(pos Position, format string, args ...any) {
	el.Warnings = append(el.Warnings, fmt.Sprintf("%s: warning: %s", pos, fmt.Sprintf(format, args...)))
}

// HasErrors reports whether the file is invalid.
func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

// Strings renders every diagnostic as a line, source-line-prefixed,
// in the order they were recorded.
func (el *ErrorList) Strings() []string {
	out := make([]string, 0, len(el.Errors))
	for _, e := range el.Errors {
		out = append(out, e.Error())
	}
	return out
}
