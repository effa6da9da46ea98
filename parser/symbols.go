package parser

import "fmt"

// SymbolKind is one flag of the set {code, data, entry, external} a
// symbol's kinds may combine, subject to entry/external being mutually
// exclusive. Modeled as a bitset rather than inheritance, per the design
// notes: the entry/external exclusion then collapses to a single check.
type SymbolKind uint8

const (
	KindCode SymbolKind = 1 << iota
	KindData
	KindEntry
	KindExternal
)

func (k SymbolKind) Has(f SymbolKind) bool { return k&f != 0 }

// UndefinedAddress is the sentinel distinguishing "no address yet" from
// any legal load address (addresses are always >= LoadBase >= 0, so a
// negative sentinel is unambiguous).
const UndefinedAddress = -1

// Symbol is one entry of the symbol table.
type Symbol struct {
	Name       string
	Address    int
	Kinds      SymbolKind
	ExternRefs []int // absolute addresses referencing this symbol; only meaningful when KindExternal is set
}

func (s *Symbol) hasAddress() bool { return s.Address != UndefinedAddress }

// SymbolTable maps names to symbol records. Lookup order for .ext/.ent
// emission follows insertion order, so symbols are kept in a slice
// alongside a name index. maxIdentifier bounds the identifiers it will
// accept, per the caller's config (spec.md §6).
type SymbolTable struct {
	order         []*Symbol
	byNam         map[string]*Symbol
	maxIdentifier int
}

// NewSymbolTable returns an empty table that rejects identifiers
// longer than maxIdentifier.
func NewSymbolTable(maxIdentifier int) *SymbolTable {
	return &SymbolTable{byNam: make(map[string]*Symbol), maxIdentifier: maxIdentifier}
}

func (t *SymbolTable) insert(name string) *Symbol {
	s := &Symbol{Name: name, Address: UndefinedAddress}
	t.byNam[name] = s
	t.order = append(t.order, s)
	return s
}

// conflictsKind reports whether merging `add` into `existing` would
// violate the entry/external mutual exclusion.
func conflictsKind(existing, add SymbolKind) bool {
	merged := existing | add
	return merged.Has(KindEntry) && merged.Has(KindExternal)
}

// AddName validates the identifier, then inserts or updates a symbol
// that is being *defined* with an address (a code or data label, or a
// resolved .entry). If the symbol already carries a defined address and
// this call defines another one, it is a duplicate-definition error. If
// the symbol exists without an address, the address is filled in and
// the kind merged.
func (t *SymbolTable) AddName(name string, kind SymbolKind, addr int, pos Position, errs *ErrorList) {
	if !ValidIdentifier(name, t.maxIdentifier) {
		errs.Add(pos, ErrIdentifier, "invalid identifier %q", name)
		return
	}
	sym, exists := t.byNam[name]
	if !exists {
		sym = t.insert(name)
	}
	if conflictsKind(sym.Kinds, kind) {
		errs.Add(pos, ErrDuplicate, "symbol %q cannot be both entry and external", name)
		return
	}
	if sym.hasAddress() {
		errs.Add(pos, ErrDuplicate, "symbol %q already defined", name)
		return
	}
	sym.Address = addr
	sym.Kinds |= kind
}

// AddKind merges a kind into a symbol's set, inserting an undefined
// entry if the symbol is new. Used for bare .entry/.extern declarations
// that carry no address of their own (external always; entry until the
// local definition is seen).
func (t *SymbolTable) AddKind(name string, kind SymbolKind, pos Position, errs *ErrorList) {
	if !ValidIdentifier(name, t.maxIdentifier) {
		errs.Add(pos, ErrIdentifier, "invalid identifier %q", name)
		return
	}
	sym, exists := t.byNam[name]
	if !exists {
		sym = t.insert(name)
	}
	if conflictsKind(sym.Kinds, kind) {
		errs.Add(pos, ErrDuplicate, "symbol %q cannot be both entry and external", name)
		return
	}
	sym.Kinds |= kind
}

// Find returns the symbol named n, or nil if absent.
func (t *SymbolTable) Find(name string) *Symbol {
	return t.byNam[name]
}

// GetAddress returns a symbol's address (possibly UndefinedAddress).
func (t *SymbolTable) GetAddress(sym *Symbol) int {
	return sym.Address
}

// RecordExternalRef appends addr to sym's external-reference list.
func (t *SymbolTable) RecordExternalRef(sym *Symbol, addr int) {
	sym.ExternRefs = append(sym.ExternRefs, addr)
}

// Relocate applies the end-of-first-pass address fixups of spec.md
// §4.2: data symbols gain icf+loadBase, code symbols gain loadBase.
// Entry symbols without a local definition are reported as unresolved.
func (t *SymbolTable) Relocate(icf, loadBase int, errs *ErrorList) {
	for _, sym := range t.order {
		switch {
		case sym.Kinds.Has(KindData):
			sym.Address += icf + loadBase
		case sym.Kinds.Has(KindCode):
			sym.Address += loadBase
		}
		if sym.Kinds.Has(KindEntry) && !sym.hasAddress() {
			errs.Add(Position{}, ErrUnresolved, "entry symbol %q is never defined", sym.Name)
		}
	}
}

// EntrySymbols returns, in insertion order, every symbol carrying the
// entry kind -- ready for .ent emission.
func (t *SymbolTable) EntrySymbols() []*Symbol {
	var out []*Symbol
	for _, sym := range t.order {
		if sym.Kinds.Has(KindEntry) {
			out = append(out, sym)
		}
	}
	return out
}

// ExternalReferenceSymbols returns, in insertion order, every symbol
// that was referenced as external at least once -- ready for .ext
// emission. Within a symbol, the reference order is the order the
// second pass recorded them in.
func (t *SymbolTable) ExternalReferenceSymbols() []*Symbol {
	var out []*Symbol
	for _, sym := range t.order {
		if sym.Kinds.Has(KindExternal) && len(sym.ExternRefs) > 0 {
			out = append(out, sym)
		}
	}
	return out
}

// String renders a symbol for diagnostics and -verbose listings.
func (s *Symbol) String() string {
	return fmt.Sprintf("%-31s addr=%d kinds=%04b", s.Name, s.Address, s.Kinds)
}
