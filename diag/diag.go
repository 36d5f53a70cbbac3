// Package diag holds the assembler's structured diagnostic taxonomy.
//
// Every diagnostic carries a LineInfo snapshot (the defining/offending line)
// plus a Kind and a rendered message. Construction happens through the
// New*/typed helpers below rather than building a Diagnostic literal by hand,
// so that message wording stays in one place.
package diag

import "fmt"

// LineInfo identifies the source line a diagnostic refers to. It is copied
// by value wherever it travels, never shared by pointer, since a phase may
// no longer hold the line by the time a diagnostic is rendered.
type LineInfo struct {
	Num  int
	Text string
}

// Kind is the top-level diagnostic taxonomy from the error handling design.
type Kind int

const (
	KindMacro Kind = iota
	KindSymbolParse
	KindParse
	KindSymbolAlreadyDefined
	KindMemoryOverflown
	KindSymbolNotDefined
	KindExternalSymbolUsedInEntry
)

func (k Kind) String() string {
	switch k {
	case KindMacro:
		return "macro"
	case KindSymbolParse:
		return "symbol_parse"
	case KindParse:
		return "parse"
	case KindSymbolAlreadyDefined:
		return "symbol_already_defined"
	case KindMemoryOverflown:
		return "memory_overflown"
	case KindSymbolNotDefined:
		return "symbol_not_defined"
	case KindExternalSymbolUsedInEntry:
		return "external_symbol_used_in_entry"
	default:
		return "unknown"
	}
}

// Diagnostic is a single structured assembler error. It implements error so
// it can be returned and wrapped in the ordinary Go way, but callers that
// need the structured fields (the kind, the line) should read them directly
// rather than parsing Error().
type Diagnostic struct {
	Kind    Kind
	Line    LineInfo
	message string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("error in line %d: %s", d.Line.Num, d.message)
}

// Message returns the "info:" payload text, without the line-prefix wrapper
// that Error() and Render add.
func (d *Diagnostic) Message() string {
	return d.message
}

func newDiag(kind Kind, line LineInfo, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: kind, Line: line, message: fmt.Sprintf(format, args...)}
}
