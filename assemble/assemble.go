// Package assemble orchestrates macro expansion, first pass, and second
// pass into the complete translation pipeline for one source file (§4, §7).
package assemble

import (
	"errors"

	"github.com/kallisti-dev/word24asm/diag"
	"github.com/kallisti-dev/word24asm/encoder"
	"github.com/kallisti-dev/word24asm/parser"
)

// MaxSourceLines defensively bounds how many lines a single run will hold in
// memory at once. The original assembler can fail to grow its dynamic line
// buffer under real memory pressure (alloc_fail, §9); Go's garbage-collected
// runtime doesn't expose allocation failure to calling code the same way, so
// this ceiling gives that failure mode a concrete, reachable trigger instead
// of leaving it permanently theoretical.
const MaxSourceLines = 1 << 20

// ErrResourceExhausted describes the condition Result.ResourceExhausted
// signals, corresponding to the original's ALLOC_ERROR_EXIT_CODE.
var ErrResourceExhausted = errors.New("assemble: source exceeds maximum line count")

// SymbolInfo is a read-only view of one symbol table entry, exposed on
// Result for tools (like the listing browser) that want the whole table
// rather than just the derived Entries/Externals lists.
type SymbolInfo struct {
	Name    string
	Addr    int
	Context parser.SymbolContext
	Line    int
}

// Result is everything one file's translation produces. Images and lists are
// only meaningful when OK is true; a failed run still returns whatever
// diagnostics were accumulated, for reporting.
type Result struct {
	InstructionImage  []encoder.Word
	DataImage         []encoder.Word
	Entries           []EntryRecord
	Externals         []ExternalRecord
	Symbols           []SymbolInfo
	Diagnostics       []*diag.Diagnostic
	Listing           []ListingLine
	OK                bool
	ResourceExhausted bool
}

// Run expands macros, then runs first and second pass over the expanded
// lines, matching the propagation rule in §7: a failed macro phase stops the
// pipeline outright, since there is no sensible expanded text to continue
// with; a failed first pass still runs second pass (so it can accumulate its
// own diagnostics against the partially-built symbol table) but the run as a
// whole is not OK and no images are returned; only a clean run of all three
// phases produces output images.
func Run(lines []string) Result {
	if len(lines) > MaxSourceLines {
		return Result{ResourceExhausted: true}
	}

	sink := diag.NewSink()

	expanded, _ := parser.ExpandMacros(lines, sink)
	if sink.HasErrors() {
		return Result{Diagnostics: sink.All(), OK: false}
	}

	fp := runFirstPass(expanded, sink)
	firstPassOK := !sink.HasErrors() && !fp.Overflowed

	sp := runSecondPass(expanded, fp.Symbols, sink)

	if !firstPassOK || sink.HasErrors() {
		return Result{Diagnostics: sink.All(), OK: false}
	}

	listing := make([]ListingLine, 0, len(sp.Listing)+len(fp.DataListing))
	listing = append(listing, sp.Listing...)
	for _, d := range fp.DataListing {
		listing = append(listing, d.resolve(fp.FinalIC))
	}

	symbolTable := fp.Symbols.All()
	symbols := make([]SymbolInfo, len(symbolTable))
	for i, sym := range symbolTable {
		symbols[i] = SymbolInfo{Name: sym.Name, Addr: sym.Addr, Context: sym.Context, Line: sym.Line}
	}

	return Result{
		InstructionImage: sp.InstructionImage,
		DataImage:        fp.DataImage,
		Entries:          sp.Entries,
		Externals:        sp.Externals,
		Symbols:          symbols,
		Diagnostics:      sink.All(),
		Listing:          listing,
		OK:               true,
	}
}
