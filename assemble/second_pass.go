package assemble

import (
	"github.com/kallisti-dev/word24asm/diag"
	"github.com/kallisti-dev/word24asm/encoder"
	"github.com/kallisti-dev/word24asm/parser"
)

// EntryRecord is one (name, address) pair for the .ent listing.
type EntryRecord struct {
	Name string
	Addr int
}

// ExternalRecord is one (name, address) pair for the .ext listing: address
// is the word-address of the extra word that references name, not name's
// own (always-zero) symbol-table address.
type ExternalRecord struct {
	Name string
	Addr int
}

// secondPassResult holds everything second pass produced.
type secondPassResult struct {
	InstructionImage []encoder.Word
	Entries          []EntryRecord
	Externals        []ExternalRecord
	Listing          []ListingLine
}

// runSecondPass re-scans the same expanded lines first pass saw, reusing its
// finished symbol table to resolve operands and encode instructions (§4.10).
func runSecondPass(lines []string, symbols *parser.SymbolTable, sink *diag.Sink) secondPassResult {
	enc := encoder.NewEncoder()
	ic := parser.InstructionMemoryStart
	var image []encoder.Word
	var entries []EntryRecord
	var externals []ExternalRecord
	var listing []ListingLine
	seenEntry := make(map[string]bool)

	for i, raw := range lines {
		lineNum := i + 1
		info := diag.LineInfo{Num: lineNum, Text: raw}
		pl := parser.ParseLine(raw, lineNum)

		switch pl.ContentKind {
		case parser.ContentEmpty, parser.ContentComment, parser.ContentError:
			continue

		case parser.ContentDirective:
			if pl.Directive.Kind != parser.DirectiveEntry {
				continue
			}
			name := pl.Directive.Symbol
			sym := symbols.Lookup(name)
			switch {
			case sym == nil:
				sink.Add(diag.NewSymbolNotDefined(info, name))
			case sym.Context == parser.SymbolExternal:
				sink.Add(diag.NewExternalSymbolUsedInEntry(info, name, sym.Line))
			case !seenEntry[name]:
				seenEntry[name] = true
				entries = append(entries, EntryRecord{Name: name, Addr: sym.Addr})
			}

		case parser.ContentInstruction:
			instr := pl.Instruction
			extraAddr := ic + 1

			// extraAddr advances for every non-register operand in
			// argument order, since an IMMEDIATE operand occupies an
			// extra word just as a SYMBOL or ADDRESS one does (§4.9);
			// only the latter two need a symbol-table lookup.
			resolve := func(op *parser.Operand) (addr int, ctx parser.SymbolContext, ok bool) {
				if op == nil || op.Kind == parser.Register {
					return 0, 0, true
				}
				wordAddr := extraAddr
				extraAddr++
				if op.Kind != parser.Symbol && op.Kind != parser.Address {
					return 0, 0, true
				}
				sym := symbols.Lookup(op.Name)
				if sym == nil {
					sink.Add(diag.NewSymbolNotDefined(info, op.Name))
					return 0, 0, false
				}
				if sym.Context == parser.SymbolExternal {
					externals = append(externals, ExternalRecord{Name: op.Name, Addr: wordAddr})
				}
				return sym.Addr, sym.Context, true
			}

			src1Addr, src1Ctx, ok1 := resolve(instr.Operand1)
			dstAddr, dstCtx, ok2 := resolve(instr.Operand2)
			if !ok1 || !ok2 {
				ic += instr.EncodingWordCount()
				continue
			}

			head := enc.EncodeHead(instr)
			words := []encoder.Word{head}
			image = append(image, head)
			if instr.Operand1 != nil && instr.Operand1.Kind != parser.Register {
				w := extraWord(instr.Operand1, src1Addr, src1Ctx, ic)
				image = append(image, w)
				words = append(words, w)
			}
			if instr.Operand2 != nil && instr.Operand2.Kind != parser.Register {
				w := extraWord(instr.Operand2, dstAddr, dstCtx, ic)
				image = append(image, w)
				words = append(words, w)
			}
			listing = append(listing, ListingLine{Addr: ic, Words: words, Source: raw})

			ic += instr.EncodingWordCount()
		}
	}

	return secondPassResult{InstructionImage: image, Entries: entries, Externals: externals, Listing: listing}
}

// extraWord builds the extra word for a resolved non-register operand. addr
// and ctx are only meaningful for SYMBOL/ADDRESS operands; headAddr is the
// address of the instruction's head word, needed for ADDRESS's relative
// encoding.
func extraWord(op *parser.Operand, addr int, ctx parser.SymbolContext, headAddr int) encoder.Word {
	switch op.Kind {
	case parser.Immediate:
		return encoder.EncodeImmediateExtra(op.ImmediateValue)
	case parser.Symbol:
		return encoder.EncodeSymbolExtra(addr, ctx)
	default: // parser.Address
		return encoder.EncodeAddressExtra(addr, headAddr)
	}
}
