package assemble

import (
	"github.com/kallisti-dev/word24asm/diag"
	"github.com/kallisti-dev/word24asm/encoder"
	"github.com/kallisti-dev/word24asm/parser"
)

// firstPassResult holds everything second pass needs: the completed symbol
// table, the accumulated data image, and the final instruction counter (so
// second pass can recompute per-line addresses the same way first pass did).
type firstPassResult struct {
	Symbols     *parser.SymbolTable
	DataImage   []encoder.Word
	FinalIC     int
	Overflowed  bool
	DataListing []dataListingLine
}

// dataWord stores a .data value as a plain 24-bit two's-complement word (§3);
// it carries no A/R/E tag since data words are never relocated or resolved
// the way instruction extra words are.
func dataWord(v int) encoder.Word {
	return encoder.Word(uint32(int32(v)) & encoder.ValueMask24)
}

// runFirstPass is a linear scan over the macro-expanded source (§4.8): it
// builds the symbol table and the data image, threading IC/DC through as
// locals rather than process-wide state the way the original threads them as
// explicit function parameters.
func runFirstPass(lines []string, sink *diag.Sink) firstPassResult {
	symbols := parser.NewSymbolTable()
	var dataImage []encoder.Word
	var dataListing []dataListingLine
	ic := parser.InstructionMemoryStart
	dc := 0
	var overflowLine *diag.LineInfo

	// checkOverflow only remembers the first line at which IC+DC passes
	// MaxAddress; the diagnostic is reported once, after the last line.
	checkOverflow := func(info diag.LineInfo) {
		if overflowLine == nil && ic+dc > parser.MaxAddress {
			overflowLine = &info
		}
	}

	for i, raw := range lines {
		lineNum := i + 1
		info := diag.LineInfo{Num: lineNum, Text: raw}
		pl := parser.ParseLine(raw, lineNum)

		if pl.ContentKind == parser.ContentEmpty || pl.ContentKind == parser.ContentComment {
			continue
		}

		if pl.Label.Kind == parser.LabelError {
			sink.Add(pl.Label.Error)
		} else if pl.Label.Kind == parser.LabelOK {
			insertLabelSymbol(symbols, pl, ic, dc, lineNum, info, sink)
		}

		switch pl.ContentKind {
		case parser.ContentError:
			sink.Add(pl.Error)

		case parser.ContentDirective:
			switch pl.Directive.Kind {
			case parser.DirectiveExtern:
				name := pl.Directive.Symbol
				if existing := symbols.Lookup(name); existing != nil {
					sink.Add(diag.NewSymbolAlreadyDefined(info, name, existing.Line))
				} else {
					symbols.Insert(parser.Symbol{Name: name, Addr: 0, Context: parser.SymbolExternal, Line: lineNum})
				}

			case parser.DirectiveEntry:
				// .entry is resolved against the finished symbol table in
				// second pass; nothing to record here.

			case parser.DirectiveData:
				startDC := dc
				var words []encoder.Word
				for _, v := range pl.Directive.Ints {
					w := dataWord(v)
					dataImage = append(dataImage, w)
					words = append(words, w)
				}
				dc += len(pl.Directive.Ints)
				dataListing = append(dataListing, dataListingLine{DCOffset: startDC, Words: words, Source: raw})

			case parser.DirectiveString:
				startDC := dc
				var words []encoder.Word
				text := pl.Directive.Text
				for j := 0; j < len(text); j++ {
					w := encoder.Word(text[j])
					dataImage = append(dataImage, w)
					words = append(words, w)
				}
				dataImage = append(dataImage, 0)
				words = append(words, 0)
				dc += len(pl.Directive.Text) + 1
				dataListing = append(dataListing, dataListingLine{DCOffset: startDC, Words: words, Source: raw})
			}

		case parser.ContentInstruction:
			ic += pl.Instruction.EncodingWordCount()
		}

		checkOverflow(info)
	}

	if overflowLine != nil {
		sink.Add(diag.NewMemoryOverflown(*overflowLine, parser.MaxAddress, ic+dc))
	}

	symbols.FinalizeDataAddresses(ic)

	return firstPassResult{Symbols: symbols, DataImage: dataImage, FinalIC: ic, Overflowed: overflowLine != nil, DataListing: dataListing}
}

// insertLabelSymbol implements §4.8 point 2: a label before DATA/STRING is
// recorded in the DATA context at the current DC; before an instruction, in
// the CODE context at the current IC; before ENTRY/EXTERN it is accepted
// grammatically but carries no meaning and is not inserted.
func insertLabelSymbol(symbols *parser.SymbolTable, pl parser.ParsedLine, ic, dc, lineNum int, info diag.LineInfo, sink *diag.Sink) {
	var ctx parser.SymbolContext
	var addr int
	switch pl.ContentKind {
	case parser.ContentDirective:
		switch pl.Directive.Kind {
		case parser.DirectiveData, parser.DirectiveString:
			ctx, addr = parser.SymbolData, dc
		default:
			return
		}
	case parser.ContentInstruction:
		ctx, addr = parser.SymbolCode, ic
	default:
		return
	}

	if ok, existing := symbols.Insert(parser.Symbol{Name: pl.Label.Name, Addr: addr, Context: ctx, Line: lineNum}); !ok {
		sink.Add(diag.NewSymbolAlreadyDefined(info, pl.Label.Name, existing.Line))
	}
}
