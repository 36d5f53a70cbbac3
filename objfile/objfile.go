// Package objfile writes the assembler's three output files: the object
// image (.ob) and the entry/external symbol listings (.ent/.ext), using the
// original's exact line formats.
package objfile

import (
	"bufio"
	"fmt"
	"os"

	"github.com/kallisti-dev/word24asm/assemble"
	"github.com/kallisti-dev/word24asm/encoder"
	"github.com/kallisti-dev/word24asm/parser"
)

// WriteObject writes path's object file: a header line with the instruction
// and data word counts, followed by one "<address> <hex word>" line per
// word, instructions first, then data continuing the address sequence.
func WriteObject(path string, instructions, data []encoder.Word) error {
	f, err := os.Create(path) // #nosec G304 -- driver-controlled output path derived from the input file name
	if err != nil {
		return fmt.Errorf("could not open %s for writing: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintf(w, "%7d %d\n", len(instructions), len(data)); err != nil {
		return err
	}

	addr := parser.InstructionMemoryStart
	for _, word := range instructions {
		if _, err := fmt.Fprintf(w, "%07d %06x\n", addr, uint32(word)&0xFFFFFF); err != nil {
			return err
		}
		addr++
	}
	for _, word := range data {
		if _, err := fmt.Fprintf(w, "%07d %06x\n", addr, uint32(word)&0xFFFFFF); err != nil {
			return err
		}
		addr++
	}

	return w.Flush()
}

// WriteListing writes path with one line per assembled source line: the
// line's address, its encoded words, and the original source text, for the
// -listing flag and for the symbol/listing browser.
func WriteListing(path string, lines []assemble.ListingLine) error {
	f, err := os.Create(path) // #nosec G304 -- driver-controlled output path derived from the input file name
	if err != nil {
		return fmt.Errorf("could not open %s for writing: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, l := range lines {
		fmt.Fprintf(w, "%07d", l.Addr)
		for _, word := range l.Words {
			fmt.Fprintf(w, " %06x", uint32(word)&0xFFFFFF)
		}
		if _, err := fmt.Fprintf(w, "  %s\n", l.Source); err != nil {
			return err
		}
	}
	return w.Flush()
}

// WriteSymbolList writes path with one "<name> <address>" line per record,
// used for both .ent and .ext files.
func WriteSymbolList(path string, records []symbolRecord) error {
	f, err := os.Create(path) // #nosec G304 -- driver-controlled output path derived from the input file name
	if err != nil {
		return fmt.Errorf("could not open %s for writing: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, r := range records {
		if _, err := fmt.Fprintf(w, "%s %07d\n", r.Name, r.Addr); err != nil {
			return err
		}
	}
	return w.Flush()
}

// symbolRecord unifies EntryRecord and ExternalRecord for WriteSymbolList.
type symbolRecord struct {
	Name string
	Addr int
}

// EntryRecords adapts a Result's entry list to WriteSymbolList's input.
func EntryRecords(entries []assemble.EntryRecord) []symbolRecord {
	out := make([]symbolRecord, len(entries))
	for i, e := range entries {
		out[i] = symbolRecord{Name: e.Name, Addr: e.Addr}
	}
	return out
}

// ExternalRecords adapts a Result's external list to WriteSymbolList's input.
func ExternalRecords(externals []assemble.ExternalRecord) []symbolRecord {
	out := make([]symbolRecord, len(externals))
	for i, e := range externals {
		out[i] = symbolRecord{Name: e.Name, Addr: e.Addr}
	}
	return out
}

// WriteAll writes whichever of the three output files are warranted by
// result, per the emission policy (§6): the object file is written only
// when there is at least one instruction or data word; .ent/.ext only when
// their respective list is non-empty. base is the input file name without
// extension. The listing file is written in addition when emitListing is
// true, matching the driver's -listing flag / config default.
func WriteAll(base string, result assemble.Result, emitListing bool) error {
	if len(result.InstructionImage) > 0 || len(result.DataImage) > 0 {
		if err := WriteObject(base+".ob", result.InstructionImage, result.DataImage); err != nil {
			return err
		}
	}
	if len(result.Entries) > 0 {
		if err := WriteSymbolList(base+".ent", EntryRecords(result.Entries)); err != nil {
			return err
		}
	}
	if len(result.Externals) > 0 {
		if err := WriteSymbolList(base+".ext", ExternalRecords(result.Externals)); err != nil {
			return err
		}
	}
	if emitListing && len(result.Listing) > 0 {
		if err := WriteListing(base+".lst", result.Listing); err != nil {
			return err
		}
	}
	return nil
}
