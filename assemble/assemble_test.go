package assemble_test

import (
	"testing"

	"github.com/kallisti-dev/word24asm/assemble"
	"github.com/kallisti-dev/word24asm/diag"
	"github.com/kallisti-dev/word24asm/parser"
)

func field(w uint32, shift, mask uint32) uint32 {
	return (w >> shift) & mask
}

// §8 scenario 1.
func TestRunTwoInstructionProgram(t *testing.T) {
	lines := []string{"MAIN: mov #3, r1", "stop"}
	result := assemble.Run(lines)
	if !result.OK {
		t.Fatalf("expected OK, diagnostics: %v", result.Diagnostics)
	}
	if len(result.InstructionImage) != 3 {
		t.Fatalf("instruction image = %d words, want 3", len(result.InstructionImage))
	}

	head := uint32(result.InstructionImage[0])
	if op := field(head, 18, 0x3F); op != 0 {
		t.Errorf("mov opcode = %d, want 0", op)
	}
	if m := field(head, 16, 0x3); m != 0 {
		t.Errorf("mov src mode = %d, want 0 (immediate)", m)
	}
	if m := field(head, 11, 0x3); m != 3 {
		t.Errorf("mov dst mode = %d, want 3 (register)", m)
	}
	if r := field(head, 8, 0x7); r != 1 {
		t.Errorf("mov dst reg = %d, want 1", r)
	}

	extra := uint32(result.InstructionImage[1])
	if v := field(extra, 3, 0x1FFFFF); v != 3 {
		t.Errorf("immediate extra value = %d, want 3", v)
	}
	if are := extra & 0x7; are != 0b100 {
		t.Errorf("immediate A/R/E = %03b, want 100", are)
	}

	stopHead := uint32(result.InstructionImage[2])
	if op := field(stopHead, 18, 0x3F); op != 15 {
		t.Errorf("stop opcode = %d, want 15", op)
	}
}

// §8 scenario 2.
func TestRunExternAndEntryInteraction(t *testing.T) {
	lines := []string{".extern EXT", "ENTRYHERE: add EXT, r2", ".entry ENTRYHERE"}
	result := assemble.Run(lines)
	if !result.OK {
		t.Fatalf("expected OK, diagnostics: %v", result.Diagnostics)
	}

	if len(result.Externals) != 1 || result.Externals[0].Name != "EXT" || result.Externals[0].Addr != 101 {
		t.Fatalf("externals = %+v, want [{EXT 101}]", result.Externals)
	}
	if len(result.Entries) != 1 || result.Entries[0].Name != "ENTRYHERE" || result.Entries[0].Addr != 100 {
		t.Fatalf("entries = %+v, want [{ENTRYHERE 100}]", result.Entries)
	}

	head := uint32(result.InstructionImage[0])
	if op := field(head, 18, 0x3F); op != 2 {
		t.Errorf("add opcode = %d, want 2", op)
	}
	if f := field(head, 3, 0x1F); f != 1 {
		t.Errorf("add funct = %d, want 1", f)
	}
	if m := field(head, 16, 0x3); m != 1 {
		t.Errorf("add src mode = %d, want 1 (symbol)", m)
	}
	if m := field(head, 11, 0x3); m != 3 {
		t.Errorf("add dst mode = %d, want 3 (register)", m)
	}
	if r := field(head, 8, 0x7); r != 2 {
		t.Errorf("add dst reg = %d, want 2", r)
	}

	extra := uint32(result.InstructionImage[1])
	if v := field(extra, 3, 0x1FFFFF); v != 0 {
		t.Errorf("EXT extra value = %d, want 0", v)
	}
	if are := extra & 0x7; are != 0b001 {
		t.Errorf("EXT extra A/R/E = %03b, want 001", are)
	}
}

// §8 scenario 3.
func TestRunDataAndStringDirectives(t *testing.T) {
	lines := []string{`LST: .data 7, -3, 2097151`, `STR: .string "ab"`}
	result := assemble.Run(lines)
	if !result.OK {
		t.Fatalf("expected OK, diagnostics: %v", result.Diagnostics)
	}
	if len(result.DataImage) != 6 {
		t.Fatalf("data image = %d words, want 6", len(result.DataImage))
	}
	if result.DataImage[2] != 2097151 {
		t.Errorf("data[2] = %d, want 2097151", result.DataImage[2])
	}
	if result.DataImage[3] != 'a' || result.DataImage[4] != 'b' || result.DataImage[5] != 0 {
		t.Errorf("string words = %v, want ['a' 'b' 0]", result.DataImage[3:6])
	}
}

// §8 scenario 4.
func TestRunDuplicateLabelRejected(t *testing.T) {
	lines := []string{"DUP: inc r1", "DUP: dec r2"}
	result := assemble.Run(lines)
	if result.OK {
		t.Fatal("expected failure for duplicate label")
	}
	if len(result.Diagnostics) == 0 {
		t.Fatal("expected at least one diagnostic")
	}
	d := result.Diagnostics[0]
	if d.Line.Num != 2 {
		t.Errorf("diagnostic line = %d, want 2", d.Line.Num)
	}
}

// §8 scenario 5.
func TestRunMacroExpansionRoundTrip(t *testing.T) {
	lines := []string{"mcro X", "  inc r1", "mcroend", "X"}
	result := assemble.Run(lines)
	if !result.OK {
		t.Fatalf("expected OK, diagnostics: %v", result.Diagnostics)
	}
	if len(result.InstructionImage) != 1 {
		t.Fatalf("instruction image = %d words, want 1 (inc has no extra word)", len(result.InstructionImage))
	}
}

// §8 scenario 6.
func TestRunExternUsedInEntryRejected(t *testing.T) {
	lines := []string{".extern E", ".entry E"}
	result := assemble.Run(lines)
	if result.OK {
		t.Fatal("expected failure for extern used in entry")
	}
}

func TestRunMemoryOverflow(t *testing.T) {
	// Each "cmp #1, #1" line takes 3 words, so this pushes IC past
	// MaxAddress with fewer lines than MaxSourceLines.
	needed := (parser.MaxAddress-parser.InstructionMemoryStart)/3 + 1
	lines := make([]string, needed)
	for i := range lines {
		lines[i] = "cmp #1, #1"
	}
	result := assemble.Run(lines)
	if result.OK {
		t.Fatal("expected memory overflow failure")
	}
	if result.ResourceExhausted {
		t.Fatal("hit the source line ceiling instead of the address-space check")
	}
	if len(result.Diagnostics) == 0 || result.Diagnostics[0].Kind != diag.KindMemoryOverflown {
		t.Fatalf("diagnostics = %v, want a memory-overflow diagnostic", result.Diagnostics)
	}
}

func TestRunResourceExhaustion(t *testing.T) {
	lines := make([]string, assemble.MaxSourceLines+1)
	for i := range lines {
		lines[i] = ""
	}
	result := assemble.Run(lines)
	if !result.ResourceExhausted {
		t.Fatal("expected ResourceExhausted for a source exceeding MaxSourceLines")
	}
	if result.OK {
		t.Fatal("a resource-exhausted run must not be OK")
	}
}

func TestRunExposesSymbolTable(t *testing.T) {
	lines := []string{".extern EXT", "MAIN: mov #3, r1", "stop", `D: .data 5`}
	result := assemble.Run(lines)
	if !result.OK {
		t.Fatalf("expected OK, diagnostics: %v", result.Diagnostics)
	}
	want := map[string]parser.SymbolContext{"EXT": parser.SymbolExternal, "MAIN": parser.SymbolCode, "D": parser.SymbolData}
	if len(result.Symbols) != len(want) {
		t.Fatalf("symbols = %+v, want %d entries", result.Symbols, len(want))
	}
	for _, sym := range result.Symbols {
		ctx, ok := want[sym.Name]
		if !ok {
			t.Errorf("unexpected symbol %q", sym.Name)
			continue
		}
		if sym.Context != ctx {
			t.Errorf("symbol %q context = %v, want %v", sym.Name, sym.Context, ctx)
		}
	}
}

func TestRunListingCoversInstructionsAndData(t *testing.T) {
	lines := []string{"MAIN: mov #3, r1", "stop", `D: .data 5`}
	result := assemble.Run(lines)
	if !result.OK {
		t.Fatalf("expected OK, diagnostics: %v", result.Diagnostics)
	}
	if len(result.Listing) != 3 {
		t.Fatalf("listing = %d lines, want 3", len(result.Listing))
	}
	if result.Listing[0].Addr != 100 || result.Listing[0].Source != "MAIN: mov #3, r1" {
		t.Errorf("listing[0] = %+v, want addr 100 for the mov line", result.Listing[0])
	}
	if result.Listing[1].Addr != 102 || result.Listing[1].Source != "stop" {
		t.Errorf("listing[1] = %+v, want addr 102 for the stop line", result.Listing[1])
	}
	if result.Listing[2].Source != `D: .data 5` {
		t.Errorf("listing[2].Source = %q, want the .data line", result.Listing[2].Source)
	}
	if result.Listing[2].Addr <= result.Listing[1].Addr {
		t.Errorf("data listing address %d should be finalized after instructions (> %d)", result.Listing[2].Addr, result.Listing[1].Addr)
	}
}
