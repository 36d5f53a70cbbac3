package main

import (
	"strings"
	"testing"

	"github.com/kallisti-dev/word24asm/assemble"
	"github.com/kallisti-dev/word24asm/encoder"
	"github.com/kallisti-dev/word24asm/parser"
)

func sampleResult() assemble.Result {
	return assemble.Result{
		InstructionImage: []encoder.Word{0x000004, 0x000018},
		Symbols: []assemble.SymbolInfo{
			{Name: "MAIN", Addr: 100, Context: parser.SymbolCode, Line: 1},
			{Name: "EXT", Addr: 0, Context: parser.SymbolExternal, Line: 0},
		},
		Entries:   []assemble.EntryRecord{{Name: "MAIN", Addr: 100}},
		Externals: []assemble.ExternalRecord{{Name: "EXT", Addr: 101}},
		Listing: []assemble.ListingLine{
			{Addr: 100, Words: []encoder.Word{0x000004}, Source: "MAIN: mov #3, r1"},
		},
		OK: true,
	}
}

func TestNewBrowserPopulatesSymbolTable(t *testing.T) {
	b := NewBrowser("prog", sampleResult())

	if got := b.SymbolTable.GetCell(0, 0).Text; got != "NAME" {
		t.Errorf("header[0][0] = %q, want NAME", got)
	}
	if got := b.SymbolTable.GetCell(1, 0).Text; got != "MAIN" {
		t.Errorf("row 1 name = %q, want MAIN", got)
	}
	if got := b.SymbolTable.GetCell(1, 2).Text; got != "CODE" {
		t.Errorf("row 1 context = %q, want CODE", got)
	}
	if got := b.SymbolTable.GetCell(2, 2).Text; got != "EXTERNAL" {
		t.Errorf("row 2 context = %q, want EXTERNAL", got)
	}
}

func TestNewBrowserPopulatesListing(t *testing.T) {
	b := NewBrowser("prog", sampleResult())

	if got := b.ListingView.GetCell(1, 0).Text; got != "0000100" {
		t.Errorf("listing row address = %q, want 0000100", got)
	}
	if got := b.ListingView.GetCell(1, 2).Text; got != "MAIN: mov #3, r1" {
		t.Errorf("listing row source = %q", got)
	}
}

func TestNewBrowserPopulatesEntryExternSummary(t *testing.T) {
	b := NewBrowser("prog", sampleResult())
	text := b.EntExtView.GetText(true)

	if !strings.Contains(text, "MAIN") || !strings.Contains(text, "0000100") {
		t.Errorf("entry/extern text missing MAIN entry: %q", text)
	}
	if !strings.Contains(text, "EXT") || !strings.Contains(text, "0000101") {
		t.Errorf("entry/extern text missing EXT external: %q", text)
	}
}

func TestNewBrowserStatusSummarizesCounts(t *testing.T) {
	b := NewBrowser("prog", sampleResult())
	text := b.StatusView.GetText(true)

	if !strings.Contains(text, "prog") {
		t.Errorf("status text missing file name: %q", text)
	}
	if !strings.Contains(text, "instructions=2") {
		t.Errorf("status text missing instruction count: %q", text)
	}
}

func TestCycleFocusTogglesBetweenListingAndSymbols(t *testing.T) {
	b := NewBrowser("prog", sampleResult())
	b.App.SetFocus(b.ListingView)

	b.cycleFocus()
	if b.App.GetFocus() != b.SymbolTable {
		t.Error("expected focus to move to SymbolTable")
	}

	b.cycleFocus()
	if b.App.GetFocus() != b.ListingView {
		t.Error("expected focus to move back to ListingView")
	}
}
