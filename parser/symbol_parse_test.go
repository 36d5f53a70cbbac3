package parser

import (
	"testing"

	"github.com/kallisti-dev/word24asm/diag"
)

func line(text string) diag.LineInfo {
	return diag.LineInfo{Num: 1, Text: text}
}

func TestScanSymbolLabel(t *testing.T) {
	res := scanSymbol("LOOP: mov r1,r2", labelEnd, line("LOOP: mov r1,r2"))
	if res.Kind != SymbolOK || res.Name != "LOOP" || res.Consumed != 4 {
		t.Fatalf("got %+v", res)
	}
}

func TestScanSymbolNoLabel(t *testing.T) {
	res := scanSymbol("mov r1,r2", labelEnd, line("mov r1,r2"))
	if res.Kind != NoSymbol {
		t.Fatalf("got %+v, want NoSymbol", res)
	}
}

func TestScanSymbolOperandTerminatedByComma(t *testing.T) {
	res := scanSymbol("FOO,r1", operandEnd, line("FOO,r1"))
	if res.Kind != SymbolOK || res.Name != "FOO" || res.Consumed != 3 {
		t.Fatalf("got %+v", res)
	}
}

func TestScanSymbolOperandEndOfString(t *testing.T) {
	res := scanSymbol("FOO", operandEnd, line("FOO"))
	if res.Kind != SymbolOK || res.Name != "FOO" {
		t.Fatalf("got %+v", res)
	}
}

func TestScanSymbolTooLong(t *testing.T) {
	name := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" // well over 31 chars
	res := scanSymbol(name, operandEnd, line(name))
	if res.Kind != SymbolScanError {
		t.Fatalf("got %+v, want SymbolScanError", res)
	}
}

func TestScanSymbolStartsWithDigit(t *testing.T) {
	res := scanSymbol("1ABC", operandEnd, line("1ABC"))
	if res.Kind != SymbolScanError {
		t.Fatalf("got %+v, want SymbolScanError", res)
	}
}

func TestScanSymbolReservedRegister(t *testing.T) {
	res := scanSymbol("r3", operandEnd, line("r3"))
	if res.Kind != SymbolScanError {
		t.Fatalf("got %+v, want SymbolScanError (register name)", res)
	}
}

func TestScanSymbolInvalidCharacterDoesNotAbortScanForTerminatorSearch(t *testing.T) {
	// "FO$O," contains an invalid character but a terminator is eventually
	// found, so this is a real (failed) symbol attempt, not NO_SYMBOL.
	res := scanSymbol("FO$O,rest", operandEnd, line("FO$O,rest"))
	if res.Kind != SymbolScanError {
		t.Fatalf("got %+v, want SymbolScanError", res)
	}
}

func TestScanSymbolNoTerminatorDiscardsErrors(t *testing.T) {
	// No ':' anywhere, so this never becomes a label attempt at all even
	// though it contains characters that would be invalid in a symbol.
	res := scanSymbol("1 + 1 = 2", labelEnd, line("1 + 1 = 2"))
	if res.Kind != NoSymbol {
		t.Fatalf("got %+v, want NoSymbol", res)
	}
}

func TestScanSymbolEmptyLabel(t *testing.T) {
	res := scanSymbol(":", labelEnd, line(":"))
	if res.Kind != SymbolScanError {
		t.Fatalf("got %+v, want SymbolScanError (empty)", res)
	}
}
