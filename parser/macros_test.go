package parser_test

import (
	"strings"
	"testing"

	"github.com/kallisti-dev/word24asm/diag"
	"github.com/kallisti-dev/word24asm/parser"
)

func TestExpandMacrosBasic(t *testing.T) {
	src := []string{
		"mcro m1",
		"add r1,r2",
		"mcroend",
		"mov r0,r1",
		"m1",
		"stop",
	}
	sink := diag.NewSink()
	expanded, table := parser.ExpandMacros(src, sink)
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.All())
	}
	if table.Lookup("m1") == nil {
		t.Fatalf("expected m1 to be defined")
	}
	want := []string{"mov r0,r1", "add r1,r2", "stop"}
	if strings.Join(expanded, "|") != strings.Join(want, "|") {
		t.Fatalf("got %v, want %v", expanded, want)
	}
}

func TestExpandMacrosRejectsRedefinition(t *testing.T) {
	src := []string{
		"mcro m1",
		"add r1,r2",
		"mcroend",
		"mcro m1",
		"sub r1,r2",
		"mcroend",
	}
	sink := diag.NewSink()
	parser.ExpandMacros(src, sink)
	if !sink.HasErrors() {
		t.Fatalf("expected a redefinition error")
	}
}

func TestExpandMacrosRejectsReservedName(t *testing.T) {
	src := []string{"mcro mov", "stop", "mcroend"}
	sink := diag.NewSink()
	parser.ExpandMacros(src, sink)
	if !sink.HasErrors() {
		t.Fatalf("expected a reserved-name error")
	}
}

func TestExpandMacrosDetectsLabelCollision(t *testing.T) {
	src := []string{
		"mcro m1",
		"add r1,r2",
		"mcroend",
		"m1: mov r0,r1",
	}
	sink := diag.NewSink()
	parser.ExpandMacros(src, sink)
	if !sink.HasErrors() {
		t.Fatalf("expected a macro-defined-as-label error")
	}
}

func TestExpandMacrosLineTooLongIsDropped(t *testing.T) {
	long := strings.Repeat("a", parser.MaxLineLength+1)
	sink := diag.NewSink()
	expanded, _ := parser.ExpandMacros([]string{long, "stop"}, sink)
	if !sink.HasErrors() {
		t.Fatalf("expected a line-too-long error")
	}
	if len(expanded) != 1 || expanded[0] != "stop" {
		t.Fatalf("expected the long line to be dropped, got %v", expanded)
	}
}
