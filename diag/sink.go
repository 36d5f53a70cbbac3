package diag

import (
	"fmt"
	"io"
	"strings"
)

// ANSI color codes, matching the original assembler's hand-rolled escape
// sequences exactly (no third-party color library is used anywhere in the
// retrieval pack, so this follows the pack's own practice).
const (
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
	ansiNormal = "\x1b[0m"
)

// Sink accumulates diagnostics in source order across one file's pipeline
// run, mirroring parser.ErrorList in spirit (AddError/HasErrors) but
// specialized to this assembler's own Diagnostic type instead of a generic
// parser error.
type Sink struct {
	diags []*Diagnostic
}

// NewSink returns an empty diagnostic sink.
func NewSink() *Sink {
	return &Sink{}
}

// Add appends a diagnostic. Nil is ignored so call sites can pass the result
// of a constructor that returns nil on the happy path without an extra check.
func (s *Sink) Add(d *Diagnostic) {
	if d == nil {
		return
	}
	s.diags = append(s.diags, d)
}

// HasErrors reports whether any diagnostic has been recorded.
func (s *Sink) HasErrors() bool {
	return len(s.diags) > 0
}

// All returns the recorded diagnostics in source order. The returned slice
// must not be mutated by the caller.
func (s *Sink) All() []*Diagnostic {
	return s.diags
}

// Render writes every diagnostic to w, each prefixed by filename and
// rendered with the original assembler's three-line template:
//
//	<filename>: error in line N:
//	line: <raw source line>
//	info: <message>
//
// When color is false, no ANSI escapes are emitted.
func (s *Sink) Render(w io.Writer, filename string, color bool) {
	for _, d := range s.diags {
		renderOne(w, filename, d, color)
	}
}

func renderOne(w io.Writer, filename string, d *Diagnostic, color bool) {
	var b strings.Builder
	if color {
		fmt.Fprintf(&b, "%s%s:%s ", ansiCyan, filename, ansiNormal)
		fmt.Fprintf(&b, "%serror in line %s%d:\n", ansiRed, ansiYellow, d.Line.Num)
		fmt.Fprintf(&b, "%sline: %s%s\n", ansiCyan, ansiYellow, trimEndSpace(d.Line.Text))
		fmt.Fprintf(&b, "%sinfo:%s %s", ansiCyan, ansiRed, d.message)
		fmt.Fprint(&b, ansiNormal)
	} else {
		fmt.Fprintf(&b, "%s: error in line %d:\n", filename, d.Line.Num)
		fmt.Fprintf(&b, "line: %s\n", trimEndSpace(d.Line.Text))
		fmt.Fprintf(&b, "info: %s", d.message)
	}
	fmt.Fprint(&b, "\n\n")
	io.WriteString(w, b.String())
}

func trimEndSpace(s string) string {
	return strings.TrimRight(s, " \t\r\n")
}
