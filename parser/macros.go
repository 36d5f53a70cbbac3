package parser

import "github.com/kallisti-dev/word24asm/diag"

// macroState is the expander's per-line state machine (§4.7).
type macroState int

const (
	macroNormal macroState = iota
	macroInBody
)

// Macro is a single macro definition: a name and the raw lines of its body,
// in source order.
type Macro struct {
	Name string
	Body []string
	Line int
}

// MacroTable holds macro definitions in a single namespace distinct from
// labels (§4.7). Grounded on parser.MacroTable in the teacher, but
// parameterless (this language's macros take no arguments) and rejecting
// redefinition rather than silently allowing multiple entries with the same
// name (§9 Open Question decision).
type MacroTable struct {
	byName map[string]*Macro
}

// NewMacroTable returns an empty macro table.
func NewMacroTable() *MacroTable {
	return &MacroTable{byName: make(map[string]*Macro)}
}

// Define registers a new macro. It reports false, and the prior definition,
// if name is already defined.
func (t *MacroTable) Define(name string, line int) (ok bool, existing *Macro) {
	if prior, found := t.byName[name]; found {
		return false, prior
	}
	m := &Macro{Name: name, Line: line}
	t.byName[name] = m
	return true, nil
}

// Lookup returns the macro named name, or nil if undefined.
func (t *MacroTable) Lookup(name string) *Macro {
	return t.byName[name]
}

// AppendBody appends a raw source line to the named macro's body. The macro
// must already be defined (via Define).
func (t *MacroTable) AppendBody(name, line string) {
	if m, ok := t.byName[name]; ok {
		m.Body = append(m.Body, line)
	}
}

// ExpandMacros runs the two-pass macro expansion described in §4.7 over
// lines (already split, without trailing newlines) and returns the expanded
// line sequence plus the populated macro table. Diagnostics are appended to
// sink in source order; a LINE_TOO_LONG diagnostic drops that one line from
// the output (it is "not copied through") but expansion continues.
func ExpandMacros(lines []string, sink *diag.Sink) (expanded []string, table *MacroTable) {
	table = NewMacroTable()
	state := macroNormal
	var currentMacro string

	for i, raw := range lines {
		lineNum := i + 1
		info := diag.LineInfo{Num: lineNum, Text: raw}

		if len(raw) > MaxLineLength {
			sink.Add(diag.NewMacroLineTooLong(info, MaxLineLength, len(raw)))
			continue
		}

		trimmed := trimEnd(skipSpace(raw))

		switch state {
		case macroInBody:
			if trimmed == "mcroend" {
				state = macroNormal
				currentMacro = ""
				continue
			}
			table.AppendBody(currentMacro, raw)

		case macroNormal:
			if name, isDecl := parseMacroDeclaration(trimmed); isDecl {
				if name == "" {
					sink.Add(diag.NewMacroExpectedName(info))
					continue
				}
				if err := validateMacroName(name, info); err != nil {
					sink.Add(err)
					// Recovery still advances into the body so the
					// mcroend is consumed, even though no macro was
					// stored under an invalid name.
					state = macroInBody
					currentMacro = ""
					continue
				}
				ok, existing := table.Define(name, lineNum)
				if !ok {
					sink.Add(diag.NewMacroRedefined(info, name, existing.Line))
					// The rejected body is consumed but not stored, so the
					// first definition keeps its own body unchanged.
					state = macroInBody
					currentMacro = ""
					continue
				}
				state = macroInBody
				currentMacro = name
				continue
			}

			if m := table.Lookup(trimmed); m != nil {
				expanded = append(expanded, m.Body...)
				continue
			}

			expanded = append(expanded, raw)
		}
	}

	checkMacroLabelCollisions(lines, table, sink)
	return expanded, table
}

// parseMacroDeclaration recognizes a trimmed line of the form "mcro <name>"
// and returns the name token (possibly empty) and true, or ("", false) if
// the line is not a macro declaration at all.
func parseMacroDeclaration(trimmed string) (name string, isDecl bool) {
	const prefix = "mcro"
	if trimmed != prefix && !(len(trimmed) > len(prefix) && trimmed[:len(prefix)] == prefix && isSpace(trimmed[len(prefix)])) {
		return "", false
	}
	rest := skipSpace(trimmed[len(prefix):])
	return rest, true
}

// validateMacroName checks the rules in §4.7: not empty (checked by the
// caller), starts with alpha or '_', only alphanumerics or '_' thereafter,
// length <= MaxIdentifierLength, and not a reserved instruction, directive,
// or register name.
func validateMacroName(name string, line diag.LineInfo) *diag.Diagnostic {
	first := name[0]
	if !isAlpha(first) && first != '_' {
		return diag.NewMacroStartsWithInvalidChar(line, first)
	}
	for pos := 1; pos < len(name); pos++ {
		c := name[pos]
		if !isAlphaNumeric(c) && c != '_' {
			return diag.NewMacroInvalidCharacter(line, c, pos)
		}
	}
	if len(name) > MaxIdentifierLength {
		return diag.NewMacroNameTooLong(line, MaxIdentifierLength, len(name))
	}
	if IsInstructionName(name) {
		return diag.NewMacroNameIsInstruction(line)
	}
	if IsDirectiveName(name) {
		return diag.NewMacroNameIsDirective(line)
	}
	if IsRegisterName(name) {
		return diag.NewMacroNameIsRegister(line, RegisterCount)
	}
	return nil
}

// checkMacroLabelCollisions performs the §4.7 second pass: for every line
// with a label (text before ':'), if that label matches a macro name, emit
// MACRO_DEFINED_AS_LABEL.
func checkMacroLabelCollisions(lines []string, table *MacroTable, sink *diag.Sink) {
	for i, raw := range lines {
		colon := -1
		for pos := 0; pos < len(raw); pos++ {
			if raw[pos] == labelEndChar {
				colon = pos
				break
			}
			if !isAlphaNumeric(raw[pos]) {
				break
			}
		}
		if colon <= 0 {
			continue
		}
		label := raw[:colon]
		if table.Lookup(label) != nil {
			sink.Add(diag.NewMacroDefinedAsLabel(diag.LineInfo{Num: i + 1, Text: raw}, label))
		}
	}
}
