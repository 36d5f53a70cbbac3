package parser

import "github.com/kallisti-dev/word24asm/diag"

// SymbolScanResultKind tags the outcome of scanSymbol (§4.3).
type SymbolScanResultKind int

const (
	NoSymbol SymbolScanResultKind = iota
	SymbolOK
	SymbolScanError
)

// SymbolScanResult is the result of scanSymbol.
type SymbolScanResult struct {
	Kind     SymbolScanResultKind
	Name     string           // valid when Kind == SymbolOK
	Consumed int              // bytes of s consumed scanning the candidate (not including the terminator)
	Error    *diag.Diagnostic // valid when Kind == SymbolScanError
}

// symbolEnd identifies the terminator for a scanning context: Matches tests
// an in-string character, AcceptsEOF says whether running off the end of the
// input also counts as reaching the terminator (true for operand contexts,
// where a symbol may simply end the line; false for a label, which must be
// followed by an explicit ':').
type symbolEnd struct {
	Matches    func(c byte) bool
	AcceptsEOF bool
}

var labelEnd = symbolEnd{Matches: func(c byte) bool { return c == labelEndChar }, AcceptsEOF: false}
var operandEnd = symbolEnd{Matches: func(c byte) bool { return c == ',' || c == ' ' || c == '\t' }, AcceptsEOF: true}

// scanSymbol extracts a candidate identifier from the start of s, the way
// the original's parse_symbol does: it scans every character up to end of
// input (recording the first start-character problem and the most recent
// interior invalid-character problem it sees) and only decides whether a
// symbol was present at all once it knows whether the terminator was
// actually reached. If the terminator never appears, the result is NoSymbol
// and any errors noticed along the way are discarded — the candidate simply
// wasn't a label/symbol attempt at all.
func scanSymbol(s string, end symbolEnd, line diag.LineInfo) SymbolScanResult {
	if len(s) > 0 && end.Matches(s[0]) {
		return SymbolScanResult{Kind: SymbolScanError, Error: diag.NewSymbolEmpty(line)}
	}
	if len(s) == 0 && end.AcceptsEOF {
		return SymbolScanResult{Kind: SymbolScanError, Error: diag.NewSymbolEmpty(line)}
	}

	isSymbol := end.AcceptsEOF
	hasStartError := len(s) > 0 && !isAlpha(s[0])
	var badStartChar byte
	if hasStartError {
		badStartChar = s[0]
	}

	var invalidChar byte
	var invalidPos int
	hasInvalid := false

	pos := 1
	for pos < len(s) {
		c := s[pos]
		if end.Matches(c) {
			isSymbol = true
			break
		}
		if !isAlphaNumeric(c) {
			invalidChar, invalidPos, hasInvalid = c, pos, true
		}
		pos++
	}
	consumed := pos
	if consumed > len(s) {
		consumed = len(s)
	}

	if !isSymbol {
		return SymbolScanResult{Kind: NoSymbol, Consumed: consumed}
	}

	candidate := s[:consumed]

	if len(candidate) > MaxIdentifierLength {
		return SymbolScanResult{Kind: SymbolScanError, Consumed: consumed,
			Error: diag.NewSymbolTooLong(line, MaxIdentifierLength, len(candidate))}
	}
	if hasInvalid {
		return SymbolScanResult{Kind: SymbolScanError, Consumed: consumed,
			Error: diag.NewSymbolInvalidCharacter(line, candidate, invalidChar, invalidPos)}
	}
	if hasStartError {
		return SymbolScanResult{Kind: SymbolScanError, Consumed: consumed,
			Error: diag.NewSymbolStartsWithNonAlpha(line, candidate, badStartChar)}
	}
	if IsDirectiveName(candidate) {
		return SymbolScanResult{Kind: SymbolScanError, Consumed: consumed, Error: diag.NewSymbolIsDirective(line, candidate)}
	}
	if IsInstructionName(candidate) {
		return SymbolScanResult{Kind: SymbolScanError, Consumed: consumed, Error: diag.NewSymbolIsInstruction(line, candidate)}
	}
	if IsRegisterName(candidate) {
		return SymbolScanResult{Kind: SymbolScanError, Consumed: consumed, Error: diag.NewSymbolIsRegister(line, candidate, RegisterCount-1)}
	}

	return SymbolScanResult{Kind: SymbolOK, Name: candidate, Consumed: consumed}
}
