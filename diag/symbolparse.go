package diag

// Symbol-parse diagnostics (§4.3), wording grounded in
// parse_symbol_error_to_string.

func NewSymbolInvalidCharacter(line LineInfo, symbol string, ch byte, pos int) *Diagnostic {
	return newDiag(KindSymbolParse, line,
		"symbol %q has invalid character '%c' at position %d. Symbols may only contain numeric and alphabethic characters",
		symbol, ch, pos)
}

func NewSymbolStartsWithNonAlpha(line LineInfo, symbol string, ch byte) *Diagnostic {
	return newDiag(KindSymbolParse, line, "symbol %q starts with non-alphabethic character '%c'", symbol, ch)
}

func NewSymbolTooLong(line LineInfo, maxLen, gotLen int) *Diagnostic {
	return newDiag(KindSymbolParse, line, "symbol is too big, expected %d characters but got %d", maxLen, gotLen)
}

func NewSymbolEmpty(line LineInfo) *Diagnostic {
	return newDiag(KindSymbolParse, line, "expected a symbol")
}

func NewSymbolIsDirective(line LineInfo, symbol string) *Diagnostic {
	return newDiag(KindSymbolParse, line, "symbol %q has the same name as a directive", symbol)
}

func NewSymbolIsInstruction(line LineInfo, symbol string) *Diagnostic {
	return newDiag(KindSymbolParse, line, "symbol %q has the same name as an instruction", symbol)
}

func NewSymbolIsRegister(line LineInfo, symbol string, maxRegister int) *Diagnostic {
	return newDiag(KindSymbolParse, line,
		"symbol %q has the same name as a register. Note: symbols r0,r1,...,r%d are reserved for registers",
		symbol, maxRegister)
}
