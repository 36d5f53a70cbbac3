package diag

// Top-level diagnostics that are not routed through a sub-taxonomy.

func NewSymbolAlreadyDefined(line LineInfo, name string, firstDefinedLine int) *Diagnostic {
	return newDiag(KindSymbolAlreadyDefined, line, "symbol %q has already been defined in line %d", name, firstDefinedLine)
}

func NewMemoryOverflown(line LineInfo, expectedMaxAddress, maxAddress int) *Diagnostic {
	return newDiag(KindMemoryOverflown, line,
		"Memory has overflown; max address is %d but the file fills up to address %d. The line shown here is the first line in which memory has overflown",
		expectedMaxAddress, maxAddress)
}

func NewSymbolNotDefined(line LineInfo, name string) *Diagnostic {
	return newDiag(KindSymbolNotDefined, line, "symbol %q is not defined anywhere in this file.", name)
}

func NewExternalSymbolUsedInEntry(line LineInfo, name string, firstDefinedLine int) *Diagnostic {
	return newDiag(KindExternalSymbolUsedInEntry, line,
		"symbol %q was defined as external in line %d; external symbols may not be used in a .entry directive",
		name, firstDefinedLine)
}
