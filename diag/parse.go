package diag

import "strings"

// Line/directive/instruction parse diagnostics (§4.4-4.6), wording grounded
// in parse_error_to_string.

func NewExpectedSpaceAfterLabel(line LineInfo) *Diagnostic {
	return newDiag(KindParse, line, "expected a space after label")
}

func NewExpectedInstructionOrDirectiveAfterLabel(line LineInfo) *Diagnostic {
	return newDiag(KindParse, line, "expected an instruction or a directive after label")
}

func NewInvalidDirective(line LineInfo, got string) *Diagnostic {
	return newDiag(KindParse, line, "invalid directive %q, expected one of \".data\", \".string\", \".entry\", \".extern\"", got)
}

func NewDataDirectiveEmpty(line LineInfo) *Diagnostic {
	return newDiag(KindParse, line, "expected a list of integers (e.g. 1, 2, 3) after .data directive")
}

func NewDataDirectiveNotAnInteger(line LineInfo) *Diagnostic {
	return newDiag(KindParse, line, "expected an 21 bit signed integer")
}

func NewDataDirectiveInvalidCharacterAfterInteger(line LineInfo, ch byte) *Diagnostic {
	return newDiag(KindParse, line, "invalid character '%c' after integer", ch)
}

func NewDataDirectiveCommaAfterLastInteger(line LineInfo) *Diagnostic {
	return newDiag(KindParse, line, "comma is not allowed after the final integer")
}

func NewDataDirectiveIntegerTooBig(line LineInfo, overflowValue int64, max int64) *Diagnostic {
	if overflowValue == 0 {
		return newDiag(KindParse, line, "one of the given integers is too big for a 21 bit signed integer (max is %d)", max)
	}
	return newDiag(KindParse, line, "integer %d is too big for a 21 bit signed integer (max is %d)", overflowValue, max)
}

func NewDataDirectiveIntegerTooSmall(line LineInfo, overflowValue int64, min int64) *Diagnostic {
	if overflowValue == 0 {
		return newDiag(KindParse, line, "one of the given integers is too small for a 21 bit signed integer (min is %d)", min)
	}
	return newDiag(KindParse, line, "integer %d is too small for a 21 bit signed integer (min is %d)", overflowValue, min)
}

func NewStringDirectiveMissingOpenQuote(line LineInfo) *Diagnostic {
	return newDiag(KindParse, line, "string should start with a \"")
}

func NewStringDirectiveMissingCloseQuote(line LineInfo) *Diagnostic {
	return newDiag(KindParse, line, "string should end with a \"")
}

func NewInvalidInstruction(line LineInfo, got string) *Diagnostic {
	return newDiag(KindParse, line, "invalid instruction %q", got)
}

func NewOperandNoIntegerAfterHash(line LineInfo) *Diagnostic {
	return newDiag(KindParse, line, "expected an integer after #")
}

func NewImmediateTooBig(line LineInfo, overflowValue int64, max int64) *Diagnostic {
	if overflowValue == 0 {
		return newDiag(KindParse, line, "immediate integer is too big, max is %d", max)
	}
	return newDiag(KindParse, line, "immediate integer is too big: got %d, max is %d", overflowValue, max)
}

func NewImmediateTooSmall(line LineInfo, overflowValue int64, min int64) *Diagnostic {
	if overflowValue == 0 {
		return newDiag(KindParse, line, "immediate integer is too small, min is %d", min)
	}
	return newDiag(KindParse, line, "immediate integer is too small: got %d, min is %d", overflowValue, min)
}

func NewInvalidCharacterAfterOperand(line LineInfo, ch byte) *Diagnostic {
	return newDiag(KindParse, line, "invalid character '%c' after operand", ch)
}

func NewTooManyOperands(line LineInfo, expected int) *Diagnostic {
	return newDiag(KindParse, line, "instruction got too many operands; expected %d operands", expected)
}

func NewTooFewOperands(line LineInfo, expected int) *Diagnostic {
	return newDiag(KindParse, line, "instruction got too few operands; expected %d operands", expected)
}

func NewCommaAfterFinalOperand(line LineInfo) *Diagnostic {
	return newDiag(KindParse, line, "cannot have a ',' after the final operand")
}

// NewUnexpectedOperandType reports the Open Question decision: the actual
// offending operand index and its own acceptable-type set, never the first
// operand's regardless of which one is wrong.
func NewUnexpectedOperandType(line LineInfo, opIndex int, gotType string, acceptable []string) *Diagnostic {
	return newDiag(KindParse, line, "operand %d is of unexpected type for this instruction; its type is %s, expected one of: %s",
		opIndex, gotType, strings.Join(acceptable, ", "))
}

func NewEntryDirectiveNoSymbol(line LineInfo) *Diagnostic {
	return newDiag(KindParse, line, "expected a symbol after .entry directive")
}

func NewExternDirectiveNoSymbol(line LineInfo) *Diagnostic {
	return newDiag(KindParse, line, "expected a symbol after .extern directive")
}

func NewInstructionFirstOperandEmpty(line LineInfo) *Diagnostic {
	return newDiag(KindParse, line, "first operand is empty")
}

// NewFromSymbolParse lifts a symbol-parse failure encountered while parsing
// an operand, .entry target, or .extern target into a top-level PARSE
// diagnostic carrying the same message, mirroring how the original routes
// PARSE_ERROR_OPERAND_INVALID_SYMBOL/_ENTRY_.../_EXTERN_... straight into
// parse_symbol_error_to_string.
func NewFromSymbolParse(symbolDiag *Diagnostic) *Diagnostic {
	return newDiag(KindParse, symbolDiag.Line, "%s", symbolDiag.message)
}
