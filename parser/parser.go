package parser

import "github.com/kallisti-dev/word24asm/diag"

// ParseLine parses a single already-macro-expanded source line (§4.4). raw
// is the line's text without its trailing newline; lineNum is 1-based.
func ParseLine(raw string, lineNum int) ParsedLine {
	info := diag.LineInfo{Num: lineNum, Text: raw}

	head := skipSpace(trimEnd(raw))
	if head == "" {
		return ParsedLine{ContentKind: ContentEmpty}
	}
	if head[0] == ';' {
		return ParsedLine{ContentKind: ContentComment}
	}

	label, rest := parseLabel(head, info)

	rest = skipSpace(rest)
	if rest == "" {
		if label.Kind != LabelNone {
			return ParsedLine{Label: label, ContentKind: ContentError, Error: diag.NewExpectedInstructionOrDirectiveAfterLabel(info)}
		}
		return ParsedLine{Label: label, ContentKind: ContentEmpty}
	}

	if rest[0] == '.' {
		directive, err := parseDirective(rest[1:], info)
		if err != nil {
			return ParsedLine{Label: label, ContentKind: ContentError, Error: err}
		}
		return ParsedLine{Label: label, ContentKind: ContentDirective, Directive: directive}
	}

	instruction, err := parseInstruction(rest, info)
	if err != nil {
		return ParsedLine{Label: label, ContentKind: ContentError, Error: err}
	}
	return ParsedLine{Label: label, ContentKind: ContentInstruction, Instruction: instruction}
}

// parseLabel recognizes an optional "name:" prefix (§4.2, §4.4) and returns
// the LabelResult plus whatever remains of the line after it. A label
// error never prevents the remainder of the line from being parsed as
// content, since the scanner only consumes input up to and including a
// ':' it actually found, on both the OK and ERROR outcomes; label and
// content errors are independent and may both be reported for one line.
func parseLabel(raw string, info diag.LineInfo) (LabelResult, string) {
	scan := scanSymbol(raw, labelEnd, info)
	switch scan.Kind {
	case NoSymbol:
		return LabelResult{Kind: LabelNone}, raw
	case SymbolScanError:
		return LabelResult{Kind: LabelError, Error: scan.Error}, raw[scan.Consumed+1:]
	default: // SymbolOK
		rest := raw[scan.Consumed+1:] // +1 skips the ':'
		if rest == "" || isSpace(rest[0]) {
			return LabelResult{Kind: LabelOK, Name: scan.Name}, rest
		}
		return LabelResult{Kind: LabelError, Error: diag.NewExpectedSpaceAfterLabel(info)}, rest
	}
}

// parseDirective parses the text after the leading '.' of a directive line
// (§4.5). rest has already had the '.' stripped.
func parseDirective(rest string, info diag.LineInfo) (*Directive, *diag.Diagnostic) {
	name, tail := splitToken(rest)

	switch name {
	case "data":
		return parseDataDirective(tail, info)
	case "string":
		return parseStringDirective(tail, info)
	case "entry":
		sym, err := parseDirectiveSymbol(tail, info, diag.NewEntryDirectiveNoSymbol)
		if err != nil {
			return nil, err
		}
		return &Directive{Kind: DirectiveEntry, Symbol: sym}, nil
	case "extern":
		sym, err := parseDirectiveSymbol(tail, info, diag.NewExternDirectiveNoSymbol)
		if err != nil {
			return nil, err
		}
		return &Directive{Kind: DirectiveExtern, Symbol: sym}, nil
	default:
		return nil, diag.NewInvalidDirective(info, "."+name)
	}
}

// splitToken returns the run of non-space characters at the start of s and
// whatever follows it, with no whitespace skipped on either side.
func splitToken(s string) (token, rest string) {
	i := 0
	for i < len(s) && !isSpace(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

func parseDataDirective(rest string, info diag.LineInfo) (*Directive, *diag.Diagnostic) {
	rest = skipSpace(rest)
	if rest == "" {
		return nil, diag.NewDataDirectiveEmpty(info)
	}

	var ints []int
	for {
		scan := scanInt21(rest)
		if scan.NotInteger {
			return nil, diag.NewDataDirectiveNotAnInteger(info)
		}
		if scan.TooBig {
			return nil, diag.NewDataDirectiveIntegerTooBig(info, scan.ReportValue, MaxInteger)
		}
		if scan.TooSmall {
			return nil, diag.NewDataDirectiveIntegerTooSmall(info, scan.ReportValue, MinInteger)
		}
		ints = append(ints, int(scan.Value))
		rest = skipSpace(rest[scan.Consumed:])

		if rest == "" {
			break
		}
		if rest[0] != ',' {
			return nil, diag.NewDataDirectiveInvalidCharacterAfterInteger(info, rest[0])
		}
		rest = skipSpace(rest[1:])
		if rest == "" {
			return nil, diag.NewDataDirectiveCommaAfterLastInteger(info)
		}
	}

	return &Directive{Kind: DirectiveData, Ints: ints}, nil
}

func parseStringDirective(rest string, info diag.LineInfo) (*Directive, *diag.Diagnostic) {
	rest = skipSpace(rest)
	if rest == "" || rest[0] != '"' {
		return nil, diag.NewStringDirectiveMissingOpenQuote(info)
	}
	body := rest[1:]
	if len(body) == 0 || body[len(body)-1] != '"' {
		return nil, diag.NewStringDirectiveMissingCloseQuote(info)
	}
	return &Directive{Kind: DirectiveString, Text: body[:len(body)-1]}, nil
}

// parseDirectiveSymbol parses the sole identifier operand of .entry/.extern.
func parseDirectiveSymbol(rest string, info diag.LineInfo, noSymbol func(diag.LineInfo) *diag.Diagnostic) (string, *diag.Diagnostic) {
	rest = skipSpace(rest)
	if rest == "" {
		return "", noSymbol(info)
	}
	scan := scanSymbol(rest, identifierEnd, info)
	if scan.Kind == SymbolScanError {
		return "", diag.NewFromSymbolParse(scan.Error)
	}
	return scan.Name, nil
}

var identifierEnd = symbolEnd{Matches: isSpace, AcceptsEOF: true}

// intScanResult is the outcome of scanInt21.
type intScanResult struct {
	Value       int64
	Consumed    int
	NotInteger  bool
	TooBig      bool
	TooSmall    bool
	ReportValue int64 // the parsed value, or 0 when the 32-bit parse itself overflowed
}

// scanInt21 parses a signed base-10 integer and range-checks it against the
// 21-bit signed range (§4.1, §4.5, §4.6). If the digit run does not even fit
// a 32-bit signed integer, the reported value in the eventual too-big/
// too-small diagnostic is 0, since no concrete value survived the parse.
func scanInt21(s string) intScanResult {
	p := parseInt32Base10(s)
	if p.NoDigits {
		return intScanResult{NotInteger: true, Consumed: p.CharsConsumed}
	}
	if p.Overflow {
		if p.IsNegative {
			return intScanResult{TooSmall: true, Consumed: p.CharsConsumed}
		}
		return intScanResult{TooBig: true, Consumed: p.CharsConsumed}
	}
	if p.Value > MaxInteger {
		return intScanResult{TooBig: true, Consumed: p.CharsConsumed, ReportValue: p.Value}
	}
	if p.Value < MinInteger {
		return intScanResult{TooSmall: true, Consumed: p.CharsConsumed, ReportValue: p.Value}
	}
	return intScanResult{Value: p.Value, Consumed: p.CharsConsumed}
}

// parseInstruction parses an instruction mnemonic and its operand list
// (§4.6). rest has already had the label and leading whitespace stripped.
func parseInstruction(rest string, info diag.LineInfo) (*Instruction, *diag.Diagnostic) {
	token, tail := splitToken(rest)
	kind, ok := InstructionKindByName(token)
	if !ok {
		return nil, diag.NewInvalidInstruction(info, token)
	}
	spec := kind.Spec()
	tail = skipSpace(tail)

	switch spec.Operands {
	case 0:
		if tail != "" {
			return nil, diag.NewTooManyOperands(info, 0)
		}
		return &Instruction{Kind: kind}, nil

	case 1:
		if tail == "" {
			return nil, diag.NewTooFewOperands(info, 1)
		}
		if tail[0] == ',' {
			return nil, diag.NewInstructionFirstOperandEmpty(info)
		}
		op, consumed, err := parseOperand(tail, info)
		if err != nil {
			return nil, err
		}
		leftover := skipSpace(tail[consumed:])
		if leftover != "" {
			if leftover[0] == ',' {
				return nil, diag.NewTooManyOperands(info, 1)
			}
			return nil, diag.NewInvalidCharacterAfterOperand(info, leftover[0])
		}
		if !kindAccepted(op.Kind, spec.DstAccept) {
			return nil, diag.NewUnexpectedOperandType(info, 1, op.Kind.String(), acceptableNames(spec.DstAccept))
		}
		return &Instruction{Kind: kind, Operand2: op}, nil

	default: // 2
		if tail == "" {
			return nil, diag.NewTooFewOperands(info, 2)
		}
		if tail[0] == ',' {
			return nil, diag.NewInstructionFirstOperandEmpty(info)
		}
		op1, consumed1, err := parseOperand(tail, info)
		if err != nil {
			return nil, err
		}
		rest2 := skipSpace(tail[consumed1:])
		if rest2 == "" {
			return nil, diag.NewTooFewOperands(info, 2)
		}
		if rest2[0] != ',' {
			return nil, diag.NewInvalidCharacterAfterOperand(info, rest2[0])
		}
		rest2 = skipSpace(rest2[1:])
		if rest2 == "" {
			return nil, diag.NewTooFewOperands(info, 2)
		}

		op2, consumed2, err := parseOperand(rest2, info)
		if err != nil {
			return nil, err
		}
		leftover := skipSpace(rest2[consumed2:])
		if leftover != "" {
			if leftover[0] == ',' {
				return nil, diag.NewCommaAfterFinalOperand(info)
			}
			return nil, diag.NewInvalidCharacterAfterOperand(info, leftover[0])
		}

		// Report a source-type mismatch before a destination-type mismatch
		// when both are wrong (§4.6 point 4, §9 Open Question decision).
		if !kindAccepted(op1.Kind, spec.SrcAccept) {
			return nil, diag.NewUnexpectedOperandType(info, 1, op1.Kind.String(), acceptableNames(spec.SrcAccept))
		}
		if !kindAccepted(op2.Kind, spec.DstAccept) {
			return nil, diag.NewUnexpectedOperandType(info, 2, op2.Kind.String(), acceptableNames(spec.DstAccept))
		}
		return &Instruction{Kind: kind, Operand1: op1, Operand2: op2}, nil
	}
}

// parseOperand parses a single operand at the start of s and reports how
// many bytes of s it consumed. The caller is responsible for checking what,
// if anything, follows.
func parseOperand(s string, info diag.LineInfo) (*Operand, int, *diag.Diagnostic) {
	switch {
	case s[0] == '#':
		scan := scanInt21(s[1:])
		if scan.NotInteger {
			return nil, 0, diag.NewOperandNoIntegerAfterHash(info)
		}
		if scan.TooBig {
			return nil, 0, diag.NewImmediateTooBig(info, scan.ReportValue, MaxInteger)
		}
		if scan.TooSmall {
			return nil, 0, diag.NewImmediateTooSmall(info, scan.ReportValue, MinInteger)
		}
		return &Operand{Kind: Immediate, ImmediateValue: int(scan.Value)}, 1 + scan.Consumed, nil

	case s[0] == '&':
		rest := s[1:]
		if rest == "" || operandEnd.Matches(rest[0]) {
			return nil, 0, diag.NewFromSymbolParse(diag.NewSymbolEmpty(info))
		}
		scan := scanSymbol(rest, operandEnd, info)
		if scan.Kind == SymbolScanError {
			return nil, 0, diag.NewFromSymbolParse(scan.Error)
		}
		return &Operand{Kind: Address, Name: scan.Name}, 1 + scan.Consumed, nil

	default:
		i := 0
		for i < len(s) && isAlphaNumeric(s[i]) {
			i++
		}
		token := s[:i]
		if IsRegisterName(token) {
			idx, _ := RegisterIndex(token)
			return &Operand{Kind: Register, RegisterIndex: idx}, len(token), nil
		}
		scan := scanSymbol(s, operandEnd, info)
		if scan.Kind == SymbolScanError {
			return nil, 0, diag.NewFromSymbolParse(scan.Error)
		}
		return &Operand{Kind: Symbol, Name: scan.Name}, scan.Consumed, nil
	}
}
