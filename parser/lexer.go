package parser

import "strconv"

// Lexical helpers shared by the symbol parser, directive sub-grammar, and
// instruction sub-grammar. These operate on raw line text rather than a
// token stream: the grammar is small enough that a line is its own parsing
// unit (§4.4), so there is no need for a separate tokenizer pass.

// skipSpace advances past ASCII space and tab characters and returns the
// remainder of s.
func skipSpace(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// trimEnd removes trailing whitespace (space, tab, CR, LF) from s.
func trimEnd(s string) string {
	i := len(s)
	for i > 0 && isTrimmable(s[i-1]) {
		i--
	}
	return s[:i]
}

func isTrimmable(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// int32ParseResult is the outcome of parseInt32Base10.
type int32ParseResult struct {
	Value            int64
	CharsConsumed    int
	IsNegative       bool
	Overflow         bool
	NoDigits         bool // zero digits were seen; distinct from overflow
}

// parseInt32Base10 reads an optional leading '-' followed by one or more
// base-10 digits from the start of s. It reports how many characters were
// consumed regardless of overflow, since the caller still needs to advance
// past the full digit run to continue parsing (§4.1).
func parseInt32Base10(s string) int32ParseResult {
	var res int32ParseResult
	i := 0
	if i < len(s) && s[i] == '-' {
		res.IsNegative = true
		i++
	}
	digitsStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == digitsStart {
		res.NoDigits = true
		res.CharsConsumed = i
		return res
	}
	digits := s[digitsStart:i]
	res.CharsConsumed = i

	raw := digits
	if res.IsNegative {
		raw = "-" + digits
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v > int64(int32(^uint32(0)>>1)) || v < int64(-int32(^uint32(0)>>1)-1) {
		res.Overflow = true
		return res
	}
	res.Value = v
	return res
}
