package parser

// Constants fixed by the target machine and the source language grammar.
const (
	// InstructionMemoryStart is the address instructions begin at; data
	// follows the instruction image.
	InstructionMemoryStart = 100

	// MaxAddress is the highest addressable word, 2^21 - 1.
	MaxAddress = (1 << 21) - 1

	// RegisterCount is the number of general-purpose registers, r0..r7.
	RegisterCount = 8

	// MaxIdentifierLength is the longest a symbol or macro name may be.
	MaxIdentifierLength = 31

	// MaxLineLength is the longest a source line may be, excluding the
	// trailing newline.
	MaxLineLength = 80

	// MaxInteger and MinInteger bound the 21-bit signed integer range used
	// for .data operands and immediate operands.
	MaxInteger = (1 << 21) - 1
	MinInteger = -(1 << 21)

	// WordBits is the machine word width.
	WordBits = 24

	// labelEndChar terminates a label token.
	labelEndChar = ':'
)

var instructionNames = map[string]bool{
	"mov": true, "cmp": true, "add": true, "sub": true,
	"lea": true, "clr": true, "not": true, "inc": true,
	"dec": true, "jmp": true, "bne": true, "jsr": true,
	"red": true, "prn": true, "rts": true, "stop": true,
}

var directiveNames = map[string]bool{
	"data": true, "string": true, "entry": true, "extern": true,
}

// IsInstructionName reports whether name is one of the 16 reserved
// instruction mnemonics.
func IsInstructionName(name string) bool {
	return instructionNames[name]
}

// IsDirectiveName reports whether name (without its leading '.') is one of
// the 4 reserved directive names.
func IsDirectiveName(name string) bool {
	return directiveNames[name]
}

// IsRegisterName reports whether name is exactly "r" followed by a single
// decimal digit less than RegisterCount.
func IsRegisterName(name string) bool {
	if len(name) != 2 || name[0] != 'r' {
		return false
	}
	d := name[1]
	return d >= '0' && d < byte('0'+RegisterCount)
}

// RegisterIndex returns the register index encoded by name and true, or
// (0, false) if name is not a valid register name.
func RegisterIndex(name string) (int, bool) {
	if !IsRegisterName(name) {
		return 0, false
	}
	return int(name[1] - '0'), true
}
