package encoder

// Head-word bit layout (§4.9): 24 bits total, opcode/funct fixed per
// instruction, addressing-mode and register fields filled per operand.
const (
	OpcodeShift    = 18
	SrcModeShift   = 16
	SrcRegShift    = 13
	DstModeShift   = 11
	DstRegShift    = 8
	FunctShift     = 3

	OpcodeMask = 0x3F
	ModeMask   = 0x3
	RegMask    = 0x7
	FunctMask  = 0x1F
)

// AddressingMode is the 2-bit addressing-mode code stored per operand side
// of the head word.
type AddressingMode int

const (
	ModeImmediate AddressingMode = 0
	ModeSymbol    AddressingMode = 1
	ModeAddress   AddressingMode = 2
	ModeRegister  AddressingMode = 3
)

// A/R/E codes occupying the low 3 bits of every word.
const (
	areAbsolute    = 0b100
	areRelocatable = 0b010
	areExternal    = 0b001
)

// ValueMask21 isolates the low 21 bits used by every extra word's value
// field.
const ValueMask21 = 0x1FFFFF

// ValueMask24 truncates a value to a full 24-bit word, the storage width of
// a .data entry (§3: negative values are two's-complement truncated to 24
// bits at emission time, unlike an instruction's 21-bit value field).
const ValueMask24 = 0xFFFFFF

// ExtraWordShift is where an extra word's value field begins, above the
// 3-bit A/R/E code.
const ExtraWordShift = 3
