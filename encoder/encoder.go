package encoder

import "github.com/kallisti-dev/word24asm/parser"

// Word is a 24-bit machine word. Values above bit 23 are meaningless and are
// masked off by every constructor in this package.
type Word uint32

const wordMask = 0xFFFFFF

// Encoder turns resolved instructions and operands into Words (§4.9). It
// holds no mutable state of its own; second pass supplies the current
// instruction address and any resolved symbol address/context with each
// call, the way the original's encode_instruction takes IC and the symbol
// table as explicit arguments rather than hidden fields.
type Encoder struct{}

// NewEncoder returns an Encoder. There is currently nothing to configure;
// the type exists so call sites read the same way whether or not that
// changes.
func NewEncoder() *Encoder {
	return &Encoder{}
}

func modeOf(kind parser.OperandKind) AddressingMode {
	switch kind {
	case parser.Immediate:
		return ModeImmediate
	case parser.Symbol:
		return ModeSymbol
	case parser.Address:
		return ModeAddress
	default: // parser.Register
		return ModeRegister
	}
}

// EncodeHead builds the head word for instr. Operand1 (nil for 1-operand
// instructions) supplies the source fields; Operand2 supplies the
// destination fields, matching the convention in parser.Instruction that
// a 1-operand instruction's sole operand is always stored as Operand2.
func (e *Encoder) EncodeHead(instr *parser.Instruction) Word {
	spec := instr.Kind.Spec()

	var srcMode AddressingMode
	var srcReg int
	if instr.Operand1 != nil {
		srcMode = modeOf(instr.Operand1.Kind)
		if instr.Operand1.Kind == parser.Register {
			srcReg = instr.Operand1.RegisterIndex
		}
	}

	var dstMode AddressingMode
	var dstReg int
	if instr.Operand2 != nil {
		dstMode = modeOf(instr.Operand2.Kind)
		if instr.Operand2.Kind == parser.Register {
			dstReg = instr.Operand2.RegisterIndex
		}
	}

	word := Word(spec.Opcode&OpcodeMask) << OpcodeShift
	word |= Word(int(srcMode)&ModeMask) << SrcModeShift
	word |= Word(srcReg&RegMask) << SrcRegShift
	word |= Word(int(dstMode)&ModeMask) << DstModeShift
	word |= Word(dstReg&RegMask) << DstRegShift
	word |= Word(spec.Funct&FunctMask) << FunctShift
	word |= areAbsolute
	return word & wordMask
}

// EncodeImmediateExtra builds the extra word for an IMMEDIATE operand.
func EncodeImmediateExtra(value int) Word {
	return (Word(uint32(int32(value))&ValueMask21) << ExtraWordShift) | areAbsolute
}

// EncodeSymbolExtra builds the extra word for a SYMBOL operand whose
// address and context have already been resolved in the symbol table.
func EncodeSymbolExtra(addr int, context parser.SymbolContext) Word {
	are := Word(areRelocatable)
	if context == parser.SymbolExternal {
		are = areExternal
	}
	return (Word(uint32(addr)&ValueMask21) << ExtraWordShift) | are
}

// EncodeAddressExtra builds the extra word for an ADDRESS operand: the
// value field holds the distance from the referencing instruction's head
// word to the resolved symbol, not its absolute address.
func EncodeAddressExtra(addr, headAddr int) Word {
	rel := addr - headAddr
	return (Word(uint32(int32(rel))&ValueMask21) << ExtraWordShift) | areAbsolute
}
