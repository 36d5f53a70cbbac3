package parser

import "github.com/kallisti-dev/word24asm/diag"

// InstructionKind enumerates the 16 fixed opcode kinds (§6).
type InstructionKind int

const (
	Mov InstructionKind = iota
	Cmp
	Add
	Sub
	Lea
	Clr
	Not
	Inc
	Dec
	Jmp
	Bne
	Jsr
	Red
	Prn
	Rts
	Stop
)

// instructionSpec describes one mnemonic's fixed shape: its opcode/funct
// pair, operand arity, and the operand kinds each position accepts. This is
// the Go rendering of the original's instruction_opcode/_funct/
// _operand_amount/acceptable_src_operands/acceptable_dest_operands table.
type instructionSpec struct {
	Name      string
	Opcode    int
	Funct     int
	Operands  int
	SrcAccept []OperandKind // nil when the instruction takes no source operand
	DstAccept []OperandKind // nil when the instruction takes no destination operand
}

var instructionSpecs = map[InstructionKind]instructionSpec{
	Mov:  {"mov", 0, 0, 2, []OperandKind{Immediate, Symbol, Register}, []OperandKind{Symbol, Register}},
	Cmp:  {"cmp", 1, 0, 2, []OperandKind{Immediate, Symbol, Register}, []OperandKind{Immediate, Symbol, Register}},
	Add:  {"add", 2, 1, 2, []OperandKind{Immediate, Symbol, Register}, []OperandKind{Symbol, Register}},
	Sub:  {"sub", 2, 2, 2, []OperandKind{Immediate, Symbol, Register}, []OperandKind{Symbol, Register}},
	Lea:  {"lea", 4, 0, 2, []OperandKind{Symbol}, []OperandKind{Symbol, Register}},
	Clr:  {"clr", 5, 1, 1, nil, []OperandKind{Symbol, Register}},
	Not:  {"not", 5, 2, 1, nil, []OperandKind{Symbol, Register}},
	Inc:  {"inc", 5, 3, 1, nil, []OperandKind{Symbol, Register}},
	Dec:  {"dec", 5, 4, 1, nil, []OperandKind{Symbol, Register}},
	Jmp:  {"jmp", 9, 1, 1, nil, []OperandKind{Symbol, Address}},
	Bne:  {"bne", 9, 2, 1, nil, []OperandKind{Symbol, Address}},
	Jsr:  {"jsr", 9, 3, 1, nil, []OperandKind{Symbol, Address}},
	Red:  {"red", 12, 0, 1, nil, []OperandKind{Symbol, Register}},
	Prn:  {"prn", 13, 0, 1, nil, []OperandKind{Immediate, Symbol, Register}},
	Rts:  {"rts", 14, 0, 0, nil, nil},
	Stop: {"stop", 15, 0, 0, nil, nil},
}

var instructionKindByName map[string]InstructionKind

func init() {
	instructionKindByName = make(map[string]InstructionKind, len(instructionSpecs))
	for kind, spec := range instructionSpecs {
		instructionKindByName[spec.Name] = kind
	}
}

// InstructionKindByName returns the kind for a reserved mnemonic and true,
// or (0, false) if name is not an instruction name.
func InstructionKindByName(name string) (InstructionKind, bool) {
	k, ok := instructionKindByName[name]
	return k, ok
}

// Spec returns this instruction kind's fixed shape.
func (k InstructionKind) Spec() instructionSpec {
	return instructionSpecs[k]
}

func (k InstructionKind) String() string {
	return instructionSpecs[k].Name
}

// OperandKind is the tag of the Operand sum type (§3).
type OperandKind int

const (
	Immediate OperandKind = iota
	Register
	Symbol
	Address
)

func (k OperandKind) String() string {
	switch k {
	case Immediate:
		return "IMMEDIATE"
	case Register:
		return "REGISTER"
	case Symbol:
		return "SYMBOL"
	case Address:
		return "ADDRESS"
	default:
		return "UNKNOWN"
	}
}

// Operand is a tagged operand value. Exactly one of the typed fields is
// meaningful, selected by Kind; this mirrors the original's
// Operand{type, value union} without resorting to an interface per variant,
// since every variant here is a single scalar or string.
type Operand struct {
	Kind          OperandKind
	ImmediateValue int    // valid when Kind == Immediate
	RegisterIndex  int    // valid when Kind == Register
	Name           string // valid when Kind == Symbol or Kind == Address
}

func acceptableNames(kinds []OperandKind) []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

func kindAccepted(kind OperandKind, accept []OperandKind) bool {
	for _, k := range accept {
		if k == kind {
			return true
		}
	}
	return false
}

// Instruction is a fully parsed instruction line (§3).
type Instruction struct {
	Kind     InstructionKind
	Operand1 *Operand // source for 2-operand instructions, nil otherwise
	Operand2 *Operand // destination for 2-operand instructions; for
	                  // 1-operand instructions the sole operand is stored
	                  // here as well, so EncodingWordCount and the encoder
	                  // always treat Operand2 as "the destination, if any".
}

// EncodingWordCount is 1 (the head word) plus one extra word per non-register
// operand present (§4.8 point 4, §8 invariant).
func (i Instruction) EncodingWordCount() int {
	n := 1
	if i.Operand1 != nil && i.Operand1.Kind != Register {
		n++
	}
	if i.Operand2 != nil && i.Operand2.Kind != Register {
		n++
	}
	return n
}

// DirectiveKind is the tag of the Directive sum type (§3).
type DirectiveKind int

const (
	DirectiveData DirectiveKind = iota
	DirectiveString
	DirectiveEntry
	DirectiveExtern
)

// Directive is a tagged directive value (§3). Exactly the fields relevant
// to Kind are populated.
type Directive struct {
	Kind    DirectiveKind
	Ints    []int  // DirectiveData
	Text    string // DirectiveString, verbatim content between quotes
	Symbol  string // DirectiveEntry, DirectiveExtern
}

// LineContentKind tags what a parsed line turned out to contain (§4.4).
type LineContentKind int

const (
	ContentEmpty LineContentKind = iota
	ContentComment
	ContentDirective
	ContentInstruction
	ContentError
)

// LabelResult tags the outcome of parsing a line's optional leading label.
type LabelResultKind int

const (
	LabelNone LabelResultKind = iota
	LabelOK
	LabelError
)

// LabelResult is the result of attempting to parse a line's label prefix.
type LabelResult struct {
	Kind  LabelResultKind
	Name  string          // valid when Kind == LabelOK
	Error *diag.Diagnostic // valid when Kind == LabelError
}

// ParsedLine is the line parser's output (§4.4): a label result plus tagged
// content. Label errors and content errors are independent and may both be
// present for the same line.
type ParsedLine struct {
	Label       LabelResult
	ContentKind LineContentKind
	Directive   *Directive       // valid when ContentKind == ContentDirective
	Instruction *Instruction     // valid when ContentKind == ContentInstruction
	Error       *diag.Diagnostic // valid when ContentKind == ContentError
}
