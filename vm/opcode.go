package vm

// Opcode is the instruction tag read at the program counter: a narrow enum
// backed by a name map and an arity map, both built once at init time.
type Opcode Word

const (
	OpHalt Opcode = 0
	OpSet  Opcode = 1
	OpPush Opcode = 2
	OpPop  Opcode = 3
	OpEq   Opcode = 4
	OpGt   Opcode = 5
	OpJmp  Opcode = 6
	OpJt   Opcode = 7
	OpJf   Opcode = 8
	OpAdd  Opcode = 9
	OpMul  Opcode = 10
	OpMod  Opcode = 11
	OpAnd  Opcode = 12
	OpOr   Opcode = 13
	OpNot  Opcode = 14
	OpRmem Opcode = 15
	OpWmem Opcode = 16
	OpCall Opcode = 17
	OpRet  Opcode = 18
	OpOut  Opcode = 19
	OpIn   Opcode = 20
	OpNoop Opcode = 21
)

var opcodeNames = map[Opcode]string{
	OpHalt: "halt",
	OpSet:  "set",
	OpPush: "push",
	OpPop:  "pop",
	OpEq:   "eq",
	OpGt:   "gt",
	OpJmp:  "jmp",
	OpJt:   "jt",
	OpJf:   "jf",
	OpAdd:  "add",
	OpMul:  "mul",
	OpMod:  "mod",
	OpAnd:  "and",
	OpOr:   "or",
	OpNot:  "not",
	OpRmem: "rmem",
	OpWmem: "wmem",
	OpCall: "call",
	OpRet:  "ret",
	OpOut:  "out",
	OpIn:   "in",
	OpNoop: "noop",
}

// arity maps each recognized opcode to its fixed operand count.
var arity = map[Opcode]int{
	OpHalt: 0,
	OpSet:  2,
	OpPush: 1,
	OpPop:  1,
	OpEq:   3,
	OpGt:   3,
	OpJmp:  1,
	OpJt:   2,
	OpJf:   2,
	OpAdd:  3,
	OpMul:  3,
	OpMod:  3,
	OpAnd:  3,
	OpOr:   3,
	OpNot:  2,
	OpRmem: 2,
	OpWmem: 2,
	OpCall: 1,
	OpRet:  0,
	OpOut:  1,
	OpIn:   1,
	OpNoop: 0,
}

// String renders the opcode's mnemonic, falling back to a marker for values
// outside the recognized table. Fault messages print the numeric opcode
// instead, and this system does not ship a disassembler.
func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return "?unknown?"
}

// recognized reports whether o appears in the opcode table at all.
func (o Opcode) recognized() bool {
	_, ok := arity[o]
	return ok
}

// decodedInstruction is the eagerly-classified form of one instruction: the
// opcode, its raw (unresolved) operand words, and its encoded size. Operands
// are validated as non-reserved at decode time, even for an instruction that
// would branch away before reaching a given operand.
type decodedInstruction struct {
	opcode   Opcode
	operands [3]Word
	nargs    int
	size     Word
}
