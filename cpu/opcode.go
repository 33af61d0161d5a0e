package cpu

import (
	"fmt"

	"github.com/ezrec/uvsim/memory"
)

// Opcode is a BasicML operation selector.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode,State -output=opcode_string.go
const (
	OP_READ       = Opcode(10) // READ
	OP_WRITE      = Opcode(11) // WRITE
	OP_LOAD       = Opcode(20) // LOAD
	OP_STORE      = Opcode(21) // STORE
	OP_ADD        = Opcode(30) // ADD
	OP_SUBTRACT   = Opcode(31) // SUBTRACT
	OP_DIVIDE     = Opcode(32) // DIVIDE
	OP_MULTIPLY   = Opcode(33) // MULTIPLY
	OP_BRANCH     = Opcode(40) // BRANCH
	OP_BRANCHNEG  = Opcode(41) // BRANCHNEG
	OP_BRANCHZERO = Opcode(42) // BRANCHZERO
	OP_HALT       = Opcode(43) // HALT
)

// OPERAND_LIMIT is the exclusive upper bound of an operand field.
const OPERAND_LIMIT = 100

// Opcodes lists every recognized opcode in numeric order.
var Opcodes = []Opcode{
	OP_READ, OP_WRITE,
	OP_LOAD, OP_STORE,
	OP_ADD, OP_SUBTRACT, OP_DIVIDE, OP_MULTIPLY,
	OP_BRANCH, OP_BRANCHNEG, OP_BRANCHZERO, OP_HALT,
}

// opcodeMap maps mnemonics to opcodes.
var opcodeMap = func() map[string]Opcode {
	ops := make(map[string]Opcode, len(Opcodes))
	for _, op := range Opcodes {
		ops[op.String()] = op
	}
	return ops
}()

// Valid returns true if the opcode is recognized.
func (op Opcode) Valid() bool {
	_, ok := opcodeMap[op.String()]
	return ok
}

// Branches returns true for opcodes that may assign the cursor.
func (op Opcode) Branches() bool {
	return op == OP_BRANCH || op == OP_BRANCHNEG || op == OP_BRANCHZERO
}

// Arithmetic returns true for opcodes handled by the Alu.
func (op Opcode) Arithmetic() bool {
	return op == OP_ADD || op == OP_SUBTRACT || op == OP_DIVIDE || op == OP_MULTIPLY
}

// Decode splits an instruction word into its opcode and operand
// address. The sign of the instruction is discarded.
func Decode(instruction memory.Word) (op Opcode, operand int) {
	value := int(instruction)
	if value < 0 {
		value = -value
	}

	op = Opcode(value / OPERAND_LIMIT)
	operand = value % OPERAND_LIMIT
	return
}

// Encode builds an instruction word.
func Encode(op Opcode, operand int) memory.Word {
	return memory.Word(int(op)*OPERAND_LIMIT + operand)
}

// Disassemble returns the assembly form of an instruction word.
func Disassemble(instruction memory.Word) string {
	op, operand := Decode(instruction)
	if !op.Valid() {
		return fmt.Sprintf(".word %v", instruction)
	}
	return fmt.Sprintf("%v %02d", op, operand)
}
