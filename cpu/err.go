package cpu

import (
	"errors"
	"strconv"

	"github.com/ezrec/uvsim/memory"
	"github.com/ezrec/uvsim/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrStopped        = errors.New(f("cpu stopped"))
	ErrInvalidOperand = errors.New(f("invalid operand"))
	ErrDivideByZero   = errors.New(f("divide by zero"))
	ErrOpcodeUnknown  = errors.New(f("unrecognized opcode"))
	ErrInputMissing   = errors.New(f("no input attached"))
	ErrOutputMissing  = errors.New(f("no output attached"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrLabelInvalid    = errors.New(f("label invalid"))
	ErrMnemonicInvalid = errors.New(f("mnemonic invalid"))
	ErrOperandMissing  = errors.New(f("operand missing"))
	ErrOperandExtra    = errors.New(f("excessive operands"))
	ErrOperandRange    = errors.New(f("operand out of range"))
	ErrProgramSize     = errors.New(f("program exceeds memory"))
)

// ErrOpcode is the instruction word that failed to execute.
type ErrOpcode memory.Word

func (eo ErrOpcode) Error() string {
	return f("bad instruction %v (%v)", memory.Word(eo), Disassemble(memory.Word(eo)))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %v '%v' %v", strconv.Itoa(err.LineNo), err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
