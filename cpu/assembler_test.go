package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/uvsim/memory"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Statements))
	assert.Equal("0", asm.Equate["LINENO"])
}

func TestAssemblerProgram(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"; add two numbers",
		"start: READ a",
		"       READ b",
		"       load a      ; mnemonics are case insensitive",
		"       ADD b",
		"       STORE sum",
		"       WRITE sum",
		"       HALT",
		"a:     .word 0",
		"b:     +0000",
		"sum:   .WORD -0001",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []memory.Word{1007, 1008, 2007, 3008, 2109, 1109, 4300, 0, 0, -1}
	assert.Equal(expected, prog.Image())

	assert.Equal(map[string]int{"start": 0, "a": 7, "b": 8, "sum": 9}, asm.Label)
	assert.Equal(Statement{
		LineNo:    2,
		Address:   0,
		Words:     []string{"READ", "a"},
		Code:      1007,
		LinkLabel: "a",
	}, prog.Statements[0])
	assert.Equal(8, prog.LineNo(6))
}

func TestAssemblerEqu(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("WORD_MAX", "9999")

	program := []string{
		".equ BASE 20",
		".equ NEXT $(BASE + 1)",
		"LOAD BASE",
		"STORE NEXT",
		"WRITE $(NEXT * 2)",
		".word WORD_MAX",
		"HALT $(LINENO)",
		"$(WORD_MAX - 1)",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal([]memory.Word{2020, 2121, 1142, 9999, 4307, 9998}, prog.Image())
}

func TestAssemblerLabels(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"       BRANCH main",
		"one:   1",
		"main:",
		"loop:  LOAD one",
		"       BRANCHZERO done",
		"       BRANCHNEG loop",
		"done:  HALT done",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal([]memory.Word{4002, 1, 2001, 4205, 4102, 4305}, prog.Image())
	assert.Equal(2, asm.Label["main"])
	assert.Equal(2, asm.Label["loop"])
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []string
		lineno  int
		err     error
	}){
		{"mnemonic", []string{"FOO 10"}, 1, ErrMnemonicInvalid},
		{"operand_missing", []string{"HALT", "READ"}, 2, ErrOperandMissing},
		{"operand_extra", []string{"READ 1 2"}, 1, ErrOperandExtra},
		{"operand_range", []string{"READ 100"}, 1, ErrOperandRange},
		{"operand_negative", []string{"READ -1"}, 1, ErrOperandRange},
		{"operand_number", []string{"READ 1x"}, 1, ErrParseNumber("1x")},
		{"operand_symbol", []string{"READ a+b"}, 1, ErrParseNumber("a+b")},
		{"label_missing", []string{"HALT", "", "READ x"}, 3, ErrLabelMissing("x")},
		{"label_duplicate", []string{"a: HALT", "a: HALT"}, 2, ErrLabelDuplicate},
		{"label_invalid", []string{"1bad: HALT"}, 1, ErrLabelInvalid},
		{"equ_syntax", []string{".equ X"}, 1, ErrEquateSyntax},
		{"equ_duplicate", []string{".equ X 1", ".equ X 2"}, 2, ErrEquateDuplicate},
		{"word_range", []string{".word 10000"}, 1, ErrOperandRange},
		{"word_number", []string{".word abc"}, 1, ErrParseNumber("abc")},
		{"word_missing", []string{".word"}, 1, ErrOperandMissing},
		{"word_extra", []string{"12 13"}, 1, ErrOperandExtra},
		{"expression", []string{"WRITE $(1 +)"}, 1, ErrParseExpression("1 +")},
		{"size", strings.Split(strings.Repeat("HALT\n", memory.MEMORY_SIZE+1), "\n"), memory.MEMORY_SIZE + 1, ErrProgramSize},
	}

	for _, entry := range table {
		asm := &Assembler{}

		prog, err := asm.Parse(strings.NewReader(strings.Join(entry.program, "\n")))
		assert.Nil(prog, entry.name)
		assert.True(errors.Is(err, entry.err), entry.name)
		var syntax ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.name) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.name)
		}
	}
}

func TestAssemblerErrorText(t *testing.T) {
	assert := assert.New(t)

	err := ErrSyntax{LineNo: 1234, Line: "FOO", Err: ErrMnemonicInvalid}
	assert.Equal("line 1234 'FOO' mnemonic invalid", err.Error())
}

func TestAssemblerReuse(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	_, err := asm.Parse(strings.NewReader("a: HALT\n.equ X 1\n"))
	assert.NoError(err)

	// Labels and equates do not leak between programs.
	prog, err := asm.Parse(strings.NewReader("a: HALT X\n.equ X 2\n"))
	assert.Nil(prog)
	assert.True(errors.Is(err, ErrLabelMissing("X")))

	prog, err = asm.Parse(strings.NewReader("a: READ a\n"))
	assert.NoError(err)
	assert.Equal([]memory.Word{1000}, prog.Image())
}
