// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/uvsim/memory"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

var (
	reLabel = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	reParen = regexp.MustCompile(`\$\([^\$]*\)`)
)

// Assembler is a single pass assembler for BasicML mnemonic source.
//
//	; comment
//	.equ  LIMIT 10
//	loop: READ  n       ; label operands are linked after the pass
//	      WRITE n
//	      HALT
//	n:    .word +0000
type Assembler struct {
	Verbose   bool        // If set, verbosely logs the assembler actions.
	Statement []Statement // List of generated statements.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to memory addresses.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// isNumber returns true if the word is shaped like a decimal number.
func isNumber(word string) bool {
	if len(word) == 0 {
		return false
	}
	if word[0] == '+' || word[0] == '-' {
		word = word[1:]
	}
	return len(word) > 0 && word[0] >= '0' && word[0] <= '9'
}

// valueOf returns the value of a decimal word.
func (asm *Assembler) valueOf(word string) (value int, err error) {
	value, err = strconv.Atoi(word)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var equ int
		equ, err = asm.valueOf(str)
		if err != nil {
			// Only integer equates are visible to expressions.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt(equ)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// parseLine expands a single line into words, and records any labels.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%d", lineno)

	// Do $() evaluations
	line = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil && err == nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if strings.EqualFold(words[0], ".equ") {
		if len(words) != 3 || !reLabel.MatchString(words[1]) {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		if !reLabel.MatchString(label) {
			err = ErrLabelInvalid
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		asm.Label[label] = asm.currentAddress()
		words = words[1:]
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	return
}

// currentAddress gets the address of the next statement.
func (asm *Assembler) currentAddress() int {
	if len(asm.Statement) == 0 {
		return 0
	}

	last := asm.Statement[len(asm.Statement)-1]

	return last.Address + 1
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Label = make(map[string]int, 16)
	asm.Statement = asm.Statement[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			logrus.Debugf("asm: %v: %v", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of labels.
	for n := range asm.Statement {
		stmt := &asm.Statement[n]

		if len(stmt.LinkLabel) == 0 {
			continue
		}
		lineno = stmt.LineNo
		line = strings.Join(stmt.Words, " ")

		addr, ok := asm.Label[stmt.LinkLabel]
		if !ok {
			err = ErrLabelMissing(stmt.LinkLabel)
			return
		}
		if addr >= OPERAND_LIMIT {
			err = ErrOperandRange
			return
		}
		stmt.Code += memory.Word(addr)
	}

	prog = &Program{
		Statements: slices.Clone(asm.Statement),
	}

	return
}

// parseOperand returns the operand field for a word, or the label to
// link it to.
func (asm *Assembler) parseOperand(word string) (operand int, label string, err error) {
	if !isNumber(word) {
		if !reLabel.MatchString(word) {
			err = ErrParseNumber(word)
			return
		}
		label = word
		return
	}

	operand, err = asm.valueOf(word)
	if err != nil {
		return
	}

	if operand < 0 || operand >= OPERAND_LIMIT {
		err = ErrOperandRange
		return
	}

	return
}

// parseWords evaluates the words of a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	addr := asm.currentAddress()
	if addr >= memory.MEMORY_SIZE {
		err = ErrProgramSize
		return
	}

	stmt := Statement{
		LineNo:  lineno,
		Address: addr,
		Words:   words,
	}

	mnemonic := strings.ToUpper(words[0])

	switch {
	case mnemonic == ".WORD" || isNumber(mnemonic):
		// .word VALUE, or a bare VALUE
		value := mnemonic
		if mnemonic == ".WORD" {
			if len(words) < 2 {
				err = ErrOperandMissing
				return
			}
			value = words[1]
			words = words[1:]
		}
		if len(words) > 1 {
			err = ErrOperandExtra
			return
		}
		var word int
		word, err = asm.valueOf(value)
		if err != nil {
			return
		}
		stmt.Code = memory.Word(word)
		if !stmt.Code.Valid() {
			err = ErrOperandRange
			return
		}
	default:
		op, ok := opcodeMap[mnemonic]
		if !ok {
			err = ErrMnemonicInvalid
			return
		}
		args := words[1:]
		if len(args) > 1 {
			err = ErrOperandExtra
			return
		}
		var operand int
		switch {
		case len(args) == 1:
			operand, stmt.LinkLabel, err = asm.parseOperand(args[0])
			if err != nil {
				return
			}
		case op != OP_HALT:
			err = ErrOperandMissing
			return
		}
		stmt.Code = Encode(op, operand)
	}

	asm.Statement = append(asm.Statement, stmt)

	return
}
