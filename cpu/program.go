package cpu

import (
	"iter"

	"github.com/ezrec/uvsim/memory"
)

// Statement is a single line of source with the word it produced.
type Statement struct {
	LineNo    int         // Source line number, starting at 1.
	Address   int         // Memory address of the word.
	Words     []string    // Source words, after label removal.
	Code      memory.Word // Generated word.
	LinkLabel string      // Label to link into the operand field.
}

// Program is an ordered list of statements, one memory word each.
type Program struct {
	Statements []Statement
}

// Debug locates the statement that generated a memory address.
type Debug struct {
	*Statement
}

// ProgramOf wraps a loaded memory image as a program, one line per word.
func ProgramOf(image []memory.Word) (prog *Program) {
	prog = &Program{
		Statements: make([]Statement, 0, len(image)),
	}

	for n, word := range image {
		prog.Statements = append(prog.Statements, Statement{
			LineNo:  n + 1,
			Address: n,
			Words:   []string{word.String()},
			Code:    word,
		})
	}

	return
}

// Debug returns the statement at an address, if any.
func (prog *Program) Debug(addr int) (dbg Debug) {
	for n, stmt := range prog.Statements {
		if stmt.Address == addr {
			dbg = Debug{Statement: &prog.Statements[n]}
			break
		}
	}

	return
}

// LineNo returns the source line for an address, or 0 if unknown.
func (prog *Program) LineNo(addr int) int {
	dbg := prog.Debug(addr)
	if dbg.Statement == nil {
		return 0
	}

	return dbg.LineNo
}

// Codes returns an iterator over (address, word) pairs.
func (prog *Program) Codes() iter.Seq2[int, memory.Word] {
	return func(yield func(addr int, code memory.Word) bool) {
		for _, stmt := range prog.Statements {
			if !yield(stmt.Address, stmt.Code) {
				return
			}
		}
	}
}

// Image returns the memory image of the program, from address 0 up to
// the highest address used.
func (prog *Program) Image() (image []memory.Word) {
	for addr, code := range prog.Codes() {
		for len(image) <= addr {
			image = append(image, 0)
		}
		image[addr] = code
	}

	return
}
