package memory

import (
	"fmt"
	"iter"
	"strings"
)

// MEMORY_SIZE is the number of words in a bank.
const MEMORY_SIZE = 100

// Bank is the storage owned by a single machine.
type Bank struct {
	Cell        [MEMORY_SIZE]Word // Main memory.
	Accumulator Word              // Accumulator register.
	Cursor      int               // Address of the next instruction fetch.
}

// NewBank creates a zeroed bank.
func NewBank() (bank *Bank) {
	bank = &Bank{}
	return
}

// Valid returns true if the address is within the bank.
func (bank *Bank) Valid(addr int) bool {
	return addr >= 0 && addr < len(bank.Cell)
}

// Read returns the word at an address.
func (bank *Bank) Read(addr int) (word Word, err error) {
	if !bank.Valid(addr) {
		err = ErrAddress(addr)
		return
	}

	word = bank.Cell[addr]
	return
}

// Write sets the word at an address.
func (bank *Bank) Write(addr int, word Word) (err error) {
	if !bank.Valid(addr) {
		err = ErrAddress(addr)
		return
	}

	bank.Cell[addr] = word
	return
}

// Load copies a program image into the bank starting at address 0.
// Cells beyond the image keep their prior values. An image longer than
// the bank fails before any cell is written.
func (bank *Bank) Load(image []Word) (err error) {
	if len(image) > len(bank.Cell) {
		err = ErrAddress(len(bank.Cell))
		return
	}

	copy(bank.Cell[:], image)
	return
}

// Words returns an iterator over every (address, word) pair.
func (bank *Bank) Words() iter.Seq2[int, Word] {
	return func(yield func(addr int, word Word) bool) {
		for addr, word := range bank.Cell {
			if !yield(addr, word) {
				return
			}
		}
	}
}

// Image returns a copy of the full memory contents.
func (bank *Bank) Image() (image []Word) {
	image = make([]Word, len(bank.Cell))
	copy(image, bank.Cell[:])
	return
}

// Reset zeros memory, the accumulator, and the cursor.
func (bank *Bank) Reset() {
	clear(bank.Cell[:])
	bank.ResetAccumulator()
	bank.ResetCursor()
}

// ResetAccumulator zeros the accumulator.
func (bank *Bank) ResetAccumulator() {
	bank.Accumulator = 0
}

// ResetCursor returns the cursor to address 0.
func (bank *Bank) ResetCursor() {
	bank.Cursor = 0
}

// Listing renders memory one cell per line as 'NN: +XXXX'.
func (bank *Bank) Listing() string {
	var text strings.Builder
	for addr, word := range bank.Words() {
		fmt.Fprintf(&text, "%02d: %v\n", addr, word)
	}
	return text.String()
}
