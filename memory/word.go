// Package memory provides the storage model of the UVSim machine: a
// fixed bank of 100 signed four digit words, the accumulator register,
// and the instruction cursor.
package memory

import (
	"fmt"
)

const (
	WORD_MAX     = Word(9999)  // Largest valid word.
	WORD_MIN     = Word(-9999) // Smallest valid word.
	WORD_MODULUS = 10000       // Truncation modulus for arithmetic results.
)

// Word is a signed machine word. Valid words lie in [WORD_MIN, WORD_MAX];
// intermediate arithmetic may exceed that range before truncation.
type Word int

// Valid returns true if the word is within the four digit range.
func (w Word) Valid() bool {
	return w >= WORD_MIN && w <= WORD_MAX
}

// Truncate reduces the word to its low four decimal digits.
// Go's remainder takes the sign of the dividend, so the sign of the
// untruncated value is kept: -12345 truncates to -2345.
func (w Word) Truncate() Word {
	return w % WORD_MODULUS
}

// String returns the fixed width signed form of the word, ie '+1007'.
func (w Word) String() string {
	if w < 0 {
		return fmt.Sprintf("-%04d", -int(w))
	}
	return fmt.Sprintf("+%04d", int(w))
}
