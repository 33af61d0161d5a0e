package io

import (
	"github.com/ezrec/uvsim/memory"
)

// Snapshot is a register state shown to an Observer.
type Snapshot struct {
	Accumulator memory.Word
	Cursor      int
}

// Recorder is a scripted operator. READ consumes Inputs in order, and
// everything the program emits is captured for later inspection.
type Recorder struct {
	Inputs   []memory.Word // Pending words for READ.
	Outputs  []memory.Word // Words emitted by WRITE.
	Messages []string      // Operator messages.
	Halts    int           // Number of halt notifications.
	Steps    []Snapshot    // Observed register states.
}

var _ Input = (*Recorder)(nil)
var _ Output = (*Recorder)(nil)
var _ Halter = (*Recorder)(nil)
var _ Observer = (*Recorder)(nil)

// Rewind clears all captured state. Pending inputs are kept.
func (rec *Recorder) Rewind() {
	rec.Outputs = nil
	rec.Messages = nil
	rec.Halts = 0
	rec.Steps = nil
}

// ReadWord returns the next valid pending input. Out of range entries
// are skipped with an 'Invalid input' message, as an operator would be
// asked to retry.
func (rec *Recorder) ReadWord() (word memory.Word, err error) {
	for len(rec.Inputs) > 0 {
		word = rec.Inputs[0]
		rec.Inputs = rec.Inputs[1:]
		if word.Valid() {
			return
		}
		rec.Notify(f("Invalid input. Try again."))
	}

	word = 0
	err = ErrInputClosed
	return
}

func (rec *Recorder) WriteWord(word memory.Word) (err error) {
	rec.Outputs = append(rec.Outputs, word)
	return
}

func (rec *Recorder) Notify(message string) (err error) {
	rec.Messages = append(rec.Messages, message)
	return
}

func (rec *Recorder) Halted() {
	rec.Halts++
}

func (rec *Recorder) Observe(accumulator memory.Word, cursor int) {
	rec.Steps = append(rec.Steps, Snapshot{Accumulator: accumulator, Cursor: cursor})
}
