// Package cpu implements the UVSim execution engine and the BasicML
// assembler.
//
// The engine is a single accumulator machine. Each cycle fetches the word
// under the cursor, decodes it into a two digit opcode and a two digit
// operand address, and dispatches it to the arithmetic unit (Alu), the
// control-flow unit (Control), the memory bank, or an I/O collaborator.
//
//	10 READ        input -> Memory[operand]
//	11 WRITE       Memory[operand] -> output
//	20 LOAD        Memory[operand] -> accumulator
//	21 STORE       accumulator -> Memory[operand]
//	30 ADD         accumulator += Memory[operand]
//	31 SUBTRACT    accumulator -= Memory[operand]
//	32 DIVIDE      accumulator = floor(accumulator / Memory[operand])
//	33 MULTIPLY    accumulator *= Memory[operand]
//	40 BRANCH      cursor = operand
//	41 BRANCHNEG   cursor = operand, if accumulator < 0
//	42 BRANCHZERO  cursor = operand, if accumulator == 0
//	43 HALT        stop
//
// Arithmetic results are truncated to four decimal digits. Any other
// opcode terminates the run without error.
//
// The assembler accepts the mnemonics above, with labels, equates, and
// compile-time $(...) expression evaluation.
package cpu
