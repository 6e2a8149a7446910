// This file is part of hrdisasm.
//
// hrdisasm is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// hrdisasm is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with hrdisasm.  If not, see <https://www.gnu.org/licenses/>.

package dsp56

// Settings for the Decode() function. There are no options for the
// DSP56000 and DSP56001.
type Settings struct{}

// ParallelMove is a data move that happens in the same cycle as the
// arithmetic operation. Address register updates have a single operand.
type ParallelMove struct {
	Op [2]Operand
}

// Instruction is a single decoded instruction.
type Instruction struct {
	Opcode Opcode

	// operands in assembler order. unused slots are nil
	Op [3]Operand

	// second transfer of Tcc
	Op2 [2]Operand

	PMove [2]ParallelMove

	// the first operand of a multiply is negated
	Neg bool

	// the first word of the instruction
	Header uint32

	// number of words in the instruction. always at least 1
	Length int
}

// invalidInstruction is the result for an undecodable header word.
func invalidInstruction(header uint32) Instruction {
	return Instruction{
		Opcode: Invalid,
		Header: header,
		Length: 1,
	}
}
