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

package m68k

// CPUType selects the instructions and addressing modes that can be decoded.
type CPUType int

// List of valid CPUType values.
const (
	CPU68000 CPUType = iota
	CPU68010
	CPU68020
	CPU68030
)

func (c CPUType) String() string {
	switch c {
	case CPU68010:
		return "68010"
	case CPU68020:
		return "68020"
	case CPU68030:
		return "68030"
	}
	return "68000"
}

// ParseCPUType converts a string like "68020" to a CPUType.
func ParseCPUType(s string) (CPUType, bool) {
	for c := CPU68000; c <= CPU68030; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return CPU68000, false
}

// Settings for the Decode() function.
type Settings struct {
	CPU CPUType
}

// Bitfield is the {offset:width} specifier of a bitfield instruction.
type Bitfield struct {
	OffsetIsReg bool
	Offset      uint8
	WidthIsReg  bool
	Width       uint8
	Valid       bool
}

// Instruction is a single decoded instruction.
type Instruction struct {
	Opcode Opcode
	Suffix Suffix

	// operands in assembler order. unused slots are nil
	Op [3]Operand

	// bitfield specifiers printed after Op[0] and Op[1] respectively
	BF [2]Bitfield

	// the first word of the instruction
	Header uint16

	// number of bytes in the instruction. always at least 2
	Length int
}

// noneInstruction is the result for an undecodable header word.
func noneInstruction(header uint16) Instruction {
	return Instruction{
		Opcode: None,
		Header: header,
		Length: 2,
	}
}
