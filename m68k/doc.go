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

// Package m68k decodes, formats and analyses instructions for the 68000,
// 68010, 68020 and 68030 CPUs.
//
// Decode() turns the bytes at a buffer.Reader's position into an
// Instruction. Decoding never fails. Unknown encodings, encodings that are
// not available on the selected CPU and truncated instructions all return an
// Instruction with the None opcode and a length of two bytes.
//
// Instructions are formatted in a Devpac-like syntax with Format() and
// FormatTerse(). PC relative operands are shown as absolute addresses, which
// is why the address of the instruction is required.
//
// EffectiveAddress(), WouldBranch() and BranchTarget() answer questions about
// an instruction for the benefit of a debugger. None of the functions in this
// package modify the Instruction or the Registers they are given.
package m68k
