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

// Package dsp56 decodes, formats and analyses instructions for the DSP56000
// and DSP56001.
//
// The DSP has a fixed 24 bit instruction word, optionally followed by a
// single extension word. Decode() takes a buffer.WordReader and never fails:
// unknown and truncated encodings return an Instruction with the Invalid
// opcode and a length of one word.
//
// Most arithmetic instructions carry up to two parallel moves, which are
// stored in the PMove field of the Instruction and printed after the
// arithmetic operands:
//
//	mac      y0,x0,a x:(r0)+,x0 y:(r4)+,y0
//
// The end address of a DO loop is decoded as the first address after the
// loop, which is how it is written in assembler source.
package dsp56
