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

// Package disassembly turns blocks of target memory into lines of 68k or
// DSP56k disassembly.
//
// Block68() and Block56() decode an entire buffer, or as many lines as
// requested, in one call. For lazy decoding the Iterator68 and Iterator56
// types can be restarted at any address in the buffer.
//
// Lines are written as aligned text with the Write() function. Optional
// comments are added to the text from the register state, from a symbols
// table and from an Annotator.
//
// The StepOver68() and StepOver56() functions say whether a debugger should
// run to the following instruction rather than single stepping into the line.
package disassembly
