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

// Package symbols keeps track of address symbols for the program being
// disassembled. Symbols are read from a list in the style of nm output with
// ReadSymbolsFile(). The names of the hardware registers can be added to any
// table with AddHardware().
//
// The Describe() function turns an address into a symbol with an offset,
// which is how addresses are annotated in disassembly output.
package symbols
