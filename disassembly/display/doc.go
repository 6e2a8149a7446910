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

// Package display helps with the presentation of disassembled instructions.
//
// The Instruction type holds the text of each column of a disassembly line.
// The Columns type records the widths needed for all instances in a group of
// Instructions. The Update() function should be called for every Instruction
// before any of them are printed.
//
// Branches are drawn in a gutter to the left of the disassembly. The Layout()
// function chooses a lane for each branch so that branches cross each other
// as little as possible. Gutter() draws the result as text.
package display
