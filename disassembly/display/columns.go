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

package display

import "fmt"

// Widths of Instruction fields.
type Widths struct {
	Address  int
	Bytecode int
	Mnemonic int
	Operand  int
}

// Fmt strings for Instruction fields. For use with fmt.Printf() and fmt.Sprintf()
type Fmt struct {
	Address  string
	Bytecode string
	Mnemonic string
	Operand  string
}

// Columns information for groups of Instructions.
type Columns struct {
	Widths Widths
	Fmt    Fmt
}

// Update width and formatting information. The comment field is the last
// field on a line and is never padded.
func (col *Columns) Update(d *Instruction) {
	if len(d.Address) > col.Widths.Address {
		col.Widths.Address = len(d.Address)
	}
	if len(d.Bytecode) > col.Widths.Bytecode {
		col.Widths.Bytecode = len(d.Bytecode)
	}
	if len(d.Mnemonic) > col.Widths.Mnemonic {
		col.Widths.Mnemonic = len(d.Mnemonic)
	}
	if len(d.Operand) > col.Widths.Operand {
		col.Widths.Operand = len(d.Operand)
	}

	col.Fmt.Address = fmt.Sprintf("%%-%ds", col.Widths.Address)
	col.Fmt.Bytecode = fmt.Sprintf("%%-%ds", col.Widths.Bytecode)
	col.Fmt.Mnemonic = fmt.Sprintf("%%-%ds", col.Widths.Mnemonic)
	col.Fmt.Operand = fmt.Sprintf("%%-%ds", col.Widths.Operand)
}
