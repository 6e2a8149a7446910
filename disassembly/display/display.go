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

import (
	"strings"
)

// Instruction is the columnar representation of a single disassembled
// instruction.
type Instruction struct {
	Address  string
	Bytecode string
	Mnemonic string
	Operand  string
	Comment  string
}

// Split formatted instruction text into the mnemonic and the operands. The
// operands are everything after the first run of spaces.
func Split(text string) (mnemonic string, operand string) {
	text = strings.TrimSpace(text)
	i := strings.IndexByte(text, ' ')
	if i == -1 {
		return text, ""
	}
	return text[:i], strings.TrimSpace(text[i:])
}
