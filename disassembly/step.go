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

package disassembly

import (
	"github.com/hrdb/hrdisasm/dsp56"
	"github.com/hrdb/hrdisasm/m68k"
)

// StepOver68 decides whether stepping the line should run to the following
// instruction instead. This is the case for subroutine calls, traps and
// backward DBF loops.
//
// The registers are optional. If they are supplied then a DBF that would exit
// the loop is stepped normally.
func StepOver68(line Line68, regs *m68k.Registers) (next uint32, over bool) {
	switch {
	case m68k.IsSubroutine(line.Inst), m68k.IsTrap(line.Inst):
		return line.End(), true
	case m68k.IsBackDBF(line.Inst):
		if regs != nil {
			if applicable, taken := m68k.WouldBranch(line.Inst, regs); applicable && !taken {
				return 0, false
			}
		}
		return line.End(), true
	}
	return 0, false
}

// StepOver56 is the DSP equivalent of StepOver68. Subroutine calls and
// branches to the instruction itself are stepped over.
func StepOver56(line Line56) (next uint32, over bool) {
	if dsp56.IsSubroutine(line.Inst) {
		return line.End(), true
	}
	if t, reversed, ok := dsp56.BranchTarget(line.Inst, line.Address); ok && !reversed && t == line.Address {
		return line.End(), true
	}
	return 0, false
}
