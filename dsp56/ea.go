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

// EffectiveAddress returns the address a memory operand refers to. Register
// and immediate operands have no address.
//
// Indirect operands only resolve if useRegs is true and regs is not nil. The
// address is the one accessed by the instruction, so post-update modes return
// the unmodified Rn. Addresses are 16 bits.
func EffectiveAddress(op Operand, useRegs bool, regs *Registers, _ uint32) (uint32, bool) {
	useRegs = useRegs && regs != nil

	switch op := op.(type) {
	case AbsShort:
		return op.Addr & 0xffff, true
	case AbsLong:
		return op.Addr & 0xffff, true
	case IOShort:
		return (IOBase + op.Addr) & 0xffff, true
	case Indirect:
		if !useRegs {
			return 0, false
		}
		r := regs.rn(op.R)
		switch op.Mode {
		case IndexedN:
			r += regs.nn(op.R)
		case PreDec:
			r--
		}
		return uint32(r) & 0xffff, true
	}

	return 0, false
}
