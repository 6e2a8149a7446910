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

// EffectiveAddress returns the address an operand refers to. Register direct,
// immediate, register list and status register operands have no address.
//
// Operands that depend on register values only resolve if useRegs is true
// and regs is not nil. PC relative operands are resolved relative to addr,
// which should be the address of the instruction.
//
// Of the full extension operands, only NoMemoryIndirect is fully resolved.
// The other forms return the address of the first level pointer when
// registers are available.
func EffectiveAddress(op Operand, useRegs bool, regs *Registers, addr uint32) (uint32, bool) {
	useRegs = useRegs && regs != nil

	switch op := op.(type) {
	case Indirect:
		if !useRegs {
			return 0, false
		}
		return regs.A(op.Reg), true
	case PostInc:
		if !useRegs {
			return 0, false
		}
		return regs.A(op.Reg), true
	case PreDec:
		if !useRegs {
			return 0, false
		}
		return regs.A(op.Reg), true
	case Disp16:
		if !useRegs {
			return 0, false
		}
		return regs.A(op.Reg) + uint32(int32(op.Disp)), true
	case Indexed:
		if !useRegs {
			return 0, false
		}
		return regs.A(op.Reg) + scaledIndex(op.Index, regs) + uint32(int32(op.Disp)), true
	case AbsWord:
		return uint32(int32(int16(op.Addr))), true
	case AbsLong:
		return op.Addr, true
	case PCDisp:
		return addr + uint32(op.Disp), true
	case PCIndexed:
		ea := addr + uint32(op.Disp)
		if useRegs {
			ea += scaledIndex(op.Index, regs)
		}
		return ea, true
	case Branch:
		return addr + uint32(op.Disp), true
	case USP:
		if !useRegs {
			return 0, false
		}
		return regs.Get(RegUSP), true
	case NoMemoryIndirect:
		return fullExtAddress(op.FullExt, true, useRegs, regs, addr)
	case PreIndexed:
		return fullExtAddress(op.FullExt, true, useRegs, regs, addr)
	case PostIndexed:
		return fullExtAddress(op.FullExt, false, useRegs, regs, addr)
	case MemoryIndirect:
		return fullExtAddress(op.FullExt, false, useRegs, regs, addr)
	}

	return 0, false
}

// scaledIndex is the value of the index register, sign extended if it is a
// word index, multiplied by the scale.
func scaledIndex(idx Index, regs *Registers) uint32 {
	if idx.Reg == IndexNone {
		return 0
	}
	v := regs.index(idx.Reg)
	if !idx.Long {
		v = uint32(int32(int16(v)))
	}
	return v << idx.Scale
}

// fullExtAddress is the base plus base displacement, with the index added if
// withIndex is true. without registers only a PC base can be resolved, in
// which case the index is ignored.
func fullExtAddress(fe FullExt, withIndex bool, useRegs bool, regs *Registers, addr uint32) (uint32, bool) {
	pcBase := fe.Used[1] && fe.Base == IndexPC

	if !useRegs {
		if pcBase {
			return addr + uint32(fe.BaseDisp), true
		}
		return 0, false
	}

	ea := uint32(fe.BaseDisp)
	if pcBase {
		ea += addr
	} else if fe.Used[1] {
		ea += regs.index(fe.Base)
	}

	if withIndex && fe.Used[2] {
		ea += scaledIndex(fe.Index, regs)
	}

	return ea, true
}
