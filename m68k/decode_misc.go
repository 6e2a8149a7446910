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

// control registers that can be used with movec.
var controlRegNames = map[uint16]string{
	0x000: "sfc",
	0x001: "dfc",
	0x002: "cacr",
	0x800: "usp",
	0x801: "vbr",
	0x802: "caar",
	0x803: "msp",
	0x804: "isp",
}

// validControlReg returns true if the control register exists on the CPU.
func (d *decoder) validControlReg(cr uint16) bool {
	switch cr {
	case 0x000, 0x001, 0x800, 0x801:
		return true
	case 0x002, 0x802, 0x803, 0x804:
		return d.is020()
	}
	return false
}

// miscellaneous instructions.
func (d *decoder) group4(w uint16) bool {
	mode, reg := (w>>3)&7, w&7
	r := uint8(reg)

	switch w {
	case 0x4afc:
		return d.set(ILLEGAL, SuffixNone)
	case 0x4e70:
		return d.set(RESET, SuffixNone)
	case 0x4e71:
		return d.set(NOP, SuffixNone)
	case 0x4e72:
		imm, ok := d.immediate(SuffixWord)
		if !ok {
			return false
		}
		return d.set(STOP, SuffixNone, imm)
	case 0x4e73:
		return d.set(RTE, SuffixNone)
	case 0x4e74:
		if !d.is010() {
			return false
		}
		imm, ok := d.immediate(SuffixWord)
		if !ok {
			return false
		}
		return d.set(RTD, SuffixNone, imm)
	case 0x4e75:
		return d.set(RTS, SuffixNone)
	case 0x4e76:
		return d.set(TRAPV, SuffixNone)
	case 0x4e77:
		return d.set(RTR, SuffixNone)
	case 0x4e7a, 0x4e7b:
		return d.movec(w)
	}

	if w&0xfff0 == 0x4e40 {
		return d.set(TRAP, SuffixNone, Immediate{Value: uint32(w & 0xf)})
	}

	switch w & 0xfff8 {
	case 0x4e50:
		imm, ok := d.immediate(SuffixWord)
		if !ok {
			return false
		}
		return d.set(LINK, SuffixWord, AddrReg{Reg: r}, imm)
	case 0x4808:
		if !d.is020() {
			return false
		}
		imm, ok := d.immediate(SuffixLong)
		if !ok {
			return false
		}
		return d.set(LINK, SuffixLong, AddrReg{Reg: r}, imm)
	case 0x4e58:
		return d.set(UNLK, SuffixNone, AddrReg{Reg: r})
	case 0x4e60:
		return d.set(MOVE, SuffixLong, AddrReg{Reg: r}, USP{})
	case 0x4e68:
		return d.set(MOVE, SuffixLong, USP{}, AddrReg{Reg: r})
	case 0x4840:
		return d.set(SWAP, SuffixNone, DataReg{Reg: r})
	case 0x4848:
		if !d.is010() {
			return false
		}
		return d.set(BKPT, SuffixNone, Immediate{Value: uint32(r)})
	case 0x4880:
		return d.set(EXT, SuffixWord, DataReg{Reg: r})
	case 0x48c0:
		return d.set(EXT, SuffixLong, DataReg{Reg: r})
	case 0x49c0:
		if !d.is020() {
			return false
		}
		return d.set(EXTB, SuffixLong, DataReg{Reg: r})
	}

	switch w & 0xffc0 {
	case 0x4e80:
		return d.unary(w, JSR, SuffixNone, eaControl)
	case 0x4ec0:
		return d.unary(w, JMP, SuffixNone, eaControl)
	case 0x4840:
		return d.unary(w, PEA, SuffixNone, eaControl)
	case 0x4800:
		return d.unary(w, NBCD, SuffixNone, eaDataAlt)
	case 0x4ac0:
		return d.unary(w, TAS, SuffixNone, eaDataAlt)
	case 0x40c0:
		dst, ok := d.ea(mode, reg, SuffixWord, eaDataAlt)
		if !ok {
			return false
		}
		return d.set(MOVE, SuffixWord, SR{}, dst)
	case 0x42c0:
		if !d.is010() {
			return false
		}
		dst, ok := d.ea(mode, reg, SuffixWord, eaDataAlt)
		if !ok {
			return false
		}
		return d.set(MOVE, SuffixWord, CCR{}, dst)
	case 0x44c0:
		src, ok := d.ea(mode, reg, SuffixWord, eaData)
		if !ok {
			return false
		}
		return d.set(MOVE, SuffixWord, src, CCR{})
	case 0x46c0:
		src, ok := d.ea(mode, reg, SuffixWord, eaData)
		if !ok {
			return false
		}
		return d.set(MOVE, SuffixWord, src, SR{})
	case 0x4c00:
		return d.mulLong(w)
	case 0x4c40:
		return d.divLong(w)
	}

	if w&0xfb80 == 0x4880 {
		return d.movem(w)
	}

	switch w & 0xf1c0 {
	case 0x41c0:
		src, ok := d.ea(mode, reg, SuffixLong, eaControl)
		if !ok {
			return false
		}
		return d.set(LEA, SuffixNone, src, AddrReg{Reg: uint8((w >> 9) & 7)})
	case 0x4180:
		return d.chk(w, SuffixWord)
	case 0x4100:
		if !d.is020() {
			return false
		}
		return d.chk(w, SuffixLong)
	}

	size, ok := sizeField(w)
	if !ok {
		return false
	}

	switch w & 0xff00 {
	case 0x4000:
		return d.unary(w, NEGX, size, eaDataAlt)
	case 0x4200:
		return d.unary(w, CLR, size, eaDataAlt)
	case 0x4400:
		return d.unary(w, NEG, size, eaDataAlt)
	case 0x4600:
		return d.unary(w, NOT, size, eaDataAlt)
	case 0x4a00:
		allowed := eaDataAlt
		if d.is020() {
			allowed = eaAll
			if size == SuffixByte {
				allowed &^= eaAn
			}
		}
		return d.unary(w, TST, size, allowed)
	}

	return false
}

// unary decodes an instruction with a single effective address operand.
func (d *decoder) unary(w uint16, op Opcode, size Suffix, allowed eaMask) bool {
	dst, ok := d.ea((w>>3)&7, w&7, size, allowed)
	if !ok {
		return false
	}
	return d.set(op, size, dst)
}

func (d *decoder) chk(w uint16, size Suffix) bool {
	src, ok := d.ea((w>>3)&7, w&7, size, eaData)
	if !ok {
		return false
	}
	return d.set(CHK, size, src, DataReg{Reg: uint8((w >> 9) & 7)})
}

func (d *decoder) movec(w uint16) bool {
	if !d.is010() {
		return false
	}

	ext, ok := d.r.ReadWord()
	if !ok {
		return false
	}

	cr := ext & 0xfff
	if !d.validControlReg(cr) {
		return false
	}

	rn := regOperand(ext >> 12)
	if w&1 == 0 {
		return d.set(MOVEC, SuffixNone, ControlReg{Code: cr}, rn)
	}
	return d.set(MOVEC, SuffixNone, rn, ControlReg{Code: cr})
}

// reverse the bits of a movem mask. the mask for the predecrement mode has d0
// in bit 15.
func reverseMask(m uint16) uint16 {
	var r uint16
	for i := 0; i < 16; i++ {
		if m&(1<<i) != 0 {
			r |= 1 << (15 - i)
		}
	}
	return r
}

func (d *decoder) movem(w uint16) bool {
	mode, reg := (w>>3)&7, w&7

	size := SuffixWord
	if w&0x0040 != 0 {
		size = SuffixLong
	}

	mask, ok := d.r.ReadWord()
	if !ok {
		return false
	}

	// memory to registers
	if w&0x0400 != 0 {
		src, ok := d.ea(mode, reg, size, eaControl|eaPostInc)
		if !ok {
			return false
		}
		return d.set(MOVEM, size, src, RegList{Mask: mask})
	}

	dst, ok := d.ea(mode, reg, size, eaControlAlt|eaPreDec)
	if !ok {
		return false
	}
	if mode == 4 {
		mask = reverseMask(mask)
	}
	return d.set(MOVEM, size, RegList{Mask: mask}, dst)
}

func (d *decoder) mulLong(w uint16) bool {
	if !d.is020() {
		return false
	}

	ext, ok := d.r.ReadWord()
	if !ok || ext&0x83f8 != 0 {
		return false
	}

	src, ok := d.ea((w>>3)&7, w&7, SuffixLong, eaData)
	if !ok {
		return false
	}

	op := MULU
	if ext&0x0800 != 0 {
		op = MULS
	}

	dl := uint8((ext >> 12) & 7)
	if ext&0x0400 != 0 {
		return d.set(op, SuffixLong, src, RegPair{R1: uint8(ext & 7), R2: dl})
	}
	return d.set(op, SuffixLong, src, DataReg{Reg: dl})
}

func (d *decoder) divLong(w uint16) bool {
	if !d.is020() {
		return false
	}

	ext, ok := d.r.ReadWord()
	if !ok || ext&0x83f8 != 0 {
		return false
	}

	src, ok := d.ea((w>>3)&7, w&7, SuffixLong, eaData)
	if !ok {
		return false
	}

	signed := ext&0x0800 != 0
	dq := uint8((ext >> 12) & 7)
	dr := uint8(ext & 7)

	op := DIVU
	if signed {
		op = DIVS
	}

	// quad sized dividend
	if ext&0x0400 != 0 {
		return d.set(op, SuffixLong, src, RegPair{R1: dr, R2: dq})
	}

	if dr == dq {
		return d.set(op, SuffixLong, src, DataReg{Reg: dq})
	}

	op = DIVUL
	if signed {
		op = DIVSL
	}
	return d.set(op, SuffixLong, src, RegPair{R1: dr, R2: dq})
}
