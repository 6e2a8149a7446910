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

// instructions without a parallel move. the class II X:R and R:Y moves share
// the encoding space with movep.
func (d *decoder) nonParallel(w uint32) bool {
	switch w {
	case 0x000000:
		return d.set(NOP)
	case 0x000004:
		return d.set(RTI)
	case 0x000005:
		return d.set(ILLEGAL)
	case 0x000006:
		return d.set(SWI)
	case 0x00000c:
		return d.set(RTS)
	case 0x000084:
		return d.set(RESET)
	case 0x000086:
		return d.set(WAIT)
	case 0x000087:
		return d.set(STOP)
	case 0x00008c:
		return d.set(ENDDO)
	}

	switch w >> 16 {
	case 0x00:
		return d.logicImm(w)
	case 0x01:
		return d.divNorm(w)
	case 0x02, 0x03:
		return d.tcc(w)
	case 0x04:
		if w&0xffe0f0 == 0x044010 {
			return d.lua(w)
		}
		return d.movec(w)
	case 0x05:
		return d.movec(w)
	case 0x06:
		return d.loop(w)
	case 0x07:
		return d.movem(w)
	case 0x08, 0x09:
		if w&0x4000 == 0 {
			return d.moveClassII(w)
		}
		return d.movep(w)
	case 0x0a, 0x0b:
		if (w>>14)&3 == 3 && w&0x80 != 0 {
			return d.jump(w)
		}
		return d.bitOp(w)
	case 0x0c, 0x0d, 0x0e, 0x0f:
		return d.jumpShort(w)
	}

	return false
}

// andi and ori to one of the three status registers.
func (d *decoder) logicImm(w uint32) bool {
	var op Opcode
	switch w & 0xfc {
	case 0xb8:
		op = ANDI
	case 0xf8:
		op = ORI
	default:
		return false
	}

	var dst Register
	switch w & 3 {
	case 0:
		dst = MR
	case 1:
		dst = CCR
	case 2:
		dst = OMR
	default:
		return false
	}

	return d.set(op, ImmShort{Value: (w >> 8) & 0xff}, Reg{Reg: dst})
}

func (d *decoder) divNorm(w uint32) bool {
	switch {
	case w&0xffffc7 == 0x018040:
		return d.set(DIV, aluSrc((w>>4)&3), acc(w>>3))
	case w&0xfff8f7 == 0x01d815:
		return d.set(NORM, Reg{Reg: R0 + Register((w>>8)&7)}, acc(w>>3))
	}
	return false
}

// transfer on condition. the second form also transfers between address
// registers.
func (d *decoder) tcc(w uint32) bool {
	if w&0x80 != 0 {
		return false
	}

	var src Operand
	switch jjj := (w >> 4) & 7; jjj {
	case 0:
		src = acc((w >> 3) ^ 1)
	case 4, 5, 6, 7:
		src = aluSrc(jjj & 3)
	default:
		return false
	}

	op := TCC + Opcode((w>>12)&0xf)

	if w>>16 == 0x02 {
		if w&0x0f07 != 0 {
			return false
		}
		return d.set(op, src, acc(w>>3))
	}

	if w&0x0800 != 0 {
		return false
	}
	d.inst.Op2[0] = Reg{Reg: R0 + Register((w>>8)&7)}
	d.inst.Op2[1] = Reg{Reg: R0 + Register(w&7)}
	return d.set(op, src, acc(w>>3))
}

// load updated address.
func (d *decoder) lua(w uint32) bool {
	src := Indirect{Mode: IndirectMode((w >> 11) & 3), R: uint8((w >> 8) & 7)}
	dst := Reg{Reg: R0 + Register(w&7)}
	if w&0x08 != 0 {
		dst = Reg{Reg: N0 + Register(w&7)}
	}
	return d.set(LUA, src, dst)
}

// move to and from the control registers.
func (d *decoder) movec(w uint32) bool {
	ctrl, ok := regCtrl(w)
	if !ok {
		return false
	}

	if w>>16 == 0x04 {
		if w&0x4000 == 0 || w&0xe0 != 0xa0 {
			return false
		}
		reg, ok := reg6(w >> 8)
		if !ok {
			return false
		}
		if w&0x8000 != 0 {
			return d.set(MOVEC, reg, ctrl)
		}
		return d.set(MOVEC, ctrl, reg)
	}

	if w&0xe0 == 0xa0 {
		return d.set(MOVEC, ImmShort{Value: (w >> 8) & 0xff}, ctrl)
	}
	if w&0xa0 != 0x20 {
		return false
	}

	read := w&0x8000 != 0
	mem, ok := d.eaOrAbs(w, space(w, 6), read)
	if !ok {
		return false
	}
	if read {
		return d.set(MOVEC, mem, ctrl)
	}
	return d.set(MOVEC, ctrl, mem)
}

// move to and from program memory.
func (d *decoder) movem(w uint32) bool {
	switch {
	case w&0x4000 != 0 && w&0xc0 == 0x80:
	case w&0x4000 == 0 && w&0xc0 == 0x00:
	default:
		return false
	}

	reg, ok := reg6(w)
	if !ok {
		return false
	}
	read := w&0x8000 != 0
	mem, ok := d.eaOrAbs(w, SpaceP, read)
	if !ok {
		return false
	}
	if read {
		return d.set(MOVEM, mem, reg)
	}
	return d.set(MOVEM, reg, mem)
}

// move to and from a peripheral register. with W set the peripheral is the
// destination.
func (d *decoder) movep(w uint32) bool {
	pp := IOShort{Space: space(w, 16), Addr: w & 0x3f}
	read := w&0x8000 != 0

	var other Operand
	var ok bool

	switch {
	case w&0x80 != 0:
		other, ok = d.ea((w>>8)&0x3f, space(w, 6), read)
	case w&0xc0 == 0x40:
		other, ok = d.ea((w>>8)&0x3f, SpaceP, read)
	default:
		other, ok = reg6(w >> 8)
	}
	if !ok {
		return false
	}

	if read {
		return d.set(MOVEP, other, pp)
	}
	return d.set(MOVEP, pp, other)
}

// class II X:R and R:Y moves. an accumulator is stored to memory and loaded
// from an input register.
func (d *decoder) moveClassII(w uint32) bool {
	if !d.alu(w & 0xff) {
		return false
	}

	a := acc(w >> 16)

	if w&0x8000 == 0 {
		mem, ok := d.ea((w>>8)&0x3f, SpaceX, false)
		if !ok {
			return false
		}
		d.move(0, a, mem)
		return d.move(1, Reg{Reg: X0}, a)
	}

	mem, ok := d.ea((w>>8)&0x3f, SpaceY, false)
	if !ok {
		return false
	}
	d.move(0, Reg{Reg: Y0}, a)
	return d.move(1, a, mem)
}

// do and rep. do is followed by the address of the last word of the loop.
func (d *decoder) loop(w uint32) bool {
	op := DO
	if w&0x20 != 0 {
		op = REP
	}

	var count Operand

	if w&0x80 != 0 {
		if w&0x50 != 0 {
			return false
		}
		count = ImmShort{Value: (w&0xf)<<8 | (w>>8)&0xff}
	} else {
		if w&0x1f != 0 {
			return false
		}

		var ok bool
		switch (w >> 14) & 3 {
		case 0:
			count = AbsShort{Space: space(w, 6), Addr: (w >> 8) & 0x3f}
		case 1:
			count, ok = d.ea((w>>8)&0x3f, space(w, 6), false)
			if !ok {
				return false
			}
		case 3:
			if w&0x40 != 0 {
				return false
			}
			count, ok = reg6(w >> 8)
			if !ok {
				return false
			}
		default:
			return false
		}
	}

	if op == REP {
		return d.set(REP, count)
	}

	ext, ok := d.r.ReadWord()
	if !ok {
		return false
	}
	// the encoded word is the last address of the loop. the operand is the
	// first address after it
	return d.set(DO, count, AbsLong{Addr: (ext + 1) & 0xffff})
}

// jmp, jsr, Jcc and JScc with an effective address.
func (d *decoder) jump(w uint32) bool {
	var op Opcode
	switch {
	case w&0xff == 0x80:
		op = JMP
		if w>>16 == 0x0b {
			op = JSR
		}
	case w&0xf0 == 0xa0:
		op = JCC
		if w>>16 == 0x0b {
			op = JSCC
		}
		op += Opcode(w & 0xf)
	default:
		return false
	}

	target, ok := d.ea((w>>8)&0x3f, SpaceNone, false)
	if !ok {
		return false
	}
	return d.set(op, target)
}

// jmp, jsr, Jcc and JScc with a twelve bit absolute address.
func (d *decoder) jumpShort(w uint32) bool {
	target := AbsShort{Addr: w & 0xfff}
	cc := Opcode((w >> 12) & 0xf)

	switch w >> 16 {
	case 0x0c, 0x0d:
		if cc != 0 {
			return false
		}
		if w>>16 == 0x0c {
			return d.set(JMP, target)
		}
		return d.set(JSR, target)
	case 0x0e:
		return d.set(JCC+cc, target)
	}
	return d.set(JSCC+cc, target)
}

// bit manipulation and the jump on bit instructions.
func (d *decoder) bitOp(w uint32) bool {
	bit := ImmShort{Value: w & 0x1f}
	upper := w >> 16
	set := w&0x20 != 0

	var src Operand
	var jump bool

	if (w>>14)&3 == 3 {
		var ok bool
		src, ok = reg6(w >> 8)
		if !ok {
			return false
		}
		switch (w >> 6) & 3 {
		case 0:
			jump = true
		case 1:
			jump = false
		default:
			return false
		}
	} else {
		sp := space(w, 6)
		switch (w >> 14) & 3 {
		case 0:
			src = AbsShort{Space: sp, Addr: (w >> 8) & 0x3f}
		case 1:
			var ok bool
			src, ok = d.ea((w>>8)&0x3f, sp, false)
			if !ok {
				return false
			}
		case 2:
			src = IOShort{Space: sp, Addr: (w >> 8) & 0x3f}
		}
		jump = w&0x80 != 0
	}

	if !jump {
		ops := [2][2]Opcode{{BCLR, BSET}, {BCHG, BTST}}[upper&1]
		op := ops[0]
		if set {
			op = ops[1]
		}
		return d.set(op, bit, src)
	}

	ops := [2][2]Opcode{{JCLR, JSET}, {JSCLR, JSSET}}[upper&1]
	op := ops[0]
	if set {
		op = ops[1]
	}

	ext, ok := d.r.ReadWord()
	if !ok {
		return false
	}
	return d.set(op, bit, src, AbsLong{Addr: ext & 0xffff})
}
