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

import (
	"github.com/hrdb/hrdisasm/buffer"
)

// decoder is the state of a single call to Decode().
type decoder struct {
	r     buffer.WordReader
	start int
	inst  Instruction
}

// Decode a single instruction at the reader's position. The reader is not
// advanced. An instruction that cannot be decoded, because the encoding is
// unknown or because there are too few words, returns an Instruction with
// the Invalid opcode and a length of one word.
func Decode(r buffer.WordReader, _ Settings) Instruction {
	d := decoder{
		r:     r.Copy(),
		start: r.Position(),
	}

	header, ok := d.r.ReadWord()
	if !ok {
		return invalidInstruction(0)
	}

	d.inst.Header = header

	if header >= 0x100000 {
		ok = d.parallel(header)
	} else {
		ok = d.nonParallel(header)
	}
	if !ok {
		return invalidInstruction(header)
	}
	d.inst.Length = d.r.Position() - d.start

	return d.inst
}

// set the opcode and operands of the instruction.
func (d *decoder) set(op Opcode, ops ...Operand) bool {
	d.inst.Opcode = op
	copy(d.inst.Op[:], ops)
	return true
}

// move sets a parallel move slot.
func (d *decoder) move(slot int, ops ...Operand) bool {
	copy(d.inst.PMove[slot].Op[:], ops)
	return true
}

// the six bit register field used by movec, movem, movep and the bit
// manipulation instructions.
var reg6Table = func() [64]Register {
	var t [64]Register
	for i := range t {
		t[i] = RegNone
	}
	copy(t[4:], []Register{X0, X1, Y0, Y1, A0, B0, A2, B2, A1, B1, A, B})
	for i := 0; i < 8; i++ {
		t[0x10+i] = R0 + Register(i)
		t[0x18+i] = N0 + Register(i)
		t[0x20+i] = M0 + Register(i)
	}
	copy(t[0x39:], []Register{SR, OMR, SP, SSH, SSL, LA, LC})
	return t
}()

func reg6(code uint32) (Operand, bool) {
	r := reg6Table[code&0x3f]
	if r == RegNone {
		return nil, false
	}
	return Reg{Reg: r}, true
}

// the five bit register field of the X and Y memory moves. the values are
// the first half of the six bit table.
func reg5(code uint32) (Operand, bool) {
	return reg6(code & 0x1f)
}

// the control register field of movec. the values are the upper half of the
// six bit table.
func regCtrl(code uint32) (Operand, bool) {
	return reg6(0x20 | code&0x1f)
}

func acc(b uint32) Operand {
	if b&1 != 0 {
		return Reg{Reg: B}
	}
	return Reg{Reg: A}
}

func regOf(rs ...Register) func(uint32) Operand {
	return func(i uint32) Operand {
		return Reg{Reg: rs[int(i)%len(rs)]}
	}
}

var (
	xRegs   = regOf(X0, X1, A, B)
	yRegs   = regOf(Y0, Y1, A, B)
	lRegs   = regOf(A10, B10, X, Y, A, B, AB, BA)
	mulRegs = [8][2]Register{
		{X0, X0}, {Y0, Y0}, {X1, X0}, {Y1, Y0},
		{X0, Y1}, {Y0, X0}, {X1, Y0}, {Y1, X1},
	}
	aluSrc = regOf(X0, Y0, X1, Y1)
)

// ea decodes the six bit MMMRRR effective address field. Mode 6 is an
// absolute address or an immediate value in the next word.
func (d *decoder) ea(field uint32, space Space, allowImm bool) (Operand, bool) {
	mode := IndirectMode((field >> 3) & 7)
	r := uint8(field & 7)

	if mode == 6 {
		switch r {
		case 0:
			ext, ok := d.r.ReadWord()
			if !ok {
				return nil, false
			}
			return AbsLong{Space: space, Addr: ext}, true
		case 4:
			if !allowImm {
				return nil, false
			}
			ext, ok := d.r.ReadWord()
			if !ok {
				return nil, false
			}
			return ImmLong{Value: ext}, true
		}
		return nil, false
	}

	return Indirect{Mode: mode, Space: space, R: r}, true
}

// memory operand in the form used by many instructions. bit 14 selects
// between an effective address and a six bit absolute short address.
func (d *decoder) eaOrAbs(w uint32, space Space, allowImm bool) (Operand, bool) {
	if w&0x4000 != 0 {
		return d.ea((w>>8)&0x3f, space, allowImm)
	}
	return AbsShort{Space: space, Addr: (w >> 8) & 0x3f}, true
}

// direction sets a move in the order given by the W bit. with W set the
// memory operand is the source.
func (d *decoder) direction(slot int, w uint32, mem Operand, reg Operand) bool {
	if w&0x8000 != 0 {
		return d.move(slot, mem, reg)
	}
	return d.move(slot, reg, mem)
}

func space(w uint32, bit uint) Space {
	if (w>>bit)&1 != 0 {
		return SpaceY
	}
	return SpaceX
}

// instructions with a data ALU operation in the low byte and a parallel
// move in the upper 16 bits.
func (d *decoder) parallel(w uint32) bool {
	if !d.alu(w & 0xff) {
		return false
	}

	switch {
	case w&0x800000 != 0:
		return d.moveXY(w)
	case w&0xf00000 == 0x100000:
		return d.moveClassI(w)
	case w&0xe00000 == 0x200000:
		return d.moveImmOrReg(w)
	case w&0xf40000 == 0x400000:
		return d.moveL(w)
	}
	return d.moveXorY(w)
}

// immediate short, register to register and address register update moves.
func (d *decoder) moveImmOrReg(w uint32) bool {
	upper := w >> 8

	switch {
	case upper == 0x2000:
		return true
	case upper&0xffe0 == 0x2040:
		return d.move(0, Indirect{Mode: IndirectMode((w >> 11) & 3), R: uint8((w >> 8) & 7)})
	case upper&0xfc00 == 0x2000:
		src, ok := reg5(w >> 13)
		if !ok {
			return false
		}
		dst, ok := reg5(w >> 8)
		if !ok {
			return false
		}
		return d.move(0, src, dst)
	}

	dst, ok := reg5(w >> 16)
	if !ok {
		return false
	}
	return d.move(0, ImmShort{Value: (w >> 8) & 0xff}, dst)
}

// X or Y memory move.
func (d *decoder) moveXorY(w uint32) bool {
	reg, ok := reg5(((w >> 16) & 7) | ((w >> 17) & 0x18))
	if !ok {
		return false
	}
	read := w&0x8000 != 0
	mem, ok := d.eaOrAbs(w, space(w, 19), read)
	if !ok {
		return false
	}
	return d.direction(0, w, mem, reg)
}

// long memory move of a register pair.
func (d *decoder) moveL(w uint32) bool {
	reg := lRegs(((w >> 17) & 4) | ((w >> 16) & 3))
	mem, ok := d.eaOrAbs(w, SpaceL, false)
	if !ok {
		return false
	}
	return d.direction(0, w, mem, reg)
}

// X:R and R:Y moves with a memory move in one space and a register move in
// place of the other.
func (d *decoder) moveClassI(w uint32) bool {
	read := w&0x8000 != 0

	if w&0x4000 == 0 {
		mem, ok := d.ea((w>>8)&0x3f, SpaceX, read)
		if !ok {
			return false
		}
		d.direction(0, w, mem, xRegs((w>>18)&3))
		return d.move(1, acc(w>>17), regOf(Y0, Y1)((w>>16)&1))
	}

	mem, ok := d.ea((w>>8)&0x3f, SpaceY, read)
	if !ok {
		return false
	}
	d.move(0, acc(w>>19), regOf(X0, X1)((w>>18)&1))
	return d.direction(1, w, mem, yRegs((w>>16)&3))
}

// xyModes maps the two bit mode field of an XY move to the indirect mode.
var xyModes = [4]IndirectMode{NoUpdate, PostIncN, PostDec, PostInc}

// simultaneous X and Y memory moves. the Y move uses an address register
// from the other bank to the X move.
func (d *decoder) moveXY(w uint32) bool {
	xr := uint8((w >> 8) & 7)
	yr := uint8((w >> 13) & 3)
	if xr < 4 {
		yr += 4
	}

	xmem := Indirect{Mode: xyModes[(w>>11)&3], Space: SpaceX, R: xr}
	ymem := Indirect{Mode: xyModes[(w>>20)&3], Space: SpaceY, R: yr}

	d.direction(0, w, xmem, xRegs((w>>18)&3))

	// the W bit of the Y move is bit 22
	return d.direction(1, w>>7, ymem, yRegs((w>>16)&3))
}

// alu decodes the data ALU operation in the low byte of a parallel
// instruction.
func (d *decoder) alu(b uint32) bool {
	dst := acc(b >> 3)
	other := acc((b >> 3) ^ 1)
	kkk := b & 7

	if b&0x80 != 0 {
		pair := mulRegs[(b>>4)&7]
		d.inst.Neg = b&0x04 != 0
		op := [4]Opcode{MPY, MPYR, MAC, MACR}[b&3]
		return d.set(op, Reg{Reg: pair[0]}, Reg{Reg: pair[1]}, dst)
	}

	switch jjj := (b >> 4) & 7; jjj {
	case 0:
		switch kkk {
		case 0:
			if b != 0 {
				return false
			}
			return d.set(MOVE)
		case 3:
			return d.set(TST, dst)
		case 4:
			return false
		}
		op := [8]Opcode{MOVE, TFR, ADDR, TST, Invalid, CMP, SUBR, CMPM}[kkk]
		return d.set(op, other, dst)

	case 1:
		switch kkk {
		case 1:
			return d.set(RND, dst)
		case 3:
			return d.set(CLR, dst)
		case 5:
			return false
		case 7:
			return d.set(NOT, dst)
		}
		op := [8]Opcode{ADD, RND, ADDL, CLR, SUB, Invalid, SUBL, NOT}[kkk]
		return d.set(op, other, dst)

	case 2, 3:
		src := Reg{Reg: X}
		shifts := [4]Opcode{ASR, LSR, ABS, ROR}
		if jjj == 3 {
			src = Reg{Reg: Y}
			shifts = [4]Opcode{ASL, LSL, NEG, ROL}
		}
		switch kkk {
		case 2:
			return d.set(shifts[0], dst)
		case 3:
			return d.set(shifts[1], dst)
		case 6:
			return d.set(shifts[2], dst)
		case 7:
			return d.set(shifts[3], dst)
		}
		op := [8]Opcode{ADD, ADC, Invalid, Invalid, SUB, SBC}[kkk]
		return d.set(op, src, dst)
	}

	op := [8]Opcode{ADD, TFR, OR, EOR, SUB, CMP, AND, CMPM}[kkk]
	return d.set(op, aluSrc((b>>4)&3), dst)
}
