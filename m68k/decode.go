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

import (
	"github.com/hrdb/hrdisasm/buffer"
)

// decoder is the state of a single call to Decode().
type decoder struct {
	r     buffer.Reader
	start int
	cpu   CPUType
	inst  Instruction
}

// Decode a single instruction at the reader's position. The reader is not
// advanced. An instruction that cannot be decoded, either because the
// encoding is unknown, is illegal for the CPU type or because there are too
// few bytes, returns an Instruction with the None opcode and a length of two
// bytes.
func Decode(r buffer.Reader, s Settings) Instruction {
	d := decoder{
		r:     r.Copy(),
		start: r.Position(),
		cpu:   s.CPU,
	}

	header, ok := d.r.ReadWord()
	if !ok {
		b, _ := d.r.ReadUint8()
		return noneInstruction(uint16(b) << 8)
	}

	d.inst.Header = header
	if !d.decode(header) {
		return noneInstruction(header)
	}
	d.inst.Length = d.r.Position() - d.start

	return d.inst
}

// offset is the position of the next extension word relative to the start
// of the instruction. this is the value of the PC used by PC relative modes.
func (d *decoder) offset() int32 {
	return int32(d.r.Position() - d.start)
}

func (d *decoder) is010() bool {
	return d.cpu >= CPU68010
}

func (d *decoder) is020() bool {
	return d.cpu >= CPU68020
}

// set the opcode, suffix and operands of the instruction.
func (d *decoder) set(op Opcode, sfx Suffix, ops ...Operand) bool {
	d.inst.Opcode = op
	d.inst.Suffix = sfx
	copy(d.inst.Op[:], ops)
	return true
}

// sizeField decodes the common size field in bits 7 and 6.
func sizeField(w uint16) (Suffix, bool) {
	switch (w >> 6) & 3 {
	case 0:
		return SuffixByte, true
	case 1:
		return SuffixWord, true
	case 2:
		return SuffixLong, true
	}
	return SuffixNone, false
}

// register operand from a four bit field where bit 3 selects the address
// registers.
func regOperand(r uint16) Operand {
	if r&8 != 0 {
		return AddrReg{Reg: uint8(r & 7)}
	}
	return DataReg{Reg: uint8(r & 7)}
}

func (d *decoder) decode(w uint16) bool {
	switch w >> 12 {
	case 0x0:
		return d.group0(w)
	case 0x1, 0x2, 0x3:
		return d.move(w)
	case 0x4:
		return d.group4(w)
	case 0x5:
		return d.group5(w)
	case 0x6:
		return d.branch(w)
	case 0x7:
		return d.moveq(w)
	case 0x8:
		return d.group8(w)
	case 0x9:
		return d.addSub(w, SUB, SUBA, SUBX)
	case 0xb:
		return d.groupB(w)
	case 0xc:
		return d.groupC(w)
	case 0xd:
		return d.addSub(w, ADD, ADDA, ADDX)
	case 0xe:
		return d.groupE(w)
	}

	// line-A and line-F
	return false
}

// bit manipulation, MOVEP and immediate.
func (d *decoder) group0(w uint16) bool {
	if w&0x0100 != 0 {
		if (w>>3)&7 == 1 {
			return d.movep(w)
		}
		return d.bitDynamic(w)
	}

	switch (w >> 8) & 0xf {
	case 0x0:
		return d.immOp(w, ORI)
	case 0x2:
		return d.immOp(w, ANDI)
	case 0x4:
		return d.immOp(w, SUBI)
	case 0x6:
		return d.immOp(w, ADDI)
	case 0x8:
		return d.bitStatic(w)
	case 0xa:
		return d.immOp(w, EORI)
	case 0xc:
		return d.immOp(w, CMPI)
	case 0xe:
		if (w>>6)&3 == 3 {
			return d.cas(w)
		}
		return d.moves(w)
	}

	return false
}

var bitOps = [4]Opcode{BTST, BCHG, BCLR, BSET}

func (d *decoder) immOp(w uint16, op Opcode) bool {
	mode, reg := (w>>3)&7, w&7

	if (w>>6)&3 == 3 {
		switch op {
		case ORI, ANDI, SUBI:
			return d.cmp2(w)
		case EORI, CMPI:
			return d.cas(w)
		}
		return false
	}

	size, _ := sizeField(w)

	// to CCR and to SR forms
	if w&0x3f == 0x3c && (op == ORI || op == ANDI || op == EORI) {
		imm, ok := d.immediate(size)
		if !ok {
			return false
		}
		switch size {
		case SuffixByte:
			return d.set(op, size, imm, CCR{})
		case SuffixWord:
			return d.set(op, size, imm, SR{})
		}
		return false
	}

	imm, ok := d.immediate(size)
	if !ok {
		return false
	}

	allowed := eaDataAlt
	if op == CMPI && d.is020() {
		allowed = eaData &^ eaImm
	}
	dst, ok := d.ea(mode, reg, size, allowed)
	if !ok {
		return false
	}

	return d.set(op, size, imm, dst)
}

func (d *decoder) bitStatic(w uint16) bool {
	mode, reg := (w>>3)&7, w&7
	op := bitOps[(w>>6)&3]

	n, ok := d.r.ReadWord()
	if !ok {
		return false
	}

	allowed := eaDataAlt
	if op == BTST {
		allowed = eaData &^ eaImm
	}
	dst, ok := d.ea(mode, reg, SuffixByte, allowed)
	if !ok {
		return false
	}

	return d.set(op, SuffixNone, Immediate{Value: uint32(n & 0xff)}, dst)
}

func (d *decoder) bitDynamic(w uint16) bool {
	mode, reg := (w>>3)&7, w&7
	op := bitOps[(w>>6)&3]

	allowed := eaDataAlt
	if op == BTST {
		allowed = eaData
	}
	dst, ok := d.ea(mode, reg, SuffixByte, allowed)
	if !ok {
		return false
	}

	return d.set(op, SuffixNone, DataReg{Reg: uint8((w >> 9) & 7)}, dst)
}

func (d *decoder) movep(w uint16) bool {
	disp, ok := d.r.ReadWord()
	if !ok {
		return false
	}

	mem := Disp16{Reg: uint8(w & 7), Disp: int16(disp)}
	dn := DataReg{Reg: uint8((w >> 9) & 7)}

	switch (w >> 6) & 7 {
	case 4:
		return d.set(MOVEP, SuffixWord, mem, dn)
	case 5:
		return d.set(MOVEP, SuffixLong, mem, dn)
	case 6:
		return d.set(MOVEP, SuffixWord, dn, mem)
	case 7:
		return d.set(MOVEP, SuffixLong, dn, mem)
	}
	return false
}

func (d *decoder) moves(w uint16) bool {
	if !d.is010() {
		return false
	}
	mode, reg := (w>>3)&7, w&7

	size, ok := sizeField(w)
	if !ok {
		return false
	}

	ext, ok := d.r.ReadWord()
	if !ok {
		return false
	}

	mem, ok := d.ea(mode, reg, size, eaMemAlt)
	if !ok {
		return false
	}

	rn := regOperand(ext >> 12)
	if ext&0x0800 != 0 {
		return d.set(MOVES, size, rn, mem)
	}
	return d.set(MOVES, size, mem, rn)
}

func (d *decoder) cmp2(w uint16) bool {
	if !d.is020() {
		return false
	}
	mode, reg := (w>>3)&7, w&7

	var size Suffix
	switch (w >> 9) & 3 {
	case 0:
		size = SuffixByte
	case 1:
		size = SuffixWord
	case 2:
		size = SuffixLong
	default:
		return false
	}

	ext, ok := d.r.ReadWord()
	if !ok {
		return false
	}

	src, ok := d.ea(mode, reg, size, eaControl)
	if !ok {
		return false
	}

	op := CMP2
	if ext&0x0800 != 0 {
		op = CHK2
	}

	return d.set(op, size, src, regOperand(ext>>12))
}

func (d *decoder) cas(w uint16) bool {
	if !d.is020() {
		return false
	}
	mode, reg := (w>>3)&7, w&7

	var size Suffix
	switch (w >> 9) & 3 {
	case 1:
		size = SuffixByte
	case 2:
		size = SuffixWord
	case 3:
		size = SuffixLong
	default:
		return false
	}

	if w&0x3f == 0x3c {
		if size == SuffixByte {
			return false
		}
		return d.cas2(size)
	}

	ext, ok := d.r.ReadWord()
	if !ok {
		return false
	}

	dst, ok := d.ea(mode, reg, size, eaMemAlt)
	if !ok {
		return false
	}

	dc := DataReg{Reg: uint8(ext & 7)}
	du := DataReg{Reg: uint8((ext >> 6) & 7)}

	return d.set(CAS, size, dc, du, dst)
}

func (d *decoder) cas2(size Suffix) bool {
	ext1, ok := d.r.ReadWord()
	if !ok {
		return false
	}
	ext2, ok := d.r.ReadWord()
	if !ok {
		return false
	}

	dc := RegPair{R1: uint8(ext1 & 7), R2: uint8(ext2 & 7)}
	du := RegPair{R1: uint8((ext1 >> 6) & 7), R2: uint8((ext2 >> 6) & 7)}
	rn := IndirectPair{R1: IndexReg((ext1 >> 12) & 0xf), R2: IndexReg((ext2 >> 12) & 0xf)}

	return d.set(CAS2, size, dc, du, rn)
}

func (d *decoder) move(w uint16) bool {
	mode, reg := (w>>3)&7, w&7
	dmode, dreg := (w>>6)&7, (w>>9)&7

	var size Suffix
	switch w >> 12 {
	case 1:
		size = SuffixByte
	case 2:
		size = SuffixLong
	case 3:
		size = SuffixWord
	}

	allowed := eaAll
	if size == SuffixByte {
		allowed &^= eaAn
	}
	src, ok := d.ea(mode, reg, size, allowed)
	if !ok {
		return false
	}

	if dmode == 1 {
		if size == SuffixByte {
			return false
		}
		return d.set(MOVEA, size, src, AddrReg{Reg: uint8(dreg)})
	}

	dst, ok := d.ea(dmode, dreg, size, eaDataAlt)
	if !ok {
		return false
	}

	return d.set(MOVE, size, src, dst)
}

func (d *decoder) moveq(w uint16) bool {
	if w&0x0100 != 0 {
		return false
	}
	return d.set(MOVEQ, SuffixNone, Immediate{Value: uint32(int32(int8(w & 0xff)))}, DataReg{Reg: uint8((w >> 9) & 7)})
}

// Bcc, BRA and BSR.
func (d *decoder) branch(w uint16) bool {
	op := BRA + Opcode((w>>8)&0xf)
	pc := d.offset()

	switch disp := int8(w & 0xff); disp {
	case 0:
		ext, ok := d.r.ReadWord()
		if !ok {
			return false
		}
		return d.set(op, SuffixWord, Branch{Disp: pc + int32(int16(ext))})
	case -1:
		if !d.is020() {
			return false
		}
		ext, ok := d.r.ReadLong()
		if !ok {
			return false
		}
		return d.set(op, SuffixLong, Branch{Disp: pc + int32(ext)})
	default:
		return d.set(op, SuffixShort, Branch{Disp: pc + int32(disp)})
	}
}

// ADDQ, SUBQ, Scc, DBcc and TRAPcc.
func (d *decoder) group5(w uint16) bool {
	mode, reg := (w>>3)&7, w&7
	cc := Opcode((w >> 8) & 0xf)

	if (w>>6)&3 == 3 {
		if mode == 1 {
			pc := d.offset()
			disp, ok := d.r.ReadWord()
			if !ok {
				return false
			}
			return d.set(DBT+cc, SuffixNone, DataReg{Reg: uint8(reg)}, Branch{Disp: pc + int32(int16(disp))})
		}

		if mode == 7 && reg >= 2 && reg <= 4 {
			if !d.is020() {
				return false
			}
			switch reg {
			case 2:
				imm, ok := d.immediate(SuffixWord)
				if !ok {
					return false
				}
				return d.set(TRAPT+cc, SuffixWord, imm)
			case 3:
				imm, ok := d.immediate(SuffixLong)
				if !ok {
					return false
				}
				return d.set(TRAPT+cc, SuffixLong, imm)
			}
			return d.set(TRAPT+cc, SuffixNone)
		}

		dst, ok := d.ea(mode, reg, SuffixByte, eaDataAlt)
		if !ok {
			return false
		}
		return d.set(ST+cc, SuffixNone, dst)
	}

	size, _ := sizeField(w)

	data := uint32((w >> 9) & 7)
	if data == 0 {
		data = 8
	}

	allowed := eaAlterable
	if size == SuffixByte {
		allowed &^= eaAn
	}
	dst, ok := d.ea(mode, reg, size, allowed)
	if !ok {
		return false
	}

	op := ADDQ
	if w&0x0100 != 0 {
		op = SUBQ
	}
	return d.set(op, size, Immediate{Value: data}, dst)
}

// OR, DIVU, DIVS, SBCD, PACK and UNPK.
func (d *decoder) group8(w uint16) bool {
	mode := (w >> 3) & 7

	switch opmode := (w >> 6) & 7; {
	case opmode == 3:
		return d.mulDivWord(w, DIVU)
	case opmode == 7:
		return d.mulDivWord(w, DIVS)
	case opmode == 4 && mode <= 1:
		return d.bcd(w, SBCD)
	case opmode == 5 && mode <= 1:
		return d.packUnpk(w, PACK)
	case opmode == 6 && mode <= 1:
		return d.packUnpk(w, UNPK)
	}

	return d.logic(w, OR)
}

// AND, MULU, MULS, ABCD and EXG.
func (d *decoder) groupC(w uint16) bool {
	mode := (w >> 3) & 7
	rx, ry := uint8((w>>9)&7), uint8(w&7)

	switch w & 0xf1f8 {
	case 0xc140:
		return d.set(EXG, SuffixNone, DataReg{Reg: rx}, DataReg{Reg: ry})
	case 0xc148:
		return d.set(EXG, SuffixNone, AddrReg{Reg: rx}, AddrReg{Reg: ry})
	case 0xc188:
		return d.set(EXG, SuffixNone, DataReg{Reg: rx}, AddrReg{Reg: ry})
	}

	switch opmode := (w >> 6) & 7; {
	case opmode == 3:
		return d.mulDivWord(w, MULU)
	case opmode == 7:
		return d.mulDivWord(w, MULS)
	case opmode == 4 && mode <= 1:
		return d.bcd(w, ABCD)
	}

	return d.logic(w, AND)
}

// OR and AND share an encoding. the direction bit selects between <ea>,Dn and
// Dn,<ea>.
func (d *decoder) logic(w uint16, op Opcode) bool {
	mode, reg := (w>>3)&7, w&7
	dn := DataReg{Reg: uint8((w >> 9) & 7)}

	size, ok := sizeField(w)
	if !ok {
		return false
	}

	if w&0x0100 == 0 {
		src, ok := d.ea(mode, reg, size, eaData)
		if !ok {
			return false
		}
		return d.set(op, size, src, dn)
	}

	dst, ok := d.ea(mode, reg, size, eaMemAlt)
	if !ok {
		return false
	}
	return d.set(op, size, dn, dst)
}

func (d *decoder) mulDivWord(w uint16, op Opcode) bool {
	mode, reg := (w>>3)&7, w&7
	src, ok := d.ea(mode, reg, SuffixWord, eaData)
	if !ok {
		return false
	}
	return d.set(op, SuffixWord, src, DataReg{Reg: uint8((w >> 9) & 7)})
}

// ABCD, SBCD, ADDX and SUBX have a register form and a predecrement form.
func (d *decoder) regOrPreDec(w uint16, op Opcode, size Suffix) bool {
	rx, ry := uint8((w>>9)&7), uint8(w&7)
	if w&0x0008 == 0 {
		return d.set(op, size, DataReg{Reg: ry}, DataReg{Reg: rx})
	}
	return d.set(op, size, PreDec{Reg: ry}, PreDec{Reg: rx})
}

func (d *decoder) bcd(w uint16, op Opcode) bool {
	return d.regOrPreDec(w, op, SuffixNone)
}

func (d *decoder) packUnpk(w uint16, op Opcode) bool {
	if !d.is020() {
		return false
	}
	if !d.regOrPreDec(w, op, SuffixNone) {
		return false
	}
	adj, ok := d.r.ReadWord()
	if !ok {
		return false
	}
	d.inst.Op[2] = Immediate{Value: uint32(adj)}
	return true
}

// ADD, ADDA, ADDX and the SUB equivalents.
func (d *decoder) addSub(w uint16, op, opA, opX Opcode) bool {
	mode, reg := (w>>3)&7, w&7
	opmode := (w >> 6) & 7
	rx := uint8((w >> 9) & 7)

	switch {
	case opmode == 3 || opmode == 7:
		size := SuffixWord
		if opmode == 7 {
			size = SuffixLong
		}
		src, ok := d.ea(mode, reg, size, eaAll)
		if !ok {
			return false
		}
		return d.set(opA, size, src, AddrReg{Reg: rx})
	case opmode >= 4 && mode <= 1:
		size, _ := sizeField(w)
		return d.regOrPreDec(w, opX, size)
	}

	size, _ := sizeField(w)

	if opmode < 4 {
		allowed := eaAll
		if size == SuffixByte {
			allowed &^= eaAn
		}
		src, ok := d.ea(mode, reg, size, allowed)
		if !ok {
			return false
		}
		return d.set(op, size, src, DataReg{Reg: rx})
	}

	dst, ok := d.ea(mode, reg, size, eaMemAlt)
	if !ok {
		return false
	}
	return d.set(op, size, DataReg{Reg: rx}, dst)
}

// CMP, CMPA, CMPM and EOR.
func (d *decoder) groupB(w uint16) bool {
	mode, reg := (w>>3)&7, w&7
	opmode := (w >> 6) & 7
	rx := uint8((w >> 9) & 7)

	switch {
	case opmode == 3 || opmode == 7:
		size := SuffixWord
		if opmode == 7 {
			size = SuffixLong
		}
		src, ok := d.ea(mode, reg, size, eaAll)
		if !ok {
			return false
		}
		return d.set(CMPA, size, src, AddrReg{Reg: rx})
	case opmode < 3:
		size, _ := sizeField(w)
		allowed := eaAll
		if size == SuffixByte {
			allowed &^= eaAn
		}
		src, ok := d.ea(mode, reg, size, allowed)
		if !ok {
			return false
		}
		return d.set(CMP, size, src, DataReg{Reg: rx})
	}

	size, _ := sizeField(w)
	if mode == 1 {
		return d.set(CMPM, size, PostInc{Reg: uint8(reg)}, PostInc{Reg: rx})
	}

	dst, ok := d.ea(mode, reg, size, eaDataAlt)
	if !ok {
		return false
	}
	return d.set(EOR, size, DataReg{Reg: rx}, dst)
}

var shiftOps = [4][2]Opcode{
	{ASR, ASL},
	{LSR, LSL},
	{ROXR, ROXL},
	{ROR, ROL},
}

// shifts, rotates and bitfields.
func (d *decoder) groupE(w uint16) bool {
	mode, reg := (w>>3)&7, w&7
	left := (w >> 8) & 1

	if (w>>6)&3 == 3 {
		if w&0x0800 != 0 {
			return d.bitfield(w)
		}
		dst, ok := d.ea(mode, reg, SuffixWord, eaMemAlt)
		if !ok {
			return false
		}
		return d.set(shiftOps[(w>>9)&3][left], SuffixWord, dst)
	}

	size, _ := sizeField(w)
	op := shiftOps[(w>>3)&3][left]
	dst := DataReg{Reg: uint8(reg)}

	count := (w >> 9) & 7
	if w&0x0020 != 0 {
		return d.set(op, size, DataReg{Reg: uint8(count)}, dst)
	}
	if count == 0 {
		count = 8
	}
	return d.set(op, size, Immediate{Value: uint32(count)}, dst)
}

func (d *decoder) bitfield(w uint16) bool {
	if !d.is020() {
		return false
	}
	mode, reg := (w>>3)&7, w&7
	op := BFTST + Opcode((w>>8)&7)

	ext, ok := d.r.ReadWord()
	if !ok {
		return false
	}

	bf := Bitfield{Valid: true}
	if ext&0x0800 != 0 {
		bf.OffsetIsReg = true
		bf.Offset = uint8((ext >> 6) & 7)
	} else {
		bf.Offset = uint8((ext >> 6) & 0x1f)
	}
	if ext&0x0020 != 0 {
		bf.WidthIsReg = true
		bf.Width = uint8(ext & 7)
	} else {
		bf.Width = uint8(ext & 0x1f)
		if bf.Width == 0 {
			bf.Width = 32
		}
	}

	allowed := eaDn | eaControlAlt
	switch op {
	case BFTST, BFEXTU, BFEXTS, BFFFO:
		allowed = eaDn | eaControl
	}
	target, ok := d.ea(mode, reg, SuffixNone, allowed)
	if !ok {
		return false
	}

	dn := DataReg{Reg: uint8((ext >> 12) & 7)}

	switch op {
	case BFEXTU, BFEXTS, BFFFO:
		d.inst.BF[0] = bf
		return d.set(op, SuffixNone, target, dn)
	case BFINS:
		d.inst.BF[1] = bf
		return d.set(op, SuffixNone, dn, target)
	}

	d.inst.BF[0] = bf
	return d.set(op, SuffixNone, target)
}
