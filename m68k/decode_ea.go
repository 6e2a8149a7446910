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

// eaMask is a set of addressing modes. The categories below are the ones used
// in the 68000 family programmer's reference.
type eaMask uint16

const (
	eaDn eaMask = 1 << iota
	eaAn
	eaInd
	eaPostInc
	eaPreDec
	eaDisp
	eaIdx
	eaAbsW
	eaAbsL
	eaPCDisp
	eaPCIdx
	eaImm
)

const (
	eaAll        = eaDn | eaAn | eaInd | eaPostInc | eaPreDec | eaDisp | eaIdx | eaAbsW | eaAbsL | eaPCDisp | eaPCIdx | eaImm
	eaData       = eaAll &^ eaAn
	eaMemory     = eaData &^ eaDn
	eaControl    = eaInd | eaDisp | eaIdx | eaAbsW | eaAbsL | eaPCDisp | eaPCIdx
	eaAlterable  = eaAll &^ (eaPCDisp | eaPCIdx | eaImm)
	eaDataAlt    = eaData & eaAlterable
	eaMemAlt     = eaMemory & eaAlterable
	eaControlAlt = eaControl & eaAlterable
)

// eaKind returns the addressing mode of the mode and register fields.
func eaKind(mode, reg uint16) eaMask {
	if mode < 7 {
		return 1 << mode
	}
	switch reg {
	case 0:
		return eaAbsW
	case 1:
		return eaAbsL
	case 2:
		return eaPCDisp
	case 3:
		return eaPCIdx
	case 4:
		return eaImm
	}
	return 0
}

// ea decodes the operand described by the mode and register fields, reading
// any extension words. The operand must be one of the allowed modes.
func (d *decoder) ea(mode, reg uint16, size Suffix, allowed eaMask) (Operand, bool) {
	if eaKind(mode, reg)&allowed == 0 {
		return nil, false
	}

	r := uint8(reg & 7)

	switch mode {
	case 0:
		return DataReg{Reg: r}, true
	case 1:
		return AddrReg{Reg: r}, true
	case 2:
		return Indirect{Reg: r}, true
	case 3:
		return PostInc{Reg: r}, true
	case 4:
		return PreDec{Reg: r}, true
	case 5:
		w, ok := d.r.ReadWord()
		if !ok {
			return nil, false
		}
		return Disp16{Reg: r, Disp: int16(w)}, true
	case 6:
		return d.indexed(IndexA0 + IndexReg(r))
	}

	switch reg {
	case 0:
		w, ok := d.r.ReadWord()
		if !ok {
			return nil, false
		}
		return AbsWord{Addr: w}, true
	case 1:
		l, ok := d.r.ReadLong()
		if !ok {
			return nil, false
		}
		return AbsLong{Addr: l}, true
	case 2:
		pc := d.offset()
		w, ok := d.r.ReadWord()
		if !ok {
			return nil, false
		}
		return PCDisp{Disp: pc + int32(int16(w))}, true
	case 3:
		return d.indexed(IndexPC)
	case 4:
		return d.immediate(size)
	}

	return nil, false
}

// immediate reads immediate data of the given size. A byte value still
// occupies a full extension word.
func (d *decoder) immediate(size Suffix) (Operand, bool) {
	if size == SuffixLong {
		l, ok := d.r.ReadLong()
		if !ok {
			return nil, false
		}
		return Immediate{Value: l}, true
	}

	w, ok := d.r.ReadWord()
	if !ok {
		return nil, false
	}
	if size == SuffixByte {
		w &= 0xff
	}
	return Immediate{Value: uint32(w)}, true
}

// indexed decodes the brief and full extension word forms of the indexed
// addressing modes. base is IndexPC or an address register.
func (d *decoder) indexed(base IndexReg) (Operand, bool) {
	pc := d.offset()
	ext, ok := d.r.ReadWord()
	if !ok {
		return nil, false
	}

	idx := Index{
		Reg:   IndexReg((ext >> 12) & 0xf),
		Long:  ext&0x0800 != 0,
		Scale: uint8((ext >> 9) & 3),
	}

	// brief extension word
	if ext&0x0100 == 0 {
		if idx.Scale != 0 && !d.is020() {
			return nil, false
		}
		disp := int8(ext & 0xff)
		if base == IndexPC {
			return PCIndexed{Disp: pc + int32(disp), Index: idx}, true
		}
		return Indexed{Reg: uint8(base - IndexA0), Disp: disp, Index: idx}, true
	}

	// full extension word
	if !d.is020() || ext&0x0008 != 0 {
		return nil, false
	}

	fe := FullExt{
		Base:  base,
		Index: idx,
	}
	fe.Used[1] = ext&0x0080 == 0
	fe.Used[2] = ext&0x0040 == 0
	if !fe.Used[2] {
		fe.Index = Index{Reg: IndexNone}
	}

	switch (ext >> 4) & 3 {
	case 0:
		return nil, false
	case 2:
		w, ok := d.r.ReadWord()
		if !ok {
			return nil, false
		}
		fe.BaseDisp = int32(int16(w))
		fe.Used[0] = true
	case 3:
		l, ok := d.r.ReadLong()
		if !ok {
			return nil, false
		}
		fe.BaseDisp = int32(l)
		fe.Used[0] = true
	}

	if base == IndexPC && fe.Used[1] {
		fe.BaseDisp += pc
	}

	iis := ext & 7

	switch iis & 3 {
	case 2:
		w, ok := d.r.ReadWord()
		if !ok {
			return nil, false
		}
		fe.OuterDisp = int32(int16(w))
		fe.Used[3] = true
	case 3:
		l, ok := d.r.ReadLong()
		if !ok {
			return nil, false
		}
		fe.OuterDisp = int32(l)
		fe.Used[3] = true
	}

	if fe.Used[2] {
		switch {
		case iis == 0:
			return NoMemoryIndirect{fe}, true
		case iis <= 3:
			return PreIndexed{fe}, true
		case iis >= 5:
			return PostIndexed{fe}, true
		}
		return nil, false
	}

	switch {
	case iis == 0:
		return NoMemoryIndirect{fe}, true
	case iis <= 3:
		return MemoryIndirect{fe}, true
	}
	return nil, false
}
