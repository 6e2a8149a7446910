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
	"github.com/hrdb/hrdisasm/buffer"
	"github.com/hrdb/hrdisasm/dsp56"
	"github.com/hrdb/hrdisasm/m68k"
)

// MaxMem68 is the number of instruction bytes kept by a Line68. Longer
// instructions are truncated.
const MaxMem68 = 10

// MaxMem56 is the number of instruction words kept by a Line56.
const MaxMem56 = 6

// Line68 is a single disassembled 68k instruction.
type Line68 struct {
	Address uint32
	Inst    m68k.Instruction

	// copy of the instruction bytes. only the first MemLen bytes are valid
	Mem    [MaxMem68]byte
	MemLen int
}

// End returns the address of the following instruction.
func (l Line68) End() uint32 {
	return l.Address + uint32(l.Inst.Length)
}

// Bytes returns the valid part of the memory copy.
func (l *Line68) Bytes() []byte {
	return l.Mem[:l.MemLen]
}

// Line56 is a single disassembled DSP56k instruction. Addresses are in
// words.
type Line56 struct {
	Address uint32
	Inst    dsp56.Instruction

	// copy of the instruction words. only the first MemLen words are valid
	Mem    [MaxMem56]uint32
	MemLen int
}

// End returns the address of the following instruction.
func (l Line56) End() uint32 {
	return l.Address + uint32(l.Inst.Length)
}

// Words returns the valid part of the memory copy.
func (l *Line56) Words() []uint32 {
	return l.Mem[:l.MemLen]
}

// Peek68 decodes the instruction at the reader's position and returns it
// along with the bytes it occupies. The reader is not advanced. The byte
// span is clamped to the data that remains.
func Peek68(r buffer.Reader, s m68k.Settings) (m68k.Instruction, []byte) {
	inst := m68k.Decode(r, s)
	return inst, r.Bytes(inst.Length)
}

// Peek56 is the DSP equivalent of Peek68.
func Peek56(r buffer.WordReader, s dsp56.Settings) (dsp56.Instruction, []uint32) {
	inst := dsp56.Decode(r, s)
	return inst, r.Words(inst.Length)
}

// line68 decodes a single line and advances the reader past it.
func line68(r *buffer.Reader, s m68k.Settings, address uint32) Line68 {
	inst, mem := Peek68(*r, s)
	l := Line68{
		Address: address,
		Inst:    inst,
	}
	l.MemLen = copy(l.Mem[:], mem)
	r.Advance(inst.Length)
	return l
}

// line56 decodes a single line and advances the reader past it.
func line56(r *buffer.WordReader, s dsp56.Settings, address uint32) Line56 {
	inst, mem := Peek56(*r, s)
	l := Line56{
		Address: address,
		Inst:    inst,
	}
	l.MemLen = copy(l.Mem[:], mem)
	r.Advance(inst.Length)
	return l
}

// nop is the 68k encoding of the NOP instruction.
const nop = 0x4e71

// Fill68 returns n NOP instructions.
func Fill68(n int) []byte {
	b := make([]byte, 0, n*2)
	for i := 0; i < n; i++ {
		b = append(b, nop>>8, nop&0xff)
	}
	return b
}
