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

package dsp56_test

import (
	"testing"

	"github.com/hrdb/hrdisasm/buffer"
	"github.com/hrdb/hrdisasm/dsp56"
	"github.com/hrdb/hrdisasm/format"
	"github.com/hrdb/hrdisasm/test"
)

func reader(words ...uint32) buffer.WordReader {
	return buffer.NewWordReaderFromWords(words)
}

func decode(words ...uint32) dsp56.Instruction {
	return dsp56.Decode(reader(words...), dsp56.Settings{})
}

func TestDecode(t *testing.T) {
	tests := []struct {
		words  []uint32
		text   string
		length int
	}{
		{[]uint32{0x000000}, "nop", 1},
		{[]uint32{0x00000c}, "rts", 1},
		{[]uint32{0x000087}, "stop", 1},
		{[]uint32{0x00008c}, "enddo", 1},

		// data ALU with and without parallel moves
		{[]uint32{0x200013}, "clr      a", 1},
		{[]uint32{0x200084}, "mpy      -x0,x0,a", 1},
		{[]uint32{0xf098d2}, "mac      y0,x0,a x:(r0)+,x0 y:(r4)+,y0", 1},
		{[]uint32{0x241200}, "move     #$12,x0", 1},
		{[]uint32{0x208f00}, "move     x0,b", 1},
		{[]uint32{0x204b00}, "move     (r3)+n3", 1},
		{[]uint32{0x56d800}, "move     x:(r0)+,a", 1},
		{[]uint32{0x56f000, 0x001234}, "move     x:$1234,a", 2},
		{[]uint32{0x56f400, 0x123456}, "move     #$123456,a", 2},
		{[]uint32{0x5e1000}, "move     a,y:<$10", 1},
		{[]uint32{0x4ad900}, "move     l:(r1)+,ab", 1},
		{[]uint32{0x10a000}, "move     x:(r0),x0 a,y0", 1},
		{[]uint32{0x1ddc00}, "move     b,x1 y:(r4)+,y1", 1},
		{[]uint32{0x081800}, "move     a,x:(r0)+ x0,a", 1},

		// no parallel move
		{[]uint32{0x00feb9}, "andi     #$fe,ccr", 1},
		{[]uint32{0x0003f8}, "ori      #$3,mr", 1},
		{[]uint32{0x018040}, "div      x0,a", 1},
		{[]uint32{0x01da1d}, "norm     r2,b", 1},
		{[]uint32{0x044811}, "lua      (r0)+n0,r1", 1},
		{[]uint32{0x04c4b9}, "movec    x0,sr", 1},
		{[]uint32{0x05ffa0}, "movec    #$ff,m0", 1},
		{[]uint32{0x08ce20}, "movep    a,x:<<$ffe0", 1},
		{[]uint32{0x02a040}, "teq      x0,a", 1},
		{[]uint32{0x031001}, "tge      b,a r0,r1", 1},
		{[]uint32{0x0a1064}, "bset     #$4,y:<$10", 1},
		{[]uint32{0x0a8583, 0x000100}, "jclr     #$3,x:<<$ffc5,$0100", 2},
		{[]uint32{0x0ace20, 0x000200}, "jset     #$0,a,$0200", 2},
		{[]uint32{0x0c0040}, "jmp      <$40", 1},
		{[]uint32{0x0af080, 0x001234}, "jmp      $1234", 2},
		{[]uint32{0x0ea040}, "jeq      <$40", 1},
		{[]uint32{0x0be0a3}, "jspl     (r0)", 1},
		{[]uint32{0x061080, 0x0000ff}, "do       #$10,$0100", 2},
		{[]uint32{0x06c400, 0x00003f}, "do       x0,$0040", 2},
		{[]uint32{0x0605a0}, "rep      #$5", 1},

		// invalid
		{[]uint32{0x000001}, "dc       $000001", 1},
		{[]uint32{0x0000ff}, "dc       $0000ff", 1},
	}

	for _, tt := range tests {
		inst := decode(tt.words...)
		test.ExpectEquality(t, dsp56.Format(inst, 0, format.Hex), tt.text)
		test.ExpectEquality(t, inst.Length, tt.length, tt.text)
		test.ExpectEquality(t, inst.Header, tt.words[0], tt.text)
	}
}

func TestDecodeTruncated(t *testing.T) {
	// absolute jump without its extension word
	inst := decode(0x0af080)
	test.ExpectEquality(t, inst.Opcode, dsp56.Invalid)
	test.ExpectEquality(t, inst.Length, 1)
	test.ExpectEquality(t, inst.Header, uint32(0x0af080))

	inst = decode()
	test.ExpectEquality(t, inst.Opcode, dsp56.Invalid)
	test.ExpectEquality(t, inst.Length, 1)

	// a partial word is not readable
	inst = dsp56.Decode(buffer.NewWordReader([]byte{0x00, 0x00}), dsp56.Settings{})
	test.ExpectEquality(t, inst.Opcode, dsp56.Invalid)
	test.ExpectEquality(t, inst.Length, 1)
}

func TestDecodeDoesNotAdvance(t *testing.T) {
	r := reader(0x56f000, 0x001234)
	_ = dsp56.Decode(r, dsp56.Settings{})
	test.ExpectEquality(t, r.Position(), 0)
}

func TestFormatStyle(t *testing.T) {
	inst := decode(0x241200)
	test.ExpectEquality(t, dsp56.Format(inst, 0, format.Decimal), "move     #18,x0")
	test.ExpectEquality(t, dsp56.FormatTerse(inst, 0, format.Hex), "move #$12,x0")

	inst = decode(0xf098d2)
	test.ExpectEquality(t, dsp56.FormatTerse(inst, 0, format.Hex), "mac y0,x0,a x:(r0)+,x0 y:(r4)+,y0")

	inst = decode(0x000001)
	test.ExpectEquality(t, dsp56.FormatTerse(inst, 0, format.Hex), "dc $000001")

	inst = decode(0x000000)
	test.ExpectEquality(t, dsp56.FormatTerse(inst, 0, format.Hex), "nop")
}

func TestFormatOperand(t *testing.T) {
	f := func(op dsp56.Operand) string {
		return dsp56.FormatOperand(op, format.Hex)
	}
	test.ExpectEquality(t, f(dsp56.Indirect{Mode: dsp56.PostDecN, Space: dsp56.SpaceX, R: 2}), "x:(r2)-n2")
	test.ExpectEquality(t, f(dsp56.Indirect{Mode: dsp56.PostDec, Space: dsp56.SpaceY, R: 5}), "y:(r5)-")
	test.ExpectEquality(t, f(dsp56.Indirect{Mode: dsp56.IndexedN, Space: dsp56.SpaceP, R: 1}), "p:(r1+n1)")
	test.ExpectEquality(t, f(dsp56.Indirect{Mode: dsp56.PreDec, Space: dsp56.SpaceL, R: 7}), "l:-(r7)")
	test.ExpectEquality(t, f(dsp56.IOShort{Space: dsp56.SpaceY, Addr: 0x3f}), "y:<<$ffff")
	test.ExpectEquality(t, f(dsp56.Reg{Reg: dsp56.BA}), "ba")
	test.ExpectEquality(t, f(nil), "?")
}

func TestRegisters(t *testing.T) {
	var regs dsp56.Registers

	regs.Set(dsp56.A2, 0xff)
	regs.Set(dsp56.A1, 0x123456)
	regs.Set(dsp56.A0, 0x789abc)
	test.ExpectEquality(t, regs.Get(dsp56.A), uint64(0x00ff123456789abc))

	regs.Set(dsp56.X1, 1)
	regs.Set(dsp56.X0, 2)
	test.ExpectEquality(t, regs.Get(dsp56.X), uint64(0x1000002))

	regs.Set(dsp56.Y0, 3)
	test.ExpectEquality(t, regs.Get(dsp56.Y), uint64(3))

	regs.Set(dsp56.B1, 1)
	test.ExpectEquality(t, regs.Get(dsp56.B), uint64(1)<<24)

	// operand only registers
	regs.Set(dsp56.AB, 5)
	test.ExpectEquality(t, regs.Get(dsp56.AB), uint64(0))
}

func TestOpcodeNames(t *testing.T) {
	test.ExpectEquality(t, dsp56.JCC.String(), "jcc")
	test.ExpectEquality(t, dsp56.JSLE.String(), "jsle")
	test.ExpectEquality(t, dsp56.TNR.String(), "tnr")
	test.ExpectEquality(t, dsp56.Invalid.String(), "dc")

	cc, ok := dsp56.Condition(dsp56.JSEQ)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, cc, uint8(10))

	_, ok = dsp56.Condition(dsp56.JMP)
	test.ExpectFailure(t, ok)
}
