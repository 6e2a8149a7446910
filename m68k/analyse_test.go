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

package m68k_test

import (
	"testing"

	"github.com/hrdb/hrdisasm/m68k"
	"github.com/hrdb/hrdisasm/test"
)

func TestEvaluateCondition(t *testing.T) {
	// truth table indexed by condition code. flags are in the order NZVC
	truth := func(cc int, n, z, v, c int) int {
		switch cc {
		case 0:
			return 1
		case 1:
			return 0
		case 2:
			return (1 - c) & (1 - z)
		case 3:
			return c | z
		case 4:
			return 1 - c
		case 5:
			return c
		case 6:
			return 1 - z
		case 7:
			return z
		case 8:
			return 1 - v
		case 9:
			return v
		case 10:
			return 1 - n
		case 11:
			return n
		case 12:
			return 1 - (n ^ v)
		case 13:
			return n ^ v
		case 14:
			return (1 - z) & (1 - (n ^ v))
		}
		return z | (n ^ v)
	}

	for cc := 0; cc < 16; cc++ {
		for flags := 0; flags < 16; flags++ {
			n := (flags >> 3) & 1
			z := (flags >> 2) & 1
			v := (flags >> 1) & 1
			c := flags & 1

			// unrelated bits in the status register must not matter
			sr := uint32(flags) | 0x2710

			expected := truth(cc, n, z, v, c) == 1
			test.ExpectEquality(t, m68k.EvaluateCondition(uint8(cc), sr), expected, m68k.ConditionNames[cc], flags)
		}
	}
}

func TestWouldBranch(t *testing.T) {
	var regs m68k.Registers

	beq := m68k.Decode(reader(0x6710), m68k.Settings{})
	test.ExpectEquality(t, beq.Opcode, m68k.BEQ)

	regs.Set(m68k.RegSR, 1<<m68k.SRBitZ)
	applicable, taken := m68k.WouldBranch(beq, &regs)
	test.ExpectSuccess(t, applicable)
	test.ExpectSuccess(t, taken)

	regs.Set(m68k.RegSR, 0)
	applicable, taken = m68k.WouldBranch(beq, &regs)
	test.ExpectSuccess(t, applicable)
	test.ExpectFailure(t, taken)

	// no registers
	applicable, _ = m68k.WouldBranch(beq, nil)
	test.ExpectFailure(t, applicable)

	// bsr is never conditional
	bsr := m68k.Decode(reader(0x6110), m68k.Settings{})
	applicable, _ = m68k.WouldBranch(bsr, &regs)
	test.ExpectFailure(t, applicable)

	// dbf loops while the counter is not zero
	dbf := m68k.Decode(reader(0x51c8, 0xfffc), m68k.Settings{})
	regs.Set(m68k.D0, 5)
	applicable, taken = m68k.WouldBranch(dbf, &regs)
	test.ExpectSuccess(t, applicable)
	test.ExpectSuccess(t, taken)

	regs.Set(m68k.D0, 0)
	_, taken = m68k.WouldBranch(dbf, &regs)
	test.ExpectFailure(t, taken)

	// only the low word of the counter is used
	regs.Set(m68k.D0, 0x00010000)
	_, taken = m68k.WouldBranch(dbf, &regs)
	test.ExpectFailure(t, taken)

	// dbeq exits the loop when the condition is true
	dbeq := m68k.Decode(reader(0x57c8, 0xfffc), m68k.Settings{})
	test.ExpectEquality(t, dbeq.Opcode, m68k.DBEQ)
	regs.Set(m68k.D0, 5)
	regs.Set(m68k.RegSR, 1<<m68k.SRBitZ)
	_, taken = m68k.WouldBranch(dbeq, &regs)
	test.ExpectFailure(t, taken)
}

func TestBranchTarget(t *testing.T) {
	inst := m68k.Instruction{Opcode: m68k.BRA, Op: [3]m68k.Operand{m68k.Branch{Disp: -6}}}
	target, ok := m68k.BranchTarget(inst, 0x1000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, target, uint32(0xffa))

	inst = m68k.Instruction{Opcode: m68k.BNE, Op: [3]m68k.Operand{m68k.Branch{Disp: 0x20}}}
	target, ok = m68k.BranchTarget(inst, 0x1000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, target, uint32(0x1020))

	bsr := m68k.Decode(reader(0x6100, 0x0100), m68k.Settings{})
	target, ok = m68k.BranchTarget(bsr, 0x1000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, target, uint32(0x1102))

	dbf := m68k.Decode(reader(0x51c8, 0xfffc), m68k.Settings{})
	target, ok = m68k.BranchTarget(dbf, 0x1000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, target, uint32(0xffe))

	nop := m68k.Decode(reader(0x4e71), m68k.Settings{})
	_, ok = m68k.BranchTarget(nop, 0x1000)
	test.ExpectFailure(t, ok)
}

func TestClassification(t *testing.T) {
	jsr := m68k.Decode(reader(0x4e90), m68k.Settings{})
	test.ExpectEquality(t, jsr.Opcode, m68k.JSR)
	test.ExpectSuccess(t, m68k.IsSubroutine(jsr))
	test.ExpectFailure(t, m68k.IsTrap(jsr))

	trap := m68k.Decode(reader(0x4e41), m68k.Settings{})
	test.ExpectEquality(t, trap.Opcode, m68k.TRAP)
	test.ExpectSuccess(t, m68k.IsTrap(trap))

	dbf := m68k.Decode(reader(0x51c8, 0xfffc), m68k.Settings{})
	test.ExpectSuccess(t, m68k.IsBackDBF(dbf))

	dbf = m68k.Decode(reader(0x51c8, 0x0010), m68k.Settings{})
	test.ExpectFailure(t, m68k.IsBackDBF(dbf))
}

func TestEffectiveAddress(t *testing.T) {
	var regs m68k.Registers
	regs.Set(m68k.A0, 0x1000)
	regs.Set(m68k.D1, 0x0000ffff)

	_, ok := m68k.EffectiveAddress(m68k.DataReg{Reg: 0}, true, &regs, 0)
	test.ExpectFailure(t, ok)

	_, ok = m68k.EffectiveAddress(m68k.Indirect{Reg: 0}, false, &regs, 0)
	test.ExpectFailure(t, ok)

	ea, ok := m68k.EffectiveAddress(m68k.Indirect{Reg: 0}, true, &regs, 0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ea, uint32(0x1000))

	// word index of -1 scaled by two
	ea, ok = m68k.EffectiveAddress(m68k.Indexed{Reg: 0, Disp: 4, Index: m68k.Index{Reg: m68k.IndexD1, Scale: 1}}, true, &regs, 0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ea, uint32(0x1002))

	ea, ok = m68k.EffectiveAddress(m68k.AbsWord{Addr: 0x8100}, false, nil, 0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ea, uint32(0xffff8100))

	ea, ok = m68k.EffectiveAddress(m68k.AbsWord{Addr: 0x0100}, false, nil, 0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ea, uint32(0x100))

	ea, ok = m68k.EffectiveAddress(m68k.PCDisp{Disp: 0x10}, false, nil, 0x2000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ea, uint32(0x2010))

	fe := m68k.FullExt{
		Base:     m68k.IndexA0,
		BaseDisp: 0x10,
		Index:    m68k.Index{Reg: m68k.IndexD2, Long: true, Scale: 2},
		Used:     [4]bool{true, true, true, false},
	}
	regs.Set(m68k.D2, 0x10)

	ea, ok = m68k.EffectiveAddress(m68k.NoMemoryIndirect{FullExt: fe}, true, &regs, 0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ea, uint32(0x1050))

	_, ok = m68k.EffectiveAddress(m68k.NoMemoryIndirect{FullExt: fe}, false, &regs, 0)
	test.ExpectFailure(t, ok)

	// pc base resolves without registers
	inst := m68k.Decode(reader(0x41fb, 0x0120, 0x0100), m68k.Settings{CPU: m68k.CPU68020})
	ea, ok = m68k.EffectiveAddress(inst.Op[0], false, nil, 0x2000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ea, uint32(0x2102))
}

func TestComments(t *testing.T) {
	var regs m68k.Registers
	regs.Set(m68k.PC, 0x1000)
	regs.Set(m68k.A6, 0x8000)

	inst := m68k.Decode(reader(0x222e, 0xfffc), m68k.Settings{})

	// registers are only used at the PC
	test.ExpectEquality(t, m68k.EAComment(inst, 0x1000, &regs), "$7ffc")
	test.ExpectEquality(t, m68k.EAComment(inst, 0x2000, &regs), "")
	test.ExpectEquality(t, m68k.EAComment(inst, 0x1000, nil), "")

	// both operands and masked to 24 bits
	inst = m68k.Decode(reader(0x23f8, 0x8100, 0x0001, 0x0000), m68k.Settings{})
	test.ExpectEquality(t, m68k.EAComment(inst, 0x2000, nil), "$ff8100  $10000")

	beq := m68k.Decode(reader(0x6710), m68k.Settings{})
	regs.Set(m68k.RegSR, 1<<m68k.SRBitZ)
	test.ExpectEquality(t, m68k.BranchComment(beq, 0x1000, &regs), "[TAKEN]")
	test.ExpectEquality(t, m68k.BranchComment(beq, 0x1002, &regs), "")
	regs.Set(m68k.RegSR, 0)
	test.ExpectEquality(t, m68k.BranchComment(beq, 0x1000, &regs), "[NOT TAKEN]")
}
