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
	"fmt"
	"strings"
)

// IsSubroutine returns true if the instruction is a subroutine call.
func IsSubroutine(inst Instruction) bool {
	switch inst.Opcode {
	case JSR, JSCLR, JSSET:
		return true
	}
	return inst.Opcode >= JSCC && inst.Opcode <= JSLE
}

// EvaluateCondition returns the result of the condition code for the flags in
// the status register.
func EvaluateCondition(cc uint8, sr uint64) bool {
	flag := func(bit int) bool {
		return (sr>>bit)&1 != 0
	}
	c := flag(SRBitC)
	v := flag(SRBitV)
	z := flag(SRBitZ)
	n := flag(SRBitN)
	u := flag(SRBitU)
	e := flag(SRBitE)
	l := flag(SRBitL)

	switch cc & 0xf {
	case 0: // CC
		return !c
	case 1: // GE
		return n == v
	case 2: // NE
		return !z
	case 3: // PL
		return !n
	case 4: // NN
		return !(z || (!u && !e))
	case 5: // EC
		return !e
	case 6: // LC
		return !l
	case 7: // GT
		return !(z || n != v)
	case 8: // CS
		return c
	case 9: // LT
		return n != v
	case 10: // EQ
		return z
	case 11: // MI
		return n
	case 12: // NR
		return z || (!u && !e)
	case 13: // ES
		return e
	case 14: // LS
		return l
	}

	// LE
	return z || n != v
}

// WouldBranch reports whether the instruction is a jump and, if it is,
// whether the jump would be taken with the current register values. Jumps on
// a bit of a memory location are not applicable because memory is not
// available.
func WouldBranch(inst Instruction, regs *Registers) (applicable bool, taken bool) {
	if regs == nil {
		return false, false
	}

	switch inst.Opcode {
	case JMP, JSR:
		return true, true
	case JCLR, JSET, JSCLR, JSSET:
		bit, ok := inst.Op[0].(ImmShort)
		if !ok {
			return false, false
		}
		src, ok := inst.Op[1].(Reg)
		if !ok {
			return false, false
		}
		set := (regs.Get(src.Reg)>>(bit.Value&0x1f))&1 != 0
		if inst.Opcode == JSET || inst.Opcode == JSSET {
			return true, set
		}
		return true, !set
	}

	if (inst.Opcode >= JCC && inst.Opcode <= JLE) || (inst.Opcode >= JSCC && inst.Opcode <= JSLE) {
		cc, _ := Condition(inst.Opcode)
		return true, EvaluateCondition(cc, regs.Get(SR))
	}

	return false, false
}

// absolute returns the address of an absolute operand.
func absolute(op Operand) (uint32, bool) {
	switch op := op.(type) {
	case AbsShort:
		return op.Addr, true
	case AbsLong:
		return op.Addr, true
	}
	return 0, false
}

// BranchTarget returns the destination of a jump or the end of a hardware
// loop. For loops the target is reversed: it is the address where the loop
// finishes rather than an address that is jumped to.
func BranchTarget(inst Instruction, addr uint32) (target uint32, reversed bool, ok bool) {
	switch inst.Opcode {
	case JMP, JSR:
		target, ok = absolute(inst.Op[0])
		return target, false, ok
	case JCLR, JSET, JSCLR, JSSET:
		target, ok = absolute(inst.Op[2])
		return target, false, ok
	case DO:
		target, ok = absolute(inst.Op[1])
		return target, ok, ok
	case REP:
		return addr + uint32(inst.Length), true, true
	}

	if (inst.Opcode >= JCC && inst.Opcode <= JLE) || (inst.Opcode >= JSCC && inst.Opcode <= JSLE) {
		target, ok = absolute(inst.Op[0])
		return target, false, ok
	}

	return 0, false, false
}

// EAComment describes the effective addresses of the memory operands,
// including those of the parallel moves. Registers are only used if the
// instruction is at the current PC.
func EAComment(inst Instruction, addr uint32, regs *Registers) string {
	useRegs := regs != nil && uint32(regs.Get(PC)) == addr

	var s []string
	describe := func(op Operand) {
		if op == nil {
			return
		}
		if _, ok := op.(Indirect); !ok {
			if _, ok := op.(IOShort); !ok {
				return
			}
		}
		if ea, ok := EffectiveAddress(op, useRegs, regs, addr); ok {
			s = append(s, fmt.Sprintf("%s$%04x", spaceOf(op), ea))
		}
	}

	for _, op := range inst.Op {
		describe(op)
	}
	for _, pm := range inst.PMove {
		describe(pm.Op[0])
		describe(pm.Op[1])
	}

	return strings.Join(s, "  ")
}

func spaceOf(op Operand) Space {
	switch op := op.(type) {
	case Indirect:
		return op.Space
	case IOShort:
		return op.Space
	}
	return SpaceNone
}

// BranchComment is "[TAKEN]" or "[NOT TAKEN]" for a jump at the current PC.
// Other instructions return the empty string.
func BranchComment(inst Instruction, addr uint32, regs *Registers) string {
	if regs == nil || uint32(regs.Get(PC)) != addr {
		return ""
	}
	applicable, taken := WouldBranch(inst, regs)
	if !applicable {
		return ""
	}
	if taken {
		return "[TAKEN]"
	}
	return "[NOT TAKEN]"
}
