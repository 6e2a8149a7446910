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
	"fmt"
	"strings"
)

// IsSubroutine returns true if the instruction is a subroutine call.
func IsSubroutine(inst Instruction) bool {
	switch inst.Opcode {
	case JSR, BSR:
		return true
	}
	return false
}

// IsTrap returns true if the instruction is a trap.
func IsTrap(inst Instruction) bool {
	switch inst.Opcode {
	case TRAP, TRAPV:
		return true
	}
	return inst.Opcode >= TRAPT && inst.Opcode <= TRAPLE
}

// IsBackDBF returns true if the instruction is a DBF that branches backwards
// (or to itself). This is the usual form of a counted loop.
func IsBackDBF(inst Instruction) bool {
	if inst.Opcode != DBF {
		return false
	}
	if b, ok := inst.Op[1].(Branch); ok {
		return b.Disp <= 0
	}
	return false
}

// EvaluateCondition returns the result of the condition code for the flags in
// the status register.
func EvaluateCondition(cc uint8, sr uint32) bool {
	n := (sr>>SRBitN)&1 != 0
	z := (sr>>SRBitZ)&1 != 0
	v := (sr>>SRBitV)&1 != 0
	c := (sr>>SRBitC)&1 != 0

	switch cc & 0xf {
	case 0: // T
		return true
	case 1: // F
		return false
	case 2: // HI
		return !c && !z
	case 3: // LS
		return c || z
	case 4: // CC
		return !c
	case 5: // CS
		return c
	case 6: // NE
		return !z
	case 7: // EQ
		return z
	case 8: // VC
		return !v
	case 9: // VS
		return v
	case 10: // PL
		return !n
	case 11: // MI
		return n
	case 12: // GE
		return n == v
	case 13: // LT
		return n != v
	case 14: // GT
		return !z && n == v
	}

	// LE
	return z || n != v
}

// WouldBranch reports whether the instruction is a conditional branch and, if
// it is, whether the branch would be taken with the current register values.
//
// For DBcc the branch back to the head of the loop is taken when the
// condition is false and the counter is not zero. The counter is not
// decremented.
func WouldBranch(inst Instruction, regs *Registers) (applicable bool, taken bool) {
	if regs == nil {
		return false, false
	}

	cc, ok := Condition(inst.Opcode)
	if !ok {
		return false, false
	}

	sr := regs.Get(RegSR)

	switch {
	case inst.Opcode >= BRA && inst.Opcode <= BLE:
		return true, EvaluateCondition(cc, sr)
	case inst.Opcode >= DBT && inst.Opcode <= DBLE:
		dn, ok := inst.Op[0].(DataReg)
		if !ok {
			return false, false
		}
		return true, regs.D(dn.Reg)&0xffff != 0 && !EvaluateCondition(cc, sr)
	}

	return false, false
}

// BranchTarget returns the destination of a relative branch. Bcc, BRA and BSR
// take the target from the first operand and DBcc from the second.
func BranchTarget(inst Instruction, addr uint32) (uint32, bool) {
	var op Operand

	switch {
	case inst.Opcode >= BRA && inst.Opcode <= BLE:
		op = inst.Op[0]
	case inst.Opcode >= DBT && inst.Opcode <= DBLE:
		op = inst.Op[1]
	default:
		return 0, false
	}

	if b, ok := op.(Branch); ok {
		return addr + uint32(b.Disp), true
	}
	return 0, false
}

// EAComment describes the effective addresses of the first two operands.
// Registers are only used if the instruction is at the current PC. Addresses
// are masked to 24 bits.
func EAComment(inst Instruction, addr uint32, regs *Registers) string {
	useRegs := regs != nil && regs.Get(PC) == addr

	var s []string
	for _, op := range inst.Op[:2] {
		if op == nil {
			continue
		}
		if ea, ok := EffectiveAddress(op, useRegs, regs, addr); ok {
			s = append(s, fmt.Sprintf("$%x", ea&0xffffff))
		}
	}
	return strings.Join(s, "  ")
}

// BranchComment is "[TAKEN]" or "[NOT TAKEN]" for a conditional branch at the
// current PC. Other instructions return the empty string.
func BranchComment(inst Instruction, addr uint32, regs *Registers) string {
	if regs == nil || regs.Get(PC) != addr {
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
