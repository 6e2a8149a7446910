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

	"github.com/hrdb/hrdisasm/format"
)

// Format an instruction with the opcode padded to a fixed column.
func Format(inst Instruction, addr uint32, style format.Style) string {
	if inst.Opcode == Invalid {
		return fmt.Sprintf("%-9s$%06x", "dc", inst.Header)
	}
	return strings.TrimRight(fmt.Sprintf("%-9s%s", inst.Opcode.String(), strings.Join(fields(inst, style), " ")), " ")
}

// FormatTerse formats an instruction without column alignment.
func FormatTerse(inst Instruction, addr uint32, style format.Style) string {
	if inst.Opcode == Invalid {
		return fmt.Sprintf("dc $%06x", inst.Header)
	}
	return strings.Join(append([]string{inst.Opcode.String()}, fields(inst, style)...), " ")
}

// fields are the space separated groups of operands after the opcode: the
// primary operands, the Tcc register transfer and the parallel moves.
func fields(inst Instruction, style format.Style) []string {
	var f []string

	var ops []string
	for i, op := range inst.Op {
		if op == nil {
			continue
		}
		s := FormatOperand(op, style)
		if i == 0 && inst.Neg {
			s = "-" + s
		}
		ops = append(ops, s)
	}
	if len(ops) > 0 {
		f = append(f, strings.Join(ops, ","))
	}

	if inst.Op2[0] != nil {
		f = append(f, FormatOperand(inst.Op2[0], style)+","+FormatOperand(inst.Op2[1], style))
	}

	for _, pm := range inst.PMove {
		switch {
		case pm.Op[0] == nil:
		case pm.Op[1] == nil:
			f = append(f, FormatOperand(pm.Op[0], style))
		default:
			f = append(f, FormatOperand(pm.Op[0], style)+","+FormatOperand(pm.Op[1], style))
		}
	}

	return f
}

// FormatOperand formats a single operand.
func FormatOperand(op Operand, style format.Style) string {
	switch op := op.(type) {
	case ImmShort:
		return "#" + immediate(op.Value, style)
	case ImmLong:
		return "#" + immediate(op.Value, style)
	case Reg:
		return op.Reg.String()
	case Indirect:
		return op.Space.String() + formatIndirect(op.Mode, op.R)
	case AbsShort:
		return fmt.Sprintf("%s<$%x", op.Space, op.Addr)
	case AbsLong:
		return fmt.Sprintf("%s$%04x", op.Space, op.Addr)
	case IOShort:
		return fmt.Sprintf("%s<<$%04x", op.Space, IOBase+op.Addr)
	}
	return "?"
}

func immediate(v uint32, style format.Style) string {
	if style == format.Hex {
		return format.Hex32(v)
	}
	return fmt.Sprintf("%d", v)
}

func formatIndirect(mode IndirectMode, r uint8) string {
	switch mode {
	case PostDecN:
		return fmt.Sprintf("(r%d)-n%d", r, r)
	case PostIncN:
		return fmt.Sprintf("(r%d)+n%d", r, r)
	case PostDec:
		return fmt.Sprintf("(r%d)-", r)
	case PostInc:
		return fmt.Sprintf("(r%d)+", r)
	case NoUpdate:
		return fmt.Sprintf("(r%d)", r)
	case IndexedN:
		return fmt.Sprintf("(r%d+n%d)", r, r)
	case PreDec:
		return fmt.Sprintf("-(r%d)", r)
	}
	return "?"
}
