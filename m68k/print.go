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

	"github.com/hrdb/hrdisasm/format"
)

// Format an instruction with the opcode padded to a fixed column.
func Format(inst Instruction, addr uint32, style format.Style) string {
	if inst.Opcode == None {
		return fmt.Sprintf("%-9s%s", "dc.w", format.Hex32(uint32(inst.Header)))
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%-9s", inst.Opcode.String()+inst.Suffix.String()))

	if inst.Op[0] != nil {
		s.WriteString(FormatOperand(inst.Op[0], addr, style))
	}
	if inst.BF[0].Valid {
		s.WriteString(FormatBitfield(inst.BF[0]))
	}
	if inst.Op[1] != nil {
		s.WriteString(",")
		s.WriteString(FormatOperand(inst.Op[1], addr, style))
	}
	if inst.BF[1].Valid {
		s.WriteString(FormatBitfield(inst.BF[1]))
	}
	if inst.Op[2] != nil {
		s.WriteString(",")
		s.WriteString(FormatOperand(inst.Op[2], addr, style))
	}

	return strings.TrimRight(s.String(), " ")
}

// FormatTerse formats an instruction without column alignment. Only the
// first two operands are shown.
func FormatTerse(inst Instruction, addr uint32, style format.Style) string {
	if inst.Opcode == None {
		return fmt.Sprintf("dc.w %s", format.Hex32(uint32(inst.Header)))
	}

	s := strings.Builder{}
	s.WriteString(inst.Opcode.String())
	s.WriteString(inst.Suffix.String())

	if inst.Op[0] != nil {
		s.WriteString(" ")
		s.WriteString(FormatOperand(inst.Op[0], addr, style))
	}
	if inst.Op[1] != nil {
		s.WriteString(",")
		s.WriteString(FormatOperand(inst.Op[1], addr, style))
	}

	return s.String()
}

// FormatBitfield formats a bitfield specifier as {offset:width}.
func FormatBitfield(bf Bitfield) string {
	field := func(isReg bool, v uint8) string {
		if isReg {
			return fmt.Sprintf("d%d", v&7)
		}
		return fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("{%s:%s}", field(bf.OffsetIsReg, bf.Offset), field(bf.WidthIsReg, bf.Width))
}

// FormatOperand formats a single operand. The address of the instruction is
// required to show the target of PC relative operands.
func FormatOperand(op Operand, addr uint32, style format.Style) string {
	switch op := op.(type) {
	case DataReg:
		return fmt.Sprintf("d%d", op.Reg)
	case AddrReg:
		return fmt.Sprintf("a%d", op.Reg)
	case Indirect:
		return fmt.Sprintf("(a%d)", op.Reg)
	case PostInc:
		return fmt.Sprintf("(a%d)+", op.Reg)
	case PreDec:
		return fmt.Sprintf("-(a%d)", op.Reg)
	case Disp16:
		return fmt.Sprintf("%s(a%d)", format.Signed(int32(op.Disp), style), op.Reg)
	case Indexed:
		return fmt.Sprintf("%s(a%d,%s)", format.Signed(int32(op.Disp), style), op.Reg, formatIndex(op.Index))
	case AbsWord:
		return format.AbsWord(op.Addr) + ".w"
	case AbsLong:
		return format.Hex32(op.Addr)
	case PCDisp:
		return fmt.Sprintf("%s(pc)", format.Hex32(addr+uint32(op.Disp)))
	case PCIndexed:
		return fmt.Sprintf("%s(pc,%s)", format.Hex32(addr+uint32(op.Disp)), formatIndex(op.Index))
	case Branch:
		return format.Hex32(addr + uint32(op.Disp))
	case RegList:
		return formatRegList(op.Mask)
	case Immediate:
		return "#" + format.Hex32(op.Value)
	case SR:
		return "sr"
	case CCR:
		return "ccr"
	case USP:
		return "usp"
	case ControlReg:
		if n, ok := controlRegNames[op.Code]; ok {
			return n
		}
		return "?"
	case RegPair:
		return fmt.Sprintf("d%d:d%d", op.R1, op.R2)
	case IndirectPair:
		return fmt.Sprintf("(%s):(%s)", op.R1, op.R2)
	case PostIndexed:
		return formatFullExt(op.FullExt, 0, 1, addr)
	case PreIndexed:
		return formatFullExt(op.FullExt, 0, 2, addr)
	case MemoryIndirect:
		return formatFullExt(op.FullExt, 0, 1, addr)
	case NoMemoryIndirect:
		return formatFullExt(op.FullExt, -1, -1, addr)
	}
	return "?"
}

var scaleNames = [4]string{"", "*2", "*4", "*8"}

func formatIndex(idx Index) string {
	if idx.Reg == IndexNone {
		return ""
	}
	size := "w"
	if idx.Long {
		size = "l"
	}
	return fmt.Sprintf("%s.%s%s", idx.Reg, size, scaleNames[idx.Scale&3])
}

// formatRegList compresses a movem mask into ranges, eg. d0/d3-d7/a6. The
// data registers are in bits 0 to 7 and the address registers in bits 8 to
// 15.
func formatRegList(mask uint16) string {
	s := strings.Builder{}
	ranges := 0

	for half, name := range []byte{'d', 'a'} {
		// shifted up by one so that there is a clear bit below d0/a0. bit 9
		// is always clear and is used to end a range that includes d7/a7
		m := ((mask >> (8 * half)) & 0xff) << 1

		start := -1
		for bit := 0; bit <= 8; bit++ {
			switch (m >> bit) & 3 {
			case 1:
				// end of a range
				if ranges > 0 {
					s.WriteString("/")
				}
				if start == bit-1 {
					s.WriteString(fmt.Sprintf("%c%d", name, start))
				} else {
					s.WriteString(fmt.Sprintf("%c%d-%c%d", name, start, name, bit-1))
				}
				ranges++
			case 2:
				// start of a range
				start = bit
			}
		}
	}

	return s.String()
}

// the most recent output of formatFullExt.
type lastOutput int

const (
	lastNone lastOutput = iota
	lastValue
	lastComma
	lastOpenBracket
	lastCloseBracket
)

// formatFullExt prints the four components of a full extension operand. the
// components between first and closing (inclusive) are enclosed in square
// brackets. a value of -1 means no brackets.
func formatFullExt(fe FullExt, first int, closing int, addr uint32) string {
	s := strings.Builder{}
	s.WriteString("(")

	last := lastNone
	bracketOpen := false

	for i := 0; i < 4; i++ {
		if fe.Used[i] {
			if i >= first && i <= closing && !bracketOpen {
				s.WriteString("[")
				bracketOpen = true
				last = lastOpenBracket
			}

			if last == lastValue || last == lastCloseBracket {
				s.WriteString(",")
				last = lastComma
			}

			switch i {
			case 0:
				// a suppressed pc base leaves an absolute displacement
				if fe.Base == IndexPC && fe.Used[1] {
					s.WriteString(format.Hex32(addr + uint32(fe.BaseDisp)))
				} else {
					s.WriteString(format.Hex32(uint32(fe.BaseDisp)))
				}
			case 1:
				s.WriteString(fe.Base.String())
			case 2:
				s.WriteString(formatIndex(fe.Index))
			case 3:
				s.WriteString(format.Hex32(uint32(fe.OuterDisp)))
			}
			last = lastValue
		}

		// the bracket closes even if the last component was not used
		if i == closing && bracketOpen {
			s.WriteString("]")
			bracketOpen = false
			last = lastCloseBracket
		}
	}

	s.WriteString(")")
	return s.String()
}
