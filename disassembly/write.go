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
	"fmt"
	"io"
	"strings"

	"github.com/hrdb/hrdisasm/curated"
	"github.com/hrdb/hrdisasm/disassembly/display"
	"github.com/hrdb/hrdisasm/disassembly/symbols"
	"github.com/hrdb/hrdisasm/dsp56"
	"github.com/hrdb/hrdisasm/format"
	"github.com/hrdb/hrdisasm/m68k"
)

// Sentinel error patterns.
const (
	WriteError = "disassembly: write: %v"
)

// Annotator adds a comment to a line of disassembly. The text argument is the
// terse form of the instruction.
type Annotator interface {
	Comment(address uint32, text string) (string, error)
}

// WriteAttr controls what is printed by the Write() function.
type WriteAttr struct {
	ByteCode bool
	Terse    bool
	Style    format.Style

	// draw branch arrows to the left of the addresses
	Arrows bool

	// register state used for effective address and branch comments. the
	// registers are only used for the line at the current PC
	Regs68 *m68k.Registers
	Regs56 *dsp56.Registers

	// labels and effective address descriptions for 68k lines
	Symbols *symbols.Table

	Annotator Annotator
}

// row is a single line of output. a row is either a label or an instruction.
type row struct {
	label string
	ins   display.Instruction
}

// Write lines of disassembly to io.Writer.
func Write[L Line68 | Line56](output io.Writer, lines []L, attr WriteAttr) error {
	var rows []row
	var branches []display.Branch
	var err error

	switch l := any(lines).(type) {
	case []Line68:
		rows, branches, err = rows68(l, attr)
	case []Line56:
		rows, branches, err = rows56(l, attr)
	}
	if err != nil {
		return err
	}

	var gutter []string
	if attr.Arrows {
		gutter = display.Gutter(display.Layout(branches, len(rows)), len(rows))
	}

	var col display.Columns
	for i := range rows {
		if rows[i].label == "" {
			col.Update(&rows[i].ins)
		}
	}

	for i, r := range rows {
		s := strings.Builder{}
		if gutter != nil {
			s.WriteString(gutter[i])
			s.WriteString(" ")
		}

		if r.label != "" {
			s.WriteString(r.label)
			s.WriteString(":")
		} else {
			s.WriteString(fmt.Sprintf(col.Fmt.Address, r.ins.Address))
			s.WriteString(" ")
			if attr.ByteCode {
				s.WriteString(fmt.Sprintf(col.Fmt.Bytecode, r.ins.Bytecode))
				s.WriteString(" ")
			}
			if attr.Terse {
				s.WriteString(r.ins.Mnemonic)
			} else {
				s.WriteString(fmt.Sprintf(col.Fmt.Mnemonic, r.ins.Mnemonic))
				s.WriteString(" ")
				s.WriteString(fmt.Sprintf(col.Fmt.Operand, r.ins.Operand))
			}
			if r.ins.Comment != "" {
				s.WriteString("  ; ")
				s.WriteString(r.ins.Comment)
			}
		}

		_, err := io.WriteString(output, strings.TrimRight(s.String(), " ")+"\n")
		if err != nil {
			return curated.Errorf(WriteError, err)
		}
	}

	return nil
}

// text of an instruction split into the mnemonic and operand columns. terse
// text is kept whole in the mnemonic column.
func text(ins *display.Instruction, s string, terse bool) {
	if terse {
		ins.Mnemonic = s
		return
	}
	ins.Mnemonic, ins.Operand = display.Split(s)
}

// comment joins the non-empty parts and adds the annotation.
func comment(attr WriteAttr, address uint32, terse string, parts ...string) (string, error) {
	if attr.Annotator != nil {
		a, err := attr.Annotator.Comment(address, terse)
		if err != nil {
			return "", curated.Errorf(WriteError, err)
		}
		parts = append(parts, a)
	}

	var c []string
	for _, p := range parts {
		if p != "" {
			c = append(c, p)
		}
	}
	return strings.Join(c, "  "), nil
}

// eaComment68 is the effective address comment with symbol descriptions.
func eaComment68(l Line68, attr WriteAttr) string {
	if attr.Symbols == nil {
		return m68k.EAComment(l.Inst, l.Address, attr.Regs68)
	}

	regs := attr.Regs68
	useRegs := regs != nil && regs.Get(m68k.PC) == l.Address

	var s []string
	for _, op := range l.Inst.Op[:2] {
		if op == nil {
			continue
		}
		if ea, ok := m68k.EffectiveAddress(op, useRegs, regs, l.Address); ok {
			ea &= 0xffffff
			d := fmt.Sprintf("$%x", ea)
			if sym := attr.Symbols.Describe(ea); sym != "" {
				d = fmt.Sprintf("%s %s", d, sym)
			}
			s = append(s, d)
		}
	}
	return strings.Join(s, "  ")
}

func rows68(lines []Line68, attr WriteAttr) ([]row, []display.Branch, error) {
	var rows []row

	// the row of each line. the row of a labelled line is the label row
	at := make([]int, len(lines))

	for i, l := range lines {
		at[i] = len(rows)
		if attr.Symbols != nil {
			if sym, ok := attr.Symbols.Find(l.Address); ok {
				rows = append(rows, row{label: sym.Name})
			}
		}

		terse := m68k.FormatTerse(l.Inst, l.Address, attr.Style)

		var ins display.Instruction
		ins.Address = fmt.Sprintf("$%08x", l.Address)
		if attr.ByteCode {
			ins.Bytecode = format.Bytecode(l.Bytes())
		}
		if attr.Terse {
			text(&ins, terse, true)
		} else {
			text(&ins, m68k.Format(l.Inst, l.Address, attr.Style), false)
		}

		var err error
		ins.Comment, err = comment(attr, l.Address, terse,
			eaComment68(l, attr),
			m68k.BranchComment(l.Inst, l.Address, attr.Regs68))
		if err != nil {
			return nil, nil, err
		}

		rows = append(rows, row{ins: ins})
	}

	var branches []display.Branch
	if attr.Arrows {
		for _, b := range Branches68(lines) {
			branches = append(branches, display.Branch{Start: rowOf(at, rows, b.Start), Stop: stopRow(at, rows, b.Stop)})
		}
	}

	return rows, branches, nil
}

func rows56(lines []Line56, attr WriteAttr) ([]row, []display.Branch, error) {
	rows := make([]row, 0, len(lines))

	for _, l := range lines {
		terse := dsp56.FormatTerse(l.Inst, l.Address, attr.Style)

		var ins display.Instruction
		ins.Address = fmt.Sprintf("p:$%04x", l.Address)
		if attr.ByteCode {
			ins.Bytecode = format.Bytecode24(l.Words())
		}
		if attr.Terse {
			text(&ins, terse, true)
		} else {
			text(&ins, dsp56.Format(l.Inst, l.Address, attr.Style), false)
		}

		var err error
		ins.Comment, err = comment(attr, l.Address, terse,
			dsp56.EAComment(l.Inst, l.Address, attr.Regs56),
			dsp56.BranchComment(l.Inst, l.Address, attr.Regs56))
		if err != nil {
			return nil, nil, err
		}

		rows = append(rows, row{ins: ins})
	}

	return rows, Branches56(lines), nil
}

// rowOf is the instruction row of the line. the instruction follows its
// label.
func rowOf(at []int, rows []row, line int) int {
	r := at[line]
	if rows[r].label != "" {
		r++
	}
	return r
}

// stopRow maps a line index from Branches68() to a row. lines outside of the
// list are kept outside of the rows.
func stopRow(at []int, rows []row, line int) int {
	if line < 0 {
		return -1
	}
	if line >= len(at) {
		return len(rows)
	}
	return at[line]
}
