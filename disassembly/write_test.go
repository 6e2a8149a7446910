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

package disassembly_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/hrdb/hrdisasm/curated"
	"github.com/hrdb/hrdisasm/disassembly"
	"github.com/hrdb/hrdisasm/disassembly/symbols"
	"github.com/hrdb/hrdisasm/dsp56"
	"github.com/hrdb/hrdisasm/format"
	"github.com/hrdb/hrdisasm/m68k"
	"github.com/hrdb/hrdisasm/test"
)

func expectLines(t *testing.T, got string, expected ...string) {
	t.Helper()
	test.ExpectEquality(t, got, strings.Join(expected, "\n")+"\n")
}

func TestWrite68(t *testing.T) {
	lines := disassembly.Block68(program68, m68k.Settings{}, 0x1000, 0)

	w := &strings.Builder{}
	test.DemandSuccess(t, disassembly.Write(w, lines, disassembly.WriteAttr{Style: format.Hex}))
	expectLines(t, w.String(),
		"$00001000 nop",
		"$00001002 movea.l #$1234,a3",
		"$00001008 bne.s   $1000      ; $1000",
		"$0000100a nop",
	)

	w.Reset()
	test.DemandSuccess(t, disassembly.Write(w, lines[:2], disassembly.WriteAttr{Style: format.Hex, ByteCode: true}))
	expectLines(t, w.String(),
		"$00001000 4e71           nop",
		"$00001002 267c 0000 1234 movea.l #$1234,a3",
	)

	w.Reset()
	test.DemandSuccess(t, disassembly.Write(w, lines[1:3], disassembly.WriteAttr{Style: format.Hex, Terse: true}))
	expectLines(t, w.String(),
		"$00001002 movea.l #$1234,a3",
		"$00001008 bne.s $1000  ; $1000",
	)
}

func TestWriteArrows(t *testing.T) {
	lines := disassembly.Block68(program68, m68k.Settings{}, 0x1000, 0)

	w := &strings.Builder{}
	test.DemandSuccess(t, disassembly.Write(w, lines, disassembly.WriteAttr{Style: format.Hex, Arrows: true}))
	expectLines(t, w.String(),
		"+> $00001000 nop",
		"|  $00001002 movea.l #$1234,a3",
		"+- $00001008 bne.s   $1000      ; $1000",
		"   $0000100a nop",
	)
}

func TestWriteSymbols(t *testing.T) {
	lines := disassembly.Block68(program68, m68k.Settings{}, 0x1000, 0)

	sym := symbols.NewTable()
	sym.Add("start", 0x1000, 0, "")

	w := &strings.Builder{}
	test.DemandSuccess(t, disassembly.Write(w, lines, disassembly.WriteAttr{Style: format.Hex, Arrows: true, Symbols: sym}))
	expectLines(t, w.String(),
		"+> start:",
		"|  $00001000 nop",
		"|  $00001002 movea.l #$1234,a3",
		"+- $00001008 bne.s   $1000      ; $1000 start",
		"   $0000100a nop",
	)
}

func TestWriteRegisters(t *testing.T) {
	lines := disassembly.Block68(program68, m68k.Settings{}, 0x1000, 0)

	var regs m68k.Registers
	regs.Set(m68k.PC, 0x1008)
	regs.Set(m68k.RegSR, 1<<m68k.SRBitZ)

	w := &strings.Builder{}
	test.DemandSuccess(t, disassembly.Write(w, lines[2:3], disassembly.WriteAttr{Style: format.Hex, Regs68: &regs}))
	expectLines(t, w.String(), "$00001008 bne.s $1000  ; $1000  [NOT TAKEN]")
}

func TestWrite56(t *testing.T) {
	lines := disassembly.Block56(program56, dsp56.Settings{}, 0x40, 0)

	w := &strings.Builder{}
	test.DemandSuccess(t, disassembly.Write(w, lines, disassembly.WriteAttr{Style: format.Hex, ByteCode: true}))
	expectLines(t, w.String(),
		"p:$0040 000000 nop",
		"p:$0041 0c0041 jmp <$41",
		"p:$0042 0605a0 rep #$5",
		"p:$0043 00000c rts",
	)

	w.Reset()
	test.DemandSuccess(t, disassembly.Write(w, lines, disassembly.WriteAttr{Style: format.Hex, Arrows: true}))
	expectLines(t, w.String(),
		"   p:$0040 nop",
		"+> p:$0041 jmp <$41",
		"+- p:$0042 rep #$5",
		"+> p:$0043 rts",
	)
}

type annotator struct {
	err error
}

func (a annotator) Comment(address uint32, text string) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	if strings.HasPrefix(text, "nop") {
		return fmt.Sprintf("idle at $%x", address), nil
	}
	return "", nil
}

func TestWriteAnnotator(t *testing.T) {
	lines := disassembly.Block68(program68, m68k.Settings{}, 0x1000, 2)

	w := &strings.Builder{}
	test.DemandSuccess(t, disassembly.Write(w, lines, disassembly.WriteAttr{Style: format.Hex, Annotator: annotator{}}))
	expectLines(t, w.String(),
		"$00001000 nop                ; idle at $1000",
		"$00001002 movea.l #$1234,a3",
	)

	w.Reset()
	err := disassembly.Write(w, lines, disassembly.WriteAttr{Annotator: annotator{err: errors.New("bad script")}})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, disassembly.WriteError))
	test.ExpectEquality(t, w.String(), "")
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteFail(t *testing.T) {
	lines := disassembly.Block68(program68, m68k.Settings{}, 0x1000, 0)
	err := disassembly.Write(failWriter{}, lines, disassembly.WriteAttr{})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, disassembly.WriteError))
}

func TestBranches(t *testing.T) {
	lines := disassembly.Block68(program68, m68k.Settings{}, 0x1000, 0)
	b := disassembly.Branches68(lines)
	test.DemandEquality(t, len(b), 1)
	test.ExpectEquality(t, b[0].Start, 2)
	test.ExpectEquality(t, b[0].Stop, 0)

	// the target is before the first line
	b = disassembly.Branches68(lines[1:])
	test.DemandEquality(t, len(b), 1)
	test.ExpectEquality(t, b[0].Stop, -1)

	// a forward branch beyond the last line
	lines = disassembly.Block68(words16(0x6010, 0x4e71), m68k.Settings{}, 0, 0)
	b = disassembly.Branches68(lines)
	test.DemandEquality(t, len(b), 1)
	test.ExpectEquality(t, b[0].Stop, 2)

	l56 := disassembly.Block56(program56, dsp56.Settings{}, 0x40, 0)
	b = disassembly.Branches56(l56)
	test.DemandEquality(t, len(b), 2)
	test.ExpectEquality(t, b[0].Start, 1)
	test.ExpectEquality(t, b[0].Stop, 1)
	test.ExpectEquality(t, b[1].Start, 2)
	test.ExpectEquality(t, b[1].Stop, 3)
}
