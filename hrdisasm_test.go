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


package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hrdb/hrdisasm/modalflag"
	"github.com/hrdb/hrdisasm/test"
	"github.com/hrdb/hrdisasm/version"
)

// run the command line in a temporary working directory so that the
// preferences file is not written to the source tree.
func run(t *testing.T, args ...string) (int, string) {
	t.Helper()
	w := &strings.Builder{}
	return runTo(t, w, args...), w.String()
}

func runTo(t *testing.T, w io.Writer, args ...string) int {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	md := &modalflag.Modes{Output: w}
	md.NewArgs(args)
	return launch(md)
}

func TestFill(t *testing.T) {
	r, out := run(t, "68K", "-fill", "2")
	test.ExpectEquality(t, r, 0)
	test.ExpectEquality(t, out, "$00000000 nop\n$00000002 nop\n")

	r, out = run(t, "68K", "-fill", "2", "-base", "$fc0000", "-bytecode")
	test.ExpectEquality(t, r, 0)
	test.ExpectEquality(t, out, "$00fc0000 4e71 nop\n$00fc0002 4e71 nop\n")
}

func TestDefaultMode(t *testing.T) {
	r, out := run(t, "-fill", "1")
	test.ExpectEquality(t, r, 0)
	test.ExpectEquality(t, out, "$00000000 nop\n")
}

func TestStartAndMax(t *testing.T) {
	r, out := run(t, "68K", "-fill", "8", "-start", "4", "-max", "2")
	test.ExpectEquality(t, r, 0)
	test.ExpectEquality(t, out, "$00000004 nop\n$00000006 nop\n")

	// start address outside of the data
	r, out = run(t, "68K", "-fill", "2", "-start", "0x100")
	test.ExpectEquality(t, r, 0)
	test.ExpectEquality(t, out, "")
}

// the cap is one byte larger than the expected output so any extra line
// written past the maximum shows up in the comparison.
func TestMaxBoundsOutput(t *testing.T) {
	const expected = "$00000000 nop\n$00000002 nop\n$00000004 nop\n"

	w, err := test.NewCappedWriter(len(expected) + 1)
	test.DemandSuccess(t, err)
	r := runTo(t, w, "68K", "-fill", "100", "-max", "3")
	test.ExpectEquality(t, r, 0)
	test.ExpectEquality(t, w.String(), expected)

	w.Reset()
	r = runTo(t, w, "68K", "-fill", "100", "-start", "0x10", "-max", "1")
	test.ExpectEquality(t, r, 0)
	test.ExpectEquality(t, w.String(), "$00000010 nop\n")
}

func TestFile68(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prog.bin")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0xff, 0xff, 0x4e, 0x71, 0x4e, 0x75}, 0600))

	r, out := run(t, "68K", "-offset", "2", "-base", "0x1000", fn)
	test.ExpectEquality(t, r, 0)
	test.ExpectEquality(t, out, "$00001000 nop\n$00001002 rts\n")

	r, out = run(t, "68K", "-offset", "7", fn)
	test.ExpectEquality(t, r, 20)
	test.ExpectSuccess(t, strings.HasPrefix(out, "* error in 68K mode: input: offset out of range"))
}

func TestFileDSP(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prog.lod")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x0c}, 0600))

	r, out := run(t, "DSP", "-base", "0x40", fn)
	test.ExpectEquality(t, r, 0)
	test.ExpectEquality(t, out, "p:$0040 nop\np:$0041 rts\n")
}

func TestPrefsOverride(t *testing.T) {
	r, out := run(t, "68K", "-fill", "1", "-prefs", "disassembly.bytecode::true")
	test.ExpectEquality(t, r, 0)
	test.ExpectEquality(t, out, "$00000000 4e71 nop\n")
}

func TestSymbols(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prog.sym")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("00000000 T start\n"), 0600))

	r, out := run(t, "68K", "-fill", "1", "-symbols", fn)
	test.ExpectEquality(t, r, 0)
	test.ExpectEquality(t, out, "start:\n$00000000 nop\n")

	r, out = run(t, "SYMBOLS", fn)
	test.ExpectEquality(t, r, 0)
	test.ExpectEquality(t, out, "$000000 -> start\n")

	r, out = run(t, "SYMBOLS", "-hw")
	test.ExpectEquality(t, r, 0)
	test.ExpectSuccess(t, strings.Contains(out, "MFP_IERA"))

	r, _ = run(t, "SYMBOLS")
	test.ExpectEquality(t, r, 20)
}

func TestAnnotate(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "notes.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(`function annotate(address, text) return "at " .. hex(address) end`), 0600))

	r, out := run(t, "68K", "-fill", "1", "-lua", fn)
	test.ExpectEquality(t, r, 0)
	test.ExpectEquality(t, out, "$00000000 nop   ; at $0\n")
}

func TestDump(t *testing.T) {
	r, out := run(t, "68K", "-fill", "1", "-dump")
	test.ExpectEquality(t, r, 0)
	test.ExpectSuccess(t, strings.Contains(out, "disassembly.Line68"))

	dot := filepath.Join(t.TempDir(), "lines.dot")
	r, _ = run(t, "68K", "-fill", "1", "-dot", dot)
	test.ExpectEquality(t, r, 0)
	_, err := os.Stat(dot)
	test.ExpectSuccess(t, err)

	// the dot filename is chosen in the working directory
	fn := filepath.Join(t.TempDir(), "prog.lod")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x00, 0x00, 0x00}, 0600))
	r, _ = run(t, "DSP", "-dot", "auto", fn)
	test.ExpectEquality(t, r, 0)
	m, err := filepath.Glob("hrdisasm_dsp_*.dot")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(m), 1)
}

func TestVersion(t *testing.T) {
	r, out := run(t, "-version")
	test.ExpectEquality(t, r, 0)
	test.ExpectSuccess(t, strings.HasPrefix(out, version.ApplicationName))
}

func TestErrors(t *testing.T) {
	r, out := run(t, "68K")
	test.ExpectEquality(t, r, 20)
	test.ExpectEquality(t, out, "* error in 68K mode: input: file required for 68K mode\n")

	r, _ = run(t, "68K", "-cpu", "6502", "-fill", "1")
	test.ExpectEquality(t, r, 20)

	r, out = run(t, "68K", "-fill", "1", "-max", "-1")
	test.ExpectEquality(t, r, 20)
	test.ExpectEquality(t, out, "* error in 68K mode: disassembly: max lines cannot be negative (-1)\n")

	r, _ = run(t, "68K", "-fill", "1", "a", "b")
	test.ExpectEquality(t, r, 20)

	// unknown flags fall through to the default mode
	r, out = run(t, "-bogus")
	test.ExpectEquality(t, r, 20)
	test.ExpectSuccess(t, strings.HasPrefix(out, "* error in 68K mode"))

	r, _ = run(t, "68K", "-help")
	test.ExpectEquality(t, r, 0)
}
