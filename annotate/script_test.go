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

package annotate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hrdb/hrdisasm/annotate"
	"github.com/hrdb/hrdisasm/curated"
	"github.com/hrdb/hrdisasm/disassembly"
	"github.com/hrdb/hrdisasm/test"
)

// Script is used by the disassembly package through the Annotator interface
var _ disassembly.Annotator = (*annotate.Script)(nil)

const idle = `
function annotate(address, text)
	if text == "nop" then
		return "idle at " .. hex(address)
	end
	if text == "rts" then
		return 10
	end
	if text == "illegal" then
		error("illegal instruction")
	end
	return nil
end
`

func TestComment(t *testing.T) {
	scr, err := annotate.NewScript(idle)
	test.DemandSuccess(t, err)
	defer scr.Close()

	c, err := scr.Comment(0x1000, "nop")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, "idle at $1000")

	c, err = scr.Comment(0x1002, "move.l d0,d1")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, "")

	// non-string results are empty comments
	c, err = scr.Comment(0x1004, "rts")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, "")

	_, err = scr.Comment(0x1006, "illegal")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, annotate.ScriptError))

	// the script is still usable after an error
	c, err = scr.Comment(0xff8240, "nop")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, "idle at $ff8240")
}

func TestBadScript(t *testing.T) {
	_, err := annotate.NewScript("function annotate(")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, annotate.ScriptError))

	_, err = annotate.NewScript("x = 1")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, annotate.ScriptError))
}

func TestLoadScript(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "idle.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(idle), 0600))

	scr, err := annotate.LoadScript(fn)
	test.DemandSuccess(t, err)
	defer scr.Close()

	c, err := scr.Comment(0x20, "nop")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, "idle at $20")

	_, err = annotate.LoadScript(filepath.Join(t.TempDir(), "missing.lua"))
	test.ExpectFailure(t, err)
}
