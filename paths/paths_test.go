//go:build !release

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

package paths_test

import (
	"os"
	"strings"
	"testing"

	"github.com/hrdb/hrdisasm/paths"
	"github.com/hrdb/hrdisasm/test"
)

func TestPaths(t *testing.T) {
	defer os.RemoveAll(".hrdisasm")

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".hrdisasm/foo/bar/baz")

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".hrdisasm/foo/bar")

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".hrdisasm/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".hrdisasm")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("disasm", "boot")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "disasm_boot_"))

	fn = paths.UniqueFilename("disasm", "  ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "disasm_"))
	test.ExpectFailure(t, strings.HasPrefix(fn, "disasm__"))
}
