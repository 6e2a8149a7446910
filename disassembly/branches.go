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
	"sort"

	"github.com/hrdb/hrdisasm/disassembly/display"
	"github.com/hrdb/hrdisasm/dsp56"
	"github.com/hrdb/hrdisasm/m68k"
)

// lineAt returns the index of the first line at or after the target address.
// Targets before the first line return -1 and targets after the last line
// return the number of lines.
func lineAt(n int, address func(int) uint32, target uint32) int {
	if n == 0 || target < address(0) {
		return -1
	}
	return sort.Search(n, func(i int) bool {
		return address(i) >= target
	})
}

// Branches68 lists the branches in a block of lines. The Start and Stop
// fields of each branch are line indexes. See lineAt() for how targets
// outside of the block are indexed.
func Branches68(lines []Line68) []display.Branch {
	address := func(i int) uint32 {
		return lines[i].Address
	}

	var b []display.Branch
	for i, l := range lines {
		if t, ok := m68k.BranchTarget(l.Inst, l.Address); ok {
			b = append(b, display.Branch{Start: i, Stop: lineAt(len(lines), address, t)})
		}
	}
	return b
}

// Branches56 lists the branches in a block of DSP lines. Loop ends and
// jumps are included.
func Branches56(lines []Line56) []display.Branch {
	address := func(i int) uint32 {
		return lines[i].Address
	}

	var b []display.Branch
	for i, l := range lines {
		if t, _, ok := dsp56.BranchTarget(l.Inst, l.Address); ok {
			b = append(b, display.Branch{Start: i, Stop: lineAt(len(lines), address, t)})
		}
	}
	return b
}
