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

package display

// Clip indicates which end of the visible rows a branch target has been
// clamped to.
type Clip int

// List of valid Clip values.
const (
	ClipNone Clip = iota
	ClipTop
	ClipBottom
)

// Branch is a control flow arrow between two rows of a disassembly. Start is
// the row of the branching instruction and Stop is the row of the target.
type Branch struct {
	Start int
	Stop  int
	Depth int
	Clip  Clip
}

func (b Branch) span() (int, int) {
	if b.Start < b.Stop {
		return b.Start, b.Stop
	}
	return b.Stop, b.Start
}

// Layout assigns a lane depth to each branch. Targets outside the visible rows
// are clamped to the first or last row and marked with the Clip field.
// Branches that start outside the visible rows are dropped.
//
// Branches are chosen in turn by the number of branch ends they pass over,
// fewest first. Each chosen branch takes the lane one deeper than the deepest
// lane already used anywhere in its span.
func Layout(branches []Branch, rows int) []Branch {
	if rows <= 0 {
		return nil
	}

	l := make([]Branch, 0, len(branches))
	for _, b := range branches {
		if b.Start < 0 || b.Start >= rows {
			continue
		}
		b.Depth = 0
		b.Clip = ClipNone
		if b.Stop < 0 {
			b.Stop = 0
			b.Clip = ClipTop
		} else if b.Stop >= rows {
			b.Stop = rows - 1
			b.Clip = ClipBottom
		}
		l = append(l, b)
	}

	ends := make([]int, rows)
	for _, b := range l {
		ends[b.Start]++
		ends[b.Stop]++
	}

	score := make([]int, len(l))
	for i, b := range l {
		lo, hi := b.span()
		for r := lo; r <= hi; r++ {
			score[i] += ends[r]
		}
	}

	depths := make([]int, rows)
	done := make([]bool, len(l))
	for range l {
		c := -1
		for i := range l {
			if done[i] {
				continue
			}
			if c == -1 || score[i] < score[c] {
				c = i
			}
		}
		done[c] = true

		lo, hi := l[c].span()
		d := 0
		for r := lo; r <= hi; r++ {
			d = max(d, depths[r])
		}
		l[c].Depth = d
		for r := lo; r <= hi; r++ {
			depths[r] = d + 1
		}
	}

	return l
}

// Gutter draws branches that have been through Layout() as one string per
// row. The rightmost column of every string is next to the disassembly and
// holds the arrow heads.
func Gutter(branches []Branch, rows int) []string {
	if rows <= 0 {
		return nil
	}

	width := 1
	for _, b := range branches {
		width = max(width, b.Depth+2)
	}

	g := make([][]byte, rows)
	for r := range g {
		g[r] = make([]byte, width)
		for c := range g[r] {
			g[r][c] = ' '
		}
	}

	valid := func(b Branch) bool {
		return b.Start >= 0 && b.Start < rows && b.Stop >= 0 && b.Stop < rows
	}

	lane := func(b Branch) int {
		return width - 2 - b.Depth
	}

	for _, b := range branches {
		if !valid(b) {
			continue
		}
		lo, hi := b.span()
		for r := lo; r <= hi; r++ {
			g[r][lane(b)] = '|'
		}
	}

	end := func(r int, c int, head byte) {
		g[r][c] = '+'
		for i := c + 1; i < width-1; i++ {
			if g[r][i] == ' ' {
				g[r][i] = '-'
			}
		}
		if g[r][width-1] != '>' {
			g[r][width-1] = head
		}
	}

	for _, b := range branches {
		if !valid(b) {
			continue
		}
		c := lane(b)
		end(b.Start, c, '-')
		switch b.Clip {
		case ClipTop:
			g[b.Stop][c] = '^'
		case ClipBottom:
			g[b.Stop][c] = 'v'
		default:
			end(b.Stop, c, '>')
		}
	}

	s := make([]string, rows)
	for r := range g {
		s[r] = string(g[r])
	}
	return s
}
