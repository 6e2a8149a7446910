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

package easyterm

import (
	"io"
	"strings"

	"github.com/hrdb/hrdisasm/easyterm/ansi"
)

// Pager writes lines to the terminal a screenful at a time, waiting for a key
// press between pages. Output stops if the user presses q, escape or
// ctrl-c.
type Pager struct {
	term  *Terminal
	w     io.Writer
	count int
	quit  bool
}

// NewPager is the preferred method of initialisation for the Pager type. The
// terminal should already be initialised.
func NewPager(term *Terminal, w io.Writer) *Pager {
	return &Pager{
		term: term,
		w:    w,
	}
}

// Quit returns true if the user has asked for paging to stop.
func (pg *Pager) Quit() bool {
	return pg.quit
}

// Write implements the io.Writer interface. Each newline counts towards the
// page size.
func (pg *Pager) Write(p []byte) (int, error) {
	if pg.quit {
		return len(p), nil
	}

	n, err := pg.w.Write(p)
	if err != nil {
		return n, err
	}

	pg.count += strings.Count(string(p), "\n")

	rows := int(pg.term.Geometry().Rows)
	if rows > 1 && pg.count >= rows-1 {
		pg.count = 0
		pg.term.Print("%s-- more --%s", ansi.PenStyles["inverse"], ansi.NormalPen)
		pg.term.CBreakMode()
		k, err := pg.term.ReadKey()
		pg.term.CanonicalMode()
		pg.term.Print("\r%s", ansi.ClearLine)
		if err != nil {
			return n, err
		}
		switch k {
		case 'q', 'Q', KeyEsc, KeyInterrupt, KeyEOF:
			pg.quit = true
		}
	}

	return n, nil
}
