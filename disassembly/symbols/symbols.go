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

package symbols

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hrdb/hrdisasm/curated"
	"github.com/hrdb/hrdisasm/logger"
)

// Sentinel error patterns.
const (
	SymbolsFileError = "symbols: %v"
)

// ReadSymbolsFile reads symbols from the named file into a new table. See
// ReadSymbols() for the format.
func ReadSymbolsFile(filename string) (*Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(SymbolsFileError, err)
	}
	defer func() {
		_ = f.Close()
	}()

	t := NewTable()
	if err := t.ReadSymbols(f); err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "symbols", "%d symbols from %s", t.Len(), filename)

	return t, nil
}

// ReadSymbols adds symbols to the table from a list in the style of nm
// output. Each line is a hex address, an optional single letter symbol type
// and the name:
//
//	00012a4c T main
//	$ff8240 palette
//
// Lines that cannot be parsed and lines beginning with # are ignored.
func (t *Table) ReadSymbols(r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return curated.Errorf(SymbolsFileError, err)
	}

	for _, ln := range strings.Split(string(b), "\n") {
		p := strings.Fields(ln)
		if len(p) < 2 || strings.HasPrefix(p[0], "#") {
			continue // for loop
		}

		a := strings.TrimPrefix(strings.TrimPrefix(p[0], "$"), "0x")
		address, err := strconv.ParseUint(a, 16, 32)
		if err != nil {
			continue // for loop
		}

		name := p[1]
		if len(p) > 2 && len(p[1]) == 1 {
			name = p[2]
		}

		if !t.Add(name, uint32(address), 0, "") {
			logger.Logf(logger.Allow, "symbols", "ignoring %s at $%x", name, address)
		}
	}

	return nil
}

// Write the table as a list of addresses and names.
func (t *Table) Write(output io.Writer) {
	t.crit.Lock()
	defer t.crit.Unlock()

	for _, s := range t.symbols {
		if s.Comment != "" {
			output.Write(fmt.Appendf(nil, "$%06x -> %s (%s)\n", s.Address, s.Name, s.Comment))
		} else {
			output.Write(fmt.Appendf(nil, "$%06x -> %s\n", s.Address, s.Name))
		}
	}
}
