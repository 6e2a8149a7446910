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
	"sort"
	"strings"
	"sync"
)

// Symbol is a named address. A Size of zero means the symbol covers every
// address up to the next symbol.
type Symbol struct {
	Name    string
	Address uint32
	Size    uint32
	Comment string
}

// Table of symbols sorted by address.
type Table struct {
	crit sync.Mutex

	// sorted by address. addresses are unique
	symbols []Symbol

	// the longest symbol name in the table
	maxWidth int
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{}
}

// make sure symbol is normalised:
//
//	no leading or trailing space
//	internal space compressed and replaced with underscores
func normaliseSymbol(symbol string) string {
	s := strings.Fields(symbol)
	return strings.Join(s, "_")
}

// make sure symbol is unique in the table. should be called in critical
// section.
func (t *Table) uniqueSymbol(symbol string) string {
	unique := symbol

	add := 1
	_, ok := t.findName(unique)
	for ok {
		unique = fmt.Sprintf("%s_%d", symbol, add)
		add++
		_, ok = t.findName(unique)
	}
	return unique
}

// Add a symbol to the table. Returns false if the name is empty or if there
// is already a symbol at the address. Names that are already in the table
// are given a numeric suffix.
func (t *Table) Add(name string, address uint32, size uint32, comment string) bool {
	t.crit.Lock()
	defer t.crit.Unlock()

	name = normaliseSymbol(name)
	if name == "" {
		return false
	}

	i := t.search(address)
	if i < len(t.symbols) && t.symbols[i].Address == address {
		return false
	}

	s := Symbol{
		Name:    t.uniqueSymbol(name),
		Address: address,
		Size:    size,
		Comment: comment,
	}

	t.symbols = append(t.symbols, Symbol{})
	copy(t.symbols[i+1:], t.symbols[i:])
	t.symbols[i] = s

	t.maxWidth = max(t.maxWidth, len(s.Name))

	return true
}

// index of the first symbol with an address greater than or equal to the
// address. should be called in critical section.
func (t *Table) search(address uint32) int {
	return sort.Search(len(t.symbols), func(i int) bool {
		return t.symbols[i].Address >= address
	})
}

// Find the symbol at exactly the address.
func (t *Table) Find(address uint32) (Symbol, bool) {
	t.crit.Lock()
	defer t.crit.Unlock()

	i := t.search(address)
	if i < len(t.symbols) && t.symbols[i].Address == address {
		return t.symbols[i], true
	}
	return Symbol{}, false
}

// FindLowerOrEqual finds the symbol with the highest address that is not
// above the address. If sizeCheck is true then the address must also be
// inside the symbol's size.
func (t *Table) FindLowerOrEqual(address uint32, sizeCheck bool) (Symbol, bool) {
	t.crit.Lock()
	defer t.crit.Unlock()

	i := t.search(address)
	if i < len(t.symbols) && t.symbols[i].Address == address {
		return t.symbols[i], true
	}
	if i == 0 {
		return Symbol{}, false
	}

	s := t.symbols[i-1]
	if sizeCheck && s.Size > 0 && address-s.Address >= s.Size {
		return Symbol{}, false
	}
	return s, true
}

// FindName searches for the named symbol. The search is case insensitive.
func (t *Table) FindName(name string) (Symbol, bool) {
	t.crit.Lock()
	defer t.crit.Unlock()
	return t.findName(normaliseSymbol(name))
}

func (t *Table) findName(name string) (Symbol, bool) {
	for _, s := range t.symbols {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Symbol{}, false
}

// Describe an address as a symbol name plus an offset. For example,
// "main+$1a". Returns the empty string if there is no suitable symbol.
func (t *Table) Describe(address uint32) string {
	s, ok := t.FindLowerOrEqual(address, true)
	if !ok {
		return ""
	}
	if address == s.Address {
		return s.Name
	}
	return fmt.Sprintf("%s+$%x", s.Name, address-s.Address)
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	t.crit.Lock()
	defer t.crit.Unlock()
	return len(t.symbols)
}

// MaxWidth returns the number of characters required by the longest symbol
// name.
func (t *Table) MaxWidth() int {
	t.crit.Lock()
	defer t.crit.Unlock()
	return t.maxWidth
}
