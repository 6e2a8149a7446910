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
	"sync"

	"github.com/hrdb/hrdisasm/buffer"
	"github.com/hrdb/hrdisasm/dsp56"
	"github.com/hrdb/hrdisasm/m68k"
)

// Iterator68 decodes 68k lines one at a time.
//
// Iteration can be restarted from any address in the data with Start(). An
// address that falls inside an instruction decodes from that address
// regardless.
type Iterator68 struct {
	data    []byte
	s       m68k.Settings
	address uint32

	r    buffer.Reader
	crit sync.Mutex
}

// NewIterator68 is the preferred method of initialisation for the Iterator68
// type. The address argument is the address of the first byte of data.
func NewIterator68(data []byte, s m68k.Settings, address uint32) *Iterator68 {
	return &Iterator68{
		data:    data,
		s:       s,
		address: address,
		r:       buffer.NewReader(data),
	}
}

// Start a new iteration at the specified address. Returns false if the
// address is outside of the data or if there is not enough data for an
// instruction.
func (itr *Iterator68) Start(address uint32) (Line68, bool) {
	itr.crit.Lock()
	defer itr.crit.Unlock()

	itr.r = buffer.NewReader(itr.data)
	if address < itr.address || address-itr.address >= uint32(len(itr.data)) {
		itr.r.Advance(len(itr.data))
		return Line68{}, false
	}
	itr.r.Advance(int(address - itr.address))

	return itr.next()
}

// Next line in the iteration. Returns false when there is no more data.
func (itr *Iterator68) Next() (Line68, bool) {
	itr.crit.Lock()
	defer itr.crit.Unlock()
	return itr.next()
}

func (itr *Iterator68) next() (Line68, bool) {
	if itr.r.Remaining() < 2 {
		return Line68{}, false
	}
	return line68(&itr.r, itr.s, itr.address+uint32(itr.r.Position())), true
}

// Iterator56 decodes DSP56k lines one at a time. Addresses are word
// addresses.
type Iterator56 struct {
	data    []byte
	s       dsp56.Settings
	address uint32
	words   uint32

	r    buffer.WordReader
	crit sync.Mutex
}

// NewIterator56 is the preferred method of initialisation for the Iterator56
// type. The address argument is the word address of the first word of data.
func NewIterator56(data []byte, s dsp56.Settings, address uint32) *Iterator56 {
	return &Iterator56{
		data:    data,
		s:       s,
		address: address,
		words:   uint32(len(data) / buffer.WordSize),
		r:       buffer.NewWordReader(data),
	}
}

// Start a new iteration at the specified word address. Returns false if the
// address is outside of the data.
func (itr *Iterator56) Start(address uint32) (Line56, bool) {
	itr.crit.Lock()
	defer itr.crit.Unlock()

	itr.r = buffer.NewWordReader(itr.data)
	if address < itr.address || address-itr.address >= itr.words {
		itr.r.Advance(int(itr.words))
		return Line56{}, false
	}
	itr.r.Advance(int(address - itr.address))

	return itr.next()
}

// Next line in the iteration. Returns false when there is no more data.
func (itr *Iterator56) Next() (Line56, bool) {
	itr.crit.Lock()
	defer itr.crit.Unlock()
	return itr.next()
}

func (itr *Iterator56) next() (Line56, bool) {
	if itr.r.Remaining() < 1 {
		return Line56{}, false
	}
	return line56(&itr.r, itr.s, itr.address+uint32(itr.r.Position())), true
}
