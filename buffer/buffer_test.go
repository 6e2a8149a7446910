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

package buffer_test

import (
	"testing"

	"github.com/hrdb/hrdisasm/buffer"
	"github.com/hrdb/hrdisasm/test"
)

func TestReader(t *testing.T) {
	r := buffer.NewReader([]byte{0x4e, 0x71, 0x12, 0x34, 0x56, 0x78, 0x9a})
	test.ExpectEquality(t, r.Remaining(), 7)

	w, ok := r.ReadWord()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, w, uint16(0x4e71))
	test.ExpectEquality(t, r.Position(), 2)

	l, ok := r.ReadLong()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, l, uint32(0x12345678))

	// underrun does not move the cursor
	_, ok = r.ReadWord()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, r.Position(), 6)

	b, ok := r.ReadUint8()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, uint8(0x9a))
	test.ExpectEquality(t, r.Remaining(), 0)

	_, ok = r.ReadUint8()
	test.ExpectFailure(t, ok)
}

func TestReaderCopy(t *testing.T) {
	r := buffer.NewReader([]byte{0x00, 0x01, 0x02, 0x03})
	c := r.Copy()

	_, _ = c.ReadLong()
	test.ExpectEquality(t, c.Remaining(), 0)
	test.ExpectEquality(t, r.Remaining(), 4)

	// assignment is also an independent copy
	d := r
	d.Advance(1)
	test.ExpectEquality(t, r.Position(), 0)
	test.ExpectEquality(t, d.Position(), 1)
}

func TestReaderRead(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	r := buffer.NewReader(data)

	b, ok := r.Read(2)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, len(b), 2)

	// returned bytes are a copy
	b[0] = 0xff
	test.ExpectEquality(t, data[0], uint8(0x01))

	_, ok = r.Read(2)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, r.Position(), 2)

	test.ExpectEquality(t, len(r.Bytes(10)), 1)
	test.ExpectEquality(t, r.Position(), 2)

	r.Advance(100)
	test.ExpectEquality(t, r.Position(), 3)
	test.ExpectEquality(t, r.Remaining(), 0)
}

func TestWordReader(t *testing.T) {
	r := buffer.NewWordReader([]byte{0x0a, 0xf0, 0x80, 0x00, 0x12, 0x34, 0xff})
	test.ExpectEquality(t, r.Remaining(), 2)

	w, ok := r.ReadWord()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, w, uint32(0x0af080))

	c := r.Copy()
	w, ok = c.ReadWord()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, w, uint32(0x001234))
	test.ExpectEquality(t, r.Position(), 1)

	// the partial word at the end is never readable
	_, ok = c.ReadWord()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, c.Position(), 2)

	_, ok = r.Read(2)
	test.ExpectFailure(t, ok)
	r.Advance(5)
	test.ExpectEquality(t, r.Position(), 2)
}

func TestWordReaderFromWords(t *testing.T) {
	r := buffer.NewWordReaderFromWords([]uint32{0x123456, 0xff000000 | 0xabcdef})
	ws, ok := r.Read(2)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ws[0], uint32(0x123456))
	test.ExpectEquality(t, ws[1], uint32(0xabcdef))
}
