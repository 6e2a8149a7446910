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

package buffer

// Reader is a cursor over a finite sequence of bytes. Multi-byte values are
// read in big-endian order.
type Reader struct {
	data []byte
	pos  int
}

// NewReader is the preferred method of initialisation for the Reader type.
func NewReader(data []byte) Reader {
	return Reader{data: data}
}

// Remaining returns the number of unread bytes.
func (r Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Position returns the absolute offset of the cursor in the data.
func (r Reader) Position() int {
	return r.pos
}

// Copy returns an independent cursor at the same position.
func (r Reader) Copy() Reader {
	return r
}

// Bytes returns a copy of the next n bytes without advancing the cursor. If
// fewer than n bytes remain then the remaining bytes are returned.
func (r Reader) Bytes(n int) []byte {
	n = max(0, min(n, r.Remaining()))
	b := make([]byte, n)
	copy(b, r.data[r.pos:])
	return b
}

// Read copies the next n bytes and advances the cursor. The cursor is not
// moved if fewer than n bytes remain.
func (r *Reader) Read(n int) ([]byte, bool) {
	if n < 0 || n > r.Remaining() {
		return nil, false
	}
	b := r.Bytes(n)
	r.pos += n
	return b, true
}

// ReadUint8 reads one byte.
func (r *Reader) ReadUint8() (uint8, bool) {
	if r.Remaining() < 1 {
		return 0, false
	}
	v := r.data[r.pos]
	r.pos++
	return v, true
}

// ReadWord reads a big-endian 16-bit value.
func (r *Reader) ReadWord() (uint16, bool) {
	if r.Remaining() < 2 {
		return 0, false
	}
	v := uint16(r.data[r.pos])<<8 | uint16(r.data[r.pos+1])
	r.pos += 2
	return v, true
}

// ReadLong reads a big-endian 32-bit value.
func (r *Reader) ReadLong() (uint32, bool) {
	if r.Remaining() < 4 {
		return 0, false
	}
	d := r.data[r.pos:]
	v := uint32(d[0])<<24 | uint32(d[1])<<16 | uint32(d[2])<<8 | uint32(d[3])
	r.pos += 4
	return v, true
}

// Advance moves the cursor forward by n bytes. The cursor stops at the end of
// the data.
func (r *Reader) Advance(n int) {
	r.pos = max(r.pos, min(r.pos+n, len(r.data)))
}
