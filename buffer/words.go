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

// WordSize is the number of bytes in a packed DSP word.
const WordSize = 3

// WordReader is a cursor over a finite sequence of packed 24-bit words. Each
// word is stored as three big-endian bytes. Positions and lengths are counted
// in words. A trailing partial word cannot be read.
type WordReader struct {
	data []byte
	pos  int
}

// NewWordReader is the preferred method of initialisation for the WordReader
// type.
func NewWordReader(data []byte) WordReader {
	return WordReader{data: data}
}

// NewWordReaderFromWords packs the low 24 bits of each value into a new
// WordReader.
func NewWordReaderFromWords(words []uint32) WordReader {
	data := make([]byte, 0, len(words)*WordSize)
	for _, w := range words {
		data = append(data, byte(w>>16), byte(w>>8), byte(w))
	}
	return WordReader{data: data}
}

// Remaining returns the number of whole words not yet read.
func (r WordReader) Remaining() int {
	return len(r.data)/WordSize - r.pos
}

// Position returns the absolute offset of the cursor, in words.
func (r WordReader) Position() int {
	return r.pos
}

// Copy returns an independent cursor at the same position.
func (r WordReader) Copy() WordReader {
	return r
}

func (r WordReader) word(i int) uint32 {
	d := r.data[i*WordSize:]
	return uint32(d[0])<<16 | uint32(d[1])<<8 | uint32(d[2])
}

// Words returns the next n words without advancing the cursor. If fewer than n
// words remain then the remaining words are returned.
func (r WordReader) Words(n int) []uint32 {
	n = max(0, min(n, r.Remaining()))
	w := make([]uint32, n)
	for i := range w {
		w[i] = r.word(r.pos + i)
	}
	return w
}

// ReadWord reads one 24-bit word.
func (r *WordReader) ReadWord() (uint32, bool) {
	if r.Remaining() < 1 {
		return 0, false
	}
	v := r.word(r.pos)
	r.pos++
	return v, true
}

// Read copies the next n words and advances the cursor. The cursor is not
// moved if fewer than n words remain.
func (r *WordReader) Read(n int) ([]uint32, bool) {
	if n < 0 || n > r.Remaining() {
		return nil, false
	}
	w := r.Words(n)
	r.pos += n
	return w, true
}

// Advance moves the cursor forward by n words. The cursor stops at the last
// whole word.
func (r *WordReader) Advance(n int) {
	r.pos = max(r.pos, min(r.pos+n, len(r.data)/WordSize))
}
