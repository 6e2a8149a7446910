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

// Package buffer provides the cursors used by the decoders to read target
// memory. Reader is a big-endian byte cursor for the 68k family and
// WordReader is a packed 24-bit word cursor for the DSP family.
//
// Both types are small values. Copying a cursor (by assignment or with the
// Copy() function) produces an independent cursor over the same underlying
// data, which allows a decoder to read speculatively without committing the
// caller's position.
//
// Neither cursor ever fails loudly. A read past the end of the data returns
// false and leaves the cursor where it was.
package buffer
