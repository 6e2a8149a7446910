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
	"github.com/hrdb/hrdisasm/buffer"
	"github.com/hrdb/hrdisasm/dsp56"
	"github.com/hrdb/hrdisasm/logger"
	"github.com/hrdb/hrdisasm/m68k"
)

// Block68 disassembles data from the beginning. The address argument is the
// address of the first byte. Decoding stops when fewer than two bytes remain
// or when maxLines lines have been decoded. A maxLines value of zero or less
// means there is no line limit.
func Block68(data []byte, s m68k.Settings, address uint32, maxLines int) []Line68 {
	var lines []Line68
	var none int

	r := buffer.NewReader(data)
	for r.Remaining() >= 2 {
		if maxLines > 0 && len(lines) >= maxLines {
			break
		}
		l := line68(&r, s, address+uint32(r.Position()))
		if l.Inst.Opcode == m68k.None {
			none++
		}
		lines = append(lines, l)
	}

	logger.Logf(logger.Allow, "disassembly", "%s: %d lines (%d undecodable)", s.CPU, len(lines), none)

	return lines
}

// Block56 disassembles DSP data from the beginning. The address argument is
// the word address of the first word. Decoding stops when no words remain or
// when maxLines lines have been decoded.
func Block56(data []byte, s dsp56.Settings, address uint32, maxLines int) []Line56 {
	var lines []Line56
	var invalid int

	r := buffer.NewWordReader(data)
	for r.Remaining() >= 1 {
		if maxLines > 0 && len(lines) >= maxLines {
			break
		}
		l := line56(&r, s, address+uint32(r.Position()))
		if l.Inst.Opcode == dsp56.Invalid {
			invalid++
		}
		lines = append(lines, l)
	}

	logger.Logf(logger.Allow, "disassembly", "dsp56000: %d lines (%d undecodable)", len(lines), invalid)

	return lines
}
