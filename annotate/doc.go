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

// Package annotate runs a Lua script over lines of disassembly. The script
// returns a comment for each line, which is written alongside the line by
// the disassembly package.
//
// An example script that marks writes to the palette:
//
//	function annotate(address, text)
//	  if string.find(text, "$ff824", 1, true) then
//	    return "palette at " .. hex(address)
//	  end
//	end
package annotate
