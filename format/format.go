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

// Package format contains the numeric formatting shared by the 68k and DSP
// formatters. All hexadecimal values use the $ prefix and lower case digits.
package format

import (
	"fmt"
	"strings"
)

// Style selects how signed displacements are printed.
type Style int

// List of valid Style values.
const (
	// signed decimal. for example, -4(a0)
	Decimal Style = iota

	// signed hexadecimal. for example, -$4(a0)
	Hex
)

func (s Style) String() string {
	if s == Hex {
		return "hex"
	}
	return "decimal"
}

// Hex32 formats a value as "$x".
func Hex32(v uint32) string {
	return fmt.Sprintf("$%x", v)
}

// AbsWord formats a 16-bit absolute address. Addresses with bit 15 set are
// shown sign extended, eg. "$ffff8800". The ".w" suffix is not added.
func AbsWord(v uint16) string {
	if v&0x8000 != 0 {
		return fmt.Sprintf("$ffff%04x", v)
	}
	return fmt.Sprintf("$%x", v)
}

// Signed formats a value as signed decimal or signed hexadecimal.
func Signed(v int32, style Style) string {
	if style == Hex {
		if v >= 0 {
			return fmt.Sprintf("$%x", v)
		}
		return fmt.Sprintf("-$%x", -int64(v))
	}
	return fmt.Sprintf("%d", v)
}

// Bytecode formats the raw bytes of a 68k instruction as space separated
// big-endian words. A trailing odd byte is shown on its own.
func Bytecode(mem []byte) string {
	s := strings.Builder{}
	for i := 0; i < len(mem); i += 2 {
		if i > 0 {
			s.WriteString(" ")
		}
		if i+1 < len(mem) {
			s.WriteString(fmt.Sprintf("%02x%02x", mem[i], mem[i+1]))
		} else {
			s.WriteString(fmt.Sprintf("%02x", mem[i]))
		}
	}
	return s.String()
}

// Bytecode24 formats the raw words of a DSP instruction as space separated
// six digit values.
func Bytecode24(mem []uint32) string {
	s := make([]string, len(mem))
	for i, w := range mem {
		s[i] = fmt.Sprintf("%06x", w&0xffffff)
	}
	return strings.Join(s, " ")
}
