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

package m68k

// Register index into Registers.
type Register int

// List of valid Register values.
const (
	D0 Register = iota
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	A0
	A1
	A2
	A3
	A4
	A5
	A6
	A7
	PC
	RegSR
	RegUSP
	ISP
	CAAR
	CACR
	DFC
	MSP
	SFC
	VBR
	EX
	RegCount
)

// RegisterNames for each Register.
var RegisterNames = [RegCount]string{
	"D0", "D1", "D2", "D3", "D4", "D5", "D6", "D7",
	"A0", "A1", "A2", "A3", "A4", "A5", "A6", "A7",
	"PC", "SR", "USP", "ISP",
	"CAAR", "CACR", "DFC", "MSP", "SFC", "VBR",
	"EX",
}

func (r Register) String() string {
	if r < 0 || r >= RegCount {
		return "?"
	}
	return RegisterNames[r]
}

// status register bits.
const (
	SRBitC  = 0
	SRBitV  = 1
	SRBitZ  = 2
	SRBitN  = 3
	SRBitX  = 4
	SRBitI0 = 8
	SRBitI1 = 9
	SRBitI2 = 10
	SRBitM  = 12
	SRBitS  = 13
	SRBitT0 = 14
	SRBitT1 = 15
)

// SRBitNames maps status register bits to their names.
var SRBitNames = map[int]string{
	SRBitC:  "C",
	SRBitV:  "V",
	SRBitZ:  "Z",
	SRBitN:  "N",
	SRBitX:  "X",
	SRBitI0: "I0",
	SRBitI1: "I1",
	SRBitI2: "I2",
	SRBitM:  "M",
	SRBitS:  "S",
	SRBitT0: "T0",
	SRBitT1: "T1",
}

// CACRBitNames maps 68030 cache control register bits to their names.
var CACRBitNames = map[int]string{
	0:  "EI",
	1:  "FI",
	2:  "CEI",
	3:  "CI",
	4:  "IBE",
	8:  "ED",
	9:  "FD",
	10: "CED",
	11: "CD",
	12: "DBE",
	13: "WA",
}

// Registers is a snapshot of CPU register values. The snapshot is owned by
// the caller and is never modified by this package.
type Registers [RegCount]uint32

// Get the value of a register.
func (r *Registers) Get(reg Register) uint32 {
	return r[reg]
}

// Set the value of a register.
func (r *Registers) Set(reg Register, v uint32) {
	r[reg] = v
}

// D returns the value of data register n.
func (r *Registers) D(n uint8) uint32 {
	return r[D0+Register(n&7)]
}

// A returns the value of address register n.
func (r *Registers) A(n uint8) uint32 {
	return r[A0+Register(n&7)]
}

// index returns the value of an index register. IndexNone is zero.
func (r *Registers) index(reg IndexReg) uint32 {
	switch {
	case reg <= IndexA7:
		return r[D0+Register(reg)]
	case reg == IndexPC:
		return r[PC]
	}
	return 0
}
