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

package dsp56

// Register identifies a DSP register. Registers before RegCount are part of
// the Registers snapshot. The registers after RegCount only appear as
// operands.
type Register int

// List of valid Register values.
const (
	X1 Register = iota
	X0
	Y1
	Y0
	A2
	A1
	A0
	B2
	B1
	B0
	R0
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	N0
	N1
	N2
	N3
	N4
	N5
	N6
	N7
	M0
	M1
	M2
	M3
	M4
	M5
	M6
	M7
	SR
	OMR
	SP
	SSH
	SSL
	LA
	LC

	// combined registers. these are recomputed by Registers.Set()
	A
	B
	X
	Y

	PC
	RegCount

	// long move pairs
	A10
	B10
	AB
	BA

	// status register halves used by andi and ori
	MR
	CCR

	RegNone Register = -1
)

var registerNames = [...]string{
	"x1", "x0", "y1", "y0",
	"a2", "a1", "a0", "b2", "b1", "b0",
	"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
	"n0", "n1", "n2", "n3", "n4", "n5", "n6", "n7",
	"m0", "m1", "m2", "m3", "m4", "m5", "m6", "m7",
	"sr", "omr", "sp", "ssh", "ssl", "la", "lc",
	"a", "b", "x", "y",
	"pc", "",
	"a10", "b10", "ab", "ba",
	"mr", "ccr",
}

func (r Register) String() string {
	if r < 0 || int(r) >= len(registerNames) {
		return "?"
	}
	return registerNames[r]
}

// Status register bits.
const (
	SRBitC  = 0
	SRBitV  = 1
	SRBitZ  = 2
	SRBitN  = 3
	SRBitU  = 4
	SRBitE  = 5
	SRBitL  = 6
	SRBitS  = 7
	SRBitI0 = 8
	SRBitI1 = 9
	SRBitS0 = 10
	SRBitS1 = 11
	SRBitT  = 13
	SRBitDM = 14
	SRBitLF = 15
)

// Registers is a snapshot of DSP register values. Values are 64 bits wide to
// hold the combined accumulator registers.
type Registers [RegCount]uint64

// Get the value of a register. Operand only registers are always zero.
func (r *Registers) Get(reg Register) uint64 {
	if reg < 0 || reg >= RegCount {
		return 0
	}
	return r[reg]
}

// Set the value of a register. Setting a part of an accumulator or of the X
// and Y input registers updates the combined register.
func (r *Registers) Set(reg Register, v uint64) {
	if reg < 0 || reg >= RegCount {
		return
	}
	r[reg] = v

	switch reg {
	case A2, A1, A0:
		r[A] = r[A2]<<48 | r[A1]<<24 | r[A0]
	case B2, B1, B0:
		r[B] = r[B2]<<48 | r[B1]<<24 | r[B0]
	case X1, X0:
		r[X] = r[X1]<<24 | r[X0]
	case Y1, Y0:
		r[Y] = r[Y1]<<24 | r[Y0]
	}
}

// rn returns the value of address register Rn.
func (r *Registers) rn(n uint8) uint64 {
	return r[R0+Register(n&7)]
}

// nn returns the value of offset register Nn.
func (r *Registers) nn(n uint8) uint64 {
	return r[N0+Register(n&7)]
}
