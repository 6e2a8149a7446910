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

// Operand is one of the operand types in this file.
type Operand interface {
	isOperand()
}

// Space is the memory space of a memory operand.
type Space int

// List of valid Space values.
const (
	SpaceNone Space = iota
	SpaceX
	SpaceY
	SpaceL
	SpaceP
)

var spacePrefix = [...]string{"", "x:", "y:", "l:", "p:"}

func (s Space) String() string {
	if s < 0 || int(s) >= len(spacePrefix) {
		return "?"
	}
	return spacePrefix[s]
}

// IndirectMode is the addressing mode of an Indirect operand. The values
// match the MMM field of an effective address.
type IndirectMode int

// List of valid IndirectMode values.
const (
	PostDecN IndirectMode = 0 // (Rn)-Nn
	PostIncN IndirectMode = 1 // (Rn)+Nn
	PostDec  IndirectMode = 2 // (Rn)-
	PostInc  IndirectMode = 3 // (Rn)+
	NoUpdate IndirectMode = 4 // (Rn)
	IndexedN IndirectMode = 5 // (Rn+Nn)
	PreDec   IndirectMode = 7 // -(Rn)
)

// ImmShort is an immediate value encoded in the instruction word.
type ImmShort struct {
	Value uint32
}

// ImmLong is an immediate value in an extension word.
type ImmLong struct {
	Value uint32
}

// Reg is a register operand.
type Reg struct {
	Reg Register
}

// Indirect is address register indirect addressing.
type Indirect struct {
	Mode  IndirectMode
	Space Space
	R     uint8
}

// AbsShort is an absolute address encoded in the instruction word.
type AbsShort struct {
	Space Space
	Addr  uint32
}

// AbsLong is an absolute address in an extension word.
type AbsLong struct {
	Space Space
	Addr  uint32
}

// IOShort is a peripheral address. The six bit field is an offset from
// $ffc0.
type IOShort struct {
	Space Space
	Addr  uint32
}

func (ImmShort) isOperand() {}
func (ImmLong) isOperand()  {}
func (Reg) isOperand()      {}
func (Indirect) isOperand() {}
func (AbsShort) isOperand() {}
func (AbsLong) isOperand()  {}
func (IOShort) isOperand()  {}

// IOBase is the address of the first peripheral register.
const IOBase = 0xffc0
