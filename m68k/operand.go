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

// Operand is one of the operand types in this package. A nil Operand is an
// absent operand slot.
type Operand interface {
	isOperand()
}

// DataReg is data register direct, eg. d0.
type DataReg struct {
	Reg uint8
}

// AddrReg is address register direct, eg. a0.
type AddrReg struct {
	Reg uint8
}

// Indirect is address register indirect, eg. (a0).
type Indirect struct {
	Reg uint8
}

// PostInc is address register indirect with postincrement, eg. (a0)+.
type PostInc struct {
	Reg uint8
}

// PreDec is address register indirect with predecrement, eg. -(a0).
type PreDec struct {
	Reg uint8
}

// Disp16 is address register indirect with displacement, eg. 4(a0).
type Disp16 struct {
	Reg  uint8
	Disp int16
}

// Indexed is address register indirect with index and an 8-bit displacement,
// eg. 4(a0,d0.w*2).
type Indexed struct {
	Reg   uint8
	Disp  int8
	Index Index
}

// AbsWord is a sign extended 16-bit absolute address.
type AbsWord struct {
	Addr uint16
}

// AbsLong is a 32-bit absolute address.
type AbsLong struct {
	Addr uint32
}

// PCDisp is program counter relative with displacement. Disp is relative to
// the start of the instruction.
type PCDisp struct {
	Disp int32
}

// PCIndexed is program counter relative with index. Disp is relative to the
// start of the instruction.
type PCIndexed struct {
	Disp  int32
	Index Index
}

// Branch is the target of a relative branch. Disp is relative to the start
// of the instruction.
type Branch struct {
	Disp int32
}

// RegList is the register list of a movem instruction. Bit 0 is d0 and bit
// 15 is a7, regardless of the addressing mode.
type RegList struct {
	Mask uint16
}

// Immediate data.
type Immediate struct {
	Value uint32
}

// SR is the status register pseudo-operand.
type SR struct{}

// CCR is the condition code register pseudo-operand.
type CCR struct{}

// USP is the user stack pointer pseudo-operand.
type USP struct{}

// ControlReg is a movec control register.
type ControlReg struct {
	Code uint16
}

// RegPair is a pair of data registers, eg. d0:d1.
type RegPair struct {
	R1 uint8
	R2 uint8
}

// IndirectPair is a pair of indirect registers used by cas2, eg. (a0):(d1).
type IndirectPair struct {
	R1 IndexReg
	R2 IndexReg
}

// PostIndexed is memory indirect post-indexed, eg. ([bd,an],xn,od).
type PostIndexed struct {
	FullExt
}

// PreIndexed is memory indirect pre-indexed, eg. ([bd,an,xn],od).
type PreIndexed struct {
	FullExt
}

// MemoryIndirect is memory indirect with the index suppressed, eg.
// ([bd,an],od).
type MemoryIndirect struct {
	FullExt
}

// NoMemoryIndirect is the full extension form without a memory fetch, eg.
// (bd,an,xn).
type NoMemoryIndirect struct {
	FullExt
}

func (DataReg) isOperand()          {}
func (AddrReg) isOperand()          {}
func (Indirect) isOperand()         {}
func (PostInc) isOperand()          {}
func (PreDec) isOperand()           {}
func (Disp16) isOperand()           {}
func (Indexed) isOperand()          {}
func (AbsWord) isOperand()          {}
func (AbsLong) isOperand()          {}
func (PCDisp) isOperand()           {}
func (PCIndexed) isOperand()        {}
func (Branch) isOperand()           {}
func (RegList) isOperand()          {}
func (Immediate) isOperand()        {}
func (SR) isOperand()               {}
func (CCR) isOperand()              {}
func (USP) isOperand()              {}
func (ControlReg) isOperand()       {}
func (RegPair) isOperand()          {}
func (IndirectPair) isOperand()     {}
func (PostIndexed) isOperand()      {}
func (PreIndexed) isOperand()       {}
func (MemoryIndirect) isOperand()   {}
func (NoMemoryIndirect) isOperand() {}

// IndexReg is a register that can be used as an index or as the base of a
// full extension operand.
type IndexReg uint8

// List of valid IndexReg values.
const (
	IndexD0 IndexReg = iota
	IndexD1
	IndexD2
	IndexD3
	IndexD4
	IndexD5
	IndexD6
	IndexD7
	IndexA0
	IndexA1
	IndexA2
	IndexA3
	IndexA4
	IndexA5
	IndexA6
	IndexA7
	IndexPC
	IndexNone
)

var indexRegNames = [...]string{
	"d0", "d1", "d2", "d3", "d4", "d5", "d6", "d7",
	"a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7",
	"pc", "",
}

func (r IndexReg) String() string {
	if int(r) >= len(indexRegNames) {
		return "?"
	}
	return indexRegNames[r]
}

// Index is the index part of an indexed operand.
type Index struct {
	Reg IndexReg

	// long index. a word index is sign extended before scaling
	Long bool

	// the index is multiplied by 1<<Scale
	Scale uint8
}

// FullExt is the payload shared by the four full extension word operands.
type FullExt struct {
	// IndexPC or one of the address registers
	Base IndexReg

	// for a PC base the displacement is relative to the start of the
	// instruction
	BaseDisp int32

	Index     Index
	OuterDisp int32

	// which of the components are present: base displacement, base register,
	// index and outer displacement
	Used [4]bool
}
