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

// Opcode identifies an instruction. Each condition variant of Bcc, DBcc, Scc
// and TRAPcc is a separate opcode. The variants of each family are in
// condition code order.
type Opcode int

// List of valid Opcode values.
const (
	None Opcode = iota

	ORI
	ANDI
	SUBI
	ADDI
	EORI
	CMPI

	BTST
	BCHG
	BCLR
	BSET

	MOVEP
	MOVES
	CMP2
	CHK2
	CAS
	CAS2

	MOVE
	MOVEA

	NEGX
	CLR
	NEG
	NOT
	TST
	TAS
	NBCD
	SWAP
	EXT
	EXTB

	CHK
	LEA
	PEA
	LINK
	UNLK
	MOVEM

	MULU
	MULS
	DIVU
	DIVS
	DIVUL
	DIVSL

	TRAP
	TRAPV
	ILLEGAL
	RESET
	NOP
	STOP
	RTE
	RTD
	RTS
	RTR
	BKPT
	MOVEC

	JSR
	JMP

	ADDQ
	SUBQ
	MOVEQ

	OR
	AND
	EOR
	SUB
	ADD
	CMP
	CMPA
	CMPM
	SUBA
	ADDA
	SUBX
	ADDX
	ABCD
	SBCD
	PACK
	UNPK
	EXG

	ASL
	ASR
	LSL
	LSR
	ROXL
	ROXR
	ROL
	ROR

	BFTST
	BFEXTU
	BFCHG
	BFEXTS
	BFCLR
	BFFFO
	BFSET
	BFINS

	// Bcc. BSR occupies the slot of the "false" condition
	BRA
	BSR
	BHI
	BLS
	BCC
	BCS
	BNE
	BEQ
	BVC
	BVS
	BPL
	BMI
	BGE
	BLT
	BGT
	BLE

	DBT
	DBF
	DBHI
	DBLS
	DBCC
	DBCS
	DBNE
	DBEQ
	DBVC
	DBVS
	DBPL
	DBMI
	DBGE
	DBLT
	DBGT
	DBLE

	ST
	SF
	SHI
	SLS
	SCC
	SCS
	SNE
	SEQ
	SVC
	SVS
	SPL
	SMI
	SGE
	SLT
	SGT
	SLE

	TRAPT
	TRAPF
	TRAPHI
	TRAPLS
	TRAPCC
	TRAPCS
	TRAPNE
	TRAPEQ
	TRAPVC
	TRAPVS
	TRAPPL
	TRAPMI
	TRAPGE
	TRAPLT
	TRAPGT
	TRAPLE

	numOpcodes
)

// ConditionNames are the assembler names of the 16 condition codes.
var ConditionNames = [16]string{
	"t", "f", "hi", "ls", "cc", "cs", "ne", "eq",
	"vc", "vs", "pl", "mi", "ge", "lt", "gt", "le",
}

var opcodeNames = [numOpcodes]string{
	None: "dc.w",

	ORI: "ori", ANDI: "andi", SUBI: "subi", ADDI: "addi", EORI: "eori", CMPI: "cmpi",
	BTST: "btst", BCHG: "bchg", BCLR: "bclr", BSET: "bset",
	MOVEP: "movep", MOVES: "moves", CMP2: "cmp2", CHK2: "chk2", CAS: "cas", CAS2: "cas2",
	MOVE: "move", MOVEA: "movea",
	NEGX: "negx", CLR: "clr", NEG: "neg", NOT: "not", TST: "tst", TAS: "tas",
	NBCD: "nbcd", SWAP: "swap", EXT: "ext", EXTB: "extb",
	CHK: "chk", LEA: "lea", PEA: "pea", LINK: "link", UNLK: "unlk", MOVEM: "movem",
	MULU: "mulu", MULS: "muls", DIVU: "divu", DIVS: "divs", DIVUL: "divul", DIVSL: "divsl",
	TRAP: "trap", TRAPV: "trapv", ILLEGAL: "illegal", RESET: "reset", NOP: "nop",
	STOP: "stop", RTE: "rte", RTD: "rtd", RTS: "rts", RTR: "rtr", BKPT: "bkpt", MOVEC: "movec",
	JSR: "jsr", JMP: "jmp",
	ADDQ: "addq", SUBQ: "subq", MOVEQ: "moveq",
	OR: "or", AND: "and", EOR: "eor", SUB: "sub", ADD: "add", CMP: "cmp", CMPA: "cmpa",
	CMPM: "cmpm", SUBA: "suba", ADDA: "adda", SUBX: "subx", ADDX: "addx",
	ABCD: "abcd", SBCD: "sbcd", PACK: "pack", UNPK: "unpk", EXG: "exg",
	ASL: "asl", ASR: "asr", LSL: "lsl", LSR: "lsr", ROXL: "roxl", ROXR: "roxr", ROL: "rol", ROR: "ror",
	BFTST: "bftst", BFEXTU: "bfextu", BFCHG: "bfchg", BFEXTS: "bfexts",
	BFCLR: "bfclr", BFFFO: "bfffo", BFSET: "bfset", BFINS: "bfins",
}

func init() {
	for cc := 0; cc < 16; cc++ {
		opcodeNames[BRA+Opcode(cc)] = "b" + ConditionNames[cc]
		opcodeNames[DBT+Opcode(cc)] = "db" + ConditionNames[cc]
		opcodeNames[ST+Opcode(cc)] = "s" + ConditionNames[cc]
		opcodeNames[TRAPT+Opcode(cc)] = "trap" + ConditionNames[cc]
	}
	opcodeNames[BRA] = "bra"
	opcodeNames[BSR] = "bsr"
}

func (op Opcode) String() string {
	if op < 0 || op >= numOpcodes {
		return "?"
	}
	return opcodeNames[op]
}

// Condition returns the condition code of a conditional opcode. BRA and DBT
// return the "true" condition. BSR is not conditional.
func Condition(op Opcode) (uint8, bool) {
	switch {
	case op == BSR:
		return 0, false
	case op >= BRA && op <= BLE:
		return uint8(op - BRA), true
	case op >= DBT && op <= DBLE:
		return uint8(op - DBT), true
	case op >= ST && op <= SLE:
		return uint8(op - ST), true
	case op >= TRAPT && op <= TRAPLE:
		return uint8(op - TRAPT), true
	}
	return 0, false
}

// Suffix is the size suffix printed after the opcode.
type Suffix int

// List of valid Suffix values.
const (
	SuffixNone Suffix = iota
	SuffixByte
	SuffixWord
	SuffixLong
	SuffixShort
)

func (s Suffix) String() string {
	switch s {
	case SuffixByte:
		return ".b"
	case SuffixWord:
		return ".w"
	case SuffixLong:
		return ".l"
	case SuffixShort:
		return ".s"
	}
	return ""
}
