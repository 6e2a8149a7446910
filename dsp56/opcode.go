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

// Opcode identifies a DSP instruction.
type Opcode int

// List of valid Opcode values. The conditional families JCC to JLE, JSCC to
// JSLE and TCC to TLE are in condition code order.
const (
	Invalid Opcode = iota

	// data ALU operations of parallel move instructions
	MOVE
	TFR
	ADDR
	TST
	CMP
	SUBR
	CMPM
	ADD
	RND
	ADDL
	CLR
	SUB
	SUBL
	NOT
	ADC
	ASR
	LSR
	SBC
	ABS
	ROR
	ASL
	LSL
	NEG
	ROL
	OR
	EOR
	AND
	MPY
	MPYR
	MAC
	MACR

	ANDI
	ORI
	DIV
	NORM
	LUA
	MOVEC
	MOVEM
	MOVEP

	BCLR
	BSET
	BCHG
	BTST
	JCLR
	JSET
	JSCLR
	JSSET

	DO
	REP
	ENDDO
	JMP
	JSR

	JCC
	JGE
	JNE
	JPL
	JNN
	JEC
	JLC
	JGT
	JCS
	JLT
	JEQ
	JMI
	JNR
	JES
	JLS
	JLE

	JSCC
	JSGE
	JSNE
	JSPL
	JSNN
	JSEC
	JSLC
	JSGT
	JSCS
	JSLT
	JSEQ
	JSMI
	JSNR
	JSES
	JSLS
	JSLE

	TCC
	TGE
	TNE
	TPL
	TNN
	TEC
	TLC
	TGT
	TCS
	TLT
	TEQ
	TMI
	TNR
	TES
	TLS
	TLE

	NOP
	RTI
	RTS
	ILLEGAL
	SWI
	RESET
	WAIT
	STOP

	numOpcodes
)

// ConditionNames are the assembler names of the 16 condition codes.
var ConditionNames = [16]string{
	"cc", "ge", "ne", "pl", "nn", "ec", "lc", "gt",
	"cs", "lt", "eq", "mi", "nr", "es", "ls", "le",
}

var opcodeNames = [numOpcodes]string{
	Invalid: "dc",

	MOVE: "move", TFR: "tfr", ADDR: "addr", TST: "tst", CMP: "cmp", SUBR: "subr", CMPM: "cmpm",
	ADD: "add", RND: "rnd", ADDL: "addl", CLR: "clr", SUB: "sub", SUBL: "subl", NOT: "not",
	ADC: "adc", ASR: "asr", LSR: "lsr", SBC: "sbc", ABS: "abs", ROR: "ror",
	ASL: "asl", LSL: "lsl", NEG: "neg", ROL: "rol",
	OR: "or", EOR: "eor", AND: "and",
	MPY: "mpy", MPYR: "mpyr", MAC: "mac", MACR: "macr",
	ANDI: "andi", ORI: "ori", DIV: "div", NORM: "norm", LUA: "lua",
	MOVEC: "movec", MOVEM: "movem", MOVEP: "movep",
	BCLR: "bclr", BSET: "bset", BCHG: "bchg", BTST: "btst",
	JCLR: "jclr", JSET: "jset", JSCLR: "jsclr", JSSET: "jsset",
	DO: "do", REP: "rep", ENDDO: "enddo", JMP: "jmp", JSR: "jsr",
	NOP: "nop", RTI: "rti", RTS: "rts", ILLEGAL: "illegal", SWI: "swi",
	RESET: "reset", WAIT: "wait", STOP: "stop",
}

func init() {
	for cc := 0; cc < 16; cc++ {
		opcodeNames[JCC+Opcode(cc)] = "j" + ConditionNames[cc]
		opcodeNames[JSCC+Opcode(cc)] = "js" + ConditionNames[cc]
		opcodeNames[TCC+Opcode(cc)] = "t" + ConditionNames[cc]
	}
}

func (op Opcode) String() string {
	if op < 0 || op >= numOpcodes {
		return "?"
	}
	return opcodeNames[op]
}

// Condition returns the condition code of a Jcc, JScc or Tcc opcode.
func Condition(op Opcode) (uint8, bool) {
	switch {
	case op >= JCC && op <= JLE:
		return uint8(op - JCC), true
	case op >= JSCC && op <= JSLE:
		return uint8(op - JSCC), true
	case op >= TCC && op <= TLE:
		return uint8(op - TCC), true
	}
	return 0, false
}
