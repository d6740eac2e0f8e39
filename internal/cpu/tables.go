package cpu

import "github.com/timothewt/GameBoy/internal/register"

// primaryTable and cbTable are the two immutable 256-entry dispatch tables
// the fetch loop indexes by opcode. Each entry already knows its own base
// T-cycle cost; conditional branches add their extra cost inline and return
// the taken total instead of the table's implicit base.
var primaryTable [256]opFunc
var cbTable [256]opFunc

func init() {
	for op := 0; op < 256; op++ {
		primaryTable[op] = illegal(byte(op))
		cbTable[op] = makeCB(byte(op))
	}

	// 0x40-0x7F: LD r,r' block, then patch HALT over 0x76.
	for op := 0x40; op <= 0x7F; op++ {
		primaryTable[op] = makeLDrr(byte(op))
	}
	primaryTable[0x76] = opHALT

	// 0x80-0xBF: ALU A,r8 block.
	for op := 0x80; op <= 0xBF; op++ {
		primaryTable[op] = makeALU(byte(op))
	}

	// LD r,d8 immediates, one per destination register.
	primaryTable[0x06] = makeLDr8d8(register.RegB)
	primaryTable[0x0E] = makeLDr8d8(register.RegC)
	primaryTable[0x16] = makeLDr8d8(register.RegD)
	primaryTable[0x1E] = makeLDr8d8(register.RegE)
	primaryTable[0x26] = makeLDr8d8(register.RegH)
	primaryTable[0x2E] = makeLDr8d8(register.RegL)
	primaryTable[0x36] = opLDHLd8
	primaryTable[0x3E] = makeLDr8d8(register.RegA)

	// INC/DEC r8, one per register including (HL).
	primaryTable[0x04] = makeINCr8(register.RegB)
	primaryTable[0x0C] = makeINCr8(register.RegC)
	primaryTable[0x14] = makeINCr8(register.RegD)
	primaryTable[0x1C] = makeINCr8(register.RegE)
	primaryTable[0x24] = makeINCr8(register.RegH)
	primaryTable[0x2C] = makeINCr8(register.RegL)
	primaryTable[0x34] = makeINCr8(register.RegIndHL)
	primaryTable[0x3C] = makeINCr8(register.RegA)

	primaryTable[0x05] = makeDECr8(register.RegB)
	primaryTable[0x0D] = makeDECr8(register.RegC)
	primaryTable[0x15] = makeDECr8(register.RegD)
	primaryTable[0x1D] = makeDECr8(register.RegE)
	primaryTable[0x25] = makeDECr8(register.RegH)
	primaryTable[0x2D] = makeDECr8(register.RegL)
	primaryTable[0x35] = makeDECr8(register.RegIndHL)
	primaryTable[0x3D] = makeDECr8(register.RegA)

	primaryTable[0x00] = opNOP
	primaryTable[0x10] = opSTOP

	primaryTable[0x01] = opLDBCd16
	primaryTable[0x11] = opLDDEd16
	primaryTable[0x21] = opLDHLd16
	primaryTable[0x31] = opLDSPd16
	primaryTable[0x08] = opLDa16SP

	primaryTable[0x02] = opLDBCindA
	primaryTable[0x12] = opLDDEindA
	primaryTable[0x22] = opLDHLIndA
	primaryTable[0x32] = opLDHLDecIndA
	primaryTable[0x0A] = opLDAindBC
	primaryTable[0x1A] = opLDAindDE
	primaryTable[0x2A] = opLDAHLInd
	primaryTable[0x3A] = opLDAHLDecInd

	primaryTable[0x03] = opINCBC
	primaryTable[0x13] = opINCDE
	primaryTable[0x23] = opINCHL16
	primaryTable[0x33] = opINCSP
	primaryTable[0x0B] = opDECBC
	primaryTable[0x1B] = opDECDE
	primaryTable[0x2B] = opDECHL16
	primaryTable[0x3B] = opDECSP

	primaryTable[0x09] = opADDHLBC
	primaryTable[0x19] = opADDHLDE
	primaryTable[0x29] = opADDHLHL
	primaryTable[0x39] = opADDHLSP
	primaryTable[0xE8] = opADDSPe8
	primaryTable[0xF8] = opLDHLSPe8
	primaryTable[0xF9] = opLDSPHL

	primaryTable[0x07] = opRLCA
	primaryTable[0x0F] = opRRCA
	primaryTable[0x17] = opRLA
	primaryTable[0x1F] = opRRA
	primaryTable[0x27] = opDAA
	primaryTable[0x2F] = opCPL
	primaryTable[0x37] = opSCF
	primaryTable[0x3F] = opCCF

	primaryTable[0x18] = opJRe8
	primaryTable[0x20] = makeJRcond(condNZ)
	primaryTable[0x28] = makeJRcond(condZ)
	primaryTable[0x30] = makeJRcond(condNC)
	primaryTable[0x38] = makeJRcond(condC)

	primaryTable[0xC3] = opJPa16
	primaryTable[0xE9] = opJPHL
	primaryTable[0xC2] = makeJPcond(condNZ)
	primaryTable[0xCA] = makeJPcond(condZ)
	primaryTable[0xD2] = makeJPcond(condNC)
	primaryTable[0xDA] = makeJPcond(condC)

	primaryTable[0xCD] = opCALLa16
	primaryTable[0xC4] = makeCALLcond(condNZ)
	primaryTable[0xCC] = makeCALLcond(condZ)
	primaryTable[0xD4] = makeCALLcond(condNC)
	primaryTable[0xDC] = makeCALLcond(condC)

	primaryTable[0xC9] = opRET
	primaryTable[0xD9] = opRETI
	primaryTable[0xC0] = makeRETcond(condNZ)
	primaryTable[0xC8] = makeRETcond(condZ)
	primaryTable[0xD0] = makeRETcond(condNC)
	primaryTable[0xD8] = makeRETcond(condC)

	primaryTable[0xC7] = makeRST(0x00)
	primaryTable[0xCF] = makeRST(0x08)
	primaryTable[0xD7] = makeRST(0x10)
	primaryTable[0xDF] = makeRST(0x18)
	primaryTable[0xE7] = makeRST(0x20)
	primaryTable[0xEF] = makeRST(0x28)
	primaryTable[0xF7] = makeRST(0x30)
	primaryTable[0xFF] = makeRST(0x38)

	primaryTable[0xC1] = opPOPBC
	primaryTable[0xD1] = opPOPDE
	primaryTable[0xE1] = opPOPHL
	primaryTable[0xF1] = opPOPAF
	primaryTable[0xC5] = opPUSHBC
	primaryTable[0xD5] = opPUSHDE
	primaryTable[0xE5] = opPUSHHL
	primaryTable[0xF5] = opPUSHAF

	primaryTable[0xC6] = opADDd8
	primaryTable[0xCE] = opADCd8
	primaryTable[0xD6] = opSUBd8
	primaryTable[0xDE] = opSBCd8
	primaryTable[0xE6] = opANDd8
	primaryTable[0xEE] = opXORd8
	primaryTable[0xF6] = opORd8
	primaryTable[0xFE] = opCPd8

	primaryTable[0xE0] = opLDH_a8_A
	primaryTable[0xF0] = opLDH_A_a8
	primaryTable[0xE2] = opLDindCA
	primaryTable[0xF2] = opLDAindC
	primaryTable[0xEA] = opLDa16A
	primaryTable[0xFA] = opLDAa16

	primaryTable[0xF3] = opDI
	primaryTable[0xFB] = opEI

	// 0xCB itself is intercepted in Step before the table is consulted; its
	// table slot is never reached but is left as illegal rather than nil.
}
