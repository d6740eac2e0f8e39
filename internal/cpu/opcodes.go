package cpu

import "github.com/timothewt/GameBoy/internal/register"

// opFunc executes one decoded opcode against c and returns the T-cycles it
// actually consumed, including any conditional-branch extension.
type opFunc func(c *CPU) int

// r8 extracts the {B,C,D,E,H,L,(HL),A} register selection from an opcode's
// low three bits; the enum's declaration order matches the hardware's.
func r8(op byte) register.Reg8 { return register.Reg8(op & 0x07) }

// makeLDrr builds the 0x40-0x7F LD r,r' block. Cost is 4, except 8 when
// either operand is (HL); 0x76 (HALT) is patched over this block separately.
func makeLDrr(op byte) opFunc {
	dst := register.Reg8((op >> 3) & 0x07)
	src := r8(op)
	return func(c *CPU) int {
		v := c.getR8(src)
		c.setR8(dst, v)
		if dst == register.RegIndHL || src == register.RegIndHL {
			return 8
		}
		return 4
	}
}

// makeALU builds the 0x80-0xBF ALU A,r8 block. Cost is 4, except 8 when the
// operand is (HL).
func makeALU(op byte) opFunc {
	group := (op >> 3) & 0x07
	src := r8(op)
	return func(c *CPU) int {
		v := c.getR8(src)
		switch group {
		case 0: // ADD
			c.aluAdd(v, false)
		case 1: // ADC
			c.aluAdd(v, true)
		case 2: // SUB
			c.aluSub(v, false, false)
		case 3: // SBC
			c.aluSub(v, true, false)
		case 4: // AND
			c.aluAnd(v)
		case 5: // XOR
			c.aluXor(v)
		case 6: // OR
			c.aluOr(v)
		case 7: // CP
			c.aluSub(v, false, true)
		}
		if src == register.RegIndHL {
			return 8
		}
		return 4
	}
}

func opNOP(c *CPU) int { return 4 }

func opHALT(c *CPU) int {
	if !c.irq.IME {
		if c.irq.Pending() {
			c.haltBug = true
		} else {
			c.halted = true
		}
		return 4
	}
	c.halted = true
	return 4
}

func opSTOP(c *CPU) int {
	c.fetch8() // second byte is always present and discarded
	c.stopped = true
	return 4
}

func opDI(c *CPU) int { c.irq.Disable(); return 4 }
func opEI(c *CPU) int { c.irq.EnableAfterNextInstruction(); return 4 }

// opRLCA/opRRCA/opRLA/opRRA wrap the shared rotate helpers but force Z=0:
// unlike their CB-prefixed per-register counterparts, the "on A" forms never
// set Z from the result (spec.md §4.3).
func opRLCA(c *CPU) int { c.Reg.A = c.rlc(c.Reg.A); c.Reg.SetFlag(register.FlagZ, false); return 4 }
func opRRCA(c *CPU) int { c.Reg.A = c.rrc(c.Reg.A); c.Reg.SetFlag(register.FlagZ, false); return 4 }
func opRLA(c *CPU) int  { c.Reg.A = c.rl(c.Reg.A); c.Reg.SetFlag(register.FlagZ, false); return 4 }
func opRRA(c *CPU) int  { c.Reg.A = c.rr(c.Reg.A); c.Reg.SetFlag(register.FlagZ, false); return 4 }

func opCPL(c *CPU) int {
	c.Reg.A = ^c.Reg.A
	c.Reg.SetFlag(register.FlagN, true)
	c.Reg.SetFlag(register.FlagH, true)
	return 4
}

func opSCF(c *CPU) int {
	c.Reg.SetFlag(register.FlagN, false)
	c.Reg.SetFlag(register.FlagH, false)
	c.Reg.SetFlag(register.FlagC, true)
	return 4
}

func opCCF(c *CPU) int {
	c.Reg.SetFlag(register.FlagN, false)
	c.Reg.SetFlag(register.FlagH, false)
	c.Reg.SetFlag(register.FlagC, !c.Reg.Flag(register.FlagC))
	return 4
}

func opDAA(c *CPU) int { c.daa(); return 4 }

// --- 16-bit loads and arithmetic ---

func opLDBCd16(c *CPU) int { c.Reg.SetBC(c.fetch16()); return 12 }
func opLDDEd16(c *CPU) int { c.Reg.SetDE(c.fetch16()); return 12 }
func opLDHLd16(c *CPU) int { c.Reg.SetHL(c.fetch16()); return 12 }
func opLDSPd16(c *CPU) int { c.Reg.SP = c.fetch16(); return 12 }

func opLDa16SP(c *CPU) int { c.mmu.Write16(c.fetch16(), c.Reg.SP); return 20 }

func opINCBC(c *CPU) int { c.Reg.SetBC(c.Reg.BC() + 1); return 8 }
func opINCDE(c *CPU) int { c.Reg.SetDE(c.Reg.DE() + 1); return 8 }
func opINCHL16(c *CPU) int { c.Reg.SetHL(c.Reg.HL() + 1); return 8 }
func opINCSP(c *CPU) int { c.Reg.SP++; return 8 }

func opDECBC(c *CPU) int { c.Reg.SetBC(c.Reg.BC() - 1); return 8 }
func opDECDE(c *CPU) int { c.Reg.SetDE(c.Reg.DE() - 1); return 8 }
func opDECHL16(c *CPU) int { c.Reg.SetHL(c.Reg.HL() - 1); return 8 }
func opDECSP(c *CPU) int { c.Reg.SP--; return 8 }

func opADDHLBC(c *CPU) int { c.addHL16(c.Reg.BC()); return 8 }
func opADDHLDE(c *CPU) int { c.addHL16(c.Reg.DE()); return 8 }
func opADDHLHL(c *CPU) int { c.addHL16(c.Reg.HL()); return 8 }
func opADDHLSP(c *CPU) int { c.addHL16(c.Reg.SP); return 8 }

func opADDSPe8(c *CPU) int { c.Reg.SP = c.spPlusE8(); return 16 }
func opLDHLSPe8(c *CPU) int { c.Reg.SetHL(c.spPlusE8()); return 12 }
func opLDSPHL(c *CPU) int  { c.Reg.SP = c.Reg.HL(); return 8 }

// --- 8-bit loads through register-pair pointers ---

func opLDBCindA(c *CPU) int { c.write8(c.Reg.BC(), c.Reg.A); return 8 }
func opLDDEindA(c *CPU) int { c.write8(c.Reg.DE(), c.Reg.A); return 8 }
func opLDAindBC(c *CPU) int { c.Reg.A = c.read8(c.Reg.BC()); return 8 }
func opLDAindDE(c *CPU) int { c.Reg.A = c.read8(c.Reg.DE()); return 8 }

func opLDHLIndA(c *CPU) int {
	c.write8(c.Reg.HL(), c.Reg.A)
	c.Reg.SetHL(c.Reg.HL() + 1)
	return 8
}

func opLDHLDecIndA(c *CPU) int {
	c.write8(c.Reg.HL(), c.Reg.A)
	c.Reg.SetHL(c.Reg.HL() - 1)
	return 8
}

func opLDAHLInd(c *CPU) int {
	c.Reg.A = c.read8(c.Reg.HL())
	c.Reg.SetHL(c.Reg.HL() + 1)
	return 8
}

func opLDAHLDecInd(c *CPU) int {
	c.Reg.A = c.read8(c.Reg.HL())
	c.Reg.SetHL(c.Reg.HL() - 1)
	return 8
}

func opLDHLd8(c *CPU) int { c.write8(c.Reg.HL(), c.fetch8()); return 12 }

// makeLDr8d8 builds the eight LD r,d8 opcodes (0x06,0x0E,...,0x3E).
func makeLDr8d8(dst register.Reg8) opFunc {
	return func(c *CPU) int {
		v := c.fetch8()
		c.setR8(dst, v)
		return 8
	}
}

// makeINCr8/makeDECr8 build the eight INC/DEC r8 opcodes, including (HL).
func makeINCr8(reg register.Reg8) opFunc {
	return func(c *CPU) int {
		v := c.getR8(reg)
		c.setR8(reg, c.inc8(v))
		if reg == register.RegIndHL {
			return 12
		}
		return 4
	}
}

func makeDECr8(reg register.Reg8) opFunc {
	return func(c *CPU) int {
		v := c.getR8(reg)
		c.setR8(reg, c.dec8(v))
		if reg == register.RegIndHL {
			return 12
		}
		return 4
	}
}

func opLDH_a8_A(c *CPU) int {
	a := 0xFF00 | uint16(c.fetch8())
	c.write8(a, c.Reg.A)
	return 12
}

func opLDH_A_a8(c *CPU) int {
	a := 0xFF00 | uint16(c.fetch8())
	c.Reg.A = c.read8(a)
	return 12
}

func opLDindCA(c *CPU) int { c.write8(0xFF00|uint16(c.Reg.C), c.Reg.A); return 8 }
func opLDAindC(c *CPU) int { c.Reg.A = c.read8(0xFF00 | uint16(c.Reg.C)); return 8 }

func opLDa16A(c *CPU) int { c.write8(c.fetch16(), c.Reg.A); return 16 }
func opLDAa16(c *CPU) int { c.Reg.A = c.read8(c.fetch16()); return 16 }

// --- ALU A,d8 immediates ---

func opADDd8(c *CPU) int { c.aluAdd(c.fetch8(), false); return 8 }
func opADCd8(c *CPU) int { c.aluAdd(c.fetch8(), true); return 8 }
func opSUBd8(c *CPU) int { c.aluSub(c.fetch8(), false, false); return 8 }
func opSBCd8(c *CPU) int { c.aluSub(c.fetch8(), true, false); return 8 }
func opANDd8(c *CPU) int { c.aluAnd(c.fetch8()); return 8 }
func opXORd8(c *CPU) int { c.aluXor(c.fetch8()); return 8 }
func opORd8(c *CPU) int  { c.aluOr(c.fetch8()); return 8 }
func opCPd8(c *CPU) int  { c.aluSub(c.fetch8(), false, true); return 8 }

// --- control flow ---

func opJPa16(c *CPU) int { c.Reg.PC = c.fetch16(); return 16 }
func opJPHL(c *CPU) int  { c.Reg.PC = c.Reg.HL(); return 4 }

func opJRe8(c *CPU) int {
	e := int8(c.fetch8())
	c.Reg.PC = uint16(int32(c.Reg.PC) + int32(e))
	return 12
}

// makeJPcond/makeJRcond/makeCALLcond/makeRETcond build the conditional
// control-flow opcodes; cond reports whether the branch is taken.
func makeJPcond(cond func(*CPU) bool) opFunc {
	return func(c *CPU) int {
		target := c.fetch16()
		if cond(c) {
			c.Reg.PC = target
			return 16
		}
		return 12
	}
}

func makeJRcond(cond func(*CPU) bool) opFunc {
	return func(c *CPU) int {
		e := int8(c.fetch8())
		if cond(c) {
			c.Reg.PC = uint16(int32(c.Reg.PC) + int32(e))
			return 12
		}
		return 8
	}
}

func makeCALLcond(cond func(*CPU) bool) opFunc {
	return func(c *CPU) int {
		target := c.fetch16()
		if cond(c) {
			c.push16(c.Reg.PC)
			c.Reg.PC = target
			return 24
		}
		return 12
	}
}

func makeRETcond(cond func(*CPU) bool) opFunc {
	return func(c *CPU) int {
		if cond(c) {
			c.Reg.PC = c.pop16()
			return 20
		}
		return 8
	}
}

func condNZ(c *CPU) bool { return !c.Reg.Flag(register.FlagZ) }
func condZ(c *CPU) bool  { return c.Reg.Flag(register.FlagZ) }
func condNC(c *CPU) bool { return !c.Reg.Flag(register.FlagC) }
func condC(c *CPU) bool  { return c.Reg.Flag(register.FlagC) }

func opCALLa16(c *CPU) int {
	target := c.fetch16()
	c.push16(c.Reg.PC)
	c.Reg.PC = target
	return 24
}

func opRET(c *CPU) int { c.Reg.PC = c.pop16(); return 16 }

func opRETI(c *CPU) int {
	c.Reg.PC = c.pop16()
	c.irq.EnableImmediately()
	return 16
}

// makeRST builds the eight fixed-vector RST opcodes.
func makeRST(vector uint16) opFunc {
	return func(c *CPU) int {
		c.push16(c.Reg.PC)
		c.Reg.PC = vector
		return 16
	}
}

// --- stack ---

func opPUSHBC(c *CPU) int { c.push16(c.Reg.BC()); return 16 }
func opPUSHDE(c *CPU) int { c.push16(c.Reg.DE()); return 16 }
func opPUSHHL(c *CPU) int { c.push16(c.Reg.HL()); return 16 }
func opPUSHAF(c *CPU) int { c.push16(c.Reg.AF()); return 16 }

func opPOPBC(c *CPU) int { c.Reg.SetBC(c.pop16()); return 12 }
func opPOPDE(c *CPU) int { c.Reg.SetDE(c.pop16()); return 12 }
func opPOPHL(c *CPU) int { c.Reg.SetHL(c.pop16()); return 12 }
func opPOPAF(c *CPU) int { c.Reg.SetAF(c.pop16()); return 12 }
