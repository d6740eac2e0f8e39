package cpu

import "github.com/timothewt/GameBoy/internal/register"

// makeCB builds one CB-prefixed opcode. The CB space decodes uniformly by
// bit field, so a single factory covers all 256 entries: bits 7-6 select
// the group (rotate/shift family, BIT, RES, SET), bits 5-3 select the bit
// index or rotate/shift operation, and bits 2-0 select the r8 operand.
func makeCB(op byte) opFunc {
	reg := r8(op)
	switch {
	case op < 0x40:
		rotOp := (op >> 3) & 0x07
		return func(c *CPU) int {
			v := c.getR8(reg)
			var result byte
			switch rotOp {
			case 0:
				result = c.rlc(v)
			case 1:
				result = c.rrc(v)
			case 2:
				result = c.rl(v)
			case 3:
				result = c.rr(v)
			case 4:
				result = c.sla(v)
			case 5:
				result = c.sra(v)
			case 6:
				result = c.swap(v)
			case 7:
				result = c.srl(v)
			}
			c.setR8(reg, result)
			if reg == register.RegIndHL {
				return 16
			}
			return 8
		}
	case op < 0x80: // BIT b,r8
		b := uint((op >> 3) & 0x07)
		return func(c *CPU) int {
			c.bit(b, c.getR8(reg))
			if reg == register.RegIndHL {
				return 12
			}
			return 8
		}
	case op < 0xC0: // RES b,r8
		b := uint((op >> 3) & 0x07)
		return func(c *CPU) int {
			c.setR8(reg, c.getR8(reg)&^(1<<b))
			if reg == register.RegIndHL {
				return 16
			}
			return 8
		}
	default: // SET b,r8
		b := uint((op >> 3) & 0x07)
		return func(c *CPU) int {
			c.setR8(reg, c.getR8(reg)|(1<<b))
			if reg == register.RegIndHL {
				return 16
			}
			return 8
		}
	}
}
