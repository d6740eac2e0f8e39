// Package cpu implements the Sharp LR35902 fetch-decode-execute loop: the
// 256 base opcodes and 256 CB-prefixed opcodes, their flag effects, T-cycle
// costs, and the HALT/STOP/EI/DI/interrupt corner cases.
package cpu

import (
	"fmt"

	"github.com/timothewt/GameBoy/internal/interrupt"
	"github.com/timothewt/GameBoy/internal/mmu"
	"github.com/timothewt/GameBoy/internal/register"
	"github.com/timothewt/GameBoy/internal/timer"
)

// IllegalOpcodeError is the diagnostic panic value raised when the fetch
// loop decodes one of the DMG's eleven undefined opcodes (spec §7).
type IllegalOpcodeError struct {
	Opcode byte
	PC     uint16
}

func (e *IllegalOpcodeError) Error() string {
	return fmt.Sprintf("illegal opcode 0x%02X fetched at PC=0x%04X", e.Opcode, e.PC)
}

// CPU is the SM83 core: a register file driving an MMU, an interrupt
// controller and a timer through one fetch-decode-execute loop per Step.
type CPU struct {
	Reg register.File

	mmu   *mmu.MMU
	irq   *interrupt.Controller
	timer *timer.Timer

	halted  bool
	stopped bool
	haltBug bool
}

// New creates a CPU wired to the given collaborators. Registers start
// zeroed; call ResetPostBoot or set Reg.PC directly (boot ROM path) before
// the first Step.
func New(m *mmu.MMU, irq *interrupt.Controller, t *timer.Timer) *CPU {
	return &CPU{mmu: m, irq: irq, timer: t}
}

// ResetPostBoot sets the DMG post-boot register state (spec §4.2), used when
// skipping boot ROM emulation.
func (c *CPU) ResetPostBoot() {
	c.Reg.Reset()
	c.halted = false
	c.stopped = false
	c.haltBug = false
}

// MMU exposes the underlying MMU for hosts and tests.
func (c *CPU) MMU() *mmu.MMU { return c.mmu }

// Halted reports whether the CPU is idling in HALT.
func (c *CPU) Halted() bool { return c.halted }

// Stopped reports whether the CPU is idling in STOP.
func (c *CPU) Stopped() bool { return c.stopped }

// Step executes exactly one instruction (or one idle tick while
// halted/stopped) and returns the T-cycles consumed, including any
// conditional-branch extension and any interrupt dispatch serviced
// immediately after.
func (c *CPU) Step() uint32 {
	if c.stopped {
		c.timer.Advance(4)
		return 4
	}

	if c.halted {
		if !c.irq.Pending() {
			c.timer.Advance(4)
			return 4
		}
		c.halted = false
	}

	op := c.fetchOpcode()
	var cost int
	if op == 0xCB {
		cb := c.fetch8()
		cost = cbTable[cb](c)
	} else {
		cost = primaryTable[op](c)
	}

	c.irq.Tick()
	c.timer.Advance(cost)

	total := cost
	if vector, bit, ok := c.irq.NextVector(); ok {
		c.irq.Acknowledge(bit)
		c.push16(c.Reg.PC)
		c.Reg.PC = vector
		total += 20
		// HALT/STOP executed above may have set halted/stopped on the very
		// same Step that ends up dispatching here (IME and IF were both
		// already set when HALT ran). Clear both so the next Step fetches
		// at the vector instead of idling forever with Pending() now false.
		c.halted = false
		c.stopped = false
	}
	return uint32(total)
}

// fetchOpcode reads the byte at PC, honoring the HALT bug: when set, PC is
// not advanced and the bug clears after this one fetch.
func (c *CPU) fetchOpcode() byte {
	b := c.read8(c.Reg.PC)
	if c.haltBug {
		c.haltBug = false
	} else {
		c.Reg.PC++
	}
	return b
}

func (c *CPU) read8(addr uint16) byte     { return c.mmu.Read8(addr) }
func (c *CPU) write8(addr uint16, v byte) { c.mmu.Write8(addr, v) }

func (c *CPU) fetch8() byte {
	b := c.read8(c.Reg.PC)
	c.Reg.PC++
	return b
}

func (c *CPU) fetch16() uint16 {
	lo := uint16(c.fetch8())
	hi := uint16(c.fetch8())
	return lo | hi<<8
}

func (c *CPU) push16(v uint16) {
	c.Reg.SP--
	c.write8(c.Reg.SP, byte(v>>8))
	c.Reg.SP--
	c.write8(c.Reg.SP, byte(v))
}

func (c *CPU) pop16() uint16 {
	lo := uint16(c.read8(c.Reg.SP))
	c.Reg.SP++
	hi := uint16(c.read8(c.Reg.SP))
	c.Reg.SP++
	return lo | hi<<8
}

// getR8/setR8 resolve the eight-entry {B,C,D,E,H,L,(HL),A} register
// selection shared by the 0x40-0x7F, 0x80-0xBF and CB-prefixed blocks.
func (c *CPU) getR8(idx register.Reg8) byte {
	if idx == register.RegIndHL {
		return c.read8(c.Reg.HL())
	}
	return c.Reg.Get8(idx)
}

func (c *CPU) setR8(idx register.Reg8, v byte) {
	if idx == register.RegIndHL {
		c.write8(c.Reg.HL(), v)
		return
	}
	c.Reg.Set8(idx, v)
}

func illegal(op byte) opFunc {
	return func(c *CPU) int {
		panic(&IllegalOpcodeError{Opcode: op, PC: c.Reg.PC - 1})
	}
}
