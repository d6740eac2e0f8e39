// Package interrupt implements the DMG interrupt controller: the IF/IE
// register pair, the interrupt master enable flag, and the one-instruction
// deferred enable latch used by EI.
package interrupt

// Bit flags, in priority order (lowest bit index serviced first).
const (
	VBlank byte = 1 << iota
	LCDStat
	Timer
	Serial
	Joypad
)

// mask covers the five interrupt sources; IF's upper three bits are unused.
const mask = 0x1F

// Controller owns IF, IE and IME, and resolves which interrupt (if any) is
// serviced next.
type Controller struct {
	IF, IE byte
	IME    bool

	// imeDelay counts down the EI latch: EI arms it at 2, the CPU ticks it
	// once per retired instruction, and IME goes true when it reaches 0 -
	// i.e. after the instruction following EI, not EI itself.
	imeDelay int
}

// RequestFlag sets the given interrupt's IF bit.
func (c *Controller) RequestFlag(flag byte) { c.IF |= flag }

// Pending reports whether any enabled interrupt is currently flagged,
// regardless of IME. HALT and the HALT bug both consult this directly.
func (c *Controller) Pending() bool { return c.IE&c.IF&mask != 0 }

// EnableAfterNextInstruction arms the EI deferred-enable latch: two Tick
// calls must land before IME actually goes true.
func (c *Controller) EnableAfterNextInstruction() { c.imeDelay = 2 }

// Disable implements DI: IME drops immediately and cancels any pending EI.
func (c *Controller) Disable() {
	c.IME = false
	c.imeDelay = 0
}

// EnableImmediately implements RETI, which enables interrupts with no
// deferral.
func (c *Controller) EnableImmediately() {
	c.IME = true
	c.imeDelay = 0
}

// Tick advances the EI latch by one retired instruction. The CPU calls this
// exactly once per Step, after the instruction has fully executed: EI's own
// instruction ticks the latch from 2 to 1, and the instruction following EI
// ticks it from 1 to 0, which is when IME actually becomes true.
func (c *Controller) Tick() {
	if c.imeDelay == 0 {
		return
	}
	c.imeDelay--
	if c.imeDelay == 0 {
		c.IME = true
	}
}

// NextVector reports the interrupt vector to service, or (0, false) if IME
// is false or no enabled interrupt is flagged. It does not mutate state;
// callers that decide to service must call Acknowledge with the same bit.
func (c *Controller) NextVector() (vector uint16, bit byte, ok bool) {
	if !c.IME {
		return 0, 0, false
	}
	pending := c.IE & c.IF & mask
	if pending == 0 {
		return 0, 0, false
	}
	for i := uint(0); i < 5; i++ {
		b := byte(1) << i
		if pending&b != 0 {
			return 0x40 + uint16(i)*8, b, true
		}
	}
	return 0, 0, false
}

// Acknowledge clears IME and the serviced interrupt's IF bit, as the first
// two steps of interrupt service (spec §4.5 steps 1-2).
func (c *Controller) Acknowledge(bit byte) {
	c.IME = false
	c.IF &^= bit
}

// Read handles CPU reads of the IF (0xFF0F) and IE (0xFFFF) addresses.
func (c *Controller) Read(addr uint16) byte {
	switch addr {
	case 0xFF0F:
		return c.IF | 0xE0 // upper three bits read back as 1
	case 0xFFFF:
		return c.IE
	}
	return 0xFF
}

// Write handles CPU writes of IF and IE.
func (c *Controller) Write(addr uint16, v byte) {
	switch addr {
	case 0xFF0F:
		c.IF = v & mask
	case 0xFFFF:
		c.IE = v
	}
}
