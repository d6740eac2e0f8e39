package timer

import "testing"

type fakeIRQ struct{ flags byte }

func (f *fakeIRQ) RequestFlag(flag byte) { f.flags |= flag }

func TestTimer_DIVIncrementsFromCounter(t *testing.T) {
	irq := &fakeIRQ{}
	tm := New(irq)
	tm.Advance(256)
	if got := tm.Read(0xFF04); got != 1 {
		t.Fatalf("DIV got %02x, want 01 after 256 T-cycles", got)
	}
}

func TestTimer_WriteDIVResetsFullCounter(t *testing.T) {
	irq := &fakeIRQ{}
	tm := New(irq)
	tm.Advance(300)
	tm.Write(0xFF04, 0x00)
	if got := tm.Read(0xFF04); got != 0 {
		t.Fatalf("DIV got %02x after reset write, want 00", got)
	}
	if tm.counter != 0 {
		t.Fatalf("internal counter got %d, want 0", tm.counter)
	}
}

func TestTimer_TIMAOverflowReloadsAndRequests(t *testing.T) {
	irq := &fakeIRQ{}
	tm := New(irq)
	tm.Write(0xFF06, 0x7B) // TMA
	tm.Write(0xFF07, 0x05) // enable, rate select = tacBit[1] = bit 3 (every 16 T-cycles)
	tm.Write(0xFF05, 0xFF) // TIMA one tick from overflow

	tm.Advance(16)

	if got := tm.Read(0xFF05); got != 0x7B {
		t.Fatalf("TIMA got %02x, want 7B (reloaded from TMA)", got)
	}
	if irq.flags&timerInterruptFlag == 0 {
		t.Fatalf("Timer interrupt was not requested on overflow")
	}
}

func TestTimer_DisabledTACDoesNotIncrementTIMA(t *testing.T) {
	irq := &fakeIRQ{}
	tm := New(irq)
	tm.Write(0xFF07, 0x00) // disabled
	tm.Advance(4096)
	if got := tm.Read(0xFF05); got != 0 {
		t.Fatalf("TIMA got %02x, want 00 with TAC disabled", got)
	}
}

func TestTimer_TACReadBackHasUpperBitsSet(t *testing.T) {
	irq := &fakeIRQ{}
	tm := New(irq)
	tm.Write(0xFF07, 0x05)
	if got := tm.Read(0xFF07); got != 0xFD {
		t.Fatalf("TAC readback got %02x, want FD (F8|05)", got)
	}
}
