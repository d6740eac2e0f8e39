package register

import "testing"

func TestFile_Reset(t *testing.T) {
	var f File
	f.Reset()

	if got := f.AF(); got != 0x01B0 {
		t.Fatalf("AF got %04x, want 01B0", got)
	}
	if got := f.BC(); got != 0x0013 {
		t.Fatalf("BC got %04x, want 0013", got)
	}
	if got := f.DE(); got != 0x00D8 {
		t.Fatalf("DE got %04x, want 00D8", got)
	}
	if got := f.HL(); got != 0x014D {
		t.Fatalf("HL got %04x, want 014D", got)
	}
	if f.SP != 0xFFFE {
		t.Fatalf("SP got %04x, want FFFE", f.SP)
	}
	if f.PC != 0x0100 {
		t.Fatalf("PC got %04x, want 0100", f.PC)
	}
}

func TestFile_SetAF_MasksLowNibble(t *testing.T) {
	var f File
	f.SetAF(0x12FF)
	if got := f.F; got != 0xF0 {
		t.Fatalf("F got %02x, want F0 (low nibble masked)", got)
	}
	if got := f.AF(); got != 0x12F0 {
		t.Fatalf("AF got %04x, want 12F0", got)
	}
}

func TestFile_Flags(t *testing.T) {
	var f File
	f.SetFlags(true, false, true, false)
	if !f.Flag(FlagZ) || f.Flag(FlagN) || !f.Flag(FlagH) || f.Flag(FlagC) {
		t.Fatalf("F=%02x did not match SetFlags(true,false,true,false)", f.F)
	}

	f.SetFlag(FlagC, true)
	if !f.Flag(FlagC) {
		t.Fatalf("SetFlag(FlagC, true) did not set C")
	}
	if f.F&0x0F != 0 {
		t.Fatalf("F low nibble got %02x, want 0", f.F&0x0F)
	}
}

func TestFile_Get8Set8(t *testing.T) {
	var f File
	f.Set8(RegB, 0x11)
	f.Set8(RegA, 0x99)
	if f.Get8(RegB) != 0x11 || f.Get8(RegA) != 0x99 {
		t.Fatalf("Get8/Set8 mismatch: B=%02x A=%02x", f.Get8(RegB), f.Get8(RegA))
	}
	// RegIndHL is not a register-file concern; it must not touch any field.
	f.Set8(RegIndHL, 0xFF)
	if f.Get8(RegIndHL) != 0 {
		t.Fatalf("Get8(RegIndHL) got %02x, want 0", f.Get8(RegIndHL))
	}
}
