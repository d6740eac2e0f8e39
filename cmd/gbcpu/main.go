// Command gbcpu runs a Game Boy ROM image against the CPU core headless,
// with no PPU/APU/joypad: useful for blargg-style test ROMs that report
// pass/fail over the serial link.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/timothewt/GameBoy/internal/cpu"
	"github.com/timothewt/GameBoy/internal/machine"
	"github.com/timothewt/GameBoy/internal/profiling"
)

func main() {
	steps := flag.Int("steps", 5_000_000, "max CPU steps to run")
	trace := flag.Bool("trace", false, "print PC/opcode/register state for every step")
	until := flag.String("until", "", "stop when serial output contains this substring (case-insensitive); empty to disable")
	timeout := flag.Duration("timeout", 0, "optional wall-clock timeout (e.g. 30s, 2m); 0 disables")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: gbcpu [flags] <rom-path>")
	}
	romPath := flag.Arg(0)

	defer profiling.Start().Stop()

	m, err := machine.LoadROM(romPath)
	if err != nil {
		log.Fatal(err)
	}

	var serial strings.Builder
	m.AttachSerial(&serial)

	start := time.Now()
	var deadline time.Time
	if *timeout > 0 {
		deadline = start.Add(*timeout)
	}

	var totalCycles uint64
	for i := 0; i < *steps; i++ {
		pc := m.CPU.Reg.PC
		if err := runStep(m, pc, *trace, &totalCycles); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if *until != "" && strings.Contains(strings.ToLower(serial.String()), strings.ToLower(*until)) {
			fmt.Printf("\ndetected %q in serial output\n", *until)
			fmt.Printf("done: steps=%d cycles=%d elapsed=%s\n", i+1, totalCycles, time.Since(start).Truncate(time.Millisecond))
			return
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			fmt.Printf("\ntimeout after %s\n", time.Since(start).Truncate(time.Millisecond))
			os.Exit(2)
		}
	}
	fmt.Printf("done: steps=%d cycles=%d elapsed=%s\n", *steps, totalCycles, time.Since(start).Truncate(time.Millisecond))
}

// runStep executes one Step, recovering an IllegalOpcodeError into a
// returned error so the caller can report it and exit cleanly.
func runStep(m *machine.Machine, pc uint16, trace bool, totalCycles *uint64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ioErr, ok := r.(*cpu.IllegalOpcodeError); ok {
				err = ioErr
				return
			}
			panic(r)
		}
	}()

	var op byte
	if trace {
		op = m.MMU.Read8(pc)
	}
	cyc := m.Step()
	*totalCycles += uint64(cyc)
	if trace {
		r := m.CPU.Reg
		fmt.Printf("PC=%04X OP=%02X cyc=%d A=%02X F=%02X B=%02X C=%02X D=%02X E=%02X H=%02X L=%02X SP=%04X IME=%t IF=%02X IE=%02X\n",
			pc, op, cyc, r.A, r.F, r.B, r.C, r.D, r.E, r.H, r.L, r.SP, m.IRQ.IME, m.IRQ.IF, m.IRQ.IE)
	}
	return nil
}
