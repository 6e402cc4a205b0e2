package machine

import (
	"bytes"
	"testing"

	"github.com/go8080/i8080/cpu"
)

func TestNewLoadsROMAtStandardAddress(t *testing.T) {
	rom := []uint8{0x00, 0x00, 0x76} // NOP, NOP, HLT
	m, err := New(&Config{ROM: rom})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.CPU().PC; got != loadAddr {
		t.Errorf("PC = %#04x, want %#04x", got, loadAddr)
	}
	for i, want := range rom {
		if got := m.Memory().Read(loadAddr + uint16(i)); got != want {
			t.Errorf("mem[%#04x] = %#02x, want %#02x", loadAddr+uint16(i), got, want)
		}
	}
}

func TestRunStopsOnTerminationTrap(t *testing.T) {
	rom := []uint8{
		0xC3, 0x00, 0x00, // JMP 0x0000 -> OUT 0 trap written by New
	}
	m, err := New(&Config{ROM: rom})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.Run()
	if !m.Done() {
		t.Error("Done() false after jumping into the termination trap")
	}
}

func TestRunStopsOnHLTWithNoInterruptSource(t *testing.T) {
	rom := []uint8{0x76} // HLT
	m, err := New(&Config{ROM: rom})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.Run()
	if !m.CPU().Halted() {
		t.Error("Halted() false after running into HLT")
	}
	if m.Done() {
		t.Error("Done() true, want false (termination trap never reached)")
	}
}

func TestBDOSFunction9ReachesConsole(t *testing.T) {
	// At 0x0100: MVI C,9 ; LXI D,msg ; CALL 0x0005 ; OUT 0 (terminate)
	rom := []uint8{
		0x0E, 0x09, // MVI C,9
		0x11, 0x0A, 0x01, // LXI D,0x010A
		0xCD, 0x05, 0x00, // CALL 0x0005
		0xD3, 0x00, // OUT 0
	}
	rom = append(rom, []uint8("hi$")...)
	var out bytes.Buffer
	m, err := New(&Config{ROM: rom, Console: &out})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.Run()
	if got := out.String(); got != "hi" {
		t.Errorf("console = %q, want %q", got, "hi")
	}
	if !m.Done() {
		t.Error("Done() false after OUT 0")
	}
}

func TestNewRejectsEmptyROM(t *testing.T) {
	if _, err := New(&Config{ROM: nil}); err == nil {
		t.Error("New with empty ROM: want error, got nil")
	}
}

func TestNewRejectsOversizedROM(t *testing.T) {
	rom := make([]uint8, 1<<16)
	if _, err := New(&Config{ROM: rom}); err == nil {
		t.Error("New with oversized ROM: want error, got nil")
	}
}

func TestStepPollsInterruptSourceBeforeFetch(t *testing.T) {
	rom := []uint8{0x76} // HLT at 0x0100
	m, err := New(&Config{ROM: rom})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.CPU().Exec(0xFB) // EI, so TryInterrupt can be accepted
	src := &fakeSender{raised: true, vector: 0x0038}
	m.AddInterruptSource(src)

	ev := m.Step()
	if ev.Kind != cpu.Normal || ev.Cycles != 17 {
		t.Errorf("Step() = %+v, want the interrupt-acceptance event", ev)
	}
	if m.CPU().PC != 0x0038 {
		t.Errorf("PC = %#04x, want 0x0038", m.CPU().PC)
	}
}

type fakeSender struct {
	raised bool
	vector uint16
}

func (f *fakeSender) Raised() bool   { return f.raised }
func (f *fakeSender) Vector() uint16 { return f.vector }
