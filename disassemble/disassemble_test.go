package disassemble

import (
	"strings"
	"testing"

	"github.com/go8080/i8080/memory"
)

func TestStepImplied(t *testing.T) {
	ram := memory.New()
	ram.Write(0, 0x00) // NOP
	out, n := Step(0, ram)
	if n != 1 {
		t.Errorf("n = %d, want 1", n)
	}
	if !strings.Contains(out, "NOP") {
		t.Errorf("out = %q, want to contain NOP", out)
	}
}

func TestStepMOVBlock(t *testing.T) {
	ram := memory.New()
	ram.Write(0, 0x7E) // MOV A,M
	out, n := Step(0, ram)
	if n != 1 {
		t.Errorf("n = %d, want 1", n)
	}
	if !strings.Contains(out, "MOV") || !strings.Contains(out, "A,M") {
		t.Errorf("out = %q, want MOV A,M", out)
	}
}

func TestStepALUBlock(t *testing.T) {
	ram := memory.New()
	ram.Write(0, 0xB8) // CMP B
	out, n := Step(0, ram)
	if n != 1 {
		t.Errorf("n = %d, want 1", n)
	}
	if !strings.Contains(out, "CMP") || !strings.Contains(out, "B") {
		t.Errorf("out = %q, want CMP B", out)
	}
}

func TestStepImmediate8(t *testing.T) {
	ram := memory.New()
	ram.Write(0, 0xC6) // ADI
	ram.Write(1, 0x42)
	out, n := Step(0, ram)
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}
	if !strings.Contains(out, "ADI") || !strings.Contains(out, "42") {
		t.Errorf("out = %q, want ADI referencing 0x42", out)
	}
}

func TestStepDirectAddress(t *testing.T) {
	ram := memory.New()
	ram.Write(0, 0xC3) // JMP
	ram.Write(1, 0x34)
	ram.Write(2, 0x12)
	out, n := Step(0, ram)
	if n != 3 {
		t.Errorf("n = %d, want 3", n)
	}
	if !strings.Contains(out, "JMP") || !strings.Contains(out, "1234") {
		t.Errorf("out = %q, want JMP referencing 0x1234", out)
	}
}

func TestStepRSTIncludesVector(t *testing.T) {
	ram := memory.New()
	ram.Write(0, 0xEF) // RST 5
	out, _ := Step(0, ram)
	if !strings.Contains(out, "RST") || !strings.Contains(out, "5") {
		t.Errorf("out = %q, want RST 5", out)
	}
}

func TestStepHLTIsNotConfusedWithMOVBlock(t *testing.T) {
	ram := memory.New()
	ram.Write(0, 0x76) // HLT, falls inside the 0x40-0x7F MOV range
	out, n := Step(0, ram)
	if n != 1 {
		t.Errorf("n = %d, want 1", n)
	}
	if !strings.Contains(out, "HLT") {
		t.Errorf("out = %q, want HLT", out)
	}
}
