// Package bdos implements the two CP/M BDOS calls the classic 8080
// diagnostic ROMs (CPUDIAG, 8080PRE, 8080EX1) actually use: function 2
// prints the character in register E, function 9 prints the '$'-terminated
// string at DE (spec.md section 6, "Memory layout expected by the test
// harness"). The BDOS shim is external to the CPU core by contract — the
// core only needs to support the CALL 0x0005 / OUT 1 / RET primitives that
// reach it.
package bdos

import (
	"fmt"
	"io"

	"github.com/go8080/i8080/cpu"
	"github.com/go8080/i8080/memory"
)

// Shim implements the OUT-trap style BDOS harness described in spec.md
// section 6: address 0x0005 holds `OUT 1` followed by `RET`, so a machine
// routes port 1 here instead of inspecting C directly at the CALL site.
type Shim struct {
	cpu *cpu.CPU
	mem memory.Bank
	out io.Writer
}

// New returns a Shim that reads registers from c and memory from mem, and
// writes BDOS console output to out.
func New(c *cpu.CPU, mem memory.Bank, out io.Writer) *Shim {
	return &Shim{cpu: c, mem: mem, out: out}
}

// Input implements io.Device. The BDOS trap port has no readable state.
func (s *Shim) Input(port uint8) uint8 {
	return 0xFF
}

// Output implements io.Device, dispatching to Call when the machine wires
// port 1 to this Shim (the OUT-trap convention spec.md section 6 allows).
func (s *Shim) Output(port uint8, val uint8) {
	if port != 1 {
		return
	}
	s.Call()
}

// Call performs the BDOS function currently selected by register C,
// following CP/M's convention: function 2 writes the single character in
// E, function 9 writes memory starting at DE up to (not including) the
// first '$' byte. Any other function number is a silent no-op — this shim
// covers only the calls diagnostic ROMs are documented to make.
func (s *Shim) Call() {
	switch s.cpu.C {
	case 2:
		fmt.Fprintf(s.out, "%c", s.cpu.E)
	case 9:
		addr := s.cpu.GetDE()
		for {
			ch := s.mem.Read(addr)
			if ch == '$' {
				return
			}
			fmt.Fprintf(s.out, "%c", ch)
			addr++
		}
	}
}
