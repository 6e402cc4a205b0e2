// Package machine is the outer loop spec.md section 6 treats as an external
// collaborator: it owns memory, I/O ports, the CP/M BDOS shim, and ROM
// loading, and drives the cpu.CPU core by repeatedly calling Fetch/Exec
// (and, when a device raises one, TryInterrupt). Grounded on the teacher's
// atari2600.VCS, which plays the same role tying cpu.Chip to pia6532/tia —
// here there is a single CP/M-shaped harness instead of console hardware.
package machine

import (
	"fmt"
	"io"
	"os"

	"github.com/go8080/i8080/bdos"
	"github.com/go8080/i8080/cpu"
	"github.com/go8080/i8080/disassemble"
	ioport "github.com/go8080/i8080/io"
	"github.com/go8080/i8080/irq"
	"github.com/go8080/i8080/memory"
)

// loadAddr is where ROM images are placed and PC is initialized, per
// spec.md section 6: "Program loaded at 0x0100; PC initialized to 0x0100."
const loadAddr = 0x0100

// bdosTrapAddr is where the CP/M BDOS shim's entry point lives. The core
// only needs to support CALL 0x0005 and OUT/RET faithfully; this package
// chooses the OUT-trap form spec.md section 6 allows (rather than having
// the machine special-case PC == 0x0005 before every Exec).
const bdosTrapAddr = 0x0005

// termAddr is where the harness signals program termination: OUT 0 (or a
// bare HLT) per spec.md section 6. This machine writes `OUT 0`.
const termAddr = 0x0000

// ErrROMSize represents a ROM image the Machine cannot load, either because
// it is empty or because it would not fit in the 64 KiB address space
// starting at loadAddr. Callers can type-switch on this the same way the
// teacher's cpu package distinguishes InvalidCPUState/HaltOpcode.
type ErrROMSize struct {
	Len int
}

// Error implements the error interface.
func (e ErrROMSize) Error() string {
	if e.Len == 0 {
		return "machine: ROM must not be empty"
	}
	return fmt.Sprintf("machine: ROM of %d bytes does not fit at 0x%04X", e.Len, loadAddr)
}

// terminator is the port-0 io.Device the termination trap at 0x0000
// writes to; its only job is flipping Machine.done.
type terminator struct {
	done bool
}

func (t *terminator) Input(port uint8) uint8       { return 0xFF }
func (t *terminator) Output(port uint8, val uint8) { t.done = true }

// Config bundles the construction-time dependencies of a Machine.
type Config struct {
	// ROM is the program image, loaded at 0x0100.
	ROM []uint8
	// Console receives BDOS function 2/9 output. Defaults to os.Stdout.
	Console io.Writer
	// Trace, if true, logs every fetched instruction via the disassembler
	// to TraceTo (or os.Stderr if TraceTo is nil) — the teacher's Debug-bool
	// convention (atari2600.VCSDef.Debug), plus a stream so callers can
	// redirect it independently of Console.
	Trace   bool
	TraceTo io.Writer
}

// Machine ties a cpu.CPU to the CP/M harness memory layout spec.md section
// 6 describes, plus an extensible io.Ports bank any caller can attach
// further devices to (AddDevice), mirroring the original Rust `Machine`
// trait's `add_device(port, device)`.
type Machine struct {
	cpu   *cpu.CPU
	mem   memory.Bank
	ports *ioport.Ports
	bdos  *bdos.Shim
	term  *terminator

	trace   bool
	traceTo io.Writer

	irqSources []irq.Sender
}

// New constructs a Machine with its ROM loaded at 0x0100, PC set to 0x0100,
// and the BDOS/termination traps installed at 0x0005 and 0x0000.
func New(cfg *Config) (*Machine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("machine.New: Config is required")
	}
	if len(cfg.ROM) == 0 {
		return nil, ErrROMSize{Len: 0}
	}
	if int(loadAddr)+len(cfg.ROM) > 1<<16 {
		return nil, ErrROMSize{Len: len(cfg.ROM)}
	}

	ram := memory.NewFromImage(loadAddr, cfg.ROM)

	// OUT 1 / RET at the BDOS trap: CALL 0x0005 lands here, the trap
	// fires the BDOS shim via port 1, then RET unwinds back to the caller.
	ram.Write(bdosTrapAddr, 0xD3)
	ram.Write(bdosTrapAddr+1, 0x01)
	ram.Write(bdosTrapAddr+2, 0xC9)

	// OUT 0 at the termination trap.
	ram.Write(termAddr, 0xD3)
	ram.Write(termAddr+1, 0x00)

	ports := ioport.NewPorts()
	c, err := cpu.New(&cpu.Config{Memory: ram, Ports: ports, PC: loadAddr})
	if err != nil {
		return nil, fmt.Errorf("machine.New: %w", err)
	}

	console := cfg.Console
	if console == nil {
		console = os.Stdout
	}
	shim := bdos.New(c, ram, console)
	ports.Attach(1, shim)

	term := &terminator{}
	ports.Attach(0, term)

	traceTo := cfg.TraceTo
	if traceTo == nil {
		traceTo = os.Stderr
	}

	return &Machine{
		cpu:     c,
		mem:     ram,
		ports:   ports,
		bdos:    shim,
		term:    term,
		trace:   cfg.Trace,
		traceTo: traceTo,
	}, nil
}

// AddDevice attaches dev to handle IN/OUT on port, overriding anything the
// constructor wired there (callers can replace the BDOS or terminator
// device if a ROM uses those ports for something else).
func (m *Machine) AddDevice(port uint8, dev ioport.Device) {
	m.ports.Attach(port, dev)
}

// AddInterruptSource registers an irq.Sender the Run loop polls between
// instructions.
func (m *Machine) AddInterruptSource(src irq.Sender) {
	m.irqSources = append(m.irqSources, src)
}

// CPU exposes the underlying core for tests and tracing; callers must not
// call Exec directly while Run is driving the same Machine.
func (m *Machine) CPU() *cpu.CPU { return m.cpu }

// Memory exposes the underlying address space for tests and tracing.
func (m *Machine) Memory() memory.Bank { return m.mem }

// Done reports whether the termination trap (OUT 0) has fired.
func (m *Machine) Done() bool { return m.term.done }

// Step fetches and executes exactly one instruction, polling any
// registered interrupt sources first (spec.md section 5: try_interrupt
// must only be invoked between complete instructions).
func (m *Machine) Step() cpu.Event {
	m.ports.Tick()

	for _, src := range m.irqSources {
		if src.Raised() {
			if ev, ok := m.cpu.TryInterrupt(src.Vector()); ok {
				return ev
			}
		}
	}

	// While halted, the only way out is an accepted interrupt above: the
	// core must not be re-entered via Fetch/Exec until one arrives
	// (spec.md section 4.3's fetch/decode state machine).
	if m.cpu.Halted() {
		return cpu.Event{Kind: cpu.Halt}
	}

	if m.trace {
		fmt.Fprintln(m.traceTo, m.traceLine())
	}

	op := m.cpu.Fetch()
	return m.cpu.Exec(op)
}

// Run steps the machine until the termination trap fires or it halts with
// no interrupt source that could ever wake it, whichever comes first. A
// halt with at least one registered (but not yet raised) interrupt source
// polls rather than returning, since that source may still fire later.
func (m *Machine) Run() {
	for !m.Done() {
		ev := m.Step()
		if ev.Kind == cpu.Halt && m.cpu.Halted() && len(m.irqSources) == 0 {
			return
		}
	}
}

// traceLine renders the instruction about to execute via the disassemble
// package, the same text the --trace flag prints (cmd/i8080).
func (m *Machine) traceLine() string {
	text, _ := disassemble.Step(m.cpu.PC, m.mem)
	return text
}

func (m *Machine) anyInterruptPending() bool {
	for _, src := range m.irqSources {
		if src.Raised() {
			return true
		}
	}
	return false
}
