// Package cpu implements the Intel 8080 instruction interpreter: opcode
// fetch, decode, execution, flag computation, control flow and the
// memory/device boundary (spec.md sections 1-4). This is the core the rest
// of the repository (disassemble, bdos, machine) is built on; it owns no
// I/O devices and runs no outer loop itself.
package cpu

import (
	"fmt"

	"github.com/go8080/i8080/io"
	"github.com/go8080/i8080/memory"
)

// Register index used by the dense MOV/ALU opcode blocks to address one of
// the seven general-purpose registers plus the pseudo-register M (the byte
// at memory address HL). This mirrors the 8080's own 3-bit register field
// encoding, so these constants double as a decode table: reg(op & 0x07).
const (
	regB = iota
	regC
	regD
	regE
	regH
	regL
	regM
	regA
)

// EventKind tags the payload of an Event.
type EventKind int

const (
	// Normal is ordinary instruction completion.
	Normal EventKind = iota
	// Halt is HLT: the outer machine should stop fetching until an
	// interrupt is injected via TryInterrupt.
	Halt
	// Output is OUT port: a side-channel notification to devices, in
	// addition to (not instead of) any synchronous io.Device.Output call
	// already made during Exec.
	Output
)

func (k EventKind) String() string {
	switch k {
	case Normal:
		return "Normal"
	case Halt:
		return "Halt"
	case Output:
		return "Output"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is the value Exec and TryInterrupt return describing the cycle
// cost and any externally visible effect of the instruction (spec.md
// section 3). Port and Value are only meaningful when Kind is Output.
type Event struct {
	Kind   EventKind
	Cycles int
	Port   uint8
	Value  uint8
}

// Config bundles the construction-time dependencies of a CPU.
type Config struct {
	// Memory backs the 64 KiB address space. Required.
	Memory memory.Bank
	// Ports backs IN/OUT. Optional; if nil, IN reads 0xFF and OUT is
	// still reported via the returned Event but reaches no device.
	Ports io.Device
	// PC is the initial program counter. ROM harnesses typically load a
	// program at 0x0100 and pass that here (spec.md section 6).
	PC uint16
}

// CPU holds all 8080 architectural state: the eight 8-bit registers (A and
// the flags byte F, plus B/C/D/E/H/L), the 16-bit PC and SP, and the
// interrupt-enable latch. It owns no devices and runs no loop; an outer
// machine drives it by calling Fetch, Exec and, between instructions,
// TryInterrupt.
type CPU struct {
	A, B, C, D, E, H, L, F uint8
	PC, SP                 uint16

	inte   bool
	halted bool

	mem   memory.Bank
	ports io.Device
}

// New constructs a CPU in its power-on state: all registers zero except F,
// which powers on to 0x02 per the 8080 convention (bit 1 always reads 1).
// SP is implementation-defined per spec.md section 3 and is left at 0; a
// program is expected to set it with LXI SP before relying on the stack.
func New(cfg *Config) (*CPU, error) {
	if cfg == nil || cfg.Memory == nil {
		return nil, fmt.Errorf("cpu.New: Memory is required")
	}
	return &CPU{
		F:     canonicalF(0),
		PC:    cfg.PC,
		mem:   cfg.Memory,
		ports: cfg.Ports,
	}, nil
}

// Halted reports whether HLT has executed without an interrupt having been
// accepted since.
func (c *CPU) Halted() bool {
	return c.halted
}

// InterruptsEnabled reports the current state of the inte latch.
func (c *CPU) InterruptsEnabled() bool {
	return c.inte
}

// Registers pairs combine two 8-bit cells high:low (spec.md section 3).

// GetBC returns the BC register pair.
func (c *CPU) GetBC() uint16 { return uint16(c.B)<<8 | uint16(c.C) }

// SetBC stores v split across B (high) and C (low).
func (c *CPU) SetBC(v uint16) { c.B, c.C = uint8(v>>8), uint8(v) }

// GetDE returns the DE register pair.
func (c *CPU) GetDE() uint16 { return uint16(c.D)<<8 | uint16(c.E) }

// SetDE stores v split across D (high) and E (low).
func (c *CPU) SetDE(v uint16) { c.D, c.E = uint8(v>>8), uint8(v) }

// GetHL returns the HL register pair.
func (c *CPU) GetHL() uint16 { return uint16(c.H)<<8 | uint16(c.L) }

// SetHL stores v split across H (high) and L (low).
func (c *CPU) SetHL(v uint16) { c.H, c.L = uint8(v>>8), uint8(v) }

// GetAF returns the PSW (A in the high byte, F in the low byte).
func (c *CPU) GetAF() uint16 { return uint16(c.A)<<8 | uint16(c.F) }

// SetAF stores v split across A (high) and F (low), copying the low byte
// into F as is, reserved bits included. POP PSW canonicalizes F first; see
// canonicalF16.
func (c *CPU) SetAF(v uint16) { c.A, c.F = uint8(v>>8), uint8(v) }

// r reads one of B/C/D/E/H/L/M/A by the 3-bit register index used
// throughout the MOV and ALU opcode blocks.
func (c *CPU) r(i uint8) uint8 {
	switch i {
	case regB:
		return c.B
	case regC:
		return c.C
	case regD:
		return c.D
	case regE:
		return c.E
	case regH:
		return c.H
	case regL:
		return c.L
	case regM:
		return c.mem.Read(c.GetHL())
	default: // regA
		return c.A
	}
}

// setR writes one of B/C/D/E/H/L/M/A by the same 3-bit register index.
func (c *CPU) setR(i uint8, v uint8) {
	switch i {
	case regB:
		c.B = v
	case regC:
		c.C = v
	case regD:
		c.D = v
	case regE:
		c.E = v
	case regH:
		c.H = v
	case regL:
		c.L = v
	case regM:
		c.mem.Write(c.GetHL(), v)
	default: // regA
		c.A = v
	}
}

// regCycles returns memCycle if i addresses M, regCycle otherwise — used
// by the register-to-register ALU block where addressing M costs 7
// instead of 4.
func regCycles(i uint8, regCycle, memCycle int) int {
	if i == regM {
		return memCycle
	}
	return regCycle
}

// imm8 reads the byte immediately following the opcode and advances PC
// past it. Must be called exactly once per instruction that takes a
// one-byte operand, and before any other read of PC-relative data
// (spec.md's design notes explicitly call out source revisions that
// forgot to advance PC here).
func (c *CPU) imm8() uint8 {
	v := c.mem.Read(c.PC)
	c.PC++
	return v
}

// imm16 reads the little-endian word immediately following the opcode and
// advances PC past it.
func (c *CPU) imm16() uint16 {
	v := c.mem.Read16(c.PC)
	c.PC += 2
	return v
}

// push16 implements the 8080 stack discipline: SP -= 2, then the value is
// stored at the new SP, little-endian.
func (c *CPU) push16(v uint16) {
	c.SP -= 2
	c.mem.Write16(c.SP, v)
}

// pop16 implements the inverse of push16.
func (c *CPU) pop16() uint16 {
	v := c.mem.Read16(c.SP)
	c.SP += 2
	return v
}

// Fetch reads the byte at PC and advances PC by one (spec.md section
// 4.3's fetch/decode state machine).
func (c *CPU) Fetch() uint8 {
	op := c.mem.Read(c.PC)
	c.PC++
	return op
}

// condTaken evaluates one of the eight NZ/Z/NC/C/PO/PE/P/M conditions
// encoded in bits 5-3 of a Jcc/Ccc/Rcc opcode.
func (c *CPU) condTaken(cc uint8) bool {
	switch cc {
	case 0:
		return !c.getFlag(FlagZ) // NZ
	case 1:
		return c.getFlag(FlagZ) // Z
	case 2:
		return !c.getFlag(FlagC) // NC
	case 3:
		return c.getFlag(FlagC) // C
	case 4:
		return !c.getFlag(FlagP) // PO (odd)
	case 5:
		return c.getFlag(FlagP) // PE (even)
	case 6:
		return !c.getFlag(FlagS) // P (plus)
	default: // 7
		return c.getFlag(FlagS) // M (minus)
	}
}

// Exec decodes and executes a single opcode already fetched via Fetch,
// mutating registers/memory/flags as needed and returning the Event
// describing its cost. Every one of the 256 possible opcode bytes has a
// defined handler below, including the eight undocumented aliases
// (spec.md section 4.3); there is no "invalid opcode" path.
func (c *CPU) Exec(op uint8) Event {
	// MOV r,r' occupies the dense 0x40-0x7F block, with 0x76 (which would
	// be MOV M,M) repurposed as HLT.
	if op >= 0x40 && op <= 0x7F {
		if op == 0x76 {
			c.halted = true
			return Event{Kind: Halt, Cycles: 7}
		}
		dst := (op - 0x40) >> 3
		src := (op - 0x40) & 0x07
		c.setR(dst, c.r(src))
		cycles := 5
		if dst == regM || src == regM {
			cycles = 7
		}
		return Event{Kind: Normal, Cycles: cycles}
	}

	// ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP r occupy the dense 0x80-0xBF block:
	// bits 5-3 select the operation, bits 2-0 select the source register.
	if op >= 0x80 && op <= 0xBF {
		src := op & 0x07
		val := c.r(src)
		cycles := regCycles(src, 4, 7)
		switch (op - 0x80) >> 3 {
		case 0: // ADD
			c.add(val, 0)
		case 1: // ADC
			c.add(val, b2u8(c.getFlag(FlagC)))
		case 2: // SUB
			c.sub(val, 0)
		case 3: // SBB
			c.sub(val, b2u8(c.getFlag(FlagC)))
		case 4: // ANA
			c.ana(val)
		case 5: // XRA
			c.xra(val)
		case 6: // ORA
			c.ora(val)
		case 7: // CMP
			c.cmp(val)
		}
		return Event{Kind: Normal, Cycles: cycles}
	}

	switch op {

	// --- NOP and its seven undocumented aliases (spec.md section 4.3). ---
	case 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38:
		return Event{Kind: Normal, Cycles: 4}

	// --- LXI rp,d16 ---
	case 0x01:
		c.SetBC(c.imm16())
		return Event{Kind: Normal, Cycles: 10}
	case 0x11:
		c.SetDE(c.imm16())
		return Event{Kind: Normal, Cycles: 10}
	case 0x21:
		c.SetHL(c.imm16())
		return Event{Kind: Normal, Cycles: 10}
	case 0x31:
		c.SP = c.imm16()
		return Event{Kind: Normal, Cycles: 10}

	// --- STAX / LDAX ---
	case 0x02:
		c.mem.Write(c.GetBC(), c.A)
		return Event{Kind: Normal, Cycles: 7}
	case 0x12:
		c.mem.Write(c.GetDE(), c.A)
		return Event{Kind: Normal, Cycles: 7}
	case 0x0A:
		c.A = c.mem.Read(c.GetBC())
		return Event{Kind: Normal, Cycles: 7}
	case 0x1A:
		c.A = c.mem.Read(c.GetDE())
		return Event{Kind: Normal, Cycles: 7}

	// --- INX / DCX rp (no flags) ---
	case 0x03:
		c.SetBC(c.GetBC() + 1)
		return Event{Kind: Normal, Cycles: 5}
	case 0x13:
		c.SetDE(c.GetDE() + 1)
		return Event{Kind: Normal, Cycles: 5}
	case 0x23:
		c.SetHL(c.GetHL() + 1)
		return Event{Kind: Normal, Cycles: 5}
	case 0x33:
		c.SP++
		return Event{Kind: Normal, Cycles: 5}
	case 0x0B:
		c.SetBC(c.GetBC() - 1)
		return Event{Kind: Normal, Cycles: 5}
	case 0x1B:
		c.SetDE(c.GetDE() - 1)
		return Event{Kind: Normal, Cycles: 5}
	case 0x2B:
		c.SetHL(c.GetHL() - 1)
		return Event{Kind: Normal, Cycles: 5}
	case 0x3B:
		c.SP--
		return Event{Kind: Normal, Cycles: 5}

	// --- INR / DCR r (S,Z,A,P updated; C preserved) ---
	case 0x04:
		c.B = c.inr(c.B)
		return Event{Kind: Normal, Cycles: 5}
	case 0x0C:
		c.C = c.inr(c.C)
		return Event{Kind: Normal, Cycles: 5}
	case 0x14:
		c.D = c.inr(c.D)
		return Event{Kind: Normal, Cycles: 5}
	case 0x1C:
		c.E = c.inr(c.E)
		return Event{Kind: Normal, Cycles: 5}
	case 0x24:
		c.H = c.inr(c.H)
		return Event{Kind: Normal, Cycles: 5}
	case 0x2C:
		c.L = c.inr(c.L)
		return Event{Kind: Normal, Cycles: 5}
	case 0x34:
		c.mem.Write(c.GetHL(), c.inr(c.mem.Read(c.GetHL())))
		return Event{Kind: Normal, Cycles: 10}
	case 0x3C:
		c.A = c.inr(c.A)
		return Event{Kind: Normal, Cycles: 5}
	case 0x05:
		c.B = c.dcr(c.B)
		return Event{Kind: Normal, Cycles: 5}
	case 0x0D:
		c.C = c.dcr(c.C)
		return Event{Kind: Normal, Cycles: 5}
	case 0x15:
		c.D = c.dcr(c.D)
		return Event{Kind: Normal, Cycles: 5}
	case 0x1D:
		c.E = c.dcr(c.E)
		return Event{Kind: Normal, Cycles: 5}
	case 0x25:
		c.H = c.dcr(c.H)
		return Event{Kind: Normal, Cycles: 5}
	case 0x2D:
		c.L = c.dcr(c.L)
		return Event{Kind: Normal, Cycles: 5}
	case 0x35:
		c.mem.Write(c.GetHL(), c.dcr(c.mem.Read(c.GetHL())))
		return Event{Kind: Normal, Cycles: 10}
	case 0x3D:
		c.A = c.dcr(c.A)
		return Event{Kind: Normal, Cycles: 5}

	// --- MVI r,d8 ---
	case 0x06:
		c.B = c.imm8()
		return Event{Kind: Normal, Cycles: 7}
	case 0x0E:
		c.C = c.imm8()
		return Event{Kind: Normal, Cycles: 7}
	case 0x16:
		c.D = c.imm8()
		return Event{Kind: Normal, Cycles: 7}
	case 0x1E:
		c.E = c.imm8()
		return Event{Kind: Normal, Cycles: 7}
	case 0x26:
		c.H = c.imm8()
		return Event{Kind: Normal, Cycles: 7}
	case 0x2E:
		c.L = c.imm8()
		return Event{Kind: Normal, Cycles: 7}
	case 0x36:
		c.mem.Write(c.GetHL(), c.imm8())
		return Event{Kind: Normal, Cycles: 10}
	case 0x3E:
		c.A = c.imm8()
		return Event{Kind: Normal, Cycles: 7}

	// --- Rotates (only C changes) ---
	case 0x07: // RLC
		bit7 := c.A >> 7
		c.A = c.A<<1 | bit7
		c.setFlag(FlagC, bit7 != 0)
		return Event{Kind: Normal, Cycles: 4}
	case 0x0F: // RRC
		bit0 := c.A & 0x01
		c.A = c.A>>1 | bit0<<7
		c.setFlag(FlagC, bit0 != 0)
		return Event{Kind: Normal, Cycles: 4}
	case 0x17: // RAL
		oldC := b2u8(c.getFlag(FlagC))
		bit7 := c.A >> 7
		c.A = c.A<<1 | oldC
		c.setFlag(FlagC, bit7 != 0)
		return Event{Kind: Normal, Cycles: 4}
	case 0x1F: // RAR
		oldC := b2u8(c.getFlag(FlagC))
		bit0 := c.A & 0x01
		c.A = c.A>>1 | oldC<<7
		c.setFlag(FlagC, bit0 != 0)
		return Event{Kind: Normal, Cycles: 4}

	// --- DAD rp (only C updated) ---
	case 0x09:
		c.dad(c.GetBC())
		return Event{Kind: Normal, Cycles: 10}
	case 0x19:
		c.dad(c.GetDE())
		return Event{Kind: Normal, Cycles: 10}
	case 0x29:
		c.dad(c.GetHL())
		return Event{Kind: Normal, Cycles: 10}
	case 0x39:
		c.dad(c.SP)
		return Event{Kind: Normal, Cycles: 10}

	// --- SHLD / LHLD / STA / LDA (16-bit address, section 4.3) ---
	case 0x22: // SHLD a16
		addr := c.imm16()
		c.mem.Write(addr, c.L)
		c.mem.Write(addr+1, c.H)
		return Event{Kind: Normal, Cycles: 16}
	case 0x2A: // LHLD a16
		addr := c.imm16()
		c.L = c.mem.Read(addr)
		c.H = c.mem.Read(addr + 1)
		return Event{Kind: Normal, Cycles: 16}
	case 0x32: // STA a16
		c.mem.Write(c.imm16(), c.A)
		return Event{Kind: Normal, Cycles: 13}
	case 0x3A: // LDA a16
		c.A = c.mem.Read(c.imm16())
		return Event{Kind: Normal, Cycles: 13}

	// --- DAA / CMA / STC / CMC ---
	case 0x27: // DAA
		c.daa()
		return Event{Kind: Normal, Cycles: 4}
	case 0x2F: // CMA: A <- ~A, no flags
		c.A = ^c.A
		return Event{Kind: Normal, Cycles: 4}
	case 0x37: // STC
		c.setFlag(FlagC, true)
		return Event{Kind: Normal, Cycles: 4}
	case 0x3F: // CMC
		c.setFlag(FlagC, !c.getFlag(FlagC))
		return Event{Kind: Normal, Cycles: 4}

	// --- Immediate ALU: ADI/ACI/SUI/SBI/ANI/XRI/ORI/CPI ---
	case 0xC6:
		c.add(c.imm8(), 0)
		return Event{Kind: Normal, Cycles: 7}
	case 0xCE:
		c.add(c.imm8(), b2u8(c.getFlag(FlagC)))
		return Event{Kind: Normal, Cycles: 7}
	case 0xD6:
		c.sub(c.imm8(), 0)
		return Event{Kind: Normal, Cycles: 7}
	case 0xDE:
		c.sub(c.imm8(), b2u8(c.getFlag(FlagC)))
		return Event{Kind: Normal, Cycles: 7}
	case 0xE6:
		c.ana(c.imm8())
		return Event{Kind: Normal, Cycles: 7}
	case 0xEE:
		c.xra(c.imm8())
		return Event{Kind: Normal, Cycles: 7}
	case 0xF6:
		c.ora(c.imm8())
		return Event{Kind: Normal, Cycles: 7}
	case 0xFE:
		c.cmp(c.imm8())
		return Event{Kind: Normal, Cycles: 7}

	// --- JMP and its undocumented alias, then the eight Jcc. ---
	case 0xC3, 0xCB:
		c.PC = c.imm16()
		return Event{Kind: Normal, Cycles: 10}
	case 0xC2, 0xCA, 0xD2, 0xDA, 0xE2, 0xEA, 0xF2, 0xFA:
		addr := c.imm16()
		if c.condTaken(jccCond(op)) {
			c.PC = addr
		}
		return Event{Kind: Normal, Cycles: 10}

	// --- CALL and its three undocumented aliases, then the eight Ccc. ---
	case 0xCD, 0xDD, 0xED, 0xFD:
		addr := c.imm16()
		c.push16(c.PC)
		c.PC = addr
		return Event{Kind: Normal, Cycles: 17}
	case 0xC4, 0xCC, 0xD4, 0xDC, 0xE4, 0xEC, 0xF4, 0xFC:
		addr := c.imm16()
		if c.condTaken(jccCond(op)) {
			c.push16(c.PC)
			c.PC = addr
			return Event{Kind: Normal, Cycles: 17}
		}
		return Event{Kind: Normal, Cycles: 11}

	// --- RET and its undocumented alias, then the eight Rcc. ---
	case 0xC9, 0xD9:
		c.PC = c.pop16()
		return Event{Kind: Normal, Cycles: 10}
	case 0xC0, 0xC8, 0xD0, 0xD8, 0xE0, 0xE8, 0xF0, 0xF8:
		if c.condTaken(jccCond(op)) {
			c.PC = c.pop16()
			return Event{Kind: Normal, Cycles: 11}
		}
		return Event{Kind: Normal, Cycles: 5}

	// --- RST n ---
	case 0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF:
		n := (op - 0xC7) >> 3
		c.push16(c.PC)
		c.PC = uint16(n) * 8
		return Event{Kind: Normal, Cycles: 11}

	// --- Stack / exchange family ---
	case 0xC5:
		c.push16(c.GetBC())
		return Event{Kind: Normal, Cycles: 11}
	case 0xD5:
		c.push16(c.GetDE())
		return Event{Kind: Normal, Cycles: 11}
	case 0xE5:
		c.push16(c.GetHL())
		return Event{Kind: Normal, Cycles: 11}
	case 0xF5:
		c.push16(c.GetAF())
		return Event{Kind: Normal, Cycles: 11}
	case 0xC1:
		c.SetBC(c.pop16())
		return Event{Kind: Normal, Cycles: 10}
	case 0xD1:
		c.SetDE(c.pop16())
		return Event{Kind: Normal, Cycles: 10}
	case 0xE1:
		c.SetHL(c.pop16())
		return Event{Kind: Normal, Cycles: 10}
	case 0xF1:
		c.SetAF(canonicalF16(c.pop16()))
		return Event{Kind: Normal, Cycles: 10}
	case 0xEB: // XCHG
		hl := c.GetHL()
		c.SetHL(c.GetDE())
		c.SetDE(hl)
		return Event{Kind: Normal, Cycles: 5}
	case 0xE3: // XTHL
		sp := c.mem.Read16(c.SP)
		c.mem.Write16(c.SP, c.GetHL())
		c.SetHL(sp)
		return Event{Kind: Normal, Cycles: 18}
	case 0xF9: // SPHL
		c.SP = c.GetHL()
		return Event{Kind: Normal, Cycles: 5}
	case 0xE9: // PCHL
		c.PC = c.GetHL()
		return Event{Kind: Normal, Cycles: 5}

	// --- I/O ---
	case 0xDB: // IN port
		port := c.imm8()
		if c.ports != nil {
			c.A = c.ports.Input(port)
		} else {
			c.A = 0xFF
		}
		return Event{Kind: Normal, Cycles: 10}
	case 0xD3: // OUT port
		port := c.imm8()
		val := c.A
		if c.ports != nil {
			c.ports.Output(port, val)
		}
		return Event{Kind: Output, Cycles: 10, Port: port, Value: val}

	// --- Interrupt control ---
	case 0xFB: // EI
		c.inte = true
		return Event{Kind: Normal, Cycles: 4}
	case 0xF3: // DI
		c.inte = false
		return Event{Kind: Normal, Cycles: 4}

	default:
		// Unreachable: every one of the 256 opcode bytes is handled
		// above, either individually or via the MOV/ALU dense blocks.
		panic(fmt.Sprintf("cpu: unhandled opcode %#02x", op))
	}
}

// jccCond extracts the 3-bit condition field (bits 5-3) shared by the
// Jcc/Ccc/Rcc opcode families.
func jccCond(op uint8) uint8 {
	return (op >> 3) & 0x07
}

// canonicalF16 masks the low byte of a PSW value (about to become F via
// POP PSW) so the reserved bits read the canonical pattern: bit 1 set,
// bits 3 and 5 clear (spec.md section 4.3, "Stack").
func canonicalF16(psw uint16) uint16 {
	return uint16(psw&0xFF00) | uint16(canonicalF(uint8(psw)))
}

// dad implements DAD rp: HL <- HL + operand, only C updated, set iff the
// 17-bit sum overflows 0xFFFF. S/Z/A/P are left untouched.
func (c *CPU) dad(operand uint16) {
	sum := uint32(c.GetHL()) + uint32(operand)
	c.SetHL(uint16(sum))
	c.setFlag(FlagC, sum > 0xFFFF)
}

// TryInterrupt implements interrupt acceptance (spec.md section 4.3): if
// inte is set, it is cleared, PC is pushed, PC is set to vector, and a
// Normal(17) event is returned. If inte is clear this is a documented
// no-op and returns ok=false. Must only be called between complete
// instructions, never mid-Exec.
func (c *CPU) TryInterrupt(vector uint16) (Event, bool) {
	if !c.inte {
		return Event{}, false
	}
	c.inte = false
	c.halted = false
	c.push16(c.PC)
	c.PC = vector
	return Event{Kind: Normal, Cycles: 17}, true
}

// b2u8 converts a bool flag into the 0/1 carry-in arithmetic uses.
func b2u8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
