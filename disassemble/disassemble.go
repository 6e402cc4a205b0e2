// Package disassemble implements a disassembler for 8080 opcodes.
package disassemble

import (
	"fmt"

	"github.com/go8080/i8080/memory"
)

const (
	kMODE_IMPLIED = iota
	kMODE_IMM8
	kMODE_IMM16
	kMODE_ADDR
)

var regName = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}

// rstVector returns n for RST n given the full opcode byte.
func rstVector(op uint8) uint8 {
	return (op >> 3) & 0x07
}

// Step disassembles the instruction at pc and returns its mnemonic text
// along with the number of bytes forward the PC should advance to reach
// the next instruction. It does not interpret the instruction, so a JMP
// followed by its target in memory disassembles as that literal sequence
// rather than following the jump. Always reads the two bytes after pc,
// whatever the instruction's length; those addresses wrap modulo 65536.
func Step(pc uint16, r memory.Bank) (string, int) {
	op := r.Read(pc)
	imm8 := r.Read(pc + 1)
	imm16 := r.Read16(pc + 1)

	if op >= 0x40 && op <= 0x7F {
		if op == 0x76 {
			return fmt.Sprintf("%04X  %02X        HLT", pc, op), 1
		}
		dst := (op >> 3) & 0x07
		src := op & 0x07
		return fmt.Sprintf("%04X  %02X        MOV  %s,%s", pc, op, regName[dst], regName[src]), 1
	}

	if op >= 0x80 && op <= 0xBF {
		mnemonics := [8]string{"ADD", "ADC", "SUB", "SBB", "ANA", "XRA", "ORA", "CMP"}
		mnem := mnemonics[(op>>3)&0x07]
		src := op & 0x07
		return fmt.Sprintf("%04X  %02X        %s  %s", pc, op, mnem, regName[src]), 1
	}

	var mnem string
	mode := kMODE_IMPLIED
	count := 1

	switch op {
	case 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38:
		mnem = "NOP"
	case 0x01:
		mnem = "LXI  B"
		mode = kMODE_IMM16
	case 0x11:
		mnem = "LXI  D"
		mode = kMODE_IMM16
	case 0x21:
		mnem = "LXI  H"
		mode = kMODE_IMM16
	case 0x31:
		mnem = "LXI  SP"
		mode = kMODE_IMM16
	case 0x02:
		mnem = "STAX B"
	case 0x12:
		mnem = "STAX D"
	case 0x0A:
		mnem = "LDAX B"
	case 0x1A:
		mnem = "LDAX D"
	case 0x03:
		mnem = "INX  B"
	case 0x13:
		mnem = "INX  D"
	case 0x23:
		mnem = "INX  H"
	case 0x33:
		mnem = "INX  SP"
	case 0x0B:
		mnem = "DCX  B"
	case 0x1B:
		mnem = "DCX  D"
	case 0x2B:
		mnem = "DCX  H"
	case 0x3B:
		mnem = "DCX  SP"
	case 0x04:
		mnem = "INR  B"
	case 0x0C:
		mnem = "INR  C"
	case 0x14:
		mnem = "INR  D"
	case 0x1C:
		mnem = "INR  E"
	case 0x24:
		mnem = "INR  H"
	case 0x2C:
		mnem = "INR  L"
	case 0x34:
		mnem = "INR  M"
	case 0x3C:
		mnem = "INR  A"
	case 0x05:
		mnem = "DCR  B"
	case 0x0D:
		mnem = "DCR  C"
	case 0x15:
		mnem = "DCR  D"
	case 0x1D:
		mnem = "DCR  E"
	case 0x25:
		mnem = "DCR  H"
	case 0x2D:
		mnem = "DCR  L"
	case 0x35:
		mnem = "DCR  M"
	case 0x3D:
		mnem = "DCR  A"
	case 0x06:
		mnem = "MVI  B"
		mode = kMODE_IMM8
	case 0x0E:
		mnem = "MVI  C"
		mode = kMODE_IMM8
	case 0x16:
		mnem = "MVI  D"
		mode = kMODE_IMM8
	case 0x1E:
		mnem = "MVI  E"
		mode = kMODE_IMM8
	case 0x26:
		mnem = "MVI  H"
		mode = kMODE_IMM8
	case 0x2E:
		mnem = "MVI  L"
		mode = kMODE_IMM8
	case 0x36:
		mnem = "MVI  M"
		mode = kMODE_IMM8
	case 0x3E:
		mnem = "MVI  A"
		mode = kMODE_IMM8
	case 0x07:
		mnem = "RLC"
	case 0x0F:
		mnem = "RRC"
	case 0x17:
		mnem = "RAL"
	case 0x1F:
		mnem = "RAR"
	case 0x09:
		mnem = "DAD  B"
	case 0x19:
		mnem = "DAD  D"
	case 0x29:
		mnem = "DAD  H"
	case 0x39:
		mnem = "DAD  SP"
	case 0x22:
		mnem = "SHLD"
		mode = kMODE_ADDR
	case 0x2A:
		mnem = "LHLD"
		mode = kMODE_ADDR
	case 0x32:
		mnem = "STA"
		mode = kMODE_ADDR
	case 0x3A:
		mnem = "LDA"
		mode = kMODE_ADDR
	case 0x27:
		mnem = "DAA"
	case 0x2F:
		mnem = "CMA"
	case 0x37:
		mnem = "STC"
	case 0x3F:
		mnem = "CMC"
	case 0xC6:
		mnem = "ADI"
		mode = kMODE_IMM8
	case 0xCE:
		mnem = "ACI"
		mode = kMODE_IMM8
	case 0xD6:
		mnem = "SUI"
		mode = kMODE_IMM8
	case 0xDE:
		mnem = "SBI"
		mode = kMODE_IMM8
	case 0xE6:
		mnem = "ANI"
		mode = kMODE_IMM8
	case 0xEE:
		mnem = "XRI"
		mode = kMODE_IMM8
	case 0xF6:
		mnem = "ORI"
		mode = kMODE_IMM8
	case 0xFE:
		mnem = "CPI"
		mode = kMODE_IMM8
	case 0xC3, 0xCB:
		mnem = "JMP"
		mode = kMODE_ADDR
	case 0xC2:
		mnem = "JNZ"
		mode = kMODE_ADDR
	case 0xCA:
		mnem = "JZ"
		mode = kMODE_ADDR
	case 0xD2:
		mnem = "JNC"
		mode = kMODE_ADDR
	case 0xDA:
		mnem = "JC"
		mode = kMODE_ADDR
	case 0xE2:
		mnem = "JPO"
		mode = kMODE_ADDR
	case 0xEA:
		mnem = "JPE"
		mode = kMODE_ADDR
	case 0xF2:
		mnem = "JP"
		mode = kMODE_ADDR
	case 0xFA:
		mnem = "JM"
		mode = kMODE_ADDR
	case 0xCD, 0xDD, 0xED, 0xFD:
		mnem = "CALL"
		mode = kMODE_ADDR
	case 0xC4:
		mnem = "CNZ"
		mode = kMODE_ADDR
	case 0xCC:
		mnem = "CZ"
		mode = kMODE_ADDR
	case 0xD4:
		mnem = "CNC"
		mode = kMODE_ADDR
	case 0xDC:
		mnem = "CC"
		mode = kMODE_ADDR
	case 0xE4:
		mnem = "CPO"
		mode = kMODE_ADDR
	case 0xEC:
		mnem = "CPE"
		mode = kMODE_ADDR
	case 0xF4:
		mnem = "CP"
		mode = kMODE_ADDR
	case 0xFC:
		mnem = "CM"
		mode = kMODE_ADDR
	case 0xC9, 0xD9:
		mnem = "RET"
	case 0xC0:
		mnem = "RNZ"
	case 0xC8:
		mnem = "RZ"
	case 0xD0:
		mnem = "RNC"
	case 0xD8:
		mnem = "RC"
	case 0xE0:
		mnem = "RPO"
	case 0xE8:
		mnem = "RPE"
	case 0xF0:
		mnem = "RP"
	case 0xF8:
		mnem = "RM"
	case 0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF:
		mnem = fmt.Sprintf("RST  %d", rstVector(op))
	case 0xC1:
		mnem = "POP  B"
	case 0xD1:
		mnem = "POP  D"
	case 0xE1:
		mnem = "POP  H"
	case 0xF1:
		mnem = "POP  PSW"
	case 0xC5:
		mnem = "PUSH B"
	case 0xD5:
		mnem = "PUSH D"
	case 0xE5:
		mnem = "PUSH H"
	case 0xF5:
		mnem = "PUSH PSW"
	case 0xEB:
		mnem = "XCHG"
	case 0xE3:
		mnem = "XTHL"
	case 0xF9:
		mnem = "SPHL"
	case 0xE9:
		mnem = "PCHL"
	case 0xDB:
		mnem = "IN"
		mode = kMODE_IMM8
	case 0xD3:
		mnem = "OUT"
		mode = kMODE_IMM8
	case 0xF3:
		mnem = "DI"
	case 0xFB:
		mnem = "EI"
	case 0x76:
		mnem = "HLT"
	default:
		mnem = "UNIMPLEMENTED"
	}

	var out string
	switch mode {
	case kMODE_IMM8:
		out = fmt.Sprintf("%04X  %02X %02X     %s  #$%02X", pc, op, imm8, mnem, imm8)
		count = 2
	case kMODE_IMM16:
		out = fmt.Sprintf("%04X  %02X %02X %02X  %s  #$%04X", pc, op, imm16&0xFF, imm16>>8, mnem, imm16)
		count = 3
	case kMODE_ADDR:
		out = fmt.Sprintf("%04X  %02X %02X %02X  %s  $%04X", pc, op, imm16&0xFF, imm16>>8, mnem, imm16)
		count = 3
	default:
		out = fmt.Sprintf("%04X  %02X        %s", pc, op, mnem)
		count = 1
	}
	return out, count
}
