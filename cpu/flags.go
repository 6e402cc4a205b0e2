package cpu

// Flag bit positions within the F register (spec.md section 3, LSB = 0).
// Bits 1, 3 and 5 are reserved: bit 1 always reads 1, bits 3 and 5 always
// read 0, per the 8080's PUSH PSW convention.
const (
	FlagC uint8 = 1 << 0 // Carry
	FlagP uint8 = 1 << 2 // Parity (even)
	FlagA uint8 = 1 << 4 // Auxiliary carry
	FlagZ uint8 = 1 << 6 // Zero
	FlagS uint8 = 1 << 7 // Sign

	flagReserved1 uint8 = 1 << 1
	flagReserved3 uint8 = 1 << 3
	flagReserved5 uint8 = 1 << 5
)

// canonicalF forces the reserved bits of an F value to the pattern real
// 8080 hardware presents: bit 1 set, bits 3 and 5 clear. Used when a value
// is about to become the architectural F (POP PSW) rather than on every
// flag write, since well-behaved flag updates never touch the reserved
// bits in the first place.
func canonicalF(f uint8) uint8 {
	f |= flagReserved1
	f &^= flagReserved3 | flagReserved5
	return f
}

// parityTable[v] is true if v has an even number of set bits, precomputed
// once rather than popcounted on every flag update.
var parityTable [256]bool

func init() {
	for v := 0; v < 256; v++ {
		bits := 0
		for b := v; b != 0; b &= b - 1 {
			bits++
		}
		parityTable[v] = bits%2 == 0
	}
}

// getFlag reads a single flag bit.
func (c *CPU) getFlag(mask uint8) bool {
	return c.F&mask != 0
}

// setFlag writes a single flag bit.
func (c *CPU) setFlag(mask uint8, v bool) {
	if v {
		c.F |= mask
	} else {
		c.F &^= mask
	}
}

// setSZP derives S, Z and P from an 8-bit result; every flag-affecting
// family does this identically (spec.md section 4.2), only A and C differ.
func (c *CPU) setSZP(result uint8) {
	c.setFlag(FlagS, result&0x80 != 0)
	c.setFlag(FlagZ, result == 0)
	c.setFlag(FlagP, parityTable[result])
}

// addWithFlags computes x + y + cin and returns the 8-bit result along with
// the carry and auxiliary-carry this ADD-family operation produces. It does
// not itself write S/Z/P/C/A; callers combine it with setSZP and the two
// bools as each opcode's contract requires. INR does not use it: inr
// derives its own aux carry and keeps C.
func addWithFlags(x, y, cin uint8) (result uint8, carry, aux bool) {
	sum := uint16(x) + uint16(y) + uint16(cin)
	result = uint8(sum)
	carry = sum > 0xFF
	aux = (x&0x0F)+(y&0x0F)+cin > 0x0F
	return result, carry, aux
}

// subWithFlags computes x - y - cin and returns the 8-bit result along
// with the borrow-as-carry and auxiliary-borrow this SUB-family operation
// produces.
func subWithFlags(x, y, cin uint8) (result uint8, borrow, aux bool) {
	result = x - y - cin
	borrow = int(x) < int(y)+int(cin)
	aux = int(x&0x0F)-int(y&0x0F)-int(cin) < 0
	return result, borrow, aux
}

// add performs ADD/ADC/ADI/ACI: A <- A + val + cin, all five flags set.
func (c *CPU) add(val, cin uint8) {
	result, carry, aux := addWithFlags(c.A, val, cin)
	c.A = result
	c.setSZP(result)
	c.setFlag(FlagC, carry)
	c.setFlag(FlagA, aux)
}

// sub performs SUB/SBB/SUI/SBI: A <- A - val - cin, all five flags set.
func (c *CPU) sub(val, cin uint8) {
	result, borrow, aux := subWithFlags(c.A, val, cin)
	c.A = result
	c.setSZP(result)
	c.setFlag(FlagC, borrow)
	c.setFlag(FlagA, aux)
}

// cmp performs CMP/CPI: same flags as sub, but A is left untouched.
func (c *CPU) cmp(val uint8) {
	result, borrow, aux := subWithFlags(c.A, val, 0)
	c.setSZP(result)
	c.setFlag(FlagC, borrow)
	c.setFlag(FlagA, aux)
}

// inr performs INR r: result <- r + 1, S/Z/A/P updated, C preserved.
func (c *CPU) inr(r uint8) uint8 {
	result := r + 1
	c.setSZP(result)
	c.setFlag(FlagA, r&0x0F+1 > 0x0F)
	return result
}

// dcr performs DCR r: result <- r - 1, S/Z/A/P updated, C preserved.
func (c *CPU) dcr(r uint8) uint8 {
	result := r - 1
	c.setSZP(result)
	c.setFlag(FlagA, result&0x0F != 0x0F)
	return result
}

// ana performs ANA/ANI: A <- A & val. C is cleared; A (aux carry) follows
// the 8080's documented quirk rather than always clearing, since CPUDIAG
// and other diagnostic ROMs depend on it (spec.md section 4.2).
func (c *CPU) ana(val uint8) {
	aux := (c.A|val)&0x08 != 0
	c.A &= val
	c.setSZP(c.A)
	c.setFlag(FlagC, false)
	c.setFlag(FlagA, aux)
}

// xra performs XRA/XRI: A <- A ^ val. C and A (aux carry) both cleared.
func (c *CPU) xra(val uint8) {
	c.A ^= val
	c.setSZP(c.A)
	c.setFlag(FlagC, false)
	c.setFlag(FlagA, false)
}

// ora performs ORA/ORI: A <- A | val. C and A (aux carry) both cleared.
func (c *CPU) ora(val uint8) {
	c.A |= val
	c.setSZP(c.A)
	c.setFlag(FlagC, false)
	c.setFlag(FlagA, false)
}

// daa decimal-adjusts A per spec.md section 4.3. Must be bit-exact: CPUDIAG
// exercises every branch of this.
func (c *CPU) daa() {
	lo := c.A & 0x0F
	hi := c.A >> 4
	cf := c.getFlag(FlagC)

	var correction uint8
	newCF := cf
	if lo > 9 || c.getFlag(FlagA) {
		correction += 0x06
	}
	if hi > 9 || cf || (hi >= 9 && lo > 9) {
		correction += 0x60
		newCF = true
	}
	c.add(correction, 0)
	c.setFlag(FlagC, newCF)
}
