package cpu

import "github.com/gbkernel/gbkernel/jeebie/bit"

// pushStack pushes a 16 bit value onto the stack, high byte first.
func (c *CPU) pushStack(value uint16) {
	c.sp--
	c.bus.Write(c.sp, bit.High(value))
	c.sp--
	c.bus.Write(c.sp, bit.Low(value))
}

// popStack pops a 16 bit value off the stack, low byte first.
func (c *CPU) popStack() uint16 {
	low := c.bus.Read(c.sp)
	c.sp++
	high := c.bus.Read(c.sp)
	c.sp++

	return bit.Combine(high, low)
}

func (c *CPU) inc(r *uint8) {
	*r++
	value := *r

	c.setFlagToCondition(zeroFlag, value == 0)
	c.setFlagToCondition(halfCarryFlag, value&0x0F == 0)
	c.resetFlag(subFlag)
}

func (c *CPU) dec(r *uint8) {
	*r--
	value := *r

	c.setFlagToCondition(zeroFlag, value == 0)
	c.setFlagToCondition(halfCarryFlag, value&0x0F == 0x0F)
	c.setFlag(subFlag)
}

func (c *CPU) rlc(r *uint8) {
	value := *r
	carry := value&0x80 != 0

	value = (value << 1) | (value >> 7)
	*r = value

	c.f = 0
	c.setFlagToCondition(carryFlag, carry)
	c.setFlagToCondition(zeroFlag, value == 0)
}

func (c *CPU) rl(r *uint8) {
	value := *r
	oldCarry := c.flagToBit(carryFlag)
	newCarry := value&0x80 != 0

	value = (value << 1) | oldCarry
	*r = value

	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, newCarry)
	c.setFlagToCondition(zeroFlag, value == 0)
}

func (c *CPU) rrc(r *uint8) {
	value := *r
	carry := value&0x01 != 0

	value = (value >> 1) | (value << 7)
	*r = value

	c.f = 0
	c.setFlagToCondition(carryFlag, carry)
	c.setFlagToCondition(zeroFlag, value == 0)
}

func (c *CPU) rr(r *uint8) {
	value := *r
	oldCarry := c.flagToBit(carryFlag)
	newCarry := value&0x01 != 0

	value = (value >> 1) | (oldCarry << 7)
	*r = value

	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, newCarry)
	c.setFlagToCondition(zeroFlag, value == 0)
}

func (c *CPU) sla(r *uint8) {
	value := *r
	carry := value&0x80 != 0

	value = value << 1
	*r = value

	c.f = 0
	c.setFlagToCondition(carryFlag, carry)
	c.setFlagToCondition(zeroFlag, value == 0)
}

func (c *CPU) sra(r *uint8) {
	value := *r
	carry := value&0x01 != 0
	msb := value & 0x80

	value = (value >> 1) | msb
	*r = value

	c.f = 0
	c.setFlagToCondition(carryFlag, carry)
	c.setFlagToCondition(zeroFlag, value == 0)
}

func (c *CPU) srl(r *uint8) {
	value := *r
	carry := value&0x01 != 0

	value = value >> 1
	*r = value

	c.f = 0
	c.setFlagToCondition(carryFlag, carry)
	c.setFlagToCondition(zeroFlag, value == 0)
}

func (c *CPU) swap(r *uint8) {
	value := *r
	value = (value << 4) | (value >> 4)
	*r = value

	c.f = 0
	c.setFlagToCondition(zeroFlag, value == 0)
}

// addToA adds value to register A, setting all relevant flags.
func (c *CPU) addToA(value uint8) {
	a := c.a
	result := a + value

	carry := (uint16(a) + uint16(value)) > 0xFF
	halfCarry := (a&0xF)+(value&0xF) > 0xF

	c.a = result

	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.setFlagToCondition(carryFlag, carry)
	c.setFlagToCondition(halfCarryFlag, halfCarry)
}

// adc adds value plus the carry flag to register A.
func (c *CPU) adc(value uint8) {
	a := c.a
	carryIn := c.flagToBit(carryFlag)
	result := a + value + carryIn

	carry := uint16(a)+uint16(value)+uint16(carryIn) > 0xFF
	halfCarry := (a&0xF)+(value&0xF)+carryIn > 0xF

	c.a = result

	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.setFlagToCondition(carryFlag, carry)
	c.setFlagToCondition(halfCarryFlag, halfCarry)
}

// addToHL adds value to the HL register pair.
func (c *CPU) addToHL(value uint16) {
	hl := c.getHL()
	result := hl + value

	carry := (uint32(hl) + uint32(value)) > 0xFFFF
	halfCarry := (hl&0xFFF)+(value&0xFFF) > 0xFFF

	c.setFlagToCondition(carryFlag, carry)
	c.setFlagToCondition(halfCarryFlag, halfCarry)
	c.resetFlag(subFlag)

	c.setHL(result)
}

// sub subtracts value from register A, setting all relevant flags.
func (c *CPU) sub(value uint8) {
	a := c.a
	result := a - value

	c.a = result

	c.setFlagToCondition(zeroFlag, result == 0)
	c.setFlag(subFlag)
	c.setFlagToCondition(carryFlag, a < value)
	c.setFlagToCondition(halfCarryFlag, (a&0xF) < (value&0xF))
}

// sbc subtracts value plus the carry flag from register A.
func (c *CPU) sbc(value uint8) {
	a := c.a
	carryIn := c.flagToBit(carryFlag)
	result := a - value - carryIn

	borrow := uint16(value)+uint16(carryIn) > uint16(a)
	halfBorrow := (value&0xF)+carryIn > (a & 0xF)

	c.a = result

	c.setFlagToCondition(zeroFlag, result == 0)
	c.setFlag(subFlag)
	c.setFlagToCondition(carryFlag, borrow)
	c.setFlagToCondition(halfCarryFlag, halfBorrow)
}

func (c *CPU) and(value uint8) {
	c.a &= value

	c.f = 0
	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.setFlag(halfCarryFlag)
}

func (c *CPU) or(value uint8) {
	c.a |= value

	c.f = 0
	c.setFlagToCondition(zeroFlag, c.a == 0)
}

func (c *CPU) xor(value uint8) {
	c.a ^= value

	c.f = 0
	c.setFlagToCondition(zeroFlag, c.a == 0)
}

// cp compares value against register A without modifying it.
func (c *CPU) cp(value uint8) {
	a := c.a
	result := a - value

	c.setFlagToCondition(zeroFlag, result == 0)
	c.setFlag(subFlag)
	c.setFlagToCondition(carryFlag, a < value)
	c.setFlagToCondition(halfCarryFlag, (a&0xF) < (value&0xF))
}

// daa adjusts register A to its BCD representation after an add or subtract.
func (c *CPU) daa() {
	a := c.a
	var adjust uint8
	carry := c.isSetFlag(carryFlag)

	if c.isSetFlag(subFlag) {
		if c.isSetFlag(halfCarryFlag) {
			adjust |= 0x06
		}
		if carry {
			adjust |= 0x60
		}
		a -= adjust
	} else {
		if c.isSetFlag(halfCarryFlag) || a&0x0F > 0x09 {
			adjust |= 0x06
		}
		if carry || a > 0x99 {
			adjust |= 0x60
			carry = true
		}
		a += adjust
	}

	c.a = a

	c.setFlagToCondition(zeroFlag, a == 0)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, carry)
}

// bit tests bit idx of arg, setting the zero flag if it is clear.
func (c *CPU) bit(idx uint8, arg uint8) {
	isSet := arg&(1<<idx) != 0

	c.setFlagToCondition(zeroFlag, !isSet)
	c.resetFlag(subFlag)
	c.setFlag(halfCarryFlag)
}

func (c *CPU) set(idx uint8, r *uint8) {
	*r |= 1 << idx
}

func (c *CPU) res(idx uint8, r *uint8) {
	*r &^= 1 << idx
}

// jr performs a relative jump using the signed immediate byte at PC.
func (c *CPU) jr() {
	n := c.readSignedImmediate()
	c.pc = uint16(int32(c.pc) + int32(n))
}
