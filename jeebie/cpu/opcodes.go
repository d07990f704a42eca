package cpu

import "github.com/gbkernel/gbkernel/jeebie/bit"

// opcode0x00 NOP
func opcode0x00(c *CPU) int {
	return 4
}

func opcode0x01(c *CPU) int {
	c.setBC(c.readImmediateWord())
	return 12
}

func opcode0x02(c *CPU) int {
	c.bus.Write(c.getBC(), c.a)
	return 8
}

func opcode0x03(c *CPU) int {
	c.setBC(c.getBC() + 1)
	return 8
}

func opcode0x04(c *CPU) int {
	c.inc(&c.b)
	return 4
}

func opcode0x05(c *CPU) int {
	c.dec(&c.b)
	return 4
}

func opcode0x06(c *CPU) int {
	c.b = c.readImmediate()
	return 8
}

func opcode0x07(c *CPU) int {
	c.rlc(&c.a)
	c.resetFlag(zeroFlag)
	return 4
}

func opcode0x08(c *CPU) int {
	addr := c.readImmediateWord()
	c.bus.Write(addr, bit.Low(c.sp))
	c.bus.Write(addr+1, bit.High(c.sp))
	return 20
}

func opcode0x09(c *CPU) int {
	c.addToHL(c.getBC())
	return 8
}

func opcode0x0A(c *CPU) int {
	c.a = c.bus.Read(c.getBC())
	return 8
}

func opcode0x0B(c *CPU) int {
	c.setBC(c.getBC() - 1)
	return 8
}

func opcode0x0C(c *CPU) int {
	c.inc(&c.c)
	return 4
}

func opcode0x0D(c *CPU) int {
	c.dec(&c.c)
	return 4
}

func opcode0x0E(c *CPU) int {
	c.c = c.readImmediate()
	return 8
}

func opcode0x0F(c *CPU) int {
	c.rrc(&c.a)
	c.resetFlag(zeroFlag)
	return 4
}

// opcode0x10 STOP: the operand byte is always 0x00 and is consumed but
// otherwise ignored. The CGB double-speed switch commits here if KEY1 bit 0
// was armed, handled by the surrounding system clock.
func opcode0x10(c *CPU) int {
	c.readImmediate()
	c.stopped = true
	return 4
}

func opcode0x11(c *CPU) int {
	c.setDE(c.readImmediateWord())
	return 12
}

func opcode0x12(c *CPU) int {
	c.bus.Write(c.getDE(), c.a)
	return 8
}

func opcode0x13(c *CPU) int {
	c.setDE(c.getDE() + 1)
	return 8
}

func opcode0x14(c *CPU) int {
	c.inc(&c.d)
	return 4
}

func opcode0x15(c *CPU) int {
	c.dec(&c.d)
	return 4
}

func opcode0x16(c *CPU) int {
	c.d = c.readImmediate()
	return 8
}

func opcode0x17(c *CPU) int {
	c.rl(&c.a)
	c.resetFlag(zeroFlag)
	return 4
}

func opcode0x18(c *CPU) int {
	c.jr()
	return 12
}

func opcode0x19(c *CPU) int {
	c.addToHL(c.getDE())
	return 8
}

func opcode0x1A(c *CPU) int {
	c.a = c.bus.Read(c.getDE())
	return 8
}

func opcode0x1B(c *CPU) int {
	c.setDE(c.getDE() - 1)
	return 8
}

func opcode0x1C(c *CPU) int {
	c.inc(&c.e)
	return 4
}

func opcode0x1D(c *CPU) int {
	c.dec(&c.e)
	return 4
}

func opcode0x1E(c *CPU) int {
	c.e = c.readImmediate()
	return 8
}

func opcode0x1F(c *CPU) int {
	c.rr(&c.a)
	c.resetFlag(zeroFlag)
	return 4
}

func opcode0x20(c *CPU) int {
	if !c.isSetFlag(zeroFlag) {
		c.jr()
		return 12
	}
	c.readSignedImmediate()
	return 8
}

func opcode0x21(c *CPU) int {
	c.setHL(c.readImmediateWord())
	return 12
}

func opcode0x22(c *CPU) int {
	c.bus.Write(c.getHL(), c.a)
	c.setHL(c.getHL() + 1)
	return 8
}

func opcode0x23(c *CPU) int {
	c.setHL(c.getHL() + 1)
	return 8
}

func opcode0x24(c *CPU) int {
	c.inc(&c.h)
	return 4
}

func opcode0x25(c *CPU) int {
	c.dec(&c.h)
	return 4
}

func opcode0x26(c *CPU) int {
	c.h = c.readImmediate()
	return 8
}

// opcode0x27 DAA
func opcode0x27(c *CPU) int {
	c.daa()
	return 4
}

func opcode0x28(c *CPU) int {
	if c.isSetFlag(zeroFlag) {
		c.jr()
		return 12
	}
	c.readSignedImmediate()
	return 8
}

func opcode0x29(c *CPU) int {
	c.addToHL(c.getHL())
	return 8
}

func opcode0x2A(c *CPU) int {
	c.a = c.bus.Read(c.getHL())
	c.setHL(c.getHL() + 1)
	return 8
}

func opcode0x2B(c *CPU) int {
	c.setHL(c.getHL() - 1)
	return 8
}

func opcode0x2C(c *CPU) int {
	c.inc(&c.l)
	return 4
}

func opcode0x2D(c *CPU) int {
	c.dec(&c.l)
	return 4
}

func opcode0x2E(c *CPU) int {
	c.l = c.readImmediate()
	return 8
}

// opcode0x2F CPL: complement register A.
func opcode0x2F(c *CPU) int {
	c.a = ^c.a
	c.setFlag(subFlag)
	c.setFlag(halfCarryFlag)
	return 4
}

func opcode0x30(c *CPU) int {
	if !c.isSetFlag(carryFlag) {
		c.jr()
		return 12
	}
	c.readSignedImmediate()
	return 8
}

func opcode0x31(c *CPU) int {
	c.sp = c.readImmediateWord()
	return 12
}

func opcode0x32(c *CPU) int {
	c.bus.Write(c.getHL(), c.a)
	c.setHL(c.getHL() - 1)
	return 8
}

func opcode0x33(c *CPU) int {
	c.sp++
	return 8
}

func opcode0x34(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.inc(&v)
	c.bus.Write(c.getHL(), v)
	return 12
}

func opcode0x35(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.dec(&v)
	c.bus.Write(c.getHL(), v)
	return 12
}

func opcode0x36(c *CPU) int {
	c.bus.Write(c.getHL(), c.readImmediate())
	return 12
}

// opcode0x37 SCF: set carry flag.
func opcode0x37(c *CPU) int {
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlag(carryFlag)
	return 4
}

func opcode0x38(c *CPU) int {
	if c.isSetFlag(carryFlag) {
		c.jr()
		return 12
	}
	c.readSignedImmediate()
	return 8
}

func opcode0x39(c *CPU) int {
	c.addToHL(c.sp)
	return 8
}

func opcode0x3A(c *CPU) int {
	c.a = c.bus.Read(c.getHL())
	c.setHL(c.getHL() - 1)
	return 8
}

func opcode0x3B(c *CPU) int {
	c.sp--
	return 8
}

func opcode0x3C(c *CPU) int {
	c.inc(&c.a)
	return 4
}

func opcode0x3D(c *CPU) int {
	c.dec(&c.a)
	return 4
}

func opcode0x3E(c *CPU) int {
	c.a = c.readImmediate()
	return 8
}

// opcode0x3F CCF: complement carry flag.
func opcode0x3F(c *CPU) int {
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, !c.isSetFlag(carryFlag))
	return 4
}

// --- 0x40-0x7F: 8 bit register loads ---

func opcode0x40(c *CPU) int { c.b = c.b; return 4 }
func opcode0x41(c *CPU) int { c.b = c.c; return 4 }
func opcode0x42(c *CPU) int { c.b = c.d; return 4 }
func opcode0x43(c *CPU) int { c.b = c.e; return 4 }
func opcode0x44(c *CPU) int { c.b = c.h; return 4 }
func opcode0x45(c *CPU) int { c.b = c.l; return 4 }
func opcode0x46(c *CPU) int { c.b = c.bus.Read(c.getHL()); return 8 }
func opcode0x47(c *CPU) int { c.b = c.a; return 4 }

func opcode0x48(c *CPU) int { c.c = c.b; return 4 }
func opcode0x49(c *CPU) int { c.c = c.c; return 4 }
func opcode0x4A(c *CPU) int { c.c = c.d; return 4 }
func opcode0x4B(c *CPU) int { c.c = c.e; return 4 }
func opcode0x4C(c *CPU) int { c.c = c.h; return 4 }
func opcode0x4D(c *CPU) int { c.c = c.l; return 4 }
func opcode0x4E(c *CPU) int { c.c = c.bus.Read(c.getHL()); return 8 }
func opcode0x4F(c *CPU) int { c.c = c.a; return 4 }

func opcode0x50(c *CPU) int { c.d = c.b; return 4 }
func opcode0x51(c *CPU) int { c.d = c.c; return 4 }
func opcode0x52(c *CPU) int { c.d = c.d; return 4 }
func opcode0x53(c *CPU) int { c.d = c.e; return 4 }
func opcode0x54(c *CPU) int { c.d = c.h; return 4 }
func opcode0x55(c *CPU) int { c.d = c.l; return 4 }
func opcode0x56(c *CPU) int { c.d = c.bus.Read(c.getHL()); return 8 }
func opcode0x57(c *CPU) int { c.d = c.a; return 4 }

func opcode0x58(c *CPU) int { c.e = c.b; return 4 }
func opcode0x59(c *CPU) int { c.e = c.c; return 4 }
func opcode0x5A(c *CPU) int { c.e = c.d; return 4 }
func opcode0x5B(c *CPU) int { c.e = c.e; return 4 }
func opcode0x5C(c *CPU) int { c.e = c.h; return 4 }
func opcode0x5D(c *CPU) int { c.e = c.l; return 4 }
func opcode0x5E(c *CPU) int { c.e = c.bus.Read(c.getHL()); return 8 }
func opcode0x5F(c *CPU) int { c.e = c.a; return 4 }

func opcode0x60(c *CPU) int { c.h = c.b; return 4 }
func opcode0x61(c *CPU) int { c.h = c.c; return 4 }
func opcode0x62(c *CPU) int { c.h = c.d; return 4 }
func opcode0x63(c *CPU) int { c.h = c.e; return 4 }
func opcode0x64(c *CPU) int { c.h = c.h; return 4 }
func opcode0x65(c *CPU) int { c.h = c.l; return 4 }
func opcode0x66(c *CPU) int { c.h = c.bus.Read(c.getHL()); return 8 }
func opcode0x67(c *CPU) int { c.h = c.a; return 4 }

func opcode0x68(c *CPU) int { c.l = c.b; return 4 }
func opcode0x69(c *CPU) int { c.l = c.c; return 4 }
func opcode0x6A(c *CPU) int { c.l = c.d; return 4 }
func opcode0x6B(c *CPU) int { c.l = c.e; return 4 }
func opcode0x6C(c *CPU) int { c.l = c.h; return 4 }
func opcode0x6D(c *CPU) int { c.l = c.l; return 4 }
func opcode0x6E(c *CPU) int { c.l = c.bus.Read(c.getHL()); return 8 }
func opcode0x6F(c *CPU) int { c.l = c.a; return 4 }

func opcode0x70(c *CPU) int { c.bus.Write(c.getHL(), c.b); return 8 }
func opcode0x71(c *CPU) int { c.bus.Write(c.getHL(), c.c); return 8 }
func opcode0x72(c *CPU) int { c.bus.Write(c.getHL(), c.d); return 8 }
func opcode0x73(c *CPU) int { c.bus.Write(c.getHL(), c.e); return 8 }
func opcode0x74(c *CPU) int { c.bus.Write(c.getHL(), c.h); return 8 }
func opcode0x75(c *CPU) int { c.bus.Write(c.getHL(), c.l); return 8 }

// opcode0x76 HALT
func opcode0x76(c *CPU) int {
	c.halted = true
	if !c.interruptsEnabled {
		ie := c.bus.Read(0xFFFF)
		iflag := c.bus.Read(0xFF0F)
		if ie&iflag&0x1F != 0 {
			// HALT executed with IME=0 and an interrupt already pending:
			// the halt bug. CPU does not actually halt, and the next
			// instruction byte is read twice.
			c.halted = false
			c.haltBug = true
		}
	}
	return 4
}

func opcode0x77(c *CPU) int { c.bus.Write(c.getHL(), c.a); return 8 }

func opcode0x78(c *CPU) int { c.a = c.b; return 4 }
func opcode0x79(c *CPU) int { c.a = c.c; return 4 }
func opcode0x7A(c *CPU) int { c.a = c.d; return 4 }
func opcode0x7B(c *CPU) int { c.a = c.e; return 4 }
func opcode0x7C(c *CPU) int { c.a = c.h; return 4 }
func opcode0x7D(c *CPU) int { c.a = c.l; return 4 }
func opcode0x7E(c *CPU) int { c.a = c.bus.Read(c.getHL()); return 8 }
func opcode0x7F(c *CPU) int { c.a = c.a; return 4 }

// --- 0x80-0xBF: ALU against A ---

func opcode0x80(c *CPU) int { c.addToA(c.b); return 4 }
func opcode0x81(c *CPU) int { c.addToA(c.c); return 4 }
func opcode0x82(c *CPU) int { c.addToA(c.d); return 4 }
func opcode0x83(c *CPU) int { c.addToA(c.e); return 4 }
func opcode0x84(c *CPU) int { c.addToA(c.h); return 4 }
func opcode0x85(c *CPU) int { c.addToA(c.l); return 4 }
func opcode0x86(c *CPU) int { c.addToA(c.bus.Read(c.getHL())); return 8 }
func opcode0x87(c *CPU) int { c.addToA(c.a); return 4 }

func opcode0x88(c *CPU) int { c.adc(c.b); return 4 }
func opcode0x89(c *CPU) int { c.adc(c.c); return 4 }
func opcode0x8A(c *CPU) int { c.adc(c.d); return 4 }
func opcode0x8B(c *CPU) int { c.adc(c.e); return 4 }
func opcode0x8C(c *CPU) int { c.adc(c.h); return 4 }
func opcode0x8D(c *CPU) int { c.adc(c.l); return 4 }
func opcode0x8E(c *CPU) int { c.adc(c.bus.Read(c.getHL())); return 8 }
func opcode0x8F(c *CPU) int { c.adc(c.a); return 4 }

func opcode0x90(c *CPU) int { c.sub(c.b); return 4 }
func opcode0x91(c *CPU) int { c.sub(c.c); return 4 }
func opcode0x92(c *CPU) int { c.sub(c.d); return 4 }
func opcode0x93(c *CPU) int { c.sub(c.e); return 4 }
func opcode0x94(c *CPU) int { c.sub(c.h); return 4 }
func opcode0x95(c *CPU) int { c.sub(c.l); return 4 }
func opcode0x96(c *CPU) int { c.sub(c.bus.Read(c.getHL())); return 8 }
func opcode0x97(c *CPU) int { c.sub(c.a); return 4 }

func opcode0x98(c *CPU) int { c.sbc(c.b); return 4 }
func opcode0x99(c *CPU) int { c.sbc(c.c); return 4 }
func opcode0x9A(c *CPU) int { c.sbc(c.d); return 4 }
func opcode0x9B(c *CPU) int { c.sbc(c.e); return 4 }
func opcode0x9C(c *CPU) int { c.sbc(c.h); return 4 }
func opcode0x9D(c *CPU) int { c.sbc(c.l); return 4 }
func opcode0x9E(c *CPU) int { c.sbc(c.bus.Read(c.getHL())); return 8 }
func opcode0x9F(c *CPU) int { c.sbc(c.a); return 4 }

func opcode0xA0(c *CPU) int { c.and(c.b); return 4 }
func opcode0xA1(c *CPU) int { c.and(c.c); return 4 }
func opcode0xA2(c *CPU) int { c.and(c.d); return 4 }
func opcode0xA3(c *CPU) int { c.and(c.e); return 4 }
func opcode0xA4(c *CPU) int { c.and(c.h); return 4 }
func opcode0xA5(c *CPU) int { c.and(c.l); return 4 }
func opcode0xA6(c *CPU) int { c.and(c.bus.Read(c.getHL())); return 8 }
func opcode0xA7(c *CPU) int { c.and(c.a); return 4 }

func opcode0xA8(c *CPU) int { c.xor(c.b); return 4 }
func opcode0xA9(c *CPU) int { c.xor(c.c); return 4 }
func opcode0xAA(c *CPU) int { c.xor(c.d); return 4 }
func opcode0xAB(c *CPU) int { c.xor(c.e); return 4 }
func opcode0xAC(c *CPU) int { c.xor(c.h); return 4 }
func opcode0xAD(c *CPU) int { c.xor(c.l); return 4 }
func opcode0xAE(c *CPU) int { c.xor(c.bus.Read(c.getHL())); return 8 }
func opcode0xAF(c *CPU) int { c.xor(c.a); return 4 }

func opcode0xB0(c *CPU) int { c.or(c.b); return 4 }
func opcode0xB1(c *CPU) int { c.or(c.c); return 4 }
func opcode0xB2(c *CPU) int { c.or(c.d); return 4 }
func opcode0xB3(c *CPU) int { c.or(c.e); return 4 }
func opcode0xB4(c *CPU) int { c.or(c.h); return 4 }
func opcode0xB5(c *CPU) int { c.or(c.l); return 4 }
func opcode0xB6(c *CPU) int { c.or(c.bus.Read(c.getHL())); return 8 }
func opcode0xB7(c *CPU) int { c.or(c.a); return 4 }

func opcode0xB8(c *CPU) int { c.cp(c.b); return 4 }
func opcode0xB9(c *CPU) int { c.cp(c.c); return 4 }
func opcode0xBA(c *CPU) int { c.cp(c.d); return 4 }
func opcode0xBB(c *CPU) int { c.cp(c.e); return 4 }
func opcode0xBC(c *CPU) int { c.cp(c.h); return 4 }
func opcode0xBD(c *CPU) int { c.cp(c.l); return 4 }
func opcode0xBE(c *CPU) int { c.cp(c.bus.Read(c.getHL())); return 8 }
func opcode0xBF(c *CPU) int { c.cp(c.a); return 4 }

// --- 0xC0-0xFF: control flow, stack, immediate ALU ---

func opcode0xC0(c *CPU) int {
	if !c.isSetFlag(zeroFlag) {
		c.pc = c.popStack()
		return 20
	}
	return 8
}

func opcode0xC1(c *CPU) int {
	c.setBC(c.popStack())
	return 12
}

func opcode0xC2(c *CPU) int {
	addr := c.readImmediateWord()
	if !c.isSetFlag(zeroFlag) {
		c.pc = addr
		return 16
	}
	return 12
}

func opcode0xC3(c *CPU) int {
	c.pc = c.readImmediateWord()
	return 16
}

func opcode0xC4(c *CPU) int {
	addr := c.readImmediateWord()
	if !c.isSetFlag(zeroFlag) {
		c.pushStack(c.pc)
		c.pc = addr
		return 24
	}
	return 12
}

func opcode0xC5(c *CPU) int {
	c.pushStack(c.getBC())
	return 16
}

func opcode0xC6(c *CPU) int {
	c.addToA(c.readImmediate())
	return 8
}

func opcode0xC7(c *CPU) int {
	c.pushStack(c.pc)
	c.pc = 0x00
	return 16
}

func opcode0xC8(c *CPU) int {
	if c.isSetFlag(zeroFlag) {
		c.pc = c.popStack()
		return 20
	}
	return 8
}

func opcode0xC9(c *CPU) int {
	c.pc = c.popStack()
	return 16
}

func opcode0xCA(c *CPU) int {
	addr := c.readImmediateWord()
	if c.isSetFlag(zeroFlag) {
		c.pc = addr
		return 16
	}
	return 12
}

// opcode0xCB is never invoked directly: Decode() routes 0xCB-prefixed
// instructions straight to the opcodesCB table.
func opcode0xCB(c *CPU) int {
	return 4
}

func opcode0xCC(c *CPU) int {
	addr := c.readImmediateWord()
	if c.isSetFlag(zeroFlag) {
		c.pushStack(c.pc)
		c.pc = addr
		return 24
	}
	return 12
}

func opcode0xCD(c *CPU) int {
	addr := c.readImmediateWord()
	c.pushStack(c.pc)
	c.pc = addr
	return 24
}

func opcode0xCE(c *CPU) int {
	c.adc(c.readImmediate())
	return 8
}

func opcode0xCF(c *CPU) int {
	c.pushStack(c.pc)
	c.pc = 0x08
	return 16
}

func opcode0xD0(c *CPU) int {
	if !c.isSetFlag(carryFlag) {
		c.pc = c.popStack()
		return 20
	}
	return 8
}

func opcode0xD1(c *CPU) int {
	c.setDE(c.popStack())
	return 12
}

func opcode0xD2(c *CPU) int {
	addr := c.readImmediateWord()
	if !c.isSetFlag(carryFlag) {
		c.pc = addr
		return 16
	}
	return 12
}

// opcode0xD3 is an unused opcode on real hardware; treated as a no-op.
func opcode0xD3(c *CPU) int {
	return 4
}

func opcode0xD4(c *CPU) int {
	addr := c.readImmediateWord()
	if !c.isSetFlag(carryFlag) {
		c.pushStack(c.pc)
		c.pc = addr
		return 24
	}
	return 12
}

func opcode0xD5(c *CPU) int {
	c.pushStack(c.getDE())
	return 16
}

func opcode0xD6(c *CPU) int {
	c.sub(c.readImmediate())
	return 8
}

func opcode0xD7(c *CPU) int {
	c.pushStack(c.pc)
	c.pc = 0x10
	return 16
}

func opcode0xD8(c *CPU) int {
	if c.isSetFlag(carryFlag) {
		c.pc = c.popStack()
		return 20
	}
	return 8
}

// opcode0xD9 RETI: return and immediately re-enable interrupts.
func opcode0xD9(c *CPU) int {
	c.pc = c.popStack()
	c.interruptsEnabled = true
	return 16
}

func opcode0xDA(c *CPU) int {
	addr := c.readImmediateWord()
	if c.isSetFlag(carryFlag) {
		c.pc = addr
		return 16
	}
	return 12
}

func opcode0xDB(c *CPU) int {
	return 4
}

func opcode0xDC(c *CPU) int {
	addr := c.readImmediateWord()
	if c.isSetFlag(carryFlag) {
		c.pushStack(c.pc)
		c.pc = addr
		return 24
	}
	return 12
}

func opcode0xDD(c *CPU) int {
	return 4
}

func opcode0xDE(c *CPU) int {
	c.sbc(c.readImmediate())
	return 8
}

func opcode0xDF(c *CPU) int {
	c.pushStack(c.pc)
	c.pc = 0x18
	return 16
}

func opcode0xE0(c *CPU) int {
	n := c.readImmediate()
	c.bus.Write(0xFF00+uint16(n), c.a)
	return 12
}

func opcode0xE1(c *CPU) int {
	c.setHL(c.popStack())
	return 12
}

func opcode0xE2(c *CPU) int {
	c.bus.Write(0xFF00+uint16(c.c), c.a)
	return 8
}

func opcode0xE3(c *CPU) int {
	return 4
}

func opcode0xE4(c *CPU) int {
	return 4
}

func opcode0xE5(c *CPU) int {
	c.pushStack(c.getHL())
	return 16
}

func opcode0xE6(c *CPU) int {
	c.and(c.readImmediate())
	return 8
}

func opcode0xE7(c *CPU) int {
	c.pushStack(c.pc)
	c.pc = 0x20
	return 16
}

// opcode0xE8 ADD SP,n: adds a signed 8 bit immediate to SP. Flags are
// computed as for an 8 bit unsigned addition of SP's low byte.
func opcode0xE8(c *CPU) int {
	n := c.readSignedImmediate()
	sp := c.sp
	result := uint16(int32(sp) + int32(n))

	c.resetFlag(zeroFlag)
	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, (sp&0xF)+(uint16(uint8(n))&0xF) > 0xF)
	c.setFlagToCondition(carryFlag, (sp&0xFF)+(uint16(uint8(n))&0xFF) > 0xFF)

	c.sp = result
	return 16
}

func opcode0xE9(c *CPU) int {
	c.pc = c.getHL()
	return 4
}

func opcode0xEA(c *CPU) int {
	c.bus.Write(c.readImmediateWord(), c.a)
	return 16
}

func opcode0xEB(c *CPU) int {
	return 4
}

func opcode0xEC(c *CPU) int {
	return 4
}

func opcode0xED(c *CPU) int {
	return 4
}

func opcode0xEE(c *CPU) int {
	c.xor(c.readImmediate())
	return 8
}

func opcode0xEF(c *CPU) int {
	c.pushStack(c.pc)
	c.pc = 0x28
	return 16
}

func opcode0xF0(c *CPU) int {
	n := c.readImmediate()
	c.a = c.bus.Read(0xFF00 + uint16(n))
	return 12
}

func opcode0xF1(c *CPU) int {
	c.setAF(c.popStack())
	return 12
}

func opcode0xF2(c *CPU) int {
	c.a = c.bus.Read(0xFF00 + uint16(c.c))
	return 8
}

// opcode0xF3 DI: disable interrupts immediately (no delay, unlike EI).
func opcode0xF3(c *CPU) int {
	c.interruptsEnabled = false
	c.eiPending = false
	return 4
}

func opcode0xF4(c *CPU) int {
	return 4
}

func opcode0xF5(c *CPU) int {
	c.pushStack(c.getAF())
	return 16
}

func opcode0xF6(c *CPU) int {
	c.or(c.readImmediate())
	return 8
}

func opcode0xF7(c *CPU) int {
	c.pushStack(c.pc)
	c.pc = 0x30
	return 16
}

// opcode0xF8 LD HL,SP+n
func opcode0xF8(c *CPU) int {
	n := c.readSignedImmediate()
	sp := c.sp
	result := uint16(int32(sp) + int32(n))

	c.resetFlag(zeroFlag)
	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, (sp&0xF)+(uint16(uint8(n))&0xF) > 0xF)
	c.setFlagToCondition(carryFlag, (sp&0xFF)+(uint16(uint8(n))&0xFF) > 0xFF)

	c.setHL(result)
	return 12
}

func opcode0xF9(c *CPU) int {
	c.sp = c.getHL()
	return 8
}

func opcode0xFA(c *CPU) int {
	c.a = c.bus.Read(c.readImmediateWord())
	return 16
}

// opcode0xFB EI: enables interrupts after the next instruction completes.
func opcode0xFB(c *CPU) int {
	c.eiPending = true
	return 4
}

func opcode0xFC(c *CPU) int {
	return 4
}

func opcode0xFD(c *CPU) int {
	return 4
}

func opcode0xFE(c *CPU) int {
	c.cp(c.readImmediate())
	return 8
}

func opcode0xFF(c *CPU) int {
	c.pushStack(c.pc)
	c.pc = 0x38
	return 16
}
