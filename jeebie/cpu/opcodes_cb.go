package cpu

// --- 0xCB00-0xCB07: RLC ---

func opcode0xCB00(c *CPU) int { c.rlc(&c.b); return 8 }
func opcode0xCB01(c *CPU) int { c.rlc(&c.c); return 8 }
func opcode0xCB02(c *CPU) int { c.rlc(&c.d); return 8 }
func opcode0xCB03(c *CPU) int { c.rlc(&c.e); return 8 }
func opcode0xCB04(c *CPU) int { c.rlc(&c.h); return 8 }
func opcode0xCB05(c *CPU) int { c.rlc(&c.l); return 8 }
func opcode0xCB06(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.rlc(&v)
	c.bus.Write(c.getHL(), v)
	return 16
}
func opcode0xCB07(c *CPU) int { c.rlc(&c.a); return 8 }

// --- 0xCB08-0xCB0F: RRC ---

func opcode0xCB08(c *CPU) int { c.rrc(&c.b); return 8 }
func opcode0xCB09(c *CPU) int { c.rrc(&c.c); return 8 }
func opcode0xCB0A(c *CPU) int { c.rrc(&c.d); return 8 }
func opcode0xCB0B(c *CPU) int { c.rrc(&c.e); return 8 }
func opcode0xCB0C(c *CPU) int { c.rrc(&c.h); return 8 }
func opcode0xCB0D(c *CPU) int { c.rrc(&c.l); return 8 }
func opcode0xCB0E(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.rrc(&v)
	c.bus.Write(c.getHL(), v)
	return 16
}
func opcode0xCB0F(c *CPU) int { c.rrc(&c.a); return 8 }

// --- 0xCB10-0xCB17: RL ---

func opcode0xCB10(c *CPU) int { c.rl(&c.b); return 8 }
func opcode0xCB11(c *CPU) int { c.rl(&c.c); return 8 }
func opcode0xCB12(c *CPU) int { c.rl(&c.d); return 8 }
func opcode0xCB13(c *CPU) int { c.rl(&c.e); return 8 }
func opcode0xCB14(c *CPU) int { c.rl(&c.h); return 8 }
func opcode0xCB15(c *CPU) int { c.rl(&c.l); return 8 }
func opcode0xCB16(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.rl(&v)
	c.bus.Write(c.getHL(), v)
	return 16
}
func opcode0xCB17(c *CPU) int { c.rl(&c.a); return 8 }

// --- 0xCB18-0xCB1F: RR ---

func opcode0xCB18(c *CPU) int { c.rr(&c.b); return 8 }
func opcode0xCB19(c *CPU) int { c.rr(&c.c); return 8 }
func opcode0xCB1A(c *CPU) int { c.rr(&c.d); return 8 }
func opcode0xCB1B(c *CPU) int { c.rr(&c.e); return 8 }
func opcode0xCB1C(c *CPU) int { c.rr(&c.h); return 8 }
func opcode0xCB1D(c *CPU) int { c.rr(&c.l); return 8 }
func opcode0xCB1E(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.rr(&v)
	c.bus.Write(c.getHL(), v)
	return 16
}
func opcode0xCB1F(c *CPU) int { c.rr(&c.a); return 8 }

// --- 0xCB20-0xCB27: SLA ---

func opcode0xCB20(c *CPU) int { c.sla(&c.b); return 8 }
func opcode0xCB21(c *CPU) int { c.sla(&c.c); return 8 }
func opcode0xCB22(c *CPU) int { c.sla(&c.d); return 8 }
func opcode0xCB23(c *CPU) int { c.sla(&c.e); return 8 }
func opcode0xCB24(c *CPU) int { c.sla(&c.h); return 8 }
func opcode0xCB25(c *CPU) int { c.sla(&c.l); return 8 }
func opcode0xCB26(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.sla(&v)
	c.bus.Write(c.getHL(), v)
	return 16
}
func opcode0xCB27(c *CPU) int { c.sla(&c.a); return 8 }

// --- 0xCB28-0xCB2F: SRA ---

func opcode0xCB28(c *CPU) int { c.sra(&c.b); return 8 }
func opcode0xCB29(c *CPU) int { c.sra(&c.c); return 8 }
func opcode0xCB2A(c *CPU) int { c.sra(&c.d); return 8 }
func opcode0xCB2B(c *CPU) int { c.sra(&c.e); return 8 }
func opcode0xCB2C(c *CPU) int { c.sra(&c.h); return 8 }
func opcode0xCB2D(c *CPU) int { c.sra(&c.l); return 8 }
func opcode0xCB2E(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.sra(&v)
	c.bus.Write(c.getHL(), v)
	return 16
}
func opcode0xCB2F(c *CPU) int { c.sra(&c.a); return 8 }

// --- 0xCB30-0xCB37: SWAP ---

func opcode0xCB30(c *CPU) int { c.swap(&c.b); return 8 }
func opcode0xCB31(c *CPU) int { c.swap(&c.c); return 8 }
func opcode0xCB32(c *CPU) int { c.swap(&c.d); return 8 }
func opcode0xCB33(c *CPU) int { c.swap(&c.e); return 8 }
func opcode0xCB34(c *CPU) int { c.swap(&c.h); return 8 }
func opcode0xCB35(c *CPU) int { c.swap(&c.l); return 8 }
func opcode0xCB36(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.swap(&v)
	c.bus.Write(c.getHL(), v)
	return 16
}
func opcode0xCB37(c *CPU) int { c.swap(&c.a); return 8 }

// --- 0xCB38-0xCB3F: SRL ---

func opcode0xCB38(c *CPU) int { c.srl(&c.b); return 8 }
func opcode0xCB39(c *CPU) int { c.srl(&c.c); return 8 }
func opcode0xCB3A(c *CPU) int { c.srl(&c.d); return 8 }
func opcode0xCB3B(c *CPU) int { c.srl(&c.e); return 8 }
func opcode0xCB3C(c *CPU) int { c.srl(&c.h); return 8 }
func opcode0xCB3D(c *CPU) int { c.srl(&c.l); return 8 }
func opcode0xCB3E(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.srl(&v)
	c.bus.Write(c.getHL(), v)
	return 16
}
func opcode0xCB3F(c *CPU) int { c.srl(&c.a); return 8 }

// --- 0xCB40-0xCB7F: BIT 0-7 ---

func opcode0xCB40(c *CPU) int { c.bit(0, c.b); return 8 }
func opcode0xCB41(c *CPU) int { c.bit(0, c.c); return 8 }
func opcode0xCB42(c *CPU) int { c.bit(0, c.d); return 8 }
func opcode0xCB43(c *CPU) int { c.bit(0, c.e); return 8 }
func opcode0xCB44(c *CPU) int { c.bit(0, c.h); return 8 }
func opcode0xCB45(c *CPU) int { c.bit(0, c.l); return 8 }
func opcode0xCB46(c *CPU) int { c.bit(0, c.bus.Read(c.getHL())); return 12 }
func opcode0xCB47(c *CPU) int { c.bit(0, c.a); return 8 }

func opcode0xCB48(c *CPU) int { c.bit(1, c.b); return 8 }
func opcode0xCB49(c *CPU) int { c.bit(1, c.c); return 8 }
func opcode0xCB4A(c *CPU) int { c.bit(1, c.d); return 8 }
func opcode0xCB4B(c *CPU) int { c.bit(1, c.e); return 8 }
func opcode0xCB4C(c *CPU) int { c.bit(1, c.h); return 8 }
func opcode0xCB4D(c *CPU) int { c.bit(1, c.l); return 8 }
func opcode0xCB4E(c *CPU) int { c.bit(1, c.bus.Read(c.getHL())); return 12 }
func opcode0xCB4F(c *CPU) int { c.bit(1, c.a); return 8 }

func opcode0xCB50(c *CPU) int { c.bit(2, c.b); return 8 }
func opcode0xCB51(c *CPU) int { c.bit(2, c.c); return 8 }
func opcode0xCB52(c *CPU) int { c.bit(2, c.d); return 8 }
func opcode0xCB53(c *CPU) int { c.bit(2, c.e); return 8 }
func opcode0xCB54(c *CPU) int { c.bit(2, c.h); return 8 }
func opcode0xCB55(c *CPU) int { c.bit(2, c.l); return 8 }
func opcode0xCB56(c *CPU) int { c.bit(2, c.bus.Read(c.getHL())); return 12 }
func opcode0xCB57(c *CPU) int { c.bit(2, c.a); return 8 }

func opcode0xCB58(c *CPU) int { c.bit(3, c.b); return 8 }
func opcode0xCB59(c *CPU) int { c.bit(3, c.c); return 8 }
func opcode0xCB5A(c *CPU) int { c.bit(3, c.d); return 8 }
func opcode0xCB5B(c *CPU) int { c.bit(3, c.e); return 8 }
func opcode0xCB5C(c *CPU) int { c.bit(3, c.h); return 8 }
func opcode0xCB5D(c *CPU) int { c.bit(3, c.l); return 8 }
func opcode0xCB5E(c *CPU) int { c.bit(3, c.bus.Read(c.getHL())); return 12 }
func opcode0xCB5F(c *CPU) int { c.bit(3, c.a); return 8 }

func opcode0xCB60(c *CPU) int { c.bit(4, c.b); return 8 }
func opcode0xCB61(c *CPU) int { c.bit(4, c.c); return 8 }
func opcode0xCB62(c *CPU) int { c.bit(4, c.d); return 8 }
func opcode0xCB63(c *CPU) int { c.bit(4, c.e); return 8 }
func opcode0xCB64(c *CPU) int { c.bit(4, c.h); return 8 }
func opcode0xCB65(c *CPU) int { c.bit(4, c.l); return 8 }
func opcode0xCB66(c *CPU) int { c.bit(4, c.bus.Read(c.getHL())); return 12 }
func opcode0xCB67(c *CPU) int { c.bit(4, c.a); return 8 }

func opcode0xCB68(c *CPU) int { c.bit(5, c.b); return 8 }
func opcode0xCB69(c *CPU) int { c.bit(5, c.c); return 8 }
func opcode0xCB6A(c *CPU) int { c.bit(5, c.d); return 8 }
func opcode0xCB6B(c *CPU) int { c.bit(5, c.e); return 8 }
func opcode0xCB6C(c *CPU) int { c.bit(5, c.h); return 8 }
func opcode0xCB6D(c *CPU) int { c.bit(5, c.l); return 8 }
func opcode0xCB6E(c *CPU) int { c.bit(5, c.bus.Read(c.getHL())); return 12 }
func opcode0xCB6F(c *CPU) int { c.bit(5, c.a); return 8 }

func opcode0xCB70(c *CPU) int { c.bit(6, c.b); return 8 }
func opcode0xCB71(c *CPU) int { c.bit(6, c.c); return 8 }
func opcode0xCB72(c *CPU) int { c.bit(6, c.d); return 8 }
func opcode0xCB73(c *CPU) int { c.bit(6, c.e); return 8 }
func opcode0xCB74(c *CPU) int { c.bit(6, c.h); return 8 }
func opcode0xCB75(c *CPU) int { c.bit(6, c.l); return 8 }
func opcode0xCB76(c *CPU) int { c.bit(6, c.bus.Read(c.getHL())); return 12 }
func opcode0xCB77(c *CPU) int { c.bit(6, c.a); return 8 }

func opcode0xCB78(c *CPU) int { c.bit(7, c.b); return 8 }
func opcode0xCB79(c *CPU) int { c.bit(7, c.c); return 8 }
func opcode0xCB7A(c *CPU) int { c.bit(7, c.d); return 8 }
func opcode0xCB7B(c *CPU) int { c.bit(7, c.e); return 8 }
func opcode0xCB7C(c *CPU) int { c.bit(7, c.h); return 8 }
func opcode0xCB7D(c *CPU) int { c.bit(7, c.l); return 8 }
func opcode0xCB7E(c *CPU) int { c.bit(7, c.bus.Read(c.getHL())); return 12 }
func opcode0xCB7F(c *CPU) int { c.bit(7, c.a); return 8 }

// --- 0xCB80-0xCBBF: RES 0-7 ---

func opcode0xCB80(c *CPU) int { c.res(0, &c.b); return 8 }
func opcode0xCB81(c *CPU) int { c.res(0, &c.c); return 8 }
func opcode0xCB82(c *CPU) int { c.res(0, &c.d); return 8 }
func opcode0xCB83(c *CPU) int { c.res(0, &c.e); return 8 }
func opcode0xCB84(c *CPU) int { c.res(0, &c.h); return 8 }
func opcode0xCB85(c *CPU) int { c.res(0, &c.l); return 8 }
func opcode0xCB86(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.res(0, &v)
	c.bus.Write(c.getHL(), v)
	return 16
}
func opcode0xCB87(c *CPU) int { c.res(0, &c.a); return 8 }

func opcode0xCB88(c *CPU) int { c.res(1, &c.b); return 8 }
func opcode0xCB89(c *CPU) int { c.res(1, &c.c); return 8 }
func opcode0xCB8A(c *CPU) int { c.res(1, &c.d); return 8 }
func opcode0xCB8B(c *CPU) int { c.res(1, &c.e); return 8 }
func opcode0xCB8C(c *CPU) int { c.res(1, &c.h); return 8 }
func opcode0xCB8D(c *CPU) int { c.res(1, &c.l); return 8 }
func opcode0xCB8E(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.res(1, &v)
	c.bus.Write(c.getHL(), v)
	return 16
}
func opcode0xCB8F(c *CPU) int { c.res(1, &c.a); return 8 }

func opcode0xCB90(c *CPU) int { c.res(2, &c.b); return 8 }
func opcode0xCB91(c *CPU) int { c.res(2, &c.c); return 8 }
func opcode0xCB92(c *CPU) int { c.res(2, &c.d); return 8 }
func opcode0xCB93(c *CPU) int { c.res(2, &c.e); return 8 }
func opcode0xCB94(c *CPU) int { c.res(2, &c.h); return 8 }
func opcode0xCB95(c *CPU) int { c.res(2, &c.l); return 8 }
func opcode0xCB96(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.res(2, &v)
	c.bus.Write(c.getHL(), v)
	return 16
}
func opcode0xCB97(c *CPU) int { c.res(2, &c.a); return 8 }

func opcode0xCB98(c *CPU) int { c.res(3, &c.b); return 8 }
func opcode0xCB99(c *CPU) int { c.res(3, &c.c); return 8 }
func opcode0xCB9A(c *CPU) int { c.res(3, &c.d); return 8 }
func opcode0xCB9B(c *CPU) int { c.res(3, &c.e); return 8 }
func opcode0xCB9C(c *CPU) int { c.res(3, &c.h); return 8 }
func opcode0xCB9D(c *CPU) int { c.res(3, &c.l); return 8 }
func opcode0xCB9E(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.res(3, &v)
	c.bus.Write(c.getHL(), v)
	return 16
}
func opcode0xCB9F(c *CPU) int { c.res(3, &c.a); return 8 }

func opcode0xCBA0(c *CPU) int { c.res(4, &c.b); return 8 }
func opcode0xCBA1(c *CPU) int { c.res(4, &c.c); return 8 }
func opcode0xCBA2(c *CPU) int { c.res(4, &c.d); return 8 }
func opcode0xCBA3(c *CPU) int { c.res(4, &c.e); return 8 }
func opcode0xCBA4(c *CPU) int { c.res(4, &c.h); return 8 }
func opcode0xCBA5(c *CPU) int { c.res(4, &c.l); return 8 }
func opcode0xCBA6(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.res(4, &v)
	c.bus.Write(c.getHL(), v)
	return 16
}
func opcode0xCBA7(c *CPU) int { c.res(4, &c.a); return 8 }

func opcode0xCBA8(c *CPU) int { c.res(5, &c.b); return 8 }
func opcode0xCBA9(c *CPU) int { c.res(5, &c.c); return 8 }
func opcode0xCBAA(c *CPU) int { c.res(5, &c.d); return 8 }
func opcode0xCBAB(c *CPU) int { c.res(5, &c.e); return 8 }
func opcode0xCBAC(c *CPU) int { c.res(5, &c.h); return 8 }
func opcode0xCBAD(c *CPU) int { c.res(5, &c.l); return 8 }
func opcode0xCBAE(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.res(5, &v)
	c.bus.Write(c.getHL(), v)
	return 16
}
func opcode0xCBAF(c *CPU) int { c.res(5, &c.a); return 8 }

func opcode0xCBB0(c *CPU) int { c.res(6, &c.b); return 8 }
func opcode0xCBB1(c *CPU) int { c.res(6, &c.c); return 8 }
func opcode0xCBB2(c *CPU) int { c.res(6, &c.d); return 8 }
func opcode0xCBB3(c *CPU) int { c.res(6, &c.e); return 8 }
func opcode0xCBB4(c *CPU) int { c.res(6, &c.h); return 8 }
func opcode0xCBB5(c *CPU) int { c.res(6, &c.l); return 8 }
func opcode0xCBB6(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.res(6, &v)
	c.bus.Write(c.getHL(), v)
	return 16
}
func opcode0xCBB7(c *CPU) int { c.res(6, &c.a); return 8 }

func opcode0xCBB8(c *CPU) int { c.res(7, &c.b); return 8 }
func opcode0xCBB9(c *CPU) int { c.res(7, &c.c); return 8 }
func opcode0xCBBA(c *CPU) int { c.res(7, &c.d); return 8 }
func opcode0xCBBB(c *CPU) int { c.res(7, &c.e); return 8 }
func opcode0xCBBC(c *CPU) int { c.res(7, &c.h); return 8 }
func opcode0xCBBD(c *CPU) int { c.res(7, &c.l); return 8 }
func opcode0xCBBE(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.res(7, &v)
	c.bus.Write(c.getHL(), v)
	return 16
}
func opcode0xCBBF(c *CPU) int { c.res(7, &c.a); return 8 }

// --- 0xCBC0-0xCBFF: SET 0-7 ---

func opcode0xCBC0(c *CPU) int { c.set(0, &c.b); return 8 }
func opcode0xCBC1(c *CPU) int { c.set(0, &c.c); return 8 }
func opcode0xCBC2(c *CPU) int { c.set(0, &c.d); return 8 }
func opcode0xCBC3(c *CPU) int { c.set(0, &c.e); return 8 }
func opcode0xCBC4(c *CPU) int { c.set(0, &c.h); return 8 }
func opcode0xCBC5(c *CPU) int { c.set(0, &c.l); return 8 }
func opcode0xCBC6(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.set(0, &v)
	c.bus.Write(c.getHL(), v)
	return 16
}
func opcode0xCBC7(c *CPU) int { c.set(0, &c.a); return 8 }

func opcode0xCBC8(c *CPU) int { c.set(1, &c.b); return 8 }
func opcode0xCBC9(c *CPU) int { c.set(1, &c.c); return 8 }
func opcode0xCBCA(c *CPU) int { c.set(1, &c.d); return 8 }
func opcode0xCBCB(c *CPU) int { c.set(1, &c.e); return 8 }
func opcode0xCBCC(c *CPU) int { c.set(1, &c.h); return 8 }
func opcode0xCBCD(c *CPU) int { c.set(1, &c.l); return 8 }
func opcode0xCBCE(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.set(1, &v)
	c.bus.Write(c.getHL(), v)
	return 16
}
func opcode0xCBCF(c *CPU) int { c.set(1, &c.a); return 8 }

func opcode0xCBD0(c *CPU) int { c.set(2, &c.b); return 8 }
func opcode0xCBD1(c *CPU) int { c.set(2, &c.c); return 8 }
func opcode0xCBD2(c *CPU) int { c.set(2, &c.d); return 8 }
func opcode0xCBD3(c *CPU) int { c.set(2, &c.e); return 8 }
func opcode0xCBD4(c *CPU) int { c.set(2, &c.h); return 8 }
func opcode0xCBD5(c *CPU) int { c.set(2, &c.l); return 8 }
func opcode0xCBD6(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.set(2, &v)
	c.bus.Write(c.getHL(), v)
	return 16
}
func opcode0xCBD7(c *CPU) int { c.set(2, &c.a); return 8 }

func opcode0xCBD8(c *CPU) int { c.set(3, &c.b); return 8 }
func opcode0xCBD9(c *CPU) int { c.set(3, &c.c); return 8 }
func opcode0xCBDA(c *CPU) int { c.set(3, &c.d); return 8 }
func opcode0xCBDB(c *CPU) int { c.set(3, &c.e); return 8 }
func opcode0xCBDC(c *CPU) int { c.set(3, &c.h); return 8 }
func opcode0xCBDD(c *CPU) int { c.set(3, &c.l); return 8 }
func opcode0xCBDE(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.set(3, &v)
	c.bus.Write(c.getHL(), v)
	return 16
}
func opcode0xCBDF(c *CPU) int { c.set(3, &c.a); return 8 }

func opcode0xCBE0(c *CPU) int { c.set(4, &c.b); return 8 }
func opcode0xCBE1(c *CPU) int { c.set(4, &c.c); return 8 }
func opcode0xCBE2(c *CPU) int { c.set(4, &c.d); return 8 }
func opcode0xCBE3(c *CPU) int { c.set(4, &c.e); return 8 }
func opcode0xCBE4(c *CPU) int { c.set(4, &c.h); return 8 }
func opcode0xCBE5(c *CPU) int { c.set(4, &c.l); return 8 }
func opcode0xCBE6(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.set(4, &v)
	c.bus.Write(c.getHL(), v)
	return 16
}
func opcode0xCBE7(c *CPU) int { c.set(4, &c.a); return 8 }

func opcode0xCBE8(c *CPU) int { c.set(5, &c.b); return 8 }
func opcode0xCBE9(c *CPU) int { c.set(5, &c.c); return 8 }
func opcode0xCBEA(c *CPU) int { c.set(5, &c.d); return 8 }
func opcode0xCBEB(c *CPU) int { c.set(5, &c.e); return 8 }
func opcode0xCBEC(c *CPU) int { c.set(5, &c.h); return 8 }
func opcode0xCBED(c *CPU) int { c.set(5, &c.l); return 8 }
func opcode0xCBEE(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.set(5, &v)
	c.bus.Write(c.getHL(), v)
	return 16
}
func opcode0xCBEF(c *CPU) int { c.set(5, &c.a); return 8 }

func opcode0xCBF0(c *CPU) int { c.set(6, &c.b); return 8 }
func opcode0xCBF1(c *CPU) int { c.set(6, &c.c); return 8 }
func opcode0xCBF2(c *CPU) int { c.set(6, &c.d); return 8 }
func opcode0xCBF3(c *CPU) int { c.set(6, &c.e); return 8 }
func opcode0xCBF4(c *CPU) int { c.set(6, &c.h); return 8 }
func opcode0xCBF5(c *CPU) int { c.set(6, &c.l); return 8 }
func opcode0xCBF6(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.set(6, &v)
	c.bus.Write(c.getHL(), v)
	return 16
}
func opcode0xCBF7(c *CPU) int { c.set(6, &c.a); return 8 }

func opcode0xCBF8(c *CPU) int { c.set(7, &c.b); return 8 }
func opcode0xCBF9(c *CPU) int { c.set(7, &c.c); return 8 }
func opcode0xCBFA(c *CPU) int { c.set(7, &c.d); return 8 }
func opcode0xCBFB(c *CPU) int { c.set(7, &c.e); return 8 }
func opcode0xCBFC(c *CPU) int { c.set(7, &c.h); return 8 }
func opcode0xCBFD(c *CPU) int { c.set(7, &c.l); return 8 }
func opcode0xCBFE(c *CPU) int {
	v := c.bus.Read(c.getHL())
	c.set(7, &v)
	c.bus.Write(c.getHL(), v)
	return 16
}
func opcode0xCBFF(c *CPU) int { c.set(7, &c.a); return 8 }
