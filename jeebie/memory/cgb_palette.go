package memory

import (
	"github.com/gbkernel/gbkernel/jeebie/addr"
	"github.com/gbkernel/gbkernel/jeebie/bit"
	"github.com/lucasb-eyer/go-colorful"
)

// cgbPaletteRAM is one bank of 8 CGB palettes (background or sprite),
// each holding 4 colors packed as little-endian RGB555, addressed through
// an auto-incrementing index register (BGPI/OBPI + BGPD/OBPD).
type cgbPaletteRAM struct {
	data     [64]byte
	index    uint8
	autoIncr bool
}

func (p *cgbPaletteRAM) writeIndex(value byte) {
	p.index = value & 0x3F
	p.autoIncr = bit.IsSet(7, value)
}

func (p *cgbPaletteRAM) readIndex() byte {
	index := p.index
	if p.autoIncr {
		index = bit.Set(7, index)
	}
	return index | 0x40
}

func (p *cgbPaletteRAM) writeData(value byte) {
	p.data[p.index] = value
	if p.autoIncr {
		p.index = (p.index + 1) & 0x3F
	}
}

func (p *cgbPaletteRAM) readData() byte {
	return p.data[p.index]
}

// color converts palette `palette` (0-7), color index (0-3) from stored
// RGB555 to a host 0xAARRGGBB value via go-colorful, which scales the 5-bit
// channels the same way real GBC analog output does rather than a naive
// left-shift.
func (p *cgbPaletteRAM) color(palette, colorIndex int) uint32 {
	offset := palette*8 + colorIndex*2
	low := p.data[offset]
	high := p.data[offset+1]
	rgb555 := uint16(low) | uint16(high)<<8

	c := colorful.Color{
		R: float64(rgb555&0x1F) / 31.0,
		G: float64((rgb555>>5)&0x1F) / 31.0,
		B: float64((rgb555>>10)&0x1F) / 31.0,
	}
	r, g, b := c.RGB255()

	return 0xFF000000 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// cgbPalettes holds the background and sprite palette RAM banks used in
// CGB mode, written through BGPI/BGPD/OBPI/OBPD.
type cgbPalettes struct {
	bg  cgbPaletteRAM
	obj cgbPaletteRAM
}

// writeRegister dispatches a write to one of the four CGB palette I/O
// registers. Returns false if the address isn't one of them.
func (c *cgbPalettes) writeRegister(address uint16, value byte) bool {
	switch address {
	case addr.BGPI:
		c.bg.writeIndex(value)
	case addr.BGPD:
		c.bg.writeData(value)
	case addr.OBPI:
		c.obj.writeIndex(value)
	case addr.OBPD:
		c.obj.writeData(value)
	default:
		return false
	}
	return true
}

// readRegister dispatches a read from one of the four CGB palette I/O
// registers. Returns (0, false) if the address isn't one of them.
func (c *cgbPalettes) readRegister(address uint16) (byte, bool) {
	switch address {
	case addr.BGPI:
		return c.bg.readIndex(), true
	case addr.BGPD:
		return c.bg.readData(), true
	case addr.OBPI:
		return c.obj.readIndex(), true
	case addr.OBPD:
		return c.obj.readData(), true
	default:
		return 0, false
	}
}
