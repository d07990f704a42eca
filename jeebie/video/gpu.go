package video

import (
	"github.com/gbkernel/gbkernel/jeebie/addr"
	"github.com/gbkernel/gbkernel/jeebie/bit"
	"github.com/gbkernel/gbkernel/jeebie/memory"
)

// GpuMode is one of the four PPU states a scanline cycles through.
type GpuMode int

const (
	oamReadMode GpuMode = iota
	vramReadMode
	hblankMode
	vblankMode
)

const (
	oamScanlineCycles = 80
	vramScanlineCycles = 172
	hblankCycles       = 204
	scanlineCycles     = oamScanlineCycles + vramScanlineCycles + hblankCycles

	visibleLineCount = 144
	totalLineCount   = 154
)

// LCDC (LCD Control) register bits.
const (
	lcdEnableBit       = 7
	windowTileMapBit   = 6
	windowEnableBit    = 5
	tileDataSelectBit  = 4
	bgTileMapBit       = 3
	spriteSizeBit      = 2
	spriteEnableBit    = 1
	bgEnableBit        = 0
)

// STAT register bits.
const (
	statLYCEnableBit    = 6
	statOAMEnableBit    = 5
	statVBlankEnableBit = 4
	statHBlankEnableBit = 3
	statCoincidenceBit  = 2
)

// GPU renders the Game Boy's picture, one scanline at a time, and drives
// the STAT/LY/LYC and VBlank interrupt machinery that keeps the CPU in
// sync with it.
type GPU struct {
	memory      *memory.MMU
	framebuffer *FrameBuffer
	oam         *OAM

	line   int
	mode   GpuMode
	cycles int

	// pixelCounter tracks progress through the current scanline for
	// callers that draw a line in smaller chunks; drawBackground/drawWindow
	// themselves always render the full 160 pixels, so this only needs to
	// reach 160 to signal "done".
	pixelCounter int

	frameCompleted bool

	// bgColorIndex and bgPriority record, per screen X, what the
	// background/window layer just drew this scanline: the raw 2-bit tile
	// color index (needed for sprite-vs-background priority, independent
	// of the color it was mapped to) and, in CGB mode, the tile's
	// BG-to-OBJ priority attribute bit.
	bgColorIndex [FramebufferWidth]byte
	bgPriority   [FramebufferWidth]bool
}

// NewGpu creates a GPU driven by the given memory bus.
func NewGpu(mem *memory.MMU) *GPU {
	return &GPU{
		memory:      mem,
		framebuffer: NewFrameBuffer(),
		oam:         NewOAM(mem),
		mode:        oamReadMode,
	}
}

// GetFrameBuffer returns the framebuffer being drawn into.
func (g *GPU) GetFrameBuffer() *FrameBuffer {
	return g.framebuffer
}

// FrameReady reports whether a full frame has completed since the last
// ClearFrameReady call.
func (g *GPU) FrameReady() bool {
	return g.frameCompleted
}

// ClearFrameReady resets the frame-completed flag.
func (g *GPU) ClearFrameReady() {
	g.frameCompleted = false
}

// Tick advances the PPU state machine by the given number of clock cycles,
// composing scanlines as Mode 3 (pixel transfer) ends and firing VBlank
// and STAT interrupts on the appropriate mode/line transitions.
func (g *GPU) Tick(cycles int) {
	lcdc := g.memory.Read(addr.LCDC)
	if !bit.IsSet(lcdEnableBit, lcdc) {
		g.disableLCD()
		return
	}

	g.cycles += cycles

	for {
		switch g.mode {
		case oamReadMode:
			if g.cycles < oamScanlineCycles {
				return
			}
			g.cycles -= oamScanlineCycles
			g.enterMode(vramReadMode)

		case vramReadMode:
			threshold := g.mode3Cycles()
			if g.cycles < threshold {
				return
			}
			g.cycles -= threshold
			g.drawScanline()
			g.enterMode(hblankMode)

		case hblankMode:
			if g.cycles < hblankCycles {
				return
			}
			g.cycles -= hblankCycles
			g.advanceLine()

			if g.line == visibleLineCount {
				g.enterMode(vblankMode)
				g.memory.RequestInterrupt(addr.VBlankInterrupt)
				g.frameCompleted = true
			} else {
				g.enterMode(oamReadMode)
			}

		case vblankMode:
			if g.cycles < scanlineCycles {
				return
			}
			g.cycles -= scanlineCycles
			g.advanceLine()

			if g.line == totalLineCount {
				g.line = 0
				g.memory.Write(addr.LY, 0)
				g.compareLYtoLYC()
				g.enterMode(oamReadMode)
			}
		}
	}
}

// disableLCD resets the PPU to line 0 and blanks the framebuffer, matching
// what real hardware does while LCDC bit 7 is off.
func (g *GPU) disableLCD() {
	if g.mode == oamReadMode && g.line == 0 && g.cycles == 0 {
		return
	}

	g.line = 0
	g.cycles = 0
	g.mode = oamReadMode
	g.memory.Write(addr.LY, 0)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.framebuffer.SetPixel(uint(x), uint(y), WhiteColor)
		}
	}
}

func (g *GPU) advanceLine() {
	g.line++
	g.memory.Write(addr.LY, uint8(g.line))
	g.compareLYtoLYC()
}

func (g *GPU) enterMode(mode GpuMode) {
	g.mode = mode

	stat := g.memory.Read(addr.STAT)
	stat = (stat &^ 0x03) | uint8(mode)
	g.memory.Write(addr.STAT, stat)

	var enableBit uint8
	switch mode {
	case hblankMode:
		enableBit = statHBlankEnableBit
	case vblankMode:
		enableBit = statVBlankEnableBit
	case oamReadMode:
		enableBit = statOAMEnableBit
	default:
		return
	}

	if bit.IsSet(enableBit, stat) {
		g.memory.RequestInterrupt(addr.LCDSTATInterrupt)
	}
}

// compareLYtoLYC updates the STAT coincidence flag and fires the STAT
// interrupt if LY==LYC and the coincidence interrupt is enabled.
func (g *GPU) compareLYtoLYC() {
	lyc := g.memory.Read(addr.LYC)
	stat := g.memory.Read(addr.STAT)

	if uint8(g.line) == lyc {
		stat = bit.Set(statCoincidenceBit, stat)
		if bit.IsSet(statLYCEnableBit, stat) {
			g.memory.RequestInterrupt(addr.LCDSTATInterrupt)
		}
	} else {
		stat = bit.Clear(statCoincidenceBit, stat)
	}

	g.memory.Write(addr.STAT, stat)
}

// mode3Cycles returns how long Mode 3 (pixel transfer) takes for the
// current scanline: a fixed base cost plus a per-sprite fetch penalty and
// a fixed penalty if the window is active on this line.
func (g *GPU) mode3Cycles() int {
	cycles := vramScanlineCycles

	sprites := g.oam.GetSpritesForScanline(g.line)
	cycles += len(sprites) * 6

	if g.isWindowActiveOnLine() {
		cycles += 6
	}

	return cycles
}

func (g *GPU) isWindowActiveOnLine() bool {
	lcdc := g.memory.Read(addr.LCDC)
	if !bit.IsSet(windowEnableBit, lcdc) {
		return false
	}
	wy := int(g.memory.Read(addr.WY))
	return g.line >= wy
}

// drawScanline composes the background, window and sprite layers for the
// current line directly into the framebuffer.
func (g *GPU) drawScanline() {
	lcdc := g.memory.Read(addr.LCDC)
	if !bit.IsSet(lcdEnableBit, lcdc) {
		return
	}

	g.drawBackground()
	g.drawWindow()
	g.drawSprites()

	g.pixelCounter = width
}

// backgroundTileMapBase returns the tile map base address selected by
// LCDC bit 3.
func (g *GPU) backgroundTileMapBase(lcdc byte) uint16 {
	if bit.IsSet(bgTileMapBit, lcdc) {
		return addr.TileMap1
	}
	return addr.TileMap0
}

// windowTileMapBase returns the tile map base address selected by LCDC
// bit 6.
func (g *GPU) windowTileMapBase(lcdc byte) uint16 {
	if bit.IsSet(windowTileMapBit, lcdc) {
		return addr.TileMap1
	}
	return addr.TileMap0
}

// bgTileDataAddress resolves a background/window tile index to a VRAM
// address using LCDC bit 4: bit set means unsigned addressing from
// TileData0 (0x8000), bit clear means signed addressing centered on
// TileData2 (0x9000), where tiles 0x80-0xFF fall in the 0x8800-0x8FFF
// block (TileData1).
func (g *GPU) bgTileDataAddress(lcdc byte, tileIndex byte) uint16 {
	if bit.IsSet(tileDataSelectBit, lcdc) {
		return addr.TileData0 + uint16(tileIndex)*16
	}
	return uint16(int(addr.TileData2) + int(int8(tileIndex))*16)
}

// fetchTileRow reads one 8-pixel tile row from a specific VRAM bank.
// Bank is always 0 outside CGB mode.
func (g *GPU) fetchTileRow(bank int, tileAddr uint16, row int) TileRow {
	a := tileAddr + uint16(row*2)
	return TileRow{
		Low:  g.memory.ReadVRAMBank(bank, a),
		High: g.memory.ReadVRAMBank(bank, a+1),
	}
}

// drawBackground renders the current scanline's background layer,
// applying BGP (or the CGB background palette) as it draws, and records
// the raw color index of each pixel for later sprite priority checks.
func (g *GPU) drawBackground() {
	lcdc := g.memory.Read(addr.LCDC)
	cgb := g.memory.IsCGB()

	if !cgb && !bit.IsSet(bgEnableBit, lcdc) {
		for x := 0; x < width; x++ {
			g.bgColorIndex[x] = 0
			g.bgPriority[x] = false
			g.framebuffer.SetPixel(uint(x), uint(g.line), WhiteColor)
		}
		return
	}

	scx := int(g.memory.Read(addr.SCX))
	scy := int(g.memory.Read(addr.SCY))
	palette := g.memory.Read(addr.BGP)
	tileMapBase := g.backgroundTileMapBase(lcdc)

	y := (g.line + scy) & 0xFF
	tileRow := y / 8
	rowInTile := y % 8

	for screenX := 0; screenX < width; screenX++ {
		x := (screenX + scx) & 0xFF
		tileCol := x / 8
		colInTile := x % 8

		tileMapAddr := tileMapBase + uint16(tileRow*32+tileCol)
		tileIndex := g.memory.ReadVRAMBank(0, tileMapAddr)
		tileAddr := g.bgTileDataAddress(lcdc, tileIndex)

		bank := 0
		flipX, flipY, bgPriority := false, false, false
		cgbPalette := 0

		if cgb {
			attrs := g.memory.ReadVRAMBank(1, tileMapAddr)
			bank = int((attrs >> 3) & 0x01)
			flipX = bit.IsSet(5, attrs)
			flipY = bit.IsSet(6, attrs)
			bgPriority = bit.IsSet(7, attrs)
			cgbPalette = int(attrs & 0x07)
		}

		row := rowInTile
		if flipY {
			row = 7 - row
		}
		tileRowData := g.fetchTileRow(bank, tileAddr, row)

		var colorVal int
		if flipX {
			colorVal = tileRowData.GetPixelFlipped(colInTile)
		} else {
			colorVal = tileRowData.GetPixel(colInTile)
		}

		g.bgColorIndex[screenX] = byte(colorVal)
		g.bgPriority[screenX] = bgPriority

		var color GBColor
		if cgb {
			color = GBColor(g.memory.CGBBackgroundColor(cgbPalette, colorVal))
		} else {
			color = ByteToColor(paletteShade(palette, byte(colorVal)))
		}
		g.framebuffer.SetPixel(uint(screenX), uint(g.line), color)
	}
}

// drawWindow overlays the window layer on top of the background for
// pixels at or past (WX-7, WY), using the same palette machinery as the
// background.
func (g *GPU) drawWindow() {
	lcdc := g.memory.Read(addr.LCDC)
	if !bit.IsSet(windowEnableBit, lcdc) {
		return
	}

	wy := int(g.memory.Read(addr.WY))
	wx := int(g.memory.Read(addr.WX)) - 7

	if g.line < wy || wx >= width {
		return
	}

	cgb := g.memory.IsCGB()
	palette := g.memory.Read(addr.BGP)
	tileMapBase := g.windowTileMapBase(lcdc)

	winY := g.line - wy
	tileRow := winY / 8
	rowInTile := winY % 8

	startX := wx
	if startX < 0 {
		startX = 0
	}

	for screenX := startX; screenX < width; screenX++ {
		winX := screenX - wx
		tileCol := winX / 8
		colInTile := winX % 8

		tileMapAddr := tileMapBase + uint16(tileRow*32+tileCol)
		tileIndex := g.memory.ReadVRAMBank(0, tileMapAddr)
		tileAddr := g.bgTileDataAddress(lcdc, tileIndex)

		bank := 0
		flipX, flipY, bgPriority := false, false, false
		cgbPalette := 0

		if cgb {
			attrs := g.memory.ReadVRAMBank(1, tileMapAddr)
			bank = int((attrs >> 3) & 0x01)
			flipX = bit.IsSet(5, attrs)
			flipY = bit.IsSet(6, attrs)
			bgPriority = bit.IsSet(7, attrs)
			cgbPalette = int(attrs & 0x07)
		}

		row := rowInTile
		if flipY {
			row = 7 - row
		}
		tileRowData := g.fetchTileRow(bank, tileAddr, row)

		var colorVal int
		if flipX {
			colorVal = tileRowData.GetPixelFlipped(colInTile)
		} else {
			colorVal = tileRowData.GetPixel(colInTile)
		}

		g.bgColorIndex[screenX] = byte(colorVal)
		g.bgPriority[screenX] = bgPriority

		var color GBColor
		if cgb {
			color = GBColor(g.memory.CGBBackgroundColor(cgbPalette, colorVal))
		} else {
			color = ByteToColor(paletteShade(palette, byte(colorVal)))
		}
		g.framebuffer.SetPixel(uint(screenX), uint(g.line), color)
	}
}

// drawSprites composes the up-to-10 sprites selected for this scanline,
// respecting per-pixel sprite-to-sprite priority (from the OAM priority
// buffer), sprite transparency, and sprite-vs-background priority.
func (g *GPU) drawSprites() {
	lcdc := g.memory.Read(addr.LCDC)
	if !bit.IsSet(spriteEnableBit, lcdc) {
		return
	}

	cgb := g.memory.IsCGB()
	bgMasterPriority := !cgb || bit.IsSet(bgEnableBit, lcdc)

	sprites := g.oam.GetSpritesForScanline(g.line)

	for i := range sprites {
		sprite := &sprites[i]
		if !sprite.HasPriorityForAnyPixel() {
			continue
		}

		rowInSprite := g.line - int(sprite.Y)
		if sprite.FlipY {
			rowInSprite = sprite.Height - 1 - rowInSprite
		}

		tileIndex := sprite.TileIndex
		if sprite.Height == 16 {
			if rowInSprite < 8 {
				tileIndex &^= 0x01
			} else {
				tileIndex |= 0x01
				rowInSprite -= 8
			}
		}

		bank := 0
		if cgb {
			bank = int((sprite.Flags >> 3) & 0x01)
		}

		tileAddr := addr.TileData0 + uint16(tileIndex)*16
		row := g.fetchTileRow(bank, tileAddr, rowInSprite)

		var obp byte
		var cgbPalette int
		if cgb {
			cgbPalette = int(sprite.Flags & 0x07)
		} else {
			obp = g.memory.Read(addr.OBP0)
			if sprite.PaletteOBP1 {
				obp = g.memory.Read(addr.OBP1)
			}
		}

		for pixelX := 0; pixelX < 8; pixelX++ {
			if !sprite.HasPriorityForPixel(pixelX) {
				continue
			}

			screenX := int(sprite.X) + pixelX
			if screenX < 0 || screenX >= width {
				continue
			}

			var colorVal int
			if sprite.FlipX {
				colorVal = row.GetPixelFlipped(pixelX)
			} else {
				colorVal = row.GetPixel(pixelX)
			}

			if colorVal == 0 {
				continue
			}

			bgHasPriority := bgMasterPriority && g.bgColorIndex[screenX] != 0 &&
				(sprite.BehindBG || g.bgPriority[screenX])
			if bgHasPriority {
				continue
			}

			var color GBColor
			if cgb {
				color = GBColor(g.memory.CGBSpriteColor(cgbPalette, colorVal))
			} else {
				color = ByteToColor(paletteShade(obp, byte(colorVal)))
			}
			g.framebuffer.SetPixel(uint(screenX), uint(g.line), color)
		}
	}
}
