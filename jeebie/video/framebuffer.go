package video

type GBColor uint32

const (
	WhiteColor     GBColor = 0xFFFFFFFF
	LightGreyColor         = 0xFF989898
	DarkGreyColor          = 0xFF4C4C4C
	BlackColor             = 0xFF000000
)

type FrameBuffer struct {
	width  uint
	height uint
	buffer []uint32
}

// NewFrameBuffer creates a frame buffer sized to the Game Boy screen (160x144).
func NewFrameBuffer() *FrameBuffer {
	colorSlice := make([]uint32, width*height)

	return &FrameBuffer{
		width:  width,
		height: height,
		buffer: colorSlice,
	}
}

func (fb FrameBuffer) GetPixel(x, y uint) uint32 {
	return fb.buffer[y*fb.width+x]
}

func (fb *FrameBuffer) SetPixel(x, y uint, color GBColor) {
	fb.buffer[y*fb.width+x] = uint32(color)
}

func (fb *FrameBuffer) ToSlice() []uint32 {
	return fb.buffer
}

// FramebufferHeight is the number of visible scanlines.
const FramebufferHeight = height

// ToGrayscale packs the framebuffer into one byte per pixel, mapping each
// GBColor to its 2-bit DMG shade (0=white .. 3=black). Used for golden-file
// hashing and grayscale snapshots where exact RGB packing doesn't matter.
func (fb *FrameBuffer) ToGrayscale() []byte {
	out := make([]byte, len(fb.buffer))
	for i, pixel := range fb.buffer {
		switch GBColor(pixel) {
		case WhiteColor:
			out[i] = 0
		case LightGreyColor:
			out[i] = 1
		case DarkGreyColor:
			out[i] = 2
		default:
			out[i] = 3
		}
	}
	return out
}
