package jeebie

import (
	"os"

	"github.com/gbkernel/gbkernel/jeebie/audio"
	"github.com/gbkernel/gbkernel/jeebie/cpu"
	"github.com/gbkernel/gbkernel/jeebie/debug"
	"github.com/gbkernel/gbkernel/jeebie/input/action"
	"github.com/gbkernel/gbkernel/jeebie/memory"
	"github.com/gbkernel/gbkernel/jeebie/timing"
	"github.com/gbkernel/gbkernel/jeebie/video"
)

// debugMemorySnapshotSize is how many bytes ExtractDebugData captures around the PC.
const debugMemorySnapshotSize = 64

// DMG is the root struct and entry point for running the emulation: it owns
// the CPU, MMU and GPU and drives them forward one frame at a time.
type DMG struct {
	cpu *cpu.CPU
	mem *memory.MMU
	gpu *video.GPU

	limiter timing.Limiter

	frameCount       uint64
	instructionCount uint64

	// completion detection: blargg-style test ROMs signal they're done by
	// spinning on the same instruction forever, so we declare the run
	// complete once the PC hasn't moved for minLoopCount consecutive frames.
	maxFrames    uint64
	minLoopCount int
	lastPC       uint16
	loopCount    int
}

// New creates a new emulator instance with no cartridge loaded.
func New() *DMG {
	e := &DMG{}
	e.mem = memory.NewWithCartridge(memory.NewCartridge())
	e.cpu = cpu.New(e.mem)
	e.gpu = video.NewGpu(e.mem)
	e.limiter = timing.NewAdaptiveLimiter()
	return e
}

// NewWithFile creates a new emulator instance and loads the ROM at path into it.
func NewWithFile(path string) (*DMG, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	e := &DMG{}
	e.mem = memory.NewWithCartridge(memory.NewCartridgeWithData(data))
	e.cpu = cpu.New(e.mem)
	e.gpu = video.NewGpu(e.mem)
	e.limiter = timing.NewAdaptiveLimiter()

	return e, nil
}

// tick runs a single CPU instruction and advances every other component by
// the cycles it consumed.
func (e *DMG) tick() {
	cycles := e.cpu.Exec()
	e.mem.Tick(cycles)
	e.gpu.Tick(cycles)
	e.mem.APU.Tick(cycles)
	e.instructionCount++
}

// RunUntilFrame runs the emulator until the GPU completes a frame.
func (e *DMG) RunUntilFrame() error {
	for !e.gpu.FrameReady() {
		e.tick()
	}
	e.gpu.ClearFrameReady()
	e.frameCount++
	e.limiter.WaitForNextFrame()
	return nil
}

// ConfigureCompletionDetection sets the bounds RunUntilComplete uses to
// decide a ROM is done: it stops after maxFrames frames, or sooner once the
// CPU has been stuck on the same PC for minLoopCount consecutive frames.
func (e *DMG) ConfigureCompletionDetection(maxFrames uint64, minLoopCount int) {
	e.maxFrames = maxFrames
	e.minLoopCount = minLoopCount
	e.lastPC = 0
	e.loopCount = 0
}

// RunUntilComplete runs frames until completion is detected per
// ConfigureCompletionDetection, or maxFrames is reached if no loop count was set.
func (e *DMG) RunUntilComplete() {
	for e.frameCount < e.maxFrames {
		e.RunUntilFrame()

		pc := e.cpu.GetPC()
		if pc == e.lastPC {
			e.loopCount++
		} else {
			e.loopCount = 0
		}
		e.lastPC = pc

		if e.minLoopCount > 0 && e.loopCount >= e.minLoopCount {
			return
		}
	}
}

// GetCurrentFrame returns the most recently completed framebuffer.
func (e *DMG) GetCurrentFrame() *video.FrameBuffer {
	return e.gpu.GetFrameBuffer()
}

// GetFrameCount returns the number of frames rendered so far.
func (e *DMG) GetFrameCount() uint64 {
	return e.frameCount
}

// GetInstructionCount returns the number of CPU instructions executed so far.
func (e *DMG) GetInstructionCount() uint64 {
	return e.instructionCount
}

// HandleAction dispatches a Game Boy button action directly to the joypad
// register; emulator-level actions (pause, snapshot, ...) are handled by
// backends themselves and never reach here.
func (e *DMG) HandleAction(act action.Action, pressed bool) {
	key, ok := gbButtonToJoypadKey(act)
	if !ok {
		return
	}

	if pressed {
		e.mem.HandleKeyPress(key)
	} else {
		e.mem.HandleKeyRelease(key)
	}
}

func gbButtonToJoypadKey(act action.Action) (memory.JoypadKey, bool) {
	switch act {
	case action.GBButtonA:
		return memory.JoypadA, true
	case action.GBButtonB:
		return memory.JoypadB, true
	case action.GBButtonStart:
		return memory.JoypadStart, true
	case action.GBButtonSelect:
		return memory.JoypadSelect, true
	case action.GBDPadUp:
		return memory.JoypadUp, true
	case action.GBDPadDown:
		return memory.JoypadDown, true
	case action.GBDPadLeft:
		return memory.JoypadLeft, true
	case action.GBDPadRight:
		return memory.JoypadRight, true
	default:
		return 0, false
	}
}

// HandleKeyPress presses a joypad key directly, for frontends (e.g. the
// terminal renderer) that talk in terms of Game Boy keys rather than Actions.
func (e *DMG) HandleKeyPress(key memory.JoypadKey) {
	e.mem.HandleKeyPress(key)
}

// HandleKeyRelease releases a joypad key directly.
func (e *DMG) HandleKeyRelease(key memory.JoypadKey) {
	e.mem.HandleKeyRelease(key)
}

// SetFrameLimiter overrides the frame pacing strategy; a nil limiter disables
// pacing entirely (used by benchmarks and headless batch runs).
func (e *DMG) SetFrameLimiter(limiter timing.Limiter) {
	if limiter == nil {
		e.limiter = timing.NewNoOpLimiter()
	} else {
		e.limiter = limiter
	}
}

// ResetFrameTiming resets the frame limiter's internal clock, useful after a pause.
func (e *DMG) ResetFrameTiming() {
	e.limiter.Reset()
}

// GetAudioProvider exposes the APU for backends that render or debug audio.
func (e *DMG) GetAudioProvider() audio.Provider {
	if e.mem == nil {
		return nil
	}
	return e.mem.APU
}

// ExtractDebugData snapshots CPU, memory, OAM and VRAM state for debug UIs.
// Returns nil if the emulator hasn't been initialized with a cartridge yet.
func (e *DMG) ExtractDebugData() *debug.CompleteDebugData {
	if e.cpu == nil || e.mem == nil || e.gpu == nil {
		return nil
	}

	pc := e.cpu.GetPC()
	var snapshotStart uint16
	if pc > debugMemorySnapshotSize/2 {
		snapshotStart = pc - debugMemorySnapshotSize/2
	}

	snapshotSize := debugMemorySnapshotSize
	if uint32(snapshotStart)+uint32(snapshotSize) > 0x10000 {
		snapshotSize = int(0x10000 - uint32(snapshotStart))
	}

	bytes := make([]uint8, snapshotSize)
	for i := 0; i < snapshotSize; i++ {
		bytes[i] = e.mem.Read(snapshotStart + uint16(i))
	}

	lcdc := e.mem.Read(0xFF40)
	spriteHeight := 8
	if lcdc&0x04 != 0 {
		spriteHeight = 16
	}
	currentLine := int(e.mem.Read(0xFF44))

	return &debug.CompleteDebugData{
		OAM:  debug.ExtractOAMDataFromReader(e.mem, currentLine, spriteHeight),
		VRAM: debug.ExtractVRAMDataFromReader(e.mem),
		CPU: &debug.CPUState{
			A:      e.cpu.GetA(),
			F:      e.cpu.GetF(),
			B:      e.cpu.GetB(),
			C:      e.cpu.GetC(),
			D:      e.cpu.GetD(),
			E:      e.cpu.GetE(),
			H:      e.cpu.GetH(),
			L:      e.cpu.GetL(),
			SP:     e.cpu.GetSP(),
			PC:     pc,
			IME:    e.cpu.GetIME(),
			Cycles: e.cpu.GetCycles(),
		},
		Memory: &debug.MemorySnapshot{
			StartAddr: snapshotStart,
			Bytes:     bytes,
		},
		DebuggerState:   debug.DebuggerRunning,
		InterruptEnable: e.cpu.GetIE(),
		InterruptFlags:  e.cpu.GetIF(),
	}
}
