// Package machine implements the CHIP-8 instruction-set architecture
// runtime: memory, display, keyboard, the instruction codec, and the
// fetch-decode-execute loop that ties them together. It has no
// third-party dependencies and no knowledge of how it is hosted — the
// Platform boundary (internal/platform) supplies input, presentation,
// audio, and timing from outside this package.
package machine

import (
	"math/rand"
	"time"
)

// ExecutionMode gates how many instructions a frame retires.
type ExecutionMode int

const (
	// Running executes round(cpuFrequency * delta) instructions this frame.
	Running ExecutionMode = iota
	// Paused executes zero instructions.
	Paused
	// Step executes exactly one instruction.
	Step
)

// Machine is the CHIP-8 virtual machine: registers, stack, memory,
// display, keyboard, timers, and the PRNG used by Rnd. It is
// single-threaded and cooperative — there are no suspension points
// inside Step, and the only boundary crossed is RunFrame's exchange
// with a Platform once per frame (see internal/platform).
type Machine struct {
	memory  *Memory
	display *Display
	keys    Keyboard
	config  Config

	v      [16]byte
	i      uint16
	pc     uint16
	sp     byte
	dt     byte
	st     byte
	stack  [16]uint16
	waitVX byte
	waitOn bool

	prevKeys Keyboard

	rng *rand.Rand

	lastFrameTime    time.Duration
	timerPeriod      time.Duration
	timerAccumulator time.Duration
}

// NewMachine returns a Machine with the default configuration and a
// non-deterministic PRNG seed.
func NewMachine() *Machine {
	return NewMachineSeeded(time.Now().UnixNano())
}

// NewMachineSeeded returns a Machine seeded deterministically, for
// reproducible tests.
func NewMachineSeeded(seed int64) *Machine {
	m := &Machine{config: DefaultConfig()}
	m.rng = rand.New(rand.NewSource(seed))
	m.applyTimerPeriod()
	m.Reset()
	return m
}

// WithConfig applies cfg to the machine, preserving the PRNG stream.
func (m *Machine) WithConfig(cfg Config) *Machine {
	m.config = cfg
	m.applyTimerPeriod()
	return m
}

func (m *Machine) applyTimerPeriod() {
	freq := m.config.TimerFrequencyHz
	if freq == 0 {
		freq = DefaultConfig().TimerFrequencyHz
	}
	m.timerPeriod = time.Second / time.Duration(freq)
}

// Reset zeroes registers, stack, timers, PC, SP, and the index
// register, clears the display and keypad, and re-initializes memory
// (including font reload). It does not disturb the RNG stream.
func (m *Machine) Reset() {
	m.memory = NewMemory()
	m.display = NewDisplay()
	m.keys = 0
	m.prevKeys = 0
	m.v = [16]byte{}
	m.stack = [16]uint16{}
	m.i = 0
	m.pc = 0
	m.sp = 0
	m.dt = 0
	m.st = 0
	m.waitVX = 0
	m.waitOn = false
	m.timerAccumulator = 0
	m.lastFrameTime = 0
}

// LoadProgram resets all state except the RNG, writes program words
// into memory starting at ProgramStart, and sets PC to ProgramStart.
func (m *Machine) LoadProgram(words []uint16) error {
	m.Reset()
	m.pc = ProgramStart
	for idx, word := range words {
		addr := ProgramStart + uint16(idx)*2
		if err := m.memory.WriteWord(addr, word); err != nil {
			return err
		}
	}
	return nil
}

// Step runs a single fetch-decode-execute cycle: it guards the
// program counter, fetches the big-endian word at PC, advances PC by
// 2 before decoding, decodes the word to an Instruction, and dispatches
// to its handler. The handler sees the post-advance PC as its
// baseline.
func (m *Machine) Step() error {
	if m.pc < ProgramStart || m.pc > MemorySize-4 {
		return errInvalidProgramCounter(m.pc)
	}
	if m.pc%2 != 0 {
		return errUnalignedProgramCounter(m.pc)
	}

	word, err := m.memory.ReadWord(m.pc)
	if err != nil {
		return err
	}
	m.pc += 2

	inst, err := Decode(word)
	if err != nil {
		return err
	}

	return m.exec(inst)
}

// RunFrame pulls the current keypad snapshot and execution mode from
// platform, computes how many instructions to retire this frame,
// drives Step that many times, advances the timers by elapsed time
// when running, and presents the display and audio gate to platform.
// It stops early (without error) if a Step call fails, returning that
// error.
func (m *Machine) RunFrame(platform FrameSource) error {
	mode := platform.ExecutionMode()
	frameStart := platform.Now()

	m.prevKeys = m.keys
	m.keys = platform.SnapshotKeys()

	var instructionsToRun int
	switch mode {
	case Paused:
		instructionsToRun = 0
	case Step:
		instructionsToRun = 1
	case Running:
		instructionsToRun = m.instructionsForFrame(frameStart)
	}

	for n := 0; n < instructionsToRun; n++ {
		if err := m.Step(); err != nil {
			return err
		}
	}

	if mode == Running {
		delta := platform.Now() - frameStart
		m.updateTimers(delta)
	}

	if err := platform.Present(m.display); err != nil {
		return err
	}
	return platform.SetAudio(m.st > 0)
}

// FrameSource is the subset of the Platform contract RunFrame needs:
// a keypad snapshot, a wall-clock reading, and the current execution
// mode, plus the two presentation sinks. Defined here (rather than
// importing internal/platform) so the core runtime stays free of any
// host dependency; internal/platform.Platform satisfies it.
type FrameSource interface {
	SnapshotKeys() Keyboard
	Now() time.Duration
	ExecutionMode() ExecutionMode
	Present(display *Display) error
	SetAudio(on bool) error
}

func (m *Machine) instructionsForFrame(now time.Duration) int {
	delta := now - m.lastFrameTime
	m.lastFrameTime = now
	if delta < 0 {
		return 0
	}
	expected := float64(m.config.CPUFrequencyHz) * delta.Seconds()
	return int(expected + 0.5)
}

func (m *Machine) updateTimers(delta time.Duration) {
	m.timerAccumulator += delta
	for m.timerAccumulator >= m.timerPeriod {
		if m.dt > 0 {
			m.dt--
		}
		if m.st > 0 {
			m.st--
		}
		m.timerAccumulator -= m.timerPeriod
	}
}

// Registers returns a copy of V0..VF.
func (m *Machine) Registers() [16]byte { return m.v }

// PC returns the current program counter.
func (m *Machine) PC() uint16 { return m.pc }

// SP returns the current stack pointer.
func (m *Machine) SP() byte { return m.sp }

// Index returns the current index register.
func (m *Machine) Index() uint16 { return m.i }

// DelayTimer returns the current delay timer value.
func (m *Machine) DelayTimer() byte { return m.dt }

// SoundTimer returns the current sound timer value.
func (m *Machine) SoundTimer() byte { return m.st }

// Display returns the machine's framebuffer.
func (m *Machine) Display() *Display { return m.display }

// Memory returns the machine's address space.
func (m *Machine) Memory() *Memory { return m.memory }

// SetKeys overwrites the keypad snapshot directly, for hosts or tests
// driving the machine without a Platform.
func (m *Machine) SetKeys(keys Keyboard) {
	m.prevKeys = m.keys
	m.keys = keys
}

func (m *Machine) exec(inst Instruction) error {
	switch inst.Op {
	case OpClear:
		return m.opClear()
	case OpReturn:
		return m.opReturn()
	case OpSyscall:
		return m.opSyscall()
	case OpJump:
		return m.opJump(inst.NNN)
	case OpCall:
		return m.opCall(inst.NNN)
	case OpSkipIfEqualImm:
		return m.opSkipIfEqualImm(inst.X, inst.KK)
	case OpSkipIfNotEqualImm:
		return m.opSkipIfNotEqualImm(inst.X, inst.KK)
	case OpSkipIfEqual:
		return m.opSkipIfEqual(inst.X, inst.Y)
	case OpSetImmediate:
		return m.opSetImmediate(inst.X, inst.KK)
	case OpAddImmediate:
		return m.opAddImmediate(inst.X, inst.KK)
	case OpSet:
		return m.opSet(inst.X, inst.Y)
	case OpOr:
		return m.opOr(inst.X, inst.Y)
	case OpAnd:
		return m.opAnd(inst.X, inst.Y)
	case OpXor:
		return m.opXor(inst.X, inst.Y)
	case OpAdd:
		return m.opAdd(inst.X, inst.Y)
	case OpSubtract:
		return m.opSubtract(inst.X, inst.Y)
	case OpShiftRight:
		return m.opShiftRight(inst.X, inst.Y)
	case OpSubtractNegate:
		return m.opSubtractNegate(inst.X, inst.Y)
	case OpShiftLeft:
		return m.opShiftLeft(inst.X, inst.Y)
	case OpSkipIfNotEqual:
		return m.opSkipIfNotEqual(inst.X, inst.Y)
	case OpSetIndex:
		return m.opSetIndex(inst.NNN)
	case OpJumpOffset:
		return m.opJumpOffset(inst.X, inst.NNN)
	case OpRnd:
		return m.opRnd(inst.X, inst.KK)
	case OpDraw:
		return m.opDraw(inst.X, inst.Y, inst.N)
	case OpSkipIfKey:
		return m.opSkipIfKey(inst.X)
	case OpSkipIfNotKey:
		return m.opSkipIfNotKey(inst.X)
	case OpLoadDelayTimer:
		return m.opLoadDelayTimer(inst.X)
	case OpWaitForKey:
		return m.opWaitForKey(inst.X)
	case OpSetDelayTimer:
		return m.opSetDelayTimer(inst.X)
	case OpSetSoundTimer:
		return m.opSetSoundTimer(inst.X)
	case OpAddIndex:
		return m.opAddIndex(inst.X)
	case OpLoadFont:
		return m.opLoadFont(inst.X)
	case OpStoreBcd:
		return m.opStoreBcd(inst.X)
	case OpStoreRegisters:
		return m.opStoreRegisters(inst.X)
	case OpLoadRegisters:
		return m.opLoadRegisters(inst.X)
	default:
		return errInvalidInstruction(0)
	}
}
