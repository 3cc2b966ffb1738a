package machine

// Quirks selects one of two historically incompatible behaviors for
// each ambiguous opcode family. Every flag defaults to false, which
// reproduces the baseline semantics documented for each opcode.
type Quirks struct {
	// Shift controls 8XY6/8XYE. When true, ShiftRight/ShiftLeft operate
	// in place on VX (VF gets the displaced bit of VX). When false,
	// they compute from VY (VF gets the displaced bit of VY, VX <- VY
	// shifted).
	Shift bool

	// JumpOffsetUsesVX controls BNNN. When true, the jump-offset base is
	// VX (the nibble embedded in the instruction) instead of V0.
	JumpOffsetUsesVX bool

	// IncrementIndexOnLoadStore controls FX55/FX65. When true, I is
	// advanced by X+1 after the register block copy.
	IncrementIndexOnLoadStore bool

	// KeyWaitEdgeTrigger controls FX0A. When true, the wait completes
	// only on a 0->1 transition of a key rather than on any frame where
	// a key happens to be held.
	KeyWaitEdgeTrigger bool

	// WrapCoordinates controls DXYN. When true, the sprite's initial
	// (x, y) wraps modulo the screen dimensions before blitting; sprite
	// rows/columns that run off the edge are still clipped either way.
	WrapCoordinates bool
}

// Config is the machine's immutable per-run configuration: clock
// frequencies and quirk toggles.
type Config struct {
	// CPUFrequencyHz is how many instructions run per second of wall
	// time while in Running mode.
	CPUFrequencyHz uint16

	// TimerFrequencyHz is how often DT and ST decrement.
	TimerFrequencyHz uint16

	Quirks Quirks
}

// DefaultConfig returns the standard CHIP-8 timing: 500 Hz CPU, 60 Hz
// timers, and every quirk disabled.
func DefaultConfig() Config {
	return Config{
		CPUFrequencyHz:   500,
		TimerFrequencyHz: 60,
	}
}
