// Package platform implements the host side of the machine's Platform
// contract: a window for input and presentation (faiface/pixel) and an
// audio gate (faiface/beep). The machine package never imports this
// one — platform depends on machine, never the reverse.
package platform

import (
	"time"

	"github.com/bradford-hamilton/chippy/internal/machine"
)

// Platform is the boundary the host implements: a keypad snapshot, a
// frame-time source, an execution mode, display presentation, and an
// audio gate. It satisfies machine.FrameSource.
type Platform interface {
	// SnapshotKeys returns the current keypad state.
	SnapshotKeys() machine.Keyboard

	// Present receives a read-only framebuffer view to render.
	Present(display *machine.Display) error

	// SetAudio turns the audio gate on or off.
	SetAudio(on bool) error

	// Now returns a monotonic frame-time reading.
	Now() time.Duration

	// ExecutionMode reports whether the machine should run, pause, or
	// single-step this frame.
	ExecutionMode() machine.ExecutionMode
}
