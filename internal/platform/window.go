package platform

import (
	"fmt"
	"time"

	"github.com/bradford-hamilton/chippy/internal/machine"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"
)

const (
	screenWidth  float64 = 1024
	screenHeight float64 = 768
)

// keyMap assigns the CHIP-8 hex keypad to the COSMAC VIP-derived
// keyboard layout:
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   ->   Q W E R
//	7 8 9 E        A S D F
//	A 0 B F        Z X C V
var keyMap = map[byte]pixelgl.Button{
	0x1: pixelgl.Key1, 0x2: pixelgl.Key2, 0x3: pixelgl.Key3, 0xC: pixelgl.Key4,
	0x4: pixelgl.KeyQ, 0x5: pixelgl.KeyW, 0x6: pixelgl.KeyE, 0xD: pixelgl.KeyR,
	0x7: pixelgl.KeyA, 0x8: pixelgl.KeyS, 0x9: pixelgl.KeyD, 0xE: pixelgl.KeyF,
	0xA: pixelgl.KeyZ, 0x0: pixelgl.KeyX, 0xB: pixelgl.KeyC, 0xF: pixelgl.KeyV,
}

// Window implements Platform on top of a pixelgl window: it polls the
// hex keypad from the embedded window's key state, presents the
// framebuffer with imdraw rectangles, and reports Paused whenever the
// user holds the pause key.
type Window struct {
	*pixelgl.Window
	mode  machine.ExecutionMode
	start time.Time
}

// NewWindow creates and returns a pixelgl-backed Window.
func NewWindow() (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  "chippy",
		Bounds: pixel.R(0, 0, screenWidth, screenHeight),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating new window: %w", err)
	}
	return &Window{Window: w, mode: machine.Running, start: time.Now()}, nil
}

// SnapshotKeys polls the embedded window's key state and packs it into
// a Keyboard bitmap.
func (w *Window) SnapshotKeys() machine.Keyboard {
	var keys machine.Keyboard
	for hex, button := range keyMap {
		keys = keys.Set(hex, w.Pressed(button))
	}
	return keys
}

// Present clears the window and draws one filled rectangle per set
// pixel, scaled from the 64x32 logical framebuffer to the window's
// pixel dimensions.
func (w *Window) Present(display *machine.Display) error {
	w.Clear(colornames.Black)

	draw := imdraw.New(nil)
	draw.Color = pixel.RGB(1, 1, 1)

	cellWidth := screenWidth / machine.DisplayWidth
	cellHeight := screenHeight / machine.DisplayHeight

	for y := 0; y < machine.DisplayHeight; y++ {
		for x := 0; x < machine.DisplayWidth; x++ {
			if !display.GetPixel(x, y) {
				continue
			}
			// Flip vertically: framebuffer row 0 is the top of the
			// screen, pixelgl's origin is bottom-left.
			flippedY := machine.DisplayHeight - 1 - y
			draw.Push(pixel.V(cellWidth*float64(x), cellHeight*float64(flippedY)))
			draw.Push(pixel.V(cellWidth*float64(x)+cellWidth, cellHeight*float64(flippedY)+cellHeight))
			draw.Rectangle(0)
		}
	}

	draw.Draw(w)
	w.Update()
	return nil
}

// ExecutionMode reports Paused if the window has been closed or the P
// key is held, otherwise Running.
func (w *Window) ExecutionMode() machine.ExecutionMode {
	if w.Closed() {
		return machine.Paused
	}
	if w.Pressed(pixelgl.KeyP) {
		return machine.Paused
	}
	return machine.Running
}

// Now returns elapsed time since the window was created.
func (w *Window) Now() time.Duration {
	return time.Since(w.start)
}
