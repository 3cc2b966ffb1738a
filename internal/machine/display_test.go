package machine

import "testing"

func TestDisplaySetGetPixel(t *testing.T) {
	d := NewDisplay()
	d.setPixel(0, 0, true)
	if !d.GetPixel(0, 0) {
		t.Error("pixel (0,0) should be set")
	}
	d.setPixel(0, 0, false)
	if d.GetPixel(0, 0) {
		t.Error("pixel (0,0) should be clear")
	}
}

func TestDisplayOutOfRangeIsNoop(t *testing.T) {
	d := NewDisplay()
	d.setPixel(DisplayWidth, 0, true)
	d.setPixel(-1, 0, true)
	if d.GetPixel(DisplayWidth, 0) || d.GetPixel(-1, 0) {
		t.Error("out-of-range writes should be ignored")
	}
	if d.GetPixel(DisplayWidth, 5) != false {
		t.Error("out-of-range reads should be false")
	}
}

func TestDrawSpriteCollisionAndInvolution(t *testing.T) {
	d := NewDisplay()
	sprite := []byte{0xF0, 0x90, 0x90, 0x90, 0xF0} // "0" glyph

	first := d.DrawSprite(0, 0, sprite, false)
	if first {
		t.Error("first draw onto a blank screen should not collide")
	}

	second := d.DrawSprite(0, 0, sprite, false)
	if !second {
		t.Error("second draw of a sprite with set bits should collide")
	}

	for y := 0; y < DisplayHeight; y++ {
		for x := 0; x < DisplayWidth; x++ {
			if d.GetPixel(x, y) {
				t.Fatalf("pixel (%d,%d) set after XOR involution, framebuffer should be blank", x, y)
			}
		}
	}
}

func TestDrawSpriteClipsAtEdges(t *testing.T) {
	d := NewDisplay()
	sprite := []byte{0xFF, 0xFF}

	d.DrawSprite(DisplayWidth-2, DisplayHeight-1, sprite, false)

	if d.GetPixel(DisplayWidth-2, DisplayHeight-1) == false {
		t.Error("in-bounds column of clipped sprite should still draw")
	}
	// the second sprite row falls off the bottom edge and must be clipped,
	// not wrapped to row 0.
	if d.GetPixel(0, 0) {
		t.Error("clipped sprite row should not wrap to the top of the screen")
	}
}

func TestDrawSpriteWrapQuirk(t *testing.T) {
	d := NewDisplay()
	sprite := []byte{0x80}

	d.DrawSprite(DisplayWidth+3, DisplayHeight+3, sprite, true)
	if !d.GetPixel(3, 3) {
		t.Error("with WrapCoordinates enabled the initial (x,y) should wrap modulo screen size")
	}
}

func TestBytesIsFixed256(t *testing.T) {
	d := NewDisplay()
	buf := d.Bytes()
	if len(buf) != 256 {
		t.Errorf("framebuffer is %d bytes, want 256", len(buf))
	}
}
