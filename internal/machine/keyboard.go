package machine

// Keyboard is a 16-bit bitmap of the hex keypad; bit k set means key k
// is currently held. Keys greater than 0xF are ignored.
type Keyboard uint16

// IsPressed reports whether key is currently held. Keys above 0xF
// always read as unpressed.
func (k Keyboard) IsPressed(key byte) bool {
	if key > 0xF {
		return false
	}
	return k&(1<<key) != 0
}

// AnyPressed reports whether any key is currently held.
func (k Keyboard) AnyPressed() bool {
	return k != 0
}

// FirstPressed returns the lowest-indexed pressed key and true, or
// (0, false) if no key is held.
func (k Keyboard) FirstPressed() (byte, bool) {
	for i := byte(0); i <= 0xF; i++ {
		if k.IsPressed(i) {
			return i, true
		}
	}
	return 0, false
}

// Set returns a copy of k with key set to pressed. Keys above 0xF are
// ignored.
func (k Keyboard) Set(key byte, pressed bool) Keyboard {
	if key > 0xF {
		return k
	}
	if pressed {
		return k | (1 << key)
	}
	return k &^ (1 << key)
}
