package machine

// MemorySize is the fixed linear address space of the machine: 4 KiB,
// addressed by 12-bit unsigned values.
const MemorySize = 0x1000

// ProgramStart is the conventional load address for ROM bytes.
const ProgramStart = 0x200

// FontStart is the address where the 16-glyph hex font is preloaded.
// Digit d begins at FontStart + 5*d.
const FontStart = 0x050

// fontSet is the canonical CHIP-8 hex font, 5 bytes per digit 0-F, in
// the layout used by the reference platform.
var fontSet = [80]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the machine's 4 KiB byte-addressable address space. It
// preloads the font block at construction and bounds-checks every
// access.
type Memory struct {
	data [MemorySize]byte
}

// NewMemory returns a Memory with the font block preloaded at
// FontStart and everything else zeroed.
func NewMemory() *Memory {
	m := &Memory{}
	m.loadFont()
	return m
}

func (m *Memory) loadFont() {
	copy(m.data[FontStart:FontStart+len(fontSet)], fontSet[:])
}

// Read returns the byte at addr, or MemoryOutOfBound if addr >= 0x1000.
func (m *Memory) Read(addr uint16) (byte, error) {
	if addr >= MemorySize {
		return 0, errMemoryOutOfBound(addr)
	}
	return m.data[addr], nil
}

// Write stores value at addr, or returns MemoryOutOfBound if addr >= 0x1000.
func (m *Memory) Write(addr uint16, value byte) error {
	if addr >= MemorySize {
		return errMemoryOutOfBound(addr)
	}
	m.data[addr] = value
	return nil
}

// ReadWord reads a big-endian 16-bit word at addr. addr must leave room
// for the high and low byte (addr <= 0x0FFE).
func (m *Memory) ReadWord(addr uint16) (uint16, error) {
	if addr >= MemorySize-1 {
		return 0, errMemoryOutOfBound(addr)
	}
	hi := uint16(m.data[addr])
	lo := uint16(m.data[addr+1])
	return hi<<8 | lo, nil
}

// WriteWord stores a big-endian 16-bit word at addr, high byte first.
func (m *Memory) WriteWord(addr uint16, value uint16) error {
	if addr >= MemorySize-1 {
		return errMemoryOutOfBound(addr)
	}
	m.data[addr] = byte(value >> 8)
	m.data[addr+1] = byte(value)
	return nil
}

// ReadRange returns a copy of length bytes starting at start. It
// returns an empty slice (rather than an error) when the range would
// extend past the end of memory — callers such as the Draw handler
// rely on this to silently clip sprite reads.
func (m *Memory) ReadRange(start, length uint16) []byte {
	end := uint32(start) + uint32(length)
	if end > MemorySize {
		return []byte{}
	}
	out := make([]byte, length)
	copy(out, m.data[start:end])
	return out
}
