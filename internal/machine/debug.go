package machine

import (
	"fmt"
	"strings"
)

// DumpRegisters renders V0..VF, PC, and SP as a hex/binary/decimal
// table, for diagnostic use only.
func (m *Machine) DumpRegisters() string {
	var b strings.Builder

	fmt.Fprintf(&b, "REG\t| HEX    | BIN                | DEC\n")
	fmt.Fprintf(&b, "--------|--------|--------------------|----\n")

	for i, val := range m.v {
		fmt.Fprintf(&b, "V%X\t| 0x%02X   | 0b%08b           | %d\n", i, val, val, val)
	}
	fmt.Fprintf(&b, "PC\t| 0x%04X | 0b%016b | %d\n", m.pc, m.pc, m.pc)
	fmt.Fprintf(&b, "SP\t| 0x%02X   | 0b%08b           | %d\n", m.sp, m.sp, m.sp)
	fmt.Fprintf(&b, "I\t| 0x%04X | 0b%016b | %d\n", m.i, m.i, m.i)

	return b.String()
}

// DumpMemoryHex renders length bytes starting at start as a
// conventional hex dump, 16 bytes per line with an address column.
func (m *Machine) DumpMemoryHex(start, length uint16) string {
	var b strings.Builder
	data := m.memory.ReadRange(start, length)

	for i, byteVal := range data {
		if i%16 == 0 {
			fmt.Fprintf(&b, "0x%04X: ", start+uint16(i))
		}
		fmt.Fprintf(&b, "0x%02X ", byteVal)
		if i%16 == 15 {
			b.WriteByte('\n')
		}
	}
	if len(data)%16 != 0 {
		b.WriteByte('\n')
	}

	return b.String()
}

// DumpScreen renders the framebuffer as text: a filled block for a set
// pixel, a middle dot for clear, one line per row.
func (m *Machine) DumpScreen() string {
	var b strings.Builder

	for y := 0; y < DisplayHeight; y++ {
		for x := 0; x < DisplayWidth; x++ {
			if m.display.GetPixel(x, y) {
				b.WriteRune('█')
			} else {
				b.WriteRune('·')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
