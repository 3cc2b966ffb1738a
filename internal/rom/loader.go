// Package rom handles the file I/O the machine package deliberately
// stays free of: reading ROM bytes off disk and packing them into the
// big-endian instruction words Machine.LoadProgram expects.
package rom

import (
	"fmt"
	"os"

	"github.com/bradford-hamilton/chippy/internal/machine"
)

// maxROMBytes is the largest ROM that fits between ProgramStart and
// the top of memory.
const maxROMBytes = machine.MemorySize - machine.ProgramStart

// Load reads the file at path and packs its bytes into big-endian
// 16-bit program words, rejecting ROMs that would extend past the top
// of memory. An odd-length ROM has its final byte packed with a
// trailing zero.
func Load(path string) ([]uint16, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rom: reading %s: %w", path, err)
	}
	return Pack(data)
}

// Pack packs raw ROM bytes into big-endian 16-bit words, rejecting
// ROMs that would extend past the top of memory.
func Pack(data []byte) ([]uint16, error) {
	if len(data) > maxROMBytes {
		return nil, fmt.Errorf("rom: too large: %d bytes (max %d)", len(data), maxROMBytes)
	}

	words := make([]uint16, 0, (len(data)+1)/2)
	for i := 0; i < len(data); i += 2 {
		hi := data[i]
		var lo byte
		if i+1 < len(data) {
			lo = data[i+1]
		}
		words = append(words, uint16(hi)<<8|uint16(lo))
	}
	return words, nil
}
