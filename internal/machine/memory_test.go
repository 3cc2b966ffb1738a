package machine

import "testing"

func TestMemoryFontPreload(t *testing.T) {
	m := NewMemory()
	for i, want := range fontSet {
		got, err := m.Read(FontStart + uint16(i))
		if err != nil {
			t.Fatalf("read font byte %d: %v", i, err)
		}
		if got != want {
			t.Errorf("font byte %d = 0x%02X, want 0x%02X", i, got, want)
		}
	}
}

func TestMemoryOutOfBound(t *testing.T) {
	m := NewMemory()
	if _, err := m.Read(MemorySize); err == nil {
		t.Error("Read(0x1000) should fail")
	}
	if err := m.Write(MemorySize, 0x42); err == nil {
		t.Error("Write(0x1000, ...) should fail")
	}
	if _, err := m.ReadWord(MemorySize - 1); err == nil {
		t.Error("ReadWord(0x0FFF) should fail, needs two bytes")
	}
}

func TestMemoryWordRoundTrip(t *testing.T) {
	m := NewMemory()
	if err := m.WriteWord(0x300, 0xBEEF); err != nil {
		t.Fatalf("WriteWord: %v", err)
	}
	hi, err := m.Read(0x300)
	if err != nil || hi != 0xBE {
		t.Errorf("high byte = 0x%02X, err=%v, want 0xBE", hi, err)
	}
	lo, err := m.Read(0x301)
	if err != nil || lo != 0xEF {
		t.Errorf("low byte = 0x%02X, err=%v, want 0xEF", lo, err)
	}
	got, err := m.ReadWord(0x300)
	if err != nil || got != 0xBEEF {
		t.Errorf("ReadWord = 0x%04X, err=%v, want 0xBEEF", got, err)
	}
}

func TestMemoryReadRangeClips(t *testing.T) {
	m := NewMemory()
	got := m.ReadRange(0x0FF0, 0x20)
	if len(got) != 0 {
		t.Errorf("ReadRange past end = %d bytes, want 0 (clipped)", len(got))
	}

	in := m.ReadRange(0x200, 16)
	if len(in) != 16 {
		t.Errorf("ReadRange in-bounds = %d bytes, want 16", len(in))
	}
}
