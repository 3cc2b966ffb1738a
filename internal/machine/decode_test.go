package machine

import "testing"

func TestDecodeTable(t *testing.T) {
	cases := []struct {
		word uint16
		want Instruction
	}{
		{0x00E0, Instruction{Op: OpClear}},
		{0x00EE, Instruction{Op: OpReturn}},
		{0x0ABC, Instruction{Op: OpSyscall, NNN: 0xABC}},
		{0x1ABC, Instruction{Op: OpJump, NNN: 0xABC}},
		{0x2ABC, Instruction{Op: OpCall, NNN: 0xABC}},
		{0x3ABC, Instruction{Op: OpSkipIfEqualImm, X: 0xA, KK: 0xBC}},
		{0x4ABC, Instruction{Op: OpSkipIfNotEqualImm, X: 0xA, KK: 0xBC}},
		{0x5AB0, Instruction{Op: OpSkipIfEqual, X: 0xA, Y: 0xB}},
		{0x6ABC, Instruction{Op: OpSetImmediate, X: 0xA, KK: 0xBC}},
		{0x7ABC, Instruction{Op: OpAddImmediate, X: 0xA, KK: 0xBC}},
		{0x8AB0, Instruction{Op: OpSet, X: 0xA, Y: 0xB}},
		{0x8AB1, Instruction{Op: OpOr, X: 0xA, Y: 0xB}},
		{0x8AB2, Instruction{Op: OpAnd, X: 0xA, Y: 0xB}},
		{0x8AB3, Instruction{Op: OpXor, X: 0xA, Y: 0xB}},
		{0x8AB4, Instruction{Op: OpAdd, X: 0xA, Y: 0xB}},
		{0x8AB5, Instruction{Op: OpSubtract, X: 0xA, Y: 0xB}},
		{0x8AB6, Instruction{Op: OpShiftRight, X: 0xA, Y: 0xB}},
		{0x8AB7, Instruction{Op: OpSubtractNegate, X: 0xA, Y: 0xB}},
		{0x8ABE, Instruction{Op: OpShiftLeft, X: 0xA, Y: 0xB}},
		{0x9AB0, Instruction{Op: OpSkipIfNotEqual, X: 0xA, Y: 0xB}},
		{0xAABC, Instruction{Op: OpSetIndex, NNN: 0xABC}},
		{0xBABC, Instruction{Op: OpJumpOffset, X: 0xA, NNN: 0xABC}},
		{0xCABC, Instruction{Op: OpRnd, X: 0xA, KK: 0xBC}},
		{0xDABC, Instruction{Op: OpDraw, X: 0xA, Y: 0xB, N: 0xC}},
		{0xEA9E, Instruction{Op: OpSkipIfKey, X: 0xA}},
		{0xEAA1, Instruction{Op: OpSkipIfNotKey, X: 0xA}},
		{0xFA07, Instruction{Op: OpLoadDelayTimer, X: 0xA}},
		{0xFA0A, Instruction{Op: OpWaitForKey, X: 0xA}},
		{0xFA15, Instruction{Op: OpSetDelayTimer, X: 0xA}},
		{0xFA18, Instruction{Op: OpSetSoundTimer, X: 0xA}},
		{0xFA1E, Instruction{Op: OpAddIndex, X: 0xA}},
		{0xFA29, Instruction{Op: OpLoadFont, X: 0xA}},
		{0xFA33, Instruction{Op: OpStoreBcd, X: 0xA}},
		{0xFA55, Instruction{Op: OpStoreRegisters, X: 0xA}},
		{0xFA65, Instruction{Op: OpLoadRegisters, X: 0xA}},
	}

	for _, c := range cases {
		got, err := Decode(c.word)
		if err != nil {
			t.Fatalf("decode(0x%04X) returned error: %v", c.word, err)
		}
		if got != c.want {
			t.Errorf("decode(0x%04X) = %+v, want %+v", c.word, got, c.want)
		}
	}
}

func TestDecodeInvalidInstruction(t *testing.T) {
	invalid := []uint16{0x5AB1, 0x8AB8, 0x9AB1, 0xE000, 0xF000, 0xFFFF}
	for _, word := range invalid {
		if _, err := Decode(word); err == nil {
			t.Errorf("decode(0x%04X) = nil error, want InvalidInstruction", word)
		} else if me, ok := err.(*Error); !ok || me.Kind != InvalidInstruction {
			t.Errorf("decode(0x%04X) error = %v, want InvalidInstruction", word, err)
		}
	}
}

func TestRoundTripDecodeEncode(t *testing.T) {
	words := []uint16{
		0x00E0, 0x00EE, 0x1234, 0x2345, 0x3456, 0x4567, 0x5670,
		0x6789, 0x789A, 0x8AB0, 0x8AB1, 0x8AB2, 0x8AB3, 0x8AB4,
		0x8AB5, 0x8AB6, 0x8AB7, 0x8ABE, 0x9AB0, 0xA123, 0xB456,
		0xC789, 0xDABC, 0xEA9E, 0xEAA1, 0xFA07, 0xFA0A, 0xFA15,
		0xFA18, 0xFA1E, 0xFA29, 0xFA33, 0xFA55, 0xFA65,
	}
	for _, word := range words {
		inst, err := Decode(word)
		if err != nil {
			t.Fatalf("decode(0x%04X) returned error: %v", word, err)
		}
		if got := Encode(inst); got != word {
			t.Errorf("encode(decode(0x%04X)) = 0x%04X, want 0x%04X", word, got, word)
		}
	}
}
