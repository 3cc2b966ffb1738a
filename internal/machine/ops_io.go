package machine

// opDraw implements DXYN: read N bytes starting at I from memory and
// XOR-blit them at (VX, VY). VF is set to 1 if any set pixel was
// cleared.
func (m *Machine) opDraw(x, y, n byte) error {
	sprite := m.memory.ReadRange(m.i, uint16(n))
	collision := m.display.DrawSprite(int(m.v[x]), int(m.v[y]), sprite, m.config.Quirks.WrapCoordinates)
	if collision {
		m.v[0xF] = 1
	} else {
		m.v[0xF] = 0
	}
	return nil
}

// opSkipIfKey implements EX9E: skip next instruction if the key named
// by VX (masked to a nibble) is pressed.
func (m *Machine) opSkipIfKey(x byte) error {
	if m.keys.IsPressed(m.v[x] & 0xF) {
		m.pc += 2
	}
	return nil
}

// opSkipIfNotKey implements EXA1.
func (m *Machine) opSkipIfNotKey(x byte) error {
	if !m.keys.IsPressed(m.v[x] & 0xF) {
		m.pc += 2
	}
	return nil
}

// opWaitForKey implements FX0A. With KeyWaitEdgeTrigger disabled
// (default), any currently-pressed key completes the wait and is
// stored in VX. With the quirk enabled, the wait completes only on a
// 0->1 transition: a key held since the previous frame does not
// satisfy it. Either way, while no qualifying key is found the PC is
// rewound by 2 so the instruction re-executes next step, creating a
// busy-wait until input arrives.
func (m *Machine) opWaitForKey(x byte) error {
	if m.config.Quirks.KeyWaitEdgeTrigger {
		for k := byte(0); k <= 0xF; k++ {
			if m.keys.IsPressed(k) && !m.prevKeys.IsPressed(k) {
				m.v[x] = k
				return nil
			}
		}
		m.pc -= 2
		return nil
	}

	if key, ok := m.keys.FirstPressed(); ok {
		m.v[x] = key
		return nil
	}
	m.pc -= 2
	return nil
}
