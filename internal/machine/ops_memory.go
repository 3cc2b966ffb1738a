package machine

// opLoadDelayTimer implements FX07: VX <- DT.
func (m *Machine) opLoadDelayTimer(x byte) error {
	m.v[x] = m.dt
	return nil
}

// opSetDelayTimer implements FX15: DT <- VX.
func (m *Machine) opSetDelayTimer(x byte) error {
	m.dt = m.v[x]
	return nil
}

// opSetSoundTimer implements FX18: ST <- VX.
func (m *Machine) opSetSoundTimer(x byte) error {
	m.st = m.v[x]
	return nil
}

// opLoadFont implements FX29: I <- FontStart + 5*(VX & 0xF).
func (m *Machine) opLoadFont(x byte) error {
	digit := m.v[x] & 0xF
	m.i = FontStart + uint16(digit)*5
	return nil
}

// opStoreBcd implements FX33: writes the hundreds, tens, and ones
// digits of VX to memory at I, I+1, I+2.
func (m *Machine) opStoreBcd(x byte) error {
	value := m.v[x]
	if err := m.memory.Write(m.i, value/100); err != nil {
		return err
	}
	if err := m.memory.Write(m.i+1, (value/10)%10); err != nil {
		return err
	}
	return m.memory.Write(m.i+2, value%10)
}

// opStoreRegisters implements FX55: copies V0..VX to memory[I..I+X].
// Whether I advances by X+1 afterwards is gated by the
// IncrementIndexOnLoadStore quirk.
func (m *Machine) opStoreRegisters(x byte) error {
	for r := byte(0); r <= x; r++ {
		if err := m.memory.Write(m.i+uint16(r), m.v[r]); err != nil {
			return err
		}
	}
	if m.config.Quirks.IncrementIndexOnLoadStore {
		m.i += uint16(x) + 1
	}
	return nil
}

// opLoadRegisters implements FX65: copies memory[I..I+X] to V0..VX.
// Whether I advances by X+1 afterwards is gated by the
// IncrementIndexOnLoadStore quirk.
func (m *Machine) opLoadRegisters(x byte) error {
	for r := byte(0); r <= x; r++ {
		v, err := m.memory.Read(m.i + uint16(r))
		if err != nil {
			return err
		}
		m.v[r] = v
	}
	if m.config.Quirks.IncrementIndexOnLoadStore {
		m.i += uint16(x) + 1
	}
	return nil
}
