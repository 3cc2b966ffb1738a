package machine

// opSetImmediate implements 6XKK: VX <- KK.
func (m *Machine) opSetImmediate(x, kk byte) error {
	m.v[x] = kk
	return nil
}

// opSet implements 8XY0: VX <- VY.
func (m *Machine) opSet(x, y byte) error {
	m.v[x] = m.v[y]
	return nil
}

// opSetIndex implements ANNN: I <- NNN. Fails InvalidIndexAddress if
// NNN is below the program area, IndexOverflow if at or beyond the top
// of memory.
func (m *Machine) opSetIndex(nnn uint16) error {
	if nnn < ProgramStart {
		return errInvalidIndexAddress(nnn)
	}
	if nnn >= MemorySize {
		return errIndexOverflow(nnn)
	}
	m.i = nnn
	return nil
}

// opAddIndex implements FX1E: I <- I + VX. The post-add target is
// validated (not just the offset in isolation) and stored only if
// in range.
func (m *Machine) opAddIndex(x byte) error {
	target := m.i + uint16(m.v[x])
	if target < ProgramStart {
		return errInvalidIndexAddress(target)
	}
	if target >= MemorySize {
		return errIndexOverflow(target)
	}
	m.i = target
	return nil
}
