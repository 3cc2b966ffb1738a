package machine

// opClear implements 00E0: blank the framebuffer.
func (m *Machine) opClear() error {
	m.display.Clear()
	return nil
}

// opSyscall implements 0NNN: legacy machine-code call, a no-op on
// modern interpreters.
func (m *Machine) opSyscall() error {
	return nil
}
