package platform

// Host combines a Window (input + presentation) and an AudioGate (the
// sound timer's gate) into the full Platform contract the machine
// expects. They are separate types because they wrap independent
// third-party libraries (faiface/pixel vs faiface/beep) and a caller
// driving the machine headlessly (tests, the debug command) only
// needs one or neither.
type Host struct {
	*Window
	*AudioGate
}

// NewHost opens a window and initializes the audio gate, returning a
// ready-to-drive Platform.
func NewHost() (*Host, error) {
	win, err := NewWindow()
	if err != nil {
		return nil, err
	}
	return &Host{Window: win, AudioGate: NewAudioGate()}, nil
}
