package platform

import (
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

// beepAssetPath is where the audio gate looks for its beep sample,
// relative to the process's working directory.
const beepAssetPath = "assets/beep.mp3"

// AudioGate plays a short beep on every 0->nonzero transition of the
// sound timer. It decodes assets/beep.mp3 once at construction; if the
// asset is missing, SetAudio degrades to a no-op rather than failing
// the run.
type AudioGate struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	ready    bool
	wasOn    bool
}

// NewAudioGate opens and decodes the beep asset and initializes the
// speaker. It never returns an error: a host without audio hardware or
// asset files still runs silently.
func NewAudioGate() *AudioGate {
	g := &AudioGate{}

	f, err := os.Open(beepAssetPath)
	if err != nil {
		return g
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		return g
	}

	speaker.Init(format.SampleRate, format.SampleRate.N(format.SampleRate.D(10)))
	g.streamer = streamer
	g.format = format
	g.ready = true
	return g
}

// SetAudio plays the beep once when on transitions from false to true.
// It never blocks the caller; playback happens on beep's own mixer
// goroutine.
func (g *AudioGate) SetAudio(on bool) error {
	if g.ready && on && !g.wasOn {
		if err := g.streamer.Seek(0); err != nil {
			return err
		}
		speaker.Play(g.streamer)
	}
	g.wasOn = on
	return nil
}

// Close releases the decoded stream.
func (g *AudioGate) Close() error {
	if g.streamer == nil {
		return nil
	}
	return g.streamer.Close()
}
