package main

import (
	"github.com/bradford-hamilton/chippy/cmd"
	"github.com/faiface/pixel/pixelgl"
)

func main() {
	// pixelgl needs access to the main thread, so the cobra command tree
	// (and with it, the windowed run command) executes from inside
	// pixelgl.Run.
	pixelgl.Run(cmd.Execute)
}
