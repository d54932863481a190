package shell

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jason-s-yu/solitaire/engine"
)

// rawInput is the physical device state for one frame.
type rawInput struct {
	pointer engine.Point
	left    bool
	escape  bool
	space   bool
}

func pollDevice() rawInput {
	x, y := ebiten.CursorPosition()
	return rawInput{
		pointer: engine.Pt(x, y),
		left:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		escape:  ebiten.IsKeyPressed(ebiten.KeyEscape),
		space:   ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

// Poller turns raw device state into per-frame edge states.
type Poller struct {
	last engine.Input
}

// Next derives this frame's input from the device state and the last frame.
func (p *Poller) Next(raw rawInput) engine.Input {
	in := engine.Input{
		Pointer: raw.pointer,
		Left:    engine.NextButtonState(p.last.Left, raw.left),
		Escape:  engine.NextButtonState(p.last.Escape, raw.escape),
		Space:   engine.NextButtonState(p.last.Space, raw.space),
	}
	p.last = in
	return in
}
