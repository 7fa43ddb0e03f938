package app

import (
	"github.com/Faultbox/ragingsea/internal/engine/input"
)

// orbiter is the part of the orbit controls driven by the pointer.
type orbiter interface {
	Rotate(dx, dy float32, viewportHeight int)
	Pan(dx, dy float32, viewportHeight int)
	Zoom(steps float32)
}

// pointer maps mouse input to orbit controls: left drag rotates, right or
// middle drag pans, the wheel zooms.
type pointer struct {
	controls orbiter
	rotating bool
	panning  bool

	// last cursor position in window coordinates
	x, y int
}

func newPointer(c orbiter) *pointer {
	return &pointer{controls: c}
}

// position returns the last cursor position.
func (p *pointer) position() (int, int) {
	return p.x, p.y
}

func (p *pointer) handle(e input.Event, viewportHeight int) {
	switch e.Type {
	case input.EventMouseDown, input.EventMouseUp:
		down := e.Type == input.EventMouseDown
		switch e.Button {
		case input.ButtonLeft:
			p.rotating = down
		case input.ButtonRight, input.ButtonMiddle:
			p.panning = down
		}

	case input.EventMouseMove:
		p.x, p.y = e.MouseX, e.MouseY
		dx, dy := float32(e.DeltaX), float32(e.DeltaY)
		switch {
		case p.rotating:
			p.controls.Rotate(dx, dy, viewportHeight)
		case p.panning:
			p.controls.Pan(dx, dy, viewportHeight)
		}

	case input.EventMouseWheel:
		p.controls.Zoom(e.Wheel)
	}
}
