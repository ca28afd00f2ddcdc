package main

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/paneui/ui"
)

// pointerSampler turns mouse and touch input into one ui.PointerState per
// frame. A single touch drives the left button; while it lasts the mouse
// is ignored. Additional fingers are ignored.
type pointerSampler struct {
	touches []ebiten.TouchID
	primary ebiten.TouchID
	active  bool
	lastX   float64
	lastY   float64
}

func (p *pointerSampler) sample() ui.PointerState {
	p.touches = ebiten.AppendTouchIDs(p.touches[:0])

	if p.active && !slices.Contains(p.touches, p.primary) {
		// Release where the finger was lifted, not at the cursor.
		p.active = false
		return ui.PointerState{X: p.lastX, Y: p.lastY}
	}
	if !p.active && len(p.touches) > 0 {
		p.primary = p.touches[0]
		p.active = true
	}

	if p.active {
		x, y := ebiten.TouchPosition(p.primary)
		p.lastX, p.lastY = float64(x), float64(y)
		return ui.PointerState{X: p.lastX, Y: p.lastY, Left: true}
	}

	x, y := ebiten.CursorPosition()
	return ui.PointerState{
		X:     float64(x),
		Y:     float64(y),
		Left:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Right: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	}
}
