package ui

import "fmt"

// MouseButton names the pointer button driving a press-hold-release
// sequence.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonRight
)

func (b MouseButton) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	}
	return fmt.Sprintf("MouseButton(%d)", int(b))
}

// PointerState is one per-frame sample of the pointer device.
type PointerState struct {
	X, Y  float64
	Left  bool
	Right bool
}

// Down reports whether b is held in the sample.
func (p PointerState) Down(b MouseButton) bool {
	switch b {
	case ButtonLeft:
		return p.Left
	case ButtonRight:
		return p.Right
	}
	return false
}

// PointerEvent is what element hooks see for one transition.
type PointerEvent struct {
	Button MouseButton
	Prev   PointerState
	Cur    PointerState
}

type transition int

const (
	transitionNone transition = iota
	transitionPress
	transitionHold
	transitionRelease
)

func (t transition) String() string {
	switch t {
	case transitionPress:
		return "press"
	case transitionHold:
		return "hold"
	case transitionRelease:
		return "release"
	}
	return "none"
}

// classify compares two samples for button b.
func classify(b MouseButton, prev, cur PointerState) transition {
	was, is := prev.Down(b), cur.Down(b)
	switch {
	case !was && is:
		return transitionPress
	case was && is:
		return transitionHold
	case was && !is:
		return transitionRelease
	}
	return transitionNone
}

// slot maps a transition of b to the event slot it emits.
func slot(b MouseButton, t transition) EventKind {
	var left, right EventKind
	switch t {
	case transitionPress:
		left, right = LeftClick, RightClick
	case transitionHold:
		left, right = LeftHold, RightHold
	case transitionRelease:
		left, right = LeftRelease, RightRelease
	default:
		return -1
	}
	if b == ButtonRight {
		return right
	}
	return left
}

func doubleClickSlot(b MouseButton) EventKind {
	if b == ButtonRight {
		return RightDoubleClick
	}
	return LeftDoubleClick
}
