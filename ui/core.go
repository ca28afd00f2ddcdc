package ui

// Element represents the basic building block of the UI system.
// Every widget the Controller composites implements this interface.
//
// Positions of elements held by a Window or Toolbar are relative to that
// container; top-level windows and toolbars use screen coordinates.
type Element interface {
	Bounds() Rectangle
	SetPosition(x, y float64)
	SetSize(width, height float64)
	Text() string
	SetText(text string)
	Handlers() *Handlers
	// Draw renders the element with its stored position offset by origin.
	Draw(s Surface, origin Point)
}

// pointerTarget is implemented by every element the Controller can focus.
// The hooks report what they changed so the Controller never needs to know
// the concrete element type.
type pointerTarget interface {
	Element
	pointerPressed(c *Controller, ev PointerEvent) Outcome
	pointerHeld(c *Controller, ev PointerEvent) Outcome
	pointerReleased(c *Controller, ev PointerEvent) Outcome
}

// Point is a position in screen or container coordinates.
type Point struct {
	X, Y float64
}

// Rectangle represents the bounds of an Element
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether (x, y) lies strictly inside the rectangle.
// Points on an edge are outside.
func (r Rectangle) Contains(x, y float64) bool {
	return x > r.X && x < r.X+r.Width &&
		y > r.Y && y < r.Y+r.Height
}

// Translate returns r moved by (dx, dy).
func (r Rectangle) Translate(dx, dy float64) Rectangle {
	r.X += dx
	r.Y += dy
	return r
}

// Origin returns the top-left corner.
func (r Rectangle) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Outcome is a set of changes produced by one pointer transition.
type Outcome uint8

const (
	OutcomeRaised Outcome = 1 << iota
	OutcomeMoved
	OutcomePressed
	OutcomeUnpressed
	OutcomeInvoked

	OutcomeNone Outcome = 0
)

// Has reports whether every bit of o2 is set in o.
func (o Outcome) Has(o2 Outcome) bool {
	return o&o2 == o2 && o2 != OutcomeNone
}

// element carries the state shared by all widgets.
type element struct {
	bounds   Rectangle
	text     string
	handlers Handlers
}

func (e *element) Bounds() Rectangle {
	return e.bounds
}

func (e *element) SetPosition(x, y float64) {
	e.bounds.X = x
	e.bounds.Y = y
}

func (e *element) SetSize(width, height float64) {
	e.bounds.Width = width
	e.bounds.Height = height
}

func (e *element) Text() string {
	return e.text
}

func (e *element) SetText(text string) {
	e.text = text
}

func (e *element) Handlers() *Handlers {
	return &e.handlers
}

func (e *element) pointerPressed(*Controller, PointerEvent) Outcome {
	return OutcomeNone
}

func (e *element) pointerHeld(*Controller, PointerEvent) Outcome {
	return OutcomeNone
}

func (e *element) pointerReleased(*Controller, PointerEvent) Outcome {
	return OutcomeNone
}

// buttonAt returns the first button whose bounds, offset by origin,
// strictly contain (x, y).
func buttonAt(buttons []*Button, origin Point, x, y float64) *Button {
	for _, b := range buttons {
		if b.bounds.Translate(origin.X, origin.Y).Contains(x, y) {
			return b
		}
	}
	return nil
}

func drawChildren(s Surface, origin Point, buttons []*Button, textBoxes []*TextBox) {
	for _, b := range buttons {
		b.Draw(s, origin)
	}
	for _, tb := range textBoxes {
		tb.Draw(s, origin)
	}
}
