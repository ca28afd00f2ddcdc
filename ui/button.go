package ui

var _ Element = (*Button)(nil)

// Button is a leaf element with a normal and a pressed texture and a
// centred label.
type Button struct {
	element

	texture        Texture
	pressedTexture Texture
	font           *Font

	// State
	pressed bool
}

// NewButton creates a button with an explicit style. Most callers use
// Controller.NewButton, which applies the registered defaults.
func NewButton(x, y, width, height float64, label string, style ButtonStyle) (*Button, error) {
	if err := style.validate(); err != nil {
		return nil, err
	}
	return &Button{
		element: element{
			bounds: Rectangle{X: x, Y: y, Width: width, Height: height},
			text:   label,
		},
		texture:        style.Normal,
		pressedTexture: style.Pressed,
		font:           style.Font,
	}, nil
}

// Pressed reports whether the button is held down by the pointer.
func (b *Button) Pressed() bool {
	return b.pressed
}

// Font returns the label font.
func (b *Button) Font() *Font {
	return b.font
}

func (b *Button) Draw(s Surface, origin Point) {
	r := b.bounds.Translate(origin.X, origin.Y)

	tex := b.texture
	if b.pressed {
		tex = b.pressedTexture
	}
	s.DrawRect(tex, r)

	if b.text == "" {
		return
	}
	w, h := s.MeasureText(b.font, b.text)
	s.DrawText(b.font, b.text, r.X+(r.Width-w)/2, r.Y+(r.Height-h)/2)
}

func (b *Button) pointerPressed(*Controller, PointerEvent) Outcome {
	b.pressed = true
	return OutcomePressed
}

// The pressed flag is cleared wherever the pointer is released.
func (b *Button) pointerReleased(*Controller, PointerEvent) Outcome {
	if !b.pressed {
		return OutcomeNone
	}
	b.pressed = false
	return OutcomeUnpressed
}
