package ui

var _ Element = (*Window)(nil)

// Window is a draggable, closable container with a title bar. Children
// are stored relative to the window origin, so moving the window moves
// them too.
type Window struct {
	element

	titleBar          Texture
	titleBarInactive  Texture
	border            Texture
	titleFont         *Font
	titleBarThickness float64
	margins           TitleMargins

	buttons     []*Button
	textBoxes   []*TextBox
	closeButton *Button

	// Set by the Controller; true only for the window at index 0.
	top bool
}

// NewWindow creates a window with an explicit style and no close button.
// Controller.NewWindow also attaches the close button.
func NewWindow(x, y, width, height float64, title string, style WindowStyle) (*Window, error) {
	if err := style.validate(); err != nil {
		return nil, err
	}
	margins := style.Margins
	if margins == (TitleMargins{}) {
		margins = DefaultTitleMargins
	}
	return &Window{
		element: element{
			bounds: Rectangle{X: x, Y: y, Width: width, Height: height},
			text:   title,
		},
		titleBar:          style.TitleBar,
		titleBarInactive:  style.TitleBarInactive,
		border:            style.Border,
		titleFont:         style.TitleFont,
		titleBarThickness: style.TitleBarThickness,
		margins:           margins,
	}, nil
}

// Top reports whether the window is the front of the Controller's stack.
func (w *Window) Top() bool {
	return w.top
}

func (w *Window) TitleBarThickness() float64 {
	return w.titleBarThickness
}

func (w *Window) Margins() TitleMargins {
	return w.margins
}

func (w *Window) SetMargins(m TitleMargins) {
	w.margins = m
}

// TitleBar returns the title strip in screen coordinates.
func (w *Window) TitleBar() Rectangle {
	r := w.bounds
	r.Height = w.titleBarThickness
	return r
}

// CloseButton returns the button attached by Controller.NewWindow, or nil.
func (w *Window) CloseButton() *Button {
	return w.closeButton
}

// AddButton appends b. Its position is read as window-relative.
func (w *Window) AddButton(b *Button) {
	w.buttons = append(w.buttons, b)
}

// AddTextBox appends tb. Its position is read as window-relative.
func (w *Window) AddTextBox(tb *TextBox) {
	w.textBoxes = append(w.textBoxes, tb)
}

func (w *Window) Buttons() []*Button {
	return w.buttons
}

func (w *Window) TextBoxes() []*TextBox {
	return w.textBoxes
}

// ButtonAt returns the first button strictly containing the screen point
// (x, y), or nil.
func (w *Window) ButtonAt(x, y float64) *Button {
	return buttonAt(w.buttons, w.bounds.Origin(), x, y)
}

func (w *Window) contains(e Element) bool {
	if e == Element(w) {
		return true
	}
	for _, b := range w.buttons {
		if e == Element(b) {
			return true
		}
	}
	for _, tb := range w.textBoxes {
		if e == Element(tb) {
			return true
		}
	}
	return false
}

func (w *Window) Draw(s Surface, origin Point) {
	r := w.bounds.Translate(origin.X, origin.Y)
	s.DrawRect(w.border, r)

	bar := r
	bar.Height = w.titleBarThickness
	if w.top {
		s.DrawRect(w.titleBar, bar)
	} else {
		s.DrawRect(w.titleBarInactive, bar)
	}

	if w.text != "" {
		tw, _ := s.MeasureText(w.titleFont, w.text)
		x := alignedX(w.titleFont.Align, r.X, r.Width, tw, w.margins.Left, w.margins.Right)
		s.DrawText(w.titleFont, w.text, x, r.Y+w.margins.Top)
	}

	drawChildren(s, r.Origin(), w.buttons, w.textBoxes)
}

// pointerHeld drags the window by the pointer delta while the left button
// is held and the previous position was on the title bar.
func (w *Window) pointerHeld(_ *Controller, ev PointerEvent) Outcome {
	if ev.Button != ButtonLeft || !w.TitleBar().Contains(ev.Prev.X, ev.Prev.Y) {
		return OutcomeNone
	}
	dx, dy := ev.Cur.X-ev.Prev.X, ev.Cur.Y-ev.Prev.Y
	if dx == 0 && dy == 0 {
		return OutcomeNone
	}
	w.bounds = w.bounds.Translate(dx, dy)
	return OutcomeMoved
}
