package ui

var _ Element = (*Toolbar)(nil)

// Toolbar is a fixed panel of buttons and text boxes. Children are stored
// relative to the toolbar origin.
type Toolbar struct {
	element

	panel     Texture
	font      *Font
	buttons   []*Button
	textBoxes []*TextBox
}

// NewToolbar creates a toolbar with an explicit style.
func NewToolbar(x, y, width, height float64, title string, style ToolbarStyle) (*Toolbar, error) {
	if err := style.validate(); err != nil {
		return nil, err
	}
	return &Toolbar{
		element: element{
			bounds: Rectangle{X: x, Y: y, Width: width, Height: height},
			text:   title,
		},
		panel: style.Panel,
		font:  style.Font,
	}, nil
}

// AddButton appends b. Its position is read as toolbar-relative.
func (t *Toolbar) AddButton(b *Button) {
	t.buttons = append(t.buttons, b)
}

// AddTextBox appends tb. Its position is read as toolbar-relative.
func (t *Toolbar) AddTextBox(tb *TextBox) {
	t.textBoxes = append(t.textBoxes, tb)
}

func (t *Toolbar) Font() *Font {
	return t.font
}

func (t *Toolbar) Buttons() []*Button {
	return t.buttons
}

func (t *Toolbar) TextBoxes() []*TextBox {
	return t.textBoxes
}

// ButtonAt returns the first button strictly containing the screen point
// (x, y), or nil.
func (t *Toolbar) ButtonAt(x, y float64) *Button {
	return buttonAt(t.buttons, t.bounds.Origin(), x, y)
}

func (t *Toolbar) Draw(s Surface, origin Point) {
	r := t.bounds.Translate(origin.X, origin.Y)
	s.DrawRect(t.panel, r)
	drawChildren(s, r.Origin(), t.buttons, t.textBoxes)
}
