package ui

import (
	"image"
	"image/color"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const (
	glyphWidth  = 10.0
	glyphHeight = 12.0
	barHeight   = 16.0
)

// fixedMeasurer gives every rune glyphWidth pixels and every non-empty
// string glyphHeight pixels.
type fixedMeasurer struct{}

func (fixedMeasurer) MeasureText(_ *Font, s string) (float64, float64) {
	if s == "" {
		return 0, 0
	}
	return float64(utf8.RuneCountInString(s)) * glyphWidth, glyphHeight
}

type rectCall struct {
	tex Texture
	r   Rectangle
}

type textCall struct {
	s    string
	x, y float64
}

// recordingSurface records draw calls in order.
type recordingSurface struct {
	fixedMeasurer
	rects []rectCall
	texts []textCall
}

func (s *recordingSurface) DrawRect(t Texture, r Rectangle) {
	s.rects = append(s.rects, rectCall{tex: t, r: r})
}

func (s *recordingSurface) DrawText(_ *Font, str string, x, y float64) {
	s.texts = append(s.texts, textCall{s: str, x: x, y: y})
}

// namedTexture lets tests tell textures apart in recorded calls.
type namedTexture string

func (namedTexture) Bounds() image.Rectangle {
	return image.Rect(0, 0, 1, 1)
}

var testFace = text.NewGoXFace(basicfont.Face7x13)

func testFont() *Font {
	return &Font{Face: testFace, Color: color.White}
}

func testWindowStyle() WindowStyle {
	return WindowStyle{
		TitleBar:          namedTexture("title"),
		TitleBarInactive:  namedTexture("title-inactive"),
		Border:            namedTexture("border"),
		TitleFont:         testFont(),
		TitleBarThickness: barHeight,
	}
}

func testButtonStyle() ButtonStyle {
	return ButtonStyle{
		Normal:  namedTexture("button"),
		Pressed: namedTexture("button-pressed"),
		Font:    testFont(),
	}
}

func testToolbarStyle() ToolbarStyle {
	return ToolbarStyle{Panel: namedTexture("toolbar"), Font: testFont()}
}

func testTextBoxStyle() TextBoxStyle {
	return TextBoxStyle{Font: testFont()}
}

// newTestController returns a controller with every default registered.
func newTestController(t testing.TB) *Controller {
	t.Helper()
	c := NewController(fixedMeasurer{})
	if err := c.SetWindowDefaults(testWindowStyle()); err != nil {
		t.Fatalf("SetWindowDefaults: %v", err)
	}
	if err := c.SetButtonDefaults(testButtonStyle()); err != nil {
		t.Fatalf("SetButtonDefaults: %v", err)
	}
	if err := c.SetToolbarDefaults(testToolbarStyle()); err != nil {
		t.Fatalf("SetToolbarDefaults: %v", err)
	}
	if err := c.SetTextBoxDefaults(testTextBoxStyle()); err != nil {
		t.Fatalf("SetTextBoxDefaults: %v", err)
	}
	return c
}

func mustWindow(t testing.TB, c *Controller, x, y, w, h float64, title string) *Window {
	t.Helper()
	win, err := c.NewWindow(x, y, w, h, title)
	if err != nil {
		t.Fatalf("NewWindow(%q): %v", title, err)
	}
	c.AddWindow(win)
	return win
}

func mustButton(t testing.TB, c *Controller, x, y, w, h float64, label string) *Button {
	t.Helper()
	b, err := c.NewButton(x, y, w, h, label)
	if err != nil {
		t.Fatalf("NewButton(%q): %v", label, err)
	}
	return b
}

// click runs a full press/release at (x, y) and returns what each Update
// reported.
func click(c *Controller, x, y float64) (pressed, released bool) {
	pressed = c.Update(PointerState{X: x, Y: y, Left: true}, frame)
	released = c.Update(PointerState{X: x, Y: y}, frame)
	return pressed, released
}

const frame = time.Second / 60

// checkTopInvariant fails unless exactly the window at index 0 is top.
func checkTopInvariant(t testing.TB, c *Controller) {
	t.Helper()
	if msg := topInvariantViolation(c); msg != "" {
		t.Fatal(msg)
	}
}

func topInvariantViolation(c *Controller) string {
	seen := make(map[*Window]bool)
	for i, w := range c.windows {
		if seen[w] {
			return "duplicate window in stack"
		}
		seen[w] = true
		if w.top != (i == 0) {
			return "top flag set on wrong window"
		}
	}
	return ""
}
