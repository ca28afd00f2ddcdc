package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"
)

// Texture is an image the Surface knows how to stretch over a rectangle.
// *ebiten.Image satisfies it.
type Texture interface {
	Bounds() image.Rectangle
}

// Alignment positions text horizontally inside its element.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

// Font is a draw-time text configuration. The core never mutates it.
type Font struct {
	Face  text.Face
	Color color.Color
	Align Alignment
}

// Measurer reports the pixel size of a string rendered with a font.
type Measurer interface {
	MeasureText(f *Font, s string) (width, height float64)
}

// Surface is the rendering collaborator the widgets draw onto.
type Surface interface {
	Measurer
	DrawRect(t Texture, r Rectangle)
	DrawText(f *Font, s string, x, y float64)
}

// alignedX returns the left edge for a string of width w placed inside
// [left, left+span) with margins applied on the aligned side.
func alignedX(a Alignment, left, span, w, leftMargin, rightMargin float64) float64 {
	switch a {
	case AlignRight:
		return left + span - rightMargin - w
	case AlignCenter:
		return left + (span-w)/2
	}
	return left + leftMargin
}

// TitleMargins offsets the window title inside its title bar.
type TitleMargins struct {
	Top, Left, Right float64
}

// DefaultTitleMargins are applied when a WindowStyle leaves them zero.
var DefaultTitleMargins = TitleMargins{Top: 3, Left: 3, Right: 3}

// WindowStyle is the default look of new windows.
type WindowStyle struct {
	TitleBar          Texture
	TitleBarInactive  Texture
	Border            Texture
	TitleFont         *Font
	TitleBarThickness float64
	Margins           TitleMargins
}

func (s WindowStyle) validate() error {
	switch {
	case s.TitleBar == nil:
		return errors.Wrap(ErrInvalidStyle, "window: nil title bar texture")
	case s.TitleBarInactive == nil:
		return errors.Wrap(ErrInvalidStyle, "window: nil inactive title bar texture")
	case s.Border == nil:
		return errors.Wrap(ErrInvalidStyle, "window: nil border texture")
	case s.TitleBarThickness <= 0:
		return errors.Wrapf(ErrInvalidStyle, "window: title bar thickness %v", s.TitleBarThickness)
	}
	return validateFont("window", s.TitleFont)
}

// ButtonStyle is the default look of new buttons.
type ButtonStyle struct {
	Normal  Texture
	Pressed Texture
	Font    *Font
}

func (s ButtonStyle) validate() error {
	switch {
	case s.Normal == nil:
		return errors.Wrap(ErrInvalidStyle, "button: nil texture")
	case s.Pressed == nil:
		return errors.Wrap(ErrInvalidStyle, "button: nil pressed texture")
	}
	return validateFont("button", s.Font)
}

// ToolbarStyle is the default look of new toolbars.
type ToolbarStyle struct {
	Panel Texture
	Font  *Font
}

func (s ToolbarStyle) validate() error {
	if s.Panel == nil {
		return errors.Wrap(ErrInvalidStyle, "toolbar: nil panel texture")
	}
	return validateFont("toolbar", s.Font)
}

// TextBoxStyle is the default look of new text boxes.
type TextBoxStyle struct {
	Font *Font
}

func (s TextBoxStyle) validate() error {
	return validateFont("text box", s.Font)
}

func validateFont(kind string, f *Font) error {
	if f == nil || f.Face == nil {
		return errors.Wrapf(ErrInvalidStyle, "%s: nil font", kind)
	}
	if f.Color == nil {
		return errors.Wrapf(ErrInvalidStyle, "%s: nil font color", kind)
	}
	return nil
}
