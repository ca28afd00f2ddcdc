package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"

	"github.com/OpticalFlyer/paneui/ui"
)

// Palette holds the colours of the stock skin.
type Palette struct {
	TitleBar         color.Color
	TitleBarInactive color.Color
	Border           color.Color
	Button           color.Color
	ButtonPressed    color.Color
	Toolbar          color.Color
	Text             color.Color
}

// DefaultPalette is the stock skin.
var DefaultPalette = Palette{
	TitleBar:         colornames.Darkblue,
	TitleBarInactive: colornames.Gray,
	Border:           colornames.Lightgray,
	Button:           colornames.Gray,
	ButtonPressed:    colornames.Darkgray,
	Toolbar:          colornames.Slategray,
	Text:             colornames.White,
}

// ApplyDefaults registers solid colour styles for every ui factory on c.
func ApplyDefaults(c *ui.Controller, tex *Textures, p Palette, face text.Face, titleBarThickness float64) error {
	newFont := func(align ui.Alignment) *ui.Font {
		return &ui.Font{Face: face, Color: p.Text, Align: align}
	}

	err := c.SetWindowDefaults(ui.WindowStyle{
		TitleBar:          tex.Solid(p.TitleBar),
		TitleBarInactive:  tex.Solid(p.TitleBarInactive),
		Border:            tex.Solid(p.Border),
		TitleFont:         newFont(ui.AlignLeft),
		TitleBarThickness: titleBarThickness,
	})
	if err != nil {
		return errors.Wrap(err, "window defaults")
	}

	err = c.SetButtonDefaults(ui.ButtonStyle{
		Normal:  tex.Solid(p.Button),
		Pressed: tex.Solid(p.ButtonPressed),
		Font:    newFont(ui.AlignCenter),
	})
	if err != nil {
		return errors.Wrap(err, "button defaults")
	}

	err = c.SetToolbarDefaults(ui.ToolbarStyle{
		Panel: tex.Solid(p.Toolbar),
		Font:  newFont(ui.AlignLeft),
	})
	if err != nil {
		return errors.Wrap(err, "toolbar defaults")
	}

	err = c.SetTextBoxDefaults(ui.TextBoxStyle{Font: newFont(ui.AlignLeft)})
	if err != nil {
		return errors.Wrap(err, "text box defaults")
	}
	return nil
}
