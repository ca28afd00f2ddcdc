// Package render draws ui elements onto ebiten images.
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/OpticalFlyer/paneui/logger"
	"github.com/OpticalFlyer/paneui/ui"
)

var (
	_ ui.Measurer = Measurer{}
	_ ui.Surface  = (*Screen)(nil)
)

// Measurer measures text with ebiten's text/v2 layout.
type Measurer struct{}

// MeasureText returns the laid-out size of s in f's face. A missing face
// measures as zero.
func (Measurer) MeasureText(f *ui.Font, s string) (float64, float64) {
	if f == nil || f.Face == nil {
		return 0, 0
	}
	return text.Measure(s, f.Face, lineSpacing(f.Face))
}

func lineSpacing(face text.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// Screen is a ui.Surface backed by an ebiten image.
type Screen struct {
	Measurer
	dst *ebiten.Image
}

// NewScreen wraps dst for one frame of drawing.
func NewScreen(dst *ebiten.Image) *Screen {
	return &Screen{dst: dst}
}

// DrawRect stretches t over r. Only *ebiten.Image textures can be drawn.
func (s *Screen) DrawRect(t ui.Texture, r ui.Rectangle) {
	img, ok := t.(*ebiten.Image)
	if !ok || img == nil {
		logger.GetLogger().Debug("skipping non-ebiten texture", "rect", r)
		return
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width/float64(b.Dx()), r.Height/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	s.dst.DrawImage(img, op)
}

// DrawText draws str with its top-left corner at (x, y).
func (s *Screen) DrawText(f *ui.Font, str string, x, y float64) {
	if f == nil || f.Face == nil || str == "" {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.LineSpacing = lineSpacing(f.Face)
	if f.Color != nil {
		op.ColorScale.ScaleWithColor(f.Color)
	}
	text.Draw(s.dst, str, f.Face, op)
}
