package render

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// ErrFont is returned when font data cannot be turned into a face.
var ErrFont = errors.New("render: font")

// DefaultFace is the 7x13 bitmap face used when no size is configured.
func DefaultFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// LoadFace parses TrueType or OpenType data and returns a face of the
// given pixel size.
func LoadFace(data []byte, size float64) (text.Face, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrFont, "invalid size %v", size)
	}

	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(ErrFont, "parse: %v", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrapf(ErrFont, "new face: %v", err)
	}
	return text.NewGoXFace(face), nil
}

// FaceForSize returns the Go Regular face at size, or DefaultFace when
// size is zero.
func FaceForSize(size float64) (text.Face, error) {
	if size == 0 {
		return DefaultFace(), nil
	}
	return LoadFace(goregular.TTF, size)
}
