package render

import (
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/OpticalFlyer/paneui/logger"
)

// ErrTexture is returned when a texture file cannot be loaded.
var ErrTexture = errors.New("render: texture")

// Textures caches the images used to skin ui elements: 1x1 solid colour
// images stretched over a rectangle, and images decoded from files.
type Textures struct {
	fsys fs.FS

	solids map[color.RGBA]*ebiten.Image
	files  map[string]*ebiten.Image
	mu     sync.RWMutex
}

// NewTextures creates a cache that loads named textures from fsys. fsys
// may be nil when only solid colours are needed.
func NewTextures(fsys fs.FS) *Textures {
	return &Textures{
		fsys:   fsys,
		solids: make(map[color.RGBA]*ebiten.Image),
		files:  make(map[string]*ebiten.Image),
	}
}

// Solid returns a 1x1 image filled with c.
func (t *Textures) Solid(c color.Color) *ebiten.Image {
	key := color.RGBAModel.Convert(c).(color.RGBA)

	t.mu.RLock()
	img, ok := t.solids[key]
	t.mu.RUnlock()
	if ok {
		return img
	}

	img = ebiten.NewImage(1, 1)
	img.Fill(key)

	t.mu.Lock()
	t.solids[key] = img
	t.mu.Unlock()
	return img
}

// Load decodes the named image from the texture filesystem. Decoded
// images are cached by name.
func (t *Textures) Load(name string) (*ebiten.Image, error) {
	t.mu.RLock()
	img, ok := t.files[name]
	t.mu.RUnlock()
	if ok {
		return img, nil
	}

	src, err := t.decode(name)
	if err != nil {
		return nil, err
	}

	img = ebiten.NewImageFromImage(src)

	t.mu.Lock()
	t.files[name] = img
	t.mu.Unlock()

	logger.GetLogger().Debug("texture loaded", "name", name, "bounds", src.Bounds())
	return img, nil
}

func (t *Textures) decode(name string) (image.Image, error) {
	if t.fsys == nil {
		return nil, errors.Wrapf(ErrTexture, "%s: no texture filesystem", name)
	}

	f, err := t.fsys.Open(name)
	if err != nil {
		return nil, errors.Wrapf(ErrTexture, "open %s: %v", name, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(ErrTexture, "decode %s: %v", name, err)
	}
	return src, nil
}
