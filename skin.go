package derma

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // asset decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/hajimehoshi/ebiten/v2"
)

// FrameSkin is the bordered appearance shared by every widget of one type:
// a background fill, 2px border fillers tiled along each edge and 3px
// corner caps.
type FrameSkin struct {
	Background Color

	TopLeft, TopRight       *ebiten.Image
	BottomLeft, BottomRight *ebiten.Image
	Top, Bottom             *ebiten.Image
	Left, Right             *ebiten.Image

	// Thumbnail is the 32x32 palette image.
	Thumbnail *ebiten.Image
}

// Skin holds every image asset of the designer.
type Skin struct {
	Logo   *ebiten.Image
	Button FrameSkin
	Panel  FrameSkin
	Frame  FrameSkin
	Label  FrameSkin
}

const (
	fillerSize = 2.0
	cornerSize = 3.0
	logoAlpha  = 0.2
	logoMargin = 24.0
	logoTop    = 16.0
)

var (
	colorButtonBackground = RGB(100, 100, 100)
	colorPanelBackground  = RGB(120, 120, 120)
	colorFrameBackground  = RGB(90, 90, 90)
)

// LoadSkin loads every asset below dir. The first asset that is missing or
// is not an image aborts loading with an error.
func LoadSkin(dir string) (*Skin, error) {
	s := &Skin{}
	var err error
	if s.Logo, err = loadImage(filepath.Join(dir, "logo_256.png")); err != nil {
		return nil, err
	}
	if s.Button, err = loadFrameSkin(dir, "DButton", colorButtonBackground); err != nil {
		return nil, err
	}
	if s.Panel, err = loadFrameSkin(dir, "DPanel", colorPanelBackground); err != nil {
		return nil, err
	}
	if s.Frame, err = loadFrameSkin(dir, "DFrame", colorFrameBackground); err != nil {
		return nil, err
	}
	if s.Label.Thumbnail, err = loadImage(filepath.Join(dir, "DLabel", "dlabel_32.png")); err != nil {
		return nil, err
	}
	return s, nil
}

// loadFrameSkin loads resources/<Type>/<type>_<part>.png for every part.
func loadFrameSkin(dir, typeName string, bg Color) (FrameSkin, error) {
	fs := FrameSkin{Background: bg}
	prefix := filepath.Join(dir, typeName, strings.ToLower(typeName)+"_")
	parts := []struct {
		name string
		dst  **ebiten.Image
	}{
		{"upperleft", &fs.TopLeft},
		{"upperright", &fs.TopRight},
		{"lowerleft", &fs.BottomLeft},
		{"lowerright", &fs.BottomRight},
		{"topfiller", &fs.Top},
		{"bottomfiller", &fs.Bottom},
		{"leftfiller", &fs.Left},
		{"rightfiller", &fs.Right},
		{"32", &fs.Thumbnail},
	}
	for _, part := range parts {
		img, err := loadImage(prefix + part.name + ".png")
		if err != nil {
			return FrameSkin{}, err
		}
		*part.dst = img
	}
	return fs, nil
}

// loadImage reads and decodes an image file. The content is sniffed first so
// a corrupt or misnamed asset is reported as such rather than as a decode
// failure.
func loadImage(path string) (*ebiten.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("derma: load image: %w", err)
	}
	if !filetype.IsImage(data) {
		kind, _ := filetype.Match(data)
		return nil, fmt.Errorf("derma: load image %s: not an image (detected %q)", path, kind.Extension)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("derma: decode image %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// drawFrame paints the bordered appearance into r. A nil skin paints a plain
// background with a one pixel border.
func drawFrame(dst Surface, r Rect, fs *FrameSkin, fallback Color) {
	if fs == nil {
		dst.FillRect(r, RGB(40, 40, 40))
		dst.FillRect(r.Expand(-1), fallback)
		return
	}
	dst.FillRect(r, fs.Background)

	// Top and bottom filler bars
	for i := 0.0; i*fillerSize < r.Width; i++ {
		x := r.X + i*fillerSize
		dst.DrawImage(fs.Top, Rect{X: x, Y: r.Y, Width: fillerSize, Height: fillerSize}, 1)
		dst.DrawImage(fs.Bottom, Rect{X: x, Y: r.Y + r.Height - fillerSize, Width: fillerSize, Height: fillerSize}, 1)
	}

	// Left and right filler bars
	for i := 0.0; i*fillerSize < r.Height; i++ {
		y := r.Y + i*fillerSize
		dst.DrawImage(fs.Left, Rect{X: r.X, Y: y, Width: fillerSize, Height: fillerSize}, 1)
		dst.DrawImage(fs.Right, Rect{X: r.X + r.Width - fillerSize, Y: y, Width: fillerSize, Height: fillerSize}, 1)
	}

	dst.DrawImage(fs.TopLeft, Rect{X: r.X, Y: r.Y, Width: cornerSize, Height: cornerSize}, 1)
	dst.DrawImage(fs.TopRight, Rect{X: r.X + r.Width - cornerSize, Y: r.Y, Width: cornerSize, Height: cornerSize}, 1)
	dst.DrawImage(fs.BottomLeft, Rect{X: r.X, Y: r.Y + r.Height - cornerSize, Width: cornerSize, Height: cornerSize}, 1)
	dst.DrawImage(fs.BottomRight, Rect{X: r.X + r.Width - cornerSize, Y: r.Y + r.Height - cornerSize, Width: cornerSize, Height: cornerSize}, 1)
}

// drawCenteredText draws s centred in r.
func drawCenteredText(dst Surface, r Rect, s string, c Color) {
	w, h := dst.MeasureText(s)
	dst.DrawText(s, r.X+r.Width/2-w/2, r.Y+r.Height/2-h/2, c)
}
