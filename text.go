package derma

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSize is the label size used by the designer canvas.
const DefaultFontSize = 11

// Font is the face used for widget captions, the palette and the status bar.
type Font struct {
	face       *text.GoTextFace
	lineHeight float64
}

// LoadTTFFont parses TTF or OTF data into a face of the given pixel size.
func LoadTTFFont(data []byte, size float64) (*Font, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("derma: parse font: %w", err)
	}
	f := &Font{face: &text.GoTextFace{Source: src, Size: size}}
	m := f.face.Metrics()
	f.lineHeight = m.HAscent + m.HDescent + m.HLineGap
	return f, nil
}

// LoadFont loads the font file at path. An empty path selects the built-in
// Go Regular face.
func LoadFont(path string, size float64) (*Font, error) {
	if path == "" {
		return LoadTTFFont(goregular.TTF, size)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("derma: load font: %w", err)
	}
	f, err := LoadTTFFont(data, size)
	if err != nil {
		return nil, fmt.Errorf("derma: load font %s: %w", path, err)
	}
	return f, nil
}

// MeasureString returns the size of s laid out with this font.
func (f *Font) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lineHeight)
}

// LineHeight returns the baseline-to-baseline distance.
func (f *Font) LineHeight() float64 { return f.lineHeight }

// Size returns the pixel size the font was loaded at.
func (f *Font) Size() float64 { return f.face.Size }

// Face returns the text/v2 face.
func (f *Font) Face() *text.GoTextFace { return f.face }
