package derma

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Surface is a 2D drawing target in canvas coordinates. Widgets and the
// paint orchestrator draw through it; the host supplies the implementation.
type Surface interface {
	// Bounds returns the drawable area. For a clipped surface this is the
	// clip rectangle.
	Bounds() Rect
	// FillRect fills r with c.
	FillRect(r Rect, c Color)
	// DrawImage draws img stretched to dst with the given opacity.
	// A nil image draws nothing.
	DrawImage(img *ebiten.Image, dst Rect, alpha float64)
	// DrawText draws s with its top-left corner at (x, y).
	DrawText(s string, x, y float64, c Color)
	// MeasureText returns the size of s in the surface's font.
	MeasureText(s string) (w, h float64)
	// Clip returns a surface whose drawing is limited to r intersected
	// with the current bounds.
	Clip(r Rect) Surface
}

var whitePixel *ebiten.Image

// ebitenSurface draws onto an ebiten image. Canvas coordinates are shifted
// by origin, so the canvas can sit beside the palette strip.
type ebitenSurface struct {
	dst    *ebiten.Image
	origin Vec2
	clip   Rect
	font   *Font
}

// NewEbitenSurface wraps dst. Canvas point (0, 0) maps to origin on dst;
// bounds is the canvas area in canvas coordinates.
func NewEbitenSurface(dst *ebiten.Image, origin Vec2, bounds Rect, font *Font) Surface {
	return &ebitenSurface{dst: dst, origin: origin, clip: bounds, font: font}
}

func (s *ebitenSurface) Bounds() Rect {
	return s.clip
}

func (s *ebitenSurface) target() *ebiten.Image {
	r := image.Rect(
		int(s.clip.X+s.origin.X), int(s.clip.Y+s.origin.Y),
		int(s.clip.X+s.clip.Width+s.origin.X), int(s.clip.Y+s.clip.Height+s.origin.Y),
	)
	return s.dst.SubImage(r).(*ebiten.Image)
}

func (s *ebitenSurface) FillRect(r Rect, c Color) {
	if r.Empty() || c.A <= 0 {
		return
	}
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X+s.origin.X, r.Y+s.origin.Y)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	s.target().DrawImage(whitePixel, op)
}

func (s *ebitenSurface) DrawImage(img *ebiten.Image, dst Rect, alpha float64) {
	if img == nil || dst.Empty() || alpha <= 0 {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.Width/float64(b.Dx()), dst.Height/float64(b.Dy()))
	op.GeoM.Translate(dst.X+s.origin.X, dst.Y+s.origin.Y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	s.target().DrawImage(img, op)
}

func (s *ebitenSurface) DrawText(str string, x, y float64, c Color) {
	if s.font == nil || str == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+s.origin.X, y+s.origin.Y)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	op.LineSpacing = s.font.LineHeight()
	text.Draw(s.target(), str, s.font.Face(), op)
}

func (s *ebitenSurface) MeasureText(str string) (float64, float64) {
	if s.font == nil {
		return 0, 0
	}
	return s.font.MeasureString(str)
}

func (s *ebitenSurface) Clip(r Rect) Surface {
	c := *s
	c.clip = s.clip.Intersect(r)
	return &c
}
