package derma

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a capture of the canvas as it looks at the end of the
// next Draw. Files are named <n>_<label>.png in GameConfig.ScreenshotDir,
// n counting captures of this game.
func (g *Game) Screenshot(label string) {
	g.screenshotQueue = append(g.screenshotQueue, label)
}

func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.screenshotQueue) == 0 {
		return
	}
	labels := g.screenshotQueue
	g.screenshotQueue = g.screenshotQueue[:0]

	dir := g.cfg.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		g.session.notify("Screenshot failed", err.Error())
		return
	}

	c := g.session.Canvas()
	area := image.Rect(int(g.cfg.PaletteWidth), 0, int(g.cfg.PaletteWidth+c.Width), int(c.Height))
	canvas := screen.SubImage(area).(*ebiten.Image)
	pixels := make([]byte, 4*area.Dx()*area.Dy())
	canvas.ReadPixels(pixels)
	img := unpremultiply(pixels, area.Dx(), area.Dy())

	for _, label := range labels {
		g.shots++
		path := filepath.Join(dir, fmt.Sprintf("%03d_%s.png", g.shots, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			g.session.notify("Screenshot failed", err.Error())
			continue
		}
		g.session.debugLogf("screenshot %s", path)
	}
}

// unpremultiply turns ReadPixels output (premultiplied RGBA) into an image
// PNG can store without darkening translucent pixels.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	n := min(len(pixels), len(img.Pix))
	for i := 0; i+3 < n; i += 4 {
		px := color.RGBA{R: pixels[i], G: pixels[i+1], B: pixels[i+2], A: pixels[i+3]}
		c := color.NRGBAModel.Convert(px).(color.NRGBA)
		copy(img.Pix[i:i+4], []byte{c.R, c.G, c.B, c.A})
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("derma: screenshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("derma: screenshot %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel makes label safe for a file name.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' || ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			return r
		}
		return '_'
	}, label)
}
