package derma

// Paint redraws the canvas: the faded logo first, then every visible widget
// back to front (reverse store order, so the newest is on top), then the
// resize grip. The selected widget is drawn over a highlight one pixel
// larger than itself.
func (s *Session) Paint(dst Surface) {
	s.paintLogo(dst)

	widgets := s.store.All()
	for i := len(widgets) - 1; i >= 0; i-- {
		w := widgets[i]
		p := w.Base()
		if p.Hidden {
			continue
		}
		if w == s.selection.selected {
			region := p.Bounds().Expand(1)
			dst.Clip(region).FillRect(region, ColorHighlight.WithAlpha(s.pulse.Alpha()))
		}
		w.Draw(dst)
	}

	s.grip.draw(dst)
}

// paintLogo draws the logo near the top-right corner of the canvas.
func (s *Session) paintLogo(dst Surface) {
	if s.skin == nil || s.skin.Logo == nil {
		return
	}
	b := s.skin.Logo.Bounds()
	lw, lh := float64(b.Dx()), float64(b.Dy())
	r := Rect{
		X:      s.canvas.Width - lw - logoMargin,
		Y:      logoTop + logoMargin,
		Width:  lw,
		Height: lh,
	}
	dst.DrawImage(s.skin.Logo, r, logoAlpha)
}
