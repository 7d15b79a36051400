package derma

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	toastHold     = 2.5 // seconds fully visible
	toastFade     = 0.5 // seconds fading out
	toastMaxQueue = 8
	toastPadding  = 8.0
)

var (
	colorToastBackground = RGB(120, 30, 30)
	colorToastBorder     = RGB(220, 80, 80)
)

type toastMessage struct {
	title, message string
}

// Toast is a Notifier that shows one message at a time at the bottom of the
// canvas, fading it out after a short hold. Messages that arrive while one is
// shown are queued. Every message is also logged to stderr.
type Toast struct {
	current toastMessage
	showing bool
	held    float64
	fade    *gween.Tween
	alpha   float64
	queue   []toastMessage
}

// NewToast creates an idle toast.
func NewToast() *Toast {
	return &Toast{}
}

// Notify shows or queues a message.
func (t *Toast) Notify(title, message string) {
	stderrNotifier{}.Notify(title, message)
	m := toastMessage{title: title, message: message}
	if !t.showing {
		t.show(m)
		return
	}
	if len(t.queue) < toastMaxQueue {
		t.queue = append(t.queue, m)
	}
}

func (t *Toast) show(m toastMessage) {
	t.current = m
	t.showing = true
	t.held = 0
	t.alpha = 1
	t.fade = gween.New(1, 0, toastFade, ease.InQuad)
}

// Update advances the hold and fade timers by dt seconds.
func (t *Toast) Update(dt float64) {
	if !t.showing {
		return
	}
	if t.held < toastHold {
		t.held += dt
		return
	}
	val, finished := t.fade.Update(float32(dt))
	t.alpha = float64(val)
	if !finished {
		return
	}
	t.showing = false
	t.alpha = 0
	if len(t.queue) > 0 {
		next := t.queue[0]
		t.queue = t.queue[1:]
		t.show(next)
	}
}

// Visible reports whether a message is on screen.
func (t *Toast) Visible() bool {
	return t.showing
}

// Text returns the message on screen as "title: message", or "".
func (t *Toast) Text() string {
	if !t.showing {
		return ""
	}
	return t.current.title + ": " + t.current.message
}

// Pending returns the number of queued messages.
func (t *Toast) Pending() int {
	return len(t.queue)
}

// Draw paints the message centred at the bottom of dst.
func (t *Toast) Draw(dst Surface) {
	if !t.showing || t.alpha <= 0 {
		return
	}
	s := t.Text()
	w, h := dst.MeasureText(s)
	b := dst.Bounds()
	box := Rect{
		X:      b.X + (b.Width-w)/2 - toastPadding,
		Y:      b.Y + b.Height - h - 3*toastPadding,
		Width:  w + 2*toastPadding,
		Height: h + 2*toastPadding,
	}
	dst.FillRect(box, colorToastBorder.WithAlpha(t.alpha))
	dst.FillRect(box.Expand(-1), colorToastBackground.WithAlpha(t.alpha))
	dst.DrawText(s, box.X+toastPadding, box.Y+toastPadding, ColorText.WithAlpha(t.alpha))
}
