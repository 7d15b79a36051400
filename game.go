package derma

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameConfig configures the designer window.
type GameConfig struct {
	Title string
	// Window size in pixels; the canvas is what remains after the palette
	// strip and the status bar.
	Width, Height int
	PaletteWidth  float64
	// DoubleClickInterval is the longest gap between two clicks on the same
	// widget that still counts as a double click.
	DoubleClickInterval time.Duration
	// TickInterval is the period of Session.Tick.
	TickInterval time.Duration
	// ScreenshotDir is where scripted screenshots are written.
	ScreenshotDir string
}

const (
	defaultPaletteWidth = 120
	defaultTickInterval = 20 * time.Millisecond
	defaultDoubleClick  = 400 * time.Millisecond
)

var colorWindowBackground = RGB(60, 60, 60)

func (c *GameConfig) applyDefaults() {
	if c.Title == "" {
		c.Title = "Derma Designer"
	}
	if c.Width <= 0 {
		c.Width = 1024
	}
	if c.Height <= 0 {
		c.Height = 700
	}
	if c.PaletteWidth <= 0 {
		c.PaletteWidth = defaultPaletteWidth
	}
	if c.DoubleClickInterval <= 0 {
		c.DoubleClickInterval = defaultDoubleClick
	}
	if c.TickInterval <= 0 {
		c.TickInterval = defaultTickInterval
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
}

// Game hosts a Session in an ebiten window: it samples the mouse and
// keyboard, turns them into designer events and draws the palette, the
// canvas and the status bar.
type Game struct {
	session *Session
	palette *Palette
	font    *Font
	cfg     GameConfig

	toast  *Toast
	status *StatusBar

	// OnExport receives the generated Lua of the export command. An error
	// is shown to the user.
	OnExport func(code string) error

	ticks int64

	// pointer sampling
	prevPressed   [3]bool
	cursorX       float64
	cursorY       float64
	pressTarget   Widget
	pressOnCanvas bool
	lastClick     Widget
	lastClickTick int64

	injectQueue     []syntheticPointerEvent
	screenshotQueue []string
	shots           int
	runner          *TestRunner
}

// NewGame creates the host for session. The palette lists palette's
// registry; font may be nil, in which case no text is drawn.
func NewGame(session *Session, palette *Palette, font *Font, cfg GameConfig) *Game {
	cfg.applyDefaults()
	if palette != nil {
		palette.Width = cfg.PaletteWidth
	} else {
		palette = NewPalette(session.Registry(), cfg.PaletteWidth)
	}
	g := &Game{
		session:       session,
		palette:       palette,
		font:          font,
		cfg:           cfg,
		toast:         NewToast(),
		status:        NewStatusBar(),
		cursorX:       -1,
		cursorY:       -1,
		lastClickTick: math.MinInt64 / 2,
	}
	session.SetCanvasSize(float64(cfg.Width)-cfg.PaletteWidth, float64(cfg.Height)-statusHeight)
	session.SetNotifier(g.toast)
	session.SetInspector(g.status)
	session.AddTickFunc(g.toast.Update)
	session.AddTickFunc(g.status.Update)
	return g
}

// Session returns the hosted session.
func (g *Game) Session() *Session { return g.session }

// Palette returns the widget palette.
func (g *Game) Palette() *Palette { return g.palette }

// Toast returns the on-canvas notifier.
func (g *Game) Toast() *Toast { return g.toast }

// Status returns the status bar.
func (g *Game) Status() *StatusBar { return g.status }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.update(true)
	return nil
}

// update runs one tick. Real input is polled only when poll is set and no
// injected event is pending.
func (g *Game) update(poll bool) {
	g.ticks++
	if g.runner != nil {
		g.runner.step(g)
	}
	if !g.processInjectedInput() && poll {
		g.pollInput()
	}
	g.session.Tick(g.cfg.TickInterval.Seconds())
}

var mouseButtons = [...]struct {
	ours   MouseButton
	ebiten ebiten.MouseButton
}{
	{MouseButtonLeft, ebiten.MouseButtonLeft},
	{MouseButtonRight, ebiten.MouseButtonRight},
	{MouseButtonMiddle, ebiten.MouseButtonMiddle},
}

func (g *Game) pollInput() {
	mods := currentModifiers()
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	g.moveTo(x, y, mods)
	for _, b := range mouseButtons {
		g.processButton(x, y, ebiten.IsMouseButtonPressed(b.ebiten), b.ours, mods)
	}
	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		g.processWheel(x, y, wx, wy, mods)
	}
	g.pollKeys(mods)
}

func currentModifiers() KeyModifiers {
	var m KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= ModMeta
	}
	return m
}

// toCanvas converts window coordinates to canvas coordinates.
func (g *Game) toCanvas(x, y float64) (float64, float64) {
	return x - g.cfg.PaletteWidth, y
}

func (g *Game) overPalette(x float64) bool {
	return x < g.cfg.PaletteWidth
}

// processPointer feeds one sampled pointer state: motion first, then the
// button edge.
func (g *Game) processPointer(x, y float64, pressed bool, button MouseButton, mods KeyModifiers) {
	g.moveTo(x, y, mods)
	g.processButton(x, y, pressed, button, mods)
}

func (g *Game) moveTo(x, y float64, mods KeyModifiers) {
	if x == g.cursorX && y == g.cursorY {
		return
	}
	g.cursorX, g.cursorY = x, y
	cx, cy := g.toCanvas(x, y)
	g.session.PointerMove(PointerEvent{X: cx, Y: cy, Modifiers: mods})
}

func (g *Game) processButton(x, y float64, pressed bool, button MouseButton, mods KeyModifiers) {
	was := g.prevPressed[button]
	g.prevPressed[button] = pressed
	if pressed == was {
		return
	}
	cx, cy := g.toCanvas(x, y)
	ev := PointerEvent{X: cx, Y: cy, Button: button, Modifiers: mods}

	if pressed {
		g.pressOnCanvas = false
		if g.overPalette(x) {
			if button == MouseButtonLeft {
				if name := g.palette.ItemAt(x, y); name != "" {
					g.palette.Arm(name)
				}
			}
			return
		}
		if armed := g.palette.Armed(); armed != "" && button == MouseButtonLeft {
			g.palette.Disarm()
			if w, err := g.session.New(armed, cx, cy); err == nil {
				g.session.Select(w)
			}
			return
		}
		g.session.PointerDown(ev)
		g.pressTarget = g.session.store.FirstAt(cx, cy, notHidden)
		g.pressOnCanvas = true
		return
	}

	g.session.PointerUp(ev)
	if !g.pressOnCanvas || g.overPalette(x) {
		return
	}
	g.pressOnCanvas = false
	target := g.session.store.FirstAt(cx, cy, notHidden)
	if target == nil || target != g.pressTarget {
		return
	}
	g.session.Click(ev)
	if button != MouseButtonLeft {
		return
	}
	if target == g.lastClick && g.ticks-g.lastClickTick <= g.doubleClickTicks() {
		g.session.DoubleClick(ev)
		g.lastClick = nil
		return
	}
	g.lastClick = target
	g.lastClickTick = g.ticks
}

func (g *Game) doubleClickTicks() int64 {
	return int64(g.cfg.DoubleClickInterval / g.cfg.TickInterval)
}

func (g *Game) processWheel(x, y, wx, wy float64, mods KeyModifiers) {
	if g.overPalette(x) {
		g.palette.Scroll(wy)
		return
	}
	cx, cy := g.toCanvas(x, y)
	g.session.Wheel(PointerEvent{X: cx, Y: cy, WheelX: wx, WheelY: wy, Modifiers: mods})
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorWindowBackground.toRGBA())

	canvas := g.session.Canvas()
	surf := NewEbitenSurface(screen, Vec2{X: g.cfg.PaletteWidth}, canvas, g.font)
	g.session.Paint(surf)
	g.toast.Draw(surf)

	pal := NewEbitenSurface(screen, Vec2{}, Rect{Width: g.cfg.PaletteWidth, Height: float64(g.cfg.Height)}, g.font)
	g.palette.Draw(pal)

	bar := NewEbitenSurface(screen, Vec2{X: g.cfg.PaletteWidth, Y: canvas.Height}, Rect{Width: canvas.Width, Height: statusHeight}, g.font)
	g.status.Draw(bar)

	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game with a fixed logical size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(int(math.Round(float64(time.Second) / float64(g.cfg.TickInterval))))
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("derma: run: %w", err)
	}
	return nil
}

// --- Keyboard ---

// Command is an editing action bound to a key.
type Command uint8

const (
	CmdDelete         Command = iota // remove the selection
	CmdExport                        // generate Lua and hand it to OnExport
	CmdBringToFront                  // raise the selection
	CmdSendToBack                    // lower the selection
	CmdToggleLock                    // lock or unlock the selection
	CmdToggleCenter                  // centre the selection in its container
	CmdToggleHidden                  // hide the selection in the designer
	CmdToggleVisible                 // emit SetVisible(false) or not
	CmdParent                        // parent the selection to the widget under the cursor
	CmdNudgeLeft                     // glide the selection one pixel left
	CmdNudgeRight                    // glide the selection one pixel right
	CmdNudgeUp                       // glide the selection one pixel up
	CmdNudgeDown                     // glide the selection one pixel down
	CmdCancel                        // clear filter, armed type and selection
	CmdPlace                         // create the first palette entry at the canvas centre
)

var commandNames = [...]string{
	CmdDelete:        "delete",
	CmdExport:        "export",
	CmdBringToFront:  "front",
	CmdSendToBack:    "back",
	CmdToggleLock:    "lock",
	CmdToggleCenter:  "center",
	CmdToggleHidden:  "hide",
	CmdToggleVisible: "visible",
	CmdParent:        "parent",
	CmdNudgeLeft:     "left",
	CmdNudgeRight:    "right",
	CmdNudgeUp:       "up",
	CmdNudgeDown:     "down",
	CmdCancel:        "cancel",
	CmdPlace:         "place",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// ParseCommand returns the command with the given name.
func ParseCommand(name string) (Command, bool) {
	for i, n := range commandNames {
		if n == name {
			return Command(i), true
		}
	}
	return 0, false
}

type keyBinding struct {
	key  ebiten.Key
	ctrl bool
	cmd  Command
}

var keyBindings = []keyBinding{
	{ebiten.KeyDelete, false, CmdDelete},
	{ebiten.KeyE, true, CmdExport},
	{ebiten.KeyPageUp, false, CmdBringToFront},
	{ebiten.KeyPageDown, false, CmdSendToBack},
	{ebiten.KeyL, true, CmdToggleLock},
	{ebiten.KeyM, true, CmdToggleCenter},
	{ebiten.KeyH, true, CmdToggleHidden},
	{ebiten.KeyV, true, CmdToggleVisible},
	{ebiten.KeyP, true, CmdParent},
	{ebiten.KeyArrowLeft, false, CmdNudgeLeft},
	{ebiten.KeyArrowRight, false, CmdNudgeRight},
	{ebiten.KeyArrowUp, false, CmdNudgeUp},
	{ebiten.KeyArrowDown, false, CmdNudgeDown},
	{ebiten.KeyEscape, false, CmdCancel},
	{ebiten.KeyEnter, false, CmdPlace},
}

func (g *Game) pollKeys(mods KeyModifiers) {
	ctrl := mods&(ModCtrl|ModMeta) != 0
	for _, kb := range keyBindings {
		if kb.ctrl == ctrl && inpututil.IsKeyJustPressed(kb.key) {
			g.Execute(kb.cmd)
		}
	}
	if ctrl {
		return
	}
	if chars := ebiten.AppendInputChars(nil); len(chars) > 0 {
		g.palette.SetFilter(g.palette.Filter() + string(chars))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if f := []rune(g.palette.Filter()); len(f) > 0 {
			g.palette.SetFilter(string(f[:len(f)-1]))
		}
	}
}

// Execute runs cmd. Reports whether it changed anything.
func (g *Game) Execute(cmd Command) bool {
	s := g.session
	switch cmd {
	case CmdExport:
		g.export()
		return true
	case CmdCancel:
		g.palette.SetFilter("")
		g.palette.Disarm()
		return s.Deselect()
	case CmdPlace:
		items := g.palette.Items()
		if len(items) == 0 {
			return false
		}
		c := s.Canvas()
		w, err := s.New(items[0], c.Width/2, c.Height/2)
		if err != nil {
			return false
		}
		g.palette.SetFilter("")
		s.Select(w)
		return true
	}

	w := s.Selected()
	if w == nil {
		return false
	}
	p := w.Base()
	switch cmd {
	case CmdDelete:
		return s.Remove(w)
	case CmdBringToFront:
		s.BringToFront(w)
	case CmdSendToBack:
		s.SendToBack(w)
	case CmdToggleLock:
		p.Locked = !p.Locked
	case CmdToggleCenter:
		p.Centered = !p.Centered
		if p.Centered {
			p.centerIn(s.container(w))
		}
	case CmdToggleHidden:
		p.Hidden = !p.Hidden
		if p.Hidden {
			p.dragging = false
		}
	case CmdToggleVisible:
		p.Visible = !p.Visible
	case CmdParent:
		cx, cy := g.toCanvas(g.cursorX, g.cursorY)
		parent := s.store.FirstAt(cx, cy, func(c Widget) bool { return c != w && notHidden(c) })
		return s.SetParent(w, parent) == nil
	case CmdNudgeLeft:
		return s.Nudge(-1, 0)
	case CmdNudgeRight:
		return s.Nudge(1, 0)
	case CmdNudgeUp:
		return s.Nudge(0, -1)
	case CmdNudgeDown:
		return s.Nudge(0, 1)
	default:
		return false
	}
	s.RefreshProperties()
	s.Repaint()
	return true
}

func (g *Game) export() {
	code := g.session.Export()
	if g.OnExport == nil {
		return
	}
	if err := g.OnExport(code); err != nil {
		g.session.notify("Export failed", err.Error())
		return
	}
	g.session.notify("Exported", fmt.Sprintf("%d widgets", g.session.store.Len()))
}
