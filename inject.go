package derma

// syntheticPointerEvent is one queued pointer sample in window coordinates,
// the same space a screenshot shows.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
}

// InjectPress queues a left button press at window coordinates (x, y).
// Queued events are consumed one per tick, ahead of real input.
func (g *Game) InjectPress(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the left button held. Use it between
// InjectPress and InjectRelease to drag.
func (g *Game) InjectMove(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a left button release at (x, y).
func (g *Game) InjectRelease(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a press and a release at the same point. Consumes two
// ticks.
func (g *Game) InjectClick(x, y float64) {
	g.InjectPress(x, y)
	g.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 evenly spaced moves
// and a release at (toX, toY). Frames below 2 are raised to 2.
func (g *Game) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 2)
	g.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		g.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	g.InjectRelease(toX, toY)
}

// Pending returns the number of injected events not yet consumed.
func (g *Game) Pending() int {
	return len(g.injectQueue)
}

// processInjectedInput pops one queued event and feeds it through the
// pointer pipeline. Reports whether an event was consumed.
func (g *Game) processInjectedInput() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	evt := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	g.processPointer(evt.x, evt.y, evt.pressed, evt.button, 0)
	return true
}
