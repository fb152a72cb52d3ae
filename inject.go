package starrating

// syntheticPointerEvent represents a single injected pointer sample in screen
// coordinates, converted to widget coordinates the same way real input is.
type syntheticPointerEvent struct {
	phase            Phase
	screenX, screenY float64
}

func (t *PointerTracker) inject(p Phase, x, y float64) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{phase: p, screenX: x, screenY: y})
}

// InjectPress queues a press at the given screen coordinates. Queued events
// are consumed one per Poll, ahead of real input.
func (t *PointerTracker) InjectPress(x, y float64) { t.inject(PhaseDown, x, y) }

// InjectMove queues a move with the pointer held down. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (t *PointerTracker) InjectMove(x, y float64) { t.inject(PhaseMove, x, y) }

// InjectRelease queues a release at the given screen coordinates.
func (t *PointerTracker) InjectRelease(x, y float64) { t.inject(PhaseUp, x, y) }

// InjectCancel queues a cancellation of the tracked pointer.
func (t *PointerTracker) InjectCancel() { t.inject(PhaseCancel, 0, 0) }

// InjectTap queues a press followed by a release at the same screen
// coordinates. Consumes two polls.
func (t *PointerTracker) InjectTap(x, y float64) {
	t.InjectPress(x, y)
	t.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves and a release at (toX, toY). The sequence consumes
// frames polls; the minimum is 2.
func (t *PointerTracker) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	t.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps+1)
		t.InjectMove(fromX+(toX-fromX)*f, fromY+(toY-fromY)*f)
	}
	t.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (t *PointerTracker) Pending() int {
	return len(t.injectQueue)
}

// processInjected pops one synthetic event and feeds it through the edge
// detector. It reports whether an event was consumed, in which case real
// input is skipped for this poll.
func (t *PointerTracker) processInjected() bool {
	if len(t.injectQueue) == 0 {
		return false
	}
	evt := t.injectQueue[0]
	copy(t.injectQueue, t.injectQueue[1:])
	t.injectQueue = t.injectQueue[:len(t.injectQueue)-1]

	if evt.phase == PhaseCancel {
		if e, ok := t.Cancel(); ok {
			t.events = append(t.events, e)
		}
		return true
	}
	t.process(sourceSynthetic, 0, evt.screenX, evt.screenY, evt.phase != PhaseUp)
	return true
}
