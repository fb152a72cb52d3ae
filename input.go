package starrating

import "github.com/hajimehoshi/ebiten/v2"

// pointerSource identifies which device owns the tracked pointer.
type pointerSource uint8

const (
	sourceMouse pointerSource = iota
	sourceTouch
	sourceSynthetic
)

// PointerTracker turns Ebitengine's polled mouse and touch state into
// PointerEvents for a single widget. It follows one pointer at a time: the
// left mouse button or the first touch, whichever goes down first. Further
// touches are ignored until the tracked pointer is released.
type PointerTracker struct {
	down   bool
	source pointerSource
	touch  ebiten.TouchID

	// last position in screen coordinates
	lastX, lastY float64

	// set by Cancel; device input is ignored until every button is up
	suppressed bool

	originX, originY float64
	injectQueue      []syntheticPointerEvent
	touchIDs         []ebiten.TouchID
	devices          deviceState
	events           []PointerEvent
}

// NewPointerTracker returns an idle tracker.
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// Down reports whether a pointer is currently being tracked.
func (t *PointerTracker) Down() bool { return t.down }

// Poll samples input once and returns the resulting events in coordinates
// relative to (originX, originY), the widget's position on screen. A queued
// synthetic event, if any, is consumed instead of real input. The returned
// slice is reused by the next call.
func (t *PointerTracker) Poll(originX, originY float64) []PointerEvent {
	t.events = t.events[:0]
	t.originX, t.originY = originX, originY
	if t.processInjected() {
		return t.events
	}
	t.pollDevices()
	return t.events
}

// Cancel aborts the tracked interaction. It returns the cancel event to
// deliver to the widget, or false when nothing was being tracked. Buttons
// still held are ignored until released.
func (t *PointerTracker) Cancel() (PointerEvent, bool) {
	if !t.down {
		return PointerEvent{}, false
	}
	t.down = false
	if t.source != sourceSynthetic {
		t.suppressed = true
	}
	return t.event(PhaseCancel, t.lastX, t.lastY), true
}

func (t *PointerTracker) event(p Phase, sx, sy float64) PointerEvent {
	return PointerEvent{Phase: p, X: sx - t.originX, Y: sy - t.originY}
}

func (t *PointerTracker) emit(p Phase, sx, sy float64) {
	t.events = append(t.events, t.event(p, sx, sy))
}

// process runs the press/move/release edge detection for one sample in
// screen coordinates.
func (t *PointerTracker) process(src pointerSource, id ebiten.TouchID, sx, sy float64, pressed bool) {
	switch {
	case pressed && !t.down:
		t.down = true
		t.source = src
		t.touch = id
		t.lastX, t.lastY = sx, sy
		t.emit(PhaseDown, sx, sy)
	case pressed && t.down:
		if sx != t.lastX || sy != t.lastY {
			t.lastX, t.lastY = sx, sy
			t.emit(PhaseMove, sx, sy)
		}
	case !pressed && t.down:
		t.down = false
		t.lastX, t.lastY = sx, sy
		t.emit(PhaseUp, sx, sy)
	}
}

// touchSample is one active touch as reported by Ebitengine.
type touchSample struct {
	id   ebiten.TouchID
	x, y float64
}

// deviceState is a snapshot of the mouse and touch screen for one poll.
type deviceState struct {
	mouseX, mouseY float64
	mousePressed   bool
	touches        []touchSample
}

func (d *deviceState) idle() bool {
	return !d.mousePressed && len(d.touches) == 0
}

// pollDevices reads the mouse and touch screen and feeds the snapshot to
// applyDevices.
func (t *PointerTracker) pollDevices() {
	mx, my := ebiten.CursorPosition()
	t.devices.mouseX, t.devices.mouseY = float64(mx), float64(my)
	t.devices.mousePressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	t.touchIDs = ebiten.AppendTouchIDs(t.touchIDs[:0])
	t.devices.touches = t.devices.touches[:0]
	for _, id := range t.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		t.devices.touches = append(t.devices.touches, touchSample{id: id, x: float64(tx), y: float64(ty)})
	}
	t.applyDevices(&t.devices)
}

// applyDevices runs one device snapshot through the tracker. While a device
// pointer is tracked only its own device is consulted. A scripted press left
// without a release is cancelled as soon as a real device goes down.
func (t *PointerTracker) applyDevices(d *deviceState) {
	if t.suppressed {
		if d.idle() {
			t.suppressed = false
		}
		return
	}

	if t.down {
		switch t.source {
		case sourceMouse:
			t.process(sourceMouse, 0, d.mouseX, d.mouseY, d.mousePressed)
			return
		case sourceTouch:
			for _, ts := range d.touches {
				if ts.id == t.touch {
					t.process(sourceTouch, ts.id, ts.x, ts.y, true)
					return
				}
			}
			// The touch ended; release where it was last seen.
			t.process(sourceTouch, t.touch, t.lastX, t.lastY, false)
			return
		case sourceSynthetic:
			if d.idle() {
				return
			}
			t.down = false
			t.emit(PhaseCancel, t.lastX, t.lastY)
		}
	}

	if d.mousePressed {
		t.process(sourceMouse, 0, d.mouseX, d.mouseY, true)
		return
	}
	if len(d.touches) > 0 {
		ts := d.touches[0]
		t.process(sourceTouch, ts.id, ts.x, ts.y, true)
	}
}
