package starrating

import "math"

// Widget is a horizontal row of stars that the user taps or drags across to
// pick a rating. It is driven by its host: the host reports frame changes
// through SetFrame, forwards pointer samples to HandlePointer, and calls Draw
// with a surface covering the widget whenever NeedsDisplay reports true.
//
// A Widget is not safe for concurrent use; like the rest of the host GUI it
// lives on a single goroutine.
type Widget struct {
	// Configuration
	starCount         int
	gap               float64
	insets            Insets
	explicitSize      bool
	renderer          Renderer
	cancelOutsideDrag bool
	touchGate         bool

	// Geometry (derived)
	frame     Rect
	starSize  Size
	rowStartX float64
	rowEndX   float64

	// Interaction
	selected     int
	state        State
	needsDisplay bool

	obs observers
}

// New creates a widget with five stars, a gap of 10, no insets, the default
// StarRenderer and the touch gate enabled.
func New() *Widget {
	w := &Widget{
		starCount:    DefaultStarCount,
		gap:          DefaultGap,
		renderer:     NewStarRenderer(),
		touchGate:    true,
		needsDisplay: true,
	}
	w.layout()
	return w
}

// --- Configuration ---

// StarCount returns the number of stars in the row.
func (w *Widget) StarCount() int { return w.starCount }

// SetStarCount changes the number of stars. A selection larger than the new
// count is reduced to it without a change notification.
func (w *Widget) SetStarCount(n int) {
	if w.starCount == n {
		return
	}
	w.starCount = n
	if w.selected > max(n, 0) {
		w.selected = max(n, 0)
	}
	w.layout()
	w.needsDisplay = true
}

// Gap returns the horizontal distance between adjacent stars.
func (w *Widget) Gap() float64 { return w.gap }

// SetGap changes the distance between adjacent stars.
func (w *Widget) SetGap(gap float64) {
	if w.gap == gap {
		return
	}
	w.gap = gap
	w.layout()
	w.needsDisplay = true
}

// Insets returns the content insets used when deriving the star size.
func (w *Widget) Insets() Insets { return w.insets }

// SetInsets changes the content insets.
func (w *Widget) SetInsets(in Insets) {
	if w.insets == in {
		return
	}
	w.insets = in
	w.layout()
	w.needsDisplay = true
}

// StarSize returns the size each star is drawn at.
func (w *Widget) StarSize() Size { return w.starSize }

// SetStarSize fixes the star size. Passing nil returns to deriving the size
// from the frame, gap, insets and star count.
func (w *Widget) SetStarSize(size *Size) {
	if size != nil {
		w.explicitSize = true
		w.starSize = *size
	} else {
		w.explicitSize = false
	}
	w.layout()
	w.needsDisplay = true
}

// Renderer returns the renderer used to paint stars.
func (w *Widget) Renderer() Renderer { return w.renderer }

// SetRenderer replaces the star renderer. nil restores a default
// StarRenderer.
func (w *Widget) SetRenderer(r Renderer) {
	if r == nil {
		r = NewStarRenderer()
	}
	w.renderer = r
	w.needsDisplay = true
}

// CancelOutsideDrag reports whether dragging outside the widget ends the
// interaction.
func (w *Widget) CancelOutsideDrag() bool { return w.cancelOutsideDrag }

// SetCancelOutsideDrag controls whether a drag leaving the widget's bounds
// is treated as a release. When disabled, moves outside the bounds are
// ignored and the interaction continues.
func (w *Widget) SetCancelOutsideDrag(enabled bool) { w.cancelOutsideDrag = enabled }

// TouchGate reports whether pointer events are filtered by tracking state.
func (w *Widget) TouchGate() bool { return w.touchGate }

// SetTouchGate enables or disables the tracking gate. With the gate on (the
// default) an interaction starts only with a press inside the bounds and
// later events are ignored while idle. With the gate off every event is
// mapped as it arrives, regardless of state or bounds.
func (w *Widget) SetTouchGate(enabled bool) {
	w.touchGate = enabled
	if !enabled {
		w.state = StateIdle
	}
}

// SetDelegate sets the object notified of rating changes. nil removes it.
func (w *Widget) SetDelegate(d Delegate) { w.obs.delegate = d }

// Delegate returns the current delegate, or nil.
func (w *Widget) Delegate() Delegate { return w.obs.delegate }

// SetListener sets the callback pair notified of rating changes. It is
// independent of the delegate; when both are set the delegate is called
// first. Either function may be nil.
func (w *Widget) SetListener(changed, done func(count int)) {
	w.obs.callback = DelegateFuncs{Changed: changed, Done: done}
}

// --- Geometry ---

// Frame returns the widget's rectangle in its host's coordinates.
func (w *Widget) Frame() Rect { return w.frame }

// SetFrame moves or resizes the widget and recomputes the star size.
func (w *Widget) SetFrame(r Rect) {
	if w.frame == r {
		return
	}
	w.frame = r
	w.layout()
	w.needsDisplay = true
}

// Bounds returns the widget's rectangle in its own coordinate space; the
// origin is always (0, 0).
func (w *Widget) Bounds() Rect {
	return Rect{Width: w.frame.Width, Height: w.frame.Height}
}

// Row returns the horizontal extent of the star row in widget coordinates.
// end lies one gap past the last star; pointer positions up to end still
// select the last star.
func (w *Widget) Row() (start, end float64) {
	return w.rowStartX, w.rowEndX
}

// layout derives the star size from the frame and places the row centered
// within it. Draw places the row again against the actual surface size.
func (w *Widget) layout() {
	if !w.explicitSize {
		w.starSize = derivedStarSize(w.frame.Size(), w.insets, w.gap, w.starCount)
	}
	w.placeRow(w.frame.Width)
}

// derivedStarSize computes the square star size that fits n stars and their
// gaps inside size minus insets, never smaller than MinStarSide.
func derivedStarSize(size Size, in Insets, gap float64, n int) Size {
	availH := size.Height - in.Top - in.Bottom
	availW := math.Inf(1)
	if n > 0 {
		availW = (size.Width - gap*float64(n) - in.Left - in.Right) / float64(n)
	}
	side := math.Max(MinStarSide, math.Min(availH, availW))
	return Size{Width: side, Height: side}
}

func (w *Widget) placeRow(width float64) {
	n := float64(max(w.starCount, 0))
	w.rowStartX = (width - n*w.starSize.Width - math.Max(n-1, 0)*w.gap) / 2
	w.rowEndX = w.rowStartX + n*(w.starSize.Width+w.gap)
}

// --- Drawing ---

// NeedsDisplay reports whether the widget changed since the last Draw.
func (w *Widget) NeedsDisplay() bool { return w.needsDisplay }

// SetNeedsDisplay forces the next NeedsDisplay call to report true.
func (w *Widget) SetNeedsDisplay() { w.needsDisplay = true }

// Draw paints the row of stars centered on s. A nil surface skips the frame
// and leaves all state untouched.
func (w *Widget) Draw(s Surface) {
	if s == nil {
		Logger().Debug("starrating: no surface, frame skipped")
		return
	}
	if !w.explicitSize {
		w.starSize = derivedStarSize(w.frame.Size(), w.insets, w.gap, w.starCount)
	}
	size := s.Size()
	w.placeRow(size.Width)
	x := w.rowStartX
	y := (size.Height - w.starSize.Height) / 2
	for i := 1; i <= w.starCount; i++ {
		r := Rect{X: x, Y: y, Width: w.starSize.Width, Height: w.starSize.Height}
		if i <= w.selected {
			w.renderer.RenderSelected(s, r, i)
		} else {
			w.renderer.RenderNormal(s, r, i)
		}
		x += w.starSize.Width + w.gap
	}
	w.needsDisplay = false
}

// --- Interaction ---

// Selected returns the number of selected stars, counted from the left.
func (w *Widget) Selected() int { return w.selected }

// State returns the pointer tracking state.
func (w *Widget) State() State { return w.state }

// HandlePointer feeds one pointer sample, in widget coordinates, through the
// tracking state machine.
func (w *Widget) HandlePointer(e PointerEvent) {
	if !w.touchGate {
		w.determine(e.X, e.Phase == PhaseUp || e.Phase == PhaseCancel)
		return
	}

	switch e.Phase {
	case PhaseDown:
		if !w.Bounds().Contains(e.X, e.Y) {
			return
		}
		w.state = StateTracking
		w.determine(e.X, false)
	case PhaseMove:
		if w.state != StateTracking {
			return
		}
		if w.Bounds().Contains(e.X, e.Y) {
			w.determine(e.X, false)
		} else if w.cancelOutsideDrag {
			w.state = StateIdle
			w.determine(e.X, true)
		}
	case PhaseUp, PhaseCancel:
		if w.state != StateTracking {
			return
		}
		w.state = StateIdle
		w.determine(e.X, true)
	}
}

// Update polls t for pointer input and handles every resulting event.
func (w *Widget) Update(t *PointerTracker) {
	for _, e := range t.Poll(w.frame.X, w.frame.Y) {
		w.HandlePointer(e)
	}
}

// determine maps a horizontal position to a star count. Positions left of
// the row clear the selection; positions past the row's end are ignored.
func (w *Widget) determine(x float64, done bool) {
	if x < w.rowStartX {
		w.setSelected(0)
	} else if x <= w.rowEndX {
		count := w.starCount
		if step := w.starSize.Width + w.gap; step > 0 {
			count = min(int(math.Floor((x-w.rowStartX)/step))+1, w.starCount)
		}
		w.setSelected(count)
	}
	if done {
		Logger().Debug("starrating: rating done", "count", w.selected)
		w.obs.done(w.selected)
	}
}

func (w *Widget) setSelected(count int) {
	count = min(max(count, 0), max(w.starCount, 0))
	if count == w.selected {
		return
	}
	w.selected = count
	w.needsDisplay = true
	Logger().Debug("starrating: rating changed", "count", count)
	w.obs.changed(count)
}
