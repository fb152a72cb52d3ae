package starrating

import (
	"image/color"
	"math"
)

// Default widget configuration.
const (
	DefaultStarCount = 5
	DefaultGap       = 10.0

	// MinStarSide is the smallest side a derived star size can have. Layouts
	// that cannot fit stars of this size overflow their bounds.
	MinStarSide = 20.0
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorLightGray is the default color of unselected stars.
	ColorLightGray = Color{R: 2.0 / 3.0, G: 2.0 / 3.0, B: 2.0 / 3.0, A: 1}
	// ColorRed is the default color of selected stars.
	ColorRed = Color{R: 1, A: 1}
)

// RGBA8 converts c to a premultiplied color.RGBA.
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(clamp01(c.R*c.A) * 255)),
		G: uint8(math.Round(clamp01(c.G*c.A) * 255)),
		B: uint8(math.Round(clamp01(c.B*c.A) * 255)),
		A: uint8(math.Round(clamp01(c.A) * 255)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D point in surface or widget-local coordinates.
type Vec2 struct {
	X, Y float64
}

// Size is a width and height pair.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width*0.5, Y: r.Y + r.Height*0.5}
}

// Insets are content margins measured inward from each edge.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// Phase identifies the stage of a pointer interaction.
type Phase uint8

const (
	PhaseDown   Phase = iota // pointer pressed
	PhaseMove                // pointer moved while pressed
	PhaseUp                  // pointer released
	PhaseCancel              // interaction aborted by the host
)

func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	case PhaseCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is a single pointer sample in widget-local coordinates.
type PointerEvent struct {
	Phase Phase
	X, Y  float64
}

// State is the pointer tracking state of a Widget.
type State uint8

const (
	StateIdle     State = iota // no pointer interaction in progress
	StateTracking              // a pointer is down and being followed
)

func (s State) String() string {
	if s == StateTracking {
		return "tracking"
	}
	return "idle"
}
