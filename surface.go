package starrating

// Surface is the drawing capability a host hands to Widget.Draw and that
// renderers paint into.
type Surface interface {
	// Size returns the drawable extent of the surface.
	Size() Size

	// FillPolygon fills the closed polygon through points in c using the
	// nonzero winding rule. Implementations may add a hairline outline in the
	// same color to soften antialiasing seams.
	FillPolygon(points []Vec2, c Color)

	// NewLayer returns an offscreen surface of the given pixel size that can
	// later be passed to DrawLayer, or nil when offscreen rendering is not
	// available.
	NewLayer(w, h int) Surface

	// DrawLayer composites a layer obtained from NewLayer into dst, scaling
	// it to fit. It reports false, drawing nothing, when the layer was not
	// created by a compatible surface.
	DrawLayer(layer Surface, dst Rect) bool
}

// disposer is implemented by surfaces that hold GPU or other releasable
// resources.
type disposer interface {
	Dispose()
}

func disposeSurface(s Surface) {
	if d, ok := s.(disposer); ok {
		d.Dispose()
	}
}
