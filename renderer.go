package starrating

import "math"

// Renderer paints a single star into a rectangle of a surface. index is the
// 1-based position of the star in the row, so custom renderers can vary the
// look per star (a gradient rating, for example).
type Renderer interface {
	RenderSelected(s Surface, r Rect, index int)
	RenderNormal(s Surface, r Rect, index int)
}

// RendererFuncs adapts a pair of functions to Renderer. A nil function draws
// nothing for that state.
type RendererFuncs struct {
	Selected func(s Surface, r Rect, index int)
	Normal   func(s Surface, r Rect, index int)
}

// RenderSelected calls f.Selected.
func (f RendererFuncs) RenderSelected(s Surface, r Rect, index int) {
	if f.Selected != nil {
		f.Selected(s, r, index)
	}
}

// RenderNormal calls f.Normal.
func (f RendererFuncs) RenderNormal(s Surface, r Rect, index int) {
	if f.Normal != nil {
		f.Normal(s, r, index)
	}
}

// StarPoints returns the five vertices of the star inscribed in r, in the
// order they are connected.
func StarPoints(r Rect) []Vec2 {
	return AppendStarPoints(make([]Vec2, 0, 5), r)
}

// AppendStarPoints appends the star vertices for r to dst. The outline starts
// at the top point and visits every second vertex of the regular pentagon,
// which yields a self-intersecting pentagram.
func AppendStarPoints(dst []Vec2, r Rect) []Vec2 {
	c := r.Center()
	rx := r.Width * 0.5
	ry := r.Height * 0.5
	dst = append(dst, Vec2{X: c.X, Y: c.Y - ry})
	const theta = 2 * math.Pi * (2.0 / 5.0)
	for i := 1; i < 5; i++ {
		a := float64(i) * theta
		dst = append(dst, Vec2{
			X: c.X + rx*math.Sin(a),
			Y: c.Y - ry*math.Cos(a),
		})
	}
	return dst
}

// StarRenderer is the default Renderer. It draws a filled five-pointed star
// and keeps one rasterized layer per state for the most recently requested
// star size. All stars of a widget share one size, so a single slot covers
// the steady state; any size change drops both layers, as does drawing to a
// surface that cannot composite the cached layers.
type StarRenderer struct {
	baseColor     Color
	selectedColor Color

	cacheSize      Size
	selectedLayer  Surface
	normalLayer    Surface
	rasterizations int

	points []Vec2 // reused vertex buffer
}

// NewStarRenderer returns a renderer drawing light gray normal stars and red
// selected stars.
func NewStarRenderer() *StarRenderer {
	return &StarRenderer{
		baseColor:     ColorLightGray,
		selectedColor: ColorRed,
		points:        make([]Vec2, 0, 5),
	}
}

// BaseColor returns the color of unselected stars.
func (r *StarRenderer) BaseColor() Color { return r.baseColor }

// SelectedColor returns the color of selected stars.
func (r *StarRenderer) SelectedColor() Color { return r.selectedColor }

// SetBaseColor changes the color of unselected stars and drops the cached
// normal layer.
func (r *StarRenderer) SetBaseColor(c Color) {
	if r.baseColor == c {
		return
	}
	r.baseColor = c
	disposeSurface(r.normalLayer)
	r.normalLayer = nil
}

// SetSelectedColor changes the color of selected stars and drops the cached
// selected layer.
func (r *StarRenderer) SetSelectedColor(c Color) {
	if r.selectedColor == c {
		return
	}
	r.selectedColor = c
	disposeSurface(r.selectedLayer)
	r.selectedLayer = nil
}

// Rasterizations returns how many times a star has been rasterized into an
// offscreen layer.
func (r *StarRenderer) Rasterizations() int { return r.rasterizations }

// Reset drops both cached layers.
func (r *StarRenderer) Reset() {
	disposeSurface(r.selectedLayer)
	disposeSurface(r.normalLayer)
	r.selectedLayer = nil
	r.normalLayer = nil
	r.cacheSize = Size{}
}

// RenderSelected draws a selected star into rect.
func (r *StarRenderer) RenderSelected(s Surface, rect Rect, index int) {
	r.render(s, rect, r.selectedColor, &r.selectedLayer, "selected")
}

// RenderNormal draws an unselected star into rect.
func (r *StarRenderer) RenderNormal(s Surface, rect Rect, index int) {
	r.render(s, rect, r.baseColor, &r.normalLayer, "normal")
}

func (r *StarRenderer) render(s Surface, rect Rect, c Color, slot *Surface, state string) {
	if s == nil {
		return
	}
	size := rect.Size()
	if size != r.cacheSize {
		r.Reset()
		r.cacheSize = size
	}
	if *slot != nil {
		if s.DrawLayer(*slot, rect) {
			return
		}
		// The cached layers belong to another kind of surface.
		Logger().Debug("starrating: cached layer rejected by surface, re-rasterizing", "state", state)
		r.Reset()
		r.cacheSize = size
	}

	w := int(math.Ceil(size.Width))
	h := int(math.Ceil(size.Height))
	layer := s.NewLayer(w, h)
	if layer == nil {
		Logger().Debug("starrating: offscreen layer unavailable, drawing path",
			"state", state, "width", size.Width, "height", size.Height)
		r.points = AppendStarPoints(r.points[:0], rect)
		s.FillPolygon(r.points, c)
		return
	}

	r.points = AppendStarPoints(r.points[:0], Rect{Width: float64(w), Height: float64(h)})
	layer.FillPolygon(r.points, c)
	r.rasterizations++
	*slot = layer
	Logger().Debug("starrating: rasterized star",
		"state", state, "width", w, "height", h, "passes", r.rasterizations)
	s.DrawLayer(layer, rect)
}
