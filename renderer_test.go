package starrating

import (
	"math"
	"testing"
)

// fakeSurface counts the operations a renderer performs on it.
type fakeSurface struct {
	size     Size
	noLayers bool

	fills      int
	lastFill   []Vec2
	layerDraws []Rect
	layers     []*fakeSurface
	disposed   int
}

func (s *fakeSurface) Size() Size { return s.size }

func (s *fakeSurface) FillPolygon(points []Vec2, c Color) {
	s.fills++
	s.lastFill = append(s.lastFill[:0], points...)
}

func (s *fakeSurface) NewLayer(w, h int) Surface {
	if s.noLayers {
		return nil
	}
	l := &fakeSurface{size: Size{Width: float64(w), Height: float64(h)}}
	s.layers = append(s.layers, l)
	return l
}

func (s *fakeSurface) DrawLayer(layer Surface, dst Rect) bool {
	if _, ok := layer.(*fakeSurface); !ok {
		return false
	}
	s.layerDraws = append(s.layerDraws, dst)
	return true
}

func (s *fakeSurface) Dispose() { s.disposed++ }

func nearVec(a, b Vec2) bool {
	const eps = 0.01
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestStarPoints(t *testing.T) {
	got := StarPoints(Rect{Width: 100, Height: 100})
	want := []Vec2{
		{50, 0},
		{79.39, 90.45},
		{2.45, 34.55},
		{97.55, 34.55},
		{20.61, 90.45},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !nearVec(got[i], want[i]) {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestStarPointsInsideRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 60, Height: 30}
	for i, p := range StarPoints(r) {
		if !r.Contains(p.X, p.Y) {
			t.Errorf("point %d = %v outside %v", i, p, r)
		}
	}
	if p := StarPoints(r)[0]; !nearVec(p, Vec2{40, 20}) {
		t.Errorf("top point = %v, want (40, 20)", p)
	}
}

func TestAppendStarPointsReusesBuffer(t *testing.T) {
	buf := make([]Vec2, 0, 5)
	buf = AppendStarPoints(buf, Rect{Width: 10, Height: 10})
	first := &buf[0]
	buf = AppendStarPoints(buf[:0], Rect{Width: 20, Height: 20})
	if &buf[0] != first {
		t.Error("AppendStarPoints should reuse capacity")
	}
	if buf[0] != (Vec2{10, 0}) {
		t.Errorf("top point = %v, want (10, 0)", buf[0])
	}
}

func TestStarRendererCachesPerState(t *testing.T) {
	r := NewStarRenderer()
	s := &fakeSurface{size: Size{300, 50}}
	rect := Rect{Width: 40, Height: 40}

	for i := 1; i <= 5; i++ {
		rect.X = float64(i-1) * 50
		if i <= 2 {
			r.RenderSelected(s, rect, i)
		} else {
			r.RenderNormal(s, rect, i)
		}
	}
	if got := r.Rasterizations(); got != 2 {
		t.Errorf("Rasterizations = %d, want 2", got)
	}
	if len(s.layerDraws) != 5 {
		t.Errorf("layer draws = %d, want 5", len(s.layerDraws))
	}
	if s.fills != 0 {
		t.Errorf("direct fills = %d, want 0", s.fills)
	}

	// Second frame is served entirely from cache.
	for i := 1; i <= 5; i++ {
		r.RenderNormal(s, rect, i)
		r.RenderSelected(s, rect, i)
	}
	if got := r.Rasterizations(); got != 2 {
		t.Errorf("Rasterizations after cached frame = %d, want 2", got)
	}
	for i, l := range s.layers {
		if l.fills != 1 {
			t.Errorf("layer %d fills = %d, want 1", i, l.fills)
		}
	}
}

func TestStarRendererSizeChangeDropsBothLayers(t *testing.T) {
	r := NewStarRenderer()
	s := &fakeSurface{size: Size{300, 50}}

	r.RenderNormal(s, Rect{Width: 40, Height: 40}, 1)
	r.RenderSelected(s, Rect{Width: 40, Height: 40}, 1)
	old := append([]*fakeSurface(nil), s.layers...)

	// Only the normal state is drawn at the new size.
	r.RenderNormal(s, Rect{Width: 30, Height: 30}, 1)
	if got := r.Rasterizations(); got != 3 {
		t.Fatalf("Rasterizations = %d, want 3", got)
	}
	for i, l := range old {
		if l.disposed != 1 {
			t.Errorf("old layer %d disposed %d times, want 1", i, l.disposed)
		}
	}

	// The selected layer must not come back at the old size.
	r.RenderSelected(s, Rect{Width: 30, Height: 30}, 1)
	if got := r.Rasterizations(); got != 4 {
		t.Errorf("Rasterizations = %d, want 4", got)
	}
	last := s.layers[len(s.layers)-1]
	if last.size != (Size{30, 30}) {
		t.Errorf("selected layer size = %v, want 30x30", last.size)
	}
}

func TestStarRendererLayerSizeRoundsUp(t *testing.T) {
	r := NewStarRenderer()
	s := &fakeSurface{}
	r.RenderNormal(s, Rect{Width: 40.2, Height: 39.5}, 1)
	if got := s.layers[0].size; got != (Size{41, 40}) {
		t.Errorf("layer size = %v, want 41x40", got)
	}
	if got := s.layerDraws[0]; got.Width != 40.2 || got.Height != 39.5 {
		t.Errorf("layer drawn into %v, want the star rect", got)
	}
}

func TestStarRendererWithoutLayers(t *testing.T) {
	r := NewStarRenderer()
	s := &fakeSurface{noLayers: true}
	rect := Rect{X: 50, Y: 5, Width: 40, Height: 40}

	r.RenderNormal(s, rect, 2)
	r.RenderNormal(s, rect, 2)
	if s.fills != 2 {
		t.Errorf("direct fills = %d, want 2", s.fills)
	}
	if r.Rasterizations() != 0 {
		t.Errorf("Rasterizations = %d, want 0", r.Rasterizations())
	}
	if !nearVec(s.lastFill[0], Vec2{70, 5}) {
		t.Errorf("top point = %v, want (70, 5) in surface coordinates", s.lastFill[0])
	}
}

func TestStarRendererColorChange(t *testing.T) {
	r := NewStarRenderer()
	s := &fakeSurface{}
	rect := Rect{Width: 40, Height: 40}
	r.RenderNormal(s, rect, 1)
	r.RenderSelected(s, rect, 1)

	r.SetBaseColor(Color{B: 1, A: 1})
	r.RenderNormal(s, rect, 1)
	r.RenderSelected(s, rect, 1)
	if got := r.Rasterizations(); got != 3 {
		t.Errorf("Rasterizations after base color change = %d, want 3", got)
	}

	r.SetSelectedColor(r.SelectedColor())
	r.RenderSelected(s, rect, 1)
	if got := r.Rasterizations(); got != 3 {
		t.Errorf("setting the same color re-rasterized: %d", got)
	}

	r.SetSelectedColor(Color{G: 1, A: 1})
	r.RenderSelected(s, rect, 1)
	if got := r.Rasterizations(); got != 4 {
		t.Errorf("Rasterizations after selected color change = %d, want 4", got)
	}
	if r.BaseColor() != (Color{B: 1, A: 1}) || r.SelectedColor() != (Color{G: 1, A: 1}) {
		t.Errorf("colors = %v / %v", r.BaseColor(), r.SelectedColor())
	}
}

func TestStarRendererSwitchesSurfaceKind(t *testing.T) {
	r := NewStarRenderer()
	rect := Rect{Width: 40, Height: 40}
	r.RenderNormal(&fakeSurface{}, rect, 1)
	r.RenderSelected(&fakeSurface{}, rect, 1)

	img := NewImageSurface(40, 40)
	r.RenderNormal(img, rect, 1)

	painted := 0
	for i := 3; i < len(img.Image().Pix); i += 4 {
		if img.Image().Pix[i] != 0 {
			painted++
		}
	}
	if painted == 0 {
		t.Fatal("star was not painted on the second surface")
	}
	if got := r.Rasterizations(); got != 3 {
		t.Errorf("Rasterizations = %d, want 3", got)
	}

	// The fresh layer is reused on the same kind of surface.
	r.RenderNormal(img, rect, 1)
	if got := r.Rasterizations(); got != 3 {
		t.Errorf("Rasterizations after reuse = %d, want 3", got)
	}
}

func TestStarRendererNilSurface(t *testing.T) {
	r := NewStarRenderer()
	r.RenderNormal(nil, Rect{Width: 40, Height: 40}, 1)
	if r.Rasterizations() != 0 {
		t.Errorf("Rasterizations = %d, want 0", r.Rasterizations())
	}
}

func TestStarRendererPixels(t *testing.T) {
	for _, layers := range []bool{true, false} {
		s := NewImageSurface(50, 50)
		if !layers {
			s.DisableLayers()
		}
		r := NewStarRenderer()
		r.RenderSelected(s, Rect{X: 5, Y: 5, Width: 40, Height: 40}, 1)

		// The pentagram's center is covered twice and must still be filled.
		c := s.Image().RGBAAt(25, 27)
		if c.R < 250 || c.G > 5 || c.B > 5 || c.A < 250 {
			t.Errorf("layers=%v: center pixel = %v, want red", layers, c)
		}
		if c := s.Image().RGBAAt(1, 1); c.A != 0 {
			t.Errorf("layers=%v: corner pixel = %v, want transparent", layers, c)
		}
	}
}

func TestRendererFuncs(t *testing.T) {
	var got []int
	f := RendererFuncs{Selected: func(s Surface, r Rect, index int) { got = append(got, index) }}
	f.RenderSelected(nil, Rect{}, 3)
	f.RenderNormal(nil, Rect{}, 4)
	if len(got) != 1 || got[0] != 3 {
		t.Errorf("calls = %v, want [3]", got)
	}
}
