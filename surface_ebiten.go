package starrating

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whiteSubImage is the source texture for solid fills. The 1px border keeps
// linear filtering from sampling transparent pixels.
var whiteSubImage *ebiten.Image

func ensureWhiteSubImage() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// EbitenSurface adapts an *ebiten.Image (the screen, a sub image of it, or an
// offscreen image) to Surface.
type EbitenSurface struct {
	image    *ebiten.Image
	noLayers bool

	// reused triangulation buffers
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewEbitenSurface wraps img. Drawing coordinates are relative to the
// image's bounds origin, so sub images of the screen behave like standalone
// canvases.
func NewEbitenSurface(img *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{image: img}
}

// DisableLayers makes NewLayer report that offscreen rendering is
// unavailable. Renderers then draw paths directly.
func (s *EbitenSurface) DisableLayers() *EbitenSurface {
	s.noLayers = true
	return s
}

// Image returns the wrapped image.
func (s *EbitenSurface) Image() *ebiten.Image {
	return s.image
}

// Size returns the image bounds as a Size.
func (s *EbitenSurface) Size() Size {
	b := s.image.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (s *EbitenSurface) origin() (float32, float32) {
	m := s.image.Bounds().Min
	return float32(m.X), float32(m.Y)
}

// FillPolygon fills and strokes the polygon through DrawTriangles.
func (s *EbitenSurface) FillPolygon(points []Vec2, c Color) {
	if len(points) < 3 {
		return
	}
	ox, oy := s.origin()

	var path vector.Path
	path.MoveTo(float32(points[0].X)+ox, float32(points[0].Y)+oy)
	for _, p := range points[1:] {
		path.LineTo(float32(p.X)+ox, float32(p.Y)+oy)
	}
	path.Close()

	src := ensureWhiteSubImage()

	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	setVertexColors(s.vertices, c)
	s.image.DrawTriangles(s.vertices, s.indices, src, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.NonZero,
	})

	s.vertices, s.indices = path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], &vector.StrokeOptions{
		Width:      1,
		LineJoin:   vector.LineJoinMiter,
		MiterLimit: 10,
	})
	setVertexColors(s.vertices, c)
	s.image.DrawTriangles(s.vertices, s.indices, src, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// setVertexColors writes a premultiplied solid color into every vertex and
// points its texture coordinates at the white sub image.
func setVertexColors(vs []ebiten.Vertex, c Color) {
	r := float32(clamp01(c.R) * clamp01(c.A))
	g := float32(clamp01(c.G) * clamp01(c.A))
	b := float32(clamp01(c.B) * clamp01(c.A))
	a := float32(clamp01(c.A))
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
}

// NewLayer allocates an offscreen ebiten image.
func (s *EbitenSurface) NewLayer(w, h int) Surface {
	if s.noLayers || w <= 0 || h <= 0 {
		return nil
	}
	return &EbitenSurface{image: ebiten.NewImage(w, h)}
}

// DrawLayer draws an offscreen EbitenSurface scaled into dst.
func (s *EbitenSurface) DrawLayer(layer Surface, dst Rect) bool {
	l, ok := layer.(*EbitenSurface)
	if !ok || l == nil || l.image == nil {
		return false
	}
	b := l.image.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return true
	}
	ox, oy := s.origin()

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(dst.Width/float64(b.Dx()), dst.Height/float64(b.Dy()))
	op.GeoM.Translate(dst.X+float64(ox), dst.Y+float64(oy))
	op.Filter = ebiten.FilterLinear
	s.image.DrawImage(l.image, &op)
	return true
}

// Dispose deallocates the underlying image. The surface should not be used
// after calling Dispose.
func (s *EbitenSurface) Dispose() {
	if s.image != nil {
		s.image.Deallocate()
		s.image = nil
	}
}
