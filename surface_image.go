package starrating

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// ImageSurface is a CPU Surface backed by an *image.RGBA. It needs no
// graphics driver, which makes it suitable for headless rendering and tests.
type ImageSurface struct {
	img      *image.RGBA
	ras      *vector.Rasterizer
	noLayers bool
}

// NewImageSurface allocates a transparent w×h surface.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// NewImageSurfaceFrom wraps an existing image. Drawing coordinates are
// relative to img.Bounds().Min.
func NewImageSurfaceFrom(img *image.RGBA) *ImageSurface {
	return &ImageSurface{img: img}
}

// DisableLayers makes NewLayer report that offscreen rendering is
// unavailable.
func (s *ImageSurface) DisableLayers() *ImageSurface {
	s.noLayers = true
	return s
}

// Image returns the backing image.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Size returns the image bounds as a Size.
func (s *ImageSurface) Size() Size {
	b := s.img.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// FillPolygon rasterizes the polygon with antialiasing. Accumulated coverage
// saturates, so overlapping windings fill like the nonzero rule.
func (s *ImageSurface) FillPolygon(points []Vec2, c Color) {
	if len(points) < 3 {
		return
	}
	b := s.img.Bounds()
	if b.Empty() {
		return
	}
	if s.ras == nil {
		s.ras = vector.NewRasterizer(b.Dx(), b.Dy())
	} else {
		s.ras.Reset(b.Dx(), b.Dy())
	}
	s.ras.DrawOp = xdraw.Over
	s.ras.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		s.ras.LineTo(float32(p.X), float32(p.Y))
	}
	s.ras.ClosePath()
	s.ras.Draw(s.img, b, image.NewUniform(c.RGBA8()), image.Point{})
}

// NewLayer allocates an offscreen ImageSurface.
func (s *ImageSurface) NewLayer(w, h int) Surface {
	if s.noLayers || w <= 0 || h <= 0 {
		return nil
	}
	return NewImageSurface(w, h)
}

// DrawLayer composites an ImageSurface layer into dst. Layers whose pixel
// size matches dst are copied directly; others are resampled.
func (s *ImageSurface) DrawLayer(layer Surface, dst Rect) bool {
	l, ok := layer.(*ImageSurface)
	if !ok || l == nil {
		return false
	}
	src := l.img.Bounds()
	origin := s.img.Bounds().Min
	x0 := origin.X + int(math.Round(dst.X))
	y0 := origin.Y + int(math.Round(dst.Y))
	w := int(math.Round(dst.Width))
	h := int(math.Round(dst.Height))
	if w <= 0 || h <= 0 {
		return true
	}
	dr := image.Rect(x0, y0, x0+w, y0+h)
	if w == src.Dx() && h == src.Dy() {
		xdraw.Draw(s.img, dr, l.img, src.Min, xdraw.Over)
		return true
	}
	xdraw.CatmullRom.Scale(s.img, dr, l.img, src, xdraw.Over, nil)
	return true
}
