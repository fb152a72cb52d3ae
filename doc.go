// Package starrating is an interactive star-rating widget for [Ebitengine]
// programs and headless image rendering.
//
// A [Widget] draws a horizontal row of stars and lets the user tap or drag
// across them to choose a rating. It owns its geometry, the selected count
// and a small pointer-tracking state machine; everything else comes from the
// host: a [Surface] to draw into, [PointerEvent]s in widget coordinates and
// frame changes.
//
// # Quick start
//
//	rating := starrating.New()
//	rating.SetFrame(starrating.Rect{X: 40, Y: 200, Width: 320, Height: 60})
//	rating.SetListener(
//		func(n int) { fmt.Println("rating:", n) },
//		func(n int) { fmt.Println("done:", n) },
//	)
//
//	tracker := starrating.NewPointerTracker()
//
//	func (g *Game) Update() error {
//		g.rating.Update(g.tracker)
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		f := g.rating.Frame()
//		sub := screen.SubImage(image.Rect(int(f.X), int(f.Y),
//			int(f.X+f.Width), int(f.Y+f.Height))).(*ebiten.Image)
//		g.rating.Draw(starrating.NewEbitenSurface(sub))
//	}
//
// # Rendering
//
// Stars are painted by a [Renderer]. The default [StarRenderer] fills a
// five-pointed star in a base or selected color and keeps one rasterized
// layer per state for the current star size, so steady-state redraws are
// plain image blits. Custom renderers receive the 1-based star index and can
// vary the look per position; [RendererFuncs] adapts two functions.
//
// Two surfaces are provided: [EbitenSurface] for *ebiten.Image targets and
// [ImageSurface], a CPU rasterizer over *image.RGBA built on
// golang.org/x/image/vector.
//
// # Notifications
//
// Rating changes and completed interactions are reported to a [Delegate]
// and to a callback pair set with [Widget.SetListener]. When both are set,
// both are called, delegate first.
//
// [Ebitengine]: https://ebitengine.org
package starrating
