// Package render draws an observer, its obstacles, and the computed
// visibility polygon to a PNG, and can print that PNG inline in an iTerm2
// terminal for quick debugging.
package render

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/brinkwell/visibility/core"
)

// Padding around the scene bounds so obstacles at the edge aren't clipped.
const padding = 40

// Scene is everything needed to render one visibility query and its result.
type Scene struct {
	Observer  core.Vector
	Obstacles []core.Segment
	Polygon   []core.Vector
}

func (s Scene) bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)

	update := func(p core.Vector) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	update(s.Observer)
	for _, seg := range s.Obstacles {
		update(seg.A)
		update(seg.B)
	}
	for _, p := range s.Polygon {
		update(p)
	}
	return
}

// context builds a gg.Context whose coordinate space matches the scene's,
// flipped so +y is up and scaled/translated so the whole scene fits with
// padding on all sides.
func (s Scene) context(scale float64) *gg.Context {
	minX, minY, maxX, maxY := s.bounds()

	width := int(scale*(maxX-minX)) + padding*2
	height := int(scale*(maxY-minY)) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)
	return c
}

// Draw renders the scene at the given scale (pixels per unit).
func (s Scene) Draw(scale float64) *gg.Context {
	c := s.context(scale)
	c.SetLineWidth(2 / scale)

	if len(s.Polygon) > 0 {
		c.MoveTo(s.Polygon[0].X, s.Polygon[0].Y)
		for _, p := range s.Polygon[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGBA(1, 0.85, 0, 0.35)
		c.FillPreserve()
		c.SetRGB(0.8, 0.6, 0)
		c.Stroke()
	}

	c.SetRGB(0.1, 0.1, 0.1)
	for _, seg := range s.Obstacles {
		c.DrawLine(seg.A.X, seg.A.Y, seg.B.X, seg.B.Y)
		c.Stroke()
	}

	c.SetRGB(0.8, 0, 0)
	c.DrawCircle(s.Observer.X, s.Observer.Y, 3/scale)
	c.Fill()

	return c
}

// SavePNG draws the scene and writes it to path.
func (s Scene) SavePNG(path string, scale float64) error {
	return s.Draw(scale).SavePNG(path)
}

// Print draws the scene, saves it to a temp file, and prints it inline in
// an iTerm2 terminal via imgcat. For debugging only.
func (s Scene) Print(scale float64) error {
	const tmp = "/tmp/visibility_scene.png"
	if err := s.SavePNG(tmp, scale); err != nil {
		return err
	}
	imgcat.CatFile(tmp, os.Stdout)
	return nil
}
