// seehuhn.de/go/sprite - procedural game sprites
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package canvas implements a transparent RGBA drawing surface with
// anti-aliased shape primitives.
package canvas

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/sprite/raster"
	"seehuhn.de/go/sprite/shape"
)

// Op is a compositing operator.
type Op int

const (
	// Replace writes the source colour, weighted by coverage, in place of
	// the destination. Drawing with a transparent colour erases.
	Replace Op = iota

	// Over composites the source over the destination.
	Over
)

func (op Op) String() string {
	switch op {
	case Replace:
		return "replace"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}

// Style describes how a closed shape is painted.
// A nil colour means that the corresponding part is not drawn.
type Style struct {
	Fill    color.Color
	Outline color.Color

	// Width is the outline width in user-space units. The outline lies
	// inside the shape's bounding box.
	Width float64
}

// Filled returns a style which only fills a shape.
func Filled(c color.Color) Style {
	return Style{Fill: c}
}

// Canvas is a drawing surface backed by an *image.RGBA.
// All drawing coordinates are in user space, which is mapped to pixels
// by the transformation set with SetTransform.
type Canvas struct {
	// Op is the compositing operator used by all drawing methods.
	Op Op

	img  *image.RGBA
	r    *raster.Rasteriser
	ctm  matrix.Matrix
	clip rect.Rect
}

// New allocates a fully transparent w×h canvas.
func New(w, h int) *Canvas {
	c := &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		ctm: matrix.Identity,
	}
	c.clip = c.full()
	c.r = raster.NewRasteriser(c.clip)
	return c
}

// Image returns the pixels drawn so far.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Bounds returns the pixel bounds of the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// SetTransform sets the map from user space to pixel coordinates.
func (c *Canvas) SetTransform(m matrix.Matrix) {
	c.ctm = m
}

// SetClip restricts drawing to the pixels in r.
func (c *Canvas) SetClip(r image.Rectangle) {
	r = r.Intersect(c.img.Rect)
	c.clip = rect.Rect{
		LLx: float64(r.Min.X),
		LLy: float64(r.Min.Y),
		URx: float64(r.Max.X),
		URy: float64(r.Max.Y),
	}
}

// ResetClip allows drawing on the whole canvas again.
func (c *Canvas) ResetClip() {
	c.clip = c.full()
}

func (c *Canvas) full() rect.Rect {
	return rect.Rect{URx: float64(c.img.Rect.Dx()), URy: float64(c.img.Rect.Dy())}
}

// Ellipse draws the ellipse inscribed in box.
func (c *Canvas) Ellipse(box rect.Rect, st Style) {
	c.shape(box, st, shape.Ellipse)
}

// Rectangle draws box.
func (c *Canvas) Rectangle(box rect.Rect, st Style) {
	c.shape(box, st, shape.Rectangle)
}

// PieSlice draws the sector of the ellipse inscribed in box which runs
// clockwise from angle start to angle end, in degrees.
func (c *Canvas) PieSlice(box rect.Rect, start, end float64, st Style) {
	c.shape(box, st, func(b rect.Rect) *path.Data {
		return shape.PieSlice(b, start, end)
	})
}

// shape fills the outline of box and then strokes its inset outline, so that
// the stroke stays inside box.
func (c *Canvas) shape(box rect.Rect, st Style, outline func(rect.Rect) *path.Data) {
	if st.Fill != nil {
		c.FillPath(outline(box), raster.NonZero, st.Fill)
	}
	if st.Outline == nil || st.Width <= 0 {
		return
	}
	inner := shape.Inset(box, st.Width/2)
	if shape.Empty(inner) {
		// the outline covers the whole shape
		c.FillPath(outline(box), raster.NonZero, st.Outline)
		return
	}
	c.StrokePath(outline(inner), st.Outline, st.Width, graphics.LineCapButt, graphics.LineJoinMiter)
}

// Polygon draws the closed polygon through pts. The outline is centred on
// the polygon edges.
func (c *Canvas) Polygon(pts []vec.Vec2, st Style) {
	if len(pts) < 2 {
		return
	}
	p := shape.Polygon(pts)
	if st.Fill != nil {
		c.FillPath(p, raster.NonZero, st.Fill)
	}
	if st.Outline != nil && st.Width > 0 {
		c.StrokePath(p, st.Outline, st.Width, graphics.LineCapButt, graphics.LineJoinMiter)
	}
}

// Line draws a polyline through pts with square caps.
// Lines whose width is an odd number of pixels are shifted by half a pixel,
// so that a line between integer points covers whole pixels.
func (c *Canvas) Line(pts []vec.Vec2, col color.Color, width float64) {
	if len(pts) < 2 || width <= 0 {
		return
	}

	m := c.ctm
	devWidth := width * math.Sqrt(math.Abs(m[0]*m[3]-m[1]*m[2]))
	if w := math.Round(devWidth); math.Abs(devWidth-w) < 1e-9 && int(w)%2 == 1 {
		m[4] += 0.5
		m[5] += 0.5
	}
	c.paint(col, m, func(emit raster.EmitFunc) {
		c.r.Width = width
		c.r.Cap = graphics.LineCapSquare
		c.r.Join = graphics.LineJoinMiter
		c.r.Stroke(shape.Polyline(pts), emit)
	})
}

// FillPath fills the interior of p.
func (c *Canvas) FillPath(p *path.Data, rule raster.FillRule, col color.Color) {
	c.paint(col, c.ctm, func(emit raster.EmitFunc) {
		c.r.Fill(p, rule, emit)
	})
}

// StrokePath strokes p, centred on the path.
func (c *Canvas) StrokePath(p *path.Data, col color.Color, width float64, lineCap graphics.LineCapStyle, join graphics.LineJoinStyle) {
	c.paint(col, c.ctm, func(emit raster.EmitFunc) {
		c.r.Width = width
		c.r.Cap = lineCap
		c.r.Join = join
		c.r.Stroke(p, emit)
	})
}

// paint prepares the rasteriser and composites the coverage produced by
// draw onto the image.
func (c *Canvas) paint(col color.Color, ctm matrix.Matrix, draw func(raster.EmitFunc)) {
	c.r.Reset(c.clip)
	c.r.CTM = ctm

	sr, sg, sb, sa := col.RGBA()
	src := [4]float32{
		float32(sr) / 0xffff * 255,
		float32(sg) / 0xffff * 255,
		float32(sb) / 0xffff * 255,
		float32(sa) / 0xffff * 255,
	}
	alpha := float32(sa) / 0xffff

	img := c.img
	draw(func(y, xMin int, coverage []float32) {
		off := img.PixOffset(xMin, y)
		pix := img.Pix[off : off+4*len(coverage)]
		for i, cov := range coverage {
			keep := 1 - cov
			if c.Op == Over {
				keep = 1 - alpha*cov
			}
			px := pix[4*i : 4*i+4]
			a := blend(src[3], px[3], cov, keep)
			px[0] = min(blend(src[0], px[0], cov, keep), a)
			px[1] = min(blend(src[1], px[1], cov, keep), a)
			px[2] = min(blend(src[2], px[2], cov, keep), a)
			px[3] = a
		}
	})
}

// blend computes s·cov + d·keep for a premultiplied channel.
func blend(s float32, d uint8, cov, keep float32) uint8 {
	v := s*cov + float32(d)*keep + 0.5
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
