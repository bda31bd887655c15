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

// Package raster converts vector paths into anti-aliased pixel coverage.
//
// Coverage is computed exactly from the signed area of the path inside each
// pixel, so the result does not depend on sampling patterns and is fully
// deterministic.
package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline segment.
// coverage[i] is the coverage of pixel (xMin+i, y), in the range [0, 1].
// The slice is only valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// FillRule selects how path winding is turned into coverage.
type FillRule int

const (
	// NonZero fills every point with a nonzero winding number.
	NonZero FillRule = iota

	// EvenOdd fills every point with an odd winding number.
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "unknown"
	}
}

// edge is a non-horizontal line segment in device coordinates,
// stored with yTop < yBot.
type edge struct {
	xTop, yTop float64
	yBot       float64
	dxdy       float64
	dir        float32 // +1 if the original segment pointed downwards
}

func (e *edge) xAt(y float64) float64 {
	return e.xTop + e.dxdy*(y-e.yTop)
}

// cell holds the accumulated coverage data of one pixel.
//
// cover is the signed vertical extent of all edge pieces inside the pixel.
// area is the part of cover lying to the right of the edges, so that
// the coverage of pixel i is sum(cover[:i]) + area[i].
type cell struct {
	cover, area float32
}

// Rasteriser converts vector paths to pixel coverage values.
// A single instance can be reused for any number of paths; the internal
// buffers grow as needed and are kept between calls.
type Rasteriser struct {
	// CTM maps user space to device space.
	// Must be non-singular.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates.
	// The coordinates must be integers; LLx/LLy hold the minimum values.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the cap style used at the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the join style used at interior vertices.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to Width.
	// Must be >= 1.
	MiterLimit float64

	edges   []edge
	cells   []cell
	rowUsed []bool
	out     []float32

	// stroke geometry, see stroke.go
	lines     []polyline
	pts       []vec.Vec2
	pieces    []vec.Vec2
	pieceEnds []int

	// device-space bounding box of edges
	bboxEmpty    bool
	bxMin, bxMax float64
	byMin, byMax float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle,
// with the identity CTM and default stroke parameters.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores all parameters to their defaults and sets a new clip
// rectangle. Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit

	r.edges = r.edges[:0]
	r.lines = r.lines[:0]
	r.pts = r.pts[:0]
	r.pieces = r.pieces[:0]
	r.pieceEnds = r.pieceEnds[:0]
}

// Fill rasterises the interior of p using the given fill rule.
// Open subpaths are closed implicitly.
func (r *Rasteriser) Fill(p *path.Data, rule FillRule, emit EmitFunc) {
	r.beginEdges()
	r.collectPathEdges(p)
	r.render(rule, emit)
}

// collectPathEdges flattens p and adds all its edges, in device space.
func (r *Rasteriser) collectPathEdges(p *path.Data) {
	var current, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			open = true
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addEdge)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
			open = false
		}
	}
	if open && current != start {
		r.addEdge(current, start)
	}
}

func (r *Rasteriser) beginEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge transforms the user-space segment a→b to device space and
// records it.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	m := r.CTM
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}

	e := edge{dir: 1}
	if dy < 0 {
		x0, y0, x1, y1 = x1, y1, x0, y0
		dy = -dy
		e.dir = -1
	}
	e.xTop, e.yTop, e.yBot = x0, y0, y1
	e.dxdy = (x1 - x0) / dy
	r.edges = append(r.edges, e)

	if r.bboxEmpty {
		r.bxMin, r.bxMax = min(x0, x1), max(x0, x1)
		r.byMin, r.byMax = y0, y1
		r.bboxEmpty = false
		return
	}
	r.bxMin = min(r.bxMin, x0, x1)
	r.bxMax = max(r.bxMax, x0, x1)
	r.byMin = min(r.byMin, y0)
	r.byMax = max(r.byMax, y1)
}

// render accumulates all collected edges into the cell buffer and emits the
// resulting coverage row by row.
func (r *Rasteriser) render(rule FillRule, emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.bxMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bxMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.byMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.byMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	height := yMax - yMin
	n := width * height
	r.cells = slices.Grow(r.cells[:0], n)[:n]
	clear(r.cells)
	r.rowUsed = slices.Grow(r.rowUsed[:0], height)[:height]
	clear(r.rowUsed)

	for i := range r.edges {
		e := &r.edges[i]
		y0 := max(int(math.Floor(e.yTop)), yMin)
		y1 := min(int(math.Floor(e.yBot))+1, yMax)
		for y := y0; y < y1; y++ {
			row := y - yMin
			off := row * width
			if r.accumulate(e, y, r.cells[off:off+width], xMin) {
				r.rowUsed[row] = true
			}
		}
	}

	r.out = slices.Grow(r.out[:0], width)[:width]
	for row := range height {
		if !r.rowUsed[row] {
			continue
		}
		off := row * width
		integrate(r.out, r.cells[off:off+width], rule)
		if cov, lo := trimZeros(r.out); cov != nil {
			emit(yMin+row, xMin+lo, cov)
		}
	}
}

// accumulate adds the part of e inside scanline y to the row of cells
// starting at device column xMin. It reports whether anything was added.
func (r *Rasteriser) accumulate(e *edge, y int, row []cell, xMin int) bool {
	ya := max(float64(y), e.yTop)
	yb := min(float64(y+1), e.yBot)
	if yb <= ya {
		return false
	}
	xa := e.xAt(ya)
	xb := e.xAt(yb)

	colA := int(math.Floor(xa))
	colB := int(math.Floor(xb))
	if colA == colB {
		deposit(row, xMin, colA, e.dir*float32(yb-ya), (xa+xb)/2)
		return true
	}

	// walk the pixel columns from xa to xb
	step := 1
	if colB < colA {
		step = -1
	}
	dydx := (yb - ya) / (xb - xa)
	x0, y0 := xa, ya
	for col := colA; ; col += step {
		var x1, y1 float64
		if col == colB {
			x1, y1 = xb, yb
		} else {
			if step > 0 {
				x1 = float64(col + 1)
			} else {
				x1 = float64(col)
			}
			y1 = ya + (x1-xa)*dydx
		}
		deposit(row, xMin, col, e.dir*float32(y1-y0), (x0+x1)/2)
		if col == colB {
			break
		}
		x0, y0 = x1, y1
	}
	return true
}

// deposit records an edge piece of signed height h at mean position xm
// inside pixel column col.
func deposit(row []cell, xMin, col int, h float32, xm float64) {
	i := col - xMin
	switch {
	case i < 0:
		row[0].cover += h
		row[0].area += h
	case i < len(row):
		row[i].cover += h
		row[i].area += h * float32(1-(xm-float64(col)))
	}
}

// integrate converts one row of cells into coverage values.
func integrate(out []float32, row []cell, rule FillRule) {
	var acc float32
	for i, c := range row {
		raw := acc + c.area
		acc += c.cover
		if raw < 0 {
			raw = -raw
		}
		if rule == EvenOdd {
			raw -= 2 * float32(int(raw/2))
			if raw > 1 {
				raw = 2 - raw
			}
		} else if raw > 1 {
			raw = 1
		}
		// suppress float noise from cancelling edges
		if raw < coverageEpsilon {
			raw = 0
		}
		out[i] = raw
	}
}

// trimZeros returns the non-zero part of coverage and its offset.
// The result is nil if all values are zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// transformLinear applies the linear part of the CTM to v.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates the quadratic Bézier p0, p1, p2 by line
// segments with a device-space error of at most Flatness.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	dev := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier p0, p1, p2, p3 by line
// segments. The segment count follows Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit turns joins sharper than about 11.5° into bevels.
	defaultMiterLimit = 10.0

	horizontalEdgeThreshold = 1e-10
	coverageEpsilon         = 1e-6
)
