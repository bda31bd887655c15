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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// polyline is a flattened subpath, stored as the range pts[start:end].
type polyline struct {
	start, end int
	closed     bool
}

// Stroke renders the outline of p using Width, Cap, Join and MiterLimit.
//
// The stroke is the union of one quadrilateral per segment, one wedge per
// join and one shape per cap. All pieces are given the same orientation, so
// filling them together with the nonzero rule paints every covered pixel
// exactly once.
func (r *Rasteriser) Stroke(p *path.Data, emit EmitFunc) {
	r.flattenSubpaths(p)
	if len(r.lines) == 0 || r.Width <= 0 {
		return
	}

	r.pieces = r.pieces[:0]
	r.pieceEnds = r.pieceEnds[:0]
	d := r.Width / 2
	for _, l := range r.lines {
		pts := r.pts[l.start:l.end]
		if len(pts) == 1 {
			// a subpath without length only shows with round caps
			if r.Cap == graphics.LineCapRound {
				r.addDisc(pts[0], d)
			}
			continue
		}
		r.strokePolyline(pts, l.closed, d)
	}

	r.beginEdges()
	start := 0
	for _, end := range r.pieceEnds {
		piece := r.pieces[start:end]
		for i := range piece {
			r.addEdge(piece[i], piece[(i+1)%len(piece)])
		}
		start = end
	}
	r.render(NonZero, emit)
}

// flattenSubpaths converts p into polylines in user space.
// Consecutive duplicate points are removed.
func (r *Rasteriser) flattenSubpaths(p *path.Data) {
	r.lines = r.lines[:0]
	r.pts = r.pts[:0]

	subStart := -1 // index of the current subpath in r.pts, or -1
	drew := false
	var last vec.Vec2 // start of the most recently closed subpath

	lineTo := func(_, b vec.Vec2) {
		if subStart < 0 {
			subStart = len(r.pts)
			r.pts = append(r.pts, last)
		}
		drew = true
		if b.Sub(r.pts[len(r.pts)-1]).Length() < zeroLengthThreshold {
			return
		}
		r.pts = append(r.pts, b)
	}
	finish := func(closed bool) {
		if subStart < 0 {
			return
		}
		first, cur := r.pts[subStart], r.pts[len(r.pts)-1]
		if drew {
			end := len(r.pts)
			if closed && end-subStart > 1 &&
				r.pts[end-1].Sub(r.pts[subStart]).Length() < zeroLengthThreshold {
				end--
				r.pts = r.pts[:end]
			}
			r.lines = append(r.lines, polyline{start: subStart, end: end, closed: closed})
		} else {
			r.pts = r.pts[:subStart]
		}
		last = cur
		if closed {
			last = first
		}
		subStart = -1
		drew = false
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			subStart = len(r.pts)
			r.pts = append(r.pts, p.Coords[k])
			k++
		case path.CmdLineTo:
			lineTo(vec.Vec2{}, p.Coords[k])
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(r.current(subStart, last), p.Coords[k], p.Coords[k+1], lineTo)
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(r.current(subStart, last), p.Coords[k], p.Coords[k+1], p.Coords[k+2], lineTo)
			k += 3
		case path.CmdClose:
			if subStart >= 0 {
				drew = true
			}
			finish(true)
		}
	}
	finish(false)
}

// current returns the current point while flattening.
func (r *Rasteriser) current(subStart int, last vec.Vec2) vec.Vec2 {
	if subStart < 0 {
		return last
	}
	return r.pts[len(r.pts)-1]
}

// strokePolyline adds the stroke pieces for one subpath with at least two
// distinct points. d is half the line width.
func (r *Rasteriser) strokePolyline(pts []vec.Vec2, closed bool, d float64) {
	n := len(pts)
	nSeg := n - 1
	if closed {
		nSeg = n
	}

	tangent := func(i int) vec.Vec2 {
		v := pts[(i+1)%n].Sub(pts[i])
		return v.Mul(1 / v.Length())
	}

	for i := range nSeg {
		a, b := pts[i], pts[(i+1)%n]
		t := tangent(i)
		off := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
		r.addPiece(a.Add(off), b.Add(off), b.Sub(off), a.Sub(off))
	}

	if closed {
		for i := range n {
			r.addJoin(pts[i], tangent((i+n-1)%n), tangent(i), d)
		}
		return
	}
	for i := 1; i < n-1; i++ {
		r.addJoin(pts[i], tangent(i-1), tangent(i), d)
	}
	r.addCap(pts[0], tangent(0).Mul(-1), d)
	r.addCap(pts[n-1], tangent(n-2), d)
}

// addJoin adds the join at P between a segment with direction t1 and the
// following segment with direction t2.
func (r *Rasteriser) addJoin(P, t1, t2 vec.Vec2, d float64) {
	cos := t1.Dot(t2)
	cross := t1.X*t2.Y - t1.Y*t2.X
	if math.Abs(cross) < collinearityThreshold && cos > 0 {
		return
	}
	if cos < cuspCosineThreshold {
		// the path doubles back on itself
		r.addCap(P, t1, d)
		r.addCap(P, t2.Mul(-1), d)
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addDisc(P, d)
		return
	}

	// the join fills the gap on the outer side of the turn
	s := d
	if cross > 0 {
		s = -d
	}
	n1 := vec.Vec2{X: -t1.Y, Y: t1.X}
	n2 := vec.Vec2{X: -t2.Y, Y: t2.X}
	o1 := P.Add(n1.Mul(s))
	o2 := P.Add(n2.Mul(s))

	sinHalf := math.Sqrt((1 + cos) / 2)
	if r.Join == graphics.LineJoinMiter && sinHalf > 0 && 1/sinHalf <= r.MiterLimit+miterEpsilon {
		bis := n1.Add(n2)
		if l := bis.Length(); l > zeroLengthThreshold {
			tip := P.Add(bis.Mul(s / (l * sinHalf)))
			r.addPiece(P, o1, tip, o2)
			return
		}
	}
	r.addPiece(P, o1, o2)
}

// addCap adds a cap at the end point P of a subpath, where T is the unit
// vector pointing away from the line.
func (r *Rasteriser) addCap(P, T vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapSquare:
		N := vec.Vec2{X: -T.Y, Y: T.X}.Mul(d)
		ext := P.Add(T.Mul(d))
		r.addPiece(P.Add(N), ext.Add(N), ext.Sub(N), P.Sub(N))
	case graphics.LineCapRound:
		r.addDisc(P, d)
	}
}

// addDisc adds a polygonal disc of radius d around c. The vertex count
// keeps the device-space chord error below Flatness.
func (r *Rasteriser) addDisc(c vec.Vec2, d float64) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: d}).Length(),
		r.transformLinear(vec.Vec2{Y: d}).Length())

	step := math.Pi / 4
	if devRadius > r.Flatness {
		// a chord spanning angle θ deviates from the circle by
		// radius·(1 - cos(θ/2))
		step = 2 * math.Acos(1-r.Flatness/devRadius)
	}
	n := max(int(math.Ceil(2*math.Pi/step)), 8)

	start := len(r.pieces)
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.pieces = append(r.pieces, vec.Vec2{
			X: c.X + d*math.Cos(phi),
			Y: c.Y + d*math.Sin(phi),
		})
	}
	r.endPiece(start)
}

// addPiece adds a closed polygon to the stroke geometry.
func (r *Rasteriser) addPiece(pts ...vec.Vec2) {
	start := len(r.pieces)
	r.pieces = append(r.pieces, pts...)
	r.endPiece(start)
}

// endPiece finishes the polygon pieces[start:], reversing it if needed so
// that all pieces have positive orientation. Pieces without area are
// dropped.
func (r *Rasteriser) endPiece(start int) {
	piece := r.pieces[start:]
	var area float64
	for i := range piece {
		a, b := piece[i], piece[(i+1)%len(piece)]
		area += a.X*b.Y - b.X*a.Y
	}
	switch {
	case math.Abs(area) < zeroLengthThreshold:
		r.pieces = r.pieces[:start]
		return
	case area < 0:
		for i, j := 0, len(piece)-1; i < j; i, j = i+1, j-1 {
			piece[i], piece[j] = piece[j], piece[i]
		}
	}
	r.pieceEnds = append(r.pieceEnds, len(r.pieces))
}

const (
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the |sin θ| below which two consecutive
	// segments need no join.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects paths turning back by more than
	// about 179.2°.
	cuspCosineThreshold = -0.9999

	miterEpsilon = 1e-10
)
