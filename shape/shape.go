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

// Package shape builds paths for the primitive shapes sprites are drawn from.
//
// All coordinates use a y-down pixel system. A box is given as a rect.Rect
// whose LLx/LLy fields hold the top-left corner and URx/URy the bottom-right
// corner. Angles are in degrees, measured from the positive x-axis; since
// y points down, increasing angles turn clockwise on screen.
package shape

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Box returns the box with corners (x0, y0) and (x1, y1).
func Box(x0, y0, x1, y1 float64) rect.Rect {
	return rect.Rect{
		LLx: min(x0, x1),
		LLy: min(y0, y1),
		URx: max(x0, x1),
		URy: max(y0, y1),
	}
}

// Circle returns the bounding box of the circle with centre c and radius r.
func Circle(c vec.Vec2, r float64) rect.Rect {
	return rect.Rect{LLx: c.X - r, LLy: c.Y - r, URx: c.X + r, URy: c.Y + r}
}

// Inset shrinks b by d on every side. Negative d grows the box.
// If b is too small, the result collapses onto the centre of b.
func Inset(b rect.Rect, d float64) rect.Rect {
	cx, cy := (b.LLx+b.URx)/2, (b.LLy+b.URy)/2
	return rect.Rect{
		LLx: min(b.LLx+d, cx),
		LLy: min(b.LLy+d, cy),
		URx: max(b.URx-d, cx),
		URy: max(b.URy-d, cy),
	}
}

// Empty reports whether b has no area.
func Empty(b rect.Rect) bool {
	return !(b.URx > b.LLx && b.URy > b.LLy)
}

// Rectangle returns the closed outline of b.
func Rectangle(b rect.Rect) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: b.LLx, Y: b.LLy}).
		LineTo(vec.Vec2{X: b.URx, Y: b.LLy}).
		LineTo(vec.Vec2{X: b.URx, Y: b.URy}).
		LineTo(vec.Vec2{X: b.LLx, Y: b.URy}).
		Close()
}

// Polygon returns the closed polygon through pts.
func Polygon(pts []vec.Vec2) *path.Data {
	p := Polyline(pts)
	if len(pts) > 0 {
		p.Close()
	}
	return p
}

// Polyline returns the open path through pts.
func Polyline(pts []vec.Vec2) *path.Data {
	p := &path.Data{}
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt)
		} else {
			p.LineTo(pt)
		}
	}
	return p
}

// Ellipse returns the closed outline of the ellipse inscribed in b.
func Ellipse(b rect.Rect) *path.Data {
	p := &path.Data{}
	e := newEllipse(b)
	p.MoveTo(e.at(0))
	e.arcTo(p, 0, 360)
	return p.Close()
}

// PieSlice returns the closed outline of the sector of the ellipse inscribed
// in b which runs clockwise from angle start to angle end.
// If the sector spans 360° or more, the full ellipse is returned.
func PieSlice(b rect.Rect, start, end float64) *path.Data {
	start, end = normalize(start, end)
	if end-start >= 360 {
		return Ellipse(b)
	}

	e := newEllipse(b)
	p := (&path.Data{}).MoveTo(e.c).LineTo(e.at(start))
	e.arcTo(p, start, end)
	return p.Close()
}

// Arc returns the open elliptical arc of the ellipse inscribed in b which
// runs clockwise from angle start to angle end.
func Arc(b rect.Rect, start, end float64) *path.Data {
	start, end = normalize(start, end)
	end = min(end, start+360)

	e := newEllipse(b)
	p := (&path.Data{}).MoveTo(e.at(start))
	e.arcTo(p, start, end)
	return p
}

// normalize shifts end so that start <= end < start+360, unless the
// two angles are at least a full turn apart.
func normalize(start, end float64) (float64, float64) {
	if end-start >= 360 {
		return start, end
	}
	for end < start {
		end += 360
	}
	return start, end
}

type ellipse struct {
	c      vec.Vec2
	rx, ry float64
}

func newEllipse(b rect.Rect) ellipse {
	return ellipse{
		c:  vec.Vec2{X: (b.LLx + b.URx) / 2, Y: (b.LLy + b.URy) / 2},
		rx: (b.URx - b.LLx) / 2,
		ry: (b.URy - b.LLy) / 2,
	}
}

// at returns the point at angle deg.
func (e ellipse) at(deg float64) vec.Vec2 {
	s, c := math.Sincos(deg * math.Pi / 180)
	return vec.Vec2{X: e.c.X + e.rx*c, Y: e.c.Y + e.ry*s}
}

// tangent returns the derivative of at, with respect to the angle in
// radians.
func (e ellipse) tangent(deg float64) vec.Vec2 {
	s, c := math.Sincos(deg * math.Pi / 180)
	return vec.Vec2{X: -e.rx * s, Y: e.ry * c}
}

// arcTo appends cubic Bézier curves following the ellipse from angle
// from to angle to. The current point of p must be at(from).
// Each curve spans at most 90°.
func (e ellipse) arcTo(p *path.Data, from, to float64) {
	n := max(int(math.Ceil((to-from)/90-1e-9)), 1)
	step := (to - from) / float64(n)
	k := 4.0 / 3.0 * math.Tan(step*math.Pi/180/4)
	for i := range n {
		a0 := from + float64(i)*step
		a1 := a0 + step
		if i == n-1 {
			a1 = to
		}
		p0, p3 := e.at(a0), e.at(a1)
		p1 := p0.Add(e.tangent(a0).Mul(k))
		p2 := p3.Sub(e.tangent(a1).Mul(k))
		p.Cmds = append(p.Cmds, path.CmdCubeTo)
		p.Coords = append(p.Coords, p1, p2, p3)
	}
}
