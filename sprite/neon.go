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

package sprite

import (
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sprite/canvas"
	"seehuhn.de/go/sprite/palette"
	"seehuhn.de/go/sprite/shape"
)

// All neon sprites are designed on a 50×50 grid.
const neonGrid = 50

var neonCentre = vec.Vec2{X: 25, Y: 25}

// gridScale maps a grid×grid design onto a size×size canvas.
func gridScale(size, grid int) matrix.Matrix {
	k := float64(size) / float64(grid)
	return matrix.Scale(k, k)
}

// glow paints concentric discs around centre, from radius outer down to
// just above radius inner. Alpha fades linearly from 0 at the outer ring
// towards peak.
func glow(c *canvas.Canvas, col color.NRGBA, centre vec.Vec2, outer, inner, step int, peak float64) {
	for r := outer; r > inner; r -= step {
		alpha := int(peak * (1 - float64(r-inner)/float64(outer-inner)))
		c.Ellipse(shape.Circle(centre, float64(r)), canvas.Filled(palette.WithAlpha(col, uint8(alpha))))
	}
}

func neonRunner(c *canvas.Canvas, pal *palette.Palette, s Spec) {
	c.SetTransform(gridScale(s.Size, neonGrid))
	col := pal.Color(palette.NeonRunner)

	glow(c, col, neonCentre, 28, 20, 2, 50)
	c.Ellipse(shape.Circle(neonCentre, 20), canvas.Filled(col))

	if s.Mouth > 0 {
		d := s.Heading.unit()
		side := vec.Vec2{X: -d.Y, Y: d.X}.Mul(12)
		tip := d.Mul(25)
		k := s.Mouth / MaxMouth
		c.Polygon([]vec.Vec2{
			neonCentre,
			neonCentre.Add(tip.Sub(side).Mul(k)),
			neonCentre.Add(tip.Add(side).Mul(k)),
		}, canvas.Filled(palette.Transparent))
	}

	eye := vec.Vec2{X: 30, Y: 20}
	if s.Heading == Left {
		eye.X = 20
	}
	c.Ellipse(shape.Circle(eye, 3), canvas.Filled(pal.Color(palette.NeonEye)))
	c.Ellipse(shape.Circle(eye, 1), canvas.Filled(pal.Color(palette.NeonPupil)))
}

func neonChaser(c *canvas.Canvas, pal *palette.Palette, s Spec) {
	c.SetTransform(gridScale(s.Size, neonGrid))
	col := pal.Color(palette.NeonChaserPrefix + s.variant())

	head := vec.Vec2{X: 25, Y: 22}
	glow(c, col, head, 24, 18, 2, 40)
	c.Ellipse(shape.Circle(head, 18), canvas.Filled(col))
	c.Rectangle(shape.Box(7, 22, 43, 48), canvas.Filled(col))

	// wavy hem
	for i := range 4 {
		x := 12 + 10*float64(i)
		c.Ellipse(shape.Box(x-5, 45, x+5, 53), canvas.Filled(palette.Transparent))
	}

	look := s.Heading.unit().Mul(2)
	for _, x := range []float64{18, 32} {
		eye := vec.Vec2{X: x, Y: 20}
		c.Ellipse(shape.Circle(eye, 5), canvas.Filled(pal.Color(palette.NeonEye)))
		c.Ellipse(shape.Circle(eye.Add(look), 2), canvas.Filled(pal.Color(palette.NeonPupil)))
	}
}

func neonPellet(c *canvas.Canvas, pal *palette.Palette, s Spec) {
	c.SetTransform(gridScale(s.Size, neonGrid))
	col := pal.Color(palette.NeonPellet)

	glow(c, col, neonCentre, 8, 3, 1, 60)
	c.Ellipse(shape.Circle(neonCentre, 4), canvas.Filled(col))
}

func neonPowerUp(c *canvas.Canvas, pal *palette.Palette, s Spec) {
	c.SetTransform(gridScale(s.Size, neonGrid))
	col := pal.Color(palette.NeonPowerUp)

	glow(c, col, neonCentre, 18, 10, 2, 80)
	c.Ellipse(shape.Circle(neonCentre, 10), canvas.Filled(col))

	c.Op = canvas.Over
	c.Ellipse(shape.Box(19, 17, 27, 23),
		canvas.Filled(palette.WithAlpha(pal.Color(palette.NeonHighlight), 100)))
}

// neonWall draws a dark tile with a glowing border. The purple tile carries
// a grid pattern, the cyan tile a diagonal one.
func neonWall(c *canvas.Canvas, pal *palette.Palette, s Spec) {
	c.SetTransform(gridScale(s.Size, neonGrid))
	variant := s.variant()
	border := pal.Color(palette.NeonWallPrefix + variant)

	c.Rectangle(shape.Box(0, 0, neonGrid, neonGrid), canvas.Filled(pal.Color(palette.NeonWall)))

	c.Op = canvas.Over
	c.Rectangle(shape.Box(1, 1, 49, 49), canvas.Style{
		Outline: palette.WithAlpha(border, 180),
		Width:   2,
	})

	switch variant {
	case "cyan":
		line := palette.WithAlpha(border, 20)
		for i := -neonGrid; i < 2*neonGrid; i += 8 {
			x := float64(i)
			c.Line([]vec.Vec2{{X: x, Y: 0}, {X: x + neonGrid, Y: neonGrid}}, line, 1)
		}
	default:
		line := palette.WithAlpha(border, 30)
		for i := 0; i < neonGrid; i += 10 {
			x := float64(i)
			c.Line([]vec.Vec2{{X: x, Y: 0}, {X: x, Y: neonGrid}}, line, 1)
			c.Line([]vec.Vec2{{X: 0, Y: x}, {X: neonGrid, Y: x}}, line, 1)
		}
	}
}
