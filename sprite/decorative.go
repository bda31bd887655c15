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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sprite/canvas"
	"seehuhn.de/go/sprite/palette"
	"seehuhn.de/go/sprite/shape"
)

// Design grids of the decorative characters. Decorative characters
// always face right.
const (
	decorativeRunnerGrid = 175
	decorativeChaserGrid = 150
)

func decorativeRunner(c *canvas.Canvas, pal *palette.Palette, s Spec) {
	c.SetTransform(gridScale(s.Size, decorativeRunnerGrid))
	col := pal.Color(palette.NeonRunner)

	const r = 72
	centre := vec.Vec2{X: 87, Y: 87}
	glow(c, col, centre, r+20, r, 3, 60)
	c.Ellipse(shape.Circle(centre, r), canvas.Filled(col))

	c.Polygon([]vec.Vec2{
		centre,
		{X: centre.X + r + 10, Y: centre.Y - r/2},
		{X: centre.X + r + 10, Y: centre.Y + r/2},
	}, canvas.Filled(palette.Transparent))

	eye := vec.Vec2{X: centre.X + 10, Y: centre.Y - 25}
	c.Ellipse(shape.Circle(eye, 8), canvas.Filled(pal.Color(palette.NeonEye)))
	c.Ellipse(shape.Circle(eye, 3), canvas.Filled(pal.Color(palette.NeonPupil)))
}

func decorativeChaser(c *canvas.Canvas, pal *palette.Palette, s Spec) {
	c.SetTransform(gridScale(s.Size, decorativeChaserGrid))
	col := pal.Color(palette.NeonChaserPrefix + s.variant())

	const r = 60
	head := vec.Vec2{X: 75, Y: 65}
	glow(c, col, head, r+15, r, 3, 50)
	c.Ellipse(shape.Circle(head, r), canvas.Filled(col))
	c.Rectangle(shape.Box(head.X-r, head.Y, head.X+r, head.Y+r+20), canvas.Filled(col))

	// four scallops cut into the hem
	const wave = 2 * r / 4
	for i := range 4 {
		x := head.X - r + wave/2 + float64(i*wave)
		c.Ellipse(shape.Box(x-wave/2, 135, x+wave/2, 150), canvas.Filled(palette.Transparent))
	}

	for _, x := range []float64{55, 95} {
		eye := vec.Vec2{X: x, Y: 60}
		c.Ellipse(shape.Circle(eye, 12), canvas.Filled(pal.Color(palette.NeonEye)))
		c.Ellipse(shape.Box(x+2, 55, x+10, 65), canvas.Filled(pal.Color(palette.NeonPupil)))
	}
}
