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

// Runners and chasers of the flat style are designed on a 64×64 grid.
// Pellets, power-ups and walls use pixel units directly.
const flatGrid = 64

func flatRunner(c *canvas.Canvas, pal *palette.Palette, s Spec) {
	c.SetTransform(gridScale(s.Size, flatGrid))
	outline := pal.Color(palette.Outline)

	c.PieSlice(shape.Box(4, 4, 60, 60), 35, 325, canvas.Style{
		Fill:    pal.Color(palette.RunnerBody),
		Outline: outline,
		Width:   3,
	})
	c.Ellipse(shape.Circle(vec.Vec2{X: 38, Y: 21}, 4), canvas.Filled(outline))
}

func flatChaser(c *canvas.Canvas, pal *palette.Palette, s Spec) {
	c.SetTransform(gridScale(s.Size, flatGrid))
	body := pal.Color(palette.ChaserPrefix + s.variant())
	outline := pal.Color(palette.Outline)

	// head
	c.PieSlice(shape.Box(4, 4, 60, 70), 180, 360, canvas.Style{
		Fill:    body,
		Outline: outline,
		Width:   3,
	})

	const top, bottom = 32, 52
	c.Rectangle(shape.Box(4, top, 60, bottom), canvas.Filled(body))

	// three feet along the hem
	const foot = 56 / 3
	for i := range 3 {
		x := 4 + float64(i*foot)
		c.PieSlice(shape.Box(x, bottom-foot/2, x+foot, bottom+foot/2), 0, 180, canvas.Style{
			Fill:    body,
			Outline: outline,
			Width:   2,
		})
	}

	c.Line([]vec.Vec2{{X: 4, Y: top}, {X: 4, Y: bottom}}, outline, 3)
	c.Line([]vec.Vec2{{X: 60, Y: top}, {X: 60, Y: bottom}}, outline, 3)

	look := s.Heading.unit().Mul(2)
	for _, x := range []float64{21, 42} {
		eye := vec.Vec2{X: x, Y: 25}
		c.Ellipse(shape.Circle(eye, 7), canvas.Style{
			Fill:    pal.Color(palette.EyeWhite),
			Outline: outline,
			Width:   2,
		})
		c.Ellipse(shape.Circle(eye.Add(look), 3), canvas.Filled(pal.Color(palette.EyePupil)))
	}
}

func flatPellet(c *canvas.Canvas, pal *palette.Palette, s Spec) {
	n := float64(s.Size)
	c.Ellipse(shape.Box(3, 3, n-3, n-3), canvas.Style{
		Fill:    pal.Color(palette.Pellet),
		Outline: pal.Color(palette.Outline),
		Width:   2,
	})
}

func flatPowerUp(c *canvas.Canvas, pal *palette.Palette, s Spec) {
	n := float64(s.Size)

	// margins are fixed in pixels down to 16px and shrink below that
	k := min(1, n/16)

	glow := palette.WithAlpha(pal.Color(palette.PowerUpGlow), 100)
	c.Ellipse(shape.Box(2*k, 2*k, n-2*k, n-2*k), canvas.Filled(glow))
	c.Ellipse(shape.Box(6*k, 6*k, n-6*k, n-6*k), canvas.Style{
		Fill:    pal.Color(palette.PowerUp),
		Outline: pal.Color(palette.Outline),
		Width:   2 * k,
	})

	mid, star := n/2, n/8
	c.Op = canvas.Over
	c.Ellipse(shape.Box(mid-2*star, mid-2*star, mid-star/2, mid-star/2),
		canvas.Filled(pal.Color(palette.Highlight)))
}

// flatWall draws a square block with a bevel highlight along the top and
// left edges. Theme variants take the outline and highlight colours from
// the world theme of the same name.
func flatWall(c *canvas.Canvas, pal *palette.Palette, s Spec) {
	n := float64(s.Size)
	fill := pal.Color(palette.Wall)
	outline := pal.Color(palette.Outline)
	accent := pal.Color(palette.WallAccent)
	if v := s.variant(); v != "default" {
		theme := palette.ThemePrefix + v
		outline = pal.Color(theme + ".primary")
		accent = pal.Color(theme + ".secondary")
	}

	c.Rectangle(shape.Box(1, 1, n-1, n-1), canvas.Style{
		Fill:    fill,
		Outline: outline,
		Width:   2,
	})

	c.Op = canvas.Over
	c.Line([]vec.Vec2{{X: 3, Y: 3}, {X: n - 3, Y: 3}}, accent, 2)
	c.Line([]vec.Vec2{{X: 3, Y: 3}, {X: 3, Y: n - 3}}, accent, 2)
}
