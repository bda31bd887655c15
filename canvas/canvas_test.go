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

package canvas

import (
	"image"
	"image/color"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sprite/shape"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func TestRectangleFill(t *testing.T) {
	c := New(10, 10)
	c.Rectangle(shape.Box(2, 3, 6, 8), Filled(red))

	img := c.Image()
	for y := range 10 {
		for x := range 10 {
			want := color.RGBA{}
			if x >= 2 && x < 6 && y >= 3 && y < 8 {
				want = color.RGBA{R: 255, A: 255}
			}
			if got := img.RGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestReplaceCutsHole(t *testing.T) {
	c := New(10, 10)
	c.Rectangle(shape.Box(0, 0, 10, 10), Filled(red))
	c.Rectangle(shape.Box(4, 4, 6, 6), Filled(color.NRGBA{}))

	img := c.Image()
	if got := img.RGBAAt(5, 5); got != (color.RGBA{}) {
		t.Errorf("hole pixel = %v", got)
	}
	if got := img.RGBAAt(3, 5); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel next to the hole = %v", got)
	}
}

func TestReplaceTranslucent(t *testing.T) {
	c := New(4, 4)
	c.Rectangle(shape.Box(0, 0, 4, 4), Filled(red))
	c.Rectangle(shape.Box(0, 0, 4, 4), Filled(color.NRGBA{B: 255, A: 100}))

	// the translucent colour replaces the opaque one
	if got := c.Image().RGBAAt(1, 1); got != (color.RGBA{B: 100, A: 100}) {
		t.Errorf("pixel = %v", got)
	}
}

func TestOver(t *testing.T) {
	c := New(4, 4)
	c.Op = Over
	c.Rectangle(shape.Box(0, 0, 4, 4), Filled(white))
	c.Rectangle(shape.Box(0, 0, 4, 4), Filled(color.NRGBA{A: 128}))

	got := c.Image().RGBAAt(1, 1)
	if got.A != 255 || got.R < 126 || got.R > 128 || got.R != got.G || got.G != got.B {
		t.Errorf("pixel = %v, want mid grey", got)
	}
}

func TestEllipseOutline(t *testing.T) {
	c := New(20, 20)
	c.Ellipse(shape.Box(0, 0, 20, 20), Style{Fill: red, Outline: blue, Width: 2})

	img := c.Image()
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{10, 10, color.RGBA{R: 255, A: 255}},
		{9, 1, color.RGBA{B: 255, A: 255}},
		{18, 9, color.RGBA{B: 255, A: 255}},
		{0, 0, color.RGBA{}},
		{19, 19, color.RGBA{}},
	}
	for _, test := range tests {
		if got := img.RGBAAt(test.x, test.y); got != test.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", test.x, test.y, got, test.want)
		}
	}
}

func TestThickOutlineFillsShape(t *testing.T) {
	c := New(10, 10)
	c.Rectangle(shape.Box(2, 2, 6, 6), Style{Fill: red, Outline: blue, Width: 5})
	if got := c.Image().RGBAAt(4, 4); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("centre pixel = %v", got)
	}
}

func TestCrispLine(t *testing.T) {
	c := New(10, 10)
	c.Line([]vec.Vec2{{X: 2, Y: 5}, {X: 7, Y: 5}}, white, 1)

	img := c.Image()
	for y := range 10 {
		for x := range 10 {
			var want uint8
			if y == 5 && x >= 2 && x <= 7 {
				want = 255
			}
			if got := img.RGBAAt(x, y).A; got != want {
				t.Errorf("pixel (%d,%d) has alpha %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestEvenLine(t *testing.T) {
	c := New(10, 10)
	c.Line([]vec.Vec2{{X: 5, Y: 1}, {X: 5, Y: 8}}, white, 2)

	img := c.Image()
	for _, x := range []int{4, 5} {
		if got := img.RGBAAt(x, 4).A; got != 255 {
			t.Errorf("pixel (%d,4) has alpha %d", x, got)
		}
	}
	for _, x := range []int{3, 6} {
		if got := img.RGBAAt(x, 4).A; got != 0 {
			t.Errorf("pixel (%d,4) has alpha %d", x, got)
		}
	}
}

func TestClip(t *testing.T) {
	c := New(10, 10)
	c.SetClip(image.Rect(1, 1, 9, 9))
	c.Rectangle(shape.Box(0, 0, 10, 10), Filled(red))

	img := c.Image()
	if got := img.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("clipped pixel = %v", got)
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("inner pixel = %v", got)
	}

	c.ResetClip()
	c.Rectangle(shape.Box(0, 0, 10, 10), Filled(blue))
	if got := img.RGBAAt(0, 0); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("pixel after ResetClip = %v", got)
	}
}

func TestTransform(t *testing.T) {
	c := New(20, 20)
	c.SetTransform(matrix.Scale(2, 2))
	c.Rectangle(shape.Box(1, 1, 5, 5), Filled(red))

	img := c.Image()
	if got := img.RGBAAt(2, 2).A; got != 255 {
		t.Errorf("pixel (2,2) has alpha %d", got)
	}
	if got := img.RGBAAt(9, 9).A; got != 255 {
		t.Errorf("pixel (9,9) has alpha %d", got)
	}
	if got := img.RGBAAt(10, 10).A; got != 0 {
		t.Errorf("pixel (10,10) has alpha %d", got)
	}
}

func TestPremultipliedInvariant(t *testing.T) {
	c := New(16, 16)
	c.Op = Over
	c.Ellipse(shape.Box(1, 1, 15, 15), Filled(color.NRGBA{R: 255, G: 200, A: 90}))
	c.Op = Replace
	c.Polygon([]vec.Vec2{{X: 0, Y: 8}, {X: 16, Y: 3}, {X: 16, Y: 13}}, Filled(color.NRGBA{G: 255, B: 255, A: 200}))

	img := c.Image()
	for i := 0; i < len(img.Pix); i += 4 {
		a := img.Pix[i+3]
		if img.Pix[i] > a || img.Pix[i+1] > a || img.Pix[i+2] > a {
			t.Fatalf("pixel %d is not premultiplied: %v", i/4, img.Pix[i:i+4])
		}
	}
}
