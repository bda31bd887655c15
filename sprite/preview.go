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
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/sprite/palette"
)

const (
	previewPad      = 20
	previewMinWidth = 600
	labelGap        = 4
)

// Preview renders a contact sheet showing every job on the floor colour of
// pal, each labelled with its file name. Sprites are enlarged by the
// integer factor scale using nearest-neighbour sampling.
func Preview(jobs []Job, pal *palette.Palette, scale int) (*image.RGBA, error) {
	if scale < 1 {
		return nil, fmt.Errorf("sprite: invalid preview scale %d", scale)
	}

	face := basicfont.Face7x13
	metrics := face.Metrics()
	labelHeight := metrics.Height.Ceil()

	type tile struct {
		img   *image.RGBA
		label string
		at    image.Point
		w, h  int // cell size, without the label
	}
	tiles := make([]tile, 0, len(jobs))
	width := previewMinWidth
	for _, job := range jobs {
		img, err := job.Render(pal)
		if err != nil {
			return nil, err
		}
		label := strings.TrimSuffix(job.Name, ".png")
		b := img.Bounds()
		w := max(b.Dx()*scale, font.MeasureString(face, label).Ceil())
		width = max(width, w+2*previewPad)
		tiles = append(tiles, tile{img: img, label: label, w: w, h: b.Dy() * scale})
	}

	// flow layout, left to right and top to bottom
	x, y, rowHeight := previewPad, previewPad, 0
	for i := range tiles {
		t := &tiles[i]
		if x > previewPad && x+t.w > width-previewPad {
			x = previewPad
			y += rowHeight + previewPad
			rowHeight = 0
		}
		t.at = image.Pt(x, y)
		x += t.w + previewPad
		rowHeight = max(rowHeight, t.h+labelGap+labelHeight)
	}
	height := y + rowHeight + previewPad

	sheet := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(pal.Color(palette.Floor)), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  sheet,
		Src:  image.NewUniform(pal.Color(palette.Highlight)),
		Face: face,
	}
	for _, t := range tiles {
		b := t.img.Bounds()
		dst := image.Rect(t.at.X, t.at.Y, t.at.X+b.Dx()*scale, t.at.Y+b.Dy()*scale)
		draw.NearestNeighbor.Scale(sheet, dst, t.img, b, draw.Over, nil)

		d.Dot = fixed.P(t.at.X, t.at.Y+t.h+labelGap+metrics.Ascent.Ceil())
		d.DrawString(t.label)
	}
	return sheet, nil
}
