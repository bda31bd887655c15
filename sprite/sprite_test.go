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
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"testing"

	"seehuhn.de/go/sprite/palette"
)

// allSpecs enumerates every style, kind, variant and heading at the given
// size.
func allSpecs(size int) []Spec {
	var res []Spec
	for _, style := range []Style{Flat, Neon, Decorative} {
		for _, kind := range Kinds {
			if _, ok := routines[style][kind]; !ok {
				continue
			}
			variants := Variants(style, kind)
			if len(variants) == 0 {
				variants = []string{""}
			}
			for _, v := range variants {
				for _, h := range Headings {
					s := Spec{Style: style, Kind: kind, Variant: v, Size: size, Heading: h}
					if style == Neon && kind == Runner {
						s.Mouth = MaxMouth
					}
					res = append(res, s)
				}
			}
		}
	}
	return res
}

func TestDimensions(t *testing.T) {
	pal := palette.Default()
	for _, size := range []int{MinSize, 17, 50, 64, 175} {
		for _, s := range allSpecs(size) {
			img, err := Render(pal, s)
			if err != nil {
				t.Fatalf("%v: %v", s, err)
			}
			if got := img.Bounds(); got != image.Rect(0, 0, size, size) {
				t.Errorf("%v: bounds %v", s, got)
			}
		}
	}
}

func TestCornersTransparent(t *testing.T) {
	pal := palette.Default()
	for _, size := range []int{MinSize, 12, 32, 50, 64, 128, 150} {
		for _, s := range allSpecs(size) {
			img, err := Render(pal, s)
			if err != nil {
				t.Fatalf("%v: %v", s, err)
			}
			n := size - 1
			for _, p := range []image.Point{{0, 0}, {n, 0}, {0, n}, {n, n}} {
				if a := img.RGBAAt(p.X, p.Y).A; a != 0 {
					t.Errorf("%v: corner %v has alpha %d", s, p, a)
				}
			}
		}
	}
}

func TestSetsCornersAndSizes(t *testing.T) {
	pal := palette.Default()
	for _, set := range SetNames() {
		jobs, err := Select(set, Selection{})
		if err != nil {
			t.Fatal(err)
		}
		for _, job := range jobs {
			img, err := job.Render(pal)
			if err != nil {
				t.Fatalf("%s/%s: %v", set, job.Name, err)
			}
			if img.Bounds() != job.Bounds() {
				t.Errorf("%s/%s: bounds %v, want %v", set, job.Name, img.Bounds(), job.Bounds())
			}
			b := img.Bounds()
			for _, p := range []image.Point{{0, 0}, {b.Dx() - 1, 0}, {0, b.Dy() - 1}, {b.Dx() - 1, b.Dy() - 1}} {
				if a := img.RGBAAt(p.X, p.Y).A; a != 0 {
					t.Errorf("%s/%s: corner %v has alpha %d", set, job.Name, p, a)
				}
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	pal := palette.Default()
	encode := func(s Spec) []byte {
		img, err := Render(pal, s)
		if err != nil {
			t.Fatal(err)
		}
		buf := &bytes.Buffer{}
		if err := WritePNG(buf, img); err != nil {
			t.Fatal(err)
		}
		return buf.Bytes()
	}
	for _, s := range allSpecs(64) {
		if !bytes.Equal(encode(s), encode(s)) {
			t.Errorf("%v: output differs between runs", s)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		spec Spec
		want error
	}{
		{Spec{Style: Flat, Kind: Runner, Size: 64}, nil},
		{Spec{Style: Flat, Kind: Chaser, Variant: "pink", Size: 64}, nil},
		{Spec{Style: Flat, Kind: AnyKind, Size: 64}, ErrUnknownKind},
		{Spec{Style: Decorative, Kind: Pellet, Size: 64}, ErrUnknownKind},
		{Spec{Style: Flat, Kind: Chaser, Variant: "lime", Size: 64}, ErrUnknownVariant},
		{Spec{Style: Flat, Kind: Runner, Variant: "red", Size: 64}, ErrUnknownVariant},
		{Spec{Style: Flat, Kind: Runner, Size: MinSize - 1}, ErrInvalidSize},
		{Spec{Style: Neon, Kind: Pellet, Size: MaxSize + 1}, ErrInvalidSize},
	}
	for _, test := range tests {
		err := test.spec.Validate()
		if test.want == nil {
			if err != nil {
				t.Errorf("%v: unexpected error %v", test.spec, err)
			}
			continue
		}
		if !errors.Is(err, test.want) {
			t.Errorf("%v: got error %v, want %v", test.spec, err, test.want)
		}
	}

	if err := (Spec{Style: Neon, Kind: Runner, Size: 50, Mouth: 45}).Validate(); err == nil {
		t.Error("oversized mouth accepted")
	}
	if _, err := Render(palette.Default(), Spec{Kind: Wall, Size: 4}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Render with size 4: %v", err)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range append([]Kind{AnyKind}, Kinds...) {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("ghost"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(ghost): %v", err)
	}
}

func TestRunnerMouth(t *testing.T) {
	jobs, err := Select("sheets", Selection{Kind: Runner})
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 1 || len(jobs[0].Frames) != 13 {
		t.Fatalf("unexpected runner sheet %v", jobs)
	}
	img, err := jobs[0].Render(palette.Default())
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 13*50, 50) {
		t.Fatalf("sheet bounds %v", got)
	}

	// frame 0 has its mouth closed, frame 2 is wide open towards the right
	if a := img.RGBAAt(40, 25).A; a != 255 {
		t.Errorf("closed mouth: alpha %d", a)
	}
	if a := img.RGBAAt(100+40, 25).A; a != 0 {
		t.Errorf("open mouth: alpha %d", a)
	}
	// frame 5 faces up
	if a := img.RGBAAt(250+25, 12).A; a != 0 {
		t.Errorf("mouth facing up: alpha %d", a)
	}
}

func TestPupilsFollowHeading(t *testing.T) {
	pal := palette.Default()
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	tests := []struct {
		heading Heading
		want    color.RGBA
	}{
		{Right, black},
		{Left, white},
	}
	for _, test := range tests {
		img, err := Render(pal, Spec{Style: Neon, Kind: Chaser, Size: 50, Heading: test.heading})
		if err != nil {
			t.Fatal(err)
		}
		if got := img.RGBAAt(20, 20); got != test.want {
			t.Errorf("%s: pixel (20,20) = %v, want %v", test.heading, got, test.want)
		}
	}
}

func TestPalette(t *testing.T) {
	pal, err := palette.Default().Override(map[string]string{palette.NeonPellet: "#FF0000"})
	if err != nil {
		t.Fatal(err)
	}
	img, err := Render(pal, Spec{Style: Neon, Kind: Pellet, Size: 50})
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(25, 25); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pellet core = %v", got)
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		set   string
		sel   Selection
		names []string
		err   error
	}{
		{set: "flat", sel: Selection{Kind: Runner},
			names: []string{"runner_32x32.png", "runner_64x64.png", "runner_128x128.png"}},
		{set: "flat", sel: Selection{Kind: Chaser, Variant: "pink", Size: 40},
			names: []string{"chaser_pink_40x40.png"}},
		{set: "flat", sel: Selection{Kind: Wall, Variant: "neon", Size: 32},
			names: []string{"wall_neon_32x32.png"}},
		{set: "flat", sel: Selection{Kind: Wall, Size: 32},
			names: []string{"wall_32x32.png"}},
		{set: "sheets", sel: Selection{},
			names: []string{"pacmanSpriteSheet.png", "ghosts.png", "centrepoint.png", "powercent.png", "secondTile.png", "forthTile.png"}},
		{set: "sheets", sel: Selection{Kind: Chaser, Variant: "lime"},
			names: []string{"ghosts_lime.png"}},
		{set: "sheets", sel: Selection{Kind: Wall, Variant: "cyan"},
			names: []string{"forthTile.png"}},
		{set: "decorative", sel: Selection{Variant: "lime"},
			names: []string{"runner.png", "pacman.png", "ghost-pink.png", "chaser-lime.png"}},
		{set: "decorative", sel: Selection{Kind: Pellet}, err: ErrNotInSet},
		{set: "flat", sel: Selection{Kind: Chaser, Variant: "magenta"}, err: ErrUnknownVariant},
		{set: "flat", sel: Selection{Kind: Runner, Variant: "red"}, err: ErrUnknownVariant},
		{set: "flat", sel: Selection{Size: 2000}, err: ErrInvalidSize},
		{set: "retro", sel: Selection{}, err: ErrUnknownSet},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%02d-%s", i, test.set), func(t *testing.T) {
			jobs, err := Select(test.set, test.sel)
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("got error %v, want %v", err, test.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			var names []string
			for _, job := range jobs {
				names = append(names, job.Name)
			}
			if fmt.Sprint(names) != fmt.Sprint(test.names) {
				t.Errorf("got %v, want %v", names, test.names)
			}
		})
	}
}

func TestFlatSetSize(t *testing.T) {
	jobs, err := Select("flat", Selection{})
	if err != nil {
		t.Fatal(err)
	}
	// runner 3, chasers 4×3, pellet 3, power-up 3, wall 3
	if len(jobs) != 24 {
		t.Errorf("flat set has %d jobs, want 24", len(jobs))
	}

	jobs, err = Select("flat", Selection{Variant: "cyan"})
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 15 {
		t.Errorf("flat set with one chaser variant has %d jobs, want 15", len(jobs))
	}
}
