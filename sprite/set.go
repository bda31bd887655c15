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
	"slices"
	"strings"

	"golang.org/x/image/draw"

	"seehuhn.de/go/sprite/palette"
)

// Job is an output file made of one or more frames of equal size, laid out
// from left to right.
type Job struct {
	Name   string
	Frames []Spec
}

// Bounds returns the pixel bounds of the rendered job.
func (j Job) Bounds() image.Rectangle {
	if len(j.Frames) == 0 {
		return image.Rectangle{}
	}
	size := j.Frames[0].Size
	return image.Rect(0, 0, size*len(j.Frames), size)
}

// Render draws all frames of the job into one image.
func (j Job) Render(pal *palette.Palette) (*image.RGBA, error) {
	switch len(j.Frames) {
	case 0:
		return nil, fmt.Errorf("sprite: job %q has no frames", j.Name)
	case 1:
		return Render(pal, j.Frames[0])
	}

	size := j.Frames[0].Size
	sheet := image.NewRGBA(j.Bounds())
	for i, f := range j.Frames {
		if f.Size != size {
			return nil, fmt.Errorf("sprite: %s: frame %d has size %d, want %d", j.Name, i, f.Size, size)
		}
		img, err := Render(pal, f)
		if err != nil {
			return nil, fmt.Errorf("%s: frame %d: %w", j.Name, i, err)
		}
		draw.Draw(sheet, image.Rect(i*size, 0, (i+1)*size, size), img, image.Point{}, draw.Src)
	}
	return sheet, nil
}

// Selection restricts which jobs of a set are generated.
type Selection struct {
	// Kind selects the kind of sprite. AnyKind selects every kind in the set.
	Kind Kind

	// Variant restricts Kind to a single colour variant. If Kind is AnyKind,
	// the variant applies to the chasers, and all other kinds use their
	// default variants. The empty string selects the default variants.
	Variant string

	// Size, if non-zero, replaces the sizes of the set.
	Size int
}

// entry is a family of jobs in a set which differ only in size.
type entry struct {
	kind    Kind
	variant string
	extra   bool // only generated when the variant is selected explicitly
	sizes   []int
	job     func(size int) Job
}

// SetNames lists the built-in sprite sets.
func SetNames() []string {
	return []string{"flat", "sheets", "decorative"}
}

func setEntries(name string) ([]entry, bool) {
	switch name {
	case "flat":
		return flatSet(), true
	case "sheets":
		return sheetSet(), true
	case "decorative":
		return decorativeSet(), true
	default:
		return nil, false
	}
}

// Select returns the jobs of the named set which match sel.
func Select(set string, sel Selection) ([]Job, error) {
	entries, ok := setEntries(set)
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownSet, set, strings.Join(SetNames(), ", "))
	}
	if sel.Size != 0 && (sel.Size < MinSize || sel.Size > MaxSize) {
		return nil, fmt.Errorf("%w %d (want %d to %d)", ErrInvalidSize, sel.Size, MinSize, MaxSize)
	}

	variantKind := sel.Kind
	if variantKind == AnyKind {
		variantKind = Chaser
	}
	hasKind := sel.Kind == AnyKind
	var variants []string
	for _, e := range entries {
		if e.kind == sel.Kind {
			hasKind = true
		}
		if e.kind == variantKind && e.variant != "" && !slices.Contains(variants, e.variant) {
			variants = append(variants, e.variant)
		}
	}
	if !hasKind {
		return nil, fmt.Errorf("%w: the %s set has no %s sprites", ErrNotInSet, set, sel.Kind)
	}
	if sel.Variant != "" && !slices.Contains(variants, sel.Variant) {
		if len(variants) == 0 {
			return nil, fmt.Errorf("%w %q: %s sprites have no variants", ErrUnknownVariant, sel.Variant, variantKind)
		}
		return nil, fmt.Errorf("%w %q for %s (want one of %s)",
			ErrUnknownVariant, sel.Variant, variantKind, strings.Join(variants, ", "))
	}

	var jobs []Job
	for _, e := range entries {
		if sel.Kind != AnyKind && e.kind != sel.Kind {
			continue
		}
		if sel.Variant != "" && e.kind == variantKind {
			if e.variant != sel.Variant {
				continue
			}
		} else if e.extra {
			continue
		}

		sizes := e.sizes
		if sel.Size != 0 {
			sizes = []int{sel.Size}
		}
		for _, size := range sizes {
			jobs = append(jobs, e.job(size))
		}
	}
	return jobs, nil
}

// single returns a job constructor for one-frame jobs.
func single(name func(size int) string, style Style, kind Kind, variant string) func(int) Job {
	return func(size int) Job {
		return Job{
			Name:   name(size),
			Frames: []Spec{{Style: style, Kind: kind, Variant: variant, Size: size}},
		}
	}
}

// sized names files like "runner_64x64.png".
func sized(prefix string) func(int) string {
	return func(size int) string {
		return fmt.Sprintf("%s_%dx%d.png", prefix, size, size)
	}
}

// named names files without a size.
func named(name string) func(int) string {
	return func(int) string { return name }
}

// flatSet is the asset collection of the flat style, in several sizes.
func flatSet() []entry {
	res := []entry{{
		kind:  Runner,
		sizes: []int{32, 64, 128},
		job:   single(sized("runner"), Flat, Runner, ""),
	}}
	for _, v := range Variants(Flat, Chaser) {
		res = append(res, entry{
			kind:    Chaser,
			variant: v,
			sizes:   []int{32, 64, 128},
			job:     single(sized("chaser_"+v), Flat, Chaser, v),
		})
	}
	res = append(res,
		entry{kind: Pellet, sizes: []int{8, 16, 32}, job: single(sized("pellet"), Flat, Pellet, "")},
		entry{kind: PowerUp, sizes: []int{16, 32, 64}, job: single(sized("powerup"), Flat, PowerUp, "")},
	)
	for i, v := range Variants(Flat, Wall) {
		prefix := "wall"
		if i > 0 {
			prefix += "_" + v
		}
		res = append(res, entry{
			kind:    Wall,
			variant: v,
			extra:   i > 0,
			sizes:   []int{16, 32, 64},
			job:     single(sized(prefix), Flat, Wall, v),
		})
	}
	return res
}

// sheetSet holds the in-game sprite sheets and tiles of the neon style.
func sheetSet() []entry {
	sizes := []int{neonGrid}

	runnerSheet := func(size int) Job {
		frames := []Spec{{Style: Neon, Kind: Runner, Size: size}}
		for _, h := range Headings {
			for _, mouth := range []float64{15, 30, 15} {
				frames = append(frames, Spec{Style: Neon, Kind: Runner, Size: size, Heading: h, Mouth: mouth})
			}
		}
		return Job{Name: "pacmanSpriteSheet.png", Frames: frames}
	}
	chaserSheet := func(name string, variants ...string) func(int) Job {
		return func(size int) Job {
			var frames []Spec
			for _, v := range variants {
				for _, h := range Headings {
					frames = append(frames, Spec{Style: Neon, Kind: Chaser, Variant: v, Size: size, Heading: h})
				}
			}
			return Job{Name: name, Frames: frames}
		}
	}

	res := []entry{
		{kind: Runner, sizes: sizes, job: runnerSheet},
		{kind: Chaser, sizes: sizes, job: chaserSheet("ghosts.png", "magenta", "purple", "orange")},
	}
	for _, v := range Variants(Neon, Chaser) {
		res = append(res, entry{
			kind:    Chaser,
			variant: v,
			extra:   true,
			sizes:   sizes,
			job:     chaserSheet("ghosts_"+v+".png", v),
		})
	}
	res = append(res,
		entry{kind: Pellet, sizes: sizes, job: single(named("centrepoint.png"), Neon, Pellet, "")},
		entry{kind: PowerUp, sizes: sizes, job: single(named("powercent.png"), Neon, PowerUp, "")},
		entry{kind: Wall, variant: "purple", sizes: sizes, job: single(named("secondTile.png"), Neon, Wall, "purple")},
		entry{kind: Wall, variant: "cyan", sizes: sizes, job: single(named("forthTile.png"), Neon, Wall, "cyan")},
	)
	return res
}

// decorativeSet holds the large menu characters. Every chaser is written
// under its colour name and under the legacy name of the original ghost.
func decorativeSet() []entry {
	runner := []int{decorativeRunnerGrid}
	chaser := []int{decorativeChaserGrid}

	res := []entry{
		{kind: Runner, sizes: runner, job: single(named("runner.png"), Decorative, Runner, "")},
		{kind: Runner, sizes: runner, job: single(named("pacman.png"), Decorative, Runner, "")},
	}
	legacy := []struct{ name, variant string }{
		{"ghost-red.png", "magenta"},
		{"ghost-blue.png", "purple"},
		{"ghost-orange.png", "orange"},
		{"ghost-pink.png", "lime"},
	}
	for _, l := range legacy {
		res = append(res, entry{
			kind:    Chaser,
			variant: l.variant,
			sizes:   chaser,
			job:     single(named(l.name), Decorative, Chaser, l.variant),
		})
	}
	for _, v := range Variants(Decorative, Chaser) {
		res = append(res, entry{
			kind:    Chaser,
			variant: v,
			sizes:   chaser,
			job:     single(named("chaser-"+v+".png"), Decorative, Chaser, v),
		})
	}
	return res
}
