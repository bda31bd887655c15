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

// Package sprite draws the characters, collectibles and wall tiles of a
// maze chase game.
//
// A sprite is described by a [Spec]. [Render] turns a Spec into an image
// with a transparent background, and a [Job] combines one or more frames
// into a file. The built-in sets, selected with [Select], reproduce the
// asset collections the game ships with.
package sprite

import (
	"errors"
	"fmt"
	"image"
	"slices"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sprite/canvas"
	"seehuhn.de/go/sprite/palette"
)

// Size limits for a single sprite, in pixels.
const (
	MinSize = 8
	MaxSize = 1024
)

// MaxMouth is the widest mouth opening of an animated runner, in degrees.
const MaxMouth = 30

var (
	// ErrUnknownKind is returned for a sprite kind which does not exist,
	// or which is not available in the requested style.
	ErrUnknownKind = errors.New("unknown sprite kind")

	// ErrUnknownVariant is returned for a colour variant which the
	// requested kind does not have.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrInvalidSize is returned for sizes outside [MinSize, MaxSize].
	ErrInvalidSize = errors.New("invalid sprite size")

	// ErrUnknownSet is returned by Select for a set name which does not
	// exist.
	ErrUnknownSet = errors.New("unknown sprite set")

	// ErrNotInSet is returned by Select if the set has no sprites of the
	// requested kind.
	ErrNotInSet = errors.New("kind not in sprite set")
)

// Style selects the visual design of a sprite.
type Style int

const (
	// Flat is the outlined cartoon style with thick dark contours.
	Flat Style = iota

	// Neon is the glowing style of the in-game sprite sheets.
	Neon

	// Decorative is the large glowing style used for menu artwork.
	Decorative
)

func (s Style) String() string {
	switch s {
	case Flat:
		return "flat"
	case Neon:
		return "neon"
	case Decorative:
		return "decorative"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Kind is the type of object a sprite depicts.
type Kind int

const (
	// AnyKind matches every kind in a Selection.
	// It cannot be rendered.
	AnyKind Kind = iota
	Runner
	Chaser
	Pellet
	PowerUp
	Wall
)

// Kinds lists all renderable kinds in output order.
var Kinds = []Kind{Runner, Chaser, Pellet, PowerUp, Wall}

var kindNames = map[Kind]string{
	AnyKind: "all",
	Runner:  "runner",
	Chaser:  "chaser",
	Pellet:  "pellet",
	PowerUp: "powerup",
	Wall:    "wall",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts a kind name, as printed by Kind.String, back to a Kind.
// The name "all" gives AnyKind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownKind, s)
}

// Heading is the direction an animated character faces.
type Heading int

const (
	Right Heading = iota
	Up
	Down
	Left
)

// Headings lists all headings in sprite sheet order.
var Headings = []Heading{Right, Up, Down, Left}

func (h Heading) String() string {
	switch h {
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Heading(%d)", int(h))
	}
}

// unit returns the unit vector pointing in direction h, in y-down
// coordinates.
func (h Heading) unit() vec.Vec2 {
	switch h {
	case Up:
		return vec.Vec2{Y: -1}
	case Down:
		return vec.Vec2{Y: 1}
	case Left:
		return vec.Vec2{X: -1}
	default:
		return vec.Vec2{X: 1}
	}
}

// Spec describes a single sprite.
type Spec struct {
	Style Style
	Kind  Kind

	// Variant selects a colour scheme. The empty string selects the first
	// variant of the kind, if it has any.
	Variant string

	// Size is the width and height of the sprite in pixels.
	Size int

	// Heading is the direction the pupils of chasers look in, and the
	// direction the mouth of an animated neon runner points to.
	Heading Heading

	// Mouth is the opening of an animated neon runner's mouth, in degrees
	// between 0 (closed) and MaxMouth.
	Mouth float64
}

func (s Spec) String() string {
	name := s.Style.String() + "/" + s.Kind.String()
	if v := s.variant(); v != "" {
		name += "/" + v
	}
	return fmt.Sprintf("%s@%d", name, s.Size)
}

// routine draws one kind of sprite in one style.
type routine struct {
	draw     func(c *canvas.Canvas, pal *palette.Palette, s Spec)
	variants []string
}

var routines map[Style]map[Kind]routine

// The drawing functions consult routines for variant names, so the
// table is filled in at init time.
func init() {
	routines = map[Style]map[Kind]routine{
		Flat: {
			Runner:  {draw: flatRunner},
			Chaser:  {draw: flatChaser, variants: []string{"red", "pink", "cyan", "orange"}},
			Pellet:  {draw: flatPellet},
			PowerUp: {draw: flatPowerUp},
			Wall:    {draw: flatWall, variants: []string{"default", "neon", "sunset", "forest", "cyber"}},
		},
		Neon: {
			Runner:  {draw: neonRunner},
			Chaser:  {draw: neonChaser, variants: []string{"magenta", "purple", "orange", "lime"}},
			Pellet:  {draw: neonPellet},
			PowerUp: {draw: neonPowerUp},
			Wall:    {draw: neonWall, variants: []string{"purple", "cyan"}},
		},
		Decorative: {
			Runner: {draw: decorativeRunner},
			Chaser: {draw: decorativeChaser, variants: []string{"magenta", "purple", "orange", "lime"}},
		},
	}
}

// Variants returns the colour variants of the given kind in the given style.
// The first entry is the default. Kinds without colour variants give nil.
func Variants(style Style, kind Kind) []string {
	return slices.Clone(routines[style][kind].variants)
}

// variant returns the effective variant name of s.
func (s Spec) variant() string {
	if s.Variant != "" {
		return s.Variant
	}
	if vv := routines[s.Style][s.Kind].variants; len(vv) > 0 {
		return vv[0]
	}
	return ""
}

// hasHeading reports whether the Heading field affects the image.
func (s Spec) hasHeading() bool {
	switch s.Style {
	case Flat:
		return s.Kind == Chaser
	case Neon:
		return s.Kind == Runner || s.Kind == Chaser
	default:
		return false
	}
}

// Validate checks that s describes a sprite which can be drawn.
func (s Spec) Validate() error {
	rt, ok := routines[s.Style][s.Kind]
	if !ok {
		return fmt.Errorf("%w %s in %s style", ErrUnknownKind, s.Kind, s.Style)
	}
	if s.Variant != "" && !slices.Contains(rt.variants, s.Variant) {
		if len(rt.variants) == 0 {
			return fmt.Errorf("%w %q: %s has no variants", ErrUnknownVariant, s.Variant, s.Kind)
		}
		return fmt.Errorf("%w %q for %s (want one of %s)",
			ErrUnknownVariant, s.Variant, s.Kind, strings.Join(rt.variants, ", "))
	}
	if s.Size < MinSize || s.Size > MaxSize {
		return fmt.Errorf("%w %d (want %d to %d)", ErrInvalidSize, s.Size, MinSize, MaxSize)
	}
	if s.Heading < Right || s.Heading > Left {
		return fmt.Errorf("sprite: invalid heading %d", int(s.Heading))
	}
	if s.Mouth < 0 || s.Mouth > MaxMouth {
		return fmt.Errorf("sprite: mouth opening %g outside [0, %d]", s.Mouth, MaxMouth)
	}
	return nil
}

// Render draws the sprite described by s, using colours from pal.
// The result is a Size×Size image with a transparent background.
func Render(pal *palette.Palette, s Spec) (*image.RGBA, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	c := canvas.New(s.Size, s.Size)
	// every sprite keeps a transparent frame one pixel wide
	c.SetClip(image.Rect(1, 1, s.Size-1, s.Size-1))
	routines[s.Style][s.Kind].draw(c, pal, s)
	return c.Image(), nil
}
