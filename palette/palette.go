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

// Package palette holds the named colours sprites are painted with.
package palette

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Colour names of the flat, outlined style.
const (
	Outline      = "outline"
	RunnerBody   = "runner"
	EyeWhite     = "eye.white"
	EyePupil     = "eye.pupil"
	Pellet       = "pellet"
	PowerUp      = "powerup"
	PowerUpGlow  = "powerup.glow"
	Highlight    = "highlight"
	Wall         = "wall"
	WallAccent   = "wall.accent"
	Floor        = "floor"
	ChaserPrefix = "chaser."
	ThemePrefix  = "theme."
)

// Colour names of the glowing neon style.
const (
	NeonRunner       = "neon.runner"
	NeonChaserPrefix = "neon.chaser."
	NeonPellet       = "neon.pellet"
	NeonPowerUp      = "neon.powerup"
	NeonWall         = "neon.wall"
	NeonWallPrefix   = "neon.border."
	NeonBackground   = "neon.background"
	NeonEye          = "neon.eye"
	NeonPupil        = "neon.pupil"
	NeonHighlight    = "neon.highlight"
)

// ErrUnknownColour is returned when an override names a colour
// the palette does not have.
var ErrUnknownColour = errors.New("unknown colour name")

// Palette maps symbolic colour names to colours.
// A Palette is never modified after construction.
type Palette struct {
	colors map[string]color.NRGBA
}

// New builds a palette from hex colour strings.
func New(entries map[string]string) (*Palette, error) {
	p := &Palette{colors: make(map[string]color.NRGBA, len(entries))}
	for name, hex := range entries {
		c, err := ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("colour %q: %w", name, err)
		}
		p.colors[name] = c
	}
	return p, nil
}

func mustNew(entries map[string]string) *Palette {
	p, err := New(entries)
	if err != nil {
		panic(err)
	}
	return p
}

// Flat returns the palette of the flat, outlined style.
func Flat() *Palette {
	p := mustNew(map[string]string{
		Outline:     "#0B0F2B",
		RunnerBody:  "#FFD93D",
		Pellet:      "#FFE66D",
		PowerUp:     "#FF6B6B",
		PowerUpGlow: "#FFE66D",
		Wall:        "#2C3E50",
		WallAccent:  "#34495E",
		Floor:       "#1A1A2E",

		ChaserPrefix + "red":    "#FF6B6B",
		ChaserPrefix + "pink":   "#F8A5C2",
		ChaserPrefix + "cyan":   "#4ECDC4",
		ChaserPrefix + "orange": "#FF9F43",

		ThemePrefix + "neon.primary":     "#00F5FF",
		ThemePrefix + "neon.secondary":   "#FF00FF",
		ThemePrefix + "sunset.primary":   "#FF6B35",
		ThemePrefix + "sunset.secondary": "#F7C59F",
		ThemePrefix + "forest.primary":   "#2D5A27",
		ThemePrefix + "forest.secondary": "#6B8E23",
		ThemePrefix + "cyber.primary":    "#7B2CBF",
		ThemePrefix + "cyber.secondary":  "#E040FB",
	})
	p.colors[EyeWhite] = nrgba(colornames.White)
	p.colors[EyePupil] = p.colors[Outline]
	p.colors[Highlight] = nrgba(colornames.White)
	return p
}

// Neon returns the palette of the glowing neon style.
func Neon() *Palette {
	p := mustNew(map[string]string{
		NeonRunner:     "#22D3EE",
		NeonPellet:     "#22D3EE",
		NeonPowerUp:    "#EC4899",
		NeonWall:       "#1A1A2E",
		NeonBackground: "#0F0F1A",

		NeonChaserPrefix + "magenta": "#EC4899",
		NeonChaserPrefix + "purple":  "#8B5CF6",
		NeonChaserPrefix + "orange":  "#F97316",
		NeonChaserPrefix + "lime":    "#84CC16",

		NeonWallPrefix + "purple": "#8B5CF6",
		NeonWallPrefix + "cyan":   "#22D3EE",
	})
	p.colors[NeonEye] = nrgba(colornames.White)
	p.colors[NeonPupil] = nrgba(colornames.Black)
	p.colors[NeonHighlight] = nrgba(colornames.White)
	return p
}

// Default returns the union of the Flat and Neon palettes.
func Default() *Palette {
	p := Flat()
	maps.Copy(p.colors, Neon().colors)
	return p
}

// Color returns the named colour.
// It panics if the palette has no such colour; colour names used by the
// drawing code are constants, so this indicates a programming error.
func (p *Palette) Color(name string) color.NRGBA {
	c, ok := p.colors[name]
	if !ok {
		panic("palette: missing colour " + strconv.Quote(name))
	}
	return c
}

// Lookup returns the named colour and whether it exists.
func (p *Palette) Lookup(name string) (color.NRGBA, bool) {
	c, ok := p.colors[name]
	return c, ok
}

// Names returns all colour names in sorted order.
func (p *Palette) Names() []string {
	return slices.Sorted(maps.Keys(p.colors))
}

// Hex returns the named colour as a hex string.
func (p *Palette) Hex(name string) string {
	return FormatHex(p.Color(name))
}

// Override returns a copy of p with some colours replaced.
// All names must already exist in p.
func (p *Palette) Override(entries map[string]string) (*Palette, error) {
	res := &Palette{colors: maps.Clone(p.colors)}
	for _, name := range slices.Sorted(maps.Keys(entries)) {
		if _, ok := p.colors[name]; !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownColour, name)
		}
		c, err := ParseHex(entries[name])
		if err != nil {
			return nil, fmt.Errorf("colour %q: %w", name, err)
		}
		res.colors[name] = c
	}
	return res, nil
}

// Load reads a JSON object mapping colour names to hex strings and applies
// it to p as with Override.
func (p *Palette) Load(r io.Reader) (*Palette, error) {
	var entries map[string]string
	dec := json.NewDecoder(r)
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	return p.Override(entries)
}

// ParseHex parses a colour of the form #RRGGBB or #RRGGBBAA.
// The leading '#' is optional.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex colour %q", s)
	}
	if len(h) == 6 {
		v = v<<8 | 0xFF
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// FormatHex formats c as #RRGGBB, or as #RRGGBBAA if c is not opaque.
func FormatHex(c color.NRGBA) string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// WithAlpha returns c with its alpha value replaced by a.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// Transparent is the fully transparent colour, used to cut holes.
var Transparent = color.NRGBA{}

func nrgba(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
