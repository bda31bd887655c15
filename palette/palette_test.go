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

package palette

import (
	"errors"
	"image/color"
	"strings"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#FFD93D", color.NRGBA{R: 0xFF, G: 0xD9, B: 0x3D, A: 0xFF}, false},
		{"0b0f2b", color.NRGBA{R: 0x0B, G: 0x0F, B: 0x2B, A: 0xFF}, false},
		{"#22D3EE64", color.NRGBA{R: 0x22, G: 0xD3, B: 0xEE, A: 0x64}, false},
		{" #000000 ", color.NRGBA{A: 0xFF}, false},
		{"#FFF", color.NRGBA{}, true},
		{"#GGGGGG", color.NRGBA{}, true},
		{"#+12345", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
	}
	for _, test := range tests {
		got, err := ParseHex(test.in)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseHex(%q): error %v, wantErr %t", test.in, err, test.wantErr)
			continue
		}
		if got != test.want {
			t.Errorf("ParseHex(%q) = %v, want %v", test.in, got, test.want)
		}
	}
}

func TestFormatHex(t *testing.T) {
	for _, s := range []string{"#FFD93D", "#22D3EE64", "#00000000"} {
		c, err := ParseHex(s)
		if err != nil {
			t.Fatal(err)
		}
		if got := FormatHex(c); got != s {
			t.Errorf("FormatHex(ParseHex(%q)) = %q", s, got)
		}
	}
}

func TestBuiltinColours(t *testing.T) {
	p := Default()
	tests := map[string]string{
		Outline:                       "#0B0F2B",
		RunnerBody:                    "#FFD93D",
		ChaserPrefix + "cyan":         "#4ECDC4",
		ThemePrefix + "cyber.primary": "#7B2CBF",
		EyeWhite:                      "#FFFFFF",
		EyePupil:                      "#0B0F2B",
		NeonRunner:                    "#22D3EE",
		NeonChaserPrefix + "lime":     "#84CC16",
		NeonWallPrefix + "purple":     "#8B5CF6",
		NeonPupil:                     "#000000",
	}
	for name, want := range tests {
		if got := p.Hex(name); got != want {
			t.Errorf("%s = %s, want %s", name, got, want)
		}
	}

	names := p.Names()
	if len(names) != len(Flat().Names())+len(Neon().Names()) {
		t.Errorf("flat and neon colour names overlap")
	}
}

func TestColorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for a missing colour")
		}
	}()
	Flat().Color("no.such.colour")
}

func TestOverride(t *testing.T) {
	base := Flat()
	p, err := base.Override(map[string]string{RunnerBody: "#112233"})
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Hex(RunnerBody); got != "#112233" {
		t.Errorf("override not applied: %s", got)
	}
	if got := base.Hex(RunnerBody); got != "#FFD93D" {
		t.Errorf("base palette modified: %s", got)
	}

	_, err = base.Override(map[string]string{"runner_body": "#112233"})
	if !errors.Is(err, ErrUnknownColour) {
		t.Errorf("unknown name: got error %v", err)
	}
	_, err = base.Override(map[string]string{RunnerBody: "yellow"})
	if err == nil {
		t.Error("invalid colour accepted")
	}
}

func TestLoad(t *testing.T) {
	p, err := Default().Load(strings.NewReader(`{"neon.runner": "#FFFFFF80"}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Color(NeonRunner); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 0x80}) {
		t.Errorf("neon.runner = %v", got)
	}

	if _, err := Default().Load(strings.NewReader(`["#FFFFFF"]`)); err == nil {
		t.Error("malformed JSON accepted")
	}
}
