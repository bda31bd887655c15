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
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"seehuhn.de/go/sprite/palette"
)

// File names written next to the sprites.
const (
	PreviewName  = "preview_sheet.png"
	ManifestName = "manifest.json"
)

// WritePNG encodes img as PNG. The encoding is deterministic.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG writes img to the named file.
func SavePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = WritePNG(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Manifest describes the files of a generator run.
type Manifest struct {
	Set   string         `json:"set"`
	Files []ManifestFile `json:"files"`
}

// ManifestFile describes one output file.
type ManifestFile struct {
	Name   string          `json:"name"`
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Frames []ManifestFrame `json:"frames"`
}

// ManifestFrame describes one frame of an output file.
type ManifestFrame struct {
	Style   string  `json:"style"`
	Kind    string  `json:"kind"`
	Variant string  `json:"variant,omitempty"`
	Heading string  `json:"heading,omitempty"`
	Mouth   float64 `json:"mouth,omitempty"`
}

// NewManifest describes the files produced by jobs.
func NewManifest(set string, jobs []Job) *Manifest {
	m := &Manifest{Set: set, Files: make([]ManifestFile, 0, len(jobs))}
	for _, job := range jobs {
		b := job.Bounds()
		file := ManifestFile{
			Name:   job.Name,
			Width:  b.Dx(),
			Height: b.Dy(),
			Frames: make([]ManifestFrame, len(job.Frames)),
		}
		for i, f := range job.Frames {
			frame := ManifestFrame{
				Style:   f.Style.String(),
				Kind:    f.Kind.String(),
				Variant: f.variant(),
				Mouth:   f.Mouth,
			}
			if f.hasHeading() {
				frame.Heading = f.Heading.String()
			}
			file.Frames[i] = frame
		}
		m.Files = append(m.Files, file)
	}
	return m
}

// Encode writes m as indented JSON.
func (m *Manifest) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

// Generator writes sprite files to disk.
type Generator struct {
	// Palette supplies the colours. If nil, palette.Default() is used.
	Palette *palette.Palette

	Log zerolog.Logger
}

func (g *Generator) palette() *palette.Palette {
	if g.Palette == nil {
		return palette.Default()
	}
	return g.Palette
}

// Generate renders the jobs and writes one PNG file per job into dir,
// creating dir if necessary. It returns the paths of the files written.
// Nothing is written unless all jobs render successfully.
func (g *Generator) Generate(dir string, jobs []Job) ([]string, error) {
	pal := g.palette()
	images := make([]*image.RGBA, len(jobs))
	for i, job := range jobs {
		img, err := job.Render(pal)
		if err != nil {
			return nil, err
		}
		images[i] = img
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	var written []string
	for i, job := range jobs {
		name := filepath.Join(dir, job.Name)
		if err := SavePNG(name, images[i]); err != nil {
			return written, err
		}
		b := images[i].Bounds()
		g.Log.Info().
			Str("file", name).
			Int("width", b.Dx()).
			Int("height", b.Dy()).
			Int("frames", len(job.Frames)).
			Msg("sprite written")
		written = append(written, name)
	}
	return written, nil
}

// WritePreview renders a contact sheet of the jobs into dir.
func (g *Generator) WritePreview(dir string, jobs []Job, scale int) (string, error) {
	img, err := Preview(jobs, g.palette(), scale)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := filepath.Join(dir, PreviewName)
	if err := SavePNG(name, img); err != nil {
		return "", err
	}
	g.Log.Info().
		Str("file", name).
		Int("sprites", len(jobs)).
		Int("scale", scale).
		Msg("preview written")
	return name, nil
}

// WriteManifest writes the manifest of jobs into dir.
func (g *Generator) WriteManifest(dir, set string, jobs []Job) (name string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name = filepath.Join(dir, ManifestName)
	f, err := os.Create(name)
	if err != nil {
		return "", err
	}
	err = NewManifest(set, jobs).Encode(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("manifest: %w", err)
	}
	g.Log.Debug().Str("file", name).Int("files", len(jobs)).Msg("manifest written")
	return name, nil
}
