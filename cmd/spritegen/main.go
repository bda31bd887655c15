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

// Command spritegen draws the sprites of the maze chase game and writes
// them to a directory as PNG files.
//
// Usage:
//
//	spritegen [flags]
//
// Run "spritegen -help" for the list of flags. The environment variables
// SPRITEGEN_OUTPUT, SPRITEGEN_SET and SPRITEGEN_LOG_LEVEL supply the
// defaults of -output, -set and -log-level.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"seehuhn.de/go/sprite/palette"
	"seehuhn.de/go/sprite/sprite"
)

// Exit codes.
const (
	exitOK    = 0
	exitIO    = 1
	exitUsage = 2
)

var errUsage = errors.New("invalid arguments")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	kind        string
	variant     string
	output      string
	preview     bool
	set         string
	size        int
	paletteFile string
	scale       int
	manifest    bool
	logLevel    string
	logFile     string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("spritegen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opt := &options{}
	fs.StringVar(&opt.kind, "type", "all", "sprite `kind`: runner, chaser, pellet, powerup, wall or all")
	fs.StringVar(&opt.kind, "t", "all", "shorthand for -type")
	fs.StringVar(&opt.variant, "variant", "", "colour `variant`, e.g. red, pink, cyan or orange for flat chasers")
	fs.StringVar(&opt.variant, "v", "", "shorthand for -variant")
	output := envOr("SPRITEGEN_OUTPUT", "./sprites")
	fs.StringVar(&opt.output, "output", output, "output `directory`")
	fs.StringVar(&opt.output, "o", output, "shorthand for -output")
	fs.BoolVar(&opt.preview, "preview", false, "only write a preview sheet of the selected sprites")
	fs.BoolVar(&opt.preview, "p", false, "shorthand for -preview")
	fs.StringVar(&opt.set, "set", envOr("SPRITEGEN_SET", "flat"), "sprite `set`: flat, sheets or decorative")
	fs.IntVar(&opt.size, "size", 0, "sprite size in `pixels`, replacing the sizes of the set")
	fs.StringVar(&opt.paletteFile, "palette", "", "JSON `file` with colour overrides")
	fs.IntVar(&opt.scale, "scale", 1, "enlargement `factor` for the preview sheet")
	fs.BoolVar(&opt.manifest, "manifest", false, "also write "+sprite.ManifestName)
	fs.StringVar(&opt.logLevel, "log-level", envOr("SPRITEGEN_LOG_LEVEL", "info"), "log `level`")
	fs.StringVar(&opt.logFile, "log-file", "", "also append logs to this `file`")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", errUsage, fs.Arg(0))
	}
	return opt, nil
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func run(args []string, stdout, stderr io.Writer) int {
	opt, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	} else if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, "spritegen:", err)
		}
		return exitUsage
	}

	level, err := zerolog.ParseLevel(opt.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "spritegen: invalid log level %q\n", opt.logLevel)
		return exitUsage
	}
	console := zerolog.ConsoleWriter{Out: stderr, TimeFormat: "2006-01-02 15:04:05"}
	logger := zerolog.New(console).Level(level).With().Timestamp().Logger()

	// validate everything before the first file is touched
	kind, err := sprite.ParseKind(opt.kind)
	if err != nil {
		return fail(logger, err)
	}
	jobs, err := sprite.Select(opt.set, sprite.Selection{
		Kind:    kind,
		Variant: opt.variant,
		Size:    opt.size,
	})
	if err != nil {
		return fail(logger, err)
	}
	if opt.scale < 1 {
		return fail(logger, fmt.Errorf("%w: preview scale %d", errUsage, opt.scale))
	}
	pal, err := loadPalette(opt.paletteFile)
	if err != nil {
		return fail(logger, err)
	}

	if opt.logFile != "" {
		file := &lumberjack.Logger{
			Filename:   opt.logFile,
			MaxSize:    10, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		defer file.Close()
		logger = logger.Output(zerolog.MultiLevelWriter(console, file))
	}

	logger.Info().
		Str("set", opt.set).
		Str("type", kind.String()).
		Str("variant", opt.variant).
		Str("output", opt.output).
		Int("files", len(jobs)).
		Msg("generating sprites")

	g := &sprite.Generator{Palette: pal, Log: logger}
	if opt.preview {
		name, err := g.WritePreview(opt.output, jobs, opt.scale)
		if err != nil {
			return fail(logger, err)
		}
		fmt.Fprintf(stdout, "preview written to %s\n", name)
		return exitOK
	}

	written, err := g.Generate(opt.output, jobs)
	if err != nil {
		return fail(logger, err)
	}
	if opt.manifest {
		if _, err := g.WriteManifest(opt.output, opt.set, jobs); err != nil {
			return fail(logger, err)
		}
	}
	fmt.Fprintf(stdout, "%d sprites written to %s\n", len(written), opt.output)
	return exitOK
}

func loadPalette(name string) (*palette.Palette, error) {
	pal := palette.Default()
	if name == "" {
		return pal, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pal, err = pal.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errUsage, name, err)
	}
	return pal, nil
}

func fail(logger zerolog.Logger, err error) int {
	logger.Error().Err(err).Msg("sprite generation failed")
	return exitCode(err)
}

// exitCode maps err to the process exit status.
func exitCode(err error) int {
	for _, target := range []error{
		errUsage,
		sprite.ErrUnknownKind,
		sprite.ErrUnknownVariant,
		sprite.ErrInvalidSize,
		sprite.ErrUnknownSet,
		sprite.ErrNotInSet,
	} {
		if errors.Is(err, target) {
			return exitUsage
		}
	}
	return exitIO
}
