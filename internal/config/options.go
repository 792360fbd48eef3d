package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

type Scene string

const (
	SceneDance    Scene = "dance"
	SceneCarousel Scene = "carousel"
	ScenePage     Scene = "page"
)

// Options are the run-time settings taken from the command line.
type Options struct {
	Scene      Scene
	Images     []string
	Music      string
	Width      int
	Height     int
	Seed       int64
	Fullscreen bool
	Quiet      bool
}

// Parse reads options from args (without the program name). Positional
// arguments are appended to the image list.
func Parse(args []string) (Options, error) {
	var (
		opts   Options
		scene  string
		images string
	)

	fs := flag.NewFlagSet("ambient-scenes", flag.ContinueOnError)
	fs.StringVar(&scene, "scene", string(ScenePage), "scene to show: dance, carousel or page")
	fs.StringVar(&images, "images", "", "comma separated image paths for the carousel")
	fs.StringVar(&opts.Music, "music", "", "optional wav, mp3 or flac file looped behind the dance scene")
	fs.IntVar(&opts.Width, "width", WindowWidth, "window width")
	fs.IntVar(&opts.Height, "height", WindowHeight, "window height")
	fs.Int64Var(&opts.Seed, "seed", 0, "particle seed, 0 picks one from the clock")
	fs.BoolVar(&opts.Fullscreen, "fullscreen", false, "start fullscreen")
	fs.BoolVar(&opts.Quiet, "quiet", false, "disable logging")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}

	opts.Scene = Scene(scene)
	opts.Images = splitList(images)
	opts.Images = append(opts.Images, fs.Args()...)

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func (o Options) Validate() error {
	var errs []error
	switch o.Scene {
	case SceneDance, SceneCarousel, ScenePage:
	default:
		errs = append(errs, fmt.Errorf("unknown scene %q", o.Scene))
	}
	if o.Width <= 0 || o.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid window size %dx%d", o.Width, o.Height))
	}
	return errors.Join(errs...)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
