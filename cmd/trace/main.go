// Command trace plays a storyboard on a manual clock and logs the state of
// every sprite at fixed steps. Useful to inspect animations without a window.
//
// Usage:
//
//	go run ./cmd/trace -storyboard intro.yaml -step 100 -rewind
package main

import (
	"flag"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/oliverbestmann/transforms/assets"
	"github.com/oliverbestmann/transforms/clock"
	"github.com/oliverbestmann/transforms/config"
	"github.com/oliverbestmann/transforms/scene"
	"github.com/oliverbestmann/transforms/storyboard"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"math"
	"os"
	"time"
)

func main() {
	var (
		configPath     = flag.String("config", "", "path to config.yaml")
		storyboardPath = flag.String("storyboard", "", "storyboard to trace, overrides the config")
		from           = flag.Float64("from", 0, "first sample time in milliseconds")
		to             = flag.Float64("to", -1, "last sample time in milliseconds, defaults to the storyboard duration")
		step           = flag.Float64("step", 100, "time between samples in milliseconds")
		rewind         = flag.Bool("rewind", false, "play the timeline backwards after reaching the end")
		sprite         = flag.String("sprite", "", "only log the sprite with this name")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg := config.Default()
	if *configPath != "" {
		if c, err := config.Load(*configPath); err != nil {
			log.Warn().Err(err).Str("path", *configPath).Msg("Config load failed, using defaults")
		} else {
			cfg = c
		}
	}

	zerolog.SetGlobalLevel(cfg.Level())

	if *storyboardPath != "" {
		cfg.Storyboard = *storyboardPath
	}

	if *step <= 0 {
		log.Fatal().Float64("step", *step).Msg("Step must be positive")
	}

	sb, err := loadStoryboard(cfg.Storyboard)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load storyboard")
	}

	if *rewind && !sb.Retain {
		// rewinding needs the completed transforms
		log.Warn().Msg("Storyboard purges completed transforms, retaining them to rewind")
		sb.Retain = true
	}

	end := *to
	if end < 0 {
		end = sb.Duration()
	}

	c := &clock.Manual{}

	root, err := sb.Build(c)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build storyboard")
	}

	t := &tracer{root: root, clock: c, sprite: *sprite}

	for at := *from; at <= end; at += *step {
		t.sample(at)
	}

	if *rewind {
		for at := end; at >= *from; at -= *step {
			t.sample(at)
		}
	}
}

func loadStoryboard(path string) (*storyboard.Storyboard, error) {
	if path == "" {
		log.Info().Msg("No storyboard configured, tracing the demo")
		return storyboard.Parse(assets.Demo())
	}

	return storyboard.Load(path)
}

type tracer struct {
	root   *scene.Drawable
	clock  *clock.Manual
	sprite string
}

func (t *tracer) sample(at float64) {
	t.clock.Seek(at)
	t.root.Update()

	for _, d := range t.root.Children() {
		if t.sprite != "" && d.Name != t.sprite {
			continue
		}

		color := colorful.Color{
			R: float64(d.Color.R) / 0xff,
			G: float64(d.Color.G) / 0xff,
			B: float64(d.Color.B) / 0xff,
		}

		pos := d.DrawPosition()

		log.Info().
			Float64("time", at).
			Str("sprite", d.Name).
			Float64("alpha", round(d.Alpha)).
			Float64("x", round(pos.X)).
			Float64("y", round(pos.Y)).
			Float64("scale", round(d.Scale.X)).
			Float64("rotation", round(d.Rotation*180/math.Pi)).
			Str("color", color.Hex()).
			Int("transforms", len(d.Transforms())).
			Msg("Sample")
	}
}

func round(value float64) float64 {
	return math.Round(value*1000) / 1000
}
