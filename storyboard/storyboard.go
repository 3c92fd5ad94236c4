package storyboard

import (
	"errors"
	"fmt"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/oliverbestmann/transforms/easing"
	"github.com/oliverbestmann/transforms/scene"
	"github.com/oliverbestmann/transforms/transform"
	"github.com/quasilyte/gmath"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
	"image/color"
	"os"
)

// Storyboard is a declarative timeline of sprites and their animations.
// All times are in milliseconds on the timeline of the clock it is built with.
type Storyboard struct {
	// keep completed transforms, required to scrub backwards
	Retain bool `yaml:"retain"`

	Sprites []Sprite `yaml:"sprites"`
}

type Sprite struct {
	Name     string    `yaml:"name"`
	Position []float64 `yaml:"position"`
	Size     []float64 `yaml:"size"`
	Scale    *float64  `yaml:"scale"`
	Alpha    *float64  `yaml:"alpha"`
	Color    string    `yaml:"color"`
	Rotation float64   `yaml:"rotation"` // degrees

	Commands []Command `yaml:"commands"`
}

type Command struct {
	At       float64 `yaml:"at"`
	Duration float64 `yaml:"duration"`
	Easing   string  `yaml:"easing"`

	// exactly one of the following is set
	Fade   *float64  `yaml:"fade"`
	Move   []float64 `yaml:"move"`
	MoveX  *float64  `yaml:"move_x"`
	MoveY  *float64  `yaml:"move_y"`
	Scale  *float64  `yaml:"scale"`
	Rotate *float64  `yaml:"rotate"` // degrees
	Color  string    `yaml:"color"`
	Resize []float64 `yaml:"resize"`
	Wiggle *Wiggle   `yaml:"wiggle"`
	Loop   *Loop     `yaml:"loop"`
}

type Wiggle struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
}

// Loop repeats its commands. Count is the number of repetitions after the
// first run, -1 repeats forever. Commands are timed relative to the loop start.
type Loop struct {
	Count    int       `yaml:"count"`
	Pause    float64   `yaml:"pause"`
	Commands []Command `yaml:"commands"`
}

var ErrInvalid = errors.New("invalid storyboard")

func Load(path string) (*Storyboard, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read storyboard %q: %w", path, err)
	}

	sb, err := Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("storyboard %q: %w", path, err)
	}

	return sb, nil
}

func Parse(buf []byte) (*Storyboard, error) {
	var sb Storyboard
	if err := yaml.Unmarshal(buf, &sb); err != nil {
		return nil, fmt.Errorf("parse storyboard: %w", err)
	}

	if err := sb.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Int("sprites", len(sb.Sprites)).
		Float64("duration", sb.Duration()).
		Bool("retain", sb.Retain).
		Msg("Storyboard loaded")

	return &sb, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func (sb *Storyboard) Validate() error {
	names := map[string]bool{}

	for _, sprite := range sb.Sprites {
		if sprite.Name == "" {
			return invalid("sprite without a name")
		}

		if names[sprite.Name] {
			return invalid("duplicate sprite %q", sprite.Name)
		}

		names[sprite.Name] = true

		if err := validateVec(sprite.Position); err != nil {
			return invalid("sprite %q position: %s", sprite.Name, err)
		}

		if err := validateVec(sprite.Size); err != nil {
			return invalid("sprite %q size: %s", sprite.Name, err)
		}

		if sprite.Color != "" {
			if _, err := parseColor(sprite.Color); err != nil {
				return invalid("sprite %q: %s", sprite.Name, err)
			}
		}

		for idx, cmd := range sprite.Commands {
			if err := cmd.validate(true); err != nil {
				return invalid("sprite %q command %d: %s", sprite.Name, idx, err)
			}
		}
	}

	return nil
}

func (c *Command) validate(allowLoop bool) error {
	if c.Duration < 0 {
		return fmt.Errorf("negative duration %v", c.Duration)
	}

	if _, ok := easing.ByName(c.Easing); !ok {
		return fmt.Errorf("unknown easing %q", c.Easing)
	}

	actions := 0
	for _, set := range []bool{
		c.Fade != nil, c.Move != nil, c.MoveX != nil, c.MoveY != nil, c.Scale != nil,
		c.Rotate != nil, c.Color != "", c.Resize != nil, c.Wiggle != nil, c.Loop != nil,
	} {
		if set {
			actions++
		}
	}

	if actions != 1 {
		return fmt.Errorf("expected exactly one action, got %d", actions)
	}

	switch {
	case c.Move != nil:
		return validateVec(c.Move)

	case c.Resize != nil:
		return validateVec(c.Resize)

	case c.Color != "":
		_, err := parseColor(c.Color)
		return err

	case c.Loop != nil:
		if !allowLoop {
			return fmt.Errorf("loops can not be nested")
		}

		if c.Loop.Count < -1 {
			return fmt.Errorf("invalid loop count %d", c.Loop.Count)
		}

		for idx, nested := range c.Loop.Commands {
			if err := nested.validate(false); err != nil {
				return fmt.Errorf("loop command %d: %w", idx, err)
			}
		}
	}

	return nil
}

func validateVec(values []float64) error {
	if values != nil && len(values) != 2 {
		return fmt.Errorf("expected two values, got %d", len(values))
	}

	return nil
}

func vecOf(values []float64) gmath.Vec {
	return gmath.Vec{X: values[0], Y: values[1]}
}

func parseColor(value string) (color.NRGBA, error) {
	c, err := colorful.Hex(value)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", value, err)
	}

	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Duration is the time at which the last finite command ends. Endless
// loops count with a single iteration.
func (sb *Storyboard) Duration() float64 {
	var end float64

	for _, sprite := range sb.Sprites {
		for _, cmd := range sprite.Commands {
			end = max(end, cmd.end())
		}
	}

	return end
}

func (c *Command) end() float64 {
	if c.Loop == nil {
		return c.At + c.Duration
	}

	var iteration float64
	for _, nested := range c.Loop.Commands {
		iteration = max(iteration, nested.end())
	}

	repeats := float64(max(c.Loop.Count, 0))
	return c.At + iteration + repeats*(iteration+c.Loop.Pause)
}

// Build creates a drawable for every sprite below a common root and schedules
// all commands on the given clock.
func (sb *Storyboard) Build(clock transform.Clock) (*scene.Drawable, error) {
	root := scene.NewDrawable("storyboard")
	root.SetClock(clock)
	root.SetRemoveCompletedTransforms(!sb.Retain)

	for _, sprite := range sb.Sprites {
		d, err := sprite.build()
		if err != nil {
			return nil, err
		}

		root.Add(d)

		for idx := range sprite.Commands {
			sprite.Commands[idx].build(d)
		}
	}

	return root, nil
}

func (s *Sprite) build() (*scene.Drawable, error) {
	d := scene.NewDrawable(s.Name)

	if s.Position != nil {
		d.Position = vecOf(s.Position)
	}

	if s.Size != nil {
		d.Size = vecOf(s.Size)
	}

	if s.Scale != nil {
		d.Scale = gmath.Vec{X: *s.Scale, Y: *s.Scale}
	}

	if s.Alpha != nil {
		d.Alpha = *s.Alpha
	}

	if s.Color != "" {
		c, err := parseColor(s.Color)
		if err != nil {
			return nil, fmt.Errorf("sprite %q: %w", s.Name, err)
		}

		d.Color = c
	}

	d.Rotation = scene.Degrees(s.Rotation)

	return d, nil
}

func (c *Command) build(d *scene.Drawable) *scene.Sequence {
	var seq *scene.Sequence

	d.AbsoluteSequence(c.At, func() {
		seq = d.Delay(0)

		if c.Loop == nil {
			c.schedule(seq)
			return
		}

		for idx := range c.Loop.Commands {
			nested := &c.Loop.Commands[idx]

			seq.Append(func(d *scene.Drawable) *scene.Sequence {
				return nested.schedule(d.Delay(nested.At))
			})
		}
	})

	if c.Loop != nil {
		seq.Loop(c.Loop.Pause, c.Loop.Count)
	}

	return seq
}

// schedule adds the action of a validated command at the cursor of seq
func (c *Command) schedule(seq *scene.Sequence) *scene.Sequence {
	ease, _ := easing.ByName(c.Easing)

	switch {
	case c.Fade != nil:
		return seq.FadeTo(*c.Fade, c.Duration, ease)

	case c.Move != nil:
		return seq.MoveTo(vecOf(c.Move), c.Duration, ease)

	case c.MoveX != nil:
		return seq.MoveToX(*c.MoveX, c.Duration, ease)

	case c.MoveY != nil:
		return seq.MoveToY(*c.MoveY, c.Duration, ease)

	case c.Scale != nil:
		return seq.ScaleToFactor(*c.Scale, c.Duration, ease)

	case c.Rotate != nil:
		return seq.RotateTo(scene.Degrees(*c.Rotate), c.Duration, ease)

	case c.Color != "":
		value, _ := parseColor(c.Color)
		return seq.FadeColor(value, c.Duration, ease)

	case c.Resize != nil:
		return seq.ResizeTo(vecOf(c.Resize), c.Duration, ease)

	case c.Wiggle != nil:
		return seq.Wiggle(c.Wiggle.Amplitude, c.Wiggle.Frequency, c.Duration)
	}

	panic("command without action")
}
