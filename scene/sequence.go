package scene

import (
	"github.com/oliverbestmann/transforms/easing"
	"github.com/oliverbestmann/transforms/transform"
	"github.com/quasilyte/gmath"
	"image/color"
)

// Sequence chains animations of a Drawable. Every animation added through
// the sequence starts at its cursor.
type Sequence struct {
	*transform.Sequence[*Drawable]
}

func wrap(seq *transform.Sequence[*Drawable]) *Sequence {
	return &Sequence{Sequence: seq}
}

func (s *Sequence) Delay(duration float64) *Sequence {
	s.Sequence.Delay(duration)
	return s
}

func (s *Sequence) Then() *Sequence {
	s.Sequence.Then()
	return s
}

func (s *Sequence) ThenDelay(delay float64) *Sequence {
	s.Sequence.ThenDelay(delay)
	return s
}

func (s *Sequence) Loop(pause float64, count int) *Sequence {
	s.Sequence.Loop(pause, count)
	return s
}

// Append runs generator at the cursor and adds its transforms to s.
func (s *Sequence) Append(generator func(d *Drawable) *Sequence) *Sequence {
	s.Sequence.Append(func(d *Drawable) *transform.Sequence[*Drawable] {
		if child := generator(d); child != nil {
			return child.Sequence
		}

		return nil
	})

	return s
}

// Expire ends the lifetime of the origin after all of its transforms.
func (s *Sequence) Expire() *Sequence {
	s.Origin().Expire(false)
	return s
}

func (s *Sequence) FadeTo(alpha, duration float64, ease easing.Func) *Sequence {
	return s.Append(func(d *Drawable) *Sequence { return d.FadeTo(alpha, duration, ease) })
}

func (s *Sequence) FadeIn(duration float64, ease easing.Func) *Sequence {
	return s.Append(func(d *Drawable) *Sequence { return d.FadeIn(duration, ease) })
}

func (s *Sequence) FadeInFromZero(duration float64, ease easing.Func) *Sequence {
	return s.Append(func(d *Drawable) *Sequence { return d.FadeInFromZero(duration, ease) })
}

func (s *Sequence) FadeOut(duration float64, ease easing.Func) *Sequence {
	return s.Append(func(d *Drawable) *Sequence { return d.FadeOut(duration, ease) })
}

func (s *Sequence) FadeOutFromOne(duration float64, ease easing.Func) *Sequence {
	return s.Append(func(d *Drawable) *Sequence { return d.FadeOutFromOne(duration, ease) })
}

func (s *Sequence) FadeColor(c color.NRGBA, duration float64, ease easing.Func) *Sequence {
	return s.Append(func(d *Drawable) *Sequence { return d.FadeColor(c, duration, ease) })
}

func (s *Sequence) FlashColor(c color.NRGBA, duration float64, ease easing.Func) *Sequence {
	return s.Append(func(d *Drawable) *Sequence { return d.FlashColor(c, duration, ease) })
}

func (s *Sequence) MoveTo(position gmath.Vec, duration float64, ease easing.Func) *Sequence {
	return s.Append(func(d *Drawable) *Sequence { return d.MoveTo(position, duration, ease) })
}

func (s *Sequence) MoveToX(x, duration float64, ease easing.Func) *Sequence {
	return s.Append(func(d *Drawable) *Sequence { return d.MoveToX(x, duration, ease) })
}

func (s *Sequence) MoveToY(y, duration float64, ease easing.Func) *Sequence {
	return s.Append(func(d *Drawable) *Sequence { return d.MoveToY(y, duration, ease) })
}

func (s *Sequence) MoveToOffset(offset gmath.Vec, duration float64, ease easing.Func) *Sequence {
	return s.Append(func(d *Drawable) *Sequence { return d.MoveToOffset(offset, duration, ease) })
}

func (s *Sequence) RotateTo(rotation, duration float64, ease easing.Func) *Sequence {
	return s.Append(func(d *Drawable) *Sequence { return d.RotateTo(rotation, duration, ease) })
}

func (s *Sequence) ScaleTo(scale gmath.Vec, duration float64, ease easing.Func) *Sequence {
	return s.Append(func(d *Drawable) *Sequence { return d.ScaleTo(scale, duration, ease) })
}

func (s *Sequence) ScaleToFactor(factor, duration float64, ease easing.Func) *Sequence {
	return s.Append(func(d *Drawable) *Sequence { return d.ScaleToFactor(factor, duration, ease) })
}

func (s *Sequence) ResizeTo(size gmath.Vec, duration float64, ease easing.Func) *Sequence {
	return s.Append(func(d *Drawable) *Sequence { return d.ResizeTo(size, duration, ease) })
}

func (s *Sequence) ResizeWidthTo(width, duration float64, ease easing.Func) *Sequence {
	return s.Append(func(d *Drawable) *Sequence { return d.ResizeWidthTo(width, duration, ease) })
}

func (s *Sequence) ResizeHeightTo(height, duration float64, ease easing.Func) *Sequence {
	return s.Append(func(d *Drawable) *Sequence { return d.ResizeHeightTo(height, duration, ease) })
}

func (s *Sequence) Wiggle(amplitude, frequency, duration float64) *Sequence {
	return s.Append(func(d *Drawable) *Sequence { return d.Wiggle(amplitude, frequency, duration) })
}
