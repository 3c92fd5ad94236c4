package scene

import (
	"github.com/oliverbestmann/transforms/easing"
	"github.com/oliverbestmann/transforms/transform"
	"github.com/quasilyte/gmath"
	"image/color"
	"math"
)

// target members of a Drawable
const (
	MemberAlpha    = "alpha"
	MemberPosition = "position"
	MemberX        = "x"
	MemberY        = "y"
	MemberScale    = "scale"
	MemberSize     = "size"
	MemberWidth    = "width"
	MemberHeight   = "height"
	MemberRotation = "rotation"
	MemberColor    = "color"
	MemberWiggle   = "wiggle"
)

// TransformTo animates an arbitrary property of d.
func TransformTo[T any](d *Drawable, member string, prop transform.Property[T], value T, duration float64, ease easing.Func, grouping string) *Sequence {
	return wrap(transform.To(d, member, prop, value, duration, ease, grouping))
}

func (d *Drawable) Delay(duration float64) *Sequence {
	return wrap(transform.NewSequence(d)).Delay(duration)
}

// DelayUntilTransformsFinished returns a sequence whose cursor lies after
// all currently scheduled transforms.
func (d *Drawable) DelayUntilTransformsFinished() *Sequence {
	return d.Delay(max(0, d.LatestTransformEndTime()-d.currentTime()))
}

func (d *Drawable) FadeTo(alpha, duration float64, ease easing.Func) *Sequence {
	return TransformTo(d, MemberAlpha, transform.Pointer(&d.Alpha), alpha, duration, ease, "")
}

func (d *Drawable) FadeIn(duration float64, ease easing.Func) *Sequence {
	return d.FadeTo(1, duration, ease)
}

func (d *Drawable) FadeInFromZero(duration float64, ease easing.Func) *Sequence {
	return d.FadeTo(0, 0, nil).FadeIn(duration, ease)
}

func (d *Drawable) FadeOut(duration float64, ease easing.Func) *Sequence {
	return d.FadeTo(0, duration, ease)
}

func (d *Drawable) FadeOutFromOne(duration float64, ease easing.Func) *Sequence {
	return d.FadeTo(1, 0, nil).FadeOut(duration, ease)
}

func (d *Drawable) FadeColor(c color.NRGBA, duration float64, ease easing.Func) *Sequence {
	return TransformTo(d, MemberColor, transform.Pointer(&d.Color), c, duration, ease, "")
}

// FlashColor jumps to c and fades back to the current color.
func (d *Drawable) FlashColor(c color.NRGBA, duration float64, ease easing.Func) *Sequence {
	endValue := d.Color
	return d.FadeColor(c, 0, nil).FadeColor(endValue, duration, ease)
}

func (d *Drawable) MoveTo(position gmath.Vec, duration float64, ease easing.Func) *Sequence {
	return TransformTo(d, MemberPosition, transform.Pointer(&d.Position), position, duration, ease, "")
}

func (d *Drawable) MoveToX(x, duration float64, ease easing.Func) *Sequence {
	prop := transform.Property[float64]{
		Get: func() float64 { return d.Position.X },
		Set: func(value float64) { d.Position.X = value },
	}

	return TransformTo(d, MemberX, prop, x, duration, ease, MemberPosition)
}

func (d *Drawable) MoveToY(y, duration float64, ease easing.Func) *Sequence {
	prop := transform.Property[float64]{
		Get: func() float64 { return d.Position.Y },
		Set: func(value float64) { d.Position.Y = value },
	}

	return TransformTo(d, MemberY, prop, y, duration, ease, MemberPosition)
}

// MoveToOffset moves by offset relative to the position at the time the
// transform starts.
func (d *Drawable) MoveToOffset(offset gmath.Vec, duration float64, ease easing.Func) *Sequence {
	tr := newOffsetTransform(d, offset)
	tr.Populate(duration, ease)

	return wrap(transform.AddTo(d, tr))
}

// RotateTo rotates to the given angle in radians.
func (d *Drawable) RotateTo(rotation, duration float64, ease easing.Func) *Sequence {
	return TransformTo(d, MemberRotation, transform.Pointer(&d.Rotation), rotation, duration, ease, "")
}

func (d *Drawable) ScaleTo(scale gmath.Vec, duration float64, ease easing.Func) *Sequence {
	return TransformTo(d, MemberScale, transform.Pointer(&d.Scale), scale, duration, ease, "")
}

// ScaleToFactor scales uniformly on both axes.
func (d *Drawable) ScaleToFactor(factor, duration float64, ease easing.Func) *Sequence {
	return d.ScaleTo(gmath.Vec{X: factor, Y: factor}, duration, ease)
}

func (d *Drawable) ResizeTo(size gmath.Vec, duration float64, ease easing.Func) *Sequence {
	return TransformTo(d, MemberSize, transform.Pointer(&d.Size), size, duration, ease, "")
}

func (d *Drawable) ResizeWidthTo(width, duration float64, ease easing.Func) *Sequence {
	prop := transform.Property[float64]{
		Get: func() float64 { return d.Size.X },
		Set: func(value float64) { d.Size.X = value },
	}

	return TransformTo(d, MemberWidth, prop, width, duration, ease, MemberSize)
}

func (d *Drawable) ResizeHeightTo(height, duration float64, ease easing.Func) *Sequence {
	prop := transform.Property[float64]{
		Get: func() float64 { return d.Size.Y },
		Set: func(value float64) { d.Size.Y = value },
	}

	return TransformTo(d, MemberHeight, prop, height, duration, ease, MemberSize)
}

// Wiggle shakes the drawable around its position for the given duration.
// The offset is derived from noise over time, so it is the same when
// replayed or rewound.
func (d *Drawable) Wiggle(amplitude, frequency, duration float64) *Sequence {
	tr := newWiggleTransform(d, amplitude, frequency)
	tr.Populate(duration, easing.Linear)

	return wrap(transform.AddTo(d, tr))
}

// Degrees converts an angle to radians.
func Degrees(deg float64) float64 {
	return deg * math.Pi / 180
}
