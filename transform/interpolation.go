package transform

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/oliverbestmann/transforms/easing"
	"github.com/quasilyte/gmath"
	"image/color"
	"math"
)

// Lerper is implemented by value types that know how to interpolate
// towards another value of the same type.
type Lerper[T any] interface {
	Lerp(to T, t float64) T
}

// ValueAt returns the value between start and end at the given time.
// Times before startTime yield start, times at or after endTime yield end,
// both without applying the easing.
func ValueAt[T any](time float64, start, end T, startTime, endTime float64, ease easing.Func) T {
	if time < startTime {
		return start
	}

	if time >= endTime {
		return end
	}

	if ease == nil {
		ease = easing.Default
	}

	t := ease((time - startTime) / (endTime - startTime))
	return Lerp(start, end, t)
}

// Lerp interpolates linearly between two values of a supported kind.
// It panics with ErrUnsupportedType for anything else.
func Lerp[T any](start, end T, t float64) T {
	switch start := any(start).(type) {
	case float64:
		return any(gmath.Lerp(start, any(end).(float64), t)).(T)
	case float32:
		return any(float32(gmath.Lerp(float64(start), float64(any(end).(float32)), t))).(T)
	case int:
		return any(lerpInt(start, any(end).(int), t, math.MinInt, math.MaxInt)).(T)
	case int8:
		return any(lerpInt(start, any(end).(int8), t, math.MinInt8, math.MaxInt8)).(T)
	case int16:
		return any(lerpInt(start, any(end).(int16), t, math.MinInt16, math.MaxInt16)).(T)
	case int32:
		return any(lerpInt(start, any(end).(int32), t, math.MinInt32, math.MaxInt32)).(T)
	case int64:
		return any(lerpInt(start, any(end).(int64), t, math.MinInt64, math.MaxInt64)).(T)
	case uint:
		return any(lerpInt(start, any(end).(uint), t, 0, math.MaxUint)).(T)
	case uint8:
		return any(lerpInt(start, any(end).(uint8), t, 0, math.MaxUint8)).(T)
	case uint16:
		return any(lerpInt(start, any(end).(uint16), t, 0, math.MaxUint16)).(T)
	case uint32:
		return any(lerpInt(start, any(end).(uint32), t, 0, math.MaxUint32)).(T)
	case uint64:
		return any(lerpInt(start, any(end).(uint64), t, 0, math.MaxUint64)).(T)

	case gmath.Vec:
		end := any(end).(gmath.Vec)
		return any(start.Add(end.Sub(start).Mulf(t))).(T)

	case Lerper[T]:
		return start.Lerp(end, t)

	case colorful.Color:
		return any(start.BlendLinearRgb(any(end).(colorful.Color), t)).(T)

	case color.NRGBA:
		return any(lerpColor(start, any(end).(color.NRGBA), t)).(T)

	case color.RGBA:
		c := lerpColor(toNRGBA(start), toNRGBA(any(end).(color.RGBA)), t)
		return any(color.RGBAModel.Convert(c).(color.RGBA)).(T)

	case color.Color:
		if end, ok := any(end).(color.Color); ok {
			c := lerpColor(toNRGBA(start), toNRGBA(end), t)
			if result, ok := any(c).(T); ok {
				return result
			}
		}
	}

	fail(ErrUnsupportedType, "%T", start)
	panic("unreachable")
}

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// lerpInt rounds to the nearest integer and saturates at the limits of the
// type, eased values may overshoot.
func lerpInt[I integer](start, end I, t float64, lowest, highest I) I {
	value := math.Round(gmath.Lerp(float64(start), float64(end), t))

	switch {
	case value <= float64(lowest):
		return lowest
	case value >= float64(highest):
		return highest
	}

	return I(value)
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// lerpColor blends the color channels in linear rgb space and the alpha
// channel linearly.
func lerpColor(start, end color.NRGBA, t float64) color.NRGBA {
	blended := colorOf(start).BlendLinearRgb(colorOf(end), t).Clamped()
	r, g, b := blended.RGB255()

	alpha := gmath.Lerp(float64(start.A), float64(end.A), t)

	return color.NRGBA{R: r, G: g, B: b, A: uint8(min(max(alpha+0.5, 0), 255))}
}

func colorOf(c color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
