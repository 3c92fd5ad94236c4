package scene

import (
	"github.com/oliverbestmann/transforms/transform"
	"github.com/quasilyte/gmath"
)

// offsetTransform moves a drawable relative to wherever it is when the
// transform first applies.
type offsetTransform struct {
	transform.Base

	drawable *Drawable
	offset   gmath.Vec

	startValue gmath.Vec
	endValue   gmath.Vec
}

func newOffsetTransform(d *Drawable, offset gmath.Vec) *offsetTransform {
	return &offsetTransform{
		Base:     transform.NewBase(&d.Transformable, MemberPosition, ""),
		drawable: d,
		offset:   offset,
	}
}

func (t *offsetTransform) ReadIntoStartValue() {
	t.startValue = t.drawable.Position
	t.endValue = t.startValue.Add(t.offset)
}

func (t *offsetTransform) Apply(time float64) {
	t.drawable.Position = transform.ValueAt(time, t.startValue, t.endValue, t.StartTime, t.EndTime, t.Easing)
}

func (t *offsetTransform) Clone() transform.Transform {
	clone := *t
	return &clone
}
