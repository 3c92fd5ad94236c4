package scene

import (
	"github.com/oliverbestmann/transforms/transform"
	"github.com/quasilyte/gmath"
	"image/color"
	"iter"
	"math"
	"slices"
)

// Drawable is a node of the scene tree whose properties can be animated.
type Drawable struct {
	transform.Transformable

	Name string

	Alpha    float64
	Position gmath.Vec
	Scale    gmath.Vec
	Size     gmath.Vec
	Rotation float64
	Color    color.NRGBA

	// added on top of Position by wiggle transforms
	WiggleOffset gmath.Vec

	LifetimeStart float64
	LifetimeEnd   float64

	parent   *Drawable
	children []*Drawable
}

func NewDrawable(name string) *Drawable {
	return &Drawable{
		Name:          name,
		Alpha:         1,
		Scale:         gmath.Vec{X: 1, Y: 1},
		Color:         color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		LifetimeStart: -math.MaxFloat64,
		LifetimeEnd:   math.MaxFloat64,
	}
}

// Add attaches children. They share the clock and removal policy of d.
func (d *Drawable) Add(children ...*Drawable) {
	for _, child := range children {
		if child.parent != nil {
			child.parent.Remove(child)
		}

		child.parent = d
		child.SetClock(d.Clock())
		child.SetRemoveCompletedTransforms(d.RemoveCompletedTransforms())

		d.children = append(d.children, child)
	}
}

func (d *Drawable) Remove(child *Drawable) bool {
	idx := slices.Index(d.children, child)
	if idx < 0 {
		return false
	}

	d.children = slices.Delete(d.children, idx, idx+1)
	child.parent = nil

	return true
}

func (d *Drawable) Children() []*Drawable {
	return d.children
}

func (d *Drawable) Parent() *Drawable {
	return d.parent
}

// All yields d and all of its descendants, depth first.
func (d *Drawable) All() iter.Seq[*Drawable] {
	return func(yield func(*Drawable) bool) {
		d.walk(yield)
	}
}

func (d *Drawable) walk(yield func(*Drawable) bool) bool {
	if !yield(d) {
		return false
	}

	for _, child := range d.children {
		if !child.walk(yield) {
			return false
		}
	}

	return true
}

// Find returns the first node in the tree with the given name.
func (d *Drawable) Find(name string) *Drawable {
	for node := range d.All() {
		if node.Name == name {
			return node
		}
	}

	return nil
}

// DrawPosition is the position including the wiggle offset.
func (d *Drawable) DrawPosition() gmath.Vec {
	return d.Position.Add(d.WiggleOffset)
}

// DrawSize is the size after scaling.
func (d *Drawable) DrawSize() gmath.Vec {
	return gmath.Vec{X: d.Size.X * d.Scale.X, Y: d.Size.Y * d.Scale.Y}
}

// Update applies the transforms of the whole tree at the current clock time.
func (d *Drawable) Update() {
	d.UpdateTransforms()

	for _, child := range d.children {
		child.Update()
	}
}

func (d *Drawable) SetClock(clock transform.Clock) {
	d.Transformable.SetClock(clock)

	for _, child := range d.children {
		child.SetClock(clock)
	}
}

func (d *Drawable) SetRemoveCompletedTransforms(remove bool) {
	d.Transformable.SetRemoveCompletedTransforms(remove)

	for _, child := range d.children {
		child.SetRemoveCompletedTransforms(remove)
	}
}

func (d *Drawable) currentTime() float64 {
	if d.Clock() == nil {
		return 0
	}

	return d.Clock().CurrentTime()
}

// IsAlive reports if the current time lies within the lifetime.
func (d *Drawable) IsAlive() bool {
	now := d.currentTime()
	return now >= d.LifetimeStart && now < d.LifetimeEnd
}

// Expire ends the lifetime once all transforms are done.
func (d *Drawable) Expire(calculateLifetimeStart bool) {
	if d.Clock() == nil {
		d.LifetimeEnd = -math.MaxFloat64
		return
	}

	d.LifetimeEnd = d.LatestTransformEndTime()

	if calculateLifetimeStart {
		lowest := math.Inf(1)
		for _, tr := range d.Transforms() {
			lowest = min(lowest, transform.BaseOf(tr).StartTime)
		}

		if math.IsInf(lowest, 1) {
			lowest = -math.MaxFloat64
		}

		d.LifetimeStart = lowest
	}
}

func (d *Drawable) BeginDelayedSequence(delay float64, recursive bool) transform.Scope {
	scopes := []transform.Scope{d.Transformable.BeginDelayedSequence(delay, recursive)}

	if recursive {
		for _, child := range d.children {
			scopes = append(scopes, child.BeginDelayedSequence(delay, true))
		}
	}

	return transform.JoinScopes(scopes...)
}

func (d *Drawable) BeginAbsoluteSequence(startTime float64, recursive bool) transform.Scope {
	scopes := []transform.Scope{d.Transformable.BeginAbsoluteSequence(startTime, recursive)}

	if recursive {
		for _, child := range d.children {
			scopes = append(scopes, child.BeginAbsoluteSequence(startTime, true))
		}
	}

	return transform.JoinScopes(scopes...)
}

// DelayedSequence runs fn with all transforms of the tree delayed.
func (d *Drawable) DelayedSequence(delay float64, fn func()) {
	scope := d.BeginDelayedSequence(delay, true)
	defer scope.End()

	fn()
}

// AbsoluteSequence runs fn with all transforms of the tree starting at startTime.
func (d *Drawable) AbsoluteSequence(startTime float64, fn func()) {
	scope := d.BeginAbsoluteSequence(startTime, true)
	defer scope.End()

	fn()
}

func (d *Drawable) AddDelay(duration float64, recursive bool) {
	d.Transformable.AddDelay(duration)

	if recursive {
		for _, child := range d.children {
			child.AddDelay(duration, true)
		}
	}
}

func (d *Drawable) FinishTransforms(propagate bool, member string) {
	d.Transformable.FinishTransforms(member)

	if propagate {
		for _, child := range d.children {
			child.FinishTransforms(true, member)
		}
	}
}

func (d *Drawable) ClearTransforms(propagate bool, member string) {
	d.ClearTransformsAfter(-math.MaxFloat64, propagate, member)
}

func (d *Drawable) ClearTransformsAfter(time float64, propagate bool, member string) {
	d.Transformable.ClearTransformsAfter(time, member)

	if propagate {
		for _, child := range d.children {
			child.ClearTransformsAfter(time, true, member)
		}
	}
}

func (d *Drawable) ApplyTransformsAt(time float64, propagate bool) {
	d.Transformable.ApplyTransformsAt(time)

	if propagate {
		for _, child := range d.children {
			child.ApplyTransformsAt(time, true)
		}
	}
}
