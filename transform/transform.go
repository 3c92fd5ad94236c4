package transform

import (
	"github.com/oliverbestmann/transforms/easing"
)

// Transform is a change of one member of a Transformable scheduled over a
// window of time. Implementations embed Base, which carries the timing and
// the bookkeeping shared with the tracker.
type Transform interface {
	base() *Base

	// ReadIntoStartValue captures the current value of the target member
	// as the start value of the interpolation.
	ReadIntoStartValue()

	// Apply writes the value at the given time to the target member.
	Apply(time float64)

	// Clone returns an independent copy, used for loop iterations that
	// must leave the original in place.
	Clone() Transform
}

type Base struct {
	StartTime float64
	EndTime   float64

	// LoopCount is the number of remaining repetitions. -1 loops forever.
	LoopCount int

	// LoopDelay is the gap between the end of one iteration and
	// the start of the next.
	LoopDelay float64

	Easing easing.Func

	id       uint64
	member   string
	grouping string
	target   *Transformable

	applied       bool
	appliedToEnd  bool
	hasStartValue bool

	nonRewindable bool
}

// NewBase creates the shared state of a transform acting on member of target.
// An empty grouping defaults to the member itself.
func NewBase(target *Transformable, member, grouping string) Base {
	if grouping == "" {
		grouping = member
	}

	return Base{
		member:   member,
		grouping: grouping,
		target:   target,
		Easing:   easing.Default,
	}
}

func (b *Base) base() *Base {
	return b
}

// BaseOf gives access to the shared state of any transform.
func BaseOf(t Transform) *Base {
	return t.base()
}

// ID is assigned on insertion into a tracker. Zero means not yet inserted.
func (b *Base) ID() uint64 {
	return b.id
}

func (b *Base) TargetMember() string {
	return b.member
}

func (b *Base) TargetGrouping() string {
	return b.grouping
}

func (b *Base) Target() *Transformable {
	return b.target
}

func (b *Base) Applied() bool {
	return b.applied
}

func (b *Base) AppliedToEnd() bool {
	return b.appliedToEnd
}

func (b *Base) HasStartValue() bool {
	return b.hasStartValue
}

func (b *Base) Rewindable() bool {
	return !b.nonRewindable
}

// SetRewindable opts a transform in or out of rewinding. Transforms are
// rewindable by default.
func (b *Base) SetRewindable(rewindable bool) {
	b.nonRewindable = !rewindable
}

func (b *Base) IsLooping() bool {
	return b.LoopCount != 0
}

func (b *Base) Duration() float64 {
	return b.EndTime - b.StartTime
}

// Populate places the transform at the target's current transform start time
// and gives it the provided duration and easing.
func (b *Base) Populate(duration float64, ease easing.Func) {
	if duration < 0 {
		fail(ErrNegativeDuration, "got %v", duration)
	}

	if ease == nil {
		ease = easing.Default
	}

	startTime := b.target.TransformStartTime()

	b.StartTime = startTime
	b.EndTime = startTime + duration
	b.Easing = ease
}

// advanceLoop moves the window to the next iteration and resets the
// application state.
func (b *Base) advanceLoop() {
	period := b.Duration() + b.LoopDelay

	b.StartTime += period
	b.EndTime += period

	b.resetProgress()
}

func (b *Base) resetProgress() {
	b.applied = false
	b.appliedToEnd = false
	b.hasStartValue = false
}

func compareTransforms(a, b Transform) int {
	ab, bb := a.base(), b.base()

	switch {
	case ab.StartTime < bb.StartTime:
		return -1
	case ab.StartTime > bb.StartTime:
		return 1
	case ab.id < bb.id:
		return -1
	case ab.id > bb.id:
		return 1
	default:
		return 0
	}
}

func readStartValue(t Transform) {
	b := t.base()
	if !b.hasStartValue {
		t.ReadIntoStartValue()
		b.hasStartValue = true
	}
}

func apply(t Transform, time float64) {
	t.Apply(time)
	t.base().applied = true
}
