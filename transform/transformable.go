package transform

import (
	"github.com/rs/zerolog/log"
	"math"
)

// Clock provides the owner's timeline in milliseconds. Time may move backwards.
type Clock interface {
	CurrentTime() float64
}

// Transformable schedules and applies transforms for the object embedding it.
// The zero value is ready to use and removes completed transforms.
type Transformable struct {
	clock Clock

	// offset added to the start time of newly scheduled transforms
	transformDelay float64

	retainCompleted bool

	trackers []*Tracker

	lastUpdateTime float64
	updated        bool
}

// Transformer returns the Transformable itself. Types embedding a
// Transformable satisfy Target through it.
func (t *Transformable) Transformer() *Transformable {
	return t
}

func (t *Transformable) Clock() Clock {
	return t.clock
}

func (t *Transformable) SetClock(clock Clock) {
	t.clock = clock
}

func (t *Transformable) currentTime() float64 {
	if t.clock == nil {
		return 0
	}

	return t.clock.CurrentTime()
}

// TransformStartTime is the time newly created transforms start at.
func (t *Transformable) TransformStartTime() float64 {
	return t.currentTime() + t.transformDelay
}

func (t *Transformable) TransformDelay() float64 {
	return t.transformDelay
}

// RemoveCompletedTransforms reports the purge policy. When false, completed
// transforms are retained so the timeline can be rewound.
func (t *Transformable) RemoveCompletedTransforms() bool {
	return !t.retainCompleted
}

func (t *Transformable) SetRemoveCompletedTransforms(remove bool) {
	t.retainCompleted = !remove
}

// Transforms returns all transforms of all groupings.
func (t *Transformable) Transforms() []Transform {
	var result []Transform
	for _, tracker := range t.trackers {
		result = append(result, tracker.Transforms()...)
	}

	return result
}

func (t *Transformable) TransformsForTargetMember(member string) []Transform {
	var result []Transform

	if tracker := t.trackerFor(member); tracker != nil {
		for _, tr := range tracker.Transforms() {
			if tr.base().member == member {
				result = append(result, tr)
			}
		}
	}

	return result
}

// LatestTransformEndTime is one past the end of the latest transform, or the
// transform start time if nothing ends later.
func (t *Transformable) LatestTransformEndTime() float64 {
	latest := t.TransformStartTime()

	for _, tracker := range t.trackers {
		for _, tr := range tracker.Transforms() {
			if end := tr.base().EndTime; end > latest {
				latest = end + 1
			}
		}
	}

	return latest
}

// UpdateTransforms applies all transforms at the clock's current time.
// Call it once per frame.
func (t *Transformable) UpdateTransforms() {
	t.transformDelay = 0

	if len(t.trackers) == 0 || t.clock == nil {
		return
	}

	t.updateTransforms(t.clock.CurrentTime(), false)
}

// ApplyTransformsAt jumps to an arbitrary time. Only valid when completed
// transforms are retained.
func (t *Transformable) ApplyTransformsAt(time float64) {
	if t.RemoveCompletedTransforms() {
		fail(ErrRemoveCompletedActive, "apply at %v", time)
	}

	t.updateTransforms(time, false)
}

func (t *Transformable) updateTransforms(time float64, forceRewind bool) {
	rewinding := forceRewind || (t.updated && t.lastUpdateTime > time)

	t.lastUpdateTime = time
	t.updated = true

	for _, tracker := range t.trackers {
		tracker.UpdateTransforms(time, rewinding)
	}
}

func (t *Transformable) trackerFor(member string) *Tracker {
	for _, tracker := range t.trackers {
		if tracker.targetMembers.Has(member) {
			return tracker
		}
	}

	return nil
}

func (t *Transformable) trackerForGrouping(grouping string, create bool) *Tracker {
	for _, tracker := range t.trackers {
		if tracker.grouping == grouping {
			return tracker
		}
	}

	if !create {
		return nil
	}

	tracker := newTracker(t, grouping)
	t.trackers = append(t.trackers, tracker)

	return tracker
}

func (t *Transformable) AddTransform(tr Transform) {
	t.AddTransformWithID(tr, 0)
}

// AddTransformWithID adds a transform using a caller provided id for
// ordering transforms that start at the same time. Zero assigns the next id.
func (t *Transformable) AddTransformWithID(tr Transform, id uint64) {
	if t.insertTransform(tr, id) {
		t.catchUp(tr)
	}
}

// reinsertTransforms removes the transforms, resets their progress and adds
// them again with their ids. Catching up runs once all of them are back, so
// they can not supersede each other.
func (t *Transformable) reinsertTransforms(transforms []Transform, modify func(b *Base)) {
	for _, tr := range transforms {
		t.RemoveTransform(tr)
	}

	var inserted []Transform
	for _, tr := range transforms {
		b := tr.base()
		b.resetProgress()
		modify(b)

		if t.insertTransform(tr, b.id) {
			inserted = append(inserted, tr)
		}
	}

	t.catchUp(inserted...)
}

// insertTransform puts the transform into its tracker and reports whether
// it is scheduled. Without a clock it is applied immediately instead.
func (t *Transformable) insertTransform(tr Transform, id uint64) bool {
	b := tr.base()

	if b.target != t {
		fail(ErrWrongTarget, "member %q", b.member)
	}

	if t.clock == nil {
		// no timeline to schedule against, jump straight to the end
		readStartValue(tr)
		apply(tr, b.EndTime)

		log.Trace().Str("member", b.member).Msg("Transform applied immediately without a clock")
		return false
	}

	t.trackerForGrouping(b.grouping, true).AddTransform(tr, id)
	return true
}

// catchUp updates right away if any of the transforms was added in the past.
func (t *Transformable) catchUp(transforms ...Transform) {
	if len(transforms) == 0 {
		return
	}

	now := t.clock.CurrentTime()

	var update, rewind bool
	for _, tr := range transforms {
		b := tr.base()

		if b.StartTime < now || b.EndTime <= now {
			update = true
			rewind = rewind || b.StartTime <= now
		}
	}

	if update {
		t.updateTransforms(now, rewind && !t.RemoveCompletedTransforms())
	}
}

func (t *Transformable) RemoveTransform(tr Transform) {
	if tracker := t.trackerForGrouping(tr.base().grouping, false); tracker != nil {
		tracker.RemoveTransform(tr)
	}
}

// ClearTransforms removes all transforms, or only those of member if it
// is not empty.
func (t *Transformable) ClearTransforms(member string) {
	t.ClearTransformsAfter(-math.MaxFloat64, member)
}

func (t *Transformable) ClearTransformsAfter(time float64, member string) {
	if member != "" {
		if tracker := t.trackerFor(member); tracker != nil {
			tracker.ClearTransformsAfter(time, member)
		}

		return
	}

	for _, tracker := range t.trackers {
		tracker.ClearTransformsAfter(time, "")
	}
}

// FinishTransforms jumps every non looping transform to its end value and
// removes it.
func (t *Transformable) FinishTransforms(member string) {
	if member != "" {
		if tracker := t.trackerFor(member); tracker != nil {
			tracker.FinishTransforms(member)
		}

		return
	}

	for _, tracker := range t.trackers {
		tracker.FinishTransforms("")
	}
}

func (t *Transformable) AddDelay(duration float64) {
	t.transformDelay += duration
}
