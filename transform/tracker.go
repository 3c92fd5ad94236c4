package transform

import (
	"github.com/rs/zerolog/log"
	"math"
)

// Tracker owns all transforms of one Transformable that share a target
// grouping and steps them along the owner's timeline.
type Tracker struct {
	owner    *Transformable
	grouping string

	transforms       sortedTransforms
	currentID        uint64
	targetMembers    Set[string]
	lastAppliedIndex map[string]int

	// scratch set used while rewinding
	appliedToEndReverts Set[string]
}

func newTracker(owner *Transformable, grouping string) *Tracker {
	return &Tracker{
		owner:            owner,
		grouping:         grouping,
		lastAppliedIndex: make(map[string]int),
	}
}

func (tr *Tracker) TargetGrouping() string {
	return tr.grouping
}

// Transforms returns the tracked transforms in application order.
// The slice must not be modified.
func (tr *Tracker) Transforms() []Transform {
	return tr.transforms.Values()
}

func (tr *Tracker) TargetMembers() *Set[string] {
	return &tr.targetMembers
}

// UpdateTransforms applies all transforms to the given time. rewinding
// signals that time moved backwards since the previous call.
func (tr *Tracker) UpdateTransforms(time float64, rewinding bool) {
	removeCompleted := tr.owner.RemoveCompletedTransforms()

	if rewinding && !removeCompleted {
		tr.rewind(time)
	}

	for i := tr.lastApplied(""); i < tr.transforms.Len(); i++ {
		t := tr.transforms.At(i)
		b := t.base()

		if time < b.StartTime {
			break
		}

		canRewind := !removeCompleted && b.Rewindable()
		flushAppliedCache := false

		if !b.applied {
			// first update of this transform. Pending transforms on the same member
			// were added before this one, later ones are removed on insertion.
			for j := tr.lastApplied(b.member); j < i; j++ {
				u := tr.transforms.At(j)
				ub := u.base()

				if ub.member != b.member {
					continue
				}

				if !ub.appliedToEnd {
					// hand over at exactly the start time of the new transform
					apply(u, b.StartTime)
				}

				if !canRewind {
					log.Trace().
						Str("member", ub.member).
						Uint64("id", ub.id).
						Msg("Superseded transform removed")

					tr.transforms.RemoveAt(j)
					flushAppliedCache = true
					j--
					i--
				} else {
					ub.appliedToEnd = true
				}
			}
		}

		readStartValue(t)

		if !b.appliedToEnd {
			apply(t, time)

			b.appliedToEnd = time >= b.EndTime

			if b.appliedToEnd {
				if !canRewind {
					tr.transforms.RemoveAt(i)
					flushAppliedCache = true
					i--
				}

				if b.IsLooping() {
					if b.LoopCount > 0 {
						b.LoopCount--
					}

					remaining := b.LoopCount

					if canRewind {
						// the finished iteration stays in place for rewinding
						b.LoopCount = 0
						t = t.Clone()
						b = t.base()
						b.LoopCount = remaining
					}

					b.advanceLoop()

					log.Trace().
						Str("member", b.member).
						Int("remaining", remaining).
						Float64("start", b.StartTime).
						Msg("Loop iteration scheduled")

					// may land below the current index, applying a transform twice is harmless
					tr.transforms.Add(t)
					flushAppliedCache = true
				}
			}
		}

		if flushAppliedCache {
			tr.resetLastAppliedCache()
		} else if b.appliedToEnd {
			// everything before a fully applied transform is complete as well
			tr.lastAppliedIndex[b.member] = i + 1
		}
	}
}

func (tr *Tracker) rewind(time float64) {
	tr.resetLastAppliedCache()
	tr.appliedToEndReverts.Clear()

	for i := tr.transforms.Len() - 1; i >= 0; i-- {
		t := tr.transforms.At(i)
		b := t.base()

		if !b.applied || !b.Rewindable() {
			continue
		}

		if time >= b.StartTime {
			// inside or past the window. Only the latest transform per member is
			// reopened, the forward pass cuts all earlier ones again.
			if !tr.appliedToEndReverts.Has(b.member) {
				b.appliedToEnd = false
				tr.appliedToEndReverts.Insert(b.member)
			}
		} else {
			// rewound before the start: restore the start value and unschedule
			t.Apply(time)
			b.applied = false
			b.appliedToEnd = false
		}
	}
}

// AddTransform inserts a transform. A customID of zero assigns the next id.
// Transforms on the same member that start no earlier are dropped.
func (tr *Tracker) AddTransform(t Transform, customID uint64) {
	b := t.base()

	if b.grouping != tr.grouping {
		fail(ErrGroupingMismatch, "%q does not match %q", b.grouping, tr.grouping)
	}

	if b.id != 0 && tr.transforms.IndexOf(t) >= 0 {
		fail(ErrDuplicateTransform, "member %q, id %d", b.member, b.id)
	}

	tr.targetMembers.Insert(b.member)

	if customID != 0 {
		b.id = customID
	} else {
		tr.currentID++
		b.id = tr.currentID
	}

	idx := tr.transforms.Add(t)
	tr.resetLastAppliedCache()

	for i := idx + 1; i < tr.transforms.Len(); i++ {
		u := tr.transforms.At(i)
		if u.base().member == b.member {
			tr.transforms.RemoveAt(i)
			i--
		}
	}
}

func (tr *Tracker) RemoveTransform(t Transform) {
	tr.transforms.Remove(t)
	tr.resetLastAppliedCache()
}

// ClearTransformsAfter removes every transform starting at or after time.
// An empty member clears all members.
func (tr *Tracker) ClearTransformsAfter(time float64, member string) {
	tr.resetLastAppliedCache()

	tr.transforms.RemoveFunc(func(t Transform) bool {
		b := t.base()
		return (member == "" || b.member == member) && b.StartTime >= time
	})
}

// FinishTransforms applies every non looping transform at its end time and
// removes it. An empty member finishes all members.
func (tr *Tracker) FinishTransforms(member string) {
	shouldFlush := func(t Transform) bool {
		b := t.base()
		return !b.IsLooping() && (member == "" || b.member == member)
	}

	var toFlush []Transform
	for _, t := range tr.transforms.Values() {
		if shouldFlush(t) {
			toFlush = append(toFlush, t)
		}
	}

	tr.transforms.RemoveFunc(shouldFlush)
	tr.resetLastAppliedCache()

	for _, t := range toFlush {
		readStartValue(t)
		apply(t, t.base().EndTime)
	}
}

// lastApplied returns the index up to which transforms of member are known
// to be fully applied. An empty member returns the minimum over all members.
func (tr *Tracker) lastApplied(member string) int {
	if member != "" {
		return tr.lastAppliedIndex[member]
	}

	if len(tr.lastAppliedIndex) == 0 {
		return 0
	}

	lowest := math.MaxInt
	for _, idx := range tr.lastAppliedIndex {
		lowest = min(lowest, idx)
	}

	return lowest
}

func (tr *Tracker) resetLastAppliedCache() {
	for member := range tr.targetMembers.Iter() {
		tr.lastAppliedIndex[member] = 0
	}
}
