package transform

import (
	"github.com/oliverbestmann/transforms/easing"
	"math"
)

// Target is an object that can be animated by a Sequence.
type Target interface {
	Transformer() *Transformable
	BeginAbsoluteSequence(startTime float64, recursive bool) Scope
}

// Sequence collects transforms created on one origin and threads a cursor
// time through them to compose multi step animations.
type Sequence[O Target] struct {
	origin     O
	transforms []Transform

	startTime   float64
	currentTime float64
	lastEndTime float64

	endless bool
}

func NewSequence[O Target](origin O) *Sequence[O] {
	startTime := origin.Transformer().TransformStartTime()

	return &Sequence[O]{
		origin:      origin,
		startTime:   startTime,
		currentTime: startTime,
		lastEndTime: startTime,
	}
}

// To creates a transform moving prop of origin to value, adds it to the
// origin and returns a sequence containing it.
func To[O Target, T any](origin O, member string, prop Property[T], value T, duration float64, ease easing.Func, grouping string) *Sequence[O] {
	target := origin.Transformer()

	tr := NewTypedTransform(target, member, prop, value).WithGrouping(grouping)
	tr.Populate(duration, ease)

	return AddTo(origin, tr)
}

// AddTo adds an already populated transform to origin and returns a
// sequence containing it.
func AddTo[O Target](origin O, tr Transform) *Sequence[O] {
	seq := NewSequence(origin)
	seq.Add(tr)

	origin.Transformer().AddTransform(tr)

	return seq
}

func (s *Sequence[O]) Origin() O {
	return s.origin
}

func (s *Sequence[O]) Transforms() []Transform {
	return s.transforms
}

func (s *Sequence[O]) StartTime() float64 {
	return s.startTime
}

// CurrentTime is the cursor at which appended transforms start.
func (s *Sequence[O]) CurrentTime() float64 {
	return s.currentTime
}

// EndTime is the end of the latest transform, or +Inf for endless sequences.
func (s *Sequence[O]) EndTime() float64 {
	if s.endless {
		return math.Inf(1)
	}

	return s.lastEndTime
}

func (s *Sequence[O]) IsEndless() bool {
	return s.endless
}

// Add records a transform as part of the sequence. The transform must target
// the sequence's origin.
func (s *Sequence[O]) Add(tr Transform) {
	if tr.base().target != s.origin.Transformer() {
		fail(ErrWrongTarget, "sequence origin differs from transform target")
	}

	s.transforms = append(s.transforms, tr)
	s.track(tr)
}

func (s *Sequence[O]) track(tr Transform) {
	b := tr.base()

	if b.LoopCount < 0 {
		s.endless = true
		return
	}

	iterations := float64(b.LoopCount + 1)
	end := b.StartTime + iterations*b.Duration() + float64(b.LoopCount)*b.LoopDelay
	s.lastEndTime = max(s.lastEndTime, end)
}

// Delay moves the cursor forward without adding anything.
func (s *Sequence[O]) Delay(delay float64) *Sequence[O] {
	s.currentTime += delay
	return s
}

// Then moves the cursor to the end of the latest transform.
func (s *Sequence[O]) Then() *Sequence[O] {
	return s.ThenDelay(0)
}

// ThenDelay moves the cursor to the end of the latest transform plus delay.
func (s *Sequence[O]) ThenDelay(delay float64) *Sequence[O] {
	if s.endless {
		fail(ErrEndlessSequence, "sequence started at %v", s.startTime)
	}

	s.currentTime = s.lastEndTime
	return s.Delay(delay)
}

// Append runs generator with the origin's start time set to the cursor and
// merges the transforms it produced.
func (s *Sequence[O]) Append(generator func(origin O) *Sequence[O]) *Sequence[O] {
	var child *Sequence[O]

	func() {
		scope := s.origin.BeginAbsoluteSequence(s.currentTime, true)
		defer scope.End()

		child = generator(s.origin)
	}()

	if child != nil {
		for _, tr := range child.transforms {
			s.Add(tr)
		}
	}

	return s
}

// Loop repeats everything in the sequence count more times, waiting pause
// between iterations. A count of -1 repeats forever.
func (s *Sequence[O]) Loop(pause float64, count int) *Sequence[O] {
	iterationDuration := s.lastEndTime - s.startTime + pause

	// transforms that already started have to be scheduled again with the
	// loop in place, the same is true for transforms purged on completion
	s.origin.Transformer().reinsertTransforms(s.transforms, func(b *Base) {
		b.LoopCount = count
		b.LoopDelay = iterationDuration - b.Duration()
	})

	if count < 0 {
		s.endless = true
	} else {
		s.lastEndTime = s.startTime + iterationDuration*float64(count+1) - pause
	}

	return s
}
