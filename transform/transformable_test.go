package transform

import (
	"github.com/oliverbestmann/transforms/easing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

type testClock struct {
	time float64
}

func (c *testClock) CurrentTime() float64 {
	return c.time
}

type testObject struct {
	Transformable
	value float64
	other float64
}

func newTestObject(clock Clock) *testObject {
	obj := &testObject{}
	obj.SetClock(clock)
	return obj
}

func (o *testObject) moveTo(value, duration float64) *Sequence[*testObject] {
	return To(o, "value", Pointer(&o.value), value, duration, easing.Linear, "")
}

func (o *testObject) otherTo(value, duration float64) *Sequence[*testObject] {
	return To(o, "other", Pointer(&o.other), value, duration, easing.Linear, "")
}

// step moves the clock to time and updates the object
func (o *testObject) step(clock *testClock, time float64) float64 {
	clock.time = time
	o.UpdateTransforms()
	return o.value
}

func recoverError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()

	fn()
	return nil
}

func TestBoundaryClamping(t *testing.T) {
	clock := &testClock{}
	obj := newTestObject(clock)

	obj.moveTo(100, 100)

	assert.Equal(t, 0.0, obj.step(clock, -10))
	assert.Equal(t, 50.0, obj.step(clock, 50))
	assert.Equal(t, 100.0, obj.step(clock, 150))

	assert.Empty(t, obj.Transforms())
}

func TestClampingIgnoresEasing(t *testing.T) {
	for _, ease := range []easing.Func{easing.OutElastic, easing.InBack, easing.OutBounce, easing.None} {
		assert.Equal(t, 10.0, ValueAt(-1, 10.0, 20.0, 0, 100, ease))
		assert.Equal(t, 20.0, ValueAt(100, 10.0, 20.0, 0, 100, ease))
		assert.Equal(t, 20.0, ValueAt(1000, 10.0, 20.0, 0, 100, ease))
	}
}

func TestMonotonicHandOff(t *testing.T) {
	for _, retain := range []bool{false, true} {
		clock := &testClock{}
		obj := newTestObject(clock)
		obj.SetRemoveCompletedTransforms(!retain)

		obj.moveTo(100, 100).Then().Append(func(o *testObject) *Sequence[*testObject] {
			return o.moveTo(200, 100)
		})

		assert.Equal(t, 99.0, obj.step(clock, 99))
		assert.Equal(t, 100.0, obj.step(clock, 100))
		assert.Equal(t, 101.0, obj.step(clock, 101))
		assert.Equal(t, 150.0, obj.step(clock, 150))
	}
}

func TestHandOffForcesEndOfSuperseded(t *testing.T) {
	clock := &testClock{}
	obj := newTestObject(clock)

	obj.moveTo(100, 100)

	// B starts before A ends, A is cut off at its value at B's start
	obj.DelayedSequence(50, func() {
		obj.moveTo(0, 50)
	})

	assert.Equal(t, 25.0, obj.step(clock, 25))

	// jumps over the start of B, A gets applied at exactly 50
	assert.Equal(t, 25.0, obj.step(clock, 75))
	assert.Equal(t, 0.0, obj.step(clock, 100))
}

func TestRewindSymmetry(t *testing.T) {
	clock := &testClock{}
	obj := newTestObject(clock)
	obj.SetRemoveCompletedTransforms(false)

	obj.moveTo(100, 100).Then().Append(func(o *testObject) *Sequence[*testObject] {
		return o.moveTo(200, 100)
	})

	times := []float64{-10, 0, 25, 50, 99, 100, 101, 150, 199, 200, 250}

	var forward []float64
	for _, time := range times {
		forward = append(forward, obj.step(clock, time))
	}

	assert.Equal(t, []float64{0, 0, 25, 50, 99, 100, 101, 150, 199, 200, 200}, forward)

	for idx := len(times) - 1; idx >= 0; idx-- {
		assert.Equal(t, forward[idx], obj.step(clock, times[idx]), "time %v", times[idx])
	}

	// arbitrary jumps in both directions
	assert.Equal(t, 175.0, obj.step(clock, 175))
	assert.Equal(t, 25.0, obj.step(clock, 25))
	assert.Equal(t, 175.0, obj.step(clock, 175))
	assert.Equal(t, 0.0, obj.step(clock, 0))

	assert.Len(t, obj.Transforms(), 2)
}

func TestNonRewindableTransformIsKeptAsIs(t *testing.T) {
	clock := &testClock{}
	obj := newTestObject(clock)
	obj.SetRemoveCompletedTransforms(false)

	seq := obj.moveTo(100, 100)
	seq.Transforms()[0].(*TypedTransform[float64]).SetRewindable(false)

	assert.Equal(t, 50.0, obj.step(clock, 50))
	assert.Equal(t, 100.0, obj.step(clock, 150))

	// completed and removed, nothing rewinds it
	assert.Equal(t, 100.0, obj.step(clock, 50))
	assert.Empty(t, obj.Transforms())
}

func TestPurgeIrreversibility(t *testing.T) {
	clock := &testClock{}
	obj := newTestObject(clock)

	obj.moveTo(100, 100).Then().Append(func(o *testObject) *Sequence[*testObject] {
		return o.moveTo(200, 100)
	})

	assert.Equal(t, 150.0, obj.step(clock, 150))
	require.Len(t, obj.Transforms(), 1)

	// the first transform is gone, the second has not started yet at 50
	assert.Equal(t, 150.0, obj.step(clock, 50))
	assert.Len(t, obj.Transforms(), 1)
}

func TestLoopingWindows(t *testing.T) {
	clock := &testClock{}
	obj := newTestObject(clock)

	tr := NewTypedTransform(&obj.Transformable, "value", Pointer(&obj.value), 100.0).WithStartValue(0)
	tr.Populate(50, easing.Linear)
	tr.LoopCount = 2
	tr.LoopDelay = 10
	obj.AddTransform(tr)

	cases := []struct {
		Time   float64
		Expect float64
	}{
		{25, 50},
		{55, 100},
		{60, 0},
		{85, 50},
		{115, 100},
		{145, 50},
		{175, 100},
		{185, 100},
	}

	for _, c := range cases {
		assert.Equal(t, c.Expect, obj.step(clock, c.Time), "time %v", c.Time)
	}

	assert.Empty(t, obj.Transforms())
}

func TestLoopingJumpOverAllWindows(t *testing.T) {
	clock := &testClock{}
	obj := newTestObject(clock)

	obj.moveTo(100, 50).Loop(10, 2)

	assert.Equal(t, 100.0, obj.step(clock, 1000))
	assert.Empty(t, obj.Transforms())
}

func TestLoopingRereadsStartValue(t *testing.T) {
	clock := &testClock{}
	obj := newTestObject(clock)

	obj.moveTo(100, 50).Loop(10, 1)

	assert.Equal(t, 100.0, obj.step(clock, 55))

	// second iteration starts from the value the first one left behind
	obj.value = 50
	assert.Equal(t, 75.0, obj.step(clock, 85))
}

func TestLoopingWithRetainClones(t *testing.T) {
	clock := &testClock{}
	obj := newTestObject(clock)
	obj.SetRemoveCompletedTransforms(false)

	tr := NewTypedTransform(&obj.Transformable, "value", Pointer(&obj.value), 100.0).WithStartValue(0)
	tr.Populate(50, easing.Linear)
	tr.LoopCount = 2
	tr.LoopDelay = 10
	obj.AddTransform(tr)

	assert.Equal(t, 50.0, obj.step(clock, 145))

	transforms := obj.Transforms()
	require.Len(t, transforms, 3)
	assert.Same(t, tr, transforms[0])
	assert.Equal(t, 0, tr.LoopCount)

	var starts []float64
	for _, u := range transforms {
		starts = append(starts, u.(*TypedTransform[float64]).StartTime)
	}

	assert.Equal(t, []float64{0, 60, 120}, starts)

	// rewinding into the first window does not spawn any further iteration
	assert.Equal(t, 50.0, obj.step(clock, 25))
	assert.Equal(t, 50.0, obj.step(clock, 85))
	assert.Equal(t, 100.0, obj.step(clock, 200))
	assert.Len(t, obj.Transforms(), 3)
}

func TestInfiniteLoop(t *testing.T) {
	clock := &testClock{}
	obj := newTestObject(clock)

	seq := obj.moveTo(100, 50).Loop(0, -1)
	seq.Transforms()[0].(*TypedTransform[float64]).WithStartValue(0)

	assert.Equal(t, 50.0, obj.step(clock, 25))
	assert.Equal(t, 50.0, obj.step(clock, 10_025))
	assert.Len(t, obj.Transforms(), 1)
}

func TestAddingSupersedesLaterTransforms(t *testing.T) {
	clock := &testClock{}
	obj := newTestObject(clock)

	obj.DelayedSequence(200, func() {
		obj.moveTo(100, 100)
	})

	obj.otherTo(10, 300)

	var replacement *Sequence[*testObject]
	obj.DelayedSequence(100, func() {
		replacement = obj.moveTo(50, 100)
	})

	transforms := obj.TransformsForTargetMember("value")
	require.Len(t, transforms, 1)
	assert.Same(t, replacement.Transforms()[0], transforms[0])

	// other members are untouched
	assert.Len(t, obj.TransformsForTargetMember("other"), 1)
}

func TestSameStartTimeOrdersByInsertion(t *testing.T) {
	clock := &testClock{}
	obj := newTestObject(clock)

	first := obj.moveTo(100, 100).Transforms()[0]
	second := obj.moveTo(10, 100).Transforms()[0]

	transforms := obj.Transforms()
	require.Len(t, transforms, 2)
	assert.Same(t, first, transforms[0])
	assert.Same(t, second, transforms[1])
	assert.Less(t, first.(*TypedTransform[float64]).ID(), second.(*TypedTransform[float64]).ID())

	assert.Equal(t, 5.0, obj.step(clock, 50))
}

func TestCustomID(t *testing.T) {
	clock := &testClock{}
	obj := newTestObject(clock)

	late := NewTypedTransform(&obj.Transformable, "value", Pointer(&obj.value), 100.0)
	late.Populate(100, nil)
	obj.AddTransformWithID(late, 10)

	early := NewTypedTransform(&obj.Transformable, "value", Pointer(&obj.value), 0.0)
	early.Populate(100, nil)
	obj.AddTransformWithID(early, 5)

	// the lower id sorts first and supersedes everything after it
	assert.Equal(t, []Transform{early}, obj.Transforms())
	assert.Equal(t, uint64(5), early.ID())
}

func TestTransformsGroupedByGrouping(t *testing.T) {
	clock := &testClock{}
	obj := newTestObject(clock)

	To(obj, "value", Pointer(&obj.value), 10.0, 100, nil, "both")
	To(obj, "other", Pointer(&obj.other), 20.0, 100, nil, "both")

	require.Len(t, obj.trackers, 1)
	assert.Equal(t, "both", obj.trackers[0].TargetGrouping())
	assert.Equal(t, 2, obj.trackers[0].TargetMembers().Len())

	obj.step(clock, 50)
	assert.Equal(t, 5.0, obj.value)
	assert.Equal(t, 10.0, obj.other)
}

func TestClearTransformsAfter(t *testing.T) {
	clock := &testClock{}
	obj := newTestObject(clock)

	obj.moveTo(100, 100)
	obj.DelayedSequence(300, func() {
		obj.otherTo(10, 100)
	})

	obj.ClearTransformsAfter(100, "")
	assert.Len(t, obj.Transforms(), 1)

	obj.ClearTransforms("value")
	assert.Empty(t, obj.Transforms())

	assert.Equal(t, 0.0, obj.step(clock, 500))
	assert.Equal(t, 0.0, obj.other)
}

func TestFinishTransforms(t *testing.T) {
	clock := &testClock{}
	obj := newTestObject(clock)

	obj.moveTo(100, 100)
	obj.otherTo(20, 100).Loop(0, -1)

	obj.FinishTransforms("")

	assert.Equal(t, 100.0, obj.value)
	assert.Equal(t, 0.0, obj.other)

	// looping transforms are never finished
	assert.Len(t, obj.Transforms(), 1)
}

func TestImmediateApplyWithoutClock(t *testing.T) {
	obj := newTestObject(nil)

	seq := obj.moveTo(100, 100)

	assert.Equal(t, 100.0, obj.value)
	assert.Empty(t, obj.Transforms())
	assert.True(t, seq.Transforms()[0].(*TypedTransform[float64]).Applied())
}

func TestAddInThePastCatchesUp(t *testing.T) {
	clock := &testClock{time: 500}
	obj := newTestObject(clock)

	obj.AbsoluteSequence(0, func() {
		obj.moveTo(100, 100)
	})

	assert.Equal(t, 100.0, obj.value)
}

func TestApplyTransformsAt(t *testing.T) {
	clock := &testClock{}
	obj := newTestObject(clock)

	obj.moveTo(100, 100)

	err := recoverError(func() { obj.ApplyTransformsAt(50) })
	assert.ErrorIs(t, err, ErrRemoveCompletedActive)

	obj.SetRemoveCompletedTransforms(false)

	obj.ApplyTransformsAt(50)
	assert.Equal(t, 50.0, obj.value)

	obj.ApplyTransformsAt(200)
	assert.Equal(t, 100.0, obj.value)

	obj.ApplyTransformsAt(25)
	assert.Equal(t, 25.0, obj.value)
}

func TestLatestTransformEndTime(t *testing.T) {
	clock := &testClock{time: 10}
	obj := newTestObject(clock)

	assert.Equal(t, 10.0, obj.LatestTransformEndTime())

	obj.moveTo(100, 100)
	obj.otherTo(100, 50)

	assert.Equal(t, 111.0, obj.LatestTransformEndTime())
}

func TestUsageErrors(t *testing.T) {
	clock := &testClock{}
	obj := newTestObject(clock)
	stranger := newTestObject(clock)

	t.Run("duplicate", func(t *testing.T) {
		tr := obj.moveTo(100, 100).Transforms()[0]
		err := recoverError(func() { obj.AddTransform(tr) })
		assert.ErrorIs(t, err, ErrDuplicateTransform)
	})

	t.Run("wrong target", func(t *testing.T) {
		tr := NewTypedTransform(&obj.Transformable, "value", Pointer(&obj.value), 1.0)
		err := recoverError(func() { stranger.AddTransform(tr) })
		assert.ErrorIs(t, err, ErrWrongTarget)
	})

	t.Run("grouping mismatch", func(t *testing.T) {
		tr := NewTypedTransform(&obj.Transformable, "value", Pointer(&obj.value), 1.0).WithGrouping("a")
		err := recoverError(func() { newTracker(&obj.Transformable, "b").AddTransform(tr, 0) })
		assert.ErrorIs(t, err, ErrGroupingMismatch)
	})

	t.Run("negative duration", func(t *testing.T) {
		err := recoverError(func() { obj.moveTo(1, -5) })
		assert.ErrorIs(t, err, ErrNegativeDuration)
	})
}
