package transform

import (
	"math"
)

const delayEpsilon = 1e-7

// Scope is returned when entering a sequence scope. End must be called
// exactly once, usually deferred, to restore the previous transform delay.
type Scope struct {
	end []func()
}

func (s Scope) End() {
	// restore in reverse order of entering
	for i := len(s.end) - 1; i >= 0; i-- {
		s.end[i]()
	}
}

// JoinScopes combines multiple scopes into one.
func JoinScopes(scopes ...Scope) Scope {
	var joined Scope
	for _, scope := range scopes {
		joined.end = append(joined.end, scope.end...)
	}

	return joined
}

// BeginDelayedSequence delays all transforms created until the scope ends.
// recursive is accepted so owners with children can share the signature, a
// plain Transformable has nothing to recurse into.
func (t *Transformable) BeginDelayedSequence(delay float64, recursive bool) Scope {
	if delay == 0 {
		return Scope{}
	}

	t.AddDelay(delay)
	newDelay := t.transformDelay

	return Scope{end: []func(){func() {
		if !almostEquals(t.transformDelay, newDelay) {
			fail(ErrUnbalancedScope, "expected %v, got %v", newDelay, t.transformDelay)
		}

		t.AddDelay(-delay)
	}}}
}

// BeginAbsoluteSequence makes all transforms created until the scope ends
// start at startTime.
func (t *Transformable) BeginAbsoluteSequence(startTime float64, recursive bool) Scope {
	oldDelay := t.transformDelay
	newDelay := startTime - t.currentTime()
	t.transformDelay = newDelay

	return Scope{end: []func(){func() {
		if !almostEquals(t.transformDelay, newDelay) {
			fail(ErrUnbalancedScope, "expected %v, got %v", newDelay, t.transformDelay)
		}

		t.transformDelay = oldDelay
	}}}
}

// DelayedSequence runs fn inside a delayed sequence scope.
func (t *Transformable) DelayedSequence(delay float64, fn func()) {
	scope := t.BeginDelayedSequence(delay, true)
	defer scope.End()

	fn()
}

// AbsoluteSequence runs fn inside an absolute sequence scope.
func (t *Transformable) AbsoluteSequence(startTime float64, fn func()) {
	scope := t.BeginAbsoluteSequence(startTime, true)
	defer scope.End()

	fn()
}

func almostEquals(a, b float64) bool {
	return math.Abs(a-b) <= delayEpsilon
}
