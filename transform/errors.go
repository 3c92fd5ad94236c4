package transform

import (
	"errors"
	"fmt"
)

// Usage errors. They are raised as panics at the point of misuse; recover and
// use errors.Is to tell them apart.
var (
	ErrDuplicateTransform    = errors.New("transformable may not contain the same transform more than once")
	ErrWrongTarget           = errors.New("transform does not target this transformable")
	ErrGroupingMismatch      = errors.New("target grouping does not match the tracker's grouping")
	ErrUnbalancedScope       = errors.New("transform delay at the end of a sequence scope differs from its beginning")
	ErrEndlessSequence       = errors.New("cannot perform then on an endless transform sequence")
	ErrRemoveCompletedActive = errors.New("cannot arbitrarily apply transforms with remove completed transforms active")
	ErrUnsupportedType       = errors.New("type does not support interpolation")
	ErrNegativeDuration      = errors.New("duration must be greater than or equal to 0")
)

func fail(err error, format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{err}, args...)...))
}
