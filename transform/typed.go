package transform

// Property gives a transform read and write access to one member of its owner.
type Property[T any] struct {
	Get func() T
	Set func(value T)
}

// Pointer creates a property reading and writing through ptr.
func Pointer[T any](ptr *T) Property[T] {
	return Property[T]{
		Get: func() T { return *ptr },
		Set: func(value T) { *ptr = value },
	}
}

// TypedTransform interpolates a property of type T from its value at the
// time the transform first applies towards EndValue.
type TypedTransform[T any] struct {
	Base

	StartValue T
	EndValue   T
	Property   Property[T]

	pinned bool
}

func NewTypedTransform[T any](target *Transformable, member string, property Property[T], endValue T) *TypedTransform[T] {
	return &TypedTransform[T]{
		Base:     NewBase(target, member, ""),
		EndValue: endValue,
		Property: property,
	}
}

// WithGrouping moves the transform to a different target grouping.
func (t *TypedTransform[T]) WithGrouping(grouping string) *TypedTransform[T] {
	if grouping != "" {
		t.grouping = grouping
	}

	return t
}

// WithStartValue pins the start value. The owner's live value is then never
// read, not even when a loop iteration restarts.
func (t *TypedTransform[T]) WithStartValue(value T) *TypedTransform[T] {
	t.StartValue = value
	t.pinned = true
	return t
}

func (t *TypedTransform[T]) ReadIntoStartValue() {
	if t.pinned {
		return
	}

	t.StartValue = t.Property.Get()
}

func (t *TypedTransform[T]) Apply(time float64) {
	t.Property.Set(ValueAt(time, t.StartValue, t.EndValue, t.StartTime, t.EndTime, t.Easing))
}

func (t *TypedTransform[T]) Clone() Transform {
	clone := *t
	return &clone
}
