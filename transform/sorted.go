package transform

import (
	"slices"
)

// sortedTransforms keeps transforms ordered by start time and id.
type sortedTransforms struct {
	values []Transform
}

func (s *sortedTransforms) Len() int {
	return len(s.values)
}

func (s *sortedTransforms) At(idx int) Transform {
	return s.values[idx]
}

// Add inserts the transform after all transforms that compare equal to it
// and returns its index.
func (s *sortedTransforms) Add(t Transform) int {
	idx, _ := slices.BinarySearchFunc(s.values, t, func(existing, target Transform) int {
		if compareTransforms(existing, target) <= 0 {
			return -1
		}

		return 1
	})

	s.values = slices.Insert(s.values, idx, t)
	return idx
}

func (s *sortedTransforms) RemoveAt(idx int) {
	s.values = slices.Delete(s.values, idx, idx+1)
}

func (s *sortedTransforms) IndexOf(t Transform) int {
	return slices.Index(s.values, t)
}

func (s *sortedTransforms) Remove(t Transform) bool {
	idx := s.IndexOf(t)
	if idx < 0 {
		return false
	}

	s.RemoveAt(idx)
	return true
}

func (s *sortedTransforms) RemoveFunc(del func(t Transform) bool) {
	s.values = slices.DeleteFunc(s.values, del)
}

func (s *sortedTransforms) Values() []Transform {
	return s.values
}
