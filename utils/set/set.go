// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package set

import (
	"encoding/json"

	"golang.org/x/exp/maps"
)

// Set is an unordered collection of unique elements.
type Set[T comparable] map[T]struct{}

// Of returns a Set initialized with [elems].
func Of[T comparable](elems ...T) Set[T] {
	s := make(Set[T], len(elems))
	s.Add(elems...)
	return s
}

func (s *Set[T]) resize(size int) {
	if *s == nil {
		if minSetSize > size {
			size = minSetSize
		}
		*s = make(map[T]struct{}, size)
	}
}

// minSetSize is the minimum allocation when the first element is added to a
// zero value set.
const minSetSize = 16

// Add all the elements to this set. If the element is already in the set, nothing happens.
func (s *Set[T]) Add(elems ...T) {
	s.resize(2 * len(elems))
	for _, elem := range elems {
		(*s)[elem] = struct{}{}
	}
}

// Contains returns true iff the set contains this element.
func (s Set[T]) Contains(elem T) bool {
	_, contains := s[elem]
	return contains
}

// Remove all the given elements from this set. If an element isn't in the
// set, it's ignored.
func (s Set[T]) Remove(elems ...T) {
	for _, elem := range elems {
		delete(s, elem)
	}
}

// Len returns the number of elements in this set.
func (s Set[T]) Len() int {
	return len(s)
}

// Union adds all the elements from the provided set to this set.
func (s *Set[T]) Union(other Set[T]) {
	s.resize(2 * other.Len())
	for elem := range other {
		(*s)[elem] = struct{}{}
	}
}

// List converts this set into a list.
func (s Set[T]) List() []T {
	return maps.Keys(s)
}

// Clear empties this set.
func (s *Set[T]) Clear() {
	maps.Clear(*s)
}

func (s Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.List())
}
