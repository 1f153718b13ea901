// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package set

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"slices"
)

// SampleableSet is an unordered collection of unique elements that supports
// uniform random sampling of its elements.
type SampleableSet[T comparable] struct {
	// indices maps the element in the set to the index that it appears in
	// elements.
	indices  map[T]int
	elements []T
}

// OfSampleable returns a SampleableSet initialized with [elems].
func OfSampleable[T comparable](elems ...T) SampleableSet[T] {
	s := NewSampleableSet[T](len(elems))
	s.Add(elems...)
	return s
}

// NewSampleableSet returns a new empty set with capacity [size].
func NewSampleableSet[T comparable](size int) SampleableSet[T] {
	return SampleableSet[T]{
		indices:  make(map[T]int, size),
		elements: make([]T, 0, size),
	}
}

// Add all the elements to this set. If the element is already in the set,
// nothing happens.
func (s *SampleableSet[T]) Add(elements ...T) {
	s.resize(2 * len(elements))
	for _, e := range elements {
		if _, ok := s.indices[e]; ok {
			continue
		}
		s.indices[e] = len(s.elements)
		s.elements = append(s.elements, e)
	}
}

// Remove all the given elements from this set. If an element isn't in the
// set, it's ignored.
func (s *SampleableSet[T]) Remove(elements ...T) {
	for _, e := range elements {
		index, ok := s.indices[e]
		if !ok {
			continue
		}

		lastIndex := len(s.elements) - 1
		lastElement := s.elements[lastIndex]
		s.indices[lastElement] = index
		s.elements[index] = lastElement

		delete(s.indices, e)
		s.elements[lastIndex] = *new(T)
		s.elements = s.elements[:lastIndex]
	}
}

// Contains returns true iff the set contains this element.
func (s SampleableSet[T]) Contains(e T) bool {
	_, contains := s.indices[e]
	return contains
}

// Overlaps returns true if the intersection of the set is non-empty.
func (s SampleableSet[T]) Overlaps(other SampleableSet[T]) bool {
	small, large := s, other
	if small.Len() > large.Len() {
		small, large = large, small
	}
	for _, e := range small.elements {
		if large.Contains(e) {
			return true
		}
	}
	return false
}

// Union adds all of the elements from the provided set to this set.
func (s *SampleableSet[T]) Union(other SampleableSet[T]) {
	s.resize(2 * other.Len())
	for _, e := range other.elements {
		s.Add(e)
	}
}

// Difference removes all the elements in [other] from this set.
func (s *SampleableSet[T]) Difference(other SampleableSet[T]) {
	s.Remove(other.elements...)
}

// Len returns the number of elements in this set.
func (s SampleableSet[T]) Len() int {
	return len(s.elements)
}

// List returns the elements of this set.
func (s SampleableSet[T]) List() []T {
	return slices.Clone(s.elements)
}

// Equals returns true if the sets contain the same elements.
func (s SampleableSet[T]) Equals(other SampleableSet[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, e := range s.elements {
		if !other.Contains(e) {
			return false
		}
	}
	return true
}

// Clear empties this set.
func (s *SampleableSet[T]) Clear() {
	clear(s.indices)
	clear(s.elements)
	s.elements = s.elements[:0]
}

// Sample returns an uniformly sampled subset of up to [limit] elements.
func (s SampleableSet[T]) Sample(limit int) []T {
	if limit <= 0 {
		return nil
	}
	if limit > len(s.elements) {
		limit = len(s.elements)
	}

	sampled := slices.Clone(s.elements)
	for i := 0; i < limit; i++ {
		j := i + rand.Intn(len(sampled)-i) //#nosec G404
		sampled[i], sampled[j] = sampled[j], sampled[i]
	}
	return sampled[:limit]
}

func (s *SampleableSet[T]) resize(size int) {
	if s.elements == nil {
		if minSetSize > size {
			size = minSetSize
		}
		s.indices = make(map[T]int, size)
	}
}

func (s SampleableSet[T]) MarshalJSON() ([]byte, error) {
	elementBytes := make([][]byte, len(s.elements))
	for i, e := range s.elements {
		b, err := json.Marshal(e)
		if err != nil {
			return nil, err
		}
		elementBytes[i] = b
	}
	// Sort for determinism
	slices.SortFunc(elementBytes, bytes.Compare)

	var jsonBuf []byte
	jsonBuf = append(jsonBuf, '[')
	for i, b := range elementBytes {
		if i > 0 {
			jsonBuf = append(jsonBuf, ',')
		}
		jsonBuf = append(jsonBuf, b...)
	}
	return append(jsonBuf, ']'), nil
}

func (s *SampleableSet[T]) UnmarshalJSON(b []byte) error {
	var elements []T
	if err := json.Unmarshal(b, &elements); err != nil {
		return err
	}
	*s = OfSampleable(elements...)
	return nil
}
