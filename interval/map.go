// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package interval provides an ordered map keyed by half-open intervals
// which can efficiently find every interval overlapping a query range.
package interval

import (
	"cmp"
	"iter"

	"github.com/ajwerner/avl/internal/abstract"
)

// Interval is a half-open range [Start, End) of points.
type Interval[P cmp.Ordered] interface {
	Start() P
	End() P
}

// Overlaps reports whether a and b share any point: a starts before b ends
// and b starts before a ends.
func Overlaps[P cmp.Ordered, I Interval[P]](a, b I) bool {
	return a.Start() < b.End() && b.Start() < a.End()
}

func compare[P cmp.Ordered, I Interval[P]](a, b I) int {
	if c := cmp.Compare(a.Start(), b.Start()); c != 0 {
		return c
	}
	return cmp.Compare(a.End(), b.End())
}

// Map is an ordered map from intervals to values. Intervals are ordered by
// start and then by end; two intervals with the same bounds are the same key.
type Map[P cmp.Ordered, I Interval[P], V any] struct {
	t abstract.Map[I, V, aug[P, I], *aug[P, I]]
}

// MakeMap constructs a new Map holding at most maxSize intervals; a
// non-positive maxSize leaves it unbounded.
func MakeMap[P cmp.Ordered, I Interval[P], V any](maxSize int) *Map[P, I, V] {
	return &Map[P, I, V]{
		t: abstract.MakeMap[I, V, aug[P, I]](compare[P, I], maxSize),
	}
}

func (m *Map[P, I, V]) Len() int { return m.t.Len() }

func (m *Map[P, I, V]) Insert(k I, v V) (bool, error) {
	_, ok, err := m.t.Insert(k, v)
	return ok, err
}

func (m *Map[P, I, V]) Upsert(k I, v V) (old V, replaced bool, err error) {
	return m.t.Upsert(k, v)
}

func (m *Map[P, I, V]) Get(k I) (V, bool) { return m.t.Get(k) }

func (m *Map[P, I, V]) Delete(k I) (V, bool) { return m.t.Delete(k) }

func (m *Map[P, I, V]) Clear() { m.t.Clear() }

func (m *Map[P, I, V]) All() iter.Seq2[I, V] { return m.t.All() }

// Overlapping returns a sequence of the intervals overlapping bounds, in
// key order.
func (m *Map[P, I, V]) Overlapping(bounds I) iter.Seq2[I, V] {
	return func(yield func(I, V) bool) {
		it := m.MakeIter()
		for it.FirstOverlap(bounds); it.Valid(); it.NextOverlap() {
			if !yield(it.Cur(), it.Value()) {
				return
			}
		}
	}
}

// Errors returned by Map operations.
var (
	ErrKeyNotFound      = abstract.ErrKeyNotFound
	ErrInvalidPosition  = abstract.ErrInvalidPosition
	ErrCapacityExceeded = abstract.ErrCapacityExceeded
)
