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

// Package avl implements an in-memory ordered map as an AVL tree.
//
// Elements live in nodes which never move while they are in the map, so
// iterators survive insertions and erasures of other elements. A sentinel
// node serves as the past-the-end position.
//
// A Map is not safe for concurrent use when any goroutine mutates it.
package avl

import (
	"cmp"
	"io"
	"iter"

	"github.com/ajwerner/avl/internal/abstract"
)

// Errors returned by Map operations.
var (
	ErrKeyNotFound      = abstract.ErrKeyNotFound
	ErrInvalidPosition  = abstract.ErrInvalidPosition
	ErrCapacityExceeded = abstract.ErrCapacityExceeded
)

type noopAug[K any] struct{}

func (a *noopAug[K]) Update(abstract.Node[K, *noopAug[K]]) (changed bool) {
	return false
}

// Map is an ordered map from K to V.
type Map[K, V any] struct {
	t abstract.Map[K, V, noopAug[K], *noopAug[K]]
}

// MakeMap constructs a new Map ordered by cmp.
func MakeMap[K, V any](cmp func(K, K) int, opts ...Option) *Map[K, V] {
	o := makeOptions(opts)
	return &Map[K, V]{
		t: abstract.MakeMap[K, V, noopAug[K]](cmp, o.maxSize),
	}
}

// MakeOrderedMap constructs a new Map using the natural ordering of K.
func MakeOrderedMap[K cmp.Ordered, V any](opts ...Option) *Map[K, V] {
	return MakeMap[K, V](cmp.Compare[K], opts...)
}

// Len returns the number of elements in the map.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// Empty reports whether the map holds no elements.
func (m *Map[K, V]) Empty() bool { return m.t.Empty() }

// MaxSize returns the maximum number of elements the map may hold.
func (m *Map[K, V]) MaxSize() int { return m.t.MaxSize() }

// Height returns the height of the underlying tree.
func (m *Map[K, V]) Height() int { return m.t.Height() }

// Insert adds k with value v unless k is already present. It returns the
// position of the element with key k and whether it was inserted. An
// existing element keeps its value.
func (m *Map[K, V]) Insert(k K, v V) (Iterator[K, V], bool, error) {
	it, ok, err := m.t.Insert(k, v)
	return Iterator[K, V]{it}, ok, err
}

// InsertFunc is like Insert but only calls mk if k is absent.
func (m *Map[K, V]) InsertFunc(k K, mk func() V) (Iterator[K, V], bool, error) {
	it, ok, err := m.t.InsertFunc(k, mk)
	return Iterator[K, V]{it}, ok, err
}

// InsertRange inserts the pairs of seq one at a time.
func (m *Map[K, V]) InsertRange(seq iter.Seq2[K, V]) error {
	return m.t.InsertRange(seq)
}

// Upsert sets the value for k, reporting the value it replaced, if any.
func (m *Map[K, V]) Upsert(k K, v V) (old V, replaced bool, err error) {
	return m.t.Upsert(k, v)
}

// Find returns the position of k, or End.
func (m *Map[K, V]) Find(k K) Iterator[K, V] {
	return Iterator[K, V]{m.t.Find(k)}
}

// Get returns the value for k.
func (m *Map[K, V]) Get(k K) (V, bool) { return m.t.Get(k) }

// Contains reports whether k is present.
func (m *Map[K, V]) Contains(k K) bool {
	_, ok := m.t.Get(k)
	return ok
}

// At returns a pointer to the value for k, or an error wrapping
// ErrKeyNotFound.
func (m *Map[K, V]) At(k K) (*V, error) { return m.t.At(k) }

// Index returns a pointer to the value for k, inserting the zero value if k
// is absent. It panics if the map was configured with WithMaxSize and is
// full.
func (m *Map[K, V]) Index(k K) *V { return m.t.Index(k) }

// Erase removes the element at it and returns the position which followed
// it. Erasing End, or an element already erased, returns
// ErrInvalidPosition.
func (m *Map[K, V]) Erase(it Iterator[K, V]) (Iterator[K, V], error) {
	next, err := m.t.Erase(it.it)
	return Iterator[K, V]{next}, err
}

// Delete removes k, returning its value.
func (m *Map[K, V]) Delete(k K) (V, bool) { return m.t.Delete(k) }

// Clear removes every element.
func (m *Map[K, V]) Clear() { m.t.Clear() }

// Begin returns the position of the first element, or End.
func (m *Map[K, V]) Begin() Iterator[K, V] { return Iterator[K, V]{m.t.Begin()} }

// End returns the past-the-end position.
func (m *Map[K, V]) End() Iterator[K, V] { return Iterator[K, V]{m.t.End()} }

// Min returns the smallest key and its value.
func (m *Map[K, V]) Min() (k K, v V, ok bool) {
	if it := m.t.Begin(); it.Valid() {
		return it.Key(), it.Value(), true
	}
	return k, v, false
}

// Max returns the largest key and its value.
func (m *Map[K, V]) Max() (k K, v V, ok bool) {
	it := m.t.End()
	if it.Prev(); it.Valid() {
		return it.Key(), it.Value(), true
	}
	return k, v, false
}

// All iterates over the elements in ascending key order. The map must not be
// modified during the iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] { return m.t.All() }

// Backward iterates over the elements in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] { return m.t.Backward() }

// Keys iterates over the keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// String returns the tree in a Newick-like nested form.
func (m *Map[K, V]) String() string { return m.t.String() }

// Dump writes each key with its balance factor, in key order. The format is
// for debugging and may change.
func (m *Map[K, V]) Dump(w io.Writer) error { return m.t.Dump(w) }

// Compare compares a and b lexicographically by their (key, value) pairs in
// key order, using a's key ordering and vcmp for values.
func Compare[K, V any](a, b *Map[K, V], vcmp func(V, V) int) int {
	return abstract.Compare(&a.t, &b.t, vcmp)
}

// Equal reports whether a and b hold equal keys with values equal under veq.
func Equal[K, V any](a, b *Map[K, V], veq func(V, V) bool) bool {
	return abstract.Equal(&a.t, &b.t, veq)
}
