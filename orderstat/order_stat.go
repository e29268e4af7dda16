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

// Package orderstat provides an ordered map which also supports positional
// access: the i-th smallest element and the rank of a key are found in
// logarithmic time.
package orderstat

import (
	"cmp"
	"iter"

	"github.com/ajwerner/avl/internal/abstract"
)

// Errors returned by Map operations.
var (
	ErrKeyNotFound      = abstract.ErrKeyNotFound
	ErrInvalidPosition  = abstract.ErrInvalidPosition
	ErrCapacityExceeded = abstract.ErrCapacityExceeded
)

// Map is an ordered map augmented with subtree sizes.
type Map[K, V any] struct {
	t abstract.Map[K, V, aug[K], *aug[K]]
}

// MakeMap constructs a new Map ordered by cmp holding at most maxSize
// elements; a non-positive maxSize leaves it unbounded.
func MakeMap[K, V any](cmp func(K, K) int, maxSize int) *Map[K, V] {
	return &Map[K, V]{
		t: abstract.MakeMap[K, V, aug[K]](cmp, maxSize),
	}
}

// MakeOrderedMap constructs a new unbounded Map using the natural ordering
// of K.
func MakeOrderedMap[K cmp.Ordered, V any]() *Map[K, V] {
	return MakeMap[K, V](cmp.Compare[K], 0)
}

func (m *Map[K, V]) Len() int { return m.t.Len() }

func (m *Map[K, V]) Insert(k K, v V) (bool, error) {
	_, ok, err := m.t.Insert(k, v)
	return ok, err
}

func (m *Map[K, V]) Upsert(k K, v V) (old V, replaced bool, err error) {
	return m.t.Upsert(k, v)
}

func (m *Map[K, V]) Get(k K) (V, bool) { return m.t.Get(k) }

func (m *Map[K, V]) Delete(k K) (V, bool) { return m.t.Delete(k) }

func (m *Map[K, V]) Clear() { m.t.Clear() }

func (m *Map[K, V]) All() iter.Seq2[K, V] { return m.t.All() }

// Rank returns the number of keys less than k and whether k is present.
func (m *Map[K, V]) Rank(k K) (rank int, found bool) {
	if m.t.Len() == 0 {
		return 0, false
	}
	it := m.t.MakeIter()
	ll := abstract.LowLevel(&it)
	ll.Reset()
	for {
		n := ll.Node()
		left := subtreeSize(n.Left())
		switch c := m.t.Config().Compare(k, n.Key()); {
		case c == 0:
			return rank + left, true
		case c < 0:
			if !ll.HasLeft() {
				return rank, false
			}
			ll.DescendLeft()
		default:
			rank += left + 1
			if !ll.HasRight() {
				return rank, false
			}
			ll.DescendRight()
		}
	}
}

// Iterator iterates over a Map.
type Iterator[K, V any] struct {
	it abstract.Iterator[K, V, aug[K], *aug[K]]
}

func (m *Map[K, V]) MakeIter() Iterator[K, V] {
	return Iterator[K, V]{
		it: m.t.MakeIter(),
	}
}

// Nth positions the iterator at the i-th smallest element, counting from
// zero. If i is out of range the iterator becomes invalid.
func (it *Iterator[K, V]) Nth(i int) {
	ll := abstract.LowLevel(&it.it)
	ll.Reset()
	if i < 0 || i >= ll.Aug().size {
		it.it.Reset()
		return
	}
	for {
		left := subtreeSize(ll.Node().Left())
		switch {
		case i < left:
			ll.DescendLeft()
		case i == left:
			return
		default:
			i -= left + 1
			ll.DescendRight()
		}
	}
}

func (it *Iterator[K, V]) First()       { it.it.First() }
func (it *Iterator[K, V]) Last()        { it.it.Last() }
func (it *Iterator[K, V]) Next()        { it.it.Next() }
func (it *Iterator[K, V]) Prev()        { it.it.Prev() }
func (it *Iterator[K, V]) SeekGE(key K) { it.it.SeekGE(key) }
func (it *Iterator[K, V]) Valid() bool  { return it.it.Valid() }
func (it *Iterator[K, V]) Cur() K       { return it.it.Key() }
func (it *Iterator[K, V]) Value() V     { return it.it.Value() }
