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

package abstract

// Iterator is a position in a Map: either an element or the past-the-end
// position, which is the sentinel node. An Iterator stays valid across
// insertions and erasures of other elements; erasing its element
// invalidates it.
type Iterator[K, V, A any, AP Aug[K, A]] struct {
	t *Map[K, V, A, AP]
	n *node[K, V, A, AP]
}

// MakeIter returns an Iterator positioned at End.
func (t *Map[K, V, A, AP]) MakeIter() Iterator[K, V, A, AP] {
	return t.End()
}

func (i *Iterator[K, V, A, AP]) lowLevel() *LowLevelIterator[K, V, A, AP] {
	return (*LowLevelIterator[K, V, A, AP])(i)
}

// Reset positions the Iterator at End.
func (i *Iterator[K, V, A, AP]) Reset() {
	i.n = i.t.end
}

// SeekGE seeks to the first key greater-than or equal to the provided
// key.
func (i *Iterator[K, V, A, AP]) SeekGE(key K) {
	i.n = i.t.lowerBound(key)
}

// SeekLT seeks to the first key less-than the provided key.
func (i *Iterator[K, V, A, AP]) SeekLT(key K) {
	i.n = i.t.lastBelow(key)
}

// First seeks to the first key in the Map.
func (i *Iterator[K, V, A, AP]) First() {
	i.n = i.t.begin
}

// Last seeks to the last key in the Map.
func (i *Iterator[K, V, A, AP]) Last() {
	i.n = i.t.end.prev()
}

// Next positions the Iterator to the key immediately following
// its current position. Next at End stays at End.
func (i *Iterator[K, V, A, AP]) Next() {
	i.n = i.n.next()
}

// Prev positions the Iterator to the key immediately preceding
// its current position. Prev at the first element moves to End and Prev at
// End moves to the last element.
func (i *Iterator[K, V, A, AP]) Prev() {
	i.n = i.n.prev()
}

// Valid returns whether the Iterator is positioned at an element.
func (i Iterator[K, V, A, AP]) Valid() bool {
	return i.t != nil && i.n != nil && i.n != i.t.end && i.n.parent != nil
}

// Equal reports whether both iterators refer to the same position.
func (i Iterator[K, V, A, AP]) Equal(o Iterator[K, V, A, AP]) bool {
	return i.t == o.t && i.n == o.n
}

// Key returns the key at the Iterator's current position. It is illegal
// to call Key if the Iterator is not valid.
func (i Iterator[K, V, A, AP]) Key() K {
	return i.n.key
}

// Value returns the value at the Iterator's current position. It is illegal
// to call Value if the Iterator is not valid.
func (i Iterator[K, V, A, AP]) Value() V {
	return i.n.value
}

// SetValue replaces the value at the Iterator's current position.
func (i Iterator[K, V, A, AP]) SetValue(v V) {
	i.n.value = v
}

// ValuePtr returns a pointer to the value at the Iterator's current
// position.
func (i Iterator[K, V, A, AP]) ValuePtr() *V {
	return &i.n.value
}
