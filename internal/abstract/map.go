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

import (
	"fmt"
	"iter"
)

// Map is an implementation of an augmented AVL tree.
//
// A Map must be created with MakeMap and must not be copied after first use:
// the sentinel node is shared by reference. Operations are not safe for
// concurrent use if any of them mutates the tree.
type Map[K, V, A any, AP Aug[K, A]] struct {
	cfg    Config[K]
	end    *node[K, V, A, AP] // sentinel; end.left owns the root
	begin  *node[K, V, A, AP] // left-most node, or end when empty
	length int
}

// MakeMap constructs an empty Map ordered by cmp holding at most maxSize
// elements. A non-positive maxSize means DefaultMaxSize.
func MakeMap[K, V, A any, AP Aug[K, A]](cmp func(K, K) int, maxSize int) Map[K, V, A, AP] {
	end := new(node[K, V, A, AP])
	return Map[K, V, A, AP]{
		cfg:   makeConfig(cmp, maxSize),
		end:   end,
		begin: end,
	}
}

// Config returns the configuration of the map.
func (t *Map[K, V, A, AP]) Config() *Config[K] { return &t.cfg }

func (t *Map[K, V, A, AP]) root() *node[K, V, A, AP] { return t.end.left }

// Len returns the number of elements currently in the tree.
func (t *Map[K, V, A, AP]) Len() int { return t.length }

// Empty reports whether the tree holds no elements.
func (t *Map[K, V, A, AP]) Empty() bool { return t.length == 0 }

// MaxSize returns the maximum number of elements the tree may hold.
func (t *Map[K, V, A, AP]) MaxSize() int { return t.cfg.maxSize }

// Height returns the height of the tree.
func (t *Map[K, V, A, AP]) Height() int { return t.root().height() }

// Begin returns an iterator positioned at the first element, or at End if
// the tree is empty.
func (t *Map[K, V, A, AP]) Begin() Iterator[K, V, A, AP] {
	return Iterator[K, V, A, AP]{t: t, n: t.begin}
}

// End returns the past-the-end iterator.
func (t *Map[K, V, A, AP]) End() Iterator[K, V, A, AP] {
	return Iterator[K, V, A, AP]{t: t, n: t.end}
}

// Find returns an iterator positioned at the element with the given key, or
// End if there is none.
func (t *Map[K, V, A, AP]) Find(k K) Iterator[K, V, A, AP] {
	return Iterator[K, V, A, AP]{t: t, n: t.find(k)}
}

// Get returns the value associated with k.
func (t *Map[K, V, A, AP]) Get(k K) (v V, ok bool) {
	if n := t.find(k); n != t.end {
		return n.value, true
	}
	return v, false
}

// At returns a pointer to the value associated with k. The pointer remains
// valid until the element is erased.
func (t *Map[K, V, A, AP]) At(k K) (*V, error) {
	n := t.find(k)
	if n == t.end {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	return &n.value, nil
}

// Insert adds k with value v if no element has key k. It returns an iterator
// positioned at the element with key k and whether it was inserted. An
// existing element is left untouched.
func (t *Map[K, V, A, AP]) Insert(k K, v V) (Iterator[K, V, A, AP], bool, error) {
	return t.InsertFunc(k, func() V { return v })
}

// InsertFunc is like Insert but calls mk to construct the value only if k is
// absent.
func (t *Map[K, V, A, AP]) InsertFunc(
	k K, mk func() V,
) (Iterator[K, V, A, AP], bool, error) {
	n, inserted, err := t.insert(k, mk)
	if err != nil {
		return t.End(), false, err
	}
	return Iterator[K, V, A, AP]{t: t, n: n}, inserted, nil
}

// Index returns a pointer to the value associated with k, inserting the zero
// value if k is absent. It panics if the tree is full.
func (t *Map[K, V, A, AP]) Index(k K) *V {
	n, _, err := t.insert(k, func() (v V) { return v })
	if err != nil {
		panic(err)
	}
	return &n.value
}

// Upsert sets the value for k, inserting it if absent. If an element was
// already present its previous value is returned and replaced is true.
func (t *Map[K, V, A, AP]) Upsert(k K, v V) (old V, replaced bool, err error) {
	n, inserted, err := t.insert(k, func() V { return v })
	if err != nil || inserted {
		return old, false, err
	}
	old, n.value = n.value, v
	return old, true, nil
}

// InsertRange inserts each pair of seq in turn. It stops at the first error.
func (t *Map[K, V, A, AP]) InsertRange(seq iter.Seq2[K, V]) error {
	for k, v := range seq {
		if _, _, err := t.Insert(k, v); err != nil {
			return err
		}
	}
	return nil
}

// Erase removes the element at it and returns an iterator positioned at the
// element which followed it.
func (t *Map[K, V, A, AP]) Erase(it Iterator[K, V, A, AP]) (Iterator[K, V, A, AP], error) {
	if it.t != t || it.n == nil || it.n == t.end || it.n.parent == nil {
		return t.End(), ErrInvalidPosition
	}
	return Iterator[K, V, A, AP]{t: t, n: t.erase(it.n)}, nil
}

// Delete removes the element with key k, returning its value.
func (t *Map[K, V, A, AP]) Delete(k K) (v V, found bool) {
	n := t.find(k)
	if n == t.end {
		return v, false
	}
	v = n.value
	t.erase(n)
	return v, true
}

// Clear removes all elements from the tree. Every node is unlinked, so
// iterators obtained before the call become invalid positions.
func (t *Map[K, V, A, AP]) Clear() {
	var stack []*node[K, V, A, AP]
	if r := t.root(); r != nil {
		stack = append(stack, r)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		n.unlink()
	}
	t.end.left = nil
	t.begin = t.end
	t.length = 0
}

// All returns an iterator over the elements in ascending key order.
func (t *Map[K, V, A, AP]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := t.begin; n != t.end; n = n.next() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements in descending key order.
func (t *Map[K, V, A, AP]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := t.end.prev(); n != t.end; n = n.prev() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}
