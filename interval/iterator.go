// Copyright 2018 The Cockroach Authors.
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

package interval

import (
	"cmp"

	"github.com/ajwerner/avl/internal/abstract"
)

// Iterator iterates over a Map, either over every interval or over the
// intervals overlapping a search range.
type Iterator[P cmp.Ordered, I Interval[P], V any] struct {
	it abstract.Iterator[I, V, aug[P, I], *aug[P, I]]

	o overlapScan[P]
}

// An overlap scan visits every interval which overlaps the search range
// [lo, hi) in key order. It relies on two properties of the tree:
//  1. intervals are sorted by start, so once a node starts at or after hi
//     neither it nor anything following it can overlap;
//  2. every node records the largest end point in its subtree, so a subtree
//     whose largest end is at or before lo can be skipped entirely.
//
// A subtree which reaches past lo and whose root starts before hi always
// contains an overlap, so the scan never has to back out of a descent.
type overlapScan[P cmp.Ordered] struct {
	lo, hi P
	set    bool
}

func (m *Map[P, I, V]) MakeIter() Iterator[P, I, V] {
	return Iterator[P, I, V]{it: m.t.MakeIter()}
}

func (i *Iterator[P, I, V]) lowLevel() *abstract.LowLevelIterator[I, V, aug[P, I], *aug[P, I]] {
	return abstract.LowLevel(&i.it)
}

// Reset invalidates the iterator and abandons any overlap scan.
func (i *Iterator[P, I, V]) Reset() {
	i.o = overlapScan[P]{}
	i.it.Reset()
}

func (i *Iterator[P, I, V]) First() {
	i.o = overlapScan[P]{}
	i.it.First()
}

func (i *Iterator[P, I, V]) Next()       { i.it.Next() }
func (i *Iterator[P, I, V]) Valid() bool { return i.it.Valid() }
func (i *Iterator[P, I, V]) Cur() I      { return i.it.Key() }
func (i *Iterator[P, I, V]) Value() V    { return i.it.Value() }

// FirstOverlap seeks to the first interval in the map that overlaps with
// bounds.
func (i *Iterator[P, I, V]) FirstOverlap(bounds I) {
	i.o = overlapScan[P]{lo: bounds.Start(), hi: bounds.End(), set: true}
	ll := i.lowLevel()
	ll.Reset()
	if !i.it.Valid() || !ll.Aug().reaches(i.o.lo) {
		i.it.Reset()
		return
	}
	i.descendToOverlap()
}

// NextOverlap positions the iterator at the interval immediately following
// its current position that overlaps with the search bounds.
func (i *Iterator[P, I, V]) NextOverlap() {
	if !i.Valid() {
		return
	}
	if !i.o.set {
		// Invalid. Mixed overlap scan with non-overlap scan.
		i.Reset()
		return
	}
	ll := i.lowLevel()
	if ll.Node().Right().reaches(i.o.lo) {
		ll.DescendRight()
		i.descendToOverlap()
		return
	}
	for {
		fromLeft := ll.IsLeftChild()
		ll.Ascend()
		if !i.it.Valid() {
			return
		}
		if !fromLeft {
			continue
		}
		n := ll.Node()
		if n.Key().Start() >= i.o.hi {
			i.it.Reset()
			return
		}
		if n.Key().End() > i.o.lo {
			return
		}
		if n.Right().reaches(i.o.lo) {
			ll.DescendRight()
			i.descendToOverlap()
			return
		}
	}
}

// descendToOverlap moves to the first overlapping interval of the subtree
// rooted at the current node, whose largest end point must reach past the
// search start. If there is none, no later interval overlaps either and the
// iterator is invalidated.
func (i *Iterator[P, I, V]) descendToOverlap() {
	ll := i.lowLevel()
	for {
		n := ll.Node()
		switch {
		case n.Left().reaches(i.o.lo):
			ll.DescendLeft()
		case n.Key().Start() >= i.o.hi:
			i.it.Reset()
			return
		case n.Key().End() > i.o.lo:
			return
		default:
			ll.DescendRight()
		}
	}
}
