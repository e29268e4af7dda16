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

// find descends from the root to the node with key k. It returns the
// sentinel if there is no such node.
func (t *Map[K, V, A, AP]) find(k K) *node[K, V, A, AP] {
	n := t.root()
	for n != nil {
		c := t.cfg.cmp(k, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return t.end
}

// locate descends from the root looking for k. If a node with key k exists
// it is returned as found. Otherwise parent is the node below which k
// belongs and slot is the empty child link of parent where it would be
// linked; for an empty tree these are the sentinel and its left link.
func (t *Map[K, V, A, AP]) locate(k K) (found, parent *node[K, V, A, AP], slot **node[K, V, A, AP]) {
	parent, slot = t.end, &t.end.left
	for n := *slot; n != nil; n = *slot {
		c := t.cfg.cmp(k, n.key)
		if c == 0 {
			return n, nil, nil
		}
		parent = n
		if c < 0 {
			slot = &n.left
		} else {
			slot = &n.right
		}
	}
	return nil, parent, slot
}

// lowerBound returns the first node whose key is not less than k, or the
// sentinel.
func (t *Map[K, V, A, AP]) lowerBound(k K) *node[K, V, A, AP] {
	res := t.end
	for n := t.root(); n != nil; {
		c := t.cfg.cmp(k, n.key)
		if c == 0 {
			return n
		}
		if c < 0 {
			res = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return res
}

// lastBelow returns the last node whose key is less than k, or the sentinel.
func (t *Map[K, V, A, AP]) lastBelow(k K) *node[K, V, A, AP] {
	res := t.end
	for n := t.root(); n != nil; {
		if t.cfg.cmp(n.key, k) < 0 {
			res = n
			n = n.right
		} else {
			n = n.left
		}
	}
	return res
}
