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
	"errors"
	"fmt"
	"reflect"
)

// Check verifies the structural invariants of the tree: key order, balance
// factors matching the actual subtree heights and staying within [-1, +1],
// parent links, the cached first node, the element count and up-to-date
// augmentations. It is intended for tests and costs O(n).
func (t *Map[K, V, A, AP]) Check() error {
	if t.end.parent != nil || t.end.right != nil {
		return errors.New("sentinel has a parent or a right child")
	}
	r := t.root()
	if r != nil && r.parent != t.end {
		return fmt.Errorf("root %v: parent is not the sentinel", r.key)
	}
	count, _, err := t.checkSubtree(r)
	if err != nil {
		return err
	}
	if count != t.length {
		return fmt.Errorf("length %d, found %d nodes", t.length, count)
	}
	if r == nil {
		if t.begin != t.end {
			return errors.New("empty tree: begin is not the sentinel")
		}
	} else if first := r.first(); t.begin != first {
		return fmt.Errorf("begin is not the first node %v", first.key)
	}

	// In-order traversal must visit every node in strictly increasing order.
	visited := 0
	for n := t.begin; n != t.end; n = n.next() {
		if visited++; visited > t.length {
			return errors.New("traversal does not terminate at the sentinel")
		}
		if nx := n.next(); nx != t.end && t.cfg.cmp(n.key, nx.key) >= 0 {
			return fmt.Errorf("keys %v and %v out of order", n.key, nx.key)
		}
	}
	if visited != t.length {
		return fmt.Errorf("traversal visited %d of %d nodes", visited, t.length)
	}
	return nil
}

// checkSubtree returns the number of nodes and the height of the subtree
// rooted at n.
func (t *Map[K, V, A, AP]) checkSubtree(n *node[K, V, A, AP]) (count, height int, _ error) {
	if n == nil {
		return 0, 0, nil
	}
	for _, c := range [...]*node[K, V, A, AP]{n.left, n.right} {
		if c != nil && c.parent != n {
			return 0, 0, fmt.Errorf("node %v: child %v has the wrong parent", n.key, c.key)
		}
	}
	if n.left != nil && t.cfg.cmp(n.left.key, n.key) >= 0 {
		return 0, 0, fmt.Errorf("node %v: left child %v is not less", n.key, n.left.key)
	}
	if n.right != nil && t.cfg.cmp(n.right.key, n.key) <= 0 {
		return 0, 0, fmt.Errorf("node %v: right child %v is not greater", n.key, n.right.key)
	}
	lc, lh, err := t.checkSubtree(n.left)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := t.checkSubtree(n.right)
	if err != nil {
		return 0, 0, err
	}
	if bf := rh - lh; bf != int(n.balance) || bf < -1 || bf > 1 {
		return 0, 0, fmt.Errorf("node %v: balance %d, heights %d/%d", n.key, n.balance, lh, rh)
	}
	want := n.aug
	if AP(&want).Update(n); !reflect.DeepEqual(want, n.aug) {
		return 0, 0, fmt.Errorf("node %v: stale augmentation %v, want %v", n.key, n.aug, want)
	}
	return lc + rc + 1, 1 + max(lh, rh), nil
}
