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

import "fmt"

// insert links a new node for k below the insertion point found by locate
// and rebalances. If a node with key k already exists it is returned
// unchanged and mk is not called.
func (t *Map[K, V, A, AP]) insert(k K, mk func() V) (n *node[K, V, A, AP], inserted bool, err error) {
	found, parent, slot := t.locate(k)
	if found != nil {
		return found, false, nil
	}
	if t.length >= t.cfg.maxSize {
		return nil, false, fmt.Errorf("%w: map holds %d elements", ErrCapacityExceeded, t.length)
	}
	n = newNode[K, V, A, AP](k, mk(), parent)
	if slot == &t.begin.left {
		t.begin = n
	}
	*slot = n
	t.length++
	n.update()
	t.propagate(parent, false)
	t.retraceInsert(n)
	return n, true, nil
}

// retraceInsert walks up from the newly linked node n, updating balance
// factors until the height of a subtree is unchanged or a rotation restores
// it.
func (t *Map[K, V, A, AP]) retraceInsert(n *node[K, V, A, AP]) {
	for x := n; x.parent != t.end; {
		p := x.parent
		if x == p.left {
			switch p.balance {
			case +1:
				p.balance = 0
				return
			case 0:
				p.balance = -1
				x = p
				continue
			}
			if x.balance > 0 {
				rotateLeftRight(p)
			} else {
				rotateRight(p)
			}
			return
		}
		switch p.balance {
		case -1:
			p.balance = 0
			return
		case 0:
			p.balance = +1
			x = p
			continue
		}
		if x.balance < 0 {
			rotateRightLeft(p)
		} else {
			rotateLeft(p)
		}
		return
	}
}

// erase unlinks n, which must be a real node of t, rebalances, and returns
// the in-order successor of n.
func (t *Map[K, V, A, AP]) erase(n *node[K, V, A, AP]) *node[K, V, A, AP] {
	next := n.next()
	relocated := false
	if n.left != nil && n.right != nil {
		swapWithSuccessor(n, next)
		relocated = true
	}

	// n now has at most one child, which takes its place.
	child := n.left
	if child == nil {
		child = n.right
	}
	p := n.parent
	fromLeft := p.left == n
	n.replaceWith(child)
	if t.begin == n {
		if child != nil {
			t.begin = child.first()
		} else {
			t.begin = p
		}
	}
	n.unlink()
	t.length--

	if p != t.end {
		t.propagate(p, relocated)
		t.retraceErase(p, fromLeft)
	}
	return next
}

// swapWithSuccessor exchanges the structural positions of n, which has two
// children, and its in-order successor s, the left-most node of n's right
// subtree. Keys and values stay in their nodes; the balance factors stay
// with the positions. On return n has no left child.
func swapWithSuccessor[K, V, A any, AP Aug[K, A]](n, s *node[K, V, A, AP]) {
	if s.left != nil {
		panic("abstract: successor has a left child")
	}
	left, right := n.left, n.right
	sp, sr := s.parent, s.right

	n.replaceWith(s)
	s.setLeft(left)
	if s == right {
		s.setRight(n)
	} else {
		s.setRight(right)
		sp.setLeft(n)
	}
	n.left = nil
	n.setRight(sr)
	n.balance, s.balance = s.balance, n.balance
}

// retraceErase walks up from p, whose left (fromLeft) or right subtree just
// lost one level of height. Unlike insertion, a rotation may leave the
// rotated subtree shorter, in which case retracing continues above it.
func (t *Map[K, V, A, AP]) retraceErase(p *node[K, V, A, AP], fromLeft bool) {
	for p != t.end {
		var x *node[K, V, A, AP]
		if fromLeft {
			switch p.balance {
			case -1:
				p.balance = 0
				x = p
			case 0:
				p.balance = +1
				return
			default:
				if p.right.balance < 0 {
					x = rotateRightLeft(p)
				} else {
					x = rotateLeft(p)
				}
				if x.balance != 0 {
					return
				}
			}
		} else {
			switch p.balance {
			case +1:
				p.balance = 0
				x = p
			case 0:
				p.balance = -1
				return
			default:
				if p.left.balance > 0 {
					x = rotateLeftRight(p)
				} else {
					x = rotateRight(p)
				}
				if x.balance != 0 {
					return
				}
			}
		}
		p = x.parent
		fromLeft = p.left == x
	}
}

// propagate recomputes augmentations from n up to the root. Unless all is
// set it stops at the first node whose augmentation did not change.
func (t *Map[K, V, A, AP]) propagate(n *node[K, V, A, AP], all bool) {
	for ; n != t.end; n = n.parent {
		if !n.update() && !all {
			return
		}
	}
}
