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

// node is a single element of the tree. The left and right fields own the
// subtrees below the node; parent is a back-reference used for traversal and
// retracing only. The key never changes once the node is linked.
//
// The sentinel is a node like any other except that it carries no element.
// Its left field owns the root and its parent is nil. Real nodes always have
// a non-nil parent, so a nil parent on a non-sentinel node marks a node which
// has been unlinked from its tree.
type node[K, V, A any, AP Aug[K, A]] struct {
	parent  *node[K, V, A, AP]
	left    *node[K, V, A, AP]
	right   *node[K, V, A, AP]
	key     K
	value   V
	balance int8 // height(right) - height(left), in [-1, +1]
	aug     A
}

func newNode[K, V, A any, AP Aug[K, A]](
	key K, value V, parent *node[K, V, A, AP],
) *node[K, V, A, AP] {
	return &node[K, V, A, AP]{
		parent: parent,
		key:    key,
		value:  value,
	}
}

func (n *node[K, V, A, AP]) Key() K { return n.key }

func (n *node[K, V, A, AP]) Left() *A {
	if n.left == nil {
		return nil
	}
	return &n.left.aug
}

func (n *node[K, V, A, AP]) Right() *A {
	if n.right == nil {
		return nil
	}
	return &n.right.aug
}

// update recomputes the augmentation of n.
func (n *node[K, V, A, AP]) update() (changed bool) {
	return AP(&n.aug).Update(n)
}

// slot returns the owning link which holds n: the left or right field of
// its parent. The root is held by the sentinel's left field.
func (n *node[K, V, A, AP]) slot() **node[K, V, A, AP] {
	p := n.parent
	if p == nil {
		panic("abstract: node has no parent")
	}
	switch n {
	case p.left:
		return &p.left
	case p.right:
		return &p.right
	default:
		panic("abstract: node is not owned by its parent")
	}
}

func (n *node[K, V, A, AP]) setLeft(c *node[K, V, A, AP]) {
	n.left = c
	if c != nil {
		c.parent = n
	}
}

func (n *node[K, V, A, AP]) setRight(c *node[K, V, A, AP]) {
	n.right = c
	if c != nil {
		c.parent = n
	}
}

// replaceWith moves c into the slot which owns n. n keeps its own links.
func (n *node[K, V, A, AP]) replaceWith(c *node[K, V, A, AP]) {
	p := n.parent
	*n.slot() = c
	if c != nil {
		c.parent = p
	}
}

// first returns the left-most node of the subtree rooted at n.
func (n *node[K, V, A, AP]) first() *node[K, V, A, AP] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// last returns the right-most node of the subtree rooted at n.
func (n *node[K, V, A, AP]) last() *node[K, V, A, AP] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// next returns the in-order successor of n. The climb ends at the sentinel,
// which is the successor of the last element and of itself.
func (n *node[K, V, A, AP]) next() *node[K, V, A, AP] {
	if n.right != nil {
		return n.right.first()
	}
	for {
		p := n.parent
		if p == nil {
			return n
		}
		if p.left == n {
			return p
		}
		n = p
	}
}

// prev returns the in-order predecessor of n. The predecessor of the
// sentinel is the last element; the predecessor of the first element is the
// sentinel.
func (n *node[K, V, A, AP]) prev() *node[K, V, A, AP] {
	if n.left != nil {
		return n.left.last()
	}
	for {
		p := n.parent
		if p == nil {
			return n
		}
		if p.right == n {
			return p
		}
		n = p
	}
}

// unlink clears the links of a node which has been removed from the tree.
func (n *node[K, V, A, AP]) unlink() {
	n.parent, n.left, n.right = nil, nil, nil
	n.balance = 0
}

// height computes the height of the subtree rooted at n.
func (n *node[K, V, A, AP]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}
