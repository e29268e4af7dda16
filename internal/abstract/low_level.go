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

// LowLevelIterator exposes the tree structure below an Iterator. It lets
// augmented trees implement searches which are guided by augmentations
// rather than keys.
type LowLevelIterator[K, V, A any, AP Aug[K, A]] Iterator[K, V, A, AP]

// LowLevel converts an Iterator into a LowLevelIterator at the same
// position.
func LowLevel[K, V, A any, AP Aug[K, A]](it *Iterator[K, V, A, AP]) *LowLevelIterator[K, V, A, AP] {
	return it.lowLevel()
}

// Reset positions the iterator at the root, or at End for an empty tree.
func (i *LowLevelIterator[K, V, A, AP]) Reset() {
	i.n = i.t.root()
	if i.n == nil {
		i.n = i.t.end
	}
}

// Node returns the current node.
func (i *LowLevelIterator[K, V, A, AP]) Node() Node[K, *A] {
	return i.n
}

// Aug returns the augmentation of the current node.
func (i *LowLevelIterator[K, V, A, AP]) Aug() AP {
	return &i.n.aug
}

// Balance returns the balance factor of the current node.
func (i *LowLevelIterator[K, V, A, AP]) Balance() int {
	return int(i.n.balance)
}

// HasLeft reports whether the current node has a left child.
func (i *LowLevelIterator[K, V, A, AP]) HasLeft() bool { return i.n.left != nil }

// HasRight reports whether the current node has a right child.
func (i *LowLevelIterator[K, V, A, AP]) HasRight() bool { return i.n.right != nil }

// DescendLeft moves to the left child, which must exist.
func (i *LowLevelIterator[K, V, A, AP]) DescendLeft() {
	if i.n.left == nil {
		panic("abstract: descend into missing left child")
	}
	i.n = i.n.left
}

// DescendRight moves to the right child, which must exist.
func (i *LowLevelIterator[K, V, A, AP]) DescendRight() {
	if i.n.right == nil {
		panic("abstract: descend into missing right child")
	}
	i.n = i.n.right
}

// Ascend moves to the parent of the current node. Ascending from the root
// reaches End.
func (i *LowLevelIterator[K, V, A, AP]) Ascend() {
	if i.n.parent == nil {
		panic("abstract: ascend above the sentinel")
	}
	i.n = i.n.parent
}

// IsLeftChild reports whether the current node hangs off its parent's left
// link. The root is the sentinel's left child.
func (i *LowLevelIterator[K, V, A, AP]) IsLeftChild() bool {
	p := i.n.parent
	return p != nil && p.left == i.n
}
