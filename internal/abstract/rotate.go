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

// The rotations below restructure the subtree rooted at x in place of the
// link which owns x, fix every parent link they touch and recompute the
// balance factors and augmentations of the restructured nodes. They return
// the new root of the subtree.
//
// Balance factors follow the height-dependent table: a single rotation
// leaves both nodes balanced unless the promoted child was itself balanced,
// which only happens on deletion and leaves the subtree height unchanged.
// A double rotation always balances the new root and distributes the
// former lean of the new root to the demoted nodes.

// rotateLeft promotes the right child of x.
//
//	  x              z
//	 / \            / \
//	a   z    =>    x   c
//	   / \        / \
//	  b   c      a   b
func rotateLeft[K, V, A any, AP Aug[K, A]](x *node[K, V, A, AP]) *node[K, V, A, AP] {
	z := x.right
	if z == nil {
		panic("abstract: rotate left without right child")
	}
	x.replaceWith(z)
	x.setRight(z.left)
	z.setLeft(x)
	if z.balance == 0 {
		x.balance, z.balance = +1, -1
	} else {
		x.balance, z.balance = 0, 0
	}
	x.update()
	z.update()
	return z
}

// rotateRight promotes the left child of x.
func rotateRight[K, V, A any, AP Aug[K, A]](x *node[K, V, A, AP]) *node[K, V, A, AP] {
	z := x.left
	if z == nil {
		panic("abstract: rotate right without left child")
	}
	x.replaceWith(z)
	x.setLeft(z.right)
	z.setRight(x)
	if z.balance == 0 {
		x.balance, z.balance = -1, +1
	} else {
		x.balance, z.balance = 0, 0
	}
	x.update()
	z.update()
	return z
}

// rotateRightLeft is used when the right child z of x leans left. The left
// child y of z becomes the subtree root.
//
//	  x                y
//	 / \             /   \
//	a   z           x     z
//	   / \    =>   / \   / \
//	  y   d       a   b c   d
//	 / \
//	b   c
func rotateRightLeft[K, V, A any, AP Aug[K, A]](x *node[K, V, A, AP]) *node[K, V, A, AP] {
	z := x.right
	if z == nil || z.left == nil {
		panic("abstract: rotate right-left without right-left grandchild")
	}
	y := z.left
	x.replaceWith(y)
	z.setLeft(y.right)
	x.setRight(y.left)
	y.setLeft(x)
	y.setRight(z)
	switch {
	case y.balance > 0:
		x.balance, z.balance = -1, 0
	case y.balance < 0:
		x.balance, z.balance = 0, +1
	default:
		x.balance, z.balance = 0, 0
	}
	y.balance = 0
	x.update()
	z.update()
	y.update()
	return y
}

// rotateLeftRight is the mirror of rotateRightLeft, used when the left child
// of x leans right.
func rotateLeftRight[K, V, A any, AP Aug[K, A]](x *node[K, V, A, AP]) *node[K, V, A, AP] {
	z := x.left
	if z == nil || z.right == nil {
		panic("abstract: rotate left-right without left-right grandchild")
	}
	y := z.right
	x.replaceWith(y)
	z.setRight(y.left)
	x.setLeft(y.right)
	y.setLeft(z)
	y.setRight(x)
	switch {
	case y.balance > 0:
		z.balance, x.balance = -1, 0
	case y.balance < 0:
		z.balance, x.balance = 0, +1
	default:
		z.balance, x.balance = 0, 0
	}
	y.balance = 0
	z.update()
	x.update()
	y.update()
	return y
}
