// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// single left rotation: p's right child takes p's position
//
//	    p               r
//	   / \             / \
//	  a   r    →      p   c
//	     / \         / \
//	    b   c       a   b
//
// balances are left to the caller
func (tree *Tree[T]) rotateLeft(p *Node[T]) {
	r := p.right
	p.right = r.left
	if nil != r.left {
		r.left.parent = p
	}
	tree.replaceChild(p.parent, p, r)
	r.left = p
	p.parent = r
}

// single right rotation: mirror of rotateLeft
func (tree *Tree[T]) rotateRight(p *Node[T]) {
	l := p.left
	p.left = l.right
	if nil != l.right {
		l.right.parent = p
	}
	tree.replaceChild(p.parent, p, l)
	l.right = p
	p.parent = l
}

// put newChild where oldChild was attached to parent (or at the root)
func (tree *Tree[T]) replaceChild(parent *Node[T], oldChild *Node[T], newChild *Node[T]) {
	if nil != newChild {
		newChild.parent = parent
	}
	switch {
	case nil == parent:
		tree.root = newChild
	case parent.left == oldChild:
		parent.left = newChild
	default:
		parent.right = newChild
	}
}

// double rotation for a right heavy x whose right child leans left
// (right-left case); balances are set from the displaced grandchild
func (tree *Tree[T]) rotateRightLeft(x *Node[T]) {
	r := x.right
	rl := r.left
	rlBalance := rl.balance

	rl.balance = 0
	r.balance = 0
	x.balance = 0
	switch rlBalance {
	case +1:
		x.balance = -1
	case -1:
		r.balance = +1
	}

	tree.rotateRight(r)
	tree.rotateLeft(x)
}

// double rotation for a left heavy x whose left child leans right
// (left-right case)
func (tree *Tree[T]) rotateLeftRight(x *Node[T]) {
	l := x.left
	lr := l.right
	lrBalance := lr.balance

	lr.balance = 0
	l.balance = 0
	x.balance = 0
	switch lrBalance {
	case +1:
		l.balance = -1
	case -1:
		x.balance = +1
	}

	tree.rotateLeft(l)
	tree.rotateRight(x)
}
