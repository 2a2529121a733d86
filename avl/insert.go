// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Add - insert a new value into the tree
//
// returns false and leaves the tree unchanged if an equal value is
// already present
func (tree *Tree[T]) Add(value T) bool {
	p := tree.root
	if nil == p {
		tree.root = newNode(value, nil)
		return true
	}

	var parent *Node[T]
	c := 0
	for nil != p {
		parent = p
		c = tree.compare(value, p.value)
		switch {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return false
		}
	}

	n := newNode(value, parent)
	if c < 0 {
		parent.left = n
		parent.balance -= 1
	} else {
		parent.right = n
		parent.balance += 1
	}
	tree.fixAfterInsertion(parent)
	return true
}

// insert: tree balancer
//
// walk up from x while the sub-tree rooted at x has grown; one
// rotation restores the previous height so the walk stops there
func (tree *Tree[T]) fixAfterInsertion(x *Node[T]) {
	for 0 != x.balance {
		switch x.balance {
		case +2: // right branch too high
			if +1 == x.right.balance {
				// single RR rotation
				x.balance = 0
				x.right.balance = 0
				tree.rotateLeft(x)
			} else {
				// double RL rotation
				tree.rotateRightLeft(x)
			}
			return

		case -2: // left branch too high
			if -1 == x.left.balance {
				// single LL rotation
				x.balance = 0
				x.left.balance = 0
				tree.rotateRight(x)
			} else {
				// double LR rotation
				tree.rotateLeftRight(x)
			}
			return
		}

		parent := x.parent
		if nil == parent {
			return
		}
		if parent.left == x {
			parent.balance -= 1
		} else {
			parent.balance += 1
		}
		x = parent
	}
}
