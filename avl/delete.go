// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific item from the tree
//
// returns false if no equal item was present
func (tree *Tree[T]) Remove(value T) bool {
	node := tree.Find(value)
	if nil == node {
		return false
	}
	tree.Delete(node)
	return true
}

// Delete - unlink a node that belongs to this tree
//
// a node with two children takes the value of its successor and the
// successor node is the one unlinked.  Deleting a nil or already
// deleted node does nothing.
func (tree *Tree[T]) Delete(node *Node[T]) {
	if nil == node || !node.live {
		return
	}

	if nil != node.left && nil != node.right {
		successor := node.right.first()
		node.value = successor.value
		node = successor
	}

	// node now has at most one child
	replacement := node.left
	if nil == replacement {
		replacement = node.right
	}

	parent := node.parent
	if nil == parent {
		tree.replaceChild(nil, node, replacement)
		freeNode(node)
		return
	}

	fix := false
	if node == parent.left {
		parent.left = replacement
		parent.balance += 1
		fix = 1 != parent.balance
	} else {
		parent.right = replacement
		parent.balance -= 1
		fix = -1 != parent.balance
	}
	if nil != replacement {
		replacement.parent = parent
	}
	freeNode(node)

	// a balance of ±1 means the other side was already the higher
	// one, so the height of parent did not change
	if fix {
		tree.fixAfterDeletion(parent)
	}
}

// delete: tree balancer
//
// walk up from x while the sub-tree rooted at x has shrunk; unlike
// insert a rotation may shrink the sub-tree again, so the walk
// continues unless the rotation left the height unchanged
func (tree *Tree[T]) fixAfterDeletion(x *Node[T]) {
	for {
		switch x.balance {
		case +2: // right branch too high
			r := x.right
			switch r.balance {
			case +1:
				// single RR rotation
				x.balance = 0
				r.balance = 0
				tree.rotateLeft(x)
			case 0:
				// single RR rotation, height unchanged
				x.balance = +1
				r.balance = -1
				tree.rotateLeft(x)
				return
			default:
				// double RL rotation
				tree.rotateRightLeft(x)
			}
			x = x.parent // top of the rotated sub-tree

		case -2: // left branch too high
			l := x.left
			switch l.balance {
			case -1:
				// single LL rotation
				x.balance = 0
				l.balance = 0
				tree.rotateRight(x)
			case 0:
				// single LL rotation, height unchanged
				x.balance = -1
				l.balance = +1
				tree.rotateRight(x)
				return
			default:
				// double LR rotation
				tree.rotateLeftRight(x)
			}
			x = x.parent // top of the rotated sub-tree
		}

		parent := x.parent
		if nil == parent {
			return
		}
		if parent.left == x {
			parent.balance += 1
			if +1 == parent.balance {
				return
			}
		} else {
			parent.balance -= 1
			if -1 == parent.balance {
				return
			}
		}
		x = parent
	}
}

// Clear - remove every node from the tree
//
// post-order walk using the parent links, no recursion so the call
// stack does not grow with the height of the tree
func (tree *Tree[T]) Clear() {
	node := tree.root
	tree.root = nil

	for nil != node {
		if nil != node.left {
			node = node.left
			continue
		}
		if nil != node.right {
			node = node.right
			continue
		}
		parent := node.parent
		if nil != parent {
			if parent.left == node {
				parent.left = nil
			} else {
				parent.right = nil
			}
		}
		freeNode(node)
		node = parent
	}
}
