// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node[T any] struct {
	left    *Node[T] // left sub-tree
	right   *Node[T] // right sub-tree
	parent  *Node[T] // points to parent node, not an owner
	value   T        // ordered value
	live    bool     // false once the value slot has been cleared
	balance int      // -1, 0, +1 (±2 only inside a rebalance)
}

// allocate a new detached node
func newNode[T any](value T, parent *Node[T]) *Node[T] {
	return &Node[T]{
		value:   value,
		parent:  parent,
		live:    true,
		balance: 0,
	}
}

// reclaim a node: clear the value slot and every link so that no
// reference held by a caller can reach back into the tree
func freeNode[T any](node *Node[T]) {
	var zero T
	node.parent = nil
	node.left = nil
	node.right = nil
	node.value = zero
	node.live = false
	node.balance = 0
}
