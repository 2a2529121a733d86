// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// pending work for Levels
type levelItem[T any] struct {
	node  *Node[T]
	depth int
}

// Levels - group the nodes below root by depth
//
// bucket i holds the nodes at depth i ordered left to right; a nil
// root gives an empty result.  A stack is used rather than a queue:
// the left sub-tree is always finished before its right sibling is
// started, so every bucket is still filled left to right.
func Levels[T any](root *Node[T]) [][]*Node[T] {
	if nil == root {
		return nil
	}

	levels := [][]*Node[T]{}
	stack := []levelItem[T]{{node: root, depth: 0}}

	for 0 != len(stack) {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if item.depth == len(levels) {
			levels = append(levels, []*Node[T]{})
		}
		levels[item.depth] = append(levels[item.depth], item.node)

		// push right first so that left is popped first
		if nil != item.node.right {
			stack = append(stack, levelItem[T]{node: item.node.right, depth: item.depth + 1})
		}
		if nil != item.node.left {
			stack = append(stack, levelItem[T]{node: item.node.left, depth: item.depth + 1})
		}
	}
	return levels
}

// Levels - group the nodes of the tree by depth
func (tree *Tree[T]) Levels() [][]*Node[T] {
	return Levels(tree.root)
}
