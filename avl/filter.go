// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// RemoveIf - delete every node for which filter returns true
//
// the successor is fetched before the current node is deleted.  When
// the deleted node had two children the successor's value was moved
// into it and the successor node unlinked, so the same node is
// examined again.
func (tree *Tree[T]) RemoveIf(filter func(*Node[T]) bool) bool {
	removed := false
	node := tree.First()
	for nil != node {
		next := node.Next()
		if filter(node) {
			removed = true
			twoChildren := nil != node.left && nil != node.right
			tree.Delete(node)
			if twoChildren {
				next = node
			}
		}
		node = next
	}
	return removed
}

// RemoveByValueIf - delete every value for which filter returns true
func (tree *Tree[T]) RemoveByValueIf(filter func(T) bool) bool {
	return tree.RemoveIf(func(p *Node[T]) bool {
		return filter(p.value)
	})
}
