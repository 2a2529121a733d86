// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - find a specific item, nil if it is not in the tree
func (tree *Tree[T]) Find(value T) *Node[T] {
	p := tree.root
	for nil != p {
		switch c := tree.compare(value, p.value); {
		case c < 0: // value < p.value
			p = p.left
		case c > 0: // value > p.value
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Contains - true if an item equal to value is in the tree
func (tree *Tree[T]) Contains(value T) bool {
	return nil != tree.Find(value)
}
