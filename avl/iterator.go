// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest value
func (tree *Tree[T]) First() *Node[T] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[T]) first() *Node[T] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest value
func (tree *Tree[T]) Last() *Node[T] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[T]) last() *Node[T] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Next - the in-order successor of node, nil at the end
func (tree *Tree[T]) Next(node *Node[T]) *Node[T] {
	return node.Next()
}

// Prev - the in-order predecessor of node, nil at the start
func (tree *Tree[T]) Prev(node *Node[T]) *Node[T] {
	return node.Prev()
}

// Next - given a node, return the node with the next highest value
// or nil if no more nodes.
func (p *Node[T]) Next() *Node[T] {
	if nil == p {
		return nil
	}
	if nil != p.right {
		return p.right.first()
	}
	parent := p.parent
	for nil != parent && p == parent.right {
		p = parent
		parent = parent.parent
	}
	return parent
}

// Prev - given a node, return the node with the next lowest value or
// nil if no more nodes
func (p *Node[T]) Prev() *Node[T] {
	if nil == p {
		return nil
	}
	if nil != p.left {
		return p.left.last()
	}
	parent := p.parent
	for nil != parent && p == parent.left {
		p = parent
		parent = parent.parent
	}
	return parent
}

// ForEach - visit every node in ascending order
//
// the tree must not be modified by action
func (tree *Tree[T]) ForEach(action func(*Node[T])) {
	for p := tree.First(); nil != p; p = p.Next() {
		action(p)
	}
}

// ForEachDescending - visit every node in descending order
func (tree *Tree[T]) ForEachDescending(action func(*Node[T])) {
	for p := tree.Last(); nil != p; p = p.Prev() {
		action(p)
	}
}

// ForEachValue - visit every value in ascending order
func (tree *Tree[T]) ForEachValue(action func(T)) {
	tree.ForEach(func(p *Node[T]) {
		action(p.value)
	})
}

// ForEachValueDescending - visit every value in descending order
func (tree *Tree[T]) ForEachValueDescending(action func(T)) {
	tree.ForEachDescending(func(p *Node[T]) {
		action(p.value)
	})
}

// Values - all values in ascending order
func (tree *Tree[T]) Values() []T {
	values := []T{}
	tree.ForEachValue(func(v T) {
		values = append(values, v)
	})
	return values
}
