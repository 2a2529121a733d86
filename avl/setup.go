// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"fmt"
	"strings"
)

// Comparator - total order over the values of a tree
//
// returns negative when a < b, zero when a == b, positive when a > b
type Comparator[T any] func(a T, b T) int

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root    *Node[T]
	compare Comparator[T]
}

// New - create an initially empty tree ordered by compare
func New[T any](compare Comparator[T]) *Tree[T] {
	if nil == compare {
		panic("avl: nil comparator")
	}
	return &Tree[T]{
		root:    nil,
		compare: compare,
	}
}

// NewOrdered - create an empty tree using the natural order of T
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	return New[T](cmp.Compare[T])
}

// Comparator - the ordering function given to New
func (tree *Tree[T]) Comparator() Comparator[T] {
	return tree.compare
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// Value - read the value from a node item
func (p *Node[T]) Value() T {
	if nil == p {
		var zero T
		return zero
	}
	return p.value
}

// Parent - return parent node of a node
func (p *Node[T]) Parent() *Node[T] {
	if nil == p {
		return nil
	}
	return p.parent
}

// Left - return the left child of a node
func (p *Node[T]) Left() *Node[T] {
	if nil == p {
		return nil
	}
	return p.left
}

// Right - return the right child of a node
func (p *Node[T]) Right() *Node[T] {
	if nil == p {
		return nil
	}
	return p.right
}

// Balance - height of right sub-tree minus height of left sub-tree
func (p *Node[T]) Balance() int {
	if nil == p {
		return 0
	}
	return p.balance
}

// IsDeleted - true once the node has been removed from its tree
func (p *Node[T]) IsDeleted() bool {
	return nil == p || !p.live
}

// Depth - get the depth of a node
func (p *Node[T]) Depth() uint {
	count := uint(0)
	parent := p.parent
	for nil != parent {
		count += 1
		parent = parent.parent
	}
	return count
}

// ChildrenByDepth - returns all descendants at a specific depth below
// this node, ordered left to right
func (p *Node[T]) ChildrenByDepth(depth uint) []*Node[T] {
	nodes := []*Node[T]{}

	if 0 == depth {
		nodes = append(nodes, p)
	} else {
		if nil != p.left {
			nodes = append(nodes, p.left.ChildrenByDepth(depth-1)...)
		}
		if nil != p.right {
			nodes = append(nodes, p.right.ChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// String - value followed by the links that are present
//
// e.g. {7,parent,left}
func (p *Node[T]) String() string {
	if nil == p {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	fmt.Fprint(&b, p.value)
	if nil != p.parent {
		b.WriteString(",parent")
	}
	if nil != p.left {
		b.WriteString(",left")
	}
	if nil != p.right {
		b.WriteString(",right")
	}
	b.WriteByte('}')
	return b.String()
}
