// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckUp - check the parent pointers for consistency
func (tree *Tree[T]) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup[T any](p *Node[T], up *Node[T]) bool {
	if nil == p {
		return true
	}
	if p.parent != up || !p.live {
		fmt.Printf("fail at node: %v   actual: %v  expected: %v\n", p.value, p.parent.Value(), up.Value())
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckBalance - check every stored balance against the real heights
// and that it is within -1…+1
func (tree *Tree[T]) CheckBalance() bool {
	_, ok := checkBalance(tree.root)
	return ok
}

// internal: returns height of sub-tree
func checkBalance[T any](p *Node[T]) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, ok := checkBalance(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkBalance(p.right)
	if !ok {
		return 0, false
	}
	b := rh - lh
	if b != p.balance || b < -1 || b > 1 {
		fmt.Printf("fail at node: %v   balance: %d  heights: %d/%d\n", p.value, p.balance, lh, rh)
		return 0, false
	}
	if lh > rh {
		return 1 + lh, true
	}
	return 1 + rh, true
}

// CheckOrder - check that every left value is lower and every right
// value is higher than its node
func (tree *Tree[T]) CheckOrder() bool {
	return tree.checkOrder(tree.root, nil, nil)
}

// internal: low and high bound the values allowed in the sub-tree
func (tree *Tree[T]) checkOrder(p *Node[T], low *Node[T], high *Node[T]) bool {
	if nil == p {
		return true
	}
	if nil != low && tree.compare(low.value, p.value) >= 0 {
		fmt.Printf("fail at node: %v   not above: %v\n", p.value, low.value)
		return false
	}
	if nil != high && tree.compare(p.value, high.value) >= 0 {
		fmt.Printf("fail at node: %v   not below: %v\n", p.value, high.value)
		return false
	}
	return tree.checkOrder(p.left, low, p) && tree.checkOrder(p.right, p, high)
}
