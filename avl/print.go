// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch  branch = iota
	leftBranch  branch = iota
	rightBranch branch = iota
)

// Print - display an ASCII graphic representation of the tree
//
// the tree is drawn on its side with the right sub-tree at the top;
// returns the maximum depth of the tree
func (tree *Tree[T]) Print(w io.Writer, showBalance bool) int {
	return printTree(w, tree.root, "", rootBranch, showBalance)
}

// internal print - returns the maximum depth of the tree
func printTree[T any](w io.Writer, tree *Node[T], prefix string, br branch, showBalance bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, rightBranch, showBalance)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if showBalance {
		up := interface{}(nil)
		if nil != tree.parent {
			up = tree.parent.value
		}
		fmt.Fprintf(w, "%v ^%v %+2d\n", tree.value, up, tree.balance)
	} else {
		fmt.Fprintf(w, "%v\n", tree.value)
	}
	if nil != tree.left {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, leftBranch, showBalance)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
