// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Ordering and equality are both defined by the comparator given to
// New; two values are the same item when the comparator returns zero.
// Duplicates are never stored.
//
// Deleting a node with two children moves the value of its in-order
// successor into the node and then unlinks the successor node, so a
// *Node obtained before a deletion may be detached afterwards; check
// IsDeleted before using it.  RemoveIf is the only traversal that may
// delete nodes while it is walking the tree.
//
// Visitor and predicate callbacks must not panic: a panic propagates
// unchanged and the tree may be left part way through a rebalance.
package avl
