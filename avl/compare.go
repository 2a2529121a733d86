// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"strings"
)

// Equal - true if both trees hold the same values in the same order
//
// values are matched with the comparator of tree; the shapes of the
// two trees may differ
func (tree *Tree[T]) Equal(other *Tree[T]) bool {
	if tree == other {
		return true
	}
	if nil == tree || nil == other {
		return false
	}
	p := tree.First()
	q := other.First()
	for nil != p {
		if nil == q {
			return false
		}
		if 0 != tree.compare(p.value, q.value) {
			return false
		}
		p = p.Next()
		q = q.Next()
	}
	return nil == q
}

// Hash - fold the hashes of the in-order values
//
// trees that are Equal produce the same result provided hash agrees
// with the comparator
func (tree *Tree[T]) Hash(hash func(T) uint64) uint64 {
	result := uint64(1)
	for p := tree.First(); nil != p; p = p.Next() {
		result = 31*result + hash(p.value)
	}
	return result
}

// String - the in-order values, e.g. [1, 2, 3]
func (tree *Tree[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	separator := ""
	for p := tree.First(); nil != p; p = p.Next() {
		b.WriteString(separator)
		fmt.Fprint(&b, p.value)
		separator = ", "
	}
	b.WriteByte(']')
	return b.String()
}
