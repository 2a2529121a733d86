// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/zahar-sh/Tree/avl"
)

// keeps the first write error so callers check once at the end
type writer struct {
	w   io.Writer
	err error
}

func (w *writer) printf(format string, arguments ...interface{}) {
	if nil == w.err {
		_, w.err = fmt.Fprintf(w.w, format, arguments...)
	}
}

func (w *writer) colour(c *color.Color, value interface{}) {
	if nil == w.err {
		_, w.err = c.Fprint(w.w, value)
	}
}

// Levels - one line per depth, "depth: v1 v2 ..." with each value
// coloured by its highlight
func Levels[T comparable](out io.Writer, root *avl.Node[T], selected *T, style Style) error {
	w := &writer{w: out}
	for depth, nodes := range avl.Levels(root) {
		w.printf("%d:", depth)
		for _, n := range nodes {
			w.printf(" ")
			w.colour(style.For(HighlightOf(n, selected)), n.Value())
		}
		w.printf("\n")
	}
	return w.err
}

// List - all values on one line as "[v1, v2, ...]"
func List[T comparable](out io.Writer, tree *avl.Tree[T], selected *T, style Style, descending bool) error {
	w := &writer{w: out}
	separator := ""
	each := tree.ForEach
	if descending {
		each = tree.ForEachDescending
	}

	w.printf("[")
	each(func(n *avl.Node[T]) {
		w.printf("%s", separator)
		w.colour(style.For(HighlightOf(n, selected)), n.Value())
		separator = ", "
	})
	w.printf("]\n")
	return w.err
}

// Tree - sideways drawing with balance factors followed by the depth
func Tree[T any](out io.Writer, tree *avl.Tree[T]) error {
	depth := tree.Print(out, true)
	_, err := fmt.Fprintf(out, "depth: %d\n", depth)
	return err
}
