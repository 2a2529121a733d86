// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/zahar-sh/Tree/avl"
)

// Table - one row per node in ascending order
func Table[T any](out io.Writer, tree *avl.Tree[T]) error {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"value", "parent", "left", "right", "balance", "depth"})

	count := 0
	tree.ForEach(func(n *avl.Node[T]) {
		tbl.AppendRow(table.Row{
			n.Value(),
			label(n.Parent()),
			label(n.Left()),
			label(n.Right()),
			fmt.Sprintf("%+d", n.Balance()),
			n.Depth(),
		})
		count += 1
	})
	tbl.AppendFooter(table.Row{fmt.Sprintf("total: %d", count)})

	_, err := fmt.Fprintln(out, tbl.Render())
	return err
}

// blank for a missing link
func label[T any](n *avl.Node[T]) interface{} {
	if nil == n {
		return ""
	}
	return n.Value()
}
