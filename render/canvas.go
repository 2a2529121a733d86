// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/zahar-sh/Tree/layout"
)

// label brackets by highlight
var brackets = map[Highlight][2]string{
	Normal:   {"[", "]"},
	Linked:   {"(", ")"},
	Selected: {"<", ">"},
}

// Canvas - draw placements on a character grid
//
// each character cell covers cell.Width × cell.Height canvas units; a
// label starts at the cell holding the top left corner of its node
// and later labels overwrite earlier ones.  Labels are bracketed by
// highlight: [normal] (linked) <selected>.
func Canvas[T comparable](out io.Writer, placements []layout.Placement[T], g layout.Geometry, cell layout.Size, selected *T) error {
	if err := cell.Validate(); nil != err {
		return err
	}
	columns := g.Canvas.Width/cell.Width + 1
	rows := g.Canvas.Height/cell.Height + 1

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", columns))
	}

	for _, p := range placements {
		row := p.Point.Y / cell.Height
		column := p.Point.X / cell.Width
		if row < 0 || row >= rows || column < 0 {
			continue
		}
		b := brackets[HighlightOf(p.Node, selected)]
		text := fmt.Sprintf("%s%v%s", b[0], p.Node.Value(), b[1])
		for i, r := range []rune(text) {
			c := column + i
			if c < len(grid[row]) {
				grid[row][c] = r
			} else {
				grid[row] = append(grid[row], r)
			}
		}
	}

	w := &writer{w: out}
	for _, line := range grid {
		w.printf("%s\n", strings.TrimRight(string(line), " "))
	}
	return w.err
}
