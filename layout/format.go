// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"math"

	"github.com/zahar-sh/Tree/avl"
)

// vertical distance between levels as a multiple of node height
const levelSpacing = 1.5

// Placement - a node and the position assigned to it
type Placement[T any] struct {
	Node  *avl.Node[T]
	Point Point
}

// Format - assign a position to every node of a level grouping
//
// level l is drawn at y = l × spacing and the i-th node of the level
// at x = (i+1) × (canvas width - node width) / (1 + 2^l), so every
// level is spread across the whole width regardless of how full it
// is.  The results are clamped so the node stays on the canvas.
func Format[T any](levels [][]*avl.Node[T], g Geometry) []Placement[T] {
	spaceY := int(float64(g.Node.Height) * levelSpacing)
	screenWidth := g.Canvas.Width - g.Node.Width

	placements := make([]Placement[T], 0, count(levels))
	for level, nodes := range levels {
		y := level * spaceY
		factor := 1 + math.Pow(2, float64(level))
		for index, node := range nodes {
			p := Point{
				X: int(float64(index+1) * (float64(screenWidth) / factor)),
				Y: y,
			}
			g.ClampBounds(&p)
			placements = append(placements, Placement[T]{
				Node:  node,
				Point: p,
			})
		}
	}
	return placements
}

func count[T any](levels [][]*avl.Node[T]) int {
	n := 0
	for _, nodes := range levels {
		n += len(nodes)
	}
	return n
}
