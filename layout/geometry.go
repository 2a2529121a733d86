// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"

	"github.com/zahar-sh/Tree/fault"
)

// Size - width and height in canvas units
type Size struct {
	Width  int `gluamapper:"width"`
	Height int `gluamapper:"height"`
}

// Point - top left corner of a node on the canvas
type Point struct {
	X int
	Y int
}

// Geometry - the drawing area and the size of a single node
type Geometry struct {
	Canvas Size
	Node   Size
}

// String - for debugging
func (s Size) String() string {
	return fmt.Sprintf("{width=%d, height=%d}", s.Width, s.Height)
}

// String - for debugging
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Validate - both dimensions must be positive
func (s Size) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fault.ErrInvalidSize
	}
	return nil
}

// Validate - check canvas and node sizes
func (g Geometry) Validate() error {
	if err := g.Canvas.Validate(); nil != err {
		return err
	}
	return g.Node.Validate()
}

// Center - where a freshly added node starts
func (g Geometry) Center() Point {
	return Point{
		X: (g.Canvas.Width - g.Node.Width) / 2,
		Y: (g.Canvas.Height - g.Node.Height) / 2,
	}
}

// ClampBounds - keep a whole node inside the canvas
func (g Geometry) ClampBounds(p *Point) {
	Clamp(p, 0, g.Canvas.Width-g.Node.Width, 0, g.Canvas.Height-g.Node.Height)
}

// Hit - true if the point lies strictly inside the node drawn at pos
func (g Geometry) Hit(pos Point, x int, y int) bool {
	return ContainsPoint(pos.X, pos.Y, pos.X+g.Node.Width, pos.Y+g.Node.Height, x, y)
}

// clamp a single value into [min, max], min wins if the range is empty
func clamp(value int, min int, max int) int {
	if value > max {
		value = max
	}
	if value < min {
		value = min
	}
	return value
}

// Clamp - limit both coordinates of a point
func Clamp(p *Point, minX int, maxX int, minY int, maxY int) {
	p.X = clamp(p.X, minX, maxX)
	p.Y = clamp(p.Y, minY, maxY)
}

// ContainsPoint - strict containment of (x, y) in the rectangle
func ContainsPoint(minX int, minY int, maxX int, maxY int, x int, y int) bool {
	return x > minX && x < maxX && y > minY && y < maxY
}
