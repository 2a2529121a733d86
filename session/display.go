// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package session

import (
	"github.com/zahar-sh/Tree/avl"
	"github.com/zahar-sh/Tree/layout"
)

// Mode - which rendering a repaint produces
type Mode int

// rendering modes
const (
	ModeLevels Mode = iota
	ModePrint
	ModeList
	ModeReverse
	ModeTable
	ModeCanvas
)

var modeNames = map[Mode]string{
	ModeLevels:  "levels",
	ModePrint:   "print",
	ModeList:    "list",
	ModeReverse: "reverse",
	ModeTable:   "table",
	ModeCanvas:  "canvas",
}

// String - name of the mode as typed in a command
func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "unknown"
}

// Colours - colour names for the three kinds of node
type Colours struct {
	Node     string `gluamapper:"node"`
	Selected string `gluamapper:"selected"`
	Links    string `gluamapper:"links"`
}

// Settings - the parts of the configuration that may change while
// running
type Settings struct {
	Geometry layout.Geometry
	Colours  Colours
}

// View - everything a display needs for one repaint
//
// the tree is owned by the session; a display must not modify it and
// must not keep it after Repaint returns
type View struct {
	Mode       Mode
	Tree       *avl.Tree[int]
	Selected   *int
	Geometry   layout.Geometry
	Placements []layout.Placement[int]
	Colours    Colours
}

//go:generate mockgen -destination=mocks/mock_display.go -package=mocks github.com/zahar-sh/Tree/session Display

// Display - where a session shows its tree and messages
type Display interface {
	Repaint(view View) error
	Message(format string, arguments ...interface{})
}
