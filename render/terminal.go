// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/zahar-sh/Tree/layout"
	"github.com/zahar-sh/Tree/session"
)

var _ session.Display = (*Terminal)(nil)

// Terminal - a session display writing text to a stream
type Terminal struct {
	out     io.Writer
	cell    layout.Size
	message *color.Color
}

// NewTerminal - create a display; cell is the area of the canvas
// covered by one character
func NewTerminal(out io.Writer, cell layout.Size) (*Terminal, error) {
	if err := cell.Validate(); nil != err {
		return nil, err
	}
	t := &Terminal{
		out:     out,
		cell:    cell,
		message: color.New(color.FgCyan),
	}
	return t, nil
}

// Repaint - draw the view in its mode
func (t *Terminal) Repaint(view session.View) error {
	style, err := NewStyle(view.Colours.Selected, view.Colours.Links, view.Colours.Node)
	if nil != err {
		return err
	}

	if view.Tree.IsEmpty() {
		_, err := fmt.Fprintln(t.out, "tree is empty")
		return err
	}

	switch view.Mode {
	case session.ModePrint:
		return Tree(t.out, view.Tree)
	case session.ModeList:
		return List(t.out, view.Tree, view.Selected, style, false)
	case session.ModeReverse:
		return List(t.out, view.Tree, view.Selected, style, true)
	case session.ModeTable:
		return Table(t.out, view.Tree)
	case session.ModeCanvas:
		return Canvas(t.out, view.Placements, view.Geometry, t.cell, view.Selected)
	default:
		return Levels(t.out, view.Tree.Root(), view.Selected, style)
	}
}

// Message - a line of text to the user
func (t *Terminal) Message(format string, arguments ...interface{}) {
	t.message.Fprintf(t.out, format+"\n", arguments...)
}
