// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package render

import (
	"strings"

	"github.com/fatih/color"

	"github.com/zahar-sh/Tree/avl"
	"github.com/zahar-sh/Tree/fault"
)

// SGR code that selects one of the 256 extended foreground colours
const extendedForeground color.Attribute = 38

// recognised colour names
var colourNames = map[string][]color.Attribute{
	"black":     {color.FgBlack},
	"blue":      {color.FgBlue},
	"chocolate": {extendedForeground, 5, 166},
	"cyan":      {color.FgCyan},
	"green":     {color.FgGreen},
	"magenta":   {color.FgMagenta},
	"orange":    {extendedForeground, 5, 208},
	"red":       {color.FgRed},
	"white":     {color.FgWhite},
	"yellow":    {color.FgHiYellow},
}

// Highlight - how a node relates to the selected value
type Highlight int

// highlight kinds
const (
	Normal Highlight = iota
	Linked
	Selected
)

// Style - the colour used for each highlight
type Style struct {
	Selected *color.Color
	Linked   *color.Color
	Normal   *color.Color
}

// NewStyle - build a style from three colour names
func NewStyle(selected string, linked string, normal string) (Style, error) {
	s := Style{}
	var err error
	if s.Selected, err = Colour(selected); nil != err {
		return Style{}, err
	}
	if s.Linked, err = Colour(linked); nil != err {
		return Style{}, err
	}
	if s.Normal, err = Colour(normal); nil != err {
		return Style{}, err
	}
	return s, nil
}

// Colour - look up a colour by name, case is ignored
func Colour(name string) (*color.Color, error) {
	attributes, ok := colourNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fault.ErrInvalidColour
	}
	return color.New(attributes...), nil
}

// For - the colour for a highlight
func (s Style) For(h Highlight) *color.Color {
	switch h {
	case Selected:
		return s.Selected
	case Linked:
		return s.Linked
	default:
		return s.Normal
	}
}

// HighlightOf - classify a node against the selected value
//
// a node is linked if its parent or one of its children holds the
// selected value
func HighlightOf[T comparable](n *avl.Node[T], selected *T) Highlight {
	if nil == n || nil == selected {
		return Normal
	}
	if n.Value() == *selected {
		return Selected
	}
	for _, link := range []*avl.Node[T]{n.Parent(), n.Left(), n.Right()} {
		if nil != link && link.Value() == *selected {
			return Linked
		}
	}
	return Normal
}
