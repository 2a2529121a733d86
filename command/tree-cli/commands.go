// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/zahar-sh/Tree/fault"
	"github.com/zahar-sh/Tree/layout"
	"github.com/zahar-sh/Tree/render"
)

// colours used by every command that highlights
const (
	selectedColour = "yellow"
	linksColour    = "orange"
	nodeColour     = "chocolate"
)

func runLevels(c *cli.Context) error {
	m := c.App.Metadata["tree"].(*metadata)

	style, err := render.NewStyle(selectedColour, linksColour, nodeColour)
	if nil != err {
		return err
	}
	return render.Levels(m.w, m.tree.Root(), m.selected, style)
}

func runPrint(c *cli.Context) error {
	m := c.App.Metadata["tree"].(*metadata)
	return render.Tree(m.w, m.tree)
}

func runList(c *cli.Context) error {
	m := c.App.Metadata["tree"].(*metadata)

	if c.Bool("json") {
		values := []int{}
		if c.Bool("reverse") {
			m.tree.ForEachValueDescending(func(v int) {
				values = append(values, v)
			})
		} else {
			values = m.tree.Values()
		}
		return printJson(m.w, values)
	}

	style, err := render.NewStyle(selectedColour, linksColour, nodeColour)
	if nil != err {
		return err
	}
	return render.List(m.w, m.tree, m.selected, style, c.Bool("reverse"))
}

func runTable(c *cli.Context) error {
	m := c.App.Metadata["tree"].(*metadata)
	return render.Table(m.w, m.tree)
}

func runCanvas(c *cli.Context) error {
	m := c.App.Metadata["tree"].(*metadata)

	g := layout.Geometry{
		Canvas: layout.Size{Width: c.Int("canvas-width"), Height: c.Int("canvas-height")},
		Node:   layout.Size{Width: c.Int("node-width"), Height: c.Int("node-height")},
	}
	if err := g.Validate(); nil != err {
		return err
	}
	cell := layout.Size{Width: c.Int("cell-width"), Height: c.Int("cell-height")}

	placements := layout.Format(m.tree.Levels(), g)
	if m.verbose {
		for _, p := range placements {
			fmt.Fprintf(m.e, "%d: %s\n", p.Node.Value(), p.Point)
		}
	}
	return render.Canvas(m.w, placements, g, cell, m.selected)
}

func runCheck(c *cli.Context) error {
	m := c.App.Metadata["tree"].(*metadata)

	up := m.tree.CheckUp()
	balance := m.tree.CheckBalance()
	order := m.tree.CheckOrder()

	fmt.Fprintf(m.w, "parent links: %t\n", up)
	fmt.Fprintf(m.w, "balance:      %t\n", balance)
	fmt.Fprintf(m.w, "order:        %t\n", order)

	if !up || !balance || !order {
		return fault.ErrInconsistentTree
	}
	return nil
}

// split on commas and white space, empty input is an empty list
func parseValues(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return ',' == r || ' ' == r || '\t' == r || '\n' == r
	})
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := parseValue(f)
		if nil != err {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func parseValue(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if nil != err {
		return 0, fault.ErrInvalidNumber
	}
	return v, nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	_, err = fmt.Fprintf(handle, "%s\n", b)
	return err
}
