// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package render_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zahar-sh/Tree/avl"
	"github.com/zahar-sh/Tree/fault"
	"github.com/zahar-sh/Tree/layout"
	"github.com/zahar-sh/Tree/render"
	"github.com/zahar-sh/Tree/session"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

var (
	smallGeometry = layout.Geometry{
		Canvas: layout.Size{Width: 100, Height: 40},
		Node:   layout.Size{Width: 20, Height: 10},
	}
	smallCell = layout.Size{Width: 10, Height: 10}
)

func intTree(values ...int) *avl.Tree[int] {
	tree := avl.NewOrdered[int]()
	for _, v := range values {
		tree.Add(v)
	}
	return tree
}

func plainStyle(t *testing.T) render.Style {
	style, err := render.NewStyle("yellow", "orange", "chocolate")
	require.NoError(t, err)
	return style
}

func intPointer(i int) *int {
	return &i
}

func TestNewStyle(t *testing.T) {
	_, err := render.NewStyle("Yellow", " orange ", "CHOCOLATE")
	assert.NoError(t, err)

	items := [][3]string{
		{"mauve", "orange", "red"},
		{"red", "", "red"},
		{"red", "red", "#ff0000"},
	}
	for i, item := range items {
		_, err := render.NewStyle(item[0], item[1], item[2])
		assert.Equal(t, fault.ErrInvalidColour, err, "%d", i)
	}
}

func TestHighlightOf(t *testing.T) {
	tree := intTree(1, 2, 3, 4, 5, 6, 7)

	items := []struct {
		value    int
		selected *int
		expected render.Highlight
	}{
		{4, nil, render.Normal},
		{4, intPointer(4), render.Selected},
		{2, intPointer(4), render.Linked},
		{6, intPointer(4), render.Linked},
		{1, intPointer(4), render.Normal},
		{4, intPointer(2), render.Linked},
		{1, intPointer(2), render.Linked},
		{5, intPointer(2), render.Normal},
	}
	for i, item := range items {
		actual := render.HighlightOf(tree.Find(item.value), item.selected)
		assert.Equal(t, item.expected, actual, "%d: value: %d", i, item.value)
	}
	assert.Equal(t, render.Normal, render.HighlightOf[int](nil, intPointer(1)))
}

func TestLevels(t *testing.T) {
	var b bytes.Buffer
	err := render.Levels(&b, intTree(1, 2, 3, 4, 5).Root(), nil, plainStyle(t))
	require.NoError(t, err)
	assert.Equal(t, "0: 2\n1: 1 4\n2: 3 5\n", b.String())

	b.Reset()
	require.NoError(t, render.Levels[int](&b, nil, nil, plainStyle(t)))
	assert.Empty(t, b.String())
}

func TestList(t *testing.T) {
	tree := intTree(3, 1, 2)

	var b bytes.Buffer
	require.NoError(t, render.List(&b, tree, nil, plainStyle(t), false))
	require.NoError(t, render.List(&b, tree, nil, plainStyle(t), true))
	assert.Equal(t, "[1, 2, 3]\n[3, 2, 1]\n", b.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestWriteError(t *testing.T) {
	err := render.Levels(failingWriter{}, intTree(1, 2, 3).Root(), nil, plainStyle(t))
	assert.EqualError(t, err, "write failed")
}

func TestTable(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, render.Table(&b, intTree(1, 2, 3)))

	s := strings.ToLower(b.String())
	assert.Contains(t, s, "value")
	assert.Contains(t, s, "balance")
	assert.Contains(t, s, "total: 3")
	assert.Equal(t, 3, strings.Count(s, "+0"), "one balance per row")
}

func TestCanvas(t *testing.T) {
	tree := intTree(1, 2, 3)
	placements := layout.Format(tree.Levels(), smallGeometry)

	var b bytes.Buffer
	require.NoError(t, render.Canvas(&b, placements, smallGeometry, smallCell, nil))
	assert.Equal(t, "    [2]\n  [1][3]\n\n\n\n", b.String())

	b.Reset()
	require.NoError(t, render.Canvas(&b, placements, smallGeometry, smallCell, intPointer(1)))
	assert.Equal(t, "    (2)\n  <1>[3]\n\n\n\n", b.String())

	err := render.Canvas(&b, placements, smallGeometry, layout.Size{}, nil)
	assert.Equal(t, fault.ErrInvalidSize, err)
}

func TestCanvasLabelPastEdge(t *testing.T) {
	tree := intTree(12345)
	placements := []layout.Placement[int]{{Node: tree.Root(), Point: layout.Point{X: 80, Y: 30}}}

	var b bytes.Buffer
	require.NoError(t, render.Canvas(&b, placements, smallGeometry, smallCell, nil))
	assert.Equal(t, "\n\n\n        [12345]\n\n", b.String())
}

func TestTerminal(t *testing.T) {
	var b bytes.Buffer
	terminal, err := render.NewTerminal(&b, smallCell)
	require.NoError(t, err)

	tree := intTree(1, 2, 3)
	view := session.View{
		Tree:       tree,
		Selected:   intPointer(3),
		Geometry:   smallGeometry,
		Placements: layout.Format(tree.Levels(), smallGeometry),
		Colours:    session.Colours{Node: "chocolate", Selected: "yellow", Links: "orange"},
	}

	items := []struct {
		mode     session.Mode
		expected string
	}{
		{session.ModeLevels, "0: 2\n1: 1 3\n"},
		{session.ModeList, "[1, 2, 3]\n"},
		{session.ModeReverse, "[3, 2, 1]\n"},
		{session.ModeCanvas, "    (2)\n  [1]<3>\n\n\n\n"},
	}
	for _, item := range items {
		b.Reset()
		view.Mode = item.mode
		require.NoError(t, terminal.Repaint(view), "mode: %s", item.mode)
		assert.Equal(t, item.expected, b.String(), "mode: %s", item.mode)
	}

	b.Reset()
	view.Mode = session.ModePrint
	require.NoError(t, terminal.Repaint(view))
	assert.Contains(t, b.String(), "depth: 2")

	b.Reset()
	view.Mode = session.ModeTable
	require.NoError(t, terminal.Repaint(view))
	assert.Contains(t, strings.ToLower(b.String()), "total: 3")

	view.Colours.Links = "plaid"
	assert.Equal(t, fault.ErrInvalidColour, terminal.Repaint(view))

	b.Reset()
	view.Colours.Links = "red"
	view.Tree = avl.NewOrdered[int]()
	require.NoError(t, terminal.Repaint(view))
	assert.Equal(t, "tree is empty\n", b.String())

	b.Reset()
	terminal.Message("%d found", 7)
	assert.Equal(t, "7 found\n", b.String())
}

func TestNewTerminalInvalidCell(t *testing.T) {
	_, err := render.NewTerminal(&bytes.Buffer{}, layout.Size{Width: 1})
	assert.Equal(t, fault.ErrInvalidSize, err)
}
