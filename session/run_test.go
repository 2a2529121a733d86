// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zahar-sh/Tree/layout"
	"github.com/zahar-sh/Tree/session"
)

func TestRunUntilQuit(t *testing.T) {
	s, r := newSession(t, 1, 2, 3)

	input := make(chan string, 10)
	input <- "add 4"
	input <- "bogus"
	input <- "remove 1"
	input <- "quit"
	input <- "add 5"

	err := s.Run(context.Background(), input, nil)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3, 4}, s.Tree().Values())
	assert.Len(t, r.views, 3, "initial, add and remove")
	assert.Equal(t, []string{"error: unknown command"}, r.messages)
	assert.Len(t, input, 1, "lines after quit are not read")
}

func TestRunInputClosed(t *testing.T) {
	s, _ := newSession(t, 1)

	input := make(chan string, 1)
	input <- "add 2"
	close(input)

	err := s.Run(context.Background(), input, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, s.Tree().Values())
}

func TestRunCancelled(t *testing.T) {
	s, r := newSession(t, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx, nil, nil)
	assert.Equal(t, context.Canceled, err)
	assert.Len(t, r.views, 1)
}

func TestRunReload(t *testing.T) {
	s, r := newSession(t, 1, 2, 3)

	input := make(chan string)
	reload := make(chan session.Settings)
	result := make(chan error)
	go func() {
		result <- s.Run(context.Background(), input, reload)
	}()

	settings := defaultSettings
	settings.Geometry.Canvas = layout.Size{Width: 350, Height: 200}
	settings.Colours.Selected = "green"
	reload <- settings

	bad := defaultSettings
	bad.Geometry.Canvas.Width = 0
	reload <- bad

	close(reload)
	input <- "quit"
	require.NoError(t, <-result)

	assert.Equal(t, settings.Geometry, s.Geometry())
	p, _ := s.Position(2)
	assert.Equal(t, layout.Point{X: 150, Y: 0}, p)

	require.Len(t, r.views, 2, "initial and reload")
	assert.Equal(t, "green", r.last().Colours.Selected)
	assert.Equal(t, []string{"reload error: size must be positive"}, r.messages)
}
