// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zahar-sh/Tree/configuration"
	"github.com/zahar-sh/Tree/fault"
)

type colours struct {
	Node     string `gluamapper:"node"`
	Selected string `gluamapper:"selected"`
	Links    string `gluamapper:"links"`
}

type testConfiguration struct {
	Name    string  `gluamapper:"name"`
	Count   int     `gluamapper:"count"`
	Values  []int   `gluamapper:"values"`
	Colours colours `gluamapper:"colours"`
	File    string  `gluamapper:"file"`
}

func TestParseConfigurationFile(t *testing.T) {
	const fileName = "testdata/test.conf"

	config := testConfiguration{
		Colours: colours{
			Links: "orange",
		},
	}
	err := configuration.ParseConfigurationFile(fileName, &config)
	require.NoError(t, err)

	assert.Equal(t, "treeview", config.Name)
	assert.Equal(t, 3, config.Count)
	assert.Equal(t, []int{5, 3, 8}, config.Values)
	assert.Equal(t, "chocolate", config.Colours.Node)
	assert.Equal(t, "yellow", config.Colours.Selected)
	assert.Equal(t, "orange", config.Colours.Links, "default kept")
	assert.Equal(t, fileName, config.File)
}

func TestParseConfigurationFileNotStructPointer(t *testing.T) {
	config := testConfiguration{}

	err := configuration.ParseConfigurationFile("testdata/test.conf", config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err)

	n := 0
	err = configuration.ParseConfigurationFile("testdata/test.conf", &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err)

	err = configuration.ParseConfigurationFile("testdata/test.conf", (*testConfiguration)(nil))
	assert.Equal(t, fault.ErrInvalidStructPointer, err)
}

func TestParseConfigurationFileNotTable(t *testing.T) {
	config := testConfiguration{}

	err := configuration.ParseConfigurationFile("testdata/not-table.conf", &config)
	assert.Equal(t, fault.ErrUnexpectedConfiguration, err)
}

func TestParseConfigurationFileErrors(t *testing.T) {
	config := testConfiguration{}

	assert.Error(t, configuration.ParseConfigurationFile("testdata/broken.conf", &config))
	assert.Error(t, configuration.ParseConfigurationFile("testdata/no-such-file.conf", &config))
}
