// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/zahar-sh/Tree/configuration"
	"github.com/zahar-sh/Tree/layout"
	"github.com/zahar-sh/Tree/render"
	"github.com/zahar-sh/Tree/session"
	"github.com/zahar-sh/Tree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file

	defaultCanvasWidth  = 800
	defaultCanvasHeight = 600
	defaultNodeWidth    = 50
	defaultNodeHeight   = 50
	defaultCellWidth    = 10
	defaultCellHeight   = 25

	defaultNodeColour     = "chocolate"
	defaultSelectedColour = "yellow"
	defaultLinksColour    = "orange"

	defaultLogDirectory = "log"
	defaultLogFile      = "treeview.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultInitialCount = 10
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Initial       []int                `gluamapper:"initial" json:"initial"`
	CanvasWidth   int                  `gluamapper:"canvas_width" json:"canvas_width"`
	CanvasHeight  int                  `gluamapper:"canvas_height" json:"canvas_height"`
	NodeWidth     int                  `gluamapper:"node_width" json:"node_width"`
	NodeHeight    int                  `gluamapper:"node_height" json:"node_height"`
	CellWidth     int                  `gluamapper:"cell_width" json:"cell_width"`
	CellHeight    int                  `gluamapper:"cell_height" json:"cell_height"`
	Colours       session.Colours      `gluamapper:"colours" json:"colours"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// a configuration holding every default
//
// the level map is copied as parsing merges into it
func defaultConfiguration() *Configuration {
	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Initial:       nil, // filled after parsing so a shorter list is not merged into it

		CanvasWidth:  defaultCanvasWidth,
		CanvasHeight: defaultCanvasHeight,
		NodeWidth:    defaultNodeWidth,
		NodeHeight:   defaultNodeHeight,
		CellWidth:    defaultCellWidth,
		CellHeight:   defaultCellHeight,

		Colours: session.Colours{
			Node:     defaultNodeColour,
			Selected: defaultSelectedColour,
			Links:    defaultLinksColour,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// values 0 … defaultInitialCount-1
func defaultInitial() []int {
	initial := make([]int, defaultInitialCount)
	for i := range initial {
		initial[i] = i
	}
	return initial
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration()

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if nil == options.Initial {
		options.Initial = defaultInitial()
	}

	if err := options.Settings().Geometry.Validate(); nil != err {
		return nil, err
	}
	if err := options.Cell().Validate(); nil != err {
		return nil, err
	}
	if _, err := render.NewStyle(options.Colours.Selected, options.Colours.Links, options.Colours.Node); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "." == options.DataDirectory {
		options.DataDirectory = dataDirectory
	}
	options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if err := util.EnsureDirectory(options.DataDirectory); nil != err {
		return nil, err
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// the log file must be a simple name within the log directory
	if err := util.EnsurePlainFileName(options.Logging.File); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// Settings - the parts a running session can reload
func (c *Configuration) Settings() session.Settings {
	return session.Settings{
		Geometry: layout.Geometry{
			Canvas: layout.Size{Width: c.CanvasWidth, Height: c.CanvasHeight},
			Node:   layout.Size{Width: c.NodeWidth, Height: c.NodeHeight},
		},
		Colours: c.Colours,
	}
}

// Cell - canvas units covered by one character
func (c *Configuration) Cell() layout.Size {
	return layout.Size{Width: c.CellWidth, Height: c.CellHeight}
}
