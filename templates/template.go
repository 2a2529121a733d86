// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package templates

const (
	/**** Configuration template ****/
	ConfigurationTemplate = `-- treeview.conf  -*- mode: lua -*-

local M = {}

-- relative paths are below this directory
-- "." is the directory holding this file
M.data_directory = "{{.DataDirectory}}"

-- values inserted at start up
M.initial = { {{- range $i, $v := .Initial}}{{if $i}}, {{end}}{{$v}}{{end -}} }

-- geometry in canvas units
M.canvas_width = {{.CanvasWidth}}
M.canvas_height = {{.CanvasHeight}}
M.node_width = {{.NodeWidth}}
M.node_height = {{.NodeHeight}}

-- canvas units covered by one character
M.cell_width = {{.CellWidth}}
M.cell_height = {{.CellHeight}}

-- colour names
M.colours = {
    node = "{{.Colours.Node}}",
    selected = "{{.Colours.Selected}}",
    links = "{{.Colours.Links}}",
}

M.logging = {
    directory = "{{.Logging.Directory}}",
    file = "{{.Logging.File}}",
    size = {{.Logging.Size}},
    count = {{.Logging.Count}},
    console = false,
    levels = {
        DEFAULT = "info",
        session = "info",
    },
}

return M
`
)
