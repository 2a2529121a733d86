// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/zahar-sh/Tree/avl"
)

type metadata struct {
	tree     *avl.Tree[int]
	selected *int
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "tree-cli"
	app.Usage = "build a balanced tree from a list of values and show it"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "values, a",
			Value: "0,1,2,3,4,5,6,7,8,9",
			Usage: " values to insert in order `LIST` (comma or space separated)",
		},
		cli.StringFlag{
			Name:  "remove, r",
			Value: "",
			Usage: " values to remove after inserting `LIST`",
		},
		cli.StringFlag{
			Name:  "select, s",
			Value: "",
			Usage: " highlight `VALUE` and its links",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "levels",
			Usage:  "values grouped by depth",
			Action: runLevels,
		},
		{
			Name:   "print",
			Usage:  "sideways tree with balance factors",
			Action: runPrint,
		},
		{
			Name:  "list",
			Usage: "values in order",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "reverse, r",
					Usage: " descending order",
				},
				cli.BoolFlag{
					Name:  "json, j",
					Usage: " output a JSON array",
				},
			},
			Action: runList,
		},
		{
			Name:   "table",
			Usage:  "one row per node",
			Action: runTable,
		},
		{
			Name:  "canvas",
			Usage: "lay the tree out on a character canvas",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "canvas-width",
					Value: 800,
					Usage: " canvas `WIDTH`",
				},
				cli.IntFlag{
					Name:  "canvas-height",
					Value: 600,
					Usage: " canvas `HEIGHT`",
				},
				cli.IntFlag{
					Name:  "node-width",
					Value: 50,
					Usage: " node `WIDTH`",
				},
				cli.IntFlag{
					Name:  "node-height",
					Value: 50,
					Usage: " node `HEIGHT`",
				},
				cli.IntFlag{
					Name:  "cell-width",
					Value: 10,
					Usage: " canvas units per character `WIDTH`",
				},
				cli.IntFlag{
					Name:  "cell-height",
					Value: 25,
					Usage: " canvas units per line `HEIGHT`",
				},
			},
			Action: runCanvas,
		},
		{
			Name:   "check",
			Usage:  "verify parent links, balance factors and ordering",
			Action: runCheck,
		},
		{
			Name:  "version",
			Usage: "display tree-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// build the tree
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress building the tree for certain commands
		command := c.Args().Get(0)
		if "version" == command || "" == command || "help" == command {
			return nil
		}

		values, err := parseValues(c.GlobalString("values"))
		if nil != err {
			return err
		}
		removals, err := parseValues(c.GlobalString("remove"))
		if nil != err {
			return err
		}

		tree := avl.NewOrdered[int]()
		for _, v := range values {
			if !tree.Add(v) && verbose {
				fmt.Fprintf(e, "duplicate: %d\n", v)
			}
		}
		for _, v := range removals {
			if !tree.Remove(v) && verbose {
				fmt.Fprintf(e, "not present: %d\n", v)
			}
		}

		var selected *int
		if s := c.GlobalString("select"); "" != s {
			v, err := parseValue(s)
			if nil != err {
				return err
			}
			selected = &v
		}

		if verbose {
			fmt.Fprintf(e, "tree: %s\n", tree)
		}

		c.App.Metadata["tree"] = &metadata{
			tree:     tree,
			selected: selected,
			verbose:  verbose,
			e:        e,
			w:        w,
		}
		return nil
	}

	return app
}
