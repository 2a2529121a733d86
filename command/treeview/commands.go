// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/zahar-sh/Tree/templates"
)

const (
	treeviewConfigurationFilename = "treeview.conf"
)

// setup command handler
//
// commands that run before any configuration is read; returns false
// if the program should continue to the interactive session
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "generate-config", "gc":
		fileName := getFilenameWithDirectory(arguments, treeviewConfigurationFilename)
		if err := generateConfiguration(fileName); nil != err {
			fmt.Printf("cannot generate configuration: %q  error: %s\n", fileName, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated configuration: %q\n", fileName)

	case "start", "run":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %v\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] [--version] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  generate-config [DIR]      (gc)     - create a configuration file: %q\n", "DIR/"+treeviewConfigurationFilename)
		fmt.Printf("                                        holding every default value\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}
	return true
}

// create a new configuration file, never overwrite an existing one
func generateConfiguration(fileName string) error {
	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_EXCL|os.O_CREATE, 0600)
	if nil != err {
		return err
	}
	defer f.Close()

	return writeConfiguration(f, defaultConfiguration())
}

// render the configuration template
func writeConfiguration(w io.Writer, options *Configuration) error {
	if nil == options.Initial {
		options.Initial = defaultInitial()
	}
	t, err := template.New("configuration").Parse(templates.ConfigurationTemplate)
	if nil != err {
		return err
	}
	return t.Execute(w, options)
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
