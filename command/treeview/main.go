// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/zahar-sh/Tree/background"
	"github.com/zahar-sh/Tree/fault"
	"github.com/zahar-sh/Tree/render"
	"github.com/zahar-sh/Tree/session"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--version] --config-file=FILE [[command|help] arguments...]", program)
	}

	// these commands don't require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %+v", masterConfiguration)

	// ------------------
	// start of real main
	// ------------------

	display, err := render.NewTerminal(os.Stdout, masterConfiguration.Cell())
	if nil != err {
		exitwithstatus.Message("%s: display setup failed with error: %s", program, err)
	}

	s, err := session.New(display, masterConfiguration.Settings(), logger.New("session"), masterConfiguration.Initial)
	if nil != err {
		log.Criticalf("session setup error: %s", err)
		exitwithstatus.Message("%s: session setup failed with error: %s", program, err)
	}

	watcherChannel := newWatcherChannel()
	watcher, err := newFileWatcher(configurationFile, logger.New(fileWatcherLoggerPrefix), watcherChannel)
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}

	lines := make(chan string)
	reload := make(chan session.Settings)

	// start background processes
	processes := background.Start(background.Processes{
		watcher,
		newConfigReader(configurationFile, logger.New(readerLoggerPrefix), watcherChannel, reload),
		newLineReader(os.Stdin, logger.New(inputLoggerPrefix), lines),
	}, nil)
	defer processes.Stop()

	// turn signals into context cancellation
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if len(options["verbose"]) > 0 {
		fmt.Printf("%s: version: %s  configuration: %q\n", program, version, configurationFile)
		fmt.Printf("type \"help\" for the list of commands\n")
	}

	if err := s.Run(ctx, lines, reload); nil != err {
		log.Infof("session ended: %s", err)
		if len(options["verbose"]) > 0 {
			fmt.Printf("\nsession ended: %s\n", err)
		}
	}
}
