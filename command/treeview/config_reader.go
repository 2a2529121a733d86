// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/zahar-sh/Tree/session"
)

const (
	readerLoggerPrefix = "config-reader"

	// editors often write a file in several steps
	defaultSettleDelay = 200 * time.Millisecond
)

// ConfigReader - re-read the configuration after a change event and
// pass the reloadable settings to the session
type ConfigReader struct {
	fileName    string
	log         *logger.L
	channel     WatcherChannel
	reload      chan<- session.Settings
	settleDelay time.Duration
}

func newConfigReader(fileName string, log *logger.L, channel WatcherChannel, reload chan<- session.Settings) *ConfigReader {
	return &ConfigReader{
		fileName:    fileName,
		log:         log,
		channel:     channel,
		reload:      reload,
		settleDelay: defaultSettleDelay,
	}
}

// Run - background process, one reload per change event
func (c *ConfigReader) Run(args interface{}, shutdown <-chan struct{}) {
loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-c.channel.change:
			c.log.Debugf("receive file change event, wait %s to settle", c.settleDelay)
			select {
			case <-shutdown:
				break loop
			case <-time.After(c.settleDelay):
			}

			options, err := getConfiguration(c.fileName)
			if nil != err {
				c.log.Errorf("failed to read configuration from: %q  error: %s", c.fileName, err)
				continue loop
			}
			c.log.Infof("reload: %+v", options.Settings())

			select {
			case <-shutdown:
				break loop
			case c.reload <- options.Settings():
			}

		case <-c.channel.remove:
			c.log.Warn("config file removed, keep current settings")
		}
	}
}
