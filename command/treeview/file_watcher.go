// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/zahar-sh/Tree/fault"
)

const (
	fileWatcherLoggerPrefix = "file-watcher"
)

// WatcherChannel - events for the watched file; a full channel drops
// further events since one pending signal is enough to reload
type WatcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

func newWatcherChannel() WatcherChannel {
	return WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

// FileWatcher - follow changes of the configuration file
type FileWatcher struct {
	log      *logger.L
	channel  WatcherChannel
	watcher  *fsnotify.Watcher
	filePath string
}

func newFileWatcher(targetFile string, log *logger.L, channel WatcherChannel) (*FileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrNotFoundConfigFile
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &FileWatcher{
		log:      log,
		channel:  channel,
		watcher:  watcher,
		filePath: filePath,
	}, nil
}

// Run - background process forwarding file events until shutdown
//
// the directory is watched rather than the file so an editor that
// replaces the file by renaming still produces events
func (w *FileWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

	if err := w.watcher.Add(filepath.Dir(w.filePath)); nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return
	}

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watcher error: %s", err)

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(event.Name) != w.filePath {
				w.log.Debugf("file %s not match, discard event", event.Name)
				continue loop
			}
			w.log.Infof("file event: %v", event)

			switch {
			case watcherEventFileRemove(event):
				w.log.Warnf("file %s removed", w.filePath)
				w.sendEvent(w.channel.remove, "remove")
			case watcherEventFileChange(event):
				w.log.Info("sending config change event…")
				w.sendEvent(w.channel.change, "change")
			}
		}
	}
	w.log.Info("stopped")
}

func (w *FileWatcher) isChannelFull(ch chan<- struct{}) bool {
	return len(ch) == cap(ch)
}

func (w *FileWatcher) sendEvent(ch chan<- struct{}, name string) {
	if !w.isChannelFull(ch) {
		ch <- struct{}{}
	} else {
		w.log.Infof("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
