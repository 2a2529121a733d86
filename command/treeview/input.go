// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"

	"github.com/bitmark-inc/logger"
)

const (
	inputLoggerPrefix = "input"
)

// LineReader - background process sending each input line to the
// session, lines is closed at end of input or on shutdown
type LineReader struct {
	in    io.Reader
	log   *logger.L
	lines chan<- string
}

func newLineReader(in io.Reader, log *logger.L, lines chan<- string) *LineReader {
	return &LineReader{
		in:    in,
		log:   log,
		lines: lines,
	}
}

// Run - the blocking read happens in a separate goroutine so shutdown
// is not delayed by a terminal waiting for input
func (r *LineReader) Run(args interface{}, shutdown <-chan struct{}) {
	defer close(r.lines)

	done := make(chan struct{})
	defer close(done)

	scanned := make(chan string)
	go func() {
		defer close(scanned)
		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			select {
			case scanned <- scanner.Text():
			case <-done:
				return
			}
		}
		if err := scanner.Err(); nil != err {
			r.log.Errorf("read error: %s", err)
		}
	}()

	for {
		select {
		case <-shutdown:
			return
		case line, ok := <-scanned:
			if !ok {
				r.log.Info("end of input")
				return
			}
			select {
			case r.lines <- line:
			case <-shutdown:
				return
			}
		}
	}
}
