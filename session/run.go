// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package session

import (
	"context"
)

// Run - process command lines and settings changes until quit
//
// the tree is only touched from this goroutine.  Command errors are
// reported to the display and do not stop the loop.  Returns nil on
// quit or when input is closed, the context error on cancellation.
func (s *Session) Run(ctx context.Context, input <-chan string, reload <-chan Settings) error {
	if err := s.Repaint(); nil != err {
		s.log.Errorf("repaint error: %s", err)
		s.display.Message("error: %s", err)
	}

loop:
	for {
		select {
		case <-ctx.Done():
			s.log.Info("cancelled")
			return ctx.Err()

		case line, ok := <-input:
			if !ok {
				s.log.Info("input closed")
				break loop
			}
			more, err := s.Execute(line)
			if nil != err {
				s.log.Warnf("command: %q  error: %s", line, err)
				s.display.Message("error: %s", err)
			}
			if !more {
				break loop
			}

		case settings, ok := <-reload:
			if !ok {
				reload = nil
				continue loop
			}
			if err := s.Apply(settings); nil != err {
				s.log.Errorf("reload error: %s", err)
				s.display.Message("reload error: %s", err)
			}
		}
	}
	return nil
}
