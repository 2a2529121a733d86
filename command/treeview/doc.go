// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Interactive viewer for a balanced tree of integers
//
// Commands are read one per line from standard input and the tree is
// redrawn on standard output after each change.  Node and canvas
// sizes and colours are taken from a Lua configuration file which is
// watched and re-applied when it changes.
package main
