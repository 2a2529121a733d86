// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command line tool to show a balanced tree
//
// The tree is built from the --values list, then the --remove list is
// deleted from it and the requested rendering is written to standard
// output.
package main
