// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zahar-sh/Tree/fault"
	"github.com/zahar-sh/Tree/util"
)

func TestEnsureAbsolute(t *testing.T) {
	items := []struct {
		directory string
		file      string
		expected  string
	}{
		{"/tmp/data", "treeview.log", "/tmp/data/treeview.log"},
		{"/tmp/data", "log/../treeview.log", "/tmp/data/treeview.log"},
		{"/tmp/data", "/var/log/treeview.log", "/var/log/treeview.log"},
		{"/tmp/data/", "./x", "/tmp/data/x"},
	}

	for i, item := range items {
		actual := util.EnsureAbsolute(item.directory, item.file)
		if actual != item.expected {
			t.Errorf("%d: actual: %q  expected: %q", i, actual, item.expected)
		}
	}
}

func TestEnsureFileExists(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "present")

	if util.EnsureFileExists(name) {
		t.Fatalf("file: %q should not exist", name)
	}
	if err := os.WriteFile(name, []byte("x"), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	if !util.EnsureFileExists(name) {
		t.Fatalf("file: %q should exist", name)
	}
}

func TestEnsureDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := util.EnsureDirectory(dir); nil != err {
		t.Fatalf("directory error: %s", err)
	}

	name := filepath.Join(dir, "plain")
	if err := os.WriteFile(name, nil, 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	if err := util.EnsureDirectory(name); fault.ErrNotADirectory != err {
		t.Errorf("file: actual error: %v  expected: %v", err, fault.ErrNotADirectory)
	}
	if err := util.EnsureDirectory(filepath.Join(dir, "absent")); !os.IsNotExist(err) {
		t.Errorf("absent: actual error: %v", err)
	}
}

func TestEnsurePlainFileName(t *testing.T) {
	if err := util.EnsurePlainFileName("treeview.log"); nil != err {
		t.Fatalf("error: %s", err)
	}

	for _, name := range []string{"log/treeview.log", "/tmp/treeview.log", "../x"} {
		if err := util.EnsurePlainFileName(name); fault.ErrNotPlainFileName != err {
			t.Errorf("name: %q  actual error: %v", name, err)
		}
	}
}
