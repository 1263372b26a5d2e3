// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critfmt

import "testing"

func TestGroupKey(t *testing.T) {
	check := func(name string, size uint64, want string) {
		t.Helper()
		r := &Result{Name: name, Variant: "v", Bytes: size}
		if got := r.GroupKey(); got != want {
			t.Errorf("GroupKey(%s, %d) = %q, want %q", name, size, got, want)
		}
	}

	check("copy", 1024, "copy/1024")
	check("compress", 725, "compress/725")
	check("decompress", 9991663, "decompress/9991663")
}

func TestResultPosZero(t *testing.T) {
	var r Result
	file, line := r.Pos()
	if file != "" || line != 0 {
		t.Errorf("got position %q:%d, want \"\":0", file, line)
	}
}
