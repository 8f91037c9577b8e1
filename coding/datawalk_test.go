// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "testing"

func TestDataModuleIterVersion1(t *testing.T) {
	want := []struct{ x, y int }{
		{20, 20}, {19, 20}, {20, 19}, {19, 19}, {20, 18}, {19, 18},
		{20, 17}, {19, 17}, {20, 16}, {19, 16}, {20, 15}, {19, 15},
	}

	it := NewDataModuleIter(NormalVersion(1).Width(), 6)
	for i, w := range want {
		x, y, ok := it.Next()
		if !ok {
			t.Fatalf("step %d: iterator ended early", i)
		}
		if x != w.x || y != w.y {
			t.Fatalf("step %d: got (%d,%d), want (%d,%d)", i, x, y, w.x, w.y)
		}
	}
}

func TestDataModuleIterExhausts(t *testing.T) {
	width := NormalVersion(1).Width()
	it := NewDataModuleIter(width, 6)
	n := 0
	for {
		_, _, ok := it.Next()
		if !ok {
			break
		}
		n++
		if n > width*width {
			t.Fatalf("iterator did not terminate")
		}
	}
	if n == 0 {
		t.Fatalf("iterator produced no coordinates")
	}
}

func TestDataModuleIterMicro(t *testing.T) {
	width := MicroVersion(1).Width()
	it := NewDataModuleIter(width, 0)
	seen := map[[2]int]bool{}
	for {
		x, y, ok := it.Next()
		if !ok {
			break
		}
		if x == 0 {
			t.Fatalf("walk visited timing column x=0 at (%d,%d)", x, y)
		}
		seen[[2]int{x, y}] = true
	}
	if len(seen) == 0 {
		t.Fatalf("iterator produced no coordinates")
	}
}
