// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// DataModuleIter walks the non-functional (data and error-correction)
// modules of a symbol in the zig-zag order defined by ISO/IEC 18004 §6.7.3:
// starting at the bottom-right corner, moving up in two-module-wide
// columns, reversing direction at the top and bottom edges, and skipping
// over the vertical timing-pattern column entirely.
type DataModuleIter struct {
	x, y                int
	width               int
	timingPatternColumn int
	done                bool
}

// NewDataModuleIter starts a walk over a symbol of the given width. The
// vertical timing pattern sits at column 6 for Normal symbols and column 0
// for Micro symbols.
func NewDataModuleIter(width int, timingPatternColumn int) *DataModuleIter {
	return &DataModuleIter{
		x:                   width - 1,
		y:                   width - 1,
		width:               width,
		timingPatternColumn: timingPatternColumn,
	}
}

// Next returns the next (x, y) coordinate in the walk, and false once the
// walk is exhausted.
func (it *DataModuleIter) Next() (x, y int, ok bool) {
	if it.done {
		return 0, 0, false
	}

	refCol := it.x
	if it.x <= it.timingPatternColumn {
		refCol = it.x + 1
	}
	if refCol <= 0 {
		it.done = true
		return 0, 0, false
	}

	x, y = it.x, it.y

	columnType := (it.width - refCol) % 4
	switch {
	case columnType == 2 && it.y > 0:
		it.y--
		it.x++
	case columnType == 0 && it.y < it.width-1:
		it.y++
		it.x++
	case (columnType == 0 || columnType == 2) && it.x == it.timingPatternColumn+1:
		it.x -= 2
	default:
		it.x--
	}

	return x, y, true
}
