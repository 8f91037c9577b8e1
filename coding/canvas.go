// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Canvas holds the modules of a QR or Micro QR symbol under construction.
// Modules are packed four to a byte (2 bits each) in row-major order.
// Coordinates may be negative: a negative x or y wraps around from the far
// edge, which lets the functional-pattern code address corners relative to
// whichever side is convenient, exactly as the symbol geometry is specified.
type Canvas struct {
	version Version
	width   int
	cells   []byte
}

// NewCanvas allocates a blank (all UnmaskedLight) canvas for v and draws
// every functional pattern: finder patterns with their light separators,
// timing patterns, alignment patterns, and reserved format/version-information
// areas.
func NewCanvas(v Version) *Canvas {
	w := v.Width()
	c := &Canvas{
		version: v,
		width:   w,
		cells:   make([]byte, (w*w+3)/4),
	}
	c.drawFunctionalPatterns()
	return c
}

// Clone returns an independent copy of c, used to try each candidate mask
// without disturbing the original data placement.
func (c *Canvas) Clone() *Canvas {
	cells := make([]byte, len(c.cells))
	copy(cells, c.cells)
	return &Canvas{version: c.version, width: c.width, cells: cells}
}

// Version returns the symbol version the canvas was built for.
func (c *Canvas) Version() Version { return c.version }

// Width returns the number of modules on a side.
func (c *Canvas) Width() int { return c.width }

func (c *Canvas) coordsToIndex(x, y int) int {
	if x < 0 {
		x += c.width
	}
	if y < 0 {
		y += c.width
	}
	return y*c.width + x
}

func (c *Canvas) get(x, y int) Module {
	i := c.coordsToIndex(x, y)
	b := c.cells[i/4]
	shift := uint(i%4) * 2
	return moduleFromBits(b >> shift)
}

func (c *Canvas) set(x, y int, m Module) {
	i := c.coordsToIndex(x, y)
	shift := uint(i%4) * 2
	mask := byte(0b11) << shift
	c.cells[i/4] = c.cells[i/4]&^mask | m.bits()<<shift
}

// Put writes a Masked module, locking it against masking. Functional
// patterns and format/version information are always Put.
func (c *Canvas) Put(x, y int, color Color) {
	if color == Dark {
		c.set(x, y, MaskedDark)
	} else {
		c.set(x, y, MaskedLight)
	}
}

// PutUnmasked writes an Unmasked (maskable) module. Data and error
// correction codewords are always PutUnmasked.
func (c *Canvas) PutUnmasked(x, y int, color Color) {
	if color == Dark {
		c.set(x, y, UnmaskedDark)
	} else {
		c.set(x, y, UnmaskedLight)
	}
}

// Get returns the module at (x, y).
func (c *Canvas) Get(x, y int) Module {
	return c.get(x, y)
}

func (c *Canvas) drawFunctionalPatterns() {
	c.drawFinderPatterns()
	c.drawAlignmentPatterns()
	c.drawTimingPatterns()
	c.drawReservedFormatInfoPatterns()
	if c.version.Family == Normal && c.version.Number >= 7 {
		c.drawReservedVersionInfoPatterns()
	}
}

// drawFinderPatternAt draws the concentric 7x7 dark/light/dark finder
// pattern centered on (x, y), plus the one-module light separator on the
// sides that face the inside of the symbol (the caller picks which corner
// of the symbol (x, y) refers to, using negative-coordinate wraparound for
// the far corners; a negative coordinate puts the separator on its
// lower side).
func (c *Canvas) drawFinderPatternAt(x, y int) {
	dxLeft, dxRight := -3, 4
	if x < 0 {
		dxLeft, dxRight = -4, 3
	}
	dyTop, dyBottom := -3, 4
	if y < 0 {
		dyTop, dyBottom = -4, 3
	}
	for i := dxLeft; i <= dxRight; i++ {
		for j := dyTop; j <= dyBottom; j++ {
			color := Light // separator
			if abs(i) <= 3 && abs(j) <= 3 {
				color = finderModuleColor(i, j)
			}
			c.Put(x+i, y+j, color)
		}
	}
}

// finderModuleColor reports the color of the finder-pattern cell at offset
// (i, j) from its center: a solid dark 3x3 core, surrounded by a one-module
// light ring, surrounded by a dark outer ring — i.e. dark everywhere except
// the ring at Chebyshev distance 2.
func finderModuleColor(i, j int) Color {
	d := abs(i)
	if abs(j) > d {
		d = abs(j)
	}
	if d == 2 {
		return Light
	}
	return Dark
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (c *Canvas) drawFinderPatterns() {
	c.drawFinderPatternAt(3, 3)
	if c.version.Family == Micro {
		return
	}
	c.drawFinderPatternAt(3, -4)
	c.drawFinderPatternAt(-4, 3)
}

func (c *Canvas) drawAlignmentPatternAt(x, y int) {
	// Alignment patterns never overlap a finder pattern; skip if the
	// center is already Masked (i.e. already drawn or inside a finder).
	if c.get(x, y) >= MaskedLight {
		return
	}
	for i := -2; i <= 2; i++ {
		for j := -2; j <= 2; j++ {
			d := abs(i)
			if abs(j) > d {
				d = abs(j)
			}
			color := Dark
			if d == 1 {
				color = Light
			}
			c.Put(x+i, y+j, color)
		}
	}
}

func (c *Canvas) drawAlignmentPatterns() {
	if c.version.Family == Micro || c.version.Number == 1 {
		return
	}
	if c.version.Number <= 6 {
		c.drawAlignmentPatternAt(-7, -7)
		return
	}
	positions := alignmentPatternPositions[c.version.Number-7]
	for _, px := range positions {
		for _, py := range positions {
			c.drawAlignmentPatternAt(px, py)
		}
	}
}

func (c *Canvas) drawLine(x0, y0, x1, y1 int) {
	if x0 == x1 {
		for y := y0; y <= y1; y++ {
			color := Dark
			if (y-y0)%2 != 0 {
				color = Light
			}
			c.Put(x0, y, color)
		}
		return
	}
	for x := x0; x <= x1; x++ {
		color := Dark
		if (x-x0)%2 != 0 {
			color = Light
		}
		c.Put(x, y0, color)
	}
}

func (c *Canvas) drawTimingPatterns() {
	if c.version.Family == Micro {
		c.drawLine(8, 0, c.width-1, 0)
		c.drawLine(0, 8, 0, c.width-1)
		return
	}
	c.drawLine(8, 6, c.width-9, 6)
	c.drawLine(6, 8, 6, c.width-9)
}

func (c *Canvas) drawNumber(coords []coord, bits uint32, nbits int) {
	for i, cd := range coords {
		shift := uint(nbits - 1 - i)
		color := Light
		if bits>>shift&1 != 0 {
			color = Dark
		}
		c.Put(cd.x, cd.y, color)
	}
}

func (c *Canvas) drawReservedFormatInfoPatterns() {
	if c.version.Family == Micro {
		c.drawNumber(formatInfoCoordsMicroQR[:], 0, 15)
		return
	}
	c.drawNumber(formatInfoCoordsQRMain[:], 0, 15)
	c.drawNumber(formatInfoCoordsQRSide[:], 0, 15)
	// The dark module, always present at (8, width-8) for Normal symbols.
	c.Put(8, c.width-8, Dark)
}

func (c *Canvas) drawReservedVersionInfoPatterns() {
	c.drawNumber(versionInfoCoordsBL[:], 0, 18)
	c.drawNumber(versionInfoCoordsTR[:], 0, 18)
}

// DrawFormatInfo writes the 15-bit format-information word for the given
// mask pattern (already mixed with the error-correction/symbol indicator by
// the caller) into its reserved positions.
func (c *Canvas) DrawFormatInfo(word uint16) {
	if c.version.Family == Micro {
		c.drawNumber(formatInfoCoordsMicroQR[:], uint32(word), 15)
		return
	}
	c.drawNumber(formatInfoCoordsQRMain[:], uint32(word), 15)
	c.drawNumber(formatInfoCoordsQRSide[:], uint32(word), 15)
	c.Put(8, c.width-8, Dark)
}

// DrawVersionInfo writes the 18-bit version-information word into its
// reserved positions. Only meaningful for Normal versions >= 7.
func (c *Canvas) DrawVersionInfo(word uint32) {
	c.drawNumber(versionInfoCoordsBL[:], word, 18)
	c.drawNumber(versionInfoCoordsTR[:], word, 18)
}

// IsFunctional reports whether (x, y) on a symbol of the given version
// belongs to a functional pattern (finder, separator, timing, alignment, or
// format information), as opposed to a data/EC module. The two
// version-information blocks of Normal versions 7 and up are not reported
// as functional. Coordinates are non-negative here; callers normalize
// wraparound beforehand.
func IsFunctional(v Version, x, y int) bool {
	width := v.Width()
	if v.Family == Micro {
		return x == 0 || y == 0 || (x < 9 && y < 9)
	}

	// Timing patterns.
	if x == 6 || y == 6 {
		return true
	}
	// Finder patterns plus their separators and format-info strip, a
	// 9x9 box at each of the three non-bottom-right corners.
	if x < 9 && y < 9 {
		return true
	}
	if x < 9 && y >= width-8 {
		return true
	}
	if x >= width-8 && y < 9 {
		return true
	}

	switch {
	case v.Number == 1:
		return false
	case v.Number <= 6:
		return chebyshev(x, y, width-7, width-7) <= 2
	default:
		positions := alignmentPatternPositions[v.Number-7]
		last := len(positions) - 1
		for i, px := range positions {
			for j, py := range positions {
				if (i == 0 && (j == 0 || j == last)) || (i == last && j == 0) {
					continue
				}
				if chebyshev(x, y, px, py) <= 2 {
					return true
				}
			}
		}
		return false
	}
}

func chebyshev(x, y, cx, cy int) int {
	dx := abs(x - cx)
	dy := abs(y - cy)
	if dx > dy {
		return dx
	}
	return dy
}
