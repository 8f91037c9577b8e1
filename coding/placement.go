// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// isHalfCodewordAtEnd reports whether the final data codeword of (v, l) is
// only four bits wide. This happens for exactly two Micro combinations:
// M1/L and M3/M, where the data-capacity table yields an odd number of
// nibbles in the last codeword. The error-correction codewords that follow
// are unaffected: they are always drawn a full 8 bits each.
func isHalfCodewordAtEnd(v Version, l Level) bool {
	if v.Family != Micro {
		return false
	}
	return (v.Number == 1 && l == L) || (v.Number == 3 && l == M)
}

func timingPatternColumn(v Version) int {
	if v.Family == Micro {
		return 0
	}
	return 6
}

// drawCodewords fills successive non-functional modules from it, MSB-first,
// with the bits of codewords. If halfLast holds, the final byte of
// codewords contributes only its top 4 bits.
func (c *Canvas) drawCodewords(it *DataModuleIter, codewords []byte, halfLast bool) {
	totalBits := len(codewords) * 8
	if halfLast {
		totalBits -= 4
	}
	bitIndex := 0
	for bitIndex < totalBits {
		x, y, ok := it.Next()
		if !ok {
			break
		}
		if c.get(x, y) >= MaskedLight {
			continue
		}
		byteIndex := bitIndex / 8
		shift := uint(7 - bitIndex%8)
		color := Light
		if codewords[byteIndex]>>shift&1 != 0 {
			color = Dark
		}
		c.PutUnmasked(x, y, color)
		bitIndex++
	}
}

// DrawData walks every non-functional module of the canvas in zig-zag order
// and fills it with the data codewords followed by the error-correction
// codewords, on the same continuous walk. For M1/L and M3/M symbols, the
// final data codeword contributes only its top 4 bits; the error
// correction codewords that follow still draw a full 8 bits each,
// matching the reference implementation's two-call structure (one call
// per codeword stream, sharing one iterator).
func (c *Canvas) DrawData(data, ec []byte, l Level) {
	it := NewDataModuleIter(c.width, timingPatternColumn(c.version))
	c.drawCodewords(it, data, isHalfCodewordAtEnd(c.version, l))
	c.drawCodewords(it, ec, false)
}
