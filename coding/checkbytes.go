// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/klotza/qrenc/internal/gf256"

// field is the GF(256) field QR and Micro QR error correction is defined
// over: the generator polynomial x^8+x^4+x^3+x^2+1.
var field = gf256.NewField(0x11d, 2)

// AddCheckBytes pads b out to the data capacity of (v, l), splits the data
// into the blocks ISO/IEC 18004 §6.5.1 specifies, computes each block's
// Reed-Solomon error-correction codewords, and replaces b's contents with
// the interleaved codeword stream (all data blocks column by column,
// followed by all check blocks column by column) that the symbol actually
// encodes. The resulting b.Bytes() is exactly DataBytes(v, l) interleaved
// data bytes followed by the interleaved check bytes; callers that need
// the two streams separately (DrawData expects them split) slice
// b.Bytes() at that boundary.
func (b *Bits) AddCheckBytes(v Version, l Level) {
	layout := Layout(v, int(l))
	nd := layout.dataBytes()
	if b.nbit < nd*8 {
		b.Pad(nd * 8)
	}
	if b.nbit != nd*8 {
		panic("coding: too much data")
	}

	data := b.Bytes()
	blocks := make([][]byte, 0, layout.blockCount())
	checks := make([][]byte, 0, layout.blockCount())
	off := 0
	for i := 0; i < layout.block1Count; i++ {
		blocks = append(blocks, data[off:off+layout.block1Size])
		off += layout.block1Size
	}
	for i := 0; i < layout.block2Count; i++ {
		blocks = append(blocks, data[off:off+layout.block2Size])
		off += layout.block2Size
	}

	rs := gf256.NewRSEncoder(field, layout.ecBytesPerBlock)
	for _, blk := range blocks {
		chk := make([]byte, layout.ecBytesPerBlock)
		rs.ECC(blk, chk)
		checks = append(checks, chk)
	}

	out := make([]byte, 0, layout.dataBytes()+layout.ecBytes())
	maxLen := layout.block1Size
	if layout.block2Size > maxLen {
		maxLen = layout.block2Size
	}
	for i := 0; i < maxLen; i++ {
		for _, blk := range blocks {
			if i < len(blk) {
				out = append(out, blk[i])
			}
		}
	}
	for i := 0; i < layout.ecBytesPerBlock; i++ {
		for _, chk := range checks {
			out = append(out, chk[i])
		}
	}

	b.Reset()
	b.Append(out)
}
