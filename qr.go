// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qr encodes arbitrary byte payloads into QR Code and Micro QR
// Code symbols, following ISO/IEC 18004. It picks a version and
// error-correction level (or accepts a caller-chosen one), segments and
// error-correction-codes the payload, lays the result out on a canvas, and
// returns the finished symbol as a grid of modules.
package qr

import (
	"errors"
	"fmt"

	"github.com/klotza/qrenc/coding"
)

// Level is the error-correction level: L, M, Q, or H, from least to most
// tolerant of damage to the printed symbol.
type Level = coding.Level

const (
	L = coding.L
	M = coding.M
	Q = coding.Q
	H = coding.H
)

// ErrTooLarge is returned when a payload cannot fit any candidate
// version/level combination (for Encode/EncodeMicro) or the specific
// version/level requested (for EncodeVersion).
var ErrTooLarge = errors.New("qr: data too large for symbol")

// Code is a finished QR or Micro QR symbol: a square grid of dark/light
// modules, ready for a caller to rasterize or otherwise consume. Code does
// not provide an Image method; rendering is left to a separate package.
type Code struct {
	version coding.Version
	level   Level
	pattern coding.MaskPattern
	canvas  *coding.Canvas
}

// Size returns the number of modules on a side.
func (c *Code) Size() int { return c.canvas.Width() }

// Version reports the symbol's family and version number.
func (c *Code) Version() coding.Version { return c.version }

// Level reports the error-correction level the symbol was encoded at.
func (c *Code) Level() Level { return c.level }

// Black reports whether the module at (x, y) renders dark. x and y must
// satisfy 0 <= x,y < Size(); out-of-range coordinates panic.
func (c *Code) Black(x, y int) bool {
	if x < 0 || y < 0 || x >= c.Size() || y >= c.Size() {
		panic("qr: coordinate out of range")
	}
	return c.canvas.Get(x, y).Color() == coding.Dark
}

// Pixel is an alias for Black, for callers that think in terms of pixels
// rather than modules.
func (c *Code) Pixel(x, y int) bool {
	return c.Black(x, y)
}

// Encode chooses the smallest Normal QR version at level that can hold
// data as a single Byte segment, then encodes it. If level cannot
// accommodate data at any version, Encode reports ErrTooLarge.
func Encode(data []byte, level Level) (*Code, error) {
	seg := coding.Bytes(data)
	for n := 1; n <= 40; n++ {
		v := coding.NormalVersion(n)
		if fits(seg, v, level) {
			return EncodeVersion(data, v, level)
		}
	}
	return nil, ErrTooLarge
}

// EncodeMicro chooses the smallest Micro QR version/level combination that
// can hold data as a single Byte segment, then encodes it. Combinations are
// tried in ISO/IEC 18004 symbol-number order (M1, M2-L, M2-M, M3-L, ...), so
// within a version the lowest level that fits is taken.
func EncodeMicro(data []byte) (*Code, error) {
	seg := coding.Bytes(data)
	order := []struct {
		n int
		l Level
	}{
		{1, L},
		{2, L}, {2, M},
		{3, L}, {3, M},
		{4, L}, {4, M}, {4, Q},
	}
	for _, o := range order {
		v := coding.MicroVersion(o.n)
		if fits(seg, v, o.l) {
			return EncodeVersion(data, v, o.l)
		}
	}
	return nil, ErrTooLarge
}

func fits(seg coding.Encoding, v coding.Version, level Level) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	if seg.Check() != nil {
		return false
	}
	return seg.Bits(v) <= 8*coding.DataBytes(v, level)
}

// EncodeVersion encodes data as a single Byte segment at the given version
// and level, bypassing automatic version/level selection. It reports
// ErrTooLarge if data overflows the chosen version's capacity.
func EncodeVersion(data []byte, v coding.Version, level Level) (*Code, error) {
	return EncodeSegments([]coding.Encoding{coding.Bytes(data)}, v, level)
}

// EncodeSegments encodes a caller-built list of segments (for mixing, say,
// Kanji with Byte content) at the given version and level.
func EncodeSegments(segs []coding.Encoding, v coding.Version, level Level) (*Code, error) {
	var bits coding.Bits
	for i, seg := range segs {
		if err := seg.Check(); err != nil {
			return nil, fmt.Errorf("qr: segment %d: %w", i, err)
		}
	}

	total := 0
	for _, seg := range segs {
		total += seg.Bits(v)
	}
	if total > 8*coding.DataBytes(v, level) {
		return nil, ErrTooLarge
	}

	for _, seg := range segs {
		seg.Encode(&bits, v)
	}
	bits.AddCheckBytes(v, level)

	nd := coding.DataBytes(v, level)
	codewords := bits.Bytes()
	canvas := coding.NewCanvas(v)
	canvas.DrawData(codewords[:nd], codewords[nd:], level)

	best, pattern := coding.BestMask(canvas)
	best.DrawFormatInfo(coding.FormatWord(v, level, pattern))
	if v.Family == coding.Normal && v.Number >= 7 {
		best.DrawVersionInfo(coding.VersionWord(v))
	}

	return &Code{version: v, level: level, pattern: pattern, canvas: best}, nil
}
