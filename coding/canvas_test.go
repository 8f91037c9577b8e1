// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "testing"

func TestNewCanvasWidth(t *testing.T) {
	cases := []struct {
		v    Version
		want int
	}{
		{NormalVersion(1), 21},
		{NormalVersion(7), 45},
		{NormalVersion(40), 177},
		{MicroVersion(1), 11},
		{MicroVersion(4), 17},
	}
	for _, c := range cases {
		cv := NewCanvas(c.v)
		if cv.Width() != c.want {
			t.Errorf("NewCanvas(%v).Width() = %d, want %d", c.v, cv.Width(), c.want)
		}
	}
}

func TestFinderPatternsAreMasked(t *testing.T) {
	cv := NewCanvas(NormalVersion(1))
	// The finder pattern's dark core, at its very center, must be a
	// Masked module: functional patterns are never subject to masking.
	if m := cv.Get(3, 3); m != MaskedDark {
		t.Errorf("finder center = %v, want MaskedDark", m)
	}
}

func TestTimingPatternAlternates(t *testing.T) {
	cv := NewCanvas(NormalVersion(1))
	for x := 8; x <= cv.Width()-9; x++ {
		want := Dark
		if (x-8)%2 != 0 {
			want = Light
		}
		if got := cv.Get(x, 6).Color(); got != want {
			t.Errorf("timing pattern at (%d,6) = %v, want %v", x, got, want)
		}
	}
}

func TestDrawFormatInfoRoundTrip(t *testing.T) {
	cv := NewCanvas(NormalVersion(1))
	word := FormatWord(NormalVersion(1), M, Checkerboard)
	cv.DrawFormatInfo(word)

	var got uint32
	for i, c := range formatInfoCoordsQRMain {
		if cv.Get(c.x, c.y).Color() == Dark {
			got |= 1 << uint(14-i)
		}
	}
	if got != uint32(word) {
		t.Errorf("round-tripped format word = %#x, want %#x", got, word)
	}
}

func TestDrawVersionInfoRoundTrip(t *testing.T) {
	cv := NewCanvas(NormalVersion(7))
	word := VersionWord(NormalVersion(7))
	cv.DrawVersionInfo(word)

	var got uint32
	for i, c := range versionInfoCoordsBL {
		if cv.Get(c.x, c.y).Color() == Dark {
			got |= 1 << uint(17-i)
		}
	}
	if got != word {
		t.Errorf("round-tripped version word (BL) = %#x, want %#x", got, word)
	}
}

func TestIsFunctionalMicroCorner(t *testing.T) {
	if !IsFunctional(MicroVersion(2), 0, 0) {
		t.Errorf("Micro (0,0) should be functional")
	}
	if IsFunctional(MicroVersion(2), 10, 10) {
		t.Errorf("Micro data corner incorrectly reported functional")
	}
}

func TestAlignmentPatternDrawnVersion2(t *testing.T) {
	cv := NewCanvas(NormalVersion(2))
	// Version 2 has a single alignment pattern at (-7,-7), i.e. (18,18);
	// its center must be a Masked functional module.
	if m := cv.Get(cv.Width()-7, cv.Width()-7); m < MaskedLight {
		t.Errorf("alignment pattern center should be Masked, got %v", m)
	}
}
