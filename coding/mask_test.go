// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "testing"

func TestMaskFunctionsCount(t *testing.T) {
	if len(maskFunctions) != 8 {
		t.Fatalf("got %d mask functions, want 8", len(maskFunctions))
	}
}

func TestMicroMaskPatternsAdmissible(t *testing.T) {
	for i, p := range microMaskPatterns {
		if got := microPatternNumber(p); got != i {
			t.Errorf("microPatternNumber(%v) = %d, want %d", p, got, i)
		}
	}
}

func TestMicroPatternNumberRejectsInadmissible(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for non-admissible Micro mask pattern")
		}
	}()
	microPatternNumber(VerticalLines)
}

func TestFormatWordNormalTableRange(t *testing.T) {
	for l := L; l <= H; l++ {
		for p := Checkerboard; p <= Meadow; p++ {
			word := FormatWord(NormalVersion(1), l, p)
			if word == 0 {
				t.Errorf("FormatWord(Normal 1, %v, %v) = 0, want nonzero", l, p)
			}
		}
	}
}

func TestFormatWordMicroSymbolNumbers(t *testing.T) {
	cases := []struct {
		v    Version
		l    Level
		want int
	}{
		{MicroVersion(1), L, 0},
		{MicroVersion(2), L, 1},
		{MicroVersion(2), M, 2},
		{MicroVersion(3), L, 3},
		{MicroVersion(3), M, 4},
		{MicroVersion(4), L, 5},
		{MicroVersion(4), M, 6},
		{MicroVersion(4), Q, 7},
	}
	for _, c := range cases {
		if got := microSymbolNumber(c.v, c.l); got != c.want {
			t.Errorf("microSymbolNumber(%v, %v) = %d, want %d", c.v, c.l, got, c.want)
		}
	}
}

func TestVersionWordOnlyForNormal7Plus(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for Normal version below 7")
		}
	}()
	VersionWord(NormalVersion(6))
}

func TestBestMaskPicksMinimalScore(t *testing.T) {
	canvas := NewCanvas(NormalVersion(1))
	data := make([]byte, DataBytes(NormalVersion(1), M))
	for i := range data {
		data[i] = byte(i * 37)
	}
	ec := make([]byte, TotalBytes(NormalVersion(1), M)-len(data))
	canvas.DrawData(data, ec, M)

	best, pattern := BestMask(canvas)
	bestScore := best.ComputePenaltyScores().Total(Normal)

	for _, p := range allPatterns(Normal) {
		cand := canvas.Clone()
		cand.ApplyMask(p)
		score := cand.ComputePenaltyScores().Total(Normal)
		if score < bestScore {
			t.Errorf("pattern %v scores %d, lower than chosen pattern %v's %d", p, score, pattern, bestScore)
		}
	}
}
