// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// MaskPattern identifies one of the eight data-masking predicates a Normal
// symbol may use, or one of the four a Micro symbol may use (the Micro
// encoding reuses patterns 1, 4, 6, and 7 under different two-bit names).
type MaskPattern int

const (
	Checkerboard MaskPattern = iota
	HorizontalLines
	VerticalLines
	DiagonalLines
	LargeCheckerboard
	Fields
	Diamonds
	Meadow
)

// microMaskPatterns lists the four Normal mask patterns admissible for
// Micro symbols, in the order their two-bit Micro pattern number encodes
// them (00=HorizontalLines, 01=LargeCheckerboard, 10=Diamonds, 11=Meadow).
var microMaskPatterns = [4]MaskPattern{HorizontalLines, LargeCheckerboard, Diamonds, Meadow}

// maskFunctions are the predicates of ISO/IEC 18004 Table 10/Annex C:
// invert(x, y) reports whether the module at (x, y) should be complemented.
var maskFunctions = [8]func(x, y int) bool{
	func(x, y int) bool { return (x+y)%2 == 0 },
	func(x, y int) bool { return y%2 == 0 },
	func(x, y int) bool { return x%3 == 0 },
	func(x, y int) bool { return (x+y)%3 == 0 },
	func(x, y int) bool { return (y/2+x/3)%2 == 0 },
	func(x, y int) bool { return (x*y)%2+(x*y)%3 == 0 },
	func(x, y int) bool { return ((x*y)%2+(x*y)%3)%2 == 0 },
	func(x, y int) bool { return ((x+y)%2+(x*y)%3)%2 == 0 },
}

// ApplyMask overwrites every Unmasked module of c with the color that
// results from applying pattern, leaving Masked (functional) modules
// untouched.
func (c *Canvas) ApplyMask(pattern MaskPattern) {
	invert := maskFunctions[pattern]
	for y := 0; y < c.width; y++ {
		for x := 0; x < c.width; x++ {
			m := c.get(x, y)
			if m >= MaskedLight {
				continue
			}
			c.set(x, y, m.applyInvert(invert(x, y)))
		}
	}
}

func (m Module) applyInvert(flip bool) Module {
	if !flip {
		return m
	}
	if m.IsDark() {
		return UnmaskedLight
	}
	return UnmaskedDark
}

// formatWordNormal computes the 15-bit format-information value (already BCH
// encoded) for a Normal symbol's error-correction level and chosen mask
// pattern.
func formatWordNormal(l Level, pattern MaskPattern) uint16 {
	idx := (int(l)^1)<<3 | int(pattern)
	return formatInfosQR[idx]
}

// microSymbolNumber maps a Micro (version, level) combination to its index
// in ISO/IEC 18004 Table 8: M1=0, M2-L=1, M2-M=2, M3-L=3, M3-M=4, M4-L=5,
// M4-M=6, M4-Q=7.
func microSymbolNumber(v Version, l Level) int {
	switch {
	case v.Number == 1:
		return 0
	case v.Number == 2 && l == L:
		return 1
	case v.Number == 2 && l == M:
		return 2
	case v.Number == 3 && l == L:
		return 3
	case v.Number == 3 && l == M:
		return 4
	case v.Number == 4 && l == L:
		return 5
	case v.Number == 4 && l == M:
		return 6
	case v.Number == 4 && l == Q:
		return 7
	default:
		panic("coding: unsupported Micro QR version/level combination")
	}
}

// microPatternNumber returns the two-bit index of pattern within
// microMaskPatterns, panicking if pattern is not Micro-admissible.
func microPatternNumber(pattern MaskPattern) int {
	for i, p := range microMaskPatterns {
		if p == pattern {
			return i
		}
	}
	panic("coding: mask pattern not admissible for Micro QR")
}

func formatWordMicro(v Version, l Level, pattern MaskPattern) uint16 {
	idx := microSymbolNumber(v, l)<<2 | microPatternNumber(pattern)
	return formatInfosMicroQR[idx]
}

// FormatWord computes the BCH-encoded format-information word for the
// symbol's family, version, error-correction level, and chosen mask.
func FormatWord(v Version, l Level, pattern MaskPattern) uint16 {
	if v.Family == Micro {
		return formatWordMicro(v, l, pattern)
	}
	return formatWordNormal(l, pattern)
}

// VersionWord computes the BCH-encoded version-information word for Normal
// versions 7 and up. Callers must not call this for lower versions or for
// Micro symbols, neither of which carries version information.
func VersionWord(v Version) uint32 {
	if v.Family != Normal || v.Number < 7 {
		panic("coding: version does not carry version information")
	}
	return versionInfos[v.Number-7]
}

// finderPenaltyPattern is the color sequence [Dark Light Dark Dark Dark
// Light Dark] that S3 (ISO/IEC 18004 §8.8.2 condition 3) searches for,
// forwards or reversed (the two are identical here since the pattern is a
// palindrome).
var finderPenaltyPattern = [7]Color{Dark, Light, Dark, Dark, Dark, Light, Dark}

// PenaltyScores are the individual ISO/IEC 18004 §8.8.2 penalty terms for a
// Normal symbol, or the single light-side-deficit term for a Micro symbol
// (only LightSide is populated in that case).
type PenaltyScores struct {
	AdjacentHorizontal int // N1, horizontal runs
	AdjacentVertical   int // N1, vertical runs
	Block              int // N2
	FinderHorizontal   int // N3, horizontal
	FinderVertical     int // N3, vertical
	Balance            int // N4
	LightSide          int // Micro-only light-side deficit score
}

// Total sums the applicable terms: all six for Normal, LightSide alone for
// Micro.
func (p PenaltyScores) Total(family Family) int {
	if family == Micro {
		return p.LightSide
	}
	return p.AdjacentHorizontal + p.AdjacentVertical + p.Block + p.FinderHorizontal + p.FinderVertical + p.Balance
}

// ComputePenaltyScores evaluates every ISO/IEC 18004 §8.8.2 penalty term
// against the canvas's current (masked) contents.
func (c *Canvas) ComputePenaltyScores() PenaltyScores {
	if c.version.Family == Micro {
		return PenaltyScores{LightSide: c.lightSidePenalty()}
	}
	return PenaltyScores{
		AdjacentHorizontal: c.adjacentPenalty(true),
		AdjacentVertical:   c.adjacentPenalty(false),
		Block:              c.blockPenalty(),
		FinderHorizontal:   c.finderPenalty(true),
		FinderVertical:     c.finderPenalty(false),
		Balance:            c.balancePenalty(),
	}
}

// adjacentPenalty computes S1: for each row (horizontal=true) or column, a
// run of L>=5 modules sharing the same full Module value (so a Masked run
// never matches an Unmasked run of the same color) scores L-2, i.e. 3 for a
// run of five plus 1 for every module beyond the fifth.
func (c *Canvas) adjacentPenalty(horizontal bool) int {
	score := 0
	for i := 0; i < c.width; i++ {
		run := 1
		var prev Module = 0xff // sentinel, never equal to a real Module
		for j := 0; j < c.width; j++ {
			var m Module
			if horizontal {
				m = c.get(j, i)
			} else {
				m = c.get(i, j)
			}
			if m == prev {
				run++
				continue
			}
			if run >= 5 {
				score += run - 2
			}
			prev = m
			run = 1
		}
		if run >= 5 {
			score += run - 2
		}
	}
	return score
}

// blockPenalty computes S2: 3 points for every 2x2 block of identical
// Module values (functional tag included), counting overlapping blocks.
func (c *Canvas) blockPenalty() int {
	score := 0
	for y := 0; y < c.width-1; y++ {
		for x := 0; x < c.width-1; x++ {
			m := c.get(x, y)
			if m == c.get(x+1, y) && m == c.get(x, y+1) && m == c.get(x+1, y+1) {
				score += 3
			}
		}
	}
	return score
}

// finderPenalty computes S3 for one orientation: 40 points for every match
// of finderPenaltyPattern against module colors (ignoring the masked tag)
// unless both four-module windows, immediately before and immediately
// after the match, contain a dark module. Window positions outside the
// canvas are skipped, so they never count as dark. The three finder
// patterns themselves always yield nine scoring matches per orientation,
// so the term is offset by -360.
func (c *Canvas) finderPenalty(horizontal bool) int {
	score := 0
	colorAt := func(i, j int) Color {
		if horizontal {
			return c.get(j, i).Color()
		}
		return c.get(i, j).Color()
	}
	for i := 0; i < c.width; i++ {
		for j := 0; j+7 <= c.width; j++ {
			matches := true
			for k := 0; k < 7; k++ {
				if colorAt(i, j+k) != finderPenaltyPattern[k] {
					matches = false
					break
				}
			}
			if !matches {
				continue
			}
			beforeAllLight := true
			for k := 1; k <= 4; k++ {
				if j-k < 0 {
					break
				}
				if colorAt(i, j-k) != Light {
					beforeAllLight = false
					break
				}
			}
			afterAllLight := true
			for k := 0; k < 4; k++ {
				if j+7+k >= c.width {
					break
				}
				if colorAt(i, j+7+k) != Light {
					afterAllLight = false
					break
				}
			}
			if beforeAllLight || afterAllLight {
				score += 40
			}
		}
	}
	return score - 360
}

// balancePenalty computes S4: 10 * |darkRatio - 50| / 5, expressed in the
// reference implementation's integer form |ratio - 100| where
// ratio = darkCount*200/total.
func (c *Canvas) balancePenalty() int {
	dark := 0
	total := c.width * c.width
	for y := 0; y < c.width; y++ {
		for x := 0; x < c.width; x++ {
			if c.get(x, y).Color() == Dark {
				dark++
			}
		}
	}
	ratio := dark * 200 / total
	if ratio < 100 {
		return 100 - ratio
	}
	return ratio - 100
}

// lightSidePenalty computes the Micro QR score of ISO/IEC 18004 §8.8.3:
// h and v are the light-module counts along the symbol's outermost right
// column and bottom row, excluding each line's module at index 0 (which
// lies on the timing pattern). Fewer light modules on these edges is
// better, so this returns h + v + 15*max(h,v) as a score to minimize, like
// every other penalty term.
func (c *Canvas) lightSidePenalty() int {
	h, v := 0, 0
	w := c.width
	for y := 1; y < w; y++ {
		if c.get(w-1, y).Color() != Dark {
			h++
		}
	}
	for x := 1; x < w; x++ {
		if c.get(x, w-1).Color() != Dark {
			v++
		}
	}
	maxhv := h
	if v > maxhv {
		maxhv = v
	}
	return h + v + 15*maxhv
}

// BestMask tries every admissible mask pattern, applying it to a fresh
// clone of base (which must have its data/EC modules already placed but no
// mask applied), and returns the clone with the lowest total penalty score
// along with the pattern chosen.
func BestMask(base *Canvas) (*Canvas, MaskPattern) {
	patterns := allPatterns(base.version.Family)
	var best *Canvas
	var bestPattern MaskPattern
	bestScore := 0
	for i, p := range patterns {
		cand := base.Clone()
		cand.ApplyMask(p)
		score := cand.ComputePenaltyScores().Total(base.version.Family)
		if i == 0 || score < bestScore {
			best = cand
			bestPattern = p
			bestScore = score
		}
	}
	return best, bestPattern
}

func allPatterns(f Family) []MaskPattern {
	if f == Micro {
		return microMaskPatterns[:]
	}
	return []MaskPattern{Checkerboard, HorizontalLines, VerticalLines, DiagonalLines, LargeCheckerboard, Fields, Diamonds, Meadow}
}
