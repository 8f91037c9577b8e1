// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// This file reproduces, bit-exact, the constant tables mandated by
// ISO/IEC 18004: alignment-pattern centers, version-information and
// format-information BCH words, the coordinate lists used to place them,
// and the per-version/level codeword-block layout (ISO/IEC 18004:2006,
// §6.5.1 Table 9).

// alignmentPatternPositions gives the x/y centers of alignment patterns for
// Normal versions 7..40 (index 0 == version 7). Since the symbol is
// symmetric, only one coordinate list is needed; the full set of centers is
// the Cartesian product of the list with itself.
var alignmentPatternPositions = [34][]int{
	{6, 22, 38},
	{6, 24, 42},
	{6, 26, 46},
	{6, 28, 50},
	{6, 30, 54},
	{6, 32, 58},
	{6, 34, 62},
	{6, 26, 46, 66},
	{6, 26, 48, 70},
	{6, 26, 50, 74},
	{6, 30, 54, 78},
	{6, 30, 56, 82},
	{6, 30, 58, 86},
	{6, 34, 62, 90},
	{6, 28, 50, 72, 94},
	{6, 26, 50, 74, 98},
	{6, 30, 54, 78, 102},
	{6, 28, 54, 80, 106},
	{6, 32, 58, 84, 110},
	{6, 30, 58, 86, 114},
	{6, 34, 62, 90, 118},
	{6, 26, 50, 74, 98, 122},
	{6, 30, 54, 78, 102, 126},
	{6, 26, 52, 78, 104, 130},
	{6, 30, 56, 82, 108, 134},
	{6, 34, 60, 86, 112, 138},
	{6, 30, 58, 86, 114, 142},
	{6, 34, 62, 90, 118, 146},
	{6, 30, 54, 78, 102, 126, 150},
	{6, 24, 50, 76, 102, 128, 154},
	{6, 28, 54, 80, 106, 132, 158},
	{6, 32, 58, 84, 110, 136, 162},
	{6, 26, 54, 82, 110, 138, 166},
	{6, 30, 58, 86, 114, 142, 170},
}

// versionInfos holds the 18-bit BCH-encoded version words for Normal
// versions 7..40 (index 0 == version 7).
var versionInfos = [34]uint32{
	0x07c94, 0x085bc, 0x09a99, 0x0a4d3, 0x0bbf6, 0x0c762, 0x0d847, 0x0e60d, 0x0f928, 0x10b78, 0x1145d, 0x12a17,
	0x13532, 0x149a6, 0x15683, 0x168c9, 0x177ec, 0x18ec4, 0x191e1, 0x1afab, 0x1b08e, 0x1cc1a, 0x1d33f, 0x1ed75,
	0x1f250, 0x209d5, 0x216f0, 0x228ba, 0x2379f, 0x24b0b, 0x2542e, 0x26a64, 0x27541, 0x28c69,
}

// formatInfosQR holds the 15-bit BCH-encoded format words for Normal
// symbols, indexed by ((ecLevel xor 1) << 3) | maskIndex.
var formatInfosQR = [32]uint16{
	0x5412, 0x5125, 0x5e7c, 0x5b4b, 0x45f9, 0x40ce, 0x4f97, 0x4aa0, 0x77c4, 0x72f3, 0x7daa, 0x789d, 0x662f, 0x6318,
	0x6c41, 0x6976, 0x1689, 0x13be, 0x1ce7, 0x19d0, 0x0762, 0x0255, 0x0d0c, 0x083b, 0x355f, 0x3068, 0x3f31, 0x3a06,
	0x24b4, 0x2183, 0x2eda, 0x2bed,
}

// formatInfosMicroQR holds the 15-bit BCH-encoded format words for Micro
// symbols, indexed by (symbolNumber << 2) | microMaskIndex.
var formatInfosMicroQR = [32]uint16{
	0x4445, 0x4172, 0x4e2b, 0x4b1c, 0x55ae, 0x5099, 0x5fc0, 0x5af7, 0x6793, 0x62a4, 0x6dfd, 0x68ca, 0x7678, 0x734f,
	0x7c16, 0x7921, 0x06de, 0x03e9, 0x0cb0, 0x0987, 0x1735, 0x1202, 0x1d5b, 0x186c, 0x2508, 0x203f, 0x2f66, 0x2a51,
	0x34e3, 0x31d4, 0x3e8d, 0x3bba,
}

type coord struct{ x, y int }

var versionInfoCoordsBL = [18]coord{
	{5, -9}, {5, -10}, {5, -11}, {4, -9}, {4, -10}, {4, -11}, {3, -9}, {3, -10}, {3, -11},
	{2, -9}, {2, -10}, {2, -11}, {1, -9}, {1, -10}, {1, -11}, {0, -9}, {0, -10}, {0, -11},
}

var versionInfoCoordsTR = [18]coord{
	{-9, 5}, {-10, 5}, {-11, 5}, {-9, 4}, {-10, 4}, {-11, 4}, {-9, 3}, {-10, 3}, {-11, 3},
	{-9, 2}, {-10, 2}, {-11, 2}, {-9, 1}, {-10, 1}, {-11, 1}, {-9, 0}, {-10, 0}, {-11, 0},
}

var formatInfoCoordsQRMain = [15]coord{
	{0, 8}, {1, 8}, {2, 8}, {3, 8}, {4, 8}, {5, 8}, {7, 8}, {8, 8},
	{8, 7}, {8, 5}, {8, 4}, {8, 3}, {8, 2}, {8, 1}, {8, 0},
}

var formatInfoCoordsQRSide = [15]coord{
	{8, -1}, {8, -2}, {8, -3}, {8, -4}, {8, -5}, {8, -6}, {8, -7},
	{-8, 8}, {-7, 8}, {-6, 8}, {-5, 8}, {-4, 8}, {-3, 8}, {-2, 8}, {-1, 8},
}

var formatInfoCoordsMicroQR = [15]coord{
	{1, 8}, {2, 8}, {3, 8}, {4, 8}, {5, 8}, {6, 8}, {7, 8}, {8, 8},
	{8, 7}, {8, 6}, {8, 5}, {8, 4}, {8, 3}, {8, 2}, {8, 1},
}

// blockLayout is one row of ISO/IEC 18004:2006 §6.5.1 Table 9: the division
// of a version/level's total data codewords into one or two groups of
// equal-sized blocks, plus the EC codewords appended to every block.
type blockLayout struct {
	block1Size, block1Count int
	block2Size, block2Count int
	ecBytesPerBlock         int
}

func (b blockLayout) dataBytes() int {
	return b.block1Size*b.block1Count + b.block2Size*b.block2Count
}

func (b blockLayout) blockCount() int {
	return b.block1Count + b.block2Count
}

func (b blockLayout) ecBytes() int {
	return b.ecBytesPerBlock * b.blockCount()
}

// dataBytesPerBlock is ISO/IEC 18004:2006 §6.5.1 Table 9, reproduced for all
// 40 Normal versions (levels L,M,Q,H) followed by the 4 Micro versions
// (levels L,M,Q,H; unused combinations are zeroed).
var dataBytesPerBlock = [44][4]blockLayout{
	{{19, 1, 0, 0, 7}, {16, 1, 0, 0, 10}, {13, 1, 0, 0, 13}, {9, 1, 0, 0, 17}},
	{{34, 1, 0, 0, 10}, {28, 1, 0, 0, 16}, {22, 1, 0, 0, 22}, {16, 1, 0, 0, 28}},
	{{55, 1, 0, 0, 15}, {44, 1, 0, 0, 26}, {17, 2, 0, 0, 18}, {13, 2, 0, 0, 22}},
	{{80, 1, 0, 0, 20}, {32, 2, 0, 0, 18}, {24, 2, 0, 0, 26}, {9, 4, 0, 0, 16}},
	{{108, 1, 0, 0, 26}, {43, 2, 0, 0, 24}, {15, 2, 16, 2, 18}, {11, 2, 12, 2, 22}},
	{{68, 2, 0, 0, 18}, {27, 4, 0, 0, 16}, {19, 4, 0, 0, 24}, {15, 4, 0, 0, 28}},
	{{78, 2, 0, 0, 20}, {31, 4, 0, 0, 18}, {14, 2, 15, 4, 18}, {13, 4, 14, 1, 26}},
	{{97, 2, 0, 0, 24}, {38, 2, 39, 2, 22}, {18, 4, 19, 2, 22}, {14, 4, 15, 2, 26}},
	{{116, 2, 0, 0, 30}, {36, 3, 37, 2, 22}, {16, 4, 17, 4, 20}, {12, 4, 13, 4, 24}},
	{{68, 2, 69, 2, 18}, {43, 4, 44, 1, 26}, {19, 6, 20, 2, 24}, {15, 6, 16, 2, 28}},
	{{81, 4, 0, 0, 20}, {50, 1, 51, 4, 30}, {22, 4, 23, 4, 28}, {12, 3, 13, 8, 24}},
	{{92, 2, 93, 2, 24}, {36, 6, 37, 2, 22}, {20, 4, 21, 6, 26}, {14, 7, 15, 4, 28}},
	{{107, 4, 0, 0, 26}, {37, 8, 38, 1, 22}, {20, 8, 21, 4, 24}, {11, 12, 12, 4, 22}},
	{{115, 3, 116, 1, 30}, {40, 4, 41, 5, 24}, {16, 11, 17, 5, 20}, {12, 11, 13, 5, 24}},
	{{87, 5, 88, 1, 22}, {41, 5, 42, 5, 24}, {24, 5, 25, 7, 30}, {12, 11, 13, 7, 24}},
	{{98, 5, 99, 1, 24}, {45, 7, 46, 3, 28}, {19, 15, 20, 2, 24}, {15, 3, 16, 13, 30}},
	{{107, 1, 108, 5, 28}, {46, 10, 47, 1, 28}, {22, 1, 23, 15, 28}, {14, 2, 15, 17, 28}},
	{{120, 5, 121, 1, 30}, {43, 9, 44, 4, 26}, {22, 17, 23, 1, 28}, {14, 2, 15, 19, 28}},
	{{113, 3, 114, 4, 28}, {44, 3, 45, 11, 26}, {21, 17, 22, 4, 26}, {13, 9, 14, 16, 26}},
	{{107, 3, 108, 5, 28}, {41, 3, 42, 13, 26}, {24, 15, 25, 5, 30}, {15, 15, 16, 10, 28}},
	{{116, 4, 117, 4, 28}, {42, 17, 0, 0, 26}, {22, 17, 23, 6, 28}, {16, 19, 17, 6, 30}},
	{{111, 2, 112, 7, 28}, {46, 17, 0, 0, 28}, {24, 7, 25, 16, 30}, {13, 34, 0, 0, 24}},
	{{121, 4, 122, 5, 30}, {47, 4, 48, 14, 28}, {24, 11, 25, 14, 30}, {15, 16, 16, 14, 30}},
	{{117, 6, 118, 4, 30}, {45, 6, 46, 14, 28}, {24, 11, 25, 16, 30}, {16, 30, 17, 2, 30}},
	{{106, 8, 107, 4, 26}, {47, 8, 48, 13, 28}, {24, 7, 25, 22, 30}, {15, 22, 16, 13, 30}},
	{{114, 10, 115, 2, 28}, {46, 19, 47, 4, 28}, {22, 28, 23, 6, 28}, {16, 33, 17, 4, 30}},
	{{122, 8, 123, 4, 30}, {45, 22, 46, 3, 28}, {23, 8, 24, 26, 30}, {15, 12, 16, 28, 30}},
	{{117, 3, 118, 10, 30}, {45, 3, 46, 23, 28}, {24, 4, 25, 31, 30}, {15, 11, 16, 31, 30}},
	{{116, 7, 117, 7, 30}, {45, 21, 46, 7, 28}, {23, 1, 24, 37, 30}, {15, 19, 16, 26, 30}},
	{{115, 5, 116, 10, 30}, {47, 19, 48, 10, 28}, {24, 15, 25, 25, 30}, {15, 23, 16, 25, 30}},
	{{115, 13, 116, 3, 30}, {46, 2, 47, 29, 28}, {24, 42, 25, 1, 30}, {15, 23, 16, 28, 30}},
	{{115, 17, 0, 0, 30}, {46, 10, 47, 23, 28}, {24, 10, 25, 35, 30}, {15, 19, 16, 35, 30}},
	{{115, 17, 116, 1, 30}, {46, 14, 47, 21, 28}, {24, 29, 25, 19, 30}, {15, 11, 16, 46, 30}},
	{{115, 13, 116, 6, 30}, {46, 14, 47, 23, 28}, {24, 44, 25, 7, 30}, {16, 59, 17, 1, 30}},
	{{121, 12, 122, 7, 30}, {47, 12, 48, 26, 28}, {24, 39, 25, 14, 30}, {15, 22, 16, 41, 30}},
	{{121, 6, 122, 14, 30}, {47, 6, 48, 34, 28}, {24, 46, 25, 10, 30}, {15, 2, 16, 64, 30}},
	{{122, 17, 123, 4, 30}, {46, 29, 47, 14, 28}, {24, 49, 25, 10, 30}, {15, 24, 16, 46, 30}},
	{{122, 4, 123, 18, 30}, {46, 13, 47, 32, 28}, {24, 48, 25, 14, 30}, {15, 42, 16, 32, 30}},
	{{117, 20, 118, 4, 30}, {47, 40, 48, 7, 28}, {24, 43, 25, 22, 30}, {15, 10, 16, 67, 30}},
	{{118, 19, 119, 6, 30}, {47, 18, 48, 31, 28}, {24, 34, 25, 34, 30}, {15, 20, 16, 61, 30}},
	// Micro versions (Micro 1..4); unused (version, level) combinations are zeroed.
	{{3, 1, 0, 0, 2}, {}, {}, {}},
	{{5, 1, 0, 0, 5}, {4, 1, 0, 0, 6}, {}, {}},
	{{11, 1, 0, 0, 6}, {9, 1, 0, 0, 8}, {}, {}},
	{{16, 1, 0, 0, 8}, {14, 1, 0, 0, 10}, {10, 1, 0, 0, 14}, {}},
}

// blockRow returns the §6.5.1 Table 9 row for v, panicking if v is out of
// range. Normal versions occupy rows 0..39; Micro versions occupy rows
// 40..43.
func blockRow(v Version) [4]blockLayout {
	if v.Family == Micro {
		if v.Number < 1 || v.Number > 4 {
			panic("coding: invalid Micro QR version")
		}
		return dataBytesPerBlock[39+v.Number]
	}
	if v.Number < 1 || v.Number > 40 {
		panic("coding: invalid QR version")
	}
	return dataBytesPerBlock[v.Number-1]
}

// Layout returns the codeword block layout for (v, l). It panics if the
// combination is unsupported (layout.dataBytes() == 0).
func Layout(v Version, l int) blockLayout {
	row := blockRow(v)
	if l < 0 || l > 3 {
		panic("coding: invalid error-correction level")
	}
	layout := row[l]
	if layout.dataBytes() == 0 {
		panic("coding: unsupported version/level combination")
	}
	return layout
}

// DataBytes returns the number of data codeword bytes (excluding EC bytes)
// available for (v, l).
func DataBytes(v Version, l Level) int {
	return Layout(v, int(l)).dataBytes()
}

// TotalBytes returns the total codeword bytes (data + EC) for (v, l).
func TotalBytes(v Version, l Level) int {
	lay := Layout(v, int(l))
	return lay.dataBytes() + lay.ecBytes()
}
