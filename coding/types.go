// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR Code and Micro QR Code encoding
// details: canvas construction, the data-module zig-zag walk, mask
// selection, and format/version information placement.
package coding

import "fmt"

// Color is the color of a module (pixel) in the symbol.
type Color bool

const (
	Light Color = false
	Dark  Color = true
)

// Complement returns the opposite color.
func (c Color) Complement() Color {
	return !c
}

func (c Color) String() string {
	if c == Dark {
		return "dark"
	}
	return "light"
}

// Family distinguishes a full-size (Normal) symbol from a Micro QR symbol.
// The two families have distinct version ranges, functional-pattern layouts,
// admissible masks, and format-info encodings.
type Family int

const (
	Normal Family = iota
	Micro
)

func (f Family) String() string {
	if f == Micro {
		return "Micro"
	}
	return "Normal"
}

// Version identifies the size of a symbol within its Family: Normal ranges
// over [1,40], Micro over [1,4].
type Version struct {
	Family Family
	Number int
}

// NormalVersion constructs a Normal QR version, n ∈ [1,40].
func NormalVersion(n int) Version {
	return Version{Family: Normal, Number: n}
}

// MicroVersion constructs a Micro QR version, n ∈ [1,4].
func MicroVersion(n int) Version {
	return Version{Family: Micro, Number: n}
}

// Width returns the number of modules on a side.
func (v Version) Width() int {
	if v.Family == Micro {
		return 2*v.Number + 9
	}
	return 4*v.Number + 17
}

func (v Version) String() string {
	if v.Family == Micro {
		return fmt.Sprintf("M%d", v.Number)
	}
	return fmt.Sprintf("%d", v.Number)
}

// sizeClass groups Normal versions for the purposes of segment
// character-count-indicator width: [1,9], [10,26], [27,40].
func (v Version) sizeClass() int {
	switch {
	case v.Number <= 9:
		return 0
	case v.Number <= 26:
		return 1
	default:
		return 2
	}
}

// Level is the error-correction level. From least to most tolerant of
// errors: L, M, Q, H. Micro QR symbols never use H.
type Level int

const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return fmt.Sprintf("Level(%d)", int(l))
}
