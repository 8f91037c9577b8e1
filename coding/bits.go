// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/japanese"
)

// Encoding implements a QR data encoding scheme. The implementations --
// Num, Alpha, Bytes, and Kanji -- specify the character set and the
// mapping from UTF-8 to code bits. The more restrictive the mode, the
// fewer code bits are needed.
type Encoding interface {
	Check() error
	Bits(v Version) int
	Encode(b *Bits, v Version)
}

// Bits is an append-only bit buffer used to assemble a segment stream
// before it is split into codeword bytes.
type Bits struct {
	b    []byte
	nbit int
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

func (b *Bits) Bits() int {
	return b.nbit
}

func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("coding: fractional byte")
	}
	return b.b
}

func (b *Bits) Append(p []byte) {
	if b.nbit%8 != 0 {
		panic("coding: fractional byte")
	}
	b.b = append(b.b, p...)
	b.nbit += 8 * len(p)
}

func (b *Bits) Write(v uint, nbit int) {
	for nbit > 0 {
		n := nbit
		if n > 8 {
			n = 8
		}
		if b.nbit%8 == 0 {
			b.b = append(b.b, 0)
		} else {
			m := -b.nbit & 7
			if n > m {
				n = m
			}
		}
		b.nbit += n
		sh := uint(nbit - n)
		b.b[len(b.b)-1] |= uint8(v >> sh << uint(-b.nbit&7))
		v -= v >> sh << sh
		nbit -= n
	}
}

// Pad appends the standard QR/Micro QR padding sequence (terminator bits,
// a zero bit out to the next byte boundary, then alternating 0xec/0x11
// filler bytes) until b holds n total bits.
func (b *Bits) Pad(n int) {
	if b.nbit > n {
		panic("coding: data too long")
	}
	if b.nbit+4 <= n {
		b.Write(0, 4)
	} else {
		b.Write(0, n-b.nbit)
	}
	for b.nbit%8 != 0 {
		b.Write(0, 1)
	}
	pad := n/8 - len(b.b)
	alt := false
	for ; pad > 0; pad-- {
		if alt {
			b.Write(0x11, 8)
		} else {
			b.Write(0xec, 8)
		}
		alt = !alt
	}
}

// modeBits is the mode-indicator bit width for family/version: Normal
// symbols always use 4 bits; Micro symbols use a width that grows with the
// version number, per ISO/IEC 18004 Table 2 (M1 carries no mode indicator
// at all — it is implicitly numeric).
func modeBits(v Version) int {
	if v.Family == Normal {
		return 4
	}
	return v.Number - 1
}

// numLenNormal/numLenMicro etc. are the character-count-indicator widths
// of ISO/IEC 18004 Table 3, indexed by Version.sizeClass() for Normal
// symbols and by (Number-1) for Micro symbols.
var numLenNormal = [3]int{10, 12, 14}
var alphaLenNormal = [3]int{9, 11, 13}
var bytesLenNormal = [3]int{8, 16, 16}
var kanjiLenNormal = [3]int{8, 10, 12}

var numLenMicro = [4]int{3, 4, 5, 6}
var alphaLenMicro = [4]int{0, 3, 4, 5}
var bytesLenMicro = [4]int{0, 0, 4, 5}
var kanjiLenMicro = [4]int{0, 0, 3, 4}

func countLen(v Version, normal [3]int, micro [4]int) int {
	if v.Family == Normal {
		return normal[v.sizeClass()]
	}
	return micro[v.Number-1]
}

// Num is the encoding for numeric data: the only valid characters are the
// decimal digits 0 through 9.
type Num string

func (s Num) String() string {
	return fmt.Sprintf("Num(%#q)", string(s))
}

func (s Num) Check() error {
	for _, c := range s {
		if c < '0' || '9' < c {
			return fmt.Errorf("non-numeric string %#q", string(s))
		}
	}
	return nil
}

func (s Num) Bits(v Version) int {
	return modeBits(v) + countLen(v, numLenNormal, numLenMicro) + (10*len(s)+2)/3
}

func (s Num) Encode(b *Bits, v Version) {
	if v.Family != Micro || v.Number > 1 {
		b.Write(1, modeBits(v))
	}
	b.Write(uint(len(s)), countLen(v, numLenNormal, numLenMicro))
	var i int
	for i = 0; i+3 <= len(s); i += 3 {
		w := uint(s[i]-'0')*100 + uint(s[i+1]-'0')*10 + uint(s[i+2]-'0')
		b.Write(w, 10)
	}
	switch len(s) - i {
	case 1:
		w := uint(s[i] - '0')
		b.Write(w, 4)
	case 2:
		w := uint(s[i]-'0')*10 + uint(s[i+1]-'0')
		b.Write(w, 7)
	}
}

// Alpha is the encoding for alphanumeric data: the valid characters are
// 0-9A-Z$%*+-./: and space.
type Alpha string

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

func (s Alpha) String() string {
	return fmt.Sprintf("Alpha(%#q)", string(s))
}

func (s Alpha) Check() error {
	for _, c := range s {
		if strings.IndexRune(alphabet, c) < 0 {
			return fmt.Errorf("non-alphanumeric string %#q", string(s))
		}
	}
	return nil
}

func (s Alpha) Bits(v Version) int {
	return modeBits(v) + countLen(v, alphaLenNormal, alphaLenMicro) + (11*len(s)+1)/2
}

func (s Alpha) Encode(b *Bits, v Version) {
	b.Write(2, modeBits(v))
	b.Write(uint(len(s)), countLen(v, alphaLenNormal, alphaLenMicro))
	var i int
	for i = 0; i+2 <= len(s); i += 2 {
		w := uint(strings.IndexRune(alphabet, rune(s[i])))*45 +
			uint(strings.IndexRune(alphabet, rune(s[i+1])))
		b.Write(w, 11)
	}
	if i < len(s) {
		w := uint(strings.IndexRune(alphabet, rune(s[i])))
		b.Write(w, 6)
	}
}

// Bytes is the encoding for 8-bit byte data; all byte values are valid.
type Bytes string

func (s Bytes) String() string {
	return fmt.Sprintf("Bytes(%#q)", string(s))
}

func (s Bytes) Check() error {
	return nil
}

func (s Bytes) Bits(v Version) int {
	return modeBits(v) + countLen(v, bytesLenNormal, bytesLenMicro) + 8*len(s)
}

func (s Bytes) Encode(b *Bits, v Version) {
	b.Write(4, modeBits(v))
	b.Write(uint(len(s)), countLen(v, bytesLenNormal, bytesLenMicro))
	for i := 0; i < len(s); i++ {
		b.Write(uint(s[i]), 8)
	}
}

// Kanji is the encoding for Shift-JIS-encodable kanji; valid characters
// are those in JIS X 0208.
type Kanji string

func (s Kanji) String() string {
	return fmt.Sprintf("Kanji(%#q)", string(s))
}

func (s Kanji) Check() error {
	_, err := japanese.ShiftJIS.NewEncoder().String(string(s))
	if err != nil {
		err = fmt.Errorf("non-kanji string %#q", string(s))
	}
	return err
}

func (s Kanji) Bits(v Version) int {
	n := modeBits(v) + countLen(v, kanjiLenNormal, kanjiLenMicro)
	for range s {
		n += 13
	}
	return n
}

func (s Kanji) Encode(b *Bits, v Version) {
	k, err := japanese.ShiftJIS.NewEncoder().String(string(s))
	if err != nil || len(k)&1 != 0 {
		return
	}
	b.Write(8, modeBits(v))
	b.Write(uint(len(k)/2), countLen(v, kanjiLenNormal, kanjiLenMicro))
	for i := 0; i < len(k); i += 2 {
		w := uint(k[i]&^0xc0)*0xc0 + uint(k[i+1]) - 0x100
		b.Write(w, 13)
	}
}
