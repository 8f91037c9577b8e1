// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over a GF(256) Galois field, used by
// the Reed-Solomon error-correction coding QR Codes and Micro QR Codes
// employ.
package gf256

// A Field represents an instance of GF(256) defined by a specific
// irreducible polynomial.
type Field struct {
	log [256]byte // log[0] is unused
	exp [512]byte
}

// NewField returns a new field corresponding to the given polynomial.
// The polynomial is represented in binary as a number with 9 bits:
// bit 8 (0x100) is always set, since the polynomial has degree 8;
// bits 7-0 (0xff) are the remaining coefficients.
// For example, the QR code standard uses the polynomial x⁸+x⁴+x³+x²+1,
// which is 0b1_0001_1101, so the argument poly is 0x11d.
//
// The generator is the field generator used to compute the log and exp
// tables. For the QR code field it is 2.
func NewField(poly int, generator int) *Field {
	f := new(Field)
	x := 1
	for i := 0; i < 255; i++ {
		f.exp[i] = byte(x)
		f.exp[i+255] = byte(x)
		f.log[x] = byte(i)
		x *= generator
		if x >= 256 {
			x ^= poly
		}
	}
	f.log[0] = 0
	return f
}

// Add returns x+y.
func (f *Field) Add(x, y byte) byte {
	return x ^ y
}

// Exp returns the field generator raised to the e'th power.
func (f *Field) Exp(e int) byte {
	for e < 0 {
		e += 255
	}
	for e >= 255 {
		e -= 255
	}
	return f.exp[e]
}

// Log returns the base-generator logarithm of x.
func (f *Field) Log(x byte) int {
	if x == 0 {
		panic("gf256: log of zero")
	}
	return int(f.log[x])
}

// Mul returns the product x*y.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}

// Inverse returns the inverse of x in the field.
func (f *Field) Inverse(x byte) byte {
	if x == 0 {
		panic("gf256: inverse of zero")
	}
	return f.exp[255-int(f.log[x])]
}

// An RSEncoder implements Reed-Solomon encoding over a given field using a
// given number of error correction bytes.
type RSEncoder struct {
	f    *Field
	c    int
	gen  []byte
	lgen []byte
}

// NewRSEncoder returns a new Reed-Solomon encoder
// over the given field and number of error correction bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	gen := make([]byte, c+1)
	gen[0] = 1
	for i := 0; i < c; i++ {
		// gen = gen * (x - f.exp[i])
		factor := f.exp[i]
		for j := i; j >= 0; j-- {
			gen[j+1] ^= f.Mul(gen[j], factor)
		}
	}

	// Precompute log form for faster processing.
	lgen := make([]byte, len(gen))
	for i, v := range gen {
		if v == 0 {
			continue
		}
		lgen[i] = byte(f.log[v])
	}

	return &RSEncoder{f: f, c: c, gen: gen, lgen: lgen}
}

// ECC writes to check the error correction bytes
// for data using the given Reed-Solomon parameters.
func (rs *RSEncoder) ECC(data []byte, check []byte) {
	if len(check) < rs.c {
		panic("gf256: invalid check byte length")
	}
	check = check[:rs.c]
	for i := range check {
		check[i] = 0
	}

	lgen := rs.lgen
	for _, d := range data {
		coef := d ^ check[0]
		copy(check, check[1:])
		check[len(check)-1] = 0
		if coef == 0 {
			continue
		}
		log := int(rs.f.log[coef])
		for i, lg := range lgen[1:] {
			if lg == 0 && rs.gen[i+1] == 0 {
				continue
			}
			check[i] ^= rs.f.exp[int(lg)+log]
		}
	}
}
