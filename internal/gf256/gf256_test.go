// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import "testing"

func TestFieldInverse(t *testing.T) {
	f := NewField(0x11d, 2)
	for x := 1; x < 256; x++ {
		inv := f.Inverse(byte(x))
		if got := f.Mul(byte(x), inv); got != 1 {
			t.Fatalf("Mul(%d, Inverse(%d)) = %d, want 1", x, x, got)
		}
	}
}

func TestFieldExpLogRoundTrip(t *testing.T) {
	f := NewField(0x11d, 2)
	for x := 1; x < 256; x++ {
		log := f.Log(byte(x))
		if got := f.Exp(log); got != byte(x) {
			t.Errorf("Exp(Log(%d)) = %d, want %d", x, got, x)
		}
	}
}

func TestRSEncoderDeterministic(t *testing.T) {
	f := NewField(0x11d, 2)
	rs := NewRSEncoder(f, 10)
	data := []byte("01234567")

	check1 := make([]byte, 10)
	rs.ECC(data, check1)

	check2 := make([]byte, 10)
	rs.ECC(data, check2)

	for i := range check1 {
		if check1[i] != check2[i] {
			t.Fatalf("ECC not deterministic at byte %d: %x vs %x", i, check1, check2)
		}
	}
}

func TestRSEncoderNonzeroForNonzeroData(t *testing.T) {
	f := NewField(0x11d, 2)
	rs := NewRSEncoder(f, 7)
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	check := make([]byte, 7)
	rs.ECC(data, check)

	allZero := true
	for _, b := range check {
		if b != 0 {
			allZero = false
		}
	}
	if allZero {
		t.Errorf("ECC(%v) = all zero, want nonzero check bytes", data)
	}
}
