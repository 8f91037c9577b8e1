// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"testing"

	"github.com/klotza/qrenc/coding"
)

func TestEncodeVersionRoundTrip(t *testing.T) {
	code, err := EncodeVersion([]byte("01234567"), coding.NormalVersion(1), M)
	if err != nil {
		t.Fatalf("EncodeVersion: %v", err)
	}
	if code.Size() != 21 {
		t.Fatalf("Size() = %d, want 21", code.Size())
	}
	// The top-left finder pattern's center must render dark.
	if !code.Black(3, 3) {
		t.Errorf("Black(3,3) = false, want true (finder pattern center)")
	}
}

func TestEncodeChoosesSmallestVersion(t *testing.T) {
	code, err := Encode([]byte("hello, world"), M)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// 12 bytes need 4+8+96 = 108 bits; Version 1/M holds 128 data bits.
	if code.Size() != 21 {
		t.Fatalf("Size() = %d, want 21 (Version 1)", code.Size())
	}
}

func TestEncodeMicroRoundTrip(t *testing.T) {
	code, err := EncodeMicro([]byte("123"))
	if err != nil {
		t.Fatalf("EncodeMicro: %v", err)
	}
	if code.Size() < 11 {
		t.Fatalf("Size() = %d, want >= 11", code.Size())
	}
}

func TestEncodeTooLarge(t *testing.T) {
	big := make([]byte, 4000)
	_, err := Encode(big, H)
	if err != ErrTooLarge {
		t.Fatalf("Encode(4000 bytes, H) error = %v, want ErrTooLarge", err)
	}
}

func TestBlackOutOfRangePanics(t *testing.T) {
	code, err := EncodeVersion([]byte("x"), coding.NormalVersion(1), L)
	if err != nil {
		t.Fatalf("EncodeVersion: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for out-of-range coordinate")
		}
	}()
	code.Black(-1, 0)
}
