// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "testing"

func TestAddCheckBytesProducesTotalCapacity(t *testing.T) {
	v := NormalVersion(1)
	l := Q
	var b Bits
	Bytes("01234567").Encode(&b, v)
	b.AddCheckBytes(v, l)

	want := TotalBytes(v, l)
	if got := len(b.Bytes()); got != want {
		t.Fatalf("got %d total codeword bytes, want %d", got, want)
	}
}

func TestAddCheckBytesTwoBlockGroups(t *testing.T) {
	// Version 5 level Q splits into two block groups of different sizes
	// (15,2)+(16,2); exercise the interleaving path that touches both.
	v := NormalVersion(5)
	l := Q
	layout := Layout(v, int(l))
	if layout.block1Count == 0 || layout.block2Count == 0 {
		t.Fatalf("expected two block groups for Version 5/Q, got layout %+v", layout)
	}

	var b Bits
	data := make([]byte, layout.dataBytes())
	for i := range data {
		data[i] = byte(i)
	}
	b.Append(data)
	b.AddCheckBytes(v, l)

	if got, want := len(b.Bytes()), TotalBytes(v, l); got != want {
		t.Fatalf("got %d bytes, want %d", got, want)
	}
}

func TestAddCheckBytesPanicsOnOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for oversized payload")
		}
	}()
	v := NormalVersion(1)
	var b Bits
	data := make([]byte, DataBytes(v, L)+10)
	Bytes(data).Encode(&b, v)
	b.AddCheckBytes(v, L)
}
