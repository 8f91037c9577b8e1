// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command qrgen encodes its argument (or stdin, if no argument is given)
// into a QR Code or Micro QR Code and prints the result as a PBM image on
// stdout.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/klotza/qrenc"
)

var (
	micro = flag.Bool("micro", false, "encode a Micro QR Code instead of a Normal QR Code")
	level = flag.String("level", "M", "error-correction level: L, M, Q, or H")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("qrgen: ")
	flag.Parse()

	data, err := readInput()
	if err != nil {
		log.Fatal(err)
	}

	lvl, err := parseLevel(*level)
	if err != nil {
		log.Fatal(err)
	}

	var code *qr.Code
	if *micro {
		code, err = qr.EncodeMicro(data)
	} else {
		code, err = qr.Encode(data, lvl)
	}
	if err != nil {
		log.Fatal(err)
	}

	if err := writePBM(os.Stdout, code); err != nil {
		log.Fatal(err)
	}
}

func readInput() ([]byte, error) {
	if flag.NArg() > 0 {
		return []byte(flag.Arg(0)), nil
	}
	return io.ReadAll(os.Stdin)
}

func parseLevel(s string) (qr.Level, error) {
	switch s {
	case "L":
		return qr.L, nil
	case "M":
		return qr.M, nil
	case "Q":
		return qr.Q, nil
	case "H":
		return qr.H, nil
	default:
		return 0, fmt.Errorf("invalid level %q", s)
	}
}

func writePBM(w io.Writer, code *qr.Code) error {
	bw := bufio.NewWriter(w)
	size := code.Size()
	fmt.Fprintf(bw, "P1\n%d %d\n", size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			if code.Black(x, y) {
				bw.WriteByte('1')
			} else {
				bw.WriteByte('0')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
