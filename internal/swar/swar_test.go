// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swar

import (
	"fmt"
	"math/rand"
	"testing"
)

func TestParseDecimal8(t *testing.T) {
	for i := 0; i < 100000; i++ {
		n := rand.Intn(100_000_000)
		s := []byte(fmt.Sprintf("%08d", n))
		v, ok := ParseDecimal8(s)
		if !ok {
			t.Fatalf("ParseDecimal8(%q) reported invalid", s)
		}
		if v != uint32(n) {
			t.Fatalf("ParseDecimal8(%q) = %d; want %d", s, v, n)
		}
	}
}

func TestParseDecimal8Invalid(t *testing.T) {
	cases := []string{"1234567a", "1234.678", "-1234567", "1234 678"}
	for _, s := range cases {
		if _, ok := ParseDecimal8([]byte(s)); ok {
			t.Errorf("ParseDecimal8(%q) reported valid, want invalid", s)
		}
	}
}

func TestValidateDecimal8AllBytes(t *testing.T) {
	for b := 0; b < 256; b++ {
		buf := []byte{byte(b), '0', '0', '0', '0', '0', '0', '0'}
		want := byte(b) >= '0' && byte(b) <= '9'
		if got := ValidateDecimal8(buf); got != want {
			t.Errorf("ValidateDecimal8 with lead byte %#x = %v; want %v", b, got, want)
		}
	}
}

func TestIsEightZeros(t *testing.T) {
	if !IsEightZeros([]byte("00000000")) {
		t.Error("IsEightZeros(00000000) = false; want true")
	}
	if IsEightZeros([]byte("00000001")) {
		t.Error("IsEightZeros(00000001) = true; want false")
	}
}

func TestParseDecimalN(t *testing.T) {
	wants := []uint64{0, 1, 12, 123, 1234, 12345, 123456, 1234567, 12345678}
	for n := 0; n <= 8; n++ {
		s := "12345678"[:n]
		v, ok := ParseDecimalN([]byte(s), n)
		if !ok {
			t.Fatalf("ParseDecimalN(%q, %d) reported invalid", s, n)
		}
		if v != wants[n] {
			t.Fatalf("ParseDecimalN(%q, %d) = %d; want %d", s, n, v, wants[n])
		}
	}
}

func TestParseHex8(t *testing.T) {
	v, ok := ParseHex8([]byte("1fffffff"))
	if !ok || v != 0x1fffffff {
		t.Fatalf("ParseHex8(1fffffff) = %#x, %v; want 0x1fffffff, true", v, ok)
	}
	if _, ok := ParseHex8([]byte("1fffffg0")); ok {
		t.Fatal("ParseHex8(1fffffg0) reported valid")
	}
}

func TestU16Parity(t *testing.T) {
	for i := 0; i < 10000; i++ {
		n := rand.Intn(100_000_000)
		s := fmt.Sprintf("%08d", n)
		var u16 [8]uint16
		for j, c := range s {
			u16[j] = uint16(c)
		}
		v8, ok8 := ParseDecimal8([]byte(s))
		v16, ok16 := ParseDecimal8U16(u16[:])
		if ok8 != ok16 || v8 != v16 {
			t.Fatalf("byte/uint16 mismatch for %q: (%d,%v) vs (%d,%v)", s, v8, ok8, v16, ok16)
		}
	}
}
