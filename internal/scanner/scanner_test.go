// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

import "testing"

func TestScanFloatBasic(t *testing.T) {
	d, err := Scan([]byte("1.2e3"), 0, 5, KindFloat)
	if err != nil {
		t.Fatal(err)
	}
	if d.Negative || d.IsHex {
		t.Fatal("unexpected sign/hex flags")
	}
	if d.PackedSignificand != 12 || d.SignificandTruncated {
		t.Fatalf("got packed significand %d truncated=%v; want 12 false", d.PackedSignificand, d.SignificandTruncated)
	}
	if d.Exponent != 2 {
		t.Fatalf("got exponent %d; want 2 (12 * 10^2 = 1200)", d.Exponent)
	}
}

func TestScanFloatWhitespace(t *testing.T) {
	s := " 1.2e3  "
	if _, err := Scan([]byte(s), 0, len(s), KindFloat); err != nil {
		t.Fatalf("KindFloat should accept surrounding whitespace: %v", err)
	}
	if _, err := Scan([]byte(s), 0, len(s), KindJSON); err == nil {
		t.Fatal("KindJSON must reject surrounding whitespace")
	}
}

func TestScanHexFloat(t *testing.T) {
	d, err := Scan([]byte("0x1.0p8"), 0, 7, KindFloat)
	if err != nil {
		t.Fatal(err)
	}
	if !d.IsHex || !d.BinaryExponent || d.ExplicitExponent != 8 {
		t.Fatalf("got %+v", d)
	}
}

func TestScanBigIntDecimal(t *testing.T) {
	s := "123456789012345678901234567890"
	d, err := Scan([]byte(s), 0, len(s), KindBigInt)
	if err != nil {
		t.Fatal(err)
	}
	if d.IntegerEnd-d.IntegerStart != len(s) {
		t.Fatalf("got integer range %d..%d; want full string", d.IntegerStart, d.IntegerEnd)
	}
}

func TestScanBigIntHex(t *testing.T) {
	d, err := Scan([]byte("0xFF"), 0, 4, KindBigInt)
	if err != nil {
		t.Fatal(err)
	}
	if !d.IsHex || d.IntegerEnd-d.IntegerStart != 2 {
		t.Fatalf("got %+v", d)
	}
}

func TestScanBigDecimalLeadingZeroFraction(t *testing.T) {
	s := "0.0000000000000000000000000000000000000001"
	d, err := Scan([]byte(s), 0, len(s), KindBigDecimal)
	if err != nil {
		t.Fatal(err)
	}
	if d.DigitCount != 1 {
		t.Fatalf("got DigitCount %d; want 1", d.DigitCount)
	}
	fracLen := int64(len(s) - 2) // everything after "0."
	if d.Exponent != -fracLen {
		t.Fatalf("got Exponent %d; want %d", d.Exponent, -fracLen)
	}
}

func TestBoundaryCases(t *testing.T) {
	cases := []struct {
		s    string
		kind Kind
		ok   bool
	}{
		{"", KindFloat, false},
		{"3e", KindFloat, false},
		{"3e+", KindFloat, false},
		{".", KindFloat, false},
		{"0x", KindBigInt, false},
		{"0x3.", KindFloat, false},
		{"007", KindBigInt, true},
		{"+0", KindBigInt, true},
		{"-0", KindBigInt, true},
		{"00", KindJSON, false},
		{"0", KindJSON, true},
		{"-0", KindJSON, true},
		{"+0", KindJSON, false},
	}
	for _, c := range cases {
		_, err := Scan([]byte(c.s), 0, len(c.s), c.kind)
		if (err == nil) != c.ok {
			t.Errorf("Scan(%q, kind=%v): err=%v, want ok=%v", c.s, c.kind, err, c.ok)
		}
	}
}

func TestIllegalWindow(t *testing.T) {
	buf := []byte("123")
	if _, err := Scan(buf, 0, 10, KindBigInt); err == nil {
		t.Fatal("expected illegal window error")
	} else if se, ok := err.(*Error); !ok || se.Kind != ErrIllegalWindow {
		t.Fatalf("got %v; want ErrIllegalWindow", err)
	}
	if _, err := Scan(buf, 5, 1, KindBigInt); err == nil {
		t.Fatal("expected illegal window error for out-of-range offset")
	}
}

func TestNonASCIIInsideDigits(t *testing.T) {
	s := "12345678901234567890£" // trailing pound sign
	if _, err := Scan([]byte(s), 0, len(s), KindBigInt); err == nil {
		t.Fatal("expected syntax error for non-ASCII trailing byte")
	}
}
