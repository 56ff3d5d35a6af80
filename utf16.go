// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numlit

import (
	"context"
	"math/big"

	"github.com/shopspring/decimal"
)

// narrow converts a []uint16 window to a []byte window for the grammar
// this package recognizes: every code unit the grammar treats as
// meaningful is ASCII, so an ASCII code unit keeps its value as a byte,
// and every code unit above 0x7f, which is already outside the grammar,
// becomes 0xff and is rejected by the scanner as an invalid character.
func narrow(buf []uint16) []byte {
	out := make([]byte, len(buf))
	for i, c := range buf {
		if c > 0x7f {
			// Pick a narrowed value guaranteed not to collide with a
			// meaningful ASCII byte, so it still scans as an invalid
			// character rather than by accident matching one.
			out[i] = 0xff
			continue
		}
		out[i] = byte(c)
	}
	return out
}

// ParseDoubleUTF16 is ParseDouble over a []uint16 (UTF-16 code unit)
// window, for callers bridging from UTF-16 source text (e.g. JavaScript
// or Java host strings) instead of re-encoding to UTF-8 first.
func ParseDoubleUTF16(buf []uint16, offset, length int) (float64, error) {
	return ParseDouble(narrow(buf), offset, length)
}

// ParseFloatUTF16 is ParseFloat over a []uint16 window.
func ParseFloatUTF16(buf []uint16, offset, length int) (float32, error) {
	return ParseFloat(narrow(buf), offset, length)
}

// ParseJSONNumberUTF16 is ParseJSONNumber over a []uint16 window.
func ParseJSONNumberUTF16(buf []uint16, offset, length int) (float64, error) {
	return ParseJSONNumber(narrow(buf), offset, length)
}

// ParseBigIntLiteralUTF16 is ParseBigIntLiteral over a []uint16 window.
func ParseBigIntLiteralUTF16(buf []uint16, offset, length int, parallel bool) (*big.Int, error) {
	return ParseBigIntLiteralContext(context.Background(), narrow(buf), offset, length, parallel)
}

// ParseBigDecimalLiteralUTF16 is ParseBigDecimalLiteral over a []uint16
// window.
func ParseBigDecimalLiteralUTF16(buf []uint16, offset, length int, parallel bool) (decimal.Decimal, error) {
	return ParseBigDecimalLiteralContext(context.Background(), narrow(buf), offset, length, parallel)
}
