// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numlit

import (
	"strconv"
	"strings"

	"github.com/db47h/numlit/internal/scanner"
)

// ParseDouble parses a float literal from buf[offset:offset+length] and
// returns its nearest float64, using DefaultOracle for the final
// decimal-to-binary rounding step.
//
// The window accepts an optional sign, a decimal or 0x-prefixed hex
// mantissa (a hex mantissa requires a 'p'/'P' binary exponent), an
// optional decimal or binary exponent, an optional 'f'/'F'/'d'/'D' type
// suffix, and optional surrounding whitespace.
func ParseDouble(buf []byte, offset, length int) (float64, error) {
	return ParseDoubleOracle(buf, offset, length, DefaultOracle)
}

// ParseDoubleOracle is ParseDouble with an explicit RoundingOracle.
func ParseDoubleOracle(buf []byte, offset, length int, oracle RoundingOracle) (float64, error) {
	d, err := scanner.Scan(buf, offset, length, scanner.KindFloat)
	if err != nil {
		return 0, wrapScanErr(err)
	}
	if d.IsHex {
		return assembleHexFloat(buf[offset:offset+length], d)
	}
	return assembleFloat(d, oracle)
}

// ParseFloat is ParseDouble's float32 counterpart: it performs the same
// scan and decimal assembly, then narrows DefaultOracle's float64 result.
// The narrowing step is not itself arbitrary-precision-correct for every
// input — a caller needing a float32-correctly-rounded oracle should
// implement RoundingOracle directly and round in the oracle instead.
func ParseFloat(buf []byte, offset, length int) (float32, error) {
	f, err := ParseDouble(buf, offset, length)
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}

// ParseJSONNumber parses a JSON number token (RFC 8259 grammar: no leading
// '+', no leading zero before other integer digits, no hex, no type
// suffix, no surrounding whitespace) and returns its float64 value.
func ParseJSONNumber(buf []byte, offset, length int) (float64, error) {
	d, err := scanner.Scan(buf, offset, length, scanner.KindJSON)
	if err != nil {
		return 0, wrapScanErr(err)
	}
	return assembleFloat(d, DefaultOracle)
}

// assembleFloat implements spec §4.5's float fast paths: the packed
// significand is exact when digit_count <= 19, in which case the oracle is
// called directly; otherwise the scanner's own truncated-prefix tracking
// (SignificandTruncated/TruncatedExponent) feeds the oracle's truncated
// form instead.
func assembleFloat(d scanner.Descriptor, oracle RoundingOracle) (float64, error) {
	exp := d.Exponent
	if d.SignificandTruncated {
		exp = d.TruncatedExponent
	}
	f, _ := oracle.Round(d.Negative, d.PackedSignificand, d.Exponent, d.SignificandTruncated, exp)
	return f, nil
}

// assembleHexFloat handles the hex-mantissa/binary-exponent path: rather
// than force a hex significand through the decimal RoundingOracle (whose
// contract is decimal significand/exponent), it reconstructs the
// already-validated hex float text and lets strconv.ParseFloat — which
// accepts Go's own "0x1.8p3" hex float syntax — do the binary-exact
// conversion directly. The scanner has already rejected anything
// strconv.ParseFloat itself wouldn't accept, so this never fails on a
// syntax error; it can still report ErrRange for magnitudes outside a
// float64, in which case strconv's own saturated ±Inf/0 result is used.
func assembleHexFloat(window []byte, d scanner.Descriptor) (float64, error) {
	var sb strings.Builder
	if d.Negative {
		sb.WriteByte('-')
	}
	sb.WriteString("0x")
	sb.Write(window[d.IntegerStart:d.IntegerEnd])
	if d.DecimalPointIndex != d.IntegerEnd {
		sb.WriteByte('.')
		sb.Write(window[d.FractionStart:d.FractionEnd])
	}
	sb.WriteByte('p')
	sb.WriteString(strconv.FormatInt(d.ExplicitExponent, 10))
	f, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil {
		if _, ok := err.(*strconv.NumError); ok {
			return f, nil
		}
		return 0, err
	}
	return f, nil
}
