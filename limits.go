// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numlit

import (
	"github.com/db47h/numlit/internal/digitparse"
	"github.com/db47h/numlit/internal/scanner"
)

// Grammar constants, exposed for callers that need to reason about limits
// ahead of a call (e.g. a caller streaming very large literals from disk).
const (
	// MaxInputLength is the ceiling on a scan window's length.
	MaxInputLength = scanner.MaxInputLength

	// MaxDecimalDigits bounds digit_count for ParseBigIntLiteral.
	MaxDecimalDigits = scanner.MaxDecimalDigits

	// MaxDigitCount bounds digit_count for ParseBigDecimalLiteral.
	MaxDigitCount = scanner.MaxDigitCount

	// MaxExponentNumber is the cap on exponent-magnitude accumulation.
	MaxExponentNumber = scanner.MaxExponentNumber

	// RecursionThreshold is the digit-range length above which the
	// digit-range parser switches from the iterative accumulator to the
	// recursive divide-and-conquer regime.
	RecursionThreshold = digitparse.RecursionThreshold

	// DefaultParallelThreshold is the digit-range length at or above which the
	// digit-range parser forks subtrees onto the work-stealing pool when
	// the caller requests parallel parsing.
	DefaultParallelThreshold = digitparse.DefaultParallelThreshold

	// ManyDigitsThreshold is the remaining window length at or above which
	// the scanner skips leading-zero runs eight at a time rather than byte
	// by byte.
	ManyDigitsThreshold = scanner.ManyDigitsThreshold
)
