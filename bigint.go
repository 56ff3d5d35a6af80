// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numlit

import (
	"context"
	"math/big"

	"github.com/db47h/numlit/internal/assemble"
	"github.com/db47h/numlit/internal/scanner"
)

// ParseBigIntLiteral parses a decimal or 0x-prefixed hex integer literal
// with an optional leading sign from buf[offset:offset+length] into an
// exact *big.Int. parallel selects whether the digit-range parser and the
// powers-of-ten pre-fill may fork subtrees onto the work-stealing pool for
// windows long enough to benefit; false is equivalent to an infinite
// parallel threshold.
func ParseBigIntLiteral(buf []byte, offset, length int, parallel bool) (*big.Int, error) {
	return ParseBigIntLiteralContext(context.Background(), buf, offset, length, parallel)
}

// ParseBigIntLiteralContext is ParseBigIntLiteral with a context that is
// passed down to the parallel regime. The parse does not check the context
// for cancellation; it runs to completion.
func ParseBigIntLiteralContext(ctx context.Context, buf []byte, offset, length int, parallel bool) (*big.Int, error) {
	d, err := scanner.Scan(buf, offset, length, scanner.KindBigInt)
	if err != nil {
		return nil, wrapScanErr(err)
	}
	window := buf[offset : offset+length]
	if d.IsHex {
		v, err := assemble.BigIntHex(window, d.IntegerSignificantStart, d.IntegerEnd, d.Negative)
		if err != nil {
			return nil, wrapScanErr(err)
		}
		return v, nil
	}
	v, err := assemble.BigIntDecimal(ctx, window, d.IntegerSignificantStart, d.IntegerEnd, d.Negative, parallel)
	if err != nil {
		return nil, wrapScanErr(err)
	}
	return v, nil
}
