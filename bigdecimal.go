// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numlit

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/db47h/numlit/internal/assemble"
	"github.com/db47h/numlit/internal/scanner"
)

// ParseBigDecimalLiteral parses a decimal literal (optional sign, decimal
// mantissa, decimal exponent; no hex, no type suffix) from
// buf[offset:offset+length] into a shopspring/decimal.Decimal, which is
// exactly the (unscaled_integer, scale) external representation spec §3
// assumes. parallel has the same meaning as in ParseBigIntLiteral.
func ParseBigDecimalLiteral(buf []byte, offset, length int, parallel bool) (decimal.Decimal, error) {
	return ParseBigDecimalLiteralContext(context.Background(), buf, offset, length, parallel)
}

// ParseBigDecimalLiteralContext is ParseBigDecimalLiteral with an explicit
// context, propagated into the parallel digit-range parser and powers
// pre-fill.
func ParseBigDecimalLiteralContext(ctx context.Context, buf []byte, offset, length int, parallel bool) (decimal.Decimal, error) {
	d, err := scanner.Scan(buf, offset, length, scanner.KindBigDecimal)
	if err != nil {
		return decimal.Decimal{}, wrapScanErr(err)
	}
	window := buf[offset : offset+length]
	parts, err := assemble.BigDecimal(ctx, window, d, parallel)
	if err != nil {
		return decimal.Decimal{}, wrapScanErr(err)
	}
	return decimal.NewFromBigInt(parts.Unscaled, parts.Exponent), nil
}
