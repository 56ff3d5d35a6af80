// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assemble turns a scanner.Descriptor's digit ranges into the final
// arbitrary-precision values: it is the glue between the syntactic scanner,
// the digit-range parser, and the powers-of-ten cache, grounded on the
// exponent-combining arithmetic of the teacher package's Decimal.scan
// (decimal_conv.go), generalized here to the big.Int-and-exponent shape
// BigInteger/BigDecimal need instead of the teacher's normalized-mantissa
// Decimal form.
package assemble

import (
	"context"
	"math/big"

	"github.com/db47h/numlit/internal/digitparse"
	"github.com/db47h/numlit/internal/powers"
	"github.com/db47h/numlit/internal/scanner"
	"github.com/db47h/numlit/internal/swar"
)

// newCache allocates and prefills (concurrently when parallel is set) a
// powers.Cache for the digit ranges [from0,to0) and [from1,to1). A nil cache
// is returned when neither range is long enough to ever consult it, so
// callers on the packed-long/iterative fast paths never pay for one.
func newCache(ctx context.Context, from0, to0, from1, to1 int, parallel bool, parallelThreshold int) (*powers.Cache, error) {
	n0, n1 := to0-from0, to1-from1
	if n0 <= digitparse.RecursionThreshold && n1 <= digitparse.RecursionThreshold {
		return nil, nil
	}
	cache := powers.NewCache()
	if !parallel {
		cache.Fill(int64(from0), int64(to0), digitparse.RecursionThreshold)
		cache.Fill(int64(from1), int64(to1), digitparse.RecursionThreshold)
		return cache, nil
	}
	if err := cache.FillParallel(ctx, int64(from0), int64(to0), digitparse.RecursionThreshold, int64(parallelThreshold)); err != nil {
		return nil, err
	}
	if err := cache.FillParallel(ctx, int64(from1), int64(to1), digitparse.RecursionThreshold, int64(parallelThreshold)); err != nil {
		return nil, err
	}
	return cache, nil
}

// BigIntDecimal converts a scanned decimal integer digit range to a *big.Int,
// applying sign. parallel selects the fork-join digit-range regime for
// windows long enough to use it.
func BigIntDecimal(ctx context.Context, buf []byte, from, to int, negative bool, parallel bool) (*big.Int, error) {
	threshold := digitparse.DefaultParallelThreshold
	if !parallel {
		threshold = 0
	}
	cache, err := newCache(ctx, from, to, from, to, parallel, threshold)
	if err != nil {
		return nil, err
	}
	v, err := digitparse.ParseContext(ctx, buf, from, to, cache, threshold)
	if err != nil {
		return nil, err
	}
	if negative {
		v.Neg(v)
	}
	return v, nil
}

// BigIntHex converts a scanned hex integer digit range directly to a *big.Int
// by packing groups of 8 hex digits into bytes via swar.ParseHex8 and letting
// big.Int.SetBytes interpret the result as a big-endian magnitude. Unlike the
// decimal path this needs neither digitparse nor the powers cache: base-16
// text is already an exact bit-grouping of the binary representation.
func BigIntHex(buf []byte, from, to int, negative bool) (*big.Int, error) {
	n := to - from
	out := make([]byte, 0, (n+1)/2)
	i := from
	if n%2 == 1 {
		d, ok := swar.HexNibble(buf[i])
		if !ok {
			return nil, &scanner.Error{Kind: scanner.ErrBadChar, Offset: i, Msg: "invalid hex digit"}
		}
		out = append(out, d)
		i++
	}
	for to-i >= swar.Len8 {
		v, ok := swar.ParseHex8(buf[i : i+swar.Len8])
		if !ok {
			return nil, &scanner.Error{Kind: scanner.ErrBadChar, Offset: i, Msg: "invalid hex digit"}
		}
		out = append(out, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
		i += swar.Len8
	}
	for i < to {
		hi, ok := swar.HexNibble(buf[i])
		if !ok {
			return nil, &scanner.Error{Kind: scanner.ErrBadChar, Offset: i, Msg: "invalid hex digit"}
		}
		lo, ok := swar.HexNibble(buf[i+1])
		if !ok {
			return nil, &scanner.Error{Kind: scanner.ErrBadChar, Offset: i + 1, Msg: "invalid hex digit"}
		}
		out = append(out, hi<<4|lo)
		i += 2
	}
	v := new(big.Int).SetBytes(out)
	if negative {
		v.Neg(v)
	}
	return v, nil
}

// BigDecimalParts is the (unscaled, exponent) pair a shopspring/decimal.Decimal
// is built from: value = unscaled * 10^exponent.
type BigDecimalParts struct {
	Unscaled *big.Int
	Exponent int32
}

// BigDecimal combines a descriptor's integer and fraction digit ranges into
// the (unscaled, exponent) pair backing a BigDecimal: the concatenation of
// the integer and fraction digits, as an integer, scaled by d.Exponent. This
// mirrors decimal_conv.go's exp10 accumulation (radix point shifts the
// exponent by the fractional digit count) without that file's extra
// mantissa-normalization step, which BigDecimal's external representation
// doesn't need.
func BigDecimal(ctx context.Context, buf []byte, d scanner.Descriptor, parallel bool) (BigDecimalParts, error) {
	threshold := digitparse.DefaultParallelThreshold
	if !parallel {
		threshold = 0
	}
	cache, err := newCache(ctx, d.IntegerStart, d.IntegerEnd, d.FractionStart, d.FractionEnd, parallel, threshold)
	if err != nil {
		return BigDecimalParts{}, err
	}
	intVal, err := digitparse.ParseContext(ctx, buf, d.IntegerStart, d.IntegerEnd, cache, threshold)
	if err != nil {
		return BigDecimalParts{}, err
	}
	fracVal, err := digitparse.ParseContext(ctx, buf, d.FractionStart, d.FractionEnd, cache, threshold)
	if err != nil {
		return BigDecimalParts{}, err
	}
	fracLen := int64(d.FractionEnd - d.FractionStart)
	if cache == nil {
		cache = powers.NewCache()
	}
	// Pow only takes multiples of 16 above SeedMax, so 10^fracLen is the
	// product of a multiple-of-16 power and a seed-table power.
	hi, lo := fracLen&^15, fracLen&15
	var scale *big.Int
	if parallel {
		scale, err = cache.PowParallel(ctx, hi, int64(threshold))
		if err != nil {
			return BigDecimalParts{}, err
		}
	} else {
		scale = cache.Pow(hi)
	}
	scale = new(big.Int).Mul(scale, cache.Pow(lo))
	unscaled := new(big.Int).Mul(intVal, scale)
	unscaled.Add(unscaled, fracVal)
	if d.Negative {
		unscaled.Neg(unscaled)
	}
	return BigDecimalParts{Unscaled: unscaled, Exponent: int32(d.Exponent)}, nil
}
