// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package digitparse converts a contiguous range of ASCII digits into a
// *big.Int using three execution regimes selected by input length: an
// inline packed-long path for short runs, an iterative BigSignificand
// accumulator for medium runs, and a divide-and-conquer recursive or
// parallel path — keyed on the internal/powers cache — for long runs.
//
// The three regimes are grounded on the teacher package's own dec
// conversion pipeline (dec_conv.go's scan, which also collects digits in
// word-sized groups via mulAddWW) but generalized with an explicit
// recursive/parallel divide step, per the spec's three-regime design.
package digitparse

import (
	"context"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/db47h/numlit/internal/bigsig"
	"github.com/db47h/numlit/internal/powers"
	"github.com/db47h/numlit/internal/swar"
)

// Regime identifies which of the three execution strategies handled a
// given call; exposed for tests and diagnostics.
type Regime byte

const (
	PackedLong Regime = iota
	Iterative
	Recursive
	Parallel
)

//go:generate stringer -type=Regime

// Thresholds, per spec §6. Callers may override ParallelThreshold per call;
// PackedLongThreshold and RecursionThreshold are structural (they match the
// width of the fast accumulator types) and are not meant to be tuned.
const (
	PackedLongThreshold      = 18
	RecursionThreshold       = 128
	DefaultParallelThreshold = 1024
)

// SelectRegime reports which regime Parse would use for a range of length
// n, given parallelThreshold.
func SelectRegime(n, parallelThreshold int) Regime {
	switch {
	case n <= PackedLongThreshold:
		return PackedLong
	case n <= RecursionThreshold:
		return Iterative
	case parallelThreshold <= 0 || n < parallelThreshold:
		return Recursive
	default:
		return Parallel
	}
}

// Parse converts the ASCII decimal digits in buf[from:to) to a *big.Int.
// The caller guarantees every byte in that range is an ASCII digit. cache
// may be nil for inputs that never reach the recursive/parallel regime; it
// is lazily allocated otherwise. parallelThreshold <= 0 disables the
// parallel regime (equivalent to an infinite threshold).
func Parse(buf []byte, from, to int, cache *powers.Cache, parallelThreshold int) *big.Int {
	v, _ := ParseContext(context.Background(), buf, from, to, cache, parallelThreshold)
	return v
}

// ParseContext is like Parse but passes ctx down to the parallel regime's
// fork-join tasks. The parse does not check ctx for cancellation; it runs
// to completion.
func ParseContext(ctx context.Context, buf []byte, from, to int, cache *powers.Cache, parallelThreshold int) (*big.Int, error) {
	n := to - from
	if parallelThreshold <= 0 {
		parallelThreshold = int(^uint(0) >> 1) // effectively infinite: "sequential" mode
	}
	switch SelectRegime(n, parallelThreshold) {
	case PackedLong:
		return parsePackedLong(buf, from, to), nil
	case Iterative:
		return parseIterative(buf, from, to), nil
	case Recursive:
		return parseRecursive(ctx, buf, from, to, cache, parallelThreshold)
	default:
		return parseParallel(ctx, buf, from, to, cache, parallelThreshold)
	}
}

func parsePackedLong(buf []byte, from, to int) *big.Int {
	n := to - from
	preroll := n % swar.Len8
	v, _ := swar.ParseDecimalN(buf[from:from+preroll], preroll)
	for i := from + preroll; i < to; i += swar.Len8 {
		g, _ := swar.ParseDecimal8(buf[i : i+swar.Len8])
		v = v*100_000_000 + uint64(g)
	}
	return new(big.Int).SetUint64(v)
}

func parseIterative(buf []byte, from, to int) *big.Int {
	n := to - from
	acc := bigsig.New(uint32(bigsig.EstimateNumBits(uint64(n))))
	preroll := n % swar.Len8
	if preroll > 0 {
		v, _ := swar.ParseDecimalN(buf[from:from+preroll], preroll)
		acc.AddSmall(uint32(v))
	}
	for i := from + preroll; i < to; i += swar.Len8 {
		g, _ := swar.ParseDecimal8(buf[i : i+swar.Len8])
		acc.FMASmall(100_000_000, g)
	}
	return acc.ToBigInt()
}

func parseRecursive(ctx context.Context, buf []byte, from, to int, cache *powers.Cache, parallelThreshold int) (*big.Int, error) {
	if cache == nil {
		cache = powers.NewCache()
	}
	mid := int(powers.SplitFloor16(int64(from), int64(to)))
	p := cache.Pow(int64(to - mid))
	high, err := ParseContext(ctx, buf, from, mid, cache, parallelThreshold)
	if err != nil {
		return nil, err
	}
	low, err := ParseContext(ctx, buf, mid, to, cache, parallelThreshold)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Add(new(big.Int).Mul(high, p), low), nil
}

// parseParallel mirrors parseRecursive's structure but submits the high
// (left) subtree to the errgroup's goroutine pool while computing the low
// (right) subtree locally, joining before combining — the fork-join
// schedule of spec §4.4's parallel regime, realized over Go's own
// work-stealing goroutine scheduler rather than a bespoke pool.
func parseParallel(ctx context.Context, buf []byte, from, to int, cache *powers.Cache, parallelThreshold int) (*big.Int, error) {
	if cache == nil {
		cache = powers.NewCache()
	}
	mid := int(powers.SplitFloor16(int64(from), int64(to)))
	p, err := cache.PowParallel(ctx, int64(to-mid), int64(parallelThreshold))
	if err != nil {
		return nil, err
	}

	var high *big.Int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := ParseContext(gctx, buf, from, mid, cache, parallelThreshold)
		high = v
		return err
	})

	low, err := ParseContext(gctx, buf, mid, to, cache, parallelThreshold)
	if err != nil {
		return nil, err
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return new(big.Int).Add(new(big.Int).Mul(high, p), low), nil
}
