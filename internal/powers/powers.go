// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package powers implements the powers-of-ten cache used by the recursive
// and parallel regimes of the digit-range parser: an ordered map from
// exponent (a non-negative multiple of 16) to the exact bigint 10^exponent.
//
// The cache plays the role the teacher package's pow10tab (arith_dec.go,
// dec_arith.go) plays for small, fixed powers of ten, generalized to
// arbitrarily large exponents via a divide-and-conquer squaring schedule
// instead of a literal table, and made safe for concurrent population via
// golang.org/x/sync/errgroup fork-join tasks (the pack carries no
// dedicated worker-pool library; errgroup is the idiomatic Go stand-in for
// the fork-join work-stealing pool the spec calls for).
package powers

import (
	"context"
	"math/big"
	"sync"

	"golang.org/x/sync/errgroup"
)

// SeedMax is the largest exponent directly available from the constant
// seed table (10^0 .. 10^SeedMax); every other cached power is derived
// from it by recursive squaring/combining.
const SeedMax = 16

var seedTable [SeedMax + 1]*big.Int

func init() {
	ten := big.NewInt(10)
	p := big.NewInt(1)
	for i := 0; i <= SeedMax; i++ {
		seedTable[i] = new(big.Int).Set(p)
		p.Mul(p, ten)
	}
}

// SplitFloor16 implements the range-midpoint rule
//
//	mid = to - ((to-from+1)/2 rounded down to a multiple of 16)
//
// so that the right half [mid, to) always has a length that is a multiple
// of 16, guaranteeing that every power of ten the divide-and-conquer
// schedule ever needs has an exponent that is a cache key.
func SplitFloor16(from, to int64) int64 {
	half := (to - from + 1) / 2
	half -= half % 16
	return to - half
}

// NeededKeys returns the powers-of-ten cache keys a recursive or parallel
// parse of digit range [from, to) will consult, given that sub-ranges of
// length <= belowThreshold are handled by the iterative path and never
// touch the cache. Order is root-first, matching the order the parser
// itself will request them in.
func NeededKeys(from, to, belowThreshold int64) []int64 {
	n := to - from
	if n <= belowThreshold {
		return nil
	}
	mid := SplitFloor16(from, to)
	keys := []int64{to - mid}
	keys = append(keys, NeededKeys(from, mid, belowThreshold)...)
	keys = append(keys, NeededKeys(mid, to, belowThreshold)...)
	return keys
}

// Cache is an ordered map exp -> 10^exp, keyed on non-negative multiples
// of 16, safe for concurrent population: independent writers that derive
// the same key always compute the same value (the split schedule is
// deterministic), so inserts are idempotent and only need to be
// serialized against each other, not reconciled.
type Cache struct {
	mu sync.Mutex
	m  map[int64]*big.Int
}

// NewCache returns an empty cache ready for use.
func NewCache() *Cache {
	return &Cache{m: make(map[int64]*big.Int)}
}

// Get returns the cached value for key, if present.
func (c *Cache) Get(key int64) (*big.Int, bool) {
	c.mu.Lock()
	v, ok := c.m[key]
	c.mu.Unlock()
	return v, ok
}

func (c *Cache) set(key int64, v *big.Int) *big.Int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.m[key]; ok {
		return existing
	}
	c.m[key] = v
	return v
}

// Pow returns 10^exp, computing and caching it (and any multiple-of-16
// sub-exponents needed along the way) if necessary. exp must be a
// non-negative multiple of 16, or <= SeedMax.
func (c *Cache) Pow(exp int64) *big.Int {
	if exp <= SeedMax {
		return seedTable[exp]
	}
	if v, ok := c.Get(exp); ok {
		return v
	}
	mid := SplitFloor16(0, exp)
	left := c.Pow(mid)
	right := c.Pow(exp - mid)
	return c.set(exp, new(big.Int).Mul(left, right))
}

// PowParallel is like Pow but forks the two halves of the split across
// goroutines (joined before combining) once exp exceeds parallelThreshold,
// letting the Go scheduler's work-stealing distribute the subtree across
// available Ps. Below parallelThreshold it falls back to the sequential
// schedule.
func (c *Cache) PowParallel(ctx context.Context, exp, parallelThreshold int64) (*big.Int, error) {
	if exp <= SeedMax {
		return seedTable[exp], nil
	}
	if v, ok := c.Get(exp); ok {
		return v, nil
	}
	if exp <= parallelThreshold {
		return c.Pow(exp), nil
	}
	mid := SplitFloor16(0, exp)
	var left, right *big.Int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := c.PowParallel(gctx, mid, parallelThreshold)
		left = v
		return err
	})
	g.Go(func() error {
		v, err := c.PowParallel(gctx, exp-mid, parallelThreshold)
		right = v
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return c.set(exp, new(big.Int).Mul(left, right)), nil
}

// Fill populates the cache with every key needed to parse digit range
// [from, to) given the iterative-path cutoff belowThreshold.
func (c *Cache) Fill(from, to, belowThreshold int64) {
	for _, key := range NeededKeys(from, to, belowThreshold) {
		c.Pow(key)
	}
}

// FillParallel is like Fill, but computes independent keys concurrently
// and forks each key's own split schedule past parallelThreshold.
func (c *Cache) FillParallel(ctx context.Context, from, to, belowThreshold, parallelThreshold int64) error {
	keys := NeededKeys(from, to, belowThreshold)
	g, gctx := errgroup.WithContext(ctx)
	for _, key := range keys {
		key := key
		g.Go(func() error {
			_, err := c.PowParallel(gctx, key, parallelThreshold)
			return err
		})
	}
	return g.Wait()
}
