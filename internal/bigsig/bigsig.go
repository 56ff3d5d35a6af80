// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigsig implements BigSignificand, a fixed-capacity, in-place
// mutable unsigned integer used by the iterative digit-range parser to
// accumulate a significand without allocating a new big.Int per digit
// group.
//
// It plays the role the teacher package's own dec (math/big.nat-alike,
// §dec.go) plays for decimal-base arithmetic, but over 32-bit limbs in
// plain base 2^32 rather than base 10^9/10^19 — the spec's BigSignificand
// must ultimately reinterpret its limbs as the two's-complement byte
// representation of a binary big.Int, which only works cleanly in a
// binary base.
package bigsig

import "math/big"

// Significand is a fixed-capacity mutable unsigned integer stored as
// 32-bit limbs, most-significant limb at index 0. It never allocates after
// construction; writing past its reserved capacity is a programmer error
// and panics rather than silently truncating, consistent with the spec's
// "programmer error" treatment of accumulator overflow.
type Significand struct {
	limbs        []uint32
	firstNonzero int // limbs[i] == 0 for all i < firstNonzero
}

// New reserves a Significand with capacity for at least bits bits, per
// num_limbs = ceil(bits/64) * 2, i.e. bits rounded up to a whole number of
// 64-bit words. bits must be > 0.
func New(bits uint32) *Significand {
	if bits == 0 {
		panic("bigsig: bit capacity must be > 0")
	}
	numLimbs := 2 * int((uint64(bits)+63)/64)
	s := &Significand{
		limbs:        make([]uint32, numLimbs),
		firstNonzero: numLimbs,
	}
	return s
}

// EstimateNumBits returns an upper bound on n*log2(10) for use sizing a
// Significand ahead of parsing n decimal digits: (n*3402)>>10 + 1.
func EstimateNumBits(n uint64) uint64 {
	return (n*3402)>>10 + 1
}

// Reset clears s back to the value 0 without releasing its backing array.
func (s *Significand) Reset() {
	for i := range s.limbs {
		s.limbs[i] = 0
	}
	s.firstNonzero = len(s.limbs)
}

// IsZero reports whether s currently holds the value 0.
func (s *Significand) IsZero() bool {
	for _, w := range s.limbs[s.firstNonzero:] {
		if w != 0 {
			return false
		}
	}
	return true
}

// MulSmall multiplies s in place by the unsigned 32-bit k.
func (s *Significand) MulSmall(k uint32) {
	s.fma(k, 0)
}

// FMASmall multiplies s in place by k and adds addend, i.e.
// s = s*k + addend, in a single pass. Equivalent to MulSmall(k) followed
// by AddSmall(addend) but performed with one initial carry instead of two
// passes.
func (s *Significand) FMASmall(k, addend uint32) {
	s.fma(k, addend)
}

func (s *Significand) fma(k, addend uint32) {
	limbs := s.limbs
	carry := uint64(addend)
	for i := len(limbs) - 1; i >= s.firstNonzero; i-- {
		prod := uint64(k)*uint64(limbs[i]) + carry
		limbs[i] = uint32(prod)
		carry = prod >> 32
	}
	for carry != 0 {
		idx := s.firstNonzero - 1
		if idx < 0 {
			panic("bigsig: capacity exceeded")
		}
		limbs[idx] = uint32(carry)
		carry = 0
		s.firstNonzero = idx
	}
}

// AddSmall adds the unsigned 32-bit v to s in place.
func (s *Significand) AddSmall(v uint32) {
	limbs := s.limbs
	i := len(limbs) - 1
	carry := uint64(v)
	for carry != 0 {
		if i < 0 {
			panic("bigsig: capacity exceeded")
		}
		sum := uint64(limbs[i]) + carry
		limbs[i] = uint32(sum)
		carry = sum >> 32
		i--
	}
	if touched := i + 1; touched < s.firstNonzero {
		s.firstNonzero = touched
	}
}

// ToBigInt serializes s into a non-negative *big.Int by laying out its
// live limbs most-significant-first as big-endian bytes. SetBytes reads
// them as an unsigned magnitude, so the result is exact and non-negative
// without any two's-complement correction.
func (s *Significand) ToBigInt() *big.Int {
	live := s.limbs[s.firstNonzero:]
	buf := make([]byte, len(live)*4)
	for i, w := range live {
		buf[i*4+0] = byte(w >> 24)
		buf[i*4+1] = byte(w >> 16)
		buf[i*4+2] = byte(w >> 8)
		buf[i*4+3] = byte(w)
	}
	return new(big.Int).SetBytes(buf)
}
