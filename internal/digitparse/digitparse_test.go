// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package digitparse

import (
	"context"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/db47h/numlit/internal/powers"
)

func randomDigits(rnd *rand.Rand, n int) string {
	var sb strings.Builder
	sb.WriteByte(byte('1' + rnd.Intn(9))) // avoid an all-zero leading digit for clarity
	for i := 1; i < n; i++ {
		sb.WriteByte(byte('0' + rnd.Intn(10)))
	}
	return sb.String()
}

func TestRegimesAgree(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	lengths := []int{1, 7, 8, 17, 18, 19, 100, 128, 129, 500, 1024, 1025, 3000}
	for _, n := range lengths {
		s := randomDigits(rnd, n)
		buf := []byte(s)
		want := new(big.Int)
		want.SetString(s, 10)

		cache := powers.NewCache()
		got := Parse(buf, 0, len(buf), cache, DefaultParallelThreshold)
		if got.Cmp(want) != 0 {
			t.Fatalf("len %d: Parse = %v; want %v (regime %v)", n, got, want, SelectRegime(n, DefaultParallelThreshold))
		}

		// force each regime directly to check cross-regime agreement
		iter := parseIterative(buf, 0, len(buf))
		if n <= RecursionThreshold && iter.Cmp(want) != 0 {
			t.Fatalf("len %d: iterative = %v; want %v", n, iter, want)
		}
		if n > RecursionThreshold {
			rec, err := parseRecursive(context.Background(), buf, 0, len(buf), powers.NewCache(), int(^uint(0)>>1))
			if err != nil {
				t.Fatal(err)
			}
			if rec.Cmp(want) != 0 {
				t.Fatalf("len %d: recursive = %v; want %v", n, rec, want)
			}
			par, err := parseParallel(context.Background(), buf, 0, len(buf), powers.NewCache(), 128)
			if err != nil {
				t.Fatal(err)
			}
			if par.Cmp(want) != 0 {
				t.Fatalf("len %d: parallel = %v; want %v", n, par, want)
			}
		}
	}
}

func TestSelectRegimeBoundaries(t *testing.T) {
	cases := []struct {
		n    int
		want Regime
	}{
		{1, PackedLong},
		{18, PackedLong},
		{19, Iterative},
		{128, Iterative},
		{129, Recursive},
		{1023, Recursive},
		{1024, Parallel},
	}
	for _, c := range cases {
		if got := SelectRegime(c.n, DefaultParallelThreshold); got != c.want {
			t.Errorf("SelectRegime(%d, %d) = %v; want %v", c.n, DefaultParallelThreshold, got, c.want)
		}
	}
}

func TestSequentialModeDisablesParallel(t *testing.T) {
	if got := SelectRegime(100_000, 0); got != Recursive {
		t.Errorf("SelectRegime with parallelThreshold=0 (sequential) = %v; want Recursive", got)
	}
}
