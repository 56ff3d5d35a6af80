// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numlit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/numlit"
)

func TestParseDoubleScenarios(t *testing.T) {
	tests := []struct {
		name string
		lit  string
		want float64
	}{
		{"decimal exponent", "1.2e3", 1200.0},
		{"hex float", "0x1.0p8", 256.0},
		{"whitespace", " 1.2e3  ", 1200.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := numlit.ParseDouble([]byte(tt.lit), 0, len(tt.lit))
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
		})
	}
}

func TestParseDoubleManyDigitsOverflowsToInf(t *testing.T) {
	lit := make([]byte, 1_000_000)
	for i := range lit {
		lit[i] = '9'
	}
	f, err := numlit.ParseDouble(lit, 0, len(lit))
	require.NoError(t, err)
	assert.True(t, f > 1e300, "expected +Infinity, got %v", f)
}

func TestParseJSONNumberRejectsWhitespace(t *testing.T) {
	lit := " 1.2e3  "
	_, err := numlit.ParseJSONNumber([]byte(lit), 0, len(lit))
	assert.Error(t, err)

	var pe *numlit.Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, numlit.SyntaxError, pe.Kind)
}

func TestParseDoubleIllegalWindow(t *testing.T) {
	_, err := numlit.ParseDouble([]byte("123"), 0, 10)
	require.Error(t, err)
	var pe *numlit.Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, numlit.IllegalOffsetOrLength, pe.Kind)
}

func TestParseFloatNarrowsFromDouble(t *testing.T) {
	lit := "3.5"
	f, err := numlit.ParseFloat([]byte(lit), 0, len(lit))
	require.NoError(t, err)
	assert.Equal(t, float32(3.5), f)
}

func TestParseDoubleUTF16(t *testing.T) {
	lit := "1.2e3"
	buf := make([]uint16, len(lit))
	for i, c := range []byte(lit) {
		buf[i] = uint16(c)
	}
	f, err := numlit.ParseDoubleUTF16(buf, 0, len(buf))
	require.NoError(t, err)
	assert.Equal(t, 1200.0, f)
}

func TestParseDoubleBoundarySyntaxErrors(t *testing.T) {
	for _, lit := range []string{"3e", "3e+", "."} {
		_, err := numlit.ParseDouble([]byte(lit), 0, len(lit))
		assert.Error(t, err, "expected error for %q", lit)
	}
}
