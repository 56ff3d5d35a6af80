// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numlit parses decimal and hexadecimal floating-point literals,
// arbitrary-precision integer literals, arbitrary-precision decimal
// literals, and JSON number tokens from byte- or UTF-16-oriented input,
// without allocating more than the result itself requires.
//
// The four entry points are ParseDouble/ParseFloat, ParseBigIntLiteral,
// ParseBigDecimalLiteral, and ParseJSONNumber (plus their []uint16
// counterparts in utf16.go and *Context variants that pass a
// context.Context down to the parallel parser; a parse is not cancelled
// through it and always runs to completion).
// Final IEEE-754 rounding of ParseDouble/ParseFloat is delegated to a
// RoundingOracle, DefaultOracle by default.
//
// Arithmetic on parsed values, locale-aware digit sets, streaming or
// incremental parsing, and value-to-text formatting are not this
// package's concern; it only turns text into exact values.
package numlit
