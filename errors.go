// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numlit

import (
	"errors"
	"fmt"

	"github.com/db47h/numlit/internal/scanner"
)

// ErrorKind distinguishes the two error kinds of the external interface:
// a precondition violation reported eagerly before any parsing begins, or
// a grammar mismatch discovered during the scan.
type ErrorKind int

const (
	// IllegalOffsetOrLength: the caller supplied a window falling outside
	// the buffer, or one longer than MaxInputLength.
	IllegalOffsetOrLength ErrorKind = iota
	// SyntaxError: the window does not match the grammar.
	SyntaxError
)

//go:generate stringer -type=ErrorKind

// Sentinel errors for the SyntaxError sub-causes named in spec §7;
// wrap one of these to test a *Error's specific cause with errors.Is.
var (
	ErrBadCharacter         = errors.New("numlit: invalid character")
	ErrMissingDigits        = errors.New("numlit: number has no digits")
	ErrStraySign            = errors.New("numlit: sign with no digits following")
	ErrUnterminatedExponent = errors.New("numlit: exponent indicator with no digits following")
	ErrValueExceedsLimits   = errors.New("numlit: value exceeds grammar limits")
	ErrTrailingGarbage      = errors.New("numlit: unexpected trailing character")
)

// Error is the error type returned by every parse operation in this
// package.
type Error struct {
	Kind   ErrorKind
	Offset int
	cause  error // one of the Err* sentinels above, or nil for IllegalOffsetOrLength
	msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("numlit: %s at offset %d: %s", e.Kind, e.Offset, e.msg)
}

func (e *Error) Unwrap() error { return e.cause }

func scanErrToSentinel(k scanner.ErrKind) error {
	switch k {
	case scanner.ErrBadChar:
		return ErrBadCharacter
	case scanner.ErrNoDigits:
		return ErrMissingDigits
	case scanner.ErrStraySign:
		return ErrStraySign
	case scanner.ErrUnterminatedExponent:
		return ErrUnterminatedExponent
	case scanner.ErrValueExceedsLimits:
		return ErrValueExceedsLimits
	case scanner.ErrTrailingGarbage:
		return ErrTrailingGarbage
	default:
		return nil
	}
}

// wrapScanErr converts an internal scanner error into the public Error type.
func wrapScanErr(err error) error {
	if err == nil {
		return nil
	}
	se, ok := err.(*scanner.Error)
	if !ok {
		return err
	}
	if se.Kind == scanner.ErrIllegalWindow {
		return &Error{Kind: IllegalOffsetOrLength, Offset: se.Offset, msg: se.Msg}
	}
	return &Error{Kind: SyntaxError, Offset: se.Offset, cause: scanErrToSentinel(se.Kind), msg: se.Msg}
}
