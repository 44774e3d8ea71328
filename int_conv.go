// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Int conversion to and from strings and native
// integers.

package decint

import (
	"fmt"
	"io"
	"strconv"

	"fortio.org/safecast"
)

// Parse returns a new Int set to the value of s, which must match
// -?[0-9]+ in its entirety: an optional leading minus sign followed by at
// least one decimal digit. Leading zeros are accepted and dropped.
//
// If s is not of that form, Parse returns an InvalidFormat *Error.
func Parse(s string) (*Int, error) {
	return new(Int).Parse(s, 10)
}

// Parse sets z to the value of s, interpreted in the given base, and returns
// z. The accepted syntax is the one of the package-level Parse function.
// Base 0 is treated as base 10; any other base reports a NotImplemented
// *Error.
//
// On error, the returned *Int is nil and z is left unchanged.
func (z *Int) Parse(s string, base int) (*Int, error) {
	if base != 0 && base != 10 {
		return nil, newError(NotImplemented, "Parse", "base %d", base)
	}
	neg, digits := false, s
	if len(s) > 0 && s[0] == '-' {
		neg, digits = true, s[1:]
	}
	if !isDigits(digits) {
		return nil, newError(InvalidFormat, "Parse", "%q", s)
	}
	z.abs = dec(digits).norm()
	z.neg = neg && !z.abs.isZero()
	return z, nil
}

// SetString sets z to the value of s and returns z and a boolean indicating
// success. s must be of the form accepted by Parse. If the operation failed,
// z is unchanged but the returned value is nil.
func (z *Int) SetString(s string) (*Int, bool) {
	if _, err := z.Parse(s, 10); err != nil {
		return nil, false
	}
	return z, true
}

// String returns the decimal representation of x, with a leading '-' if
// x < 0. It returns "" for an uninitialized Int and "<nil>" for a nil
// pointer.
func (x *Int) String() string {
	if x == nil {
		return "<nil>"
	}
	return string(x.abs.itoa(nil, x.neg))
}

// Text returns the string representation of x in the given base. Only base
// 10 is supported; any other base panics with a NotImplemented *Error.
func (x *Int) Text(base int) string {
	if x == nil {
		return "<nil>"
	}
	return string(x.Append(nil, base))
}

// Append appends the string representation of x, as generated by
// x.Text(base), to buf and returns the extended buffer.
func (x *Int) Append(buf []byte, base int) []byte {
	if base != 10 {
		panic(newError(NotImplemented, "Text", "base %d", base))
	}
	if x == nil {
		return append(buf, "<nil>"...)
	}
	return x.abs.itoa(buf, x.neg)
}

var intZero Int

var _ fmt.Formatter = &intZero // *Int must implement fmt.Formatter

// Format implements fmt.Formatter. It accepts the decimal formats 'd', 's'
// and 'v'. The '+' and ' ' flags select the sign character of non-negative
// values, and the width is padded with spaces, or with zeros after the sign
// if the '0' flag is given. The '-' flag left-justifies. An uninitialized Int
// is never zero-padded.
func (x *Int) Format(s fmt.State, ch rune) {
	switch ch {
	case 'd', 's', 'v':
		// ok
	default:
		// unknown format
		fmt.Fprintf(s, "%%!%c(decint.Int=%s)", ch, x.String())
		return
	}

	if x == nil {
		fmt.Fprint(s, "<nil>")
		return
	}

	sign := ""
	switch {
	case x.neg:
		sign = "-"
	case !x.IsValid():
		// no sign
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	var left, zeros, right int
	length := len(sign) + len(x.abs)
	if width, ok := s.Width(); ok && length < width {
		switch d := width - length; {
		case s.Flag('-'):
			right = d
		case s.Flag('0') && x.IsValid():
			zeros = d
		default:
			left = d
		}
	}

	writeMultiple(s, " ", left)
	writeMultiple(s, sign, 1)
	writeMultiple(s, "0", zeros)
	_, _ = io.WriteString(s, string(x.abs))
	writeMultiple(s, " ", right)
}

// writeMultiple writes count copies of text to s.
func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			_, _ = s.Write(b)
		}
	}
}

var _ fmt.Scanner = &intZero // *Int must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value of the
// scanned number. It accepts the formats 'd', 's' and 'v'. Leading spaces are
// skipped and an optional '+' or '-' sign is accepted.
func (z *Int) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace() // skip leading space characters
	switch ch {
	case 'd', 's', 'v':
		// ok
	default:
		return newError(NotImplemented, "Scan", "verb %%%c", ch)
	}
	r := byteReader{s}
	neg, err := scanSign(r)
	if err != nil {
		return &Error{Kind: InvalidFormat, Op: "Scan", Err: err}
	}
	abs, _, err := scanDec(r)
	if err != nil {
		return &Error{Kind: InvalidFormat, Op: "Scan", Err: err}
	}
	z.abs = abs
	z.neg = neg && !abs.isZero()
	return nil
}

// Int64 returns the int64 representation of x. If x cannot be represented in
// an int64, the result is an OutOfRange *Error.
func (x *Int) Int64() (int64, error) {
	if !x.IsValid() {
		return 0, newError(UninitializedOperand, "Int64", "")
	}
	u, err := strconv.ParseUint(string(x.abs), 10, 64)
	if err != nil {
		return 0, &Error{Kind: OutOfRange, Op: "Int64", Msg: x.String(), Err: err}
	}
	if x.neg {
		if u > 1<<63 {
			return 0, newError(OutOfRange, "Int64", "%s", x)
		}
		return -int64(u-1) - 1, nil
	}
	i, err := safecast.Conv[int64](u)
	if err != nil {
		return 0, &Error{Kind: OutOfRange, Op: "Int64", Msg: x.String(), Err: err}
	}
	return i, nil
}

// Uint64 returns the uint64 representation of x. If x cannot be represented
// in a uint64, the result is an OutOfRange *Error.
func (x *Int) Uint64() (uint64, error) {
	if !x.IsValid() {
		return 0, newError(UninitializedOperand, "Uint64", "")
	}
	if x.neg {
		return 0, newError(OutOfRange, "Uint64", "%s", x)
	}
	u, err := strconv.ParseUint(string(x.abs), 10, 64)
	if err != nil {
		return 0, &Error{Kind: OutOfRange, Op: "Uint64", Msg: x.String(), Err: err}
	}
	return u, nil
}
