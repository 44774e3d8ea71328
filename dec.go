// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decint

import (
	"strconv"
	"strings"
)

// dec is an unsigned integer x of the form
//
//   x = x[0]*10^(n-1) + x[1]*10^(n-2) + ... + x[n-2]*10 + x[n-1]
//
// with '0' <= x[i] <= '9', stored as a string of n ASCII digits, most
// significant digit first.
//
// A number is normalized if the string contains no leading '0' digits. The
// normalized representation of 0 is "0". The empty string is not a number:
// it is the magnitude of an uninitialized Int.
//
// Unless documented otherwise, the methods below require normalized operands
// and return normalized results.
type dec string

const decZero dec = "0"

// isDigits reports whether s is a non-empty run of ASCII decimal digits.
func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func decFromUint64(x uint64) dec {
	return dec(strconv.FormatUint(x, 10))
}

// norm strips the leading zeros of z. z may be denormalized.
func (z dec) norm() dec {
	i := 0
	for i < len(z)-1 && z[i] == '0' {
		i++
	}
	return z[i:]
}

func (x dec) isZero() bool {
	return x == decZero
}

// cmp returns -1, 0 or +1 depending on whether x < y, x == y or x > y.
// A longer normalized number is always the larger one; numbers of the same
// length compare like their digit strings.
func (x dec) cmp(y dec) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	return strings.Compare(string(x), string(y))
}

// add returns x + y.
func (x dec) add(y dec) dec {
	z := make([]byte, 0, max(len(x), len(y))+1)
	i, j := len(x)-1, len(y)-1
	var c byte
	for i >= 0 || j >= 0 || c != 0 {
		var d1, d2 byte
		if i >= 0 {
			d1 = x[i] - '0'
			i--
		}
		if j >= 0 {
			d2 = y[j] - '0'
			j--
		}
		var s byte
		s, c = add10WW(d1, d2, c)
		z = append(z, '0'+s)
	}
	reverse(z)
	return dec(z)
}

// sub returns x - y. The caller must ensure that x >= y.
func (x dec) sub(y dec) dec {
	if debugDecint && x.cmp(y) < 0 {
		panic("decint: dec.sub underflow")
	}
	z := []byte(x)
	// y is aligned to the right of x
	for i, j := len(z)-1, len(y)-1; j >= 0; i, j = i-1, j-1 {
		d, b := sub10WW(z[i]-'0', y[j]-'0')
		z[i] = '0' + d
		if b != 0 {
			borrow10(z[:i])
		}
	}
	return dec(z).norm()
}

// mul returns x * y, computed with schoolbook long multiplication.
func (x dec) mul(y dec) dec {
	if x.isZero() || y.isZero() {
		return decZero
	}
	// acc[i+j+1] receives the units of x[i]*y[j], acc[i+j] its tens.
	acc := make([]int, len(x)+len(y))
	for i := len(x) - 1; i >= 0; i-- {
		d1 := x[i] - '0'
		for j := len(y) - 1; j >= 0; j-- {
			hi, lo := mulAdd10WW(d1, y[j]-'0', acc[i+j+1])
			acc[i+j+1] = lo
			acc[i+j] += hi
		}
	}
	z := make([]byte, len(acc))
	for i, d := range acc {
		z[i] = '0' + byte(d)
	}
	return dec(z).norm()
}

// shl10 returns x*10 + d for a single digit 0 <= d <= 9.
func (x dec) shl10(d byte) dec {
	if x.isZero() {
		return dec([]byte{'0' + d})
	}
	return x + dec([]byte{'0' + d})
}

// divmod returns the quotient x / y and the remainder x % y, computed with
// long division. y must not be zero.
func (x dec) divmod(y dec) (q, r dec) {
	if debugDecint && y.isZero() {
		panic("decint: dec.divmod by zero")
	}
	if x.cmp(y) < 0 {
		return decZero, x
	}
	z := make([]byte, 0, len(x))
	r = decZero
	for i := 0; i < len(x); i++ {
		// bring down the next digit, then find how many times y fits in r.
		// Since r < y before the shift, that is at most 9 times.
		r = r.shl10(x[i] - '0')
		var d byte
		for r.cmp(y) >= 0 {
			r = r.sub(y)
			d++
		}
		z = append(z, '0'+d)
	}
	return dec(z).norm(), r
}
