// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decint

const debugDecint = false

//-----------------------------------------------------------------------------
// Arithmetic primitives
//
// Digits are passed as values 0 through 9, not as ASCII characters.

// add10WW returns the digit s and carry c such that c*10 + s = x + y + cIn.
// The resulting carry c is either 0 or 1.
func add10WW(x, y, cIn byte) (s, c byte) {
	s = x + y + cIn
	if s >= 10 {
		return s - 10, 1
	}
	return s, 0
}

// sub10WW returns the digit d and borrow b such that d - b*10 = x - y.
// The resulting borrow b is either 0 or 1.
func sub10WW(x, y byte) (d, b byte) {
	if x < y {
		return x + 10 - y, 1
	}
	return x - y, 0
}

// mulAdd10WW returns hi, lo such that hi*10 + lo = x*y + c, with 0 <= lo <= 9.
func mulAdd10WW(x, y byte, c int) (hi, lo int) {
	p := int(x)*int(y) + c
	return p / 10, p % 10
}

// borrow10 subtracts 1 from the ASCII digit string z, walking left through
// any run of '0' digits (each of which becomes '9'). If z is exhausted before
// a non-zero digit is found, the borrow is dropped.
func borrow10(z []byte) {
	for i := len(z) - 1; i >= 0; i-- {
		if z[i] != '0' {
			z[i]--
			return
		}
		z[i] = '9'
	}
}

func reverse(z []byte) {
	for i, j := 0, len(z)-1; i < j; i, j = i+1, j-1 {
		z[i], z[j] = z[j], z[i]
	}
}
