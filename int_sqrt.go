// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decint

import "strings"

var decTwo = dec("2")

// Sqrt sets z to ⌊√x⌋, the largest integer such that z² ≤ x, and returns
// z. It panics with a NegativeOperand *Error if x is negative.
func (z *Int) Sqrt(x *Int) *Int {
	validate("Sqrt", x)
	if x.neg {
		panic(newError(NegativeOperand, "Sqrt", "%s", x))
	}
	if x.abs.isZero() {
		return z.SetUint64(0)
	}
	z.abs = x.abs.sqrt()
	z.neg = false
	return z
}

// sqrt returns ⌊√x⌋ for x > 0.
//
// Newton's method on f(t) = t² - x, starting from an initial guess
// r ≥ √x:
//
//   r' = ⌊(r + ⌊x/r⌋) / 2⌋
//
// The sequence decreases strictly until it reaches ⌊√x⌋, after which r'
// is no longer smaller than r.
func (x dec) sqrt() dec {
	// x < 10**n  =>  √x < 10**⌈n/2⌉
	r := dec("1" + strings.Repeat("0", (len(x)+1)/2))
	for {
		q, _ := x.divmod(r)
		t, _ := r.add(q).divmod(decTwo)
		if t.cmp(r) >= 0 {
			return r
		}
		r = t
	}
}
