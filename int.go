// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decint

import (
	"math/big"

	"fortio.org/safecast"
)

// An Int represents a signed integer of arbitrary size as a sign and a string
// of decimal digits.
//
// The zero value of an Int is uninitialized: it holds no value, reports
// false from IsValid, and every arithmetic or comparison method panics with
// an UninitializedOperand *Error when given one as an operand. Values
// produced by the constructors, setters and arithmetic methods are always
// valid.
//
// Valid values are normalized: the magnitude has no leading zeros and zero
// is never negative.
type Int struct {
	abs dec
	neg bool
}

// NewInt allocates and returns a new Int set to x.
func NewInt(x int64) *Int {
	return new(Int).SetInt64(x)
}

// FromInteger allocates and returns a new Int set to x, for any signed or
// unsigned native integer type.
func FromInteger[T safecast.Integer](x T) *Int {
	if x < 0 {
		// all negative values of any integer type fit in an int64
		i, err := safecast.Conv[int64](x)
		if err != nil {
			panic(&Error{Kind: OutOfRange, Op: "FromInteger", Err: err})
		}
		return new(Int).SetInt64(i)
	}
	u, err := safecast.Conv[uint64](x)
	if err != nil {
		panic(&Error{Kind: OutOfRange, Op: "FromInteger", Err: err})
	}
	return new(Int).SetUint64(u)
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	neg := false
	u := uint64(x)
	if x < 0 {
		neg = true
		u = -u
	}
	z.abs = decFromUint64(u)
	z.neg = neg
	return z
}

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	z.abs = decFromUint64(x)
	z.neg = false
	return z
}

// SetBigInt sets z to x and returns z.
func (z *Int) SetBigInt(x *big.Int) *Int {
	s := x.Text(10)
	z.neg = x.Sign() < 0
	if z.neg {
		s = s[1:]
	}
	z.abs = dec(s)
	return z
}

// BigInt sets z to x and returns z. If z is nil, a new big.Int is allocated.
func (x *Int) BigInt(z *big.Int) *big.Int {
	validate("BigInt", x)
	if z == nil {
		z = new(big.Int)
	}
	z.SetString(string(x.abs), 10)
	if x.neg {
		z.Neg(z)
	}
	return z
}

// Set sets z to x and returns z. If x is uninitialized, so is z.
func (z *Int) Set(x *Int) *Int {
	if z != x {
		z.abs = x.abs
		z.neg = x.neg
	}
	return z
}

// IsValid reports whether x holds a value.
func (x *Int) IsValid() bool {
	return x != nil && len(x.abs) > 0
}

// IsNegative reports whether x < 0. It reports false for an uninitialized
// Int.
func (x *Int) IsNegative() bool {
	return x.neg
}

// IsPositive reports whether x > 0. It reports false for zero and for an
// uninitialized Int.
func (x *Int) IsPositive() bool {
	return !x.neg && len(x.abs) > 0 && !x.abs.isZero()
}

// IsZero reports whether x == 0.
func (x *Int) IsZero() bool {
	return x.abs.isZero()
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0 or x is uninitialized
//	+1 if x >  0
//
func (x *Int) Sign() int {
	switch {
	case x.neg:
		return -1
	case x.IsPositive():
		return 1
	}
	return 0
}

// Len returns the number of decimal digits of |x|. The result is 0 for an
// uninitialized Int.
func (x *Int) Len() int {
	return len(x.abs)
}

// Neg sets z to -x and returns z. The negation of zero is zero.
func (z *Int) Neg(x *Int) *Int {
	validate("Neg", x)
	z.Set(x)
	z.neg = !z.neg && !z.abs.isZero()
	return z
}

// Abs sets z to |x| (the absolute value of x) and returns z.
func (z *Int) Abs(x *Int) *Int {
	validate("Abs", x)
	z.Set(x)
	z.neg = false
	return z
}

// Add sets z to the sum x+y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	validate("Add", x, y)
	return z.add(x, y.abs, y.neg)
}

// Sub sets z to the difference x-y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	validate("Sub", x, y)
	// x - y == x + (-y); -0 == 0
	return z.add(x, y.abs, !y.neg && !y.abs.isZero())
}

// add sets z to x + (±y) where yneg is the sign of the second operand.
func (z *Int) add(x *Int, y dec, yneg bool) *Int {
	neg := x.neg
	if x.neg == yneg {
		// x + y == x + y
		// (-x) + (-y) == -(x + y)
		z.abs = x.abs.add(y)
	} else {
		// x + (-y) == x - y == -(y - x)
		// (-x) + y == y - x == -(x - y)
		switch x.abs.cmp(y) {
		case 0:
			z.abs = decZero
		case 1:
			z.abs = x.abs.sub(y)
		default:
			neg = !neg
			z.abs = y.sub(x.abs)
		}
	}
	z.neg = neg && !z.abs.isZero()
	return z
}

// Mul sets z to the product x*y and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	validate("Mul", x, y)
	neg := x.neg != y.neg
	z.abs = x.abs.mul(y.abs)
	z.neg = neg && !z.abs.isZero() // 0 has no sign
	return z
}

// Quo sets z to the quotient x/y for y != 0 and returns z. Quo implements
// truncated division (like Go); see QuoRem for more details.
// If y == 0, Quo panics with a DivisionByZero *Error.
func (z *Int) Quo(x, y *Int) *Int {
	var r Int
	z.quoRem("Quo", x, y, &r)
	return z
}

// Rem sets z to the remainder x%y for y != 0 and returns z. Rem implements
// truncated modulus (like Go); see QuoRem for more details.
// If y == 0, Rem panics with a DivisionByZero *Error.
func (z *Int) Rem(x, y *Int) *Int {
	var q Int
	q.quoRem("Rem", x, y, z)
	return z
}

// QuoRem sets z to the quotient x/y and r to the remainder x%y and returns
// the pair (z, r) for y != 0. If y == 0, QuoRem panics with a DivisionByZero
// *Error.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int) {
	return z.quoRem("QuoRem", x, y, r)
}

func (z *Int) quoRem(op string, x, y, r *Int) (*Int, *Int) {
	validate(op, x, y)
	if y.abs.isZero() {
		panic(newError(DivisionByZero, op, ""))
	}
	xneg, yneg := x.neg, y.neg
	q, m := x.abs.divmod(y.abs)
	z.abs, r.abs = q, m
	z.neg = xneg != yneg && !q.isZero()
	r.neg = xneg && !m.isZero()
	return z, r
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
func (x *Int) Cmp(y *Int) int {
	return x.cmp("Cmp", y)
}

func (x *Int) cmp(op string, y *Int) (r int) {
	validate(op, x, y)
	switch {
	case x == y:
		// nothing to do
	case x.neg == y.neg:
		r = x.abs.cmp(y.abs)
		if x.neg {
			r = -r
		}
	case x.neg:
		r = -1
	default:
		r = 1
	}
	return
}

// CmpAbs compares the absolute values of x and y and returns:
//
//	-1 if |x| <  |y|
//	 0 if |x| == |y|
//	+1 if |x| >  |y|
//
func (x *Int) CmpAbs(y *Int) int {
	validate("CmpAbs", x, y)
	return x.abs.cmp(y.abs)
}

// Equal reports whether x == y.
func (x *Int) Equal(y *Int) bool {
	validate("Equal", x, y)
	return x.neg == y.neg && x.abs == y.abs
}

// NotEqual reports whether x != y.
func (x *Int) NotEqual(y *Int) bool {
	validate("NotEqual", x, y)
	return !x.Equal(y)
}

// Less reports whether x < y.
func (x *Int) Less(y *Int) bool {
	return x.cmp("Less", y) < 0
}

// LessOrEqual reports whether x <= y.
func (x *Int) LessOrEqual(y *Int) bool {
	return x.Less(y) || x.Equal(y)
}

// Greater reports whether x > y.
func (x *Int) Greater(y *Int) bool {
	return !x.LessOrEqual(y)
}

// GreaterOrEqual reports whether x >= y.
func (x *Int) GreaterOrEqual(y *Int) bool {
	return !x.Less(y)
}
