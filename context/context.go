// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides error-checking contexts for decint.Ints.
//
// All factory functions of the form
//
//    func (c *Context) NewT(x T) *decint.Int
//
// create a new decint.Int set to the value of x.
//
// Operators that set a receiver z to function of other Int arguments like:
//
//    func (c *Context) UnaryOp(z, x *decint.Int) *decint.Int
//    func (c *Context) BinaryOp(z, x, y *decint.Int) *decint.Int
//
// set z to the result of z.Op(args) and return z.
//
// A Context catches decint errors: if an operation fails (an uninitialized
// operand, a division by zero, an unparsable string...), the operation will
// silently succeed with an undefined result. Further operations with the
// context will be no-ops (they simply return the receiver z) until
// (*Context).Err is called to check for errors.
//
// A Context must not be used concurrently by multiple goroutines.
package context

import (
	"errors"
	"math/big"

	"github.com/db47h/decint"
)

// A Context is a wrapper around Ints that facilitates error handling in
// chained computations.
type Context struct {
	err error
}

// New creates a new context.
func New() *Context {
	return new(Context)
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// handle recovers a *decint.Error panic into c's error state and sets *r to
// z. Any other panic is propagated.
func (c *Context) handle(r **decint.Int, z *decint.Int) {
	if v := recover(); v != nil {
		err, ok := v.(error)
		var e *decint.Error
		if !ok || !errors.As(err, &e) {
			panic(v)
		}
		c.err = e
		*r = z
	}
}

// NewInt64 returns a new *decint.Int set to the value of x.
func (c *Context) NewInt64(x int64) *decint.Int {
	return decint.NewInt(x)
}

// NewUint64 returns a new *decint.Int set to the value of x.
func (c *Context) NewUint64(x uint64) *decint.Int {
	return new(decint.Int).SetUint64(x)
}

// NewBigInt returns a new *decint.Int set to the value of x.
func (c *Context) NewBigInt(x *big.Int) *decint.Int {
	return new(decint.Int).SetBigInt(x)
}

// NewString returns a new *decint.Int set to the value of s, which must be of
// the form accepted by decint.Parse. If s cannot be parsed, the error is
// recorded in c and the returned Int is uninitialized.
func (c *Context) NewString(s string) *decint.Int {
	z := new(decint.Int)
	if c.err != nil {
		return z
	}
	if _, err := z.Parse(s, 10); err != nil {
		c.err = err
	}
	return z
}

// Set sets z to x and returns z.
func (c *Context) Set(z, x *decint.Int) *decint.Int {
	if c.err != nil {
		return z
	}
	return z.Set(x)
}

// Add sets z to the sum x+y and returns z.
func (c *Context) Add(z, x, y *decint.Int) (r *decint.Int) {
	if c.err != nil {
		return z
	}
	defer c.handle(&r, z)
	return z.Add(x, y)
}

// Sub sets z to the difference x-y and returns z.
func (c *Context) Sub(z, x, y *decint.Int) (r *decint.Int) {
	if c.err != nil {
		return z
	}
	defer c.handle(&r, z)
	return z.Sub(x, y)
}

// Mul sets z to the product x×y and returns z.
func (c *Context) Mul(z, x, y *decint.Int) (r *decint.Int) {
	if c.err != nil {
		return z
	}
	defer c.handle(&r, z)
	return z.Mul(x, y)
}

// Quo sets z to the truncated quotient x/y and returns z.
func (c *Context) Quo(z, x, y *decint.Int) (r *decint.Int) {
	if c.err != nil {
		return z
	}
	defer c.handle(&r, z)
	return z.Quo(x, y)
}

// Rem sets z to the remainder x%y and returns z.
func (c *Context) Rem(z, x, y *decint.Int) (r *decint.Int) {
	if c.err != nil {
		return z
	}
	defer c.handle(&r, z)
	return z.Rem(x, y)
}

// Neg sets z to -x and returns z.
func (c *Context) Neg(z, x *decint.Int) (r *decint.Int) {
	if c.err != nil {
		return z
	}
	defer c.handle(&r, z)
	return z.Neg(x)
}

// Abs sets z to the absolute value |x| and returns z.
func (c *Context) Abs(z, x *decint.Int) (r *decint.Int) {
	if c.err != nil {
		return z
	}
	defer c.handle(&r, z)
	return z.Abs(x)
}

// Sqrt sets z to ⌊√x⌋ and returns z.
func (c *Context) Sqrt(z, x *decint.Int) (r *decint.Int) {
	if c.err != nil {
		return z
	}
	defer c.handle(&r, z)
	return z.Sqrt(x)
}

// Cmp compares x and y like x.Cmp(y). If c is in an error state or the
// comparison fails, Cmp returns 0.
func (c *Context) Cmp(x, y *decint.Int) (r int) {
	if c.err != nil {
		return 0
	}
	defer func() {
		if v := recover(); v != nil {
			err, ok := v.(error)
			var e *decint.Error
			if !ok || !errors.As(err, &e) {
				panic(v)
			}
			c.err = e
			r = 0
		}
	}()
	return x.Cmp(y)
}
