// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package decint implements arbitrary-precision signed integer arithmetic over
decimal digit strings.

An Int is a sign and a string of decimal digits. Unlike big.Int, the magnitude
is never converted to binary: addition, subtraction, multiplication and
division are performed digit by digit, in base 10, the way they are done by
hand. The package trades speed for simplicity and exact decimal text at every
step.

The zero value of an Int is uninitialized; it holds no value at all (not even
0). New values are created from strings or native integers:

    x, err := decint.Parse("-123456789012345678901234567890")
    y := decint.NewInt(42)
    z := decint.FromInteger(uint8(7))

Any arithmetic or comparison method given an uninitialized operand panics with
an *Error of kind UninitializedOperand.

Setters, numeric operations and predicates are represented as methods of the
form:

    func (z *Int) SetV(v V) *Int          // z = v
    func (z *Int) Unary(x *Int) *Int      // z = unary x
    func (z *Int) Binary(x, y *Int) *Int  // z = x binary y
    func (x *Int) Pred() P                // p = pred(x)

For unary and binary operations, the result is the receiver (usually named z in
that case); if it is one of the operands x or y it may be safely overwritten.
Arithmetic expressions are typically written as a sequence of individual method
calls, with each call corresponding to an operation. For instance, given three
*Int values a, b and c, the invocation

    c.Add(a, b)

computes the sum a + b and stores the result in c. Operations permit aliasing
of parameters, so it is perfectly ok to write

    sum.Add(sum, x)

to accumulate values x in a sum.

Errors

Functions that parse or convert return an *Error. Arithmetic methods panic with
an *Error when misused (uninitialized operand, division by zero, square root of
a negative number). Package decint/context wraps these methods and turns such
panics into a sticky error that can be checked once at the end of a
computation. All errors match the sentinel of their Kind with errors.Is:

    if errors.Is(err, decint.ErrInvalidFormat) {
        // ...
    }

Finally, *Int satisfies the fmt package's Scanner interface for scanning and
the Formatter interface for formatted printing, and the encoding.Text and
json (un)marshaler interfaces, all using plain decimal text.
*/
package decint
