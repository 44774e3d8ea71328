// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decint

import (
	"fmt"
	"strings"
)

// A Kind classifies the errors reported by this package.
type Kind int

//go:generate stringer -type=Kind

// Error kinds.
const (
	InvalidFormat        Kind = iota + 1 // string is not of the form -?[0-9]+
	UninitializedOperand                 // operand is the zero value of Int
	NotImplemented                       // unsupported base or verb
	DivisionByZero
	NegativeOperand
	OutOfRange // value does not fit the requested native type
)

var kindText = [...]string{
	InvalidFormat:        "invalid decimal integer",
	UninitializedOperand: "uninitialized operand",
	NotImplemented:       "not implemented",
	DivisionByZero:       "division by zero",
	NegativeOperand:      "negative operand",
	OutOfRange:           "value out of range",
}

func (k Kind) text() string {
	if k > 0 && int(k) < len(kindText) {
		return kindText[k]
	}
	return k.String()
}

// An Error is returned by functions of this package that report errors, or
// raised as a panic by arithmetic methods called with invalid operands.
//
// Two errors match with errors.Is if their Kind is the same, so that
//
//	errors.Is(err, decint.ErrUninitialized)
//
// reports whether err was caused by an uninitialized operand.
type Error struct {
	Kind Kind
	Op   string // name of the failing operation, may be empty
	Msg  string // additional detail, may be empty
	Err  error  // underlying cause, may be nil
}

// Sentinel errors for use with errors.Is.
var (
	ErrInvalidFormat   = &Error{Kind: InvalidFormat}
	ErrUninitialized   = &Error{Kind: UninitializedOperand}
	ErrNotImplemented  = &Error{Kind: NotImplemented}
	ErrDivisionByZero  = &Error{Kind: DivisionByZero}
	ErrNegativeOperand = &Error{Kind: NegativeOperand}
	ErrOutOfRange      = &Error{Kind: OutOfRange}
)

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("decint: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.text())
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(k Kind, op string, format string, args ...interface{}) *Error {
	e := &Error{Kind: k, Op: op}
	if format != "" {
		e.Msg = fmt.Sprintf(format, args...)
	}
	return e
}

// validate panics with an UninitializedOperand error if any of xs has no
// value.
func validate(op string, xs ...*Int) {
	for _, x := range xs {
		if !x.IsValid() {
			panic(newError(UninitializedOperand, op, ""))
		}
	}
}
