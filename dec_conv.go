// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decint

import (
	"io"
)

// scanDec reads the longest possible run of decimal digits from r and returns
// it normalized, together with the number of digits read. A run of zero
// digits reports errNoDigits. Any other byte terminates the run and is
// unread.
func scanDec(r io.ByteScanner) (res dec, count int, err error) {
	var buf []byte

	// one char look-ahead
	ch, err := r.ReadByte()
	for err == nil {
		if ch < '0' || ch > '9' {
			err = r.UnreadByte() // ch does not belong to number anymore
			break
		}
		buf = append(buf, ch)
		ch, err = r.ReadByte()
	}

	if err == io.EOF {
		err = nil
	}
	count = len(buf)
	if err == nil && count == 0 {
		err = errNoDigits
	}
	if count == 0 {
		return "", 0, err
	}
	return dec(buf).norm(), count, err
}

// itoa appends the decimal representation of x to buf, prepending a '-' if
// neg && x != 0.
func (x dec) itoa(buf []byte, neg bool) []byte {
	if neg && !x.isZero() {
		buf = append(buf, '-')
	}
	return append(buf, string(x)...)
}
