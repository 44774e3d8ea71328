// This file mirrors helpers from math/big.

package decint

import (
	"errors"
	"fmt"
	"io"
)

// byteReader is a local wrapper around fmt.ScanState;
// it implements the io.ByteScanner interface.
type byteReader struct {
	fmt.ScanState
}

func (r byteReader) ReadByte() (byte, error) {
	ch, size, err := r.ReadRune()
	if size != 1 && err == nil {
		err = fmt.Errorf("invalid rune %#U", ch)
	}
	return byte(ch), err
}

func (r byteReader) UnreadByte() error {
	return r.UnreadRune()
}

// scan errors
var (
	errNoDigits = errors.New("number has no digits")
)

// scanSign reads an optional '+' or '-' from r.
func scanSign(r io.ByteScanner) (neg bool, err error) {
	var ch byte
	if ch, err = r.ReadByte(); err != nil {
		return false, err
	}
	switch ch {
	case '-':
		neg = true
	case '+':
		// nothing to do
	default:
		_ = r.UnreadByte()
	}
	return
}
