// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Ints as plain decimal text.

package decint

import (
	"bytes"
	"fmt"
)

// MarshalText implements the encoding.TextMarshaler interface. An
// uninitialized Int cannot be marshaled.
func (x *Int) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	if !x.IsValid() {
		return nil, newError(UninitializedOperand, "MarshalText", "")
	}
	return x.abs.itoa(nil, x.neg), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The
// accepted format is the one of Parse.
func (z *Int) UnmarshalText(text []byte) error {
	if _, err := z.Parse(string(text), 10); err != nil {
		return fmt.Errorf("decint: cannot unmarshal %q into a *decint.Int: %w", text, err)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface. The value is encoded
// as a JSON number.
func (x *Int) MarshalJSON() ([]byte, error) {
	if x == nil {
		return []byte("null"), nil
	}
	return x.MarshalText()
}

// UnmarshalJSON implements the json.Unmarshaler interface. A JSON null
// leaves z unchanged.
func (z *Int) UnmarshalJSON(text []byte) error {
	if bytes.Equal(text, []byte("null")) {
		return nil
	}
	return z.UnmarshalText(text)
}
