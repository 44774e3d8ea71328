// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decint

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, d := range []struct {
		in, out string
	}{
		{"0", "0"},
		{"-0", "0"},
		{"00", "0"},
		{"1", "1"},
		{"-1", "-1"},
		{"0001", "1"},
		{"-0001", "-1"},
		{"12345", "12345"},
		{"-12345", "-12345"},
		{"1000780001", "1000780001"},
		{"-123456789012345678901234567890123456789", "-123456789012345678901234567890123456789"},
	} {
		x, err := Parse(d.in)
		require.NoError(t, err, d.in)
		assert.Equal(t, d.out, x.String(), d.in)
		assert.Equal(t, d.out, x.Text(10), d.in)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{
		"",
		"-",
		"--12345",
		"+1",
		"12345abc",
		"1234.12",
		"1e3",
		" 1",
		"1 ",
		"0x10",
		"not_a_number",
		"１２", // fullwidth digits
	} {
		z := NewInt(77)
		r, err := z.Parse(s, 10)
		assert.Nil(t, r, "%q", s)
		require.Error(t, err, "%q", s)
		assert.True(t, errors.Is(err, ErrInvalidFormat), "%q: %v", s, err)
		assert.Equal(t, "77", z.String(), "%q: receiver modified", s)

		r, ok := z.SetString(s)
		assert.Nil(t, r)
		assert.False(t, ok)
	}
	_, err := Parse("1e3")
	assert.EqualError(t, err, `decint: Parse: invalid decimal integer: "1e3"`)
}

func TestParseBase(t *testing.T) {
	x, err := new(Int).Parse("-42", 0)
	require.NoError(t, err)
	assert.Equal(t, "-42", x.String())

	for _, base := range []int{2, 8, 16, 36} {
		_, err := new(Int).Parse("10", base)
		assert.True(t, errors.Is(err, ErrNotImplemented), "base %d", base)
		assert.Equal(t, NotImplemented, panicKind(func() { _ = x.Text(base) }), "base %d", base)
	}
}

func TestIntAppend(t *testing.T) {
	buf := []byte("x = ")
	buf = NewInt(-1234).Append(buf, 10)
	assert.Equal(t, "x = -1234", string(buf))
	assert.Equal(t, "<nil>", (*Int)(nil).String())
	assert.Equal(t, "<nil>", (*Int)(nil).Text(10))
}

func TestIntFormat(t *testing.T) {
	for _, d := range []struct {
		format string
		x      string
		out    string
	}{
		{"%d", "123", "123"},
		{"%d", "-123", "-123"},
		{"%s", "-123", "-123"},
		{"%v", "98765432109876543210", "98765432109876543210"},
		{"%+d", "123", "+123"},
		{"%+d", "0", "+0"},
		{"%+d", "-5", "-5"},
		{"% d", "5", " 5"},
		{"% d", "-5", "-5"},
		{"%8d", "-123", "    -123"},
		{"%-8d|", "-123", "-123    |"},
		{"%08d", "-123", "-0000123"},
		{"%+08d", "123", "+0000123"},
		{"%-08d|", "123", "123     |"},
		{"%2d", "-123", "-123"},
		{"%x", "5", "%!x(decint.Int=5)"},
	} {
		x := mustParse(t, d.x)
		assert.Equal(t, d.out, fmt.Sprintf(d.format, x), "Sprintf(%q, %s)", d.format, d.x)
	}
	assert.Equal(t, "", fmt.Sprintf("%+d", new(Int)))
	assert.Equal(t, "[     ]", fmt.Sprintf("[%05d]", new(Int)))
	assert.Equal(t, "[     ]", fmt.Sprintf("[%-5d]", new(Int)))
}

func TestIntScan(t *testing.T) {
	for _, d := range []struct {
		in  string
		out string
	}{
		{"0", "0"},
		{"-0", "0"},
		{"+42", "42"},
		{"  -123", "-123"},
		{"000123", "123"},
		{"98765432109876543210 rest", "98765432109876543210"},
		{"12abc", "12"},
	} {
		z := new(Int)
		_, err := fmt.Sscan(d.in, z)
		require.NoError(t, err, d.in)
		assert.Equal(t, d.out, z.String(), d.in)
	}

	var x, y Int
	n, err := fmt.Sscanf("-12 34", "%d %d", &x, &y)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "-12", x.String())
	assert.Equal(t, "34", y.String())

	for _, s := range []string{"abc", "-", "+x", "--1"} {
		_, err := fmt.Sscan(s, new(Int))
		assert.True(t, errors.Is(err, ErrInvalidFormat), "%q: %v", s, err)
	}

	_, err = fmt.Sscanf("5", "%x", new(Int))
	assert.True(t, errors.Is(err, ErrNotImplemented), "%v", err)
}

func TestIntInt64(t *testing.T) {
	for _, d := range []struct {
		in  string
		out int64
		ok  bool
	}{
		{"0", 0, true},
		{"-1", -1, true},
		{"1234567890", 1234567890, true},
		{"9223372036854775807", math.MaxInt64, true},
		{"-9223372036854775808", math.MinInt64, true},
		{"9223372036854775808", 0, false},
		{"-9223372036854775809", 0, false},
		{"18446744073709551616", 0, false},
		{"-123456789012345678901234567890", 0, false},
	} {
		i, err := mustParse(t, d.in).Int64()
		if d.ok {
			assert.NoError(t, err, d.in)
			assert.Equal(t, d.out, i, d.in)
		} else {
			assert.True(t, errors.Is(err, ErrOutOfRange), "%s: %v", d.in, err)
		}
	}
	_, err := new(Int).Int64()
	assert.True(t, errors.Is(err, ErrUninitialized))
}

func TestIntUint64(t *testing.T) {
	for _, d := range []struct {
		in  string
		out uint64
		ok  bool
	}{
		{"0", 0, true},
		{"-0", 0, true},
		{"18446744073709551615", math.MaxUint64, true},
		{"18446744073709551616", 0, false},
		{"-1", 0, false},
	} {
		u, err := mustParse(t, d.in).Uint64()
		if d.ok {
			assert.NoError(t, err, d.in)
			assert.Equal(t, d.out, u, d.in)
		} else {
			assert.True(t, errors.Is(err, ErrOutOfRange), "%s: %v", d.in, err)
		}
	}
	_, err := new(Int).Uint64()
	assert.True(t, errors.Is(err, ErrUninitialized))
}

func TestFromInteger(t *testing.T) {
	assert.Equal(t, "-128", FromInteger(int8(math.MinInt8)).String())
	assert.Equal(t, "127", FromInteger(int8(math.MaxInt8)).String())
	assert.Equal(t, "255", FromInteger(uint8(math.MaxUint8)).String())
	assert.Equal(t, "-32768", FromInteger(int16(math.MinInt16)).String())
	assert.Equal(t, "65535", FromInteger(uint16(math.MaxUint16)).String())
	assert.Equal(t, "-2147483648", FromInteger(int32(math.MinInt32)).String())
	assert.Equal(t, "4294967295", FromInteger(uint32(math.MaxUint32)).String())
	assert.Equal(t, "-9223372036854775808", FromInteger(int64(math.MinInt64)).String())
	assert.Equal(t, "18446744073709551615", FromInteger(uint64(math.MaxUint64)).String())
	assert.Equal(t, "-1", FromInteger(-1).String())
	assert.Equal(t, "0", FromInteger(uint(0)).String())
	assert.False(t, FromInteger(0).IsNegative())
}
